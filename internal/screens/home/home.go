// Package home implements the dashboard screen: stat cards, recent
// sessions and the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/rehan/quizly/internal/analytics"
	"github.com/rehan/quizly/internal/engine"
	"github.com/rehan/quizly/internal/quiz"
	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
	analyticsscreen "github.com/rehan/quizly/internal/screens/analytics"
	quizscreen "github.com/rehan/quizly/internal/screens/quiz"
	"github.com/rehan/quizly/internal/screens/result"
	"github.com/rehan/quizly/internal/screens/welcome"
	"github.com/rehan/quizly/internal/store"
	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/theme"
)

// Deps carries everything the home screen and its children need.
type Deps struct {
	Bank     *quiz.Bank
	Target   int
	History  store.HistoryRepo
	Progress store.ProgressRepo
	Settings store.SettingRepo
	Logger   *zap.Logger
}

// HomeScreen is the dashboard shown after the welcome screen.
type HomeScreen struct {
	deps Deps
	user string

	menu      components.Menu
	overall   analytics.Overall
	recent    []store.SessionRecordData
	resumable bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for user, loading dashboard data up front.
func New(deps Deps, user string) *HomeScreen {
	h := &HomeScreen{deps: deps, user: user}
	h.load()
	h.menu = components.NewMenu(h.menuItems())
	return h
}

// load reads history and resume state. Failures leave the dashboard empty
// rather than blocking the menu.
func (h *HomeScreen) load() {
	ctx := context.Background()

	records, err := h.deps.History.ByUser(ctx, h.user)
	if err != nil {
		h.deps.Logger.Warn("load history failed", zap.Error(err))
	}
	h.overall = analytics.Summarize(records)

	// Recent five, newest first.
	completed := make([]store.SessionRecordData, 0, len(records))
	for _, rec := range records {
		if rec.Completed {
			completed = append(completed, rec)
		}
	}
	for i := len(completed) - 1; i >= 0 && len(h.recent) < 5; i-- {
		h.recent = append(h.recent, completed[i])
	}

	ptr, err := h.deps.Settings.Get(ctx, store.SettingActiveSession)
	if err != nil {
		h.deps.Logger.Warn("read active session failed", zap.Error(err))
		return
	}
	if ptr == "" {
		return
	}
	snap, err := h.deps.Progress.Load(ctx, h.user)
	if err != nil {
		h.deps.Logger.Warn("load snapshot failed", zap.Error(err))
		return
	}
	h.resumable = snap != nil && snap.SessionID == ptr
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return h.pushQuiz(false)
		}},
		{Label: "CONTINUE QUIZ", Disabled: !h.resumable, Action: func() tea.Cmd {
			return h.pushQuiz(true)
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: analyticsscreen.New(h.deps.History, h.user),
				}
			}
		}},
		{Label: "SWITCH USER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: welcome.New(h.deps.Settings, h.user, func(user string) screen.Screen {
						return New(h.deps, user)
					}),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// pushQuiz builds a fresh machine and the play screen around it.
func (h *HomeScreen) pushQuiz(resume bool) tea.Cmd {
	machine := h.newMachine()
	factory := h.resultFactory()

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizscreen.New(machine, resume, factory),
		}
	}
}

// resultFactory builds the end screen; its "play again" choice loops back
// into a fresh quiz with the same factory.
func (h *HomeScreen) resultFactory() quizscreen.ResultFactory {
	var factory quizscreen.ResultFactory
	factory = func(score, answered, target int) screen.Screen {
		return result.New(score, answered, target,
			func() screen.Screen { return New(h.deps, h.user) },
			func() screen.Screen {
				return quizscreen.New(h.newMachine(), false, factory)
			})
	}
	return factory
}

func (h *HomeScreen) newMachine() *engine.Machine {
	return engine.New(engine.Config{
		Bank:     h.deps.Bank,
		User:     h.user,
		Target:   h.deps.Target,
		History:  h.deps.History,
		Progress: h.deps.Progress,
		Settings: h.deps.Settings,
		Logger:   h.deps.Logger,
	})
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// User returns the player this dashboard belongs to.
func (h *HomeScreen) User() string {
	return h.user
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Hey %s, ready for a quiz?", h.user))
	sections = append(sections, greeting)

	sections = append(sections, h.renderStats(cw))

	if len(h.recent) > 0 {
		sections = append(sections, h.renderRecent(cw))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(cw int) string {
	cardW := cw/4 - 2
	if cardW < 12 {
		cardW = 12
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard("Quizzes", fmt.Sprintf("%d", h.overall.Sessions), cardW),
		components.StatCard("Avg Score", fmt.Sprintf("%.0f%%", h.overall.AverageScore), cardW),
		components.StatCard("Completion", fmt.Sprintf("%.0f%%", h.overall.CompletionRate), cardW),
		components.StatCard("Trend", fmt.Sprintf("%+.0f%%", h.overall.Improvement), cardW),
	)
}

func (h *HomeScreen) renderRecent(cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Recent quizzes")

	var lines []string
	for _, rec := range h.recent {
		pct := 0.0
		if rec.TotalQuestions > 0 {
			pct = float64(rec.Score) / float64(rec.TotalQuestions) * 100
		}
		line := fmt.Sprintf("%s   %d/%d   %.0f%%",
			rec.LastUpdated.Format("Jan 02 15:04"), rec.Score, rec.TotalQuestions, pct)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
	}

	return title + "\n" + strings.Join(lines, "\n")
}
