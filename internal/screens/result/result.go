// Package result shows the end-of-session score and encouragement.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/theme"
)

// ResultScreen presents the final score with a tiered message.
type ResultScreen struct {
	score    int
	answered int
	target   int
	menu     components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a ResultScreen. homeFactory and againFactory build the
// screens behind the two menu choices.
func New(score, answered, target int, homeFactory, againFactory func() screen.Screen) *ResultScreen {
	items := []components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: againFactory()}
			}
		}},
		{Label: "BACK TO HOME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: homeFactory()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &ResultScreen{
		score:    score,
		answered: answered,
		target:   target,
		menu:     components.NewMenu(items),
	}
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

// Percent returns the score as a percentage of the session's question
// target, so a session cut short by bank exhaustion scores against the
// questions it set out to ask.
func (r *ResultScreen) Percent() int {
	if r.target == 0 {
		return 0
	}
	return int(float64(r.score) / float64(r.target) * 100)
}

// Message returns the encouragement line for the score band.
func (r *ResultScreen) Message() string {
	switch pct := r.Percent(); {
	case pct >= 90:
		return "🌟 Outstanding! You're a quiz master!"
	case pct >= 75:
		return "🎉 Great job! Keep it up!"
	case pct >= 60:
		return "👍 Good effort! Keep practicing!"
	case pct >= 40:
		return "💪 Not bad! Room to improve!"
	default:
		return "📚 Keep studying! You'll get there!"
	}
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	percent := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.Percent()))

	fraction := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d out of %d correct", r.score, r.target))

	var cut string
	if r.answered < r.target {
		cut = theme.Hint.Render(fmt.Sprintf("(ran out of questions after %d)", r.answered))
	}

	message := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(r.Message())

	inner := []string{percent, "", fraction}
	if cut != "" {
		inner = append(inner, cut)
	}
	inner = append(inner, "", message)

	card := components.Card(
		lipgloss.NewStyle().Width(cw-6).Align(lipgloss.Center).Render(strings.Join(inner, "\n")),
		cw)

	content := card + "\n\n" + r.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
