// Package welcome implements the name-entry screen shown on first launch
// and when switching users.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
	"github.com/rehan/quizly/internal/store"
	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/theme"
)

const maxNameLen = 24

const bannerArt = `  ╭────────────────╮
  │   ◎  QUIZLY  ◎ │
  │  ────────────  │
  │   ?  ?  ?  ?   │
  ╰────────────────╯`

// savedMsg is sent after the user name has been written to settings.
type savedMsg struct {
	user string
	err  error
}

// WelcomeScreen asks for a user name and hands off to the home screen.
type WelcomeScreen struct {
	settings    store.SettingRepo
	input       components.TextInput
	homeFactory func(user string) screen.Screen
	saving      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. prefill is the remembered user name, shown
// so returning players can just hit enter.
func New(settings store.SettingRepo, prefill string, homeFactory func(user string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		settings:    settings,
		input:       components.NewTextInput("Enter your name...", prefill, maxNameLen),
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		w.saving = false
		if msg.err != nil {
			w.input.Fail("Could not save your name, try again")
			return w, nil
		}
		home := w.homeFactory(msg.user)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		if w.saving {
			return w, nil
		}
		if msg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.input.Fail("Please enter your name")
				return w, nil
			}
			w.saving = true
			return w, w.save(name)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) save(name string) tea.Cmd {
	return func() tea.Msg {
		err := w.settings.Set(context.Background(), store.SettingCurrentUser, name)
		return savedMsg{user: name, err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	banner := lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt)

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Who's playing today?")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(maxNameLen + 6).
		Render(w.input.View())

	hint := theme.Hint.Render("press enter to continue")

	content := strings.Join([]string{banner, "", greeting, "", inputBox, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
