package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/ui/theme"
)

// OptionList presents a question's answer choices. Before submission it is
// a cursor-driven picker; after submission it repaints to show which choice
// was right and which was picked.
type OptionList struct {
	Prompt  string
	Options []string
	Answer  string

	Selected  int
	Submitted bool
	Chosen    string
}

// NewOptionList creates an option list for one question.
func NewOptionList(prompt string, options []string, answer string) OptionList {
	return OptionList{
		Prompt:  prompt,
		Options: options,
		Answer:  answer,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and number-key shortcuts. Enter locks in
// the current selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
		o.Chosen = o.Options[o.Selected]
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(o.Options) {
				o.Selected = idx
			}
		}
	}

	return o, nil
}

// View renders the prompt and the choices.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if o.Submitted {
			switch {
			case opt == o.Answer:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case opt == o.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Current returns the option text the cursor is on.
func (o OptionList) Current() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected]
}

// IsCorrect returns true if the user chose the correct answer.
func (o OptionList) IsCorrect() bool {
	return o.Submitted && o.Chosen == o.Answer
}
