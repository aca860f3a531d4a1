package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling and an inline
// validation message.
type TextInput struct {
	Model    textinput.Model
	ErrorMsg string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder, initial string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.SetValue(initial)
	ti.Focus()

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears a previous validation error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.ErrorMsg = ""
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with any validation error below it.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.ErrorMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.ErrorMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Fail records a validation error to show under the input.
func (t *TextInput) Fail(msg string) {
	t.ErrorMsg = msg
}
