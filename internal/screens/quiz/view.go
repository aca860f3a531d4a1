package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.loading || s.machine.Current() == nil {
		return renderLoading(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *Screen) renderQuestion(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.machine.Current()

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.machine.Index()+1, s.machine.Target()))

	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.DifficultyColor(string(q.Difficulty))).
		Padding(0, 1).
		Render(string(q.Difficulty))

	topic := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(q.Topic)

	meta := counter + "   " + topic + "  " + badge

	progress := components.NewProgressBar(
		"", float64(s.machine.Index())/float64(s.machine.Target()), false, cw).View()

	card := components.Card(s.options.View(), cw)

	content := strings.Join([]string{meta, progress, "", card}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderFeedback(width, height int) string {
	cw := components.ContentWidth(width)

	var verdict string
	last := s.machine.LastAttempt()
	if last != nil && last.Correct {
		verdict = theme.Correct.Render("✓ Correct!")
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite.")
		if q := s.machine.Current(); q != nil {
			verdict += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  The answer is " + q.Answer)
		}
	}

	sections := []string{components.Card(s.options.View(), cw), "", verdict}

	if q := s.machine.Current(); q != nil && q.Explanation != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(cw).
				Render(q.Explanation))
	}

	sections = append(sections, "", theme.Hint.Render("press any key to continue"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderLoading(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Picking a question...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderError(width, height int, errMsg string) string {
	content := theme.Incorrect.Render("Something went wrong") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(errMsg) + "\n\n" +
		theme.Hint.Render("press esc to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
