package components

import (
	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen sections.
// All boxes render at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for borders (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// StatCard renders a small labeled value box for dashboard stats.
func StatCard(label, value string, width int) string {
	inner := lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Align(lipgloss.Center).
			Render(value) +
		"\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Align(lipgloss.Center).
			Render(label)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(inner)
}
