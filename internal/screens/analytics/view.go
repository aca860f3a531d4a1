package analytics

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rehan/quizly/internal/store"
	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/theme"
)

const barWidth = 24

func (a *AnalyticsScreen) View(width, height int) string {
	if a.errMsg != "" {
		content := theme.Incorrect.Render("Could not load your stats") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.errMsg)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if a.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Crunching numbers..."))
	}
	if a.overall.Sessions == 0 {
		content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("No quizzes finished yet") + "\n\n" +
			theme.Hint.Render("complete a quiz to see your stats here")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	cw := components.ContentWidth(width)

	sections := []string{
		a.renderCards(cw),
		a.renderSeries(cw),
		a.renderAccuracy(cw),
		a.renderWeekly(cw),
		a.renderHistory(cw),
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AnalyticsScreen) renderCards(cw int) string {
	cardW := cw/4 - 2
	if cardW < 12 {
		cardW = 12
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard("Quizzes", fmt.Sprintf("%d", a.overall.Sessions), cardW),
		components.StatCard("Avg Score", fmt.Sprintf("%.0f%%", a.overall.AverageScore), cardW),
		components.StatCard("Best", fmt.Sprintf("%.0f%%", a.overall.BestScore), cardW),
		components.StatCard("Trend", fmt.Sprintf("%+.0f%%", a.overall.Improvement), cardW),
	)
}

func (a *AnalyticsScreen) renderSeries(cw int) string {
	title := sectionTitle("Score progression")

	// Show the most recent sessions that fit.
	points := a.series
	maxPoints := 8
	if len(points) > maxPoints {
		points = points[len(points)-maxPoints:]
	}

	var lines []string
	for _, p := range points {
		label := p.When.Format("Jan 02")
		lines = append(lines, components.HBar(label, p.Percent, barWidth))
	}

	return title + "\n" + strings.Join(lines, "\n")
}

func (a *AnalyticsScreen) renderAccuracy(cw int) string {
	title := sectionTitle("Accuracy by topic")
	var lines []string
	for _, topic := range a.topicOrder {
		lines = append(lines, components.HBar(topic, a.topicAcc[topic].Percent(), barWidth))
	}

	diffTitle := sectionTitle("Accuracy by difficulty")
	var diffLines []string
	for _, d := range []string{"easy", "medium", "hard"} {
		if acc, ok := a.diffAcc[d]; ok {
			diffLines = append(diffLines, components.HBar(d, acc.Percent(), barWidth))
		}
	}

	out := title + "\n" + strings.Join(lines, "\n")
	if len(diffLines) > 0 {
		out += "\n\n" + diffTitle + "\n" + strings.Join(diffLines, "\n")
	}
	return out
}

func (a *AnalyticsScreen) renderWeekly(cw int) string {
	title := sectionTitle("Last 7 days")

	var days, counts []string
	for _, d := range a.weekly {
		days = append(days, d.Day.Format("Mon"))
		mark := theme.BarEmpty.Render("·")
		if d.Count > 0 {
			mark = theme.BarFilled.Render(fmt.Sprintf("%d", d.Count))
		}
		counts = append(counts, mark)
	}

	return title + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(days, "  ")) + "\n" +
		strings.Join(pad(counts, 3), "  ")
}

func (a *AnalyticsScreen) renderHistory(cw int) string {
	title := sectionTitle("Recent quizzes")

	var completed []store.SessionRecordData
	for _, rec := range a.records {
		if rec.Completed {
			completed = append(completed, rec)
		}
	}

	// Newest first, at most five rows.
	var lines []string
	for i := len(completed) - 1; i >= 0 && len(lines) < 5; i-- {
		rec := completed[i]
		total := rec.TotalQuestions
		percent := 0.0
		if total > 0 {
			percent = float64(rec.Score) / float64(total) * 100
		}
		line := fmt.Sprintf("%s   %2d/%-2d   %3.0f%%",
			rec.CreatedAt.Format("Jan 02 15:04"), rec.Score, total, percent)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}
	if len(lines) == 0 {
		return title + "\n" + theme.Hint.Render("no completed quizzes yet")
	}

	return title + "\n" + strings.Join(lines, "\n")
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s)
}

// pad centers each single-character cell to width w so rows line up.
func pad(cells []string, w int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(c)
	}
	return out
}
