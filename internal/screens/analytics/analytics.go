// Package analytics renders a user's performance summaries.
package analytics

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	stats "github.com/rehan/quizly/internal/analytics"
	"github.com/rehan/quizly/internal/screen"
	"github.com/rehan/quizly/internal/store"
	"github.com/rehan/quizly/internal/ui/layout"
)

// loadedMsg is sent when the user's history has been read.
type loadedMsg struct {
	records []store.SessionRecordData
	err     error
}

// AnalyticsScreen shows overall stats, accuracy breakdowns and activity.
type AnalyticsScreen struct {
	history store.HistoryRepo
	user    string

	loading bool
	errMsg  string

	overall    stats.Overall
	series     []stats.ScorePoint
	topicAcc   map[string]stats.Accuracy
	topicOrder []string
	diffAcc    map[string]stats.Accuracy
	weekly     []stats.DayCount
	records    []store.SessionRecordData
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates an AnalyticsScreen for one user.
func New(history store.HistoryRepo, user string) *AnalyticsScreen {
	return &AnalyticsScreen{
		history: history,
		user:    user,
		loading: true,
	}
}

func (a *AnalyticsScreen) Title() string {
	return "Analytics"
}

// User returns the player whose stats are shown.
func (a *AnalyticsScreen) User() string {
	return a.user
}

func (a *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := a.history.ByUser(context.Background(), a.user)
		return loadedMsg{records: records, err: err}
	}
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		a.loading = false
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.records = msg.records
		a.overall = stats.Summarize(msg.records)
		a.series = stats.ScoreSeries(msg.records)
		a.topicAcc, a.topicOrder = stats.TopicAccuracy(msg.records)
		a.diffAcc, _ = stats.DifficultyAccuracy(msg.records)
		a.weekly = stats.WeeklyActivity(msg.records, time.Now())
	}
	return a, nil
}
