// Package analytics computes read-only summaries from completed session
// history. All reductions are pure functions over the records a repo
// returns, so they can be rendered by the TUI or printed by the CLI.
package analytics

import (
	"time"

	"github.com/rehan/quizly/internal/store"
)

// Overall summarizes a user's completed sessions.
type Overall struct {
	Sessions       int
	QuestionsDone  int
	CorrectAnswers int
	// AverageScore is the mean score percentage across completed sessions.
	AverageScore float64
	// BestScore is the highest score percentage achieved.
	BestScore float64
	// CompletionRate is completed sessions over all sessions, in percent.
	CompletionRate float64
	// Improvement is the last completed session's percentage minus the
	// first's. Zero with fewer than two completed sessions.
	Improvement float64
}

// ScorePoint is one completed session on the score timeline.
type ScorePoint struct {
	SessionID string
	When      time.Time
	Score     int
	Total     int
	// Percent is Score over the session's question target.
	Percent float64
}

// Accuracy is a correct/total pair for one grouping key.
type Accuracy struct {
	Total   int
	Correct int
}

// Percent returns the accuracy as a percentage, 0 when Total is zero.
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// DayCount is a day's completed-session count for the activity strip.
type DayCount struct {
	Day   time.Time
	Count int
}

// Summarize reduces all of a user's records to overall stats. Records that
// were never completed count toward the completion rate only.
func Summarize(records []store.SessionRecordData) Overall {
	var o Overall
	total := len(records)
	if total == 0 {
		return o
	}

	var sumPct, first, last float64
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		o.Sessions++
		o.QuestionsDone += len(rec.Attempts)
		o.CorrectAnswers += rec.Score

		pct := scorePercent(rec)
		sumPct += pct
		if pct > o.BestScore {
			o.BestScore = pct
		}
		if o.Sessions == 1 {
			first = pct
		}
		last = pct
	}

	if o.Sessions > 0 {
		o.AverageScore = sumPct / float64(o.Sessions)
	}
	if o.Sessions > 1 {
		o.Improvement = last - first
	}
	o.CompletionRate = float64(o.Sessions) / float64(total) * 100
	return o
}

// ScoreSeries returns one point per completed session, in the order the
// records were given (oldest first when they come from the repo).
func ScoreSeries(records []store.SessionRecordData) []ScorePoint {
	var out []ScorePoint
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		out = append(out, ScorePoint{
			SessionID: rec.SessionID,
			When:      rec.LastUpdated,
			Score:     rec.Score,
			Total:     rec.TotalQuestions,
			Percent:   scorePercent(rec),
		})
	}
	return out
}

// TopicAccuracy groups attempts from completed sessions by topic. The
// returned keys slice preserves first-encounter order.
func TopicAccuracy(records []store.SessionRecordData) (map[string]Accuracy, []string) {
	return groupAccuracy(records, func(a store.AttemptData) string { return a.Topic })
}

// DifficultyAccuracy groups attempts from completed sessions by difficulty.
func DifficultyAccuracy(records []store.SessionRecordData) (map[string]Accuracy, []string) {
	return groupAccuracy(records, func(a store.AttemptData) string { return a.Difficulty })
}

func groupAccuracy(records []store.SessionRecordData, key func(store.AttemptData) string) (map[string]Accuracy, []string) {
	acc := make(map[string]Accuracy)
	var order []string
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		for _, a := range rec.Attempts {
			k := key(a)
			entry, seen := acc[k]
			if !seen {
				order = append(order, k)
			}
			entry.Total++
			if a.Correct {
				entry.Correct++
			}
			acc[k] = entry
		}
	}
	return acc, order
}

// WeeklyActivity counts completed sessions per day for the seven days
// ending at now, oldest day first. Days are bucketed in now's location.
func WeeklyActivity(records []store.SessionRecordData, now time.Time) []DayCount {
	days := make([]DayCount, 7)
	start := truncateDay(now).AddDate(0, 0, -6)
	for i := range days {
		days[i].Day = start.AddDate(0, 0, i)
	}

	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		// Calendar-day comparison; elapsed-hours math misbuckets across
		// DST transitions where a day is not 24 hours long.
		when := rec.LastUpdated.In(now.Location())
		for i := range days {
			if sameDay(when, days[i].Day) {
				days[i].Count++
				break
			}
		}
	}
	return days
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// scorePercent scores against the session's question target, not the
// answered count, so early-finalized sessions are not inflated.
func scorePercent(rec store.SessionRecordData) float64 {
	if rec.TotalQuestions == 0 {
		return 0
	}
	return float64(rec.Score) / float64(rec.TotalQuestions) * 100
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
