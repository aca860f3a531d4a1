package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/rehan/quizly/internal/store"
)

func attempt(topic, difficulty string, correct bool) store.AttemptData {
	return store.AttemptData{Topic: topic, Difficulty: difficulty, Correct: correct}
}

func completed(id string, when time.Time, attempts []store.AttemptData) store.SessionRecordData {
	score := 0
	for _, a := range attempts {
		if a.Correct {
			score++
		}
	}
	return store.SessionRecordData{
		SessionID:      id,
		User:           "tester",
		Score:          score,
		Completed:      true,
		TotalQuestions: len(attempts),
		CreatedAt:      when,
		LastUpdated:    when,
		Attempts:       attempts,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.Sessions != 0 || got.AverageScore != 0 || got.CompletionRate != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero value", got)
	}
}

func TestSummarize(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []store.SessionRecordData{
		// 2/4 = 50%
		completed("a", base, []store.AttemptData{
			attempt("geo", "easy", true),
			attempt("geo", "easy", true),
			attempt("sci", "medium", false),
			attempt("sci", "medium", false),
		}),
		// abandoned, counts against completion rate only
		{SessionID: "b", User: "tester", Completed: false, CreatedAt: base.Add(time.Hour)},
		// 3/4 = 75%
		completed("c", base.Add(2*time.Hour), []store.AttemptData{
			attempt("geo", "medium", true),
			attempt("sci", "medium", true),
			attempt("sci", "hard", true),
			attempt("geo", "hard", false),
		}),
	}

	got := Summarize(records)
	if got.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", got.Sessions)
	}
	if got.QuestionsDone != 8 || got.CorrectAnswers != 5 {
		t.Errorf("QuestionsDone = %d CorrectAnswers = %d, want 8 and 5", got.QuestionsDone, got.CorrectAnswers)
	}
	if !almostEqual(got.AverageScore, 62.5) {
		t.Errorf("AverageScore = %v, want 62.5", got.AverageScore)
	}
	if !almostEqual(got.BestScore, 75) {
		t.Errorf("BestScore = %v, want 75", got.BestScore)
	}
	if !almostEqual(got.CompletionRate, 2.0/3.0*100) {
		t.Errorf("CompletionRate = %v, want 66.66", got.CompletionRate)
	}
	if !almostEqual(got.Improvement, 25) {
		t.Errorf("Improvement = %v, want 25", got.Improvement)
	}
}

func TestSummarizeSingleSessionNoImprovement(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	got := Summarize([]store.SessionRecordData{
		completed("a", base, []store.AttemptData{attempt("geo", "easy", true)}),
	})
	if got.Improvement != 0 {
		t.Errorf("Improvement = %v, want 0 with one session", got.Improvement)
	}
}

func TestScoreSeries(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []store.SessionRecordData{
		completed("a", base, []store.AttemptData{
			attempt("geo", "easy", true),
			attempt("geo", "easy", false),
		}),
		{SessionID: "b", Completed: false},
		completed("c", base.Add(time.Hour), []store.AttemptData{
			attempt("geo", "easy", true),
		}),
	}

	got := ScoreSeries(records)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].SessionID != "a" || !almostEqual(got[0].Percent, 50) {
		t.Errorf("point[0] = %+v, want session a at 50%%", got[0])
	}
	if got[1].SessionID != "c" || !almostEqual(got[1].Percent, 100) {
		t.Errorf("point[1] = %+v, want session c at 100%%", got[1])
	}
}

func TestTopicAccuracy(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []store.SessionRecordData{
		completed("a", base, []store.AttemptData{
			attempt("geo", "easy", true),
			attempt("sci", "easy", false),
			attempt("geo", "medium", false),
		}),
		completed("b", base.Add(time.Hour), []store.AttemptData{
			attempt("sci", "medium", true),
			attempt("math", "hard", true),
		}),
	}

	acc, order := TopicAccuracy(records)
	wantOrder := []string{"geo", "sci", "math"}
	if len(order) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", order, wantOrder)
	}
	for i, topic := range wantOrder {
		if order[i] != topic {
			t.Errorf("order[%d] = %s, want %s", i, order[i], topic)
		}
	}
	if got := acc["geo"]; got.Total != 2 || got.Correct != 1 {
		t.Errorf("geo = %+v, want 1/2", got)
	}
	if got := acc["sci"]; got.Total != 2 || got.Correct != 1 {
		t.Errorf("sci = %+v, want 1/2", got)
	}
	if got := acc["math"]; !almostEqual(got.Percent(), 100) {
		t.Errorf("math percent = %v, want 100", got.Percent())
	}
}

func TestDifficultyAccuracy(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []store.SessionRecordData{
		completed("a", base, []store.AttemptData{
			attempt("geo", "easy", true),
			attempt("geo", "easy", true),
			attempt("geo", "hard", false),
		}),
	}

	acc, _ := DifficultyAccuracy(records)
	if got := acc["easy"]; got.Total != 2 || got.Correct != 2 {
		t.Errorf("easy = %+v, want 2/2", got)
	}
	if got := acc["hard"]; got.Total != 1 || got.Correct != 0 {
		t.Errorf("hard = %+v, want 0/1", got)
	}
}

func TestWeeklyActivityAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// US DST begins 2026-03-08; the window Mar 5 through Mar 11 contains
	// a 23-hour day.
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, loc)
	records := []store.SessionRecordData{
		completed("a", time.Date(2026, 3, 11, 9, 0, 0, 0, loc), []store.AttemptData{attempt("geo", "easy", true)}),
		completed("b", time.Date(2026, 3, 9, 20, 0, 0, 0, loc), []store.AttemptData{attempt("geo", "easy", true)}),
	}

	got := WeeklyActivity(records, now)
	if got[6].Count != 1 {
		t.Errorf("today count = %d, want 1", got[6].Count)
	}
	if got[4].Count != 1 {
		t.Errorf("Mar 9 count = %d, want 1", got[4].Count)
	}
}

func TestScorePercentUsesSessionTarget(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// Bank exhausted after 3 of 5 questions, all answered correctly.
	rec := completed("a", base, []store.AttemptData{
		attempt("geo", "easy", true),
		attempt("geo", "easy", true),
		attempt("geo", "easy", true),
	})
	rec.TotalQuestions = 5

	points := ScoreSeries([]store.SessionRecordData{rec})
	if len(points) != 1 {
		t.Fatalf("len = %d, want 1", len(points))
	}
	if !almostEqual(points[0].Percent, 60) {
		t.Errorf("Percent = %v, want 60", points[0].Percent)
	}
	if points[0].Total != 5 {
		t.Errorf("Total = %d, want 5", points[0].Total)
	}

	got := Summarize([]store.SessionRecordData{rec})
	if !almostEqual(got.BestScore, 60) {
		t.Errorf("BestScore = %v, want 60", got.BestScore)
	}
}

func TestAccuracyPercentZeroTotal(t *testing.T) {
	if got := (Accuracy{}).Percent(); got != 0 {
		t.Errorf("Percent() = %v, want 0", got)
	}
}

func TestWeeklyActivity(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	records := []store.SessionRecordData{
		completed("a", now.Add(-2*time.Hour), []store.AttemptData{attempt("geo", "easy", true)}),
		completed("b", now.AddDate(0, 0, -3), []store.AttemptData{attempt("geo", "easy", true)}),
		completed("c", now.AddDate(0, 0, -3), []store.AttemptData{attempt("geo", "easy", false)}),
		// Outside the window.
		completed("d", now.AddDate(0, 0, -10), []store.AttemptData{attempt("geo", "easy", true)}),
		// Not completed.
		{SessionID: "e", LastUpdated: now},
	}

	got := WeeklyActivity(records, now)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Day != time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("first day = %v, want 2026-03-01", got[0].Day)
	}
	total := 0
	for _, d := range got {
		total += d.Count
	}
	if total != 3 {
		t.Errorf("total counted = %d, want 3", total)
	}
	if got[6].Count != 1 {
		t.Errorf("today count = %d, want 1", got[6].Count)
	}
	if got[3].Count != 2 {
		t.Errorf("day -3 count = %d, want 2", got[3].Count)
	}
}
