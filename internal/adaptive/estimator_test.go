package adaptive

import (
	"math"
	"testing"

	"github.com/rehan/quizly/internal/quiz"
)

func q(topic string, d quiz.Difficulty) *quiz.Question {
	return &quiz.Question{ID: topic + "-" + string(d), Topic: topic, Difficulty: d}
}

func TestUpdateDeltas(t *testing.T) {
	tests := []struct {
		difficulty quiz.Difficulty
		correct    bool
		want       float64
	}{
		{quiz.DifficultyEasy, true, 0.2},
		{quiz.DifficultyMedium, true, 0.3},
		{quiz.DifficultyHard, true, 0.4},
		{quiz.DifficultyEasy, false, -0.2},
		{quiz.DifficultyMedium, false, -0.3},
		{quiz.DifficultyHard, false, -0.4},
	}

	for _, tt := range tests {
		e := NewEstimator()
		e.Update(q("t", tt.difficulty), tt.correct)
		if got := e.Ability(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ability after %s correct=%v = %v, want %v", tt.difficulty, tt.correct, got, tt.want)
		}
	}
}

func TestAbilityClampSaturates(t *testing.T) {
	e := NewEstimator()
	for i := 0; i < 20; i++ {
		e.Update(q("t", quiz.DifficultyHard), true)
	}
	if e.Ability() != MaxAbility {
		t.Errorf("ability = %v, want clamped to %v", e.Ability(), MaxAbility)
	}

	for i := 0; i < 40; i++ {
		e.Update(q("t", quiz.DifficultyHard), false)
	}
	if e.Ability() != MinAbility {
		t.Errorf("ability = %v, want clamped to %v", e.Ability(), MinAbility)
	}
}

func TestDesiredDifficultyBands(t *testing.T) {
	tests := []struct {
		ability float64
		want    quiz.Difficulty
	}{
		{-2, quiz.DifficultyEasy},
		{-0.6, quiz.DifficultyEasy},
		{-0.5, quiz.DifficultyMedium}, // boundary maps to medium
		{0, quiz.DifficultyMedium},
		{0.5, quiz.DifficultyMedium}, // boundary maps to medium
		{0.6, quiz.DifficultyHard},
		{2, quiz.DifficultyHard},
	}

	for _, tt := range tests {
		e := NewEstimator()
		e.ability = tt.ability
		if got := e.DesiredDifficulty(); got != tt.want {
			t.Errorf("DesiredDifficulty(%v) = %s, want %s", tt.ability, got, tt.want)
		}
	}
}

func TestWeakestTopicNoneWhenUnattempted(t *testing.T) {
	e := NewEstimator()
	if _, ok := e.WeakestTopic(); ok {
		t.Error("expected no weakest topic before any attempt")
	}
}

func TestWeakestTopicPicksLowestAccuracy(t *testing.T) {
	e := NewEstimator()
	e.Update(q("math", quiz.DifficultyEasy), true)
	e.Update(q("math", quiz.DifficultyEasy), true)
	e.Update(q("science", quiz.DifficultyEasy), true)
	e.Update(q("science", quiz.DifficultyEasy), false)

	topic, ok := e.WeakestTopic()
	if !ok {
		t.Fatal("expected a weakest topic")
	}
	if topic != "science" {
		t.Errorf("weakest topic = %q, want science", topic)
	}
}

func TestWeakestTopicTieBreaksOnFirstEncounter(t *testing.T) {
	e := NewEstimator()
	e.Update(q("history", quiz.DifficultyEasy), false)
	e.Update(q("geography", quiz.DifficultyEasy), false)

	topic, ok := e.WeakestTopic()
	if !ok {
		t.Fatal("expected a weakest topic")
	}
	if topic != "history" {
		t.Errorf("weakest topic = %q, want history (first encountered)", topic)
	}
}

func TestRebuildMatchesLiveUpdates(t *testing.T) {
	questions := []*quiz.Question{
		q("math", quiz.DifficultyEasy),
		q("science", quiz.DifficultyHard),
		q("math", quiz.DifficultyMedium),
		q("history", quiz.DifficultyMedium),
		q("science", quiz.DifficultyEasy),
	}
	results := []bool{true, false, true, false, true}

	live := NewEstimator()
	var history []Outcome
	for i, question := range questions {
		live.Update(question, results[i])
		history = append(history, Outcome{
			Topic:      question.Topic,
			Difficulty: question.Difficulty,
			Correct:    results[i],
		})
	}

	replayed := NewEstimator()
	replayed.Rebuild(history)

	if replayed.Ability() != live.Ability() {
		t.Errorf("replayed ability = %v, live = %v", replayed.Ability(), live.Ability())
	}

	liveTopics := live.Topics()
	replayedTopics := replayed.Topics()
	if len(liveTopics) != len(replayedTopics) {
		t.Fatalf("topic count mismatch: %d vs %d", len(replayedTopics), len(liveTopics))
	}
	for i, topic := range liveTopics {
		if replayedTopics[i] != topic {
			t.Errorf("topic order[%d] = %q, want %q", i, replayedTopics[i], topic)
		}
		if replayed.TopicStatsFor(topic) != live.TopicStatsFor(topic) {
			t.Errorf("topic %q stats mismatch: %+v vs %+v",
				topic, replayed.TopicStatsFor(topic), live.TopicStatsFor(topic))
		}
	}
}

func TestRebuildResumeScenario(t *testing.T) {
	// Resume with one correct easy and one incorrect hard attempt:
	// ability must be 0.2 - 0.4 = -0.2.
	e := NewEstimator()
	e.Rebuild([]Outcome{
		{Topic: "math", Difficulty: quiz.DifficultyEasy, Correct: true},
		{Topic: "science", Difficulty: quiz.DifficultyHard, Correct: false},
	})

	if got := e.Ability(); math.Abs(got-(-0.2)) > 1e-9 {
		t.Errorf("ability = %v, want -0.2", got)
	}

	if stats := e.TopicStatsFor("math"); stats != (TopicStats{Total: 1, Correct: 1}) {
		t.Errorf("math stats = %+v", stats)
	}
	if stats := e.TopicStatsFor("science"); stats != (TopicStats{Total: 1, Correct: 0}) {
		t.Errorf("science stats = %+v", stats)
	}
}
