// Package adaptive maintains the running skill estimate that drives
// question selection: a scalar ability in [-2, +2] plus per-topic
// accuracy counters. The estimate is never persisted; it is rebuilt by
// replaying the attempt history, so replay must be bit-identical to the
// live update path.
package adaptive

import "github.com/rehan/quizly/internal/quiz"

// Ability bounds and the per-difficulty update deltas.
const (
	MinAbility = -2.0
	MaxAbility = 2.0

	deltaEasy   = 0.2
	deltaMedium = 0.3
	deltaHard   = 0.4
)

// Thresholds for mapping ability to a desired difficulty band.
// Values exactly on a boundary map to medium.
const (
	easyBelow = -0.5
	hardAbove = 0.5
)

// TopicStats counts attempts and correct answers for one topic.
type TopicStats struct {
	Total   int
	Correct int
}

// Accuracy returns the observed accuracy, or 0 if nothing was attempted.
func (s TopicStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Outcome is the replay form of a recorded attempt. Topic and difficulty
// are the denormalized copies stored on the attempt record, so replay
// works even if the bank changed since the attempt was made.
type Outcome struct {
	Topic      string
	Difficulty quiz.Difficulty
	Correct    bool
}

// Estimator tracks ability and per-topic accuracy for one active session.
type Estimator struct {
	ability float64
	topics  map[string]*TopicStats

	// order records first-encounter order of topics so the weakest-topic
	// tie-break is deterministic (map iteration order is not).
	order []string
}

// NewEstimator returns a fresh estimator with ability 0 and no topics.
func NewEstimator() *Estimator {
	return &Estimator{
		topics: make(map[string]*TopicStats),
	}
}

// Ability returns the current scalar ability in [-2, +2].
func (e *Estimator) Ability() float64 {
	return e.ability
}

// Update records an answered question, moving ability by the question's
// difficulty delta and updating that topic's counters.
func (e *Estimator) Update(q *quiz.Question, correct bool) {
	e.apply(q.Topic, q.Difficulty, correct)
}

// Rebuild resets the estimator and replays history in order. The result is
// identical to having called Update live for each attempt.
func (e *Estimator) Rebuild(history []Outcome) {
	e.ability = 0
	e.topics = make(map[string]*TopicStats)
	e.order = nil

	for _, o := range history {
		e.apply(o.Topic, o.Difficulty, o.Correct)
	}
}

func (e *Estimator) apply(topic string, difficulty quiz.Difficulty, correct bool) {
	stats, ok := e.topics[topic]
	if !ok {
		stats = &TopicStats{}
		e.topics[topic] = stats
		e.order = append(e.order, topic)
	}

	stats.Total++
	if correct {
		stats.Correct++
	}

	delta := deltaFor(difficulty)
	if correct {
		e.ability += delta
	} else {
		e.ability -= delta
	}

	// Saturating clamp.
	if e.ability > MaxAbility {
		e.ability = MaxAbility
	}
	if e.ability < MinAbility {
		e.ability = MinAbility
	}
}

func deltaFor(d quiz.Difficulty) float64 {
	switch d {
	case quiz.DifficultyEasy:
		return deltaEasy
	case quiz.DifficultyMedium:
		return deltaMedium
	default:
		return deltaHard
	}
}

// DesiredDifficulty maps the current ability to the difficulty band the
// selector should aim for. Boundary values map to medium; there is no
// hysteresis.
func (e *Estimator) DesiredDifficulty() quiz.Difficulty {
	switch {
	case e.ability < easyBelow:
		return quiz.DifficultyEasy
	case e.ability > hardAbove:
		return quiz.DifficultyHard
	default:
		return quiz.DifficultyMedium
	}
}

// WeakestTopic returns the topic with the lowest observed accuracy among
// topics with at least one attempt. Ties go to the first-encountered topic.
// ok is false when no topic has been attempted yet.
func (e *Estimator) WeakestTopic() (topic string, ok bool) {
	weakestAccuracy := 1.0

	for _, t := range e.order {
		stats := e.topics[t]
		if stats.Total == 0 {
			continue
		}
		if acc := stats.Accuracy(); !ok || acc < weakestAccuracy {
			weakestAccuracy = acc
			topic = t
			ok = true
		}
	}

	return topic, ok
}

// TopicStatsFor returns a copy of the counters for one topic.
func (e *Estimator) TopicStatsFor(topic string) TopicStats {
	if stats, ok := e.topics[topic]; ok {
		return *stats
	}
	return TopicStats{}
}

// Topics returns the attempted topics in first-encounter order.
func (e *Estimator) Topics() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}
