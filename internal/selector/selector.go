// Package selector picks the next question for a session by filtering
// the bank through progressively relaxed candidate tiers. The tiering
// biases toward the weakest topic at the desired difficulty while
// guaranteeing forward progress as long as any unasked question remains.
package selector

import (
	"math/rand"
	"time"

	"github.com/rehan/quizly/internal/adaptive"
	"github.com/rehan/quizly/internal/quiz"
)

// Selector picks questions uniformly at random within the winning tier.
type Selector struct {
	rng *rand.Rand
}

// New returns a Selector seeded from the wall clock.
func New() *Selector {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Selector using the given source, for deterministic tests.
func NewWithRand(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Next returns the next question to present, or nil when the session is
// exhausted: either the asked count has reached target, or no unasked
// question remains. The chosen question's id is added to asked before
// returning.
//
// Candidate tiers, first non-empty wins:
//  1. desired difficulty AND weakest topic (when one exists)
//  2. desired difficulty, any topic
//  3. weakest topic, any difficulty (skipped when there is no weakest topic)
//  4. any unasked question
func (s *Selector) Next(bank *quiz.Bank, asked map[string]bool, target int, est *adaptive.Estimator) *quiz.Question {
	if len(asked) >= target {
		return nil
	}

	desired := est.DesiredDifficulty()
	weakest, hasWeakest := est.WeakestTopic()

	candidates := filter(bank, asked, func(q quiz.Question) bool {
		if q.Difficulty != desired {
			return false
		}
		return !hasWeakest || q.Topic == weakest
	})

	if len(candidates) == 0 {
		candidates = filter(bank, asked, func(q quiz.Question) bool {
			return q.Difficulty == desired
		})
	}

	if len(candidates) == 0 && hasWeakest {
		candidates = filter(bank, asked, func(q quiz.Question) bool {
			return q.Topic == weakest
		})
	}

	if len(candidates) == 0 {
		candidates = filter(bank, asked, func(q quiz.Question) bool {
			return true
		})
	}

	if len(candidates) == 0 {
		return nil
	}

	chosen := candidates[s.rng.Intn(len(candidates))]
	asked[chosen.ID] = true
	return &chosen
}

func filter(bank *quiz.Bank, asked map[string]bool, keep func(quiz.Question) bool) []quiz.Question {
	var out []quiz.Question
	for _, q := range bank.Questions() {
		if asked[q.ID] {
			continue
		}
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
