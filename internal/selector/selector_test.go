package selector

import (
	"math/rand"
	"testing"

	"github.com/rehan/quizly/internal/adaptive"
	"github.com/rehan/quizly/internal/quiz"
)

func testSelector() *Selector {
	return NewWithRand(rand.New(rand.NewSource(1)))
}

func testBank() *quiz.Bank {
	// 3 easy, 2 medium, 1 hard.
	return quiz.NewBank([]quiz.Question{
		{ID: "e1", Topic: "math", Difficulty: quiz.DifficultyEasy},
		{ID: "e2", Topic: "science", Difficulty: quiz.DifficultyEasy},
		{ID: "e3", Topic: "history", Difficulty: quiz.DifficultyEasy},
		{ID: "m1", Topic: "math", Difficulty: quiz.DifficultyMedium},
		{ID: "m2", Topic: "science", Difficulty: quiz.DifficultyMedium},
		{ID: "h1", Topic: "math", Difficulty: quiz.DifficultyHard},
	})
}

func TestNextReturnsNilWhenTargetReached(t *testing.T) {
	s := testSelector()
	asked := map[string]bool{"e1": true, "e2": true}

	if q := s.Next(testBank(), asked, 2, adaptive.NewEstimator()); q != nil {
		t.Errorf("expected nil at target, got %q", q.ID)
	}
}

func TestNextNeverRepeats(t *testing.T) {
	s := testSelector()
	bank := testBank()
	est := adaptive.NewEstimator()
	asked := make(map[string]bool)

	seen := make(map[string]bool)
	for i := 0; i < bank.Len(); i++ {
		q := s.Next(bank, asked, bank.Len(), est)
		if q == nil {
			t.Fatalf("unexpected nil at pick %d", i)
		}
		if seen[q.ID] {
			t.Fatalf("question %q returned twice", q.ID)
		}
		seen[q.ID] = true
	}

	if q := s.Next(bank, asked, bank.Len()+1, est); q != nil {
		t.Errorf("expected nil on exhausted bank, got %q", q.ID)
	}
}

func TestNextAddsToAskedSet(t *testing.T) {
	s := testSelector()
	asked := make(map[string]bool)

	q := s.Next(testBank(), asked, 10, adaptive.NewEstimator())
	if q == nil {
		t.Fatal("expected a question")
	}
	if !asked[q.ID] {
		t.Errorf("expected %q in asked set", q.ID)
	}
}

func TestNextPrefersDesiredDifficulty(t *testing.T) {
	s := testSelector()
	est := adaptive.NewEstimator() // ability 0, desired difficulty medium
	asked := make(map[string]bool)

	q := s.Next(testBank(), asked, 10, est)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.Difficulty != quiz.DifficultyMedium {
		t.Errorf("first pick difficulty = %s, want medium", q.Difficulty)
	}
}

func TestNextPrefersWeakestTopicWithinDifficulty(t *testing.T) {
	s := testSelector()
	est := adaptive.NewEstimator()
	// Miss an easy science question: science becomes the weakest topic
	// and ability drops to -0.2 (still medium band).
	est.Update(&quiz.Question{Topic: "science", Difficulty: quiz.DifficultyEasy}, false)
	est.Update(&quiz.Question{Topic: "math", Difficulty: quiz.DifficultyEasy}, true)

	asked := make(map[string]bool)
	q := s.Next(testBank(), asked, 10, est)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.ID != "m2" {
		t.Errorf("pick = %q, want m2 (medium + weakest topic science)", q.ID)
	}
}

func TestNextRelaxesToAnyDifficultyForWeakTopic(t *testing.T) {
	s := testSelector()
	est := adaptive.NewEstimator()
	// history is weakest; ability -0.3 keeps desired difficulty medium.
	est.Update(&quiz.Question{Topic: "history", Difficulty: quiz.DifficultyMedium}, false)

	// Both medium questions already asked: tier 1 and 2 are empty, tier 3
	// must pick the remaining history question regardless of difficulty.
	asked := map[string]bool{"m1": true, "m2": true}
	q := s.Next(testBank(), asked, 10, est)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.ID != "e3" {
		t.Errorf("pick = %q, want e3 (weakest topic fallback)", q.ID)
	}
}

func TestNextFallsBackToAnyUnasked(t *testing.T) {
	s := testSelector()
	est := adaptive.NewEstimator()
	// Drive ability above the hard threshold.
	for i := 0; i < 3; i++ {
		est.Update(&quiz.Question{Topic: "math", Difficulty: quiz.DifficultyHard}, true)
	}
	if est.DesiredDifficulty() != quiz.DifficultyHard {
		t.Fatal("setup: expected desired difficulty hard")
	}

	// The only hard question is asked; weakest topic (math) also exhausted
	// except via other difficulties. Tier 4 must still produce something.
	asked := map[string]bool{"h1": true, "m1": true, "e1": true}
	q := s.Next(testBank(), asked, 10, est)
	if q == nil {
		t.Fatal("expected tier-4 fallback question")
	}
	if asked[q.ID] == false {
		t.Error("expected pick recorded in asked set")
	}
}

func TestAdaptiveDescentScenario(t *testing.T) {
	// 3 easy, 2 medium, 1 hard, target 4, ability starting at 0.
	s := testSelector()
	bank := testBank()
	est := adaptive.NewEstimator()
	asked := make(map[string]bool)

	// First pick comes from the medium pool.
	first := s.Next(bank, asked, 4, est)
	if first == nil || first.Difficulty != quiz.DifficultyMedium {
		t.Fatalf("first pick = %+v, want a medium question", first)
	}

	// One incorrect medium answer: ability -0.3, still medium band.
	est.Update(first, false)
	if est.DesiredDifficulty() != quiz.DifficultyMedium {
		t.Errorf("after one miss desired = %s, want medium", est.DesiredDifficulty())
	}

	second := s.Next(bank, asked, 4, est)
	if second == nil || second.Difficulty != quiz.DifficultyMedium {
		t.Fatalf("second pick = %+v, want the remaining medium question", second)
	}

	// Second incorrect medium answer: ability -0.6 crosses into easy.
	est.Update(second, false)
	if est.DesiredDifficulty() != quiz.DifficultyEasy {
		t.Errorf("after two misses desired = %s, want easy", est.DesiredDifficulty())
	}

	third := s.Next(bank, asked, 4, est)
	if third == nil || third.Difficulty != quiz.DifficultyEasy {
		t.Fatalf("third pick = %+v, want an easy question", third)
	}
}
