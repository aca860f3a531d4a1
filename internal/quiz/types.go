package quiz

// Difficulty is the fixed difficulty band a question is authored at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known bands.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single entry in the question bank. Immutable once loaded.
type Question struct {
	// ID is unique within the bank.
	ID string `json:"id"`

	// Topic is a free-form tag grouping related questions.
	Topic string `json:"topic"`

	// Difficulty is the authored difficulty band.
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question text shown to the user.
	Prompt string `json:"question"`

	// Options is the ordered list of answer choices.
	Options []string `json:"options"`

	// Answer is the text of the correct option. Correctness is exact match.
	Answer string `json:"answer"`

	// Explanation is shown after the user submits an answer.
	Explanation string `json:"explanation"`
}

// Bank is an immutable ordered collection of questions.
type Bank struct {
	questions []Question
	byID      map[string]Question
}

// NewBank builds a Bank from the given questions, preserving order.
func NewBank(questions []Question) *Bank {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Bank{questions: questions, byID: byID}
}

// Questions returns the ordered question list. Callers must not mutate it.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// ByID looks up a question by identifier.
func (b *Bank) ByID(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// TopicCounts returns the number of questions per topic.
func (b *Bank) TopicCounts() map[string]int {
	counts := make(map[string]int)
	for _, q := range b.questions {
		counts[q.Topic]++
	}
	return counts
}

// DifficultyCounts returns the number of questions per difficulty band.
func (b *Bank) DifficultyCounts() map[Difficulty]int {
	counts := make(map[Difficulty]int)
	for _, q := range b.questions {
		counts[q.Difficulty]++
	}
	return counts
}
