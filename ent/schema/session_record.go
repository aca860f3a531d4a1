package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is one row of a user's quiz history. In-progress sessions
// are created at start and updated in place; finalization sets completed
// and writes the full attempts list in the same save.
type SessionRecord struct {
	ent.Schema
}

// AttemptData is the serialized form of a single answered question.
// Topic and difficulty are denormalized from the bank so analytics stay
// valid even if the bank changes later.
type AttemptData struct {
	QuestionID string    `json:"question_id"`
	Selected   string    `json:"selected"`
	Correct    bool      `json:"correct"`
	Difficulty string    `json:"difficulty"`
	Topic      string    `json:"topic"`
	Timestamp  time.Time `json:"timestamp"`
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying the session"),
		field.String("user").
			NotEmpty().
			Immutable().
			Comment("User the session belongs to"),
		field.Int("score").
			Default(0).
			Comment("Count of correct attempts"),
		field.Int("current_index").
			Default(0).
			Comment("Equals attempts length while in progress; pinned to total_questions on completion"),
		field.Bool("completed").
			Default(false),
		field.Int("total_questions").
			Default(0).
			Comment("Question target configured for the session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.JSON("attempts", []AttemptData{}).
			Optional().
			Comment("Full attempt log, written on finalization"),
		field.Int("schema_version").
			Default(1).
			Comment("Serialization version for deliberate migration of legacy rows"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user"),
		index.Fields("user", "created_at"),
		index.Fields("completed"),
	}
}
