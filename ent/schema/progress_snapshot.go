package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressSnapshot holds the single in-progress session snapshot for a
// user, written after every state-machine transition so an interrupted
// session can be resumed. At most one row per user; last write wins.
type ProgressSnapshot struct {
	ent.Schema
}

func (ProgressSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user").
			NotEmpty().
			Unique().
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Versioned snapshot payload (store.SnapshotData)"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
