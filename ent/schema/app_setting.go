package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppSetting is a small process-wide key/value table. It backs the
// active-session pointer and the remembered user name. The pointer is
// deliberately a single global key rather than per-user, matching the
// single-player-at-a-time behavior the app has always had.
type AppSetting struct {
	ent.Schema
}

func (AppSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("value"),
	}
}
