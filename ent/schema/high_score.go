package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// HighScore is a keyed integer record. The all-time best lives under key
// "high_score".
type HighScore struct {
	ent.Schema
}

func (HighScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable(),
		field.Int("score").
			Default(0).
			NonNegative(),
		field.Int64("updated_at").
			Comment("Unix milliseconds of the last raise"),
	}
}
