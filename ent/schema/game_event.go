package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent marks the start or end of one game.
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID shared by all events of one game"),
		field.Enum("action").
			Values("start", "end"),
		field.Int("score").
			Default(0).
			Comment("Final score; 0 on start"),
		field.Int("rounds").
			Default(0).
			Comment("Questions answered"),
		field.Int("correct").
			Default(0),
		field.Int("high_score").
			Default(0).
			Comment("All-time best after this event"),
		field.Bool("new_high_score").
			Default(false),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
