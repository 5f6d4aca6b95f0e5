package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one answered question.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.Int("round"),
		field.String("subject"),
		field.Text("question_text"),
		field.Int("selected_index").
			Range(0, 3),
		field.Int("correct_index").
			Range(0, 3),
		field.Bool("correct"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether the built-in question was served"),
		field.String("source").
			Default("").
			Comment("llm:<model>, opentdb or fallback"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
