package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProblemEvent records that a generated problem was shown to the learner.
type ProblemEvent struct {
	ent.Schema
}

func (ProblemEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProblemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("problem_id").NotEmpty(),
		field.String("level").NotEmpty(),
		field.Int("worksheet"),
		field.String("topic").NotEmpty(),
		field.String("subtype").NotEmpty(),
		field.String("question_text").NotEmpty(),
		field.String("answer").NotEmpty(),
		field.String("answer_kind").NotEmpty(),
	}
}

func (ProblemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("subtype"),
	}
}
