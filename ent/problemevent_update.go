// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/misaki/kumora/ent/predicate"
	"github.com/misaki/kumora/ent/problemevent"
)

// ProblemEventUpdate is the builder for updating ProblemEvent entities.
type ProblemEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemEventMutation
}

// Where appends a list predicates to the ProblemEventUpdate builder.
func (_u *ProblemEventUpdate) Where(ps ...predicate.ProblemEvent) *ProblemEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemEventUpdate) SetProblemID(v string) *ProblemEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableProblemID(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProblemEventUpdate) SetLevel(v string) *ProblemEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableLevel(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetWorksheet sets the "worksheet" field.
func (_u *ProblemEventUpdate) SetWorksheet(v int) *ProblemEventUpdate {
	_u.mutation.ResetWorksheet()
	_u.mutation.SetWorksheet(v)
	return _u
}

// SetNillableWorksheet sets the "worksheet" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableWorksheet(v *int) *ProblemEventUpdate {
	if v != nil {
		_u.SetWorksheet(*v)
	}
	return _u
}

// AddWorksheet adds value to the "worksheet" field.
func (_u *ProblemEventUpdate) AddWorksheet(v int) *ProblemEventUpdate {
	_u.mutation.AddWorksheet(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProblemEventUpdate) SetTopic(v string) *ProblemEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableTopic(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *ProblemEventUpdate) SetSubtype(v string) *ProblemEventUpdate {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableSubtype(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ProblemEventUpdate) SetQuestionText(v string) *ProblemEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableQuestionText(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ProblemEventUpdate) SetAnswer(v string) *ProblemEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableAnswer(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnswerKind sets the "answer_kind" field.
func (_u *ProblemEventUpdate) SetAnswerKind(v string) *ProblemEventUpdate {
	_u.mutation.SetAnswerKind(v)
	return _u
}

// SetNillableAnswerKind sets the "answer_kind" field if the given value is not nil.
func (_u *ProblemEventUpdate) SetNillableAnswerKind(v *string) *ProblemEventUpdate {
	if v != nil {
		_u.SetAnswerKind(*v)
	}
	return _u
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_u *ProblemEventUpdate) Mutation() *ProblemEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemEventUpdate) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := problemevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := problemevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := problemevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtype(); ok {
		if err := problemevent.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.subtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := problemevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := problemevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerKind(); ok {
		if err := problemevent.AnswerKindValidator(v); err != nil {
			return &ValidationError{Name: "answer_kind", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemevent.Table, problemevent.Columns, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(problemevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(problemevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Worksheet(); ok {
		_spec.SetField(problemevent.FieldWorksheet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorksheet(); ok {
		_spec.AddField(problemevent.FieldWorksheet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(problemevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(problemevent.FieldSubtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(problemevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(problemevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerKind(); ok {
		_spec.SetField(problemevent.FieldAnswerKind, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemEventUpdateOne is the builder for updating a single ProblemEvent entity.
type ProblemEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemEventMutation
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemEventUpdateOne) SetProblemID(v string) *ProblemEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableProblemID(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProblemEventUpdateOne) SetLevel(v string) *ProblemEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableLevel(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetWorksheet sets the "worksheet" field.
func (_u *ProblemEventUpdateOne) SetWorksheet(v int) *ProblemEventUpdateOne {
	_u.mutation.ResetWorksheet()
	_u.mutation.SetWorksheet(v)
	return _u
}

// SetNillableWorksheet sets the "worksheet" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableWorksheet(v *int) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetWorksheet(*v)
	}
	return _u
}

// AddWorksheet adds value to the "worksheet" field.
func (_u *ProblemEventUpdateOne) AddWorksheet(v int) *ProblemEventUpdateOne {
	_u.mutation.AddWorksheet(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProblemEventUpdateOne) SetTopic(v string) *ProblemEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableTopic(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *ProblemEventUpdateOne) SetSubtype(v string) *ProblemEventUpdateOne {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableSubtype(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ProblemEventUpdateOne) SetQuestionText(v string) *ProblemEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableQuestionText(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ProblemEventUpdateOne) SetAnswer(v string) *ProblemEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableAnswer(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetAnswerKind sets the "answer_kind" field.
func (_u *ProblemEventUpdateOne) SetAnswerKind(v string) *ProblemEventUpdateOne {
	_u.mutation.SetAnswerKind(v)
	return _u
}

// SetNillableAnswerKind sets the "answer_kind" field if the given value is not nil.
func (_u *ProblemEventUpdateOne) SetNillableAnswerKind(v *string) *ProblemEventUpdateOne {
	if v != nil {
		_u.SetAnswerKind(*v)
	}
	return _u
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_u *ProblemEventUpdateOne) Mutation() *ProblemEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemEventUpdate builder.
func (_u *ProblemEventUpdateOne) Where(ps ...predicate.ProblemEvent) *ProblemEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemEventUpdateOne) Select(field string, fields ...string) *ProblemEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemEvent entity.
func (_u *ProblemEventUpdateOne) Save(ctx context.Context) (*ProblemEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemEventUpdateOne) SaveX(ctx context.Context) *ProblemEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := problemevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := problemevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := problemevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtype(); ok {
		if err := problemevent.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.subtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := problemevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := problemevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerKind(); ok {
		if err := problemevent.AnswerKindValidator(v); err != nil {
			return &ValidationError{Name: "answer_kind", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemEventUpdateOne) sqlSave(ctx context.Context) (_node *ProblemEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemevent.Table, problemevent.Columns, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemevent.FieldID)
		for _, f := range fields {
			if !problemevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(problemevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(problemevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Worksheet(); ok {
		_spec.SetField(problemevent.FieldWorksheet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorksheet(); ok {
		_spec.AddField(problemevent.FieldWorksheet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(problemevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(problemevent.FieldSubtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(problemevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(problemevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerKind(); ok {
		_spec.SetField(problemevent.FieldAnswerKind, field.TypeString, value)
	}
	_node = &ProblemEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
