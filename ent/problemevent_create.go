// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/misaki/kumora/ent/problemevent"
)

// ProblemEventCreate is the builder for creating a ProblemEvent entity.
type ProblemEventCreate struct {
	config
	mutation *ProblemEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProblemEventCreate) SetSequence(v int64) *ProblemEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProblemEventCreate) SetTimestamp(v time.Time) *ProblemEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProblemEventCreate) SetNillableTimestamp(v *time.Time) *ProblemEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *ProblemEventCreate) SetProblemID(v string) *ProblemEventCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProblemEventCreate) SetLevel(v string) *ProblemEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetWorksheet sets the "worksheet" field.
func (_c *ProblemEventCreate) SetWorksheet(v int) *ProblemEventCreate {
	_c.mutation.SetWorksheet(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProblemEventCreate) SetTopic(v string) *ProblemEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubtype sets the "subtype" field.
func (_c *ProblemEventCreate) SetSubtype(v string) *ProblemEventCreate {
	_c.mutation.SetSubtype(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ProblemEventCreate) SetQuestionText(v string) *ProblemEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ProblemEventCreate) SetAnswer(v string) *ProblemEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetAnswerKind sets the "answer_kind" field.
func (_c *ProblemEventCreate) SetAnswerKind(v string) *ProblemEventCreate {
	_c.mutation.SetAnswerKind(v)
	return _c
}

// Mutation returns the ProblemEventMutation object of the builder.
func (_c *ProblemEventCreate) Mutation() *ProblemEventMutation {
	return _c.mutation
}

// Save creates the ProblemEvent in the database.
func (_c *ProblemEventCreate) Save(ctx context.Context) (*ProblemEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemEventCreate) SaveX(ctx context.Context) *ProblemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := problemevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProblemEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProblemEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "ProblemEvent.problem_id"`)}
	}
	if v, ok := _c.mutation.ProblemID(); ok {
		if err := problemevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.problem_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ProblemEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := problemevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Worksheet(); !ok {
		return &ValidationError{Name: "worksheet", err: errors.New(`ent: missing required field "ProblemEvent.worksheet"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProblemEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := problemevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtype(); !ok {
		return &ValidationError{Name: "subtype", err: errors.New(`ent: missing required field "ProblemEvent.subtype"`)}
	}
	if v, ok := _c.mutation.Subtype(); ok {
		if err := problemevent.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.subtype": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "ProblemEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := problemevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ProblemEvent.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := problemevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerKind(); !ok {
		return &ValidationError{Name: "answer_kind", err: errors.New(`ent: missing required field "ProblemEvent.answer_kind"`)}
	}
	if v, ok := _c.mutation.AnswerKind(); ok {
		if err := problemevent.AnswerKindValidator(v); err != nil {
			return &ValidationError{Name: "answer_kind", err: fmt.Errorf(`ent: validator failed for field "ProblemEvent.answer_kind": %w`, err)}
		}
	}
	return nil
}

func (_c *ProblemEventCreate) sqlSave(ctx context.Context) (*ProblemEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProblemEventCreate) createSpec() (*ProblemEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemevent.Table, sqlgraph.NewFieldSpec(problemevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(problemevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(problemevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(problemevent.FieldProblemID, field.TypeString, value)
		_node.ProblemID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(problemevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Worksheet(); ok {
		_spec.SetField(problemevent.FieldWorksheet, field.TypeInt, value)
		_node.Worksheet = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(problemevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subtype(); ok {
		_spec.SetField(problemevent.FieldSubtype, field.TypeString, value)
		_node.Subtype = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(problemevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(problemevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.AnswerKind(); ok {
		_spec.SetField(problemevent.FieldAnswerKind, field.TypeString, value)
		_node.AnswerKind = value
	}
	return _node, _spec
}

// ProblemEventCreateBulk is the builder for creating many ProblemEvent entities in bulk.
type ProblemEventCreateBulk struct {
	config
	err      error
	builders []*ProblemEventCreate
}

// Save creates the ProblemEvent entities in the database.
func (_c *ProblemEventCreateBulk) Save(ctx context.Context) ([]*ProblemEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProblemEventCreateBulk) SaveX(ctx context.Context) []*ProblemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
