// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/misaki/kumora/ent/billingcustomer"
)

// BillingCustomerCreate is the builder for creating a BillingCustomer entity.
type BillingCustomerCreate struct {
	config
	mutation *BillingCustomerMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BillingCustomerCreate) SetUserID(v string) *BillingCustomerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *BillingCustomerCreate) SetCustomerID(v string) *BillingCustomerCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *BillingCustomerCreate) SetEmail(v string) *BillingCustomerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *BillingCustomerCreate) SetNillableEmail(v *string) *BillingCustomerCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingCustomerCreate) SetCreatedAt(v time.Time) *BillingCustomerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingCustomerCreate) SetNillableCreatedAt(v *time.Time) *BillingCustomerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BillingCustomerMutation object of the builder.
func (_c *BillingCustomerCreate) Mutation() *BillingCustomerMutation {
	return _c.mutation
}

// Save creates the BillingCustomer in the database.
func (_c *BillingCustomerCreate) Save(ctx context.Context) (*BillingCustomer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingCustomerCreate) SaveX(ctx context.Context) *BillingCustomer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCustomerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCustomerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingCustomerCreate) defaults() {
	if _, ok := _c.mutation.Email(); !ok {
		v := billingcustomer.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billingcustomer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingCustomerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BillingCustomer.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := billingcustomer.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "BillingCustomer.customer_id"`)}
	}
	if v, ok := _c.mutation.CustomerID(); ok {
		if err := billingcustomer.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.customer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "BillingCustomer.email"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingCustomer.created_at"`)}
	}
	return nil
}

func (_c *BillingCustomerCreate) sqlSave(ctx context.Context) (*BillingCustomer, error) {
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

func (_c *BillingCustomerCreate) createSpec() (*BillingCustomer, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingCustomer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingcustomer.Table, sqlgraph.NewFieldSpec(billingcustomer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(billingcustomer.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(billingcustomer.FieldCustomerID, field.TypeString, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(billingcustomer.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billingcustomer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BillingCustomerCreateBulk is the builder for creating many BillingCustomer entities in bulk.
type BillingCustomerCreateBulk struct {
	config
	err      error
	builders []*BillingCustomerCreate
}

// Save creates the BillingCustomer entities in the database.
func (_c *BillingCustomerCreateBulk) Save(ctx context.Context) ([]*BillingCustomer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingCustomer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingCustomerMutation)
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
func (_c *BillingCustomerCreateBulk) SaveX(ctx context.Context) []*BillingCustomer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingCustomerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingCustomerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
