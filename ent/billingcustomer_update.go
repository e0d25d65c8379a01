// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/misaki/kumora/ent/billingcustomer"
	"github.com/misaki/kumora/ent/predicate"
)

// BillingCustomerUpdate is the builder for updating BillingCustomer entities.
type BillingCustomerUpdate struct {
	config
	hooks    []Hook
	mutation *BillingCustomerMutation
}

// Where appends a list predicates to the BillingCustomerUpdate builder.
func (_u *BillingCustomerUpdate) Where(ps ...predicate.BillingCustomer) *BillingCustomerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BillingCustomerUpdate) SetUserID(v string) *BillingCustomerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillingCustomerUpdate) SetNillableUserID(v *string) *BillingCustomerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *BillingCustomerUpdate) SetCustomerID(v string) *BillingCustomerUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BillingCustomerUpdate) SetNillableCustomerID(v *string) *BillingCustomerUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BillingCustomerUpdate) SetEmail(v string) *BillingCustomerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BillingCustomerUpdate) SetNillableEmail(v *string) *BillingCustomerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// Mutation returns the BillingCustomerMutation object of the builder.
func (_u *BillingCustomerUpdate) Mutation() *BillingCustomerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingCustomerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingCustomerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingCustomerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingCustomerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingCustomerUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := billingcustomer.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerID(); ok {
		if err := billingcustomer.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.customer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingCustomerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingcustomer.Table, billingcustomer.Columns, sqlgraph.NewFieldSpec(billingcustomer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(billingcustomer.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(billingcustomer.FieldCustomerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(billingcustomer.FieldEmail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingcustomer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingCustomerUpdateOne is the builder for updating a single BillingCustomer entity.
type BillingCustomerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingCustomerMutation
}

// SetUserID sets the "user_id" field.
func (_u *BillingCustomerUpdateOne) SetUserID(v string) *BillingCustomerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillingCustomerUpdateOne) SetNillableUserID(v *string) *BillingCustomerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *BillingCustomerUpdateOne) SetCustomerID(v string) *BillingCustomerUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BillingCustomerUpdateOne) SetNillableCustomerID(v *string) *BillingCustomerUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BillingCustomerUpdateOne) SetEmail(v string) *BillingCustomerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BillingCustomerUpdateOne) SetNillableEmail(v *string) *BillingCustomerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// Mutation returns the BillingCustomerMutation object of the builder.
func (_u *BillingCustomerUpdateOne) Mutation() *BillingCustomerMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillingCustomerUpdate builder.
func (_u *BillingCustomerUpdateOne) Where(ps ...predicate.BillingCustomer) *BillingCustomerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingCustomerUpdateOne) Select(field string, fields ...string) *BillingCustomerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillingCustomer entity.
func (_u *BillingCustomerUpdateOne) Save(ctx context.Context) (*BillingCustomer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingCustomerUpdateOne) SaveX(ctx context.Context) *BillingCustomer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingCustomerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingCustomerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingCustomerUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := billingcustomer.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerID(); ok {
		if err := billingcustomer.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "BillingCustomer.customer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingCustomerUpdateOne) sqlSave(ctx context.Context) (_node *BillingCustomer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingcustomer.Table, billingcustomer.Columns, sqlgraph.NewFieldSpec(billingcustomer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingCustomer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingcustomer.FieldID)
		for _, f := range fields {
			if !billingcustomer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingcustomer.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(billingcustomer.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(billingcustomer.FieldCustomerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(billingcustomer.FieldEmail, field.TypeString, value)
	}
	_node = &BillingCustomer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingcustomer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
