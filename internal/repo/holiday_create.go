// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
)

// HolidayCreate is the builder for creating a Holiday entity.
type HolidayCreate struct {
	config
	mutation *HolidayMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HolidayCreate) SetCreatedAt(v time.Time) *HolidayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HolidayCreate) SetNillableCreatedAt(v *time.Time) *HolidayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *HolidayCreate) SetName(v string) *HolidayCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *HolidayCreate) SetDate(v time.Time) *HolidayCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetIsRecurring sets the "is_recurring" field.
func (_c *HolidayCreate) SetIsRecurring(v bool) *HolidayCreate {
	_c.mutation.SetIsRecurring(v)
	return _c
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_c *HolidayCreate) SetNillableIsRecurring(v *bool) *HolidayCreate {
	if v != nil {
		_c.SetIsRecurring(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *HolidayCreate) SetDescription(v string) *HolidayCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *HolidayCreate) SetNillableDescription(v *string) *HolidayCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAffectsAppointments sets the "affects_appointments" field.
func (_c *HolidayCreate) SetAffectsAppointments(v bool) *HolidayCreate {
	_c.mutation.SetAffectsAppointments(v)
	return _c
}

// SetNillableAffectsAppointments sets the "affects_appointments" field if the given value is not nil.
func (_c *HolidayCreate) SetNillableAffectsAppointments(v *bool) *HolidayCreate {
	if v != nil {
		_c.SetAffectsAppointments(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HolidayCreate) SetID(v uuid.UUID) *HolidayCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HolidayCreate) SetNillableID(v *uuid.UUID) *HolidayCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HolidayMutation object of the builder.
func (_c *HolidayCreate) Mutation() *HolidayMutation {
	return _c.mutation
}

// Save creates the Holiday in the database.
func (_c *HolidayCreate) Save(ctx context.Context) (*Holiday, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HolidayCreate) SaveX(ctx context.Context) *Holiday {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HolidayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HolidayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HolidayCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := holiday.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsRecurring(); !ok {
		v := holiday.DefaultIsRecurring
		_c.mutation.SetIsRecurring(v)
	}
	if _, ok := _c.mutation.AffectsAppointments(); !ok {
		v := holiday.DefaultAffectsAppointments
		_c.mutation.SetAffectsAppointments(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := holiday.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HolidayCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Holiday.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Holiday.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := holiday.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Holiday.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Holiday.date"`)}
	}
	if _, ok := _c.mutation.IsRecurring(); !ok {
		return &ValidationError{Name: "is_recurring", err: errors.New(`repo: missing required field "Holiday.is_recurring"`)}
	}
	if _, ok := _c.mutation.AffectsAppointments(); !ok {
		return &ValidationError{Name: "affects_appointments", err: errors.New(`repo: missing required field "Holiday.affects_appointments"`)}
	}
	return nil
}

func (_c *HolidayCreate) sqlSave(ctx context.Context) (*Holiday, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HolidayCreate) createSpec() (*Holiday, *sqlgraph.CreateSpec) {
	var (
		_node = &Holiday{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(holiday.Table, sqlgraph.NewFieldSpec(holiday.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(holiday.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(holiday.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(holiday.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.IsRecurring(); ok {
		_spec.SetField(holiday.FieldIsRecurring, field.TypeBool, value)
		_node.IsRecurring = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(holiday.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.AffectsAppointments(); ok {
		_spec.SetField(holiday.FieldAffectsAppointments, field.TypeBool, value)
		_node.AffectsAppointments = value
	}
	return _node, _spec
}

// HolidayCreateBulk is the builder for creating many Holiday entities in bulk.
type HolidayCreateBulk struct {
	config
	err      error
	builders []*HolidayCreate
}

// Save creates the Holiday entities in the database.
func (_c *HolidayCreateBulk) Save(ctx context.Context) ([]*Holiday, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Holiday, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HolidayMutation)
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
func (_c *HolidayCreateBulk) SaveX(ctx context.Context) []*Holiday {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HolidayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HolidayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
