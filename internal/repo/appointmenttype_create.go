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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
)

// AppointmentTypeCreate is the builder for creating a AppointmentType entity.
type AppointmentTypeCreate struct {
	config
	mutation *AppointmentTypeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentTypeCreate) SetCreatedAt(v time.Time) *AppointmentTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableCreatedAt(v *time.Time) *AppointmentTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AppointmentTypeCreate) SetName(v string) *AppointmentTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *AppointmentTypeCreate) SetSlug(v string) *AppointmentTypeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AppointmentTypeCreate) SetDescription(v string) *AppointmentTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableDescription(v *string) *AppointmentTypeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *AppointmentTypeCreate) SetDurationMin(v int) *AppointmentTypeCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetColor sets the "color" field.
func (_c *AppointmentTypeCreate) SetColor(v string) *AppointmentTypeCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableColor(v *string) *AppointmentTypeCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetIsConsultation sets the "is_consultation" field.
func (_c *AppointmentTypeCreate) SetIsConsultation(v bool) *AppointmentTypeCreate {
	_c.mutation.SetIsConsultation(v)
	return _c
}

// SetNillableIsConsultation sets the "is_consultation" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableIsConsultation(v *bool) *AppointmentTypeCreate {
	if v != nil {
		_c.SetIsConsultation(*v)
	}
	return _c
}

// SetRequiresPreparation sets the "requires_preparation" field.
func (_c *AppointmentTypeCreate) SetRequiresPreparation(v bool) *AppointmentTypeCreate {
	_c.mutation.SetRequiresPreparation(v)
	return _c
}

// SetNillableRequiresPreparation sets the "requires_preparation" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableRequiresPreparation(v *bool) *AppointmentTypeCreate {
	if v != nil {
		_c.SetRequiresPreparation(*v)
	}
	return _c
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_c *AppointmentTypeCreate) SetPreparationInstructions(v string) *AppointmentTypeCreate {
	_c.mutation.SetPreparationInstructions(v)
	return _c
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillablePreparationInstructions(v *string) *AppointmentTypeCreate {
	if v != nil {
		_c.SetPreparationInstructions(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AppointmentTypeCreate) SetIsActive(v bool) *AppointmentTypeCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableIsActive(v *bool) *AppointmentTypeCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentTypeCreate) SetID(v uuid.UUID) *AppointmentTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentTypeCreate) SetNillableID(v *uuid.UUID) *AppointmentTypeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_c *AppointmentTypeCreate) Mutation() *AppointmentTypeMutation {
	return _c.mutation
}

// Save creates the AppointmentType in the database.
func (_c *AppointmentTypeCreate) Save(ctx context.Context) (*AppointmentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentTypeCreate) SaveX(ctx context.Context) *AppointmentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentTypeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmenttype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Color(); !ok {
		v := appointmenttype.DefaultColor
		_c.mutation.SetColor(v)
	}
	if _, ok := _c.mutation.IsConsultation(); !ok {
		v := appointmenttype.DefaultIsConsultation
		_c.mutation.SetIsConsultation(v)
	}
	if _, ok := _c.mutation.RequiresPreparation(); !ok {
		v := appointmenttype.DefaultRequiresPreparation
		_c.mutation.SetRequiresPreparation(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := appointmenttype.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmenttype.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentTypeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentType.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "AppointmentType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := appointmenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "AppointmentType.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := appointmenttype.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "AppointmentType.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := appointmenttype.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`repo: missing required field "AppointmentType.color"`)}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := appointmenttype.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsConsultation(); !ok {
		return &ValidationError{Name: "is_consultation", err: errors.New(`repo: missing required field "AppointmentType.is_consultation"`)}
	}
	if _, ok := _c.mutation.RequiresPreparation(); !ok {
		return &ValidationError{Name: "requires_preparation", err: errors.New(`repo: missing required field "AppointmentType.requires_preparation"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "AppointmentType.is_active"`)}
	}
	return nil
}

func (_c *AppointmentTypeCreate) sqlSave(ctx context.Context) (*AppointmentType, error) {
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

func (_c *AppointmentTypeCreate) createSpec() (*AppointmentType, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmenttype.Table, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmenttype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(appointmenttype.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(appointmenttype.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(appointmenttype.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(appointmenttype.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.IsConsultation(); ok {
		_spec.SetField(appointmenttype.FieldIsConsultation, field.TypeBool, value)
		_node.IsConsultation = value
	}
	if value, ok := _c.mutation.RequiresPreparation(); ok {
		_spec.SetField(appointmenttype.FieldRequiresPreparation, field.TypeBool, value)
		_node.RequiresPreparation = value
	}
	if value, ok := _c.mutation.PreparationInstructions(); ok {
		_spec.SetField(appointmenttype.FieldPreparationInstructions, field.TypeString, value)
		_node.PreparationInstructions = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// AppointmentTypeCreateBulk is the builder for creating many AppointmentType entities in bulk.
type AppointmentTypeCreateBulk struct {
	config
	err      error
	builders []*AppointmentTypeCreate
}

// Save creates the AppointmentType entities in the database.
func (_c *AppointmentTypeCreateBulk) Save(ctx context.Context) ([]*AppointmentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentTypeMutation)
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
func (_c *AppointmentTypeCreateBulk) SaveX(ctx context.Context) []*AppointmentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
