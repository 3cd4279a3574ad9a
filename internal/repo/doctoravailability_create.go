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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
)

// DoctorAvailabilityCreate is the builder for creating a DoctorAvailability entity.
type DoctorAvailabilityCreate struct {
	config
	mutation *DoctorAvailabilityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorAvailabilityCreate) SetCreatedAt(v time.Time) *DoctorAvailabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableCreatedAt(v *time.Time) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorAvailabilityCreate) SetDoctorID(v uuid.UUID) *DoctorAvailabilityCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *DoctorAvailabilityCreate) SetDayOfWeek(v int8) *DoctorAvailabilityCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *DoctorAvailabilityCreate) SetStartTime(v string) *DoctorAvailabilityCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *DoctorAvailabilityCreate) SetEndTime(v string) *DoctorAvailabilityCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetIsAvailable sets the "is_available" field.
func (_c *DoctorAvailabilityCreate) SetIsAvailable(v bool) *DoctorAvailabilityCreate {
	_c.mutation.SetIsAvailable(v)
	return _c
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableIsAvailable(v *bool) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetIsAvailable(*v)
	}
	return _c
}

// SetMaxPatients sets the "max_patients" field.
func (_c *DoctorAvailabilityCreate) SetMaxPatients(v int) *DoctorAvailabilityCreate {
	_c.mutation.SetMaxPatients(v)
	return _c
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableMaxPatients(v *int) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetMaxPatients(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorAvailabilityCreate) SetID(v uuid.UUID) *DoctorAvailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableID(v *uuid.UUID) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *DoctorAvailabilityCreate) SetDoctor(v *Doctor) *DoctorAvailabilityCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_c *DoctorAvailabilityCreate) Mutation() *DoctorAvailabilityMutation {
	return _c.mutation
}

// Save creates the DoctorAvailability in the database.
func (_c *DoctorAvailabilityCreate) Save(ctx context.Context) (*DoctorAvailability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorAvailabilityCreate) SaveX(ctx context.Context) *DoctorAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorAvailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorAvailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorAvailabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctoravailability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		v := doctoravailability.DefaultIsAvailable
		_c.mutation.SetIsAvailable(v)
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		v := doctoravailability.DefaultMaxPatients
		_c.mutation.SetMaxPatients(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctoravailability.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorAvailabilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorAvailability.created_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorAvailability.doctor_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "DoctorAvailability.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := doctoravailability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "DoctorAvailability.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := doctoravailability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "DoctorAvailability.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := doctoravailability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		return &ValidationError{Name: "is_available", err: errors.New(`repo: missing required field "DoctorAvailability.is_available"`)}
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		return &ValidationError{Name: "max_patients", err: errors.New(`repo: missing required field "DoctorAvailability.max_patients"`)}
	}
	if v, ok := _c.mutation.MaxPatients(); ok {
		if err := doctoravailability.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.max_patients": %w`, err)}
		}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "DoctorAvailability.doctor"`)}
	}
	return nil
}

func (_c *DoctorAvailabilityCreate) sqlSave(ctx context.Context) (*DoctorAvailability, error) {
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

func (_c *DoctorAvailabilityCreate) createSpec() (*DoctorAvailability, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorAvailability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctoravailability.Table, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctoravailability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(doctoravailability.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(doctoravailability.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.IsAvailable(); ok {
		_spec.SetField(doctoravailability.FieldIsAvailable, field.TypeBool, value)
		_node.IsAvailable = value
	}
	if value, ok := _c.mutation.MaxPatients(); ok {
		_spec.SetField(doctoravailability.FieldMaxPatients, field.TypeInt, value)
		_node.MaxPatients = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctoravailability.DoctorTable,
			Columns: []string{doctoravailability.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DoctorAvailabilityCreateBulk is the builder for creating many DoctorAvailability entities in bulk.
type DoctorAvailabilityCreateBulk struct {
	config
	err      error
	builders []*DoctorAvailabilityCreate
}

// Save creates the DoctorAvailability entities in the database.
func (_c *DoctorAvailabilityCreateBulk) Save(ctx context.Context) ([]*DoctorAvailability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorAvailability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorAvailabilityMutation)
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
func (_c *DoctorAvailabilityCreateBulk) SaveX(ctx context.Context) []*DoctorAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorAvailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorAvailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
