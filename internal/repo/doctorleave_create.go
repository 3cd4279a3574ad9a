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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
)

// DoctorLeaveCreate is the builder for creating a DoctorLeave entity.
type DoctorLeaveCreate struct {
	config
	mutation *DoctorLeaveMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorLeaveCreate) SetCreatedAt(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableCreatedAt(v *time.Time) *DoctorLeaveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorLeaveCreate) SetDoctorID(v uuid.UUID) *DoctorLeaveCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetLeaveType sets the "leave_type" field.
func (_c *DoctorLeaveCreate) SetLeaveType(v doctorleave.LeaveType) *DoctorLeaveCreate {
	_c.mutation.SetLeaveType(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *DoctorLeaveCreate) SetStartDate(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *DoctorLeaveCreate) SetEndDate(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DoctorLeaveCreate) SetReason(v string) *DoctorLeaveCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableReason(v *string) *DoctorLeaveCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetIsApproved sets the "is_approved" field.
func (_c *DoctorLeaveCreate) SetIsApproved(v bool) *DoctorLeaveCreate {
	_c.mutation.SetIsApproved(v)
	return _c
}

// SetNillableIsApproved sets the "is_approved" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableIsApproved(v *bool) *DoctorLeaveCreate {
	if v != nil {
		_c.SetIsApproved(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorLeaveCreate) SetID(v uuid.UUID) *DoctorLeaveCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableID(v *uuid.UUID) *DoctorLeaveCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *DoctorLeaveCreate) SetDoctor(v *Doctor) *DoctorLeaveCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_c *DoctorLeaveCreate) Mutation() *DoctorLeaveMutation {
	return _c.mutation
}

// Save creates the DoctorLeave in the database.
func (_c *DoctorLeaveCreate) Save(ctx context.Context) (*DoctorLeave, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorLeaveCreate) SaveX(ctx context.Context) *DoctorLeave {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorLeaveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorLeaveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorLeaveCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorleave.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsApproved(); !ok {
		v := doctorleave.DefaultIsApproved
		_c.mutation.SetIsApproved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorleave.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorLeaveCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorLeave.created_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorLeave.doctor_id"`)}
	}
	if _, ok := _c.mutation.LeaveType(); !ok {
		return &ValidationError{Name: "leave_type", err: errors.New(`repo: missing required field "DoctorLeave.leave_type"`)}
	}
	if v, ok := _c.mutation.LeaveType(); ok {
		if err := doctorleave.LeaveTypeValidator(v); err != nil {
			return &ValidationError{Name: "leave_type", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.leave_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "DoctorLeave.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`repo: missing required field "DoctorLeave.end_date"`)}
	}
	if _, ok := _c.mutation.IsApproved(); !ok {
		return &ValidationError{Name: "is_approved", err: errors.New(`repo: missing required field "DoctorLeave.is_approved"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "DoctorLeave.doctor"`)}
	}
	return nil
}

func (_c *DoctorLeaveCreate) sqlSave(ctx context.Context) (*DoctorLeave, error) {
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

func (_c *DoctorLeaveCreate) createSpec() (*DoctorLeave, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorLeave{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorleave.Table, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorleave.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LeaveType(); ok {
		_spec.SetField(doctorleave.FieldLeaveType, field.TypeEnum, value)
		_node.LeaveType = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.IsApproved(); ok {
		_spec.SetField(doctorleave.FieldIsApproved, field.TypeBool, value)
		_node.IsApproved = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctorleave.DoctorTable,
			Columns: []string{doctorleave.DoctorColumn},
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

// DoctorLeaveCreateBulk is the builder for creating many DoctorLeave entities in bulk.
type DoctorLeaveCreateBulk struct {
	config
	err      error
	builders []*DoctorLeaveCreate
}

// Save creates the DoctorLeave entities in the database.
func (_c *DoctorLeaveCreateBulk) Save(ctx context.Context) ([]*DoctorLeave, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorLeave, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorLeaveMutation)
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
func (_c *DoctorLeaveCreateBulk) SaveX(ctx context.Context) []*DoctorLeave {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorLeaveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorLeaveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
