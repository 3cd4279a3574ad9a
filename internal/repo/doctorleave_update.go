// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// DoctorLeaveUpdate is the builder for updating DoctorLeave entities.
type DoctorLeaveUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorLeaveMutation
}

// Where appends a list predicates to the DoctorLeaveUpdate builder.
func (_u *DoctorLeaveUpdate) Where(ps ...predicate.DoctorLeave) *DoctorLeaveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorLeaveUpdate) SetDoctorID(v uuid.UUID) *DoctorLeaveUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetLeaveType sets the "leave_type" field.
func (_u *DoctorLeaveUpdate) SetLeaveType(v doctorleave.LeaveType) *DoctorLeaveUpdate {
	_u.mutation.SetLeaveType(v)
	return _u
}

// SetNillableLeaveType sets the "leave_type" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableLeaveType(v *doctorleave.LeaveType) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetLeaveType(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *DoctorLeaveUpdate) SetStartDate(v time.Time) *DoctorLeaveUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableStartDate(v *time.Time) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *DoctorLeaveUpdate) SetEndDate(v time.Time) *DoctorLeaveUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableEndDate(v *time.Time) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorLeaveUpdate) SetReason(v string) *DoctorLeaveUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableReason(v *string) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DoctorLeaveUpdate) ClearReason() *DoctorLeaveUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetIsApproved sets the "is_approved" field.
func (_u *DoctorLeaveUpdate) SetIsApproved(v bool) *DoctorLeaveUpdate {
	_u.mutation.SetIsApproved(v)
	return _u
}

// SetNillableIsApproved sets the "is_approved" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableIsApproved(v *bool) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetIsApproved(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdate) SetDoctor(v *Doctor) *DoctorLeaveUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_u *DoctorLeaveUpdate) Mutation() *DoctorLeaveMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdate) ClearDoctor() *DoctorLeaveUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorLeaveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorLeaveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorLeaveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorLeaveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorLeaveUpdate) check() error {
	if v, ok := _u.mutation.LeaveType(); ok {
		if err := doctorleave.LeaveTypeValidator(v); err != nil {
			return &ValidationError{Name: "leave_type", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.leave_type": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorLeave.doctor"`)
	}
	return nil
}

func (_u *DoctorLeaveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorleave.Table, doctorleave.Columns, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeaveType(); ok {
		_spec.SetField(doctorleave.FieldLeaveType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(doctorleave.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsApproved(); ok {
		_spec.SetField(doctorleave.FieldIsApproved, field.TypeBool, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorleave.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorLeaveUpdateOne is the builder for updating a single DoctorLeave entity.
type DoctorLeaveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorLeaveMutation
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorLeaveUpdateOne) SetDoctorID(v uuid.UUID) *DoctorLeaveUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetLeaveType sets the "leave_type" field.
func (_u *DoctorLeaveUpdateOne) SetLeaveType(v doctorleave.LeaveType) *DoctorLeaveUpdateOne {
	_u.mutation.SetLeaveType(v)
	return _u
}

// SetNillableLeaveType sets the "leave_type" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableLeaveType(v *doctorleave.LeaveType) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetLeaveType(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *DoctorLeaveUpdateOne) SetStartDate(v time.Time) *DoctorLeaveUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableStartDate(v *time.Time) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *DoctorLeaveUpdateOne) SetEndDate(v time.Time) *DoctorLeaveUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableEndDate(v *time.Time) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorLeaveUpdateOne) SetReason(v string) *DoctorLeaveUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableReason(v *string) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DoctorLeaveUpdateOne) ClearReason() *DoctorLeaveUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetIsApproved sets the "is_approved" field.
func (_u *DoctorLeaveUpdateOne) SetIsApproved(v bool) *DoctorLeaveUpdateOne {
	_u.mutation.SetIsApproved(v)
	return _u
}

// SetNillableIsApproved sets the "is_approved" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableIsApproved(v *bool) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetIsApproved(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdateOne) SetDoctor(v *Doctor) *DoctorLeaveUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_u *DoctorLeaveUpdateOne) Mutation() *DoctorLeaveMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdateOne) ClearDoctor() *DoctorLeaveUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the DoctorLeaveUpdate builder.
func (_u *DoctorLeaveUpdateOne) Where(ps ...predicate.DoctorLeave) *DoctorLeaveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorLeaveUpdateOne) Select(field string, fields ...string) *DoctorLeaveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorLeave entity.
func (_u *DoctorLeaveUpdateOne) Save(ctx context.Context) (*DoctorLeave, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorLeaveUpdateOne) SaveX(ctx context.Context) *DoctorLeave {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorLeaveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorLeaveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorLeaveUpdateOne) check() error {
	if v, ok := _u.mutation.LeaveType(); ok {
		if err := doctorleave.LeaveTypeValidator(v); err != nil {
			return &ValidationError{Name: "leave_type", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.leave_type": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorLeave.doctor"`)
	}
	return nil
}

func (_u *DoctorLeaveUpdateOne) sqlSave(ctx context.Context) (_node *DoctorLeave, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorleave.Table, doctorleave.Columns, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorLeave.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorleave.FieldID)
		for _, f := range fields {
			if !doctorleave.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorleave.FieldID {
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
	if value, ok := _u.mutation.LeaveType(); ok {
		_spec.SetField(doctorleave.FieldLeaveType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(doctorleave.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.IsApproved(); ok {
		_spec.SetField(doctorleave.FieldIsApproved, field.TypeBool, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoctorLeave{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorleave.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
