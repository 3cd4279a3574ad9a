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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// AppointmentRescheduleUpdate is the builder for updating AppointmentReschedule entities.
type AppointmentRescheduleUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentRescheduleMutation
}

// Where appends a list predicates to the AppointmentRescheduleUpdate builder.
func (_u *AppointmentRescheduleUpdate) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRescheduleUpdate) SetAppointmentID(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldStartTime sets the "old_start_time" field.
func (_u *AppointmentRescheduleUpdate) SetOldStartTime(v time.Time) *AppointmentRescheduleUpdate {
	_u.mutation.SetOldStartTime(v)
	return _u
}

// SetNillableOldStartTime sets the "old_start_time" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableOldStartTime(v *time.Time) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetOldStartTime(*v)
	}
	return _u
}

// SetNewStartTime sets the "new_start_time" field.
func (_u *AppointmentRescheduleUpdate) SetNewStartTime(v time.Time) *AppointmentRescheduleUpdate {
	_u.mutation.SetNewStartTime(v)
	return _u
}

// SetNillableNewStartTime sets the "new_start_time" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableNewStartTime(v *time.Time) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetNewStartTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentRescheduleUpdate) SetReason(v string) *AppointmentRescheduleUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableReason(v *string) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentRescheduleUpdate) ClearReason() *AppointmentRescheduleUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetRescheduledByID sets the "rescheduled_by_id" field.
func (_u *AppointmentRescheduleUpdate) SetRescheduledByID(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetRescheduledByID(v)
	return _u
}

// SetNillableRescheduledByID sets the "rescheduled_by_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableRescheduledByID(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetRescheduledByID(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *AppointmentRescheduleUpdate) SetAppointment(v *Appointment) *AppointmentRescheduleUpdate {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the AppointmentRescheduleMutation object of the builder.
func (_u *AppointmentRescheduleUpdate) Mutation() *AppointmentRescheduleMutation {
	return _u.mutation
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *AppointmentRescheduleUpdate) ClearAppointment() *AppointmentRescheduleUpdate {
	_u.mutation.ClearAppointment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentRescheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentRescheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRescheduleUpdate) check() error {
	if _u.mutation.AppointmentCleared() && len(_u.mutation.AppointmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AppointmentReschedule.appointment"`)
	}
	return nil
}

func (_u *AppointmentRescheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentreschedule.Table, appointmentreschedule.Columns, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OldStartTime(); ok {
		_spec.SetField(appointmentreschedule.FieldOldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NewStartTime(); ok {
		_spec.SetField(appointmentreschedule.FieldNewStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointmentreschedule.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointmentreschedule.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RescheduledByID(); ok {
		_spec.SetField(appointmentreschedule.FieldRescheduledByID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmentreschedule.AppointmentTable,
			Columns: []string{appointmentreschedule.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmentreschedule.AppointmentTable,
			Columns: []string{appointmentreschedule.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentreschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentRescheduleUpdateOne is the builder for updating a single AppointmentReschedule entity.
type AppointmentRescheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentRescheduleMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRescheduleUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldStartTime sets the "old_start_time" field.
func (_u *AppointmentRescheduleUpdateOne) SetOldStartTime(v time.Time) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetOldStartTime(v)
	return _u
}

// SetNillableOldStartTime sets the "old_start_time" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableOldStartTime(v *time.Time) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetOldStartTime(*v)
	}
	return _u
}

// SetNewStartTime sets the "new_start_time" field.
func (_u *AppointmentRescheduleUpdateOne) SetNewStartTime(v time.Time) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetNewStartTime(v)
	return _u
}

// SetNillableNewStartTime sets the "new_start_time" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableNewStartTime(v *time.Time) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetNewStartTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentRescheduleUpdateOne) SetReason(v string) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableReason(v *string) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentRescheduleUpdateOne) ClearReason() *AppointmentRescheduleUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetRescheduledByID sets the "rescheduled_by_id" field.
func (_u *AppointmentRescheduleUpdateOne) SetRescheduledByID(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetRescheduledByID(v)
	return _u
}

// SetNillableRescheduledByID sets the "rescheduled_by_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableRescheduledByID(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetRescheduledByID(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *AppointmentRescheduleUpdateOne) SetAppointment(v *Appointment) *AppointmentRescheduleUpdateOne {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the AppointmentRescheduleMutation object of the builder.
func (_u *AppointmentRescheduleUpdateOne) Mutation() *AppointmentRescheduleMutation {
	return _u.mutation
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *AppointmentRescheduleUpdateOne) ClearAppointment() *AppointmentRescheduleUpdateOne {
	_u.mutation.ClearAppointment()
	return _u
}

// Where appends a list predicates to the AppointmentRescheduleUpdate builder.
func (_u *AppointmentRescheduleUpdateOne) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentRescheduleUpdateOne) Select(field string, fields ...string) *AppointmentRescheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentReschedule entity.
func (_u *AppointmentRescheduleUpdateOne) Save(ctx context.Context) (*AppointmentReschedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdateOne) SaveX(ctx context.Context) *AppointmentReschedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentRescheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRescheduleUpdateOne) check() error {
	if _u.mutation.AppointmentCleared() && len(_u.mutation.AppointmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AppointmentReschedule.appointment"`)
	}
	return nil
}

func (_u *AppointmentRescheduleUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentReschedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentreschedule.Table, appointmentreschedule.Columns, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentReschedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentreschedule.FieldID)
		for _, f := range fields {
			if !appointmentreschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentreschedule.FieldID {
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
	if value, ok := _u.mutation.OldStartTime(); ok {
		_spec.SetField(appointmentreschedule.FieldOldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NewStartTime(); ok {
		_spec.SetField(appointmentreschedule.FieldNewStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointmentreschedule.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointmentreschedule.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RescheduledByID(); ok {
		_spec.SetField(appointmentreschedule.FieldRescheduledByID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmentreschedule.AppointmentTable,
			Columns: []string{appointmentreschedule.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmentreschedule.AppointmentTable,
			Columns: []string{appointmentreschedule.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AppointmentReschedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentreschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
