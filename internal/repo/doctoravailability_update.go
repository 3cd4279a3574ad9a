// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// DoctorAvailabilityUpdate is the builder for updating DoctorAvailability entities.
type DoctorAvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdate) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdate) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DoctorAvailabilityUpdate) SetDayOfWeek(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDayOfWeek(v *int8) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DoctorAvailabilityUpdate) AddDayOfWeek(v int8) *DoctorAvailabilityUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DoctorAvailabilityUpdate) SetStartTime(v string) *DoctorAvailabilityUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableStartTime(v *string) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DoctorAvailabilityUpdate) SetEndTime(v string) *DoctorAvailabilityUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableEndTime(v *string) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorAvailabilityUpdate) SetIsAvailable(v bool) *DoctorAvailabilityUpdate {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableIsAvailable(v *bool) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *DoctorAvailabilityUpdate) SetMaxPatients(v int) *DoctorAvailabilityUpdate {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableMaxPatients(v *int) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *DoctorAvailabilityUpdate) AddMaxPatients(v int) *DoctorAvailabilityUpdate {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorAvailabilityUpdate) SetDoctor(v *Doctor) *DoctorAvailabilityUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdate) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorAvailabilityUpdate) ClearDoctor() *DoctorAvailabilityUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorAvailabilityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorAvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := doctoravailability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := doctoravailability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := doctoravailability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := doctoravailability.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.max_patients": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorAvailability.doctor"`)
	}
	return nil
}

func (_u *DoctorAvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(doctoravailability.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(doctoravailability.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctoravailability.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(doctoravailability.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(doctoravailability.FieldMaxPatients, field.TypeInt, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorAvailabilityUpdateOne is the builder for updating a single DoctorAvailability entity.
type DoctorAvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdateOne) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DoctorAvailabilityUpdateOne) SetDayOfWeek(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDayOfWeek(v *int8) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DoctorAvailabilityUpdateOne) AddDayOfWeek(v int8) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DoctorAvailabilityUpdateOne) SetStartTime(v string) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableStartTime(v *string) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DoctorAvailabilityUpdateOne) SetEndTime(v string) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableEndTime(v *string) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorAvailabilityUpdateOne) SetIsAvailable(v bool) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableIsAvailable(v *bool) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *DoctorAvailabilityUpdateOne) SetMaxPatients(v int) *DoctorAvailabilityUpdateOne {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableMaxPatients(v *int) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *DoctorAvailabilityUpdateOne) AddMaxPatients(v int) *DoctorAvailabilityUpdateOne {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorAvailabilityUpdateOne) SetDoctor(v *Doctor) *DoctorAvailabilityUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdateOne) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorAvailabilityUpdateOne) ClearDoctor() *DoctorAvailabilityUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdateOne) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorAvailabilityUpdateOne) Select(field string, fields ...string) *DoctorAvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorAvailability entity.
func (_u *DoctorAvailabilityUpdateOne) Save(ctx context.Context) (*DoctorAvailability, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) SaveX(ctx context.Context) *DoctorAvailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorAvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := doctoravailability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := doctoravailability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := doctoravailability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := doctoravailability.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.max_patients": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorAvailability.doctor"`)
	}
	return nil
}

func (_u *DoctorAvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *DoctorAvailability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorAvailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctoravailability.FieldID)
		for _, f := range fields {
			if !doctoravailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctoravailability.FieldID {
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
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(doctoravailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(doctoravailability.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(doctoravailability.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctoravailability.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(doctoravailability.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(doctoravailability.FieldMaxPatients, field.TypeInt, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoctorAvailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
