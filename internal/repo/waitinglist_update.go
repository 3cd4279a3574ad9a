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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

// WaitingListUpdate is the builder for updating WaitingList entities.
type WaitingListUpdate struct {
	config
	hooks    []Hook
	mutation *WaitingListMutation
}

// Where appends a list predicates to the WaitingListUpdate builder.
func (_u *WaitingListUpdate) Where(ps ...predicate.WaitingList) *WaitingListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *WaitingListUpdate) SetPatientID(v uuid.UUID) *WaitingListUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillablePatientID(v *uuid.UUID) *WaitingListUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WaitingListUpdate) SetDoctorID(v uuid.UUID) *WaitingListUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableDoctorID(v *uuid.UUID) *WaitingListUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *WaitingListUpdate) SetServiceID(v uuid.UUID) *WaitingListUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableServiceID(v *uuid.UUID) *WaitingListUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *WaitingListUpdate) ClearServiceID() *WaitingListUpdate {
	_u.mutation.ClearServiceID()
	return _u
}

// SetPreferredDate sets the "preferred_date" field.
func (_u *WaitingListUpdate) SetPreferredDate(v time.Time) *WaitingListUpdate {
	_u.mutation.SetPreferredDate(v)
	return _u
}

// SetNillablePreferredDate sets the "preferred_date" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillablePreferredDate(v *time.Time) *WaitingListUpdate {
	if v != nil {
		_u.SetPreferredDate(*v)
	}
	return _u
}

// ClearPreferredDate clears the value of the "preferred_date" field.
func (_u *WaitingListUpdate) ClearPreferredDate() *WaitingListUpdate {
	_u.mutation.ClearPreferredDate()
	return _u
}

// SetPreferredTime sets the "preferred_time" field.
func (_u *WaitingListUpdate) SetPreferredTime(v string) *WaitingListUpdate {
	_u.mutation.SetPreferredTime(v)
	return _u
}

// SetNillablePreferredTime sets the "preferred_time" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillablePreferredTime(v *string) *WaitingListUpdate {
	if v != nil {
		_u.SetPreferredTime(*v)
	}
	return _u
}

// ClearPreferredTime clears the value of the "preferred_time" field.
func (_u *WaitingListUpdate) ClearPreferredTime() *WaitingListUpdate {
	_u.mutation.ClearPreferredTime()
	return _u
}

// SetEarliestDate sets the "earliest_date" field.
func (_u *WaitingListUpdate) SetEarliestDate(v time.Time) *WaitingListUpdate {
	_u.mutation.SetEarliestDate(v)
	return _u
}

// SetNillableEarliestDate sets the "earliest_date" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableEarliestDate(v *time.Time) *WaitingListUpdate {
	if v != nil {
		_u.SetEarliestDate(*v)
	}
	return _u
}

// SetLatestDate sets the "latest_date" field.
func (_u *WaitingListUpdate) SetLatestDate(v time.Time) *WaitingListUpdate {
	_u.mutation.SetLatestDate(v)
	return _u
}

// SetNillableLatestDate sets the "latest_date" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableLatestDate(v *time.Time) *WaitingListUpdate {
	if v != nil {
		_u.SetLatestDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WaitingListUpdate) SetNotes(v string) *WaitingListUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableNotes(v *string) *WaitingListUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *WaitingListUpdate) ClearNotes() *WaitingListUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WaitingListUpdate) SetIsActive(v bool) *WaitingListUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableIsActive(v *bool) *WaitingListUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNotified sets the "notified" field.
func (_u *WaitingListUpdate) SetNotified(v bool) *WaitingListUpdate {
	_u.mutation.SetNotified(v)
	return _u
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_u *WaitingListUpdate) SetNillableNotified(v *bool) *WaitingListUpdate {
	if v != nil {
		_u.SetNotified(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *WaitingListUpdate) SetPatient(v *Patient) *WaitingListUpdate {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *WaitingListUpdate) SetDoctor(v *Doctor) *WaitingListUpdate {
	return _u.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *WaitingListUpdate) SetService(v *Service) *WaitingListUpdate {
	return _u.SetServiceID(v.ID)
}

// Mutation returns the WaitingListMutation object of the builder.
func (_u *WaitingListUpdate) Mutation() *WaitingListMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *WaitingListUpdate) ClearPatient() *WaitingListUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *WaitingListUpdate) ClearDoctor() *WaitingListUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *WaitingListUpdate) ClearService() *WaitingListUpdate {
	_u.mutation.ClearService()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WaitingListUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaitingListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WaitingListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaitingListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaitingListUpdate) check() error {
	if v, ok := _u.mutation.PreferredTime(); ok {
		if err := waitinglist.PreferredTimeValidator(v); err != nil {
			return &ValidationError{Name: "preferred_time", err: fmt.Errorf(`repo: validator failed for field "WaitingList.preferred_time": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WaitingList.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WaitingList.doctor"`)
	}
	return nil
}

func (_u *WaitingListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waitinglist.Table, waitinglist.Columns, sqlgraph.NewFieldSpec(waitinglist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PreferredDate(); ok {
		_spec.SetField(waitinglist.FieldPreferredDate, field.TypeTime, value)
	}
	if _u.mutation.PreferredDateCleared() {
		_spec.ClearField(waitinglist.FieldPreferredDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredTime(); ok {
		_spec.SetField(waitinglist.FieldPreferredTime, field.TypeString, value)
	}
	if _u.mutation.PreferredTimeCleared() {
		_spec.ClearField(waitinglist.FieldPreferredTime, field.TypeString)
	}
	if value, ok := _u.mutation.EarliestDate(); ok {
		_spec.SetField(waitinglist.FieldEarliestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatestDate(); ok {
		_spec.SetField(waitinglist.FieldLatestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(waitinglist.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(waitinglist.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(waitinglist.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notified(); ok {
		_spec.SetField(waitinglist.FieldNotified, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.PatientTable,
			Columns: []string{waitinglist.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.PatientTable,
			Columns: []string{waitinglist.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.DoctorTable,
			Columns: []string{waitinglist.DoctorColumn},
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
			Inverse: false,
			Table:   waitinglist.DoctorTable,
			Columns: []string{waitinglist.DoctorColumn},
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
	if _u.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.ServiceTable,
			Columns: []string{waitinglist.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.ServiceTable,
			Columns: []string{waitinglist.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waitinglist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WaitingListUpdateOne is the builder for updating a single WaitingList entity.
type WaitingListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WaitingListMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *WaitingListUpdateOne) SetPatientID(v uuid.UUID) *WaitingListUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillablePatientID(v *uuid.UUID) *WaitingListUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WaitingListUpdateOne) SetDoctorID(v uuid.UUID) *WaitingListUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableDoctorID(v *uuid.UUID) *WaitingListUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *WaitingListUpdateOne) SetServiceID(v uuid.UUID) *WaitingListUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableServiceID(v *uuid.UUID) *WaitingListUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *WaitingListUpdateOne) ClearServiceID() *WaitingListUpdateOne {
	_u.mutation.ClearServiceID()
	return _u
}

// SetPreferredDate sets the "preferred_date" field.
func (_u *WaitingListUpdateOne) SetPreferredDate(v time.Time) *WaitingListUpdateOne {
	_u.mutation.SetPreferredDate(v)
	return _u
}

// SetNillablePreferredDate sets the "preferred_date" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillablePreferredDate(v *time.Time) *WaitingListUpdateOne {
	if v != nil {
		_u.SetPreferredDate(*v)
	}
	return _u
}

// ClearPreferredDate clears the value of the "preferred_date" field.
func (_u *WaitingListUpdateOne) ClearPreferredDate() *WaitingListUpdateOne {
	_u.mutation.ClearPreferredDate()
	return _u
}

// SetPreferredTime sets the "preferred_time" field.
func (_u *WaitingListUpdateOne) SetPreferredTime(v string) *WaitingListUpdateOne {
	_u.mutation.SetPreferredTime(v)
	return _u
}

// SetNillablePreferredTime sets the "preferred_time" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillablePreferredTime(v *string) *WaitingListUpdateOne {
	if v != nil {
		_u.SetPreferredTime(*v)
	}
	return _u
}

// ClearPreferredTime clears the value of the "preferred_time" field.
func (_u *WaitingListUpdateOne) ClearPreferredTime() *WaitingListUpdateOne {
	_u.mutation.ClearPreferredTime()
	return _u
}

// SetEarliestDate sets the "earliest_date" field.
func (_u *WaitingListUpdateOne) SetEarliestDate(v time.Time) *WaitingListUpdateOne {
	_u.mutation.SetEarliestDate(v)
	return _u
}

// SetNillableEarliestDate sets the "earliest_date" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableEarliestDate(v *time.Time) *WaitingListUpdateOne {
	if v != nil {
		_u.SetEarliestDate(*v)
	}
	return _u
}

// SetLatestDate sets the "latest_date" field.
func (_u *WaitingListUpdateOne) SetLatestDate(v time.Time) *WaitingListUpdateOne {
	_u.mutation.SetLatestDate(v)
	return _u
}

// SetNillableLatestDate sets the "latest_date" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableLatestDate(v *time.Time) *WaitingListUpdateOne {
	if v != nil {
		_u.SetLatestDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WaitingListUpdateOne) SetNotes(v string) *WaitingListUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableNotes(v *string) *WaitingListUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *WaitingListUpdateOne) ClearNotes() *WaitingListUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WaitingListUpdateOne) SetIsActive(v bool) *WaitingListUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableIsActive(v *bool) *WaitingListUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNotified sets the "notified" field.
func (_u *WaitingListUpdateOne) SetNotified(v bool) *WaitingListUpdateOne {
	_u.mutation.SetNotified(v)
	return _u
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_u *WaitingListUpdateOne) SetNillableNotified(v *bool) *WaitingListUpdateOne {
	if v != nil {
		_u.SetNotified(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *WaitingListUpdateOne) SetPatient(v *Patient) *WaitingListUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *WaitingListUpdateOne) SetDoctor(v *Doctor) *WaitingListUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *WaitingListUpdateOne) SetService(v *Service) *WaitingListUpdateOne {
	return _u.SetServiceID(v.ID)
}

// Mutation returns the WaitingListMutation object of the builder.
func (_u *WaitingListUpdateOne) Mutation() *WaitingListMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *WaitingListUpdateOne) ClearPatient() *WaitingListUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *WaitingListUpdateOne) ClearDoctor() *WaitingListUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *WaitingListUpdateOne) ClearService() *WaitingListUpdateOne {
	_u.mutation.ClearService()
	return _u
}

// Where appends a list predicates to the WaitingListUpdate builder.
func (_u *WaitingListUpdateOne) Where(ps ...predicate.WaitingList) *WaitingListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WaitingListUpdateOne) Select(field string, fields ...string) *WaitingListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WaitingList entity.
func (_u *WaitingListUpdateOne) Save(ctx context.Context) (*WaitingList, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaitingListUpdateOne) SaveX(ctx context.Context) *WaitingList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WaitingListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaitingListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaitingListUpdateOne) check() error {
	if v, ok := _u.mutation.PreferredTime(); ok {
		if err := waitinglist.PreferredTimeValidator(v); err != nil {
			return &ValidationError{Name: "preferred_time", err: fmt.Errorf(`repo: validator failed for field "WaitingList.preferred_time": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WaitingList.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "WaitingList.doctor"`)
	}
	return nil
}

func (_u *WaitingListUpdateOne) sqlSave(ctx context.Context) (_node *WaitingList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waitinglist.Table, waitinglist.Columns, sqlgraph.NewFieldSpec(waitinglist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WaitingList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, waitinglist.FieldID)
		for _, f := range fields {
			if !waitinglist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != waitinglist.FieldID {
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
	if value, ok := _u.mutation.PreferredDate(); ok {
		_spec.SetField(waitinglist.FieldPreferredDate, field.TypeTime, value)
	}
	if _u.mutation.PreferredDateCleared() {
		_spec.ClearField(waitinglist.FieldPreferredDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredTime(); ok {
		_spec.SetField(waitinglist.FieldPreferredTime, field.TypeString, value)
	}
	if _u.mutation.PreferredTimeCleared() {
		_spec.ClearField(waitinglist.FieldPreferredTime, field.TypeString)
	}
	if value, ok := _u.mutation.EarliestDate(); ok {
		_spec.SetField(waitinglist.FieldEarliestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatestDate(); ok {
		_spec.SetField(waitinglist.FieldLatestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(waitinglist.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(waitinglist.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(waitinglist.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notified(); ok {
		_spec.SetField(waitinglist.FieldNotified, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.PatientTable,
			Columns: []string{waitinglist.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.PatientTable,
			Columns: []string{waitinglist.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.DoctorTable,
			Columns: []string{waitinglist.DoctorColumn},
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
			Inverse: false,
			Table:   waitinglist.DoctorTable,
			Columns: []string{waitinglist.DoctorColumn},
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
	if _u.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.ServiceTable,
			Columns: []string{waitinglist.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.ServiceTable,
			Columns: []string{waitinglist.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WaitingList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waitinglist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
