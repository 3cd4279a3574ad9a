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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// MedicalHistoryUpdate is the builder for updating MedicalHistory entities.
type MedicalHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdate) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdate) SetUpdatedAt(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdate) SetPatientID(v uuid.UUID) *MedicalHistoryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetConditionType sets the "condition_type" field.
func (_u *MedicalHistoryUpdate) SetConditionType(v medicalhistory.ConditionType) *MedicalHistoryUpdate {
	_u.mutation.SetConditionType(v)
	return _u
}

// SetNillableConditionType sets the "condition_type" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableConditionType(v *medicalhistory.ConditionType) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetConditionType(*v)
	}
	return _u
}

// SetConditionName sets the "condition_name" field.
func (_u *MedicalHistoryUpdate) SetConditionName(v string) *MedicalHistoryUpdate {
	_u.mutation.SetConditionName(v)
	return _u
}

// SetNillableConditionName sets the "condition_name" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableConditionName(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetConditionName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalHistoryUpdate) SetDescription(v string) *MedicalHistoryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDescription(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicalHistoryUpdate) ClearDescription() *MedicalHistoryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDateDiagnosed sets the "date_diagnosed" field.
func (_u *MedicalHistoryUpdate) SetDateDiagnosed(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetDateDiagnosed(v)
	return _u
}

// SetNillableDateDiagnosed sets the "date_diagnosed" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDateDiagnosed(v *time.Time) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDateDiagnosed(*v)
	}
	return _u
}

// ClearDateDiagnosed clears the value of the "date_diagnosed" field.
func (_u *MedicalHistoryUpdate) ClearDateDiagnosed() *MedicalHistoryUpdate {
	_u.mutation.ClearDateDiagnosed()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *MedicalHistoryUpdate) SetIsCurrent(v bool) *MedicalHistoryUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableIsCurrent(v *bool) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MedicalHistoryUpdate) SetSeverity(v medicalhistory.Severity) *MedicalHistoryUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableSeverity(v *medicalhistory.Severity) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *MedicalHistoryUpdate) ClearSeverity() *MedicalHistoryUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MedicalHistoryUpdate) SetNotes(v string) *MedicalHistoryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableNotes(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MedicalHistoryUpdate) ClearNotes() *MedicalHistoryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdate) SetPatient(v *Patient) *MedicalHistoryUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdate) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdate) ClearPatient() *MedicalHistoryUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalHistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdate) check() error {
	if v, ok := _u.mutation.ConditionType(); ok {
		if err := medicalhistory.ConditionTypeValidator(v); err != nil {
			return &ValidationError{Name: "condition_type", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConditionName(); ok {
		if err := medicalhistory.ConditionNameValidator(v); err != nil {
			return &ValidationError{Name: "condition_name", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := medicalhistory.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.severity": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalHistory.patient"`)
	}
	return nil
}

func (_u *MedicalHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConditionType(); ok {
		_spec.SetField(medicalhistory.FieldConditionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConditionName(); ok {
		_spec.SetField(medicalhistory.FieldConditionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalhistory.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicalhistory.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DateDiagnosed(); ok {
		_spec.SetField(medicalhistory.FieldDateDiagnosed, field.TypeTime, value)
	}
	if _u.mutation.DateDiagnosedCleared() {
		_spec.ClearField(medicalhistory.FieldDateDiagnosed, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(medicalhistory.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(medicalhistory.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(medicalhistory.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(medicalhistory.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
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
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalHistoryUpdateOne is the builder for updating a single MedicalHistory entity.
type MedicalHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdateOne) SetUpdatedAt(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdateOne) SetPatientID(v uuid.UUID) *MedicalHistoryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetConditionType sets the "condition_type" field.
func (_u *MedicalHistoryUpdateOne) SetConditionType(v medicalhistory.ConditionType) *MedicalHistoryUpdateOne {
	_u.mutation.SetConditionType(v)
	return _u
}

// SetNillableConditionType sets the "condition_type" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableConditionType(v *medicalhistory.ConditionType) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetConditionType(*v)
	}
	return _u
}

// SetConditionName sets the "condition_name" field.
func (_u *MedicalHistoryUpdateOne) SetConditionName(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetConditionName(v)
	return _u
}

// SetNillableConditionName sets the "condition_name" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableConditionName(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetConditionName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalHistoryUpdateOne) SetDescription(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDescription(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicalHistoryUpdateOne) ClearDescription() *MedicalHistoryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDateDiagnosed sets the "date_diagnosed" field.
func (_u *MedicalHistoryUpdateOne) SetDateDiagnosed(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetDateDiagnosed(v)
	return _u
}

// SetNillableDateDiagnosed sets the "date_diagnosed" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDateDiagnosed(v *time.Time) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDateDiagnosed(*v)
	}
	return _u
}

// ClearDateDiagnosed clears the value of the "date_diagnosed" field.
func (_u *MedicalHistoryUpdateOne) ClearDateDiagnosed() *MedicalHistoryUpdateOne {
	_u.mutation.ClearDateDiagnosed()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *MedicalHistoryUpdateOne) SetIsCurrent(v bool) *MedicalHistoryUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableIsCurrent(v *bool) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MedicalHistoryUpdateOne) SetSeverity(v medicalhistory.Severity) *MedicalHistoryUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableSeverity(v *medicalhistory.Severity) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *MedicalHistoryUpdateOne) ClearSeverity() *MedicalHistoryUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MedicalHistoryUpdateOne) SetNotes(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableNotes(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MedicalHistoryUpdateOne) ClearNotes() *MedicalHistoryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdateOne) SetPatient(v *Patient) *MedicalHistoryUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdateOne) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdateOne) ClearPatient() *MedicalHistoryUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdateOne) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalHistoryUpdateOne) Select(field string, fields ...string) *MedicalHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalHistory entity.
func (_u *MedicalHistoryUpdateOne) Save(ctx context.Context) (*MedicalHistory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) SaveX(ctx context.Context) *MedicalHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.ConditionType(); ok {
		if err := medicalhistory.ConditionTypeValidator(v); err != nil {
			return &ValidationError{Name: "condition_type", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConditionName(); ok {
		if err := medicalhistory.ConditionNameValidator(v); err != nil {
			return &ValidationError{Name: "condition_name", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := medicalhistory.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.severity": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalHistory.patient"`)
	}
	return nil
}

func (_u *MedicalHistoryUpdateOne) sqlSave(ctx context.Context) (_node *MedicalHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalhistory.FieldID)
		for _, f := range fields {
			if !medicalhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalhistory.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConditionType(); ok {
		_spec.SetField(medicalhistory.FieldConditionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConditionName(); ok {
		_spec.SetField(medicalhistory.FieldConditionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalhistory.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicalhistory.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DateDiagnosed(); ok {
		_spec.SetField(medicalhistory.FieldDateDiagnosed, field.TypeTime, value)
	}
	if _u.mutation.DateDiagnosedCleared() {
		_spec.ClearField(medicalhistory.FieldDateDiagnosed, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(medicalhistory.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(medicalhistory.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(medicalhistory.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(medicalhistory.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
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
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
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
	_node = &MedicalHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
