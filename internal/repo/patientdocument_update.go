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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// PatientDocumentUpdate is the builder for updating PatientDocument entities.
type PatientDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdate) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdate) SetPatientID(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PatientDocumentUpdate) SetDocumentType(v patientdocument.DocumentType) *PatientDocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableDocumentType(v *patientdocument.DocumentType) *PatientDocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PatientDocumentUpdate) SetTitle(v string) *PatientDocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableTitle(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PatientDocumentUpdate) SetFileKey(v string) *PatientDocumentUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFileKey(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatientDocumentUpdate) SetDescription(v string) *PatientDocumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableDescription(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PatientDocumentUpdate) ClearDescription() *PatientDocumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUploadedByID sets the "uploaded_by_id" field.
func (_u *PatientDocumentUpdate) SetUploadedByID(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetUploadedByID(v)
	return _u
}

// SetNillableUploadedByID sets the "uploaded_by_id" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableUploadedByID(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetUploadedByID(*v)
	}
	return _u
}

// SetIsSensitive sets the "is_sensitive" field.
func (_u *PatientDocumentUpdate) SetIsSensitive(v bool) *PatientDocumentUpdate {
	_u.mutation.SetIsSensitive(v)
	return _u
}

// SetNillableIsSensitive sets the "is_sensitive" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableIsSensitive(v *bool) *PatientDocumentUpdate {
	if v != nil {
		_u.SetIsSensitive(*v)
	}
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *PatientDocumentUpdate) SetExpiryDate(v time.Time) *PatientDocumentUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableExpiryDate(v *time.Time) *PatientDocumentUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *PatientDocumentUpdate) ClearExpiryDate() *PatientDocumentUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) SetPatient(v *Patient) *PatientDocumentUpdate {
	return _u.SetPatientID(v.ID)
}

// SetUploadedBy sets the "uploaded_by" edge to the User entity.
func (_u *PatientDocumentUpdate) SetUploadedBy(v *User) *PatientDocumentUpdate {
	return _u.SetUploadedByID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdate) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) ClearPatient() *PatientDocumentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearUploadedBy clears the "uploaded_by" edge to the User entity.
func (_u *PatientDocumentUpdate) ClearUploadedBy() *PatientDocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := patientdocument.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := patientdocument.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	if _u.mutation.UploadedByCleared() && len(_u.mutation.UploadedByIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.uploaded_by"`)
	}
	return nil
}

func (_u *PatientDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(patientdocument.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(patientdocument.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(patientdocument.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsSensitive(); ok {
		_spec.SetField(patientdocument.FieldIsSensitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(patientdocument.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(patientdocument.FieldExpiryDate, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
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
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
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
	if _u.mutation.UploadedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientdocument.UploadedByTable,
			Columns: []string{patientdocument.UploadedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientdocument.UploadedByTable,
			Columns: []string{patientdocument.UploadedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientDocumentUpdateOne is the builder for updating a single PatientDocument entity.
type PatientDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdateOne) SetPatientID(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *PatientDocumentUpdateOne) SetDocumentType(v patientdocument.DocumentType) *PatientDocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableDocumentType(v *patientdocument.DocumentType) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PatientDocumentUpdateOne) SetTitle(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableTitle(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PatientDocumentUpdateOne) SetFileKey(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFileKey(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatientDocumentUpdateOne) SetDescription(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableDescription(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PatientDocumentUpdateOne) ClearDescription() *PatientDocumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUploadedByID sets the "uploaded_by_id" field.
func (_u *PatientDocumentUpdateOne) SetUploadedByID(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetUploadedByID(v)
	return _u
}

// SetNillableUploadedByID sets the "uploaded_by_id" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableUploadedByID(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedByID(*v)
	}
	return _u
}

// SetIsSensitive sets the "is_sensitive" field.
func (_u *PatientDocumentUpdateOne) SetIsSensitive(v bool) *PatientDocumentUpdateOne {
	_u.mutation.SetIsSensitive(v)
	return _u
}

// SetNillableIsSensitive sets the "is_sensitive" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableIsSensitive(v *bool) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetIsSensitive(*v)
	}
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *PatientDocumentUpdateOne) SetExpiryDate(v time.Time) *PatientDocumentUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableExpiryDate(v *time.Time) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *PatientDocumentUpdateOne) ClearExpiryDate() *PatientDocumentUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) SetPatient(v *Patient) *PatientDocumentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetUploadedBy sets the "uploaded_by" edge to the User entity.
func (_u *PatientDocumentUpdateOne) SetUploadedBy(v *User) *PatientDocumentUpdateOne {
	return _u.SetUploadedByID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdateOne) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) ClearPatient() *PatientDocumentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearUploadedBy clears the "uploaded_by" edge to the User entity.
func (_u *PatientDocumentUpdateOne) ClearUploadedBy() *PatientDocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdateOne) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientDocumentUpdateOne) Select(field string, fields ...string) *PatientDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientDocument entity.
func (_u *PatientDocumentUpdateOne) Save(ctx context.Context) (*PatientDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) SaveX(ctx context.Context) *PatientDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := patientdocument.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := patientdocument.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	if _u.mutation.UploadedByCleared() && len(_u.mutation.UploadedByIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.uploaded_by"`)
	}
	return nil
}

func (_u *PatientDocumentUpdateOne) sqlSave(ctx context.Context) (_node *PatientDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientdocument.FieldID)
		for _, f := range fields {
			if !patientdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientdocument.FieldID {
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
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(patientdocument.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(patientdocument.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(patientdocument.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsSensitive(); ok {
		_spec.SetField(patientdocument.FieldIsSensitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(patientdocument.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(patientdocument.FieldExpiryDate, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
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
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
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
	if _u.mutation.UploadedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientdocument.UploadedByTable,
			Columns: []string{patientdocument.UploadedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientdocument.UploadedByTable,
			Columns: []string{patientdocument.UploadedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
