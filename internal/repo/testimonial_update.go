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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
)

// TestimonialUpdate is the builder for updating Testimonial entities.
type TestimonialUpdate struct {
	config
	hooks    []Hook
	mutation *TestimonialMutation
}

// Where appends a list predicates to the TestimonialUpdate builder.
func (_u *TestimonialUpdate) Where(ps ...predicate.Testimonial) *TestimonialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestimonialUpdate) SetUpdatedAt(v time.Time) *TestimonialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TestimonialUpdate) SetPatientID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillablePatientID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TestimonialUpdate) SetContent(v string) *TestimonialUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableContent(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *TestimonialUpdate) SetRating(v int) *TestimonialUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableRating(v *int) *TestimonialUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TestimonialUpdate) AddRating(v int) *TestimonialUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestimonialUpdate) SetStatus(v testimonial.Status) *TestimonialUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableStatus(v *testimonial.Status) *TestimonialUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *TestimonialUpdate) SetServiceID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableServiceID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *TestimonialUpdate) ClearServiceID() *TestimonialUpdate {
	_u.mutation.ClearServiceID()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TestimonialUpdate) SetDoctorID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableDoctorID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *TestimonialUpdate) ClearDoctorID() *TestimonialUpdate {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *TestimonialUpdate) SetImageKey(v string) *TestimonialUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableImageKey(v *string) *TestimonialUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *TestimonialUpdate) ClearImageKey() *TestimonialUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *TestimonialUpdate) SetApprovedAt(v time.Time) *TestimonialUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableApprovedAt(v *time.Time) *TestimonialUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *TestimonialUpdate) ClearApprovedAt() *TestimonialUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetApprovedByID sets the "approved_by_id" field.
func (_u *TestimonialUpdate) SetApprovedByID(v uuid.UUID) *TestimonialUpdate {
	_u.mutation.SetApprovedByID(v)
	return _u
}

// SetNillableApprovedByID sets the "approved_by_id" field if the given value is not nil.
func (_u *TestimonialUpdate) SetNillableApprovedByID(v *uuid.UUID) *TestimonialUpdate {
	if v != nil {
		_u.SetApprovedByID(*v)
	}
	return _u
}

// ClearApprovedByID clears the value of the "approved_by_id" field.
func (_u *TestimonialUpdate) ClearApprovedByID() *TestimonialUpdate {
	_u.mutation.ClearApprovedByID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TestimonialUpdate) SetPatient(v *Patient) *TestimonialUpdate {
	return _u.SetPatientID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *TestimonialUpdate) SetService(v *Service) *TestimonialUpdate {
	return _u.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *TestimonialUpdate) SetDoctor(v *Doctor) *TestimonialUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the TestimonialMutation object of the builder.
func (_u *TestimonialUpdate) Mutation() *TestimonialMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TestimonialUpdate) ClearPatient() *TestimonialUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *TestimonialUpdate) ClearService() *TestimonialUpdate {
	_u.mutation.ClearService()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *TestimonialUpdate) ClearDoctor() *TestimonialUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestimonialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestimonialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestimonialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestimonialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestimonialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testimonial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestimonialUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := testimonial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "Testimonial.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := testimonial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Testimonial.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := testimonial.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Testimonial.image_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Testimonial.patient"`)
	}
	return nil
}

func (_u *TestimonialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testimonial.Table, testimonial.Columns, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(testimonial.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testimonial.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(testimonial.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(testimonial.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(testimonial.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(testimonial.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedByID(); ok {
		_spec.SetField(testimonial.FieldApprovedByID, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByIDCleared() {
		_spec.ClearField(testimonial.FieldApprovedByID, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.PatientTable,
			Columns: []string{testimonial.PatientColumn},
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
			Table:   testimonial.PatientTable,
			Columns: []string{testimonial.PatientColumn},
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
	if _u.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.ServiceTable,
			Columns: []string{testimonial.ServiceColumn},
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
			Table:   testimonial.ServiceTable,
			Columns: []string{testimonial.ServiceColumn},
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
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.DoctorTable,
			Columns: []string{testimonial.DoctorColumn},
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
			Table:   testimonial.DoctorTable,
			Columns: []string{testimonial.DoctorColumn},
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
			err = &NotFoundError{testimonial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestimonialUpdateOne is the builder for updating a single Testimonial entity.
type TestimonialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestimonialMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestimonialUpdateOne) SetUpdatedAt(v time.Time) *TestimonialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TestimonialUpdateOne) SetPatientID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillablePatientID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TestimonialUpdateOne) SetContent(v string) *TestimonialUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableContent(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *TestimonialUpdateOne) SetRating(v int) *TestimonialUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableRating(v *int) *TestimonialUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TestimonialUpdateOne) AddRating(v int) *TestimonialUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestimonialUpdateOne) SetStatus(v testimonial.Status) *TestimonialUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableStatus(v *testimonial.Status) *TestimonialUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *TestimonialUpdateOne) SetServiceID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableServiceID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *TestimonialUpdateOne) ClearServiceID() *TestimonialUpdateOne {
	_u.mutation.ClearServiceID()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TestimonialUpdateOne) SetDoctorID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *TestimonialUpdateOne) ClearDoctorID() *TestimonialUpdateOne {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *TestimonialUpdateOne) SetImageKey(v string) *TestimonialUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableImageKey(v *string) *TestimonialUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *TestimonialUpdateOne) ClearImageKey() *TestimonialUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *TestimonialUpdateOne) SetApprovedAt(v time.Time) *TestimonialUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableApprovedAt(v *time.Time) *TestimonialUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *TestimonialUpdateOne) ClearApprovedAt() *TestimonialUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetApprovedByID sets the "approved_by_id" field.
func (_u *TestimonialUpdateOne) SetApprovedByID(v uuid.UUID) *TestimonialUpdateOne {
	_u.mutation.SetApprovedByID(v)
	return _u
}

// SetNillableApprovedByID sets the "approved_by_id" field if the given value is not nil.
func (_u *TestimonialUpdateOne) SetNillableApprovedByID(v *uuid.UUID) *TestimonialUpdateOne {
	if v != nil {
		_u.SetApprovedByID(*v)
	}
	return _u
}

// ClearApprovedByID clears the value of the "approved_by_id" field.
func (_u *TestimonialUpdateOne) ClearApprovedByID() *TestimonialUpdateOne {
	_u.mutation.ClearApprovedByID()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TestimonialUpdateOne) SetPatient(v *Patient) *TestimonialUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *TestimonialUpdateOne) SetService(v *Service) *TestimonialUpdateOne {
	return _u.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *TestimonialUpdateOne) SetDoctor(v *Doctor) *TestimonialUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the TestimonialMutation object of the builder.
func (_u *TestimonialUpdateOne) Mutation() *TestimonialMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TestimonialUpdateOne) ClearPatient() *TestimonialUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *TestimonialUpdateOne) ClearService() *TestimonialUpdateOne {
	_u.mutation.ClearService()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *TestimonialUpdateOne) ClearDoctor() *TestimonialUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the TestimonialUpdate builder.
func (_u *TestimonialUpdateOne) Where(ps ...predicate.Testimonial) *TestimonialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestimonialUpdateOne) Select(field string, fields ...string) *TestimonialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Testimonial entity.
func (_u *TestimonialUpdateOne) Save(ctx context.Context) (*Testimonial, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestimonialUpdateOne) SaveX(ctx context.Context) *Testimonial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestimonialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestimonialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestimonialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testimonial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestimonialUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := testimonial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "Testimonial.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := testimonial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Testimonial.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := testimonial.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Testimonial.image_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Testimonial.patient"`)
	}
	return nil
}

func (_u *TestimonialUpdateOne) sqlSave(ctx context.Context) (_node *Testimonial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testimonial.Table, testimonial.Columns, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Testimonial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testimonial.FieldID)
		for _, f := range fields {
			if !testimonial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testimonial.FieldID {
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
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(testimonial.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(testimonial.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testimonial.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(testimonial.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(testimonial.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(testimonial.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(testimonial.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedByID(); ok {
		_spec.SetField(testimonial.FieldApprovedByID, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByIDCleared() {
		_spec.ClearField(testimonial.FieldApprovedByID, field.TypeUUID)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.PatientTable,
			Columns: []string{testimonial.PatientColumn},
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
			Table:   testimonial.PatientTable,
			Columns: []string{testimonial.PatientColumn},
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
	if _u.mutation.ServiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.ServiceTable,
			Columns: []string{testimonial.ServiceColumn},
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
			Table:   testimonial.ServiceTable,
			Columns: []string{testimonial.ServiceColumn},
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
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   testimonial.DoctorTable,
			Columns: []string{testimonial.DoctorColumn},
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
			Table:   testimonial.DoctorTable,
			Columns: []string{testimonial.DoctorColumn},
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
	_node = &Testimonial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testimonial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
