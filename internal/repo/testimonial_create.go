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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
)

// TestimonialCreate is the builder for creating a Testimonial entity.
type TestimonialCreate struct {
	config
	mutation *TestimonialMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestimonialCreate) SetCreatedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableCreatedAt(v *time.Time) *TestimonialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestimonialCreate) SetUpdatedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableUpdatedAt(v *time.Time) *TestimonialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TestimonialCreate) SetPatientID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TestimonialCreate) SetContent(v string) *TestimonialCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *TestimonialCreate) SetRating(v int) *TestimonialCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableRating(v *int) *TestimonialCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TestimonialCreate) SetStatus(v testimonial.Status) *TestimonialCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableStatus(v *testimonial.Status) *TestimonialCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *TestimonialCreate) SetServiceID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableServiceID(v *uuid.UUID) *TestimonialCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TestimonialCreate) SetDoctorID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableDoctorID(v *uuid.UUID) *TestimonialCreate {
	if v != nil {
		_c.SetDoctorID(*v)
	}
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *TestimonialCreate) SetImageKey(v string) *TestimonialCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableImageKey(v *string) *TestimonialCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *TestimonialCreate) SetSubmittedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *TestimonialCreate) SetApprovedAt(v time.Time) *TestimonialCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableApprovedAt(v *time.Time) *TestimonialCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetApprovedByID sets the "approved_by_id" field.
func (_c *TestimonialCreate) SetApprovedByID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetApprovedByID(v)
	return _c
}

// SetNillableApprovedByID sets the "approved_by_id" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableApprovedByID(v *uuid.UUID) *TestimonialCreate {
	if v != nil {
		_c.SetApprovedByID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestimonialCreate) SetID(v uuid.UUID) *TestimonialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestimonialCreate) SetNillableID(v *uuid.UUID) *TestimonialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *TestimonialCreate) SetPatient(v *Patient) *TestimonialCreate {
	return _c.SetPatientID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_c *TestimonialCreate) SetService(v *Service) *TestimonialCreate {
	return _c.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *TestimonialCreate) SetDoctor(v *Doctor) *TestimonialCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the TestimonialMutation object of the builder.
func (_c *TestimonialCreate) Mutation() *TestimonialMutation {
	return _c.mutation
}

// Save creates the Testimonial in the database.
func (_c *TestimonialCreate) Save(ctx context.Context) (*Testimonial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestimonialCreate) SaveX(ctx context.Context) *Testimonial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestimonialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestimonialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestimonialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testimonial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := testimonial.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := testimonial.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := testimonial.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testimonial.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestimonialCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Testimonial.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Testimonial.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Testimonial.patient_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "Testimonial.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := testimonial.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "Testimonial.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "Testimonial.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := testimonial.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Testimonial.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Testimonial.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := testimonial.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Testimonial.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ImageKey(); ok {
		if err := testimonial.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Testimonial.image_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`repo: missing required field "Testimonial.submitted_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Testimonial.patient"`)}
	}
	return nil
}

func (_c *TestimonialCreate) sqlSave(ctx context.Context) (*Testimonial, error) {
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

func (_c *TestimonialCreate) createSpec() (*Testimonial, *sqlgraph.CreateSpec) {
	var (
		_node = &Testimonial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testimonial.Table, sqlgraph.NewFieldSpec(testimonial.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testimonial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(testimonial.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(testimonial.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(testimonial.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(testimonial.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(testimonial.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(testimonial.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(testimonial.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.ApprovedByID(); ok {
		_spec.SetField(testimonial.FieldApprovedByID, field.TypeUUID, value)
		_node.ApprovedByID = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServiceIDs(); len(nodes) > 0 {
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
		_node.ServiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_node.DoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestimonialCreateBulk is the builder for creating many Testimonial entities in bulk.
type TestimonialCreateBulk struct {
	config
	err      error
	builders []*TestimonialCreate
}

// Save creates the Testimonial entities in the database.
func (_c *TestimonialCreateBulk) Save(ctx context.Context) ([]*Testimonial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Testimonial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestimonialMutation)
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
func (_c *TestimonialCreateBulk) SaveX(ctx context.Context) []*Testimonial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestimonialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestimonialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
