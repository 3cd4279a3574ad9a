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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// PatientDocumentCreate is the builder for creating a PatientDocument entity.
type PatientDocumentCreate struct {
	config
	mutation *PatientDocumentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientDocumentCreate) SetCreatedAt(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableCreatedAt(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientDocumentCreate) SetPatientID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *PatientDocumentCreate) SetDocumentType(v patientdocument.DocumentType) *PatientDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PatientDocumentCreate) SetTitle(v string) *PatientDocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFileKey sets the "file_key" field.
func (_c *PatientDocumentCreate) SetFileKey(v string) *PatientDocumentCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PatientDocumentCreate) SetDescription(v string) *PatientDocumentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableDescription(v *string) *PatientDocumentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetUploadedByID sets the "uploaded_by_id" field.
func (_c *PatientDocumentCreate) SetUploadedByID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetUploadedByID(v)
	return _c
}

// SetIsSensitive sets the "is_sensitive" field.
func (_c *PatientDocumentCreate) SetIsSensitive(v bool) *PatientDocumentCreate {
	_c.mutation.SetIsSensitive(v)
	return _c
}

// SetNillableIsSensitive sets the "is_sensitive" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableIsSensitive(v *bool) *PatientDocumentCreate {
	if v != nil {
		_c.SetIsSensitive(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *PatientDocumentCreate) SetExpiryDate(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableExpiryDate(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientDocumentCreate) SetID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableID(v *uuid.UUID) *PatientDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientDocumentCreate) SetPatient(v *Patient) *PatientDocumentCreate {
	return _c.SetPatientID(v.ID)
}

// SetUploadedBy sets the "uploaded_by" edge to the User entity.
func (_c *PatientDocumentCreate) SetUploadedBy(v *User) *PatientDocumentCreate {
	return _c.SetUploadedByID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_c *PatientDocumentCreate) Mutation() *PatientDocumentMutation {
	return _c.mutation
}

// Save creates the PatientDocument in the database.
func (_c *PatientDocumentCreate) Save(ctx context.Context) (*PatientDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientDocumentCreate) SaveX(ctx context.Context) *PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsSensitive(); !ok {
		v := patientdocument.DefaultIsSensitive
		_c.mutation.SetIsSensitive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientDocumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientDocument.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientDocument.patient_id"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`repo: missing required field "PatientDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := patientdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "PatientDocument.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := patientdocument.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileKey(); !ok {
		return &ValidationError{Name: "file_key", err: errors.New(`repo: missing required field "PatientDocument.file_key"`)}
	}
	if v, ok := _c.mutation.FileKey(); ok {
		if err := patientdocument.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedByID(); !ok {
		return &ValidationError{Name: "uploaded_by_id", err: errors.New(`repo: missing required field "PatientDocument.uploaded_by_id"`)}
	}
	if _, ok := _c.mutation.IsSensitive(); !ok {
		return &ValidationError{Name: "is_sensitive", err: errors.New(`repo: missing required field "PatientDocument.is_sensitive"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientDocument.patient"`)}
	}
	if len(_c.mutation.UploadedByIDs()) == 0 {
		return &ValidationError{Name: "uploaded_by", err: errors.New(`repo: missing required edge "PatientDocument.uploaded_by"`)}
	}
	return nil
}

func (_c *PatientDocumentCreate) sqlSave(ctx context.Context) (*PatientDocument, error) {
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

func (_c *PatientDocumentCreate) createSpec() (*PatientDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientdocument.Table, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(patientdocument.FieldDocumentType, field.TypeEnum, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(patientdocument.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.FileKey(); ok {
		_spec.SetField(patientdocument.FieldFileKey, field.TypeString, value)
		_node.FileKey = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.IsSensitive(); ok {
		_spec.SetField(patientdocument.FieldIsSensitive, field.TypeBool, value)
		_node.IsSensitive = value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(patientdocument.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UploadedByIDs(); len(nodes) > 0 {
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
		_node.UploadedByID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatientDocumentCreateBulk is the builder for creating many PatientDocument entities in bulk.
type PatientDocumentCreateBulk struct {
	config
	err      error
	builders []*PatientDocumentCreate
}

// Save creates the PatientDocument entities in the database.
func (_c *PatientDocumentCreateBulk) Save(ctx context.Context) ([]*PatientDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientDocumentMutation)
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
func (_c *PatientDocumentCreateBulk) SaveX(ctx context.Context) []*PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
