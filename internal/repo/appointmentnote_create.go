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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
)

// AppointmentNoteCreate is the builder for creating a AppointmentNote entity.
type AppointmentNoteCreate struct {
	config
	mutation *AppointmentNoteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentNoteCreate) SetCreatedAt(v time.Time) *AppointmentNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentNoteCreate) SetNillableCreatedAt(v *time.Time) *AppointmentNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentNoteCreate) SetAppointmentID(v uuid.UUID) *AppointmentNoteCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNoteType sets the "note_type" field.
func (_c *AppointmentNoteCreate) SetNoteType(v appointmentnote.NoteType) *AppointmentNoteCreate {
	_c.mutation.SetNoteType(v)
	return _c
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_c *AppointmentNoteCreate) SetNillableNoteType(v *appointmentnote.NoteType) *AppointmentNoteCreate {
	if v != nil {
		_c.SetNoteType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *AppointmentNoteCreate) SetContent(v string) *AppointmentNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetIsPrivate sets the "is_private" field.
func (_c *AppointmentNoteCreate) SetIsPrivate(v bool) *AppointmentNoteCreate {
	_c.mutation.SetIsPrivate(v)
	return _c
}

// SetNillableIsPrivate sets the "is_private" field if the given value is not nil.
func (_c *AppointmentNoteCreate) SetNillableIsPrivate(v *bool) *AppointmentNoteCreate {
	if v != nil {
		_c.SetIsPrivate(*v)
	}
	return _c
}

// SetCreatedByID sets the "created_by_id" field.
func (_c *AppointmentNoteCreate) SetCreatedByID(v uuid.UUID) *AppointmentNoteCreate {
	_c.mutation.SetCreatedByID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentNoteCreate) SetID(v uuid.UUID) *AppointmentNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentNoteCreate) SetNillableID(v *uuid.UUID) *AppointmentNoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_c *AppointmentNoteCreate) SetAppointment(v *Appointment) *AppointmentNoteCreate {
	return _c.SetAppointmentID(v.ID)
}

// Mutation returns the AppointmentNoteMutation object of the builder.
func (_c *AppointmentNoteCreate) Mutation() *AppointmentNoteMutation {
	return _c.mutation
}

// Save creates the AppointmentNote in the database.
func (_c *AppointmentNoteCreate) Save(ctx context.Context) (*AppointmentNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentNoteCreate) SaveX(ctx context.Context) *AppointmentNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.NoteType(); !ok {
		v := appointmentnote.DefaultNoteType
		_c.mutation.SetNoteType(v)
	}
	if _, ok := _c.mutation.IsPrivate(); !ok {
		v := appointmentnote.DefaultIsPrivate
		_c.mutation.SetIsPrivate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentnote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentNoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentNote.created_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "AppointmentNote.appointment_id"`)}
	}
	if _, ok := _c.mutation.NoteType(); !ok {
		return &ValidationError{Name: "note_type", err: errors.New(`repo: missing required field "AppointmentNote.note_type"`)}
	}
	if v, ok := _c.mutation.NoteType(); ok {
		if err := appointmentnote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.note_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "AppointmentNote.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := appointmentnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPrivate(); !ok {
		return &ValidationError{Name: "is_private", err: errors.New(`repo: missing required field "AppointmentNote.is_private"`)}
	}
	if _, ok := _c.mutation.CreatedByID(); !ok {
		return &ValidationError{Name: "created_by_id", err: errors.New(`repo: missing required field "AppointmentNote.created_by_id"`)}
	}
	if len(_c.mutation.AppointmentIDs()) == 0 {
		return &ValidationError{Name: "appointment", err: errors.New(`repo: missing required edge "AppointmentNote.appointment"`)}
	}
	return nil
}

func (_c *AppointmentNoteCreate) sqlSave(ctx context.Context) (*AppointmentNote, error) {
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

func (_c *AppointmentNoteCreate) createSpec() (*AppointmentNote, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentnote.Table, sqlgraph.NewFieldSpec(appointmentnote.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.NoteType(); ok {
		_spec.SetField(appointmentnote.FieldNoteType, field.TypeEnum, value)
		_node.NoteType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(appointmentnote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.IsPrivate(); ok {
		_spec.SetField(appointmentnote.FieldIsPrivate, field.TypeBool, value)
		_node.IsPrivate = value
	}
	if value, ok := _c.mutation.CreatedByID(); ok {
		_spec.SetField(appointmentnote.FieldCreatedByID, field.TypeUUID, value)
		_node.CreatedByID = value
	}
	if nodes := _c.mutation.AppointmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointmentnote.AppointmentTable,
			Columns: []string{appointmentnote.AppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AppointmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppointmentNoteCreateBulk is the builder for creating many AppointmentNote entities in bulk.
type AppointmentNoteCreateBulk struct {
	config
	err      error
	builders []*AppointmentNoteCreate
}

// Save creates the AppointmentNote entities in the database.
func (_c *AppointmentNoteCreateBulk) Save(ctx context.Context) ([]*AppointmentNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentNoteMutation)
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
func (_c *AppointmentNoteCreateBulk) SaveX(ctx context.Context) []*AppointmentNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
