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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// AppointmentNoteUpdate is the builder for updating AppointmentNote entities.
type AppointmentNoteUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentNoteMutation
}

// Where appends a list predicates to the AppointmentNoteUpdate builder.
func (_u *AppointmentNoteUpdate) Where(ps ...predicate.AppointmentNote) *AppointmentNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentNoteUpdate) SetAppointmentID(v uuid.UUID) *AppointmentNoteUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentNoteUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentNoteUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetNoteType sets the "note_type" field.
func (_u *AppointmentNoteUpdate) SetNoteType(v appointmentnote.NoteType) *AppointmentNoteUpdate {
	_u.mutation.SetNoteType(v)
	return _u
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_u *AppointmentNoteUpdate) SetNillableNoteType(v *appointmentnote.NoteType) *AppointmentNoteUpdate {
	if v != nil {
		_u.SetNoteType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AppointmentNoteUpdate) SetContent(v string) *AppointmentNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AppointmentNoteUpdate) SetNillableContent(v *string) *AppointmentNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsPrivate sets the "is_private" field.
func (_u *AppointmentNoteUpdate) SetIsPrivate(v bool) *AppointmentNoteUpdate {
	_u.mutation.SetIsPrivate(v)
	return _u
}

// SetNillableIsPrivate sets the "is_private" field if the given value is not nil.
func (_u *AppointmentNoteUpdate) SetNillableIsPrivate(v *bool) *AppointmentNoteUpdate {
	if v != nil {
		_u.SetIsPrivate(*v)
	}
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *AppointmentNoteUpdate) SetCreatedByID(v uuid.UUID) *AppointmentNoteUpdate {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *AppointmentNoteUpdate) SetNillableCreatedByID(v *uuid.UUID) *AppointmentNoteUpdate {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *AppointmentNoteUpdate) SetAppointment(v *Appointment) *AppointmentNoteUpdate {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the AppointmentNoteMutation object of the builder.
func (_u *AppointmentNoteUpdate) Mutation() *AppointmentNoteMutation {
	return _u.mutation
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *AppointmentNoteUpdate) ClearAppointment() *AppointmentNoteUpdate {
	_u.mutation.ClearAppointment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentNoteUpdate) check() error {
	if v, ok := _u.mutation.NoteType(); ok {
		if err := appointmentnote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.note_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := appointmentnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.content": %w`, err)}
		}
	}
	if _u.mutation.AppointmentCleared() && len(_u.mutation.AppointmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AppointmentNote.appointment"`)
	}
	return nil
}

func (_u *AppointmentNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentnote.Table, appointmentnote.Columns, sqlgraph.NewFieldSpec(appointmentnote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoteType(); ok {
		_spec.SetField(appointmentnote.FieldNoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(appointmentnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrivate(); ok {
		_spec.SetField(appointmentnote.FieldIsPrivate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(appointmentnote.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentNoteUpdateOne is the builder for updating a single AppointmentNote entity.
type AppointmentNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentNoteMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentNoteUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentNoteUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentNoteUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentNoteUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetNoteType sets the "note_type" field.
func (_u *AppointmentNoteUpdateOne) SetNoteType(v appointmentnote.NoteType) *AppointmentNoteUpdateOne {
	_u.mutation.SetNoteType(v)
	return _u
}

// SetNillableNoteType sets the "note_type" field if the given value is not nil.
func (_u *AppointmentNoteUpdateOne) SetNillableNoteType(v *appointmentnote.NoteType) *AppointmentNoteUpdateOne {
	if v != nil {
		_u.SetNoteType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AppointmentNoteUpdateOne) SetContent(v string) *AppointmentNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AppointmentNoteUpdateOne) SetNillableContent(v *string) *AppointmentNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsPrivate sets the "is_private" field.
func (_u *AppointmentNoteUpdateOne) SetIsPrivate(v bool) *AppointmentNoteUpdateOne {
	_u.mutation.SetIsPrivate(v)
	return _u
}

// SetNillableIsPrivate sets the "is_private" field if the given value is not nil.
func (_u *AppointmentNoteUpdateOne) SetNillableIsPrivate(v *bool) *AppointmentNoteUpdateOne {
	if v != nil {
		_u.SetIsPrivate(*v)
	}
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *AppointmentNoteUpdateOne) SetCreatedByID(v uuid.UUID) *AppointmentNoteUpdateOne {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *AppointmentNoteUpdateOne) SetNillableCreatedByID(v *uuid.UUID) *AppointmentNoteUpdateOne {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" edge to the Appointment entity.
func (_u *AppointmentNoteUpdateOne) SetAppointment(v *Appointment) *AppointmentNoteUpdateOne {
	return _u.SetAppointmentID(v.ID)
}

// Mutation returns the AppointmentNoteMutation object of the builder.
func (_u *AppointmentNoteUpdateOne) Mutation() *AppointmentNoteMutation {
	return _u.mutation
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (_u *AppointmentNoteUpdateOne) ClearAppointment() *AppointmentNoteUpdateOne {
	_u.mutation.ClearAppointment()
	return _u
}

// Where appends a list predicates to the AppointmentNoteUpdate builder.
func (_u *AppointmentNoteUpdateOne) Where(ps ...predicate.AppointmentNote) *AppointmentNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentNoteUpdateOne) Select(field string, fields ...string) *AppointmentNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentNote entity.
func (_u *AppointmentNoteUpdateOne) Save(ctx context.Context) (*AppointmentNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentNoteUpdateOne) SaveX(ctx context.Context) *AppointmentNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentNoteUpdateOne) check() error {
	if v, ok := _u.mutation.NoteType(); ok {
		if err := appointmentnote.NoteTypeValidator(v); err != nil {
			return &ValidationError{Name: "note_type", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.note_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := appointmentnote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "AppointmentNote.content": %w`, err)}
		}
	}
	if _u.mutation.AppointmentCleared() && len(_u.mutation.AppointmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AppointmentNote.appointment"`)
	}
	return nil
}

func (_u *AppointmentNoteUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentnote.Table, appointmentnote.Columns, sqlgraph.NewFieldSpec(appointmentnote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentnote.FieldID)
		for _, f := range fields {
			if !appointmentnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentnote.FieldID {
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
	if value, ok := _u.mutation.NoteType(); ok {
		_spec.SetField(appointmentnote.FieldNoteType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(appointmentnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrivate(); ok {
		_spec.SetField(appointmentnote.FieldIsPrivate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(appointmentnote.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AppointmentNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
