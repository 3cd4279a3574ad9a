// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// AppointmentNoteDelete is the builder for deleting a AppointmentNote entity.
type AppointmentNoteDelete struct {
	config
	hooks    []Hook
	mutation *AppointmentNoteMutation
}

// Where appends a list predicates to the AppointmentNoteDelete builder.
func (_d *AppointmentNoteDelete) Where(ps ...predicate.AppointmentNote) *AppointmentNoteDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppointmentNoteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentNoteDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppointmentNoteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appointmentnote.Table, sqlgraph.NewFieldSpec(appointmentnote.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AppointmentNoteDeleteOne is the builder for deleting a single AppointmentNote entity.
type AppointmentNoteDeleteOne struct {
	_d *AppointmentNoteDelete
}

// Where appends a list predicates to the AppointmentNoteDelete builder.
func (_d *AppointmentNoteDeleteOne) Where(ps ...predicate.AppointmentNote) *AppointmentNoteDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppointmentNoteDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appointmentnote.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentNoteDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
