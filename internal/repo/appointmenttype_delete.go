// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// AppointmentTypeDelete is the builder for deleting a AppointmentType entity.
type AppointmentTypeDelete struct {
	config
	hooks    []Hook
	mutation *AppointmentTypeMutation
}

// Where appends a list predicates to the AppointmentTypeDelete builder.
func (_d *AppointmentTypeDelete) Where(ps ...predicate.AppointmentType) *AppointmentTypeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppointmentTypeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentTypeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppointmentTypeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appointmenttype.Table, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeUUID))
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

// AppointmentTypeDeleteOne is the builder for deleting a single AppointmentType entity.
type AppointmentTypeDeleteOne struct {
	_d *AppointmentTypeDelete
}

// Where appends a list predicates to the AppointmentTypeDelete builder.
func (_d *AppointmentTypeDeleteOne) Where(ps ...predicate.AppointmentType) *AppointmentTypeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppointmentTypeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appointmenttype.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentTypeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
