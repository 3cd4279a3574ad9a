// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// DoctorLeaveDelete is the builder for deleting a DoctorLeave entity.
type DoctorLeaveDelete struct {
	config
	hooks    []Hook
	mutation *DoctorLeaveMutation
}

// Where appends a list predicates to the DoctorLeaveDelete builder.
func (_d *DoctorLeaveDelete) Where(ps ...predicate.DoctorLeave) *DoctorLeaveDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DoctorLeaveDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorLeaveDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DoctorLeaveDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(doctorleave.Table, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
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

// DoctorLeaveDeleteOne is the builder for deleting a single DoctorLeave entity.
type DoctorLeaveDeleteOne struct {
	_d *DoctorLeaveDelete
}

// Where appends a list predicates to the DoctorLeaveDelete builder.
func (_d *DoctorLeaveDeleteOne) Where(ps ...predicate.DoctorLeave) *DoctorLeaveDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DoctorLeaveDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{doctorleave.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorLeaveDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
