// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// DoctorAvailabilityDelete is the builder for deleting a DoctorAvailability entity.
type DoctorAvailabilityDelete struct {
	config
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// Where appends a list predicates to the DoctorAvailabilityDelete builder.
func (_d *DoctorAvailabilityDelete) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DoctorAvailabilityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorAvailabilityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DoctorAvailabilityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(doctoravailability.Table, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
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

// DoctorAvailabilityDeleteOne is the builder for deleting a single DoctorAvailability entity.
type DoctorAvailabilityDeleteOne struct {
	_d *DoctorAvailabilityDelete
}

// Where appends a list predicates to the DoctorAvailabilityDelete builder.
func (_d *DoctorAvailabilityDeleteOne) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DoctorAvailabilityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{doctoravailability.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorAvailabilityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
