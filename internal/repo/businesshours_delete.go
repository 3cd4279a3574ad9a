// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// BusinessHoursDelete is the builder for deleting a BusinessHours entity.
type BusinessHoursDelete struct {
	config
	hooks    []Hook
	mutation *BusinessHoursMutation
}

// Where appends a list predicates to the BusinessHoursDelete builder.
func (_d *BusinessHoursDelete) Where(ps ...predicate.BusinessHours) *BusinessHoursDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BusinessHoursDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessHoursDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BusinessHoursDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(businesshours.Table, sqlgraph.NewFieldSpec(businesshours.FieldID, field.TypeUUID))
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

// BusinessHoursDeleteOne is the builder for deleting a single BusinessHours entity.
type BusinessHoursDeleteOne struct {
	_d *BusinessHoursDelete
}

// Where appends a list predicates to the BusinessHoursDelete builder.
func (_d *BusinessHoursDeleteOne) Where(ps ...predicate.BusinessHours) *BusinessHoursDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BusinessHoursDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{businesshours.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessHoursDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
