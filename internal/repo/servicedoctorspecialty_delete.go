// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
)

// ServiceDoctorSpecialtyDelete is the builder for deleting a ServiceDoctorSpecialty entity.
type ServiceDoctorSpecialtyDelete struct {
	config
	hooks    []Hook
	mutation *ServiceDoctorSpecialtyMutation
}

// Where appends a list predicates to the ServiceDoctorSpecialtyDelete builder.
func (_d *ServiceDoctorSpecialtyDelete) Where(ps ...predicate.ServiceDoctorSpecialty) *ServiceDoctorSpecialtyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServiceDoctorSpecialtyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceDoctorSpecialtyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServiceDoctorSpecialtyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(servicedoctorspecialty.Table, sqlgraph.NewFieldSpec(servicedoctorspecialty.FieldID, field.TypeUUID))
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

// ServiceDoctorSpecialtyDeleteOne is the builder for deleting a single ServiceDoctorSpecialty entity.
type ServiceDoctorSpecialtyDeleteOne struct {
	_d *ServiceDoctorSpecialtyDelete
}

// Where appends a list predicates to the ServiceDoctorSpecialtyDelete builder.
func (_d *ServiceDoctorSpecialtyDeleteOne) Where(ps ...predicate.ServiceDoctorSpecialty) *ServiceDoctorSpecialtyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServiceDoctorSpecialtyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{servicedoctorspecialty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceDoctorSpecialtyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
