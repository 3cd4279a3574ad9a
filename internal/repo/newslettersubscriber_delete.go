// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterSubscriberDelete is the builder for deleting a NewsletterSubscriber entity.
type NewsletterSubscriberDelete struct {
	config
	hooks    []Hook
	mutation *NewsletterSubscriberMutation
}

// Where appends a list predicates to the NewsletterSubscriberDelete builder.
func (_d *NewsletterSubscriberDelete) Where(ps ...predicate.NewsletterSubscriber) *NewsletterSubscriberDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NewsletterSubscriberDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsletterSubscriberDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NewsletterSubscriberDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(newslettersubscriber.Table, sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID))
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

// NewsletterSubscriberDeleteOne is the builder for deleting a single NewsletterSubscriber entity.
type NewsletterSubscriberDeleteOne struct {
	_d *NewsletterSubscriberDelete
}

// Where appends a list predicates to the NewsletterSubscriberDelete builder.
func (_d *NewsletterSubscriberDeleteOne) Where(ps ...predicate.NewsletterSubscriber) *NewsletterSubscriberDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NewsletterSubscriberDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{newslettersubscriber.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NewsletterSubscriberDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
