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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
)

// NewsletterSubscriberCreate is the builder for creating a NewsletterSubscriber entity.
type NewsletterSubscriberCreate struct {
	config
	mutation *NewsletterSubscriberMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *NewsletterSubscriberCreate) SetEmail(v string) *NewsletterSubscriberCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *NewsletterSubscriberCreate) SetFirstName(v string) *NewsletterSubscriberCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *NewsletterSubscriberCreate) SetNillableFirstName(v *string) *NewsletterSubscriberCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *NewsletterSubscriberCreate) SetLastName(v string) *NewsletterSubscriberCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *NewsletterSubscriberCreate) SetNillableLastName(v *string) *NewsletterSubscriberCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *NewsletterSubscriberCreate) SetIsActive(v bool) *NewsletterSubscriberCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *NewsletterSubscriberCreate) SetNillableIsActive(v *bool) *NewsletterSubscriberCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUnsubscribeToken sets the "unsubscribe_token" field.
func (_c *NewsletterSubscriberCreate) SetUnsubscribeToken(v string) *NewsletterSubscriberCreate {
	_c.mutation.SetUnsubscribeToken(v)
	return _c
}

// SetSubscribedAt sets the "subscribed_at" field.
func (_c *NewsletterSubscriberCreate) SetSubscribedAt(v time.Time) *NewsletterSubscriberCreate {
	_c.mutation.SetSubscribedAt(v)
	return _c
}

// SetUnsubscribedAt sets the "unsubscribed_at" field.
func (_c *NewsletterSubscriberCreate) SetUnsubscribedAt(v time.Time) *NewsletterSubscriberCreate {
	_c.mutation.SetUnsubscribedAt(v)
	return _c
}

// SetNillableUnsubscribedAt sets the "unsubscribed_at" field if the given value is not nil.
func (_c *NewsletterSubscriberCreate) SetNillableUnsubscribedAt(v *time.Time) *NewsletterSubscriberCreate {
	if v != nil {
		_c.SetUnsubscribedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NewsletterSubscriberCreate) SetID(v uuid.UUID) *NewsletterSubscriberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NewsletterSubscriberCreate) SetNillableID(v *uuid.UUID) *NewsletterSubscriberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_c *NewsletterSubscriberCreate) AddCampaignIDs(ids ...uuid.UUID) *NewsletterSubscriberCreate {
	_c.mutation.AddCampaignIDs(ids...)
	return _c
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_c *NewsletterSubscriberCreate) AddCampaigns(v ...*NewsletterCampaign) *NewsletterSubscriberCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterSubscriberMutation object of the builder.
func (_c *NewsletterSubscriberCreate) Mutation() *NewsletterSubscriberMutation {
	return _c.mutation
}

// Save creates the NewsletterSubscriber in the database.
func (_c *NewsletterSubscriberCreate) Save(ctx context.Context) (*NewsletterSubscriber, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsletterSubscriberCreate) SaveX(ctx context.Context) *NewsletterSubscriber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterSubscriberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterSubscriberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsletterSubscriberCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := newslettersubscriber.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := newslettersubscriber.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsletterSubscriberCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "NewsletterSubscriber.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := newslettersubscriber.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := newslettersubscriber.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := newslettersubscriber.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "NewsletterSubscriber.is_active"`)}
	}
	if _, ok := _c.mutation.UnsubscribeToken(); !ok {
		return &ValidationError{Name: "unsubscribe_token", err: errors.New(`repo: missing required field "NewsletterSubscriber.unsubscribe_token"`)}
	}
	if v, ok := _c.mutation.UnsubscribeToken(); ok {
		if err := newslettersubscriber.UnsubscribeTokenValidator(v); err != nil {
			return &ValidationError{Name: "unsubscribe_token", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.unsubscribe_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubscribedAt(); !ok {
		return &ValidationError{Name: "subscribed_at", err: errors.New(`repo: missing required field "NewsletterSubscriber.subscribed_at"`)}
	}
	return nil
}

func (_c *NewsletterSubscriberCreate) sqlSave(ctx context.Context) (*NewsletterSubscriber, error) {
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

func (_c *NewsletterSubscriberCreate) createSpec() (*NewsletterSubscriber, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsletterSubscriber{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newslettersubscriber.Table, sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(newslettersubscriber.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(newslettersubscriber.FieldFirstName, field.TypeString, value)
		_node.FirstName = &value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(newslettersubscriber.FieldLastName, field.TypeString, value)
		_node.LastName = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(newslettersubscriber.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UnsubscribeToken(); ok {
		_spec.SetField(newslettersubscriber.FieldUnsubscribeToken, field.TypeString, value)
		_node.UnsubscribeToken = value
	}
	if value, ok := _c.mutation.SubscribedAt(); ok {
		_spec.SetField(newslettersubscriber.FieldSubscribedAt, field.TypeTime, value)
		_node.SubscribedAt = value
	}
	if value, ok := _c.mutation.UnsubscribedAt(); ok {
		_spec.SetField(newslettersubscriber.FieldUnsubscribedAt, field.TypeTime, value)
		_node.UnsubscribedAt = &value
	}
	if nodes := _c.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NewsletterSubscriberCreateBulk is the builder for creating many NewsletterSubscriber entities in bulk.
type NewsletterSubscriberCreateBulk struct {
	config
	err      error
	builders []*NewsletterSubscriberCreate
}

// Save creates the NewsletterSubscriber entities in the database.
func (_c *NewsletterSubscriberCreateBulk) Save(ctx context.Context) ([]*NewsletterSubscriber, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsletterSubscriber, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsletterSubscriberMutation)
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
func (_c *NewsletterSubscriberCreateBulk) SaveX(ctx context.Context) []*NewsletterSubscriber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterSubscriberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterSubscriberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
