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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
)

// NewsletterCampaignCreate is the builder for creating a NewsletterCampaign entity.
type NewsletterCampaignCreate struct {
	config
	mutation *NewsletterCampaignMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NewsletterCampaignCreate) SetCreatedAt(v time.Time) *NewsletterCampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableCreatedAt(v *time.Time) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetNewsletterID sets the "newsletter_id" field.
func (_c *NewsletterCampaignCreate) SetNewsletterID(v uuid.UUID) *NewsletterCampaignCreate {
	_c.mutation.SetNewsletterID(v)
	return _c
}

// SetSentCount sets the "sent_count" field.
func (_c *NewsletterCampaignCreate) SetSentCount(v int) *NewsletterCampaignCreate {
	_c.mutation.SetSentCount(v)
	return _c
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableSentCount(v *int) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetSentCount(*v)
	}
	return _c
}

// SetOpenCount sets the "open_count" field.
func (_c *NewsletterCampaignCreate) SetOpenCount(v int) *NewsletterCampaignCreate {
	_c.mutation.SetOpenCount(v)
	return _c
}

// SetNillableOpenCount sets the "open_count" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableOpenCount(v *int) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetOpenCount(*v)
	}
	return _c
}

// SetClickCount sets the "click_count" field.
func (_c *NewsletterCampaignCreate) SetClickCount(v int) *NewsletterCampaignCreate {
	_c.mutation.SetClickCount(v)
	return _c
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableClickCount(v *int) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetClickCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *NewsletterCampaignCreate) SetStartedAt(v time.Time) *NewsletterCampaignCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableStartedAt(v *time.Time) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *NewsletterCampaignCreate) SetCompletedAt(v time.Time) *NewsletterCampaignCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableCompletedAt(v *time.Time) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NewsletterCampaignCreate) SetID(v uuid.UUID) *NewsletterCampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NewsletterCampaignCreate) SetNillableID(v *uuid.UUID) *NewsletterCampaignCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetNewsletter sets the "newsletter" edge to the Newsletter entity.
func (_c *NewsletterCampaignCreate) SetNewsletter(v *Newsletter) *NewsletterCampaignCreate {
	return _c.SetNewsletterID(v.ID)
}

// AddSubscriberIDs adds the "subscribers" edge to the NewsletterSubscriber entity by IDs.
func (_c *NewsletterCampaignCreate) AddSubscriberIDs(ids ...uuid.UUID) *NewsletterCampaignCreate {
	_c.mutation.AddSubscriberIDs(ids...)
	return _c
}

// AddSubscribers adds the "subscribers" edges to the NewsletterSubscriber entity.
func (_c *NewsletterCampaignCreate) AddSubscribers(v ...*NewsletterSubscriber) *NewsletterCampaignCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriberIDs(ids...)
}

// Mutation returns the NewsletterCampaignMutation object of the builder.
func (_c *NewsletterCampaignCreate) Mutation() *NewsletterCampaignMutation {
	return _c.mutation
}

// Save creates the NewsletterCampaign in the database.
func (_c *NewsletterCampaignCreate) Save(ctx context.Context) (*NewsletterCampaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsletterCampaignCreate) SaveX(ctx context.Context) *NewsletterCampaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterCampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterCampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsletterCampaignCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := newslettercampaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		v := newslettercampaign.DefaultSentCount
		_c.mutation.SetSentCount(v)
	}
	if _, ok := _c.mutation.OpenCount(); !ok {
		v := newslettercampaign.DefaultOpenCount
		_c.mutation.SetOpenCount(v)
	}
	if _, ok := _c.mutation.ClickCount(); !ok {
		v := newslettercampaign.DefaultClickCount
		_c.mutation.SetClickCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := newslettercampaign.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsletterCampaignCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "NewsletterCampaign.created_at"`)}
	}
	if _, ok := _c.mutation.NewsletterID(); !ok {
		return &ValidationError{Name: "newsletter_id", err: errors.New(`repo: missing required field "NewsletterCampaign.newsletter_id"`)}
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		return &ValidationError{Name: "sent_count", err: errors.New(`repo: missing required field "NewsletterCampaign.sent_count"`)}
	}
	if v, ok := _c.mutation.SentCount(); ok {
		if err := newslettercampaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.sent_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OpenCount(); !ok {
		return &ValidationError{Name: "open_count", err: errors.New(`repo: missing required field "NewsletterCampaign.open_count"`)}
	}
	if v, ok := _c.mutation.OpenCount(); ok {
		if err := newslettercampaign.OpenCountValidator(v); err != nil {
			return &ValidationError{Name: "open_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.open_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClickCount(); !ok {
		return &ValidationError{Name: "click_count", err: errors.New(`repo: missing required field "NewsletterCampaign.click_count"`)}
	}
	if v, ok := _c.mutation.ClickCount(); ok {
		if err := newslettercampaign.ClickCountValidator(v); err != nil {
			return &ValidationError{Name: "click_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.click_count": %w`, err)}
		}
	}
	if len(_c.mutation.NewsletterIDs()) == 0 {
		return &ValidationError{Name: "newsletter", err: errors.New(`repo: missing required edge "NewsletterCampaign.newsletter"`)}
	}
	return nil
}

func (_c *NewsletterCampaignCreate) sqlSave(ctx context.Context) (*NewsletterCampaign, error) {
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

func (_c *NewsletterCampaignCreate) createSpec() (*NewsletterCampaign, *sqlgraph.CreateSpec) {
	var (
		_node = &NewsletterCampaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newslettercampaign.Table, sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(newslettercampaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SentCount(); ok {
		_spec.SetField(newslettercampaign.FieldSentCount, field.TypeInt, value)
		_node.SentCount = value
	}
	if value, ok := _c.mutation.OpenCount(); ok {
		_spec.SetField(newslettercampaign.FieldOpenCount, field.TypeInt, value)
		_node.OpenCount = value
	}
	if value, ok := _c.mutation.ClickCount(); ok {
		_spec.SetField(newslettercampaign.FieldClickCount, field.TypeInt, value)
		_node.ClickCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(newslettercampaign.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(newslettercampaign.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.NewsletterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   newslettercampaign.NewsletterTable,
			Columns: []string{newslettercampaign.NewsletterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NewsletterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubscribersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NewsletterCampaignCreateBulk is the builder for creating many NewsletterCampaign entities in bulk.
type NewsletterCampaignCreateBulk struct {
	config
	err      error
	builders []*NewsletterCampaignCreate
}

// Save creates the NewsletterCampaign entities in the database.
func (_c *NewsletterCampaignCreateBulk) Save(ctx context.Context) ([]*NewsletterCampaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NewsletterCampaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsletterCampaignMutation)
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
func (_c *NewsletterCampaignCreateBulk) SaveX(ctx context.Context) []*NewsletterCampaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterCampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterCampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
