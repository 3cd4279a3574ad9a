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
)

// NewsletterCreate is the builder for creating a Newsletter entity.
type NewsletterCreate struct {
	config
	mutation *NewsletterMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NewsletterCreate) SetCreatedAt(v time.Time) *NewsletterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableCreatedAt(v *time.Time) *NewsletterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NewsletterCreate) SetUpdatedAt(v time.Time) *NewsletterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableUpdatedAt(v *time.Time) *NewsletterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *NewsletterCreate) SetTitle(v string) *NewsletterCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *NewsletterCreate) SetSubject(v string) *NewsletterCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetContentHTML sets the "content_html" field.
func (_c *NewsletterCreate) SetContentHTML(v string) *NewsletterCreate {
	_c.mutation.SetContentHTML(v)
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *NewsletterCreate) SetContentText(v string) *NewsletterCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NewsletterCreate) SetStatus(v newsletter.Status) *NewsletterCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableStatus(v *newsletter.Status) *NewsletterCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *NewsletterCreate) SetScheduledAt(v time.Time) *NewsletterCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableScheduledAt(v *time.Time) *NewsletterCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *NewsletterCreate) SetSentAt(v time.Time) *NewsletterCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableSentAt(v *time.Time) *NewsletterCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedByID sets the "created_by_id" field.
func (_c *NewsletterCreate) SetCreatedByID(v uuid.UUID) *NewsletterCreate {
	_c.mutation.SetCreatedByID(v)
	return _c
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableCreatedByID(v *uuid.UUID) *NewsletterCreate {
	if v != nil {
		_c.SetCreatedByID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NewsletterCreate) SetID(v uuid.UUID) *NewsletterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NewsletterCreate) SetNillableID(v *uuid.UUID) *NewsletterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_c *NewsletterCreate) AddCampaignIDs(ids ...uuid.UUID) *NewsletterCreate {
	_c.mutation.AddCampaignIDs(ids...)
	return _c
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_c *NewsletterCreate) AddCampaigns(v ...*NewsletterCampaign) *NewsletterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterMutation object of the builder.
func (_c *NewsletterCreate) Mutation() *NewsletterMutation {
	return _c.mutation
}

// Save creates the Newsletter in the database.
func (_c *NewsletterCreate) Save(ctx context.Context) (*Newsletter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NewsletterCreate) SaveX(ctx context.Context) *Newsletter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NewsletterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := newsletter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := newsletter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := newsletter.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := newsletter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NewsletterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Newsletter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Newsletter.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Newsletter.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := newsletter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Newsletter.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`repo: missing required field "Newsletter.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := newsletter.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Newsletter.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHTML(); !ok {
		return &ValidationError{Name: "content_html", err: errors.New(`repo: missing required field "Newsletter.content_html"`)}
	}
	if _, ok := _c.mutation.ContentText(); !ok {
		return &ValidationError{Name: "content_text", err: errors.New(`repo: missing required field "Newsletter.content_text"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Newsletter.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := newsletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Newsletter.status": %w`, err)}
		}
	}
	return nil
}

func (_c *NewsletterCreate) sqlSave(ctx context.Context) (*Newsletter, error) {
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

func (_c *NewsletterCreate) createSpec() (*Newsletter, *sqlgraph.CreateSpec) {
	var (
		_node = &Newsletter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(newsletter.Table, sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(newsletter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(newsletter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(newsletter.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(newsletter.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ContentHTML(); ok {
		_spec.SetField(newsletter.FieldContentHTML, field.TypeString, value)
		_node.ContentHTML = value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(newsletter.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(newsletter.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(newsletter.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(newsletter.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedByID(); ok {
		_spec.SetField(newsletter.FieldCreatedByID, field.TypeUUID, value)
		_node.CreatedByID = &value
	}
	if nodes := _c.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
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

// NewsletterCreateBulk is the builder for creating many Newsletter entities in bulk.
type NewsletterCreateBulk struct {
	config
	err      error
	builders []*NewsletterCreate
}

// Save creates the Newsletter entities in the database.
func (_c *NewsletterCreateBulk) Save(ctx context.Context) ([]*Newsletter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Newsletter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NewsletterMutation)
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
func (_c *NewsletterCreateBulk) SaveX(ctx context.Context) []*Newsletter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NewsletterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NewsletterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
