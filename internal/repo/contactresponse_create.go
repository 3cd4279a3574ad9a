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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
)

// ContactResponseCreate is the builder for creating a ContactResponse entity.
type ContactResponseCreate struct {
	config
	mutation *ContactResponseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactResponseCreate) SetCreatedAt(v time.Time) *ContactResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactResponseCreate) SetNillableCreatedAt(v *time.Time) *ContactResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetContactMessageID sets the "contact_message_id" field.
func (_c *ContactResponseCreate) SetContactMessageID(v uuid.UUID) *ContactResponseCreate {
	_c.mutation.SetContactMessageID(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *ContactResponseCreate) SetResponse(v string) *ContactResponseCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetRespondedByID sets the "responded_by_id" field.
func (_c *ContactResponseCreate) SetRespondedByID(v uuid.UUID) *ContactResponseCreate {
	_c.mutation.SetRespondedByID(v)
	return _c
}

// SetNillableRespondedByID sets the "responded_by_id" field if the given value is not nil.
func (_c *ContactResponseCreate) SetNillableRespondedByID(v *uuid.UUID) *ContactResponseCreate {
	if v != nil {
		_c.SetRespondedByID(*v)
	}
	return _c
}

// SetIsSent sets the "is_sent" field.
func (_c *ContactResponseCreate) SetIsSent(v bool) *ContactResponseCreate {
	_c.mutation.SetIsSent(v)
	return _c
}

// SetNillableIsSent sets the "is_sent" field if the given value is not nil.
func (_c *ContactResponseCreate) SetNillableIsSent(v *bool) *ContactResponseCreate {
	if v != nil {
		_c.SetIsSent(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ContactResponseCreate) SetSentAt(v time.Time) *ContactResponseCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ContactResponseCreate) SetNillableSentAt(v *time.Time) *ContactResponseCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactResponseCreate) SetID(v uuid.UUID) *ContactResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContactResponseCreate) SetNillableID(v *uuid.UUID) *ContactResponseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContactMessage sets the "contact_message" edge to the ContactMessage entity.
func (_c *ContactResponseCreate) SetContactMessage(v *ContactMessage) *ContactResponseCreate {
	return _c.SetContactMessageID(v.ID)
}

// Mutation returns the ContactResponseMutation object of the builder.
func (_c *ContactResponseCreate) Mutation() *ContactResponseMutation {
	return _c.mutation
}

// Save creates the ContactResponse in the database.
func (_c *ContactResponseCreate) Save(ctx context.Context) (*ContactResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactResponseCreate) SaveX(ctx context.Context) *ContactResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contactresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsSent(); !ok {
		v := contactresponse.DefaultIsSent
		_c.mutation.SetIsSent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contactresponse.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactResponseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ContactResponse.created_at"`)}
	}
	if _, ok := _c.mutation.ContactMessageID(); !ok {
		return &ValidationError{Name: "contact_message_id", err: errors.New(`repo: missing required field "ContactResponse.contact_message_id"`)}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`repo: missing required field "ContactResponse.response"`)}
	}
	if _, ok := _c.mutation.IsSent(); !ok {
		return &ValidationError{Name: "is_sent", err: errors.New(`repo: missing required field "ContactResponse.is_sent"`)}
	}
	if len(_c.mutation.ContactMessageIDs()) == 0 {
		return &ValidationError{Name: "contact_message", err: errors.New(`repo: missing required edge "ContactResponse.contact_message"`)}
	}
	return nil
}

func (_c *ContactResponseCreate) sqlSave(ctx context.Context) (*ContactResponse, error) {
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

func (_c *ContactResponseCreate) createSpec() (*ContactResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &ContactResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contactresponse.Table, sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contactresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(contactresponse.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.RespondedByID(); ok {
		_spec.SetField(contactresponse.FieldRespondedByID, field.TypeUUID, value)
		_node.RespondedByID = &value
	}
	if value, ok := _c.mutation.IsSent(); ok {
		_spec.SetField(contactresponse.FieldIsSent, field.TypeBool, value)
		_node.IsSent = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(contactresponse.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if nodes := _c.mutation.ContactMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactresponse.ContactMessageTable,
			Columns: []string{contactresponse.ContactMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactMessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContactResponseCreateBulk is the builder for creating many ContactResponse entities in bulk.
type ContactResponseCreateBulk struct {
	config
	err      error
	builders []*ContactResponseCreate
}

// Save creates the ContactResponse entities in the database.
func (_c *ContactResponseCreateBulk) Save(ctx context.Context) ([]*ContactResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContactResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactResponseMutation)
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
func (_c *ContactResponseCreateBulk) SaveX(ctx context.Context) []*ContactResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
