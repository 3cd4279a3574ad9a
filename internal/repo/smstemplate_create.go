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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
)

// SMSTemplateCreate is the builder for creating a SMSTemplate entity.
type SMSTemplateCreate struct {
	config
	mutation *SMSTemplateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SMSTemplateCreate) SetCreatedAt(v time.Time) *SMSTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SMSTemplateCreate) SetNillableCreatedAt(v *time.Time) *SMSTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SMSTemplateCreate) SetUpdatedAt(v time.Time) *SMSTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SMSTemplateCreate) SetNillableUpdatedAt(v *time.Time) *SMSTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SMSTemplateCreate) SetName(v string) *SMSTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTemplateType sets the "template_type" field.
func (_c *SMSTemplateCreate) SetTemplateType(v smstemplate.TemplateType) *SMSTemplateCreate {
	_c.mutation.SetTemplateType(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *SMSTemplateCreate) SetBody(v string) *SMSTemplateCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SMSTemplateCreate) SetIsActive(v bool) *SMSTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SMSTemplateCreate) SetNillableIsActive(v *bool) *SMSTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetVariablesHelp sets the "variables_help" field.
func (_c *SMSTemplateCreate) SetVariablesHelp(v string) *SMSTemplateCreate {
	_c.mutation.SetVariablesHelp(v)
	return _c
}

// SetNillableVariablesHelp sets the "variables_help" field if the given value is not nil.
func (_c *SMSTemplateCreate) SetNillableVariablesHelp(v *string) *SMSTemplateCreate {
	if v != nil {
		_c.SetVariablesHelp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SMSTemplateCreate) SetID(v uuid.UUID) *SMSTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SMSTemplateCreate) SetNillableID(v *uuid.UUID) *SMSTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SMSTemplateMutation object of the builder.
func (_c *SMSTemplateCreate) Mutation() *SMSTemplateMutation {
	return _c.mutation
}

// Save creates the SMSTemplate in the database.
func (_c *SMSTemplateCreate) Save(ctx context.Context) (*SMSTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SMSTemplateCreate) SaveX(ctx context.Context) *SMSTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SMSTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smstemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := smstemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := smstemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := smstemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SMSTemplateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SMSTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SMSTemplate.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "SMSTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := smstemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TemplateType(); !ok {
		return &ValidationError{Name: "template_type", err: errors.New(`repo: missing required field "SMSTemplate.template_type"`)}
	}
	if v, ok := _c.mutation.TemplateType(); ok {
		if err := smstemplate.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.template_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`repo: missing required field "SMSTemplate.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := smstemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "SMSTemplate.is_active"`)}
	}
	return nil
}

func (_c *SMSTemplateCreate) sqlSave(ctx context.Context) (*SMSTemplate, error) {
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

func (_c *SMSTemplateCreate) createSpec() (*SMSTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &SMSTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smstemplate.Table, sqlgraph.NewFieldSpec(smstemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smstemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(smstemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(smstemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TemplateType(); ok {
		_spec.SetField(smstemplate.FieldTemplateType, field.TypeEnum, value)
		_node.TemplateType = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(smstemplate.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(smstemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.VariablesHelp(); ok {
		_spec.SetField(smstemplate.FieldVariablesHelp, field.TypeString, value)
		_node.VariablesHelp = &value
	}
	return _node, _spec
}

// SMSTemplateCreateBulk is the builder for creating many SMSTemplate entities in bulk.
type SMSTemplateCreateBulk struct {
	config
	err      error
	builders []*SMSTemplateCreate
}

// Save creates the SMSTemplate entities in the database.
func (_c *SMSTemplateCreateBulk) Save(ctx context.Context) ([]*SMSTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SMSTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SMSTemplateMutation)
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
func (_c *SMSTemplateCreateBulk) SaveX(ctx context.Context) []*SMSTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
