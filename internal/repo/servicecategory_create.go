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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
)

// ServiceCategoryCreate is the builder for creating a ServiceCategory entity.
type ServiceCategoryCreate struct {
	config
	mutation *ServiceCategoryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceCategoryCreate) SetCreatedAt(v time.Time) *ServiceCategoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceCategoryCreate) SetNillableCreatedAt(v *time.Time) *ServiceCategoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceCategoryCreate) SetName(v string) *ServiceCategoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ServiceCategoryCreate) SetSlug(v string) *ServiceCategoryCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceCategoryCreate) SetDescription(v string) *ServiceCategoryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetIcon sets the "icon" field.
func (_c *ServiceCategoryCreate) SetIcon(v string) *ServiceCategoryCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServiceCategoryCreate) SetIsActive(v bool) *ServiceCategoryCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServiceCategoryCreate) SetNillableIsActive(v *bool) *ServiceCategoryCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *ServiceCategoryCreate) SetDisplayOrder(v int) *ServiceCategoryCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *ServiceCategoryCreate) SetNillableDisplayOrder(v *int) *ServiceCategoryCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceCategoryCreate) SetID(v uuid.UUID) *ServiceCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceCategoryCreate) SetNillableID(v *uuid.UUID) *ServiceCategoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_c *ServiceCategoryCreate) AddServiceIDs(ids ...uuid.UUID) *ServiceCategoryCreate {
	_c.mutation.AddServiceIDs(ids...)
	return _c
}

// AddServices adds the "services" edges to the Service entity.
func (_c *ServiceCategoryCreate) AddServices(v ...*Service) *ServiceCategoryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceIDs(ids...)
}

// Mutation returns the ServiceCategoryMutation object of the builder.
func (_c *ServiceCategoryCreate) Mutation() *ServiceCategoryMutation {
	return _c.mutation
}

// Save creates the ServiceCategory in the database.
func (_c *ServiceCategoryCreate) Save(ctx context.Context) (*ServiceCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceCategoryCreate) SaveX(ctx context.Context) *ServiceCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceCategoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicecategory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := servicecategory.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := servicecategory.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servicecategory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceCategoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ServiceCategory.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "ServiceCategory.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := servicecategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "ServiceCategory.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := servicecategory.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "ServiceCategory.description"`)}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`repo: missing required field "ServiceCategory.icon"`)}
	}
	if v, ok := _c.mutation.Icon(); ok {
		if err := servicecategory.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.icon": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ServiceCategory.is_active"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`repo: missing required field "ServiceCategory.display_order"`)}
	}
	if v, ok := _c.mutation.DisplayOrder(); ok {
		if err := servicecategory.DisplayOrderValidator(v); err != nil {
			return &ValidationError{Name: "display_order", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.display_order": %w`, err)}
		}
	}
	return nil
}

func (_c *ServiceCategoryCreate) sqlSave(ctx context.Context) (*ServiceCategory, error) {
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

func (_c *ServiceCategoryCreate) createSpec() (*ServiceCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicecategory.Table, sqlgraph.NewFieldSpec(servicecategory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicecategory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(servicecategory.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(servicecategory.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(servicecategory.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(servicecategory.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(servicecategory.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(servicecategory.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if nodes := _c.mutation.ServicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servicecategory.ServicesTable,
			Columns: []string{servicecategory.ServicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServiceCategoryCreateBulk is the builder for creating many ServiceCategory entities in bulk.
type ServiceCategoryCreateBulk struct {
	config
	err      error
	builders []*ServiceCategoryCreate
}

// Save creates the ServiceCategory entities in the database.
func (_c *ServiceCategoryCreateBulk) Save(ctx context.Context) ([]*ServiceCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceCategoryMutation)
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
func (_c *ServiceCategoryCreateBulk) SaveX(ctx context.Context) []*ServiceCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
