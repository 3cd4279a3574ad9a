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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ServicePackageCreate is the builder for creating a ServicePackage entity.
type ServicePackageCreate struct {
	config
	mutation *ServicePackageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServicePackageCreate) SetCreatedAt(v time.Time) *ServicePackageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableCreatedAt(v *time.Time) *ServicePackageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServicePackageCreate) SetUpdatedAt(v time.Time) *ServicePackageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableUpdatedAt(v *time.Time) *ServicePackageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ServicePackageCreate) SetName(v string) *ServicePackageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ServicePackageCreate) SetSlug(v string) *ServicePackageCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServicePackageCreate) SetDescription(v string) *ServicePackageCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetOriginalPrice sets the "original_price" field.
func (_c *ServicePackageCreate) SetOriginalPrice(v int64) *ServicePackageCreate {
	_c.mutation.SetOriginalPrice(v)
	return _c
}

// SetPackagePrice sets the "package_price" field.
func (_c *ServicePackageCreate) SetPackagePrice(v int64) *ServicePackageCreate {
	_c.mutation.SetPackagePrice(v)
	return _c
}

// SetValidityDays sets the "validity_days" field.
func (_c *ServicePackageCreate) SetValidityDays(v int) *ServicePackageCreate {
	_c.mutation.SetValidityDays(v)
	return _c
}

// SetNillableValidityDays sets the "validity_days" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableValidityDays(v *int) *ServicePackageCreate {
	if v != nil {
		_c.SetValidityDays(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServicePackageCreate) SetIsActive(v bool) *ServicePackageCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableIsActive(v *bool) *ServicePackageCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *ServicePackageCreate) SetImageKey(v string) *ServicePackageCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableImageKey(v *string) *ServicePackageCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServicePackageCreate) SetID(v uuid.UUID) *ServicePackageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServicePackageCreate) SetNillableID(v *uuid.UUID) *ServicePackageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_c *ServicePackageCreate) AddServiceIDs(ids ...uuid.UUID) *ServicePackageCreate {
	_c.mutation.AddServiceIDs(ids...)
	return _c
}

// AddServices adds the "services" edges to the Service entity.
func (_c *ServicePackageCreate) AddServices(v ...*Service) *ServicePackageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceIDs(ids...)
}

// Mutation returns the ServicePackageMutation object of the builder.
func (_c *ServicePackageCreate) Mutation() *ServicePackageMutation {
	return _c.mutation
}

// Save creates the ServicePackage in the database.
func (_c *ServicePackageCreate) Save(ctx context.Context) (*ServicePackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServicePackageCreate) SaveX(ctx context.Context) *ServicePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServicePackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServicePackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServicePackageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicepackage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := servicepackage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ValidityDays(); !ok {
		v := servicepackage.DefaultValidityDays
		_c.mutation.SetValidityDays(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := servicepackage.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servicepackage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServicePackageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ServicePackage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ServicePackage.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "ServicePackage.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := servicepackage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "ServicePackage.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := servicepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "ServicePackage.description"`)}
	}
	if _, ok := _c.mutation.OriginalPrice(); !ok {
		return &ValidationError{Name: "original_price", err: errors.New(`repo: missing required field "ServicePackage.original_price"`)}
	}
	if v, ok := _c.mutation.OriginalPrice(); ok {
		if err := servicepackage.OriginalPriceValidator(v); err != nil {
			return &ValidationError{Name: "original_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.original_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PackagePrice(); !ok {
		return &ValidationError{Name: "package_price", err: errors.New(`repo: missing required field "ServicePackage.package_price"`)}
	}
	if v, ok := _c.mutation.PackagePrice(); ok {
		if err := servicepackage.PackagePriceValidator(v); err != nil {
			return &ValidationError{Name: "package_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.package_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidityDays(); !ok {
		return &ValidationError{Name: "validity_days", err: errors.New(`repo: missing required field "ServicePackage.validity_days"`)}
	}
	if v, ok := _c.mutation.ValidityDays(); ok {
		if err := servicepackage.ValidityDaysValidator(v); err != nil {
			return &ValidationError{Name: "validity_days", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.validity_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ServicePackage.is_active"`)}
	}
	if v, ok := _c.mutation.ImageKey(); ok {
		if err := servicepackage.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.image_key": %w`, err)}
		}
	}
	return nil
}

func (_c *ServicePackageCreate) sqlSave(ctx context.Context) (*ServicePackage, error) {
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

func (_c *ServicePackageCreate) createSpec() (*ServicePackage, *sqlgraph.CreateSpec) {
	var (
		_node = &ServicePackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicepackage.Table, sqlgraph.NewFieldSpec(servicepackage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicepackage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(servicepackage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(servicepackage.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(servicepackage.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(servicepackage.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OriginalPrice(); ok {
		_spec.SetField(servicepackage.FieldOriginalPrice, field.TypeInt64, value)
		_node.OriginalPrice = value
	}
	if value, ok := _c.mutation.PackagePrice(); ok {
		_spec.SetField(servicepackage.FieldPackagePrice, field.TypeInt64, value)
		_node.PackagePrice = value
	}
	if value, ok := _c.mutation.ValidityDays(); ok {
		_spec.SetField(servicepackage.FieldValidityDays, field.TypeInt, value)
		_node.ValidityDays = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(servicepackage.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(servicepackage.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if nodes := _c.mutation.ServicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   servicepackage.ServicesTable,
			Columns: servicepackage.ServicesPrimaryKey,
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

// ServicePackageCreateBulk is the builder for creating many ServicePackage entities in bulk.
type ServicePackageCreateBulk struct {
	config
	err      error
	builders []*ServicePackageCreate
}

// Save creates the ServicePackage entities in the database.
func (_c *ServicePackageCreateBulk) Save(ctx context.Context) ([]*ServicePackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServicePackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServicePackageMutation)
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
func (_c *ServicePackageCreateBulk) SaveX(ctx context.Context) []*ServicePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServicePackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServicePackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
