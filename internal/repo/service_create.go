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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ServiceCreate is the builder for creating a Service entity.
type ServiceCreate struct {
	config
	mutation *ServiceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceCreate) SetCreatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableCreatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceCreate) SetUpdatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableUpdatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceCreate) SetName(v string) *ServiceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ServiceCreate) SetSlug(v string) *ServiceCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ServiceCreate) SetCategoryID(v uuid.UUID) *ServiceCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetShortDescription sets the "short_description" field.
func (_c *ServiceCreate) SetShortDescription(v string) *ServiceCreate {
	_c.mutation.SetShortDescription(v)
	return _c
}

// SetDetailedDescription sets the "detailed_description" field.
func (_c *ServiceCreate) SetDetailedDescription(v string) *ServiceCreate {
	_c.mutation.SetDetailedDescription(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ServiceCreate) SetPrice(v int64) *ServiceCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *ServiceCreate) SetDurationMin(v int) *ServiceCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_c *ServiceCreate) SetPreparationInstructions(v string) *ServiceCreate {
	_c.mutation.SetPreparationInstructions(v)
	return _c
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_c *ServiceCreate) SetNillablePreparationInstructions(v *string) *ServiceCreate {
	if v != nil {
		_c.SetPreparationInstructions(*v)
	}
	return _c
}

// SetPostTreatmentCare sets the "post_treatment_care" field.
func (_c *ServiceCreate) SetPostTreatmentCare(v string) *ServiceCreate {
	_c.mutation.SetPostTreatmentCare(v)
	return _c
}

// SetNillablePostTreatmentCare sets the "post_treatment_care" field if the given value is not nil.
func (_c *ServiceCreate) SetNillablePostTreatmentCare(v *string) *ServiceCreate {
	if v != nil {
		_c.SetPostTreatmentCare(*v)
	}
	return _c
}

// SetContraindications sets the "contraindications" field.
func (_c *ServiceCreate) SetContraindications(v string) *ServiceCreate {
	_c.mutation.SetContraindications(v)
	return _c
}

// SetNillableContraindications sets the "contraindications" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableContraindications(v *string) *ServiceCreate {
	if v != nil {
		_c.SetContraindications(*v)
	}
	return _c
}

// SetIsConsultationRequired sets the "is_consultation_required" field.
func (_c *ServiceCreate) SetIsConsultationRequired(v bool) *ServiceCreate {
	_c.mutation.SetIsConsultationRequired(v)
	return _c
}

// SetNillableIsConsultationRequired sets the "is_consultation_required" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableIsConsultationRequired(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetIsConsultationRequired(*v)
	}
	return _c
}

// SetRequiresReferral sets the "requires_referral" field.
func (_c *ServiceCreate) SetRequiresReferral(v bool) *ServiceCreate {
	_c.mutation.SetRequiresReferral(v)
	return _c
}

// SetNillableRequiresReferral sets the "requires_referral" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableRequiresReferral(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetRequiresReferral(*v)
	}
	return _c
}

// SetMinAge sets the "min_age" field.
func (_c *ServiceCreate) SetMinAge(v int) *ServiceCreate {
	_c.mutation.SetMinAge(v)
	return _c
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableMinAge(v *int) *ServiceCreate {
	if v != nil {
		_c.SetMinAge(*v)
	}
	return _c
}

// SetMaxAge sets the "max_age" field.
func (_c *ServiceCreate) SetMaxAge(v int) *ServiceCreate {
	_c.mutation.SetMaxAge(v)
	return _c
}

// SetNillableMaxAge sets the "max_age" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableMaxAge(v *int) *ServiceCreate {
	if v != nil {
		_c.SetMaxAge(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServiceCreate) SetIsActive(v bool) *ServiceCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableIsActive(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsFeatured sets the "is_featured" field.
func (_c *ServiceCreate) SetIsFeatured(v bool) *ServiceCreate {
	_c.mutation.SetIsFeatured(v)
	return _c
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableIsFeatured(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetIsFeatured(*v)
	}
	return _c
}

// SetAvailableOnline sets the "available_online" field.
func (_c *ServiceCreate) SetAvailableOnline(v bool) *ServiceCreate {
	_c.mutation.SetAvailableOnline(v)
	return _c
}

// SetNillableAvailableOnline sets the "available_online" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableAvailableOnline(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetAvailableOnline(*v)
	}
	return _c
}

// SetMetaDescription sets the "meta_description" field.
func (_c *ServiceCreate) SetMetaDescription(v string) *ServiceCreate {
	_c.mutation.SetMetaDescription(v)
	return _c
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableMetaDescription(v *string) *ServiceCreate {
	if v != nil {
		_c.SetMetaDescription(*v)
	}
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *ServiceCreate) SetImageKey(v string) *ServiceCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableImageKey(v *string) *ServiceCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceCreate) SetID(v uuid.UUID) *ServiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableID(v *uuid.UUID) *ServiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCategory sets the "category" edge to the ServiceCategory entity.
func (_c *ServiceCreate) SetCategory(v *ServiceCategory) *ServiceCreate {
	return _c.SetCategoryID(v.ID)
}

// AddPackageIDs adds the "packages" edge to the ServicePackage entity by IDs.
func (_c *ServiceCreate) AddPackageIDs(ids ...uuid.UUID) *ServiceCreate {
	_c.mutation.AddPackageIDs(ids...)
	return _c
}

// AddPackages adds the "packages" edges to the ServicePackage entity.
func (_c *ServiceCreate) AddPackages(v ...*ServicePackage) *ServiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPackageIDs(ids...)
}

// Mutation returns the ServiceMutation object of the builder.
func (_c *ServiceCreate) Mutation() *ServiceMutation {
	return _c.mutation
}

// Save creates the Service in the database.
func (_c *ServiceCreate) Save(ctx context.Context) (*Service, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceCreate) SaveX(ctx context.Context) *Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := service.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := service.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsConsultationRequired(); !ok {
		v := service.DefaultIsConsultationRequired
		_c.mutation.SetIsConsultationRequired(v)
	}
	if _, ok := _c.mutation.RequiresReferral(); !ok {
		v := service.DefaultRequiresReferral
		_c.mutation.SetRequiresReferral(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := service.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		v := service.DefaultIsFeatured
		_c.mutation.SetIsFeatured(v)
	}
	if _, ok := _c.mutation.AvailableOnline(); !ok {
		v := service.DefaultAvailableOnline
		_c.mutation.SetAvailableOnline(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := service.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Service.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Service.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Service.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Service.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Service.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := service.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Service.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`repo: missing required field "Service.category_id"`)}
	}
	if _, ok := _c.mutation.ShortDescription(); !ok {
		return &ValidationError{Name: "short_description", err: errors.New(`repo: missing required field "Service.short_description"`)}
	}
	if v, ok := _c.mutation.ShortDescription(); ok {
		if err := service.ShortDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "short_description", err: fmt.Errorf(`repo: validator failed for field "Service.short_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetailedDescription(); !ok {
		return &ValidationError{Name: "detailed_description", err: errors.New(`repo: missing required field "Service.detailed_description"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "Service.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := service.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Service.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "Service.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := service.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Service.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsConsultationRequired(); !ok {
		return &ValidationError{Name: "is_consultation_required", err: errors.New(`repo: missing required field "Service.is_consultation_required"`)}
	}
	if _, ok := _c.mutation.RequiresReferral(); !ok {
		return &ValidationError{Name: "requires_referral", err: errors.New(`repo: missing required field "Service.requires_referral"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Service.is_active"`)}
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		return &ValidationError{Name: "is_featured", err: errors.New(`repo: missing required field "Service.is_featured"`)}
	}
	if _, ok := _c.mutation.AvailableOnline(); !ok {
		return &ValidationError{Name: "available_online", err: errors.New(`repo: missing required field "Service.available_online"`)}
	}
	if v, ok := _c.mutation.MetaDescription(); ok {
		if err := service.MetaDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "meta_description", err: fmt.Errorf(`repo: validator failed for field "Service.meta_description": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ImageKey(); ok {
		if err := service.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Service.image_key": %w`, err)}
		}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`repo: missing required edge "Service.category"`)}
	}
	return nil
}

func (_c *ServiceCreate) sqlSave(ctx context.Context) (*Service, error) {
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

func (_c *ServiceCreate) createSpec() (*Service, *sqlgraph.CreateSpec) {
	var (
		_node = &Service{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(service.Table, sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(service.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(service.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.ShortDescription(); ok {
		_spec.SetField(service.FieldShortDescription, field.TypeString, value)
		_node.ShortDescription = value
	}
	if value, ok := _c.mutation.DetailedDescription(); ok {
		_spec.SetField(service.FieldDetailedDescription, field.TypeString, value)
		_node.DetailedDescription = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(service.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(service.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.PreparationInstructions(); ok {
		_spec.SetField(service.FieldPreparationInstructions, field.TypeString, value)
		_node.PreparationInstructions = &value
	}
	if value, ok := _c.mutation.PostTreatmentCare(); ok {
		_spec.SetField(service.FieldPostTreatmentCare, field.TypeString, value)
		_node.PostTreatmentCare = &value
	}
	if value, ok := _c.mutation.Contraindications(); ok {
		_spec.SetField(service.FieldContraindications, field.TypeString, value)
		_node.Contraindications = &value
	}
	if value, ok := _c.mutation.IsConsultationRequired(); ok {
		_spec.SetField(service.FieldIsConsultationRequired, field.TypeBool, value)
		_node.IsConsultationRequired = value
	}
	if value, ok := _c.mutation.RequiresReferral(); ok {
		_spec.SetField(service.FieldRequiresReferral, field.TypeBool, value)
		_node.RequiresReferral = value
	}
	if value, ok := _c.mutation.MinAge(); ok {
		_spec.SetField(service.FieldMinAge, field.TypeInt, value)
		_node.MinAge = &value
	}
	if value, ok := _c.mutation.MaxAge(); ok {
		_spec.SetField(service.FieldMaxAge, field.TypeInt, value)
		_node.MaxAge = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(service.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsFeatured(); ok {
		_spec.SetField(service.FieldIsFeatured, field.TypeBool, value)
		_node.IsFeatured = value
	}
	if value, ok := _c.mutation.AvailableOnline(); ok {
		_spec.SetField(service.FieldAvailableOnline, field.TypeBool, value)
		_node.AvailableOnline = value
	}
	if value, ok := _c.mutation.MetaDescription(); ok {
		_spec.SetField(service.FieldMetaDescription, field.TypeString, value)
		_node.MetaDescription = &value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(service.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   service.CategoryTable,
			Columns: []string{service.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servicecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PackagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   service.PackagesTable,
			Columns: service.PackagesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servicepackage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServiceCreateBulk is the builder for creating many Service entities in bulk.
type ServiceCreateBulk struct {
	config
	err      error
	builders []*ServiceCreate
}

// Save creates the Service entities in the database.
func (_c *ServiceCreateBulk) Save(ctx context.Context) ([]*Service, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Service, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceMutation)
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
func (_c *ServiceCreateBulk) SaveX(ctx context.Context) []*Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
