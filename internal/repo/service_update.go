// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ServiceUpdate is the builder for updating Service entities.
type ServiceUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceMutation
}

// Where appends a list predicates to the ServiceUpdate builder.
func (_u *ServiceUpdate) Where(ps ...predicate.Service) *ServiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceUpdate) SetUpdatedAt(v time.Time) *ServiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceUpdate) SetName(v string) *ServiceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableName(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServiceUpdate) SetSlug(v string) *ServiceUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableSlug(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ServiceUpdate) SetCategoryID(v uuid.UUID) *ServiceUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableCategoryID(v *uuid.UUID) *ServiceUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *ServiceUpdate) SetShortDescription(v string) *ServiceUpdate {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableShortDescription(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// SetDetailedDescription sets the "detailed_description" field.
func (_u *ServiceUpdate) SetDetailedDescription(v string) *ServiceUpdate {
	_u.mutation.SetDetailedDescription(v)
	return _u
}

// SetNillableDetailedDescription sets the "detailed_description" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableDetailedDescription(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetDetailedDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceUpdate) SetPrice(v int64) *ServiceUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillablePrice(v *int64) *ServiceUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceUpdate) AddPrice(v int64) *ServiceUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceUpdate) SetDurationMin(v int) *ServiceUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableDurationMin(v *int) *ServiceUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceUpdate) AddDurationMin(v int) *ServiceUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_u *ServiceUpdate) SetPreparationInstructions(v string) *ServiceUpdate {
	_u.mutation.SetPreparationInstructions(v)
	return _u
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillablePreparationInstructions(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetPreparationInstructions(*v)
	}
	return _u
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (_u *ServiceUpdate) ClearPreparationInstructions() *ServiceUpdate {
	_u.mutation.ClearPreparationInstructions()
	return _u
}

// SetPostTreatmentCare sets the "post_treatment_care" field.
func (_u *ServiceUpdate) SetPostTreatmentCare(v string) *ServiceUpdate {
	_u.mutation.SetPostTreatmentCare(v)
	return _u
}

// SetNillablePostTreatmentCare sets the "post_treatment_care" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillablePostTreatmentCare(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetPostTreatmentCare(*v)
	}
	return _u
}

// ClearPostTreatmentCare clears the value of the "post_treatment_care" field.
func (_u *ServiceUpdate) ClearPostTreatmentCare() *ServiceUpdate {
	_u.mutation.ClearPostTreatmentCare()
	return _u
}

// SetContraindications sets the "contraindications" field.
func (_u *ServiceUpdate) SetContraindications(v string) *ServiceUpdate {
	_u.mutation.SetContraindications(v)
	return _u
}

// SetNillableContraindications sets the "contraindications" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableContraindications(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetContraindications(*v)
	}
	return _u
}

// ClearContraindications clears the value of the "contraindications" field.
func (_u *ServiceUpdate) ClearContraindications() *ServiceUpdate {
	_u.mutation.ClearContraindications()
	return _u
}

// SetIsConsultationRequired sets the "is_consultation_required" field.
func (_u *ServiceUpdate) SetIsConsultationRequired(v bool) *ServiceUpdate {
	_u.mutation.SetIsConsultationRequired(v)
	return _u
}

// SetNillableIsConsultationRequired sets the "is_consultation_required" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableIsConsultationRequired(v *bool) *ServiceUpdate {
	if v != nil {
		_u.SetIsConsultationRequired(*v)
	}
	return _u
}

// SetRequiresReferral sets the "requires_referral" field.
func (_u *ServiceUpdate) SetRequiresReferral(v bool) *ServiceUpdate {
	_u.mutation.SetRequiresReferral(v)
	return _u
}

// SetNillableRequiresReferral sets the "requires_referral" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableRequiresReferral(v *bool) *ServiceUpdate {
	if v != nil {
		_u.SetRequiresReferral(*v)
	}
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *ServiceUpdate) SetMinAge(v int) *ServiceUpdate {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableMinAge(v *int) *ServiceUpdate {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *ServiceUpdate) AddMinAge(v int) *ServiceUpdate {
	_u.mutation.AddMinAge(v)
	return _u
}

// ClearMinAge clears the value of the "min_age" field.
func (_u *ServiceUpdate) ClearMinAge() *ServiceUpdate {
	_u.mutation.ClearMinAge()
	return _u
}

// SetMaxAge sets the "max_age" field.
func (_u *ServiceUpdate) SetMaxAge(v int) *ServiceUpdate {
	_u.mutation.ResetMaxAge()
	_u.mutation.SetMaxAge(v)
	return _u
}

// SetNillableMaxAge sets the "max_age" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableMaxAge(v *int) *ServiceUpdate {
	if v != nil {
		_u.SetMaxAge(*v)
	}
	return _u
}

// AddMaxAge adds value to the "max_age" field.
func (_u *ServiceUpdate) AddMaxAge(v int) *ServiceUpdate {
	_u.mutation.AddMaxAge(v)
	return _u
}

// ClearMaxAge clears the value of the "max_age" field.
func (_u *ServiceUpdate) ClearMaxAge() *ServiceUpdate {
	_u.mutation.ClearMaxAge()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceUpdate) SetIsActive(v bool) *ServiceUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableIsActive(v *bool) *ServiceUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ServiceUpdate) SetIsFeatured(v bool) *ServiceUpdate {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableIsFeatured(v *bool) *ServiceUpdate {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetAvailableOnline sets the "available_online" field.
func (_u *ServiceUpdate) SetAvailableOnline(v bool) *ServiceUpdate {
	_u.mutation.SetAvailableOnline(v)
	return _u
}

// SetNillableAvailableOnline sets the "available_online" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableAvailableOnline(v *bool) *ServiceUpdate {
	if v != nil {
		_u.SetAvailableOnline(*v)
	}
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *ServiceUpdate) SetMetaDescription(v string) *ServiceUpdate {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableMetaDescription(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *ServiceUpdate) ClearMetaDescription() *ServiceUpdate {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ServiceUpdate) SetImageKey(v string) *ServiceUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ServiceUpdate) SetNillableImageKey(v *string) *ServiceUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ServiceUpdate) ClearImageKey() *ServiceUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetCategory sets the "category" edge to the ServiceCategory entity.
func (_u *ServiceUpdate) SetCategory(v *ServiceCategory) *ServiceUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddPackageIDs adds the "packages" edge to the ServicePackage entity by IDs.
func (_u *ServiceUpdate) AddPackageIDs(ids ...uuid.UUID) *ServiceUpdate {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the ServicePackage entity.
func (_u *ServiceUpdate) AddPackages(v ...*ServicePackage) *ServiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// Mutation returns the ServiceMutation object of the builder.
func (_u *ServiceUpdate) Mutation() *ServiceMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the ServiceCategory entity.
func (_u *ServiceUpdate) ClearCategory() *ServiceUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearPackages clears all "packages" edges to the ServicePackage entity.
func (_u *ServiceUpdate) ClearPackages() *ServiceUpdate {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to ServicePackage entities by IDs.
func (_u *ServiceUpdate) RemovePackageIDs(ids ...uuid.UUID) *ServiceUpdate {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to ServicePackage entities.
func (_u *ServiceUpdate) RemovePackages(v ...*ServicePackage) *ServiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := service.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Service.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := service.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Service.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShortDescription(); ok {
		if err := service.ShortDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "short_description", err: fmt.Errorf(`repo: validator failed for field "Service.short_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := service.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Service.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := service.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Service.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaDescription(); ok {
		if err := service.MetaDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "meta_description", err: fmt.Errorf(`repo: validator failed for field "Service.meta_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := service.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Service.image_key": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Service.category"`)
	}
	return nil
}

func (_u *ServiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(service.Table, service.Columns, sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(service.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(service.FieldShortDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailedDescription(); ok {
		_spec.SetField(service.FieldDetailedDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(service.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(service.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(service.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(service.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreparationInstructions(); ok {
		_spec.SetField(service.FieldPreparationInstructions, field.TypeString, value)
	}
	if _u.mutation.PreparationInstructionsCleared() {
		_spec.ClearField(service.FieldPreparationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.PostTreatmentCare(); ok {
		_spec.SetField(service.FieldPostTreatmentCare, field.TypeString, value)
	}
	if _u.mutation.PostTreatmentCareCleared() {
		_spec.ClearField(service.FieldPostTreatmentCare, field.TypeString)
	}
	if value, ok := _u.mutation.Contraindications(); ok {
		_spec.SetField(service.FieldContraindications, field.TypeString, value)
	}
	if _u.mutation.ContraindicationsCleared() {
		_spec.ClearField(service.FieldContraindications, field.TypeString)
	}
	if value, ok := _u.mutation.IsConsultationRequired(); ok {
		_spec.SetField(service.FieldIsConsultationRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresReferral(); ok {
		_spec.SetField(service.FieldRequiresReferral, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(service.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(service.FieldMinAge, field.TypeInt, value)
	}
	if _u.mutation.MinAgeCleared() {
		_spec.ClearField(service.FieldMinAge, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAge(); ok {
		_spec.SetField(service.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAge(); ok {
		_spec.AddField(service.FieldMaxAge, field.TypeInt, value)
	}
	if _u.mutation.MaxAgeCleared() {
		_spec.ClearField(service.FieldMaxAge, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(service.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(service.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailableOnline(); ok {
		_spec.SetField(service.FieldAvailableOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(service.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(service.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(service.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(service.FieldImageKey, field.TypeString)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{service.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceUpdateOne is the builder for updating a single Service entity.
type ServiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceUpdateOne) SetUpdatedAt(v time.Time) *ServiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceUpdateOne) SetName(v string) *ServiceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableName(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServiceUpdateOne) SetSlug(v string) *ServiceUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableSlug(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ServiceUpdateOne) SetCategoryID(v uuid.UUID) *ServiceUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableCategoryID(v *uuid.UUID) *ServiceUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *ServiceUpdateOne) SetShortDescription(v string) *ServiceUpdateOne {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableShortDescription(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// SetDetailedDescription sets the "detailed_description" field.
func (_u *ServiceUpdateOne) SetDetailedDescription(v string) *ServiceUpdateOne {
	_u.mutation.SetDetailedDescription(v)
	return _u
}

// SetNillableDetailedDescription sets the "detailed_description" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableDetailedDescription(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetDetailedDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceUpdateOne) SetPrice(v int64) *ServiceUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillablePrice(v *int64) *ServiceUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceUpdateOne) AddPrice(v int64) *ServiceUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceUpdateOne) SetDurationMin(v int) *ServiceUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableDurationMin(v *int) *ServiceUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceUpdateOne) AddDurationMin(v int) *ServiceUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_u *ServiceUpdateOne) SetPreparationInstructions(v string) *ServiceUpdateOne {
	_u.mutation.SetPreparationInstructions(v)
	return _u
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillablePreparationInstructions(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetPreparationInstructions(*v)
	}
	return _u
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (_u *ServiceUpdateOne) ClearPreparationInstructions() *ServiceUpdateOne {
	_u.mutation.ClearPreparationInstructions()
	return _u
}

// SetPostTreatmentCare sets the "post_treatment_care" field.
func (_u *ServiceUpdateOne) SetPostTreatmentCare(v string) *ServiceUpdateOne {
	_u.mutation.SetPostTreatmentCare(v)
	return _u
}

// SetNillablePostTreatmentCare sets the "post_treatment_care" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillablePostTreatmentCare(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetPostTreatmentCare(*v)
	}
	return _u
}

// ClearPostTreatmentCare clears the value of the "post_treatment_care" field.
func (_u *ServiceUpdateOne) ClearPostTreatmentCare() *ServiceUpdateOne {
	_u.mutation.ClearPostTreatmentCare()
	return _u
}

// SetContraindications sets the "contraindications" field.
func (_u *ServiceUpdateOne) SetContraindications(v string) *ServiceUpdateOne {
	_u.mutation.SetContraindications(v)
	return _u
}

// SetNillableContraindications sets the "contraindications" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableContraindications(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetContraindications(*v)
	}
	return _u
}

// ClearContraindications clears the value of the "contraindications" field.
func (_u *ServiceUpdateOne) ClearContraindications() *ServiceUpdateOne {
	_u.mutation.ClearContraindications()
	return _u
}

// SetIsConsultationRequired sets the "is_consultation_required" field.
func (_u *ServiceUpdateOne) SetIsConsultationRequired(v bool) *ServiceUpdateOne {
	_u.mutation.SetIsConsultationRequired(v)
	return _u
}

// SetNillableIsConsultationRequired sets the "is_consultation_required" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableIsConsultationRequired(v *bool) *ServiceUpdateOne {
	if v != nil {
		_u.SetIsConsultationRequired(*v)
	}
	return _u
}

// SetRequiresReferral sets the "requires_referral" field.
func (_u *ServiceUpdateOne) SetRequiresReferral(v bool) *ServiceUpdateOne {
	_u.mutation.SetRequiresReferral(v)
	return _u
}

// SetNillableRequiresReferral sets the "requires_referral" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableRequiresReferral(v *bool) *ServiceUpdateOne {
	if v != nil {
		_u.SetRequiresReferral(*v)
	}
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *ServiceUpdateOne) SetMinAge(v int) *ServiceUpdateOne {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableMinAge(v *int) *ServiceUpdateOne {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *ServiceUpdateOne) AddMinAge(v int) *ServiceUpdateOne {
	_u.mutation.AddMinAge(v)
	return _u
}

// ClearMinAge clears the value of the "min_age" field.
func (_u *ServiceUpdateOne) ClearMinAge() *ServiceUpdateOne {
	_u.mutation.ClearMinAge()
	return _u
}

// SetMaxAge sets the "max_age" field.
func (_u *ServiceUpdateOne) SetMaxAge(v int) *ServiceUpdateOne {
	_u.mutation.ResetMaxAge()
	_u.mutation.SetMaxAge(v)
	return _u
}

// SetNillableMaxAge sets the "max_age" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableMaxAge(v *int) *ServiceUpdateOne {
	if v != nil {
		_u.SetMaxAge(*v)
	}
	return _u
}

// AddMaxAge adds value to the "max_age" field.
func (_u *ServiceUpdateOne) AddMaxAge(v int) *ServiceUpdateOne {
	_u.mutation.AddMaxAge(v)
	return _u
}

// ClearMaxAge clears the value of the "max_age" field.
func (_u *ServiceUpdateOne) ClearMaxAge() *ServiceUpdateOne {
	_u.mutation.ClearMaxAge()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceUpdateOne) SetIsActive(v bool) *ServiceUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableIsActive(v *bool) *ServiceUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ServiceUpdateOne) SetIsFeatured(v bool) *ServiceUpdateOne {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableIsFeatured(v *bool) *ServiceUpdateOne {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetAvailableOnline sets the "available_online" field.
func (_u *ServiceUpdateOne) SetAvailableOnline(v bool) *ServiceUpdateOne {
	_u.mutation.SetAvailableOnline(v)
	return _u
}

// SetNillableAvailableOnline sets the "available_online" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableAvailableOnline(v *bool) *ServiceUpdateOne {
	if v != nil {
		_u.SetAvailableOnline(*v)
	}
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *ServiceUpdateOne) SetMetaDescription(v string) *ServiceUpdateOne {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableMetaDescription(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *ServiceUpdateOne) ClearMetaDescription() *ServiceUpdateOne {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ServiceUpdateOne) SetImageKey(v string) *ServiceUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ServiceUpdateOne) SetNillableImageKey(v *string) *ServiceUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ServiceUpdateOne) ClearImageKey() *ServiceUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetCategory sets the "category" edge to the ServiceCategory entity.
func (_u *ServiceUpdateOne) SetCategory(v *ServiceCategory) *ServiceUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddPackageIDs adds the "packages" edge to the ServicePackage entity by IDs.
func (_u *ServiceUpdateOne) AddPackageIDs(ids ...uuid.UUID) *ServiceUpdateOne {
	_u.mutation.AddPackageIDs(ids...)
	return _u
}

// AddPackages adds the "packages" edges to the ServicePackage entity.
func (_u *ServiceUpdateOne) AddPackages(v ...*ServicePackage) *ServiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPackageIDs(ids...)
}

// Mutation returns the ServiceMutation object of the builder.
func (_u *ServiceUpdateOne) Mutation() *ServiceMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the ServiceCategory entity.
func (_u *ServiceUpdateOne) ClearCategory() *ServiceUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearPackages clears all "packages" edges to the ServicePackage entity.
func (_u *ServiceUpdateOne) ClearPackages() *ServiceUpdateOne {
	_u.mutation.ClearPackages()
	return _u
}

// RemovePackageIDs removes the "packages" edge to ServicePackage entities by IDs.
func (_u *ServiceUpdateOne) RemovePackageIDs(ids ...uuid.UUID) *ServiceUpdateOne {
	_u.mutation.RemovePackageIDs(ids...)
	return _u
}

// RemovePackages removes "packages" edges to ServicePackage entities.
func (_u *ServiceUpdateOne) RemovePackages(v ...*ServicePackage) *ServiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePackageIDs(ids...)
}

// Where appends a list predicates to the ServiceUpdate builder.
func (_u *ServiceUpdateOne) Where(ps ...predicate.Service) *ServiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceUpdateOne) Select(field string, fields ...string) *ServiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Service entity.
func (_u *ServiceUpdateOne) Save(ctx context.Context) (*Service, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceUpdateOne) SaveX(ctx context.Context) *Service {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := service.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Service.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := service.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Service.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShortDescription(); ok {
		if err := service.ShortDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "short_description", err: fmt.Errorf(`repo: validator failed for field "Service.short_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := service.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Service.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := service.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Service.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MetaDescription(); ok {
		if err := service.MetaDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "meta_description", err: fmt.Errorf(`repo: validator failed for field "Service.meta_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := service.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Service.image_key": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Service.category"`)
	}
	return nil
}

func (_u *ServiceUpdateOne) sqlSave(ctx context.Context) (_node *Service, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(service.Table, service.Columns, sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Service.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, service.FieldID)
		for _, f := range fields {
			if !service.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != service.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(service.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(service.FieldShortDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailedDescription(); ok {
		_spec.SetField(service.FieldDetailedDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(service.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(service.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(service.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(service.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreparationInstructions(); ok {
		_spec.SetField(service.FieldPreparationInstructions, field.TypeString, value)
	}
	if _u.mutation.PreparationInstructionsCleared() {
		_spec.ClearField(service.FieldPreparationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.PostTreatmentCare(); ok {
		_spec.SetField(service.FieldPostTreatmentCare, field.TypeString, value)
	}
	if _u.mutation.PostTreatmentCareCleared() {
		_spec.ClearField(service.FieldPostTreatmentCare, field.TypeString)
	}
	if value, ok := _u.mutation.Contraindications(); ok {
		_spec.SetField(service.FieldContraindications, field.TypeString, value)
	}
	if _u.mutation.ContraindicationsCleared() {
		_spec.ClearField(service.FieldContraindications, field.TypeString)
	}
	if value, ok := _u.mutation.IsConsultationRequired(); ok {
		_spec.SetField(service.FieldIsConsultationRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresReferral(); ok {
		_spec.SetField(service.FieldRequiresReferral, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(service.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(service.FieldMinAge, field.TypeInt, value)
	}
	if _u.mutation.MinAgeCleared() {
		_spec.ClearField(service.FieldMinAge, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAge(); ok {
		_spec.SetField(service.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAge(); ok {
		_spec.AddField(service.FieldMaxAge, field.TypeInt, value)
	}
	if _u.mutation.MaxAgeCleared() {
		_spec.ClearField(service.FieldMaxAge, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(service.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(service.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailableOnline(); ok {
		_spec.SetField(service.FieldAvailableOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(service.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(service.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(service.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(service.FieldImageKey, field.TypeString)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPackagesIDs(); len(nodes) > 0 && !_u.mutation.PackagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Service{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{service.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
