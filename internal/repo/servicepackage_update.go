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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ServicePackageUpdate is the builder for updating ServicePackage entities.
type ServicePackageUpdate struct {
	config
	hooks    []Hook
	mutation *ServicePackageMutation
}

// Where appends a list predicates to the ServicePackageUpdate builder.
func (_u *ServicePackageUpdate) Where(ps ...predicate.ServicePackage) *ServicePackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServicePackageUpdate) SetUpdatedAt(v time.Time) *ServicePackageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServicePackageUpdate) SetName(v string) *ServicePackageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableName(v *string) *ServicePackageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServicePackageUpdate) SetSlug(v string) *ServicePackageUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableSlug(v *string) *ServicePackageUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServicePackageUpdate) SetDescription(v string) *ServicePackageUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableDescription(v *string) *ServicePackageUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *ServicePackageUpdate) SetOriginalPrice(v int64) *ServicePackageUpdate {
	_u.mutation.ResetOriginalPrice()
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableOriginalPrice(v *int64) *ServicePackageUpdate {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// AddOriginalPrice adds value to the "original_price" field.
func (_u *ServicePackageUpdate) AddOriginalPrice(v int64) *ServicePackageUpdate {
	_u.mutation.AddOriginalPrice(v)
	return _u
}

// SetPackagePrice sets the "package_price" field.
func (_u *ServicePackageUpdate) SetPackagePrice(v int64) *ServicePackageUpdate {
	_u.mutation.ResetPackagePrice()
	_u.mutation.SetPackagePrice(v)
	return _u
}

// SetNillablePackagePrice sets the "package_price" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillablePackagePrice(v *int64) *ServicePackageUpdate {
	if v != nil {
		_u.SetPackagePrice(*v)
	}
	return _u
}

// AddPackagePrice adds value to the "package_price" field.
func (_u *ServicePackageUpdate) AddPackagePrice(v int64) *ServicePackageUpdate {
	_u.mutation.AddPackagePrice(v)
	return _u
}

// SetValidityDays sets the "validity_days" field.
func (_u *ServicePackageUpdate) SetValidityDays(v int) *ServicePackageUpdate {
	_u.mutation.ResetValidityDays()
	_u.mutation.SetValidityDays(v)
	return _u
}

// SetNillableValidityDays sets the "validity_days" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableValidityDays(v *int) *ServicePackageUpdate {
	if v != nil {
		_u.SetValidityDays(*v)
	}
	return _u
}

// AddValidityDays adds value to the "validity_days" field.
func (_u *ServicePackageUpdate) AddValidityDays(v int) *ServicePackageUpdate {
	_u.mutation.AddValidityDays(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServicePackageUpdate) SetIsActive(v bool) *ServicePackageUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableIsActive(v *bool) *ServicePackageUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ServicePackageUpdate) SetImageKey(v string) *ServicePackageUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ServicePackageUpdate) SetNillableImageKey(v *string) *ServicePackageUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ServicePackageUpdate) ClearImageKey() *ServicePackageUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_u *ServicePackageUpdate) AddServiceIDs(ids ...uuid.UUID) *ServicePackageUpdate {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the Service entity.
func (_u *ServicePackageUpdate) AddServices(v ...*Service) *ServicePackageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ServicePackageMutation object of the builder.
func (_u *ServicePackageUpdate) Mutation() *ServicePackageMutation {
	return _u.mutation
}

// ClearServices clears all "services" edges to the Service entity.
func (_u *ServicePackageUpdate) ClearServices() *ServicePackageUpdate {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to Service entities by IDs.
func (_u *ServicePackageUpdate) RemoveServiceIDs(ids ...uuid.UUID) *ServicePackageUpdate {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to Service entities.
func (_u *ServicePackageUpdate) RemoveServices(v ...*Service) *ServicePackageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServicePackageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServicePackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServicePackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServicePackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServicePackageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicepackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServicePackageUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicepackage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalPrice(); ok {
		if err := servicepackage.OriginalPriceValidator(v); err != nil {
			return &ValidationError{Name: "original_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.original_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackagePrice(); ok {
		if err := servicepackage.PackagePriceValidator(v); err != nil {
			return &ValidationError{Name: "package_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.package_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidityDays(); ok {
		if err := servicepackage.ValidityDaysValidator(v); err != nil {
			return &ValidationError{Name: "validity_days", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.validity_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := servicepackage.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.image_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ServicePackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicepackage.Table, servicepackage.Columns, sqlgraph.NewFieldSpec(servicepackage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servicepackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicepackage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicepackage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicepackage.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(servicepackage.FieldOriginalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalPrice(); ok {
		_spec.AddField(servicepackage.FieldOriginalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PackagePrice(); ok {
		_spec.SetField(servicepackage.FieldPackagePrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPackagePrice(); ok {
		_spec.AddField(servicepackage.FieldPackagePrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValidityDays(); ok {
		_spec.SetField(servicepackage.FieldValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidityDays(); ok {
		_spec.AddField(servicepackage.FieldValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicepackage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(servicepackage.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(servicepackage.FieldImageKey, field.TypeString)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServicePackageUpdateOne is the builder for updating a single ServicePackage entity.
type ServicePackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServicePackageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServicePackageUpdateOne) SetUpdatedAt(v time.Time) *ServicePackageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ServicePackageUpdateOne) SetName(v string) *ServicePackageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableName(v *string) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServicePackageUpdateOne) SetSlug(v string) *ServicePackageUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableSlug(v *string) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServicePackageUpdateOne) SetDescription(v string) *ServicePackageUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableDescription(v *string) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOriginalPrice sets the "original_price" field.
func (_u *ServicePackageUpdateOne) SetOriginalPrice(v int64) *ServicePackageUpdateOne {
	_u.mutation.ResetOriginalPrice()
	_u.mutation.SetOriginalPrice(v)
	return _u
}

// SetNillableOriginalPrice sets the "original_price" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableOriginalPrice(v *int64) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetOriginalPrice(*v)
	}
	return _u
}

// AddOriginalPrice adds value to the "original_price" field.
func (_u *ServicePackageUpdateOne) AddOriginalPrice(v int64) *ServicePackageUpdateOne {
	_u.mutation.AddOriginalPrice(v)
	return _u
}

// SetPackagePrice sets the "package_price" field.
func (_u *ServicePackageUpdateOne) SetPackagePrice(v int64) *ServicePackageUpdateOne {
	_u.mutation.ResetPackagePrice()
	_u.mutation.SetPackagePrice(v)
	return _u
}

// SetNillablePackagePrice sets the "package_price" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillablePackagePrice(v *int64) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetPackagePrice(*v)
	}
	return _u
}

// AddPackagePrice adds value to the "package_price" field.
func (_u *ServicePackageUpdateOne) AddPackagePrice(v int64) *ServicePackageUpdateOne {
	_u.mutation.AddPackagePrice(v)
	return _u
}

// SetValidityDays sets the "validity_days" field.
func (_u *ServicePackageUpdateOne) SetValidityDays(v int) *ServicePackageUpdateOne {
	_u.mutation.ResetValidityDays()
	_u.mutation.SetValidityDays(v)
	return _u
}

// SetNillableValidityDays sets the "validity_days" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableValidityDays(v *int) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetValidityDays(*v)
	}
	return _u
}

// AddValidityDays adds value to the "validity_days" field.
func (_u *ServicePackageUpdateOne) AddValidityDays(v int) *ServicePackageUpdateOne {
	_u.mutation.AddValidityDays(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServicePackageUpdateOne) SetIsActive(v bool) *ServicePackageUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableIsActive(v *bool) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ServicePackageUpdateOne) SetImageKey(v string) *ServicePackageUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ServicePackageUpdateOne) SetNillableImageKey(v *string) *ServicePackageUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ServicePackageUpdateOne) ClearImageKey() *ServicePackageUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_u *ServicePackageUpdateOne) AddServiceIDs(ids ...uuid.UUID) *ServicePackageUpdateOne {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the Service entity.
func (_u *ServicePackageUpdateOne) AddServices(v ...*Service) *ServicePackageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ServicePackageMutation object of the builder.
func (_u *ServicePackageUpdateOne) Mutation() *ServicePackageMutation {
	return _u.mutation
}

// ClearServices clears all "services" edges to the Service entity.
func (_u *ServicePackageUpdateOne) ClearServices() *ServicePackageUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to Service entities by IDs.
func (_u *ServicePackageUpdateOne) RemoveServiceIDs(ids ...uuid.UUID) *ServicePackageUpdateOne {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to Service entities.
func (_u *ServicePackageUpdateOne) RemoveServices(v ...*Service) *ServicePackageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Where appends a list predicates to the ServicePackageUpdate builder.
func (_u *ServicePackageUpdateOne) Where(ps ...predicate.ServicePackage) *ServicePackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServicePackageUpdateOne) Select(field string, fields ...string) *ServicePackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServicePackage entity.
func (_u *ServicePackageUpdateOne) Save(ctx context.Context) (*ServicePackage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServicePackageUpdateOne) SaveX(ctx context.Context) *ServicePackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServicePackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServicePackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServicePackageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicepackage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServicePackageUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicepackage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicepackage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalPrice(); ok {
		if err := servicepackage.OriginalPriceValidator(v); err != nil {
			return &ValidationError{Name: "original_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.original_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackagePrice(); ok {
		if err := servicepackage.PackagePriceValidator(v); err != nil {
			return &ValidationError{Name: "package_price", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.package_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidityDays(); ok {
		if err := servicepackage.ValidityDaysValidator(v); err != nil {
			return &ValidationError{Name: "validity_days", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.validity_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := servicepackage.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "ServicePackage.image_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ServicePackageUpdateOne) sqlSave(ctx context.Context) (_node *ServicePackage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicepackage.Table, servicepackage.Columns, sqlgraph.NewFieldSpec(servicepackage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ServicePackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicepackage.FieldID)
		for _, f := range fields {
			if !servicepackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != servicepackage.FieldID {
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
		_spec.SetField(servicepackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicepackage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicepackage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicepackage.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalPrice(); ok {
		_spec.SetField(servicepackage.FieldOriginalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalPrice(); ok {
		_spec.AddField(servicepackage.FieldOriginalPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PackagePrice(); ok {
		_spec.SetField(servicepackage.FieldPackagePrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPackagePrice(); ok {
		_spec.AddField(servicepackage.FieldPackagePrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValidityDays(); ok {
		_spec.SetField(servicepackage.FieldValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidityDays(); ok {
		_spec.AddField(servicepackage.FieldValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicepackage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(servicepackage.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(servicepackage.FieldImageKey, field.TypeString)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServicePackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
