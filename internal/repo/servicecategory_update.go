// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
)

// ServiceCategoryUpdate is the builder for updating ServiceCategory entities.
type ServiceCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceCategoryMutation
}

// Where appends a list predicates to the ServiceCategoryUpdate builder.
func (_u *ServiceCategoryUpdate) Where(ps ...predicate.ServiceCategory) *ServiceCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceCategoryUpdate) SetName(v string) *ServiceCategoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableName(v *string) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServiceCategoryUpdate) SetSlug(v string) *ServiceCategoryUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableSlug(v *string) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceCategoryUpdate) SetDescription(v string) *ServiceCategoryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableDescription(v *string) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *ServiceCategoryUpdate) SetIcon(v string) *ServiceCategoryUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableIcon(v *string) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceCategoryUpdate) SetIsActive(v bool) *ServiceCategoryUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableIsActive(v *bool) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ServiceCategoryUpdate) SetDisplayOrder(v int) *ServiceCategoryUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ServiceCategoryUpdate) SetNillableDisplayOrder(v *int) *ServiceCategoryUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ServiceCategoryUpdate) AddDisplayOrder(v int) *ServiceCategoryUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_u *ServiceCategoryUpdate) AddServiceIDs(ids ...uuid.UUID) *ServiceCategoryUpdate {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the Service entity.
func (_u *ServiceCategoryUpdate) AddServices(v ...*Service) *ServiceCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ServiceCategoryMutation object of the builder.
func (_u *ServiceCategoryUpdate) Mutation() *ServiceCategoryMutation {
	return _u.mutation
}

// ClearServices clears all "services" edges to the Service entity.
func (_u *ServiceCategoryUpdate) ClearServices() *ServiceCategoryUpdate {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to Service entities by IDs.
func (_u *ServiceCategoryUpdate) RemoveServiceIDs(ids ...uuid.UUID) *ServiceCategoryUpdate {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to Service entities.
func (_u *ServiceCategoryUpdate) RemoveServices(v ...*Service) *ServiceCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceCategoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicecategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicecategory.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Icon(); ok {
		if err := servicecategory.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayOrder(); ok {
		if err := servicecategory.DisplayOrderValidator(v); err != nil {
			return &ValidationError{Name: "display_order", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.display_order": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicecategory.Table, servicecategory.Columns, sqlgraph.NewFieldSpec(servicecategory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicecategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicecategory.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicecategory.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(servicecategory.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicecategory.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(servicecategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(servicecategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicecategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceCategoryUpdateOne is the builder for updating a single ServiceCategory entity.
type ServiceCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceCategoryMutation
}

// SetName sets the "name" field.
func (_u *ServiceCategoryUpdateOne) SetName(v string) *ServiceCategoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableName(v *string) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServiceCategoryUpdateOne) SetSlug(v string) *ServiceCategoryUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableSlug(v *string) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceCategoryUpdateOne) SetDescription(v string) *ServiceCategoryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableDescription(v *string) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *ServiceCategoryUpdateOne) SetIcon(v string) *ServiceCategoryUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableIcon(v *string) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceCategoryUpdateOne) SetIsActive(v bool) *ServiceCategoryUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableIsActive(v *bool) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ServiceCategoryUpdateOne) SetDisplayOrder(v int) *ServiceCategoryUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ServiceCategoryUpdateOne) SetNillableDisplayOrder(v *int) *ServiceCategoryUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ServiceCategoryUpdateOne) AddDisplayOrder(v int) *ServiceCategoryUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// AddServiceIDs adds the "services" edge to the Service entity by IDs.
func (_u *ServiceCategoryUpdateOne) AddServiceIDs(ids ...uuid.UUID) *ServiceCategoryUpdateOne {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the Service entity.
func (_u *ServiceCategoryUpdateOne) AddServices(v ...*Service) *ServiceCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ServiceCategoryMutation object of the builder.
func (_u *ServiceCategoryUpdateOne) Mutation() *ServiceCategoryMutation {
	return _u.mutation
}

// ClearServices clears all "services" edges to the Service entity.
func (_u *ServiceCategoryUpdateOne) ClearServices() *ServiceCategoryUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to Service entities by IDs.
func (_u *ServiceCategoryUpdateOne) RemoveServiceIDs(ids ...uuid.UUID) *ServiceCategoryUpdateOne {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to Service entities.
func (_u *ServiceCategoryUpdateOne) RemoveServices(v ...*Service) *ServiceCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Where appends a list predicates to the ServiceCategoryUpdate builder.
func (_u *ServiceCategoryUpdateOne) Where(ps ...predicate.ServiceCategory) *ServiceCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceCategoryUpdateOne) Select(field string, fields ...string) *ServiceCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceCategory entity.
func (_u *ServiceCategoryUpdateOne) Save(ctx context.Context) (*ServiceCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceCategoryUpdateOne) SaveX(ctx context.Context) *ServiceCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceCategoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := servicecategory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicecategory.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Icon(); ok {
		if err := servicecategory.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayOrder(); ok {
		if err := servicecategory.DisplayOrderValidator(v); err != nil {
			return &ValidationError{Name: "display_order", err: fmt.Errorf(`repo: validator failed for field "ServiceCategory.display_order": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceCategoryUpdateOne) sqlSave(ctx context.Context) (_node *ServiceCategory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicecategory.Table, servicecategory.Columns, sqlgraph.NewFieldSpec(servicecategory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ServiceCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicecategory.FieldID)
		for _, f := range fields {
			if !servicecategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != servicecategory.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(servicecategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicecategory.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicecategory.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(servicecategory.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(servicecategory.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(servicecategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(servicecategory.FieldDisplayOrder, field.TypeInt, value)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicecategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
