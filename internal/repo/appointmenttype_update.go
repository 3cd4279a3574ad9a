// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// AppointmentTypeUpdate is the builder for updating AppointmentType entities.
type AppointmentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentTypeMutation
}

// Where appends a list predicates to the AppointmentTypeUpdate builder.
func (_u *AppointmentTypeUpdate) Where(ps ...predicate.AppointmentType) *AppointmentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AppointmentTypeUpdate) SetName(v string) *AppointmentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableName(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AppointmentTypeUpdate) SetSlug(v string) *AppointmentTypeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableSlug(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AppointmentTypeUpdate) SetDescription(v string) *AppointmentTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableDescription(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AppointmentTypeUpdate) ClearDescription() *AppointmentTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *AppointmentTypeUpdate) SetDurationMin(v int) *AppointmentTypeUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableDurationMin(v *int) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *AppointmentTypeUpdate) AddDurationMin(v int) *AppointmentTypeUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetColor sets the "color" field.
func (_u *AppointmentTypeUpdate) SetColor(v string) *AppointmentTypeUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableColor(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetIsConsultation sets the "is_consultation" field.
func (_u *AppointmentTypeUpdate) SetIsConsultation(v bool) *AppointmentTypeUpdate {
	_u.mutation.SetIsConsultation(v)
	return _u
}

// SetNillableIsConsultation sets the "is_consultation" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableIsConsultation(v *bool) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetIsConsultation(*v)
	}
	return _u
}

// SetRequiresPreparation sets the "requires_preparation" field.
func (_u *AppointmentTypeUpdate) SetRequiresPreparation(v bool) *AppointmentTypeUpdate {
	_u.mutation.SetRequiresPreparation(v)
	return _u
}

// SetNillableRequiresPreparation sets the "requires_preparation" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableRequiresPreparation(v *bool) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetRequiresPreparation(*v)
	}
	return _u
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_u *AppointmentTypeUpdate) SetPreparationInstructions(v string) *AppointmentTypeUpdate {
	_u.mutation.SetPreparationInstructions(v)
	return _u
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillablePreparationInstructions(v *string) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetPreparationInstructions(*v)
	}
	return _u
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (_u *AppointmentTypeUpdate) ClearPreparationInstructions() *AppointmentTypeUpdate {
	_u.mutation.ClearPreparationInstructions()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentTypeUpdate) SetIsActive(v bool) *AppointmentTypeUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentTypeUpdate) SetNillableIsActive(v *bool) *AppointmentTypeUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_u *AppointmentTypeUpdate) Mutation() *AppointmentTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := appointmenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := appointmenttype.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := appointmenttype.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := appointmenttype.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.color": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmenttype.Table, appointmenttype.Columns, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(appointmenttype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(appointmenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(appointmenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(appointmenttype.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(appointmenttype.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(appointmenttype.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsConsultation(); ok {
		_spec.SetField(appointmenttype.FieldIsConsultation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresPreparation(); ok {
		_spec.SetField(appointmenttype.FieldRequiresPreparation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreparationInstructions(); ok {
		_spec.SetField(appointmenttype.FieldPreparationInstructions, field.TypeString, value)
	}
	if _u.mutation.PreparationInstructionsCleared() {
		_spec.ClearField(appointmenttype.FieldPreparationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentTypeUpdateOne is the builder for updating a single AppointmentType entity.
type AppointmentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentTypeMutation
}

// SetName sets the "name" field.
func (_u *AppointmentTypeUpdateOne) SetName(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableName(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AppointmentTypeUpdateOne) SetSlug(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableSlug(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AppointmentTypeUpdateOne) SetDescription(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableDescription(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AppointmentTypeUpdateOne) ClearDescription() *AppointmentTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *AppointmentTypeUpdateOne) SetDurationMin(v int) *AppointmentTypeUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableDurationMin(v *int) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *AppointmentTypeUpdateOne) AddDurationMin(v int) *AppointmentTypeUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetColor sets the "color" field.
func (_u *AppointmentTypeUpdateOne) SetColor(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableColor(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetIsConsultation sets the "is_consultation" field.
func (_u *AppointmentTypeUpdateOne) SetIsConsultation(v bool) *AppointmentTypeUpdateOne {
	_u.mutation.SetIsConsultation(v)
	return _u
}

// SetNillableIsConsultation sets the "is_consultation" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableIsConsultation(v *bool) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetIsConsultation(*v)
	}
	return _u
}

// SetRequiresPreparation sets the "requires_preparation" field.
func (_u *AppointmentTypeUpdateOne) SetRequiresPreparation(v bool) *AppointmentTypeUpdateOne {
	_u.mutation.SetRequiresPreparation(v)
	return _u
}

// SetNillableRequiresPreparation sets the "requires_preparation" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableRequiresPreparation(v *bool) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetRequiresPreparation(*v)
	}
	return _u
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (_u *AppointmentTypeUpdateOne) SetPreparationInstructions(v string) *AppointmentTypeUpdateOne {
	_u.mutation.SetPreparationInstructions(v)
	return _u
}

// SetNillablePreparationInstructions sets the "preparation_instructions" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillablePreparationInstructions(v *string) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetPreparationInstructions(*v)
	}
	return _u
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (_u *AppointmentTypeUpdateOne) ClearPreparationInstructions() *AppointmentTypeUpdateOne {
	_u.mutation.ClearPreparationInstructions()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppointmentTypeUpdateOne) SetIsActive(v bool) *AppointmentTypeUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppointmentTypeUpdateOne) SetNillableIsActive(v *bool) *AppointmentTypeUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AppointmentTypeMutation object of the builder.
func (_u *AppointmentTypeUpdateOne) Mutation() *AppointmentTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentTypeUpdate builder.
func (_u *AppointmentTypeUpdateOne) Where(ps ...predicate.AppointmentType) *AppointmentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentTypeUpdateOne) Select(field string, fields ...string) *AppointmentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentType entity.
func (_u *AppointmentTypeUpdateOne) Save(ctx context.Context) (*AppointmentType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentTypeUpdateOne) SaveX(ctx context.Context) *AppointmentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := appointmenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := appointmenttype.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := appointmenttype.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := appointmenttype.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`repo: validator failed for field "AppointmentType.color": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentTypeUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmenttype.Table, appointmenttype.Columns, sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmenttype.FieldID)
		for _, f := range fields {
			if !appointmenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmenttype.FieldID {
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
		_spec.SetField(appointmenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(appointmenttype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(appointmenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(appointmenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(appointmenttype.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(appointmenttype.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(appointmenttype.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsConsultation(); ok {
		_spec.SetField(appointmenttype.FieldIsConsultation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresPreparation(); ok {
		_spec.SetField(appointmenttype.FieldRequiresPreparation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreparationInstructions(); ok {
		_spec.SetField(appointmenttype.FieldPreparationInstructions, field.TypeString, value)
	}
	if _u.mutation.PreparationInstructionsCleared() {
		_spec.ClearField(appointmenttype.FieldPreparationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(appointmenttype.FieldIsActive, field.TypeBool, value)
	}
	_node = &AppointmentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
