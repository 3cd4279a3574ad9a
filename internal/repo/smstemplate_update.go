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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
)

// SMSTemplateUpdate is the builder for updating SMSTemplate entities.
type SMSTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *SMSTemplateMutation
}

// Where appends a list predicates to the SMSTemplateUpdate builder.
func (_u *SMSTemplateUpdate) Where(ps ...predicate.SMSTemplate) *SMSTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SMSTemplateUpdate) SetUpdatedAt(v time.Time) *SMSTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SMSTemplateUpdate) SetName(v string) *SMSTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SMSTemplateUpdate) SetNillableName(v *string) *SMSTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *SMSTemplateUpdate) SetTemplateType(v smstemplate.TemplateType) *SMSTemplateUpdate {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *SMSTemplateUpdate) SetNillableTemplateType(v *smstemplate.TemplateType) *SMSTemplateUpdate {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SMSTemplateUpdate) SetBody(v string) *SMSTemplateUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SMSTemplateUpdate) SetNillableBody(v *string) *SMSTemplateUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SMSTemplateUpdate) SetIsActive(v bool) *SMSTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SMSTemplateUpdate) SetNillableIsActive(v *bool) *SMSTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetVariablesHelp sets the "variables_help" field.
func (_u *SMSTemplateUpdate) SetVariablesHelp(v string) *SMSTemplateUpdate {
	_u.mutation.SetVariablesHelp(v)
	return _u
}

// SetNillableVariablesHelp sets the "variables_help" field if the given value is not nil.
func (_u *SMSTemplateUpdate) SetNillableVariablesHelp(v *string) *SMSTemplateUpdate {
	if v != nil {
		_u.SetVariablesHelp(*v)
	}
	return _u
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (_u *SMSTemplateUpdate) ClearVariablesHelp() *SMSTemplateUpdate {
	_u.mutation.ClearVariablesHelp()
	return _u
}

// Mutation returns the SMSTemplateMutation object of the builder.
func (_u *SMSTemplateUpdate) Mutation() *SMSTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SMSTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SMSTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SMSTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smstemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := smstemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := smstemplate.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := smstemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.body": %w`, err)}
		}
	}
	return nil
}

func (_u *SMSTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smstemplate.Table, smstemplate.Columns, sqlgraph.NewFieldSpec(smstemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(smstemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(smstemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(smstemplate.FieldTemplateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smstemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(smstemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariablesHelp(); ok {
		_spec.SetField(smstemplate.FieldVariablesHelp, field.TypeString, value)
	}
	if _u.mutation.VariablesHelpCleared() {
		_spec.ClearField(smstemplate.FieldVariablesHelp, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smstemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SMSTemplateUpdateOne is the builder for updating a single SMSTemplate entity.
type SMSTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SMSTemplateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SMSTemplateUpdateOne) SetUpdatedAt(v time.Time) *SMSTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SMSTemplateUpdateOne) SetName(v string) *SMSTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SMSTemplateUpdateOne) SetNillableName(v *string) *SMSTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *SMSTemplateUpdateOne) SetTemplateType(v smstemplate.TemplateType) *SMSTemplateUpdateOne {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *SMSTemplateUpdateOne) SetNillableTemplateType(v *smstemplate.TemplateType) *SMSTemplateUpdateOne {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SMSTemplateUpdateOne) SetBody(v string) *SMSTemplateUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SMSTemplateUpdateOne) SetNillableBody(v *string) *SMSTemplateUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SMSTemplateUpdateOne) SetIsActive(v bool) *SMSTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SMSTemplateUpdateOne) SetNillableIsActive(v *bool) *SMSTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetVariablesHelp sets the "variables_help" field.
func (_u *SMSTemplateUpdateOne) SetVariablesHelp(v string) *SMSTemplateUpdateOne {
	_u.mutation.SetVariablesHelp(v)
	return _u
}

// SetNillableVariablesHelp sets the "variables_help" field if the given value is not nil.
func (_u *SMSTemplateUpdateOne) SetNillableVariablesHelp(v *string) *SMSTemplateUpdateOne {
	if v != nil {
		_u.SetVariablesHelp(*v)
	}
	return _u
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (_u *SMSTemplateUpdateOne) ClearVariablesHelp() *SMSTemplateUpdateOne {
	_u.mutation.ClearVariablesHelp()
	return _u
}

// Mutation returns the SMSTemplateMutation object of the builder.
func (_u *SMSTemplateUpdateOne) Mutation() *SMSTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SMSTemplateUpdate builder.
func (_u *SMSTemplateUpdateOne) Where(ps ...predicate.SMSTemplate) *SMSTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SMSTemplateUpdateOne) Select(field string, fields ...string) *SMSTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SMSTemplate entity.
func (_u *SMSTemplateUpdateOne) Save(ctx context.Context) (*SMSTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSTemplateUpdateOne) SaveX(ctx context.Context) *SMSTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SMSTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SMSTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smstemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := smstemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := smstemplate.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := smstemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`repo: validator failed for field "SMSTemplate.body": %w`, err)}
		}
	}
	return nil
}

func (_u *SMSTemplateUpdateOne) sqlSave(ctx context.Context) (_node *SMSTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smstemplate.Table, smstemplate.Columns, sqlgraph.NewFieldSpec(smstemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SMSTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smstemplate.FieldID)
		for _, f := range fields {
			if !smstemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != smstemplate.FieldID {
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
		_spec.SetField(smstemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(smstemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(smstemplate.FieldTemplateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smstemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(smstemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariablesHelp(); ok {
		_spec.SetField(smstemplate.FieldVariablesHelp, field.TypeString, value)
	}
	if _u.mutation.VariablesHelpCleared() {
		_spec.ClearField(smstemplate.FieldVariablesHelp, field.TypeString)
	}
	_node = &SMSTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smstemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
