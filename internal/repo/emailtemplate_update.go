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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/emailtemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// EmailTemplateUpdate is the builder for updating EmailTemplate entities.
type EmailTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *EmailTemplateMutation
}

// Where appends a list predicates to the EmailTemplateUpdate builder.
func (_u *EmailTemplateUpdate) Where(ps ...predicate.EmailTemplate) *EmailTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailTemplateUpdate) SetUpdatedAt(v time.Time) *EmailTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EmailTemplateUpdate) SetName(v string) *EmailTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableName(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *EmailTemplateUpdate) SetTemplateType(v emailtemplate.TemplateType) *EmailTemplateUpdate {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableTemplateType(v *emailtemplate.TemplateType) *EmailTemplateUpdate {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailTemplateUpdate) SetSubject(v string) *EmailTemplateUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableSubject(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailTemplateUpdate) SetBodyHTML(v string) *EmailTemplateUpdate {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableBodyHTML(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailTemplateUpdate) SetBodyText(v string) *EmailTemplateUpdate {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableBodyText(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EmailTemplateUpdate) SetIsActive(v bool) *EmailTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableIsActive(v *bool) *EmailTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetVariablesHelp sets the "variables_help" field.
func (_u *EmailTemplateUpdate) SetVariablesHelp(v string) *EmailTemplateUpdate {
	_u.mutation.SetVariablesHelp(v)
	return _u
}

// SetNillableVariablesHelp sets the "variables_help" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableVariablesHelp(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetVariablesHelp(*v)
	}
	return _u
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (_u *EmailTemplateUpdate) ClearVariablesHelp() *EmailTemplateUpdate {
	_u.mutation.ClearVariablesHelp()
	return _u
}

// Mutation returns the EmailTemplateMutation object of the builder.
func (_u *EmailTemplateUpdate) Mutation() *EmailTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emailtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := emailtemplate.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emailtemplate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailtemplate.Table, emailtemplate.Columns, sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emailtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(emailtemplate.FieldTemplateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailtemplate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailtemplate.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailtemplate.FieldBodyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(emailtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariablesHelp(); ok {
		_spec.SetField(emailtemplate.FieldVariablesHelp, field.TypeString, value)
	}
	if _u.mutation.VariablesHelpCleared() {
		_spec.ClearField(emailtemplate.FieldVariablesHelp, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailTemplateUpdateOne is the builder for updating a single EmailTemplate entity.
type EmailTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailTemplateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailTemplateUpdateOne) SetUpdatedAt(v time.Time) *EmailTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EmailTemplateUpdateOne) SetName(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableName(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTemplateType sets the "template_type" field.
func (_u *EmailTemplateUpdateOne) SetTemplateType(v emailtemplate.TemplateType) *EmailTemplateUpdateOne {
	_u.mutation.SetTemplateType(v)
	return _u
}

// SetNillableTemplateType sets the "template_type" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableTemplateType(v *emailtemplate.TemplateType) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetTemplateType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailTemplateUpdateOne) SetSubject(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableSubject(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailTemplateUpdateOne) SetBodyHTML(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableBodyHTML(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailTemplateUpdateOne) SetBodyText(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableBodyText(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EmailTemplateUpdateOne) SetIsActive(v bool) *EmailTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableIsActive(v *bool) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetVariablesHelp sets the "variables_help" field.
func (_u *EmailTemplateUpdateOne) SetVariablesHelp(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetVariablesHelp(v)
	return _u
}

// SetNillableVariablesHelp sets the "variables_help" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableVariablesHelp(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetVariablesHelp(*v)
	}
	return _u
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (_u *EmailTemplateUpdateOne) ClearVariablesHelp() *EmailTemplateUpdateOne {
	_u.mutation.ClearVariablesHelp()
	return _u
}

// Mutation returns the EmailTemplateMutation object of the builder.
func (_u *EmailTemplateUpdateOne) Mutation() *EmailTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailTemplateUpdate builder.
func (_u *EmailTemplateUpdateOne) Where(ps ...predicate.EmailTemplate) *EmailTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailTemplateUpdateOne) Select(field string, fields ...string) *EmailTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailTemplate entity.
func (_u *EmailTemplateUpdateOne) Save(ctx context.Context) (*EmailTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailTemplateUpdateOne) SaveX(ctx context.Context) *EmailTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emailtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateType(); ok {
		if err := emailtemplate.TemplateTypeValidator(v); err != nil {
			return &ValidationError{Name: "template_type", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.template_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emailtemplate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "EmailTemplate.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailTemplateUpdateOne) sqlSave(ctx context.Context) (_node *EmailTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailtemplate.Table, emailtemplate.Columns, sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EmailTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailtemplate.FieldID)
		for _, f := range fields {
			if !emailtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != emailtemplate.FieldID {
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
		_spec.SetField(emailtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emailtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateType(); ok {
		_spec.SetField(emailtemplate.FieldTemplateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailtemplate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailtemplate.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailtemplate.FieldBodyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(emailtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VariablesHelp(); ok {
		_spec.SetField(emailtemplate.FieldVariablesHelp, field.TypeString, value)
	}
	if _u.mutation.VariablesHelpCleared() {
		_spec.ClearField(emailtemplate.FieldVariablesHelp, field.TypeString)
	}
	_node = &EmailTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
