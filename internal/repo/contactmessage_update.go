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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// ContactMessageUpdate is the builder for updating ContactMessage entities.
type ContactMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMessageMutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (_u *ContactMessageUpdate) Where(ps ...predicate.ContactMessage) *ContactMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactMessageUpdate) SetUpdatedAt(v time.Time) *ContactMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ContactMessageUpdate) SetName(v string) *ContactMessageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableName(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactMessageUpdate) SetEmail(v string) *ContactMessageUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableEmail(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactMessageUpdate) SetPhone(v string) *ContactMessageUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillablePhone(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactMessageUpdate) ClearPhone() *ContactMessageUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactMessageUpdate) SetSubject(v string) *ContactMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableSubject(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ContactMessageUpdate) SetMessage(v string) *ContactMessageUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableMessage(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactMessageUpdate) SetStatus(v contactmessage.Status) *ContactMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableStatus(v *contactmessage.Status) *ContactMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *ContactMessageUpdate) SetAssignedToID(v uuid.UUID) *ContactMessageUpdate {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableAssignedToID(v *uuid.UUID) *ContactMessageUpdate {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *ContactMessageUpdate) ClearAssignedToID() *ContactMessageUpdate {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetAssignedTo sets the "assigned_to" edge to the User entity.
func (_u *ContactMessageUpdate) SetAssignedTo(v *User) *ContactMessageUpdate {
	return _u.SetAssignedToID(v.ID)
}

// AddResponseIDs adds the "responses" edge to the ContactResponse entity by IDs.
func (_u *ContactMessageUpdate) AddResponseIDs(ids ...uuid.UUID) *ContactMessageUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the ContactResponse entity.
func (_u *ContactMessageUpdate) AddResponses(v ...*ContactResponse) *ContactMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the ContactMessageMutation object of the builder.
func (_u *ContactMessageUpdate) Mutation() *ContactMessageMutation {
	return _u.mutation
}

// ClearAssignedTo clears the "assigned_to" edge to the User entity.
func (_u *ContactMessageUpdate) ClearAssignedTo() *ContactMessageUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// ClearResponses clears all "responses" edges to the ContactResponse entity.
func (_u *ContactMessageUpdate) ClearResponses() *ContactMessageUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to ContactResponse entities by IDs.
func (_u *ContactMessageUpdate) RemoveResponseIDs(ids ...uuid.UUID) *ContactMessageUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to ContactResponse entities.
func (_u *ContactMessageUpdate) RemoveResponses(v ...*ContactResponse) *ContactMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contactmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactMessageUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := contactmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := contactmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contactmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contactmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contactmessage.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contactmessage.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contactmessage.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AssignedToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contactmessage.AssignedToTable,
			Columns: []string{contactmessage.AssignedToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contactmessage.AssignedToTable,
			Columns: []string{contactmessage.AssignedToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactMessageUpdateOne is the builder for updating a single ContactMessage entity.
type ContactMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMessageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactMessageUpdateOne) SetUpdatedAt(v time.Time) *ContactMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ContactMessageUpdateOne) SetName(v string) *ContactMessageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableName(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactMessageUpdateOne) SetEmail(v string) *ContactMessageUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableEmail(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactMessageUpdateOne) SetPhone(v string) *ContactMessageUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillablePhone(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactMessageUpdateOne) ClearPhone() *ContactMessageUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactMessageUpdateOne) SetSubject(v string) *ContactMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableSubject(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ContactMessageUpdateOne) SetMessage(v string) *ContactMessageUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableMessage(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactMessageUpdateOne) SetStatus(v contactmessage.Status) *ContactMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableStatus(v *contactmessage.Status) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *ContactMessageUpdateOne) SetAssignedToID(v uuid.UUID) *ContactMessageUpdateOne {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableAssignedToID(v *uuid.UUID) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *ContactMessageUpdateOne) ClearAssignedToID() *ContactMessageUpdateOne {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetAssignedTo sets the "assigned_to" edge to the User entity.
func (_u *ContactMessageUpdateOne) SetAssignedTo(v *User) *ContactMessageUpdateOne {
	return _u.SetAssignedToID(v.ID)
}

// AddResponseIDs adds the "responses" edge to the ContactResponse entity by IDs.
func (_u *ContactMessageUpdateOne) AddResponseIDs(ids ...uuid.UUID) *ContactMessageUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the ContactResponse entity.
func (_u *ContactMessageUpdateOne) AddResponses(v ...*ContactResponse) *ContactMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the ContactMessageMutation object of the builder.
func (_u *ContactMessageUpdateOne) Mutation() *ContactMessageMutation {
	return _u.mutation
}

// ClearAssignedTo clears the "assigned_to" edge to the User entity.
func (_u *ContactMessageUpdateOne) ClearAssignedTo() *ContactMessageUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// ClearResponses clears all "responses" edges to the ContactResponse entity.
func (_u *ContactMessageUpdateOne) ClearResponses() *ContactMessageUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to ContactResponse entities by IDs.
func (_u *ContactMessageUpdateOne) RemoveResponseIDs(ids ...uuid.UUID) *ContactMessageUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to ContactResponse entities.
func (_u *ContactMessageUpdateOne) RemoveResponses(v ...*ContactResponse) *ContactMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (_u *ContactMessageUpdateOne) Where(ps ...predicate.ContactMessage) *ContactMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactMessageUpdateOne) Select(field string, fields ...string) *ContactMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContactMessage entity.
func (_u *ContactMessageUpdateOne) Save(ctx context.Context) (*ContactMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactMessageUpdateOne) SaveX(ctx context.Context) *ContactMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contactmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := contactmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := contactmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contactmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactMessageUpdateOne) sqlSave(ctx context.Context) (_node *ContactMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ContactMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactmessage.FieldID)
		for _, f := range fields {
			if !contactmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != contactmessage.FieldID {
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
		_spec.SetField(contactmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contactmessage.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contactmessage.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(contactmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contactmessage.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AssignedToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contactmessage.AssignedToTable,
			Columns: []string{contactmessage.AssignedToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contactmessage.AssignedToTable,
			Columns: []string{contactmessage.AssignedToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contactmessage.ResponsesTable,
			Columns: []string{contactmessage.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContactMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
