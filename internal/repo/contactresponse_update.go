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
)

// ContactResponseUpdate is the builder for updating ContactResponse entities.
type ContactResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ContactResponseMutation
}

// Where appends a list predicates to the ContactResponseUpdate builder.
func (_u *ContactResponseUpdate) Where(ps ...predicate.ContactResponse) *ContactResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContactMessageID sets the "contact_message_id" field.
func (_u *ContactResponseUpdate) SetContactMessageID(v uuid.UUID) *ContactResponseUpdate {
	_u.mutation.SetContactMessageID(v)
	return _u
}

// SetNillableContactMessageID sets the "contact_message_id" field if the given value is not nil.
func (_u *ContactResponseUpdate) SetNillableContactMessageID(v *uuid.UUID) *ContactResponseUpdate {
	if v != nil {
		_u.SetContactMessageID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *ContactResponseUpdate) SetResponse(v string) *ContactResponseUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *ContactResponseUpdate) SetNillableResponse(v *string) *ContactResponseUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetRespondedByID sets the "responded_by_id" field.
func (_u *ContactResponseUpdate) SetRespondedByID(v uuid.UUID) *ContactResponseUpdate {
	_u.mutation.SetRespondedByID(v)
	return _u
}

// SetNillableRespondedByID sets the "responded_by_id" field if the given value is not nil.
func (_u *ContactResponseUpdate) SetNillableRespondedByID(v *uuid.UUID) *ContactResponseUpdate {
	if v != nil {
		_u.SetRespondedByID(*v)
	}
	return _u
}

// ClearRespondedByID clears the value of the "responded_by_id" field.
func (_u *ContactResponseUpdate) ClearRespondedByID() *ContactResponseUpdate {
	_u.mutation.ClearRespondedByID()
	return _u
}

// SetIsSent sets the "is_sent" field.
func (_u *ContactResponseUpdate) SetIsSent(v bool) *ContactResponseUpdate {
	_u.mutation.SetIsSent(v)
	return _u
}

// SetNillableIsSent sets the "is_sent" field if the given value is not nil.
func (_u *ContactResponseUpdate) SetNillableIsSent(v *bool) *ContactResponseUpdate {
	if v != nil {
		_u.SetIsSent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ContactResponseUpdate) SetSentAt(v time.Time) *ContactResponseUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ContactResponseUpdate) SetNillableSentAt(v *time.Time) *ContactResponseUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ContactResponseUpdate) ClearSentAt() *ContactResponseUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetContactMessage sets the "contact_message" edge to the ContactMessage entity.
func (_u *ContactResponseUpdate) SetContactMessage(v *ContactMessage) *ContactResponseUpdate {
	return _u.SetContactMessageID(v.ID)
}

// Mutation returns the ContactResponseMutation object of the builder.
func (_u *ContactResponseUpdate) Mutation() *ContactResponseMutation {
	return _u.mutation
}

// ClearContactMessage clears the "contact_message" edge to the ContactMessage entity.
func (_u *ContactResponseUpdate) ClearContactMessage() *ContactResponseUpdate {
	_u.mutation.ClearContactMessage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactResponseUpdate) check() error {
	if _u.mutation.ContactMessageCleared() && len(_u.mutation.ContactMessageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ContactResponse.contact_message"`)
	}
	return nil
}

func (_u *ContactResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactresponse.Table, contactresponse.Columns, sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(contactresponse.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.RespondedByID(); ok {
		_spec.SetField(contactresponse.FieldRespondedByID, field.TypeUUID, value)
	}
	if _u.mutation.RespondedByIDCleared() {
		_spec.ClearField(contactresponse.FieldRespondedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsSent(); ok {
		_spec.SetField(contactresponse.FieldIsSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(contactresponse.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(contactresponse.FieldSentAt, field.TypeTime)
	}
	if _u.mutation.ContactMessageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactresponse.ContactMessageTable,
			Columns: []string{contactresponse.ContactMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactresponse.ContactMessageTable,
			Columns: []string{contactresponse.ContactMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactResponseUpdateOne is the builder for updating a single ContactResponse entity.
type ContactResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactResponseMutation
}

// SetContactMessageID sets the "contact_message_id" field.
func (_u *ContactResponseUpdateOne) SetContactMessageID(v uuid.UUID) *ContactResponseUpdateOne {
	_u.mutation.SetContactMessageID(v)
	return _u
}

// SetNillableContactMessageID sets the "contact_message_id" field if the given value is not nil.
func (_u *ContactResponseUpdateOne) SetNillableContactMessageID(v *uuid.UUID) *ContactResponseUpdateOne {
	if v != nil {
		_u.SetContactMessageID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *ContactResponseUpdateOne) SetResponse(v string) *ContactResponseUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *ContactResponseUpdateOne) SetNillableResponse(v *string) *ContactResponseUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetRespondedByID sets the "responded_by_id" field.
func (_u *ContactResponseUpdateOne) SetRespondedByID(v uuid.UUID) *ContactResponseUpdateOne {
	_u.mutation.SetRespondedByID(v)
	return _u
}

// SetNillableRespondedByID sets the "responded_by_id" field if the given value is not nil.
func (_u *ContactResponseUpdateOne) SetNillableRespondedByID(v *uuid.UUID) *ContactResponseUpdateOne {
	if v != nil {
		_u.SetRespondedByID(*v)
	}
	return _u
}

// ClearRespondedByID clears the value of the "responded_by_id" field.
func (_u *ContactResponseUpdateOne) ClearRespondedByID() *ContactResponseUpdateOne {
	_u.mutation.ClearRespondedByID()
	return _u
}

// SetIsSent sets the "is_sent" field.
func (_u *ContactResponseUpdateOne) SetIsSent(v bool) *ContactResponseUpdateOne {
	_u.mutation.SetIsSent(v)
	return _u
}

// SetNillableIsSent sets the "is_sent" field if the given value is not nil.
func (_u *ContactResponseUpdateOne) SetNillableIsSent(v *bool) *ContactResponseUpdateOne {
	if v != nil {
		_u.SetIsSent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ContactResponseUpdateOne) SetSentAt(v time.Time) *ContactResponseUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ContactResponseUpdateOne) SetNillableSentAt(v *time.Time) *ContactResponseUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ContactResponseUpdateOne) ClearSentAt() *ContactResponseUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetContactMessage sets the "contact_message" edge to the ContactMessage entity.
func (_u *ContactResponseUpdateOne) SetContactMessage(v *ContactMessage) *ContactResponseUpdateOne {
	return _u.SetContactMessageID(v.ID)
}

// Mutation returns the ContactResponseMutation object of the builder.
func (_u *ContactResponseUpdateOne) Mutation() *ContactResponseMutation {
	return _u.mutation
}

// ClearContactMessage clears the "contact_message" edge to the ContactMessage entity.
func (_u *ContactResponseUpdateOne) ClearContactMessage() *ContactResponseUpdateOne {
	_u.mutation.ClearContactMessage()
	return _u
}

// Where appends a list predicates to the ContactResponseUpdate builder.
func (_u *ContactResponseUpdateOne) Where(ps ...predicate.ContactResponse) *ContactResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactResponseUpdateOne) Select(field string, fields ...string) *ContactResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContactResponse entity.
func (_u *ContactResponseUpdateOne) Save(ctx context.Context) (*ContactResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactResponseUpdateOne) SaveX(ctx context.Context) *ContactResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactResponseUpdateOne) check() error {
	if _u.mutation.ContactMessageCleared() && len(_u.mutation.ContactMessageIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ContactResponse.contact_message"`)
	}
	return nil
}

func (_u *ContactResponseUpdateOne) sqlSave(ctx context.Context) (_node *ContactResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactresponse.Table, contactresponse.Columns, sqlgraph.NewFieldSpec(contactresponse.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ContactResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactresponse.FieldID)
		for _, f := range fields {
			if !contactresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != contactresponse.FieldID {
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
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(contactresponse.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.RespondedByID(); ok {
		_spec.SetField(contactresponse.FieldRespondedByID, field.TypeUUID, value)
	}
	if _u.mutation.RespondedByIDCleared() {
		_spec.ClearField(contactresponse.FieldRespondedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsSent(); ok {
		_spec.SetField(contactresponse.FieldIsSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(contactresponse.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(contactresponse.FieldSentAt, field.TypeTime)
	}
	if _u.mutation.ContactMessageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactresponse.ContactMessageTable,
			Columns: []string{contactresponse.ContactMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contactresponse.ContactMessageTable,
			Columns: []string{contactresponse.ContactMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContactResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
