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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterSubscriberUpdate is the builder for updating NewsletterSubscriber entities.
type NewsletterSubscriberUpdate struct {
	config
	hooks    []Hook
	mutation *NewsletterSubscriberMutation
}

// Where appends a list predicates to the NewsletterSubscriberUpdate builder.
func (_u *NewsletterSubscriberUpdate) Where(ps ...predicate.NewsletterSubscriber) *NewsletterSubscriberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *NewsletterSubscriberUpdate) SetEmail(v string) *NewsletterSubscriberUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdate) SetNillableEmail(v *string) *NewsletterSubscriberUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *NewsletterSubscriberUpdate) SetFirstName(v string) *NewsletterSubscriberUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdate) SetNillableFirstName(v *string) *NewsletterSubscriberUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *NewsletterSubscriberUpdate) ClearFirstName() *NewsletterSubscriberUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *NewsletterSubscriberUpdate) SetLastName(v string) *NewsletterSubscriberUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdate) SetNillableLastName(v *string) *NewsletterSubscriberUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *NewsletterSubscriberUpdate) ClearLastName() *NewsletterSubscriberUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *NewsletterSubscriberUpdate) SetIsActive(v bool) *NewsletterSubscriberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdate) SetNillableIsActive(v *bool) *NewsletterSubscriberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUnsubscribedAt sets the "unsubscribed_at" field.
func (_u *NewsletterSubscriberUpdate) SetUnsubscribedAt(v time.Time) *NewsletterSubscriberUpdate {
	_u.mutation.SetUnsubscribedAt(v)
	return _u
}

// SetNillableUnsubscribedAt sets the "unsubscribed_at" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdate) SetNillableUnsubscribedAt(v *time.Time) *NewsletterSubscriberUpdate {
	if v != nil {
		_u.SetUnsubscribedAt(*v)
	}
	return _u
}

// ClearUnsubscribedAt clears the value of the "unsubscribed_at" field.
func (_u *NewsletterSubscriberUpdate) ClearUnsubscribedAt() *NewsletterSubscriberUpdate {
	_u.mutation.ClearUnsubscribedAt()
	return _u
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_u *NewsletterSubscriberUpdate) AddCampaignIDs(ids ...uuid.UUID) *NewsletterSubscriberUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterSubscriberUpdate) AddCampaigns(v ...*NewsletterCampaign) *NewsletterSubscriberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterSubscriberMutation object of the builder.
func (_u *NewsletterSubscriberUpdate) Mutation() *NewsletterSubscriberMutation {
	return _u.mutation
}

// ClearCampaigns clears all "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterSubscriberUpdate) ClearCampaigns() *NewsletterSubscriberUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to NewsletterCampaign entities by IDs.
func (_u *NewsletterSubscriberUpdate) RemoveCampaignIDs(ids ...uuid.UUID) *NewsletterSubscriberUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to NewsletterCampaign entities.
func (_u *NewsletterSubscriberUpdate) RemoveCampaigns(v ...*NewsletterCampaign) *NewsletterSubscriberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsletterSubscriberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterSubscriberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsletterSubscriberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterSubscriberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterSubscriberUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := newslettersubscriber.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := newslettersubscriber.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := newslettersubscriber.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsletterSubscriberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newslettersubscriber.Table, newslettersubscriber.Columns, sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(newslettersubscriber.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(newslettersubscriber.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(newslettersubscriber.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(newslettersubscriber.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(newslettersubscriber.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(newslettersubscriber.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnsubscribedAt(); ok {
		_spec.SetField(newslettersubscriber.FieldUnsubscribedAt, field.TypeTime, value)
	}
	if _u.mutation.UnsubscribedAtCleared() {
		_spec.ClearField(newslettersubscriber.FieldUnsubscribedAt, field.TypeTime)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newslettersubscriber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsletterSubscriberUpdateOne is the builder for updating a single NewsletterSubscriber entity.
type NewsletterSubscriberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsletterSubscriberMutation
}

// SetEmail sets the "email" field.
func (_u *NewsletterSubscriberUpdateOne) SetEmail(v string) *NewsletterSubscriberUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdateOne) SetNillableEmail(v *string) *NewsletterSubscriberUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *NewsletterSubscriberUpdateOne) SetFirstName(v string) *NewsletterSubscriberUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdateOne) SetNillableFirstName(v *string) *NewsletterSubscriberUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *NewsletterSubscriberUpdateOne) ClearFirstName() *NewsletterSubscriberUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *NewsletterSubscriberUpdateOne) SetLastName(v string) *NewsletterSubscriberUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdateOne) SetNillableLastName(v *string) *NewsletterSubscriberUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *NewsletterSubscriberUpdateOne) ClearLastName() *NewsletterSubscriberUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *NewsletterSubscriberUpdateOne) SetIsActive(v bool) *NewsletterSubscriberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdateOne) SetNillableIsActive(v *bool) *NewsletterSubscriberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUnsubscribedAt sets the "unsubscribed_at" field.
func (_u *NewsletterSubscriberUpdateOne) SetUnsubscribedAt(v time.Time) *NewsletterSubscriberUpdateOne {
	_u.mutation.SetUnsubscribedAt(v)
	return _u
}

// SetNillableUnsubscribedAt sets the "unsubscribed_at" field if the given value is not nil.
func (_u *NewsletterSubscriberUpdateOne) SetNillableUnsubscribedAt(v *time.Time) *NewsletterSubscriberUpdateOne {
	if v != nil {
		_u.SetUnsubscribedAt(*v)
	}
	return _u
}

// ClearUnsubscribedAt clears the value of the "unsubscribed_at" field.
func (_u *NewsletterSubscriberUpdateOne) ClearUnsubscribedAt() *NewsletterSubscriberUpdateOne {
	_u.mutation.ClearUnsubscribedAt()
	return _u
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_u *NewsletterSubscriberUpdateOne) AddCampaignIDs(ids ...uuid.UUID) *NewsletterSubscriberUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterSubscriberUpdateOne) AddCampaigns(v ...*NewsletterCampaign) *NewsletterSubscriberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterSubscriberMutation object of the builder.
func (_u *NewsletterSubscriberUpdateOne) Mutation() *NewsletterSubscriberMutation {
	return _u.mutation
}

// ClearCampaigns clears all "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterSubscriberUpdateOne) ClearCampaigns() *NewsletterSubscriberUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to NewsletterCampaign entities by IDs.
func (_u *NewsletterSubscriberUpdateOne) RemoveCampaignIDs(ids ...uuid.UUID) *NewsletterSubscriberUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to NewsletterCampaign entities.
func (_u *NewsletterSubscriberUpdateOne) RemoveCampaigns(v ...*NewsletterCampaign) *NewsletterSubscriberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Where appends a list predicates to the NewsletterSubscriberUpdate builder.
func (_u *NewsletterSubscriberUpdateOne) Where(ps ...predicate.NewsletterSubscriber) *NewsletterSubscriberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsletterSubscriberUpdateOne) Select(field string, fields ...string) *NewsletterSubscriberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsletterSubscriber entity.
func (_u *NewsletterSubscriberUpdateOne) Save(ctx context.Context) (*NewsletterSubscriber, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterSubscriberUpdateOne) SaveX(ctx context.Context) *NewsletterSubscriber {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsletterSubscriberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterSubscriberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterSubscriberUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := newslettersubscriber.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := newslettersubscriber.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := newslettersubscriber.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "NewsletterSubscriber.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsletterSubscriberUpdateOne) sqlSave(ctx context.Context) (_node *NewsletterSubscriber, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newslettersubscriber.Table, newslettersubscriber.Columns, sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NewsletterSubscriber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newslettersubscriber.FieldID)
		for _, f := range fields {
			if !newslettersubscriber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != newslettersubscriber.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(newslettersubscriber.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(newslettersubscriber.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(newslettersubscriber.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(newslettersubscriber.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(newslettersubscriber.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(newslettersubscriber.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnsubscribedAt(); ok {
		_spec.SetField(newslettersubscriber.FieldUnsubscribedAt, field.TypeTime, value)
	}
	if _u.mutation.UnsubscribedAtCleared() {
		_spec.ClearField(newslettersubscriber.FieldUnsubscribedAt, field.TypeTime)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   newslettersubscriber.CampaignsTable,
			Columns: newslettersubscriber.CampaignsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NewsletterSubscriber{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newslettersubscriber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
