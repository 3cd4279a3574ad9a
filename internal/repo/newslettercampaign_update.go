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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterCampaignUpdate is the builder for updating NewsletterCampaign entities.
type NewsletterCampaignUpdate struct {
	config
	hooks    []Hook
	mutation *NewsletterCampaignMutation
}

// Where appends a list predicates to the NewsletterCampaignUpdate builder.
func (_u *NewsletterCampaignUpdate) Where(ps ...predicate.NewsletterCampaign) *NewsletterCampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNewsletterID sets the "newsletter_id" field.
func (_u *NewsletterCampaignUpdate) SetNewsletterID(v uuid.UUID) *NewsletterCampaignUpdate {
	_u.mutation.SetNewsletterID(v)
	return _u
}

// SetNillableNewsletterID sets the "newsletter_id" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableNewsletterID(v *uuid.UUID) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetNewsletterID(*v)
	}
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *NewsletterCampaignUpdate) SetSentCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableSentCount(v *int) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *NewsletterCampaignUpdate) AddSentCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetOpenCount sets the "open_count" field.
func (_u *NewsletterCampaignUpdate) SetOpenCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.ResetOpenCount()
	_u.mutation.SetOpenCount(v)
	return _u
}

// SetNillableOpenCount sets the "open_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableOpenCount(v *int) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetOpenCount(*v)
	}
	return _u
}

// AddOpenCount adds value to the "open_count" field.
func (_u *NewsletterCampaignUpdate) AddOpenCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.AddOpenCount(v)
	return _u
}

// SetClickCount sets the "click_count" field.
func (_u *NewsletterCampaignUpdate) SetClickCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.ResetClickCount()
	_u.mutation.SetClickCount(v)
	return _u
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableClickCount(v *int) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetClickCount(*v)
	}
	return _u
}

// AddClickCount adds value to the "click_count" field.
func (_u *NewsletterCampaignUpdate) AddClickCount(v int) *NewsletterCampaignUpdate {
	_u.mutation.AddClickCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NewsletterCampaignUpdate) SetStartedAt(v time.Time) *NewsletterCampaignUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableStartedAt(v *time.Time) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NewsletterCampaignUpdate) ClearStartedAt() *NewsletterCampaignUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NewsletterCampaignUpdate) SetCompletedAt(v time.Time) *NewsletterCampaignUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NewsletterCampaignUpdate) SetNillableCompletedAt(v *time.Time) *NewsletterCampaignUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NewsletterCampaignUpdate) ClearCompletedAt() *NewsletterCampaignUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetNewsletter sets the "newsletter" edge to the Newsletter entity.
func (_u *NewsletterCampaignUpdate) SetNewsletter(v *Newsletter) *NewsletterCampaignUpdate {
	return _u.SetNewsletterID(v.ID)
}

// AddSubscriberIDs adds the "subscribers" edge to the NewsletterSubscriber entity by IDs.
func (_u *NewsletterCampaignUpdate) AddSubscriberIDs(ids ...uuid.UUID) *NewsletterCampaignUpdate {
	_u.mutation.AddSubscriberIDs(ids...)
	return _u
}

// AddSubscribers adds the "subscribers" edges to the NewsletterSubscriber entity.
func (_u *NewsletterCampaignUpdate) AddSubscribers(v ...*NewsletterSubscriber) *NewsletterCampaignUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriberIDs(ids...)
}

// Mutation returns the NewsletterCampaignMutation object of the builder.
func (_u *NewsletterCampaignUpdate) Mutation() *NewsletterCampaignMutation {
	return _u.mutation
}

// ClearNewsletter clears the "newsletter" edge to the Newsletter entity.
func (_u *NewsletterCampaignUpdate) ClearNewsletter() *NewsletterCampaignUpdate {
	_u.mutation.ClearNewsletter()
	return _u
}

// ClearSubscribers clears all "subscribers" edges to the NewsletterSubscriber entity.
func (_u *NewsletterCampaignUpdate) ClearSubscribers() *NewsletterCampaignUpdate {
	_u.mutation.ClearSubscribers()
	return _u
}

// RemoveSubscriberIDs removes the "subscribers" edge to NewsletterSubscriber entities by IDs.
func (_u *NewsletterCampaignUpdate) RemoveSubscriberIDs(ids ...uuid.UUID) *NewsletterCampaignUpdate {
	_u.mutation.RemoveSubscriberIDs(ids...)
	return _u
}

// RemoveSubscribers removes "subscribers" edges to NewsletterSubscriber entities.
func (_u *NewsletterCampaignUpdate) RemoveSubscribers(v ...*NewsletterSubscriber) *NewsletterCampaignUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsletterCampaignUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterCampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsletterCampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterCampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterCampaignUpdate) check() error {
	if v, ok := _u.mutation.SentCount(); ok {
		if err := newslettercampaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenCount(); ok {
		if err := newslettercampaign.OpenCountValidator(v); err != nil {
			return &ValidationError{Name: "open_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.open_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClickCount(); ok {
		if err := newslettercampaign.ClickCountValidator(v); err != nil {
			return &ValidationError{Name: "click_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.click_count": %w`, err)}
		}
	}
	if _u.mutation.NewsletterCleared() && len(_u.mutation.NewsletterIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "NewsletterCampaign.newsletter"`)
	}
	return nil
}

func (_u *NewsletterCampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newslettercampaign.Table, newslettercampaign.Columns, sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(newslettercampaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(newslettercampaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenCount(); ok {
		_spec.SetField(newslettercampaign.FieldOpenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenCount(); ok {
		_spec.AddField(newslettercampaign.FieldOpenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClickCount(); ok {
		_spec.SetField(newslettercampaign.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickCount(); ok {
		_spec.AddField(newslettercampaign.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(newslettercampaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(newslettercampaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(newslettercampaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(newslettercampaign.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.NewsletterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   newslettercampaign.NewsletterTable,
			Columns: []string{newslettercampaign.NewsletterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewsletterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   newslettercampaign.NewsletterTable,
			Columns: []string{newslettercampaign.NewsletterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscribersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscribersIDs(); len(nodes) > 0 && !_u.mutation.SubscribersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscribersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newslettercampaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsletterCampaignUpdateOne is the builder for updating a single NewsletterCampaign entity.
type NewsletterCampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsletterCampaignMutation
}

// SetNewsletterID sets the "newsletter_id" field.
func (_u *NewsletterCampaignUpdateOne) SetNewsletterID(v uuid.UUID) *NewsletterCampaignUpdateOne {
	_u.mutation.SetNewsletterID(v)
	return _u
}

// SetNillableNewsletterID sets the "newsletter_id" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableNewsletterID(v *uuid.UUID) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetNewsletterID(*v)
	}
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *NewsletterCampaignUpdateOne) SetSentCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableSentCount(v *int) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *NewsletterCampaignUpdateOne) AddSentCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetOpenCount sets the "open_count" field.
func (_u *NewsletterCampaignUpdateOne) SetOpenCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.ResetOpenCount()
	_u.mutation.SetOpenCount(v)
	return _u
}

// SetNillableOpenCount sets the "open_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableOpenCount(v *int) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetOpenCount(*v)
	}
	return _u
}

// AddOpenCount adds value to the "open_count" field.
func (_u *NewsletterCampaignUpdateOne) AddOpenCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.AddOpenCount(v)
	return _u
}

// SetClickCount sets the "click_count" field.
func (_u *NewsletterCampaignUpdateOne) SetClickCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.ResetClickCount()
	_u.mutation.SetClickCount(v)
	return _u
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableClickCount(v *int) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetClickCount(*v)
	}
	return _u
}

// AddClickCount adds value to the "click_count" field.
func (_u *NewsletterCampaignUpdateOne) AddClickCount(v int) *NewsletterCampaignUpdateOne {
	_u.mutation.AddClickCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NewsletterCampaignUpdateOne) SetStartedAt(v time.Time) *NewsletterCampaignUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableStartedAt(v *time.Time) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NewsletterCampaignUpdateOne) ClearStartedAt() *NewsletterCampaignUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NewsletterCampaignUpdateOne) SetCompletedAt(v time.Time) *NewsletterCampaignUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NewsletterCampaignUpdateOne) SetNillableCompletedAt(v *time.Time) *NewsletterCampaignUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NewsletterCampaignUpdateOne) ClearCompletedAt() *NewsletterCampaignUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetNewsletter sets the "newsletter" edge to the Newsletter entity.
func (_u *NewsletterCampaignUpdateOne) SetNewsletter(v *Newsletter) *NewsletterCampaignUpdateOne {
	return _u.SetNewsletterID(v.ID)
}

// AddSubscriberIDs adds the "subscribers" edge to the NewsletterSubscriber entity by IDs.
func (_u *NewsletterCampaignUpdateOne) AddSubscriberIDs(ids ...uuid.UUID) *NewsletterCampaignUpdateOne {
	_u.mutation.AddSubscriberIDs(ids...)
	return _u
}

// AddSubscribers adds the "subscribers" edges to the NewsletterSubscriber entity.
func (_u *NewsletterCampaignUpdateOne) AddSubscribers(v ...*NewsletterSubscriber) *NewsletterCampaignUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriberIDs(ids...)
}

// Mutation returns the NewsletterCampaignMutation object of the builder.
func (_u *NewsletterCampaignUpdateOne) Mutation() *NewsletterCampaignMutation {
	return _u.mutation
}

// ClearNewsletter clears the "newsletter" edge to the Newsletter entity.
func (_u *NewsletterCampaignUpdateOne) ClearNewsletter() *NewsletterCampaignUpdateOne {
	_u.mutation.ClearNewsletter()
	return _u
}

// ClearSubscribers clears all "subscribers" edges to the NewsletterSubscriber entity.
func (_u *NewsletterCampaignUpdateOne) ClearSubscribers() *NewsletterCampaignUpdateOne {
	_u.mutation.ClearSubscribers()
	return _u
}

// RemoveSubscriberIDs removes the "subscribers" edge to NewsletterSubscriber entities by IDs.
func (_u *NewsletterCampaignUpdateOne) RemoveSubscriberIDs(ids ...uuid.UUID) *NewsletterCampaignUpdateOne {
	_u.mutation.RemoveSubscriberIDs(ids...)
	return _u
}

// RemoveSubscribers removes "subscribers" edges to NewsletterSubscriber entities.
func (_u *NewsletterCampaignUpdateOne) RemoveSubscribers(v ...*NewsletterSubscriber) *NewsletterCampaignUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriberIDs(ids...)
}

// Where appends a list predicates to the NewsletterCampaignUpdate builder.
func (_u *NewsletterCampaignUpdateOne) Where(ps ...predicate.NewsletterCampaign) *NewsletterCampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsletterCampaignUpdateOne) Select(field string, fields ...string) *NewsletterCampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsletterCampaign entity.
func (_u *NewsletterCampaignUpdateOne) Save(ctx context.Context) (*NewsletterCampaign, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterCampaignUpdateOne) SaveX(ctx context.Context) *NewsletterCampaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsletterCampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterCampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterCampaignUpdateOne) check() error {
	if v, ok := _u.mutation.SentCount(); ok {
		if err := newslettercampaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenCount(); ok {
		if err := newslettercampaign.OpenCountValidator(v); err != nil {
			return &ValidationError{Name: "open_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.open_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClickCount(); ok {
		if err := newslettercampaign.ClickCountValidator(v); err != nil {
			return &ValidationError{Name: "click_count", err: fmt.Errorf(`repo: validator failed for field "NewsletterCampaign.click_count": %w`, err)}
		}
	}
	if _u.mutation.NewsletterCleared() && len(_u.mutation.NewsletterIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "NewsletterCampaign.newsletter"`)
	}
	return nil
}

func (_u *NewsletterCampaignUpdateOne) sqlSave(ctx context.Context) (_node *NewsletterCampaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newslettercampaign.Table, newslettercampaign.Columns, sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NewsletterCampaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newslettercampaign.FieldID)
		for _, f := range fields {
			if !newslettercampaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != newslettercampaign.FieldID {
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
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(newslettercampaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(newslettercampaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenCount(); ok {
		_spec.SetField(newslettercampaign.FieldOpenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpenCount(); ok {
		_spec.AddField(newslettercampaign.FieldOpenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClickCount(); ok {
		_spec.SetField(newslettercampaign.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickCount(); ok {
		_spec.AddField(newslettercampaign.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(newslettercampaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(newslettercampaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(newslettercampaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(newslettercampaign.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.NewsletterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   newslettercampaign.NewsletterTable,
			Columns: []string{newslettercampaign.NewsletterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NewsletterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   newslettercampaign.NewsletterTable,
			Columns: []string{newslettercampaign.NewsletterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscribersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscribersIDs(); len(nodes) > 0 && !_u.mutation.SubscribersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscribersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   newslettercampaign.SubscribersTable,
			Columns: newslettercampaign.SubscribersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NewsletterCampaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newslettercampaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
