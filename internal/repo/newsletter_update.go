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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterUpdate is the builder for updating Newsletter entities.
type NewsletterUpdate struct {
	config
	hooks    []Hook
	mutation *NewsletterMutation
}

// Where appends a list predicates to the NewsletterUpdate builder.
func (_u *NewsletterUpdate) Where(ps ...predicate.Newsletter) *NewsletterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NewsletterUpdate) SetUpdatedAt(v time.Time) *NewsletterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsletterUpdate) SetTitle(v string) *NewsletterUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableTitle(v *string) *NewsletterUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *NewsletterUpdate) SetSubject(v string) *NewsletterUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableSubject(v *string) *NewsletterUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContentHTML sets the "content_html" field.
func (_u *NewsletterUpdate) SetContentHTML(v string) *NewsletterUpdate {
	_u.mutation.SetContentHTML(v)
	return _u
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableContentHTML(v *string) *NewsletterUpdate {
	if v != nil {
		_u.SetContentHTML(*v)
	}
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *NewsletterUpdate) SetContentText(v string) *NewsletterUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableContentText(v *string) *NewsletterUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NewsletterUpdate) SetStatus(v newsletter.Status) *NewsletterUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableStatus(v *newsletter.Status) *NewsletterUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *NewsletterUpdate) SetScheduledAt(v time.Time) *NewsletterUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableScheduledAt(v *time.Time) *NewsletterUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *NewsletterUpdate) ClearScheduledAt() *NewsletterUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NewsletterUpdate) SetSentAt(v time.Time) *NewsletterUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableSentAt(v *time.Time) *NewsletterUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NewsletterUpdate) ClearSentAt() *NewsletterUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *NewsletterUpdate) SetCreatedByID(v uuid.UUID) *NewsletterUpdate {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *NewsletterUpdate) SetNillableCreatedByID(v *uuid.UUID) *NewsletterUpdate {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// ClearCreatedByID clears the value of the "created_by_id" field.
func (_u *NewsletterUpdate) ClearCreatedByID() *NewsletterUpdate {
	_u.mutation.ClearCreatedByID()
	return _u
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_u *NewsletterUpdate) AddCampaignIDs(ids ...uuid.UUID) *NewsletterUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterUpdate) AddCampaigns(v ...*NewsletterCampaign) *NewsletterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterMutation object of the builder.
func (_u *NewsletterUpdate) Mutation() *NewsletterMutation {
	return _u.mutation
}

// ClearCampaigns clears all "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterUpdate) ClearCampaigns() *NewsletterUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to NewsletterCampaign entities by IDs.
func (_u *NewsletterUpdate) RemoveCampaignIDs(ids ...uuid.UUID) *NewsletterUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to NewsletterCampaign entities.
func (_u *NewsletterUpdate) RemoveCampaigns(v ...*NewsletterCampaign) *NewsletterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsletterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsletterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NewsletterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := newsletter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := newsletter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Newsletter.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := newsletter.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Newsletter.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := newsletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Newsletter.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsletterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newsletter.Table, newsletter.Columns, sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(newsletter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsletter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(newsletter.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHTML(); ok {
		_spec.SetField(newsletter.FieldContentHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(newsletter.FieldContentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(newsletter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(newsletter.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(newsletter.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(newsletter.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(newsletter.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(newsletter.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByIDCleared() {
		_spec.ClearField(newsletter.FieldCreatedByID, field.TypeUUID)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
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
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
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
			err = &NotFoundError{newsletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsletterUpdateOne is the builder for updating a single Newsletter entity.
type NewsletterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsletterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NewsletterUpdateOne) SetUpdatedAt(v time.Time) *NewsletterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsletterUpdateOne) SetTitle(v string) *NewsletterUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableTitle(v *string) *NewsletterUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *NewsletterUpdateOne) SetSubject(v string) *NewsletterUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableSubject(v *string) *NewsletterUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContentHTML sets the "content_html" field.
func (_u *NewsletterUpdateOne) SetContentHTML(v string) *NewsletterUpdateOne {
	_u.mutation.SetContentHTML(v)
	return _u
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableContentHTML(v *string) *NewsletterUpdateOne {
	if v != nil {
		_u.SetContentHTML(*v)
	}
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *NewsletterUpdateOne) SetContentText(v string) *NewsletterUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableContentText(v *string) *NewsletterUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NewsletterUpdateOne) SetStatus(v newsletter.Status) *NewsletterUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableStatus(v *newsletter.Status) *NewsletterUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *NewsletterUpdateOne) SetScheduledAt(v time.Time) *NewsletterUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableScheduledAt(v *time.Time) *NewsletterUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *NewsletterUpdateOne) ClearScheduledAt() *NewsletterUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NewsletterUpdateOne) SetSentAt(v time.Time) *NewsletterUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableSentAt(v *time.Time) *NewsletterUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NewsletterUpdateOne) ClearSentAt() *NewsletterUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *NewsletterUpdateOne) SetCreatedByID(v uuid.UUID) *NewsletterUpdateOne {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *NewsletterUpdateOne) SetNillableCreatedByID(v *uuid.UUID) *NewsletterUpdateOne {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// ClearCreatedByID clears the value of the "created_by_id" field.
func (_u *NewsletterUpdateOne) ClearCreatedByID() *NewsletterUpdateOne {
	_u.mutation.ClearCreatedByID()
	return _u
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (_u *NewsletterUpdateOne) AddCampaignIDs(ids ...uuid.UUID) *NewsletterUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterUpdateOne) AddCampaigns(v ...*NewsletterCampaign) *NewsletterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the NewsletterMutation object of the builder.
func (_u *NewsletterUpdateOne) Mutation() *NewsletterMutation {
	return _u.mutation
}

// ClearCampaigns clears all "campaigns" edges to the NewsletterCampaign entity.
func (_u *NewsletterUpdateOne) ClearCampaigns() *NewsletterUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to NewsletterCampaign entities by IDs.
func (_u *NewsletterUpdateOne) RemoveCampaignIDs(ids ...uuid.UUID) *NewsletterUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to NewsletterCampaign entities.
func (_u *NewsletterUpdateOne) RemoveCampaigns(v ...*NewsletterCampaign) *NewsletterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Where appends a list predicates to the NewsletterUpdate builder.
func (_u *NewsletterUpdateOne) Where(ps ...predicate.Newsletter) *NewsletterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsletterUpdateOne) Select(field string, fields ...string) *NewsletterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Newsletter entity.
func (_u *NewsletterUpdateOne) Save(ctx context.Context) (*Newsletter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsletterUpdateOne) SaveX(ctx context.Context) *Newsletter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsletterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsletterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NewsletterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := newsletter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsletterUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := newsletter.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Newsletter.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := newsletter.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "Newsletter.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := newsletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Newsletter.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsletterUpdateOne) sqlSave(ctx context.Context) (_node *Newsletter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newsletter.Table, newsletter.Columns, sqlgraph.NewFieldSpec(newsletter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Newsletter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newsletter.FieldID)
		for _, f := range fields {
			if !newsletter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != newsletter.FieldID {
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
		_spec.SetField(newsletter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsletter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(newsletter.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHTML(); ok {
		_spec.SetField(newsletter.FieldContentHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(newsletter.FieldContentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(newsletter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(newsletter.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(newsletter.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(newsletter.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(newsletter.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(newsletter.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByIDCleared() {
		_spec.ClearField(newsletter.FieldCreatedByID, field.TypeUUID)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
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
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   newsletter.CampaignsTable,
			Columns: []string{newsletter.CampaignsColumn},
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
	_node = &Newsletter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
