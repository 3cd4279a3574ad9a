// Code generated by ent, DO NOT EDIT.

package newslettercampaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldCreatedAt, v))
}

// NewsletterID applies equality check predicate on the "newsletter_id" field. It's identical to NewsletterIDEQ.
func NewsletterID(v uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldNewsletterID, v))
}

// SentCount applies equality check predicate on the "sent_count" field. It's identical to SentCountEQ.
func SentCount(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldSentCount, v))
}

// OpenCount applies equality check predicate on the "open_count" field. It's identical to OpenCountEQ.
func OpenCount(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldOpenCount, v))
}

// ClickCount applies equality check predicate on the "click_count" field. It's identical to ClickCountEQ.
func ClickCount(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldClickCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldCreatedAt, v))
}

// NewsletterIDEQ applies the EQ predicate on the "newsletter_id" field.
func NewsletterIDEQ(v uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldNewsletterID, v))
}

// NewsletterIDNEQ applies the NEQ predicate on the "newsletter_id" field.
func NewsletterIDNEQ(v uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldNewsletterID, v))
}

// NewsletterIDIn applies the In predicate on the "newsletter_id" field.
func NewsletterIDIn(vs ...uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldNewsletterID, vs...))
}

// NewsletterIDNotIn applies the NotIn predicate on the "newsletter_id" field.
func NewsletterIDNotIn(vs ...uuid.UUID) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldNewsletterID, vs...))
}

// SentCountEQ applies the EQ predicate on the "sent_count" field.
func SentCountEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldSentCount, v))
}

// SentCountNEQ applies the NEQ predicate on the "sent_count" field.
func SentCountNEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldSentCount, v))
}

// SentCountIn applies the In predicate on the "sent_count" field.
func SentCountIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldSentCount, vs...))
}

// SentCountNotIn applies the NotIn predicate on the "sent_count" field.
func SentCountNotIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldSentCount, vs...))
}

// SentCountGT applies the GT predicate on the "sent_count" field.
func SentCountGT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldSentCount, v))
}

// SentCountGTE applies the GTE predicate on the "sent_count" field.
func SentCountGTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldSentCount, v))
}

// SentCountLT applies the LT predicate on the "sent_count" field.
func SentCountLT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldSentCount, v))
}

// SentCountLTE applies the LTE predicate on the "sent_count" field.
func SentCountLTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldSentCount, v))
}

// OpenCountEQ applies the EQ predicate on the "open_count" field.
func OpenCountEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldOpenCount, v))
}

// OpenCountNEQ applies the NEQ predicate on the "open_count" field.
func OpenCountNEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldOpenCount, v))
}

// OpenCountIn applies the In predicate on the "open_count" field.
func OpenCountIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldOpenCount, vs...))
}

// OpenCountNotIn applies the NotIn predicate on the "open_count" field.
func OpenCountNotIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldOpenCount, vs...))
}

// OpenCountGT applies the GT predicate on the "open_count" field.
func OpenCountGT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldOpenCount, v))
}

// OpenCountGTE applies the GTE predicate on the "open_count" field.
func OpenCountGTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldOpenCount, v))
}

// OpenCountLT applies the LT predicate on the "open_count" field.
func OpenCountLT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldOpenCount, v))
}

// OpenCountLTE applies the LTE predicate on the "open_count" field.
func OpenCountLTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldOpenCount, v))
}

// ClickCountEQ applies the EQ predicate on the "click_count" field.
func ClickCountEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldClickCount, v))
}

// ClickCountNEQ applies the NEQ predicate on the "click_count" field.
func ClickCountNEQ(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldClickCount, v))
}

// ClickCountIn applies the In predicate on the "click_count" field.
func ClickCountIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldClickCount, vs...))
}

// ClickCountNotIn applies the NotIn predicate on the "click_count" field.
func ClickCountNotIn(vs ...int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldClickCount, vs...))
}

// ClickCountGT applies the GT predicate on the "click_count" field.
func ClickCountGT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldClickCount, v))
}

// ClickCountGTE applies the GTE predicate on the "click_count" field.
func ClickCountGTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldClickCount, v))
}

// ClickCountLT applies the LT predicate on the "click_count" field.
func ClickCountLT(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldClickCount, v))
}

// ClickCountLTE applies the LTE predicate on the "click_count" field.
func ClickCountLTE(v int) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldClickCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.FieldNotNull(FieldCompletedAt))
}

// HasNewsletter applies the HasEdge predicate on the "newsletter" edge.
func HasNewsletter() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NewsletterTable, NewsletterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNewsletterWith applies the HasEdge predicate on the "newsletter" edge with a given conditions (other predicates).
func HasNewsletterWith(preds ...predicate.Newsletter) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(func(s *sql.Selector) {
		step := newNewsletterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubscribers applies the HasEdge predicate on the "subscribers" edge.
func HasSubscribers() predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, SubscribersTable, SubscribersPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscribersWith applies the HasEdge predicate on the "subscribers" edge with a given conditions (other predicates).
func HasSubscribersWith(preds ...predicate.NewsletterSubscriber) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(func(s *sql.Selector) {
		step := newSubscribersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsletterCampaign) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsletterCampaign) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsletterCampaign) predicate.NewsletterCampaign {
	return predicate.NewsletterCampaign(sql.NotPredicates(p))
}
