// Code generated by ent, DO NOT EDIT.

package newslettersubscriber

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldEmail, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldLastName, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldIsActive, v))
}

// UnsubscribeToken applies equality check predicate on the "unsubscribe_token" field. It's identical to UnsubscribeTokenEQ.
func UnsubscribeToken(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldUnsubscribeToken, v))
}

// SubscribedAt applies equality check predicate on the "subscribed_at" field. It's identical to SubscribedAtEQ.
func SubscribedAt(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldSubscribedAt, v))
}

// UnsubscribedAt applies equality check predicate on the "unsubscribed_at" field. It's identical to UnsubscribedAtEQ.
func UnsubscribedAt(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldUnsubscribedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContainsFold(FieldEmail, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContainsFold(FieldLastName, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldIsActive, v))
}

// UnsubscribeTokenEQ applies the EQ predicate on the "unsubscribe_token" field.
func UnsubscribeTokenEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenNEQ applies the NEQ predicate on the "unsubscribe_token" field.
func UnsubscribeTokenNEQ(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenIn applies the In predicate on the "unsubscribe_token" field.
func UnsubscribeTokenIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldUnsubscribeToken, vs...))
}

// UnsubscribeTokenNotIn applies the NotIn predicate on the "unsubscribe_token" field.
func UnsubscribeTokenNotIn(vs ...string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldUnsubscribeToken, vs...))
}

// UnsubscribeTokenGT applies the GT predicate on the "unsubscribe_token" field.
func UnsubscribeTokenGT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenGTE applies the GTE predicate on the "unsubscribe_token" field.
func UnsubscribeTokenGTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenLT applies the LT predicate on the "unsubscribe_token" field.
func UnsubscribeTokenLT(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenLTE applies the LTE predicate on the "unsubscribe_token" field.
func UnsubscribeTokenLTE(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenContains applies the Contains predicate on the "unsubscribe_token" field.
func UnsubscribeTokenContains(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContains(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenHasPrefix applies the HasPrefix predicate on the "unsubscribe_token" field.
func UnsubscribeTokenHasPrefix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasPrefix(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenHasSuffix applies the HasSuffix predicate on the "unsubscribe_token" field.
func UnsubscribeTokenHasSuffix(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldHasSuffix(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenEqualFold applies the EqualFold predicate on the "unsubscribe_token" field.
func UnsubscribeTokenEqualFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEqualFold(FieldUnsubscribeToken, v))
}

// UnsubscribeTokenContainsFold applies the ContainsFold predicate on the "unsubscribe_token" field.
func UnsubscribeTokenContainsFold(v string) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldContainsFold(FieldUnsubscribeToken, v))
}

// SubscribedAtEQ applies the EQ predicate on the "subscribed_at" field.
func SubscribedAtEQ(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldSubscribedAt, v))
}

// SubscribedAtNEQ applies the NEQ predicate on the "subscribed_at" field.
func SubscribedAtNEQ(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldSubscribedAt, v))
}

// SubscribedAtIn applies the In predicate on the "subscribed_at" field.
func SubscribedAtIn(vs ...time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldSubscribedAt, vs...))
}

// SubscribedAtNotIn applies the NotIn predicate on the "subscribed_at" field.
func SubscribedAtNotIn(vs ...time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldSubscribedAt, vs...))
}

// SubscribedAtGT applies the GT predicate on the "subscribed_at" field.
func SubscribedAtGT(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldSubscribedAt, v))
}

// SubscribedAtGTE applies the GTE predicate on the "subscribed_at" field.
func SubscribedAtGTE(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldSubscribedAt, v))
}

// SubscribedAtLT applies the LT predicate on the "subscribed_at" field.
func SubscribedAtLT(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldSubscribedAt, v))
}

// SubscribedAtLTE applies the LTE predicate on the "subscribed_at" field.
func SubscribedAtLTE(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldSubscribedAt, v))
}

// UnsubscribedAtEQ applies the EQ predicate on the "unsubscribed_at" field.
func UnsubscribedAtEQ(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldEQ(FieldUnsubscribedAt, v))
}

// UnsubscribedAtNEQ applies the NEQ predicate on the "unsubscribed_at" field.
func UnsubscribedAtNEQ(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNEQ(FieldUnsubscribedAt, v))
}

// UnsubscribedAtIn applies the In predicate on the "unsubscribed_at" field.
func UnsubscribedAtIn(vs ...time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIn(FieldUnsubscribedAt, vs...))
}

// UnsubscribedAtNotIn applies the NotIn predicate on the "unsubscribed_at" field.
func UnsubscribedAtNotIn(vs ...time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotIn(FieldUnsubscribedAt, vs...))
}

// UnsubscribedAtGT applies the GT predicate on the "unsubscribed_at" field.
func UnsubscribedAtGT(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGT(FieldUnsubscribedAt, v))
}

// UnsubscribedAtGTE applies the GTE predicate on the "unsubscribed_at" field.
func UnsubscribedAtGTE(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldGTE(FieldUnsubscribedAt, v))
}

// UnsubscribedAtLT applies the LT predicate on the "unsubscribed_at" field.
func UnsubscribedAtLT(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLT(FieldUnsubscribedAt, v))
}

// UnsubscribedAtLTE applies the LTE predicate on the "unsubscribed_at" field.
func UnsubscribedAtLTE(v time.Time) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldLTE(FieldUnsubscribedAt, v))
}

// UnsubscribedAtIsNil applies the IsNil predicate on the "unsubscribed_at" field.
func UnsubscribedAtIsNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldIsNull(FieldUnsubscribedAt))
}

// UnsubscribedAtNotNil applies the NotNil predicate on the "unsubscribed_at" field.
func UnsubscribedAtNotNil() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.FieldNotNull(FieldUnsubscribedAt))
}

// HasCampaigns applies the HasEdge predicate on the "campaigns" edge.
func HasCampaigns() predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, CampaignsTable, CampaignsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignsWith applies the HasEdge predicate on the "campaigns" edge with a given conditions (other predicates).
func HasCampaignsWith(preds ...predicate.NewsletterCampaign) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(func(s *sql.Selector) {
		step := newCampaignsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsletterSubscriber) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsletterSubscriber) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsletterSubscriber) predicate.NewsletterSubscriber {
	return predicate.NewsletterSubscriber(sql.NotPredicates(p))
}
