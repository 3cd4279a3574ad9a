// Code generated by ent, DO NOT EDIT.

package contactresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// ContactMessageID applies equality check predicate on the "contact_message_id" field. It's identical to ContactMessageIDEQ.
func ContactMessageID(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldContactMessageID, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldResponse, v))
}

// RespondedByID applies equality check predicate on the "responded_by_id" field. It's identical to RespondedByIDEQ.
func RespondedByID(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldRespondedByID, v))
}

// IsSent applies equality check predicate on the "is_sent" field. It's identical to IsSentEQ.
func IsSent(v bool) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldIsSent, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldSentAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// ContactMessageIDEQ applies the EQ predicate on the "contact_message_id" field.
func ContactMessageIDEQ(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldContactMessageID, v))
}

// ContactMessageIDNEQ applies the NEQ predicate on the "contact_message_id" field.
func ContactMessageIDNEQ(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldContactMessageID, v))
}

// ContactMessageIDIn applies the In predicate on the "contact_message_id" field.
func ContactMessageIDIn(vs ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldContactMessageID, vs...))
}

// ContactMessageIDNotIn applies the NotIn predicate on the "contact_message_id" field.
func ContactMessageIDNotIn(vs ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldContactMessageID, vs...))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldContainsFold(FieldResponse, v))
}

// RespondedByIDEQ applies the EQ predicate on the "responded_by_id" field.
func RespondedByIDEQ(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldRespondedByID, v))
}

// RespondedByIDNEQ applies the NEQ predicate on the "responded_by_id" field.
func RespondedByIDNEQ(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldRespondedByID, v))
}

// RespondedByIDIn applies the In predicate on the "responded_by_id" field.
func RespondedByIDIn(vs ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldRespondedByID, vs...))
}

// RespondedByIDNotIn applies the NotIn predicate on the "responded_by_id" field.
func RespondedByIDNotIn(vs ...uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldRespondedByID, vs...))
}

// RespondedByIDGT applies the GT predicate on the "responded_by_id" field.
func RespondedByIDGT(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGT(FieldRespondedByID, v))
}

// RespondedByIDGTE applies the GTE predicate on the "responded_by_id" field.
func RespondedByIDGTE(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGTE(FieldRespondedByID, v))
}

// RespondedByIDLT applies the LT predicate on the "responded_by_id" field.
func RespondedByIDLT(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLT(FieldRespondedByID, v))
}

// RespondedByIDLTE applies the LTE predicate on the "responded_by_id" field.
func RespondedByIDLTE(v uuid.UUID) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLTE(FieldRespondedByID, v))
}

// RespondedByIDIsNil applies the IsNil predicate on the "responded_by_id" field.
func RespondedByIDIsNil() predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIsNull(FieldRespondedByID))
}

// RespondedByIDNotNil applies the NotNil predicate on the "responded_by_id" field.
func RespondedByIDNotNil() predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotNull(FieldRespondedByID))
}

// IsSentEQ applies the EQ predicate on the "is_sent" field.
func IsSentEQ(v bool) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldIsSent, v))
}

// IsSentNEQ applies the NEQ predicate on the "is_sent" field.
func IsSentNEQ(v bool) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldIsSent, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.ContactResponse {
	return predicate.ContactResponse(sql.FieldNotNull(FieldSentAt))
}

// HasContactMessage applies the HasEdge predicate on the "contact_message" edge.
func HasContactMessage() predicate.ContactResponse {
	return predicate.ContactResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactMessageTable, ContactMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactMessageWith applies the HasEdge predicate on the "contact_message" edge with a given conditions (other predicates).
func HasContactMessageWith(preds ...predicate.ContactMessage) predicate.ContactResponse {
	return predicate.ContactResponse(func(s *sql.Selector) {
		step := newContactMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContactResponse) predicate.ContactResponse {
	return predicate.ContactResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContactResponse) predicate.ContactResponse {
	return predicate.ContactResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContactResponse) predicate.ContactResponse {
	return predicate.ContactResponse(sql.NotPredicates(p))
}
