// Code generated by ent, DO NOT EDIT.

package appointmentnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldCreatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldAppointmentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldContent, v))
}

// IsPrivate applies equality check predicate on the "is_private" field. It's identical to IsPrivateEQ.
func IsPrivate(v bool) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldIsPrivate, v))
}

// CreatedByID applies equality check predicate on the "created_by_id" field. It's identical to CreatedByIDEQ.
func CreatedByID(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldCreatedByID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLTE(FieldCreatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// NoteTypeEQ applies the EQ predicate on the "note_type" field.
func NoteTypeEQ(v NoteType) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldNoteType, v))
}

// NoteTypeNEQ applies the NEQ predicate on the "note_type" field.
func NoteTypeNEQ(v NoteType) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldNoteType, v))
}

// NoteTypeIn applies the In predicate on the "note_type" field.
func NoteTypeIn(vs ...NoteType) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldNoteType, vs...))
}

// NoteTypeNotIn applies the NotIn predicate on the "note_type" field.
func NoteTypeNotIn(vs ...NoteType) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldNoteType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldContainsFold(FieldContent, v))
}

// IsPrivateEQ applies the EQ predicate on the "is_private" field.
func IsPrivateEQ(v bool) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldIsPrivate, v))
}

// IsPrivateNEQ applies the NEQ predicate on the "is_private" field.
func IsPrivateNEQ(v bool) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldIsPrivate, v))
}

// CreatedByIDEQ applies the EQ predicate on the "created_by_id" field.
func CreatedByIDEQ(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldEQ(FieldCreatedByID, v))
}

// CreatedByIDNEQ applies the NEQ predicate on the "created_by_id" field.
func CreatedByIDNEQ(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNEQ(FieldCreatedByID, v))
}

// CreatedByIDIn applies the In predicate on the "created_by_id" field.
func CreatedByIDIn(vs ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldIn(FieldCreatedByID, vs...))
}

// CreatedByIDNotIn applies the NotIn predicate on the "created_by_id" field.
func CreatedByIDNotIn(vs ...uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldNotIn(FieldCreatedByID, vs...))
}

// CreatedByIDGT applies the GT predicate on the "created_by_id" field.
func CreatedByIDGT(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGT(FieldCreatedByID, v))
}

// CreatedByIDGTE applies the GTE predicate on the "created_by_id" field.
func CreatedByIDGTE(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldGTE(FieldCreatedByID, v))
}

// CreatedByIDLT applies the LT predicate on the "created_by_id" field.
func CreatedByIDLT(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLT(FieldCreatedByID, v))
}

// CreatedByIDLTE applies the LTE predicate on the "created_by_id" field.
func CreatedByIDLTE(v uuid.UUID) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.FieldLTE(FieldCreatedByID, v))
}

// HasAppointment applies the HasEdge predicate on the "appointment" edge.
func HasAppointment() predicate.AppointmentNote {
	return predicate.AppointmentNote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppointmentTable, AppointmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentWith applies the HasEdge predicate on the "appointment" edge with a given conditions (other predicates).
func HasAppointmentWith(preds ...predicate.Appointment) predicate.AppointmentNote {
	return predicate.AppointmentNote(func(s *sql.Selector) {
		step := newAppointmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentNote) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentNote) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentNote) predicate.AppointmentNote {
	return predicate.AppointmentNote(sql.NotPredicates(p))
}
