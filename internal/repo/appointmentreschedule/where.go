// Code generated by ent, DO NOT EDIT.

package appointmentreschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldCreatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldAppointmentID, v))
}

// OldStartTime applies equality check predicate on the "old_start_time" field. It's identical to OldStartTimeEQ.
func OldStartTime(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldOldStartTime, v))
}

// NewStartTime applies equality check predicate on the "new_start_time" field. It's identical to NewStartTimeEQ.
func NewStartTime(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldNewStartTime, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldReason, v))
}

// RescheduledByID applies equality check predicate on the "rescheduled_by_id" field. It's identical to RescheduledByIDEQ.
func RescheduledByID(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldRescheduledByID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldCreatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// OldStartTimeEQ applies the EQ predicate on the "old_start_time" field.
func OldStartTimeEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldOldStartTime, v))
}

// OldStartTimeNEQ applies the NEQ predicate on the "old_start_time" field.
func OldStartTimeNEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldOldStartTime, v))
}

// OldStartTimeIn applies the In predicate on the "old_start_time" field.
func OldStartTimeIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldOldStartTime, vs...))
}

// OldStartTimeNotIn applies the NotIn predicate on the "old_start_time" field.
func OldStartTimeNotIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldOldStartTime, vs...))
}

// OldStartTimeGT applies the GT predicate on the "old_start_time" field.
func OldStartTimeGT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldOldStartTime, v))
}

// OldStartTimeGTE applies the GTE predicate on the "old_start_time" field.
func OldStartTimeGTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldOldStartTime, v))
}

// OldStartTimeLT applies the LT predicate on the "old_start_time" field.
func OldStartTimeLT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldOldStartTime, v))
}

// OldStartTimeLTE applies the LTE predicate on the "old_start_time" field.
func OldStartTimeLTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldOldStartTime, v))
}

// NewStartTimeEQ applies the EQ predicate on the "new_start_time" field.
func NewStartTimeEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldNewStartTime, v))
}

// NewStartTimeNEQ applies the NEQ predicate on the "new_start_time" field.
func NewStartTimeNEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldNewStartTime, v))
}

// NewStartTimeIn applies the In predicate on the "new_start_time" field.
func NewStartTimeIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldNewStartTime, vs...))
}

// NewStartTimeNotIn applies the NotIn predicate on the "new_start_time" field.
func NewStartTimeNotIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldNewStartTime, vs...))
}

// NewStartTimeGT applies the GT predicate on the "new_start_time" field.
func NewStartTimeGT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldNewStartTime, v))
}

// NewStartTimeGTE applies the GTE predicate on the "new_start_time" field.
func NewStartTimeGTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldNewStartTime, v))
}

// NewStartTimeLT applies the LT predicate on the "new_start_time" field.
func NewStartTimeLT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldNewStartTime, v))
}

// NewStartTimeLTE applies the LTE predicate on the "new_start_time" field.
func NewStartTimeLTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldNewStartTime, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldContainsFold(FieldReason, v))
}

// RescheduledByIDEQ applies the EQ predicate on the "rescheduled_by_id" field.
func RescheduledByIDEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldRescheduledByID, v))
}

// RescheduledByIDNEQ applies the NEQ predicate on the "rescheduled_by_id" field.
func RescheduledByIDNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldRescheduledByID, v))
}

// RescheduledByIDIn applies the In predicate on the "rescheduled_by_id" field.
func RescheduledByIDIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldRescheduledByID, vs...))
}

// RescheduledByIDNotIn applies the NotIn predicate on the "rescheduled_by_id" field.
func RescheduledByIDNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldRescheduledByID, vs...))
}

// RescheduledByIDGT applies the GT predicate on the "rescheduled_by_id" field.
func RescheduledByIDGT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldRescheduledByID, v))
}

// RescheduledByIDGTE applies the GTE predicate on the "rescheduled_by_id" field.
func RescheduledByIDGTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldRescheduledByID, v))
}

// RescheduledByIDLT applies the LT predicate on the "rescheduled_by_id" field.
func RescheduledByIDLT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldRescheduledByID, v))
}

// RescheduledByIDLTE applies the LTE predicate on the "rescheduled_by_id" field.
func RescheduledByIDLTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldRescheduledByID, v))
}

// HasAppointment applies the HasEdge predicate on the "appointment" edge.
func HasAppointment() predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppointmentTable, AppointmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentWith applies the HasEdge predicate on the "appointment" edge with a given conditions (other predicates).
func HasAppointmentWith(preds ...predicate.Appointment) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(func(s *sql.Selector) {
		step := newAppointmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.NotPredicates(p))
}
