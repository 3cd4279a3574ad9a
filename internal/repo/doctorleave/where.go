// Code generated by ent, DO NOT EDIT.

package doctorleave

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldCreatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldDoctorID, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldEndDate, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldReason, v))
}

// IsApproved applies equality check predicate on the "is_approved" field. It's identical to IsApprovedEQ.
func IsApproved(v bool) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldIsApproved, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLTE(FieldCreatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldDoctorID, vs...))
}

// LeaveTypeEQ applies the EQ predicate on the "leave_type" field.
func LeaveTypeEQ(v LeaveType) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldLeaveType, v))
}

// LeaveTypeNEQ applies the NEQ predicate on the "leave_type" field.
func LeaveTypeNEQ(v LeaveType) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldLeaveType, v))
}

// LeaveTypeIn applies the In predicate on the "leave_type" field.
func LeaveTypeIn(vs ...LeaveType) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldLeaveType, vs...))
}

// LeaveTypeNotIn applies the NotIn predicate on the "leave_type" field.
func LeaveTypeNotIn(vs ...LeaveType) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldLeaveType, vs...))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLTE(FieldEndDate, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldContainsFold(FieldReason, v))
}

// IsApprovedEQ applies the EQ predicate on the "is_approved" field.
func IsApprovedEQ(v bool) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldEQ(FieldIsApproved, v))
}

// IsApprovedNEQ applies the NEQ predicate on the "is_approved" field.
func IsApprovedNEQ(v bool) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.FieldNEQ(FieldIsApproved, v))
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.DoctorLeave {
	return predicate.DoctorLeave(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.DoctorLeave {
	return predicate.DoctorLeave(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorLeave) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorLeave) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorLeave) predicate.DoctorLeave {
	return predicate.DoctorLeave(sql.NotPredicates(p))
}
