// Code generated by ent, DO NOT EDIT.

package doctoravailability

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldCreatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDoctorID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndTime, v))
}

// IsAvailable applies equality check predicate on the "is_available" field. It's identical to IsAvailableEQ.
func IsAvailable(v bool) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldIsAvailable, v))
}

// MaxPatients applies equality check predicate on the "max_patients" field. It's identical to MaxPatientsEQ.
func MaxPatients(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldMaxPatients, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldCreatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldContainsFold(FieldEndTime, v))
}

// IsAvailableEQ applies the EQ predicate on the "is_available" field.
func IsAvailableEQ(v bool) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldIsAvailable, v))
}

// IsAvailableNEQ applies the NEQ predicate on the "is_available" field.
func IsAvailableNEQ(v bool) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldIsAvailable, v))
}

// MaxPatientsEQ applies the EQ predicate on the "max_patients" field.
func MaxPatientsEQ(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldEQ(FieldMaxPatients, v))
}

// MaxPatientsNEQ applies the NEQ predicate on the "max_patients" field.
func MaxPatientsNEQ(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNEQ(FieldMaxPatients, v))
}

// MaxPatientsIn applies the In predicate on the "max_patients" field.
func MaxPatientsIn(vs ...int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldIn(FieldMaxPatients, vs...))
}

// MaxPatientsNotIn applies the NotIn predicate on the "max_patients" field.
func MaxPatientsNotIn(vs ...int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldNotIn(FieldMaxPatients, vs...))
}

// MaxPatientsGT applies the GT predicate on the "max_patients" field.
func MaxPatientsGT(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGT(FieldMaxPatients, v))
}

// MaxPatientsGTE applies the GTE predicate on the "max_patients" field.
func MaxPatientsGTE(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldGTE(FieldMaxPatients, v))
}

// MaxPatientsLT applies the LT predicate on the "max_patients" field.
func MaxPatientsLT(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLT(FieldMaxPatients, v))
}

// MaxPatientsLTE applies the LTE predicate on the "max_patients" field.
func MaxPatientsLTE(v int) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.FieldLTE(FieldMaxPatients, v))
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.DoctorAvailability {
	return predicate.DoctorAvailability(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorAvailability) predicate.DoctorAvailability {
	return predicate.DoctorAvailability(sql.NotPredicates(p))
}
