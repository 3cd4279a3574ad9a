// Code generated by ent, DO NOT EDIT.

package waitinglist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldDoctorID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldServiceID, v))
}

// PreferredDate applies equality check predicate on the "preferred_date" field. It's identical to PreferredDateEQ.
func PreferredDate(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPreferredDate, v))
}

// PreferredTime applies equality check predicate on the "preferred_time" field. It's identical to PreferredTimeEQ.
func PreferredTime(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPreferredTime, v))
}

// EarliestDate applies equality check predicate on the "earliest_date" field. It's identical to EarliestDateEQ.
func EarliestDate(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldEarliestDate, v))
}

// LatestDate applies equality check predicate on the "latest_date" field. It's identical to LatestDateEQ.
func LatestDate(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldLatestDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldNotes, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldIsActive, v))
}

// Notified applies equality check predicate on the "notified" field. It's identical to NotifiedEQ.
func Notified(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldNotified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldPatientID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldDoctorID, vs...))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDIsNil applies the IsNil predicate on the "service_id" field.
func ServiceIDIsNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIsNull(FieldServiceID))
}

// ServiceIDNotNil applies the NotNil predicate on the "service_id" field.
func ServiceIDNotNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotNull(FieldServiceID))
}

// PreferredDateEQ applies the EQ predicate on the "preferred_date" field.
func PreferredDateEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPreferredDate, v))
}

// PreferredDateNEQ applies the NEQ predicate on the "preferred_date" field.
func PreferredDateNEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldPreferredDate, v))
}

// PreferredDateIn applies the In predicate on the "preferred_date" field.
func PreferredDateIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldPreferredDate, vs...))
}

// PreferredDateNotIn applies the NotIn predicate on the "preferred_date" field.
func PreferredDateNotIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldPreferredDate, vs...))
}

// PreferredDateGT applies the GT predicate on the "preferred_date" field.
func PreferredDateGT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldPreferredDate, v))
}

// PreferredDateGTE applies the GTE predicate on the "preferred_date" field.
func PreferredDateGTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldPreferredDate, v))
}

// PreferredDateLT applies the LT predicate on the "preferred_date" field.
func PreferredDateLT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldPreferredDate, v))
}

// PreferredDateLTE applies the LTE predicate on the "preferred_date" field.
func PreferredDateLTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldPreferredDate, v))
}

// PreferredDateIsNil applies the IsNil predicate on the "preferred_date" field.
func PreferredDateIsNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIsNull(FieldPreferredDate))
}

// PreferredDateNotNil applies the NotNil predicate on the "preferred_date" field.
func PreferredDateNotNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotNull(FieldPreferredDate))
}

// PreferredTimeEQ applies the EQ predicate on the "preferred_time" field.
func PreferredTimeEQ(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldPreferredTime, v))
}

// PreferredTimeNEQ applies the NEQ predicate on the "preferred_time" field.
func PreferredTimeNEQ(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldPreferredTime, v))
}

// PreferredTimeIn applies the In predicate on the "preferred_time" field.
func PreferredTimeIn(vs ...string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldPreferredTime, vs...))
}

// PreferredTimeNotIn applies the NotIn predicate on the "preferred_time" field.
func PreferredTimeNotIn(vs ...string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldPreferredTime, vs...))
}

// PreferredTimeGT applies the GT predicate on the "preferred_time" field.
func PreferredTimeGT(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldPreferredTime, v))
}

// PreferredTimeGTE applies the GTE predicate on the "preferred_time" field.
func PreferredTimeGTE(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldPreferredTime, v))
}

// PreferredTimeLT applies the LT predicate on the "preferred_time" field.
func PreferredTimeLT(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldPreferredTime, v))
}

// PreferredTimeLTE applies the LTE predicate on the "preferred_time" field.
func PreferredTimeLTE(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldPreferredTime, v))
}

// PreferredTimeContains applies the Contains predicate on the "preferred_time" field.
func PreferredTimeContains(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldContains(FieldPreferredTime, v))
}

// PreferredTimeHasPrefix applies the HasPrefix predicate on the "preferred_time" field.
func PreferredTimeHasPrefix(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldHasPrefix(FieldPreferredTime, v))
}

// PreferredTimeHasSuffix applies the HasSuffix predicate on the "preferred_time" field.
func PreferredTimeHasSuffix(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldHasSuffix(FieldPreferredTime, v))
}

// PreferredTimeIsNil applies the IsNil predicate on the "preferred_time" field.
func PreferredTimeIsNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIsNull(FieldPreferredTime))
}

// PreferredTimeNotNil applies the NotNil predicate on the "preferred_time" field.
func PreferredTimeNotNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotNull(FieldPreferredTime))
}

// PreferredTimeEqualFold applies the EqualFold predicate on the "preferred_time" field.
func PreferredTimeEqualFold(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEqualFold(FieldPreferredTime, v))
}

// PreferredTimeContainsFold applies the ContainsFold predicate on the "preferred_time" field.
func PreferredTimeContainsFold(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldContainsFold(FieldPreferredTime, v))
}

// EarliestDateEQ applies the EQ predicate on the "earliest_date" field.
func EarliestDateEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldEarliestDate, v))
}

// EarliestDateNEQ applies the NEQ predicate on the "earliest_date" field.
func EarliestDateNEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldEarliestDate, v))
}

// EarliestDateIn applies the In predicate on the "earliest_date" field.
func EarliestDateIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldEarliestDate, vs...))
}

// EarliestDateNotIn applies the NotIn predicate on the "earliest_date" field.
func EarliestDateNotIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldEarliestDate, vs...))
}

// EarliestDateGT applies the GT predicate on the "earliest_date" field.
func EarliestDateGT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldEarliestDate, v))
}

// EarliestDateGTE applies the GTE predicate on the "earliest_date" field.
func EarliestDateGTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldEarliestDate, v))
}

// EarliestDateLT applies the LT predicate on the "earliest_date" field.
func EarliestDateLT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldEarliestDate, v))
}

// EarliestDateLTE applies the LTE predicate on the "earliest_date" field.
func EarliestDateLTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldEarliestDate, v))
}

// LatestDateEQ applies the EQ predicate on the "latest_date" field.
func LatestDateEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldLatestDate, v))
}

// LatestDateNEQ applies the NEQ predicate on the "latest_date" field.
func LatestDateNEQ(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldLatestDate, v))
}

// LatestDateIn applies the In predicate on the "latest_date" field.
func LatestDateIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldLatestDate, vs...))
}

// LatestDateNotIn applies the NotIn predicate on the "latest_date" field.
func LatestDateNotIn(vs ...time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldLatestDate, vs...))
}

// LatestDateGT applies the GT predicate on the "latest_date" field.
func LatestDateGT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldLatestDate, v))
}

// LatestDateGTE applies the GTE predicate on the "latest_date" field.
func LatestDateGTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldLatestDate, v))
}

// LatestDateLT applies the LT predicate on the "latest_date" field.
func LatestDateLT(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldLatestDate, v))
}

// LatestDateLTE applies the LTE predicate on the "latest_date" field.
func LatestDateLTE(v time.Time) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldLatestDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldContainsFold(FieldNotes, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldIsActive, v))
}

// NotifiedEQ applies the EQ predicate on the "notified" field.
func NotifiedEQ(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldEQ(FieldNotified, v))
}

// NotifiedNEQ applies the NEQ predicate on the "notified" field.
func NotifiedNEQ(v bool) predicate.WaitingList {
	return predicate.WaitingList(sql.FieldNEQ(FieldNotified, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasService applies the HasEdge predicate on the "service" edge.
func HasService() predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ServiceTable, ServiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServiceWith applies the HasEdge predicate on the "service" edge with a given conditions (other predicates).
func HasServiceWith(preds ...predicate.Service) predicate.WaitingList {
	return predicate.WaitingList(func(s *sql.Selector) {
		step := newServiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WaitingList) predicate.WaitingList {
	return predicate.WaitingList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WaitingList) predicate.WaitingList {
	return predicate.WaitingList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WaitingList) predicate.WaitingList {
	return predicate.WaitingList(sql.NotPredicates(p))
}
