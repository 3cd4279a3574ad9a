// Code generated by ent, DO NOT EDIT.

package medicalhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPatientID, v))
}

// ConditionName applies equality check predicate on the "condition_name" field. It's identical to ConditionNameEQ.
func ConditionName(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldConditionName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldDescription, v))
}

// DateDiagnosed applies equality check predicate on the "date_diagnosed" field. It's identical to DateDiagnosedEQ.
func DateDiagnosed(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldDateDiagnosed, v))
}

// IsCurrent applies equality check predicate on the "is_current" field. It's identical to IsCurrentEQ.
func IsCurrent(v bool) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldIsCurrent, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldPatientID, vs...))
}

// ConditionTypeEQ applies the EQ predicate on the "condition_type" field.
func ConditionTypeEQ(v ConditionType) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldConditionType, v))
}

// ConditionTypeNEQ applies the NEQ predicate on the "condition_type" field.
func ConditionTypeNEQ(v ConditionType) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldConditionType, v))
}

// ConditionTypeIn applies the In predicate on the "condition_type" field.
func ConditionTypeIn(vs ...ConditionType) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldConditionType, vs...))
}

// ConditionTypeNotIn applies the NotIn predicate on the "condition_type" field.
func ConditionTypeNotIn(vs ...ConditionType) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldConditionType, vs...))
}

// ConditionNameEQ applies the EQ predicate on the "condition_name" field.
func ConditionNameEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldConditionName, v))
}

// ConditionNameNEQ applies the NEQ predicate on the "condition_name" field.
func ConditionNameNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldConditionName, v))
}

// ConditionNameIn applies the In predicate on the "condition_name" field.
func ConditionNameIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldConditionName, vs...))
}

// ConditionNameNotIn applies the NotIn predicate on the "condition_name" field.
func ConditionNameNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldConditionName, vs...))
}

// ConditionNameGT applies the GT predicate on the "condition_name" field.
func ConditionNameGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldConditionName, v))
}

// ConditionNameGTE applies the GTE predicate on the "condition_name" field.
func ConditionNameGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldConditionName, v))
}

// ConditionNameLT applies the LT predicate on the "condition_name" field.
func ConditionNameLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldConditionName, v))
}

// ConditionNameLTE applies the LTE predicate on the "condition_name" field.
func ConditionNameLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldConditionName, v))
}

// ConditionNameContains applies the Contains predicate on the "condition_name" field.
func ConditionNameContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldConditionName, v))
}

// ConditionNameHasPrefix applies the HasPrefix predicate on the "condition_name" field.
func ConditionNameHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldConditionName, v))
}

// ConditionNameHasSuffix applies the HasSuffix predicate on the "condition_name" field.
func ConditionNameHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldConditionName, v))
}

// ConditionNameEqualFold applies the EqualFold predicate on the "condition_name" field.
func ConditionNameEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldConditionName, v))
}

// ConditionNameContainsFold applies the ContainsFold predicate on the "condition_name" field.
func ConditionNameContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldConditionName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldDescription, v))
}

// DateDiagnosedEQ applies the EQ predicate on the "date_diagnosed" field.
func DateDiagnosedEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldDateDiagnosed, v))
}

// DateDiagnosedNEQ applies the NEQ predicate on the "date_diagnosed" field.
func DateDiagnosedNEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldDateDiagnosed, v))
}

// DateDiagnosedIn applies the In predicate on the "date_diagnosed" field.
func DateDiagnosedIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldDateDiagnosed, vs...))
}

// DateDiagnosedNotIn applies the NotIn predicate on the "date_diagnosed" field.
func DateDiagnosedNotIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldDateDiagnosed, vs...))
}

// DateDiagnosedGT applies the GT predicate on the "date_diagnosed" field.
func DateDiagnosedGT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldDateDiagnosed, v))
}

// DateDiagnosedGTE applies the GTE predicate on the "date_diagnosed" field.
func DateDiagnosedGTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldDateDiagnosed, v))
}

// DateDiagnosedLT applies the LT predicate on the "date_diagnosed" field.
func DateDiagnosedLT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldDateDiagnosed, v))
}

// DateDiagnosedLTE applies the LTE predicate on the "date_diagnosed" field.
func DateDiagnosedLTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldDateDiagnosed, v))
}

// DateDiagnosedIsNil applies the IsNil predicate on the "date_diagnosed" field.
func DateDiagnosedIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldDateDiagnosed))
}

// DateDiagnosedNotNil applies the NotNil predicate on the "date_diagnosed" field.
func DateDiagnosedNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldDateDiagnosed))
}

// IsCurrentEQ applies the EQ predicate on the "is_current" field.
func IsCurrentEQ(v bool) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldIsCurrent, v))
}

// IsCurrentNEQ applies the NEQ predicate on the "is_current" field.
func IsCurrentNEQ(v bool) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldIsCurrent, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldSeverity))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.MedicalHistory {
	return predicate.MedicalHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.MedicalHistory {
	return predicate.MedicalHistory(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.NotPredicates(p))
}
