// Code generated by ent, DO NOT EDIT.

package medicalhistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the medicalhistory type in the database.
	Label = "medical_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldConditionType holds the string denoting the condition_type field in the database.
	FieldConditionType = "condition_type"
	// FieldConditionName holds the string denoting the condition_name field in the database.
	FieldConditionName = "condition_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDateDiagnosed holds the string denoting the date_diagnosed field in the database.
	FieldDateDiagnosed = "date_diagnosed"
	// FieldIsCurrent holds the string denoting the is_current field in the database.
	FieldIsCurrent = "is_current"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the medicalhistory in the database.
	Table = "medical_histories"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "medical_histories"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for medicalhistory fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldConditionType,
	FieldConditionName,
	FieldDescription,
	FieldDateDiagnosed,
	FieldIsCurrent,
	FieldSeverity,
	FieldNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ConditionNameValidator is a validator for the "condition_name" field. It is called by the builders before save.
	ConditionNameValidator func(string) error
	// DefaultIsCurrent holds the default value on creation for the "is_current" field.
	DefaultIsCurrent bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ConditionType defines the type for the "condition_type" enum field.
type ConditionType string

// ConditionType values.
const (
	ConditionTypeSkin          ConditionType = "skin"
	ConditionTypeAllergy       ConditionType = "allergy"
	ConditionTypeSurgery       ConditionType = "surgery"
	ConditionTypeMedication    ConditionType = "medication"
	ConditionTypeFamilyHistory ConditionType = "family_history"
	ConditionTypeOther         ConditionType = "other"
)

func (ct ConditionType) String() string {
	return string(ct)
}

// ConditionTypeValidator is a validator for the "condition_type" field enum values. It is called by the builders before save.
func ConditionTypeValidator(ct ConditionType) error {
	switch ct {
	case ConditionTypeSkin, ConditionTypeAllergy, ConditionTypeSurgery, ConditionTypeMedication, ConditionTypeFamilyHistory, ConditionTypeOther:
		return nil
	default:
		return fmt.Errorf("medicalhistory: invalid enum value for condition_type field: %q", ct)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return nil
	default:
		return fmt.Errorf("medicalhistory: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the MedicalHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByConditionType orders the results by the condition_type field.
func ByConditionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionType, opts...).ToFunc()
}

// ByConditionName orders the results by the condition_name field.
func ByConditionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDateDiagnosed orders the results by the date_diagnosed field.
func ByDateDiagnosed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateDiagnosed, opts...).ToFunc()
}

// ByIsCurrent orders the results by the is_current field.
func ByIsCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCurrent, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
