// Code generated by ent, DO NOT EDIT.

package patientdocument

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patientdocument type in the database.
	Label = "patient_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFileKey holds the string denoting the file_key field in the database.
	FieldFileKey = "file_key"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldUploadedByID holds the string denoting the uploaded_by_id field in the database.
	FieldUploadedByID = "uploaded_by_id"
	// FieldIsSensitive holds the string denoting the is_sensitive field in the database.
	FieldIsSensitive = "is_sensitive"
	// FieldExpiryDate holds the string denoting the expiry_date field in the database.
	FieldExpiryDate = "expiry_date"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeUploadedBy holds the string denoting the uploaded_by edge name in mutations.
	EdgeUploadedBy = "uploaded_by"
	// Table holds the table name of the patientdocument in the database.
	Table = "patient_documents"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "patient_documents"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// UploadedByTable is the table that holds the uploaded_by relation/edge.
	UploadedByTable = "patient_documents"
	// UploadedByInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UploadedByInverseTable = "users"
	// UploadedByColumn is the table column denoting the uploaded_by relation/edge.
	UploadedByColumn = "uploaded_by_id"
)

// Columns holds all SQL columns for patientdocument fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldDocumentType,
	FieldTitle,
	FieldFileKey,
	FieldDescription,
	FieldUploadedByID,
	FieldIsSensitive,
	FieldExpiryDate,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	FileKeyValidator func(string) error
	// DefaultIsSensitive holds the default value on creation for the "is_sensitive" field.
	DefaultIsSensitive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// DocumentType defines the type for the "document_type" enum field.
type DocumentType string

// DocumentType values.
const (
	DocumentTypeIDCard        DocumentType = "id_card"
	DocumentTypeInsurance     DocumentType = "insurance"
	DocumentTypeMedicalReport DocumentType = "medical_report"
	DocumentTypePrescription  DocumentType = "prescription"
	DocumentTypeLabResult     DocumentType = "lab_result"
	DocumentTypeConsentForm   DocumentType = "consent_form"
	DocumentTypeOther         DocumentType = "other"
)

func (dt DocumentType) String() string {
	return string(dt)
}

// DocumentTypeValidator is a validator for the "document_type" field enum values. It is called by the builders before save.
func DocumentTypeValidator(dt DocumentType) error {
	switch dt {
	case DocumentTypeIDCard, DocumentTypeInsurance, DocumentTypeMedicalReport, DocumentTypePrescription, DocumentTypeLabResult, DocumentTypeConsentForm, DocumentTypeOther:
		return nil
	default:
		return fmt.Errorf("patientdocument: invalid enum value for document_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the PatientDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFileKey orders the results by the file_key field.
func ByFileKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileKey, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByUploadedByID orders the results by the uploaded_by_id field.
func ByUploadedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedByID, opts...).ToFunc()
}

// ByIsSensitive orders the results by the is_sensitive field.
func ByIsSensitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSensitive, opts...).ToFunc()
}

// ByExpiryDate orders the results by the expiry_date field.
func ByExpiryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryDate, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByUploadedByField orders the results by uploaded_by field.
func ByUploadedByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadedByStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newUploadedByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadedByInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UploadedByTable, UploadedByColumn),
	)
}
