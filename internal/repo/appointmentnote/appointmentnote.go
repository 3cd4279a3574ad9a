// Code generated by ent, DO NOT EDIT.

package appointmentnote

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointmentnote type in the database.
	Label = "appointment_note"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldNoteType holds the string denoting the note_type field in the database.
	FieldNoteType = "note_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldIsPrivate holds the string denoting the is_private field in the database.
	FieldIsPrivate = "is_private"
	// FieldCreatedByID holds the string denoting the created_by_id field in the database.
	FieldCreatedByID = "created_by_id"
	// EdgeAppointment holds the string denoting the appointment edge name in mutations.
	EdgeAppointment = "appointment"
	// Table holds the table name of the appointmentnote in the database.
	Table = "appointment_notes"
	// AppointmentTable is the table that holds the appointment relation/edge.
	AppointmentTable = "appointment_notes"
	// AppointmentInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentInverseTable = "appointments"
	// AppointmentColumn is the table column denoting the appointment relation/edge.
	AppointmentColumn = "appointment_id"
)

// Columns holds all SQL columns for appointmentnote fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAppointmentID,
	FieldNoteType,
	FieldContent,
	FieldIsPrivate,
	FieldCreatedByID,
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
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultIsPrivate holds the default value on creation for the "is_private" field.
	DefaultIsPrivate bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// NoteType defines the type for the "note_type" enum field.
type NoteType string

// NoteTypeGeneral is the default value of the NoteType enum.
const DefaultNoteType = NoteTypeGeneral

// NoteType values.
const (
	NoteTypeGeneral  NoteType = "general"
	NoteTypeMedical  NoteType = "medical"
	NoteTypeBilling  NoteType = "billing"
	NoteTypeFollowUp NoteType = "follow_up"
	NoteTypeReminder NoteType = "reminder"
)

func (nt NoteType) String() string {
	return string(nt)
}

// NoteTypeValidator is a validator for the "note_type" field enum values. It is called by the builders before save.
func NoteTypeValidator(nt NoteType) error {
	switch nt {
	case NoteTypeGeneral, NoteTypeMedical, NoteTypeBilling, NoteTypeFollowUp, NoteTypeReminder:
		return nil
	default:
		return fmt.Errorf("appointmentnote: invalid enum value for note_type field: %q", nt)
	}
}

// OrderOption defines the ordering options for the AppointmentNote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByNoteType orders the results by the note_type field.
func ByNoteType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoteType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByIsPrivate orders the results by the is_private field.
func ByIsPrivate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrivate, opts...).ToFunc()
}

// ByCreatedByID orders the results by the created_by_id field.
func ByCreatedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByID, opts...).ToFunc()
}

// ByAppointmentField orders the results by appointment field.
func ByAppointmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentStep(), sql.OrderByField(field, opts...))
	}
}
func newAppointmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AppointmentTable, AppointmentColumn),
	)
}
