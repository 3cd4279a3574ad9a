// Code generated by ent, DO NOT EDIT.

package appointmenttype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointmenttype type in the database.
	Label = "appointment_type"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDurationMin holds the string denoting the duration_min field in the database.
	FieldDurationMin = "duration_min"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldIsConsultation holds the string denoting the is_consultation field in the database.
	FieldIsConsultation = "is_consultation"
	// FieldRequiresPreparation holds the string denoting the requires_preparation field in the database.
	FieldRequiresPreparation = "requires_preparation"
	// FieldPreparationInstructions holds the string denoting the preparation_instructions field in the database.
	FieldPreparationInstructions = "preparation_instructions"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the appointmenttype in the database.
	Table = "appointment_types"
)

// Columns holds all SQL columns for appointmenttype fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldName,
	FieldSlug,
	FieldDescription,
	FieldDurationMin,
	FieldColor,
	FieldIsConsultation,
	FieldRequiresPreparation,
	FieldPreparationInstructions,
	FieldIsActive,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	DurationMinValidator func(int) error
	// DefaultColor holds the default value on creation for the "color" field.
	DefaultColor string
	// ColorValidator is a validator for the "color" field. It is called by the builders before save.
	ColorValidator func(string) error
	// DefaultIsConsultation holds the default value on creation for the "is_consultation" field.
	DefaultIsConsultation bool
	// DefaultRequiresPreparation holds the default value on creation for the "requires_preparation" field.
	DefaultRequiresPreparation bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AppointmentType queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDurationMin orders the results by the duration_min field.
func ByDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMin, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByIsConsultation orders the results by the is_consultation field.
func ByIsConsultation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsConsultation, opts...).ToFunc()
}

// ByRequiresPreparation orders the results by the requires_preparation field.
func ByRequiresPreparation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresPreparation, opts...).ToFunc()
}

// ByPreparationInstructions orders the results by the preparation_instructions field.
func ByPreparationInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreparationInstructions, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
