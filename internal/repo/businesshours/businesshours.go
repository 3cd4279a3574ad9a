// Code generated by ent, DO NOT EDIT.

package businesshours

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the businesshours type in the database.
	Label = "business_hours"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSettingsID holds the string denoting the settings_id field in the database.
	FieldSettingsID = "settings_id"
	// FieldDayOfWeek holds the string denoting the day_of_week field in the database.
	FieldDayOfWeek = "day_of_week"
	// FieldIsOpen holds the string denoting the is_open field in the database.
	FieldIsOpen = "is_open"
	// FieldOpeningTime holds the string denoting the opening_time field in the database.
	FieldOpeningTime = "opening_time"
	// FieldClosingTime holds the string denoting the closing_time field in the database.
	FieldClosingTime = "closing_time"
	// FieldLunchBreak holds the string denoting the lunch_break field in the database.
	FieldLunchBreak = "lunch_break"
	// FieldLunchStart holds the string denoting the lunch_start field in the database.
	FieldLunchStart = "lunch_start"
	// FieldLunchEnd holds the string denoting the lunch_end field in the database.
	FieldLunchEnd = "lunch_end"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeSettings holds the string denoting the settings edge name in mutations.
	EdgeSettings = "settings"
	// Table holds the table name of the businesshours in the database.
	Table = "business_hours"
	// SettingsTable is the table that holds the settings relation/edge.
	SettingsTable = "business_hours"
	// SettingsInverseTable is the table name for the ClinicSettings entity.
	// It exists in this package in order to avoid circular dependency with the "clinicsettings" package.
	SettingsInverseTable = "clinic_settings"
	// SettingsColumn is the table column denoting the settings relation/edge.
	SettingsColumn = "settings_id"
)

// Columns holds all SQL columns for businesshours fields.
var Columns = []string{
	FieldID,
	FieldSettingsID,
	FieldDayOfWeek,
	FieldIsOpen,
	FieldOpeningTime,
	FieldClosingTime,
	FieldLunchBreak,
	FieldLunchStart,
	FieldLunchEnd,
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
	// DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	DayOfWeekValidator func(int8) error
	// DefaultIsOpen holds the default value on creation for the "is_open" field.
	DefaultIsOpen bool
	// OpeningTimeValidator is a validator for the "opening_time" field. It is called by the builders before save.
	OpeningTimeValidator func(string) error
	// ClosingTimeValidator is a validator for the "closing_time" field. It is called by the builders before save.
	ClosingTimeValidator func(string) error
	// DefaultLunchBreak holds the default value on creation for the "lunch_break" field.
	DefaultLunchBreak bool
	// LunchStartValidator is a validator for the "lunch_start" field. It is called by the builders before save.
	LunchStartValidator func(string) error
	// LunchEndValidator is a validator for the "lunch_end" field. It is called by the builders before save.
	LunchEndValidator func(string) error
	// NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	NotesValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BusinessHours queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySettingsID orders the results by the settings_id field.
func BySettingsID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSettingsID, opts...).ToFunc()
}

// ByDayOfWeek orders the results by the day_of_week field.
func ByDayOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayOfWeek, opts...).ToFunc()
}

// ByIsOpen orders the results by the is_open field.
func ByIsOpen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOpen, opts...).ToFunc()
}

// ByOpeningTime orders the results by the opening_time field.
func ByOpeningTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpeningTime, opts...).ToFunc()
}

// ByClosingTime orders the results by the closing_time field.
func ByClosingTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosingTime, opts...).ToFunc()
}

// ByLunchBreak orders the results by the lunch_break field.
func ByLunchBreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLunchBreak, opts...).ToFunc()
}

// ByLunchStart orders the results by the lunch_start field.
func ByLunchStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLunchStart, opts...).ToFunc()
}

// ByLunchEnd orders the results by the lunch_end field.
func ByLunchEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLunchEnd, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// BySettingsField orders the results by settings field.
func BySettingsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSettingsStep(), sql.OrderByField(field, opts...))
	}
}
func newSettingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SettingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SettingsTable, SettingsColumn),
	)
}
