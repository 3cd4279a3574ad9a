// Code generated by ent, DO NOT EDIT.

package appointmentreschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointmentreschedule type in the database.
	Label = "appointment_reschedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldOldStartTime holds the string denoting the old_start_time field in the database.
	FieldOldStartTime = "old_start_time"
	// FieldNewStartTime holds the string denoting the new_start_time field in the database.
	FieldNewStartTime = "new_start_time"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldRescheduledByID holds the string denoting the rescheduled_by_id field in the database.
	FieldRescheduledByID = "rescheduled_by_id"
	// EdgeAppointment holds the string denoting the appointment edge name in mutations.
	EdgeAppointment = "appointment"
	// Table holds the table name of the appointmentreschedule in the database.
	Table = "appointment_reschedules"
	// AppointmentTable is the table that holds the appointment relation/edge.
	AppointmentTable = "appointment_reschedules"
	// AppointmentInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentInverseTable = "appointments"
	// AppointmentColumn is the table column denoting the appointment relation/edge.
	AppointmentColumn = "appointment_id"
)

// Columns holds all SQL columns for appointmentreschedule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAppointmentID,
	FieldOldStartTime,
	FieldNewStartTime,
	FieldReason,
	FieldRescheduledByID,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AppointmentReschedule queries.
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

// ByOldStartTime orders the results by the old_start_time field.
func ByOldStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStartTime, opts...).ToFunc()
}

// ByNewStartTime orders the results by the new_start_time field.
func ByNewStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStartTime, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByRescheduledByID orders the results by the rescheduled_by_id field.
func ByRescheduledByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRescheduledByID, opts...).ToFunc()
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
