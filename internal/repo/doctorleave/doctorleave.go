// Code generated by ent, DO NOT EDIT.

package doctorleave

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctorleave type in the database.
	Label = "doctor_leave"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldLeaveType holds the string denoting the leave_type field in the database.
	FieldLeaveType = "leave_type"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldIsApproved holds the string denoting the is_approved field in the database.
	FieldIsApproved = "is_approved"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// Table holds the table name of the doctorleave in the database.
	Table = "doctor_leaves"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "doctor_leaves"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
)

// Columns holds all SQL columns for doctorleave fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDoctorID,
	FieldLeaveType,
	FieldStartDate,
	FieldEndDate,
	FieldReason,
	FieldIsApproved,
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
	// DefaultIsApproved holds the default value on creation for the "is_approved" field.
	DefaultIsApproved bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// LeaveType defines the type for the "leave_type" enum field.
type LeaveType string

// LeaveType values.
const (
	LeaveTypeVacation   LeaveType = "vacation"
	LeaveTypeSick       LeaveType = "sick"
	LeaveTypeConference LeaveType = "conference"
	LeaveTypeEmergency  LeaveType = "emergency"
	LeaveTypeOther      LeaveType = "other"
)

func (lt LeaveType) String() string {
	return string(lt)
}

// LeaveTypeValidator is a validator for the "leave_type" field enum values. It is called by the builders before save.
func LeaveTypeValidator(lt LeaveType) error {
	switch lt {
	case LeaveTypeVacation, LeaveTypeSick, LeaveTypeConference, LeaveTypeEmergency, LeaveTypeOther:
		return nil
	default:
		return fmt.Errorf("doctorleave: invalid enum value for leave_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the DoctorLeave queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByLeaveType orders the results by the leave_type field.
func ByLeaveType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaveType, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByIsApproved orders the results by the is_approved field.
func ByIsApproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsApproved, opts...).ToFunc()
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
	)
}
