// Code generated by ent, DO NOT EDIT.

package servicedoctorspecialty

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the servicedoctorspecialty type in the database.
	Label = "service_doctor_specialty"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldServiceID holds the string denoting the service_id field in the database.
	FieldServiceID = "service_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldProficiencyLevel holds the string denoting the proficiency_level field in the database.
	FieldProficiencyLevel = "proficiency_level"
	// FieldIsPreferredProvider holds the string denoting the is_preferred_provider field in the database.
	FieldIsPreferredProvider = "is_preferred_provider"
	// EdgeService holds the string denoting the service edge name in mutations.
	EdgeService = "service"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// Table holds the table name of the servicedoctorspecialty in the database.
	Table = "service_doctor_specialties"
	// ServiceTable is the table that holds the service relation/edge.
	ServiceTable = "service_doctor_specialties"
	// ServiceInverseTable is the table name for the Service entity.
	// It exists in this package in order to avoid circular dependency with the "service" package.
	ServiceInverseTable = "services"
	// ServiceColumn is the table column denoting the service relation/edge.
	ServiceColumn = "service_id"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "service_doctor_specialties"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
)

// Columns holds all SQL columns for servicedoctorspecialty fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldServiceID,
	FieldDoctorID,
	FieldProficiencyLevel,
	FieldIsPreferredProvider,
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
	// DefaultIsPreferredProvider holds the default value on creation for the "is_preferred_provider" field.
	DefaultIsPreferredProvider bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ProficiencyLevel defines the type for the "proficiency_level" enum field.
type ProficiencyLevel string

// ProficiencyLevelBasic is the default value of the ProficiencyLevel enum.
const DefaultProficiencyLevel = ProficiencyLevelBasic

// ProficiencyLevel values.
const (
	ProficiencyLevelBasic        ProficiencyLevel = "basic"
	ProficiencyLevelIntermediate ProficiencyLevel = "intermediate"
	ProficiencyLevelAdvanced     ProficiencyLevel = "advanced"
	ProficiencyLevelExpert       ProficiencyLevel = "expert"
)

func (pl ProficiencyLevel) String() string {
	return string(pl)
}

// ProficiencyLevelValidator is a validator for the "proficiency_level" field enum values. It is called by the builders before save.
func ProficiencyLevelValidator(pl ProficiencyLevel) error {
	switch pl {
	case ProficiencyLevelBasic, ProficiencyLevelIntermediate, ProficiencyLevelAdvanced, ProficiencyLevelExpert:
		return nil
	default:
		return fmt.Errorf("servicedoctorspecialty: invalid enum value for proficiency_level field: %q", pl)
	}
}

// OrderOption defines the ordering options for the ServiceDoctorSpecialty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByServiceID orders the results by the service_id field.
func ByServiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByProficiencyLevel orders the results by the proficiency_level field.
func ByProficiencyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProficiencyLevel, opts...).ToFunc()
}

// ByIsPreferredProvider orders the results by the is_preferred_provider field.
func ByIsPreferredProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPreferredProvider, opts...).ToFunc()
}

// ByServiceField orders the results by service field.
func ByServiceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServiceStep(), sql.OrderByField(field, opts...))
	}
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}
func newServiceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServiceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ServiceTable, ServiceColumn),
	)
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
	)
}
