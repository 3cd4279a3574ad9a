// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
)

// ServiceDoctorSpecialty is the model entity for the ServiceDoctorSpecialty schema.
type ServiceDoctorSpecialty struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → services.id
	ServiceID uuid.UUID `json:"service_id,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// ProficiencyLevel holds the value of the "proficiency_level" field.
	ProficiencyLevel servicedoctorspecialty.ProficiencyLevel `json:"proficiency_level,omitempty"`
	// IsPreferredProvider holds the value of the "is_preferred_provider" field.
	IsPreferredProvider bool `json:"is_preferred_provider,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServiceDoctorSpecialtyQuery when eager-loading is set.
	Edges        ServiceDoctorSpecialtyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServiceDoctorSpecialtyEdges holds the relations/edges for other nodes in the graph.
type ServiceDoctorSpecialtyEdges struct {
	// Service holds the value of the service edge.
	Service *Service `json:"service,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ServiceOrErr returns the Service value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceDoctorSpecialtyEdges) ServiceOrErr() (*Service, error) {
	if e.Service != nil {
		return e.Service, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: service.Label}
	}
	return nil, &NotLoadedError{edge: "service"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceDoctorSpecialtyEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceDoctorSpecialty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servicedoctorspecialty.FieldIsPreferredProvider:
			values[i] = new(sql.NullBool)
		case servicedoctorspecialty.FieldProficiencyLevel:
			values[i] = new(sql.NullString)
		case servicedoctorspecialty.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case servicedoctorspecialty.FieldID, servicedoctorspecialty.FieldServiceID, servicedoctorspecialty.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceDoctorSpecialty fields.
func (_m *ServiceDoctorSpecialty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servicedoctorspecialty.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case servicedoctorspecialty.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case servicedoctorspecialty.FieldServiceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value != nil {
				_m.ServiceID = *value
			}
		case servicedoctorspecialty.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case servicedoctorspecialty.FieldProficiencyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proficiency_level", values[i])
			} else if value.Valid {
				_m.ProficiencyLevel = servicedoctorspecialty.ProficiencyLevel(value.String)
			}
		case servicedoctorspecialty.FieldIsPreferredProvider:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_preferred_provider", values[i])
			} else if value.Valid {
				_m.IsPreferredProvider = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceDoctorSpecialty.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceDoctorSpecialty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryService queries the "service" edge of the ServiceDoctorSpecialty entity.
func (_m *ServiceDoctorSpecialty) QueryService() *ServiceQuery {
	return NewServiceDoctorSpecialtyClient(_m.config).QueryService(_m)
}

// QueryDoctor queries the "doctor" edge of the ServiceDoctorSpecialty entity.
func (_m *ServiceDoctorSpecialty) QueryDoctor() *DoctorQuery {
	return NewServiceDoctorSpecialtyClient(_m.config).QueryDoctor(_m)
}

// Update returns a builder for updating this ServiceDoctorSpecialty.
// Note that you need to call ServiceDoctorSpecialty.Unwrap() before calling this method if this ServiceDoctorSpecialty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceDoctorSpecialty) Update() *ServiceDoctorSpecialtyUpdateOne {
	return NewServiceDoctorSpecialtyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceDoctorSpecialty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceDoctorSpecialty) Unwrap() *ServiceDoctorSpecialty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ServiceDoctorSpecialty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceDoctorSpecialty) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceDoctorSpecialty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("proficiency_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProficiencyLevel))
	builder.WriteString(", ")
	builder.WriteString("is_preferred_provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPreferredProvider))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceDoctorSpecialties is a parsable slice of ServiceDoctorSpecialty.
type ServiceDoctorSpecialties []*ServiceDoctorSpecialty
