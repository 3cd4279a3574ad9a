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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
)

// DoctorAvailability is the model entity for the DoctorAvailability schema.
type DoctorAvailability struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// 0=Monday .. 6=Sunday
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// Time of day, "15:04"
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// IsAvailable holds the value of the "is_available" field.
	IsAvailable bool `json:"is_available,omitempty"`
	// MaxPatients holds the value of the "max_patients" field.
	MaxPatients int `json:"max_patients,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorAvailabilityQuery when eager-loading is set.
	Edges        DoctorAvailabilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorAvailabilityEdges holds the relations/edges for other nodes in the graph.
type DoctorAvailabilityEdges struct {
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorAvailabilityEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorAvailability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctoravailability.FieldIsAvailable:
			values[i] = new(sql.NullBool)
		case doctoravailability.FieldDayOfWeek, doctoravailability.FieldMaxPatients:
			values[i] = new(sql.NullInt64)
		case doctoravailability.FieldStartTime, doctoravailability.FieldEndTime:
			values[i] = new(sql.NullString)
		case doctoravailability.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case doctoravailability.FieldID, doctoravailability.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorAvailability fields.
func (_m *DoctorAvailability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctoravailability.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctoravailability.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctoravailability.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctoravailability.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case doctoravailability.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case doctoravailability.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case doctoravailability.FieldIsAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_available", values[i])
			} else if value.Valid {
				_m.IsAvailable = value.Bool
			}
		case doctoravailability.FieldMaxPatients:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_patients", values[i])
			} else if value.Valid {
				_m.MaxPatients = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorAvailability.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorAvailability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctor queries the "doctor" edge of the DoctorAvailability entity.
func (_m *DoctorAvailability) QueryDoctor() *DoctorQuery {
	return NewDoctorAvailabilityClient(_m.config).QueryDoctor(_m)
}

// Update returns a builder for updating this DoctorAvailability.
// Note that you need to call DoctorAvailability.Unwrap() before calling this method if this DoctorAvailability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorAvailability) Update() *DoctorAvailabilityUpdateOne {
	return NewDoctorAvailabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorAvailability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorAvailability) Unwrap() *DoctorAvailability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorAvailability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorAvailability) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorAvailability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("is_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAvailable))
	builder.WriteString(", ")
	builder.WriteString("max_patients=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPatients))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorAvailabilities is a parsable slice of DoctorAvailability.
type DoctorAvailabilities []*DoctorAvailability
