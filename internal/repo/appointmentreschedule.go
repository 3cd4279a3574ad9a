// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
)

// AppointmentReschedule is the model entity for the AppointmentReschedule schema.
type AppointmentReschedule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → appointments.id (the original appointment)
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// OldStartTime holds the value of the "old_start_time" field.
	OldStartTime time.Time `json:"old_start_time,omitempty"`
	// NewStartTime holds the value of the "new_start_time" field.
	NewStartTime time.Time `json:"new_start_time,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// FK → users.id
	RescheduledByID uuid.UUID `json:"rescheduled_by_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentRescheduleQuery when eager-loading is set.
	Edges        AppointmentRescheduleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppointmentRescheduleEdges holds the relations/edges for other nodes in the graph.
type AppointmentRescheduleEdges struct {
	// Appointment holds the value of the appointment edge.
	Appointment *Appointment `json:"appointment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AppointmentOrErr returns the Appointment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentRescheduleEdges) AppointmentOrErr() (*Appointment, error) {
	if e.Appointment != nil {
		return e.Appointment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: appointment.Label}
	}
	return nil, &NotLoadedError{edge: "appointment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentReschedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentreschedule.FieldReason:
			values[i] = new(sql.NullString)
		case appointmentreschedule.FieldCreatedAt, appointmentreschedule.FieldOldStartTime, appointmentreschedule.FieldNewStartTime:
			values[i] = new(sql.NullTime)
		case appointmentreschedule.FieldID, appointmentreschedule.FieldAppointmentID, appointmentreschedule.FieldRescheduledByID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentReschedule fields.
func (_m *AppointmentReschedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentreschedule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentreschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentreschedule.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case appointmentreschedule.FieldOldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field old_start_time", values[i])
			} else if value.Valid {
				_m.OldStartTime = value.Time
			}
		case appointmentreschedule.FieldNewStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field new_start_time", values[i])
			} else if value.Valid {
				_m.NewStartTime = value.Time
			}
		case appointmentreschedule.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case appointmentreschedule.FieldRescheduledByID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field rescheduled_by_id", values[i])
			} else if value != nil {
				_m.RescheduledByID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentReschedule.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentReschedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAppointment queries the "appointment" edge of the AppointmentReschedule entity.
func (_m *AppointmentReschedule) QueryAppointment() *AppointmentQuery {
	return NewAppointmentRescheduleClient(_m.config).QueryAppointment(_m)
}

// Update returns a builder for updating this AppointmentReschedule.
// Note that you need to call AppointmentReschedule.Unwrap() before calling this method if this AppointmentReschedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentReschedule) Update() *AppointmentRescheduleUpdateOne {
	return NewAppointmentRescheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentReschedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentReschedule) Unwrap() *AppointmentReschedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentReschedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentReschedule) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentReschedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("old_start_time=")
	builder.WriteString(_m.OldStartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("new_start_time=")
	builder.WriteString(_m.NewStartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rescheduled_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RescheduledByID))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentReschedules is a parsable slice of AppointmentReschedule.
type AppointmentReschedules []*AppointmentReschedule
