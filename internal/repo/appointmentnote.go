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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
)

// AppointmentNote is the model entity for the AppointmentNote schema.
type AppointmentNote struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → appointments.id
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// NoteType holds the value of the "note_type" field.
	NoteType appointmentnote.NoteType `json:"note_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Private notes are only visible to staff
	IsPrivate bool `json:"is_private,omitempty"`
	// FK → users.id
	CreatedByID uuid.UUID `json:"created_by_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentNoteQuery when eager-loading is set.
	Edges        AppointmentNoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppointmentNoteEdges holds the relations/edges for other nodes in the graph.
type AppointmentNoteEdges struct {
	// Appointment holds the value of the appointment edge.
	Appointment *Appointment `json:"appointment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AppointmentOrErr returns the Appointment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentNoteEdges) AppointmentOrErr() (*Appointment, error) {
	if e.Appointment != nil {
		return e.Appointment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: appointment.Label}
	}
	return nil, &NotLoadedError{edge: "appointment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentnote.FieldIsPrivate:
			values[i] = new(sql.NullBool)
		case appointmentnote.FieldNoteType, appointmentnote.FieldContent:
			values[i] = new(sql.NullString)
		case appointmentnote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case appointmentnote.FieldID, appointmentnote.FieldAppointmentID, appointmentnote.FieldCreatedByID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentNote fields.
func (_m *AppointmentNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentnote.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentnote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentnote.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case appointmentnote.FieldNoteType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note_type", values[i])
			} else if value.Valid {
				_m.NoteType = appointmentnote.NoteType(value.String)
			}
		case appointmentnote.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case appointmentnote.FieldIsPrivate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_private", values[i])
			} else if value.Valid {
				_m.IsPrivate = value.Bool
			}
		case appointmentnote.FieldCreatedByID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_id", values[i])
			} else if value != nil {
				_m.CreatedByID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentNote.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAppointment queries the "appointment" edge of the AppointmentNote entity.
func (_m *AppointmentNote) QueryAppointment() *AppointmentQuery {
	return NewAppointmentNoteClient(_m.config).QueryAppointment(_m)
}

// Update returns a builder for updating this AppointmentNote.
// Note that you need to call AppointmentNote.Unwrap() before calling this method if this AppointmentNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentNote) Update() *AppointmentNoteUpdateOne {
	return NewAppointmentNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentNote) Unwrap() *AppointmentNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentNote) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("note_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoteType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("is_private=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrivate))
	builder.WriteString(", ")
	builder.WriteString("created_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedByID))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentNotes is a parsable slice of AppointmentNote.
type AppointmentNotes []*AppointmentNote
