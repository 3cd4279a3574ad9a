// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// ContactMessage is the model entity for the ContactMessage schema.
type ContactMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Status holds the value of the "status" field.
	Status contactmessage.Status `json:"status,omitempty"`
	// FK → users.id (staff member handling the message)
	AssignedToID *uuid.UUID `json:"assigned_to_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContactMessageQuery when eager-loading is set.
	Edges        ContactMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContactMessageEdges holds the relations/edges for other nodes in the graph.
type ContactMessageEdges struct {
	// AssignedTo holds the value of the assigned_to edge.
	AssignedTo *User `json:"assigned_to,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*ContactResponse `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AssignedToOrErr returns the AssignedTo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContactMessageEdges) AssignedToOrErr() (*User, error) {
	if e.AssignedTo != nil {
		return e.AssignedTo, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_to"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e ContactMessageEdges) ResponsesOrErr() ([]*ContactResponse, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContactMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contactmessage.FieldAssignedToID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contactmessage.FieldName, contactmessage.FieldEmail, contactmessage.FieldPhone, contactmessage.FieldSubject, contactmessage.FieldMessage, contactmessage.FieldStatus:
			values[i] = new(sql.NullString)
		case contactmessage.FieldCreatedAt, contactmessage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contactmessage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContactMessage fields.
func (_m *ContactMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contactmessage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contactmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contactmessage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case contactmessage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case contactmessage.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case contactmessage.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case contactmessage.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case contactmessage.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case contactmessage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contactmessage.Status(value.String)
			}
		case contactmessage.FieldAssignedToID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to_id", values[i])
			} else if value.Valid {
				_m.AssignedToID = new(uuid.UUID)
				*_m.AssignedToID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContactMessage.
// This includes values selected through modifiers, order, etc.
func (_m *ContactMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignedTo queries the "assigned_to" edge of the ContactMessage entity.
func (_m *ContactMessage) QueryAssignedTo() *UserQuery {
	return NewContactMessageClient(_m.config).QueryAssignedTo(_m)
}

// QueryResponses queries the "responses" edge of the ContactMessage entity.
func (_m *ContactMessage) QueryResponses() *ContactResponseQuery {
	return NewContactMessageClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this ContactMessage.
// Note that you need to call ContactMessage.Unwrap() before calling this method if this ContactMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContactMessage) Update() *ContactMessageUpdateOne {
	return NewContactMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContactMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContactMessage) Unwrap() *ContactMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ContactMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContactMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ContactMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedToID; v != nil {
		builder.WriteString("assigned_to_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ContactMessages is a parsable slice of ContactMessage.
type ContactMessages []*ContactMessage
