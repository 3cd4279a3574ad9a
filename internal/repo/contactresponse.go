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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
)

// ContactResponse is the model entity for the ContactResponse schema.
type ContactResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → contact_messages.id
	ContactMessageID uuid.UUID `json:"contact_message_id,omitempty"`
	// Response holds the value of the "response" field.
	Response string `json:"response,omitempty"`
	// FK → users.id
	RespondedByID *uuid.UUID `json:"responded_by_id,omitempty"`
	// IsSent holds the value of the "is_sent" field.
	IsSent bool `json:"is_sent,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContactResponseQuery when eager-loading is set.
	Edges        ContactResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContactResponseEdges holds the relations/edges for other nodes in the graph.
type ContactResponseEdges struct {
	// ContactMessage holds the value of the contact_message edge.
	ContactMessage *ContactMessage `json:"contact_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContactMessageOrErr returns the ContactMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContactResponseEdges) ContactMessageOrErr() (*ContactMessage, error) {
	if e.ContactMessage != nil {
		return e.ContactMessage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contactmessage.Label}
	}
	return nil, &NotLoadedError{edge: "contact_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContactResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contactresponse.FieldRespondedByID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contactresponse.FieldIsSent:
			values[i] = new(sql.NullBool)
		case contactresponse.FieldResponse:
			values[i] = new(sql.NullString)
		case contactresponse.FieldCreatedAt, contactresponse.FieldSentAt:
			values[i] = new(sql.NullTime)
		case contactresponse.FieldID, contactresponse.FieldContactMessageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContactResponse fields.
func (_m *ContactResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contactresponse.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contactresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contactresponse.FieldContactMessageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contact_message_id", values[i])
			} else if value != nil {
				_m.ContactMessageID = *value
			}
		case contactresponse.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case contactresponse.FieldRespondedByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field responded_by_id", values[i])
			} else if value.Valid {
				_m.RespondedByID = new(uuid.UUID)
				*_m.RespondedByID = *value.S.(*uuid.UUID)
			}
		case contactresponse.FieldIsSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_sent", values[i])
			} else if value.Valid {
				_m.IsSent = value.Bool
			}
		case contactresponse.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContactResponse.
// This includes values selected through modifiers, order, etc.
func (_m *ContactResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContactMessage queries the "contact_message" edge of the ContactResponse entity.
func (_m *ContactResponse) QueryContactMessage() *ContactMessageQuery {
	return NewContactResponseClient(_m.config).QueryContactMessage(_m)
}

// Update returns a builder for updating this ContactResponse.
// Note that you need to call ContactResponse.Unwrap() before calling this method if this ContactResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContactResponse) Update() *ContactResponseUpdateOne {
	return NewContactResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContactResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContactResponse) Unwrap() *ContactResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ContactResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContactResponse) String() string {
	var builder strings.Builder
	builder.WriteString("ContactResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("contact_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContactMessageID))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	if v := _m.RespondedByID; v != nil {
		builder.WriteString("responded_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSent))
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ContactResponses is a parsable slice of ContactResponse.
type ContactResponses []*ContactResponse
