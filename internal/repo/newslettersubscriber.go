// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
)

// NewsletterSubscriber is the model entity for the NewsletterSubscriber schema.
type NewsletterSubscriber struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName *string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName *string `json:"last_name,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Random token for one-click unsubscribe links
	UnsubscribeToken string `json:"unsubscribe_token,omitempty"`
	// Set once on first subscribe; re-subscribing only flips is_active
	SubscribedAt time.Time `json:"subscribed_at,omitempty"`
	// UnsubscribedAt holds the value of the "unsubscribed_at" field.
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NewsletterSubscriberQuery when eager-loading is set.
	Edges        NewsletterSubscriberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NewsletterSubscriberEdges holds the relations/edges for other nodes in the graph.
type NewsletterSubscriberEdges struct {
	// Campaigns holds the value of the campaigns edge.
	Campaigns []*NewsletterCampaign `json:"campaigns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignsOrErr returns the Campaigns value or an error if the edge
// was not loaded in eager-loading.
func (e NewsletterSubscriberEdges) CampaignsOrErr() ([]*NewsletterCampaign, error) {
	if e.loadedTypes[0] {
		return e.Campaigns, nil
	}
	return nil, &NotLoadedError{edge: "campaigns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NewsletterSubscriber) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case newslettersubscriber.FieldIsActive:
			values[i] = new(sql.NullBool)
		case newslettersubscriber.FieldEmail, newslettersubscriber.FieldFirstName, newslettersubscriber.FieldLastName, newslettersubscriber.FieldUnsubscribeToken:
			values[i] = new(sql.NullString)
		case newslettersubscriber.FieldSubscribedAt, newslettersubscriber.FieldUnsubscribedAt:
			values[i] = new(sql.NullTime)
		case newslettersubscriber.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NewsletterSubscriber fields.
func (_m *NewsletterSubscriber) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case newslettersubscriber.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case newslettersubscriber.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case newslettersubscriber.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = new(string)
				*_m.FirstName = value.String
			}
		case newslettersubscriber.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = new(string)
				*_m.LastName = value.String
			}
		case newslettersubscriber.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case newslettersubscriber.FieldUnsubscribeToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unsubscribe_token", values[i])
			} else if value.Valid {
				_m.UnsubscribeToken = value.String
			}
		case newslettersubscriber.FieldSubscribedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field subscribed_at", values[i])
			} else if value.Valid {
				_m.SubscribedAt = value.Time
			}
		case newslettersubscriber.FieldUnsubscribedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unsubscribed_at", values[i])
			} else if value.Valid {
				_m.UnsubscribedAt = new(time.Time)
				*_m.UnsubscribedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NewsletterSubscriber.
// This includes values selected through modifiers, order, etc.
func (_m *NewsletterSubscriber) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaigns queries the "campaigns" edge of the NewsletterSubscriber entity.
func (_m *NewsletterSubscriber) QueryCampaigns() *NewsletterCampaignQuery {
	return NewNewsletterSubscriberClient(_m.config).QueryCampaigns(_m)
}

// Update returns a builder for updating this NewsletterSubscriber.
// Note that you need to call NewsletterSubscriber.Unwrap() before calling this method if this NewsletterSubscriber
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NewsletterSubscriber) Update() *NewsletterSubscriberUpdateOne {
	return NewNewsletterSubscriberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NewsletterSubscriber entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NewsletterSubscriber) Unwrap() *NewsletterSubscriber {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NewsletterSubscriber is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NewsletterSubscriber) String() string {
	var builder strings.Builder
	builder.WriteString("NewsletterSubscriber(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.FirstName; v != nil {
		builder.WriteString("first_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastName; v != nil {
		builder.WriteString("last_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("unsubscribe_token=")
	builder.WriteString(_m.UnsubscribeToken)
	builder.WriteString(", ")
	builder.WriteString("subscribed_at=")
	builder.WriteString(_m.SubscribedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.UnsubscribedAt; v != nil {
		builder.WriteString("unsubscribed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NewsletterSubscribers is a parsable slice of NewsletterSubscriber.
type NewsletterSubscribers []*NewsletterSubscriber
