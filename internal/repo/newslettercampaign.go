// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
)

// NewsletterCampaign is the model entity for the NewsletterCampaign schema.
type NewsletterCampaign struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → newsletters.id
	NewsletterID uuid.UUID `json:"newsletter_id,omitempty"`
	// SentCount holds the value of the "sent_count" field.
	SentCount int `json:"sent_count,omitempty"`
	// OpenCount holds the value of the "open_count" field.
	OpenCount int `json:"open_count,omitempty"`
	// ClickCount holds the value of the "click_count" field.
	ClickCount int `json:"click_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NewsletterCampaignQuery when eager-loading is set.
	Edges        NewsletterCampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NewsletterCampaignEdges holds the relations/edges for other nodes in the graph.
type NewsletterCampaignEdges struct {
	// Newsletter holds the value of the newsletter edge.
	Newsletter *Newsletter `json:"newsletter,omitempty"`
	// Subscribers holds the value of the subscribers edge.
	Subscribers []*NewsletterSubscriber `json:"subscribers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NewsletterOrErr returns the Newsletter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NewsletterCampaignEdges) NewsletterOrErr() (*Newsletter, error) {
	if e.Newsletter != nil {
		return e.Newsletter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: newsletter.Label}
	}
	return nil, &NotLoadedError{edge: "newsletter"}
}

// SubscribersOrErr returns the Subscribers value or an error if the edge
// was not loaded in eager-loading.
func (e NewsletterCampaignEdges) SubscribersOrErr() ([]*NewsletterSubscriber, error) {
	if e.loadedTypes[1] {
		return e.Subscribers, nil
	}
	return nil, &NotLoadedError{edge: "subscribers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NewsletterCampaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case newslettercampaign.FieldSentCount, newslettercampaign.FieldOpenCount, newslettercampaign.FieldClickCount:
			values[i] = new(sql.NullInt64)
		case newslettercampaign.FieldCreatedAt, newslettercampaign.FieldStartedAt, newslettercampaign.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case newslettercampaign.FieldID, newslettercampaign.FieldNewsletterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NewsletterCampaign fields.
func (_m *NewsletterCampaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case newslettercampaign.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case newslettercampaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case newslettercampaign.FieldNewsletterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field newsletter_id", values[i])
			} else if value != nil {
				_m.NewsletterID = *value
			}
		case newslettercampaign.FieldSentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_count", values[i])
			} else if value.Valid {
				_m.SentCount = int(value.Int64)
			}
		case newslettercampaign.FieldOpenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field open_count", values[i])
			} else if value.Valid {
				_m.OpenCount = int(value.Int64)
			}
		case newslettercampaign.FieldClickCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field click_count", values[i])
			} else if value.Valid {
				_m.ClickCount = int(value.Int64)
			}
		case newslettercampaign.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case newslettercampaign.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NewsletterCampaign.
// This includes values selected through modifiers, order, etc.
func (_m *NewsletterCampaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNewsletter queries the "newsletter" edge of the NewsletterCampaign entity.
func (_m *NewsletterCampaign) QueryNewsletter() *NewsletterQuery {
	return NewNewsletterCampaignClient(_m.config).QueryNewsletter(_m)
}

// QuerySubscribers queries the "subscribers" edge of the NewsletterCampaign entity.
func (_m *NewsletterCampaign) QuerySubscribers() *NewsletterSubscriberQuery {
	return NewNewsletterCampaignClient(_m.config).QuerySubscribers(_m)
}

// Update returns a builder for updating this NewsletterCampaign.
// Note that you need to call NewsletterCampaign.Unwrap() before calling this method if this NewsletterCampaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NewsletterCampaign) Update() *NewsletterCampaignUpdateOne {
	return NewNewsletterCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NewsletterCampaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NewsletterCampaign) Unwrap() *NewsletterCampaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NewsletterCampaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NewsletterCampaign) String() string {
	var builder strings.Builder
	builder.WriteString("NewsletterCampaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("newsletter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewsletterID))
	builder.WriteString(", ")
	builder.WriteString("sent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentCount))
	builder.WriteString(", ")
	builder.WriteString("open_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpenCount))
	builder.WriteString(", ")
	builder.WriteString("click_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClickCount))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NewsletterCampaigns is a parsable slice of NewsletterCampaign.
type NewsletterCampaigns []*NewsletterCampaign
