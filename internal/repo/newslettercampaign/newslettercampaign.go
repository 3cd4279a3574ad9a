// Code generated by ent, DO NOT EDIT.

package newslettercampaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the newslettercampaign type in the database.
	Label = "newsletter_campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldNewsletterID holds the string denoting the newsletter_id field in the database.
	FieldNewsletterID = "newsletter_id"
	// FieldSentCount holds the string denoting the sent_count field in the database.
	FieldSentCount = "sent_count"
	// FieldOpenCount holds the string denoting the open_count field in the database.
	FieldOpenCount = "open_count"
	// FieldClickCount holds the string denoting the click_count field in the database.
	FieldClickCount = "click_count"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeNewsletter holds the string denoting the newsletter edge name in mutations.
	EdgeNewsletter = "newsletter"
	// EdgeSubscribers holds the string denoting the subscribers edge name in mutations.
	EdgeSubscribers = "subscribers"
	// Table holds the table name of the newslettercampaign in the database.
	Table = "newsletter_campaigns"
	// NewsletterTable is the table that holds the newsletter relation/edge.
	NewsletterTable = "newsletter_campaigns"
	// NewsletterInverseTable is the table name for the Newsletter entity.
	// It exists in this package in order to avoid circular dependency with the "newsletter" package.
	NewsletterInverseTable = "newsletters"
	// NewsletterColumn is the table column denoting the newsletter relation/edge.
	NewsletterColumn = "newsletter_id"
	// SubscribersTable is the table that holds the subscribers relation/edge. The primary key declared below.
	SubscribersTable = "newsletter_campaign_subscribers"
	// SubscribersInverseTable is the table name for the NewsletterSubscriber entity.
	// It exists in this package in order to avoid circular dependency with the "newslettersubscriber" package.
	SubscribersInverseTable = "newsletter_subscribers"
)

// Columns holds all SQL columns for newslettercampaign fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldNewsletterID,
	FieldSentCount,
	FieldOpenCount,
	FieldClickCount,
	FieldStartedAt,
	FieldCompletedAt,
}

var (
	// SubscribersPrimaryKey and SubscribersColumn2 are the table columns denoting the
	// primary key for the subscribers relation (M2M).
	SubscribersPrimaryKey = []string{"newsletter_campaign_id", "newsletter_subscriber_id"}
)

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
	// DefaultSentCount holds the default value on creation for the "sent_count" field.
	DefaultSentCount int
	// SentCountValidator is a validator for the "sent_count" field. It is called by the builders before save.
	SentCountValidator func(int) error
	// DefaultOpenCount holds the default value on creation for the "open_count" field.
	DefaultOpenCount int
	// OpenCountValidator is a validator for the "open_count" field. It is called by the builders before save.
	OpenCountValidator func(int) error
	// DefaultClickCount holds the default value on creation for the "click_count" field.
	DefaultClickCount int
	// ClickCountValidator is a validator for the "click_count" field. It is called by the builders before save.
	ClickCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NewsletterCampaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByNewsletterID orders the results by the newsletter_id field.
func ByNewsletterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewsletterID, opts...).ToFunc()
}

// BySentCount orders the results by the sent_count field.
func BySentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentCount, opts...).ToFunc()
}

// ByOpenCount orders the results by the open_count field.
func ByOpenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenCount, opts...).ToFunc()
}

// ByClickCount orders the results by the click_count field.
func ByClickCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickCount, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByNewsletterField orders the results by newsletter field.
func ByNewsletterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNewsletterStep(), sql.OrderByField(field, opts...))
	}
}

// BySubscribersCount orders the results by subscribers count.
func BySubscribersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscribersStep(), opts...)
	}
}

// BySubscribers orders the results by subscribers terms.
func BySubscribers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscribersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNewsletterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NewsletterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NewsletterTable, NewsletterColumn),
	)
}
func newSubscribersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscribersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, SubscribersTable, SubscribersPrimaryKey...),
	)
}
