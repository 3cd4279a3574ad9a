// Code generated by ent, DO NOT EDIT.

package newslettersubscriber

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the newslettersubscriber type in the database.
	Label = "newsletter_subscriber"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldUnsubscribeToken holds the string denoting the unsubscribe_token field in the database.
	FieldUnsubscribeToken = "unsubscribe_token"
	// FieldSubscribedAt holds the string denoting the subscribed_at field in the database.
	FieldSubscribedAt = "subscribed_at"
	// FieldUnsubscribedAt holds the string denoting the unsubscribed_at field in the database.
	FieldUnsubscribedAt = "unsubscribed_at"
	// EdgeCampaigns holds the string denoting the campaigns edge name in mutations.
	EdgeCampaigns = "campaigns"
	// Table holds the table name of the newslettersubscriber in the database.
	Table = "newsletter_subscribers"
	// CampaignsTable is the table that holds the campaigns relation/edge. The primary key declared below.
	CampaignsTable = "newsletter_campaign_subscribers"
	// CampaignsInverseTable is the table name for the NewsletterCampaign entity.
	// It exists in this package in order to avoid circular dependency with the "newslettercampaign" package.
	CampaignsInverseTable = "newsletter_campaigns"
)

// Columns holds all SQL columns for newslettersubscriber fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldFirstName,
	FieldLastName,
	FieldIsActive,
	FieldUnsubscribeToken,
	FieldSubscribedAt,
	FieldUnsubscribedAt,
}

var (
	// CampaignsPrimaryKey and CampaignsColumn2 are the table columns denoting the
	// primary key for the campaigns relation (M2M).
	CampaignsPrimaryKey = []string{"newsletter_campaign_id", "newsletter_subscriber_id"}
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// UnsubscribeTokenValidator is a validator for the "unsubscribe_token" field. It is called by the builders before save.
	UnsubscribeTokenValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NewsletterSubscriber queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUnsubscribeToken orders the results by the unsubscribe_token field.
func ByUnsubscribeToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnsubscribeToken, opts...).ToFunc()
}

// BySubscribedAt orders the results by the subscribed_at field.
func BySubscribedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscribedAt, opts...).ToFunc()
}

// ByUnsubscribedAt orders the results by the unsubscribed_at field.
func ByUnsubscribedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnsubscribedAt, opts...).ToFunc()
}

// ByCampaignsCount orders the results by campaigns count.
func ByCampaignsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCampaignsStep(), opts...)
	}
}

// ByCampaigns orders the results by campaigns terms.
func ByCampaigns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCampaignsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, CampaignsTable, CampaignsPrimaryKey...),
	)
}
