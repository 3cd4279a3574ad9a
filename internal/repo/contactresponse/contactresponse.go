// Code generated by ent, DO NOT EDIT.

package contactresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contactresponse type in the database.
	Label = "contact_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldContactMessageID holds the string denoting the contact_message_id field in the database.
	FieldContactMessageID = "contact_message_id"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldRespondedByID holds the string denoting the responded_by_id field in the database.
	FieldRespondedByID = "responded_by_id"
	// FieldIsSent holds the string denoting the is_sent field in the database.
	FieldIsSent = "is_sent"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// EdgeContactMessage holds the string denoting the contact_message edge name in mutations.
	EdgeContactMessage = "contact_message"
	// Table holds the table name of the contactresponse in the database.
	Table = "contact_responses"
	// ContactMessageTable is the table that holds the contact_message relation/edge.
	ContactMessageTable = "contact_responses"
	// ContactMessageInverseTable is the table name for the ContactMessage entity.
	// It exists in this package in order to avoid circular dependency with the "contactmessage" package.
	ContactMessageInverseTable = "contact_messages"
	// ContactMessageColumn is the table column denoting the contact_message relation/edge.
	ContactMessageColumn = "contact_message_id"
)

// Columns holds all SQL columns for contactresponse fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldContactMessageID,
	FieldResponse,
	FieldRespondedByID,
	FieldIsSent,
	FieldSentAt,
}

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
	// DefaultIsSent holds the default value on creation for the "is_sent" field.
	DefaultIsSent bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ContactResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByContactMessageID orders the results by the contact_message_id field.
func ByContactMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactMessageID, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByRespondedByID orders the results by the responded_by_id field.
func ByRespondedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedByID, opts...).ToFunc()
}

// ByIsSent orders the results by the is_sent field.
func ByIsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSent, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByContactMessageField orders the results by contact_message field.
func ByContactMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newContactMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactMessageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContactMessageTable, ContactMessageColumn),
	)
}
