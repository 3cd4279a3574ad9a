// Code generated by ent, DO NOT EDIT.

package emailtemplate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the emailtemplate type in the database.
	Label = "email_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTemplateType holds the string denoting the template_type field in the database.
	FieldTemplateType = "template_type"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBodyHTML holds the string denoting the body_html field in the database.
	FieldBodyHTML = "body_html"
	// FieldBodyText holds the string denoting the body_text field in the database.
	FieldBodyText = "body_text"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldVariablesHelp holds the string denoting the variables_help field in the database.
	FieldVariablesHelp = "variables_help"
	// Table holds the table name of the emailtemplate in the database.
	Table = "email_templates"
)

// Columns holds all SQL columns for emailtemplate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldTemplateType,
	FieldSubject,
	FieldBodyHTML,
	FieldBodyText,
	FieldIsActive,
	FieldVariablesHelp,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// TemplateType defines the type for the "template_type" enum field.
type TemplateType string

// TemplateType values.
const (
	TemplateTypeAppointmentConfirmation TemplateType = "appointment_confirmation"
	TemplateTypeAppointmentReminder     TemplateType = "appointment_reminder"
	TemplateTypeAppointmentCancellation TemplateType = "appointment_cancellation"
	TemplateTypeAppointmentRescheduled  TemplateType = "appointment_rescheduled"
	TemplateTypeWelcomeNewPatient       TemplateType = "welcome_new_patient"
	TemplateTypeFollowUpReminder        TemplateType = "follow_up_reminder"
	TemplateTypeBirthdayWishes          TemplateType = "birthday_wishes"
	TemplateTypeNewsletter              TemplateType = "newsletter"
	TemplateTypeLabResultsReady         TemplateType = "lab_results_ready"
	TemplateTypePaymentReceipt          TemplateType = "payment_receipt"
	TemplateTypeCustom                  TemplateType = "custom"
)

func (tt TemplateType) String() string {
	return string(tt)
}

// TemplateTypeValidator is a validator for the "template_type" field enum values. It is called by the builders before save.
func TemplateTypeValidator(tt TemplateType) error {
	switch tt {
	case TemplateTypeAppointmentConfirmation, TemplateTypeAppointmentReminder, TemplateTypeAppointmentCancellation, TemplateTypeAppointmentRescheduled, TemplateTypeWelcomeNewPatient, TemplateTypeFollowUpReminder, TemplateTypeBirthdayWishes, TemplateTypeNewsletter, TemplateTypeLabResultsReady, TemplateTypePaymentReceipt, TemplateTypeCustom:
		return nil
	default:
		return fmt.Errorf("emailtemplate: invalid enum value for template_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the EmailTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTemplateType orders the results by the template_type field.
func ByTemplateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateType, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBodyHTML orders the results by the body_html field.
func ByBodyHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyHTML, opts...).ToFunc()
}

// ByBodyText orders the results by the body_text field.
func ByBodyText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyText, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByVariablesHelp orders the results by the variables_help field.
func ByVariablesHelp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariablesHelp, opts...).ToFunc()
}
