// Code generated by ent, DO NOT EDIT.

package clinicsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clinicsettings type in the database.
	Label = "clinic_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicName holds the string denoting the clinic_name field in the database.
	FieldClinicName = "clinic_name"
	// FieldTagline holds the string denoting the tagline field in the database.
	FieldTagline = "tagline"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLogoKey holds the string denoting the logo_key field in the database.
	FieldLogoKey = "logo_key"
	// FieldFaviconKey holds the string denoting the favicon_key field in the database.
	FieldFaviconKey = "favicon_key"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldAddressLine1 holds the string denoting the address_line_1 field in the database.
	FieldAddressLine1 = "address_line_1"
	// FieldAddressLine2 holds the string denoting the address_line_2 field in the database.
	FieldAddressLine2 = "address_line_2"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldFacebookURL holds the string denoting the facebook_url field in the database.
	FieldFacebookURL = "facebook_url"
	// FieldTwitterURL holds the string denoting the twitter_url field in the database.
	FieldTwitterURL = "twitter_url"
	// FieldInstagramURL holds the string denoting the instagram_url field in the database.
	FieldInstagramURL = "instagram_url"
	// FieldLinkedinURL holds the string denoting the linkedin_url field in the database.
	FieldLinkedinURL = "linkedin_url"
	// FieldYoutubeURL holds the string denoting the youtube_url field in the database.
	FieldYoutubeURL = "youtube_url"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldAppointmentBufferMin holds the string denoting the appointment_buffer_min field in the database.
	FieldAppointmentBufferMin = "appointment_buffer_min"
	// FieldMaxAdvanceBookingDays holds the string denoting the max_advance_booking_days field in the database.
	FieldMaxAdvanceBookingDays = "max_advance_booking_days"
	// FieldMinAdvanceBookingHours holds the string denoting the min_advance_booking_hours field in the database.
	FieldMinAdvanceBookingHours = "min_advance_booking_hours"
	// FieldCancellationDeadlineHours holds the string denoting the cancellation_deadline_hours field in the database.
	FieldCancellationDeadlineHours = "cancellation_deadline_hours"
	// FieldSendAppointmentConfirmations holds the string denoting the send_appointment_confirmations field in the database.
	FieldSendAppointmentConfirmations = "send_appointment_confirmations"
	// FieldSendAppointmentReminders holds the string denoting the send_appointment_reminders field in the database.
	FieldSendAppointmentReminders = "send_appointment_reminders"
	// FieldReminderHoursBefore holds the string denoting the reminder_hours_before field in the database.
	FieldReminderHoursBefore = "reminder_hours_before"
	// FieldSendFollowUpReminders holds the string denoting the send_follow_up_reminders field in the database.
	FieldSendFollowUpReminders = "send_follow_up_reminders"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldTaxRatePercent holds the string denoting the tax_rate_percent field in the database.
	FieldTaxRatePercent = "tax_rate_percent"
	// FieldEmergencyPhone holds the string denoting the emergency_phone field in the database.
	FieldEmergencyPhone = "emergency_phone"
	// FieldEmergencyEmail holds the string denoting the emergency_email field in the database.
	FieldEmergencyEmail = "emergency_email"
	// FieldMaintenanceMode holds the string denoting the maintenance_mode field in the database.
	FieldMaintenanceMode = "maintenance_mode"
	// FieldMaintenanceMessage holds the string denoting the maintenance_message field in the database.
	FieldMaintenanceMessage = "maintenance_message"
	// EdgeBusinessHours holds the string denoting the business_hours edge name in mutations.
	EdgeBusinessHours = "business_hours"
	// Table holds the table name of the clinicsettings in the database.
	Table = "clinic_settings"
	// BusinessHoursTable is the table that holds the business_hours relation/edge.
	BusinessHoursTable = "business_hours"
	// BusinessHoursInverseTable is the table name for the BusinessHours entity.
	// It exists in this package in order to avoid circular dependency with the "businesshours" package.
	BusinessHoursInverseTable = "business_hours"
	// BusinessHoursColumn is the table column denoting the business_hours relation/edge.
	BusinessHoursColumn = "settings_id"
)

// Columns holds all SQL columns for clinicsettings fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicName,
	FieldTagline,
	FieldDescription,
	FieldLogoKey,
	FieldFaviconKey,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldAddressLine1,
	FieldAddressLine2,
	FieldCity,
	FieldState,
	FieldPostalCode,
	FieldCountry,
	FieldFacebookURL,
	FieldTwitterURL,
	FieldInstagramURL,
	FieldLinkedinURL,
	FieldYoutubeURL,
	FieldTimezone,
	FieldAppointmentBufferMin,
	FieldMaxAdvanceBookingDays,
	FieldMinAdvanceBookingHours,
	FieldCancellationDeadlineHours,
	FieldSendAppointmentConfirmations,
	FieldSendAppointmentReminders,
	FieldReminderHoursBefore,
	FieldSendFollowUpReminders,
	FieldCurrency,
	FieldTaxRatePercent,
	FieldEmergencyPhone,
	FieldEmergencyEmail,
	FieldMaintenanceMode,
	FieldMaintenanceMessage,
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
	// DefaultClinicName holds the default value on creation for the "clinic_name" field.
	DefaultClinicName string
	// ClinicNameValidator is a validator for the "clinic_name" field. It is called by the builders before save.
	ClinicNameValidator func(string) error
	// TaglineValidator is a validator for the "tagline" field. It is called by the builders before save.
	TaglineValidator func(string) error
	// LogoKeyValidator is a validator for the "logo_key" field. It is called by the builders before save.
	LogoKeyValidator func(string) error
	// FaviconKeyValidator is a validator for the "favicon_key" field. It is called by the builders before save.
	FaviconKeyValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// WebsiteValidator is a validator for the "website" field. It is called by the builders before save.
	WebsiteValidator func(string) error
	// AddressLine1Validator is a validator for the "address_line_1" field. It is called by the builders before save.
	AddressLine1Validator func(string) error
	// AddressLine2Validator is a validator for the "address_line_2" field. It is called by the builders before save.
	AddressLine2Validator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	PostalCodeValidator func(string) error
	// DefaultCountry holds the default value on creation for the "country" field.
	DefaultCountry string
	// CountryValidator is a validator for the "country" field. It is called by the builders before save.
	CountryValidator func(string) error
	// FacebookURLValidator is a validator for the "facebook_url" field. It is called by the builders before save.
	FacebookURLValidator func(string) error
	// TwitterURLValidator is a validator for the "twitter_url" field. It is called by the builders before save.
	TwitterURLValidator func(string) error
	// InstagramURLValidator is a validator for the "instagram_url" field. It is called by the builders before save.
	InstagramURLValidator func(string) error
	// LinkedinURLValidator is a validator for the "linkedin_url" field. It is called by the builders before save.
	LinkedinURLValidator func(string) error
	// YoutubeURLValidator is a validator for the "youtube_url" field. It is called by the builders before save.
	YoutubeURLValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultAppointmentBufferMin holds the default value on creation for the "appointment_buffer_min" field.
	DefaultAppointmentBufferMin int
	// AppointmentBufferMinValidator is a validator for the "appointment_buffer_min" field. It is called by the builders before save.
	AppointmentBufferMinValidator func(int) error
	// DefaultMaxAdvanceBookingDays holds the default value on creation for the "max_advance_booking_days" field.
	DefaultMaxAdvanceBookingDays int
	// MaxAdvanceBookingDaysValidator is a validator for the "max_advance_booking_days" field. It is called by the builders before save.
	MaxAdvanceBookingDaysValidator func(int) error
	// DefaultMinAdvanceBookingHours holds the default value on creation for the "min_advance_booking_hours" field.
	DefaultMinAdvanceBookingHours int
	// MinAdvanceBookingHoursValidator is a validator for the "min_advance_booking_hours" field. It is called by the builders before save.
	MinAdvanceBookingHoursValidator func(int) error
	// DefaultCancellationDeadlineHours holds the default value on creation for the "cancellation_deadline_hours" field.
	DefaultCancellationDeadlineHours int
	// CancellationDeadlineHoursValidator is a validator for the "cancellation_deadline_hours" field. It is called by the builders before save.
	CancellationDeadlineHoursValidator func(int) error
	// DefaultSendAppointmentConfirmations holds the default value on creation for the "send_appointment_confirmations" field.
	DefaultSendAppointmentConfirmations bool
	// DefaultSendAppointmentReminders holds the default value on creation for the "send_appointment_reminders" field.
	DefaultSendAppointmentReminders bool
	// DefaultReminderHoursBefore holds the default value on creation for the "reminder_hours_before" field.
	DefaultReminderHoursBefore int
	// ReminderHoursBeforeValidator is a validator for the "reminder_hours_before" field. It is called by the builders before save.
	ReminderHoursBeforeValidator func(int) error
	// DefaultSendFollowUpReminders holds the default value on creation for the "send_follow_up_reminders" field.
	DefaultSendFollowUpReminders bool
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultTaxRatePercent holds the default value on creation for the "tax_rate_percent" field.
	DefaultTaxRatePercent int
	// TaxRatePercentValidator is a validator for the "tax_rate_percent" field. It is called by the builders before save.
	TaxRatePercentValidator func(int) error
	// EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	EmergencyPhoneValidator func(string) error
	// EmergencyEmailValidator is a validator for the "emergency_email" field. It is called by the builders before save.
	EmergencyEmailValidator func(string) error
	// DefaultMaintenanceMode holds the default value on creation for the "maintenance_mode" field.
	DefaultMaintenanceMode bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClinicSettings queries.
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

// ByClinicName orders the results by the clinic_name field.
func ByClinicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicName, opts...).ToFunc()
}

// ByTagline orders the results by the tagline field.
func ByTagline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagline, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLogoKey orders the results by the logo_key field.
func ByLogoKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoKey, opts...).ToFunc()
}

// ByFaviconKey orders the results by the favicon_key field.
func ByFaviconKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaviconKey, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByAddressLine1 orders the results by the address_line_1 field.
func ByAddressLine1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddressLine1, opts...).ToFunc()
}

// ByAddressLine2 orders the results by the address_line_2 field.
func ByAddressLine2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddressLine2, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCode, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByFacebookURL orders the results by the facebook_url field.
func ByFacebookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebookURL, opts...).ToFunc()
}

// ByTwitterURL orders the results by the twitter_url field.
func ByTwitterURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTwitterURL, opts...).ToFunc()
}

// ByInstagramURL orders the results by the instagram_url field.
func ByInstagramURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagramURL, opts...).ToFunc()
}

// ByLinkedinURL orders the results by the linkedin_url field.
func ByLinkedinURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedinURL, opts...).ToFunc()
}

// ByYoutubeURL orders the results by the youtube_url field.
func ByYoutubeURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeURL, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByAppointmentBufferMin orders the results by the appointment_buffer_min field.
func ByAppointmentBufferMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentBufferMin, opts...).ToFunc()
}

// ByMaxAdvanceBookingDays orders the results by the max_advance_booking_days field.
func ByMaxAdvanceBookingDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAdvanceBookingDays, opts...).ToFunc()
}

// ByMinAdvanceBookingHours orders the results by the min_advance_booking_hours field.
func ByMinAdvanceBookingHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAdvanceBookingHours, opts...).ToFunc()
}

// ByCancellationDeadlineHours orders the results by the cancellation_deadline_hours field.
func ByCancellationDeadlineHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationDeadlineHours, opts...).ToFunc()
}

// BySendAppointmentConfirmations orders the results by the send_appointment_confirmations field.
func BySendAppointmentConfirmations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendAppointmentConfirmations, opts...).ToFunc()
}

// BySendAppointmentReminders orders the results by the send_appointment_reminders field.
func BySendAppointmentReminders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendAppointmentReminders, opts...).ToFunc()
}

// ByReminderHoursBefore orders the results by the reminder_hours_before field.
func ByReminderHoursBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderHoursBefore, opts...).ToFunc()
}

// BySendFollowUpReminders orders the results by the send_follow_up_reminders field.
func BySendFollowUpReminders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendFollowUpReminders, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByTaxRatePercent orders the results by the tax_rate_percent field.
func ByTaxRatePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxRatePercent, opts...).ToFunc()
}

// ByEmergencyPhone orders the results by the emergency_phone field.
func ByEmergencyPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyPhone, opts...).ToFunc()
}

// ByEmergencyEmail orders the results by the emergency_email field.
func ByEmergencyEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyEmail, opts...).ToFunc()
}

// ByMaintenanceMode orders the results by the maintenance_mode field.
func ByMaintenanceMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaintenanceMode, opts...).ToFunc()
}

// ByMaintenanceMessage orders the results by the maintenance_message field.
func ByMaintenanceMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaintenanceMessage, opts...).ToFunc()
}

// ByBusinessHoursCount orders the results by business_hours count.
func ByBusinessHoursCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBusinessHoursStep(), opts...)
	}
}

// ByBusinessHours orders the results by business_hours terms.
func ByBusinessHours(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessHoursStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBusinessHoursStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessHoursInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BusinessHoursTable, BusinessHoursColumn),
	)
}
