// Code generated by ent, DO NOT EDIT.

package clinicsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicName applies equality check predicate on the "clinic_name" field. It's identical to ClinicNameEQ.
func ClinicName(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldClinicName, v))
}

// Tagline applies equality check predicate on the "tagline" field. It's identical to TaglineEQ.
func Tagline(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTagline, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDescription, v))
}

// LogoKey applies equality check predicate on the "logo_key" field. It's identical to LogoKeyEQ.
func LogoKey(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldLogoKey, v))
}

// FaviconKey applies equality check predicate on the "favicon_key" field. It's identical to FaviconKeyEQ.
func FaviconKey(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldFaviconKey, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmail, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldWebsite, v))
}

// AddressLine1 applies equality check predicate on the "address_line_1" field. It's identical to AddressLine1EQ.
func AddressLine1(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAddressLine1, v))
}

// AddressLine2 applies equality check predicate on the "address_line_2" field. It's identical to AddressLine2EQ.
func AddressLine2(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAddressLine2, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldState, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldPostalCode, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCountry, v))
}

// FacebookURL applies equality check predicate on the "facebook_url" field. It's identical to FacebookURLEQ.
func FacebookURL(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldFacebookURL, v))
}

// TwitterURL applies equality check predicate on the "twitter_url" field. It's identical to TwitterURLEQ.
func TwitterURL(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTwitterURL, v))
}

// InstagramURL applies equality check predicate on the "instagram_url" field. It's identical to InstagramURLEQ.
func InstagramURL(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldInstagramURL, v))
}

// LinkedinURL applies equality check predicate on the "linkedin_url" field. It's identical to LinkedinURLEQ.
func LinkedinURL(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldLinkedinURL, v))
}

// YoutubeURL applies equality check predicate on the "youtube_url" field. It's identical to YoutubeURLEQ.
func YoutubeURL(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldYoutubeURL, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTimezone, v))
}

// AppointmentBufferMin applies equality check predicate on the "appointment_buffer_min" field. It's identical to AppointmentBufferMinEQ.
func AppointmentBufferMin(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAppointmentBufferMin, v))
}

// MaxAdvanceBookingDays applies equality check predicate on the "max_advance_booking_days" field. It's identical to MaxAdvanceBookingDaysEQ.
func MaxAdvanceBookingDays(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaxAdvanceBookingDays, v))
}

// MinAdvanceBookingHours applies equality check predicate on the "min_advance_booking_hours" field. It's identical to MinAdvanceBookingHoursEQ.
func MinAdvanceBookingHours(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMinAdvanceBookingHours, v))
}

// CancellationDeadlineHours applies equality check predicate on the "cancellation_deadline_hours" field. It's identical to CancellationDeadlineHoursEQ.
func CancellationDeadlineHours(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCancellationDeadlineHours, v))
}

// SendAppointmentConfirmations applies equality check predicate on the "send_appointment_confirmations" field. It's identical to SendAppointmentConfirmationsEQ.
func SendAppointmentConfirmations(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendAppointmentConfirmations, v))
}

// SendAppointmentReminders applies equality check predicate on the "send_appointment_reminders" field. It's identical to SendAppointmentRemindersEQ.
func SendAppointmentReminders(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendAppointmentReminders, v))
}

// ReminderHoursBefore applies equality check predicate on the "reminder_hours_before" field. It's identical to ReminderHoursBeforeEQ.
func ReminderHoursBefore(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldReminderHoursBefore, v))
}

// SendFollowUpReminders applies equality check predicate on the "send_follow_up_reminders" field. It's identical to SendFollowUpRemindersEQ.
func SendFollowUpReminders(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendFollowUpReminders, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCurrency, v))
}

// TaxRatePercent applies equality check predicate on the "tax_rate_percent" field. It's identical to TaxRatePercentEQ.
func TaxRatePercent(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTaxRatePercent, v))
}

// EmergencyPhone applies equality check predicate on the "emergency_phone" field. It's identical to EmergencyPhoneEQ.
func EmergencyPhone(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmergencyPhone, v))
}

// EmergencyEmail applies equality check predicate on the "emergency_email" field. It's identical to EmergencyEmailEQ.
func EmergencyEmail(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmergencyEmail, v))
}

// MaintenanceMode applies equality check predicate on the "maintenance_mode" field. It's identical to MaintenanceModeEQ.
func MaintenanceMode(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaintenanceMode, v))
}

// MaintenanceMessage applies equality check predicate on the "maintenance_message" field. It's identical to MaintenanceMessageEQ.
func MaintenanceMessage(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaintenanceMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicNameEQ applies the EQ predicate on the "clinic_name" field.
func ClinicNameEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldClinicName, v))
}

// ClinicNameNEQ applies the NEQ predicate on the "clinic_name" field.
func ClinicNameNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldClinicName, v))
}

// ClinicNameIn applies the In predicate on the "clinic_name" field.
func ClinicNameIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldClinicName, vs...))
}

// ClinicNameNotIn applies the NotIn predicate on the "clinic_name" field.
func ClinicNameNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldClinicName, vs...))
}

// ClinicNameGT applies the GT predicate on the "clinic_name" field.
func ClinicNameGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldClinicName, v))
}

// ClinicNameGTE applies the GTE predicate on the "clinic_name" field.
func ClinicNameGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldClinicName, v))
}

// ClinicNameLT applies the LT predicate on the "clinic_name" field.
func ClinicNameLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldClinicName, v))
}

// ClinicNameLTE applies the LTE predicate on the "clinic_name" field.
func ClinicNameLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldClinicName, v))
}

// ClinicNameContains applies the Contains predicate on the "clinic_name" field.
func ClinicNameContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldClinicName, v))
}

// ClinicNameHasPrefix applies the HasPrefix predicate on the "clinic_name" field.
func ClinicNameHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldClinicName, v))
}

// ClinicNameHasSuffix applies the HasSuffix predicate on the "clinic_name" field.
func ClinicNameHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldClinicName, v))
}

// ClinicNameEqualFold applies the EqualFold predicate on the "clinic_name" field.
func ClinicNameEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldClinicName, v))
}

// ClinicNameContainsFold applies the ContainsFold predicate on the "clinic_name" field.
func ClinicNameContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldClinicName, v))
}

// TaglineEQ applies the EQ predicate on the "tagline" field.
func TaglineEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTagline, v))
}

// TaglineNEQ applies the NEQ predicate on the "tagline" field.
func TaglineNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldTagline, v))
}

// TaglineIn applies the In predicate on the "tagline" field.
func TaglineIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldTagline, vs...))
}

// TaglineNotIn applies the NotIn predicate on the "tagline" field.
func TaglineNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldTagline, vs...))
}

// TaglineGT applies the GT predicate on the "tagline" field.
func TaglineGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldTagline, v))
}

// TaglineGTE applies the GTE predicate on the "tagline" field.
func TaglineGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldTagline, v))
}

// TaglineLT applies the LT predicate on the "tagline" field.
func TaglineLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldTagline, v))
}

// TaglineLTE applies the LTE predicate on the "tagline" field.
func TaglineLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldTagline, v))
}

// TaglineContains applies the Contains predicate on the "tagline" field.
func TaglineContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldTagline, v))
}

// TaglineHasPrefix applies the HasPrefix predicate on the "tagline" field.
func TaglineHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldTagline, v))
}

// TaglineHasSuffix applies the HasSuffix predicate on the "tagline" field.
func TaglineHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldTagline, v))
}

// TaglineIsNil applies the IsNil predicate on the "tagline" field.
func TaglineIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldTagline))
}

// TaglineNotNil applies the NotNil predicate on the "tagline" field.
func TaglineNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldTagline))
}

// TaglineEqualFold applies the EqualFold predicate on the "tagline" field.
func TaglineEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldTagline, v))
}

// TaglineContainsFold applies the ContainsFold predicate on the "tagline" field.
func TaglineContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldTagline, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldDescription, v))
}

// LogoKeyEQ applies the EQ predicate on the "logo_key" field.
func LogoKeyEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldLogoKey, v))
}

// LogoKeyNEQ applies the NEQ predicate on the "logo_key" field.
func LogoKeyNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldLogoKey, v))
}

// LogoKeyIn applies the In predicate on the "logo_key" field.
func LogoKeyIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldLogoKey, vs...))
}

// LogoKeyNotIn applies the NotIn predicate on the "logo_key" field.
func LogoKeyNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldLogoKey, vs...))
}

// LogoKeyGT applies the GT predicate on the "logo_key" field.
func LogoKeyGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldLogoKey, v))
}

// LogoKeyGTE applies the GTE predicate on the "logo_key" field.
func LogoKeyGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldLogoKey, v))
}

// LogoKeyLT applies the LT predicate on the "logo_key" field.
func LogoKeyLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldLogoKey, v))
}

// LogoKeyLTE applies the LTE predicate on the "logo_key" field.
func LogoKeyLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldLogoKey, v))
}

// LogoKeyContains applies the Contains predicate on the "logo_key" field.
func LogoKeyContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldLogoKey, v))
}

// LogoKeyHasPrefix applies the HasPrefix predicate on the "logo_key" field.
func LogoKeyHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldLogoKey, v))
}

// LogoKeyHasSuffix applies the HasSuffix predicate on the "logo_key" field.
func LogoKeyHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldLogoKey, v))
}

// LogoKeyIsNil applies the IsNil predicate on the "logo_key" field.
func LogoKeyIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldLogoKey))
}

// LogoKeyNotNil applies the NotNil predicate on the "logo_key" field.
func LogoKeyNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldLogoKey))
}

// LogoKeyEqualFold applies the EqualFold predicate on the "logo_key" field.
func LogoKeyEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldLogoKey, v))
}

// LogoKeyContainsFold applies the ContainsFold predicate on the "logo_key" field.
func LogoKeyContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldLogoKey, v))
}

// FaviconKeyEQ applies the EQ predicate on the "favicon_key" field.
func FaviconKeyEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldFaviconKey, v))
}

// FaviconKeyNEQ applies the NEQ predicate on the "favicon_key" field.
func FaviconKeyNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldFaviconKey, v))
}

// FaviconKeyIn applies the In predicate on the "favicon_key" field.
func FaviconKeyIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldFaviconKey, vs...))
}

// FaviconKeyNotIn applies the NotIn predicate on the "favicon_key" field.
func FaviconKeyNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldFaviconKey, vs...))
}

// FaviconKeyGT applies the GT predicate on the "favicon_key" field.
func FaviconKeyGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldFaviconKey, v))
}

// FaviconKeyGTE applies the GTE predicate on the "favicon_key" field.
func FaviconKeyGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldFaviconKey, v))
}

// FaviconKeyLT applies the LT predicate on the "favicon_key" field.
func FaviconKeyLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldFaviconKey, v))
}

// FaviconKeyLTE applies the LTE predicate on the "favicon_key" field.
func FaviconKeyLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldFaviconKey, v))
}

// FaviconKeyContains applies the Contains predicate on the "favicon_key" field.
func FaviconKeyContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldFaviconKey, v))
}

// FaviconKeyHasPrefix applies the HasPrefix predicate on the "favicon_key" field.
func FaviconKeyHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldFaviconKey, v))
}

// FaviconKeyHasSuffix applies the HasSuffix predicate on the "favicon_key" field.
func FaviconKeyHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldFaviconKey, v))
}

// FaviconKeyIsNil applies the IsNil predicate on the "favicon_key" field.
func FaviconKeyIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldFaviconKey))
}

// FaviconKeyNotNil applies the NotNil predicate on the "favicon_key" field.
func FaviconKeyNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldFaviconKey))
}

// FaviconKeyEqualFold applies the EqualFold predicate on the "favicon_key" field.
func FaviconKeyEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldFaviconKey, v))
}

// FaviconKeyContainsFold applies the ContainsFold predicate on the "favicon_key" field.
func FaviconKeyContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldFaviconKey, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldEmail, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldWebsite, v))
}

// AddressLine1EQ applies the EQ predicate on the "address_line_1" field.
func AddressLine1EQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAddressLine1, v))
}

// AddressLine1NEQ applies the NEQ predicate on the "address_line_1" field.
func AddressLine1NEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldAddressLine1, v))
}

// AddressLine1In applies the In predicate on the "address_line_1" field.
func AddressLine1In(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldAddressLine1, vs...))
}

// AddressLine1NotIn applies the NotIn predicate on the "address_line_1" field.
func AddressLine1NotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldAddressLine1, vs...))
}

// AddressLine1GT applies the GT predicate on the "address_line_1" field.
func AddressLine1GT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldAddressLine1, v))
}

// AddressLine1GTE applies the GTE predicate on the "address_line_1" field.
func AddressLine1GTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldAddressLine1, v))
}

// AddressLine1LT applies the LT predicate on the "address_line_1" field.
func AddressLine1LT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldAddressLine1, v))
}

// AddressLine1LTE applies the LTE predicate on the "address_line_1" field.
func AddressLine1LTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldAddressLine1, v))
}

// AddressLine1Contains applies the Contains predicate on the "address_line_1" field.
func AddressLine1Contains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldAddressLine1, v))
}

// AddressLine1HasPrefix applies the HasPrefix predicate on the "address_line_1" field.
func AddressLine1HasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldAddressLine1, v))
}

// AddressLine1HasSuffix applies the HasSuffix predicate on the "address_line_1" field.
func AddressLine1HasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldAddressLine1, v))
}

// AddressLine1EqualFold applies the EqualFold predicate on the "address_line_1" field.
func AddressLine1EqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldAddressLine1, v))
}

// AddressLine1ContainsFold applies the ContainsFold predicate on the "address_line_1" field.
func AddressLine1ContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldAddressLine1, v))
}

// AddressLine2EQ applies the EQ predicate on the "address_line_2" field.
func AddressLine2EQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAddressLine2, v))
}

// AddressLine2NEQ applies the NEQ predicate on the "address_line_2" field.
func AddressLine2NEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldAddressLine2, v))
}

// AddressLine2In applies the In predicate on the "address_line_2" field.
func AddressLine2In(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldAddressLine2, vs...))
}

// AddressLine2NotIn applies the NotIn predicate on the "address_line_2" field.
func AddressLine2NotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldAddressLine2, vs...))
}

// AddressLine2GT applies the GT predicate on the "address_line_2" field.
func AddressLine2GT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldAddressLine2, v))
}

// AddressLine2GTE applies the GTE predicate on the "address_line_2" field.
func AddressLine2GTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldAddressLine2, v))
}

// AddressLine2LT applies the LT predicate on the "address_line_2" field.
func AddressLine2LT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldAddressLine2, v))
}

// AddressLine2LTE applies the LTE predicate on the "address_line_2" field.
func AddressLine2LTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldAddressLine2, v))
}

// AddressLine2Contains applies the Contains predicate on the "address_line_2" field.
func AddressLine2Contains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldAddressLine2, v))
}

// AddressLine2HasPrefix applies the HasPrefix predicate on the "address_line_2" field.
func AddressLine2HasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldAddressLine2, v))
}

// AddressLine2HasSuffix applies the HasSuffix predicate on the "address_line_2" field.
func AddressLine2HasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldAddressLine2, v))
}

// AddressLine2IsNil applies the IsNil predicate on the "address_line_2" field.
func AddressLine2IsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldAddressLine2))
}

// AddressLine2NotNil applies the NotNil predicate on the "address_line_2" field.
func AddressLine2NotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldAddressLine2))
}

// AddressLine2EqualFold applies the EqualFold predicate on the "address_line_2" field.
func AddressLine2EqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldAddressLine2, v))
}

// AddressLine2ContainsFold applies the ContainsFold predicate on the "address_line_2" field.
func AddressLine2ContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldAddressLine2, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldState, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldPostalCode, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldCountry, v))
}

// FacebookURLEQ applies the EQ predicate on the "facebook_url" field.
func FacebookURLEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldFacebookURL, v))
}

// FacebookURLNEQ applies the NEQ predicate on the "facebook_url" field.
func FacebookURLNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldFacebookURL, v))
}

// FacebookURLIn applies the In predicate on the "facebook_url" field.
func FacebookURLIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldFacebookURL, vs...))
}

// FacebookURLNotIn applies the NotIn predicate on the "facebook_url" field.
func FacebookURLNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldFacebookURL, vs...))
}

// FacebookURLGT applies the GT predicate on the "facebook_url" field.
func FacebookURLGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldFacebookURL, v))
}

// FacebookURLGTE applies the GTE predicate on the "facebook_url" field.
func FacebookURLGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldFacebookURL, v))
}

// FacebookURLLT applies the LT predicate on the "facebook_url" field.
func FacebookURLLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldFacebookURL, v))
}

// FacebookURLLTE applies the LTE predicate on the "facebook_url" field.
func FacebookURLLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldFacebookURL, v))
}

// FacebookURLContains applies the Contains predicate on the "facebook_url" field.
func FacebookURLContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldFacebookURL, v))
}

// FacebookURLHasPrefix applies the HasPrefix predicate on the "facebook_url" field.
func FacebookURLHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldFacebookURL, v))
}

// FacebookURLHasSuffix applies the HasSuffix predicate on the "facebook_url" field.
func FacebookURLHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldFacebookURL, v))
}

// FacebookURLIsNil applies the IsNil predicate on the "facebook_url" field.
func FacebookURLIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldFacebookURL))
}

// FacebookURLNotNil applies the NotNil predicate on the "facebook_url" field.
func FacebookURLNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldFacebookURL))
}

// FacebookURLEqualFold applies the EqualFold predicate on the "facebook_url" field.
func FacebookURLEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldFacebookURL, v))
}

// FacebookURLContainsFold applies the ContainsFold predicate on the "facebook_url" field.
func FacebookURLContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldFacebookURL, v))
}

// TwitterURLEQ applies the EQ predicate on the "twitter_url" field.
func TwitterURLEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTwitterURL, v))
}

// TwitterURLNEQ applies the NEQ predicate on the "twitter_url" field.
func TwitterURLNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldTwitterURL, v))
}

// TwitterURLIn applies the In predicate on the "twitter_url" field.
func TwitterURLIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldTwitterURL, vs...))
}

// TwitterURLNotIn applies the NotIn predicate on the "twitter_url" field.
func TwitterURLNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldTwitterURL, vs...))
}

// TwitterURLGT applies the GT predicate on the "twitter_url" field.
func TwitterURLGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldTwitterURL, v))
}

// TwitterURLGTE applies the GTE predicate on the "twitter_url" field.
func TwitterURLGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldTwitterURL, v))
}

// TwitterURLLT applies the LT predicate on the "twitter_url" field.
func TwitterURLLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldTwitterURL, v))
}

// TwitterURLLTE applies the LTE predicate on the "twitter_url" field.
func TwitterURLLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldTwitterURL, v))
}

// TwitterURLContains applies the Contains predicate on the "twitter_url" field.
func TwitterURLContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldTwitterURL, v))
}

// TwitterURLHasPrefix applies the HasPrefix predicate on the "twitter_url" field.
func TwitterURLHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldTwitterURL, v))
}

// TwitterURLHasSuffix applies the HasSuffix predicate on the "twitter_url" field.
func TwitterURLHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldTwitterURL, v))
}

// TwitterURLIsNil applies the IsNil predicate on the "twitter_url" field.
func TwitterURLIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldTwitterURL))
}

// TwitterURLNotNil applies the NotNil predicate on the "twitter_url" field.
func TwitterURLNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldTwitterURL))
}

// TwitterURLEqualFold applies the EqualFold predicate on the "twitter_url" field.
func TwitterURLEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldTwitterURL, v))
}

// TwitterURLContainsFold applies the ContainsFold predicate on the "twitter_url" field.
func TwitterURLContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldTwitterURL, v))
}

// InstagramURLEQ applies the EQ predicate on the "instagram_url" field.
func InstagramURLEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldInstagramURL, v))
}

// InstagramURLNEQ applies the NEQ predicate on the "instagram_url" field.
func InstagramURLNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldInstagramURL, v))
}

// InstagramURLIn applies the In predicate on the "instagram_url" field.
func InstagramURLIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldInstagramURL, vs...))
}

// InstagramURLNotIn applies the NotIn predicate on the "instagram_url" field.
func InstagramURLNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldInstagramURL, vs...))
}

// InstagramURLGT applies the GT predicate on the "instagram_url" field.
func InstagramURLGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldInstagramURL, v))
}

// InstagramURLGTE applies the GTE predicate on the "instagram_url" field.
func InstagramURLGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldInstagramURL, v))
}

// InstagramURLLT applies the LT predicate on the "instagram_url" field.
func InstagramURLLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldInstagramURL, v))
}

// InstagramURLLTE applies the LTE predicate on the "instagram_url" field.
func InstagramURLLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldInstagramURL, v))
}

// InstagramURLContains applies the Contains predicate on the "instagram_url" field.
func InstagramURLContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldInstagramURL, v))
}

// InstagramURLHasPrefix applies the HasPrefix predicate on the "instagram_url" field.
func InstagramURLHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldInstagramURL, v))
}

// InstagramURLHasSuffix applies the HasSuffix predicate on the "instagram_url" field.
func InstagramURLHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldInstagramURL, v))
}

// InstagramURLIsNil applies the IsNil predicate on the "instagram_url" field.
func InstagramURLIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldInstagramURL))
}

// InstagramURLNotNil applies the NotNil predicate on the "instagram_url" field.
func InstagramURLNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldInstagramURL))
}

// InstagramURLEqualFold applies the EqualFold predicate on the "instagram_url" field.
func InstagramURLEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldInstagramURL, v))
}

// InstagramURLContainsFold applies the ContainsFold predicate on the "instagram_url" field.
func InstagramURLContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldInstagramURL, v))
}

// LinkedinURLEQ applies the EQ predicate on the "linkedin_url" field.
func LinkedinURLEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldLinkedinURL, v))
}

// LinkedinURLNEQ applies the NEQ predicate on the "linkedin_url" field.
func LinkedinURLNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldLinkedinURL, v))
}

// LinkedinURLIn applies the In predicate on the "linkedin_url" field.
func LinkedinURLIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldLinkedinURL, vs...))
}

// LinkedinURLNotIn applies the NotIn predicate on the "linkedin_url" field.
func LinkedinURLNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldLinkedinURL, vs...))
}

// LinkedinURLGT applies the GT predicate on the "linkedin_url" field.
func LinkedinURLGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldLinkedinURL, v))
}

// LinkedinURLGTE applies the GTE predicate on the "linkedin_url" field.
func LinkedinURLGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldLinkedinURL, v))
}

// LinkedinURLLT applies the LT predicate on the "linkedin_url" field.
func LinkedinURLLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldLinkedinURL, v))
}

// LinkedinURLLTE applies the LTE predicate on the "linkedin_url" field.
func LinkedinURLLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldLinkedinURL, v))
}

// LinkedinURLContains applies the Contains predicate on the "linkedin_url" field.
func LinkedinURLContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldLinkedinURL, v))
}

// LinkedinURLHasPrefix applies the HasPrefix predicate on the "linkedin_url" field.
func LinkedinURLHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldLinkedinURL, v))
}

// LinkedinURLHasSuffix applies the HasSuffix predicate on the "linkedin_url" field.
func LinkedinURLHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldLinkedinURL, v))
}

// LinkedinURLIsNil applies the IsNil predicate on the "linkedin_url" field.
func LinkedinURLIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldLinkedinURL))
}

// LinkedinURLNotNil applies the NotNil predicate on the "linkedin_url" field.
func LinkedinURLNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldLinkedinURL))
}

// LinkedinURLEqualFold applies the EqualFold predicate on the "linkedin_url" field.
func LinkedinURLEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldLinkedinURL, v))
}

// LinkedinURLContainsFold applies the ContainsFold predicate on the "linkedin_url" field.
func LinkedinURLContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldLinkedinURL, v))
}

// YoutubeURLEQ applies the EQ predicate on the "youtube_url" field.
func YoutubeURLEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldYoutubeURL, v))
}

// YoutubeURLNEQ applies the NEQ predicate on the "youtube_url" field.
func YoutubeURLNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldYoutubeURL, v))
}

// YoutubeURLIn applies the In predicate on the "youtube_url" field.
func YoutubeURLIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldYoutubeURL, vs...))
}

// YoutubeURLNotIn applies the NotIn predicate on the "youtube_url" field.
func YoutubeURLNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldYoutubeURL, vs...))
}

// YoutubeURLGT applies the GT predicate on the "youtube_url" field.
func YoutubeURLGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldYoutubeURL, v))
}

// YoutubeURLGTE applies the GTE predicate on the "youtube_url" field.
func YoutubeURLGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldYoutubeURL, v))
}

// YoutubeURLLT applies the LT predicate on the "youtube_url" field.
func YoutubeURLLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldYoutubeURL, v))
}

// YoutubeURLLTE applies the LTE predicate on the "youtube_url" field.
func YoutubeURLLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldYoutubeURL, v))
}

// YoutubeURLContains applies the Contains predicate on the "youtube_url" field.
func YoutubeURLContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldYoutubeURL, v))
}

// YoutubeURLHasPrefix applies the HasPrefix predicate on the "youtube_url" field.
func YoutubeURLHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldYoutubeURL, v))
}

// YoutubeURLHasSuffix applies the HasSuffix predicate on the "youtube_url" field.
func YoutubeURLHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldYoutubeURL, v))
}

// YoutubeURLIsNil applies the IsNil predicate on the "youtube_url" field.
func YoutubeURLIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldYoutubeURL))
}

// YoutubeURLNotNil applies the NotNil predicate on the "youtube_url" field.
func YoutubeURLNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldYoutubeURL))
}

// YoutubeURLEqualFold applies the EqualFold predicate on the "youtube_url" field.
func YoutubeURLEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldYoutubeURL, v))
}

// YoutubeURLContainsFold applies the ContainsFold predicate on the "youtube_url" field.
func YoutubeURLContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldYoutubeURL, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldTimezone, v))
}

// AppointmentBufferMinEQ applies the EQ predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAppointmentBufferMin, v))
}

// AppointmentBufferMinNEQ applies the NEQ predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldAppointmentBufferMin, v))
}

// AppointmentBufferMinIn applies the In predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldAppointmentBufferMin, vs...))
}

// AppointmentBufferMinNotIn applies the NotIn predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldAppointmentBufferMin, vs...))
}

// AppointmentBufferMinGT applies the GT predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldAppointmentBufferMin, v))
}

// AppointmentBufferMinGTE applies the GTE predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldAppointmentBufferMin, v))
}

// AppointmentBufferMinLT applies the LT predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldAppointmentBufferMin, v))
}

// AppointmentBufferMinLTE applies the LTE predicate on the "appointment_buffer_min" field.
func AppointmentBufferMinLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldAppointmentBufferMin, v))
}

// MaxAdvanceBookingDaysEQ applies the EQ predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaxAdvanceBookingDays, v))
}

// MaxAdvanceBookingDaysNEQ applies the NEQ predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldMaxAdvanceBookingDays, v))
}

// MaxAdvanceBookingDaysIn applies the In predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldMaxAdvanceBookingDays, vs...))
}

// MaxAdvanceBookingDaysNotIn applies the NotIn predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldMaxAdvanceBookingDays, vs...))
}

// MaxAdvanceBookingDaysGT applies the GT predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldMaxAdvanceBookingDays, v))
}

// MaxAdvanceBookingDaysGTE applies the GTE predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldMaxAdvanceBookingDays, v))
}

// MaxAdvanceBookingDaysLT applies the LT predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldMaxAdvanceBookingDays, v))
}

// MaxAdvanceBookingDaysLTE applies the LTE predicate on the "max_advance_booking_days" field.
func MaxAdvanceBookingDaysLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldMaxAdvanceBookingDays, v))
}

// MinAdvanceBookingHoursEQ applies the EQ predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMinAdvanceBookingHours, v))
}

// MinAdvanceBookingHoursNEQ applies the NEQ predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldMinAdvanceBookingHours, v))
}

// MinAdvanceBookingHoursIn applies the In predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldMinAdvanceBookingHours, vs...))
}

// MinAdvanceBookingHoursNotIn applies the NotIn predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldMinAdvanceBookingHours, vs...))
}

// MinAdvanceBookingHoursGT applies the GT predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldMinAdvanceBookingHours, v))
}

// MinAdvanceBookingHoursGTE applies the GTE predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldMinAdvanceBookingHours, v))
}

// MinAdvanceBookingHoursLT applies the LT predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldMinAdvanceBookingHours, v))
}

// MinAdvanceBookingHoursLTE applies the LTE predicate on the "min_advance_booking_hours" field.
func MinAdvanceBookingHoursLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldMinAdvanceBookingHours, v))
}

// CancellationDeadlineHoursEQ applies the EQ predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCancellationDeadlineHours, v))
}

// CancellationDeadlineHoursNEQ applies the NEQ predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCancellationDeadlineHours, v))
}

// CancellationDeadlineHoursIn applies the In predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCancellationDeadlineHours, vs...))
}

// CancellationDeadlineHoursNotIn applies the NotIn predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCancellationDeadlineHours, vs...))
}

// CancellationDeadlineHoursGT applies the GT predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCancellationDeadlineHours, v))
}

// CancellationDeadlineHoursGTE applies the GTE predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCancellationDeadlineHours, v))
}

// CancellationDeadlineHoursLT applies the LT predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCancellationDeadlineHours, v))
}

// CancellationDeadlineHoursLTE applies the LTE predicate on the "cancellation_deadline_hours" field.
func CancellationDeadlineHoursLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCancellationDeadlineHours, v))
}

// SendAppointmentConfirmationsEQ applies the EQ predicate on the "send_appointment_confirmations" field.
func SendAppointmentConfirmationsEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendAppointmentConfirmations, v))
}

// SendAppointmentConfirmationsNEQ applies the NEQ predicate on the "send_appointment_confirmations" field.
func SendAppointmentConfirmationsNEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldSendAppointmentConfirmations, v))
}

// SendAppointmentRemindersEQ applies the EQ predicate on the "send_appointment_reminders" field.
func SendAppointmentRemindersEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendAppointmentReminders, v))
}

// SendAppointmentRemindersNEQ applies the NEQ predicate on the "send_appointment_reminders" field.
func SendAppointmentRemindersNEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldSendAppointmentReminders, v))
}

// ReminderHoursBeforeEQ applies the EQ predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldReminderHoursBefore, v))
}

// ReminderHoursBeforeNEQ applies the NEQ predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldReminderHoursBefore, v))
}

// ReminderHoursBeforeIn applies the In predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldReminderHoursBefore, vs...))
}

// ReminderHoursBeforeNotIn applies the NotIn predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldReminderHoursBefore, vs...))
}

// ReminderHoursBeforeGT applies the GT predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldReminderHoursBefore, v))
}

// ReminderHoursBeforeGTE applies the GTE predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldReminderHoursBefore, v))
}

// ReminderHoursBeforeLT applies the LT predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldReminderHoursBefore, v))
}

// ReminderHoursBeforeLTE applies the LTE predicate on the "reminder_hours_before" field.
func ReminderHoursBeforeLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldReminderHoursBefore, v))
}

// SendFollowUpRemindersEQ applies the EQ predicate on the "send_follow_up_reminders" field.
func SendFollowUpRemindersEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldSendFollowUpReminders, v))
}

// SendFollowUpRemindersNEQ applies the NEQ predicate on the "send_follow_up_reminders" field.
func SendFollowUpRemindersNEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldSendFollowUpReminders, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldCurrency, v))
}

// TaxRatePercentEQ applies the EQ predicate on the "tax_rate_percent" field.
func TaxRatePercentEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldTaxRatePercent, v))
}

// TaxRatePercentNEQ applies the NEQ predicate on the "tax_rate_percent" field.
func TaxRatePercentNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldTaxRatePercent, v))
}

// TaxRatePercentIn applies the In predicate on the "tax_rate_percent" field.
func TaxRatePercentIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldTaxRatePercent, vs...))
}

// TaxRatePercentNotIn applies the NotIn predicate on the "tax_rate_percent" field.
func TaxRatePercentNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldTaxRatePercent, vs...))
}

// TaxRatePercentGT applies the GT predicate on the "tax_rate_percent" field.
func TaxRatePercentGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldTaxRatePercent, v))
}

// TaxRatePercentGTE applies the GTE predicate on the "tax_rate_percent" field.
func TaxRatePercentGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldTaxRatePercent, v))
}

// TaxRatePercentLT applies the LT predicate on the "tax_rate_percent" field.
func TaxRatePercentLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldTaxRatePercent, v))
}

// TaxRatePercentLTE applies the LTE predicate on the "tax_rate_percent" field.
func TaxRatePercentLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldTaxRatePercent, v))
}

// EmergencyPhoneEQ applies the EQ predicate on the "emergency_phone" field.
func EmergencyPhoneEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneNEQ applies the NEQ predicate on the "emergency_phone" field.
func EmergencyPhoneNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldEmergencyPhone, v))
}

// EmergencyPhoneIn applies the In predicate on the "emergency_phone" field.
func EmergencyPhoneIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneNotIn applies the NotIn predicate on the "emergency_phone" field.
func EmergencyPhoneNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldEmergencyPhone, vs...))
}

// EmergencyPhoneGT applies the GT predicate on the "emergency_phone" field.
func EmergencyPhoneGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldEmergencyPhone, v))
}

// EmergencyPhoneGTE applies the GTE predicate on the "emergency_phone" field.
func EmergencyPhoneGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneLT applies the LT predicate on the "emergency_phone" field.
func EmergencyPhoneLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldEmergencyPhone, v))
}

// EmergencyPhoneLTE applies the LTE predicate on the "emergency_phone" field.
func EmergencyPhoneLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldEmergencyPhone, v))
}

// EmergencyPhoneContains applies the Contains predicate on the "emergency_phone" field.
func EmergencyPhoneContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasPrefix applies the HasPrefix predicate on the "emergency_phone" field.
func EmergencyPhoneHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldEmergencyPhone, v))
}

// EmergencyPhoneHasSuffix applies the HasSuffix predicate on the "emergency_phone" field.
func EmergencyPhoneHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldEmergencyPhone, v))
}

// EmergencyPhoneIsNil applies the IsNil predicate on the "emergency_phone" field.
func EmergencyPhoneIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldEmergencyPhone))
}

// EmergencyPhoneNotNil applies the NotNil predicate on the "emergency_phone" field.
func EmergencyPhoneNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldEmergencyPhone))
}

// EmergencyPhoneEqualFold applies the EqualFold predicate on the "emergency_phone" field.
func EmergencyPhoneEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldEmergencyPhone, v))
}

// EmergencyPhoneContainsFold applies the ContainsFold predicate on the "emergency_phone" field.
func EmergencyPhoneContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldEmergencyPhone, v))
}

// EmergencyEmailEQ applies the EQ predicate on the "emergency_email" field.
func EmergencyEmailEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldEmergencyEmail, v))
}

// EmergencyEmailNEQ applies the NEQ predicate on the "emergency_email" field.
func EmergencyEmailNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldEmergencyEmail, v))
}

// EmergencyEmailIn applies the In predicate on the "emergency_email" field.
func EmergencyEmailIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldEmergencyEmail, vs...))
}

// EmergencyEmailNotIn applies the NotIn predicate on the "emergency_email" field.
func EmergencyEmailNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldEmergencyEmail, vs...))
}

// EmergencyEmailGT applies the GT predicate on the "emergency_email" field.
func EmergencyEmailGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldEmergencyEmail, v))
}

// EmergencyEmailGTE applies the GTE predicate on the "emergency_email" field.
func EmergencyEmailGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldEmergencyEmail, v))
}

// EmergencyEmailLT applies the LT predicate on the "emergency_email" field.
func EmergencyEmailLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldEmergencyEmail, v))
}

// EmergencyEmailLTE applies the LTE predicate on the "emergency_email" field.
func EmergencyEmailLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldEmergencyEmail, v))
}

// EmergencyEmailContains applies the Contains predicate on the "emergency_email" field.
func EmergencyEmailContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldEmergencyEmail, v))
}

// EmergencyEmailHasPrefix applies the HasPrefix predicate on the "emergency_email" field.
func EmergencyEmailHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldEmergencyEmail, v))
}

// EmergencyEmailHasSuffix applies the HasSuffix predicate on the "emergency_email" field.
func EmergencyEmailHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldEmergencyEmail, v))
}

// EmergencyEmailIsNil applies the IsNil predicate on the "emergency_email" field.
func EmergencyEmailIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldEmergencyEmail))
}

// EmergencyEmailNotNil applies the NotNil predicate on the "emergency_email" field.
func EmergencyEmailNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldEmergencyEmail))
}

// EmergencyEmailEqualFold applies the EqualFold predicate on the "emergency_email" field.
func EmergencyEmailEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldEmergencyEmail, v))
}

// EmergencyEmailContainsFold applies the ContainsFold predicate on the "emergency_email" field.
func EmergencyEmailContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldEmergencyEmail, v))
}

// MaintenanceModeEQ applies the EQ predicate on the "maintenance_mode" field.
func MaintenanceModeEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaintenanceMode, v))
}

// MaintenanceModeNEQ applies the NEQ predicate on the "maintenance_mode" field.
func MaintenanceModeNEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldMaintenanceMode, v))
}

// MaintenanceMessageEQ applies the EQ predicate on the "maintenance_message" field.
func MaintenanceMessageEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldMaintenanceMessage, v))
}

// MaintenanceMessageNEQ applies the NEQ predicate on the "maintenance_message" field.
func MaintenanceMessageNEQ(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldMaintenanceMessage, v))
}

// MaintenanceMessageIn applies the In predicate on the "maintenance_message" field.
func MaintenanceMessageIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldMaintenanceMessage, vs...))
}

// MaintenanceMessageNotIn applies the NotIn predicate on the "maintenance_message" field.
func MaintenanceMessageNotIn(vs ...string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldMaintenanceMessage, vs...))
}

// MaintenanceMessageGT applies the GT predicate on the "maintenance_message" field.
func MaintenanceMessageGT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldMaintenanceMessage, v))
}

// MaintenanceMessageGTE applies the GTE predicate on the "maintenance_message" field.
func MaintenanceMessageGTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldMaintenanceMessage, v))
}

// MaintenanceMessageLT applies the LT predicate on the "maintenance_message" field.
func MaintenanceMessageLT(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldMaintenanceMessage, v))
}

// MaintenanceMessageLTE applies the LTE predicate on the "maintenance_message" field.
func MaintenanceMessageLTE(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldMaintenanceMessage, v))
}

// MaintenanceMessageContains applies the Contains predicate on the "maintenance_message" field.
func MaintenanceMessageContains(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContains(FieldMaintenanceMessage, v))
}

// MaintenanceMessageHasPrefix applies the HasPrefix predicate on the "maintenance_message" field.
func MaintenanceMessageHasPrefix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasPrefix(FieldMaintenanceMessage, v))
}

// MaintenanceMessageHasSuffix applies the HasSuffix predicate on the "maintenance_message" field.
func MaintenanceMessageHasSuffix(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldHasSuffix(FieldMaintenanceMessage, v))
}

// MaintenanceMessageIsNil applies the IsNil predicate on the "maintenance_message" field.
func MaintenanceMessageIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldMaintenanceMessage))
}

// MaintenanceMessageNotNil applies the NotNil predicate on the "maintenance_message" field.
func MaintenanceMessageNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldMaintenanceMessage))
}

// MaintenanceMessageEqualFold applies the EqualFold predicate on the "maintenance_message" field.
func MaintenanceMessageEqualFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEqualFold(FieldMaintenanceMessage, v))
}

// MaintenanceMessageContainsFold applies the ContainsFold predicate on the "maintenance_message" field.
func MaintenanceMessageContainsFold(v string) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldContainsFold(FieldMaintenanceMessage, v))
}

// HasBusinessHours applies the HasEdge predicate on the "business_hours" edge.
func HasBusinessHours() predicate.ClinicSettings {
	return predicate.ClinicSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BusinessHoursTable, BusinessHoursColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessHoursWith applies the HasEdge predicate on the "business_hours" edge with a given conditions (other predicates).
func HasBusinessHoursWith(preds ...predicate.BusinessHours) predicate.ClinicSettings {
	return predicate.ClinicSettings(func(s *sql.Selector) {
		step := newBusinessHoursStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.NotPredicates(p))
}
