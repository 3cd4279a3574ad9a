// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
)

// ClinicSettingsCreate is the builder for creating a ClinicSettings entity.
type ClinicSettingsCreate struct {
	config
	mutation *ClinicSettingsMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicSettingsCreate) SetCreatedAt(v time.Time) *ClinicSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCreatedAt(v *time.Time) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicSettingsCreate) SetUpdatedAt(v time.Time) *ClinicSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableUpdatedAt(v *time.Time) *ClinicSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicName sets the "clinic_name" field.
func (_c *ClinicSettingsCreate) SetClinicName(v string) *ClinicSettingsCreate {
	_c.mutation.SetClinicName(v)
	return _c
}

// SetNillableClinicName sets the "clinic_name" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableClinicName(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetClinicName(*v)
	}
	return _c
}

// SetTagline sets the "tagline" field.
func (_c *ClinicSettingsCreate) SetTagline(v string) *ClinicSettingsCreate {
	_c.mutation.SetTagline(v)
	return _c
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableTagline(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetTagline(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicSettingsCreate) SetDescription(v string) *ClinicSettingsCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableDescription(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLogoKey sets the "logo_key" field.
func (_c *ClinicSettingsCreate) SetLogoKey(v string) *ClinicSettingsCreate {
	_c.mutation.SetLogoKey(v)
	return _c
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableLogoKey(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetLogoKey(*v)
	}
	return _c
}

// SetFaviconKey sets the "favicon_key" field.
func (_c *ClinicSettingsCreate) SetFaviconKey(v string) *ClinicSettingsCreate {
	_c.mutation.SetFaviconKey(v)
	return _c
}

// SetNillableFaviconKey sets the "favicon_key" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableFaviconKey(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetFaviconKey(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClinicSettingsCreate) SetPhone(v string) *ClinicSettingsCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClinicSettingsCreate) SetEmail(v string) *ClinicSettingsCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ClinicSettingsCreate) SetWebsite(v string) *ClinicSettingsCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableWebsite(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetAddressLine1 sets the "address_line_1" field.
func (_c *ClinicSettingsCreate) SetAddressLine1(v string) *ClinicSettingsCreate {
	_c.mutation.SetAddressLine1(v)
	return _c
}

// SetAddressLine2 sets the "address_line_2" field.
func (_c *ClinicSettingsCreate) SetAddressLine2(v string) *ClinicSettingsCreate {
	_c.mutation.SetAddressLine2(v)
	return _c
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableAddressLine2(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetAddressLine2(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ClinicSettingsCreate) SetCity(v string) *ClinicSettingsCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ClinicSettingsCreate) SetState(v string) *ClinicSettingsCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableState(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *ClinicSettingsCreate) SetPostalCode(v string) *ClinicSettingsCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillablePostalCode(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ClinicSettingsCreate) SetCountry(v string) *ClinicSettingsCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCountry(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetFacebookURL sets the "facebook_url" field.
func (_c *ClinicSettingsCreate) SetFacebookURL(v string) *ClinicSettingsCreate {
	_c.mutation.SetFacebookURL(v)
	return _c
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableFacebookURL(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetFacebookURL(*v)
	}
	return _c
}

// SetTwitterURL sets the "twitter_url" field.
func (_c *ClinicSettingsCreate) SetTwitterURL(v string) *ClinicSettingsCreate {
	_c.mutation.SetTwitterURL(v)
	return _c
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableTwitterURL(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetTwitterURL(*v)
	}
	return _c
}

// SetInstagramURL sets the "instagram_url" field.
func (_c *ClinicSettingsCreate) SetInstagramURL(v string) *ClinicSettingsCreate {
	_c.mutation.SetInstagramURL(v)
	return _c
}

// SetNillableInstagramURL sets the "instagram_url" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableInstagramURL(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetInstagramURL(*v)
	}
	return _c
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_c *ClinicSettingsCreate) SetLinkedinURL(v string) *ClinicSettingsCreate {
	_c.mutation.SetLinkedinURL(v)
	return _c
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableLinkedinURL(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetLinkedinURL(*v)
	}
	return _c
}

// SetYoutubeURL sets the "youtube_url" field.
func (_c *ClinicSettingsCreate) SetYoutubeURL(v string) *ClinicSettingsCreate {
	_c.mutation.SetYoutubeURL(v)
	return _c
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableYoutubeURL(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetYoutubeURL(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ClinicSettingsCreate) SetTimezone(v string) *ClinicSettingsCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableTimezone(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetAppointmentBufferMin sets the "appointment_buffer_min" field.
func (_c *ClinicSettingsCreate) SetAppointmentBufferMin(v int) *ClinicSettingsCreate {
	_c.mutation.SetAppointmentBufferMin(v)
	return _c
}

// SetNillableAppointmentBufferMin sets the "appointment_buffer_min" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableAppointmentBufferMin(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetAppointmentBufferMin(*v)
	}
	return _c
}

// SetMaxAdvanceBookingDays sets the "max_advance_booking_days" field.
func (_c *ClinicSettingsCreate) SetMaxAdvanceBookingDays(v int) *ClinicSettingsCreate {
	_c.mutation.SetMaxAdvanceBookingDays(v)
	return _c
}

// SetNillableMaxAdvanceBookingDays sets the "max_advance_booking_days" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableMaxAdvanceBookingDays(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetMaxAdvanceBookingDays(*v)
	}
	return _c
}

// SetMinAdvanceBookingHours sets the "min_advance_booking_hours" field.
func (_c *ClinicSettingsCreate) SetMinAdvanceBookingHours(v int) *ClinicSettingsCreate {
	_c.mutation.SetMinAdvanceBookingHours(v)
	return _c
}

// SetNillableMinAdvanceBookingHours sets the "min_advance_booking_hours" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableMinAdvanceBookingHours(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetMinAdvanceBookingHours(*v)
	}
	return _c
}

// SetCancellationDeadlineHours sets the "cancellation_deadline_hours" field.
func (_c *ClinicSettingsCreate) SetCancellationDeadlineHours(v int) *ClinicSettingsCreate {
	_c.mutation.SetCancellationDeadlineHours(v)
	return _c
}

// SetNillableCancellationDeadlineHours sets the "cancellation_deadline_hours" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCancellationDeadlineHours(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCancellationDeadlineHours(*v)
	}
	return _c
}

// SetSendAppointmentConfirmations sets the "send_appointment_confirmations" field.
func (_c *ClinicSettingsCreate) SetSendAppointmentConfirmations(v bool) *ClinicSettingsCreate {
	_c.mutation.SetSendAppointmentConfirmations(v)
	return _c
}

// SetNillableSendAppointmentConfirmations sets the "send_appointment_confirmations" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableSendAppointmentConfirmations(v *bool) *ClinicSettingsCreate {
	if v != nil {
		_c.SetSendAppointmentConfirmations(*v)
	}
	return _c
}

// SetSendAppointmentReminders sets the "send_appointment_reminders" field.
func (_c *ClinicSettingsCreate) SetSendAppointmentReminders(v bool) *ClinicSettingsCreate {
	_c.mutation.SetSendAppointmentReminders(v)
	return _c
}

// SetNillableSendAppointmentReminders sets the "send_appointment_reminders" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableSendAppointmentReminders(v *bool) *ClinicSettingsCreate {
	if v != nil {
		_c.SetSendAppointmentReminders(*v)
	}
	return _c
}

// SetReminderHoursBefore sets the "reminder_hours_before" field.
func (_c *ClinicSettingsCreate) SetReminderHoursBefore(v int) *ClinicSettingsCreate {
	_c.mutation.SetReminderHoursBefore(v)
	return _c
}

// SetNillableReminderHoursBefore sets the "reminder_hours_before" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableReminderHoursBefore(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetReminderHoursBefore(*v)
	}
	return _c
}

// SetSendFollowUpReminders sets the "send_follow_up_reminders" field.
func (_c *ClinicSettingsCreate) SetSendFollowUpReminders(v bool) *ClinicSettingsCreate {
	_c.mutation.SetSendFollowUpReminders(v)
	return _c
}

// SetNillableSendFollowUpReminders sets the "send_follow_up_reminders" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableSendFollowUpReminders(v *bool) *ClinicSettingsCreate {
	if v != nil {
		_c.SetSendFollowUpReminders(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ClinicSettingsCreate) SetCurrency(v string) *ClinicSettingsCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCurrency(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetTaxRatePercent sets the "tax_rate_percent" field.
func (_c *ClinicSettingsCreate) SetTaxRatePercent(v int) *ClinicSettingsCreate {
	_c.mutation.SetTaxRatePercent(v)
	return _c
}

// SetNillableTaxRatePercent sets the "tax_rate_percent" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableTaxRatePercent(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetTaxRatePercent(*v)
	}
	return _c
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_c *ClinicSettingsCreate) SetEmergencyPhone(v string) *ClinicSettingsCreate {
	_c.mutation.SetEmergencyPhone(v)
	return _c
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableEmergencyPhone(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetEmergencyPhone(*v)
	}
	return _c
}

// SetEmergencyEmail sets the "emergency_email" field.
func (_c *ClinicSettingsCreate) SetEmergencyEmail(v string) *ClinicSettingsCreate {
	_c.mutation.SetEmergencyEmail(v)
	return _c
}

// SetNillableEmergencyEmail sets the "emergency_email" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableEmergencyEmail(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetEmergencyEmail(*v)
	}
	return _c
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (_c *ClinicSettingsCreate) SetMaintenanceMode(v bool) *ClinicSettingsCreate {
	_c.mutation.SetMaintenanceMode(v)
	return _c
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableMaintenanceMode(v *bool) *ClinicSettingsCreate {
	if v != nil {
		_c.SetMaintenanceMode(*v)
	}
	return _c
}

// SetMaintenanceMessage sets the "maintenance_message" field.
func (_c *ClinicSettingsCreate) SetMaintenanceMessage(v string) *ClinicSettingsCreate {
	_c.mutation.SetMaintenanceMessage(v)
	return _c
}

// SetNillableMaintenanceMessage sets the "maintenance_message" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableMaintenanceMessage(v *string) *ClinicSettingsCreate {
	if v != nil {
		_c.SetMaintenanceMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicSettingsCreate) SetID(v uuid.UUID) *ClinicSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableID(v *uuid.UUID) *ClinicSettingsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBusinessHourIDs adds the "business_hours" edge to the BusinessHours entity by IDs.
func (_c *ClinicSettingsCreate) AddBusinessHourIDs(ids ...uuid.UUID) *ClinicSettingsCreate {
	_c.mutation.AddBusinessHourIDs(ids...)
	return _c
}

// AddBusinessHours adds the "business_hours" edges to the BusinessHours entity.
func (_c *ClinicSettingsCreate) AddBusinessHours(v ...*BusinessHours) *ClinicSettingsCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBusinessHourIDs(ids...)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_c *ClinicSettingsCreate) Mutation() *ClinicSettingsMutation {
	return _c.mutation
}

// Save creates the ClinicSettings in the database.
func (_c *ClinicSettingsCreate) Save(ctx context.Context) (*ClinicSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicSettingsCreate) SaveX(ctx context.Context) *ClinicSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinicsettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinicsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ClinicName(); !ok {
		v := clinicsettings.DefaultClinicName
		_c.mutation.SetClinicName(v)
	}
	if _, ok := _c.mutation.Country(); !ok {
		v := clinicsettings.DefaultCountry
		_c.mutation.SetCountry(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := clinicsettings.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.AppointmentBufferMin(); !ok {
		v := clinicsettings.DefaultAppointmentBufferMin
		_c.mutation.SetAppointmentBufferMin(v)
	}
	if _, ok := _c.mutation.MaxAdvanceBookingDays(); !ok {
		v := clinicsettings.DefaultMaxAdvanceBookingDays
		_c.mutation.SetMaxAdvanceBookingDays(v)
	}
	if _, ok := _c.mutation.MinAdvanceBookingHours(); !ok {
		v := clinicsettings.DefaultMinAdvanceBookingHours
		_c.mutation.SetMinAdvanceBookingHours(v)
	}
	if _, ok := _c.mutation.CancellationDeadlineHours(); !ok {
		v := clinicsettings.DefaultCancellationDeadlineHours
		_c.mutation.SetCancellationDeadlineHours(v)
	}
	if _, ok := _c.mutation.SendAppointmentConfirmations(); !ok {
		v := clinicsettings.DefaultSendAppointmentConfirmations
		_c.mutation.SetSendAppointmentConfirmations(v)
	}
	if _, ok := _c.mutation.SendAppointmentReminders(); !ok {
		v := clinicsettings.DefaultSendAppointmentReminders
		_c.mutation.SetSendAppointmentReminders(v)
	}
	if _, ok := _c.mutation.ReminderHoursBefore(); !ok {
		v := clinicsettings.DefaultReminderHoursBefore
		_c.mutation.SetReminderHoursBefore(v)
	}
	if _, ok := _c.mutation.SendFollowUpReminders(); !ok {
		v := clinicsettings.DefaultSendFollowUpReminders
		_c.mutation.SetSendFollowUpReminders(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := clinicsettings.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.TaxRatePercent(); !ok {
		v := clinicsettings.DefaultTaxRatePercent
		_c.mutation.SetTaxRatePercent(v)
	}
	if _, ok := _c.mutation.MaintenanceMode(); !ok {
		v := clinicsettings.DefaultMaintenanceMode
		_c.mutation.SetMaintenanceMode(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicsettings.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicSettingsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClinicSettings.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicName(); !ok {
		return &ValidationError{Name: "clinic_name", err: errors.New(`repo: missing required field "ClinicSettings.clinic_name"`)}
	}
	if v, ok := _c.mutation.ClinicName(); ok {
		if err := clinicsettings.ClinicNameValidator(v); err != nil {
			return &ValidationError{Name: "clinic_name", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.clinic_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Tagline(); ok {
		if err := clinicsettings.TaglineValidator(v); err != nil {
			return &ValidationError{Name: "tagline", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tagline": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LogoKey(); ok {
		if err := clinicsettings.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.logo_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FaviconKey(); ok {
		if err := clinicsettings.FaviconKeyValidator(v); err != nil {
			return &ValidationError{Name: "favicon_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.favicon_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "ClinicSettings.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := clinicsettings.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "ClinicSettings.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := clinicsettings.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Website(); ok {
		if err := clinicsettings.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.website": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AddressLine1(); !ok {
		return &ValidationError{Name: "address_line_1", err: errors.New(`repo: missing required field "ClinicSettings.address_line_1"`)}
	}
	if v, ok := _c.mutation.AddressLine1(); ok {
		if err := clinicsettings.AddressLine1Validator(v); err != nil {
			return &ValidationError{Name: "address_line_1", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_1": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AddressLine2(); ok {
		if err := clinicsettings.AddressLine2Validator(v); err != nil {
			return &ValidationError{Name: "address_line_2", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_2": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`repo: missing required field "ClinicSettings.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := clinicsettings.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.city": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := clinicsettings.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PostalCode(); ok {
		if err := clinicsettings.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.postal_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`repo: missing required field "ClinicSettings.country"`)}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := clinicsettings.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.country": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FacebookURL(); ok {
		if err := clinicsettings.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.facebook_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TwitterURL(); ok {
		if err := clinicsettings.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.twitter_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InstagramURL(); ok {
		if err := clinicsettings.InstagramURLValidator(v); err != nil {
			return &ValidationError{Name: "instagram_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.instagram_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LinkedinURL(); ok {
		if err := clinicsettings.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.YoutubeURL(); ok {
		if err := clinicsettings.YoutubeURLValidator(v); err != nil {
			return &ValidationError{Name: "youtube_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.youtube_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "ClinicSettings.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := clinicsettings.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AppointmentBufferMin(); !ok {
		return &ValidationError{Name: "appointment_buffer_min", err: errors.New(`repo: missing required field "ClinicSettings.appointment_buffer_min"`)}
	}
	if v, ok := _c.mutation.AppointmentBufferMin(); ok {
		if err := clinicsettings.AppointmentBufferMinValidator(v); err != nil {
			return &ValidationError{Name: "appointment_buffer_min", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.appointment_buffer_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxAdvanceBookingDays(); !ok {
		return &ValidationError{Name: "max_advance_booking_days", err: errors.New(`repo: missing required field "ClinicSettings.max_advance_booking_days"`)}
	}
	if v, ok := _c.mutation.MaxAdvanceBookingDays(); ok {
		if err := clinicsettings.MaxAdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "max_advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.max_advance_booking_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinAdvanceBookingHours(); !ok {
		return &ValidationError{Name: "min_advance_booking_hours", err: errors.New(`repo: missing required field "ClinicSettings.min_advance_booking_hours"`)}
	}
	if v, ok := _c.mutation.MinAdvanceBookingHours(); ok {
		if err := clinicsettings.MinAdvanceBookingHoursValidator(v); err != nil {
			return &ValidationError{Name: "min_advance_booking_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.min_advance_booking_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancellationDeadlineHours(); !ok {
		return &ValidationError{Name: "cancellation_deadline_hours", err: errors.New(`repo: missing required field "ClinicSettings.cancellation_deadline_hours"`)}
	}
	if v, ok := _c.mutation.CancellationDeadlineHours(); ok {
		if err := clinicsettings.CancellationDeadlineHoursValidator(v); err != nil {
			return &ValidationError{Name: "cancellation_deadline_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.cancellation_deadline_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SendAppointmentConfirmations(); !ok {
		return &ValidationError{Name: "send_appointment_confirmations", err: errors.New(`repo: missing required field "ClinicSettings.send_appointment_confirmations"`)}
	}
	if _, ok := _c.mutation.SendAppointmentReminders(); !ok {
		return &ValidationError{Name: "send_appointment_reminders", err: errors.New(`repo: missing required field "ClinicSettings.send_appointment_reminders"`)}
	}
	if _, ok := _c.mutation.ReminderHoursBefore(); !ok {
		return &ValidationError{Name: "reminder_hours_before", err: errors.New(`repo: missing required field "ClinicSettings.reminder_hours_before"`)}
	}
	if v, ok := _c.mutation.ReminderHoursBefore(); ok {
		if err := clinicsettings.ReminderHoursBeforeValidator(v); err != nil {
			return &ValidationError{Name: "reminder_hours_before", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.reminder_hours_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SendFollowUpReminders(); !ok {
		return &ValidationError{Name: "send_follow_up_reminders", err: errors.New(`repo: missing required field "ClinicSettings.send_follow_up_reminders"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "ClinicSettings.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := clinicsettings.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaxRatePercent(); !ok {
		return &ValidationError{Name: "tax_rate_percent", err: errors.New(`repo: missing required field "ClinicSettings.tax_rate_percent"`)}
	}
	if v, ok := _c.mutation.TaxRatePercent(); ok {
		if err := clinicsettings.TaxRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate_percent", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tax_rate_percent": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyPhone(); ok {
		if err := clinicsettings.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyEmail(); ok {
		if err := clinicsettings.EmergencyEmailValidator(v); err != nil {
			return &ValidationError{Name: "emergency_email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaintenanceMode(); !ok {
		return &ValidationError{Name: "maintenance_mode", err: errors.New(`repo: missing required field "ClinicSettings.maintenance_mode"`)}
	}
	return nil
}

func (_c *ClinicSettingsCreate) sqlSave(ctx context.Context) (*ClinicSettings, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClinicSettingsCreate) createSpec() (*ClinicSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicsettings.Table, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinicsettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicName(); ok {
		_spec.SetField(clinicsettings.FieldClinicName, field.TypeString, value)
		_node.ClinicName = value
	}
	if value, ok := _c.mutation.Tagline(); ok {
		_spec.SetField(clinicsettings.FieldTagline, field.TypeString, value)
		_node.Tagline = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinicsettings.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.LogoKey(); ok {
		_spec.SetField(clinicsettings.FieldLogoKey, field.TypeString, value)
		_node.LogoKey = &value
	}
	if value, ok := _c.mutation.FaviconKey(); ok {
		_spec.SetField(clinicsettings.FieldFaviconKey, field.TypeString, value)
		_node.FaviconKey = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clinicsettings.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(clinicsettings.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(clinicsettings.FieldWebsite, field.TypeString, value)
		_node.Website = &value
	}
	if value, ok := _c.mutation.AddressLine1(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine1, field.TypeString, value)
		_node.AddressLine1 = value
	}
	if value, ok := _c.mutation.AddressLine2(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine2, field.TypeString, value)
		_node.AddressLine2 = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(clinicsettings.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(clinicsettings.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(clinicsettings.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(clinicsettings.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.FacebookURL(); ok {
		_spec.SetField(clinicsettings.FieldFacebookURL, field.TypeString, value)
		_node.FacebookURL = &value
	}
	if value, ok := _c.mutation.TwitterURL(); ok {
		_spec.SetField(clinicsettings.FieldTwitterURL, field.TypeString, value)
		_node.TwitterURL = &value
	}
	if value, ok := _c.mutation.InstagramURL(); ok {
		_spec.SetField(clinicsettings.FieldInstagramURL, field.TypeString, value)
		_node.InstagramURL = &value
	}
	if value, ok := _c.mutation.LinkedinURL(); ok {
		_spec.SetField(clinicsettings.FieldLinkedinURL, field.TypeString, value)
		_node.LinkedinURL = &value
	}
	if value, ok := _c.mutation.YoutubeURL(); ok {
		_spec.SetField(clinicsettings.FieldYoutubeURL, field.TypeString, value)
		_node.YoutubeURL = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(clinicsettings.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.AppointmentBufferMin(); ok {
		_spec.SetField(clinicsettings.FieldAppointmentBufferMin, field.TypeInt, value)
		_node.AppointmentBufferMin = value
	}
	if value, ok := _c.mutation.MaxAdvanceBookingDays(); ok {
		_spec.SetField(clinicsettings.FieldMaxAdvanceBookingDays, field.TypeInt, value)
		_node.MaxAdvanceBookingDays = value
	}
	if value, ok := _c.mutation.MinAdvanceBookingHours(); ok {
		_spec.SetField(clinicsettings.FieldMinAdvanceBookingHours, field.TypeInt, value)
		_node.MinAdvanceBookingHours = value
	}
	if value, ok := _c.mutation.CancellationDeadlineHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationDeadlineHours, field.TypeInt, value)
		_node.CancellationDeadlineHours = value
	}
	if value, ok := _c.mutation.SendAppointmentConfirmations(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentConfirmations, field.TypeBool, value)
		_node.SendAppointmentConfirmations = value
	}
	if value, ok := _c.mutation.SendAppointmentReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentReminders, field.TypeBool, value)
		_node.SendAppointmentReminders = value
	}
	if value, ok := _c.mutation.ReminderHoursBefore(); ok {
		_spec.SetField(clinicsettings.FieldReminderHoursBefore, field.TypeInt, value)
		_node.ReminderHoursBefore = value
	}
	if value, ok := _c.mutation.SendFollowUpReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendFollowUpReminders, field.TypeBool, value)
		_node.SendFollowUpReminders = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(clinicsettings.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.TaxRatePercent(); ok {
		_spec.SetField(clinicsettings.FieldTaxRatePercent, field.TypeInt, value)
		_node.TaxRatePercent = value
	}
	if value, ok := _c.mutation.EmergencyPhone(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyPhone, field.TypeString, value)
		_node.EmergencyPhone = &value
	}
	if value, ok := _c.mutation.EmergencyEmail(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyEmail, field.TypeString, value)
		_node.EmergencyEmail = &value
	}
	if value, ok := _c.mutation.MaintenanceMode(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMode, field.TypeBool, value)
		_node.MaintenanceMode = value
	}
	if value, ok := _c.mutation.MaintenanceMessage(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMessage, field.TypeString, value)
		_node.MaintenanceMessage = &value
	}
	if nodes := _c.mutation.BusinessHoursIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicsettings.BusinessHoursTable,
			Columns: []string{clinicsettings.BusinessHoursColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businesshours.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClinicSettingsCreateBulk is the builder for creating many ClinicSettings entities in bulk.
type ClinicSettingsCreateBulk struct {
	config
	err      error
	builders []*ClinicSettingsCreate
}

// Save creates the ClinicSettings entities in the database.
func (_c *ClinicSettingsCreateBulk) Save(ctx context.Context) ([]*ClinicSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicSettingsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClinicSettingsCreateBulk) SaveX(ctx context.Context) []*ClinicSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
