// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ClinicSettingsUpdate is the builder for updating ClinicSettings entities.
type ClinicSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicSettingsMutation
}

// Where appends a list predicates to the ClinicSettingsUpdate builder.
func (_u *ClinicSettingsUpdate) Where(ps ...predicate.ClinicSettings) *ClinicSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicSettingsUpdate) SetUpdatedAt(v time.Time) *ClinicSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicName sets the "clinic_name" field.
func (_u *ClinicSettingsUpdate) SetClinicName(v string) *ClinicSettingsUpdate {
	_u.mutation.SetClinicName(v)
	return _u
}

// SetNillableClinicName sets the "clinic_name" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableClinicName(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetClinicName(*v)
	}
	return _u
}

// SetTagline sets the "tagline" field.
func (_u *ClinicSettingsUpdate) SetTagline(v string) *ClinicSettingsUpdate {
	_u.mutation.SetTagline(v)
	return _u
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableTagline(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetTagline(*v)
	}
	return _u
}

// ClearTagline clears the value of the "tagline" field.
func (_u *ClinicSettingsUpdate) ClearTagline() *ClinicSettingsUpdate {
	_u.mutation.ClearTagline()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicSettingsUpdate) SetDescription(v string) *ClinicSettingsUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableDescription(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicSettingsUpdate) ClearDescription() *ClinicSettingsUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *ClinicSettingsUpdate) SetLogoKey(v string) *ClinicSettingsUpdate {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableLogoKey(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *ClinicSettingsUpdate) ClearLogoKey() *ClinicSettingsUpdate {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetFaviconKey sets the "favicon_key" field.
func (_u *ClinicSettingsUpdate) SetFaviconKey(v string) *ClinicSettingsUpdate {
	_u.mutation.SetFaviconKey(v)
	return _u
}

// SetNillableFaviconKey sets the "favicon_key" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableFaviconKey(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetFaviconKey(*v)
	}
	return _u
}

// ClearFaviconKey clears the value of the "favicon_key" field.
func (_u *ClinicSettingsUpdate) ClearFaviconKey() *ClinicSettingsUpdate {
	_u.mutation.ClearFaviconKey()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicSettingsUpdate) SetPhone(v string) *ClinicSettingsUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillablePhone(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicSettingsUpdate) SetEmail(v string) *ClinicSettingsUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableEmail(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ClinicSettingsUpdate) SetWebsite(v string) *ClinicSettingsUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableWebsite(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ClinicSettingsUpdate) ClearWebsite() *ClinicSettingsUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetAddressLine1 sets the "address_line_1" field.
func (_u *ClinicSettingsUpdate) SetAddressLine1(v string) *ClinicSettingsUpdate {
	_u.mutation.SetAddressLine1(v)
	return _u
}

// SetNillableAddressLine1 sets the "address_line_1" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableAddressLine1(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetAddressLine1(*v)
	}
	return _u
}

// SetAddressLine2 sets the "address_line_2" field.
func (_u *ClinicSettingsUpdate) SetAddressLine2(v string) *ClinicSettingsUpdate {
	_u.mutation.SetAddressLine2(v)
	return _u
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableAddressLine2(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetAddressLine2(*v)
	}
	return _u
}

// ClearAddressLine2 clears the value of the "address_line_2" field.
func (_u *ClinicSettingsUpdate) ClearAddressLine2() *ClinicSettingsUpdate {
	_u.mutation.ClearAddressLine2()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicSettingsUpdate) SetCity(v string) *ClinicSettingsUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableCity(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicSettingsUpdate) SetState(v string) *ClinicSettingsUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableState(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ClinicSettingsUpdate) ClearState() *ClinicSettingsUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ClinicSettingsUpdate) SetPostalCode(v string) *ClinicSettingsUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillablePostalCode(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ClinicSettingsUpdate) ClearPostalCode() *ClinicSettingsUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ClinicSettingsUpdate) SetCountry(v string) *ClinicSettingsUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableCountry(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *ClinicSettingsUpdate) SetFacebookURL(v string) *ClinicSettingsUpdate {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableFacebookURL(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *ClinicSettingsUpdate) ClearFacebookURL() *ClinicSettingsUpdate {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetTwitterURL sets the "twitter_url" field.
func (_u *ClinicSettingsUpdate) SetTwitterURL(v string) *ClinicSettingsUpdate {
	_u.mutation.SetTwitterURL(v)
	return _u
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableTwitterURL(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetTwitterURL(*v)
	}
	return _u
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (_u *ClinicSettingsUpdate) ClearTwitterURL() *ClinicSettingsUpdate {
	_u.mutation.ClearTwitterURL()
	return _u
}

// SetInstagramURL sets the "instagram_url" field.
func (_u *ClinicSettingsUpdate) SetInstagramURL(v string) *ClinicSettingsUpdate {
	_u.mutation.SetInstagramURL(v)
	return _u
}

// SetNillableInstagramURL sets the "instagram_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableInstagramURL(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetInstagramURL(*v)
	}
	return _u
}

// ClearInstagramURL clears the value of the "instagram_url" field.
func (_u *ClinicSettingsUpdate) ClearInstagramURL() *ClinicSettingsUpdate {
	_u.mutation.ClearInstagramURL()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *ClinicSettingsUpdate) SetLinkedinURL(v string) *ClinicSettingsUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableLinkedinURL(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *ClinicSettingsUpdate) ClearLinkedinURL() *ClinicSettingsUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetYoutubeURL sets the "youtube_url" field.
func (_u *ClinicSettingsUpdate) SetYoutubeURL(v string) *ClinicSettingsUpdate {
	_u.mutation.SetYoutubeURL(v)
	return _u
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableYoutubeURL(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetYoutubeURL(*v)
	}
	return _u
}

// ClearYoutubeURL clears the value of the "youtube_url" field.
func (_u *ClinicSettingsUpdate) ClearYoutubeURL() *ClinicSettingsUpdate {
	_u.mutation.ClearYoutubeURL()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicSettingsUpdate) SetTimezone(v string) *ClinicSettingsUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableTimezone(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetAppointmentBufferMin sets the "appointment_buffer_min" field.
func (_u *ClinicSettingsUpdate) SetAppointmentBufferMin(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetAppointmentBufferMin()
	_u.mutation.SetAppointmentBufferMin(v)
	return _u
}

// SetNillableAppointmentBufferMin sets the "appointment_buffer_min" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableAppointmentBufferMin(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetAppointmentBufferMin(*v)
	}
	return _u
}

// AddAppointmentBufferMin adds value to the "appointment_buffer_min" field.
func (_u *ClinicSettingsUpdate) AddAppointmentBufferMin(v int) *ClinicSettingsUpdate {
	_u.mutation.AddAppointmentBufferMin(v)
	return _u
}

// SetMaxAdvanceBookingDays sets the "max_advance_booking_days" field.
func (_u *ClinicSettingsUpdate) SetMaxAdvanceBookingDays(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetMaxAdvanceBookingDays()
	_u.mutation.SetMaxAdvanceBookingDays(v)
	return _u
}

// SetNillableMaxAdvanceBookingDays sets the "max_advance_booking_days" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableMaxAdvanceBookingDays(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetMaxAdvanceBookingDays(*v)
	}
	return _u
}

// AddMaxAdvanceBookingDays adds value to the "max_advance_booking_days" field.
func (_u *ClinicSettingsUpdate) AddMaxAdvanceBookingDays(v int) *ClinicSettingsUpdate {
	_u.mutation.AddMaxAdvanceBookingDays(v)
	return _u
}

// SetMinAdvanceBookingHours sets the "min_advance_booking_hours" field.
func (_u *ClinicSettingsUpdate) SetMinAdvanceBookingHours(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetMinAdvanceBookingHours()
	_u.mutation.SetMinAdvanceBookingHours(v)
	return _u
}

// SetNillableMinAdvanceBookingHours sets the "min_advance_booking_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableMinAdvanceBookingHours(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetMinAdvanceBookingHours(*v)
	}
	return _u
}

// AddMinAdvanceBookingHours adds value to the "min_advance_booking_hours" field.
func (_u *ClinicSettingsUpdate) AddMinAdvanceBookingHours(v int) *ClinicSettingsUpdate {
	_u.mutation.AddMinAdvanceBookingHours(v)
	return _u
}

// SetCancellationDeadlineHours sets the "cancellation_deadline_hours" field.
func (_u *ClinicSettingsUpdate) SetCancellationDeadlineHours(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetCancellationDeadlineHours()
	_u.mutation.SetCancellationDeadlineHours(v)
	return _u
}

// SetNillableCancellationDeadlineHours sets the "cancellation_deadline_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableCancellationDeadlineHours(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetCancellationDeadlineHours(*v)
	}
	return _u
}

// AddCancellationDeadlineHours adds value to the "cancellation_deadline_hours" field.
func (_u *ClinicSettingsUpdate) AddCancellationDeadlineHours(v int) *ClinicSettingsUpdate {
	_u.mutation.AddCancellationDeadlineHours(v)
	return _u
}

// SetSendAppointmentConfirmations sets the "send_appointment_confirmations" field.
func (_u *ClinicSettingsUpdate) SetSendAppointmentConfirmations(v bool) *ClinicSettingsUpdate {
	_u.mutation.SetSendAppointmentConfirmations(v)
	return _u
}

// SetNillableSendAppointmentConfirmations sets the "send_appointment_confirmations" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableSendAppointmentConfirmations(v *bool) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetSendAppointmentConfirmations(*v)
	}
	return _u
}

// SetSendAppointmentReminders sets the "send_appointment_reminders" field.
func (_u *ClinicSettingsUpdate) SetSendAppointmentReminders(v bool) *ClinicSettingsUpdate {
	_u.mutation.SetSendAppointmentReminders(v)
	return _u
}

// SetNillableSendAppointmentReminders sets the "send_appointment_reminders" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableSendAppointmentReminders(v *bool) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetSendAppointmentReminders(*v)
	}
	return _u
}

// SetReminderHoursBefore sets the "reminder_hours_before" field.
func (_u *ClinicSettingsUpdate) SetReminderHoursBefore(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetReminderHoursBefore()
	_u.mutation.SetReminderHoursBefore(v)
	return _u
}

// SetNillableReminderHoursBefore sets the "reminder_hours_before" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableReminderHoursBefore(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetReminderHoursBefore(*v)
	}
	return _u
}

// AddReminderHoursBefore adds value to the "reminder_hours_before" field.
func (_u *ClinicSettingsUpdate) AddReminderHoursBefore(v int) *ClinicSettingsUpdate {
	_u.mutation.AddReminderHoursBefore(v)
	return _u
}

// SetSendFollowUpReminders sets the "send_follow_up_reminders" field.
func (_u *ClinicSettingsUpdate) SetSendFollowUpReminders(v bool) *ClinicSettingsUpdate {
	_u.mutation.SetSendFollowUpReminders(v)
	return _u
}

// SetNillableSendFollowUpReminders sets the "send_follow_up_reminders" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableSendFollowUpReminders(v *bool) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetSendFollowUpReminders(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ClinicSettingsUpdate) SetCurrency(v string) *ClinicSettingsUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableCurrency(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTaxRatePercent sets the "tax_rate_percent" field.
func (_u *ClinicSettingsUpdate) SetTaxRatePercent(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetTaxRatePercent()
	_u.mutation.SetTaxRatePercent(v)
	return _u
}

// SetNillableTaxRatePercent sets the "tax_rate_percent" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableTaxRatePercent(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetTaxRatePercent(*v)
	}
	return _u
}

// AddTaxRatePercent adds value to the "tax_rate_percent" field.
func (_u *ClinicSettingsUpdate) AddTaxRatePercent(v int) *ClinicSettingsUpdate {
	_u.mutation.AddTaxRatePercent(v)
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *ClinicSettingsUpdate) SetEmergencyPhone(v string) *ClinicSettingsUpdate {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableEmergencyPhone(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *ClinicSettingsUpdate) ClearEmergencyPhone() *ClinicSettingsUpdate {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetEmergencyEmail sets the "emergency_email" field.
func (_u *ClinicSettingsUpdate) SetEmergencyEmail(v string) *ClinicSettingsUpdate {
	_u.mutation.SetEmergencyEmail(v)
	return _u
}

// SetNillableEmergencyEmail sets the "emergency_email" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableEmergencyEmail(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetEmergencyEmail(*v)
	}
	return _u
}

// ClearEmergencyEmail clears the value of the "emergency_email" field.
func (_u *ClinicSettingsUpdate) ClearEmergencyEmail() *ClinicSettingsUpdate {
	_u.mutation.ClearEmergencyEmail()
	return _u
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (_u *ClinicSettingsUpdate) SetMaintenanceMode(v bool) *ClinicSettingsUpdate {
	_u.mutation.SetMaintenanceMode(v)
	return _u
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableMaintenanceMode(v *bool) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetMaintenanceMode(*v)
	}
	return _u
}

// SetMaintenanceMessage sets the "maintenance_message" field.
func (_u *ClinicSettingsUpdate) SetMaintenanceMessage(v string) *ClinicSettingsUpdate {
	_u.mutation.SetMaintenanceMessage(v)
	return _u
}

// SetNillableMaintenanceMessage sets the "maintenance_message" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableMaintenanceMessage(v *string) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetMaintenanceMessage(*v)
	}
	return _u
}

// ClearMaintenanceMessage clears the value of the "maintenance_message" field.
func (_u *ClinicSettingsUpdate) ClearMaintenanceMessage() *ClinicSettingsUpdate {
	_u.mutation.ClearMaintenanceMessage()
	return _u
}

// AddBusinessHourIDs adds the "business_hours" edge to the BusinessHours entity by IDs.
func (_u *ClinicSettingsUpdate) AddBusinessHourIDs(ids ...uuid.UUID) *ClinicSettingsUpdate {
	_u.mutation.AddBusinessHourIDs(ids...)
	return _u
}

// AddBusinessHours adds the "business_hours" edges to the BusinessHours entity.
func (_u *ClinicSettingsUpdate) AddBusinessHours(v ...*BusinessHours) *ClinicSettingsUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBusinessHourIDs(ids...)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_u *ClinicSettingsUpdate) Mutation() *ClinicSettingsMutation {
	return _u.mutation
}

// ClearBusinessHours clears all "business_hours" edges to the BusinessHours entity.
func (_u *ClinicSettingsUpdate) ClearBusinessHours() *ClinicSettingsUpdate {
	_u.mutation.ClearBusinessHours()
	return _u
}

// RemoveBusinessHourIDs removes the "business_hours" edge to BusinessHours entities by IDs.
func (_u *ClinicSettingsUpdate) RemoveBusinessHourIDs(ids ...uuid.UUID) *ClinicSettingsUpdate {
	_u.mutation.RemoveBusinessHourIDs(ids...)
	return _u
}

// RemoveBusinessHours removes "business_hours" edges to BusinessHours entities.
func (_u *ClinicSettingsUpdate) RemoveBusinessHours(v ...*BusinessHours) *ClinicSettingsUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBusinessHourIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicSettingsUpdate) check() error {
	if v, ok := _u.mutation.ClinicName(); ok {
		if err := clinicsettings.ClinicNameValidator(v); err != nil {
			return &ValidationError{Name: "clinic_name", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.clinic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tagline(); ok {
		if err := clinicsettings.TaglineValidator(v); err != nil {
			return &ValidationError{Name: "tagline", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tagline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := clinicsettings.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.logo_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FaviconKey(); ok {
		if err := clinicsettings.FaviconKeyValidator(v); err != nil {
			return &ValidationError{Name: "favicon_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.favicon_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinicsettings.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clinicsettings.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := clinicsettings.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddressLine1(); ok {
		if err := clinicsettings.AddressLine1Validator(v); err != nil {
			return &ValidationError{Name: "address_line_1", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddressLine2(); ok {
		if err := clinicsettings.AddressLine2Validator(v); err != nil {
			return &ValidationError{Name: "address_line_2", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinicsettings.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinicsettings.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostalCode(); ok {
		if err := clinicsettings.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.postal_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := clinicsettings.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacebookURL(); ok {
		if err := clinicsettings.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.facebook_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwitterURL(); ok {
		if err := clinicsettings.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.twitter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstagramURL(); ok {
		if err := clinicsettings.InstagramURLValidator(v); err != nil {
			return &ValidationError{Name: "instagram_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.instagram_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedinURL(); ok {
		if err := clinicsettings.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YoutubeURL(); ok {
		if err := clinicsettings.YoutubeURLValidator(v); err != nil {
			return &ValidationError{Name: "youtube_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.youtube_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinicsettings.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentBufferMin(); ok {
		if err := clinicsettings.AppointmentBufferMinValidator(v); err != nil {
			return &ValidationError{Name: "appointment_buffer_min", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.appointment_buffer_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAdvanceBookingDays(); ok {
		if err := clinicsettings.MaxAdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "max_advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.max_advance_booking_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAdvanceBookingHours(); ok {
		if err := clinicsettings.MinAdvanceBookingHoursValidator(v); err != nil {
			return &ValidationError{Name: "min_advance_booking_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.min_advance_booking_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancellationDeadlineHours(); ok {
		if err := clinicsettings.CancellationDeadlineHoursValidator(v); err != nil {
			return &ValidationError{Name: "cancellation_deadline_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.cancellation_deadline_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderHoursBefore(); ok {
		if err := clinicsettings.ReminderHoursBeforeValidator(v); err != nil {
			return &ValidationError{Name: "reminder_hours_before", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.reminder_hours_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := clinicsettings.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxRatePercent(); ok {
		if err := clinicsettings.TaxRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate_percent", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tax_rate_percent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := clinicsettings.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyEmail(); ok {
		if err := clinicsettings.EmergencyEmailValidator(v); err != nil {
			return &ValidationError{Name: "emergency_email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_email": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicsettings.Table, clinicsettings.Columns, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicName(); ok {
		_spec.SetField(clinicsettings.FieldClinicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tagline(); ok {
		_spec.SetField(clinicsettings.FieldTagline, field.TypeString, value)
	}
	if _u.mutation.TaglineCleared() {
		_spec.ClearField(clinicsettings.FieldTagline, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicsettings.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicsettings.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(clinicsettings.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(clinicsettings.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.FaviconKey(); ok {
		_spec.SetField(clinicsettings.FieldFaviconKey, field.TypeString, value)
	}
	if _u.mutation.FaviconKeyCleared() {
		_spec.ClearField(clinicsettings.FieldFaviconKey, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinicsettings.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinicsettings.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(clinicsettings.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(clinicsettings.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine1(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine1, field.TypeString, value)
	}
	if value, ok := _u.mutation.AddressLine2(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine2, field.TypeString, value)
	}
	if _u.mutation.AddressLine2Cleared() {
		_spec.ClearField(clinicsettings.FieldAddressLine2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinicsettings.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinicsettings.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(clinicsettings.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(clinicsettings.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(clinicsettings.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(clinicsettings.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(clinicsettings.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(clinicsettings.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.TwitterURL(); ok {
		_spec.SetField(clinicsettings.FieldTwitterURL, field.TypeString, value)
	}
	if _u.mutation.TwitterURLCleared() {
		_spec.ClearField(clinicsettings.FieldTwitterURL, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramURL(); ok {
		_spec.SetField(clinicsettings.FieldInstagramURL, field.TypeString, value)
	}
	if _u.mutation.InstagramURLCleared() {
		_spec.ClearField(clinicsettings.FieldInstagramURL, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(clinicsettings.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(clinicsettings.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.YoutubeURL(); ok {
		_spec.SetField(clinicsettings.FieldYoutubeURL, field.TypeString, value)
	}
	if _u.mutation.YoutubeURLCleared() {
		_spec.ClearField(clinicsettings.FieldYoutubeURL, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinicsettings.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentBufferMin(); ok {
		_spec.SetField(clinicsettings.FieldAppointmentBufferMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentBufferMin(); ok {
		_spec.AddField(clinicsettings.FieldAppointmentBufferMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAdvanceBookingDays(); ok {
		_spec.SetField(clinicsettings.FieldMaxAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAdvanceBookingDays(); ok {
		_spec.AddField(clinicsettings.FieldMaxAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinAdvanceBookingHours(); ok {
		_spec.SetField(clinicsettings.FieldMinAdvanceBookingHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAdvanceBookingHours(); ok {
		_spec.AddField(clinicsettings.FieldMinAdvanceBookingHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancellationDeadlineHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationDeadlineHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationDeadlineHours(); ok {
		_spec.AddField(clinicsettings.FieldCancellationDeadlineHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendAppointmentConfirmations(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentConfirmations, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SendAppointmentReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderHoursBefore(); ok {
		_spec.SetField(clinicsettings.FieldReminderHoursBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderHoursBefore(); ok {
		_spec.AddField(clinicsettings.FieldReminderHoursBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendFollowUpReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendFollowUpReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(clinicsettings.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxRatePercent(); ok {
		_spec.SetField(clinicsettings.FieldTaxRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaxRatePercent(); ok {
		_spec.AddField(clinicsettings.FieldTaxRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(clinicsettings.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyEmail(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyEmail, field.TypeString, value)
	}
	if _u.mutation.EmergencyEmailCleared() {
		_spec.ClearField(clinicsettings.FieldEmergencyEmail, field.TypeString)
	}
	if value, ok := _u.mutation.MaintenanceMode(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaintenanceMessage(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMessage, field.TypeString, value)
	}
	if _u.mutation.MaintenanceMessageCleared() {
		_spec.ClearField(clinicsettings.FieldMaintenanceMessage, field.TypeString)
	}
	if _u.mutation.BusinessHoursCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBusinessHoursIDs(); len(nodes) > 0 && !_u.mutation.BusinessHoursCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessHoursIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicSettingsUpdateOne is the builder for updating a single ClinicSettings entity.
type ClinicSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicSettingsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicSettingsUpdateOne) SetUpdatedAt(v time.Time) *ClinicSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicName sets the "clinic_name" field.
func (_u *ClinicSettingsUpdateOne) SetClinicName(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetClinicName(v)
	return _u
}

// SetNillableClinicName sets the "clinic_name" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableClinicName(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetClinicName(*v)
	}
	return _u
}

// SetTagline sets the "tagline" field.
func (_u *ClinicSettingsUpdateOne) SetTagline(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetTagline(v)
	return _u
}

// SetNillableTagline sets the "tagline" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableTagline(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetTagline(*v)
	}
	return _u
}

// ClearTagline clears the value of the "tagline" field.
func (_u *ClinicSettingsUpdateOne) ClearTagline() *ClinicSettingsUpdateOne {
	_u.mutation.ClearTagline()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicSettingsUpdateOne) SetDescription(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableDescription(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicSettingsUpdateOne) ClearDescription() *ClinicSettingsUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *ClinicSettingsUpdateOne) SetLogoKey(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableLogoKey(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *ClinicSettingsUpdateOne) ClearLogoKey() *ClinicSettingsUpdateOne {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetFaviconKey sets the "favicon_key" field.
func (_u *ClinicSettingsUpdateOne) SetFaviconKey(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetFaviconKey(v)
	return _u
}

// SetNillableFaviconKey sets the "favicon_key" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableFaviconKey(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetFaviconKey(*v)
	}
	return _u
}

// ClearFaviconKey clears the value of the "favicon_key" field.
func (_u *ClinicSettingsUpdateOne) ClearFaviconKey() *ClinicSettingsUpdateOne {
	_u.mutation.ClearFaviconKey()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicSettingsUpdateOne) SetPhone(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillablePhone(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicSettingsUpdateOne) SetEmail(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableEmail(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ClinicSettingsUpdateOne) SetWebsite(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableWebsite(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ClinicSettingsUpdateOne) ClearWebsite() *ClinicSettingsUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetAddressLine1 sets the "address_line_1" field.
func (_u *ClinicSettingsUpdateOne) SetAddressLine1(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetAddressLine1(v)
	return _u
}

// SetNillableAddressLine1 sets the "address_line_1" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableAddressLine1(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetAddressLine1(*v)
	}
	return _u
}

// SetAddressLine2 sets the "address_line_2" field.
func (_u *ClinicSettingsUpdateOne) SetAddressLine2(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetAddressLine2(v)
	return _u
}

// SetNillableAddressLine2 sets the "address_line_2" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableAddressLine2(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetAddressLine2(*v)
	}
	return _u
}

// ClearAddressLine2 clears the value of the "address_line_2" field.
func (_u *ClinicSettingsUpdateOne) ClearAddressLine2() *ClinicSettingsUpdateOne {
	_u.mutation.ClearAddressLine2()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicSettingsUpdateOne) SetCity(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableCity(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicSettingsUpdateOne) SetState(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableState(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ClinicSettingsUpdateOne) ClearState() *ClinicSettingsUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ClinicSettingsUpdateOne) SetPostalCode(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillablePostalCode(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ClinicSettingsUpdateOne) ClearPostalCode() *ClinicSettingsUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ClinicSettingsUpdateOne) SetCountry(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableCountry(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *ClinicSettingsUpdateOne) SetFacebookURL(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableFacebookURL(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *ClinicSettingsUpdateOne) ClearFacebookURL() *ClinicSettingsUpdateOne {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetTwitterURL sets the "twitter_url" field.
func (_u *ClinicSettingsUpdateOne) SetTwitterURL(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetTwitterURL(v)
	return _u
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableTwitterURL(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetTwitterURL(*v)
	}
	return _u
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (_u *ClinicSettingsUpdateOne) ClearTwitterURL() *ClinicSettingsUpdateOne {
	_u.mutation.ClearTwitterURL()
	return _u
}

// SetInstagramURL sets the "instagram_url" field.
func (_u *ClinicSettingsUpdateOne) SetInstagramURL(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetInstagramURL(v)
	return _u
}

// SetNillableInstagramURL sets the "instagram_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableInstagramURL(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetInstagramURL(*v)
	}
	return _u
}

// ClearInstagramURL clears the value of the "instagram_url" field.
func (_u *ClinicSettingsUpdateOne) ClearInstagramURL() *ClinicSettingsUpdateOne {
	_u.mutation.ClearInstagramURL()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *ClinicSettingsUpdateOne) SetLinkedinURL(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableLinkedinURL(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *ClinicSettingsUpdateOne) ClearLinkedinURL() *ClinicSettingsUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetYoutubeURL sets the "youtube_url" field.
func (_u *ClinicSettingsUpdateOne) SetYoutubeURL(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetYoutubeURL(v)
	return _u
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableYoutubeURL(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetYoutubeURL(*v)
	}
	return _u
}

// ClearYoutubeURL clears the value of the "youtube_url" field.
func (_u *ClinicSettingsUpdateOne) ClearYoutubeURL() *ClinicSettingsUpdateOne {
	_u.mutation.ClearYoutubeURL()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicSettingsUpdateOne) SetTimezone(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableTimezone(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetAppointmentBufferMin sets the "appointment_buffer_min" field.
func (_u *ClinicSettingsUpdateOne) SetAppointmentBufferMin(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetAppointmentBufferMin()
	_u.mutation.SetAppointmentBufferMin(v)
	return _u
}

// SetNillableAppointmentBufferMin sets the "appointment_buffer_min" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableAppointmentBufferMin(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetAppointmentBufferMin(*v)
	}
	return _u
}

// AddAppointmentBufferMin adds value to the "appointment_buffer_min" field.
func (_u *ClinicSettingsUpdateOne) AddAppointmentBufferMin(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddAppointmentBufferMin(v)
	return _u
}

// SetMaxAdvanceBookingDays sets the "max_advance_booking_days" field.
func (_u *ClinicSettingsUpdateOne) SetMaxAdvanceBookingDays(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetMaxAdvanceBookingDays()
	_u.mutation.SetMaxAdvanceBookingDays(v)
	return _u
}

// SetNillableMaxAdvanceBookingDays sets the "max_advance_booking_days" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableMaxAdvanceBookingDays(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetMaxAdvanceBookingDays(*v)
	}
	return _u
}

// AddMaxAdvanceBookingDays adds value to the "max_advance_booking_days" field.
func (_u *ClinicSettingsUpdateOne) AddMaxAdvanceBookingDays(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddMaxAdvanceBookingDays(v)
	return _u
}

// SetMinAdvanceBookingHours sets the "min_advance_booking_hours" field.
func (_u *ClinicSettingsUpdateOne) SetMinAdvanceBookingHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetMinAdvanceBookingHours()
	_u.mutation.SetMinAdvanceBookingHours(v)
	return _u
}

// SetNillableMinAdvanceBookingHours sets the "min_advance_booking_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableMinAdvanceBookingHours(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetMinAdvanceBookingHours(*v)
	}
	return _u
}

// AddMinAdvanceBookingHours adds value to the "min_advance_booking_hours" field.
func (_u *ClinicSettingsUpdateOne) AddMinAdvanceBookingHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddMinAdvanceBookingHours(v)
	return _u
}

// SetCancellationDeadlineHours sets the "cancellation_deadline_hours" field.
func (_u *ClinicSettingsUpdateOne) SetCancellationDeadlineHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetCancellationDeadlineHours()
	_u.mutation.SetCancellationDeadlineHours(v)
	return _u
}

// SetNillableCancellationDeadlineHours sets the "cancellation_deadline_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableCancellationDeadlineHours(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetCancellationDeadlineHours(*v)
	}
	return _u
}

// AddCancellationDeadlineHours adds value to the "cancellation_deadline_hours" field.
func (_u *ClinicSettingsUpdateOne) AddCancellationDeadlineHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddCancellationDeadlineHours(v)
	return _u
}

// SetSendAppointmentConfirmations sets the "send_appointment_confirmations" field.
func (_u *ClinicSettingsUpdateOne) SetSendAppointmentConfirmations(v bool) *ClinicSettingsUpdateOne {
	_u.mutation.SetSendAppointmentConfirmations(v)
	return _u
}

// SetNillableSendAppointmentConfirmations sets the "send_appointment_confirmations" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableSendAppointmentConfirmations(v *bool) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetSendAppointmentConfirmations(*v)
	}
	return _u
}

// SetSendAppointmentReminders sets the "send_appointment_reminders" field.
func (_u *ClinicSettingsUpdateOne) SetSendAppointmentReminders(v bool) *ClinicSettingsUpdateOne {
	_u.mutation.SetSendAppointmentReminders(v)
	return _u
}

// SetNillableSendAppointmentReminders sets the "send_appointment_reminders" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableSendAppointmentReminders(v *bool) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetSendAppointmentReminders(*v)
	}
	return _u
}

// SetReminderHoursBefore sets the "reminder_hours_before" field.
func (_u *ClinicSettingsUpdateOne) SetReminderHoursBefore(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetReminderHoursBefore()
	_u.mutation.SetReminderHoursBefore(v)
	return _u
}

// SetNillableReminderHoursBefore sets the "reminder_hours_before" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableReminderHoursBefore(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetReminderHoursBefore(*v)
	}
	return _u
}

// AddReminderHoursBefore adds value to the "reminder_hours_before" field.
func (_u *ClinicSettingsUpdateOne) AddReminderHoursBefore(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddReminderHoursBefore(v)
	return _u
}

// SetSendFollowUpReminders sets the "send_follow_up_reminders" field.
func (_u *ClinicSettingsUpdateOne) SetSendFollowUpReminders(v bool) *ClinicSettingsUpdateOne {
	_u.mutation.SetSendFollowUpReminders(v)
	return _u
}

// SetNillableSendFollowUpReminders sets the "send_follow_up_reminders" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableSendFollowUpReminders(v *bool) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetSendFollowUpReminders(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ClinicSettingsUpdateOne) SetCurrency(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableCurrency(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTaxRatePercent sets the "tax_rate_percent" field.
func (_u *ClinicSettingsUpdateOne) SetTaxRatePercent(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetTaxRatePercent()
	_u.mutation.SetTaxRatePercent(v)
	return _u
}

// SetNillableTaxRatePercent sets the "tax_rate_percent" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableTaxRatePercent(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetTaxRatePercent(*v)
	}
	return _u
}

// AddTaxRatePercent adds value to the "tax_rate_percent" field.
func (_u *ClinicSettingsUpdateOne) AddTaxRatePercent(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddTaxRatePercent(v)
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *ClinicSettingsUpdateOne) SetEmergencyPhone(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableEmergencyPhone(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *ClinicSettingsUpdateOne) ClearEmergencyPhone() *ClinicSettingsUpdateOne {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetEmergencyEmail sets the "emergency_email" field.
func (_u *ClinicSettingsUpdateOne) SetEmergencyEmail(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetEmergencyEmail(v)
	return _u
}

// SetNillableEmergencyEmail sets the "emergency_email" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableEmergencyEmail(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetEmergencyEmail(*v)
	}
	return _u
}

// ClearEmergencyEmail clears the value of the "emergency_email" field.
func (_u *ClinicSettingsUpdateOne) ClearEmergencyEmail() *ClinicSettingsUpdateOne {
	_u.mutation.ClearEmergencyEmail()
	return _u
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (_u *ClinicSettingsUpdateOne) SetMaintenanceMode(v bool) *ClinicSettingsUpdateOne {
	_u.mutation.SetMaintenanceMode(v)
	return _u
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableMaintenanceMode(v *bool) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetMaintenanceMode(*v)
	}
	return _u
}

// SetMaintenanceMessage sets the "maintenance_message" field.
func (_u *ClinicSettingsUpdateOne) SetMaintenanceMessage(v string) *ClinicSettingsUpdateOne {
	_u.mutation.SetMaintenanceMessage(v)
	return _u
}

// SetNillableMaintenanceMessage sets the "maintenance_message" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableMaintenanceMessage(v *string) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetMaintenanceMessage(*v)
	}
	return _u
}

// ClearMaintenanceMessage clears the value of the "maintenance_message" field.
func (_u *ClinicSettingsUpdateOne) ClearMaintenanceMessage() *ClinicSettingsUpdateOne {
	_u.mutation.ClearMaintenanceMessage()
	return _u
}

// AddBusinessHourIDs adds the "business_hours" edge to the BusinessHours entity by IDs.
func (_u *ClinicSettingsUpdateOne) AddBusinessHourIDs(ids ...uuid.UUID) *ClinicSettingsUpdateOne {
	_u.mutation.AddBusinessHourIDs(ids...)
	return _u
}

// AddBusinessHours adds the "business_hours" edges to the BusinessHours entity.
func (_u *ClinicSettingsUpdateOne) AddBusinessHours(v ...*BusinessHours) *ClinicSettingsUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBusinessHourIDs(ids...)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_u *ClinicSettingsUpdateOne) Mutation() *ClinicSettingsMutation {
	return _u.mutation
}

// ClearBusinessHours clears all "business_hours" edges to the BusinessHours entity.
func (_u *ClinicSettingsUpdateOne) ClearBusinessHours() *ClinicSettingsUpdateOne {
	_u.mutation.ClearBusinessHours()
	return _u
}

// RemoveBusinessHourIDs removes the "business_hours" edge to BusinessHours entities by IDs.
func (_u *ClinicSettingsUpdateOne) RemoveBusinessHourIDs(ids ...uuid.UUID) *ClinicSettingsUpdateOne {
	_u.mutation.RemoveBusinessHourIDs(ids...)
	return _u
}

// RemoveBusinessHours removes "business_hours" edges to BusinessHours entities.
func (_u *ClinicSettingsUpdateOne) RemoveBusinessHours(v ...*BusinessHours) *ClinicSettingsUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBusinessHourIDs(ids...)
}

// Where appends a list predicates to the ClinicSettingsUpdate builder.
func (_u *ClinicSettingsUpdateOne) Where(ps ...predicate.ClinicSettings) *ClinicSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicSettingsUpdateOne) Select(field string, fields ...string) *ClinicSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicSettings entity.
func (_u *ClinicSettingsUpdateOne) Save(ctx context.Context) (*ClinicSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicSettingsUpdateOne) SaveX(ctx context.Context) *ClinicSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.ClinicName(); ok {
		if err := clinicsettings.ClinicNameValidator(v); err != nil {
			return &ValidationError{Name: "clinic_name", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.clinic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tagline(); ok {
		if err := clinicsettings.TaglineValidator(v); err != nil {
			return &ValidationError{Name: "tagline", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tagline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := clinicsettings.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.logo_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FaviconKey(); ok {
		if err := clinicsettings.FaviconKeyValidator(v); err != nil {
			return &ValidationError{Name: "favicon_key", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.favicon_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinicsettings.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clinicsettings.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := clinicsettings.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddressLine1(); ok {
		if err := clinicsettings.AddressLine1Validator(v); err != nil {
			return &ValidationError{Name: "address_line_1", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddressLine2(); ok {
		if err := clinicsettings.AddressLine2Validator(v); err != nil {
			return &ValidationError{Name: "address_line_2", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.address_line_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinicsettings.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinicsettings.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostalCode(); ok {
		if err := clinicsettings.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.postal_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := clinicsettings.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacebookURL(); ok {
		if err := clinicsettings.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.facebook_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwitterURL(); ok {
		if err := clinicsettings.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.twitter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InstagramURL(); ok {
		if err := clinicsettings.InstagramURLValidator(v); err != nil {
			return &ValidationError{Name: "instagram_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.instagram_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedinURL(); ok {
		if err := clinicsettings.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YoutubeURL(); ok {
		if err := clinicsettings.YoutubeURLValidator(v); err != nil {
			return &ValidationError{Name: "youtube_url", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.youtube_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinicsettings.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentBufferMin(); ok {
		if err := clinicsettings.AppointmentBufferMinValidator(v); err != nil {
			return &ValidationError{Name: "appointment_buffer_min", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.appointment_buffer_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAdvanceBookingDays(); ok {
		if err := clinicsettings.MaxAdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "max_advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.max_advance_booking_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAdvanceBookingHours(); ok {
		if err := clinicsettings.MinAdvanceBookingHoursValidator(v); err != nil {
			return &ValidationError{Name: "min_advance_booking_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.min_advance_booking_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancellationDeadlineHours(); ok {
		if err := clinicsettings.CancellationDeadlineHoursValidator(v); err != nil {
			return &ValidationError{Name: "cancellation_deadline_hours", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.cancellation_deadline_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderHoursBefore(); ok {
		if err := clinicsettings.ReminderHoursBeforeValidator(v); err != nil {
			return &ValidationError{Name: "reminder_hours_before", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.reminder_hours_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := clinicsettings.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxRatePercent(); ok {
		if err := clinicsettings.TaxRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate_percent", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.tax_rate_percent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := clinicsettings.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyEmail(); ok {
		if err := clinicsettings.EmergencyEmailValidator(v); err != nil {
			return &ValidationError{Name: "emergency_email", err: fmt.Errorf(`repo: validator failed for field "ClinicSettings.emergency_email": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicSettingsUpdateOne) sqlSave(ctx context.Context) (_node *ClinicSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicsettings.Table, clinicsettings.Columns, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicsettings.FieldID)
		for _, f := range fields {
			if !clinicsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinicsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicName(); ok {
		_spec.SetField(clinicsettings.FieldClinicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tagline(); ok {
		_spec.SetField(clinicsettings.FieldTagline, field.TypeString, value)
	}
	if _u.mutation.TaglineCleared() {
		_spec.ClearField(clinicsettings.FieldTagline, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicsettings.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicsettings.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(clinicsettings.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(clinicsettings.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.FaviconKey(); ok {
		_spec.SetField(clinicsettings.FieldFaviconKey, field.TypeString, value)
	}
	if _u.mutation.FaviconKeyCleared() {
		_spec.ClearField(clinicsettings.FieldFaviconKey, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinicsettings.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinicsettings.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(clinicsettings.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(clinicsettings.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.AddressLine1(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine1, field.TypeString, value)
	}
	if value, ok := _u.mutation.AddressLine2(); ok {
		_spec.SetField(clinicsettings.FieldAddressLine2, field.TypeString, value)
	}
	if _u.mutation.AddressLine2Cleared() {
		_spec.ClearField(clinicsettings.FieldAddressLine2, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinicsettings.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinicsettings.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(clinicsettings.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(clinicsettings.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(clinicsettings.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(clinicsettings.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(clinicsettings.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(clinicsettings.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.TwitterURL(); ok {
		_spec.SetField(clinicsettings.FieldTwitterURL, field.TypeString, value)
	}
	if _u.mutation.TwitterURLCleared() {
		_spec.ClearField(clinicsettings.FieldTwitterURL, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramURL(); ok {
		_spec.SetField(clinicsettings.FieldInstagramURL, field.TypeString, value)
	}
	if _u.mutation.InstagramURLCleared() {
		_spec.ClearField(clinicsettings.FieldInstagramURL, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(clinicsettings.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(clinicsettings.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.YoutubeURL(); ok {
		_spec.SetField(clinicsettings.FieldYoutubeURL, field.TypeString, value)
	}
	if _u.mutation.YoutubeURLCleared() {
		_spec.ClearField(clinicsettings.FieldYoutubeURL, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinicsettings.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentBufferMin(); ok {
		_spec.SetField(clinicsettings.FieldAppointmentBufferMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentBufferMin(); ok {
		_spec.AddField(clinicsettings.FieldAppointmentBufferMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAdvanceBookingDays(); ok {
		_spec.SetField(clinicsettings.FieldMaxAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAdvanceBookingDays(); ok {
		_spec.AddField(clinicsettings.FieldMaxAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinAdvanceBookingHours(); ok {
		_spec.SetField(clinicsettings.FieldMinAdvanceBookingHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAdvanceBookingHours(); ok {
		_spec.AddField(clinicsettings.FieldMinAdvanceBookingHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancellationDeadlineHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationDeadlineHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationDeadlineHours(); ok {
		_spec.AddField(clinicsettings.FieldCancellationDeadlineHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendAppointmentConfirmations(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentConfirmations, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SendAppointmentReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendAppointmentReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderHoursBefore(); ok {
		_spec.SetField(clinicsettings.FieldReminderHoursBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderHoursBefore(); ok {
		_spec.AddField(clinicsettings.FieldReminderHoursBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendFollowUpReminders(); ok {
		_spec.SetField(clinicsettings.FieldSendFollowUpReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(clinicsettings.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxRatePercent(); ok {
		_spec.SetField(clinicsettings.FieldTaxRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaxRatePercent(); ok {
		_spec.AddField(clinicsettings.FieldTaxRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(clinicsettings.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyEmail(); ok {
		_spec.SetField(clinicsettings.FieldEmergencyEmail, field.TypeString, value)
	}
	if _u.mutation.EmergencyEmailCleared() {
		_spec.ClearField(clinicsettings.FieldEmergencyEmail, field.TypeString)
	}
	if value, ok := _u.mutation.MaintenanceMode(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaintenanceMessage(); ok {
		_spec.SetField(clinicsettings.FieldMaintenanceMessage, field.TypeString, value)
	}
	if _u.mutation.MaintenanceMessageCleared() {
		_spec.ClearField(clinicsettings.FieldMaintenanceMessage, field.TypeString)
	}
	if _u.mutation.BusinessHoursCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBusinessHoursIDs(); len(nodes) > 0 && !_u.mutation.BusinessHoursCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessHoursIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClinicSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
