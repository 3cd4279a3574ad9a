// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
)

// ClinicSettings is the model entity for the ClinicSettings schema.
type ClinicSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ClinicName holds the value of the "clinic_name" field.
	ClinicName string `json:"clinic_name,omitempty"`
	// Tagline holds the value of the "tagline" field.
	Tagline *string `json:"tagline,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// S3 key for the clinic logo
	LogoKey *string `json:"logo_key,omitempty"`
	// FaviconKey holds the value of the "favicon_key" field.
	FaviconKey *string `json:"favicon_key,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Website holds the value of the "website" field.
	Website *string `json:"website,omitempty"`
	// AddressLine1 holds the value of the "address_line_1" field.
	AddressLine1 string `json:"address_line_1,omitempty"`
	// AddressLine2 holds the value of the "address_line_2" field.
	AddressLine2 *string `json:"address_line_2,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State *string `json:"state,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode *string `json:"postal_code,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// FacebookURL holds the value of the "facebook_url" field.
	FacebookURL *string `json:"facebook_url,omitempty"`
	// TwitterURL holds the value of the "twitter_url" field.
	TwitterURL *string `json:"twitter_url,omitempty"`
	// InstagramURL holds the value of the "instagram_url" field.
	InstagramURL *string `json:"instagram_url,omitempty"`
	// LinkedinURL holds the value of the "linkedin_url" field.
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	// YoutubeURL holds the value of the "youtube_url" field.
	YoutubeURL *string `json:"youtube_url,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Buffer between appointments in minutes
	AppointmentBufferMin int `json:"appointment_buffer_min,omitempty"`
	// How far ahead patients may book
	MaxAdvanceBookingDays int `json:"max_advance_booking_days,omitempty"`
	// MinAdvanceBookingHours holds the value of the "min_advance_booking_hours" field.
	MinAdvanceBookingHours int `json:"min_advance_booking_hours,omitempty"`
	// Hours before start_time until which cancellation is allowed
	CancellationDeadlineHours int `json:"cancellation_deadline_hours,omitempty"`
	// SendAppointmentConfirmations holds the value of the "send_appointment_confirmations" field.
	SendAppointmentConfirmations bool `json:"send_appointment_confirmations,omitempty"`
	// SendAppointmentReminders holds the value of the "send_appointment_reminders" field.
	SendAppointmentReminders bool `json:"send_appointment_reminders,omitempty"`
	// ReminderHoursBefore holds the value of the "reminder_hours_before" field.
	ReminderHoursBefore int `json:"reminder_hours_before,omitempty"`
	// SendFollowUpReminders holds the value of the "send_follow_up_reminders" field.
	SendFollowUpReminders bool `json:"send_follow_up_reminders,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// TaxRatePercent holds the value of the "tax_rate_percent" field.
	TaxRatePercent int `json:"tax_rate_percent,omitempty"`
	// EmergencyPhone holds the value of the "emergency_phone" field.
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
	// EmergencyEmail holds the value of the "emergency_email" field.
	EmergencyEmail *string `json:"emergency_email,omitempty"`
	// MaintenanceMode holds the value of the "maintenance_mode" field.
	MaintenanceMode bool `json:"maintenance_mode,omitempty"`
	// MaintenanceMessage holds the value of the "maintenance_message" field.
	MaintenanceMessage *string `json:"maintenance_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicSettingsQuery when eager-loading is set.
	Edges        ClinicSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicSettingsEdges holds the relations/edges for other nodes in the graph.
type ClinicSettingsEdges struct {
	// BusinessHours holds the value of the business_hours edge.
	BusinessHours []*BusinessHours `json:"business_hours,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BusinessHoursOrErr returns the BusinessHours value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicSettingsEdges) BusinessHoursOrErr() ([]*BusinessHours, error) {
	if e.loadedTypes[0] {
		return e.BusinessHours, nil
	}
	return nil, &NotLoadedError{edge: "business_hours"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinicsettings.FieldSendAppointmentConfirmations, clinicsettings.FieldSendAppointmentReminders, clinicsettings.FieldSendFollowUpReminders, clinicsettings.FieldMaintenanceMode:
			values[i] = new(sql.NullBool)
		case clinicsettings.FieldAppointmentBufferMin, clinicsettings.FieldMaxAdvanceBookingDays, clinicsettings.FieldMinAdvanceBookingHours, clinicsettings.FieldCancellationDeadlineHours, clinicsettings.FieldReminderHoursBefore, clinicsettings.FieldTaxRatePercent:
			values[i] = new(sql.NullInt64)
		case clinicsettings.FieldClinicName, clinicsettings.FieldTagline, clinicsettings.FieldDescription, clinicsettings.FieldLogoKey, clinicsettings.FieldFaviconKey, clinicsettings.FieldPhone, clinicsettings.FieldEmail, clinicsettings.FieldWebsite, clinicsettings.FieldAddressLine1, clinicsettings.FieldAddressLine2, clinicsettings.FieldCity, clinicsettings.FieldState, clinicsettings.FieldPostalCode, clinicsettings.FieldCountry, clinicsettings.FieldFacebookURL, clinicsettings.FieldTwitterURL, clinicsettings.FieldInstagramURL, clinicsettings.FieldLinkedinURL, clinicsettings.FieldYoutubeURL, clinicsettings.FieldTimezone, clinicsettings.FieldCurrency, clinicsettings.FieldEmergencyPhone, clinicsettings.FieldEmergencyEmail, clinicsettings.FieldMaintenanceMessage:
			values[i] = new(sql.NullString)
		case clinicsettings.FieldCreatedAt, clinicsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clinicsettings.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicSettings fields.
func (_m *ClinicSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinicsettings.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinicsettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinicsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clinicsettings.FieldClinicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_name", values[i])
			} else if value.Valid {
				_m.ClinicName = value.String
			}
		case clinicsettings.FieldTagline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tagline", values[i])
			} else if value.Valid {
				_m.Tagline = new(string)
				*_m.Tagline = value.String
			}
		case clinicsettings.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case clinicsettings.FieldLogoKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_key", values[i])
			} else if value.Valid {
				_m.LogoKey = new(string)
				*_m.LogoKey = value.String
			}
		case clinicsettings.FieldFaviconKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field favicon_key", values[i])
			} else if value.Valid {
				_m.FaviconKey = new(string)
				*_m.FaviconKey = value.String
			}
		case clinicsettings.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case clinicsettings.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case clinicsettings.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = new(string)
				*_m.Website = value.String
			}
		case clinicsettings.FieldAddressLine1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address_line_1", values[i])
			} else if value.Valid {
				_m.AddressLine1 = value.String
			}
		case clinicsettings.FieldAddressLine2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address_line_2", values[i])
			} else if value.Valid {
				_m.AddressLine2 = new(string)
				*_m.AddressLine2 = value.String
			}
		case clinicsettings.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case clinicsettings.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = new(string)
				*_m.State = value.String
			}
		case clinicsettings.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = new(string)
				*_m.PostalCode = value.String
			}
		case clinicsettings.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case clinicsettings.FieldFacebookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook_url", values[i])
			} else if value.Valid {
				_m.FacebookURL = new(string)
				*_m.FacebookURL = value.String
			}
		case clinicsettings.FieldTwitterURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitter_url", values[i])
			} else if value.Valid {
				_m.TwitterURL = new(string)
				*_m.TwitterURL = value.String
			}
		case clinicsettings.FieldInstagramURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instagram_url", values[i])
			} else if value.Valid {
				_m.InstagramURL = new(string)
				*_m.InstagramURL = value.String
			}
		case clinicsettings.FieldLinkedinURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin_url", values[i])
			} else if value.Valid {
				_m.LinkedinURL = new(string)
				*_m.LinkedinURL = value.String
			}
		case clinicsettings.FieldYoutubeURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_url", values[i])
			} else if value.Valid {
				_m.YoutubeURL = new(string)
				*_m.YoutubeURL = value.String
			}
		case clinicsettings.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case clinicsettings.FieldAppointmentBufferMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_buffer_min", values[i])
			} else if value.Valid {
				_m.AppointmentBufferMin = int(value.Int64)
			}
		case clinicsettings.FieldMaxAdvanceBookingDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_advance_booking_days", values[i])
			} else if value.Valid {
				_m.MaxAdvanceBookingDays = int(value.Int64)
			}
		case clinicsettings.FieldMinAdvanceBookingHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_advance_booking_hours", values[i])
			} else if value.Valid {
				_m.MinAdvanceBookingHours = int(value.Int64)
			}
		case clinicsettings.FieldCancellationDeadlineHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_deadline_hours", values[i])
			} else if value.Valid {
				_m.CancellationDeadlineHours = int(value.Int64)
			}
		case clinicsettings.FieldSendAppointmentConfirmations:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field send_appointment_confirmations", values[i])
			} else if value.Valid {
				_m.SendAppointmentConfirmations = value.Bool
			}
		case clinicsettings.FieldSendAppointmentReminders:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field send_appointment_reminders", values[i])
			} else if value.Valid {
				_m.SendAppointmentReminders = value.Bool
			}
		case clinicsettings.FieldReminderHoursBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_hours_before", values[i])
			} else if value.Valid {
				_m.ReminderHoursBefore = int(value.Int64)
			}
		case clinicsettings.FieldSendFollowUpReminders:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field send_follow_up_reminders", values[i])
			} else if value.Valid {
				_m.SendFollowUpReminders = value.Bool
			}
		case clinicsettings.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case clinicsettings.FieldTaxRatePercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_rate_percent", values[i])
			} else if value.Valid {
				_m.TaxRatePercent = int(value.Int64)
			}
		case clinicsettings.FieldEmergencyPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_phone", values[i])
			} else if value.Valid {
				_m.EmergencyPhone = new(string)
				*_m.EmergencyPhone = value.String
			}
		case clinicsettings.FieldEmergencyEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_email", values[i])
			} else if value.Valid {
				_m.EmergencyEmail = new(string)
				*_m.EmergencyEmail = value.String
			}
		case clinicsettings.FieldMaintenanceMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field maintenance_mode", values[i])
			} else if value.Valid {
				_m.MaintenanceMode = value.Bool
			}
		case clinicsettings.FieldMaintenanceMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maintenance_message", values[i])
			} else if value.Valid {
				_m.MaintenanceMessage = new(string)
				*_m.MaintenanceMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicSettings.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusinessHours queries the "business_hours" edge of the ClinicSettings entity.
func (_m *ClinicSettings) QueryBusinessHours() *BusinessHoursQuery {
	return NewClinicSettingsClient(_m.config).QueryBusinessHours(_m)
}

// Update returns a builder for updating this ClinicSettings.
// Note that you need to call ClinicSettings.Unwrap() before calling this method if this ClinicSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicSettings) Update() *ClinicSettingsUpdateOne {
	return NewClinicSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicSettings) Unwrap() *ClinicSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicSettings) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_name=")
	builder.WriteString(_m.ClinicName)
	builder.WriteString(", ")
	if v := _m.Tagline; v != nil {
		builder.WriteString("tagline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LogoKey; v != nil {
		builder.WriteString("logo_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FaviconKey; v != nil {
		builder.WriteString("favicon_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Website; v != nil {
		builder.WriteString("website=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("address_line_1=")
	builder.WriteString(_m.AddressLine1)
	builder.WriteString(", ")
	if v := _m.AddressLine2; v != nil {
		builder.WriteString("address_line_2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	if v := _m.State; v != nil {
		builder.WriteString("state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostalCode; v != nil {
		builder.WriteString("postal_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	if v := _m.FacebookURL; v != nil {
		builder.WriteString("facebook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TwitterURL; v != nil {
		builder.WriteString("twitter_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InstagramURL; v != nil {
		builder.WriteString("instagram_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinkedinURL; v != nil {
		builder.WriteString("linkedin_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.YoutubeURL; v != nil {
		builder.WriteString("youtube_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("appointment_buffer_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentBufferMin))
	builder.WriteString(", ")
	builder.WriteString("max_advance_booking_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAdvanceBookingDays))
	builder.WriteString(", ")
	builder.WriteString("min_advance_booking_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinAdvanceBookingHours))
	builder.WriteString(", ")
	builder.WriteString("cancellation_deadline_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancellationDeadlineHours))
	builder.WriteString(", ")
	builder.WriteString("send_appointment_confirmations=")
	builder.WriteString(fmt.Sprintf("%v", _m.SendAppointmentConfirmations))
	builder.WriteString(", ")
	builder.WriteString("send_appointment_reminders=")
	builder.WriteString(fmt.Sprintf("%v", _m.SendAppointmentReminders))
	builder.WriteString(", ")
	builder.WriteString("reminder_hours_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderHoursBefore))
	builder.WriteString(", ")
	builder.WriteString("send_follow_up_reminders=")
	builder.WriteString(fmt.Sprintf("%v", _m.SendFollowUpReminders))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("tax_rate_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxRatePercent))
	builder.WriteString(", ")
	if v := _m.EmergencyPhone; v != nil {
		builder.WriteString("emergency_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyEmail; v != nil {
		builder.WriteString("emergency_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("maintenance_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaintenanceMode))
	builder.WriteString(", ")
	if v := _m.MaintenanceMessage; v != nil {
		builder.WriteString("maintenance_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ClinicSettingsSlice is a parsable slice of ClinicSettings.
type ClinicSettingsSlice []*ClinicSettings
