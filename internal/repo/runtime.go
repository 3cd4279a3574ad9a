// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/emailtemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/usersession"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
	"github.com/muchiri-dev/dermacare_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescAppointmentID is the schema descriptor for appointment_id field.
	appointmentDescAppointmentID := appointmentFields[0].Descriptor()
	// appointment.AppointmentIDValidator is a validator for the "appointment_id" field. It is called by the builders before save.
	appointment.AppointmentIDValidator = func() func(string) error {
		validators := appointmentDescAppointmentID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(appointment_id string) error {
			for _, fn := range fns {
				if err := fn(appointment_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescDurationMin is the schema descriptor for duration_min field.
	appointmentDescDurationMin := appointmentFields[6].Descriptor()
	// appointment.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	appointment.DurationMinValidator = appointmentDescDurationMin.Validators[0].(func(int) error)
	// appointmentDescIsFollowUp is the schema descriptor for is_follow_up field.
	appointmentDescIsFollowUp := appointmentFields[14].Descriptor()
	// appointment.DefaultIsFollowUp holds the default value on creation for the is_follow_up field.
	appointment.DefaultIsFollowUp = appointmentDescIsFollowUp.Default.(bool)
	// appointmentDescIsConfirmed is the schema descriptor for is_confirmed field.
	appointmentDescIsConfirmed := appointmentFields[18].Descriptor()
	// appointment.DefaultIsConfirmed holds the default value on creation for the is_confirmed field.
	appointment.DefaultIsConfirmed = appointmentDescIsConfirmed.Default.(bool)
	// appointmentDescReminderSent is the schema descriptor for reminder_sent field.
	appointmentDescReminderSent := appointmentFields[20].Descriptor()
	// appointment.DefaultReminderSent holds the default value on creation for the reminder_sent field.
	appointment.DefaultReminderSent = appointmentDescReminderSent.Default.(bool)
	// appointmentDescMeetingLink is the schema descriptor for meeting_link field.
	appointmentDescMeetingLink := appointmentFields[30].Descriptor()
	// appointment.MeetingLinkValidator is a validator for the "meeting_link" field. It is called by the builders before save.
	appointment.MeetingLinkValidator = appointmentDescMeetingLink.Validators[0].(func(string) error)
	// appointmentDescMeetingID is the schema descriptor for meeting_id field.
	appointmentDescMeetingID := appointmentFields[31].Descriptor()
	// appointment.MeetingIDValidator is a validator for the "meeting_id" field. It is called by the builders before save.
	appointment.MeetingIDValidator = appointmentDescMeetingID.Validators[0].(func(string) error)
	// appointmentDescMeetingPassword is the schema descriptor for meeting_password field.
	appointmentDescMeetingPassword := appointmentFields[32].Descriptor()
	// appointment.MeetingPasswordValidator is a validator for the "meeting_password" field. It is called by the builders before save.
	appointment.MeetingPasswordValidator = appointmentDescMeetingPassword.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	appointmentnoteMixin := schema.AppointmentNote{}.Mixin()
	appointmentnoteMixinFields0 := appointmentnoteMixin[0].Fields()
	_ = appointmentnoteMixinFields0
	appointmentnoteMixinFields1 := appointmentnoteMixin[1].Fields()
	_ = appointmentnoteMixinFields1
	appointmentnoteFields := schema.AppointmentNote{}.Fields()
	_ = appointmentnoteFields
	// appointmentnoteDescCreatedAt is the schema descriptor for created_at field.
	appointmentnoteDescCreatedAt := appointmentnoteMixinFields1[0].Descriptor()
	// appointmentnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentnote.DefaultCreatedAt = appointmentnoteDescCreatedAt.Default.(func() time.Time)
	// appointmentnoteDescContent is the schema descriptor for content field.
	appointmentnoteDescContent := appointmentnoteFields[2].Descriptor()
	// appointmentnote.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	appointmentnote.ContentValidator = appointmentnoteDescContent.Validators[0].(func(string) error)
	// appointmentnoteDescIsPrivate is the schema descriptor for is_private field.
	appointmentnoteDescIsPrivate := appointmentnoteFields[3].Descriptor()
	// appointmentnote.DefaultIsPrivate holds the default value on creation for the is_private field.
	appointmentnote.DefaultIsPrivate = appointmentnoteDescIsPrivate.Default.(bool)
	// appointmentnoteDescID is the schema descriptor for id field.
	appointmentnoteDescID := appointmentnoteMixinFields0[0].Descriptor()
	// appointmentnote.DefaultID holds the default value on creation for the id field.
	appointmentnote.DefaultID = appointmentnoteDescID.Default.(func() uuid.UUID)
	appointmentrescheduleMixin := schema.AppointmentReschedule{}.Mixin()
	appointmentrescheduleMixinFields0 := appointmentrescheduleMixin[0].Fields()
	_ = appointmentrescheduleMixinFields0
	appointmentrescheduleMixinFields1 := appointmentrescheduleMixin[1].Fields()
	_ = appointmentrescheduleMixinFields1
	appointmentrescheduleFields := schema.AppointmentReschedule{}.Fields()
	_ = appointmentrescheduleFields
	// appointmentrescheduleDescCreatedAt is the schema descriptor for created_at field.
	appointmentrescheduleDescCreatedAt := appointmentrescheduleMixinFields1[0].Descriptor()
	// appointmentreschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentreschedule.DefaultCreatedAt = appointmentrescheduleDescCreatedAt.Default.(func() time.Time)
	// appointmentrescheduleDescID is the schema descriptor for id field.
	appointmentrescheduleDescID := appointmentrescheduleMixinFields0[0].Descriptor()
	// appointmentreschedule.DefaultID holds the default value on creation for the id field.
	appointmentreschedule.DefaultID = appointmentrescheduleDescID.Default.(func() uuid.UUID)
	appointmenttypeMixin := schema.AppointmentType{}.Mixin()
	appointmenttypeMixinFields0 := appointmenttypeMixin[0].Fields()
	_ = appointmenttypeMixinFields0
	appointmenttypeMixinFields1 := appointmenttypeMixin[1].Fields()
	_ = appointmenttypeMixinFields1
	appointmenttypeFields := schema.AppointmentType{}.Fields()
	_ = appointmenttypeFields
	// appointmenttypeDescCreatedAt is the schema descriptor for created_at field.
	appointmenttypeDescCreatedAt := appointmenttypeMixinFields1[0].Descriptor()
	// appointmenttype.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmenttype.DefaultCreatedAt = appointmenttypeDescCreatedAt.Default.(func() time.Time)
	// appointmenttypeDescName is the schema descriptor for name field.
	appointmenttypeDescName := appointmenttypeFields[0].Descriptor()
	// appointmenttype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	appointmenttype.NameValidator = func() func(string) error {
		validators := appointmenttypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmenttypeDescSlug is the schema descriptor for slug field.
	appointmenttypeDescSlug := appointmenttypeFields[1].Descriptor()
	// appointmenttype.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	appointmenttype.SlugValidator = func() func(string) error {
		validators := appointmenttypeDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmenttypeDescDurationMin is the schema descriptor for duration_min field.
	appointmenttypeDescDurationMin := appointmenttypeFields[3].Descriptor()
	// appointmenttype.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	appointmenttype.DurationMinValidator = appointmenttypeDescDurationMin.Validators[0].(func(int) error)
	// appointmenttypeDescColor is the schema descriptor for color field.
	appointmenttypeDescColor := appointmenttypeFields[4].Descriptor()
	// appointmenttype.DefaultColor holds the default value on creation for the color field.
	appointmenttype.DefaultColor = appointmenttypeDescColor.Default.(string)
	// appointmenttype.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	appointmenttype.ColorValidator = appointmenttypeDescColor.Validators[0].(func(string) error)
	// appointmenttypeDescIsConsultation is the schema descriptor for is_consultation field.
	appointmenttypeDescIsConsultation := appointmenttypeFields[5].Descriptor()
	// appointmenttype.DefaultIsConsultation holds the default value on creation for the is_consultation field.
	appointmenttype.DefaultIsConsultation = appointmenttypeDescIsConsultation.Default.(bool)
	// appointmenttypeDescRequiresPreparation is the schema descriptor for requires_preparation field.
	appointmenttypeDescRequiresPreparation := appointmenttypeFields[6].Descriptor()
	// appointmenttype.DefaultRequiresPreparation holds the default value on creation for the requires_preparation field.
	appointmenttype.DefaultRequiresPreparation = appointmenttypeDescRequiresPreparation.Default.(bool)
	// appointmenttypeDescIsActive is the schema descriptor for is_active field.
	appointmenttypeDescIsActive := appointmenttypeFields[8].Descriptor()
	// appointmenttype.DefaultIsActive holds the default value on creation for the is_active field.
	appointmenttype.DefaultIsActive = appointmenttypeDescIsActive.Default.(bool)
	// appointmenttypeDescID is the schema descriptor for id field.
	appointmenttypeDescID := appointmenttypeMixinFields0[0].Descriptor()
	// appointmenttype.DefaultID holds the default value on creation for the id field.
	appointmenttype.DefaultID = appointmenttypeDescID.Default.(func() uuid.UUID)
	businesshoursMixin := schema.BusinessHours{}.Mixin()
	businesshoursMixinFields0 := businesshoursMixin[0].Fields()
	_ = businesshoursMixinFields0
	businesshoursFields := schema.BusinessHours{}.Fields()
	_ = businesshoursFields
	// businesshoursDescDayOfWeek is the schema descriptor for day_of_week field.
	businesshoursDescDayOfWeek := businesshoursFields[1].Descriptor()
	// businesshours.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	businesshours.DayOfWeekValidator = func() func(int8) error {
		validators := businesshoursDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// businesshoursDescIsOpen is the schema descriptor for is_open field.
	businesshoursDescIsOpen := businesshoursFields[2].Descriptor()
	// businesshours.DefaultIsOpen holds the default value on creation for the is_open field.
	businesshours.DefaultIsOpen = businesshoursDescIsOpen.Default.(bool)
	// businesshoursDescOpeningTime is the schema descriptor for opening_time field.
	businesshoursDescOpeningTime := businesshoursFields[3].Descriptor()
	// businesshours.OpeningTimeValidator is a validator for the "opening_time" field. It is called by the builders before save.
	businesshours.OpeningTimeValidator = businesshoursDescOpeningTime.Validators[0].(func(string) error)
	// businesshoursDescClosingTime is the schema descriptor for closing_time field.
	businesshoursDescClosingTime := businesshoursFields[4].Descriptor()
	// businesshours.ClosingTimeValidator is a validator for the "closing_time" field. It is called by the builders before save.
	businesshours.ClosingTimeValidator = businesshoursDescClosingTime.Validators[0].(func(string) error)
	// businesshoursDescLunchBreak is the schema descriptor for lunch_break field.
	businesshoursDescLunchBreak := businesshoursFields[5].Descriptor()
	// businesshours.DefaultLunchBreak holds the default value on creation for the lunch_break field.
	businesshours.DefaultLunchBreak = businesshoursDescLunchBreak.Default.(bool)
	// businesshoursDescLunchStart is the schema descriptor for lunch_start field.
	businesshoursDescLunchStart := businesshoursFields[6].Descriptor()
	// businesshours.LunchStartValidator is a validator for the "lunch_start" field. It is called by the builders before save.
	businesshours.LunchStartValidator = businesshoursDescLunchStart.Validators[0].(func(string) error)
	// businesshoursDescLunchEnd is the schema descriptor for lunch_end field.
	businesshoursDescLunchEnd := businesshoursFields[7].Descriptor()
	// businesshours.LunchEndValidator is a validator for the "lunch_end" field. It is called by the builders before save.
	businesshours.LunchEndValidator = businesshoursDescLunchEnd.Validators[0].(func(string) error)
	// businesshoursDescNotes is the schema descriptor for notes field.
	businesshoursDescNotes := businesshoursFields[8].Descriptor()
	// businesshours.NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	businesshours.NotesValidator = businesshoursDescNotes.Validators[0].(func(string) error)
	// businesshoursDescID is the schema descriptor for id field.
	businesshoursDescID := businesshoursMixinFields0[0].Descriptor()
	// businesshours.DefaultID holds the default value on creation for the id field.
	businesshours.DefaultID = businesshoursDescID.Default.(func() uuid.UUID)
	clinicsettingsMixin := schema.ClinicSettings{}.Mixin()
	clinicsettingsMixinFields0 := clinicsettingsMixin[0].Fields()
	_ = clinicsettingsMixinFields0
	clinicsettingsMixinFields1 := clinicsettingsMixin[1].Fields()
	_ = clinicsettingsMixinFields1
	clinicsettingsFields := schema.ClinicSettings{}.Fields()
	_ = clinicsettingsFields
	// clinicsettingsDescCreatedAt is the schema descriptor for created_at field.
	clinicsettingsDescCreatedAt := clinicsettingsMixinFields1[0].Descriptor()
	// clinicsettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicsettings.DefaultCreatedAt = clinicsettingsDescCreatedAt.Default.(func() time.Time)
	// clinicsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	clinicsettingsDescUpdatedAt := clinicsettingsMixinFields1[1].Descriptor()
	// clinicsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicsettings.DefaultUpdatedAt = clinicsettingsDescUpdatedAt.Default.(func() time.Time)
	// clinicsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicsettings.UpdateDefaultUpdatedAt = clinicsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicsettingsDescClinicName is the schema descriptor for clinic_name field.
	clinicsettingsDescClinicName := clinicsettingsFields[0].Descriptor()
	// clinicsettings.DefaultClinicName holds the default value on creation for the clinic_name field.
	clinicsettings.DefaultClinicName = clinicsettingsDescClinicName.Default.(string)
	// clinicsettings.ClinicNameValidator is a validator for the "clinic_name" field. It is called by the builders before save.
	clinicsettings.ClinicNameValidator = clinicsettingsDescClinicName.Validators[0].(func(string) error)
	// clinicsettingsDescTagline is the schema descriptor for tagline field.
	clinicsettingsDescTagline := clinicsettingsFields[1].Descriptor()
	// clinicsettings.TaglineValidator is a validator for the "tagline" field. It is called by the builders before save.
	clinicsettings.TaglineValidator = clinicsettingsDescTagline.Validators[0].(func(string) error)
	// clinicsettingsDescLogoKey is the schema descriptor for logo_key field.
	clinicsettingsDescLogoKey := clinicsettingsFields[3].Descriptor()
	// clinicsettings.LogoKeyValidator is a validator for the "logo_key" field. It is called by the builders before save.
	clinicsettings.LogoKeyValidator = clinicsettingsDescLogoKey.Validators[0].(func(string) error)
	// clinicsettingsDescFaviconKey is the schema descriptor for favicon_key field.
	clinicsettingsDescFaviconKey := clinicsettingsFields[4].Descriptor()
	// clinicsettings.FaviconKeyValidator is a validator for the "favicon_key" field. It is called by the builders before save.
	clinicsettings.FaviconKeyValidator = clinicsettingsDescFaviconKey.Validators[0].(func(string) error)
	// clinicsettingsDescPhone is the schema descriptor for phone field.
	clinicsettingsDescPhone := clinicsettingsFields[5].Descriptor()
	// clinicsettings.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinicsettings.PhoneValidator = func() func(string) error {
		validators := clinicsettingsDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicsettingsDescEmail is the schema descriptor for email field.
	clinicsettingsDescEmail := clinicsettingsFields[6].Descriptor()
	// clinicsettings.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clinicsettings.EmailValidator = func() func(string) error {
		validators := clinicsettingsDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicsettingsDescWebsite is the schema descriptor for website field.
	clinicsettingsDescWebsite := clinicsettingsFields[7].Descriptor()
	// clinicsettings.WebsiteValidator is a validator for the "website" field. It is called by the builders before save.
	clinicsettings.WebsiteValidator = clinicsettingsDescWebsite.Validators[0].(func(string) error)
	// clinicsettingsDescAddressLine1 is the schema descriptor for address_line_1 field.
	clinicsettingsDescAddressLine1 := clinicsettingsFields[8].Descriptor()
	// clinicsettings.AddressLine1Validator is a validator for the "address_line_1" field. It is called by the builders before save.
	clinicsettings.AddressLine1Validator = func() func(string) error {
		validators := clinicsettingsDescAddressLine1.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(address_line_1 string) error {
			for _, fn := range fns {
				if err := fn(address_line_1); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicsettingsDescAddressLine2 is the schema descriptor for address_line_2 field.
	clinicsettingsDescAddressLine2 := clinicsettingsFields[9].Descriptor()
	// clinicsettings.AddressLine2Validator is a validator for the "address_line_2" field. It is called by the builders before save.
	clinicsettings.AddressLine2Validator = clinicsettingsDescAddressLine2.Validators[0].(func(string) error)
	// clinicsettingsDescCity is the schema descriptor for city field.
	clinicsettingsDescCity := clinicsettingsFields[10].Descriptor()
	// clinicsettings.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinicsettings.CityValidator = func() func(string) error {
		validators := clinicsettingsDescCity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(city string) error {
			for _, fn := range fns {
				if err := fn(city); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicsettingsDescState is the schema descriptor for state field.
	clinicsettingsDescState := clinicsettingsFields[11].Descriptor()
	// clinicsettings.StateValidator is a validator for the "state" field. It is called by the builders before save.
	clinicsettings.StateValidator = clinicsettingsDescState.Validators[0].(func(string) error)
	// clinicsettingsDescPostalCode is the schema descriptor for postal_code field.
	clinicsettingsDescPostalCode := clinicsettingsFields[12].Descriptor()
	// clinicsettings.PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	clinicsettings.PostalCodeValidator = clinicsettingsDescPostalCode.Validators[0].(func(string) error)
	// clinicsettingsDescCountry is the schema descriptor for country field.
	clinicsettingsDescCountry := clinicsettingsFields[13].Descriptor()
	// clinicsettings.DefaultCountry holds the default value on creation for the country field.
	clinicsettings.DefaultCountry = clinicsettingsDescCountry.Default.(string)
	// clinicsettings.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	clinicsettings.CountryValidator = clinicsettingsDescCountry.Validators[0].(func(string) error)
	// clinicsettingsDescFacebookURL is the schema descriptor for facebook_url field.
	clinicsettingsDescFacebookURL := clinicsettingsFields[14].Descriptor()
	// clinicsettings.FacebookURLValidator is a validator for the "facebook_url" field. It is called by the builders before save.
	clinicsettings.FacebookURLValidator = clinicsettingsDescFacebookURL.Validators[0].(func(string) error)
	// clinicsettingsDescTwitterURL is the schema descriptor for twitter_url field.
	clinicsettingsDescTwitterURL := clinicsettingsFields[15].Descriptor()
	// clinicsettings.TwitterURLValidator is a validator for the "twitter_url" field. It is called by the builders before save.
	clinicsettings.TwitterURLValidator = clinicsettingsDescTwitterURL.Validators[0].(func(string) error)
	// clinicsettingsDescInstagramURL is the schema descriptor for instagram_url field.
	clinicsettingsDescInstagramURL := clinicsettingsFields[16].Descriptor()
	// clinicsettings.InstagramURLValidator is a validator for the "instagram_url" field. It is called by the builders before save.
	clinicsettings.InstagramURLValidator = clinicsettingsDescInstagramURL.Validators[0].(func(string) error)
	// clinicsettingsDescLinkedinURL is the schema descriptor for linkedin_url field.
	clinicsettingsDescLinkedinURL := clinicsettingsFields[17].Descriptor()
	// clinicsettings.LinkedinURLValidator is a validator for the "linkedin_url" field. It is called by the builders before save.
	clinicsettings.LinkedinURLValidator = clinicsettingsDescLinkedinURL.Validators[0].(func(string) error)
	// clinicsettingsDescYoutubeURL is the schema descriptor for youtube_url field.
	clinicsettingsDescYoutubeURL := clinicsettingsFields[18].Descriptor()
	// clinicsettings.YoutubeURLValidator is a validator for the "youtube_url" field. It is called by the builders before save.
	clinicsettings.YoutubeURLValidator = clinicsettingsDescYoutubeURL.Validators[0].(func(string) error)
	// clinicsettingsDescTimezone is the schema descriptor for timezone field.
	clinicsettingsDescTimezone := clinicsettingsFields[19].Descriptor()
	// clinicsettings.DefaultTimezone holds the default value on creation for the timezone field.
	clinicsettings.DefaultTimezone = clinicsettingsDescTimezone.Default.(string)
	// clinicsettings.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	clinicsettings.TimezoneValidator = clinicsettingsDescTimezone.Validators[0].(func(string) error)
	// clinicsettingsDescAppointmentBufferMin is the schema descriptor for appointment_buffer_min field.
	clinicsettingsDescAppointmentBufferMin := clinicsettingsFields[20].Descriptor()
	// clinicsettings.DefaultAppointmentBufferMin holds the default value on creation for the appointment_buffer_min field.
	clinicsettings.DefaultAppointmentBufferMin = clinicsettingsDescAppointmentBufferMin.Default.(int)
	// clinicsettings.AppointmentBufferMinValidator is a validator for the "appointment_buffer_min" field. It is called by the builders before save.
	clinicsettings.AppointmentBufferMinValidator = clinicsettingsDescAppointmentBufferMin.Validators[0].(func(int) error)
	// clinicsettingsDescMaxAdvanceBookingDays is the schema descriptor for max_advance_booking_days field.
	clinicsettingsDescMaxAdvanceBookingDays := clinicsettingsFields[21].Descriptor()
	// clinicsettings.DefaultMaxAdvanceBookingDays holds the default value on creation for the max_advance_booking_days field.
	clinicsettings.DefaultMaxAdvanceBookingDays = clinicsettingsDescMaxAdvanceBookingDays.Default.(int)
	// clinicsettings.MaxAdvanceBookingDaysValidator is a validator for the "max_advance_booking_days" field. It is called by the builders before save.
	clinicsettings.MaxAdvanceBookingDaysValidator = clinicsettingsDescMaxAdvanceBookingDays.Validators[0].(func(int) error)
	// clinicsettingsDescMinAdvanceBookingHours is the schema descriptor for min_advance_booking_hours field.
	clinicsettingsDescMinAdvanceBookingHours := clinicsettingsFields[22].Descriptor()
	// clinicsettings.DefaultMinAdvanceBookingHours holds the default value on creation for the min_advance_booking_hours field.
	clinicsettings.DefaultMinAdvanceBookingHours = clinicsettingsDescMinAdvanceBookingHours.Default.(int)
	// clinicsettings.MinAdvanceBookingHoursValidator is a validator for the "min_advance_booking_hours" field. It is called by the builders before save.
	clinicsettings.MinAdvanceBookingHoursValidator = clinicsettingsDescMinAdvanceBookingHours.Validators[0].(func(int) error)
	// clinicsettingsDescCancellationDeadlineHours is the schema descriptor for cancellation_deadline_hours field.
	clinicsettingsDescCancellationDeadlineHours := clinicsettingsFields[23].Descriptor()
	// clinicsettings.DefaultCancellationDeadlineHours holds the default value on creation for the cancellation_deadline_hours field.
	clinicsettings.DefaultCancellationDeadlineHours = clinicsettingsDescCancellationDeadlineHours.Default.(int)
	// clinicsettings.CancellationDeadlineHoursValidator is a validator for the "cancellation_deadline_hours" field. It is called by the builders before save.
	clinicsettings.CancellationDeadlineHoursValidator = clinicsettingsDescCancellationDeadlineHours.Validators[0].(func(int) error)
	// clinicsettingsDescSendAppointmentConfirmations is the schema descriptor for send_appointment_confirmations field.
	clinicsettingsDescSendAppointmentConfirmations := clinicsettingsFields[24].Descriptor()
	// clinicsettings.DefaultSendAppointmentConfirmations holds the default value on creation for the send_appointment_confirmations field.
	clinicsettings.DefaultSendAppointmentConfirmations = clinicsettingsDescSendAppointmentConfirmations.Default.(bool)
	// clinicsettingsDescSendAppointmentReminders is the schema descriptor for send_appointment_reminders field.
	clinicsettingsDescSendAppointmentReminders := clinicsettingsFields[25].Descriptor()
	// clinicsettings.DefaultSendAppointmentReminders holds the default value on creation for the send_appointment_reminders field.
	clinicsettings.DefaultSendAppointmentReminders = clinicsettingsDescSendAppointmentReminders.Default.(bool)
	// clinicsettingsDescReminderHoursBefore is the schema descriptor for reminder_hours_before field.
	clinicsettingsDescReminderHoursBefore := clinicsettingsFields[26].Descriptor()
	// clinicsettings.DefaultReminderHoursBefore holds the default value on creation for the reminder_hours_before field.
	clinicsettings.DefaultReminderHoursBefore = clinicsettingsDescReminderHoursBefore.Default.(int)
	// clinicsettings.ReminderHoursBeforeValidator is a validator for the "reminder_hours_before" field. It is called by the builders before save.
	clinicsettings.ReminderHoursBeforeValidator = clinicsettingsDescReminderHoursBefore.Validators[0].(func(int) error)
	// clinicsettingsDescSendFollowUpReminders is the schema descriptor for send_follow_up_reminders field.
	clinicsettingsDescSendFollowUpReminders := clinicsettingsFields[27].Descriptor()
	// clinicsettings.DefaultSendFollowUpReminders holds the default value on creation for the send_follow_up_reminders field.
	clinicsettings.DefaultSendFollowUpReminders = clinicsettingsDescSendFollowUpReminders.Default.(bool)
	// clinicsettingsDescCurrency is the schema descriptor for currency field.
	clinicsettingsDescCurrency := clinicsettingsFields[28].Descriptor()
	// clinicsettings.DefaultCurrency holds the default value on creation for the currency field.
	clinicsettings.DefaultCurrency = clinicsettingsDescCurrency.Default.(string)
	// clinicsettings.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	clinicsettings.CurrencyValidator = clinicsettingsDescCurrency.Validators[0].(func(string) error)
	// clinicsettingsDescTaxRatePercent is the schema descriptor for tax_rate_percent field.
	clinicsettingsDescTaxRatePercent := clinicsettingsFields[29].Descriptor()
	// clinicsettings.DefaultTaxRatePercent holds the default value on creation for the tax_rate_percent field.
	clinicsettings.DefaultTaxRatePercent = clinicsettingsDescTaxRatePercent.Default.(int)
	// clinicsettings.TaxRatePercentValidator is a validator for the "tax_rate_percent" field. It is called by the builders before save.
	clinicsettings.TaxRatePercentValidator = func() func(int) error {
		validators := clinicsettingsDescTaxRatePercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(tax_rate_percent int) error {
			for _, fn := range fns {
				if err := fn(tax_rate_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicsettingsDescEmergencyPhone is the schema descriptor for emergency_phone field.
	clinicsettingsDescEmergencyPhone := clinicsettingsFields[30].Descriptor()
	// clinicsettings.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	clinicsettings.EmergencyPhoneValidator = clinicsettingsDescEmergencyPhone.Validators[0].(func(string) error)
	// clinicsettingsDescEmergencyEmail is the schema descriptor for emergency_email field.
	clinicsettingsDescEmergencyEmail := clinicsettingsFields[31].Descriptor()
	// clinicsettings.EmergencyEmailValidator is a validator for the "emergency_email" field. It is called by the builders before save.
	clinicsettings.EmergencyEmailValidator = clinicsettingsDescEmergencyEmail.Validators[0].(func(string) error)
	// clinicsettingsDescMaintenanceMode is the schema descriptor for maintenance_mode field.
	clinicsettingsDescMaintenanceMode := clinicsettingsFields[32].Descriptor()
	// clinicsettings.DefaultMaintenanceMode holds the default value on creation for the maintenance_mode field.
	clinicsettings.DefaultMaintenanceMode = clinicsettingsDescMaintenanceMode.Default.(bool)
	// clinicsettingsDescID is the schema descriptor for id field.
	clinicsettingsDescID := clinicsettingsMixinFields0[0].Descriptor()
	// clinicsettings.DefaultID holds the default value on creation for the id field.
	clinicsettings.DefaultID = clinicsettingsDescID.Default.(func() uuid.UUID)
	contactmessageMixin := schema.ContactMessage{}.Mixin()
	contactmessageMixinFields0 := contactmessageMixin[0].Fields()
	_ = contactmessageMixinFields0
	contactmessageMixinFields1 := contactmessageMixin[1].Fields()
	_ = contactmessageMixinFields1
	contactmessageFields := schema.ContactMessage{}.Fields()
	_ = contactmessageFields
	// contactmessageDescCreatedAt is the schema descriptor for created_at field.
	contactmessageDescCreatedAt := contactmessageMixinFields1[0].Descriptor()
	// contactmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactmessage.DefaultCreatedAt = contactmessageDescCreatedAt.Default.(func() time.Time)
	// contactmessageDescUpdatedAt is the schema descriptor for updated_at field.
	contactmessageDescUpdatedAt := contactmessageMixinFields1[1].Descriptor()
	// contactmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contactmessage.DefaultUpdatedAt = contactmessageDescUpdatedAt.Default.(func() time.Time)
	// contactmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contactmessage.UpdateDefaultUpdatedAt = contactmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactmessageDescName is the schema descriptor for name field.
	contactmessageDescName := contactmessageFields[0].Descriptor()
	// contactmessage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contactmessage.NameValidator = func() func(string) error {
		validators := contactmessageDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactmessageDescEmail is the schema descriptor for email field.
	contactmessageDescEmail := contactmessageFields[1].Descriptor()
	// contactmessage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contactmessage.EmailValidator = func() func(string) error {
		validators := contactmessageDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactmessageDescPhone is the schema descriptor for phone field.
	contactmessageDescPhone := contactmessageFields[2].Descriptor()
	// contactmessage.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	contactmessage.PhoneValidator = contactmessageDescPhone.Validators[0].(func(string) error)
	// contactmessageDescSubject is the schema descriptor for subject field.
	contactmessageDescSubject := contactmessageFields[3].Descriptor()
	// contactmessage.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	contactmessage.SubjectValidator = func() func(string) error {
		validators := contactmessageDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactmessageDescID is the schema descriptor for id field.
	contactmessageDescID := contactmessageMixinFields0[0].Descriptor()
	// contactmessage.DefaultID holds the default value on creation for the id field.
	contactmessage.DefaultID = contactmessageDescID.Default.(func() uuid.UUID)
	contactresponseMixin := schema.ContactResponse{}.Mixin()
	contactresponseMixinFields0 := contactresponseMixin[0].Fields()
	_ = contactresponseMixinFields0
	contactresponseMixinFields1 := contactresponseMixin[1].Fields()
	_ = contactresponseMixinFields1
	contactresponseFields := schema.ContactResponse{}.Fields()
	_ = contactresponseFields
	// contactresponseDescCreatedAt is the schema descriptor for created_at field.
	contactresponseDescCreatedAt := contactresponseMixinFields1[0].Descriptor()
	// contactresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactresponse.DefaultCreatedAt = contactresponseDescCreatedAt.Default.(func() time.Time)
	// contactresponseDescIsSent is the schema descriptor for is_sent field.
	contactresponseDescIsSent := contactresponseFields[3].Descriptor()
	// contactresponse.DefaultIsSent holds the default value on creation for the is_sent field.
	contactresponse.DefaultIsSent = contactresponseDescIsSent.Default.(bool)
	// contactresponseDescID is the schema descriptor for id field.
	contactresponseDescID := contactresponseMixinFields0[0].Descriptor()
	// contactresponse.DefaultID holds the default value on creation for the id field.
	contactresponse.DefaultID = contactresponseDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescTitle is the schema descriptor for title field.
	doctorDescTitle := doctorFields[1].Descriptor()
	// doctor.DefaultTitle holds the default value on creation for the title field.
	doctor.DefaultTitle = doctorDescTitle.Default.(string)
	// doctor.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	doctor.TitleValidator = doctorDescTitle.Validators[0].(func(string) error)
	// doctorDescLicenseNumber is the schema descriptor for license_number field.
	doctorDescLicenseNumber := doctorFields[2].Descriptor()
	// doctor.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	doctor.LicenseNumberValidator = func() func(string) error {
		validators := doctorDescLicenseNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(license_number string) error {
			for _, fn := range fns {
				if err := fn(license_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescYearsOfExperience is the schema descriptor for years_of_experience field.
	doctorDescYearsOfExperience := doctorFields[3].Descriptor()
	// doctor.YearsOfExperienceValidator is a validator for the "years_of_experience" field. It is called by the builders before save.
	doctor.YearsOfExperienceValidator = doctorDescYearsOfExperience.Validators[0].(func(int) error)
	// doctorDescConsultationFee is the schema descriptor for consultation_fee field.
	doctorDescConsultationFee := doctorFields[7].Descriptor()
	// doctor.ConsultationFeeValidator is a validator for the "consultation_fee" field. It is called by the builders before save.
	doctor.ConsultationFeeValidator = doctorDescConsultationFee.Validators[0].(func(int64) error)
	// doctorDescIsAvailable is the schema descriptor for is_available field.
	doctorDescIsAvailable := doctorFields[8].Descriptor()
	// doctor.DefaultIsAvailable holds the default value on creation for the is_available field.
	doctor.DefaultIsAvailable = doctorDescIsAvailable.Default.(bool)
	// doctorDescProfileImageKey is the schema descriptor for profile_image_key field.
	doctorDescProfileImageKey := doctorFields[9].Descriptor()
	// doctor.ProfileImageKeyValidator is a validator for the "profile_image_key" field. It is called by the builders before save.
	doctor.ProfileImageKeyValidator = doctorDescProfileImageKey.Validators[0].(func(string) error)
	// doctorDescTwitterURL is the schema descriptor for twitter_url field.
	doctorDescTwitterURL := doctorFields[10].Descriptor()
	// doctor.TwitterURLValidator is a validator for the "twitter_url" field. It is called by the builders before save.
	doctor.TwitterURLValidator = doctorDescTwitterURL.Validators[0].(func(string) error)
	// doctorDescLinkedinURL is the schema descriptor for linkedin_url field.
	doctorDescLinkedinURL := doctorFields[11].Descriptor()
	// doctor.LinkedinURLValidator is a validator for the "linkedin_url" field. It is called by the builders before save.
	doctor.LinkedinURLValidator = doctorDescLinkedinURL.Validators[0].(func(string) error)
	// doctorDescFacebookURL is the schema descriptor for facebook_url field.
	doctorDescFacebookURL := doctorFields[12].Descriptor()
	// doctor.FacebookURLValidator is a validator for the "facebook_url" field. It is called by the builders before save.
	doctor.FacebookURLValidator = doctorDescFacebookURL.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	doctoravailabilityMixin := schema.DoctorAvailability{}.Mixin()
	doctoravailabilityMixinFields0 := doctoravailabilityMixin[0].Fields()
	_ = doctoravailabilityMixinFields0
	doctoravailabilityMixinFields1 := doctoravailabilityMixin[1].Fields()
	_ = doctoravailabilityMixinFields1
	doctoravailabilityFields := schema.DoctorAvailability{}.Fields()
	_ = doctoravailabilityFields
	// doctoravailabilityDescCreatedAt is the schema descriptor for created_at field.
	doctoravailabilityDescCreatedAt := doctoravailabilityMixinFields1[0].Descriptor()
	// doctoravailability.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctoravailability.DefaultCreatedAt = doctoravailabilityDescCreatedAt.Default.(func() time.Time)
	// doctoravailabilityDescDayOfWeek is the schema descriptor for day_of_week field.
	doctoravailabilityDescDayOfWeek := doctoravailabilityFields[1].Descriptor()
	// doctoravailability.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	doctoravailability.DayOfWeekValidator = func() func(int8) error {
		validators := doctoravailabilityDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctoravailabilityDescStartTime is the schema descriptor for start_time field.
	doctoravailabilityDescStartTime := doctoravailabilityFields[2].Descriptor()
	// doctoravailability.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	doctoravailability.StartTimeValidator = func() func(string) error {
		validators := doctoravailabilityDescStartTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_time string) error {
			for _, fn := range fns {
				if err := fn(start_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctoravailabilityDescEndTime is the schema descriptor for end_time field.
	doctoravailabilityDescEndTime := doctoravailabilityFields[3].Descriptor()
	// doctoravailability.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	doctoravailability.EndTimeValidator = func() func(string) error {
		validators := doctoravailabilityDescEndTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(end_time string) error {
			for _, fn := range fns {
				if err := fn(end_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctoravailabilityDescIsAvailable is the schema descriptor for is_available field.
	doctoravailabilityDescIsAvailable := doctoravailabilityFields[4].Descriptor()
	// doctoravailability.DefaultIsAvailable holds the default value on creation for the is_available field.
	doctoravailability.DefaultIsAvailable = doctoravailabilityDescIsAvailable.Default.(bool)
	// doctoravailabilityDescMaxPatients is the schema descriptor for max_patients field.
	doctoravailabilityDescMaxPatients := doctoravailabilityFields[5].Descriptor()
	// doctoravailability.DefaultMaxPatients holds the default value on creation for the max_patients field.
	doctoravailability.DefaultMaxPatients = doctoravailabilityDescMaxPatients.Default.(int)
	// doctoravailability.MaxPatientsValidator is a validator for the "max_patients" field. It is called by the builders before save.
	doctoravailability.MaxPatientsValidator = doctoravailabilityDescMaxPatients.Validators[0].(func(int) error)
	// doctoravailabilityDescID is the schema descriptor for id field.
	doctoravailabilityDescID := doctoravailabilityMixinFields0[0].Descriptor()
	// doctoravailability.DefaultID holds the default value on creation for the id field.
	doctoravailability.DefaultID = doctoravailabilityDescID.Default.(func() uuid.UUID)
	doctorleaveMixin := schema.DoctorLeave{}.Mixin()
	doctorleaveMixinFields0 := doctorleaveMixin[0].Fields()
	_ = doctorleaveMixinFields0
	doctorleaveMixinFields1 := doctorleaveMixin[1].Fields()
	_ = doctorleaveMixinFields1
	doctorleaveFields := schema.DoctorLeave{}.Fields()
	_ = doctorleaveFields
	// doctorleaveDescCreatedAt is the schema descriptor for created_at field.
	doctorleaveDescCreatedAt := doctorleaveMixinFields1[0].Descriptor()
	// doctorleave.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorleave.DefaultCreatedAt = doctorleaveDescCreatedAt.Default.(func() time.Time)
	// doctorleaveDescIsApproved is the schema descriptor for is_approved field.
	doctorleaveDescIsApproved := doctorleaveFields[5].Descriptor()
	// doctorleave.DefaultIsApproved holds the default value on creation for the is_approved field.
	doctorleave.DefaultIsApproved = doctorleaveDescIsApproved.Default.(bool)
	// doctorleaveDescID is the schema descriptor for id field.
	doctorleaveDescID := doctorleaveMixinFields0[0].Descriptor()
	// doctorleave.DefaultID holds the default value on creation for the id field.
	doctorleave.DefaultID = doctorleaveDescID.Default.(func() uuid.UUID)
	emailtemplateMixin := schema.EmailTemplate{}.Mixin()
	emailtemplateMixinFields0 := emailtemplateMixin[0].Fields()
	_ = emailtemplateMixinFields0
	emailtemplateMixinFields1 := emailtemplateMixin[1].Fields()
	_ = emailtemplateMixinFields1
	emailtemplateFields := schema.EmailTemplate{}.Fields()
	_ = emailtemplateFields
	// emailtemplateDescCreatedAt is the schema descriptor for created_at field.
	emailtemplateDescCreatedAt := emailtemplateMixinFields1[0].Descriptor()
	// emailtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailtemplate.DefaultCreatedAt = emailtemplateDescCreatedAt.Default.(func() time.Time)
	// emailtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	emailtemplateDescUpdatedAt := emailtemplateMixinFields1[1].Descriptor()
	// emailtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailtemplate.DefaultUpdatedAt = emailtemplateDescUpdatedAt.Default.(func() time.Time)
	// emailtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailtemplate.UpdateDefaultUpdatedAt = emailtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emailtemplateDescName is the schema descriptor for name field.
	emailtemplateDescName := emailtemplateFields[0].Descriptor()
	// emailtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	emailtemplate.NameValidator = func() func(string) error {
		validators := emailtemplateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescSubject is the schema descriptor for subject field.
	emailtemplateDescSubject := emailtemplateFields[2].Descriptor()
	// emailtemplate.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	emailtemplate.SubjectValidator = func() func(string) error {
		validators := emailtemplateDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// emailtemplateDescIsActive is the schema descriptor for is_active field.
	emailtemplateDescIsActive := emailtemplateFields[5].Descriptor()
	// emailtemplate.DefaultIsActive holds the default value on creation for the is_active field.
	emailtemplate.DefaultIsActive = emailtemplateDescIsActive.Default.(bool)
	// emailtemplateDescID is the schema descriptor for id field.
	emailtemplateDescID := emailtemplateMixinFields0[0].Descriptor()
	// emailtemplate.DefaultID holds the default value on creation for the id field.
	emailtemplate.DefaultID = emailtemplateDescID.Default.(func() uuid.UUID)
	holidayMixin := schema.Holiday{}.Mixin()
	holidayMixinFields0 := holidayMixin[0].Fields()
	_ = holidayMixinFields0
	holidayMixinFields1 := holidayMixin[1].Fields()
	_ = holidayMixinFields1
	holidayFields := schema.Holiday{}.Fields()
	_ = holidayFields
	// holidayDescCreatedAt is the schema descriptor for created_at field.
	holidayDescCreatedAt := holidayMixinFields1[0].Descriptor()
	// holiday.DefaultCreatedAt holds the default value on creation for the created_at field.
	holiday.DefaultCreatedAt = holidayDescCreatedAt.Default.(func() time.Time)
	// holidayDescName is the schema descriptor for name field.
	holidayDescName := holidayFields[0].Descriptor()
	// holiday.NameValidator is a validator for the "name" field. It is called by the builders before save.
	holiday.NameValidator = func() func(string) error {
		validators := holidayDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// holidayDescIsRecurring is the schema descriptor for is_recurring field.
	holidayDescIsRecurring := holidayFields[2].Descriptor()
	// holiday.DefaultIsRecurring holds the default value on creation for the is_recurring field.
	holiday.DefaultIsRecurring = holidayDescIsRecurring.Default.(bool)
	// holidayDescAffectsAppointments is the schema descriptor for affects_appointments field.
	holidayDescAffectsAppointments := holidayFields[4].Descriptor()
	// holiday.DefaultAffectsAppointments holds the default value on creation for the affects_appointments field.
	holiday.DefaultAffectsAppointments = holidayDescAffectsAppointments.Default.(bool)
	// holidayDescID is the schema descriptor for id field.
	holidayDescID := holidayMixinFields0[0].Descriptor()
	// holiday.DefaultID holds the default value on creation for the id field.
	holiday.DefaultID = holidayDescID.Default.(func() uuid.UUID)
	medicalhistoryMixin := schema.MedicalHistory{}.Mixin()
	medicalhistoryMixinFields0 := medicalhistoryMixin[0].Fields()
	_ = medicalhistoryMixinFields0
	medicalhistoryMixinFields1 := medicalhistoryMixin[1].Fields()
	_ = medicalhistoryMixinFields1
	medicalhistoryFields := schema.MedicalHistory{}.Fields()
	_ = medicalhistoryFields
	// medicalhistoryDescCreatedAt is the schema descriptor for created_at field.
	medicalhistoryDescCreatedAt := medicalhistoryMixinFields1[0].Descriptor()
	// medicalhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalhistory.DefaultCreatedAt = medicalhistoryDescCreatedAt.Default.(func() time.Time)
	// medicalhistoryDescUpdatedAt is the schema descriptor for updated_at field.
	medicalhistoryDescUpdatedAt := medicalhistoryMixinFields1[1].Descriptor()
	// medicalhistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalhistory.DefaultUpdatedAt = medicalhistoryDescUpdatedAt.Default.(func() time.Time)
	// medicalhistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalhistory.UpdateDefaultUpdatedAt = medicalhistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalhistoryDescConditionName is the schema descriptor for condition_name field.
	medicalhistoryDescConditionName := medicalhistoryFields[2].Descriptor()
	// medicalhistory.ConditionNameValidator is a validator for the "condition_name" field. It is called by the builders before save.
	medicalhistory.ConditionNameValidator = func() func(string) error {
		validators := medicalhistoryDescConditionName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(condition_name string) error {
			for _, fn := range fns {
				if err := fn(condition_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// medicalhistoryDescIsCurrent is the schema descriptor for is_current field.
	medicalhistoryDescIsCurrent := medicalhistoryFields[5].Descriptor()
	// medicalhistory.DefaultIsCurrent holds the default value on creation for the is_current field.
	medicalhistory.DefaultIsCurrent = medicalhistoryDescIsCurrent.Default.(bool)
	// medicalhistoryDescID is the schema descriptor for id field.
	medicalhistoryDescID := medicalhistoryMixinFields0[0].Descriptor()
	// medicalhistory.DefaultID holds the default value on creation for the id field.
	medicalhistory.DefaultID = medicalhistoryDescID.Default.(func() uuid.UUID)
	newsletterMixin := schema.Newsletter{}.Mixin()
	newsletterMixinFields0 := newsletterMixin[0].Fields()
	_ = newsletterMixinFields0
	newsletterMixinFields1 := newsletterMixin[1].Fields()
	_ = newsletterMixinFields1
	newsletterFields := schema.Newsletter{}.Fields()
	_ = newsletterFields
	// newsletterDescCreatedAt is the schema descriptor for created_at field.
	newsletterDescCreatedAt := newsletterMixinFields1[0].Descriptor()
	// newsletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	newsletter.DefaultCreatedAt = newsletterDescCreatedAt.Default.(func() time.Time)
	// newsletterDescUpdatedAt is the schema descriptor for updated_at field.
	newsletterDescUpdatedAt := newsletterMixinFields1[1].Descriptor()
	// newsletter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	newsletter.DefaultUpdatedAt = newsletterDescUpdatedAt.Default.(func() time.Time)
	// newsletter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	newsletter.UpdateDefaultUpdatedAt = newsletterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// newsletterDescTitle is the schema descriptor for title field.
	newsletterDescTitle := newsletterFields[0].Descriptor()
	// newsletter.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	newsletter.TitleValidator = func() func(string) error {
		validators := newsletterDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// newsletterDescSubject is the schema descriptor for subject field.
	newsletterDescSubject := newsletterFields[1].Descriptor()
	// newsletter.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	newsletter.SubjectValidator = func() func(string) error {
		validators := newsletterDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// newsletterDescID is the schema descriptor for id field.
	newsletterDescID := newsletterMixinFields0[0].Descriptor()
	// newsletter.DefaultID holds the default value on creation for the id field.
	newsletter.DefaultID = newsletterDescID.Default.(func() uuid.UUID)
	newslettercampaignMixin := schema.NewsletterCampaign{}.Mixin()
	newslettercampaignMixinFields0 := newslettercampaignMixin[0].Fields()
	_ = newslettercampaignMixinFields0
	newslettercampaignMixinFields1 := newslettercampaignMixin[1].Fields()
	_ = newslettercampaignMixinFields1
	newslettercampaignFields := schema.NewsletterCampaign{}.Fields()
	_ = newslettercampaignFields
	// newslettercampaignDescCreatedAt is the schema descriptor for created_at field.
	newslettercampaignDescCreatedAt := newslettercampaignMixinFields1[0].Descriptor()
	// newslettercampaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	newslettercampaign.DefaultCreatedAt = newslettercampaignDescCreatedAt.Default.(func() time.Time)
	// newslettercampaignDescSentCount is the schema descriptor for sent_count field.
	newslettercampaignDescSentCount := newslettercampaignFields[1].Descriptor()
	// newslettercampaign.DefaultSentCount holds the default value on creation for the sent_count field.
	newslettercampaign.DefaultSentCount = newslettercampaignDescSentCount.Default.(int)
	// newslettercampaign.SentCountValidator is a validator for the "sent_count" field. It is called by the builders before save.
	newslettercampaign.SentCountValidator = newslettercampaignDescSentCount.Validators[0].(func(int) error)
	// newslettercampaignDescOpenCount is the schema descriptor for open_count field.
	newslettercampaignDescOpenCount := newslettercampaignFields[2].Descriptor()
	// newslettercampaign.DefaultOpenCount holds the default value on creation for the open_count field.
	newslettercampaign.DefaultOpenCount = newslettercampaignDescOpenCount.Default.(int)
	// newslettercampaign.OpenCountValidator is a validator for the "open_count" field. It is called by the builders before save.
	newslettercampaign.OpenCountValidator = newslettercampaignDescOpenCount.Validators[0].(func(int) error)
	// newslettercampaignDescClickCount is the schema descriptor for click_count field.
	newslettercampaignDescClickCount := newslettercampaignFields[3].Descriptor()
	// newslettercampaign.DefaultClickCount holds the default value on creation for the click_count field.
	newslettercampaign.DefaultClickCount = newslettercampaignDescClickCount.Default.(int)
	// newslettercampaign.ClickCountValidator is a validator for the "click_count" field. It is called by the builders before save.
	newslettercampaign.ClickCountValidator = newslettercampaignDescClickCount.Validators[0].(func(int) error)
	// newslettercampaignDescID is the schema descriptor for id field.
	newslettercampaignDescID := newslettercampaignMixinFields0[0].Descriptor()
	// newslettercampaign.DefaultID holds the default value on creation for the id field.
	newslettercampaign.DefaultID = newslettercampaignDescID.Default.(func() uuid.UUID)
	newslettersubscriberMixin := schema.NewsletterSubscriber{}.Mixin()
	newslettersubscriberMixinFields0 := newslettersubscriberMixin[0].Fields()
	_ = newslettersubscriberMixinFields0
	newslettersubscriberFields := schema.NewsletterSubscriber{}.Fields()
	_ = newslettersubscriberFields
	// newslettersubscriberDescEmail is the schema descriptor for email field.
	newslettersubscriberDescEmail := newslettersubscriberFields[0].Descriptor()
	// newslettersubscriber.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	newslettersubscriber.EmailValidator = func() func(string) error {
		validators := newslettersubscriberDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// newslettersubscriberDescFirstName is the schema descriptor for first_name field.
	newslettersubscriberDescFirstName := newslettersubscriberFields[1].Descriptor()
	// newslettersubscriber.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	newslettersubscriber.FirstNameValidator = newslettersubscriberDescFirstName.Validators[0].(func(string) error)
	// newslettersubscriberDescLastName is the schema descriptor for last_name field.
	newslettersubscriberDescLastName := newslettersubscriberFields[2].Descriptor()
	// newslettersubscriber.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	newslettersubscriber.LastNameValidator = newslettersubscriberDescLastName.Validators[0].(func(string) error)
	// newslettersubscriberDescIsActive is the schema descriptor for is_active field.
	newslettersubscriberDescIsActive := newslettersubscriberFields[3].Descriptor()
	// newslettersubscriber.DefaultIsActive holds the default value on creation for the is_active field.
	newslettersubscriber.DefaultIsActive = newslettersubscriberDescIsActive.Default.(bool)
	// newslettersubscriberDescUnsubscribeToken is the schema descriptor for unsubscribe_token field.
	newslettersubscriberDescUnsubscribeToken := newslettersubscriberFields[4].Descriptor()
	// newslettersubscriber.UnsubscribeTokenValidator is a validator for the "unsubscribe_token" field. It is called by the builders before save.
	newslettersubscriber.UnsubscribeTokenValidator = newslettersubscriberDescUnsubscribeToken.Validators[0].(func(string) error)
	// newslettersubscriberDescID is the schema descriptor for id field.
	newslettersubscriberDescID := newslettersubscriberMixinFields0[0].Descriptor()
	// newslettersubscriber.DefaultID holds the default value on creation for the id field.
	newslettersubscriber.DefaultID = newslettersubscriberDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescPatientID is the schema descriptor for patient_id field.
	patientDescPatientID := patientFields[1].Descriptor()
	// patient.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	patient.PatientIDValidator = func() func(string) error {
		validators := patientDescPatientID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_id string) error {
			for _, fn := range fns {
				if err := fn(patient_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescMiddleName is the schema descriptor for middle_name field.
	patientDescMiddleName := patientFields[2].Descriptor()
	// patient.MiddleNameValidator is a validator for the "middle_name" field. It is called by the builders before save.
	patient.MiddleNameValidator = patientDescMiddleName.Validators[0].(func(string) error)
	// patientDescPreferredName is the schema descriptor for preferred_name field.
	patientDescPreferredName := patientFields[3].Descriptor()
	// patient.PreferredNameValidator is a validator for the "preferred_name" field. It is called by the builders before save.
	patient.PreferredNameValidator = patientDescPreferredName.Validators[0].(func(string) error)
	// patientDescOccupation is the schema descriptor for occupation field.
	patientDescOccupation := patientFields[4].Descriptor()
	// patient.OccupationValidator is a validator for the "occupation" field. It is called by the builders before save.
	patient.OccupationValidator = patientDescOccupation.Validators[0].(func(string) error)
	// patientDescPreferredLanguage is the schema descriptor for preferred_language field.
	patientDescPreferredLanguage := patientFields[10].Descriptor()
	// patient.DefaultPreferredLanguage holds the default value on creation for the preferred_language field.
	patient.DefaultPreferredLanguage = patientDescPreferredLanguage.Default.(string)
	// patient.PreferredLanguageValidator is a validator for the "preferred_language" field. It is called by the builders before save.
	patient.PreferredLanguageValidator = patientDescPreferredLanguage.Validators[0].(func(string) error)
	// patientDescInsuranceProvider is the schema descriptor for insurance_provider field.
	patientDescInsuranceProvider := patientFields[11].Descriptor()
	// patient.InsuranceProviderValidator is a validator for the "insurance_provider" field. It is called by the builders before save.
	patient.InsuranceProviderValidator = patientDescInsuranceProvider.Validators[0].(func(string) error)
	// patientDescInsuranceNumber is the schema descriptor for insurance_number field.
	patientDescInsuranceNumber := patientFields[12].Descriptor()
	// patient.InsuranceNumberValidator is a validator for the "insurance_number" field. It is called by the builders before save.
	patient.InsuranceNumberValidator = patientDescInsuranceNumber.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[16].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientdocumentMixin := schema.PatientDocument{}.Mixin()
	patientdocumentMixinFields0 := patientdocumentMixin[0].Fields()
	_ = patientdocumentMixinFields0
	patientdocumentMixinFields1 := patientdocumentMixin[1].Fields()
	_ = patientdocumentMixinFields1
	patientdocumentFields := schema.PatientDocument{}.Fields()
	_ = patientdocumentFields
	// patientdocumentDescCreatedAt is the schema descriptor for created_at field.
	patientdocumentDescCreatedAt := patientdocumentMixinFields1[0].Descriptor()
	// patientdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientdocument.DefaultCreatedAt = patientdocumentDescCreatedAt.Default.(func() time.Time)
	// patientdocumentDescTitle is the schema descriptor for title field.
	patientdocumentDescTitle := patientdocumentFields[2].Descriptor()
	// patientdocument.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	patientdocument.TitleValidator = func() func(string) error {
		validators := patientdocumentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientdocumentDescFileKey is the schema descriptor for file_key field.
	patientdocumentDescFileKey := patientdocumentFields[3].Descriptor()
	// patientdocument.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	patientdocument.FileKeyValidator = func() func(string) error {
		validators := patientdocumentDescFileKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_key string) error {
			for _, fn := range fns {
				if err := fn(file_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientdocumentDescIsSensitive is the schema descriptor for is_sensitive field.
	patientdocumentDescIsSensitive := patientdocumentFields[6].Descriptor()
	// patientdocument.DefaultIsSensitive holds the default value on creation for the is_sensitive field.
	patientdocument.DefaultIsSensitive = patientdocumentDescIsSensitive.Default.(bool)
	// patientdocumentDescID is the schema descriptor for id field.
	patientdocumentDescID := patientdocumentMixinFields0[0].Descriptor()
	// patientdocument.DefaultID holds the default value on creation for the id field.
	patientdocument.DefaultID = patientdocumentDescID.Default.(func() uuid.UUID)
	smstemplateMixin := schema.SMSTemplate{}.Mixin()
	smstemplateMixinFields0 := smstemplateMixin[0].Fields()
	_ = smstemplateMixinFields0
	smstemplateMixinFields1 := smstemplateMixin[1].Fields()
	_ = smstemplateMixinFields1
	smstemplateFields := schema.SMSTemplate{}.Fields()
	_ = smstemplateFields
	// smstemplateDescCreatedAt is the schema descriptor for created_at field.
	smstemplateDescCreatedAt := smstemplateMixinFields1[0].Descriptor()
	// smstemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	smstemplate.DefaultCreatedAt = smstemplateDescCreatedAt.Default.(func() time.Time)
	// smstemplateDescUpdatedAt is the schema descriptor for updated_at field.
	smstemplateDescUpdatedAt := smstemplateMixinFields1[1].Descriptor()
	// smstemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	smstemplate.DefaultUpdatedAt = smstemplateDescUpdatedAt.Default.(func() time.Time)
	// smstemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	smstemplate.UpdateDefaultUpdatedAt = smstemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// smstemplateDescName is the schema descriptor for name field.
	smstemplateDescName := smstemplateFields[0].Descriptor()
	// smstemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	smstemplate.NameValidator = func() func(string) error {
		validators := smstemplateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// smstemplateDescBody is the schema descriptor for body field.
	smstemplateDescBody := smstemplateFields[2].Descriptor()
	// smstemplate.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	smstemplate.BodyValidator = func() func(string) error {
		validators := smstemplateDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// smstemplateDescIsActive is the schema descriptor for is_active field.
	smstemplateDescIsActive := smstemplateFields[3].Descriptor()
	// smstemplate.DefaultIsActive holds the default value on creation for the is_active field.
	smstemplate.DefaultIsActive = smstemplateDescIsActive.Default.(bool)
	// smstemplateDescID is the schema descriptor for id field.
	smstemplateDescID := smstemplateMixinFields0[0].Descriptor()
	// smstemplate.DefaultID holds the default value on creation for the id field.
	smstemplate.DefaultID = smstemplateDescID.Default.(func() uuid.UUID)
	serviceMixin := schema.Service{}.Mixin()
	serviceMixinFields0 := serviceMixin[0].Fields()
	_ = serviceMixinFields0
	serviceMixinFields1 := serviceMixin[1].Fields()
	_ = serviceMixinFields1
	serviceFields := schema.Service{}.Fields()
	_ = serviceFields
	// serviceDescCreatedAt is the schema descriptor for created_at field.
	serviceDescCreatedAt := serviceMixinFields1[0].Descriptor()
	// service.DefaultCreatedAt holds the default value on creation for the created_at field.
	service.DefaultCreatedAt = serviceDescCreatedAt.Default.(func() time.Time)
	// serviceDescUpdatedAt is the schema descriptor for updated_at field.
	serviceDescUpdatedAt := serviceMixinFields1[1].Descriptor()
	// service.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	service.DefaultUpdatedAt = serviceDescUpdatedAt.Default.(func() time.Time)
	// service.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	service.UpdateDefaultUpdatedAt = serviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceDescName is the schema descriptor for name field.
	serviceDescName := serviceFields[0].Descriptor()
	// service.NameValidator is a validator for the "name" field. It is called by the builders before save.
	service.NameValidator = func() func(string) error {
		validators := serviceDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceDescSlug is the schema descriptor for slug field.
	serviceDescSlug := serviceFields[1].Descriptor()
	// service.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	service.SlugValidator = func() func(string) error {
		validators := serviceDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceDescShortDescription is the schema descriptor for short_description field.
	serviceDescShortDescription := serviceFields[3].Descriptor()
	// service.ShortDescriptionValidator is a validator for the "short_description" field. It is called by the builders before save.
	service.ShortDescriptionValidator = serviceDescShortDescription.Validators[0].(func(string) error)
	// serviceDescPrice is the schema descriptor for price field.
	serviceDescPrice := serviceFields[5].Descriptor()
	// service.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	service.PriceValidator = serviceDescPrice.Validators[0].(func(int64) error)
	// serviceDescDurationMin is the schema descriptor for duration_min field.
	serviceDescDurationMin := serviceFields[6].Descriptor()
	// service.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	service.DurationMinValidator = serviceDescDurationMin.Validators[0].(func(int) error)
	// serviceDescIsConsultationRequired is the schema descriptor for is_consultation_required field.
	serviceDescIsConsultationRequired := serviceFields[10].Descriptor()
	// service.DefaultIsConsultationRequired holds the default value on creation for the is_consultation_required field.
	service.DefaultIsConsultationRequired = serviceDescIsConsultationRequired.Default.(bool)
	// serviceDescRequiresReferral is the schema descriptor for requires_referral field.
	serviceDescRequiresReferral := serviceFields[11].Descriptor()
	// service.DefaultRequiresReferral holds the default value on creation for the requires_referral field.
	service.DefaultRequiresReferral = serviceDescRequiresReferral.Default.(bool)
	// serviceDescIsActive is the schema descriptor for is_active field.
	serviceDescIsActive := serviceFields[14].Descriptor()
	// service.DefaultIsActive holds the default value on creation for the is_active field.
	service.DefaultIsActive = serviceDescIsActive.Default.(bool)
	// serviceDescIsFeatured is the schema descriptor for is_featured field.
	serviceDescIsFeatured := serviceFields[15].Descriptor()
	// service.DefaultIsFeatured holds the default value on creation for the is_featured field.
	service.DefaultIsFeatured = serviceDescIsFeatured.Default.(bool)
	// serviceDescAvailableOnline is the schema descriptor for available_online field.
	serviceDescAvailableOnline := serviceFields[16].Descriptor()
	// service.DefaultAvailableOnline holds the default value on creation for the available_online field.
	service.DefaultAvailableOnline = serviceDescAvailableOnline.Default.(bool)
	// serviceDescMetaDescription is the schema descriptor for meta_description field.
	serviceDescMetaDescription := serviceFields[17].Descriptor()
	// service.MetaDescriptionValidator is a validator for the "meta_description" field. It is called by the builders before save.
	service.MetaDescriptionValidator = serviceDescMetaDescription.Validators[0].(func(string) error)
	// serviceDescImageKey is the schema descriptor for image_key field.
	serviceDescImageKey := serviceFields[18].Descriptor()
	// service.ImageKeyValidator is a validator for the "image_key" field. It is called by the builders before save.
	service.ImageKeyValidator = serviceDescImageKey.Validators[0].(func(string) error)
	// serviceDescID is the schema descriptor for id field.
	serviceDescID := serviceMixinFields0[0].Descriptor()
	// service.DefaultID holds the default value on creation for the id field.
	service.DefaultID = serviceDescID.Default.(func() uuid.UUID)
	servicecategoryMixin := schema.ServiceCategory{}.Mixin()
	servicecategoryMixinFields0 := servicecategoryMixin[0].Fields()
	_ = servicecategoryMixinFields0
	servicecategoryMixinFields1 := servicecategoryMixin[1].Fields()
	_ = servicecategoryMixinFields1
	servicecategoryFields := schema.ServiceCategory{}.Fields()
	_ = servicecategoryFields
	// servicecategoryDescCreatedAt is the schema descriptor for created_at field.
	servicecategoryDescCreatedAt := servicecategoryMixinFields1[0].Descriptor()
	// servicecategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicecategory.DefaultCreatedAt = servicecategoryDescCreatedAt.Default.(func() time.Time)
	// servicecategoryDescName is the schema descriptor for name field.
	servicecategoryDescName := servicecategoryFields[0].Descriptor()
	// servicecategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	servicecategory.NameValidator = func() func(string) error {
		validators := servicecategoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicecategoryDescSlug is the schema descriptor for slug field.
	servicecategoryDescSlug := servicecategoryFields[1].Descriptor()
	// servicecategory.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	servicecategory.SlugValidator = func() func(string) error {
		validators := servicecategoryDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicecategoryDescIcon is the schema descriptor for icon field.
	servicecategoryDescIcon := servicecategoryFields[3].Descriptor()
	// servicecategory.IconValidator is a validator for the "icon" field. It is called by the builders before save.
	servicecategory.IconValidator = servicecategoryDescIcon.Validators[0].(func(string) error)
	// servicecategoryDescIsActive is the schema descriptor for is_active field.
	servicecategoryDescIsActive := servicecategoryFields[4].Descriptor()
	// servicecategory.DefaultIsActive holds the default value on creation for the is_active field.
	servicecategory.DefaultIsActive = servicecategoryDescIsActive.Default.(bool)
	// servicecategoryDescDisplayOrder is the schema descriptor for display_order field.
	servicecategoryDescDisplayOrder := servicecategoryFields[5].Descriptor()
	// servicecategory.DefaultDisplayOrder holds the default value on creation for the display_order field.
	servicecategory.DefaultDisplayOrder = servicecategoryDescDisplayOrder.Default.(int)
	// servicecategory.DisplayOrderValidator is a validator for the "display_order" field. It is called by the builders before save.
	servicecategory.DisplayOrderValidator = servicecategoryDescDisplayOrder.Validators[0].(func(int) error)
	// servicecategoryDescID is the schema descriptor for id field.
	servicecategoryDescID := servicecategoryMixinFields0[0].Descriptor()
	// servicecategory.DefaultID holds the default value on creation for the id field.
	servicecategory.DefaultID = servicecategoryDescID.Default.(func() uuid.UUID)
	servicedoctorspecialtyMixin := schema.ServiceDoctorSpecialty{}.Mixin()
	servicedoctorspecialtyMixinFields0 := servicedoctorspecialtyMixin[0].Fields()
	_ = servicedoctorspecialtyMixinFields0
	servicedoctorspecialtyMixinFields1 := servicedoctorspecialtyMixin[1].Fields()
	_ = servicedoctorspecialtyMixinFields1
	servicedoctorspecialtyFields := schema.ServiceDoctorSpecialty{}.Fields()
	_ = servicedoctorspecialtyFields
	// servicedoctorspecialtyDescCreatedAt is the schema descriptor for created_at field.
	servicedoctorspecialtyDescCreatedAt := servicedoctorspecialtyMixinFields1[0].Descriptor()
	// servicedoctorspecialty.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicedoctorspecialty.DefaultCreatedAt = servicedoctorspecialtyDescCreatedAt.Default.(func() time.Time)
	// servicedoctorspecialtyDescIsPreferredProvider is the schema descriptor for is_preferred_provider field.
	servicedoctorspecialtyDescIsPreferredProvider := servicedoctorspecialtyFields[3].Descriptor()
	// servicedoctorspecialty.DefaultIsPreferredProvider holds the default value on creation for the is_preferred_provider field.
	servicedoctorspecialty.DefaultIsPreferredProvider = servicedoctorspecialtyDescIsPreferredProvider.Default.(bool)
	// servicedoctorspecialtyDescID is the schema descriptor for id field.
	servicedoctorspecialtyDescID := servicedoctorspecialtyMixinFields0[0].Descriptor()
	// servicedoctorspecialty.DefaultID holds the default value on creation for the id field.
	servicedoctorspecialty.DefaultID = servicedoctorspecialtyDescID.Default.(func() uuid.UUID)
	servicepackageMixin := schema.ServicePackage{}.Mixin()
	servicepackageMixinFields0 := servicepackageMixin[0].Fields()
	_ = servicepackageMixinFields0
	servicepackageMixinFields1 := servicepackageMixin[1].Fields()
	_ = servicepackageMixinFields1
	servicepackageFields := schema.ServicePackage{}.Fields()
	_ = servicepackageFields
	// servicepackageDescCreatedAt is the schema descriptor for created_at field.
	servicepackageDescCreatedAt := servicepackageMixinFields1[0].Descriptor()
	// servicepackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicepackage.DefaultCreatedAt = servicepackageDescCreatedAt.Default.(func() time.Time)
	// servicepackageDescUpdatedAt is the schema descriptor for updated_at field.
	servicepackageDescUpdatedAt := servicepackageMixinFields1[1].Descriptor()
	// servicepackage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	servicepackage.DefaultUpdatedAt = servicepackageDescUpdatedAt.Default.(func() time.Time)
	// servicepackage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	servicepackage.UpdateDefaultUpdatedAt = servicepackageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// servicepackageDescName is the schema descriptor for name field.
	servicepackageDescName := servicepackageFields[0].Descriptor()
	// servicepackage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	servicepackage.NameValidator = func() func(string) error {
		validators := servicepackageDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicepackageDescSlug is the schema descriptor for slug field.
	servicepackageDescSlug := servicepackageFields[1].Descriptor()
	// servicepackage.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	servicepackage.SlugValidator = func() func(string) error {
		validators := servicepackageDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicepackageDescOriginalPrice is the schema descriptor for original_price field.
	servicepackageDescOriginalPrice := servicepackageFields[3].Descriptor()
	// servicepackage.OriginalPriceValidator is a validator for the "original_price" field. It is called by the builders before save.
	servicepackage.OriginalPriceValidator = servicepackageDescOriginalPrice.Validators[0].(func(int64) error)
	// servicepackageDescPackagePrice is the schema descriptor for package_price field.
	servicepackageDescPackagePrice := servicepackageFields[4].Descriptor()
	// servicepackage.PackagePriceValidator is a validator for the "package_price" field. It is called by the builders before save.
	servicepackage.PackagePriceValidator = servicepackageDescPackagePrice.Validators[0].(func(int64) error)
	// servicepackageDescValidityDays is the schema descriptor for validity_days field.
	servicepackageDescValidityDays := servicepackageFields[5].Descriptor()
	// servicepackage.DefaultValidityDays holds the default value on creation for the validity_days field.
	servicepackage.DefaultValidityDays = servicepackageDescValidityDays.Default.(int)
	// servicepackage.ValidityDaysValidator is a validator for the "validity_days" field. It is called by the builders before save.
	servicepackage.ValidityDaysValidator = servicepackageDescValidityDays.Validators[0].(func(int) error)
	// servicepackageDescIsActive is the schema descriptor for is_active field.
	servicepackageDescIsActive := servicepackageFields[6].Descriptor()
	// servicepackage.DefaultIsActive holds the default value on creation for the is_active field.
	servicepackage.DefaultIsActive = servicepackageDescIsActive.Default.(bool)
	// servicepackageDescImageKey is the schema descriptor for image_key field.
	servicepackageDescImageKey := servicepackageFields[7].Descriptor()
	// servicepackage.ImageKeyValidator is a validator for the "image_key" field. It is called by the builders before save.
	servicepackage.ImageKeyValidator = servicepackageDescImageKey.Validators[0].(func(string) error)
	// servicepackageDescID is the schema descriptor for id field.
	servicepackageDescID := servicepackageMixinFields0[0].Descriptor()
	// servicepackage.DefaultID holds the default value on creation for the id field.
	servicepackage.DefaultID = servicepackageDescID.Default.(func() uuid.UUID)
	specializationMixin := schema.Specialization{}.Mixin()
	specializationMixinFields0 := specializationMixin[0].Fields()
	_ = specializationMixinFields0
	specializationMixinFields1 := specializationMixin[1].Fields()
	_ = specializationMixinFields1
	specializationFields := schema.Specialization{}.Fields()
	_ = specializationFields
	// specializationDescCreatedAt is the schema descriptor for created_at field.
	specializationDescCreatedAt := specializationMixinFields1[0].Descriptor()
	// specialization.DefaultCreatedAt holds the default value on creation for the created_at field.
	specialization.DefaultCreatedAt = specializationDescCreatedAt.Default.(func() time.Time)
	// specializationDescName is the schema descriptor for name field.
	specializationDescName := specializationFields[0].Descriptor()
	// specialization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	specialization.NameValidator = func() func(string) error {
		validators := specializationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// specializationDescID is the schema descriptor for id field.
	specializationDescID := specializationMixinFields0[0].Descriptor()
	// specialization.DefaultID holds the default value on creation for the id field.
	specialization.DefaultID = specializationDescID.Default.(func() uuid.UUID)
	testimonialMixin := schema.Testimonial{}.Mixin()
	testimonialMixinFields0 := testimonialMixin[0].Fields()
	_ = testimonialMixinFields0
	testimonialMixinFields1 := testimonialMixin[1].Fields()
	_ = testimonialMixinFields1
	testimonialFields := schema.Testimonial{}.Fields()
	_ = testimonialFields
	// testimonialDescCreatedAt is the schema descriptor for created_at field.
	testimonialDescCreatedAt := testimonialMixinFields1[0].Descriptor()
	// testimonial.DefaultCreatedAt holds the default value on creation for the created_at field.
	testimonial.DefaultCreatedAt = testimonialDescCreatedAt.Default.(func() time.Time)
	// testimonialDescUpdatedAt is the schema descriptor for updated_at field.
	testimonialDescUpdatedAt := testimonialMixinFields1[1].Descriptor()
	// testimonial.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testimonial.DefaultUpdatedAt = testimonialDescUpdatedAt.Default.(func() time.Time)
	// testimonial.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testimonial.UpdateDefaultUpdatedAt = testimonialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testimonialDescContent is the schema descriptor for content field.
	testimonialDescContent := testimonialFields[1].Descriptor()
	// testimonial.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	testimonial.ContentValidator = testimonialDescContent.Validators[0].(func(string) error)
	// testimonialDescRating is the schema descriptor for rating field.
	testimonialDescRating := testimonialFields[2].Descriptor()
	// testimonial.DefaultRating holds the default value on creation for the rating field.
	testimonial.DefaultRating = testimonialDescRating.Default.(int)
	// testimonial.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	testimonial.RatingValidator = func() func(int) error {
		validators := testimonialDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testimonialDescImageKey is the schema descriptor for image_key field.
	testimonialDescImageKey := testimonialFields[6].Descriptor()
	// testimonial.ImageKeyValidator is a validator for the "image_key" field. It is called by the builders before save.
	testimonial.ImageKeyValidator = testimonialDescImageKey.Validators[0].(func(string) error)
	// testimonialDescID is the schema descriptor for id field.
	testimonialDescID := testimonialMixinFields0[0].Descriptor()
	// testimonial.DefaultID holds the default value on creation for the id field.
	testimonial.DefaultID = testimonialDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[1].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[2].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescProfilePictureKey is the schema descriptor for profile_picture_key field.
	userDescProfilePictureKey := userFields[6].Descriptor()
	// user.ProfilePictureKeyValidator is a validator for the "profile_picture_key" field. It is called by the builders before save.
	user.ProfilePictureKeyValidator = userDescProfilePictureKey.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[8].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	userprofileMixin := schema.UserProfile{}.Mixin()
	userprofileMixinFields0 := userprofileMixin[0].Fields()
	_ = userprofileMixinFields0
	userprofileMixinFields1 := userprofileMixin[1].Fields()
	_ = userprofileMixinFields1
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileMixinFields1[0].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileMixinFields1[1].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprofileDescCity is the schema descriptor for city field.
	userprofileDescCity := userprofileFields[3].Descriptor()
	// userprofile.CityValidator is a validator for the "city" field. It is called by the builders before save.
	userprofile.CityValidator = userprofileDescCity.Validators[0].(func(string) error)
	// userprofileDescEmergencyContactName is the schema descriptor for emergency_contact_name field.
	userprofileDescEmergencyContactName := userprofileFields[4].Descriptor()
	// userprofile.EmergencyContactNameValidator is a validator for the "emergency_contact_name" field. It is called by the builders before save.
	userprofile.EmergencyContactNameValidator = userprofileDescEmergencyContactName.Validators[0].(func(string) error)
	// userprofileDescEmergencyContactPhone is the schema descriptor for emergency_contact_phone field.
	userprofileDescEmergencyContactPhone := userprofileFields[5].Descriptor()
	// userprofile.EmergencyContactPhoneValidator is a validator for the "emergency_contact_phone" field. It is called by the builders before save.
	userprofile.EmergencyContactPhoneValidator = userprofileDescEmergencyContactPhone.Validators[0].(func(string) error)
	// userprofileDescEmergencyContactRelationship is the schema descriptor for emergency_contact_relationship field.
	userprofileDescEmergencyContactRelationship := userprofileFields[6].Descriptor()
	// userprofile.EmergencyContactRelationshipValidator is a validator for the "emergency_contact_relationship" field. It is called by the builders before save.
	userprofile.EmergencyContactRelationshipValidator = userprofileDescEmergencyContactRelationship.Validators[0].(func(string) error)
	// userprofileDescID is the schema descriptor for id field.
	userprofileDescID := userprofileMixinFields0[0].Descriptor()
	// userprofile.DefaultID holds the default value on creation for the id field.
	userprofile.DefaultID = userprofileDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
	waitinglistMixin := schema.WaitingList{}.Mixin()
	waitinglistMixinFields0 := waitinglistMixin[0].Fields()
	_ = waitinglistMixinFields0
	waitinglistMixinFields1 := waitinglistMixin[1].Fields()
	_ = waitinglistMixinFields1
	waitinglistFields := schema.WaitingList{}.Fields()
	_ = waitinglistFields
	// waitinglistDescCreatedAt is the schema descriptor for created_at field.
	waitinglistDescCreatedAt := waitinglistMixinFields1[0].Descriptor()
	// waitinglist.DefaultCreatedAt holds the default value on creation for the created_at field.
	waitinglist.DefaultCreatedAt = waitinglistDescCreatedAt.Default.(func() time.Time)
	// waitinglistDescPreferredTime is the schema descriptor for preferred_time field.
	waitinglistDescPreferredTime := waitinglistFields[4].Descriptor()
	// waitinglist.PreferredTimeValidator is a validator for the "preferred_time" field. It is called by the builders before save.
	waitinglist.PreferredTimeValidator = waitinglistDescPreferredTime.Validators[0].(func(string) error)
	// waitinglistDescIsActive is the schema descriptor for is_active field.
	waitinglistDescIsActive := waitinglistFields[8].Descriptor()
	// waitinglist.DefaultIsActive holds the default value on creation for the is_active field.
	waitinglist.DefaultIsActive = waitinglistDescIsActive.Default.(bool)
	// waitinglistDescNotified is the schema descriptor for notified field.
	waitinglistDescNotified := waitinglistFields[9].Descriptor()
	// waitinglist.DefaultNotified holds the default value on creation for the notified field.
	waitinglist.DefaultNotified = waitinglistDescNotified.Default.(bool)
	// waitinglistDescID is the schema descriptor for id field.
	waitinglistDescID := waitinglistMixinFields0[0].Descriptor()
	// waitinglist.DefaultID holds the default value on creation for the id field.
	waitinglist.DefaultID = waitinglistDescID.Default.(func() uuid.UUID)
}
