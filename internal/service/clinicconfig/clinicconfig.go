package clinicconfig

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	enthours "github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	entsettings "github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	entemail "github.com/muchiri-dev/dermacare_backend/internal/repo/emailtemplate"
	entholiday "github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
	entsms "github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type InitRequest struct {
	ClinicName   string
	Phone        string
	Email        string
	AddressLine1 string
	City         string
	Timezone     *string
	Currency     *string
}

type UpdateRequest struct {
	ClinicName  *string
	Tagline     *string
	Description *string
	LogoKey     *string
	FaviconKey  *string

	Phone   *string
	Email   *string
	Website *string

	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string

	FacebookURL  *string
	TwitterURL   *string
	InstagramURL *string
	LinkedinURL  *string
	YoutubeURL   *string

	Timezone *string

	AppointmentBufferMin      *int
	MaxAdvanceBookingDays     *int
	MinAdvanceBookingHours    *int
	CancellationDeadlineHours *int

	SendAppointmentConfirmations *bool
	SendAppointmentReminders     *bool
	ReminderHoursBefore          *int
	SendFollowUpReminders        *bool

	Currency       *string
	TaxRatePercent *int

	EmergencyPhone *string
	EmergencyEmail *string

	MaintenanceMode    *bool
	MaintenanceMessage *string
}

type BusinessHoursRequest struct {
	DayOfWeek   int8 // 0=Monday .. 6=Sunday
	IsOpen      bool
	OpeningTime *string
	ClosingTime *string
	LunchBreak  *bool
	LunchStart  *string
	LunchEnd    *string
	Notes       *string
}

type HolidayRequest struct {
	Name                string
	Date                time.Time
	IsRecurring         bool
	Description         *string
	AffectsAppointments *bool
}

type EmailTemplateRequest struct {
	Name          string
	TemplateType  string
	Subject       string
	BodyHTML      string
	BodyText      string
	IsActive      *bool
	VariablesHelp *string
}

type SMSTemplateRequest struct {
	Name          string
	TemplateType  string
	Body          string
	IsActive      *bool
	VariablesHelp *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Settings (singleton)
	InitSettings(ctx context.Context, req InitRequest) (*repo.ClinicSettings, error)
	GetSettings(ctx context.Context) (*repo.ClinicSettings, error)
	UpdateSettings(ctx context.Context, req UpdateRequest) (*repo.ClinicSettings, error)

	// Business hours
	UpsertBusinessHours(ctx context.Context, req BusinessHoursRequest) (*repo.BusinessHours, error)
	ListBusinessHours(ctx context.Context) ([]*repo.BusinessHours, error)

	// Holidays
	CreateHoliday(ctx context.Context, req HolidayRequest) (*repo.Holiday, error)
	ListHolidays(ctx context.Context) ([]*repo.Holiday, error)
	DeleteHoliday(ctx context.Context, holidayID uuid.UUID) error

	// Message templates
	UpsertEmailTemplate(ctx context.Context, req EmailTemplateRequest) (*repo.EmailTemplate, error)
	GetEmailTemplate(ctx context.Context, templateType string) (*repo.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context) ([]*repo.EmailTemplate, error)
	UpsertSMSTemplate(ctx context.Context, req SMSTemplateRequest) (*repo.SMSTemplate, error)
	GetSMSTemplate(ctx context.Context, templateType string) (*repo.SMSTemplate, error)
	ListSMSTemplates(ctx context.Context) ([]*repo.SMSTemplate, error)

	// Derived checks
	IsOpenAt(ctx context.Context, t time.Time) (bool, error)
	IsHoliday(ctx context.Context, day time.Time) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type configService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &configService{db: db}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// InitSettings creates the single settings row. A second call fails with
// ErrSettingsExist; all later changes go through UpdateSettings.
func (s *configService) InitSettings(ctx context.Context, req InitRequest) (*repo.ClinicSettings, error) {
	exists, err := s.db.ClinicSettings.Query().Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check settings: %w", err)
	}
	if exists {
		return nil, ErrSettingsExist
	}

	c := s.db.ClinicSettings.Create().
		SetPhone(req.Phone).
		SetEmail(req.Email).
		SetAddressLine1(req.AddressLine1).
		SetCity(req.City)

	if req.ClinicName != "" {
		c = c.SetClinicName(req.ClinicName)
	}
	if req.Timezone != nil {
		c = c.SetTimezone(*req.Timezone)
	}
	if req.Currency != nil {
		c = c.SetCurrency(*req.Currency)
	}

	settings, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}
	return settings, nil
}

func (s *configService) GetSettings(ctx context.Context) (*repo.ClinicSettings, error) {
	settings, err := s.db.ClinicSettings.Query().
		Order(entsettings.ByCreatedAt(sql.OrderAsc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *configService) UpdateSettings(ctx context.Context, req UpdateRequest) (*repo.ClinicSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	u := s.db.ClinicSettings.UpdateOne(settings)

	if req.ClinicName != nil {
		u = u.SetClinicName(*req.ClinicName)
	}
	if req.Tagline != nil {
		u = u.SetNillableTagline(req.Tagline)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.LogoKey != nil {
		u = u.SetNillableLogoKey(req.LogoKey)
	}
	if req.FaviconKey != nil {
		u = u.SetNillableFaviconKey(req.FaviconKey)
	}
	if req.Phone != nil {
		u = u.SetPhone(*req.Phone)
	}
	if req.Email != nil {
		u = u.SetEmail(*req.Email)
	}
	if req.Website != nil {
		u = u.SetNillableWebsite(req.Website)
	}
	if req.AddressLine1 != nil {
		u = u.SetAddressLine1(*req.AddressLine1)
	}
	if req.AddressLine2 != nil {
		u = u.SetNillableAddressLine2(req.AddressLine2)
	}
	if req.City != nil {
		u = u.SetCity(*req.City)
	}
	if req.State != nil {
		u = u.SetNillableState(req.State)
	}
	if req.PostalCode != nil {
		u = u.SetNillablePostalCode(req.PostalCode)
	}
	if req.Country != nil {
		u = u.SetCountry(*req.Country)
	}
	if req.FacebookURL != nil {
		u = u.SetNillableFacebookURL(req.FacebookURL)
	}
	if req.TwitterURL != nil {
		u = u.SetNillableTwitterURL(req.TwitterURL)
	}
	if req.InstagramURL != nil {
		u = u.SetNillableInstagramURL(req.InstagramURL)
	}
	if req.LinkedinURL != nil {
		u = u.SetNillableLinkedinURL(req.LinkedinURL)
	}
	if req.YoutubeURL != nil {
		u = u.SetNillableYoutubeURL(req.YoutubeURL)
	}
	if req.Timezone != nil {
		u = u.SetTimezone(*req.Timezone)
	}
	if req.AppointmentBufferMin != nil {
		u = u.SetAppointmentBufferMin(*req.AppointmentBufferMin)
	}
	if req.MaxAdvanceBookingDays != nil {
		u = u.SetMaxAdvanceBookingDays(*req.MaxAdvanceBookingDays)
	}
	if req.MinAdvanceBookingHours != nil {
		u = u.SetMinAdvanceBookingHours(*req.MinAdvanceBookingHours)
	}
	if req.CancellationDeadlineHours != nil {
		u = u.SetCancellationDeadlineHours(*req.CancellationDeadlineHours)
	}
	if req.SendAppointmentConfirmations != nil {
		u = u.SetSendAppointmentConfirmations(*req.SendAppointmentConfirmations)
	}
	if req.SendAppointmentReminders != nil {
		u = u.SetSendAppointmentReminders(*req.SendAppointmentReminders)
	}
	if req.ReminderHoursBefore != nil {
		u = u.SetReminderHoursBefore(*req.ReminderHoursBefore)
	}
	if req.SendFollowUpReminders != nil {
		u = u.SetSendFollowUpReminders(*req.SendFollowUpReminders)
	}
	if req.Currency != nil {
		u = u.SetCurrency(*req.Currency)
	}
	if req.TaxRatePercent != nil {
		u = u.SetTaxRatePercent(*req.TaxRatePercent)
	}
	if req.EmergencyPhone != nil {
		u = u.SetNillableEmergencyPhone(req.EmergencyPhone)
	}
	if req.EmergencyEmail != nil {
		u = u.SetNillableEmergencyEmail(req.EmergencyEmail)
	}
	if req.MaintenanceMode != nil {
		u = u.SetMaintenanceMode(*req.MaintenanceMode)
	}
	if req.MaintenanceMessage != nil {
		u = u.SetNillableMaintenanceMessage(req.MaintenanceMessage)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Business hours
// ---------------------------------------------------------------------------

func (s *configService) UpsertBusinessHours(ctx context.Context, req BusinessHoursRequest) (*repo.BusinessHours, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.IsOpen && req.OpeningTime != nil && req.ClosingTime != nil && *req.ClosingTime <= *req.OpeningTime {
		return nil, ErrInvalidTimeWindow
	}

	existing, err := s.db.BusinessHours.Query().
		Where(
			enthours.SettingsID(settings.ID),
			enthours.DayOfWeek(req.DayOfWeek),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get business hours: %w", err)
	}

	if existing != nil {
		u := s.db.BusinessHours.UpdateOne(existing).
			SetIsOpen(req.IsOpen)
		if req.OpeningTime != nil {
			u = u.SetNillableOpeningTime(req.OpeningTime)
		}
		if req.ClosingTime != nil {
			u = u.SetNillableClosingTime(req.ClosingTime)
		}
		if req.LunchBreak != nil {
			u = u.SetLunchBreak(*req.LunchBreak)
		}
		if req.LunchStart != nil {
			u = u.SetNillableLunchStart(req.LunchStart)
		}
		if req.LunchEnd != nil {
			u = u.SetNillableLunchEnd(req.LunchEnd)
		}
		if req.Notes != nil {
			u = u.SetNillableNotes(req.Notes)
		}
		return u.Save(ctx)
	}

	c := s.db.BusinessHours.Create().
		SetSettingsID(settings.ID).
		SetDayOfWeek(req.DayOfWeek).
		SetIsOpen(req.IsOpen)
	if req.OpeningTime != nil {
		c = c.SetNillableOpeningTime(req.OpeningTime)
	}
	if req.ClosingTime != nil {
		c = c.SetNillableClosingTime(req.ClosingTime)
	}
	if req.LunchBreak != nil {
		c = c.SetLunchBreak(*req.LunchBreak)
	}
	if req.LunchStart != nil {
		c = c.SetNillableLunchStart(req.LunchStart)
	}
	if req.LunchEnd != nil {
		c = c.SetNillableLunchEnd(req.LunchEnd)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	h, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create business hours: %w", err)
	}
	return h, nil
}

func (s *configService) ListBusinessHours(ctx context.Context) ([]*repo.BusinessHours, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	hours, err := s.db.BusinessHours.Query().
		Where(enthours.SettingsID(settings.ID)).
		Order(enthours.ByDayOfWeek(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list business hours: %w", err)
	}
	return hours, nil
}

// ---------------------------------------------------------------------------
// Holidays
// ---------------------------------------------------------------------------

func (s *configService) CreateHoliday(ctx context.Context, req HolidayRequest) (*repo.Holiday, error) {
	c := s.db.Holiday.Create().
		SetName(req.Name).
		SetDate(req.Date).
		SetIsRecurring(req.IsRecurring)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.AffectsAppointments != nil {
		c = c.SetAffectsAppointments(*req.AffectsAppointments)
	}

	h, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create holiday: %w", err)
	}
	return h, nil
}

func (s *configService) ListHolidays(ctx context.Context) ([]*repo.Holiday, error) {
	holidays, err := s.db.Holiday.Query().
		Order(entholiday.ByDate(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return holidays, nil
}

func (s *configService) DeleteHoliday(ctx context.Context, holidayID uuid.UUID) error {
	n, err := s.db.Holiday.Delete().
		Where(entholiday.ID(holidayID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if n == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Message templates
// ---------------------------------------------------------------------------

func (s *configService) UpsertEmailTemplate(ctx context.Context, req EmailTemplateRequest) (*repo.EmailTemplate, error) {
	existing, err := s.db.EmailTemplate.Query().
		Where(entemail.TemplateTypeEQ(entemail.TemplateType(req.TemplateType))).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get email template: %w", err)
	}

	if existing != nil {
		u := s.db.EmailTemplate.UpdateOne(existing).
			SetName(req.Name).
			SetSubject(req.Subject).
			SetBodyHTML(req.BodyHTML).
			SetBodyText(req.BodyText)
		if req.IsActive != nil {
			u = u.SetIsActive(*req.IsActive)
		}
		if req.VariablesHelp != nil {
			u = u.SetNillableVariablesHelp(req.VariablesHelp)
		}
		return u.Save(ctx)
	}

	c := s.db.EmailTemplate.Create().
		SetName(req.Name).
		SetTemplateType(entemail.TemplateType(req.TemplateType)).
		SetSubject(req.Subject).
		SetBodyHTML(req.BodyHTML).
		SetBodyText(req.BodyText)
	if req.IsActive != nil {
		c = c.SetIsActive(*req.IsActive)
	}
	if req.VariablesHelp != nil {
		c = c.SetNillableVariablesHelp(req.VariablesHelp)
	}

	tpl, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrTemplateTypeTaken
		}
		return nil, fmt.Errorf("create email template: %w", err)
	}
	return tpl, nil
}

func (s *configService) GetEmailTemplate(ctx context.Context, templateType string) (*repo.EmailTemplate, error) {
	tpl, err := s.db.EmailTemplate.Query().
		Where(
			entemail.TemplateTypeEQ(entemail.TemplateType(templateType)),
			entemail.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get email template: %w", err)
	}
	return tpl, nil
}

func (s *configService) ListEmailTemplates(ctx context.Context) ([]*repo.EmailTemplate, error) {
	tpls, err := s.db.EmailTemplate.Query().
		Order(entemail.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list email templates: %w", err)
	}
	return tpls, nil
}

func (s *configService) UpsertSMSTemplate(ctx context.Context, req SMSTemplateRequest) (*repo.SMSTemplate, error) {
	existing, err := s.db.SMSTemplate.Query().
		Where(entsms.TemplateTypeEQ(entsms.TemplateType(req.TemplateType))).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get sms template: %w", err)
	}

	if existing != nil {
		u := s.db.SMSTemplate.UpdateOne(existing).
			SetName(req.Name).
			SetBody(req.Body)
		if req.IsActive != nil {
			u = u.SetIsActive(*req.IsActive)
		}
		if req.VariablesHelp != nil {
			u = u.SetNillableVariablesHelp(req.VariablesHelp)
		}
		return u.Save(ctx)
	}

	c := s.db.SMSTemplate.Create().
		SetName(req.Name).
		SetTemplateType(entsms.TemplateType(req.TemplateType)).
		SetBody(req.Body)
	if req.IsActive != nil {
		c = c.SetIsActive(*req.IsActive)
	}
	if req.VariablesHelp != nil {
		c = c.SetNillableVariablesHelp(req.VariablesHelp)
	}

	tpl, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrTemplateTypeTaken
		}
		return nil, fmt.Errorf("create sms template: %w", err)
	}
	return tpl, nil
}

func (s *configService) GetSMSTemplate(ctx context.Context, templateType string) (*repo.SMSTemplate, error) {
	tpl, err := s.db.SMSTemplate.Query().
		Where(
			entsms.TemplateTypeEQ(entsms.TemplateType(templateType)),
			entsms.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get sms template: %w", err)
	}
	return tpl, nil
}

func (s *configService) ListSMSTemplates(ctx context.Context) ([]*repo.SMSTemplate, error) {
	tpls, err := s.db.SMSTemplate.Query().
		Order(entsms.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sms templates: %w", err)
	}
	return tpls, nil
}

// ---------------------------------------------------------------------------
// Derived checks
// ---------------------------------------------------------------------------

// IsOpenAt checks the weekday's business hours window against t.
// Holidays are checked separately via IsHoliday.
func (s *configService) IsOpenAt(ctx context.Context, t time.Time) (bool, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return false, err
	}

	day := int8((int(t.Weekday()) + 6) % 7) // 0=Monday .. 6=Sunday
	h, err := s.db.BusinessHours.Query().
		Where(
			enthours.SettingsID(settings.ID),
			enthours.DayOfWeek(day),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get business hours: %w", err)
	}

	w := DayWindow{IsOpen: h.IsOpen}
	if h.OpeningTime != nil {
		w.Opening = *h.OpeningTime
	}
	if h.ClosingTime != nil {
		w.Closing = *h.ClosingTime
	}
	w.LunchBreak = h.LunchBreak
	if h.LunchStart != nil {
		w.LunchStart = *h.LunchStart
	}
	if h.LunchEnd != nil {
		w.LunchEnd = *h.LunchEnd
	}

	return OpenAt(w, t), nil
}

func (s *configService) IsHoliday(ctx context.Context, day time.Time) (bool, error) {
	holidays, err := s.ListHolidays(ctx)
	if err != nil {
		return false, err
	}
	for _, h := range holidays {
		if h.IsRecurring {
			if h.Date.Month() == day.Month() && h.Date.Day() == day.Day() {
				return true, nil
			}
			continue
		}
		hy, hm, hd := h.Date.Date()
		dy, dm, dd := day.Date()
		if hy == dy && hm == dm && hd == dd {
			return true, nil
		}
	}
	return false, nil
}
