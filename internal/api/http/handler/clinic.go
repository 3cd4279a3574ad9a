package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/clinicconfig"
)

type ClinicHandler struct {
	svc clinicconfig.Service
}

func NewClinicHandler(svc clinicconfig.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinicconfig.ErrSettingsNotFound),
		errors.Is(err, clinicconfig.ErrHolidayNotFound),
		errors.Is(err, clinicconfig.ErrTemplateNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinicconfig.ErrSettingsExist),
		errors.Is(err, clinicconfig.ErrTemplateTypeTaken):
		return conflict(c, err.Error())
	case errors.Is(err, clinicconfig.ErrInvalidTimeWindow):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// GET /clinic/settings
func (h *ClinicHandler) GetSettings(c fiber.Ctx) error {
	settings, err := h.svc.GetSettings(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, settings)
}

// POST /clinic/settings
func (h *ClinicHandler) InitSettings(c fiber.Ctx) error {
	var body struct {
		ClinicName   string  `json:"clinic_name"`
		Phone        string  `json:"phone"`
		Email        string  `json:"email"`
		AddressLine1 string  `json:"address_line_1"`
		City         string  `json:"city"`
		Timezone     *string `json:"timezone"`
		Currency     *string `json:"currency"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Phone == "" || body.Email == "" || body.AddressLine1 == "" || body.City == "" {
		return badRequest(c, "phone, email, address_line_1 and city are required")
	}

	settings, err := h.svc.InitSettings(c.Context(), clinicconfig.InitRequest{
		ClinicName:   body.ClinicName,
		Phone:        body.Phone,
		Email:        body.Email,
		AddressLine1: body.AddressLine1,
		City:         body.City,
		Timezone:     body.Timezone,
		Currency:     body.Currency,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, settings)
}

// PATCH /clinic/settings
func (h *ClinicHandler) UpdateSettings(c fiber.Ctx) error {
	var body struct {
		ClinicName  *string `json:"clinic_name"`
		Tagline     *string `json:"tagline"`
		Description *string `json:"description"`
		LogoKey     *string `json:"logo_key"`
		FaviconKey  *string `json:"favicon_key"`

		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Website *string `json:"website"`

		AddressLine1 *string `json:"address_line_1"`
		AddressLine2 *string `json:"address_line_2"`
		City         *string `json:"city"`
		State        *string `json:"state"`
		PostalCode   *string `json:"postal_code"`
		Country      *string `json:"country"`

		FacebookURL  *string `json:"facebook_url"`
		TwitterURL   *string `json:"twitter_url"`
		InstagramURL *string `json:"instagram_url"`
		LinkedinURL  *string `json:"linkedin_url"`
		YoutubeURL   *string `json:"youtube_url"`

		Timezone *string `json:"timezone"`

		AppointmentBufferMin      *int `json:"appointment_buffer_min"`
		MaxAdvanceBookingDays     *int `json:"max_advance_booking_days"`
		MinAdvanceBookingHours    *int `json:"min_advance_booking_hours"`
		CancellationDeadlineHours *int `json:"cancellation_deadline_hours"`

		SendAppointmentConfirmations *bool `json:"send_appointment_confirmations"`
		SendAppointmentReminders     *bool `json:"send_appointment_reminders"`
		ReminderHoursBefore          *int  `json:"reminder_hours_before"`
		SendFollowUpReminders        *bool `json:"send_follow_up_reminders"`

		Currency       *string `json:"currency"`
		TaxRatePercent *int    `json:"tax_rate_percent"`

		EmergencyPhone *string `json:"emergency_phone"`
		EmergencyEmail *string `json:"emergency_email"`

		MaintenanceMode    *bool   `json:"maintenance_mode"`
		MaintenanceMessage *string `json:"maintenance_message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	settings, err := h.svc.UpdateSettings(c.Context(), clinicconfig.UpdateRequest{
		ClinicName:                   body.ClinicName,
		Tagline:                      body.Tagline,
		Description:                  body.Description,
		LogoKey:                      body.LogoKey,
		FaviconKey:                   body.FaviconKey,
		Phone:                        body.Phone,
		Email:                        body.Email,
		Website:                      body.Website,
		AddressLine1:                 body.AddressLine1,
		AddressLine2:                 body.AddressLine2,
		City:                         body.City,
		State:                        body.State,
		PostalCode:                   body.PostalCode,
		Country:                      body.Country,
		FacebookURL:                  body.FacebookURL,
		TwitterURL:                   body.TwitterURL,
		InstagramURL:                 body.InstagramURL,
		LinkedinURL:                  body.LinkedinURL,
		YoutubeURL:                   body.YoutubeURL,
		Timezone:                     body.Timezone,
		AppointmentBufferMin:         body.AppointmentBufferMin,
		MaxAdvanceBookingDays:        body.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:       body.MinAdvanceBookingHours,
		CancellationDeadlineHours:    body.CancellationDeadlineHours,
		SendAppointmentConfirmations: body.SendAppointmentConfirmations,
		SendAppointmentReminders:     body.SendAppointmentReminders,
		ReminderHoursBefore:          body.ReminderHoursBefore,
		SendFollowUpReminders:        body.SendFollowUpReminders,
		Currency:                     body.Currency,
		TaxRatePercent:               body.TaxRatePercent,
		EmergencyPhone:               body.EmergencyPhone,
		EmergencyEmail:               body.EmergencyEmail,
		MaintenanceMode:              body.MaintenanceMode,
		MaintenanceMessage:           body.MaintenanceMessage,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, settings)
}

// ---------------------------------------------------------------------------
// Business hours
// ---------------------------------------------------------------------------

// GET /clinic/hours
func (h *ClinicHandler) ListBusinessHours(c fiber.Ctx) error {
	hours, err := h.svc.ListBusinessHours(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, hours)
}

// PUT /clinic/hours
func (h *ClinicHandler) UpsertBusinessHours(c fiber.Ctx) error {
	var body struct {
		DayOfWeek   int8    `json:"day_of_week"`
		IsOpen      bool    `json:"is_open"`
		OpeningTime *string `json:"opening_time"`
		ClosingTime *string `json:"closing_time"`
		LunchBreak  *bool   `json:"lunch_break"`
		LunchStart  *string `json:"lunch_start"`
		LunchEnd    *string `json:"lunch_end"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DayOfWeek < 0 || body.DayOfWeek > 6 {
		return badRequest(c, "day_of_week must be between 0 (Monday) and 6 (Sunday)")
	}

	hours, err := h.svc.UpsertBusinessHours(c.Context(), clinicconfig.BusinessHoursRequest{
		DayOfWeek:   body.DayOfWeek,
		IsOpen:      body.IsOpen,
		OpeningTime: body.OpeningTime,
		ClosingTime: body.ClosingTime,
		LunchBreak:  body.LunchBreak,
		LunchStart:  body.LunchStart,
		LunchEnd:    body.LunchEnd,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, hours)
}

// GET /clinic/open?at=RFC3339
func (h *ClinicHandler) IsOpen(c fiber.Ctx) error {
	at := time.Now()
	if v := c.Query("at"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "invalid at timestamp")
		}
		at = t
	}

	holiday, err := h.svc.IsHoliday(c.Context(), at)
	if err != nil {
		return mapClinicError(c, err)
	}
	if holiday {
		return ok(c, fiber.Map{"open": false, "holiday": true})
	}

	open, err := h.svc.IsOpenAt(c.Context(), at)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, fiber.Map{"open": open, "holiday": false})
}

// ---------------------------------------------------------------------------
// Holidays
// ---------------------------------------------------------------------------

// GET /clinic/holidays
func (h *ClinicHandler) ListHolidays(c fiber.Ctx) error {
	holidays, err := h.svc.ListHolidays(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, holidays)
}

// POST /clinic/holidays
func (h *ClinicHandler) CreateHoliday(c fiber.Ctx) error {
	var body struct {
		Name                string    `json:"name"`
		Date                time.Time `json:"date"`
		IsRecurring         bool      `json:"is_recurring"`
		Description         *string   `json:"description"`
		AffectsAppointments *bool     `json:"affects_appointments"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Date.IsZero() {
		return badRequest(c, "name and date are required")
	}

	holiday, err := h.svc.CreateHoliday(c.Context(), clinicconfig.HolidayRequest{
		Name:                body.Name,
		Date:                body.Date,
		IsRecurring:         body.IsRecurring,
		Description:         body.Description,
		AffectsAppointments: body.AffectsAppointments,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, holiday)
}

// DELETE /clinic/holidays/:id
func (h *ClinicHandler) DeleteHoliday(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid holiday id")
	}

	if err := h.svc.DeleteHoliday(c.Context(), id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Message templates
// ---------------------------------------------------------------------------

// GET /clinic/templates/email
func (h *ClinicHandler) ListEmailTemplates(c fiber.Ctx) error {
	tpls, err := h.svc.ListEmailTemplates(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, tpls)
}

// PUT /clinic/templates/email
func (h *ClinicHandler) UpsertEmailTemplate(c fiber.Ctx) error {
	var body struct {
		Name          string  `json:"name"`
		TemplateType  string  `json:"template_type"`
		Subject       string  `json:"subject"`
		BodyHTML      string  `json:"body_html"`
		BodyText      string  `json:"body_text"`
		IsActive      *bool   `json:"is_active"`
		VariablesHelp *string `json:"variables_help"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.TemplateType == "" {
		return badRequest(c, "name and template_type are required")
	}

	tpl, err := h.svc.UpsertEmailTemplate(c.Context(), clinicconfig.EmailTemplateRequest{
		Name:          body.Name,
		TemplateType:  body.TemplateType,
		Subject:       body.Subject,
		BodyHTML:      body.BodyHTML,
		BodyText:      body.BodyText,
		IsActive:      body.IsActive,
		VariablesHelp: body.VariablesHelp,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, tpl)
}

// GET /clinic/templates/sms
func (h *ClinicHandler) ListSMSTemplates(c fiber.Ctx) error {
	tpls, err := h.svc.ListSMSTemplates(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, tpls)
}

// PUT /clinic/templates/sms
func (h *ClinicHandler) UpsertSMSTemplate(c fiber.Ctx) error {
	var body struct {
		Name          string  `json:"name"`
		TemplateType  string  `json:"template_type"`
		Body          string  `json:"body"`
		IsActive      *bool   `json:"is_active"`
		VariablesHelp *string `json:"variables_help"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.TemplateType == "" {
		return badRequest(c, "name and template_type are required")
	}

	tpl, err := h.svc.UpsertSMSTemplate(c.Context(), clinicconfig.SMSTemplateRequest{
		Name:          body.Name,
		TemplateType:  body.TemplateType,
		Body:          body.Body,
		IsActive:      body.IsActive,
		VariablesHelp: body.VariablesHelp,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, tpl)
}
