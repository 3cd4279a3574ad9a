package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/appointment"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrDoctorNotFound),
		errors.Is(err, appointment.ErrAppointmentTypeNotFound),
		errors.Is(err, appointment.ErrNoteNotFound),
		errors.Is(err, appointment.ErrWaitingListNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrTimeSlotTaken),
		errors.Is(err, appointment.ErrAlreadyCancelled),
		errors.Is(err, appointment.ErrAlreadyCompleted),
		errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrDoctorUnavailable),
		errors.Is(err, appointment.ErrDoctorOnLeave),
		errors.Is(err, appointment.ErrClinicClosed),
		errors.Is(err, appointment.ErrTooSoon),
		errors.Is(err, appointment.ErrTooFarAhead),
		errors.Is(err, appointment.ErrCancellationWindowClosed):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidAppointmentID):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id — accepts either the row UUID or the human-readable
// APT<yyyymm><seq> identifier.
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	raw := c.Params("id")

	if strings.HasPrefix(raw, "APT") {
		appt, err := h.svc.GetByAppointmentID(c.Context(), raw)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, appt)
	}

	apptID, err := uuid.Parse(raw)
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID         string     `json:"patient_id"`
		DoctorID          string     `json:"doctor_id"`
		ServiceID         *string    `json:"service_id"`
		AppointmentTypeID string     `json:"appointment_type_id"`
		StartTime         time.Time  `json:"start_time"`
		DurationMin       int        `json:"duration_min"`
		EndTime           *time.Time `json:"end_time"`
		Priority          *string    `json:"priority"`
		ConsultationType  *string    `json:"consultation_type"`
		ChiefComplaint    *string    `json:"chief_complaint"`
		Symptoms          *string    `json:"symptoms"`
		Notes             *string    `json:"notes"`
		IsFollowUp        bool       `json:"is_follow_up"`
		BookingSource     *string    `json:"booking_source"`
		EstimatedCost     *int64     `json:"estimated_cost"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.DoctorID == "" || body.AppointmentTypeID == "" {
		return badRequest(c, "patient_id, doctor_id and appointment_type_id are required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	typeID, err := uuid.Parse(body.AppointmentTypeID)
	if err != nil {
		return badRequest(c, "invalid appointment_type_id")
	}

	req := appointment.BookRequest{
		PatientID:         patientID,
		DoctorID:          doctorID,
		AppointmentTypeID: typeID,
		StartTime:         body.StartTime,
		DurationMin:       body.DurationMin,
		EndTime:           body.EndTime,
		Priority:          body.Priority,
		ConsultationType:  body.ConsultationType,
		ChiefComplaint:    body.ChiefComplaint,
		Symptoms:          body.Symptoms,
		Notes:             body.Notes,
		IsFollowUp:        body.IsFollowUp,
		BookingSource:     body.BookingSource,
		EstimatedCost:     body.EstimatedCost,
	}
	if body.ServiceID != nil {
		id, err := uuid.Parse(*body.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}
	if claims, valid := pasetotoken.ClaimsFromFiber(c); valid {
		uid := claims.UserID
		req.BookedByID = &uid
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Confirm(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/check-in
func (h *AppointmentHandler) CheckIn(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.CheckIn(c.Context(), apptID, claims.UserID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/start
func (h *AppointmentHandler) Start(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Start(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason   *string `json:"reason"`
		Override bool    `json:"override"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	// Patients cannot skip the cancellation window
	override := body.Override && claims.Role != "patient"

	if err := h.svc.Cancel(c.Context(), apptID, appointment.CancelRequest{
		Reason:        body.Reason,
		CancelledByID: claims.UserID,
		Override:      override,
	}); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// PATCH /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.MarkNoShow(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NewStartTime time.Time `json:"new_start_time"`
		Reason       *string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.NewStartTime.IsZero() {
		return badRequest(c, "new_start_time is required")
	}

	appt, err := h.svc.Reschedule(c.Context(), apptID, appointment.RescheduleRequest{
		NewStartTime:    body.NewStartTime,
		Reason:          body.Reason,
		RescheduledByID: claims.UserID,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

// POST /appointments/:id/notes
func (h *AppointmentHandler) AddNote(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NoteType  string `json:"note_type"`
		Content   string `json:"content"`
		IsPrivate bool   `json:"is_private"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Content == "" {
		return badRequest(c, "content is required")
	}

	note, err := h.svc.AddNote(c.Context(), apptID, appointment.AddNoteRequest{
		NoteType:    body.NoteType,
		Content:     body.Content,
		IsPrivate:   body.IsPrivate,
		CreatedByID: claims.UserID,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, note)
}

// GET /appointments/:id/notes
func (h *AppointmentHandler) ListNotes(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	// Private notes are clinician-only
	includePrivate := claims.Role == "doctor" || claims.Role == "admin"

	notes, err := h.svc.ListNotes(c.Context(), apptID, includePrivate)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, notes)
}

// ---------------------------------------------------------------------------
// Waiting list
// ---------------------------------------------------------------------------

// POST /waiting-list
func (h *AppointmentHandler) JoinWaitingList(c fiber.Ctx) error {
	var body struct {
		PatientID     string     `json:"patient_id"`
		DoctorID      string     `json:"doctor_id"`
		ServiceID     *string    `json:"service_id"`
		PreferredDate *time.Time `json:"preferred_date"`
		PreferredTime *string    `json:"preferred_time"`
		EarliestDate  time.Time  `json:"earliest_date"`
		LatestDate    time.Time  `json:"latest_date"`
		Notes         *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	req := appointment.WaitingListRequest{
		PatientID:     patientID,
		DoctorID:      doctorID,
		PreferredDate: body.PreferredDate,
		PreferredTime: body.PreferredTime,
		EarliestDate:  body.EarliestDate,
		LatestDate:    body.LatestDate,
		Notes:         body.Notes,
	}
	if body.ServiceID != nil {
		id, err := uuid.Parse(*body.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}

	entry, err := h.svc.JoinWaitingList(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, entry)
}

// GET /waiting-list
func (h *AppointmentHandler) ListWaitingList(c fiber.Ctx) error {
	var doctorID *uuid.UUID
	if v := c.Query("doctor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		doctorID = &id
	}
	activeOnly := c.Query("active_only") != "false"

	entries, err := h.svc.ListWaitingList(c.Context(), doctorID, activeOnly)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, entries)
}

// DELETE /waiting-list/:id
func (h *AppointmentHandler) LeaveWaitingList(c fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.svc.LeaveWaitingList(c.Context(), entryID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
