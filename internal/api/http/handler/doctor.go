package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrNotFound),
		errors.Is(err, doctor.ErrLeaveNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrAlreadyExists),
		errors.Is(err, doctor.ErrLicenseNumberTaken),
		errors.Is(err, doctor.ErrSpecializationTaken):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrSpecializationMissing),
		errors.Is(err, doctor.ErrLeaveDatesInverted),
		errors.Is(err, doctor.ErrInvalidTimeWindow):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	availableOnly := c.Query("available_only") == "true"

	var specializationID *uuid.UUID
	if v := c.Query("specialization_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid specialization_id")
		}
		specializationID = &id
	}

	doctors, err := h.svc.List(c.Context(), availableOnly, specializationID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, doctors)
}

// GET /doctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, d)
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID               string   `json:"user_id"`
		Title                *string  `json:"title"`
		LicenseNumber        string   `json:"license_number"`
		YearsOfExperience    int      `json:"years_of_experience"`
		Biography            string   `json:"biography"`
		Education            string   `json:"education"`
		Certifications       *string  `json:"certifications"`
		ConsultationFee      int64    `json:"consultation_fee"`
		ProfileImageKey      *string  `json:"profile_image_key"`
		HospitalAffiliations *string  `json:"hospital_affiliations"`
		SpecializationIDs    []string `json:"specialization_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.UserID == "" || body.LicenseNumber == "" {
		return badRequest(c, "user_id and license_number are required")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	specIDs := make([]uuid.UUID, 0, len(body.SpecializationIDs))
	for _, raw := range body.SpecializationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid specialization_ids")
		}
		specIDs = append(specIDs, id)
	}

	d, err := h.svc.Create(c.Context(), doctor.CreateRequest{
		UserID:               userID,
		Title:                body.Title,
		LicenseNumber:        body.LicenseNumber,
		YearsOfExperience:    body.YearsOfExperience,
		Biography:            body.Biography,
		Education:            body.Education,
		Certifications:       body.Certifications,
		ConsultationFee:      body.ConsultationFee,
		ProfileImageKey:      body.ProfileImageKey,
		HospitalAffiliations: body.HospitalAffiliations,
		SpecializationIDs:    specIDs,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, d)
}

// PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Title                *string `json:"title"`
		YearsOfExperience    *int    `json:"years_of_experience"`
		Biography            *string `json:"biography"`
		Education            *string `json:"education"`
		Certifications       *string `json:"certifications"`
		ConsultationFee      *int64  `json:"consultation_fee"`
		IsAvailable          *bool   `json:"is_available"`
		ProfileImageKey      *string `json:"profile_image_key"`
		HospitalAffiliations *string `json:"hospital_affiliations"`
		ResearchInterests    *string `json:"research_interests"`
		Publications         *string `json:"publications"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Update(c.Context(), id, doctor.UpdateRequest{
		Title:                body.Title,
		YearsOfExperience:    body.YearsOfExperience,
		Biography:            body.Biography,
		Education:            body.Education,
		Certifications:       body.Certifications,
		ConsultationFee:      body.ConsultationFee,
		IsAvailable:          body.IsAvailable,
		ProfileImageKey:      body.ProfileImageKey,
		HospitalAffiliations: body.HospitalAffiliations,
		ResearchInterests:    body.ResearchInterests,
		Publications:         body.Publications,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, d)
}

// ---------------------------------------------------------------------------
// Specializations
// ---------------------------------------------------------------------------

// GET /doctors/specializations
func (h *DoctorHandler) ListSpecializations(c fiber.Ctx) error {
	specs, err := h.svc.ListSpecializations(c.Context())
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, specs)
}

// POST /doctors/specializations
func (h *DoctorHandler) CreateSpecialization(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	spec, err := h.svc.CreateSpecialization(c.Context(), body.Name, body.Description)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, spec)
}

// PUT /doctors/:id/specializations
func (h *DoctorHandler) AssignSpecializations(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		SpecializationIDs []string `json:"specialization_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	specIDs := make([]uuid.UUID, 0, len(body.SpecializationIDs))
	for _, raw := range body.SpecializationIDs {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid specialization_ids")
		}
		specIDs = append(specIDs, sid)
	}

	if err := h.svc.AssignSpecializations(c.Context(), id, specIDs); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

// GET /doctors/:id/availability
func (h *DoctorHandler) ListAvailability(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	slots, err := h.svc.ListAvailability(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, slots)
}

// PUT /doctors/:id/availability
func (h *DoctorHandler) UpsertAvailability(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		DayOfWeek   int8   `json:"day_of_week"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		IsAvailable *bool  `json:"is_available"`
		MaxPatients *int   `json:"max_patients"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartTime == "" || body.EndTime == "" {
		return badRequest(c, "start_time and end_time are required")
	}

	slot, err := h.svc.UpsertAvailability(c.Context(), id, doctor.AvailabilityRequest{
		DayOfWeek:   body.DayOfWeek,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		IsAvailable: body.IsAvailable,
		MaxPatients: body.MaxPatients,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, slot)
}

// DELETE /doctors/:id/availability/:slotId
func (h *DoctorHandler) RemoveAvailability(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return badRequest(c, "invalid availability id")
	}

	if err := h.svc.RemoveAvailability(c.Context(), id, slotID); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Leave
// ---------------------------------------------------------------------------

// POST /doctors/:id/leaves
func (h *DoctorHandler) RequestLeave(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		LeaveType string    `json:"leave_type"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
		Reason    *string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	leave, err := h.svc.RequestLeave(c.Context(), id, doctor.LeaveRequest{
		LeaveType: body.LeaveType,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, leave)
}

// GET /doctors/:id/leaves
func (h *DoctorHandler) ListLeaves(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	pendingOnly := c.Query("pending_only") == "true"

	leaves, err := h.svc.ListLeaves(c.Context(), id, pendingOnly)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, leaves)
}

// PATCH /doctors/leaves/:leaveId/approve
func (h *DoctorHandler) ApproveLeave(c fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("leaveId"))
	if err != nil {
		return badRequest(c, "invalid leave id")
	}

	if err := h.svc.ApproveLeave(c.Context(), leaveID); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}

// DELETE /doctors/:id/leaves/:leaveId
func (h *DoctorHandler) DeleteLeave(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	leaveID, err := uuid.Parse(c.Params("leaveId"))
	if err != nil {
		return badRequest(c, "invalid leave id")
	}

	if err := h.svc.DeleteLeave(c.Context(), id, leaveID); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}
