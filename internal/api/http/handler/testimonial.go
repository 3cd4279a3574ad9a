package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/testimonial"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

type TestimonialHandler struct {
	svc testimonial.Service
}

func NewTestimonialHandler(svc testimonial.Service) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

func mapTestimonialError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, testimonial.ErrNotFound),
		errors.Is(err, testimonial.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, testimonial.ErrInvalidRating):
		return badRequest(c, err.Error())
	case errors.Is(err, testimonial.ErrNotPending):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /testimonials — public, approved only
func (h *TestimonialHandler) ListApproved(c fiber.Ctx) error {
	var q struct {
		DoctorID  string `query:"doctor_id"`
		ServiceID string `query:"service_id"`
		Limit     int    `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	var doctorID, serviceID *uuid.UUID
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		doctorID = &id
	}
	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		serviceID = &id
	}

	items, err := h.svc.ListApproved(c.Context(), doctorID, serviceID, q.Limit)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return ok(c, items)
}

// POST /testimonials
func (h *TestimonialHandler) Submit(c fiber.Ctx) error {
	var body struct {
		PatientID string  `json:"patient_id"`
		Content   string  `json:"content"`
		Rating    int     `json:"rating"`
		ServiceID *string `json:"service_id"`
		DoctorID  *string `json:"doctor_id"`
		ImageKey  *string `json:"image_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.Content == "" {
		return badRequest(c, "patient_id and content are required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := testimonial.SubmitRequest{
		PatientID: patientID,
		Content:   body.Content,
		Rating:    body.Rating,
		ImageKey:  body.ImageKey,
	}
	if body.ServiceID != nil {
		id, err := uuid.Parse(*body.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}
	if body.DoctorID != nil {
		id, err := uuid.Parse(*body.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}

	t, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return created(c, t)
}

// GET /testimonials/moderation — admin view, all statuses
func (h *TestimonialHandler) List(c fiber.Ctx) error {
	var q struct {
		Status    string `query:"status"`
		DoctorID  string `query:"doctor_id"`
		ServiceID string `query:"service_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := testimonial.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return badRequest(c, "invalid service_id")
		}
		req.ServiceID = &id
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return ok(c, result)
}

// GET /testimonials/:id
func (h *TestimonialHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	t, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return ok(c, t)
}

// PATCH /testimonials/:id/approve
func (h *TestimonialHandler) Approve(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	t, err := h.svc.Approve(c.Context(), id, claims.UserID)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return ok(c, t)
}

// PATCH /testimonials/:id/reject
func (h *TestimonialHandler) Reject(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	t, err := h.svc.Reject(c.Context(), id, claims.UserID)
	if err != nil {
		return mapTestimonialError(c, err)
	}
	return ok(c, t)
}

// DELETE /testimonials/:id
func (h *TestimonialHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid testimonial id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapTestimonialError(c, err)
	}
	return noContent(c)
}
