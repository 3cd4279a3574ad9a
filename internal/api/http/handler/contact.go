package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/contact"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

type ContactHandler struct {
	svc        contact.Service
	clinicName string
}

func NewContactHandler(svc contact.Service, clinicName string) *ContactHandler {
	return &ContactHandler{svc: svc, clinicName: clinicName}
}

func mapContactError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contact.ErrNotFound),
		errors.Is(err, contact.ErrAssigneeGone):
		return notFound(c, err.Error())
	case errors.Is(err, contact.ErrAlreadyClosed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /contact — public
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   *string `json:"phone"`
		Subject string  `json:"subject"`
		Message string  `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Email == "" || body.Subject == "" || body.Message == "" {
		return badRequest(c, "name, email, subject and message are required")
	}

	msg, err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		return mapContactError(c, err)
	}

	return created(c, fiber.Map{"id": msg.ID})
}

// GET /contact
func (h *ContactHandler) List(c fiber.Ctx) error {
	var q struct {
		Status     string `query:"status"`
		AssignedTo string `query:"assigned_to"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := contact.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.AssignedTo != "" {
		id, err := uuid.Parse(q.AssignedTo)
		if err != nil {
			return badRequest(c, "invalid assigned_to")
		}
		req.AssignedTo = &id
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, result)
}

// GET /contact/:id
func (h *ContactHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msg)
}

// PATCH /contact/:id/read
func (h *ContactHandler) MarkRead(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.MarkRead(c.Context(), id)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msg)
}

// PATCH /contact/:id/assign
func (h *ContactHandler) Assign(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	msg, err := h.svc.Assign(c.Context(), id, userID)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msg)
}

// POST /contact/:id/respond
func (h *ContactHandler) Respond(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Response == "" {
		return badRequest(c, "response is required")
	}

	uid := claims.UserID
	resp, err := h.svc.Respond(c.Context(), contact.RespondRequest{
		MessageID:     id,
		Response:      body.Response,
		RespondedByID: &uid,
		ClinicName:    h.clinicName,
	})
	if err != nil {
		return mapContactError(c, err)
	}
	return created(c, resp)
}

// GET /contact/:id/responses
func (h *ContactHandler) ListResponses(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	responses, err := h.svc.ListResponses(c.Context(), id)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, responses)
}

// PATCH /contact/:id/close
func (h *ContactHandler) Close(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	msg, err := h.svc.Close(c.Context(), id)
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, msg)
}
