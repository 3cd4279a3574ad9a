package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/newsletter"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

type NewsletterHandler struct {
	svc newsletter.Service
}

func NewNewsletterHandler(svc newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

func mapNewsletterError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, newsletter.ErrNotFound),
		errors.Is(err, newsletter.ErrSubscriberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, newsletter.ErrAlreadySubscribed),
		errors.Is(err, newsletter.ErrAlreadySent),
		errors.Is(err, newsletter.ErrNotDraft):
		return conflict(c, err.Error())
	case errors.Is(err, newsletter.ErrScheduleInPast):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /newsletter/subscribe — public
func (h *NewsletterHandler) Subscribe(c fiber.Ctx) error {
	var body struct {
		Email     string  `json:"email"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" {
		return badRequest(c, "email is required")
	}

	sub, err := h.svc.Subscribe(c.Context(), newsletter.SubscribeRequest{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return created(c, sub)
}

// POST /newsletter/unsubscribe — public (linked from every newsletter).
// Footer links carry a token; the form variant takes an email.
func (h *NewsletterHandler) Unsubscribe(c fiber.Ctx) error {
	if token := c.Query("token"); token != "" {
		if err := h.svc.UnsubscribeByToken(c.Context(), token); err != nil {
			return mapNewsletterError(c, err)
		}
		return noContent(c)
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.svc.Unsubscribe(c.Context(), body.Email); err != nil {
		return mapNewsletterError(c, err)
	}
	return noContent(c)
}

// GET /newsletter/subscribers
func (h *NewsletterHandler) ListSubscribers(c fiber.Ctx) error {
	activeOnly := c.Query("active_only") != "false"

	subs, err := h.svc.ListSubscribers(c.Context(), activeOnly)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, subs)
}

// ---------------------------------------------------------------------------
// Newsletters
// ---------------------------------------------------------------------------

// GET /newsletter
func (h *NewsletterHandler) List(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := newsletter.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, result)
}

// GET /newsletter/:id
func (h *NewsletterHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	n, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, n)
}

// POST /newsletter
func (h *NewsletterHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title       string `json:"title"`
		Subject     string `json:"subject"`
		ContentHTML string `json:"content_html"`
		ContentText string `json:"content_text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Subject == "" {
		return badRequest(c, "title and subject are required")
	}

	req := newsletter.CreateRequest{
		Title:       body.Title,
		Subject:     body.Subject,
		ContentHTML: body.ContentHTML,
		ContentText: body.ContentText,
	}
	if claims, valid := pasetotoken.ClaimsFromFiber(c); valid {
		uid := claims.UserID
		req.CreatedByID = &uid
	}

	n, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return created(c, n)
}

// PATCH /newsletter/:id
func (h *NewsletterHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	var body struct {
		Title       *string `json:"title"`
		Subject     *string `json:"subject"`
		ContentHTML *string `json:"content_html"`
		ContentText *string `json:"content_text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	n, err := h.svc.Update(c.Context(), id, newsletter.UpdateRequest{
		Title:       body.Title,
		Subject:     body.Subject,
		ContentHTML: body.ContentHTML,
		ContentText: body.ContentText,
	})
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, n)
}

// DELETE /newsletter/:id
func (h *NewsletterHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapNewsletterError(c, err)
	}
	return noContent(c)
}

// POST /newsletter/:id/schedule
func (h *NewsletterHandler) Schedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	var body struct {
		At time.Time `json:"at"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.At.IsZero() {
		return badRequest(c, "at is required")
	}

	n, err := h.svc.Schedule(c.Context(), id, body.At)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, n)
}

// POST /newsletter/:id/cancel-schedule
func (h *NewsletterHandler) CancelSchedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	n, err := h.svc.CancelSchedule(c.Context(), id)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, n)
}

// POST /newsletter/:id/send
func (h *NewsletterHandler) Send(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	campaign, err := h.svc.Send(c.Context(), id)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return created(c, campaign)
}

// GET /newsletter/:id/campaigns
func (h *NewsletterHandler) ListCampaigns(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid newsletter id")
	}

	campaigns, err := h.svc.ListCampaigns(c.Context(), id)
	if err != nil {
		return mapNewsletterError(c, err)
	}
	return ok(c, campaigns)
}
