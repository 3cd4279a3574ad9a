package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/service/user"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName         *string `json:"first_name"`
		LastName          *string `json:"last_name"`
		Phone             *string `json:"phone"`
		DateOfBirth       *string `json:"date_of_birth"` // YYYY-MM-DD
		ProfilePictureKey *string `json:"profile_picture_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := user.UpdateRequest{
		FirstName:         body.FirstName,
		LastName:          body.LastName,
		Phone:             body.Phone,
		ProfilePictureKey: body.ProfilePictureKey,
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth")
		}
		req.DateOfBirth = &dob
	}

	result, err := h.svc.Update(c.Context(), claims.UserID, req)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, result)
}

// GET /api/v1/users/me/profile
func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, p)
}

// PUT /api/v1/users/me/profile
func (h *UserHandler) UpsertProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Gender                       *string `json:"gender"`
		Address                      *string `json:"address"`
		City                         *string `json:"city"`
		EmergencyContactName         *string `json:"emergency_contact_name"`
		EmergencyContactPhone        *string `json:"emergency_contact_phone"`
		EmergencyContactRelationship *string `json:"emergency_contact_relationship"`
		MedicalConditions            *string `json:"medical_conditions"`
		Allergies                    *string `json:"allergies"`
		Medications                  *string `json:"medications"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpsertProfile(c.Context(), claims.UserID, user.ProfileRequest{
		Gender:                       body.Gender,
		Address:                      body.Address,
		City:                         body.City,
		EmergencyContactName:         body.EmergencyContactName,
		EmergencyContactPhone:        body.EmergencyContactPhone,
		EmergencyContactRelationship: body.EmergencyContactRelationship,
		MedicalConditions:            body.MedicalConditions,
		Allergies:                    body.Allergies,
		Medications:                  body.Medications,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, p)
}

// GET /api/v1/users/me/picture
func (h *UserHandler) ProfilePictureURL(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	url, err := h.svc.ProfilePictureURL(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"url": url})
}
