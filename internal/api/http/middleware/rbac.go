package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

// RequirePermission checks that the authenticated user holds the given
// permission in the clinic domain. The system runs a single clinic, so
// there is no per-request tenant resolution.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainClinic, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
