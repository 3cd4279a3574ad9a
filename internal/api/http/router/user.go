package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired fiber.Handler) {
	me := api.Group("/users/me", authRequired)
	me.Get("/", h.GetMe)
	me.Patch("/", h.UpdateMe)
	me.Get("/profile", h.GetProfile)
	me.Put("/profile", h.UpsertProfile)
	me.Get("/profile/picture-url", h.ProfilePictureURL)
}
