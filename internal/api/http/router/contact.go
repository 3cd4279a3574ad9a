package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerContactRoutes(
	api fiber.Router,
	ch *handler.ContactHandler,
	authRequired fiber.Handler,
	publicForm fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Post("/contact", publicForm, ch.Submit)

	contact := api.Group("/contact", authRequired)

	contact.Get("/", requirePerm(authorize.ResourceContactMessage, authorize.ActionRead), ch.List)

	m := contact.Group("/:id")
	m.Get("/", requirePerm(authorize.ResourceContactMessage, authorize.ActionRead), ch.GetByID)
	m.Patch("/read", requirePerm(authorize.ResourceContactMessage, authorize.ActionUpdate), ch.MarkRead)
	m.Patch("/assign", requirePerm(authorize.ResourceContactMessage, authorize.ActionUpdate), ch.Assign)
	m.Post("/respond", requirePerm(authorize.ResourceContactMessage, authorize.ActionUpdate), ch.Respond)
	m.Get("/responses", requirePerm(authorize.ResourceContactMessage, authorize.ActionRead), ch.ListResponses)
	m.Patch("/close", requirePerm(authorize.ResourceContactMessage, authorize.ActionClose), ch.Close)
}
