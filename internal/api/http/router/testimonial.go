package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerTestimonialRoutes(
	api fiber.Router,
	th *handler.TestimonialHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: only approved testimonials are visible here.
	api.Get("/testimonials", th.ListApproved)

	testimonials := api.Group("/testimonials", authRequired)

	testimonials.Post("/", requirePerm(authorize.ResourceTestimonial, authorize.ActionCreate), th.Submit)
	testimonials.Get("/moderation", requirePerm(authorize.ResourceTestimonial, authorize.ActionApprove), th.List)

	t := testimonials.Group("/:id")
	t.Get("/", requirePerm(authorize.ResourceTestimonial, authorize.ActionRead), th.GetByID)
	t.Patch("/approve", requirePerm(authorize.ResourceTestimonial, authorize.ActionApprove), th.Approve)
	t.Patch("/reject", requirePerm(authorize.ResourceTestimonial, authorize.ActionApprove), th.Reject)
	t.Delete("/", requirePerm(authorize.ResourceTestimonial, authorize.ActionDelete), th.Delete)
}
