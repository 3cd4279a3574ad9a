package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerNewsletterRoutes(
	api fiber.Router,
	nh *handler.NewsletterHandler,
	authRequired fiber.Handler,
	publicForm fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public signup / opt-out. Unsubscribe is linked from every newsletter
	// footer, so it cannot sit behind a login.
	api.Post("/newsletter/subscribe", publicForm, nh.Subscribe)
	api.Post("/newsletter/unsubscribe", publicForm, nh.Unsubscribe)
	// One-click footer links are plain GETs with a token.
	api.Get("/newsletter/unsubscribe", publicForm, nh.Unsubscribe)

	newsletters := api.Group("/newsletter", authRequired)

	newsletters.Get("/subscribers", requirePerm(authorize.ResourceSubscriber, authorize.ActionRead), nh.ListSubscribers)

	newsletters.Get("/", requirePerm(authorize.ResourceNewsletter, authorize.ActionRead), nh.List)
	newsletters.Post("/", requirePerm(authorize.ResourceNewsletter, authorize.ActionCreate), nh.Create)

	n := newsletters.Group("/:id")
	n.Get("/", requirePerm(authorize.ResourceNewsletter, authorize.ActionRead), nh.GetByID)
	n.Patch("/", requirePerm(authorize.ResourceNewsletter, authorize.ActionUpdate), nh.Update)
	n.Delete("/", requirePerm(authorize.ResourceNewsletter, authorize.ActionDelete), nh.Delete)

	n.Post("/schedule", requirePerm(authorize.ResourceNewsletter, authorize.ActionExecute), nh.Schedule)
	n.Post("/cancel-schedule", requirePerm(authorize.ResourceNewsletter, authorize.ActionCancel), nh.CancelSchedule)
	n.Post("/send", requirePerm(authorize.ResourceNewsletter, authorize.ActionExecute), nh.Send)
	n.Get("/campaigns", requirePerm(authorize.ResourceNewsletter, authorize.ActionRead), nh.ListCampaigns)
}
