package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	ch *handler.ClinicHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: the website shows opening hours and whether the clinic is open.
	api.Get("/clinic/hours", ch.ListBusinessHours)
	api.Get("/clinic/holidays", ch.ListHolidays)
	api.Get("/clinic/open", ch.IsOpen)

	clinic := api.Group("/clinic", authRequired)

	clinic.Get("/settings", requirePerm(authorize.ResourceClinicSettings, authorize.ActionRead), ch.GetSettings)
	clinic.Post("/settings", requirePerm(authorize.ResourceClinicSettings, authorize.ActionCreate), ch.InitSettings)
	clinic.Patch("/settings", requirePerm(authorize.ResourceClinicSettings, authorize.ActionUpdate), ch.UpdateSettings)

	clinic.Put("/hours", requirePerm(authorize.ResourceBusinessHours, authorize.ActionUpdate), ch.UpsertBusinessHours)

	clinic.Post("/holidays", requirePerm(authorize.ResourceHoliday, authorize.ActionCreate), ch.CreateHoliday)
	clinic.Delete("/holidays/:id", requirePerm(authorize.ResourceHoliday, authorize.ActionDelete), ch.DeleteHoliday)

	clinic.Get("/templates/email", requirePerm(authorize.ResourceTemplate, authorize.ActionRead), ch.ListEmailTemplates)
	clinic.Put("/templates/email", requirePerm(authorize.ResourceTemplate, authorize.ActionUpdate), ch.UpsertEmailTemplate)
	clinic.Get("/templates/sms", requirePerm(authorize.ResourceTemplate, authorize.ActionRead), ch.ListSMSTemplates)
	clinic.Put("/templates/sms", requirePerm(authorize.ResourceTemplate, authorize.ActionUpdate), ch.UpsertSMSTemplate)
}
