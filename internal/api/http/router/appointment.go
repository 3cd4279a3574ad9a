package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Book)

	// Waiting list sits above the per-appointment group.
	wl := appts.Group("/waiting-list")
	wl.Get("/", requirePerm(authorize.ResourceWaitingList, authorize.ActionRead), ah.ListWaitingList)
	wl.Post("/", requirePerm(authorize.ResourceWaitingList, authorize.ActionCreate), ah.JoinWaitingList)
	wl.Delete("/:id", requirePerm(authorize.ResourceWaitingList, authorize.ActionDelete), ah.LeaveWaitingList)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)

	// Lifecycle transitions
	a.Patch("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Confirm)
	a.Patch("/check-in", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.CheckIn)
	a.Patch("/start", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Start)
	a.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Complete)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)
	a.Patch("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.MarkNoShow)
	a.Post("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Reschedule)

	// Notes
	a.Get("/notes", requirePerm(authorize.ResourceAppointmentNote, authorize.ActionRead), ah.ListNotes)
	a.Post("/notes", requirePerm(authorize.ResourceAppointmentNote, authorize.ActionCreate), ah.AddNote)
}
