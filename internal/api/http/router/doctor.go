package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	dh *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public directory: patients browse doctors before booking.
	api.Get("/doctors", dh.List)
	api.Get("/doctors/specializations", dh.ListSpecializations)

	doctors := api.Group("/doctors", authRequired)

	doctors.Post("/", requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), dh.Create)
	doctors.Post("/specializations", requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), dh.CreateSpecialization)

	// Leave approval lives above the per-doctor group: the leave id is global.
	doctors.Patch("/leaves/:leaveId/approve", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionApprove), dh.ApproveLeave)

	d := doctors.Group("/:id")
	d.Get("/", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), dh.GetByID)
	d.Patch("/", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), dh.Update)
	d.Put("/specializations", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), dh.AssignSpecializations)

	// Weekly availability
	d.Get("/availability", requirePerm(authorize.ResourceDoctorSchedule, authorize.ActionRead), dh.ListAvailability)
	d.Put("/availability", requirePerm(authorize.ResourceDoctorSchedule, authorize.ActionUpdate), dh.UpsertAvailability)
	d.Delete("/availability/:slotId", requirePerm(authorize.ResourceDoctorSchedule, authorize.ActionDelete), dh.RemoveAvailability)

	// Leaves
	d.Get("/leaves", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionRead), dh.ListLeaves)
	d.Post("/leaves", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionCreate), dh.RequestLeave)
	d.Delete("/leaves/:leaveId", requirePerm(authorize.ResourceDoctorLeave, authorize.ActionDelete), dh.DeleteLeave)
}
