package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	// Patient CRUD
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.GetByID)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Deactivate)

	// Medical history
	p.Get("/history", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionRead), ph.ListHistory)
	p.Post("/history", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionCreate), ph.AddHistory)
	p.Patch("/history/:historyId", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionUpdate), ph.UpdateHistory)
	p.Delete("/history/:historyId", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionDelete), ph.DeleteHistory)

	// Documents
	p.Get("/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionRead), ph.ListDocuments)
	p.Post("/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionCreate), ph.AddDocument)
	p.Get("/documents/:docId/url", requirePerm(authorize.ResourcePatientDocument, authorize.ActionRead), ph.DocumentURL)
	p.Delete("/documents/:docId", requirePerm(authorize.ResourcePatientDocument, authorize.ActionDelete), ph.DeleteDocument)
}
