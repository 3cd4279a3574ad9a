package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	ch *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public browsing: the clinic website lists services without a login.
	api.Get("/categories", ch.ListCategories)
	api.Get("/services", ch.ListServices)
	api.Get("/services/:idOrSlug", ch.GetService)
	api.Get("/packages", ch.ListPackages)
	api.Get("/packages/:id", ch.GetPackage)

	categories := api.Group("/categories", authRequired)
	categories.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), ch.CreateCategory)
	categories.Patch("/:id", requirePerm(authorize.ResourceService, authorize.ActionUpdate), ch.UpdateCategory)

	services := api.Group("/services", authRequired)
	services.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), ch.CreateService)
	services.Patch("/:id", requirePerm(authorize.ResourceService, authorize.ActionUpdate), ch.UpdateService)

	// Doctor assignment
	services.Get("/:id/doctors", requirePerm(authorize.ResourceService, authorize.ActionRead), ch.ListServiceDoctors)
	services.Post("/:id/doctors", requirePerm(authorize.ResourceService, authorize.ActionUpdate), ch.AssignDoctor)
	services.Delete("/:id/doctors/:doctorId", requirePerm(authorize.ResourceService, authorize.ActionUpdate), ch.UnassignDoctor)

	packages := api.Group("/packages", authRequired)
	packages.Post("/", requirePerm(authorize.ResourceServicePackage, authorize.ActionCreate), ch.CreatePackage)
	packages.Delete("/:id", requirePerm(authorize.ResourceServicePackage, authorize.ActionDelete), ch.DeactivatePackage)
}
