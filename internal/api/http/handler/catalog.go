package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrPackageNotFound),
		errors.Is(err, catalog.ErrSpecialtyNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrSlugTaken),
		errors.Is(err, catalog.ErrSpecialtyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// GET /catalog/categories
func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	activeOnly := c.Query("active_only") != "false"

	cats, err := h.svc.ListCategories(c.Context(), activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, cats)
}

type categoryBody struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order"`
}

func (b categoryBody) toRequest() catalog.CategoryRequest {
	return catalog.CategoryRequest{
		Name:         b.Name,
		Slug:         b.Slug,
		Description:  b.Description,
		Icon:         b.Icon,
		IsActive:     b.IsActive,
		DisplayOrder: b.DisplayOrder,
	}
}

// POST /catalog/categories
func (h *CatalogHandler) CreateCategory(c fiber.Ctx) error {
	var body categoryBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Slug == "" {
		return badRequest(c, "name and slug are required")
	}

	cat, err := h.svc.CreateCategory(c.Context(), body.toRequest())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, cat)
}

// PATCH /catalog/categories/:id
func (h *CatalogHandler) UpdateCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var body categoryBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cat, err := h.svc.UpdateCategory(c.Context(), id, body.toRequest())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, cat)
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

// GET /catalog/services
func (h *CatalogHandler) ListServices(c fiber.Ctx) error {
	var q struct {
		CategoryID   string `query:"category_id"`
		ActiveOnly   bool   `query:"active_only"`
		FeaturedOnly bool   `query:"featured_only"`
		OnlineOnly   bool   `query:"online_only"`
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := catalog.ListServicesRequest{
		ActiveOnly:   q.ActiveOnly,
		FeaturedOnly: q.FeaturedOnly,
		OnlineOnly:   q.OnlineOnly,
		Page:         q.Page,
		PerPage:      q.PerPage,
	}
	if q.CategoryID != "" {
		id, err := uuid.Parse(q.CategoryID)
		if err != nil {
			return badRequest(c, "invalid category_id")
		}
		req.CategoryID = &id
	}

	services, err := h.svc.ListServices(c.Context(), req)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, services)
}

// GET /catalog/services/:idOrSlug
func (h *CatalogHandler) GetService(c fiber.Ctx) error {
	raw := c.Params("idOrSlug")

	if id, err := uuid.Parse(raw); err == nil {
		svc, err := h.svc.GetService(c.Context(), id)
		if err != nil {
			return mapCatalogError(c, err)
		}
		return ok(c, svc)
	}

	svc, err := h.svc.GetServiceBySlug(c.Context(), raw)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// POST /catalog/services
func (h *CatalogHandler) CreateService(c fiber.Ctx) error {
	var body struct {
		Name                    string  `json:"name"`
		Slug                    string  `json:"slug"`
		CategoryID              string  `json:"category_id"`
		ShortDescription        string  `json:"short_description"`
		DetailedDescription     string  `json:"detailed_description"`
		Price                   int64   `json:"price"`
		DurationMin             int     `json:"duration_min"`
		PreparationInstructions *string `json:"preparation_instructions"`
		PostTreatmentCare       *string `json:"post_treatment_care"`
		Contraindications       *string `json:"contraindications"`
		IsConsultationRequired  *bool   `json:"is_consultation_required"`
		RequiresReferral        *bool   `json:"requires_referral"`
		MinAge                  *int    `json:"min_age"`
		MaxAge                  *int    `json:"max_age"`
		IsFeatured              *bool   `json:"is_featured"`
		AvailableOnline         *bool   `json:"available_online"`
		MetaDescription         *string `json:"meta_description"`
		ImageKey                *string `json:"image_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Slug == "" || body.CategoryID == "" {
		return badRequest(c, "name, slug and category_id are required")
	}

	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		return badRequest(c, "invalid category_id")
	}

	svc, err := h.svc.CreateService(c.Context(), catalog.CreateServiceRequest{
		Name:                    body.Name,
		Slug:                    body.Slug,
		CategoryID:              categoryID,
		ShortDescription:        body.ShortDescription,
		DetailedDescription:     body.DetailedDescription,
		Price:                   body.Price,
		DurationMin:             body.DurationMin,
		PreparationInstructions: body.PreparationInstructions,
		PostTreatmentCare:       body.PostTreatmentCare,
		Contraindications:       body.Contraindications,
		IsConsultationRequired:  body.IsConsultationRequired,
		RequiresReferral:        body.RequiresReferral,
		MinAge:                  body.MinAge,
		MaxAge:                  body.MaxAge,
		IsFeatured:              body.IsFeatured,
		AvailableOnline:         body.AvailableOnline,
		MetaDescription:         body.MetaDescription,
		ImageKey:                body.ImageKey,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, svc)
}

// PATCH /catalog/services/:id
func (h *CatalogHandler) UpdateService(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name                    *string `json:"name"`
		CategoryID              *string `json:"category_id"`
		ShortDescription        *string `json:"short_description"`
		DetailedDescription     *string `json:"detailed_description"`
		Price                   *int64  `json:"price"`
		DurationMin             *int    `json:"duration_min"`
		PreparationInstructions *string `json:"preparation_instructions"`
		PostTreatmentCare       *string `json:"post_treatment_care"`
		Contraindications       *string `json:"contraindications"`
		IsConsultationRequired  *bool   `json:"is_consultation_required"`
		RequiresReferral        *bool   `json:"requires_referral"`
		MinAge                  *int    `json:"min_age"`
		MaxAge                  *int    `json:"max_age"`
		IsActive                *bool   `json:"is_active"`
		IsFeatured              *bool   `json:"is_featured"`
		AvailableOnline         *bool   `json:"available_online"`
		MetaDescription         *string `json:"meta_description"`
		ImageKey                *string `json:"image_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := catalog.UpdateServiceRequest{
		Name:                    body.Name,
		ShortDescription:        body.ShortDescription,
		DetailedDescription:     body.DetailedDescription,
		Price:                   body.Price,
		DurationMin:             body.DurationMin,
		PreparationInstructions: body.PreparationInstructions,
		PostTreatmentCare:       body.PostTreatmentCare,
		Contraindications:       body.Contraindications,
		IsConsultationRequired:  body.IsConsultationRequired,
		RequiresReferral:        body.RequiresReferral,
		MinAge:                  body.MinAge,
		MaxAge:                  body.MaxAge,
		IsActive:                body.IsActive,
		IsFeatured:              body.IsFeatured,
		AvailableOnline:         body.AvailableOnline,
		MetaDescription:         body.MetaDescription,
		ImageKey:                body.ImageKey,
	}
	if body.CategoryID != nil {
		cid, err := uuid.Parse(*body.CategoryID)
		if err != nil {
			return badRequest(c, "invalid category_id")
		}
		req.CategoryID = &cid
	}

	svc, err := h.svc.UpdateService(c.Context(), id, req)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// ---------------------------------------------------------------------------
// Packages
// ---------------------------------------------------------------------------

// GET /catalog/packages
func (h *CatalogHandler) ListPackages(c fiber.Ctx) error {
	activeOnly := c.Query("active_only") != "false"

	pkgs, err := h.svc.ListPackages(c.Context(), activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, pkgs)
}

// GET /catalog/packages/:id
func (h *CatalogHandler) GetPackage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid package id")
	}

	pkg, err := h.svc.GetPackage(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, fiber.Map{
		"package": pkg,
		"pricing": h.svc.Pricing(pkg),
	})
}

// POST /catalog/packages
func (h *CatalogHandler) CreatePackage(c fiber.Ctx) error {
	var body struct {
		Name         string   `json:"name"`
		Slug         string   `json:"slug"`
		Description  string   `json:"description"`
		ServiceIDs   []string `json:"service_ids"`
		PackagePrice int64    `json:"package_price"`
		ValidityDays *int     `json:"validity_days"`
		ImageKey     *string  `json:"image_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Slug == "" || len(body.ServiceIDs) == 0 {
		return badRequest(c, "name, slug and service_ids are required")
	}

	serviceIDs := make([]uuid.UUID, 0, len(body.ServiceIDs))
	for _, raw := range body.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid service_ids")
		}
		serviceIDs = append(serviceIDs, id)
	}

	pkg, err := h.svc.CreatePackage(c.Context(), catalog.PackageRequest{
		Name:         body.Name,
		Slug:         body.Slug,
		Description:  body.Description,
		ServiceIDs:   serviceIDs,
		PackagePrice: body.PackagePrice,
		ValidityDays: body.ValidityDays,
		ImageKey:     body.ImageKey,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, pkg)
}

// DELETE /catalog/packages/:id
func (h *CatalogHandler) DeactivatePackage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid package id")
	}

	if err := h.svc.DeactivatePackage(c.Context(), id); err != nil {
		return mapCatalogError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Doctor specialties
// ---------------------------------------------------------------------------

// GET /catalog/services/:id/doctors
func (h *CatalogHandler) ListServiceDoctors(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	specs, err := h.svc.ListServiceDoctors(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, specs)
}

// POST /catalog/services/:id/doctors
func (h *CatalogHandler) AssignDoctor(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		DoctorID            string  `json:"doctor_id"`
		ProficiencyLevel    *string `json:"proficiency_level"`
		IsPreferredProvider *bool   `json:"is_preferred_provider"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	spec, err := h.svc.AssignDoctor(c.Context(), catalog.AssignSpecialtyRequest{
		ServiceID:           serviceID,
		DoctorID:            doctorID,
		ProficiencyLevel:    body.ProficiencyLevel,
		IsPreferredProvider: body.IsPreferredProvider,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, spec)
}

// DELETE /catalog/services/:id/doctors/:doctorId
func (h *CatalogHandler) UnassignDoctor(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	if err := h.svc.UnassignDoctor(c.Context(), serviceID, doctorID); err != nil {
		return mapCatalogError(c, err)
	}
	return noContent(c)
}
