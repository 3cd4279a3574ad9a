package catalog

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entservice "github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	entcategory "github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
	entspecialty "github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
	entpackage "github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CategoryRequest struct {
	Name         string
	Slug         string
	Description  string
	Icon         string
	IsActive     *bool
	DisplayOrder *int
}

type CreateServiceRequest struct {
	Name                    string
	Slug                    string
	CategoryID              uuid.UUID
	ShortDescription        string
	DetailedDescription     string
	Price                   int64
	DurationMin             int
	PreparationInstructions *string
	PostTreatmentCare       *string
	Contraindications       *string
	IsConsultationRequired  *bool
	RequiresReferral        *bool
	MinAge                  *int
	MaxAge                  *int
	IsFeatured              *bool
	AvailableOnline         *bool
	MetaDescription         *string
	ImageKey                *string
}

type UpdateServiceRequest struct {
	Name                    *string
	CategoryID              *uuid.UUID
	ShortDescription        *string
	DetailedDescription     *string
	Price                   *int64
	DurationMin             *int
	PreparationInstructions *string
	PostTreatmentCare       *string
	Contraindications       *string
	IsConsultationRequired  *bool
	RequiresReferral        *bool
	MinAge                  *int
	MaxAge                  *int
	IsActive                *bool
	IsFeatured              *bool
	AvailableOnline         *bool
	MetaDescription         *string
	ImageKey                *string
}

type ListServicesRequest struct {
	CategoryID   *uuid.UUID
	ActiveOnly   bool
	FeaturedOnly bool
	OnlineOnly   bool
	Page         int
	PerPage      int
}

type PackageRequest struct {
	Name          string
	Slug          string
	Description   string
	ServiceIDs    []uuid.UUID
	PackagePrice  int64
	ValidityDays  *int
	ImageKey      *string
}

type AssignSpecialtyRequest struct {
	ServiceID           uuid.UUID
	DoctorID            uuid.UUID
	ProficiencyLevel    *string
	IsPreferredProvider *bool
}

// PackagePricing is the derived discount view of a package.
type PackagePricing struct {
	OriginalPrice   int64
	PackagePrice    int64
	DiscountAmount  int64
	DiscountPercent int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Categories
	CreateCategory(ctx context.Context, req CategoryRequest) (*repo.ServiceCategory, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]*repo.ServiceCategory, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req CategoryRequest) (*repo.ServiceCategory, error)

	// Services
	CreateService(ctx context.Context, req CreateServiceRequest) (*repo.Service, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*repo.Service, error)
	ListServices(ctx context.Context, req ListServicesRequest) ([]*repo.Service, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req UpdateServiceRequest) (*repo.Service, error)

	// Packages
	CreatePackage(ctx context.Context, req PackageRequest) (*repo.ServicePackage, error)
	GetPackage(ctx context.Context, packageID uuid.UUID) (*repo.ServicePackage, error)
	ListPackages(ctx context.Context, activeOnly bool) ([]*repo.ServicePackage, error)
	DeactivatePackage(ctx context.Context, packageID uuid.UUID) error
	Pricing(p *repo.ServicePackage) PackagePricing

	// Doctor specialties
	AssignDoctor(ctx context.Context, req AssignSpecialtyRequest) (*repo.ServiceDoctorSpecialty, error)
	ListServiceDoctors(ctx context.Context, serviceID uuid.UUID) ([]*repo.ServiceDoctorSpecialty, error)
	UnassignDoctor(ctx context.Context, serviceID, doctorID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &catalogService{db: db}
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func (s *catalogService) CreateCategory(ctx context.Context, req CategoryRequest) (*repo.ServiceCategory, error) {
	c := s.db.ServiceCategory.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetDescription(req.Description).
		SetIcon(req.Icon)
	if req.IsActive != nil {
		c = c.SetIsActive(*req.IsActive)
	}
	if req.DisplayOrder != nil {
		c = c.SetDisplayOrder(*req.DisplayOrder)
	}

	cat, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *catalogService) ListCategories(ctx context.Context, activeOnly bool) ([]*repo.ServiceCategory, error) {
	q := s.db.ServiceCategory.Query()
	if activeOnly {
		q = q.Where(entcategory.IsActive(true))
	}

	cats, err := q.
		Order(
			entcategory.ByDisplayOrder(sql.OrderAsc()),
			entcategory.ByName(sql.OrderAsc()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req CategoryRequest) (*repo.ServiceCategory, error) {
	cat, err := s.db.ServiceCategory.Get(ctx, categoryID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	u := s.db.ServiceCategory.UpdateOne(cat)
	if req.Name != "" {
		u = u.SetName(req.Name)
	}
	if req.Description != "" {
		u = u.SetDescription(req.Description)
	}
	if req.Icon != "" {
		u = u.SetIcon(req.Icon)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}
	if req.DisplayOrder != nil {
		u = u.SetDisplayOrder(*req.DisplayOrder)
	}
	return u.Save(ctx)
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

func (s *catalogService) CreateService(ctx context.Context, req CreateServiceRequest) (*repo.Service, error) {
	if _, err := s.db.ServiceCategory.Get(ctx, req.CategoryID); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	c := s.db.Service.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetCategoryID(req.CategoryID).
		SetShortDescription(req.ShortDescription).
		SetDetailedDescription(req.DetailedDescription).
		SetPrice(req.Price).
		SetDurationMin(req.DurationMin)

	if req.PreparationInstructions != nil {
		c = c.SetNillablePreparationInstructions(req.PreparationInstructions)
	}
	if req.PostTreatmentCare != nil {
		c = c.SetNillablePostTreatmentCare(req.PostTreatmentCare)
	}
	if req.Contraindications != nil {
		c = c.SetNillableContraindications(req.Contraindications)
	}
	if req.IsConsultationRequired != nil {
		c = c.SetIsConsultationRequired(*req.IsConsultationRequired)
	}
	if req.RequiresReferral != nil {
		c = c.SetRequiresReferral(*req.RequiresReferral)
	}
	if req.MinAge != nil {
		c = c.SetNillableMinAge(req.MinAge)
	}
	if req.MaxAge != nil {
		c = c.SetNillableMaxAge(req.MaxAge)
	}
	if req.IsFeatured != nil {
		c = c.SetIsFeatured(*req.IsFeatured)
	}
	if req.AvailableOnline != nil {
		c = c.SetAvailableOnline(*req.AvailableOnline)
	}
	if req.MetaDescription != nil {
		c = c.SetNillableMetaDescription(req.MetaDescription)
	}
	if req.ImageKey != nil {
		c = c.SetNillableImageKey(req.ImageKey)
	}

	svc, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*repo.Service, error) {
	svc, err := s.db.Service.Query().
		Where(entservice.ID(serviceID)).
		WithCategory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) GetServiceBySlug(ctx context.Context, slug string) (*repo.Service, error) {
	svc, err := s.db.Service.Query().
		Where(entservice.Slug(slug)).
		WithCategory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service by slug: %w", err)
	}
	return svc, nil
}

func (s *catalogService) ListServices(ctx context.Context, req ListServicesRequest) ([]*repo.Service, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Service.Query().WithCategory()

	if req.CategoryID != nil {
		q = q.Where(entservice.CategoryID(*req.CategoryID))
	}
	if req.ActiveOnly {
		q = q.Where(entservice.IsActive(true))
	}
	if req.FeaturedOnly {
		q = q.Where(entservice.IsFeatured(true))
	}
	if req.OnlineOnly {
		q = q.Where(entservice.AvailableOnline(true))
	}

	services, err := q.
		Order(entservice.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID uuid.UUID, req UpdateServiceRequest) (*repo.Service, error) {
	svc, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	u := s.db.Service.UpdateOne(svc)

	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.CategoryID != nil {
		u = u.SetCategoryID(*req.CategoryID)
	}
	if req.ShortDescription != nil {
		u = u.SetShortDescription(*req.ShortDescription)
	}
	if req.DetailedDescription != nil {
		u = u.SetDetailedDescription(*req.DetailedDescription)
	}
	if req.Price != nil {
		u = u.SetPrice(*req.Price)
	}
	if req.DurationMin != nil {
		u = u.SetDurationMin(*req.DurationMin)
	}
	if req.PreparationInstructions != nil {
		u = u.SetNillablePreparationInstructions(req.PreparationInstructions)
	}
	if req.PostTreatmentCare != nil {
		u = u.SetNillablePostTreatmentCare(req.PostTreatmentCare)
	}
	if req.Contraindications != nil {
		u = u.SetNillableContraindications(req.Contraindications)
	}
	if req.IsConsultationRequired != nil {
		u = u.SetIsConsultationRequired(*req.IsConsultationRequired)
	}
	if req.RequiresReferral != nil {
		u = u.SetRequiresReferral(*req.RequiresReferral)
	}
	if req.MinAge != nil {
		u = u.SetNillableMinAge(req.MinAge)
	}
	if req.MaxAge != nil {
		u = u.SetNillableMaxAge(req.MaxAge)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}
	if req.IsFeatured != nil {
		u = u.SetIsFeatured(*req.IsFeatured)
	}
	if req.AvailableOnline != nil {
		u = u.SetAvailableOnline(*req.AvailableOnline)
	}
	if req.MetaDescription != nil {
		u = u.SetNillableMetaDescription(req.MetaDescription)
	}
	if req.ImageKey != nil {
		u = u.SetNillableImageKey(req.ImageKey)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Packages
// ---------------------------------------------------------------------------

func (s *catalogService) CreatePackage(ctx context.Context, req PackageRequest) (*repo.ServicePackage, error) {
	services, err := s.db.Service.Query().
		Where(entservice.IDIn(req.ServiceIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	if len(services) != len(req.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	// original_price is the sum of the bundled services at creation time
	var original int64
	for _, svc := range services {
		original += svc.Price
	}

	c := s.db.ServicePackage.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetDescription(req.Description).
		SetOriginalPrice(original).
		SetPackagePrice(req.PackagePrice).
		AddServiceIDs(req.ServiceIDs...)

	if req.ValidityDays != nil {
		c = c.SetValidityDays(*req.ValidityDays)
	}
	if req.ImageKey != nil {
		c = c.SetNillableImageKey(req.ImageKey)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create package: %w", err)
	}
	return p, nil
}

func (s *catalogService) GetPackage(ctx context.Context, packageID uuid.UUID) (*repo.ServicePackage, error) {
	p, err := s.db.ServicePackage.Query().
		Where(entpackage.ID(packageID)).
		WithServices().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

func (s *catalogService) ListPackages(ctx context.Context, activeOnly bool) ([]*repo.ServicePackage, error) {
	q := s.db.ServicePackage.Query().WithServices()
	if activeOnly {
		q = q.Where(entpackage.IsActive(true))
	}

	packages, err := q.Order(entpackage.ByName(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *catalogService) DeactivatePackage(ctx context.Context, packageID uuid.UUID) error {
	n, err := s.db.ServicePackage.Update().
		Where(entpackage.ID(packageID)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate package: %w", err)
	}
	if n == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (s *catalogService) Pricing(p *repo.ServicePackage) PackagePricing {
	return PackagePricing{
		OriginalPrice:   p.OriginalPrice,
		PackagePrice:    p.PackagePrice,
		DiscountAmount:  DiscountAmount(p.OriginalPrice, p.PackagePrice),
		DiscountPercent: DiscountPercent(p.OriginalPrice, p.PackagePrice),
	}
}

// ---------------------------------------------------------------------------
// Doctor specialties
// ---------------------------------------------------------------------------

func (s *catalogService) AssignDoctor(ctx context.Context, req AssignSpecialtyRequest) (*repo.ServiceDoctorSpecialty, error) {
	c := s.db.ServiceDoctorSpecialty.Create().
		SetServiceID(req.ServiceID).
		SetDoctorID(req.DoctorID)

	if req.ProficiencyLevel != nil {
		c = c.SetProficiencyLevel(entspecialty.ProficiencyLevel(*req.ProficiencyLevel))
	}
	if req.IsPreferredProvider != nil {
		c = c.SetIsPreferredProvider(*req.IsPreferredProvider)
	}

	sp, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSpecialtyExists
		}
		return nil, fmt.Errorf("assign doctor to service: %w", err)
	}
	return sp, nil
}

func (s *catalogService) ListServiceDoctors(ctx context.Context, serviceID uuid.UUID) ([]*repo.ServiceDoctorSpecialty, error) {
	assignments, err := s.db.ServiceDoctorSpecialty.Query().
		Where(entspecialty.ServiceID(serviceID)).
		WithDoctor().
		Order(entspecialty.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service doctors: %w", err)
	}
	return assignments, nil
}

func (s *catalogService) UnassignDoctor(ctx context.Context, serviceID, doctorID uuid.UUID) error {
	n, err := s.db.ServiceDoctorSpecialty.Delete().
		Where(
			entspecialty.ServiceID(serviceID),
			entspecialty.DoctorID(doctorID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("unassign doctor: %w", err)
	}
	if n == 0 {
		return ErrSpecialtyNotFound
	}
	return nil
}
