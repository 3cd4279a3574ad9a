package testimonial

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entpatient "github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	enttm "github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	PatientID uuid.UUID
	Content   string
	Rating    int
	ServiceID *uuid.UUID
	DoctorID  *uuid.UUID
	ImageKey  *string
}

type ListRequest struct {
	Status    *string
	DoctorID  *uuid.UUID
	ServiceID *uuid.UUID
	Page      int
	PerPage   int
}

type PaginatedTestimonials struct {
	Items   []*repo.Testimonial
	Total   int
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit files a review for moderation. New testimonials always start
	// out pending regardless of who submits them.
	Submit(ctx context.Context, req SubmitRequest) (*repo.Testimonial, error)

	GetByID(ctx context.Context, testimonialID uuid.UUID) (*repo.Testimonial, error)

	// ListApproved is the public view used on the site.
	ListApproved(ctx context.Context, doctorID, serviceID *uuid.UUID, limit int) ([]*repo.Testimonial, error)

	// List is the moderation view.
	List(ctx context.Context, req ListRequest) (*PaginatedTestimonials, error)

	Approve(ctx context.Context, testimonialID, approvedByID uuid.UUID) (*repo.Testimonial, error)
	Reject(ctx context.Context, testimonialID, rejectedByID uuid.UUID) (*repo.Testimonial, error)
	Delete(ctx context.Context, testimonialID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type testimonialService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &testimonialService{db: db}
}

func (s *testimonialService) Submit(ctx context.Context, req SubmitRequest) (*repo.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	c := s.db.Testimonial.Create().
		SetPatientID(req.PatientID).
		SetContent(req.Content).
		SetRating(req.Rating).
		SetSubmittedAt(time.Now().UTC())
	if req.ServiceID != nil {
		c = c.SetServiceID(*req.ServiceID)
	}
	if req.DoctorID != nil {
		c = c.SetDoctorID(*req.DoctorID)
	}
	if req.ImageKey != nil {
		c = c.SetNillableImageKey(req.ImageKey)
	}

	t, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) GetByID(ctx context.Context, testimonialID uuid.UUID) (*repo.Testimonial, error) {
	t, err := s.db.Testimonial.Query().
		Where(enttm.ID(testimonialID)).
		WithPatient().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) ListApproved(ctx context.Context, doctorID, serviceID *uuid.UUID, limit int) ([]*repo.Testimonial, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := s.db.Testimonial.Query().
		Where(enttm.StatusEQ(enttm.StatusApproved))
	if doctorID != nil {
		q = q.Where(enttm.DoctorID(*doctorID))
	}
	if serviceID != nil {
		q = q.Where(enttm.ServiceID(*serviceID))
	}

	items, err := q.
		Order(enttm.ByApprovedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}
	return items, nil
}

func (s *testimonialService) List(ctx context.Context, req ListRequest) (*PaginatedTestimonials, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Testimonial.Query()
	if req.Status != nil {
		q = q.Where(enttm.StatusEQ(enttm.Status(*req.Status)))
	}
	if req.DoctorID != nil {
		q = q.Where(enttm.DoctorID(*req.DoctorID))
	}
	if req.ServiceID != nil {
		q = q.Where(enttm.ServiceID(*req.ServiceID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count testimonials: %w", err)
	}

	items, err := q.
		Order(enttm.BySubmittedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithPatient().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	return &PaginatedTestimonials{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *testimonialService) Approve(ctx context.Context, testimonialID, approvedByID uuid.UUID) (*repo.Testimonial, error) {
	return s.moderate(ctx, testimonialID, approvedByID, enttm.StatusApproved)
}

func (s *testimonialService) Reject(ctx context.Context, testimonialID, rejectedByID uuid.UUID) (*repo.Testimonial, error) {
	return s.moderate(ctx, testimonialID, rejectedByID, enttm.StatusRejected)
}

func (s *testimonialService) moderate(ctx context.Context, testimonialID, moderatorID uuid.UUID, status enttm.Status) (*repo.Testimonial, error) {
	t, err := s.GetByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}
	if t.Status != enttm.StatusPending {
		return nil, ErrNotPending
	}

	u := s.db.Testimonial.UpdateOne(t).
		SetStatus(status).
		SetApprovedByID(moderatorID)
	if status == enttm.StatusApproved {
		u = u.SetApprovedAt(time.Now().UTC())
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("moderate testimonial: %w", err)
	}
	return updated, nil
}

func (s *testimonialService) Delete(ctx context.Context, testimonialID uuid.UUID) error {
	n, err := s.db.Testimonial.Delete().
		Where(enttm.ID(testimonialID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
