package doctor

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entdoctor "github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	entavail "github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	entleave "github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	entspec "github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID               uuid.UUID
	Title                *string
	LicenseNumber        string
	YearsOfExperience    int
	Biography            string
	Education            string
	Certifications       *string
	ConsultationFee      int64
	ProfileImageKey      *string
	TwitterURL           *string
	LinkedinURL          *string
	FacebookURL          *string
	HospitalAffiliations *string
	ResearchInterests    *string
	Publications         *string
	SpecializationIDs    []uuid.UUID
}

type UpdateRequest struct {
	Title                *string
	YearsOfExperience    *int
	Biography            *string
	Education            *string
	Certifications       *string
	ConsultationFee      *int64
	IsAvailable          *bool
	ProfileImageKey      *string
	TwitterURL           *string
	LinkedinURL          *string
	FacebookURL          *string
	HospitalAffiliations *string
	ResearchInterests    *string
	Publications         *string
}

type AvailabilityRequest struct {
	DayOfWeek   int8   // 0=Monday .. 6=Sunday
	StartTime   string // "15:04"
	EndTime     string
	IsAvailable *bool
	MaxPatients *int
}

type LeaveRequest struct {
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context, availableOnly bool, specializationID *uuid.UUID) ([]*repo.Doctor, error)
	Update(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error)

	// Specializations
	CreateSpecialization(ctx context.Context, name string, description *string) (*repo.Specialization, error)
	ListSpecializations(ctx context.Context) ([]*repo.Specialization, error)
	AssignSpecializations(ctx context.Context, doctorID uuid.UUID, specializationIDs []uuid.UUID) error

	// Weekly availability
	UpsertAvailability(ctx context.Context, doctorID uuid.UUID, req AvailabilityRequest) (*repo.DoctorAvailability, error)
	ListAvailability(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorAvailability, error)
	RemoveAvailability(ctx context.Context, doctorID, availabilityID uuid.UUID) error

	// Leave
	RequestLeave(ctx context.Context, doctorID uuid.UUID, req LeaveRequest) (*repo.DoctorLeave, error)
	ListLeaves(ctx context.Context, doctorID uuid.UUID, pendingOnly bool) ([]*repo.DoctorLeave, error)
	ApproveLeave(ctx context.Context, leaveID uuid.UUID) error
	DeleteLeave(ctx context.Context, doctorID, leaveID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	exists, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	licenseTaken, err := s.db.Doctor.Query().
		Where(entdoctor.LicenseNumber(req.LicenseNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check license number: %w", err)
	}
	if licenseTaken {
		return nil, ErrLicenseNumberTaken
	}

	c := s.db.Doctor.Create().
		SetUserID(req.UserID).
		SetLicenseNumber(req.LicenseNumber).
		SetYearsOfExperience(req.YearsOfExperience).
		SetBiography(req.Biography).
		SetEducation(req.Education).
		SetConsultationFee(req.ConsultationFee)

	if req.Title != nil {
		c = c.SetTitle(*req.Title)
	}
	if req.Certifications != nil {
		c = c.SetNillableCertifications(req.Certifications)
	}
	if req.ProfileImageKey != nil {
		c = c.SetNillableProfileImageKey(req.ProfileImageKey)
	}
	if req.TwitterURL != nil {
		c = c.SetNillableTwitterURL(req.TwitterURL)
	}
	if req.LinkedinURL != nil {
		c = c.SetNillableLinkedinURL(req.LinkedinURL)
	}
	if req.FacebookURL != nil {
		c = c.SetNillableFacebookURL(req.FacebookURL)
	}
	if req.HospitalAffiliations != nil {
		c = c.SetNillableHospitalAffiliations(req.HospitalAffiliations)
	}
	if req.ResearchInterests != nil {
		c = c.SetNillableResearchInterests(req.ResearchInterests)
	}
	if req.Publications != nil {
		c = c.SetNillablePublications(req.Publications)
	}
	if len(req.SpecializationIDs) > 0 {
		c = c.AddSpecializationIDs(req.SpecializationIDs...)
	}

	doc, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return doc, nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	doc, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID)).
		WithUser().
		WithSpecializations().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return doc, nil
}

func (s *doctorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error) {
	doc, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor by user: %w", err)
	}
	return doc, nil
}

func (s *doctorService) List(ctx context.Context, availableOnly bool, specializationID *uuid.UUID) ([]*repo.Doctor, error) {
	q := s.db.Doctor.Query().
		WithUser().
		WithSpecializations()

	if availableOnly {
		q = q.Where(entdoctor.IsAvailable(true))
	}
	if specializationID != nil {
		q = q.Where(entdoctor.HasSpecializationsWith(entspec.ID(*specializationID)))
	}

	doctors, err := q.Order(entdoctor.ByCreatedAt(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *doctorService) Update(ctx context.Context, doctorID uuid.UUID, req UpdateRequest) (*repo.Doctor, error) {
	doc, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	u := s.db.Doctor.UpdateOne(doc)

	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.YearsOfExperience != nil {
		u = u.SetYearsOfExperience(*req.YearsOfExperience)
	}
	if req.Biography != nil {
		u = u.SetBiography(*req.Biography)
	}
	if req.Education != nil {
		u = u.SetEducation(*req.Education)
	}
	if req.Certifications != nil {
		u = u.SetNillableCertifications(req.Certifications)
	}
	if req.ConsultationFee != nil {
		u = u.SetConsultationFee(*req.ConsultationFee)
	}
	if req.IsAvailable != nil {
		u = u.SetIsAvailable(*req.IsAvailable)
	}
	if req.ProfileImageKey != nil {
		u = u.SetNillableProfileImageKey(req.ProfileImageKey)
	}
	if req.TwitterURL != nil {
		u = u.SetNillableTwitterURL(req.TwitterURL)
	}
	if req.LinkedinURL != nil {
		u = u.SetNillableLinkedinURL(req.LinkedinURL)
	}
	if req.FacebookURL != nil {
		u = u.SetNillableFacebookURL(req.FacebookURL)
	}
	if req.HospitalAffiliations != nil {
		u = u.SetNillableHospitalAffiliations(req.HospitalAffiliations)
	}
	if req.ResearchInterests != nil {
		u = u.SetNillableResearchInterests(req.ResearchInterests)
	}
	if req.Publications != nil {
		u = u.SetNillablePublications(req.Publications)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Specializations
// ---------------------------------------------------------------------------

func (s *doctorService) CreateSpecialization(ctx context.Context, name string, description *string) (*repo.Specialization, error) {
	c := s.db.Specialization.Create().SetName(name)
	if description != nil {
		c = c.SetNillableDescription(description)
	}

	spec, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSpecializationTaken
		}
		return nil, fmt.Errorf("create specialization: %w", err)
	}
	return spec, nil
}

func (s *doctorService) ListSpecializations(ctx context.Context) ([]*repo.Specialization, error) {
	specs, err := s.db.Specialization.Query().
		Order(entspec.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list specializations: %w", err)
	}
	return specs, nil
}

// AssignSpecializations replaces the doctor's specialization set.
func (s *doctorService) AssignSpecializations(ctx context.Context, doctorID uuid.UUID, specializationIDs []uuid.UUID) error {
	doc, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}

	found, err := s.db.Specialization.Query().
		Where(entspec.IDIn(specializationIDs...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("check specializations: %w", err)
	}
	if found != len(specializationIDs) {
		return ErrSpecializationMissing
	}

	if err := s.db.Doctor.UpdateOne(doc).
		ClearSpecializations().
		AddSpecializationIDs(specializationIDs...).
		Exec(ctx); err != nil {
		return fmt.Errorf("assign specializations: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Weekly availability
// ---------------------------------------------------------------------------

func (s *doctorService) UpsertAvailability(ctx context.Context, doctorID uuid.UUID, req AvailabilityRequest) (*repo.DoctorAvailability, error) {
	if _, err := s.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	if req.EndTime <= req.StartTime {
		return nil, ErrInvalidTimeWindow
	}

	existing, err := s.db.DoctorAvailability.Query().
		Where(
			entavail.DoctorID(doctorID),
			entavail.DayOfWeek(req.DayOfWeek),
			entavail.StartTime(req.StartTime),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	if existing != nil {
		u := s.db.DoctorAvailability.UpdateOne(existing).
			SetEndTime(req.EndTime)
		if req.IsAvailable != nil {
			u = u.SetIsAvailable(*req.IsAvailable)
		}
		if req.MaxPatients != nil {
			u = u.SetMaxPatients(*req.MaxPatients)
		}
		return u.Save(ctx)
	}

	c := s.db.DoctorAvailability.Create().
		SetDoctorID(doctorID).
		SetDayOfWeek(req.DayOfWeek).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)
	if req.IsAvailable != nil {
		c = c.SetIsAvailable(*req.IsAvailable)
	}
	if req.MaxPatients != nil {
		c = c.SetMaxPatients(*req.MaxPatients)
	}

	w, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}
	return w, nil
}

func (s *doctorService) ListAvailability(ctx context.Context, doctorID uuid.UUID) ([]*repo.DoctorAvailability, error) {
	windows, err := s.db.DoctorAvailability.Query().
		Where(entavail.DoctorID(doctorID)).
		Order(
			entavail.ByDayOfWeek(sql.OrderAsc()),
			entavail.ByStartTime(sql.OrderAsc()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return windows, nil
}

func (s *doctorService) RemoveAvailability(ctx context.Context, doctorID, availabilityID uuid.UUID) error {
	n, err := s.db.DoctorAvailability.Delete().
		Where(entavail.ID(availabilityID), entavail.DoctorID(doctorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove availability: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Leave
// ---------------------------------------------------------------------------

func (s *doctorService) RequestLeave(ctx context.Context, doctorID uuid.UUID, req LeaveRequest) (*repo.DoctorLeave, error) {
	if _, err := s.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrLeaveDatesInverted
	}

	c := s.db.DoctorLeave.Create().
		SetDoctorID(doctorID).
		SetLeaveType(entleave.LeaveType(req.LeaveType)).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate)
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	l, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create leave request: %w", err)
	}
	return l, nil
}

func (s *doctorService) ListLeaves(ctx context.Context, doctorID uuid.UUID, pendingOnly bool) ([]*repo.DoctorLeave, error) {
	q := s.db.DoctorLeave.Query().
		Where(entleave.DoctorID(doctorID))
	if pendingOnly {
		q = q.Where(entleave.IsApproved(false))
	}

	leaves, err := q.Order(entleave.ByStartDate(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	return leaves, nil
}

func (s *doctorService) ApproveLeave(ctx context.Context, leaveID uuid.UUID) error {
	n, err := s.db.DoctorLeave.Update().
		Where(entleave.ID(leaveID)).
		SetIsApproved(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("approve leave: %w", err)
	}
	if n == 0 {
		return ErrLeaveNotFound
	}
	return nil
}

func (s *doctorService) DeleteLeave(ctx context.Context, doctorID, leaveID uuid.UUID) error {
	n, err := s.db.DoctorLeave.Delete().
		Where(entleave.ID(leaveID), entleave.DoctorID(doctorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	if n == 0 {
		return ErrLeaveNotFound
	}
	return nil
}
