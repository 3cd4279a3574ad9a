package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entuser "github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	entprofile "github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
	"github.com/muchiri-dev/dermacare_backend/pkg/phone"
	"github.com/muchiri-dev/dermacare_backend/pkg/s3"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateRequest struct {
	FirstName         *string
	LastName          *string
	Phone             *string // raw; normalised to E.164
	DateOfBirth       *time.Time
	ProfilePictureKey *string
}

type ProfileRequest struct {
	Gender                       *string
	Address                      *string
	City                         *string
	EmergencyContactName         *string
	EmergencyContactPhone        *string
	EmergencyContactRelationship *string
	MedicalConditions            *string
	Allergies                    *string
	Medications                  *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error

	// UpsertProfile creates or updates the extended profile record.
	UpsertProfile(ctx context.Context, userID uuid.UUID, req ProfileRequest) (*repo.UserProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*repo.UserProfile, error)

	// ProfilePictureURL returns a presigned download URL, or "" when the
	// user has no picture.
	ProfilePictureURL(ctx context.Context, userID uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db    *repo.Client
	files *s3.Client
}

func New(db *repo.Client, files *s3.Client) Service {
	return &userService{db: db, files: files}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		WithProfile().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetNillableFirstName(req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetNillableLastName(req.LastName)
	}
	if req.Phone != nil {
		normalized, err := phone.Normalize(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(normalized)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.ProfilePictureKey != nil {
		upd = upd.SetNillableProfilePictureKey(req.ProfilePictureKey)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	_, err = s.db.User.UpdateOne(u).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

func (s *userService) UpsertProfile(ctx context.Context, userID uuid.UUID, req ProfileRequest) (*repo.UserProfile, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := s.db.UserProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if existing != nil {
		u := s.db.UserProfile.UpdateOne(existing)
		if req.Gender != nil {
			u = u.SetGender(entprofile.Gender(*req.Gender))
		}
		if req.Address != nil {
			u = u.SetNillableAddress(req.Address)
		}
		if req.City != nil {
			u = u.SetNillableCity(req.City)
		}
		if req.EmergencyContactName != nil {
			u = u.SetNillableEmergencyContactName(req.EmergencyContactName)
		}
		if req.EmergencyContactPhone != nil {
			u = u.SetNillableEmergencyContactPhone(req.EmergencyContactPhone)
		}
		if req.EmergencyContactRelationship != nil {
			u = u.SetNillableEmergencyContactRelationship(req.EmergencyContactRelationship)
		}
		if req.MedicalConditions != nil {
			u = u.SetNillableMedicalConditions(req.MedicalConditions)
		}
		if req.Allergies != nil {
			u = u.SetNillableAllergies(req.Allergies)
		}
		if req.Medications != nil {
			u = u.SetNillableMedications(req.Medications)
		}
		return u.Save(ctx)
	}

	c := s.db.UserProfile.Create().SetUserID(userID)
	if req.Gender != nil {
		c = c.SetGender(entprofile.Gender(*req.Gender))
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		c = c.SetNillableCity(req.City)
	}
	if req.EmergencyContactName != nil {
		c = c.SetNillableEmergencyContactName(req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		c = c.SetNillableEmergencyContactPhone(req.EmergencyContactPhone)
	}
	if req.EmergencyContactRelationship != nil {
		c = c.SetNillableEmergencyContactRelationship(req.EmergencyContactRelationship)
	}
	if req.MedicalConditions != nil {
		c = c.SetNillableMedicalConditions(req.MedicalConditions)
	}
	if req.Allergies != nil {
		c = c.SetNillableAllergies(req.Allergies)
	}
	if req.Medications != nil {
		c = c.SetNillableMedications(req.Medications)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*repo.UserProfile, error) {
	p, err := s.db.UserProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *userService) ProfilePictureURL(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.ProfilePictureKey == nil || *u.ProfilePictureKey == "" {
		return "", nil
	}
	return s.files.PresignDownload(ctx, *u.ProfilePictureKey)
}
