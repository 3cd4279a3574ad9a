package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/config"
	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	enthistory "github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	entpatient "github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	entdocument "github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/pkg/crypto"
	"github.com/muchiri-dev/dermacare_backend/pkg/s3"
)

// Patient id generation races with concurrent creates on the unique
// patient_id column; retry a couple of times before giving up.
const maxIDAttempts = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page      int
	PerPage   int
	IsActive  *bool
	BloodType *string
	Search    string // matches patient_id prefix
}

type CreateRequest struct {
	UserID                 uuid.UUID
	MiddleName             *string
	PreferredName          *string
	Occupation             *string
	BloodType              *string
	SkinType               *string
	HeightCm               *float64
	WeightKg               *float64
	PreferredContactMethod *string
	PreferredLanguage      *string
	InsuranceProvider      *string
	InsuranceNumber        *string // plaintext; encrypted before persisting
	InsuranceValidUntil    *time.Time
	ReferredByID           *uuid.UUID
	ReferralSource         *string
}

type UpdateRequest struct {
	MiddleName             *string
	PreferredName          *string
	Occupation             *string
	BloodType              *string
	SkinType               *string
	HeightCm               *float64
	WeightKg               *float64
	PreferredContactMethod *string
	PreferredLanguage      *string
	InsuranceProvider      *string
	InsuranceNumber        *string
	InsuranceValidUntil    *time.Time
	ReferralSource         *string
}

type AddHistoryRequest struct {
	ConditionType string
	ConditionName string
	Description   *string
	DateDiagnosed *time.Time
	IsCurrent     *bool
	Severity      *string
	Notes         *string
}

type UpdateHistoryRequest struct {
	ConditionName *string
	Description   *string
	DateDiagnosed *time.Time
	IsCurrent     *bool
	Severity      *string
	Notes         *string
}

type AddDocumentRequest struct {
	DocumentType string
	Title        string
	FileKey      string
	Description  *string
	UploadedByID uuid.UUID
	IsSensitive  *bool
	ExpiryDate   *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	GetByPatientID(ctx context.Context, humanID string) (*repo.Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Deactivate(ctx context.Context, patientID uuid.UUID) error

	// InsuranceNumber decrypts the stored insurance number for display.
	InsuranceNumber(p *repo.Patient) (string, error)

	// Medical history
	AddHistory(ctx context.Context, patientID uuid.UUID, req AddHistoryRequest) (*repo.MedicalHistory, error)
	ListHistory(ctx context.Context, patientID uuid.UUID, conditionType *string) ([]*repo.MedicalHistory, error)
	UpdateHistory(ctx context.Context, patientID, historyID uuid.UUID, req UpdateHistoryRequest) (*repo.MedicalHistory, error)
	DeleteHistory(ctx context.Context, patientID, historyID uuid.UUID) error

	// Documents
	AddDocument(ctx context.Context, patientID uuid.UUID, req AddDocumentRequest) (*repo.PatientDocument, error)
	ListDocuments(ctx context.Context, patientID uuid.UUID, documentType *string) ([]*repo.PatientDocument, error)
	DocumentURL(ctx context.Context, patientID, documentID uuid.UUID) (string, error)
	DeleteDocument(ctx context.Context, patientID, documentID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	files  *s3.Client
	encKey []byte // AES-256 key for insurance_number encryption
}

func New(db *repo.Client, files *s3.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("patient service: invalid encryption key: %w", err)
	}
	return &patientService{db: db, files: files, encKey: encKey}, nil
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	exists, err := s.db.Patient.Query().
		Where(entpatient.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if exists {
		return nil, ErrPatientAlreadyExists
	}

	var encInsurance *string
	if req.InsuranceNumber != nil && *req.InsuranceNumber != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.InsuranceNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt insurance number: %w", err)
		}
		encInsurance = &enc
	}

	prefix := IDPrefix(time.Now())

	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		humanID, err := s.nextPatientID(ctx, prefix)
		if err != nil {
			return nil, err
		}

		c := s.db.Patient.Create().
			SetUserID(req.UserID).
			SetPatientID(humanID)

		if req.MiddleName != nil {
			c = c.SetNillableMiddleName(req.MiddleName)
		}
		if req.PreferredName != nil {
			c = c.SetNillablePreferredName(req.PreferredName)
		}
		if req.Occupation != nil {
			c = c.SetNillableOccupation(req.Occupation)
		}
		if req.BloodType != nil {
			c = c.SetBloodType(entpatient.BloodType(*req.BloodType))
		}
		if req.SkinType != nil {
			st := entpatient.SkinType(*req.SkinType)
			c = c.SetSkinType(st)
		}
		if req.HeightCm != nil {
			c = c.SetNillableHeightCm(req.HeightCm)
		}
		if req.WeightKg != nil {
			c = c.SetNillableWeightKg(req.WeightKg)
		}
		if req.PreferredContactMethod != nil {
			c = c.SetPreferredContactMethod(entpatient.PreferredContactMethod(*req.PreferredContactMethod))
		}
		if req.PreferredLanguage != nil {
			c = c.SetPreferredLanguage(*req.PreferredLanguage)
		}
		if req.InsuranceProvider != nil {
			c = c.SetNillableInsuranceProvider(req.InsuranceProvider)
		}
		if encInsurance != nil {
			c = c.SetNillableInsuranceNumber(encInsurance)
		}
		if req.InsuranceValidUntil != nil {
			c = c.SetNillableInsuranceValidUntil(req.InsuranceValidUntil)
		}
		if req.ReferredByID != nil {
			c = c.SetNillableReferredByID(req.ReferredByID)
		}
		if req.ReferralSource != nil {
			rs := entpatient.ReferralSource(*req.ReferralSource)
			c = c.SetReferralSource(rs)
		}

		p, err := c.Save(ctx)
		if err == nil {
			return p, nil
		}
		// Lost the id sequence race; recompute and try again.
		if repo.IsConstraintError(err) {
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return nil, fmt.Errorf("create patient: id sequence contention: %w", lastErr)
}

// nextPatientID reads the highest existing id under prefix and increments
// it. Ordered by length before value: past sequence 9999 the ids grow a
// digit, and a plain string sort would put "…10000" below "…9999".
func (s *patientService) nextPatientID(ctx context.Context, prefix string) (string, error) {
	last, err := s.db.Patient.Query().
		Where(entpatient.PatientIDHasPrefix(prefix)).
		Order(func(sel *sql.Selector) {
			col := sel.C(entpatient.FieldPatientID)
			sel.OrderExpr(sql.Expr(fmt.Sprintf("length(%s) DESC, %s DESC", col, col)))
		}).
		First(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return "", fmt.Errorf("query max patient id: %w", err)
	}

	lastID := ""
	if last != nil {
		lastID = last.PatientID
	}
	return NextID(prefix, lastID)
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByPatientID(ctx context.Context, humanID string) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.PatientID(humanID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by patient_id: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by user: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query()

	if req.IsActive != nil {
		q = q.Where(entpatient.IsActive(*req.IsActive))
	}
	if req.BloodType != nil {
		q = q.Where(entpatient.BloodTypeEQ(entpatient.BloodType(*req.BloodType)))
	}
	if req.Search != "" {
		q = q.Where(entpatient.PatientIDHasPrefix(req.Search))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		WithUser().
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.MiddleName != nil {
		u = u.SetNillableMiddleName(req.MiddleName)
	}
	if req.PreferredName != nil {
		u = u.SetNillablePreferredName(req.PreferredName)
	}
	if req.Occupation != nil {
		u = u.SetNillableOccupation(req.Occupation)
	}
	if req.BloodType != nil {
		u = u.SetBloodType(entpatient.BloodType(*req.BloodType))
	}
	if req.SkinType != nil {
		u = u.SetSkinType(entpatient.SkinType(*req.SkinType))
	}
	if req.HeightCm != nil {
		u = u.SetNillableHeightCm(req.HeightCm)
	}
	if req.WeightKg != nil {
		u = u.SetNillableWeightKg(req.WeightKg)
	}
	if req.PreferredContactMethod != nil {
		u = u.SetPreferredContactMethod(entpatient.PreferredContactMethod(*req.PreferredContactMethod))
	}
	if req.PreferredLanguage != nil {
		u = u.SetPreferredLanguage(*req.PreferredLanguage)
	}
	if req.InsuranceProvider != nil {
		u = u.SetNillableInsuranceProvider(req.InsuranceProvider)
	}
	if req.InsuranceNumber != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.InsuranceNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt insurance number: %w", err)
		}
		u = u.SetInsuranceNumber(enc)
	}
	if req.InsuranceValidUntil != nil {
		u = u.SetNillableInsuranceValidUntil(req.InsuranceValidUntil)
	}
	if req.ReferralSource != nil {
		u = u.SetReferralSource(entpatient.ReferralSource(*req.ReferralSource))
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

func (s *patientService) Deactivate(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if err := s.db.Patient.UpdateOne(p).SetIsActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("deactivate patient: %w", err)
	}
	return nil
}

func (s *patientService) InsuranceNumber(p *repo.Patient) (string, error) {
	if p.InsuranceNumber == nil || *p.InsuranceNumber == "" {
		return "", nil
	}
	plain, err := crypto.Decrypt(s.encKey, *p.InsuranceNumber)
	if err != nil {
		return "", fmt.Errorf("decrypt insurance number: %w", err)
	}
	return plain, nil
}

// ---------------------------------------------------------------------------
// Medical history
// ---------------------------------------------------------------------------

func (s *patientService) AddHistory(ctx context.Context, patientID uuid.UUID, req AddHistoryRequest) (*repo.MedicalHistory, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	c := s.db.MedicalHistory.Create().
		SetPatientID(patientID).
		SetConditionType(enthistory.ConditionType(req.ConditionType)).
		SetConditionName(req.ConditionName)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.DateDiagnosed != nil {
		c = c.SetNillableDateDiagnosed(req.DateDiagnosed)
	}
	if req.IsCurrent != nil {
		c = c.SetIsCurrent(*req.IsCurrent)
	}
	if req.Severity != nil {
		c = c.SetSeverity(enthistory.Severity(*req.Severity))
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	h, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medical history: %w", err)
	}
	return h, nil
}

func (s *patientService) ListHistory(ctx context.Context, patientID uuid.UUID, conditionType *string) ([]*repo.MedicalHistory, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	q := s.db.MedicalHistory.Query().
		Where(enthistory.PatientID(patientID))
	if conditionType != nil {
		q = q.Where(enthistory.ConditionTypeEQ(enthistory.ConditionType(*conditionType)))
	}

	entries, err := q.Order(enthistory.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical history: %w", err)
	}
	return entries, nil
}

func (s *patientService) UpdateHistory(ctx context.Context, patientID, historyID uuid.UUID, req UpdateHistoryRequest) (*repo.MedicalHistory, error) {
	h, err := s.db.MedicalHistory.Query().
		Where(enthistory.ID(historyID), enthistory.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("get medical history: %w", err)
	}

	u := s.db.MedicalHistory.UpdateOne(h)
	if req.ConditionName != nil {
		u = u.SetConditionName(*req.ConditionName)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.DateDiagnosed != nil {
		u = u.SetNillableDateDiagnosed(req.DateDiagnosed)
	}
	if req.IsCurrent != nil {
		u = u.SetIsCurrent(*req.IsCurrent)
	}
	if req.Severity != nil {
		u = u.SetSeverity(enthistory.Severity(*req.Severity))
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	return u.Save(ctx)
}

func (s *patientService) DeleteHistory(ctx context.Context, patientID, historyID uuid.UUID) error {
	n, err := s.db.MedicalHistory.Delete().
		Where(enthistory.ID(historyID), enthistory.PatientID(patientID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete medical history: %w", err)
	}
	if n == 0 {
		return ErrHistoryNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

func (s *patientService) AddDocument(ctx context.Context, patientID uuid.UUID, req AddDocumentRequest) (*repo.PatientDocument, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	c := s.db.PatientDocument.Create().
		SetPatientID(patientID).
		SetDocumentType(entdocument.DocumentType(req.DocumentType)).
		SetTitle(req.Title).
		SetFileKey(req.FileKey).
		SetUploadedByID(req.UploadedByID)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.IsSensitive != nil {
		c = c.SetIsSensitive(*req.IsSensitive)
	}
	if req.ExpiryDate != nil {
		c = c.SetNillableExpiryDate(req.ExpiryDate)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient document: %w", err)
	}
	return d, nil
}

func (s *patientService) ListDocuments(ctx context.Context, patientID uuid.UUID, documentType *string) ([]*repo.PatientDocument, error) {
	if _, err := s.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	q := s.db.PatientDocument.Query().
		Where(entdocument.PatientID(patientID))
	if documentType != nil {
		q = q.Where(entdocument.DocumentTypeEQ(entdocument.DocumentType(*documentType)))
	}

	docs, err := q.Order(entdocument.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient documents: %w", err)
	}
	return docs, nil
}

func (s *patientService) DocumentURL(ctx context.Context, patientID, documentID uuid.UUID) (string, error) {
	d, err := s.getDocument(ctx, patientID, documentID)
	if err != nil {
		return "", err
	}
	url, err := s.files.PresignDownload(ctx, d.FileKey)
	if err != nil {
		return "", fmt.Errorf("presign document: %w", err)
	}
	return url, nil
}

func (s *patientService) DeleteDocument(ctx context.Context, patientID, documentID uuid.UUID) error {
	d, err := s.getDocument(ctx, patientID, documentID)
	if err != nil {
		return err
	}

	if err := s.db.PatientDocument.DeleteOne(d).Exec(ctx); err != nil {
		return fmt.Errorf("delete patient document: %w", err)
	}

	// Best-effort: the row is gone either way, orphaned objects are
	// cleaned up by the bucket lifecycle policy.
	_ = s.files.Delete(ctx, d.FileKey)

	return nil
}

func (s *patientService) getDocument(ctx context.Context, patientID, documentID uuid.UUID) (*repo.PatientDocument, error) {
	d, err := s.db.PatientDocument.Query().
		Where(entdocument.ID(documentID), entdocument.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get patient document: %w", err)
	}
	return d, nil
}
