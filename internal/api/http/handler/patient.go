package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrHistoryNotFound),
		errors.Is(err, patient.ErrDocumentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrPatientAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPatientID):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
		IsActive  *bool  `query:"is_active"`
		BloodType string `query:"blood_type"`
		Search    string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListRequest{
		Page:     q.Page,
		PerPage:  q.PerPage,
		IsActive: q.IsActive,
		Search:   q.Search,
	}
	if q.BloodType != "" {
		req.BloodType = &q.BloodType
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, result)
}

// GET /patients/:id — accepts either the row UUID or the human-readable
// PAT<year><seq> identifier.
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	raw := c.Params("id")

	if strings.HasPrefix(raw, "PAT") {
		p, err := h.svc.GetByPatientID(c.Context(), raw)
		if err != nil {
			return mapPatientError(c, err)
		}
		return ok(c, p)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID                 string     `json:"user_id"`
		MiddleName             *string    `json:"middle_name"`
		PreferredName          *string    `json:"preferred_name"`
		Occupation             *string    `json:"occupation"`
		BloodType              *string    `json:"blood_type"`
		SkinType               *string    `json:"skin_type"`
		HeightCm               *float64   `json:"height_cm"`
		WeightKg               *float64   `json:"weight_kg"`
		PreferredContactMethod *string    `json:"preferred_contact_method"`
		PreferredLanguage      *string    `json:"preferred_language"`
		InsuranceProvider      *string    `json:"insurance_provider"`
		InsuranceNumber        *string    `json:"insurance_number"`
		InsuranceValidUntil    *time.Time `json:"insurance_valid_until"`
		ReferralSource         *string    `json:"referral_source"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		UserID:                 userID,
		MiddleName:             body.MiddleName,
		PreferredName:          body.PreferredName,
		Occupation:             body.Occupation,
		BloodType:              body.BloodType,
		SkinType:               body.SkinType,
		HeightCm:               body.HeightCm,
		WeightKg:               body.WeightKg,
		PreferredContactMethod: body.PreferredContactMethod,
		PreferredLanguage:      body.PreferredLanguage,
		InsuranceProvider:      body.InsuranceProvider,
		InsuranceNumber:        body.InsuranceNumber,
		InsuranceValidUntil:    body.InsuranceValidUntil,
		ReferralSource:         body.ReferralSource,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		MiddleName             *string    `json:"middle_name"`
		PreferredName          *string    `json:"preferred_name"`
		Occupation             *string    `json:"occupation"`
		BloodType              *string    `json:"blood_type"`
		SkinType               *string    `json:"skin_type"`
		HeightCm               *float64   `json:"height_cm"`
		WeightKg               *float64   `json:"weight_kg"`
		PreferredContactMethod *string    `json:"preferred_contact_method"`
		PreferredLanguage      *string    `json:"preferred_language"`
		InsuranceProvider      *string    `json:"insurance_provider"`
		InsuranceNumber        *string    `json:"insurance_number"`
		InsuranceValidUntil    *time.Time `json:"insurance_valid_until"`
		ReferralSource         *string    `json:"referral_source"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdateRequest{
		MiddleName:             body.MiddleName,
		PreferredName:          body.PreferredName,
		Occupation:             body.Occupation,
		BloodType:              body.BloodType,
		SkinType:               body.SkinType,
		HeightCm:               body.HeightCm,
		WeightKg:               body.WeightKg,
		PreferredContactMethod: body.PreferredContactMethod,
		PreferredLanguage:      body.PreferredLanguage,
		InsuranceProvider:      body.InsuranceProvider,
		InsuranceNumber:        body.InsuranceNumber,
		InsuranceValidUntil:    body.InsuranceValidUntil,
		ReferralSource:         body.ReferralSource,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Deactivate(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Medical history
// ---------------------------------------------------------------------------

// POST /patients/:id/history
func (h *PatientHandler) AddHistory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		ConditionType string     `json:"condition_type"`
		ConditionName string     `json:"condition_name"`
		Description   *string    `json:"description"`
		DateDiagnosed *time.Time `json:"date_diagnosed"`
		IsCurrent     *bool      `json:"is_current"`
		Severity      *string    `json:"severity"`
		Notes         *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ConditionType == "" || body.ConditionName == "" {
		return badRequest(c, "condition_type and condition_name are required")
	}

	rec, err := h.svc.AddHistory(c.Context(), id, patient.AddHistoryRequest{
		ConditionType: body.ConditionType,
		ConditionName: body.ConditionName,
		Description:   body.Description,
		DateDiagnosed: body.DateDiagnosed,
		IsCurrent:     body.IsCurrent,
		Severity:      body.Severity,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, rec)
}

// GET /patients/:id/history
func (h *PatientHandler) ListHistory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var conditionType *string
	if v := c.Query("condition_type"); v != "" {
		conditionType = &v
	}

	records, err := h.svc.ListHistory(c.Context(), id, conditionType)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, records)
}

// PATCH /patients/:id/history/:historyId
func (h *PatientHandler) UpdateHistory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	historyID, err := uuid.Parse(c.Params("historyId"))
	if err != nil {
		return badRequest(c, "invalid history id")
	}

	var body struct {
		ConditionName *string    `json:"condition_name"`
		Description   *string    `json:"description"`
		DateDiagnosed *time.Time `json:"date_diagnosed"`
		IsCurrent     *bool      `json:"is_current"`
		Severity      *string    `json:"severity"`
		Notes         *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.UpdateHistory(c.Context(), id, historyID, patient.UpdateHistoryRequest{
		ConditionName: body.ConditionName,
		Description:   body.Description,
		DateDiagnosed: body.DateDiagnosed,
		IsCurrent:     body.IsCurrent,
		Severity:      body.Severity,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, rec)
}

// DELETE /patients/:id/history/:historyId
func (h *PatientHandler) DeleteHistory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	historyID, err := uuid.Parse(c.Params("historyId"))
	if err != nil {
		return badRequest(c, "invalid history id")
	}

	if err := h.svc.DeleteHistory(c.Context(), id, historyID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

// POST /patients/:id/documents
func (h *PatientHandler) AddDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		DocumentType string     `json:"document_type"`
		Title        string     `json:"title"`
		FileKey      string     `json:"file_key"`
		Description  *string    `json:"description"`
		UploadedByID string     `json:"uploaded_by_id"`
		IsSensitive  *bool      `json:"is_sensitive"`
		ExpiryDate   *time.Time `json:"expiry_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DocumentType == "" || body.Title == "" || body.FileKey == "" {
		return badRequest(c, "document_type, title and file_key are required")
	}

	uploadedBy, err := uuid.Parse(body.UploadedByID)
	if err != nil {
		return badRequest(c, "invalid uploaded_by_id")
	}

	doc, err := h.svc.AddDocument(c.Context(), id, patient.AddDocumentRequest{
		DocumentType: body.DocumentType,
		Title:        body.Title,
		FileKey:      body.FileKey,
		Description:  body.Description,
		UploadedByID: uploadedBy,
		IsSensitive:  body.IsSensitive,
		ExpiryDate:   body.ExpiryDate,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, doc)
}

// GET /patients/:id/documents
func (h *PatientHandler) ListDocuments(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var documentType *string
	if v := c.Query("document_type"); v != "" {
		documentType = &v
	}

	docs, err := h.svc.ListDocuments(c.Context(), id, documentType)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, docs)
}

// GET /patients/:id/documents/:docId/url
func (h *PatientHandler) DocumentURL(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	docID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	url, err := h.svc.DocumentURL(c.Context(), id, docID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"url": url})
}

// DELETE /patients/:id/documents/:docId
func (h *PatientHandler) DeleteDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	docID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	if err := h.svc.DeleteDocument(c.Context(), id, docID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
