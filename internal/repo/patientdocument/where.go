// Code generated by ent, DO NOT EDIT.

package patientdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldPatientID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldTitle, v))
}

// FileKey applies equality check predicate on the "file_key" field. It's identical to FileKeyEQ.
func FileKey(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFileKey, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldDescription, v))
}

// UploadedByID applies equality check predicate on the "uploaded_by_id" field. It's identical to UploadedByIDEQ.
func UploadedByID(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldUploadedByID, v))
}

// IsSensitive applies equality check predicate on the "is_sensitive" field. It's identical to IsSensitiveEQ.
func IsSensitive(v bool) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldIsSensitive, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldExpiryDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldPatientID, vs...))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v DocumentType) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v DocumentType) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...DocumentType) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...DocumentType) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldTitle, v))
}

// FileKeyEQ applies the EQ predicate on the "file_key" field.
func FileKeyEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldFileKey, v))
}

// FileKeyNEQ applies the NEQ predicate on the "file_key" field.
func FileKeyNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldFileKey, v))
}

// FileKeyIn applies the In predicate on the "file_key" field.
func FileKeyIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldFileKey, vs...))
}

// FileKeyNotIn applies the NotIn predicate on the "file_key" field.
func FileKeyNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldFileKey, vs...))
}

// FileKeyGT applies the GT predicate on the "file_key" field.
func FileKeyGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldFileKey, v))
}

// FileKeyGTE applies the GTE predicate on the "file_key" field.
func FileKeyGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldFileKey, v))
}

// FileKeyLT applies the LT predicate on the "file_key" field.
func FileKeyLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldFileKey, v))
}

// FileKeyLTE applies the LTE predicate on the "file_key" field.
func FileKeyLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldFileKey, v))
}

// FileKeyContains applies the Contains predicate on the "file_key" field.
func FileKeyContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldFileKey, v))
}

// FileKeyHasPrefix applies the HasPrefix predicate on the "file_key" field.
func FileKeyHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldFileKey, v))
}

// FileKeyHasSuffix applies the HasSuffix predicate on the "file_key" field.
func FileKeyHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldFileKey, v))
}

// FileKeyEqualFold applies the EqualFold predicate on the "file_key" field.
func FileKeyEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldFileKey, v))
}

// FileKeyContainsFold applies the ContainsFold predicate on the "file_key" field.
func FileKeyContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldFileKey, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldContainsFold(FieldDescription, v))
}

// UploadedByIDEQ applies the EQ predicate on the "uploaded_by_id" field.
func UploadedByIDEQ(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldUploadedByID, v))
}

// UploadedByIDNEQ applies the NEQ predicate on the "uploaded_by_id" field.
func UploadedByIDNEQ(v uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldUploadedByID, v))
}

// UploadedByIDIn applies the In predicate on the "uploaded_by_id" field.
func UploadedByIDIn(vs ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldUploadedByID, vs...))
}

// UploadedByIDNotIn applies the NotIn predicate on the "uploaded_by_id" field.
func UploadedByIDNotIn(vs ...uuid.UUID) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldUploadedByID, vs...))
}

// IsSensitiveEQ applies the EQ predicate on the "is_sensitive" field.
func IsSensitiveEQ(v bool) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldIsSensitive, v))
}

// IsSensitiveNEQ applies the NEQ predicate on the "is_sensitive" field.
func IsSensitiveNEQ(v bool) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldIsSensitive, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.PatientDocument {
	return predicate.PatientDocument(sql.FieldNotNull(FieldExpiryDate))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUploadedBy applies the HasEdge predicate on the "uploaded_by" edge.
func HasUploadedBy() predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UploadedByTable, UploadedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUploadedByWith applies the HasEdge predicate on the "uploaded_by" edge with a given conditions (other predicates).
func HasUploadedByWith(preds ...predicate.User) predicate.PatientDocument {
	return predicate.PatientDocument(func(s *sql.Selector) {
		step := newUploadedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientDocument) predicate.PatientDocument {
	return predicate.PatientDocument(sql.NotPredicates(p))
}
