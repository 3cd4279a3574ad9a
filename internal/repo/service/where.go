// Code generated by ent, DO NOT EDIT.

package service

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldSlug, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCategoryID, v))
}

// ShortDescription applies equality check predicate on the "short_description" field. It's identical to ShortDescriptionEQ.
func ShortDescription(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldShortDescription, v))
}

// DetailedDescription applies equality check predicate on the "detailed_description" field. It's identical to DetailedDescriptionEQ.
func DetailedDescription(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldDetailedDescription, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPrice, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldDurationMin, v))
}

// PreparationInstructions applies equality check predicate on the "preparation_instructions" field. It's identical to PreparationInstructionsEQ.
func PreparationInstructions(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPreparationInstructions, v))
}

// PostTreatmentCare applies equality check predicate on the "post_treatment_care" field. It's identical to PostTreatmentCareEQ.
func PostTreatmentCare(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPostTreatmentCare, v))
}

// Contraindications applies equality check predicate on the "contraindications" field. It's identical to ContraindicationsEQ.
func Contraindications(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldContraindications, v))
}

// IsConsultationRequired applies equality check predicate on the "is_consultation_required" field. It's identical to IsConsultationRequiredEQ.
func IsConsultationRequired(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsConsultationRequired, v))
}

// RequiresReferral applies equality check predicate on the "requires_referral" field. It's identical to RequiresReferralEQ.
func RequiresReferral(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldRequiresReferral, v))
}

// MinAge applies equality check predicate on the "min_age" field. It's identical to MinAgeEQ.
func MinAge(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMinAge, v))
}

// MaxAge applies equality check predicate on the "max_age" field. It's identical to MaxAgeEQ.
func MaxAge(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMaxAge, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsActive, v))
}

// IsFeatured applies equality check predicate on the "is_featured" field. It's identical to IsFeaturedEQ.
func IsFeatured(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsFeatured, v))
}

// AvailableOnline applies equality check predicate on the "available_online" field. It's identical to AvailableOnlineEQ.
func AvailableOnline(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldAvailableOnline, v))
}

// MetaDescription applies equality check predicate on the "meta_description" field. It's identical to MetaDescriptionEQ.
func MetaDescription(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMetaDescription, v))
}

// ImageKey applies equality check predicate on the "image_key" field. It's identical to ImageKeyEQ.
func ImageKey(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldImageKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldSlug, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldCategoryID, vs...))
}

// ShortDescriptionEQ applies the EQ predicate on the "short_description" field.
func ShortDescriptionEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldShortDescription, v))
}

// ShortDescriptionNEQ applies the NEQ predicate on the "short_description" field.
func ShortDescriptionNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldShortDescription, v))
}

// ShortDescriptionIn applies the In predicate on the "short_description" field.
func ShortDescriptionIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldShortDescription, vs...))
}

// ShortDescriptionNotIn applies the NotIn predicate on the "short_description" field.
func ShortDescriptionNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldShortDescription, vs...))
}

// ShortDescriptionGT applies the GT predicate on the "short_description" field.
func ShortDescriptionGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldShortDescription, v))
}

// ShortDescriptionGTE applies the GTE predicate on the "short_description" field.
func ShortDescriptionGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldShortDescription, v))
}

// ShortDescriptionLT applies the LT predicate on the "short_description" field.
func ShortDescriptionLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldShortDescription, v))
}

// ShortDescriptionLTE applies the LTE predicate on the "short_description" field.
func ShortDescriptionLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldShortDescription, v))
}

// ShortDescriptionContains applies the Contains predicate on the "short_description" field.
func ShortDescriptionContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldShortDescription, v))
}

// ShortDescriptionHasPrefix applies the HasPrefix predicate on the "short_description" field.
func ShortDescriptionHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldShortDescription, v))
}

// ShortDescriptionHasSuffix applies the HasSuffix predicate on the "short_description" field.
func ShortDescriptionHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldShortDescription, v))
}

// ShortDescriptionEqualFold applies the EqualFold predicate on the "short_description" field.
func ShortDescriptionEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldShortDescription, v))
}

// ShortDescriptionContainsFold applies the ContainsFold predicate on the "short_description" field.
func ShortDescriptionContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldShortDescription, v))
}

// DetailedDescriptionEQ applies the EQ predicate on the "detailed_description" field.
func DetailedDescriptionEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldDetailedDescription, v))
}

// DetailedDescriptionNEQ applies the NEQ predicate on the "detailed_description" field.
func DetailedDescriptionNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldDetailedDescription, v))
}

// DetailedDescriptionIn applies the In predicate on the "detailed_description" field.
func DetailedDescriptionIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldDetailedDescription, vs...))
}

// DetailedDescriptionNotIn applies the NotIn predicate on the "detailed_description" field.
func DetailedDescriptionNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldDetailedDescription, vs...))
}

// DetailedDescriptionGT applies the GT predicate on the "detailed_description" field.
func DetailedDescriptionGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldDetailedDescription, v))
}

// DetailedDescriptionGTE applies the GTE predicate on the "detailed_description" field.
func DetailedDescriptionGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldDetailedDescription, v))
}

// DetailedDescriptionLT applies the LT predicate on the "detailed_description" field.
func DetailedDescriptionLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldDetailedDescription, v))
}

// DetailedDescriptionLTE applies the LTE predicate on the "detailed_description" field.
func DetailedDescriptionLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldDetailedDescription, v))
}

// DetailedDescriptionContains applies the Contains predicate on the "detailed_description" field.
func DetailedDescriptionContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldDetailedDescription, v))
}

// DetailedDescriptionHasPrefix applies the HasPrefix predicate on the "detailed_description" field.
func DetailedDescriptionHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldDetailedDescription, v))
}

// DetailedDescriptionHasSuffix applies the HasSuffix predicate on the "detailed_description" field.
func DetailedDescriptionHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldDetailedDescription, v))
}

// DetailedDescriptionEqualFold applies the EqualFold predicate on the "detailed_description" field.
func DetailedDescriptionEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldDetailedDescription, v))
}

// DetailedDescriptionContainsFold applies the ContainsFold predicate on the "detailed_description" field.
func DetailedDescriptionContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldDetailedDescription, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldPrice, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldDurationMin, v))
}

// PreparationInstructionsEQ applies the EQ predicate on the "preparation_instructions" field.
func PreparationInstructionsEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPreparationInstructions, v))
}

// PreparationInstructionsNEQ applies the NEQ predicate on the "preparation_instructions" field.
func PreparationInstructionsNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldPreparationInstructions, v))
}

// PreparationInstructionsIn applies the In predicate on the "preparation_instructions" field.
func PreparationInstructionsIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldPreparationInstructions, vs...))
}

// PreparationInstructionsNotIn applies the NotIn predicate on the "preparation_instructions" field.
func PreparationInstructionsNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldPreparationInstructions, vs...))
}

// PreparationInstructionsGT applies the GT predicate on the "preparation_instructions" field.
func PreparationInstructionsGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldPreparationInstructions, v))
}

// PreparationInstructionsGTE applies the GTE predicate on the "preparation_instructions" field.
func PreparationInstructionsGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldPreparationInstructions, v))
}

// PreparationInstructionsLT applies the LT predicate on the "preparation_instructions" field.
func PreparationInstructionsLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldPreparationInstructions, v))
}

// PreparationInstructionsLTE applies the LTE predicate on the "preparation_instructions" field.
func PreparationInstructionsLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldPreparationInstructions, v))
}

// PreparationInstructionsContains applies the Contains predicate on the "preparation_instructions" field.
func PreparationInstructionsContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldPreparationInstructions, v))
}

// PreparationInstructionsHasPrefix applies the HasPrefix predicate on the "preparation_instructions" field.
func PreparationInstructionsHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldPreparationInstructions, v))
}

// PreparationInstructionsHasSuffix applies the HasSuffix predicate on the "preparation_instructions" field.
func PreparationInstructionsHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldPreparationInstructions, v))
}

// PreparationInstructionsIsNil applies the IsNil predicate on the "preparation_instructions" field.
func PreparationInstructionsIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldPreparationInstructions))
}

// PreparationInstructionsNotNil applies the NotNil predicate on the "preparation_instructions" field.
func PreparationInstructionsNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldPreparationInstructions))
}

// PreparationInstructionsEqualFold applies the EqualFold predicate on the "preparation_instructions" field.
func PreparationInstructionsEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldPreparationInstructions, v))
}

// PreparationInstructionsContainsFold applies the ContainsFold predicate on the "preparation_instructions" field.
func PreparationInstructionsContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldPreparationInstructions, v))
}

// PostTreatmentCareEQ applies the EQ predicate on the "post_treatment_care" field.
func PostTreatmentCareEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldPostTreatmentCare, v))
}

// PostTreatmentCareNEQ applies the NEQ predicate on the "post_treatment_care" field.
func PostTreatmentCareNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldPostTreatmentCare, v))
}

// PostTreatmentCareIn applies the In predicate on the "post_treatment_care" field.
func PostTreatmentCareIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldPostTreatmentCare, vs...))
}

// PostTreatmentCareNotIn applies the NotIn predicate on the "post_treatment_care" field.
func PostTreatmentCareNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldPostTreatmentCare, vs...))
}

// PostTreatmentCareGT applies the GT predicate on the "post_treatment_care" field.
func PostTreatmentCareGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldPostTreatmentCare, v))
}

// PostTreatmentCareGTE applies the GTE predicate on the "post_treatment_care" field.
func PostTreatmentCareGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldPostTreatmentCare, v))
}

// PostTreatmentCareLT applies the LT predicate on the "post_treatment_care" field.
func PostTreatmentCareLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldPostTreatmentCare, v))
}

// PostTreatmentCareLTE applies the LTE predicate on the "post_treatment_care" field.
func PostTreatmentCareLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldPostTreatmentCare, v))
}

// PostTreatmentCareContains applies the Contains predicate on the "post_treatment_care" field.
func PostTreatmentCareContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldPostTreatmentCare, v))
}

// PostTreatmentCareHasPrefix applies the HasPrefix predicate on the "post_treatment_care" field.
func PostTreatmentCareHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldPostTreatmentCare, v))
}

// PostTreatmentCareHasSuffix applies the HasSuffix predicate on the "post_treatment_care" field.
func PostTreatmentCareHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldPostTreatmentCare, v))
}

// PostTreatmentCareIsNil applies the IsNil predicate on the "post_treatment_care" field.
func PostTreatmentCareIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldPostTreatmentCare))
}

// PostTreatmentCareNotNil applies the NotNil predicate on the "post_treatment_care" field.
func PostTreatmentCareNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldPostTreatmentCare))
}

// PostTreatmentCareEqualFold applies the EqualFold predicate on the "post_treatment_care" field.
func PostTreatmentCareEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldPostTreatmentCare, v))
}

// PostTreatmentCareContainsFold applies the ContainsFold predicate on the "post_treatment_care" field.
func PostTreatmentCareContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldPostTreatmentCare, v))
}

// ContraindicationsEQ applies the EQ predicate on the "contraindications" field.
func ContraindicationsEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldContraindications, v))
}

// ContraindicationsNEQ applies the NEQ predicate on the "contraindications" field.
func ContraindicationsNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldContraindications, v))
}

// ContraindicationsIn applies the In predicate on the "contraindications" field.
func ContraindicationsIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldContraindications, vs...))
}

// ContraindicationsNotIn applies the NotIn predicate on the "contraindications" field.
func ContraindicationsNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldContraindications, vs...))
}

// ContraindicationsGT applies the GT predicate on the "contraindications" field.
func ContraindicationsGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldContraindications, v))
}

// ContraindicationsGTE applies the GTE predicate on the "contraindications" field.
func ContraindicationsGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldContraindications, v))
}

// ContraindicationsLT applies the LT predicate on the "contraindications" field.
func ContraindicationsLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldContraindications, v))
}

// ContraindicationsLTE applies the LTE predicate on the "contraindications" field.
func ContraindicationsLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldContraindications, v))
}

// ContraindicationsContains applies the Contains predicate on the "contraindications" field.
func ContraindicationsContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldContraindications, v))
}

// ContraindicationsHasPrefix applies the HasPrefix predicate on the "contraindications" field.
func ContraindicationsHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldContraindications, v))
}

// ContraindicationsHasSuffix applies the HasSuffix predicate on the "contraindications" field.
func ContraindicationsHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldContraindications, v))
}

// ContraindicationsIsNil applies the IsNil predicate on the "contraindications" field.
func ContraindicationsIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldContraindications))
}

// ContraindicationsNotNil applies the NotNil predicate on the "contraindications" field.
func ContraindicationsNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldContraindications))
}

// ContraindicationsEqualFold applies the EqualFold predicate on the "contraindications" field.
func ContraindicationsEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldContraindications, v))
}

// ContraindicationsContainsFold applies the ContainsFold predicate on the "contraindications" field.
func ContraindicationsContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldContraindications, v))
}

// IsConsultationRequiredEQ applies the EQ predicate on the "is_consultation_required" field.
func IsConsultationRequiredEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsConsultationRequired, v))
}

// IsConsultationRequiredNEQ applies the NEQ predicate on the "is_consultation_required" field.
func IsConsultationRequiredNEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldIsConsultationRequired, v))
}

// RequiresReferralEQ applies the EQ predicate on the "requires_referral" field.
func RequiresReferralEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldRequiresReferral, v))
}

// RequiresReferralNEQ applies the NEQ predicate on the "requires_referral" field.
func RequiresReferralNEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldRequiresReferral, v))
}

// MinAgeEQ applies the EQ predicate on the "min_age" field.
func MinAgeEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMinAge, v))
}

// MinAgeNEQ applies the NEQ predicate on the "min_age" field.
func MinAgeNEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldMinAge, v))
}

// MinAgeIn applies the In predicate on the "min_age" field.
func MinAgeIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldMinAge, vs...))
}

// MinAgeNotIn applies the NotIn predicate on the "min_age" field.
func MinAgeNotIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldMinAge, vs...))
}

// MinAgeGT applies the GT predicate on the "min_age" field.
func MinAgeGT(v int) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldMinAge, v))
}

// MinAgeGTE applies the GTE predicate on the "min_age" field.
func MinAgeGTE(v int) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldMinAge, v))
}

// MinAgeLT applies the LT predicate on the "min_age" field.
func MinAgeLT(v int) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldMinAge, v))
}

// MinAgeLTE applies the LTE predicate on the "min_age" field.
func MinAgeLTE(v int) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldMinAge, v))
}

// MinAgeIsNil applies the IsNil predicate on the "min_age" field.
func MinAgeIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldMinAge))
}

// MinAgeNotNil applies the NotNil predicate on the "min_age" field.
func MinAgeNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldMinAge))
}

// MaxAgeEQ applies the EQ predicate on the "max_age" field.
func MaxAgeEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMaxAge, v))
}

// MaxAgeNEQ applies the NEQ predicate on the "max_age" field.
func MaxAgeNEQ(v int) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldMaxAge, v))
}

// MaxAgeIn applies the In predicate on the "max_age" field.
func MaxAgeIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldMaxAge, vs...))
}

// MaxAgeNotIn applies the NotIn predicate on the "max_age" field.
func MaxAgeNotIn(vs ...int) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldMaxAge, vs...))
}

// MaxAgeGT applies the GT predicate on the "max_age" field.
func MaxAgeGT(v int) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldMaxAge, v))
}

// MaxAgeGTE applies the GTE predicate on the "max_age" field.
func MaxAgeGTE(v int) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldMaxAge, v))
}

// MaxAgeLT applies the LT predicate on the "max_age" field.
func MaxAgeLT(v int) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldMaxAge, v))
}

// MaxAgeLTE applies the LTE predicate on the "max_age" field.
func MaxAgeLTE(v int) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldMaxAge, v))
}

// MaxAgeIsNil applies the IsNil predicate on the "max_age" field.
func MaxAgeIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldMaxAge))
}

// MaxAgeNotNil applies the NotNil predicate on the "max_age" field.
func MaxAgeNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldMaxAge))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldIsActive, v))
}

// IsFeaturedEQ applies the EQ predicate on the "is_featured" field.
func IsFeaturedEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldIsFeatured, v))
}

// IsFeaturedNEQ applies the NEQ predicate on the "is_featured" field.
func IsFeaturedNEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldIsFeatured, v))
}

// AvailableOnlineEQ applies the EQ predicate on the "available_online" field.
func AvailableOnlineEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldAvailableOnline, v))
}

// AvailableOnlineNEQ applies the NEQ predicate on the "available_online" field.
func AvailableOnlineNEQ(v bool) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldAvailableOnline, v))
}

// MetaDescriptionEQ applies the EQ predicate on the "meta_description" field.
func MetaDescriptionEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldMetaDescription, v))
}

// MetaDescriptionNEQ applies the NEQ predicate on the "meta_description" field.
func MetaDescriptionNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldMetaDescription, v))
}

// MetaDescriptionIn applies the In predicate on the "meta_description" field.
func MetaDescriptionIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldMetaDescription, vs...))
}

// MetaDescriptionNotIn applies the NotIn predicate on the "meta_description" field.
func MetaDescriptionNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldMetaDescription, vs...))
}

// MetaDescriptionGT applies the GT predicate on the "meta_description" field.
func MetaDescriptionGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldMetaDescription, v))
}

// MetaDescriptionGTE applies the GTE predicate on the "meta_description" field.
func MetaDescriptionGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldMetaDescription, v))
}

// MetaDescriptionLT applies the LT predicate on the "meta_description" field.
func MetaDescriptionLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldMetaDescription, v))
}

// MetaDescriptionLTE applies the LTE predicate on the "meta_description" field.
func MetaDescriptionLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldMetaDescription, v))
}

// MetaDescriptionContains applies the Contains predicate on the "meta_description" field.
func MetaDescriptionContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldMetaDescription, v))
}

// MetaDescriptionHasPrefix applies the HasPrefix predicate on the "meta_description" field.
func MetaDescriptionHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldMetaDescription, v))
}

// MetaDescriptionHasSuffix applies the HasSuffix predicate on the "meta_description" field.
func MetaDescriptionHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldMetaDescription, v))
}

// MetaDescriptionIsNil applies the IsNil predicate on the "meta_description" field.
func MetaDescriptionIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldMetaDescription))
}

// MetaDescriptionNotNil applies the NotNil predicate on the "meta_description" field.
func MetaDescriptionNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldMetaDescription))
}

// MetaDescriptionEqualFold applies the EqualFold predicate on the "meta_description" field.
func MetaDescriptionEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldMetaDescription, v))
}

// MetaDescriptionContainsFold applies the ContainsFold predicate on the "meta_description" field.
func MetaDescriptionContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldMetaDescription, v))
}

// ImageKeyEQ applies the EQ predicate on the "image_key" field.
func ImageKeyEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldImageKey, v))
}

// ImageKeyNEQ applies the NEQ predicate on the "image_key" field.
func ImageKeyNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldImageKey, v))
}

// ImageKeyIn applies the In predicate on the "image_key" field.
func ImageKeyIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldImageKey, vs...))
}

// ImageKeyNotIn applies the NotIn predicate on the "image_key" field.
func ImageKeyNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldImageKey, vs...))
}

// ImageKeyGT applies the GT predicate on the "image_key" field.
func ImageKeyGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldImageKey, v))
}

// ImageKeyGTE applies the GTE predicate on the "image_key" field.
func ImageKeyGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldImageKey, v))
}

// ImageKeyLT applies the LT predicate on the "image_key" field.
func ImageKeyLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldImageKey, v))
}

// ImageKeyLTE applies the LTE predicate on the "image_key" field.
func ImageKeyLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldImageKey, v))
}

// ImageKeyContains applies the Contains predicate on the "image_key" field.
func ImageKeyContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldImageKey, v))
}

// ImageKeyHasPrefix applies the HasPrefix predicate on the "image_key" field.
func ImageKeyHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldImageKey, v))
}

// ImageKeyHasSuffix applies the HasSuffix predicate on the "image_key" field.
func ImageKeyHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldImageKey, v))
}

// ImageKeyIsNil applies the IsNil predicate on the "image_key" field.
func ImageKeyIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldImageKey))
}

// ImageKeyNotNil applies the NotNil predicate on the "image_key" field.
func ImageKeyNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldImageKey))
}

// ImageKeyEqualFold applies the EqualFold predicate on the "image_key" field.
func ImageKeyEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldImageKey, v))
}

// ImageKeyContainsFold applies the ContainsFold predicate on the "image_key" field.
func ImageKeyContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldImageKey, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Service {
	return predicate.Service(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.ServiceCategory) predicate.Service {
	return predicate.Service(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackages applies the HasEdge predicate on the "packages" edge.
func HasPackages() predicate.Service {
	return predicate.Service(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, PackagesTable, PackagesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackagesWith applies the HasEdge predicate on the "packages" edge with a given conditions (other predicates).
func HasPackagesWith(preds ...predicate.ServicePackage) predicate.Service {
	return predicate.Service(func(s *sql.Selector) {
		step := newPackagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Service) predicate.Service {
	return predicate.Service(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Service) predicate.Service {
	return predicate.Service(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Service) predicate.Service {
	return predicate.Service(sql.NotPredicates(p))
}
