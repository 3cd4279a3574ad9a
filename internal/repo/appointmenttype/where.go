// Code generated by ent, DO NOT EDIT.

package appointmenttype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldCreatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDescription, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDurationMin, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldColor, v))
}

// IsConsultation applies equality check predicate on the "is_consultation" field. It's identical to IsConsultationEQ.
func IsConsultation(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsConsultation, v))
}

// RequiresPreparation applies equality check predicate on the "requires_preparation" field. It's identical to RequiresPreparationEQ.
func RequiresPreparation(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldRequiresPreparation, v))
}

// PreparationInstructions applies equality check predicate on the "preparation_instructions" field. It's identical to PreparationInstructionsEQ.
func PreparationInstructions(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldPreparationInstructions, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldDescription, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldDurationMin, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldColor, v))
}

// IsConsultationEQ applies the EQ predicate on the "is_consultation" field.
func IsConsultationEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsConsultation, v))
}

// IsConsultationNEQ applies the NEQ predicate on the "is_consultation" field.
func IsConsultationNEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldIsConsultation, v))
}

// RequiresPreparationEQ applies the EQ predicate on the "requires_preparation" field.
func RequiresPreparationEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldRequiresPreparation, v))
}

// RequiresPreparationNEQ applies the NEQ predicate on the "requires_preparation" field.
func RequiresPreparationNEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldRequiresPreparation, v))
}

// PreparationInstructionsEQ applies the EQ predicate on the "preparation_instructions" field.
func PreparationInstructionsEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldPreparationInstructions, v))
}

// PreparationInstructionsNEQ applies the NEQ predicate on the "preparation_instructions" field.
func PreparationInstructionsNEQ(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldPreparationInstructions, v))
}

// PreparationInstructionsIn applies the In predicate on the "preparation_instructions" field.
func PreparationInstructionsIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIn(FieldPreparationInstructions, vs...))
}

// PreparationInstructionsNotIn applies the NotIn predicate on the "preparation_instructions" field.
func PreparationInstructionsNotIn(vs ...string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotIn(FieldPreparationInstructions, vs...))
}

// PreparationInstructionsGT applies the GT predicate on the "preparation_instructions" field.
func PreparationInstructionsGT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGT(FieldPreparationInstructions, v))
}

// PreparationInstructionsGTE applies the GTE predicate on the "preparation_instructions" field.
func PreparationInstructionsGTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldGTE(FieldPreparationInstructions, v))
}

// PreparationInstructionsLT applies the LT predicate on the "preparation_instructions" field.
func PreparationInstructionsLT(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLT(FieldPreparationInstructions, v))
}

// PreparationInstructionsLTE applies the LTE predicate on the "preparation_instructions" field.
func PreparationInstructionsLTE(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldLTE(FieldPreparationInstructions, v))
}

// PreparationInstructionsContains applies the Contains predicate on the "preparation_instructions" field.
func PreparationInstructionsContains(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContains(FieldPreparationInstructions, v))
}

// PreparationInstructionsHasPrefix applies the HasPrefix predicate on the "preparation_instructions" field.
func PreparationInstructionsHasPrefix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasPrefix(FieldPreparationInstructions, v))
}

// PreparationInstructionsHasSuffix applies the HasSuffix predicate on the "preparation_instructions" field.
func PreparationInstructionsHasSuffix(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldHasSuffix(FieldPreparationInstructions, v))
}

// PreparationInstructionsIsNil applies the IsNil predicate on the "preparation_instructions" field.
func PreparationInstructionsIsNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldIsNull(FieldPreparationInstructions))
}

// PreparationInstructionsNotNil applies the NotNil predicate on the "preparation_instructions" field.
func PreparationInstructionsNotNil() predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNotNull(FieldPreparationInstructions))
}

// PreparationInstructionsEqualFold applies the EqualFold predicate on the "preparation_instructions" field.
func PreparationInstructionsEqualFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEqualFold(FieldPreparationInstructions, v))
}

// PreparationInstructionsContainsFold applies the ContainsFold predicate on the "preparation_instructions" field.
func PreparationInstructionsContainsFold(v string) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldContainsFold(FieldPreparationInstructions, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AppointmentType {
	return predicate.AppointmentType(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentType) predicate.AppointmentType {
	return predicate.AppointmentType(sql.NotPredicates(p))
}
