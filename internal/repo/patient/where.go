// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPatientID, v))
}

// MiddleName applies equality check predicate on the "middle_name" field. It's identical to MiddleNameEQ.
func MiddleName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMiddleName, v))
}

// PreferredName applies equality check predicate on the "preferred_name" field. It's identical to PreferredNameEQ.
func PreferredName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPreferredName, v))
}

// Occupation applies equality check predicate on the "occupation" field. It's identical to OccupationEQ.
func Occupation(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldOccupation, v))
}

// HeightCm applies equality check predicate on the "height_cm" field. It's identical to HeightCmEQ.
func HeightCm(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldHeightCm, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldWeightKg, v))
}

// PreferredLanguage applies equality check predicate on the "preferred_language" field. It's identical to PreferredLanguageEQ.
func PreferredLanguage(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPreferredLanguage, v))
}

// InsuranceProvider applies equality check predicate on the "insurance_provider" field. It's identical to InsuranceProviderEQ.
func InsuranceProvider(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsuranceNumber applies equality check predicate on the "insurance_number" field. It's identical to InsuranceNumberEQ.
func InsuranceNumber(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNumber, v))
}

// InsuranceValidUntil applies equality check predicate on the "insurance_valid_until" field. It's identical to InsuranceValidUntilEQ.
func InsuranceValidUntil(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceValidUntil, v))
}

// ReferredByID applies equality check predicate on the "referred_by_id" field. It's identical to ReferredByIDEQ.
func ReferredByID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferredByID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPatientID, v))
}

// MiddleNameEQ applies the EQ predicate on the "middle_name" field.
func MiddleNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMiddleName, v))
}

// MiddleNameNEQ applies the NEQ predicate on the "middle_name" field.
func MiddleNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMiddleName, v))
}

// MiddleNameIn applies the In predicate on the "middle_name" field.
func MiddleNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMiddleName, vs...))
}

// MiddleNameNotIn applies the NotIn predicate on the "middle_name" field.
func MiddleNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMiddleName, vs...))
}

// MiddleNameGT applies the GT predicate on the "middle_name" field.
func MiddleNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMiddleName, v))
}

// MiddleNameGTE applies the GTE predicate on the "middle_name" field.
func MiddleNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMiddleName, v))
}

// MiddleNameLT applies the LT predicate on the "middle_name" field.
func MiddleNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMiddleName, v))
}

// MiddleNameLTE applies the LTE predicate on the "middle_name" field.
func MiddleNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMiddleName, v))
}

// MiddleNameContains applies the Contains predicate on the "middle_name" field.
func MiddleNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMiddleName, v))
}

// MiddleNameHasPrefix applies the HasPrefix predicate on the "middle_name" field.
func MiddleNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMiddleName, v))
}

// MiddleNameHasSuffix applies the HasSuffix predicate on the "middle_name" field.
func MiddleNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMiddleName, v))
}

// MiddleNameIsNil applies the IsNil predicate on the "middle_name" field.
func MiddleNameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMiddleName))
}

// MiddleNameNotNil applies the NotNil predicate on the "middle_name" field.
func MiddleNameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMiddleName))
}

// MiddleNameEqualFold applies the EqualFold predicate on the "middle_name" field.
func MiddleNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMiddleName, v))
}

// MiddleNameContainsFold applies the ContainsFold predicate on the "middle_name" field.
func MiddleNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMiddleName, v))
}

// PreferredNameEQ applies the EQ predicate on the "preferred_name" field.
func PreferredNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPreferredName, v))
}

// PreferredNameNEQ applies the NEQ predicate on the "preferred_name" field.
func PreferredNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPreferredName, v))
}

// PreferredNameIn applies the In predicate on the "preferred_name" field.
func PreferredNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPreferredName, vs...))
}

// PreferredNameNotIn applies the NotIn predicate on the "preferred_name" field.
func PreferredNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPreferredName, vs...))
}

// PreferredNameGT applies the GT predicate on the "preferred_name" field.
func PreferredNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPreferredName, v))
}

// PreferredNameGTE applies the GTE predicate on the "preferred_name" field.
func PreferredNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPreferredName, v))
}

// PreferredNameLT applies the LT predicate on the "preferred_name" field.
func PreferredNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPreferredName, v))
}

// PreferredNameLTE applies the LTE predicate on the "preferred_name" field.
func PreferredNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPreferredName, v))
}

// PreferredNameContains applies the Contains predicate on the "preferred_name" field.
func PreferredNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPreferredName, v))
}

// PreferredNameHasPrefix applies the HasPrefix predicate on the "preferred_name" field.
func PreferredNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPreferredName, v))
}

// PreferredNameHasSuffix applies the HasSuffix predicate on the "preferred_name" field.
func PreferredNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPreferredName, v))
}

// PreferredNameIsNil applies the IsNil predicate on the "preferred_name" field.
func PreferredNameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldPreferredName))
}

// PreferredNameNotNil applies the NotNil predicate on the "preferred_name" field.
func PreferredNameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldPreferredName))
}

// PreferredNameEqualFold applies the EqualFold predicate on the "preferred_name" field.
func PreferredNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPreferredName, v))
}

// PreferredNameContainsFold applies the ContainsFold predicate on the "preferred_name" field.
func PreferredNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPreferredName, v))
}

// OccupationEQ applies the EQ predicate on the "occupation" field.
func OccupationEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldOccupation, v))
}

// OccupationNEQ applies the NEQ predicate on the "occupation" field.
func OccupationNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldOccupation, v))
}

// OccupationIn applies the In predicate on the "occupation" field.
func OccupationIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldOccupation, vs...))
}

// OccupationNotIn applies the NotIn predicate on the "occupation" field.
func OccupationNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldOccupation, vs...))
}

// OccupationGT applies the GT predicate on the "occupation" field.
func OccupationGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldOccupation, v))
}

// OccupationGTE applies the GTE predicate on the "occupation" field.
func OccupationGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldOccupation, v))
}

// OccupationLT applies the LT predicate on the "occupation" field.
func OccupationLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldOccupation, v))
}

// OccupationLTE applies the LTE predicate on the "occupation" field.
func OccupationLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldOccupation, v))
}

// OccupationContains applies the Contains predicate on the "occupation" field.
func OccupationContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldOccupation, v))
}

// OccupationHasPrefix applies the HasPrefix predicate on the "occupation" field.
func OccupationHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldOccupation, v))
}

// OccupationHasSuffix applies the HasSuffix predicate on the "occupation" field.
func OccupationHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldOccupation, v))
}

// OccupationIsNil applies the IsNil predicate on the "occupation" field.
func OccupationIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldOccupation))
}

// OccupationNotNil applies the NotNil predicate on the "occupation" field.
func OccupationNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldOccupation))
}

// OccupationEqualFold applies the EqualFold predicate on the "occupation" field.
func OccupationEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldOccupation, v))
}

// OccupationContainsFold applies the ContainsFold predicate on the "occupation" field.
func OccupationContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldOccupation, v))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v BloodType) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v BloodType) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...BloodType) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...BloodType) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBloodType, vs...))
}

// SkinTypeEQ applies the EQ predicate on the "skin_type" field.
func SkinTypeEQ(v SkinType) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSkinType, v))
}

// SkinTypeNEQ applies the NEQ predicate on the "skin_type" field.
func SkinTypeNEQ(v SkinType) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSkinType, v))
}

// SkinTypeIn applies the In predicate on the "skin_type" field.
func SkinTypeIn(vs ...SkinType) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSkinType, vs...))
}

// SkinTypeNotIn applies the NotIn predicate on the "skin_type" field.
func SkinTypeNotIn(vs ...SkinType) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSkinType, vs...))
}

// SkinTypeIsNil applies the IsNil predicate on the "skin_type" field.
func SkinTypeIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldSkinType))
}

// SkinTypeNotNil applies the NotNil predicate on the "skin_type" field.
func SkinTypeNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldSkinType))
}

// HeightCmEQ applies the EQ predicate on the "height_cm" field.
func HeightCmEQ(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldHeightCm, v))
}

// HeightCmNEQ applies the NEQ predicate on the "height_cm" field.
func HeightCmNEQ(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldHeightCm, v))
}

// HeightCmIn applies the In predicate on the "height_cm" field.
func HeightCmIn(vs ...float64) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldHeightCm, vs...))
}

// HeightCmNotIn applies the NotIn predicate on the "height_cm" field.
func HeightCmNotIn(vs ...float64) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldHeightCm, vs...))
}

// HeightCmGT applies the GT predicate on the "height_cm" field.
func HeightCmGT(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldHeightCm, v))
}

// HeightCmGTE applies the GTE predicate on the "height_cm" field.
func HeightCmGTE(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldHeightCm, v))
}

// HeightCmLT applies the LT predicate on the "height_cm" field.
func HeightCmLT(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldHeightCm, v))
}

// HeightCmLTE applies the LTE predicate on the "height_cm" field.
func HeightCmLTE(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldHeightCm, v))
}

// HeightCmIsNil applies the IsNil predicate on the "height_cm" field.
func HeightCmIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldHeightCm))
}

// HeightCmNotNil applies the NotNil predicate on the "height_cm" field.
func HeightCmNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldHeightCm))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...float64) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...float64) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v float64) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldWeightKg, v))
}

// WeightKgIsNil applies the IsNil predicate on the "weight_kg" field.
func WeightKgIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldWeightKg))
}

// WeightKgNotNil applies the NotNil predicate on the "weight_kg" field.
func WeightKgNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldWeightKg))
}

// PreferredContactMethodEQ applies the EQ predicate on the "preferred_contact_method" field.
func PreferredContactMethodEQ(v PreferredContactMethod) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPreferredContactMethod, v))
}

// PreferredContactMethodNEQ applies the NEQ predicate on the "preferred_contact_method" field.
func PreferredContactMethodNEQ(v PreferredContactMethod) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPreferredContactMethod, v))
}

// PreferredContactMethodIn applies the In predicate on the "preferred_contact_method" field.
func PreferredContactMethodIn(vs ...PreferredContactMethod) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPreferredContactMethod, vs...))
}

// PreferredContactMethodNotIn applies the NotIn predicate on the "preferred_contact_method" field.
func PreferredContactMethodNotIn(vs ...PreferredContactMethod) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPreferredContactMethod, vs...))
}

// PreferredLanguageEQ applies the EQ predicate on the "preferred_language" field.
func PreferredLanguageEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageNEQ applies the NEQ predicate on the "preferred_language" field.
func PreferredLanguageNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageIn applies the In predicate on the "preferred_language" field.
func PreferredLanguageIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageNotIn applies the NotIn predicate on the "preferred_language" field.
func PreferredLanguageNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageGT applies the GT predicate on the "preferred_language" field.
func PreferredLanguageGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPreferredLanguage, v))
}

// PreferredLanguageGTE applies the GTE predicate on the "preferred_language" field.
func PreferredLanguageGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPreferredLanguage, v))
}

// PreferredLanguageLT applies the LT predicate on the "preferred_language" field.
func PreferredLanguageLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPreferredLanguage, v))
}

// PreferredLanguageLTE applies the LTE predicate on the "preferred_language" field.
func PreferredLanguageLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPreferredLanguage, v))
}

// PreferredLanguageContains applies the Contains predicate on the "preferred_language" field.
func PreferredLanguageContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPreferredLanguage, v))
}

// PreferredLanguageHasPrefix applies the HasPrefix predicate on the "preferred_language" field.
func PreferredLanguageHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPreferredLanguage, v))
}

// PreferredLanguageHasSuffix applies the HasSuffix predicate on the "preferred_language" field.
func PreferredLanguageHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPreferredLanguage, v))
}

// PreferredLanguageEqualFold applies the EqualFold predicate on the "preferred_language" field.
func PreferredLanguageEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPreferredLanguage, v))
}

// PreferredLanguageContainsFold applies the ContainsFold predicate on the "preferred_language" field.
func PreferredLanguageContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPreferredLanguage, v))
}

// InsuranceProviderEQ applies the EQ predicate on the "insurance_provider" field.
func InsuranceProviderEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderNEQ applies the NEQ predicate on the "insurance_provider" field.
func InsuranceProviderNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderIn applies the In predicate on the "insurance_provider" field.
func InsuranceProviderIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderNotIn applies the NotIn predicate on the "insurance_provider" field.
func InsuranceProviderNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderGT applies the GT predicate on the "insurance_provider" field.
func InsuranceProviderGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceProvider, v))
}

// InsuranceProviderGTE applies the GTE predicate on the "insurance_provider" field.
func InsuranceProviderGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceProvider, v))
}

// InsuranceProviderLT applies the LT predicate on the "insurance_provider" field.
func InsuranceProviderLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceProvider, v))
}

// InsuranceProviderLTE applies the LTE predicate on the "insurance_provider" field.
func InsuranceProviderLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceProvider, v))
}

// InsuranceProviderContains applies the Contains predicate on the "insurance_provider" field.
func InsuranceProviderContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsuranceProvider, v))
}

// InsuranceProviderHasPrefix applies the HasPrefix predicate on the "insurance_provider" field.
func InsuranceProviderHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsuranceProvider, v))
}

// InsuranceProviderHasSuffix applies the HasSuffix predicate on the "insurance_provider" field.
func InsuranceProviderHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsuranceProvider, v))
}

// InsuranceProviderIsNil applies the IsNil predicate on the "insurance_provider" field.
func InsuranceProviderIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceProvider))
}

// InsuranceProviderNotNil applies the NotNil predicate on the "insurance_provider" field.
func InsuranceProviderNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceProvider))
}

// InsuranceProviderEqualFold applies the EqualFold predicate on the "insurance_provider" field.
func InsuranceProviderEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsuranceProvider, v))
}

// InsuranceProviderContainsFold applies the ContainsFold predicate on the "insurance_provider" field.
func InsuranceProviderContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsuranceProvider, v))
}

// InsuranceNumberEQ applies the EQ predicate on the "insurance_number" field.
func InsuranceNumberEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceNumber, v))
}

// InsuranceNumberNEQ applies the NEQ predicate on the "insurance_number" field.
func InsuranceNumberNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceNumber, v))
}

// InsuranceNumberIn applies the In predicate on the "insurance_number" field.
func InsuranceNumberIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceNumber, vs...))
}

// InsuranceNumberNotIn applies the NotIn predicate on the "insurance_number" field.
func InsuranceNumberNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceNumber, vs...))
}

// InsuranceNumberGT applies the GT predicate on the "insurance_number" field.
func InsuranceNumberGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceNumber, v))
}

// InsuranceNumberGTE applies the GTE predicate on the "insurance_number" field.
func InsuranceNumberGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceNumber, v))
}

// InsuranceNumberLT applies the LT predicate on the "insurance_number" field.
func InsuranceNumberLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceNumber, v))
}

// InsuranceNumberLTE applies the LTE predicate on the "insurance_number" field.
func InsuranceNumberLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceNumber, v))
}

// InsuranceNumberContains applies the Contains predicate on the "insurance_number" field.
func InsuranceNumberContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsuranceNumber, v))
}

// InsuranceNumberHasPrefix applies the HasPrefix predicate on the "insurance_number" field.
func InsuranceNumberHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsuranceNumber, v))
}

// InsuranceNumberHasSuffix applies the HasSuffix predicate on the "insurance_number" field.
func InsuranceNumberHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsuranceNumber, v))
}

// InsuranceNumberIsNil applies the IsNil predicate on the "insurance_number" field.
func InsuranceNumberIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceNumber))
}

// InsuranceNumberNotNil applies the NotNil predicate on the "insurance_number" field.
func InsuranceNumberNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceNumber))
}

// InsuranceNumberEqualFold applies the EqualFold predicate on the "insurance_number" field.
func InsuranceNumberEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsuranceNumber, v))
}

// InsuranceNumberContainsFold applies the ContainsFold predicate on the "insurance_number" field.
func InsuranceNumberContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsuranceNumber, v))
}

// InsuranceValidUntilEQ applies the EQ predicate on the "insurance_valid_until" field.
func InsuranceValidUntilEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilNEQ applies the NEQ predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilIn applies the In predicate on the "insurance_valid_until" field.
func InsuranceValidUntilIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsuranceValidUntil, vs...))
}

// InsuranceValidUntilNotIn applies the NotIn predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsuranceValidUntil, vs...))
}

// InsuranceValidUntilGT applies the GT predicate on the "insurance_valid_until" field.
func InsuranceValidUntilGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilGTE applies the GTE predicate on the "insurance_valid_until" field.
func InsuranceValidUntilGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilLT applies the LT predicate on the "insurance_valid_until" field.
func InsuranceValidUntilLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilLTE applies the LTE predicate on the "insurance_valid_until" field.
func InsuranceValidUntilLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilIsNil applies the IsNil predicate on the "insurance_valid_until" field.
func InsuranceValidUntilIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsuranceValidUntil))
}

// InsuranceValidUntilNotNil applies the NotNil predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsuranceValidUntil))
}

// ReferredByIDEQ applies the EQ predicate on the "referred_by_id" field.
func ReferredByIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferredByID, v))
}

// ReferredByIDNEQ applies the NEQ predicate on the "referred_by_id" field.
func ReferredByIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldReferredByID, v))
}

// ReferredByIDIn applies the In predicate on the "referred_by_id" field.
func ReferredByIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldReferredByID, vs...))
}

// ReferredByIDNotIn applies the NotIn predicate on the "referred_by_id" field.
func ReferredByIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldReferredByID, vs...))
}

// ReferredByIDIsNil applies the IsNil predicate on the "referred_by_id" field.
func ReferredByIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldReferredByID))
}

// ReferredByIDNotNil applies the NotNil predicate on the "referred_by_id" field.
func ReferredByIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldReferredByID))
}

// ReferralSourceEQ applies the EQ predicate on the "referral_source" field.
func ReferralSourceEQ(v ReferralSource) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferralSource, v))
}

// ReferralSourceNEQ applies the NEQ predicate on the "referral_source" field.
func ReferralSourceNEQ(v ReferralSource) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldReferralSource, v))
}

// ReferralSourceIn applies the In predicate on the "referral_source" field.
func ReferralSourceIn(vs ...ReferralSource) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldReferralSource, vs...))
}

// ReferralSourceNotIn applies the NotIn predicate on the "referral_source" field.
func ReferralSourceNotIn(vs ...ReferralSource) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldReferralSource, vs...))
}

// ReferralSourceIsNil applies the IsNil predicate on the "referral_source" field.
func ReferralSourceIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldReferralSource))
}

// ReferralSourceNotNil applies the NotNil predicate on the "referral_source" field.
func ReferralSourceNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldReferralSource))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldIsActive, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferredBy applies the HasEdge predicate on the "referred_by" edge.
func HasReferredBy() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReferredByTable, ReferredByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferredByWith applies the HasEdge predicate on the "referred_by" edge with a given conditions (other predicates).
func HasReferredByWith(preds ...predicate.Patient) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newReferredByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferrals applies the HasEdge predicate on the "referrals" edge.
func HasReferrals() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferralsTable, ReferralsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferralsWith applies the HasEdge predicate on the "referrals" edge with a given conditions (other predicates).
func HasReferralsWith(preds ...predicate.Patient) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newReferralsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedicalHistory applies the HasEdge predicate on the "medical_history" edge.
func HasMedicalHistory() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MedicalHistoryTable, MedicalHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicalHistoryWith applies the HasEdge predicate on the "medical_history" edge with a given conditions (other predicates).
func HasMedicalHistoryWith(preds ...predicate.MedicalHistory) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newMedicalHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.PatientDocument) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
