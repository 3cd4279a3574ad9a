// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitle, v))
}

// LicenseNumber applies equality check predicate on the "license_number" field. It's identical to LicenseNumberEQ.
func LicenseNumber(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldLicenseNumber, v))
}

// YearsOfExperience applies equality check predicate on the "years_of_experience" field. It's identical to YearsOfExperienceEQ.
func YearsOfExperience(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldYearsOfExperience, v))
}

// Biography applies equality check predicate on the "biography" field. It's identical to BiographyEQ.
func Biography(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBiography, v))
}

// Education applies equality check predicate on the "education" field. It's identical to EducationEQ.
func Education(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldEducation, v))
}

// Certifications applies equality check predicate on the "certifications" field. It's identical to CertificationsEQ.
func Certifications(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCertifications, v))
}

// ConsultationFee applies equality check predicate on the "consultation_fee" field. It's identical to ConsultationFeeEQ.
func ConsultationFee(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationFee, v))
}

// IsAvailable applies equality check predicate on the "is_available" field. It's identical to IsAvailableEQ.
func IsAvailable(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldIsAvailable, v))
}

// ProfileImageKey applies equality check predicate on the "profile_image_key" field. It's identical to ProfileImageKeyEQ.
func ProfileImageKey(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldProfileImageKey, v))
}

// TwitterURL applies equality check predicate on the "twitter_url" field. It's identical to TwitterURLEQ.
func TwitterURL(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTwitterURL, v))
}

// LinkedinURL applies equality check predicate on the "linkedin_url" field. It's identical to LinkedinURLEQ.
func LinkedinURL(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldLinkedinURL, v))
}

// FacebookURL applies equality check predicate on the "facebook_url" field. It's identical to FacebookURLEQ.
func FacebookURL(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldFacebookURL, v))
}

// HospitalAffiliations applies equality check predicate on the "hospital_affiliations" field. It's identical to HospitalAffiliationsEQ.
func HospitalAffiliations(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldHospitalAffiliations, v))
}

// ResearchInterests applies equality check predicate on the "research_interests" field. It's identical to ResearchInterestsEQ.
func ResearchInterests(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldResearchInterests, v))
}

// Publications applies equality check predicate on the "publications" field. It's identical to PublicationsEQ.
func Publications(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublications, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUserID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTitle, v))
}

// LicenseNumberEQ applies the EQ predicate on the "license_number" field.
func LicenseNumberEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldLicenseNumber, v))
}

// LicenseNumberNEQ applies the NEQ predicate on the "license_number" field.
func LicenseNumberNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldLicenseNumber, v))
}

// LicenseNumberIn applies the In predicate on the "license_number" field.
func LicenseNumberIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldLicenseNumber, vs...))
}

// LicenseNumberNotIn applies the NotIn predicate on the "license_number" field.
func LicenseNumberNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldLicenseNumber, vs...))
}

// LicenseNumberGT applies the GT predicate on the "license_number" field.
func LicenseNumberGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldLicenseNumber, v))
}

// LicenseNumberGTE applies the GTE predicate on the "license_number" field.
func LicenseNumberGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldLicenseNumber, v))
}

// LicenseNumberLT applies the LT predicate on the "license_number" field.
func LicenseNumberLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldLicenseNumber, v))
}

// LicenseNumberLTE applies the LTE predicate on the "license_number" field.
func LicenseNumberLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldLicenseNumber, v))
}

// LicenseNumberContains applies the Contains predicate on the "license_number" field.
func LicenseNumberContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldLicenseNumber, v))
}

// LicenseNumberHasPrefix applies the HasPrefix predicate on the "license_number" field.
func LicenseNumberHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldLicenseNumber, v))
}

// LicenseNumberHasSuffix applies the HasSuffix predicate on the "license_number" field.
func LicenseNumberHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldLicenseNumber, v))
}

// LicenseNumberEqualFold applies the EqualFold predicate on the "license_number" field.
func LicenseNumberEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldLicenseNumber, v))
}

// LicenseNumberContainsFold applies the ContainsFold predicate on the "license_number" field.
func LicenseNumberContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldLicenseNumber, v))
}

// YearsOfExperienceEQ applies the EQ predicate on the "years_of_experience" field.
func YearsOfExperienceEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldYearsOfExperience, v))
}

// YearsOfExperienceNEQ applies the NEQ predicate on the "years_of_experience" field.
func YearsOfExperienceNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldYearsOfExperience, v))
}

// YearsOfExperienceIn applies the In predicate on the "years_of_experience" field.
func YearsOfExperienceIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldYearsOfExperience, vs...))
}

// YearsOfExperienceNotIn applies the NotIn predicate on the "years_of_experience" field.
func YearsOfExperienceNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldYearsOfExperience, vs...))
}

// YearsOfExperienceGT applies the GT predicate on the "years_of_experience" field.
func YearsOfExperienceGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldYearsOfExperience, v))
}

// YearsOfExperienceGTE applies the GTE predicate on the "years_of_experience" field.
func YearsOfExperienceGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldYearsOfExperience, v))
}

// YearsOfExperienceLT applies the LT predicate on the "years_of_experience" field.
func YearsOfExperienceLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldYearsOfExperience, v))
}

// YearsOfExperienceLTE applies the LTE predicate on the "years_of_experience" field.
func YearsOfExperienceLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldYearsOfExperience, v))
}

// BiographyEQ applies the EQ predicate on the "biography" field.
func BiographyEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldBiography, v))
}

// BiographyNEQ applies the NEQ predicate on the "biography" field.
func BiographyNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldBiography, v))
}

// BiographyIn applies the In predicate on the "biography" field.
func BiographyIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldBiography, vs...))
}

// BiographyNotIn applies the NotIn predicate on the "biography" field.
func BiographyNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldBiography, vs...))
}

// BiographyGT applies the GT predicate on the "biography" field.
func BiographyGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldBiography, v))
}

// BiographyGTE applies the GTE predicate on the "biography" field.
func BiographyGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldBiography, v))
}

// BiographyLT applies the LT predicate on the "biography" field.
func BiographyLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldBiography, v))
}

// BiographyLTE applies the LTE predicate on the "biography" field.
func BiographyLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldBiography, v))
}

// BiographyContains applies the Contains predicate on the "biography" field.
func BiographyContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldBiography, v))
}

// BiographyHasPrefix applies the HasPrefix predicate on the "biography" field.
func BiographyHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldBiography, v))
}

// BiographyHasSuffix applies the HasSuffix predicate on the "biography" field.
func BiographyHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldBiography, v))
}

// BiographyEqualFold applies the EqualFold predicate on the "biography" field.
func BiographyEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldBiography, v))
}

// BiographyContainsFold applies the ContainsFold predicate on the "biography" field.
func BiographyContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldBiography, v))
}

// EducationEQ applies the EQ predicate on the "education" field.
func EducationEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldEducation, v))
}

// EducationNEQ applies the NEQ predicate on the "education" field.
func EducationNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldEducation, v))
}

// EducationIn applies the In predicate on the "education" field.
func EducationIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldEducation, vs...))
}

// EducationNotIn applies the NotIn predicate on the "education" field.
func EducationNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldEducation, vs...))
}

// EducationGT applies the GT predicate on the "education" field.
func EducationGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldEducation, v))
}

// EducationGTE applies the GTE predicate on the "education" field.
func EducationGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldEducation, v))
}

// EducationLT applies the LT predicate on the "education" field.
func EducationLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldEducation, v))
}

// EducationLTE applies the LTE predicate on the "education" field.
func EducationLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldEducation, v))
}

// EducationContains applies the Contains predicate on the "education" field.
func EducationContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldEducation, v))
}

// EducationHasPrefix applies the HasPrefix predicate on the "education" field.
func EducationHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldEducation, v))
}

// EducationHasSuffix applies the HasSuffix predicate on the "education" field.
func EducationHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldEducation, v))
}

// EducationEqualFold applies the EqualFold predicate on the "education" field.
func EducationEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldEducation, v))
}

// EducationContainsFold applies the ContainsFold predicate on the "education" field.
func EducationContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldEducation, v))
}

// CertificationsEQ applies the EQ predicate on the "certifications" field.
func CertificationsEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCertifications, v))
}

// CertificationsNEQ applies the NEQ predicate on the "certifications" field.
func CertificationsNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCertifications, v))
}

// CertificationsIn applies the In predicate on the "certifications" field.
func CertificationsIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCertifications, vs...))
}

// CertificationsNotIn applies the NotIn predicate on the "certifications" field.
func CertificationsNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCertifications, vs...))
}

// CertificationsGT applies the GT predicate on the "certifications" field.
func CertificationsGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCertifications, v))
}

// CertificationsGTE applies the GTE predicate on the "certifications" field.
func CertificationsGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCertifications, v))
}

// CertificationsLT applies the LT predicate on the "certifications" field.
func CertificationsLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCertifications, v))
}

// CertificationsLTE applies the LTE predicate on the "certifications" field.
func CertificationsLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCertifications, v))
}

// CertificationsContains applies the Contains predicate on the "certifications" field.
func CertificationsContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldCertifications, v))
}

// CertificationsHasPrefix applies the HasPrefix predicate on the "certifications" field.
func CertificationsHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldCertifications, v))
}

// CertificationsHasSuffix applies the HasSuffix predicate on the "certifications" field.
func CertificationsHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldCertifications, v))
}

// CertificationsIsNil applies the IsNil predicate on the "certifications" field.
func CertificationsIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldCertifications))
}

// CertificationsNotNil applies the NotNil predicate on the "certifications" field.
func CertificationsNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldCertifications))
}

// CertificationsEqualFold applies the EqualFold predicate on the "certifications" field.
func CertificationsEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldCertifications, v))
}

// CertificationsContainsFold applies the ContainsFold predicate on the "certifications" field.
func CertificationsContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldCertifications, v))
}

// ConsultationFeeEQ applies the EQ predicate on the "consultation_fee" field.
func ConsultationFeeEQ(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationFee, v))
}

// ConsultationFeeNEQ applies the NEQ predicate on the "consultation_fee" field.
func ConsultationFeeNEQ(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldConsultationFee, v))
}

// ConsultationFeeIn applies the In predicate on the "consultation_fee" field.
func ConsultationFeeIn(vs ...int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldConsultationFee, vs...))
}

// ConsultationFeeNotIn applies the NotIn predicate on the "consultation_fee" field.
func ConsultationFeeNotIn(vs ...int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldConsultationFee, vs...))
}

// ConsultationFeeGT applies the GT predicate on the "consultation_fee" field.
func ConsultationFeeGT(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldConsultationFee, v))
}

// ConsultationFeeGTE applies the GTE predicate on the "consultation_fee" field.
func ConsultationFeeGTE(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldConsultationFee, v))
}

// ConsultationFeeLT applies the LT predicate on the "consultation_fee" field.
func ConsultationFeeLT(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldConsultationFee, v))
}

// ConsultationFeeLTE applies the LTE predicate on the "consultation_fee" field.
func ConsultationFeeLTE(v int64) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldConsultationFee, v))
}

// IsAvailableEQ applies the EQ predicate on the "is_available" field.
func IsAvailableEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldIsAvailable, v))
}

// IsAvailableNEQ applies the NEQ predicate on the "is_available" field.
func IsAvailableNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldIsAvailable, v))
}

// ProfileImageKeyEQ applies the EQ predicate on the "profile_image_key" field.
func ProfileImageKeyEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldProfileImageKey, v))
}

// ProfileImageKeyNEQ applies the NEQ predicate on the "profile_image_key" field.
func ProfileImageKeyNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldProfileImageKey, v))
}

// ProfileImageKeyIn applies the In predicate on the "profile_image_key" field.
func ProfileImageKeyIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldProfileImageKey, vs...))
}

// ProfileImageKeyNotIn applies the NotIn predicate on the "profile_image_key" field.
func ProfileImageKeyNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldProfileImageKey, vs...))
}

// ProfileImageKeyGT applies the GT predicate on the "profile_image_key" field.
func ProfileImageKeyGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldProfileImageKey, v))
}

// ProfileImageKeyGTE applies the GTE predicate on the "profile_image_key" field.
func ProfileImageKeyGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldProfileImageKey, v))
}

// ProfileImageKeyLT applies the LT predicate on the "profile_image_key" field.
func ProfileImageKeyLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldProfileImageKey, v))
}

// ProfileImageKeyLTE applies the LTE predicate on the "profile_image_key" field.
func ProfileImageKeyLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldProfileImageKey, v))
}

// ProfileImageKeyContains applies the Contains predicate on the "profile_image_key" field.
func ProfileImageKeyContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldProfileImageKey, v))
}

// ProfileImageKeyHasPrefix applies the HasPrefix predicate on the "profile_image_key" field.
func ProfileImageKeyHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldProfileImageKey, v))
}

// ProfileImageKeyHasSuffix applies the HasSuffix predicate on the "profile_image_key" field.
func ProfileImageKeyHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldProfileImageKey, v))
}

// ProfileImageKeyIsNil applies the IsNil predicate on the "profile_image_key" field.
func ProfileImageKeyIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldProfileImageKey))
}

// ProfileImageKeyNotNil applies the NotNil predicate on the "profile_image_key" field.
func ProfileImageKeyNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldProfileImageKey))
}

// ProfileImageKeyEqualFold applies the EqualFold predicate on the "profile_image_key" field.
func ProfileImageKeyEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldProfileImageKey, v))
}

// ProfileImageKeyContainsFold applies the ContainsFold predicate on the "profile_image_key" field.
func ProfileImageKeyContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldProfileImageKey, v))
}

// TwitterURLEQ applies the EQ predicate on the "twitter_url" field.
func TwitterURLEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTwitterURL, v))
}

// TwitterURLNEQ applies the NEQ predicate on the "twitter_url" field.
func TwitterURLNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTwitterURL, v))
}

// TwitterURLIn applies the In predicate on the "twitter_url" field.
func TwitterURLIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTwitterURL, vs...))
}

// TwitterURLNotIn applies the NotIn predicate on the "twitter_url" field.
func TwitterURLNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTwitterURL, vs...))
}

// TwitterURLGT applies the GT predicate on the "twitter_url" field.
func TwitterURLGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTwitterURL, v))
}

// TwitterURLGTE applies the GTE predicate on the "twitter_url" field.
func TwitterURLGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTwitterURL, v))
}

// TwitterURLLT applies the LT predicate on the "twitter_url" field.
func TwitterURLLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTwitterURL, v))
}

// TwitterURLLTE applies the LTE predicate on the "twitter_url" field.
func TwitterURLLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTwitterURL, v))
}

// TwitterURLContains applies the Contains predicate on the "twitter_url" field.
func TwitterURLContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTwitterURL, v))
}

// TwitterURLHasPrefix applies the HasPrefix predicate on the "twitter_url" field.
func TwitterURLHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTwitterURL, v))
}

// TwitterURLHasSuffix applies the HasSuffix predicate on the "twitter_url" field.
func TwitterURLHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTwitterURL, v))
}

// TwitterURLIsNil applies the IsNil predicate on the "twitter_url" field.
func TwitterURLIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldTwitterURL))
}

// TwitterURLNotNil applies the NotNil predicate on the "twitter_url" field.
func TwitterURLNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldTwitterURL))
}

// TwitterURLEqualFold applies the EqualFold predicate on the "twitter_url" field.
func TwitterURLEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTwitterURL, v))
}

// TwitterURLContainsFold applies the ContainsFold predicate on the "twitter_url" field.
func TwitterURLContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTwitterURL, v))
}

// LinkedinURLEQ applies the EQ predicate on the "linkedin_url" field.
func LinkedinURLEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldLinkedinURL, v))
}

// LinkedinURLNEQ applies the NEQ predicate on the "linkedin_url" field.
func LinkedinURLNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldLinkedinURL, v))
}

// LinkedinURLIn applies the In predicate on the "linkedin_url" field.
func LinkedinURLIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldLinkedinURL, vs...))
}

// LinkedinURLNotIn applies the NotIn predicate on the "linkedin_url" field.
func LinkedinURLNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldLinkedinURL, vs...))
}

// LinkedinURLGT applies the GT predicate on the "linkedin_url" field.
func LinkedinURLGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldLinkedinURL, v))
}

// LinkedinURLGTE applies the GTE predicate on the "linkedin_url" field.
func LinkedinURLGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldLinkedinURL, v))
}

// LinkedinURLLT applies the LT predicate on the "linkedin_url" field.
func LinkedinURLLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldLinkedinURL, v))
}

// LinkedinURLLTE applies the LTE predicate on the "linkedin_url" field.
func LinkedinURLLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldLinkedinURL, v))
}

// LinkedinURLContains applies the Contains predicate on the "linkedin_url" field.
func LinkedinURLContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldLinkedinURL, v))
}

// LinkedinURLHasPrefix applies the HasPrefix predicate on the "linkedin_url" field.
func LinkedinURLHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldLinkedinURL, v))
}

// LinkedinURLHasSuffix applies the HasSuffix predicate on the "linkedin_url" field.
func LinkedinURLHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldLinkedinURL, v))
}

// LinkedinURLIsNil applies the IsNil predicate on the "linkedin_url" field.
func LinkedinURLIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldLinkedinURL))
}

// LinkedinURLNotNil applies the NotNil predicate on the "linkedin_url" field.
func LinkedinURLNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldLinkedinURL))
}

// LinkedinURLEqualFold applies the EqualFold predicate on the "linkedin_url" field.
func LinkedinURLEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldLinkedinURL, v))
}

// LinkedinURLContainsFold applies the ContainsFold predicate on the "linkedin_url" field.
func LinkedinURLContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldLinkedinURL, v))
}

// FacebookURLEQ applies the EQ predicate on the "facebook_url" field.
func FacebookURLEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldFacebookURL, v))
}

// FacebookURLNEQ applies the NEQ predicate on the "facebook_url" field.
func FacebookURLNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldFacebookURL, v))
}

// FacebookURLIn applies the In predicate on the "facebook_url" field.
func FacebookURLIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldFacebookURL, vs...))
}

// FacebookURLNotIn applies the NotIn predicate on the "facebook_url" field.
func FacebookURLNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldFacebookURL, vs...))
}

// FacebookURLGT applies the GT predicate on the "facebook_url" field.
func FacebookURLGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldFacebookURL, v))
}

// FacebookURLGTE applies the GTE predicate on the "facebook_url" field.
func FacebookURLGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldFacebookURL, v))
}

// FacebookURLLT applies the LT predicate on the "facebook_url" field.
func FacebookURLLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldFacebookURL, v))
}

// FacebookURLLTE applies the LTE predicate on the "facebook_url" field.
func FacebookURLLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldFacebookURL, v))
}

// FacebookURLContains applies the Contains predicate on the "facebook_url" field.
func FacebookURLContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldFacebookURL, v))
}

// FacebookURLHasPrefix applies the HasPrefix predicate on the "facebook_url" field.
func FacebookURLHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldFacebookURL, v))
}

// FacebookURLHasSuffix applies the HasSuffix predicate on the "facebook_url" field.
func FacebookURLHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldFacebookURL, v))
}

// FacebookURLIsNil applies the IsNil predicate on the "facebook_url" field.
func FacebookURLIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldFacebookURL))
}

// FacebookURLNotNil applies the NotNil predicate on the "facebook_url" field.
func FacebookURLNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldFacebookURL))
}

// FacebookURLEqualFold applies the EqualFold predicate on the "facebook_url" field.
func FacebookURLEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldFacebookURL, v))
}

// FacebookURLContainsFold applies the ContainsFold predicate on the "facebook_url" field.
func FacebookURLContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldFacebookURL, v))
}

// HospitalAffiliationsEQ applies the EQ predicate on the "hospital_affiliations" field.
func HospitalAffiliationsEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsNEQ applies the NEQ predicate on the "hospital_affiliations" field.
func HospitalAffiliationsNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsIn applies the In predicate on the "hospital_affiliations" field.
func HospitalAffiliationsIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldHospitalAffiliations, vs...))
}

// HospitalAffiliationsNotIn applies the NotIn predicate on the "hospital_affiliations" field.
func HospitalAffiliationsNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldHospitalAffiliations, vs...))
}

// HospitalAffiliationsGT applies the GT predicate on the "hospital_affiliations" field.
func HospitalAffiliationsGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsGTE applies the GTE predicate on the "hospital_affiliations" field.
func HospitalAffiliationsGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsLT applies the LT predicate on the "hospital_affiliations" field.
func HospitalAffiliationsLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsLTE applies the LTE predicate on the "hospital_affiliations" field.
func HospitalAffiliationsLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsContains applies the Contains predicate on the "hospital_affiliations" field.
func HospitalAffiliationsContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsHasPrefix applies the HasPrefix predicate on the "hospital_affiliations" field.
func HospitalAffiliationsHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsHasSuffix applies the HasSuffix predicate on the "hospital_affiliations" field.
func HospitalAffiliationsHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsIsNil applies the IsNil predicate on the "hospital_affiliations" field.
func HospitalAffiliationsIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldHospitalAffiliations))
}

// HospitalAffiliationsNotNil applies the NotNil predicate on the "hospital_affiliations" field.
func HospitalAffiliationsNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldHospitalAffiliations))
}

// HospitalAffiliationsEqualFold applies the EqualFold predicate on the "hospital_affiliations" field.
func HospitalAffiliationsEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldHospitalAffiliations, v))
}

// HospitalAffiliationsContainsFold applies the ContainsFold predicate on the "hospital_affiliations" field.
func HospitalAffiliationsContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldHospitalAffiliations, v))
}

// ResearchInterestsEQ applies the EQ predicate on the "research_interests" field.
func ResearchInterestsEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldResearchInterests, v))
}

// ResearchInterestsNEQ applies the NEQ predicate on the "research_interests" field.
func ResearchInterestsNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldResearchInterests, v))
}

// ResearchInterestsIn applies the In predicate on the "research_interests" field.
func ResearchInterestsIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldResearchInterests, vs...))
}

// ResearchInterestsNotIn applies the NotIn predicate on the "research_interests" field.
func ResearchInterestsNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldResearchInterests, vs...))
}

// ResearchInterestsGT applies the GT predicate on the "research_interests" field.
func ResearchInterestsGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldResearchInterests, v))
}

// ResearchInterestsGTE applies the GTE predicate on the "research_interests" field.
func ResearchInterestsGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldResearchInterests, v))
}

// ResearchInterestsLT applies the LT predicate on the "research_interests" field.
func ResearchInterestsLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldResearchInterests, v))
}

// ResearchInterestsLTE applies the LTE predicate on the "research_interests" field.
func ResearchInterestsLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldResearchInterests, v))
}

// ResearchInterestsContains applies the Contains predicate on the "research_interests" field.
func ResearchInterestsContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldResearchInterests, v))
}

// ResearchInterestsHasPrefix applies the HasPrefix predicate on the "research_interests" field.
func ResearchInterestsHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldResearchInterests, v))
}

// ResearchInterestsHasSuffix applies the HasSuffix predicate on the "research_interests" field.
func ResearchInterestsHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldResearchInterests, v))
}

// ResearchInterestsIsNil applies the IsNil predicate on the "research_interests" field.
func ResearchInterestsIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldResearchInterests))
}

// ResearchInterestsNotNil applies the NotNil predicate on the "research_interests" field.
func ResearchInterestsNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldResearchInterests))
}

// ResearchInterestsEqualFold applies the EqualFold predicate on the "research_interests" field.
func ResearchInterestsEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldResearchInterests, v))
}

// ResearchInterestsContainsFold applies the ContainsFold predicate on the "research_interests" field.
func ResearchInterestsContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldResearchInterests, v))
}

// PublicationsEQ applies the EQ predicate on the "publications" field.
func PublicationsEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldPublications, v))
}

// PublicationsNEQ applies the NEQ predicate on the "publications" field.
func PublicationsNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldPublications, v))
}

// PublicationsIn applies the In predicate on the "publications" field.
func PublicationsIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldPublications, vs...))
}

// PublicationsNotIn applies the NotIn predicate on the "publications" field.
func PublicationsNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldPublications, vs...))
}

// PublicationsGT applies the GT predicate on the "publications" field.
func PublicationsGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldPublications, v))
}

// PublicationsGTE applies the GTE predicate on the "publications" field.
func PublicationsGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldPublications, v))
}

// PublicationsLT applies the LT predicate on the "publications" field.
func PublicationsLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldPublications, v))
}

// PublicationsLTE applies the LTE predicate on the "publications" field.
func PublicationsLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldPublications, v))
}

// PublicationsContains applies the Contains predicate on the "publications" field.
func PublicationsContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldPublications, v))
}

// PublicationsHasPrefix applies the HasPrefix predicate on the "publications" field.
func PublicationsHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldPublications, v))
}

// PublicationsHasSuffix applies the HasSuffix predicate on the "publications" field.
func PublicationsHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldPublications, v))
}

// PublicationsIsNil applies the IsNil predicate on the "publications" field.
func PublicationsIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldPublications))
}

// PublicationsNotNil applies the NotNil predicate on the "publications" field.
func PublicationsNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldPublications))
}

// PublicationsEqualFold applies the EqualFold predicate on the "publications" field.
func PublicationsEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldPublications, v))
}

// PublicationsContainsFold applies the ContainsFold predicate on the "publications" field.
func PublicationsContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldPublications, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpecializations applies the HasEdge predicate on the "specializations" edge.
func HasSpecializations() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, SpecializationsTable, SpecializationsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecializationsWith applies the HasEdge predicate on the "specializations" edge with a given conditions (other predicates).
func HasSpecializationsWith(preds ...predicate.Specialization) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newSpecializationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAvailability applies the HasEdge predicate on the "availability" edge.
func HasAvailability() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AvailabilityTable, AvailabilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAvailabilityWith applies the HasEdge predicate on the "availability" edge with a given conditions (other predicates).
func HasAvailabilityWith(preds ...predicate.DoctorAvailability) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newAvailabilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLeaves applies the HasEdge predicate on the "leaves" edge.
func HasLeaves() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeavesTable, LeavesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeavesWith applies the HasEdge predicate on the "leaves" edge with a given conditions (other predicates).
func HasLeavesWith(preds ...predicate.DoctorLeave) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newLeavesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.NotPredicates(p))
}
