// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCity, v))
}

// EmergencyContactName applies equality check predicate on the "emergency_contact_name" field. It's identical to EmergencyContactNameEQ.
func EmergencyContactName(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactPhone applies equality check predicate on the "emergency_contact_phone" field. It's identical to EmergencyContactPhoneEQ.
func EmergencyContactPhone(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactRelationship applies equality check predicate on the "emergency_contact_relationship" field. It's identical to EmergencyContactRelationshipEQ.
func EmergencyContactRelationship(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactRelationship, v))
}

// MedicalConditions applies equality check predicate on the "medical_conditions" field. It's identical to MedicalConditionsEQ.
func MedicalConditions(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMedicalConditions, v))
}

// Allergies applies equality check predicate on the "allergies" field. It's identical to AllergiesEQ.
func Allergies(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAllergies, v))
}

// Medications applies equality check predicate on the "medications" field. It's identical to MedicationsEQ.
func Medications(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMedications, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldGender, vs...))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldGender))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldCity, v))
}

// EmergencyContactNameEQ applies the EQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameNEQ applies the NEQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameIn applies the In predicate on the "emergency_contact_name" field.
func EmergencyContactNameIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameNotIn applies the NotIn predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameGT applies the GT predicate on the "emergency_contact_name" field.
func EmergencyContactNameGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldEmergencyContactName, v))
}

// EmergencyContactNameGTE applies the GTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameLT applies the LT predicate on the "emergency_contact_name" field.
func EmergencyContactNameLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldEmergencyContactName, v))
}

// EmergencyContactNameLTE applies the LTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameContains applies the Contains predicate on the "emergency_contact_name" field.
func EmergencyContactNameContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasPrefix applies the HasPrefix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasSuffix applies the HasSuffix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldEmergencyContactName, v))
}

// EmergencyContactNameIsNil applies the IsNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldEmergencyContactName))
}

// EmergencyContactNameNotNil applies the NotNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldEmergencyContactName))
}

// EmergencyContactNameEqualFold applies the EqualFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldEmergencyContactName, v))
}

// EmergencyContactNameContainsFold applies the ContainsFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldEmergencyContactName, v))
}

// EmergencyContactPhoneEQ applies the EQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneNEQ applies the NEQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIn applies the In predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneNotIn applies the NotIn predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneGT applies the GT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneGTE applies the GTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLT applies the LT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLTE applies the LTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContains applies the Contains predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasPrefix applies the HasPrefix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasSuffix applies the HasSuffix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIsNil applies the IsNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneNotNil applies the NotNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneEqualFold applies the EqualFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContainsFold applies the ContainsFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldEmergencyContactPhone, v))
}

// EmergencyContactRelationshipEQ applies the EQ predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipNEQ applies the NEQ predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipIn applies the In predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldEmergencyContactRelationship, vs...))
}

// EmergencyContactRelationshipNotIn applies the NotIn predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldEmergencyContactRelationship, vs...))
}

// EmergencyContactRelationshipGT applies the GT predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipGTE applies the GTE predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipLT applies the LT predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipLTE applies the LTE predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipContains applies the Contains predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipHasPrefix applies the HasPrefix predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipHasSuffix applies the HasSuffix predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipIsNil applies the IsNil predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldEmergencyContactRelationship))
}

// EmergencyContactRelationshipNotNil applies the NotNil predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldEmergencyContactRelationship))
}

// EmergencyContactRelationshipEqualFold applies the EqualFold predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldEmergencyContactRelationship, v))
}

// EmergencyContactRelationshipContainsFold applies the ContainsFold predicate on the "emergency_contact_relationship" field.
func EmergencyContactRelationshipContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldEmergencyContactRelationship, v))
}

// MedicalConditionsEQ applies the EQ predicate on the "medical_conditions" field.
func MedicalConditionsEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMedicalConditions, v))
}

// MedicalConditionsNEQ applies the NEQ predicate on the "medical_conditions" field.
func MedicalConditionsNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldMedicalConditions, v))
}

// MedicalConditionsIn applies the In predicate on the "medical_conditions" field.
func MedicalConditionsIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldMedicalConditions, vs...))
}

// MedicalConditionsNotIn applies the NotIn predicate on the "medical_conditions" field.
func MedicalConditionsNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldMedicalConditions, vs...))
}

// MedicalConditionsGT applies the GT predicate on the "medical_conditions" field.
func MedicalConditionsGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldMedicalConditions, v))
}

// MedicalConditionsGTE applies the GTE predicate on the "medical_conditions" field.
func MedicalConditionsGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldMedicalConditions, v))
}

// MedicalConditionsLT applies the LT predicate on the "medical_conditions" field.
func MedicalConditionsLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldMedicalConditions, v))
}

// MedicalConditionsLTE applies the LTE predicate on the "medical_conditions" field.
func MedicalConditionsLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldMedicalConditions, v))
}

// MedicalConditionsContains applies the Contains predicate on the "medical_conditions" field.
func MedicalConditionsContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldMedicalConditions, v))
}

// MedicalConditionsHasPrefix applies the HasPrefix predicate on the "medical_conditions" field.
func MedicalConditionsHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldMedicalConditions, v))
}

// MedicalConditionsHasSuffix applies the HasSuffix predicate on the "medical_conditions" field.
func MedicalConditionsHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldMedicalConditions, v))
}

// MedicalConditionsIsNil applies the IsNil predicate on the "medical_conditions" field.
func MedicalConditionsIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldMedicalConditions))
}

// MedicalConditionsNotNil applies the NotNil predicate on the "medical_conditions" field.
func MedicalConditionsNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldMedicalConditions))
}

// MedicalConditionsEqualFold applies the EqualFold predicate on the "medical_conditions" field.
func MedicalConditionsEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldMedicalConditions, v))
}

// MedicalConditionsContainsFold applies the ContainsFold predicate on the "medical_conditions" field.
func MedicalConditionsContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldMedicalConditions, v))
}

// AllergiesEQ applies the EQ predicate on the "allergies" field.
func AllergiesEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAllergies, v))
}

// AllergiesNEQ applies the NEQ predicate on the "allergies" field.
func AllergiesNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAllergies, v))
}

// AllergiesIn applies the In predicate on the "allergies" field.
func AllergiesIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAllergies, vs...))
}

// AllergiesNotIn applies the NotIn predicate on the "allergies" field.
func AllergiesNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAllergies, vs...))
}

// AllergiesGT applies the GT predicate on the "allergies" field.
func AllergiesGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAllergies, v))
}

// AllergiesGTE applies the GTE predicate on the "allergies" field.
func AllergiesGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAllergies, v))
}

// AllergiesLT applies the LT predicate on the "allergies" field.
func AllergiesLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAllergies, v))
}

// AllergiesLTE applies the LTE predicate on the "allergies" field.
func AllergiesLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAllergies, v))
}

// AllergiesContains applies the Contains predicate on the "allergies" field.
func AllergiesContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldAllergies, v))
}

// AllergiesHasPrefix applies the HasPrefix predicate on the "allergies" field.
func AllergiesHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldAllergies, v))
}

// AllergiesHasSuffix applies the HasSuffix predicate on the "allergies" field.
func AllergiesHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldAllergies, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldAllergies))
}

// AllergiesEqualFold applies the EqualFold predicate on the "allergies" field.
func AllergiesEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldAllergies, v))
}

// AllergiesContainsFold applies the ContainsFold predicate on the "allergies" field.
func AllergiesContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldAllergies, v))
}

// MedicationsEQ applies the EQ predicate on the "medications" field.
func MedicationsEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldMedications, v))
}

// MedicationsNEQ applies the NEQ predicate on the "medications" field.
func MedicationsNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldMedications, v))
}

// MedicationsIn applies the In predicate on the "medications" field.
func MedicationsIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldMedications, vs...))
}

// MedicationsNotIn applies the NotIn predicate on the "medications" field.
func MedicationsNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldMedications, vs...))
}

// MedicationsGT applies the GT predicate on the "medications" field.
func MedicationsGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldMedications, v))
}

// MedicationsGTE applies the GTE predicate on the "medications" field.
func MedicationsGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldMedications, v))
}

// MedicationsLT applies the LT predicate on the "medications" field.
func MedicationsLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldMedications, v))
}

// MedicationsLTE applies the LTE predicate on the "medications" field.
func MedicationsLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldMedications, v))
}

// MedicationsContains applies the Contains predicate on the "medications" field.
func MedicationsContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldMedications, v))
}

// MedicationsHasPrefix applies the HasPrefix predicate on the "medications" field.
func MedicationsHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldMedications, v))
}

// MedicationsHasSuffix applies the HasSuffix predicate on the "medications" field.
func MedicationsHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldMedications, v))
}

// MedicationsIsNil applies the IsNil predicate on the "medications" field.
func MedicationsIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldMedications))
}

// MedicationsNotNil applies the NotNil predicate on the "medications" field.
func MedicationsNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldMedications))
}

// MedicationsEqualFold applies the EqualFold predicate on the "medications" field.
func MedicationsEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldMedications, v))
}

// MedicationsContainsFold applies the ContainsFold predicate on the "medications" field.
func MedicationsContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldMedications, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UserProfile {
	return predicate.UserProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UserProfile {
	return predicate.UserProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
