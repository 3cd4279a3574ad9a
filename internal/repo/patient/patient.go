// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldMiddleName holds the string denoting the middle_name field in the database.
	FieldMiddleName = "middle_name"
	// FieldPreferredName holds the string denoting the preferred_name field in the database.
	FieldPreferredName = "preferred_name"
	// FieldOccupation holds the string denoting the occupation field in the database.
	FieldOccupation = "occupation"
	// FieldBloodType holds the string denoting the blood_type field in the database.
	FieldBloodType = "blood_type"
	// FieldSkinType holds the string denoting the skin_type field in the database.
	FieldSkinType = "skin_type"
	// FieldHeightCm holds the string denoting the height_cm field in the database.
	FieldHeightCm = "height_cm"
	// FieldWeightKg holds the string denoting the weight_kg field in the database.
	FieldWeightKg = "weight_kg"
	// FieldPreferredContactMethod holds the string denoting the preferred_contact_method field in the database.
	FieldPreferredContactMethod = "preferred_contact_method"
	// FieldPreferredLanguage holds the string denoting the preferred_language field in the database.
	FieldPreferredLanguage = "preferred_language"
	// FieldInsuranceProvider holds the string denoting the insurance_provider field in the database.
	FieldInsuranceProvider = "insurance_provider"
	// FieldInsuranceNumber holds the string denoting the insurance_number field in the database.
	FieldInsuranceNumber = "insurance_number"
	// FieldInsuranceValidUntil holds the string denoting the insurance_valid_until field in the database.
	FieldInsuranceValidUntil = "insurance_valid_until"
	// FieldReferredByID holds the string denoting the referred_by_id field in the database.
	FieldReferredByID = "referred_by_id"
	// FieldReferralSource holds the string denoting the referral_source field in the database.
	FieldReferralSource = "referral_source"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeReferredBy holds the string denoting the referred_by edge name in mutations.
	EdgeReferredBy = "referred_by"
	// EdgeReferrals holds the string denoting the referrals edge name in mutations.
	EdgeReferrals = "referrals"
	// EdgeMedicalHistory holds the string denoting the medical_history edge name in mutations.
	EdgeMedicalHistory = "medical_history"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// ReferredByTable is the table that holds the referred_by relation/edge.
	ReferredByTable = "patients"
	// ReferredByColumn is the table column denoting the referred_by relation/edge.
	ReferredByColumn = "referred_by_id"
	// ReferralsTable is the table that holds the referrals relation/edge.
	ReferralsTable = "patients"
	// ReferralsColumn is the table column denoting the referrals relation/edge.
	ReferralsColumn = "referred_by_id"
	// MedicalHistoryTable is the table that holds the medical_history relation/edge.
	MedicalHistoryTable = "medical_histories"
	// MedicalHistoryInverseTable is the table name for the MedicalHistory entity.
	// It exists in this package in order to avoid circular dependency with the "medicalhistory" package.
	MedicalHistoryInverseTable = "medical_histories"
	// MedicalHistoryColumn is the table column denoting the medical_history relation/edge.
	MedicalHistoryColumn = "patient_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "patient_documents"
	// DocumentsInverseTable is the table name for the PatientDocument entity.
	// It exists in this package in order to avoid circular dependency with the "patientdocument" package.
	DocumentsInverseTable = "patient_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldPatientID,
	FieldMiddleName,
	FieldPreferredName,
	FieldOccupation,
	FieldBloodType,
	FieldSkinType,
	FieldHeightCm,
	FieldWeightKg,
	FieldPreferredContactMethod,
	FieldPreferredLanguage,
	FieldInsuranceProvider,
	FieldInsuranceNumber,
	FieldInsuranceValidUntil,
	FieldReferredByID,
	FieldReferralSource,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// MiddleNameValidator is a validator for the "middle_name" field. It is called by the builders before save.
	MiddleNameValidator func(string) error
	// PreferredNameValidator is a validator for the "preferred_name" field. It is called by the builders before save.
	PreferredNameValidator func(string) error
	// OccupationValidator is a validator for the "occupation" field. It is called by the builders before save.
	OccupationValidator func(string) error
	// DefaultPreferredLanguage holds the default value on creation for the "preferred_language" field.
	DefaultPreferredLanguage string
	// PreferredLanguageValidator is a validator for the "preferred_language" field. It is called by the builders before save.
	PreferredLanguageValidator func(string) error
	// InsuranceProviderValidator is a validator for the "insurance_provider" field. It is called by the builders before save.
	InsuranceProviderValidator func(string) error
	// InsuranceNumberValidator is a validator for the "insurance_number" field. It is called by the builders before save.
	InsuranceNumberValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// BloodType defines the type for the "blood_type" enum field.
type BloodType string

// BloodTypeUnknown is the default value of the BloodType enum.
const DefaultBloodType = BloodTypeUnknown

// BloodType values.
const (
	BloodTypeAPos    BloodType = "a_pos"
	BloodTypeANeg    BloodType = "a_neg"
	BloodTypeBPos    BloodType = "b_pos"
	BloodTypeBNeg    BloodType = "b_neg"
	BloodTypeAbPos   BloodType = "ab_pos"
	BloodTypeAbNeg   BloodType = "ab_neg"
	BloodTypeOPos    BloodType = "o_pos"
	BloodTypeONeg    BloodType = "o_neg"
	BloodTypeUnknown BloodType = "unknown"
)

func (bt BloodType) String() string {
	return string(bt)
}

// BloodTypeValidator is a validator for the "blood_type" field enum values. It is called by the builders before save.
func BloodTypeValidator(bt BloodType) error {
	switch bt {
	case BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg, BloodTypeAbPos, BloodTypeAbNeg, BloodTypeOPos, BloodTypeONeg, BloodTypeUnknown:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for blood_type field: %q", bt)
	}
}

// SkinType defines the type for the "skin_type" enum field.
type SkinType string

// SkinType values.
const (
	SkinTypeI   SkinType = "I"
	SkinTypeII  SkinType = "II"
	SkinTypeIII SkinType = "III"
	SkinTypeIV  SkinType = "IV"
	SkinTypeV   SkinType = "V"
	SkinTypeVI  SkinType = "VI"
)

func (st SkinType) String() string {
	return string(st)
}

// SkinTypeValidator is a validator for the "skin_type" field enum values. It is called by the builders before save.
func SkinTypeValidator(st SkinType) error {
	switch st {
	case SkinTypeI, SkinTypeII, SkinTypeIII, SkinTypeIV, SkinTypeV, SkinTypeVI:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for skin_type field: %q", st)
	}
}

// PreferredContactMethod defines the type for the "preferred_contact_method" enum field.
type PreferredContactMethod string

// PreferredContactMethodEmail is the default value of the PreferredContactMethod enum.
const DefaultPreferredContactMethod = PreferredContactMethodEmail

// PreferredContactMethod values.
const (
	PreferredContactMethodEmail PreferredContactMethod = "email"
	PreferredContactMethodSms   PreferredContactMethod = "sms"
	PreferredContactMethodCall  PreferredContactMethod = "call"
)

func (pcm PreferredContactMethod) String() string {
	return string(pcm)
}

// PreferredContactMethodValidator is a validator for the "preferred_contact_method" field enum values. It is called by the builders before save.
func PreferredContactMethodValidator(pcm PreferredContactMethod) error {
	switch pcm {
	case PreferredContactMethodEmail, PreferredContactMethodSms, PreferredContactMethodCall:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for preferred_contact_method field: %q", pcm)
	}
}

// ReferralSource defines the type for the "referral_source" enum field.
type ReferralSource string

// ReferralSource values.
const (
	ReferralSourceDoctor        ReferralSource = "doctor"
	ReferralSourceFriend        ReferralSource = "friend"
	ReferralSourceOnline        ReferralSource = "online"
	ReferralSourceSocialMedia   ReferralSource = "social_media"
	ReferralSourceAdvertisement ReferralSource = "advertisement"
	ReferralSourceOther         ReferralSource = "other"
)

func (rs ReferralSource) String() string {
	return string(rs)
}

// ReferralSourceValidator is a validator for the "referral_source" field enum values. It is called by the builders before save.
func ReferralSourceValidator(rs ReferralSource) error {
	switch rs {
	case ReferralSourceDoctor, ReferralSourceFriend, ReferralSourceOnline, ReferralSourceSocialMedia, ReferralSourceAdvertisement, ReferralSourceOther:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for referral_source field: %q", rs)
	}
}

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByMiddleName orders the results by the middle_name field.
func ByMiddleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMiddleName, opts...).ToFunc()
}

// ByPreferredName orders the results by the preferred_name field.
func ByPreferredName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredName, opts...).ToFunc()
}

// ByOccupation orders the results by the occupation field.
func ByOccupation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccupation, opts...).ToFunc()
}

// ByBloodType orders the results by the blood_type field.
func ByBloodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodType, opts...).ToFunc()
}

// BySkinType orders the results by the skin_type field.
func BySkinType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkinType, opts...).ToFunc()
}

// ByHeightCm orders the results by the height_cm field.
func ByHeightCm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeightCm, opts...).ToFunc()
}

// ByWeightKg orders the results by the weight_kg field.
func ByWeightKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightKg, opts...).ToFunc()
}

// ByPreferredContactMethod orders the results by the preferred_contact_method field.
func ByPreferredContactMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredContactMethod, opts...).ToFunc()
}

// ByPreferredLanguage orders the results by the preferred_language field.
func ByPreferredLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredLanguage, opts...).ToFunc()
}

// ByInsuranceProvider orders the results by the insurance_provider field.
func ByInsuranceProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceProvider, opts...).ToFunc()
}

// ByInsuranceNumber orders the results by the insurance_number field.
func ByInsuranceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceNumber, opts...).ToFunc()
}

// ByInsuranceValidUntil orders the results by the insurance_valid_until field.
func ByInsuranceValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceValidUntil, opts...).ToFunc()
}

// ByReferredByID orders the results by the referred_by_id field.
func ByReferredByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferredByID, opts...).ToFunc()
}

// ByReferralSource orders the results by the referral_source field.
func ByReferralSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralSource, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferredByField orders the results by referred_by field.
func ByReferredByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferredByStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferralsCount orders the results by referrals count.
func ByReferralsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferralsStep(), opts...)
	}
}

// ByReferrals orders the results by referrals terms.
func ByReferrals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferralsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMedicalHistoryCount orders the results by medical_history count.
func ByMedicalHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMedicalHistoryStep(), opts...)
	}
}

// ByMedicalHistory orders the results by medical_history terms.
func ByMedicalHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMedicalHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
func newReferredByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReferredByTable, ReferredByColumn),
	)
}
func newReferralsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferralsTable, ReferralsColumn),
	)
}
func newMedicalHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MedicalHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MedicalHistoryTable, MedicalHistoryColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
