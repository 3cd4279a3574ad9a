// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctor type in the database.
	Label = "doctor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLicenseNumber holds the string denoting the license_number field in the database.
	FieldLicenseNumber = "license_number"
	// FieldYearsOfExperience holds the string denoting the years_of_experience field in the database.
	FieldYearsOfExperience = "years_of_experience"
	// FieldBiography holds the string denoting the biography field in the database.
	FieldBiography = "biography"
	// FieldEducation holds the string denoting the education field in the database.
	FieldEducation = "education"
	// FieldCertifications holds the string denoting the certifications field in the database.
	FieldCertifications = "certifications"
	// FieldConsultationFee holds the string denoting the consultation_fee field in the database.
	FieldConsultationFee = "consultation_fee"
	// FieldIsAvailable holds the string denoting the is_available field in the database.
	FieldIsAvailable = "is_available"
	// FieldProfileImageKey holds the string denoting the profile_image_key field in the database.
	FieldProfileImageKey = "profile_image_key"
	// FieldTwitterURL holds the string denoting the twitter_url field in the database.
	FieldTwitterURL = "twitter_url"
	// FieldLinkedinURL holds the string denoting the linkedin_url field in the database.
	FieldLinkedinURL = "linkedin_url"
	// FieldFacebookURL holds the string denoting the facebook_url field in the database.
	FieldFacebookURL = "facebook_url"
	// FieldHospitalAffiliations holds the string denoting the hospital_affiliations field in the database.
	FieldHospitalAffiliations = "hospital_affiliations"
	// FieldResearchInterests holds the string denoting the research_interests field in the database.
	FieldResearchInterests = "research_interests"
	// FieldPublications holds the string denoting the publications field in the database.
	FieldPublications = "publications"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeSpecializations holds the string denoting the specializations edge name in mutations.
	EdgeSpecializations = "specializations"
	// EdgeAvailability holds the string denoting the availability edge name in mutations.
	EdgeAvailability = "availability"
	// EdgeLeaves holds the string denoting the leaves edge name in mutations.
	EdgeLeaves = "leaves"
	// Table holds the table name of the doctor in the database.
	Table = "doctors"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "doctors"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// SpecializationsTable is the table that holds the specializations relation/edge. The primary key declared below.
	SpecializationsTable = "doctor_specializations"
	// SpecializationsInverseTable is the table name for the Specialization entity.
	// It exists in this package in order to avoid circular dependency with the "specialization" package.
	SpecializationsInverseTable = "specializations"
	// AvailabilityTable is the table that holds the availability relation/edge.
	AvailabilityTable = "doctor_availabilities"
	// AvailabilityInverseTable is the table name for the DoctorAvailability entity.
	// It exists in this package in order to avoid circular dependency with the "doctoravailability" package.
	AvailabilityInverseTable = "doctor_availabilities"
	// AvailabilityColumn is the table column denoting the availability relation/edge.
	AvailabilityColumn = "doctor_id"
	// LeavesTable is the table that holds the leaves relation/edge.
	LeavesTable = "doctor_leaves"
	// LeavesInverseTable is the table name for the DoctorLeave entity.
	// It exists in this package in order to avoid circular dependency with the "doctorleave" package.
	LeavesInverseTable = "doctor_leaves"
	// LeavesColumn is the table column denoting the leaves relation/edge.
	LeavesColumn = "doctor_id"
)

// Columns holds all SQL columns for doctor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldTitle,
	FieldLicenseNumber,
	FieldYearsOfExperience,
	FieldBiography,
	FieldEducation,
	FieldCertifications,
	FieldConsultationFee,
	FieldIsAvailable,
	FieldProfileImageKey,
	FieldTwitterURL,
	FieldLinkedinURL,
	FieldFacebookURL,
	FieldHospitalAffiliations,
	FieldResearchInterests,
	FieldPublications,
}

var (
	// SpecializationsPrimaryKey and SpecializationsColumn2 are the table columns denoting the
	// primary key for the specializations relation (M2M).
	SpecializationsPrimaryKey = []string{"doctor_id", "specialization_id"}
)

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
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	LicenseNumberValidator func(string) error
	// YearsOfExperienceValidator is a validator for the "years_of_experience" field. It is called by the builders before save.
	YearsOfExperienceValidator func(int) error
	// ConsultationFeeValidator is a validator for the "consultation_fee" field. It is called by the builders before save.
	ConsultationFeeValidator func(int64) error
	// DefaultIsAvailable holds the default value on creation for the "is_available" field.
	DefaultIsAvailable bool
	// ProfileImageKeyValidator is a validator for the "profile_image_key" field. It is called by the builders before save.
	ProfileImageKeyValidator func(string) error
	// TwitterURLValidator is a validator for the "twitter_url" field. It is called by the builders before save.
	TwitterURLValidator func(string) error
	// LinkedinURLValidator is a validator for the "linkedin_url" field. It is called by the builders before save.
	LinkedinURLValidator func(string) error
	// FacebookURLValidator is a validator for the "facebook_url" field. It is called by the builders before save.
	FacebookURLValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Doctor queries.
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

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLicenseNumber orders the results by the license_number field.
func ByLicenseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenseNumber, opts...).ToFunc()
}

// ByYearsOfExperience orders the results by the years_of_experience field.
func ByYearsOfExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsOfExperience, opts...).ToFunc()
}

// ByBiography orders the results by the biography field.
func ByBiography(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiography, opts...).ToFunc()
}

// ByEducation orders the results by the education field.
func ByEducation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducation, opts...).ToFunc()
}

// ByCertifications orders the results by the certifications field.
func ByCertifications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertifications, opts...).ToFunc()
}

// ByConsultationFee orders the results by the consultation_fee field.
func ByConsultationFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationFee, opts...).ToFunc()
}

// ByIsAvailable orders the results by the is_available field.
func ByIsAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAvailable, opts...).ToFunc()
}

// ByProfileImageKey orders the results by the profile_image_key field.
func ByProfileImageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileImageKey, opts...).ToFunc()
}

// ByTwitterURL orders the results by the twitter_url field.
func ByTwitterURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTwitterURL, opts...).ToFunc()
}

// ByLinkedinURL orders the results by the linkedin_url field.
func ByLinkedinURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedinURL, opts...).ToFunc()
}

// ByFacebookURL orders the results by the facebook_url field.
func ByFacebookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebookURL, opts...).ToFunc()
}

// ByHospitalAffiliations orders the results by the hospital_affiliations field.
func ByHospitalAffiliations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHospitalAffiliations, opts...).ToFunc()
}

// ByResearchInterests orders the results by the research_interests field.
func ByResearchInterests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchInterests, opts...).ToFunc()
}

// ByPublications orders the results by the publications field.
func ByPublications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublications, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// BySpecializationsCount orders the results by specializations count.
func BySpecializationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpecializationsStep(), opts...)
	}
}

// BySpecializations orders the results by specializations terms.
func BySpecializations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecializationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAvailabilityCount orders the results by availability count.
func ByAvailabilityCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAvailabilityStep(), opts...)
	}
}

// ByAvailability orders the results by availability terms.
func ByAvailability(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAvailabilityStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeavesCount orders the results by leaves count.
func ByLeavesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeavesStep(), opts...)
	}
}

// ByLeaves orders the results by leaves terms.
func ByLeaves(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeavesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
func newSpecializationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecializationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, SpecializationsTable, SpecializationsPrimaryKey...),
	)
}
func newAvailabilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AvailabilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AvailabilityTable, AvailabilityColumn),
	)
}
func newLeavesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeavesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeavesTable, LeavesColumn),
	)
}
