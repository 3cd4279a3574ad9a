// Code generated by ent, DO NOT EDIT.

package service

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the service type in the database.
	Label = "service"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldShortDescription holds the string denoting the short_description field in the database.
	FieldShortDescription = "short_description"
	// FieldDetailedDescription holds the string denoting the detailed_description field in the database.
	FieldDetailedDescription = "detailed_description"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldDurationMin holds the string denoting the duration_min field in the database.
	FieldDurationMin = "duration_min"
	// FieldPreparationInstructions holds the string denoting the preparation_instructions field in the database.
	FieldPreparationInstructions = "preparation_instructions"
	// FieldPostTreatmentCare holds the string denoting the post_treatment_care field in the database.
	FieldPostTreatmentCare = "post_treatment_care"
	// FieldContraindications holds the string denoting the contraindications field in the database.
	FieldContraindications = "contraindications"
	// FieldIsConsultationRequired holds the string denoting the is_consultation_required field in the database.
	FieldIsConsultationRequired = "is_consultation_required"
	// FieldRequiresReferral holds the string denoting the requires_referral field in the database.
	FieldRequiresReferral = "requires_referral"
	// FieldMinAge holds the string denoting the min_age field in the database.
	FieldMinAge = "min_age"
	// FieldMaxAge holds the string denoting the max_age field in the database.
	FieldMaxAge = "max_age"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldIsFeatured holds the string denoting the is_featured field in the database.
	FieldIsFeatured = "is_featured"
	// FieldAvailableOnline holds the string denoting the available_online field in the database.
	FieldAvailableOnline = "available_online"
	// FieldMetaDescription holds the string denoting the meta_description field in the database.
	FieldMetaDescription = "meta_description"
	// FieldImageKey holds the string denoting the image_key field in the database.
	FieldImageKey = "image_key"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// EdgePackages holds the string denoting the packages edge name in mutations.
	EdgePackages = "packages"
	// Table holds the table name of the service in the database.
	Table = "services"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "services"
	// CategoryInverseTable is the table name for the ServiceCategory entity.
	// It exists in this package in order to avoid circular dependency with the "servicecategory" package.
	CategoryInverseTable = "service_categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
	// PackagesTable is the table that holds the packages relation/edge. The primary key declared below.
	PackagesTable = "service_package_services"
	// PackagesInverseTable is the table name for the ServicePackage entity.
	// It exists in this package in order to avoid circular dependency with the "servicepackage" package.
	PackagesInverseTable = "service_packages"
)

// Columns holds all SQL columns for service fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldSlug,
	FieldCategoryID,
	FieldShortDescription,
	FieldDetailedDescription,
	FieldPrice,
	FieldDurationMin,
	FieldPreparationInstructions,
	FieldPostTreatmentCare,
	FieldContraindications,
	FieldIsConsultationRequired,
	FieldRequiresReferral,
	FieldMinAge,
	FieldMaxAge,
	FieldIsActive,
	FieldIsFeatured,
	FieldAvailableOnline,
	FieldMetaDescription,
	FieldImageKey,
}

var (
	// PackagesPrimaryKey and PackagesColumn2 are the table columns denoting the
	// primary key for the packages relation (M2M).
	PackagesPrimaryKey = []string{"service_package_id", "service_id"}
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// ShortDescriptionValidator is a validator for the "short_description" field. It is called by the builders before save.
	ShortDescriptionValidator func(string) error
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(int64) error
	// DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	DurationMinValidator func(int) error
	// DefaultIsConsultationRequired holds the default value on creation for the "is_consultation_required" field.
	DefaultIsConsultationRequired bool
	// DefaultRequiresReferral holds the default value on creation for the "requires_referral" field.
	DefaultRequiresReferral bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultIsFeatured holds the default value on creation for the "is_featured" field.
	DefaultIsFeatured bool
	// DefaultAvailableOnline holds the default value on creation for the "available_online" field.
	DefaultAvailableOnline bool
	// MetaDescriptionValidator is a validator for the "meta_description" field. It is called by the builders before save.
	MetaDescriptionValidator func(string) error
	// ImageKeyValidator is a validator for the "image_key" field. It is called by the builders before save.
	ImageKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Service queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByShortDescription orders the results by the short_description field.
func ByShortDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortDescription, opts...).ToFunc()
}

// ByDetailedDescription orders the results by the detailed_description field.
func ByDetailedDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailedDescription, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByDurationMin orders the results by the duration_min field.
func ByDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMin, opts...).ToFunc()
}

// ByPreparationInstructions orders the results by the preparation_instructions field.
func ByPreparationInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreparationInstructions, opts...).ToFunc()
}

// ByPostTreatmentCare orders the results by the post_treatment_care field.
func ByPostTreatmentCare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostTreatmentCare, opts...).ToFunc()
}

// ByContraindications orders the results by the contraindications field.
func ByContraindications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContraindications, opts...).ToFunc()
}

// ByIsConsultationRequired orders the results by the is_consultation_required field.
func ByIsConsultationRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsConsultationRequired, opts...).ToFunc()
}

// ByRequiresReferral orders the results by the requires_referral field.
func ByRequiresReferral(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresReferral, opts...).ToFunc()
}

// ByMinAge orders the results by the min_age field.
func ByMinAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAge, opts...).ToFunc()
}

// ByMaxAge orders the results by the max_age field.
func ByMaxAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAge, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByIsFeatured orders the results by the is_featured field.
func ByIsFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFeatured, opts...).ToFunc()
}

// ByAvailableOnline orders the results by the available_online field.
func ByAvailableOnline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableOnline, opts...).ToFunc()
}

// ByMetaDescription orders the results by the meta_description field.
func ByMetaDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescription, opts...).ToFunc()
}

// ByImageKey orders the results by the image_key field.
func ByImageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageKey, opts...).ToFunc()
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByPackagesCount orders the results by packages count.
func ByPackagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPackagesStep(), opts...)
	}
}

// ByPackages orders the results by packages terms.
func ByPackages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
	)
}
func newPackagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, PackagesTable, PackagesPrimaryKey...),
	)
}
