// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
)

// Service is the model entity for the Service schema.
type Service struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// FK → service_categories.id
	CategoryID uuid.UUID `json:"category_id,omitempty"`
	// ShortDescription holds the value of the "short_description" field.
	ShortDescription string `json:"short_description,omitempty"`
	// DetailedDescription holds the value of the "detailed_description" field.
	DetailedDescription string `json:"detailed_description,omitempty"`
	// Price in KES cents
	Price int64 `json:"price,omitempty"`
	// DurationMin holds the value of the "duration_min" field.
	DurationMin int `json:"duration_min,omitempty"`
	// What the patient should do before the appointment
	PreparationInstructions *string `json:"preparation_instructions,omitempty"`
	// PostTreatmentCare holds the value of the "post_treatment_care" field.
	PostTreatmentCare *string `json:"post_treatment_care,omitempty"`
	// When this service must not be performed
	Contraindications *string `json:"contraindications,omitempty"`
	// IsConsultationRequired holds the value of the "is_consultation_required" field.
	IsConsultationRequired bool `json:"is_consultation_required,omitempty"`
	// RequiresReferral holds the value of the "requires_referral" field.
	RequiresReferral bool `json:"requires_referral,omitempty"`
	// MinAge holds the value of the "min_age" field.
	MinAge *int `json:"min_age,omitempty"`
	// MaxAge holds the value of the "max_age" field.
	MaxAge *int `json:"max_age,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsFeatured holds the value of the "is_featured" field.
	IsFeatured bool `json:"is_featured,omitempty"`
	// Can be delivered via telemedicine
	AvailableOnline bool `json:"available_online,omitempty"`
	// MetaDescription holds the value of the "meta_description" field.
	MetaDescription *string `json:"meta_description,omitempty"`
	// S3 key for the service image
	ImageKey *string `json:"image_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServiceQuery when eager-loading is set.
	Edges        ServiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServiceEdges holds the relations/edges for other nodes in the graph.
type ServiceEdges struct {
	// Category holds the value of the category edge.
	Category *ServiceCategory `json:"category,omitempty"`
	// Packages holds the value of the packages edge.
	Packages []*ServicePackage `json:"packages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceEdges) CategoryOrErr() (*ServiceCategory, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: servicecategory.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// PackagesOrErr returns the Packages value or an error if the edge
// was not loaded in eager-loading.
func (e ServiceEdges) PackagesOrErr() ([]*ServicePackage, error) {
	if e.loadedTypes[1] {
		return e.Packages, nil
	}
	return nil, &NotLoadedError{edge: "packages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Service) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case service.FieldIsConsultationRequired, service.FieldRequiresReferral, service.FieldIsActive, service.FieldIsFeatured, service.FieldAvailableOnline:
			values[i] = new(sql.NullBool)
		case service.FieldPrice, service.FieldDurationMin, service.FieldMinAge, service.FieldMaxAge:
			values[i] = new(sql.NullInt64)
		case service.FieldName, service.FieldSlug, service.FieldShortDescription, service.FieldDetailedDescription, service.FieldPreparationInstructions, service.FieldPostTreatmentCare, service.FieldContraindications, service.FieldMetaDescription, service.FieldImageKey:
			values[i] = new(sql.NullString)
		case service.FieldCreatedAt, service.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case service.FieldID, service.FieldCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Service fields.
func (_m *Service) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case service.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case service.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case service.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case service.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case service.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case service.FieldCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value != nil {
				_m.CategoryID = *value
			}
		case service.FieldShortDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_description", values[i])
			} else if value.Valid {
				_m.ShortDescription = value.String
			}
		case service.FieldDetailedDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_description", values[i])
			} else if value.Valid {
				_m.DetailedDescription = value.String
			}
		case service.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Int64
			}
		case service.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case service.FieldPreparationInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preparation_instructions", values[i])
			} else if value.Valid {
				_m.PreparationInstructions = new(string)
				*_m.PreparationInstructions = value.String
			}
		case service.FieldPostTreatmentCare:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_treatment_care", values[i])
			} else if value.Valid {
				_m.PostTreatmentCare = new(string)
				*_m.PostTreatmentCare = value.String
			}
		case service.FieldContraindications:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contraindications", values[i])
			} else if value.Valid {
				_m.Contraindications = new(string)
				*_m.Contraindications = value.String
			}
		case service.FieldIsConsultationRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_consultation_required", values[i])
			} else if value.Valid {
				_m.IsConsultationRequired = value.Bool
			}
		case service.FieldRequiresReferral:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_referral", values[i])
			} else if value.Valid {
				_m.RequiresReferral = value.Bool
			}
		case service.FieldMinAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_age", values[i])
			} else if value.Valid {
				_m.MinAge = new(int)
				*_m.MinAge = int(value.Int64)
			}
		case service.FieldMaxAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_age", values[i])
			} else if value.Valid {
				_m.MaxAge = new(int)
				*_m.MaxAge = int(value.Int64)
			}
		case service.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case service.FieldIsFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_featured", values[i])
			} else if value.Valid {
				_m.IsFeatured = value.Bool
			}
		case service.FieldAvailableOnline:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field available_online", values[i])
			} else if value.Valid {
				_m.AvailableOnline = value.Bool
			}
		case service.FieldMetaDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description", values[i])
			} else if value.Valid {
				_m.MetaDescription = new(string)
				*_m.MetaDescription = value.String
			}
		case service.FieldImageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_key", values[i])
			} else if value.Valid {
				_m.ImageKey = new(string)
				*_m.ImageKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Service.
// This includes values selected through modifiers, order, etc.
func (_m *Service) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the Service entity.
func (_m *Service) QueryCategory() *ServiceCategoryQuery {
	return NewServiceClient(_m.config).QueryCategory(_m)
}

// QueryPackages queries the "packages" edge of the Service entity.
func (_m *Service) QueryPackages() *ServicePackageQuery {
	return NewServiceClient(_m.config).QueryPackages(_m)
}

// Update returns a builder for updating this Service.
// Note that you need to call Service.Unwrap() before calling this method if this Service
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Service) Update() *ServiceUpdateOne {
	return NewServiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Service entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Service) Unwrap() *Service {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Service is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Service) String() string {
	var builder strings.Builder
	builder.WriteString("Service(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("short_description=")
	builder.WriteString(_m.ShortDescription)
	builder.WriteString(", ")
	builder.WriteString("detailed_description=")
	builder.WriteString(_m.DetailedDescription)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	if v := _m.PreparationInstructions; v != nil {
		builder.WriteString("preparation_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostTreatmentCare; v != nil {
		builder.WriteString("post_treatment_care=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Contraindications; v != nil {
		builder.WriteString("contraindications=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_consultation_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConsultationRequired))
	builder.WriteString(", ")
	builder.WriteString("requires_referral=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresReferral))
	builder.WriteString(", ")
	if v := _m.MinAge; v != nil {
		builder.WriteString("min_age=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxAge; v != nil {
		builder.WriteString("max_age=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFeatured))
	builder.WriteString(", ")
	builder.WriteString("available_online=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvailableOnline))
	builder.WriteString(", ")
	if v := _m.MetaDescription; v != nil {
		builder.WriteString("meta_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageKey; v != nil {
		builder.WriteString("image_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Services is a parsable slice of Service.
type Services []*Service
