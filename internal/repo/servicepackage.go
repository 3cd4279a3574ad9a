// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
)

// ServicePackage is the model entity for the ServicePackage schema.
type ServicePackage struct {
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
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Sum of individual service prices in KES cents
	OriginalPrice int64 `json:"original_price,omitempty"`
	// Bundled price in KES cents
	PackagePrice int64 `json:"package_price,omitempty"`
	// ValidityDays holds the value of the "validity_days" field.
	ValidityDays int `json:"validity_days,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// ImageKey holds the value of the "image_key" field.
	ImageKey *string `json:"image_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServicePackageQuery when eager-loading is set.
	Edges        ServicePackageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServicePackageEdges holds the relations/edges for other nodes in the graph.
type ServicePackageEdges struct {
	// Services holds the value of the services edge.
	Services []*Service `json:"services,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServicesOrErr returns the Services value or an error if the edge
// was not loaded in eager-loading.
func (e ServicePackageEdges) ServicesOrErr() ([]*Service, error) {
	if e.loadedTypes[0] {
		return e.Services, nil
	}
	return nil, &NotLoadedError{edge: "services"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServicePackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servicepackage.FieldIsActive:
			values[i] = new(sql.NullBool)
		case servicepackage.FieldOriginalPrice, servicepackage.FieldPackagePrice, servicepackage.FieldValidityDays:
			values[i] = new(sql.NullInt64)
		case servicepackage.FieldName, servicepackage.FieldSlug, servicepackage.FieldDescription, servicepackage.FieldImageKey:
			values[i] = new(sql.NullString)
		case servicepackage.FieldCreatedAt, servicepackage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case servicepackage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServicePackage fields.
func (_m *ServicePackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servicepackage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case servicepackage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case servicepackage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case servicepackage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case servicepackage.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case servicepackage.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case servicepackage.FieldOriginalPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_price", values[i])
			} else if value.Valid {
				_m.OriginalPrice = value.Int64
			}
		case servicepackage.FieldPackagePrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_price", values[i])
			} else if value.Valid {
				_m.PackagePrice = value.Int64
			}
		case servicepackage.FieldValidityDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field validity_days", values[i])
			} else if value.Valid {
				_m.ValidityDays = int(value.Int64)
			}
		case servicepackage.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case servicepackage.FieldImageKey:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ServicePackage.
// This includes values selected through modifiers, order, etc.
func (_m *ServicePackage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServices queries the "services" edge of the ServicePackage entity.
func (_m *ServicePackage) QueryServices() *ServiceQuery {
	return NewServicePackageClient(_m.config).QueryServices(_m)
}

// Update returns a builder for updating this ServicePackage.
// Note that you need to call ServicePackage.Unwrap() before calling this method if this ServicePackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServicePackage) Update() *ServicePackageUpdateOne {
	return NewServicePackageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServicePackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServicePackage) Unwrap() *ServicePackage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ServicePackage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServicePackage) String() string {
	var builder strings.Builder
	builder.WriteString("ServicePackage(")
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
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("original_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalPrice))
	builder.WriteString(", ")
	builder.WriteString("package_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackagePrice))
	builder.WriteString(", ")
	builder.WriteString("validity_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidityDays))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.ImageKey; v != nil {
		builder.WriteString("image_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ServicePackages is a parsable slice of ServicePackage.
type ServicePackages []*ServicePackage
