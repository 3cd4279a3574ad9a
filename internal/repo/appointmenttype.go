// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
)

// AppointmentType is the model entity for the AppointmentType schema.
type AppointmentType struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Default duration in minutes
	DurationMin int `json:"duration_min,omitempty"`
	// Hex color for calendar display
	Color string `json:"color,omitempty"`
	// IsConsultation holds the value of the "is_consultation" field.
	IsConsultation bool `json:"is_consultation,omitempty"`
	// RequiresPreparation holds the value of the "requires_preparation" field.
	RequiresPreparation bool `json:"requires_preparation,omitempty"`
	// PreparationInstructions holds the value of the "preparation_instructions" field.
	PreparationInstructions *string `json:"preparation_instructions,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmenttype.FieldIsConsultation, appointmenttype.FieldRequiresPreparation, appointmenttype.FieldIsActive:
			values[i] = new(sql.NullBool)
		case appointmenttype.FieldDurationMin:
			values[i] = new(sql.NullInt64)
		case appointmenttype.FieldName, appointmenttype.FieldSlug, appointmenttype.FieldDescription, appointmenttype.FieldColor, appointmenttype.FieldPreparationInstructions:
			values[i] = new(sql.NullString)
		case appointmenttype.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case appointmenttype.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentType fields.
func (_m *AppointmentType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmenttype.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmenttype.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmenttype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case appointmenttype.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case appointmenttype.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case appointmenttype.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case appointmenttype.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case appointmenttype.FieldIsConsultation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_consultation", values[i])
			} else if value.Valid {
				_m.IsConsultation = value.Bool
			}
		case appointmenttype.FieldRequiresPreparation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_preparation", values[i])
			} else if value.Valid {
				_m.RequiresPreparation = value.Bool
			}
		case appointmenttype.FieldPreparationInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preparation_instructions", values[i])
			} else if value.Valid {
				_m.PreparationInstructions = new(string)
				*_m.PreparationInstructions = value.String
			}
		case appointmenttype.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentType.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentType.
// Note that you need to call AppointmentType.Unwrap() before calling this method if this AppointmentType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentType) Update() *AppointmentTypeUpdateOne {
	return NewAppointmentTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentType) Unwrap() *AppointmentType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentType) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("is_consultation=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConsultation))
	builder.WriteString(", ")
	builder.WriteString("requires_preparation=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresPreparation))
	builder.WriteString(", ")
	if v := _m.PreparationInstructions; v != nil {
		builder.WriteString("preparation_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentTypes is a parsable slice of AppointmentType.
type AppointmentTypes []*AppointmentType
