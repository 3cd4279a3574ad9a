// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
)

// Holiday is the model entity for the Holiday schema.
type Holiday struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// Recurring annually (matched by month and day)
	IsRecurring bool `json:"is_recurring,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// AffectsAppointments holds the value of the "affects_appointments" field.
	AffectsAppointments bool `json:"affects_appointments,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Holiday) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case holiday.FieldIsRecurring, holiday.FieldAffectsAppointments:
			values[i] = new(sql.NullBool)
		case holiday.FieldName, holiday.FieldDescription:
			values[i] = new(sql.NullString)
		case holiday.FieldCreatedAt, holiday.FieldDate:
			values[i] = new(sql.NullTime)
		case holiday.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Holiday fields.
func (_m *Holiday) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case holiday.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case holiday.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case holiday.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case holiday.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case holiday.FieldIsRecurring:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_recurring", values[i])
			} else if value.Valid {
				_m.IsRecurring = value.Bool
			}
		case holiday.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case holiday.FieldAffectsAppointments:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field affects_appointments", values[i])
			} else if value.Valid {
				_m.AffectsAppointments = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Holiday.
// This includes values selected through modifiers, order, etc.
func (_m *Holiday) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Holiday.
// Note that you need to call Holiday.Unwrap() before calling this method if this Holiday
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Holiday) Update() *HolidayUpdateOne {
	return NewHolidayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Holiday entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Holiday) Unwrap() *Holiday {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Holiday is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Holiday) String() string {
	var builder strings.Builder
	builder.WriteString("Holiday(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_recurring=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRecurring))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("affects_appointments=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectsAppointments))
	builder.WriteByte(')')
	return builder.String()
}

// Holidays is a parsable slice of Holiday.
type Holidays []*Holiday
