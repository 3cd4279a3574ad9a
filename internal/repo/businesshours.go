// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
)

// BusinessHours is the model entity for the BusinessHours schema.
type BusinessHours struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → clinic_settings.id
	SettingsID uuid.UUID `json:"settings_id,omitempty"`
	// 0=Monday .. 6=Sunday
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// IsOpen holds the value of the "is_open" field.
	IsOpen bool `json:"is_open,omitempty"`
	// Time of day, "15:04"
	OpeningTime *string `json:"opening_time,omitempty"`
	// ClosingTime holds the value of the "closing_time" field.
	ClosingTime *string `json:"closing_time,omitempty"`
	// LunchBreak holds the value of the "lunch_break" field.
	LunchBreak bool `json:"lunch_break,omitempty"`
	// LunchStart holds the value of the "lunch_start" field.
	LunchStart *string `json:"lunch_start,omitempty"`
	// LunchEnd holds the value of the "lunch_end" field.
	LunchEnd *string `json:"lunch_end,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessHoursQuery when eager-loading is set.
	Edges        BusinessHoursEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessHoursEdges holds the relations/edges for other nodes in the graph.
type BusinessHoursEdges struct {
	// Settings holds the value of the settings edge.
	Settings *ClinicSettings `json:"settings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SettingsOrErr returns the Settings value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessHoursEdges) SettingsOrErr() (*ClinicSettings, error) {
	if e.Settings != nil {
		return e.Settings, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinicsettings.Label}
	}
	return nil, &NotLoadedError{edge: "settings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessHours) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businesshours.FieldIsOpen, businesshours.FieldLunchBreak:
			values[i] = new(sql.NullBool)
		case businesshours.FieldDayOfWeek:
			values[i] = new(sql.NullInt64)
		case businesshours.FieldOpeningTime, businesshours.FieldClosingTime, businesshours.FieldLunchStart, businesshours.FieldLunchEnd, businesshours.FieldNotes:
			values[i] = new(sql.NullString)
		case businesshours.FieldID, businesshours.FieldSettingsID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessHours fields.
func (_m *BusinessHours) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businesshours.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businesshours.FieldSettingsID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field settings_id", values[i])
			} else if value != nil {
				_m.SettingsID = *value
			}
		case businesshours.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case businesshours.FieldIsOpen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_open", values[i])
			} else if value.Valid {
				_m.IsOpen = value.Bool
			}
		case businesshours.FieldOpeningTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opening_time", values[i])
			} else if value.Valid {
				_m.OpeningTime = new(string)
				*_m.OpeningTime = value.String
			}
		case businesshours.FieldClosingTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field closing_time", values[i])
			} else if value.Valid {
				_m.ClosingTime = new(string)
				*_m.ClosingTime = value.String
			}
		case businesshours.FieldLunchBreak:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field lunch_break", values[i])
			} else if value.Valid {
				_m.LunchBreak = value.Bool
			}
		case businesshours.FieldLunchStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lunch_start", values[i])
			} else if value.Valid {
				_m.LunchStart = new(string)
				*_m.LunchStart = value.String
			}
		case businesshours.FieldLunchEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lunch_end", values[i])
			} else if value.Valid {
				_m.LunchEnd = new(string)
				*_m.LunchEnd = value.String
			}
		case businesshours.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessHours.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessHours) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySettings queries the "settings" edge of the BusinessHours entity.
func (_m *BusinessHours) QuerySettings() *ClinicSettingsQuery {
	return NewBusinessHoursClient(_m.config).QuerySettings(_m)
}

// Update returns a builder for updating this BusinessHours.
// Note that you need to call BusinessHours.Unwrap() before calling this method if this BusinessHours
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessHours) Update() *BusinessHoursUpdateOne {
	return NewBusinessHoursClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessHours entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessHours) Unwrap() *BusinessHours {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BusinessHours is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessHours) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessHours(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("settings_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SettingsID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("is_open=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOpen))
	builder.WriteString(", ")
	if v := _m.OpeningTime; v != nil {
		builder.WriteString("opening_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClosingTime; v != nil {
		builder.WriteString("closing_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("lunch_break=")
	builder.WriteString(fmt.Sprintf("%v", _m.LunchBreak))
	builder.WriteString(", ")
	if v := _m.LunchStart; v != nil {
		builder.WriteString("lunch_start=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LunchEnd; v != nil {
		builder.WriteString("lunch_end=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// BusinessHoursSlice is a parsable slice of BusinessHours.
type BusinessHoursSlice []*BusinessHours
