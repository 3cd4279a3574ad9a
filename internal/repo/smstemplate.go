// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
)

// SMSTemplate is the model entity for the SMSTemplate schema.
type SMSTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// TemplateType holds the value of the "template_type" field.
	TemplateType smstemplate.TemplateType `json:"template_type,omitempty"`
	// Up to 3 concatenated SMS segments
	Body string `json:"body,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// VariablesHelp holds the value of the "variables_help" field.
	VariablesHelp *string `json:"variables_help,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SMSTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case smstemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case smstemplate.FieldName, smstemplate.FieldTemplateType, smstemplate.FieldBody, smstemplate.FieldVariablesHelp:
			values[i] = new(sql.NullString)
		case smstemplate.FieldCreatedAt, smstemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case smstemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SMSTemplate fields.
func (_m *SMSTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case smstemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case smstemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case smstemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case smstemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case smstemplate.FieldTemplateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_type", values[i])
			} else if value.Valid {
				_m.TemplateType = smstemplate.TemplateType(value.String)
			}
		case smstemplate.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case smstemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case smstemplate.FieldVariablesHelp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variables_help", values[i])
			} else if value.Valid {
				_m.VariablesHelp = new(string)
				*_m.VariablesHelp = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SMSTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *SMSTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SMSTemplate.
// Note that you need to call SMSTemplate.Unwrap() before calling this method if this SMSTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SMSTemplate) Update() *SMSTemplateUpdateOne {
	return NewSMSTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SMSTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SMSTemplate) Unwrap() *SMSTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SMSTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SMSTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("SMSTemplate(")
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
	builder.WriteString("template_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateType))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.VariablesHelp; v != nil {
		builder.WriteString("variables_help=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// SMSTemplates is a parsable slice of SMSTemplate.
type SMSTemplates []*SMSTemplate
