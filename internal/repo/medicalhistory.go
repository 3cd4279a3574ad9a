// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
)

// MedicalHistory is the model entity for the MedicalHistory schema.
type MedicalHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// ConditionType holds the value of the "condition_type" field.
	ConditionType medicalhistory.ConditionType `json:"condition_type,omitempty"`
	// ConditionName holds the value of the "condition_name" field.
	ConditionName string `json:"condition_name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// DateDiagnosed holds the value of the "date_diagnosed" field.
	DateDiagnosed *time.Time `json:"date_diagnosed,omitempty"`
	// IsCurrent holds the value of the "is_current" field.
	IsCurrent bool `json:"is_current,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity *medicalhistory.Severity `json:"severity,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicalHistoryQuery when eager-loading is set.
	Edges        MedicalHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicalHistoryEdges holds the relations/edges for other nodes in the graph.
type MedicalHistoryEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalHistoryEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldIsCurrent:
			values[i] = new(sql.NullBool)
		case medicalhistory.FieldConditionType, medicalhistory.FieldConditionName, medicalhistory.FieldDescription, medicalhistory.FieldSeverity, medicalhistory.FieldNotes:
			values[i] = new(sql.NullString)
		case medicalhistory.FieldCreatedAt, medicalhistory.FieldUpdatedAt, medicalhistory.FieldDateDiagnosed:
			values[i] = new(sql.NullTime)
		case medicalhistory.FieldID, medicalhistory.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalHistory fields.
func (_m *MedicalHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalhistory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medicalhistory.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case medicalhistory.FieldConditionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_type", values[i])
			} else if value.Valid {
				_m.ConditionType = medicalhistory.ConditionType(value.String)
			}
		case medicalhistory.FieldConditionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_name", values[i])
			} else if value.Valid {
				_m.ConditionName = value.String
			}
		case medicalhistory.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case medicalhistory.FieldDateDiagnosed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_diagnosed", values[i])
			} else if value.Valid {
				_m.DateDiagnosed = new(time.Time)
				*_m.DateDiagnosed = value.Time
			}
		case medicalhistory.FieldIsCurrent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_current", values[i])
			} else if value.Valid {
				_m.IsCurrent = value.Bool
			}
		case medicalhistory.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = new(medicalhistory.Severity)
				*_m.Severity = medicalhistory.Severity(value.String)
			}
		case medicalhistory.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalHistory.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the MedicalHistory entity.
func (_m *MedicalHistory) QueryPatient() *PatientQuery {
	return NewMedicalHistoryClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this MedicalHistory.
// Note that you need to call MedicalHistory.Unwrap() before calling this method if this MedicalHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalHistory) Update() *MedicalHistoryUpdateOne {
	return NewMedicalHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalHistory) Unwrap() *MedicalHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalHistory) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("condition_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConditionType))
	builder.WriteString(", ")
	builder.WriteString("condition_name=")
	builder.WriteString(_m.ConditionName)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateDiagnosed; v != nil {
		builder.WriteString("date_diagnosed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_current=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCurrent))
	builder.WriteString(", ")
	if v := _m.Severity; v != nil {
		builder.WriteString("severity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MedicalHistories is a parsable slice of MedicalHistory.
type MedicalHistories []*MedicalHistory
