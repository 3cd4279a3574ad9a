// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

// WaitingList is the model entity for the WaitingList schema.
type WaitingList struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// FK → services.id
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	// PreferredDate holds the value of the "preferred_date" field.
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	// Time of day, "15:04"
	PreferredTime *string `json:"preferred_time,omitempty"`
	// EarliestDate holds the value of the "earliest_date" field.
	EarliestDate time.Time `json:"earliest_date,omitempty"`
	// LatestDate holds the value of the "latest_date" field.
	LatestDate time.Time `json:"latest_date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Notified holds the value of the "notified" field.
	Notified bool `json:"notified,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WaitingListQuery when eager-loading is set.
	Edges        WaitingListEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WaitingListEdges holds the relations/edges for other nodes in the graph.
type WaitingListEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// Service holds the value of the service edge.
	Service *Service `json:"service,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WaitingListEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WaitingListEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// ServiceOrErr returns the Service value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WaitingListEdges) ServiceOrErr() (*Service, error) {
	if e.Service != nil {
		return e.Service, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: service.Label}
	}
	return nil, &NotLoadedError{edge: "service"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WaitingList) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case waitinglist.FieldServiceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case waitinglist.FieldIsActive, waitinglist.FieldNotified:
			values[i] = new(sql.NullBool)
		case waitinglist.FieldPreferredTime, waitinglist.FieldNotes:
			values[i] = new(sql.NullString)
		case waitinglist.FieldCreatedAt, waitinglist.FieldPreferredDate, waitinglist.FieldEarliestDate, waitinglist.FieldLatestDate:
			values[i] = new(sql.NullTime)
		case waitinglist.FieldID, waitinglist.FieldPatientID, waitinglist.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WaitingList fields.
func (_m *WaitingList) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case waitinglist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case waitinglist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case waitinglist.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case waitinglist.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case waitinglist.FieldServiceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = new(uuid.UUID)
				*_m.ServiceID = *value.S.(*uuid.UUID)
			}
		case waitinglist.FieldPreferredDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_date", values[i])
			} else if value.Valid {
				_m.PreferredDate = new(time.Time)
				*_m.PreferredDate = value.Time
			}
		case waitinglist.FieldPreferredTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_time", values[i])
			} else if value.Valid {
				_m.PreferredTime = new(string)
				*_m.PreferredTime = value.String
			}
		case waitinglist.FieldEarliestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field earliest_date", values[i])
			} else if value.Valid {
				_m.EarliestDate = value.Time
			}
		case waitinglist.FieldLatestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field latest_date", values[i])
			} else if value.Valid {
				_m.LatestDate = value.Time
			}
		case waitinglist.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case waitinglist.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case waitinglist.FieldNotified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field notified", values[i])
			} else if value.Valid {
				_m.Notified = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WaitingList.
// This includes values selected through modifiers, order, etc.
func (_m *WaitingList) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the WaitingList entity.
func (_m *WaitingList) QueryPatient() *PatientQuery {
	return NewWaitingListClient(_m.config).QueryPatient(_m)
}

// QueryDoctor queries the "doctor" edge of the WaitingList entity.
func (_m *WaitingList) QueryDoctor() *DoctorQuery {
	return NewWaitingListClient(_m.config).QueryDoctor(_m)
}

// QueryService queries the "service" edge of the WaitingList entity.
func (_m *WaitingList) QueryService() *ServiceQuery {
	return NewWaitingListClient(_m.config).QueryService(_m)
}

// Update returns a builder for updating this WaitingList.
// Note that you need to call WaitingList.Unwrap() before calling this method if this WaitingList
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WaitingList) Update() *WaitingListUpdateOne {
	return NewWaitingListClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WaitingList entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WaitingList) Unwrap() *WaitingList {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WaitingList is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WaitingList) String() string {
	var builder strings.Builder
	builder.WriteString("WaitingList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	if v := _m.ServiceID; v != nil {
		builder.WriteString("service_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PreferredDate; v != nil {
		builder.WriteString("preferred_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PreferredTime; v != nil {
		builder.WriteString("preferred_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("earliest_date=")
	builder.WriteString(_m.EarliestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("latest_date=")
	builder.WriteString(_m.LatestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("notified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notified))
	builder.WriteByte(')')
	return builder.String()
}

// WaitingLists is a parsable slice of WaitingList.
type WaitingLists []*WaitingList
