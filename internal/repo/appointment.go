// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
)

// Appointment is the model entity for the Appointment schema.
type Appointment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable id, APT<year><month:02d><seq:04d>, assigned once at create
	AppointmentID string `json:"appointment_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// FK → services.id
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	// FK → appointment_types.id
	AppointmentTypeID uuid.UUID `json:"appointment_type_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// DurationMin holds the value of the "duration_min" field.
	DurationMin int `json:"duration_min,omitempty"`
	// Derived as start_time + duration when not supplied by the caller
	EndTime time.Time `json:"end_time,omitempty"`
	// Status holds the value of the "status" field.
	Status appointment.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority appointment.Priority `json:"priority,omitempty"`
	// ConsultationType holds the value of the "consultation_type" field.
	ConsultationType appointment.ConsultationType `json:"consultation_type,omitempty"`
	// Primary reason for visit
	ChiefComplaint *string `json:"chief_complaint,omitempty"`
	// Symptoms holds the value of the "symptoms" field.
	Symptoms *string `json:"symptoms,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// IsFollowUp holds the value of the "is_follow_up" field.
	IsFollowUp bool `json:"is_follow_up,omitempty"`
	// Self-FK → appointments.id for follow-ups
	PreviousAppointmentID *uuid.UUID `json:"previous_appointment_id,omitempty"`
	// FK → users.id
	BookedByID *uuid.UUID `json:"booked_by_id,omitempty"`
	// BookingSource holds the value of the "booking_source" field.
	BookingSource appointment.BookingSource `json:"booking_source,omitempty"`
	// IsConfirmed holds the value of the "is_confirmed" field.
	IsConfirmed bool `json:"is_confirmed,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	// ReminderSent holds the value of the "reminder_sent" field.
	ReminderSent bool `json:"reminder_sent,omitempty"`
	// ReminderSentAt holds the value of the "reminder_sent_at" field.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	// CheckedInAt holds the value of the "checked_in_at" field.
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	// FK → users.id
	CheckedInByID *uuid.UUID `json:"checked_in_by_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ActualDurationMin holds the value of the "actual_duration_min" field.
	ActualDurationMin *int `json:"actual_duration_min,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// FK → users.id
	CancelledByID *uuid.UUID `json:"cancelled_by_id,omitempty"`
	// CancellationReason holds the value of the "cancellation_reason" field.
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	// Link for virtual consultations
	MeetingLink *string `json:"meeting_link,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID *string `json:"meeting_id,omitempty"`
	// MeetingPassword holds the value of the "meeting_password" field.
	MeetingPassword *string `json:"-"`
	// Estimated cost in KES cents
	EstimatedCost *int64 `json:"estimated_cost,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentQuery when eager-loading is set.
	Edges        AppointmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppointmentEdges holds the relations/edges for other nodes in the graph.
type AppointmentEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// Service holds the value of the service edge.
	Service *Service `json:"service,omitempty"`
	// AppointmentType holds the value of the appointment_type edge.
	AppointmentType *AppointmentType `json:"appointment_type,omitempty"`
	// PreviousAppointment holds the value of the previous_appointment edge.
	PreviousAppointment *Appointment `json:"previous_appointment,omitempty"`
	// FollowUps holds the value of the follow_ups edge.
	FollowUps []*Appointment `json:"follow_ups,omitempty"`
	// Reschedules holds the value of the reschedules edge.
	Reschedules []*AppointmentReschedule `json:"reschedules,omitempty"`
	// AppointmentNotes holds the value of the appointment_notes edge.
	AppointmentNotes []*AppointmentNote `json:"appointment_notes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// ServiceOrErr returns the Service value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) ServiceOrErr() (*Service, error) {
	if e.Service != nil {
		return e.Service, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: service.Label}
	}
	return nil, &NotLoadedError{edge: "service"}
}

// AppointmentTypeOrErr returns the AppointmentType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) AppointmentTypeOrErr() (*AppointmentType, error) {
	if e.AppointmentType != nil {
		return e.AppointmentType, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: appointmenttype.Label}
	}
	return nil, &NotLoadedError{edge: "appointment_type"}
}

// PreviousAppointmentOrErr returns the PreviousAppointment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) PreviousAppointmentOrErr() (*Appointment, error) {
	if e.PreviousAppointment != nil {
		return e.PreviousAppointment, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: appointment.Label}
	}
	return nil, &NotLoadedError{edge: "previous_appointment"}
}

// FollowUpsOrErr returns the FollowUps value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentEdges) FollowUpsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[5] {
		return e.FollowUps, nil
	}
	return nil, &NotLoadedError{edge: "follow_ups"}
}

// ReschedulesOrErr returns the Reschedules value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentEdges) ReschedulesOrErr() ([]*AppointmentReschedule, error) {
	if e.loadedTypes[6] {
		return e.Reschedules, nil
	}
	return nil, &NotLoadedError{edge: "reschedules"}
}

// AppointmentNotesOrErr returns the AppointmentNotes value or an error if the edge
// was not loaded in eager-loading.
func (e AppointmentEdges) AppointmentNotesOrErr() ([]*AppointmentNote, error) {
	if e.loadedTypes[7] {
		return e.AppointmentNotes, nil
	}
	return nil, &NotLoadedError{edge: "appointment_notes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Appointment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointment.FieldServiceID, appointment.FieldPreviousAppointmentID, appointment.FieldBookedByID, appointment.FieldCheckedInByID, appointment.FieldCancelledByID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case appointment.FieldIsFollowUp, appointment.FieldIsConfirmed, appointment.FieldReminderSent:
			values[i] = new(sql.NullBool)
		case appointment.FieldDurationMin, appointment.FieldActualDurationMin, appointment.FieldEstimatedCost:
			values[i] = new(sql.NullInt64)
		case appointment.FieldAppointmentID, appointment.FieldStatus, appointment.FieldPriority, appointment.FieldConsultationType, appointment.FieldChiefComplaint, appointment.FieldSymptoms, appointment.FieldNotes, appointment.FieldBookingSource, appointment.FieldCancellationReason, appointment.FieldMeetingLink, appointment.FieldMeetingID, appointment.FieldMeetingPassword:
			values[i] = new(sql.NullString)
		case appointment.FieldCreatedAt, appointment.FieldUpdatedAt, appointment.FieldStartTime, appointment.FieldEndTime, appointment.FieldConfirmedAt, appointment.FieldReminderSentAt, appointment.FieldCheckedInAt, appointment.FieldStartedAt, appointment.FieldCompletedAt, appointment.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case appointment.FieldID, appointment.FieldPatientID, appointment.FieldDoctorID, appointment.FieldAppointmentTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Appointment fields.
func (_m *Appointment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointment.FieldAppointmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value.Valid {
				_m.AppointmentID = value.String
			}
		case appointment.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case appointment.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case appointment.FieldServiceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = new(uuid.UUID)
				*_m.ServiceID = *value.S.(*uuid.UUID)
			}
		case appointment.FieldAppointmentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_type_id", values[i])
			} else if value != nil {
				_m.AppointmentTypeID = *value
			}
		case appointment.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case appointment.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case appointment.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case appointment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointment.Status(value.String)
			}
		case appointment.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = appointment.Priority(value.String)
			}
		case appointment.FieldConsultationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_type", values[i])
			} else if value.Valid {
				_m.ConsultationType = appointment.ConsultationType(value.String)
			}
		case appointment.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = new(string)
				*_m.ChiefComplaint = value.String
			}
		case appointment.FieldSymptoms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms", values[i])
			} else if value.Valid {
				_m.Symptoms = new(string)
				*_m.Symptoms = value.String
			}
		case appointment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case appointment.FieldIsFollowUp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_follow_up", values[i])
			} else if value.Valid {
				_m.IsFollowUp = value.Bool
			}
		case appointment.FieldPreviousAppointmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field previous_appointment_id", values[i])
			} else if value.Valid {
				_m.PreviousAppointmentID = new(uuid.UUID)
				*_m.PreviousAppointmentID = *value.S.(*uuid.UUID)
			}
		case appointment.FieldBookedByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field booked_by_id", values[i])
			} else if value.Valid {
				_m.BookedByID = new(uuid.UUID)
				*_m.BookedByID = *value.S.(*uuid.UUID)
			}
		case appointment.FieldBookingSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_source", values[i])
			} else if value.Valid {
				_m.BookingSource = appointment.BookingSource(value.String)
			}
		case appointment.FieldIsConfirmed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_confirmed", values[i])
			} else if value.Valid {
				_m.IsConfirmed = value.Bool
			}
		case appointment.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = new(time.Time)
				*_m.ConfirmedAt = value.Time
			}
		case appointment.FieldReminderSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent", values[i])
			} else if value.Valid {
				_m.ReminderSent = value.Bool
			}
		case appointment.FieldReminderSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent_at", values[i])
			} else if value.Valid {
				_m.ReminderSentAt = new(time.Time)
				*_m.ReminderSentAt = value.Time
			}
		case appointment.FieldCheckedInAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_in_at", values[i])
			} else if value.Valid {
				_m.CheckedInAt = new(time.Time)
				*_m.CheckedInAt = value.Time
			}
		case appointment.FieldCheckedInByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field checked_in_by_id", values[i])
			} else if value.Valid {
				_m.CheckedInByID = new(uuid.UUID)
				*_m.CheckedInByID = *value.S.(*uuid.UUID)
			}
		case appointment.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case appointment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case appointment.FieldActualDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_duration_min", values[i])
			} else if value.Valid {
				_m.ActualDurationMin = new(int)
				*_m.ActualDurationMin = int(value.Int64)
			}
		case appointment.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case appointment.FieldCancelledByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_by_id", values[i])
			} else if value.Valid {
				_m.CancelledByID = new(uuid.UUID)
				*_m.CancelledByID = *value.S.(*uuid.UUID)
			}
		case appointment.FieldCancellationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_reason", values[i])
			} else if value.Valid {
				_m.CancellationReason = new(string)
				*_m.CancellationReason = value.String
			}
		case appointment.FieldMeetingLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_link", values[i])
			} else if value.Valid {
				_m.MeetingLink = new(string)
				*_m.MeetingLink = value.String
			}
		case appointment.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = new(string)
				*_m.MeetingID = value.String
			}
		case appointment.FieldMeetingPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_password", values[i])
			} else if value.Valid {
				_m.MeetingPassword = new(string)
				*_m.MeetingPassword = value.String
			}
		case appointment.FieldEstimatedCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost", values[i])
			} else if value.Valid {
				_m.EstimatedCost = new(int64)
				*_m.EstimatedCost = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Appointment.
// This includes values selected through modifiers, order, etc.
func (_m *Appointment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Appointment entity.
func (_m *Appointment) QueryPatient() *PatientQuery {
	return NewAppointmentClient(_m.config).QueryPatient(_m)
}

// QueryDoctor queries the "doctor" edge of the Appointment entity.
func (_m *Appointment) QueryDoctor() *DoctorQuery {
	return NewAppointmentClient(_m.config).QueryDoctor(_m)
}

// QueryService queries the "service" edge of the Appointment entity.
func (_m *Appointment) QueryService() *ServiceQuery {
	return NewAppointmentClient(_m.config).QueryService(_m)
}

// QueryAppointmentType queries the "appointment_type" edge of the Appointment entity.
func (_m *Appointment) QueryAppointmentType() *AppointmentTypeQuery {
	return NewAppointmentClient(_m.config).QueryAppointmentType(_m)
}

// QueryPreviousAppointment queries the "previous_appointment" edge of the Appointment entity.
func (_m *Appointment) QueryPreviousAppointment() *AppointmentQuery {
	return NewAppointmentClient(_m.config).QueryPreviousAppointment(_m)
}

// QueryFollowUps queries the "follow_ups" edge of the Appointment entity.
func (_m *Appointment) QueryFollowUps() *AppointmentQuery {
	return NewAppointmentClient(_m.config).QueryFollowUps(_m)
}

// QueryReschedules queries the "reschedules" edge of the Appointment entity.
func (_m *Appointment) QueryReschedules() *AppointmentRescheduleQuery {
	return NewAppointmentClient(_m.config).QueryReschedules(_m)
}

// QueryAppointmentNotes queries the "appointment_notes" edge of the Appointment entity.
func (_m *Appointment) QueryAppointmentNotes() *AppointmentNoteQuery {
	return NewAppointmentClient(_m.config).QueryAppointmentNotes(_m)
}

// Update returns a builder for updating this Appointment.
// Note that you need to call Appointment.Unwrap() before calling this method if this Appointment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Appointment) Update() *AppointmentUpdateOne {
	return NewAppointmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Appointment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Appointment) Unwrap() *Appointment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Appointment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Appointment) String() string {
	var builder strings.Builder
	builder.WriteString("Appointment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(_m.AppointmentID)
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
	builder.WriteString("appointment_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentTypeID))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("consultation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationType))
	builder.WriteString(", ")
	if v := _m.ChiefComplaint; v != nil {
		builder.WriteString("chief_complaint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Symptoms; v != nil {
		builder.WriteString("symptoms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_follow_up=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFollowUp))
	builder.WriteString(", ")
	if v := _m.PreviousAppointmentID; v != nil {
		builder.WriteString("previous_appointment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BookedByID; v != nil {
		builder.WriteString("booked_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("booking_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.BookingSource))
	builder.WriteString(", ")
	builder.WriteString("is_confirmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConfirmed))
	builder.WriteString(", ")
	if v := _m.ConfirmedAt; v != nil {
		builder.WriteString("confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reminder_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderSent))
	builder.WriteString(", ")
	if v := _m.ReminderSentAt; v != nil {
		builder.WriteString("reminder_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CheckedInAt; v != nil {
		builder.WriteString("checked_in_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CheckedInByID; v != nil {
		builder.WriteString("checked_in_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ActualDurationMin; v != nil {
		builder.WriteString("actual_duration_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledByID; v != nil {
		builder.WriteString("cancelled_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CancellationReason; v != nil {
		builder.WriteString("cancellation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MeetingLink; v != nil {
		builder.WriteString("meeting_link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MeetingID; v != nil {
		builder.WriteString("meeting_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meeting_password=<sensitive>")
	builder.WriteString(", ")
	if v := _m.EstimatedCost; v != nil {
		builder.WriteString("estimated_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Appointments is a parsable slice of Appointment.
type Appointments []*Appointment
