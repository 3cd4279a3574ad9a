// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/emailtemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/usersession"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment            = "Appointment"
	TypeAppointmentNote        = "AppointmentNote"
	TypeAppointmentReschedule  = "AppointmentReschedule"
	TypeAppointmentType        = "AppointmentType"
	TypeBusinessHours          = "BusinessHours"
	TypeClinicSettings         = "ClinicSettings"
	TypeContactMessage         = "ContactMessage"
	TypeContactResponse        = "ContactResponse"
	TypeDoctor                 = "Doctor"
	TypeDoctorAvailability     = "DoctorAvailability"
	TypeDoctorLeave            = "DoctorLeave"
	TypeEmailTemplate          = "EmailTemplate"
	TypeHoliday                = "Holiday"
	TypeMedicalHistory         = "MedicalHistory"
	TypeNewsletter             = "Newsletter"
	TypeNewsletterCampaign     = "NewsletterCampaign"
	TypeNewsletterSubscriber   = "NewsletterSubscriber"
	TypePatient                = "Patient"
	TypePatientDocument        = "PatientDocument"
	TypeSMSTemplate            = "SMSTemplate"
	TypeService                = "Service"
	TypeServiceCategory        = "ServiceCategory"
	TypeServiceDoctorSpecialty = "ServiceDoctorSpecialty"
	TypeServicePackage         = "ServicePackage"
	TypeSpecialization         = "Specialization"
	TypeTestimonial            = "Testimonial"
	TypeUser                   = "User"
	TypeUserProfile            = "UserProfile"
	TypeUserSession            = "UserSession"
	TypeWaitingList            = "WaitingList"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	appointment_id              *string
	start_time                  *time.Time
	duration_min                *int
	addduration_min             *int
	end_time                    *time.Time
	status                      *appointment.Status
	priority                    *appointment.Priority
	consultation_type           *appointment.ConsultationType
	chief_complaint             *string
	symptoms                    *string
	notes                       *string
	is_follow_up                *bool
	booked_by_id                *uuid.UUID
	booking_source              *appointment.BookingSource
	is_confirmed                *bool
	confirmed_at                *time.Time
	reminder_sent               *bool
	reminder_sent_at            *time.Time
	checked_in_at               *time.Time
	checked_in_by_id            *uuid.UUID
	started_at                  *time.Time
	completed_at                *time.Time
	actual_duration_min         *int
	addactual_duration_min      *int
	cancelled_at                *time.Time
	cancelled_by_id             *uuid.UUID
	cancellation_reason         *string
	meeting_link                *string
	meeting_id                  *string
	meeting_password            *string
	estimated_cost              *int64
	addestimated_cost           *int64
	clearedFields               map[string]struct{}
	patient                     *uuid.UUID
	clearedpatient              bool
	doctor                      *uuid.UUID
	cleareddoctor               bool
	service                     *uuid.UUID
	clearedservice              bool
	appointment_type            *uuid.UUID
	clearedappointment_type     bool
	previous_appointment        *uuid.UUID
	clearedprevious_appointment bool
	follow_ups                  map[uuid.UUID]struct{}
	removedfollow_ups           map[uuid.UUID]struct{}
	clearedfollow_ups           bool
	reschedules                 map[uuid.UUID]struct{}
	removedreschedules          map[uuid.UUID]struct{}
	clearedreschedules          bool
	appointment_notes           map[uuid.UUID]struct{}
	removedappointment_notes    map[uuid.UUID]struct{}
	clearedappointment_notes    bool
	done                        bool
	oldValue                    func(context.Context) (*Appointment, error)
	predicates                  []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *AppointmentMutation) SetAppointmentID(s string) {
	m.appointment_id = &s
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *AppointmentMutation) AppointmentID() (r string, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *AppointmentMutation) ResetAppointmentID() {
	m.appointment_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AppointmentMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AppointmentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AppointmentMutation) ResetPatientID() {
	m.patient = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AppointmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AppointmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AppointmentMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetServiceID sets the "service_id" field.
func (m *AppointmentMutation) SetServiceID(u uuid.UUID) {
	m.service = &u
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *AppointmentMutation) ServiceID() (r uuid.UUID, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldServiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ClearServiceID clears the value of the "service_id" field.
func (m *AppointmentMutation) ClearServiceID() {
	m.service = nil
	m.clearedFields[appointment.FieldServiceID] = struct{}{}
}

// ServiceIDCleared returns if the "service_id" field was cleared in this mutation.
func (m *AppointmentMutation) ServiceIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldServiceID]
	return ok
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *AppointmentMutation) ResetServiceID() {
	m.service = nil
	delete(m.clearedFields, appointment.FieldServiceID)
}

// SetAppointmentTypeID sets the "appointment_type_id" field.
func (m *AppointmentMutation) SetAppointmentTypeID(u uuid.UUID) {
	m.appointment_type = &u
}

// AppointmentTypeID returns the value of the "appointment_type_id" field in the mutation.
func (m *AppointmentMutation) AppointmentTypeID() (r uuid.UUID, exists bool) {
	v := m.appointment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentTypeID returns the old "appointment_type_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentTypeID: %w", err)
	}
	return oldValue.AppointmentTypeID, nil
}

// ResetAppointmentTypeID resets all changes to the "appointment_type_id" field.
func (m *AppointmentMutation) ResetAppointmentTypeID() {
	m.appointment_type = nil
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetDurationMin sets the "duration_min" field.
func (m *AppointmentMutation) SetDurationMin(i int) {
	m.duration_min = &i
	m.addduration_min = nil
}

// DurationMin returns the value of the "duration_min" field in the mutation.
func (m *AppointmentMutation) DurationMin() (r int, exists bool) {
	v := m.duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMin returns the old "duration_min" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMin: %w", err)
	}
	return oldValue.DurationMin, nil
}

// AddDurationMin adds i to the "duration_min" field.
func (m *AppointmentMutation) AddDurationMin(i int) {
	if m.addduration_min != nil {
		*m.addduration_min += i
	} else {
		m.addduration_min = &i
	}
}

// AddedDurationMin returns the value that was added to the "duration_min" field in this mutation.
func (m *AppointmentMutation) AddedDurationMin() (r int, exists bool) {
	v := m.addduration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMin resets all changes to the "duration_min" field.
func (m *AppointmentMutation) ResetDurationMin() {
	m.duration_min = nil
	m.addduration_min = nil
}

// SetEndTime sets the "end_time" field.
func (m *AppointmentMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AppointmentMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AppointmentMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *AppointmentMutation) SetPriority(a appointment.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AppointmentMutation) Priority() (r appointment.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPriority(ctx context.Context) (v appointment.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *AppointmentMutation) ResetPriority() {
	m.priority = nil
}

// SetConsultationType sets the "consultation_type" field.
func (m *AppointmentMutation) SetConsultationType(at appointment.ConsultationType) {
	m.consultation_type = &at
}

// ConsultationType returns the value of the "consultation_type" field in the mutation.
func (m *AppointmentMutation) ConsultationType() (r appointment.ConsultationType, exists bool) {
	v := m.consultation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationType returns the old "consultation_type" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldConsultationType(ctx context.Context) (v appointment.ConsultationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationType: %w", err)
	}
	return oldValue.ConsultationType, nil
}

// ResetConsultationType resets all changes to the "consultation_type" field.
func (m *AppointmentMutation) ResetConsultationType() {
	m.consultation_type = nil
}

// SetChiefComplaint sets the "chief_complaint" field.
func (m *AppointmentMutation) SetChiefComplaint(s string) {
	m.chief_complaint = &s
}

// ChiefComplaint returns the value of the "chief_complaint" field in the mutation.
func (m *AppointmentMutation) ChiefComplaint() (r string, exists bool) {
	v := m.chief_complaint
	if v == nil {
		return
	}
	return *v, true
}

// OldChiefComplaint returns the old "chief_complaint" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldChiefComplaint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChiefComplaint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChiefComplaint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChiefComplaint: %w", err)
	}
	return oldValue.ChiefComplaint, nil
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (m *AppointmentMutation) ClearChiefComplaint() {
	m.chief_complaint = nil
	m.clearedFields[appointment.FieldChiefComplaint] = struct{}{}
}

// ChiefComplaintCleared returns if the "chief_complaint" field was cleared in this mutation.
func (m *AppointmentMutation) ChiefComplaintCleared() bool {
	_, ok := m.clearedFields[appointment.FieldChiefComplaint]
	return ok
}

// ResetChiefComplaint resets all changes to the "chief_complaint" field.
func (m *AppointmentMutation) ResetChiefComplaint() {
	m.chief_complaint = nil
	delete(m.clearedFields, appointment.FieldChiefComplaint)
}

// SetSymptoms sets the "symptoms" field.
func (m *AppointmentMutation) SetSymptoms(s string) {
	m.symptoms = &s
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *AppointmentMutation) Symptoms() (r string, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSymptoms(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// ClearSymptoms clears the value of the "symptoms" field.
func (m *AppointmentMutation) ClearSymptoms() {
	m.symptoms = nil
	m.clearedFields[appointment.FieldSymptoms] = struct{}{}
}

// SymptomsCleared returns if the "symptoms" field was cleared in this mutation.
func (m *AppointmentMutation) SymptomsCleared() bool {
	_, ok := m.clearedFields[appointment.FieldSymptoms]
	return ok
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *AppointmentMutation) ResetSymptoms() {
	m.symptoms = nil
	delete(m.clearedFields, appointment.FieldSymptoms)
}

// SetNotes sets the "notes" field.
func (m *AppointmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AppointmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AppointmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[appointment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AppointmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AppointmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, appointment.FieldNotes)
}

// SetIsFollowUp sets the "is_follow_up" field.
func (m *AppointmentMutation) SetIsFollowUp(b bool) {
	m.is_follow_up = &b
}

// IsFollowUp returns the value of the "is_follow_up" field in the mutation.
func (m *AppointmentMutation) IsFollowUp() (r bool, exists bool) {
	v := m.is_follow_up
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFollowUp returns the old "is_follow_up" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldIsFollowUp(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFollowUp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFollowUp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFollowUp: %w", err)
	}
	return oldValue.IsFollowUp, nil
}

// ResetIsFollowUp resets all changes to the "is_follow_up" field.
func (m *AppointmentMutation) ResetIsFollowUp() {
	m.is_follow_up = nil
}

// SetPreviousAppointmentID sets the "previous_appointment_id" field.
func (m *AppointmentMutation) SetPreviousAppointmentID(u uuid.UUID) {
	m.previous_appointment = &u
}

// PreviousAppointmentID returns the value of the "previous_appointment_id" field in the mutation.
func (m *AppointmentMutation) PreviousAppointmentID() (r uuid.UUID, exists bool) {
	v := m.previous_appointment
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousAppointmentID returns the old "previous_appointment_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPreviousAppointmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousAppointmentID: %w", err)
	}
	return oldValue.PreviousAppointmentID, nil
}

// ClearPreviousAppointmentID clears the value of the "previous_appointment_id" field.
func (m *AppointmentMutation) ClearPreviousAppointmentID() {
	m.previous_appointment = nil
	m.clearedFields[appointment.FieldPreviousAppointmentID] = struct{}{}
}

// PreviousAppointmentIDCleared returns if the "previous_appointment_id" field was cleared in this mutation.
func (m *AppointmentMutation) PreviousAppointmentIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldPreviousAppointmentID]
	return ok
}

// ResetPreviousAppointmentID resets all changes to the "previous_appointment_id" field.
func (m *AppointmentMutation) ResetPreviousAppointmentID() {
	m.previous_appointment = nil
	delete(m.clearedFields, appointment.FieldPreviousAppointmentID)
}

// SetBookedByID sets the "booked_by_id" field.
func (m *AppointmentMutation) SetBookedByID(u uuid.UUID) {
	m.booked_by_id = &u
}

// BookedByID returns the value of the "booked_by_id" field in the mutation.
func (m *AppointmentMutation) BookedByID() (r uuid.UUID, exists bool) {
	v := m.booked_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBookedByID returns the old "booked_by_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldBookedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookedByID: %w", err)
	}
	return oldValue.BookedByID, nil
}

// ClearBookedByID clears the value of the "booked_by_id" field.
func (m *AppointmentMutation) ClearBookedByID() {
	m.booked_by_id = nil
	m.clearedFields[appointment.FieldBookedByID] = struct{}{}
}

// BookedByIDCleared returns if the "booked_by_id" field was cleared in this mutation.
func (m *AppointmentMutation) BookedByIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldBookedByID]
	return ok
}

// ResetBookedByID resets all changes to the "booked_by_id" field.
func (m *AppointmentMutation) ResetBookedByID() {
	m.booked_by_id = nil
	delete(m.clearedFields, appointment.FieldBookedByID)
}

// SetBookingSource sets the "booking_source" field.
func (m *AppointmentMutation) SetBookingSource(as appointment.BookingSource) {
	m.booking_source = &as
}

// BookingSource returns the value of the "booking_source" field in the mutation.
func (m *AppointmentMutation) BookingSource() (r appointment.BookingSource, exists bool) {
	v := m.booking_source
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingSource returns the old "booking_source" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldBookingSource(ctx context.Context) (v appointment.BookingSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingSource: %w", err)
	}
	return oldValue.BookingSource, nil
}

// ResetBookingSource resets all changes to the "booking_source" field.
func (m *AppointmentMutation) ResetBookingSource() {
	m.booking_source = nil
}

// SetIsConfirmed sets the "is_confirmed" field.
func (m *AppointmentMutation) SetIsConfirmed(b bool) {
	m.is_confirmed = &b
}

// IsConfirmed returns the value of the "is_confirmed" field in the mutation.
func (m *AppointmentMutation) IsConfirmed() (r bool, exists bool) {
	v := m.is_confirmed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConfirmed returns the old "is_confirmed" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldIsConfirmed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConfirmed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConfirmed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConfirmed: %w", err)
	}
	return oldValue.IsConfirmed, nil
}

// ResetIsConfirmed resets all changes to the "is_confirmed" field.
func (m *AppointmentMutation) ResetIsConfirmed() {
	m.is_confirmed = nil
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *AppointmentMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *AppointmentMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *AppointmentMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[appointment.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *AppointmentMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *AppointmentMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, appointment.FieldConfirmedAt)
}

// SetReminderSent sets the "reminder_sent" field.
func (m *AppointmentMutation) SetReminderSent(b bool) {
	m.reminder_sent = &b
}

// ReminderSent returns the value of the "reminder_sent" field in the mutation.
func (m *AppointmentMutation) ReminderSent() (r bool, exists bool) {
	v := m.reminder_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSent returns the old "reminder_sent" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldReminderSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSent: %w", err)
	}
	return oldValue.ReminderSent, nil
}

// ResetReminderSent resets all changes to the "reminder_sent" field.
func (m *AppointmentMutation) ResetReminderSent() {
	m.reminder_sent = nil
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (m *AppointmentMutation) SetReminderSentAt(t time.Time) {
	m.reminder_sent_at = &t
}

// ReminderSentAt returns the value of the "reminder_sent_at" field in the mutation.
func (m *AppointmentMutation) ReminderSentAt() (r time.Time, exists bool) {
	v := m.reminder_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSentAt returns the old "reminder_sent_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldReminderSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSentAt: %w", err)
	}
	return oldValue.ReminderSentAt, nil
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (m *AppointmentMutation) ClearReminderSentAt() {
	m.reminder_sent_at = nil
	m.clearedFields[appointment.FieldReminderSentAt] = struct{}{}
}

// ReminderSentAtCleared returns if the "reminder_sent_at" field was cleared in this mutation.
func (m *AppointmentMutation) ReminderSentAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldReminderSentAt]
	return ok
}

// ResetReminderSentAt resets all changes to the "reminder_sent_at" field.
func (m *AppointmentMutation) ResetReminderSentAt() {
	m.reminder_sent_at = nil
	delete(m.clearedFields, appointment.FieldReminderSentAt)
}

// SetCheckedInAt sets the "checked_in_at" field.
func (m *AppointmentMutation) SetCheckedInAt(t time.Time) {
	m.checked_in_at = &t
}

// CheckedInAt returns the value of the "checked_in_at" field in the mutation.
func (m *AppointmentMutation) CheckedInAt() (r time.Time, exists bool) {
	v := m.checked_in_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedInAt returns the old "checked_in_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCheckedInAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedInAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedInAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedInAt: %w", err)
	}
	return oldValue.CheckedInAt, nil
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (m *AppointmentMutation) ClearCheckedInAt() {
	m.checked_in_at = nil
	m.clearedFields[appointment.FieldCheckedInAt] = struct{}{}
}

// CheckedInAtCleared returns if the "checked_in_at" field was cleared in this mutation.
func (m *AppointmentMutation) CheckedInAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCheckedInAt]
	return ok
}

// ResetCheckedInAt resets all changes to the "checked_in_at" field.
func (m *AppointmentMutation) ResetCheckedInAt() {
	m.checked_in_at = nil
	delete(m.clearedFields, appointment.FieldCheckedInAt)
}

// SetCheckedInByID sets the "checked_in_by_id" field.
func (m *AppointmentMutation) SetCheckedInByID(u uuid.UUID) {
	m.checked_in_by_id = &u
}

// CheckedInByID returns the value of the "checked_in_by_id" field in the mutation.
func (m *AppointmentMutation) CheckedInByID() (r uuid.UUID, exists bool) {
	v := m.checked_in_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedInByID returns the old "checked_in_by_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCheckedInByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedInByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedInByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedInByID: %w", err)
	}
	return oldValue.CheckedInByID, nil
}

// ClearCheckedInByID clears the value of the "checked_in_by_id" field.
func (m *AppointmentMutation) ClearCheckedInByID() {
	m.checked_in_by_id = nil
	m.clearedFields[appointment.FieldCheckedInByID] = struct{}{}
}

// CheckedInByIDCleared returns if the "checked_in_by_id" field was cleared in this mutation.
func (m *AppointmentMutation) CheckedInByIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCheckedInByID]
	return ok
}

// ResetCheckedInByID resets all changes to the "checked_in_by_id" field.
func (m *AppointmentMutation) ResetCheckedInByID() {
	m.checked_in_by_id = nil
	delete(m.clearedFields, appointment.FieldCheckedInByID)
}

// SetStartedAt sets the "started_at" field.
func (m *AppointmentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AppointmentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AppointmentMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[appointment.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AppointmentMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AppointmentMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, appointment.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AppointmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AppointmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AppointmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[appointment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AppointmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AppointmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, appointment.FieldCompletedAt)
}

// SetActualDurationMin sets the "actual_duration_min" field.
func (m *AppointmentMutation) SetActualDurationMin(i int) {
	m.actual_duration_min = &i
	m.addactual_duration_min = nil
}

// ActualDurationMin returns the value of the "actual_duration_min" field in the mutation.
func (m *AppointmentMutation) ActualDurationMin() (r int, exists bool) {
	v := m.actual_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldActualDurationMin returns the old "actual_duration_min" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldActualDurationMin(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualDurationMin: %w", err)
	}
	return oldValue.ActualDurationMin, nil
}

// AddActualDurationMin adds i to the "actual_duration_min" field.
func (m *AppointmentMutation) AddActualDurationMin(i int) {
	if m.addactual_duration_min != nil {
		*m.addactual_duration_min += i
	} else {
		m.addactual_duration_min = &i
	}
}

// AddedActualDurationMin returns the value that was added to the "actual_duration_min" field in this mutation.
func (m *AppointmentMutation) AddedActualDurationMin() (r int, exists bool) {
	v := m.addactual_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearActualDurationMin clears the value of the "actual_duration_min" field.
func (m *AppointmentMutation) ClearActualDurationMin() {
	m.actual_duration_min = nil
	m.addactual_duration_min = nil
	m.clearedFields[appointment.FieldActualDurationMin] = struct{}{}
}

// ActualDurationMinCleared returns if the "actual_duration_min" field was cleared in this mutation.
func (m *AppointmentMutation) ActualDurationMinCleared() bool {
	_, ok := m.clearedFields[appointment.FieldActualDurationMin]
	return ok
}

// ResetActualDurationMin resets all changes to the "actual_duration_min" field.
func (m *AppointmentMutation) ResetActualDurationMin() {
	m.actual_duration_min = nil
	m.addactual_duration_min = nil
	delete(m.clearedFields, appointment.FieldActualDurationMin)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetCancelledByID sets the "cancelled_by_id" field.
func (m *AppointmentMutation) SetCancelledByID(u uuid.UUID) {
	m.cancelled_by_id = &u
}

// CancelledByID returns the value of the "cancelled_by_id" field in the mutation.
func (m *AppointmentMutation) CancelledByID() (r uuid.UUID, exists bool) {
	v := m.cancelled_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledByID returns the old "cancelled_by_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledByID: %w", err)
	}
	return oldValue.CancelledByID, nil
}

// ClearCancelledByID clears the value of the "cancelled_by_id" field.
func (m *AppointmentMutation) ClearCancelledByID() {
	m.cancelled_by_id = nil
	m.clearedFields[appointment.FieldCancelledByID] = struct{}{}
}

// CancelledByIDCleared returns if the "cancelled_by_id" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledByIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledByID]
	return ok
}

// ResetCancelledByID resets all changes to the "cancelled_by_id" field.
func (m *AppointmentMutation) ResetCancelledByID() {
	m.cancelled_by_id = nil
	delete(m.clearedFields, appointment.FieldCancelledByID)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// SetMeetingLink sets the "meeting_link" field.
func (m *AppointmentMutation) SetMeetingLink(s string) {
	m.meeting_link = &s
}

// MeetingLink returns the value of the "meeting_link" field in the mutation.
func (m *AppointmentMutation) MeetingLink() (r string, exists bool) {
	v := m.meeting_link
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingLink returns the old "meeting_link" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldMeetingLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingLink: %w", err)
	}
	return oldValue.MeetingLink, nil
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (m *AppointmentMutation) ClearMeetingLink() {
	m.meeting_link = nil
	m.clearedFields[appointment.FieldMeetingLink] = struct{}{}
}

// MeetingLinkCleared returns if the "meeting_link" field was cleared in this mutation.
func (m *AppointmentMutation) MeetingLinkCleared() bool {
	_, ok := m.clearedFields[appointment.FieldMeetingLink]
	return ok
}

// ResetMeetingLink resets all changes to the "meeting_link" field.
func (m *AppointmentMutation) ResetMeetingLink() {
	m.meeting_link = nil
	delete(m.clearedFields, appointment.FieldMeetingLink)
}

// SetMeetingID sets the "meeting_id" field.
func (m *AppointmentMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *AppointmentMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldMeetingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *AppointmentMutation) ClearMeetingID() {
	m.meeting_id = nil
	m.clearedFields[appointment.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *AppointmentMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *AppointmentMutation) ResetMeetingID() {
	m.meeting_id = nil
	delete(m.clearedFields, appointment.FieldMeetingID)
}

// SetMeetingPassword sets the "meeting_password" field.
func (m *AppointmentMutation) SetMeetingPassword(s string) {
	m.meeting_password = &s
}

// MeetingPassword returns the value of the "meeting_password" field in the mutation.
func (m *AppointmentMutation) MeetingPassword() (r string, exists bool) {
	v := m.meeting_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingPassword returns the old "meeting_password" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldMeetingPassword(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingPassword: %w", err)
	}
	return oldValue.MeetingPassword, nil
}

// ClearMeetingPassword clears the value of the "meeting_password" field.
func (m *AppointmentMutation) ClearMeetingPassword() {
	m.meeting_password = nil
	m.clearedFields[appointment.FieldMeetingPassword] = struct{}{}
}

// MeetingPasswordCleared returns if the "meeting_password" field was cleared in this mutation.
func (m *AppointmentMutation) MeetingPasswordCleared() bool {
	_, ok := m.clearedFields[appointment.FieldMeetingPassword]
	return ok
}

// ResetMeetingPassword resets all changes to the "meeting_password" field.
func (m *AppointmentMutation) ResetMeetingPassword() {
	m.meeting_password = nil
	delete(m.clearedFields, appointment.FieldMeetingPassword)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *AppointmentMutation) SetEstimatedCost(i int64) {
	m.estimated_cost = &i
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *AppointmentMutation) EstimatedCost() (r int64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEstimatedCost(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds i to the "estimated_cost" field.
func (m *AppointmentMutation) AddEstimatedCost(i int64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += i
	} else {
		m.addestimated_cost = &i
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *AppointmentMutation) AddedEstimatedCost() (r int64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (m *AppointmentMutation) ClearEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	m.clearedFields[appointment.FieldEstimatedCost] = struct{}{}
}

// EstimatedCostCleared returns if the "estimated_cost" field was cleared in this mutation.
func (m *AppointmentMutation) EstimatedCostCleared() bool {
	_, ok := m.clearedFields[appointment.FieldEstimatedCost]
	return ok
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *AppointmentMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
	delete(m.clearedFields, appointment.FieldEstimatedCost)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *AppointmentMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[appointment.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *AppointmentMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *AppointmentMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *AppointmentMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[appointment.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *AppointmentMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *AppointmentMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// ClearService clears the "service" edge to the Service entity.
func (m *AppointmentMutation) ClearService() {
	m.clearedservice = true
	m.clearedFields[appointment.FieldServiceID] = struct{}{}
}

// ServiceCleared reports if the "service" edge to the Service entity was cleared.
func (m *AppointmentMutation) ServiceCleared() bool {
	return m.ServiceIDCleared() || m.clearedservice
}

// ServiceIDs returns the "service" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) ServiceIDs() (ids []uuid.UUID) {
	if id := m.service; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetService resets all changes to the "service" edge.
func (m *AppointmentMutation) ResetService() {
	m.service = nil
	m.clearedservice = false
}

// ClearAppointmentType clears the "appointment_type" edge to the AppointmentType entity.
func (m *AppointmentMutation) ClearAppointmentType() {
	m.clearedappointment_type = true
	m.clearedFields[appointment.FieldAppointmentTypeID] = struct{}{}
}

// AppointmentTypeCleared reports if the "appointment_type" edge to the AppointmentType entity was cleared.
func (m *AppointmentMutation) AppointmentTypeCleared() bool {
	return m.clearedappointment_type
}

// AppointmentTypeIDs returns the "appointment_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppointmentTypeID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) AppointmentTypeIDs() (ids []uuid.UUID) {
	if id := m.appointment_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAppointmentType resets all changes to the "appointment_type" edge.
func (m *AppointmentMutation) ResetAppointmentType() {
	m.appointment_type = nil
	m.clearedappointment_type = false
}

// ClearPreviousAppointment clears the "previous_appointment" edge to the Appointment entity.
func (m *AppointmentMutation) ClearPreviousAppointment() {
	m.clearedprevious_appointment = true
	m.clearedFields[appointment.FieldPreviousAppointmentID] = struct{}{}
}

// PreviousAppointmentCleared reports if the "previous_appointment" edge to the Appointment entity was cleared.
func (m *AppointmentMutation) PreviousAppointmentCleared() bool {
	return m.PreviousAppointmentIDCleared() || m.clearedprevious_appointment
}

// PreviousAppointmentIDs returns the "previous_appointment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PreviousAppointmentID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) PreviousAppointmentIDs() (ids []uuid.UUID) {
	if id := m.previous_appointment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreviousAppointment resets all changes to the "previous_appointment" edge.
func (m *AppointmentMutation) ResetPreviousAppointment() {
	m.previous_appointment = nil
	m.clearedprevious_appointment = false
}

// AddFollowUpIDs adds the "follow_ups" edge to the Appointment entity by ids.
func (m *AppointmentMutation) AddFollowUpIDs(ids ...uuid.UUID) {
	if m.follow_ups == nil {
		m.follow_ups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.follow_ups[ids[i]] = struct{}{}
	}
}

// ClearFollowUps clears the "follow_ups" edge to the Appointment entity.
func (m *AppointmentMutation) ClearFollowUps() {
	m.clearedfollow_ups = true
}

// FollowUpsCleared reports if the "follow_ups" edge to the Appointment entity was cleared.
func (m *AppointmentMutation) FollowUpsCleared() bool {
	return m.clearedfollow_ups
}

// RemoveFollowUpIDs removes the "follow_ups" edge to the Appointment entity by IDs.
func (m *AppointmentMutation) RemoveFollowUpIDs(ids ...uuid.UUID) {
	if m.removedfollow_ups == nil {
		m.removedfollow_ups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.follow_ups, ids[i])
		m.removedfollow_ups[ids[i]] = struct{}{}
	}
}

// RemovedFollowUps returns the removed IDs of the "follow_ups" edge to the Appointment entity.
func (m *AppointmentMutation) RemovedFollowUpsIDs() (ids []uuid.UUID) {
	for id := range m.removedfollow_ups {
		ids = append(ids, id)
	}
	return
}

// FollowUpsIDs returns the "follow_ups" edge IDs in the mutation.
func (m *AppointmentMutation) FollowUpsIDs() (ids []uuid.UUID) {
	for id := range m.follow_ups {
		ids = append(ids, id)
	}
	return
}

// ResetFollowUps resets all changes to the "follow_ups" edge.
func (m *AppointmentMutation) ResetFollowUps() {
	m.follow_ups = nil
	m.clearedfollow_ups = false
	m.removedfollow_ups = nil
}

// AddRescheduleIDs adds the "reschedules" edge to the AppointmentReschedule entity by ids.
func (m *AppointmentMutation) AddRescheduleIDs(ids ...uuid.UUID) {
	if m.reschedules == nil {
		m.reschedules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reschedules[ids[i]] = struct{}{}
	}
}

// ClearReschedules clears the "reschedules" edge to the AppointmentReschedule entity.
func (m *AppointmentMutation) ClearReschedules() {
	m.clearedreschedules = true
}

// ReschedulesCleared reports if the "reschedules" edge to the AppointmentReschedule entity was cleared.
func (m *AppointmentMutation) ReschedulesCleared() bool {
	return m.clearedreschedules
}

// RemoveRescheduleIDs removes the "reschedules" edge to the AppointmentReschedule entity by IDs.
func (m *AppointmentMutation) RemoveRescheduleIDs(ids ...uuid.UUID) {
	if m.removedreschedules == nil {
		m.removedreschedules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reschedules, ids[i])
		m.removedreschedules[ids[i]] = struct{}{}
	}
}

// RemovedReschedules returns the removed IDs of the "reschedules" edge to the AppointmentReschedule entity.
func (m *AppointmentMutation) RemovedReschedulesIDs() (ids []uuid.UUID) {
	for id := range m.removedreschedules {
		ids = append(ids, id)
	}
	return
}

// ReschedulesIDs returns the "reschedules" edge IDs in the mutation.
func (m *AppointmentMutation) ReschedulesIDs() (ids []uuid.UUID) {
	for id := range m.reschedules {
		ids = append(ids, id)
	}
	return
}

// ResetReschedules resets all changes to the "reschedules" edge.
func (m *AppointmentMutation) ResetReschedules() {
	m.reschedules = nil
	m.clearedreschedules = false
	m.removedreschedules = nil
}

// AddAppointmentNoteIDs adds the "appointment_notes" edge to the AppointmentNote entity by ids.
func (m *AppointmentMutation) AddAppointmentNoteIDs(ids ...uuid.UUID) {
	if m.appointment_notes == nil {
		m.appointment_notes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.appointment_notes[ids[i]] = struct{}{}
	}
}

// ClearAppointmentNotes clears the "appointment_notes" edge to the AppointmentNote entity.
func (m *AppointmentMutation) ClearAppointmentNotes() {
	m.clearedappointment_notes = true
}

// AppointmentNotesCleared reports if the "appointment_notes" edge to the AppointmentNote entity was cleared.
func (m *AppointmentMutation) AppointmentNotesCleared() bool {
	return m.clearedappointment_notes
}

// RemoveAppointmentNoteIDs removes the "appointment_notes" edge to the AppointmentNote entity by IDs.
func (m *AppointmentMutation) RemoveAppointmentNoteIDs(ids ...uuid.UUID) {
	if m.removedappointment_notes == nil {
		m.removedappointment_notes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.appointment_notes, ids[i])
		m.removedappointment_notes[ids[i]] = struct{}{}
	}
}

// RemovedAppointmentNotes returns the removed IDs of the "appointment_notes" edge to the AppointmentNote entity.
func (m *AppointmentMutation) RemovedAppointmentNotesIDs() (ids []uuid.UUID) {
	for id := range m.removedappointment_notes {
		ids = append(ids, id)
	}
	return
}

// AppointmentNotesIDs returns the "appointment_notes" edge IDs in the mutation.
func (m *AppointmentMutation) AppointmentNotesIDs() (ids []uuid.UUID) {
	for id := range m.appointment_notes {
		ids = append(ids, id)
	}
	return
}

// ResetAppointmentNotes resets all changes to the "appointment_notes" edge.
func (m *AppointmentMutation) ResetAppointmentNotes() {
	m.appointment_notes = nil
	m.clearedappointment_notes = false
	m.removedappointment_notes = nil
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.appointment_id != nil {
		fields = append(fields, appointment.FieldAppointmentID)
	}
	if m.patient != nil {
		fields = append(fields, appointment.FieldPatientID)
	}
	if m.doctor != nil {
		fields = append(fields, appointment.FieldDoctorID)
	}
	if m.service != nil {
		fields = append(fields, appointment.FieldServiceID)
	}
	if m.appointment_type != nil {
		fields = append(fields, appointment.FieldAppointmentTypeID)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.duration_min != nil {
		fields = append(fields, appointment.FieldDurationMin)
	}
	if m.end_time != nil {
		fields = append(fields, appointment.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, appointment.FieldPriority)
	}
	if m.consultation_type != nil {
		fields = append(fields, appointment.FieldConsultationType)
	}
	if m.chief_complaint != nil {
		fields = append(fields, appointment.FieldChiefComplaint)
	}
	if m.symptoms != nil {
		fields = append(fields, appointment.FieldSymptoms)
	}
	if m.notes != nil {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.is_follow_up != nil {
		fields = append(fields, appointment.FieldIsFollowUp)
	}
	if m.previous_appointment != nil {
		fields = append(fields, appointment.FieldPreviousAppointmentID)
	}
	if m.booked_by_id != nil {
		fields = append(fields, appointment.FieldBookedByID)
	}
	if m.booking_source != nil {
		fields = append(fields, appointment.FieldBookingSource)
	}
	if m.is_confirmed != nil {
		fields = append(fields, appointment.FieldIsConfirmed)
	}
	if m.confirmed_at != nil {
		fields = append(fields, appointment.FieldConfirmedAt)
	}
	if m.reminder_sent != nil {
		fields = append(fields, appointment.FieldReminderSent)
	}
	if m.reminder_sent_at != nil {
		fields = append(fields, appointment.FieldReminderSentAt)
	}
	if m.checked_in_at != nil {
		fields = append(fields, appointment.FieldCheckedInAt)
	}
	if m.checked_in_by_id != nil {
		fields = append(fields, appointment.FieldCheckedInByID)
	}
	if m.started_at != nil {
		fields = append(fields, appointment.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.actual_duration_min != nil {
		fields = append(fields, appointment.FieldActualDurationMin)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.cancelled_by_id != nil {
		fields = append(fields, appointment.FieldCancelledByID)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.meeting_link != nil {
		fields = append(fields, appointment.FieldMeetingLink)
	}
	if m.meeting_id != nil {
		fields = append(fields, appointment.FieldMeetingID)
	}
	if m.meeting_password != nil {
		fields = append(fields, appointment.FieldMeetingPassword)
	}
	if m.estimated_cost != nil {
		fields = append(fields, appointment.FieldEstimatedCost)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldAppointmentID:
		return m.AppointmentID()
	case appointment.FieldPatientID:
		return m.PatientID()
	case appointment.FieldDoctorID:
		return m.DoctorID()
	case appointment.FieldServiceID:
		return m.ServiceID()
	case appointment.FieldAppointmentTypeID:
		return m.AppointmentTypeID()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldDurationMin:
		return m.DurationMin()
	case appointment.FieldEndTime:
		return m.EndTime()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldPriority:
		return m.Priority()
	case appointment.FieldConsultationType:
		return m.ConsultationType()
	case appointment.FieldChiefComplaint:
		return m.ChiefComplaint()
	case appointment.FieldSymptoms:
		return m.Symptoms()
	case appointment.FieldNotes:
		return m.Notes()
	case appointment.FieldIsFollowUp:
		return m.IsFollowUp()
	case appointment.FieldPreviousAppointmentID:
		return m.PreviousAppointmentID()
	case appointment.FieldBookedByID:
		return m.BookedByID()
	case appointment.FieldBookingSource:
		return m.BookingSource()
	case appointment.FieldIsConfirmed:
		return m.IsConfirmed()
	case appointment.FieldConfirmedAt:
		return m.ConfirmedAt()
	case appointment.FieldReminderSent:
		return m.ReminderSent()
	case appointment.FieldReminderSentAt:
		return m.ReminderSentAt()
	case appointment.FieldCheckedInAt:
		return m.CheckedInAt()
	case appointment.FieldCheckedInByID:
		return m.CheckedInByID()
	case appointment.FieldStartedAt:
		return m.StartedAt()
	case appointment.FieldCompletedAt:
		return m.CompletedAt()
	case appointment.FieldActualDurationMin:
		return m.ActualDurationMin()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldCancelledByID:
		return m.CancelledByID()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	case appointment.FieldMeetingLink:
		return m.MeetingLink()
	case appointment.FieldMeetingID:
		return m.MeetingID()
	case appointment.FieldMeetingPassword:
		return m.MeetingPassword()
	case appointment.FieldEstimatedCost:
		return m.EstimatedCost()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case appointment.FieldPatientID:
		return m.OldPatientID(ctx)
	case appointment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case appointment.FieldServiceID:
		return m.OldServiceID(ctx)
	case appointment.FieldAppointmentTypeID:
		return m.OldAppointmentTypeID(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldDurationMin:
		return m.OldDurationMin(ctx)
	case appointment.FieldEndTime:
		return m.OldEndTime(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldPriority:
		return m.OldPriority(ctx)
	case appointment.FieldConsultationType:
		return m.OldConsultationType(ctx)
	case appointment.FieldChiefComplaint:
		return m.OldChiefComplaint(ctx)
	case appointment.FieldSymptoms:
		return m.OldSymptoms(ctx)
	case appointment.FieldNotes:
		return m.OldNotes(ctx)
	case appointment.FieldIsFollowUp:
		return m.OldIsFollowUp(ctx)
	case appointment.FieldPreviousAppointmentID:
		return m.OldPreviousAppointmentID(ctx)
	case appointment.FieldBookedByID:
		return m.OldBookedByID(ctx)
	case appointment.FieldBookingSource:
		return m.OldBookingSource(ctx)
	case appointment.FieldIsConfirmed:
		return m.OldIsConfirmed(ctx)
	case appointment.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case appointment.FieldReminderSent:
		return m.OldReminderSent(ctx)
	case appointment.FieldReminderSentAt:
		return m.OldReminderSentAt(ctx)
	case appointment.FieldCheckedInAt:
		return m.OldCheckedInAt(ctx)
	case appointment.FieldCheckedInByID:
		return m.OldCheckedInByID(ctx)
	case appointment.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case appointment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case appointment.FieldActualDurationMin:
		return m.OldActualDurationMin(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldCancelledByID:
		return m.OldCancelledByID(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case appointment.FieldMeetingLink:
		return m.OldMeetingLink(ctx)
	case appointment.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case appointment.FieldMeetingPassword:
		return m.OldMeetingPassword(ctx)
	case appointment.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldAppointmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case appointment.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case appointment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case appointment.FieldServiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case appointment.FieldAppointmentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentTypeID(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMin(v)
		return nil
	case appointment.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldPriority:
		v, ok := value.(appointment.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case appointment.FieldConsultationType:
		v, ok := value.(appointment.ConsultationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationType(v)
		return nil
	case appointment.FieldChiefComplaint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChiefComplaint(v)
		return nil
	case appointment.FieldSymptoms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	case appointment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case appointment.FieldIsFollowUp:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFollowUp(v)
		return nil
	case appointment.FieldPreviousAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousAppointmentID(v)
		return nil
	case appointment.FieldBookedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookedByID(v)
		return nil
	case appointment.FieldBookingSource:
		v, ok := value.(appointment.BookingSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingSource(v)
		return nil
	case appointment.FieldIsConfirmed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConfirmed(v)
		return nil
	case appointment.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case appointment.FieldReminderSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSent(v)
		return nil
	case appointment.FieldReminderSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSentAt(v)
		return nil
	case appointment.FieldCheckedInAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedInAt(v)
		return nil
	case appointment.FieldCheckedInByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedInByID(v)
		return nil
	case appointment.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case appointment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case appointment.FieldActualDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualDurationMin(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldCancelledByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledByID(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case appointment.FieldMeetingLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingLink(v)
		return nil
	case appointment.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case appointment.FieldMeetingPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingPassword(v)
		return nil
	case appointment.FieldEstimatedCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addduration_min != nil {
		fields = append(fields, appointment.FieldDurationMin)
	}
	if m.addactual_duration_min != nil {
		fields = append(fields, appointment.FieldActualDurationMin)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, appointment.FieldEstimatedCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldDurationMin:
		return m.AddedDurationMin()
	case appointment.FieldActualDurationMin:
		return m.AddedActualDurationMin()
	case appointment.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMin(v)
		return nil
	case appointment.FieldActualDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualDurationMin(v)
		return nil
	case appointment.FieldEstimatedCost:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldServiceID) {
		fields = append(fields, appointment.FieldServiceID)
	}
	if m.FieldCleared(appointment.FieldChiefComplaint) {
		fields = append(fields, appointment.FieldChiefComplaint)
	}
	if m.FieldCleared(appointment.FieldSymptoms) {
		fields = append(fields, appointment.FieldSymptoms)
	}
	if m.FieldCleared(appointment.FieldNotes) {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.FieldCleared(appointment.FieldPreviousAppointmentID) {
		fields = append(fields, appointment.FieldPreviousAppointmentID)
	}
	if m.FieldCleared(appointment.FieldBookedByID) {
		fields = append(fields, appointment.FieldBookedByID)
	}
	if m.FieldCleared(appointment.FieldConfirmedAt) {
		fields = append(fields, appointment.FieldConfirmedAt)
	}
	if m.FieldCleared(appointment.FieldReminderSentAt) {
		fields = append(fields, appointment.FieldReminderSentAt)
	}
	if m.FieldCleared(appointment.FieldCheckedInAt) {
		fields = append(fields, appointment.FieldCheckedInAt)
	}
	if m.FieldCleared(appointment.FieldCheckedInByID) {
		fields = append(fields, appointment.FieldCheckedInByID)
	}
	if m.FieldCleared(appointment.FieldStartedAt) {
		fields = append(fields, appointment.FieldStartedAt)
	}
	if m.FieldCleared(appointment.FieldCompletedAt) {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.FieldCleared(appointment.FieldActualDurationMin) {
		fields = append(fields, appointment.FieldActualDurationMin)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldCancelledByID) {
		fields = append(fields, appointment.FieldCancelledByID)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.FieldCleared(appointment.FieldMeetingLink) {
		fields = append(fields, appointment.FieldMeetingLink)
	}
	if m.FieldCleared(appointment.FieldMeetingID) {
		fields = append(fields, appointment.FieldMeetingID)
	}
	if m.FieldCleared(appointment.FieldMeetingPassword) {
		fields = append(fields, appointment.FieldMeetingPassword)
	}
	if m.FieldCleared(appointment.FieldEstimatedCost) {
		fields = append(fields, appointment.FieldEstimatedCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldServiceID:
		m.ClearServiceID()
		return nil
	case appointment.FieldChiefComplaint:
		m.ClearChiefComplaint()
		return nil
	case appointment.FieldSymptoms:
		m.ClearSymptoms()
		return nil
	case appointment.FieldNotes:
		m.ClearNotes()
		return nil
	case appointment.FieldPreviousAppointmentID:
		m.ClearPreviousAppointmentID()
		return nil
	case appointment.FieldBookedByID:
		m.ClearBookedByID()
		return nil
	case appointment.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case appointment.FieldReminderSentAt:
		m.ClearReminderSentAt()
		return nil
	case appointment.FieldCheckedInAt:
		m.ClearCheckedInAt()
		return nil
	case appointment.FieldCheckedInByID:
		m.ClearCheckedInByID()
		return nil
	case appointment.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case appointment.FieldActualDurationMin:
		m.ClearActualDurationMin()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldCancelledByID:
		m.ClearCancelledByID()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case appointment.FieldMeetingLink:
		m.ClearMeetingLink()
		return nil
	case appointment.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	case appointment.FieldMeetingPassword:
		m.ClearMeetingPassword()
		return nil
	case appointment.FieldEstimatedCost:
		m.ClearEstimatedCost()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case appointment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case appointment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case appointment.FieldServiceID:
		m.ResetServiceID()
		return nil
	case appointment.FieldAppointmentTypeID:
		m.ResetAppointmentTypeID()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldDurationMin:
		m.ResetDurationMin()
		return nil
	case appointment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldPriority:
		m.ResetPriority()
		return nil
	case appointment.FieldConsultationType:
		m.ResetConsultationType()
		return nil
	case appointment.FieldChiefComplaint:
		m.ResetChiefComplaint()
		return nil
	case appointment.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	case appointment.FieldNotes:
		m.ResetNotes()
		return nil
	case appointment.FieldIsFollowUp:
		m.ResetIsFollowUp()
		return nil
	case appointment.FieldPreviousAppointmentID:
		m.ResetPreviousAppointmentID()
		return nil
	case appointment.FieldBookedByID:
		m.ResetBookedByID()
		return nil
	case appointment.FieldBookingSource:
		m.ResetBookingSource()
		return nil
	case appointment.FieldIsConfirmed:
		m.ResetIsConfirmed()
		return nil
	case appointment.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case appointment.FieldReminderSent:
		m.ResetReminderSent()
		return nil
	case appointment.FieldReminderSentAt:
		m.ResetReminderSentAt()
		return nil
	case appointment.FieldCheckedInAt:
		m.ResetCheckedInAt()
		return nil
	case appointment.FieldCheckedInByID:
		m.ResetCheckedInByID()
		return nil
	case appointment.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case appointment.FieldActualDurationMin:
		m.ResetActualDurationMin()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldCancelledByID:
		m.ResetCancelledByID()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case appointment.FieldMeetingLink:
		m.ResetMeetingLink()
		return nil
	case appointment.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case appointment.FieldMeetingPassword:
		m.ResetMeetingPassword()
		return nil
	case appointment.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.patient != nil {
		edges = append(edges, appointment.EdgePatient)
	}
	if m.doctor != nil {
		edges = append(edges, appointment.EdgeDoctor)
	}
	if m.service != nil {
		edges = append(edges, appointment.EdgeService)
	}
	if m.appointment_type != nil {
		edges = append(edges, appointment.EdgeAppointmentType)
	}
	if m.previous_appointment != nil {
		edges = append(edges, appointment.EdgePreviousAppointment)
	}
	if m.follow_ups != nil {
		edges = append(edges, appointment.EdgeFollowUps)
	}
	if m.reschedules != nil {
		edges = append(edges, appointment.EdgeReschedules)
	}
	if m.appointment_notes != nil {
		edges = append(edges, appointment.EdgeAppointmentNotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeService:
		if id := m.service; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeAppointmentType:
		if id := m.appointment_type; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgePreviousAppointment:
		if id := m.previous_appointment; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeFollowUps:
		ids := make([]ent.Value, 0, len(m.follow_ups))
		for id := range m.follow_ups {
			ids = append(ids, id)
		}
		return ids
	case appointment.EdgeReschedules:
		ids := make([]ent.Value, 0, len(m.reschedules))
		for id := range m.reschedules {
			ids = append(ids, id)
		}
		return ids
	case appointment.EdgeAppointmentNotes:
		ids := make([]ent.Value, 0, len(m.appointment_notes))
		for id := range m.appointment_notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedfollow_ups != nil {
		edges = append(edges, appointment.EdgeFollowUps)
	}
	if m.removedreschedules != nil {
		edges = append(edges, appointment.EdgeReschedules)
	}
	if m.removedappointment_notes != nil {
		edges = append(edges, appointment.EdgeAppointmentNotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgeFollowUps:
		ids := make([]ent.Value, 0, len(m.removedfollow_ups))
		for id := range m.removedfollow_ups {
			ids = append(ids, id)
		}
		return ids
	case appointment.EdgeReschedules:
		ids := make([]ent.Value, 0, len(m.removedreschedules))
		for id := range m.removedreschedules {
			ids = append(ids, id)
		}
		return ids
	case appointment.EdgeAppointmentNotes:
		ids := make([]ent.Value, 0, len(m.removedappointment_notes))
		for id := range m.removedappointment_notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedpatient {
		edges = append(edges, appointment.EdgePatient)
	}
	if m.cleareddoctor {
		edges = append(edges, appointment.EdgeDoctor)
	}
	if m.clearedservice {
		edges = append(edges, appointment.EdgeService)
	}
	if m.clearedappointment_type {
		edges = append(edges, appointment.EdgeAppointmentType)
	}
	if m.clearedprevious_appointment {
		edges = append(edges, appointment.EdgePreviousAppointment)
	}
	if m.clearedfollow_ups {
		edges = append(edges, appointment.EdgeFollowUps)
	}
	if m.clearedreschedules {
		edges = append(edges, appointment.EdgeReschedules)
	}
	if m.clearedappointment_notes {
		edges = append(edges, appointment.EdgeAppointmentNotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	switch name {
	case appointment.EdgePatient:
		return m.clearedpatient
	case appointment.EdgeDoctor:
		return m.cleareddoctor
	case appointment.EdgeService:
		return m.clearedservice
	case appointment.EdgeAppointmentType:
		return m.clearedappointment_type
	case appointment.EdgePreviousAppointment:
		return m.clearedprevious_appointment
	case appointment.EdgeFollowUps:
		return m.clearedfollow_ups
	case appointment.EdgeReschedules:
		return m.clearedreschedules
	case appointment.EdgeAppointmentNotes:
		return m.clearedappointment_notes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	switch name {
	case appointment.EdgePatient:
		m.ClearPatient()
		return nil
	case appointment.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case appointment.EdgeService:
		m.ClearService()
		return nil
	case appointment.EdgeAppointmentType:
		m.ClearAppointmentType()
		return nil
	case appointment.EdgePreviousAppointment:
		m.ClearPreviousAppointment()
		return nil
	}
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	switch name {
	case appointment.EdgePatient:
		m.ResetPatient()
		return nil
	case appointment.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case appointment.EdgeService:
		m.ResetService()
		return nil
	case appointment.EdgeAppointmentType:
		m.ResetAppointmentType()
		return nil
	case appointment.EdgePreviousAppointment:
		m.ResetPreviousAppointment()
		return nil
	case appointment.EdgeFollowUps:
		m.ResetFollowUps()
		return nil
	case appointment.EdgeReschedules:
		m.ResetReschedules()
		return nil
	case appointment.EdgeAppointmentNotes:
		m.ResetAppointmentNotes()
		return nil
	}
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// AppointmentNoteMutation represents an operation that mutates the AppointmentNote nodes in the graph.
type AppointmentNoteMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	note_type          *appointmentnote.NoteType
	content            *string
	is_private         *bool
	created_by_id      *uuid.UUID
	clearedFields      map[string]struct{}
	appointment        *uuid.UUID
	clearedappointment bool
	done               bool
	oldValue           func(context.Context) (*AppointmentNote, error)
	predicates         []predicate.AppointmentNote
}

var _ ent.Mutation = (*AppointmentNoteMutation)(nil)

// appointmentnoteOption allows management of the mutation configuration using functional options.
type appointmentnoteOption func(*AppointmentNoteMutation)

// newAppointmentNoteMutation creates new mutation for the AppointmentNote entity.
func newAppointmentNoteMutation(c config, op Op, opts ...appointmentnoteOption) *AppointmentNoteMutation {
	m := &AppointmentNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointmentNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentNoteID sets the ID field of the mutation.
func withAppointmentNoteID(id uuid.UUID) appointmentnoteOption {
	return func(m *AppointmentNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *AppointmentNote
		)
		m.oldValue = func(ctx context.Context) (*AppointmentNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppointmentNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointmentNote sets the old AppointmentNote of the mutation.
func withAppointmentNote(node *AppointmentNote) appointmentnoteOption {
	return func(m *AppointmentNoteMutation) {
		m.oldValue = func(context.Context) (*AppointmentNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppointmentNote entities.
func (m *AppointmentNoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentNoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentNoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppointmentNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *AppointmentNoteMutation) SetAppointmentID(u uuid.UUID) {
	m.appointment = &u
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *AppointmentNoteMutation) AppointmentID() (r uuid.UUID, exists bool) {
	v := m.appointment
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldAppointmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *AppointmentNoteMutation) ResetAppointmentID() {
	m.appointment = nil
}

// SetNoteType sets the "note_type" field.
func (m *AppointmentNoteMutation) SetNoteType(at appointmentnote.NoteType) {
	m.note_type = &at
}

// NoteType returns the value of the "note_type" field in the mutation.
func (m *AppointmentNoteMutation) NoteType() (r appointmentnote.NoteType, exists bool) {
	v := m.note_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNoteType returns the old "note_type" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldNoteType(ctx context.Context) (v appointmentnote.NoteType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoteType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoteType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoteType: %w", err)
	}
	return oldValue.NoteType, nil
}

// ResetNoteType resets all changes to the "note_type" field.
func (m *AppointmentNoteMutation) ResetNoteType() {
	m.note_type = nil
}

// SetContent sets the "content" field.
func (m *AppointmentNoteMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AppointmentNoteMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AppointmentNoteMutation) ResetContent() {
	m.content = nil
}

// SetIsPrivate sets the "is_private" field.
func (m *AppointmentNoteMutation) SetIsPrivate(b bool) {
	m.is_private = &b
}

// IsPrivate returns the value of the "is_private" field in the mutation.
func (m *AppointmentNoteMutation) IsPrivate() (r bool, exists bool) {
	v := m.is_private
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrivate returns the old "is_private" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldIsPrivate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrivate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrivate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrivate: %w", err)
	}
	return oldValue.IsPrivate, nil
}

// ResetIsPrivate resets all changes to the "is_private" field.
func (m *AppointmentNoteMutation) ResetIsPrivate() {
	m.is_private = nil
}

// SetCreatedByID sets the "created_by_id" field.
func (m *AppointmentNoteMutation) SetCreatedByID(u uuid.UUID) {
	m.created_by_id = &u
}

// CreatedByID returns the value of the "created_by_id" field in the mutation.
func (m *AppointmentNoteMutation) CreatedByID() (r uuid.UUID, exists bool) {
	v := m.created_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByID returns the old "created_by_id" field's value of the AppointmentNote entity.
// If the AppointmentNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentNoteMutation) OldCreatedByID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByID: %w", err)
	}
	return oldValue.CreatedByID, nil
}

// ResetCreatedByID resets all changes to the "created_by_id" field.
func (m *AppointmentNoteMutation) ResetCreatedByID() {
	m.created_by_id = nil
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (m *AppointmentNoteMutation) ClearAppointment() {
	m.clearedappointment = true
	m.clearedFields[appointmentnote.FieldAppointmentID] = struct{}{}
}

// AppointmentCleared reports if the "appointment" edge to the Appointment entity was cleared.
func (m *AppointmentNoteMutation) AppointmentCleared() bool {
	return m.clearedappointment
}

// AppointmentIDs returns the "appointment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppointmentID instead. It exists only for internal usage by the builders.
func (m *AppointmentNoteMutation) AppointmentIDs() (ids []uuid.UUID) {
	if id := m.appointment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAppointment resets all changes to the "appointment" edge.
func (m *AppointmentNoteMutation) ResetAppointment() {
	m.appointment = nil
	m.clearedappointment = false
}

// Where appends a list predicates to the AppointmentNoteMutation builder.
func (m *AppointmentNoteMutation) Where(ps ...predicate.AppointmentNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppointmentNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppointmentNote).
func (m *AppointmentNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentNoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, appointmentnote.FieldCreatedAt)
	}
	if m.appointment != nil {
		fields = append(fields, appointmentnote.FieldAppointmentID)
	}
	if m.note_type != nil {
		fields = append(fields, appointmentnote.FieldNoteType)
	}
	if m.content != nil {
		fields = append(fields, appointmentnote.FieldContent)
	}
	if m.is_private != nil {
		fields = append(fields, appointmentnote.FieldIsPrivate)
	}
	if m.created_by_id != nil {
		fields = append(fields, appointmentnote.FieldCreatedByID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointmentnote.FieldCreatedAt:
		return m.CreatedAt()
	case appointmentnote.FieldAppointmentID:
		return m.AppointmentID()
	case appointmentnote.FieldNoteType:
		return m.NoteType()
	case appointmentnote.FieldContent:
		return m.Content()
	case appointmentnote.FieldIsPrivate:
		return m.IsPrivate()
	case appointmentnote.FieldCreatedByID:
		return m.CreatedByID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointmentnote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointmentnote.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case appointmentnote.FieldNoteType:
		return m.OldNoteType(ctx)
	case appointmentnote.FieldContent:
		return m.OldContent(ctx)
	case appointmentnote.FieldIsPrivate:
		return m.OldIsPrivate(ctx)
	case appointmentnote.FieldCreatedByID:
		return m.OldCreatedByID(ctx)
	}
	return nil, fmt.Errorf("unknown AppointmentNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointmentnote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointmentnote.FieldAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case appointmentnote.FieldNoteType:
		v, ok := value.(appointmentnote.NoteType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoteType(v)
		return nil
	case appointmentnote.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case appointmentnote.FieldIsPrivate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrivate(v)
		return nil
	case appointmentnote.FieldCreatedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByID(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentNoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentNoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AppointmentNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AppointmentNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentNoteMutation) ResetField(name string) error {
	switch name {
	case appointmentnote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointmentnote.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case appointmentnote.FieldNoteType:
		m.ResetNoteType()
		return nil
	case appointmentnote.FieldContent:
		m.ResetContent()
		return nil
	case appointmentnote.FieldIsPrivate:
		m.ResetIsPrivate()
		return nil
	case appointmentnote.FieldCreatedByID:
		m.ResetCreatedByID()
		return nil
	}
	return fmt.Errorf("unknown AppointmentNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.appointment != nil {
		edges = append(edges, appointmentnote.EdgeAppointment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointmentnote.EdgeAppointment:
		if id := m.appointment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedappointment {
		edges = append(edges, appointmentnote.EdgeAppointment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case appointmentnote.EdgeAppointment:
		return m.clearedappointment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentNoteMutation) ClearEdge(name string) error {
	switch name {
	case appointmentnote.EdgeAppointment:
		m.ClearAppointment()
		return nil
	}
	return fmt.Errorf("unknown AppointmentNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentNoteMutation) ResetEdge(name string) error {
	switch name {
	case appointmentnote.EdgeAppointment:
		m.ResetAppointment()
		return nil
	}
	return fmt.Errorf("unknown AppointmentNote edge %s", name)
}

// AppointmentRescheduleMutation represents an operation that mutates the AppointmentReschedule nodes in the graph.
type AppointmentRescheduleMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	old_start_time     *time.Time
	new_start_time     *time.Time
	reason             *string
	rescheduled_by_id  *uuid.UUID
	clearedFields      map[string]struct{}
	appointment        *uuid.UUID
	clearedappointment bool
	done               bool
	oldValue           func(context.Context) (*AppointmentReschedule, error)
	predicates         []predicate.AppointmentReschedule
}

var _ ent.Mutation = (*AppointmentRescheduleMutation)(nil)

// appointmentrescheduleOption allows management of the mutation configuration using functional options.
type appointmentrescheduleOption func(*AppointmentRescheduleMutation)

// newAppointmentRescheduleMutation creates new mutation for the AppointmentReschedule entity.
func newAppointmentRescheduleMutation(c config, op Op, opts ...appointmentrescheduleOption) *AppointmentRescheduleMutation {
	m := &AppointmentRescheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointmentReschedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentRescheduleID sets the ID field of the mutation.
func withAppointmentRescheduleID(id uuid.UUID) appointmentrescheduleOption {
	return func(m *AppointmentRescheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *AppointmentReschedule
		)
		m.oldValue = func(ctx context.Context) (*AppointmentReschedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppointmentReschedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointmentReschedule sets the old AppointmentReschedule of the mutation.
func withAppointmentReschedule(node *AppointmentReschedule) appointmentrescheduleOption {
	return func(m *AppointmentRescheduleMutation) {
		m.oldValue = func(context.Context) (*AppointmentReschedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentRescheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentRescheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppointmentReschedule entities.
func (m *AppointmentRescheduleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentRescheduleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentRescheduleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppointmentReschedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentRescheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentRescheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentRescheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *AppointmentRescheduleMutation) SetAppointmentID(u uuid.UUID) {
	m.appointment = &u
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *AppointmentRescheduleMutation) AppointmentID() (r uuid.UUID, exists bool) {
	v := m.appointment
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldAppointmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *AppointmentRescheduleMutation) ResetAppointmentID() {
	m.appointment = nil
}

// SetOldStartTime sets the "old_start_time" field.
func (m *AppointmentRescheduleMutation) SetOldStartTime(t time.Time) {
	m.old_start_time = &t
}

// OldStartTime returns the value of the "old_start_time" field in the mutation.
func (m *AppointmentRescheduleMutation) OldStartTime() (r time.Time, exists bool) {
	v := m.old_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStartTime returns the old "old_start_time" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldOldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStartTime: %w", err)
	}
	return oldValue.OldStartTime, nil
}

// ResetOldStartTime resets all changes to the "old_start_time" field.
func (m *AppointmentRescheduleMutation) ResetOldStartTime() {
	m.old_start_time = nil
}

// SetNewStartTime sets the "new_start_time" field.
func (m *AppointmentRescheduleMutation) SetNewStartTime(t time.Time) {
	m.new_start_time = &t
}

// NewStartTime returns the value of the "new_start_time" field in the mutation.
func (m *AppointmentRescheduleMutation) NewStartTime() (r time.Time, exists bool) {
	v := m.new_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStartTime returns the old "new_start_time" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldNewStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStartTime: %w", err)
	}
	return oldValue.NewStartTime, nil
}

// ResetNewStartTime resets all changes to the "new_start_time" field.
func (m *AppointmentRescheduleMutation) ResetNewStartTime() {
	m.new_start_time = nil
}

// SetReason sets the "reason" field.
func (m *AppointmentRescheduleMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AppointmentRescheduleMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AppointmentRescheduleMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[appointmentreschedule.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AppointmentRescheduleMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[appointmentreschedule.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AppointmentRescheduleMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, appointmentreschedule.FieldReason)
}

// SetRescheduledByID sets the "rescheduled_by_id" field.
func (m *AppointmentRescheduleMutation) SetRescheduledByID(u uuid.UUID) {
	m.rescheduled_by_id = &u
}

// RescheduledByID returns the value of the "rescheduled_by_id" field in the mutation.
func (m *AppointmentRescheduleMutation) RescheduledByID() (r uuid.UUID, exists bool) {
	v := m.rescheduled_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRescheduledByID returns the old "rescheduled_by_id" field's value of the AppointmentReschedule entity.
// If the AppointmentReschedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentRescheduleMutation) OldRescheduledByID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRescheduledByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRescheduledByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRescheduledByID: %w", err)
	}
	return oldValue.RescheduledByID, nil
}

// ResetRescheduledByID resets all changes to the "rescheduled_by_id" field.
func (m *AppointmentRescheduleMutation) ResetRescheduledByID() {
	m.rescheduled_by_id = nil
}

// ClearAppointment clears the "appointment" edge to the Appointment entity.
func (m *AppointmentRescheduleMutation) ClearAppointment() {
	m.clearedappointment = true
	m.clearedFields[appointmentreschedule.FieldAppointmentID] = struct{}{}
}

// AppointmentCleared reports if the "appointment" edge to the Appointment entity was cleared.
func (m *AppointmentRescheduleMutation) AppointmentCleared() bool {
	return m.clearedappointment
}

// AppointmentIDs returns the "appointment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppointmentID instead. It exists only for internal usage by the builders.
func (m *AppointmentRescheduleMutation) AppointmentIDs() (ids []uuid.UUID) {
	if id := m.appointment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAppointment resets all changes to the "appointment" edge.
func (m *AppointmentRescheduleMutation) ResetAppointment() {
	m.appointment = nil
	m.clearedappointment = false
}

// Where appends a list predicates to the AppointmentRescheduleMutation builder.
func (m *AppointmentRescheduleMutation) Where(ps ...predicate.AppointmentReschedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentRescheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentRescheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppointmentReschedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentRescheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentRescheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppointmentReschedule).
func (m *AppointmentRescheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentRescheduleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, appointmentreschedule.FieldCreatedAt)
	}
	if m.appointment != nil {
		fields = append(fields, appointmentreschedule.FieldAppointmentID)
	}
	if m.old_start_time != nil {
		fields = append(fields, appointmentreschedule.FieldOldStartTime)
	}
	if m.new_start_time != nil {
		fields = append(fields, appointmentreschedule.FieldNewStartTime)
	}
	if m.reason != nil {
		fields = append(fields, appointmentreschedule.FieldReason)
	}
	if m.rescheduled_by_id != nil {
		fields = append(fields, appointmentreschedule.FieldRescheduledByID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentRescheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointmentreschedule.FieldCreatedAt:
		return m.CreatedAt()
	case appointmentreschedule.FieldAppointmentID:
		return m.AppointmentID()
	case appointmentreschedule.FieldOldStartTime:
		return m.OldStartTime()
	case appointmentreschedule.FieldNewStartTime:
		return m.NewStartTime()
	case appointmentreschedule.FieldReason:
		return m.Reason()
	case appointmentreschedule.FieldRescheduledByID:
		return m.RescheduledByID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentRescheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointmentreschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointmentreschedule.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case appointmentreschedule.FieldOldStartTime:
		return m.OldOldStartTime(ctx)
	case appointmentreschedule.FieldNewStartTime:
		return m.OldNewStartTime(ctx)
	case appointmentreschedule.FieldReason:
		return m.OldReason(ctx)
	case appointmentreschedule.FieldRescheduledByID:
		return m.OldRescheduledByID(ctx)
	}
	return nil, fmt.Errorf("unknown AppointmentReschedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentRescheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointmentreschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointmentreschedule.FieldAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case appointmentreschedule.FieldOldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStartTime(v)
		return nil
	case appointmentreschedule.FieldNewStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStartTime(v)
		return nil
	case appointmentreschedule.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case appointmentreschedule.FieldRescheduledByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRescheduledByID(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentReschedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentRescheduleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentRescheduleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentRescheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AppointmentReschedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentRescheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointmentreschedule.FieldReason) {
		fields = append(fields, appointmentreschedule.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentRescheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentRescheduleMutation) ClearField(name string) error {
	switch name {
	case appointmentreschedule.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown AppointmentReschedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentRescheduleMutation) ResetField(name string) error {
	switch name {
	case appointmentreschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointmentreschedule.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case appointmentreschedule.FieldOldStartTime:
		m.ResetOldStartTime()
		return nil
	case appointmentreschedule.FieldNewStartTime:
		m.ResetNewStartTime()
		return nil
	case appointmentreschedule.FieldReason:
		m.ResetReason()
		return nil
	case appointmentreschedule.FieldRescheduledByID:
		m.ResetRescheduledByID()
		return nil
	}
	return fmt.Errorf("unknown AppointmentReschedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentRescheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.appointment != nil {
		edges = append(edges, appointmentreschedule.EdgeAppointment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentRescheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointmentreschedule.EdgeAppointment:
		if id := m.appointment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentRescheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentRescheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentRescheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedappointment {
		edges = append(edges, appointmentreschedule.EdgeAppointment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentRescheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case appointmentreschedule.EdgeAppointment:
		return m.clearedappointment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentRescheduleMutation) ClearEdge(name string) error {
	switch name {
	case appointmentreschedule.EdgeAppointment:
		m.ClearAppointment()
		return nil
	}
	return fmt.Errorf("unknown AppointmentReschedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentRescheduleMutation) ResetEdge(name string) error {
	switch name {
	case appointmentreschedule.EdgeAppointment:
		m.ResetAppointment()
		return nil
	}
	return fmt.Errorf("unknown AppointmentReschedule edge %s", name)
}

// AppointmentTypeMutation represents an operation that mutates the AppointmentType nodes in the graph.
type AppointmentTypeMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	name                     *string
	slug                     *string
	description              *string
	duration_min             *int
	addduration_min          *int
	color                    *string
	is_consultation          *bool
	requires_preparation     *bool
	preparation_instructions *string
	is_active                *bool
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*AppointmentType, error)
	predicates               []predicate.AppointmentType
}

var _ ent.Mutation = (*AppointmentTypeMutation)(nil)

// appointmenttypeOption allows management of the mutation configuration using functional options.
type appointmenttypeOption func(*AppointmentTypeMutation)

// newAppointmentTypeMutation creates new mutation for the AppointmentType entity.
func newAppointmentTypeMutation(c config, op Op, opts ...appointmenttypeOption) *AppointmentTypeMutation {
	m := &AppointmentTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointmentType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentTypeID sets the ID field of the mutation.
func withAppointmentTypeID(id uuid.UUID) appointmenttypeOption {
	return func(m *AppointmentTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *AppointmentType
		)
		m.oldValue = func(ctx context.Context) (*AppointmentType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppointmentType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointmentType sets the old AppointmentType of the mutation.
func withAppointmentType(node *AppointmentType) appointmenttypeOption {
	return func(m *AppointmentTypeMutation) {
		m.oldValue = func(context.Context) (*AppointmentType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppointmentType entities.
func (m *AppointmentTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppointmentType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentTypeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentTypeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentTypeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *AppointmentTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AppointmentTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AppointmentTypeMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *AppointmentTypeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *AppointmentTypeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *AppointmentTypeMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *AppointmentTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AppointmentTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AppointmentTypeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[appointmenttype.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AppointmentTypeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[appointmenttype.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AppointmentTypeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, appointmenttype.FieldDescription)
}

// SetDurationMin sets the "duration_min" field.
func (m *AppointmentTypeMutation) SetDurationMin(i int) {
	m.duration_min = &i
	m.addduration_min = nil
}

// DurationMin returns the value of the "duration_min" field in the mutation.
func (m *AppointmentTypeMutation) DurationMin() (r int, exists bool) {
	v := m.duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMin returns the old "duration_min" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMin: %w", err)
	}
	return oldValue.DurationMin, nil
}

// AddDurationMin adds i to the "duration_min" field.
func (m *AppointmentTypeMutation) AddDurationMin(i int) {
	if m.addduration_min != nil {
		*m.addduration_min += i
	} else {
		m.addduration_min = &i
	}
}

// AddedDurationMin returns the value that was added to the "duration_min" field in this mutation.
func (m *AppointmentTypeMutation) AddedDurationMin() (r int, exists bool) {
	v := m.addduration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMin resets all changes to the "duration_min" field.
func (m *AppointmentTypeMutation) ResetDurationMin() {
	m.duration_min = nil
	m.addduration_min = nil
}

// SetColor sets the "color" field.
func (m *AppointmentTypeMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *AppointmentTypeMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ResetColor resets all changes to the "color" field.
func (m *AppointmentTypeMutation) ResetColor() {
	m.color = nil
}

// SetIsConsultation sets the "is_consultation" field.
func (m *AppointmentTypeMutation) SetIsConsultation(b bool) {
	m.is_consultation = &b
}

// IsConsultation returns the value of the "is_consultation" field in the mutation.
func (m *AppointmentTypeMutation) IsConsultation() (r bool, exists bool) {
	v := m.is_consultation
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConsultation returns the old "is_consultation" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldIsConsultation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConsultation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConsultation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConsultation: %w", err)
	}
	return oldValue.IsConsultation, nil
}

// ResetIsConsultation resets all changes to the "is_consultation" field.
func (m *AppointmentTypeMutation) ResetIsConsultation() {
	m.is_consultation = nil
}

// SetRequiresPreparation sets the "requires_preparation" field.
func (m *AppointmentTypeMutation) SetRequiresPreparation(b bool) {
	m.requires_preparation = &b
}

// RequiresPreparation returns the value of the "requires_preparation" field in the mutation.
func (m *AppointmentTypeMutation) RequiresPreparation() (r bool, exists bool) {
	v := m.requires_preparation
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresPreparation returns the old "requires_preparation" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldRequiresPreparation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresPreparation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresPreparation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresPreparation: %w", err)
	}
	return oldValue.RequiresPreparation, nil
}

// ResetRequiresPreparation resets all changes to the "requires_preparation" field.
func (m *AppointmentTypeMutation) ResetRequiresPreparation() {
	m.requires_preparation = nil
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (m *AppointmentTypeMutation) SetPreparationInstructions(s string) {
	m.preparation_instructions = &s
}

// PreparationInstructions returns the value of the "preparation_instructions" field in the mutation.
func (m *AppointmentTypeMutation) PreparationInstructions() (r string, exists bool) {
	v := m.preparation_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldPreparationInstructions returns the old "preparation_instructions" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldPreparationInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreparationInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreparationInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreparationInstructions: %w", err)
	}
	return oldValue.PreparationInstructions, nil
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (m *AppointmentTypeMutation) ClearPreparationInstructions() {
	m.preparation_instructions = nil
	m.clearedFields[appointmenttype.FieldPreparationInstructions] = struct{}{}
}

// PreparationInstructionsCleared returns if the "preparation_instructions" field was cleared in this mutation.
func (m *AppointmentTypeMutation) PreparationInstructionsCleared() bool {
	_, ok := m.clearedFields[appointmenttype.FieldPreparationInstructions]
	return ok
}

// ResetPreparationInstructions resets all changes to the "preparation_instructions" field.
func (m *AppointmentTypeMutation) ResetPreparationInstructions() {
	m.preparation_instructions = nil
	delete(m.clearedFields, appointmenttype.FieldPreparationInstructions)
}

// SetIsActive sets the "is_active" field.
func (m *AppointmentTypeMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AppointmentTypeMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AppointmentType entity.
// If the AppointmentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentTypeMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AppointmentTypeMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AppointmentTypeMutation builder.
func (m *AppointmentTypeMutation) Where(ps ...predicate.AppointmentType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppointmentType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppointmentType).
func (m *AppointmentTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentTypeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, appointmenttype.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, appointmenttype.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, appointmenttype.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, appointmenttype.FieldDescription)
	}
	if m.duration_min != nil {
		fields = append(fields, appointmenttype.FieldDurationMin)
	}
	if m.color != nil {
		fields = append(fields, appointmenttype.FieldColor)
	}
	if m.is_consultation != nil {
		fields = append(fields, appointmenttype.FieldIsConsultation)
	}
	if m.requires_preparation != nil {
		fields = append(fields, appointmenttype.FieldRequiresPreparation)
	}
	if m.preparation_instructions != nil {
		fields = append(fields, appointmenttype.FieldPreparationInstructions)
	}
	if m.is_active != nil {
		fields = append(fields, appointmenttype.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointmenttype.FieldCreatedAt:
		return m.CreatedAt()
	case appointmenttype.FieldName:
		return m.Name()
	case appointmenttype.FieldSlug:
		return m.Slug()
	case appointmenttype.FieldDescription:
		return m.Description()
	case appointmenttype.FieldDurationMin:
		return m.DurationMin()
	case appointmenttype.FieldColor:
		return m.Color()
	case appointmenttype.FieldIsConsultation:
		return m.IsConsultation()
	case appointmenttype.FieldRequiresPreparation:
		return m.RequiresPreparation()
	case appointmenttype.FieldPreparationInstructions:
		return m.PreparationInstructions()
	case appointmenttype.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointmenttype.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointmenttype.FieldName:
		return m.OldName(ctx)
	case appointmenttype.FieldSlug:
		return m.OldSlug(ctx)
	case appointmenttype.FieldDescription:
		return m.OldDescription(ctx)
	case appointmenttype.FieldDurationMin:
		return m.OldDurationMin(ctx)
	case appointmenttype.FieldColor:
		return m.OldColor(ctx)
	case appointmenttype.FieldIsConsultation:
		return m.OldIsConsultation(ctx)
	case appointmenttype.FieldRequiresPreparation:
		return m.OldRequiresPreparation(ctx)
	case appointmenttype.FieldPreparationInstructions:
		return m.OldPreparationInstructions(ctx)
	case appointmenttype.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown AppointmentType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointmenttype.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointmenttype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case appointmenttype.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case appointmenttype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case appointmenttype.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMin(v)
		return nil
	case appointmenttype.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case appointmenttype.FieldIsConsultation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConsultation(v)
		return nil
	case appointmenttype.FieldRequiresPreparation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresPreparation(v)
		return nil
	case appointmenttype.FieldPreparationInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreparationInstructions(v)
		return nil
	case appointmenttype.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentTypeMutation) AddedFields() []string {
	var fields []string
	if m.addduration_min != nil {
		fields = append(fields, appointmenttype.FieldDurationMin)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentTypeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointmenttype.FieldDurationMin:
		return m.AddedDurationMin()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointmenttype.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMin(v)
		return nil
	}
	return fmt.Errorf("unknown AppointmentType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentTypeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointmenttype.FieldDescription) {
		fields = append(fields, appointmenttype.FieldDescription)
	}
	if m.FieldCleared(appointmenttype.FieldPreparationInstructions) {
		fields = append(fields, appointmenttype.FieldPreparationInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentTypeMutation) ClearField(name string) error {
	switch name {
	case appointmenttype.FieldDescription:
		m.ClearDescription()
		return nil
	case appointmenttype.FieldPreparationInstructions:
		m.ClearPreparationInstructions()
		return nil
	}
	return fmt.Errorf("unknown AppointmentType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentTypeMutation) ResetField(name string) error {
	switch name {
	case appointmenttype.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointmenttype.FieldName:
		m.ResetName()
		return nil
	case appointmenttype.FieldSlug:
		m.ResetSlug()
		return nil
	case appointmenttype.FieldDescription:
		m.ResetDescription()
		return nil
	case appointmenttype.FieldDurationMin:
		m.ResetDurationMin()
		return nil
	case appointmenttype.FieldColor:
		m.ResetColor()
		return nil
	case appointmenttype.FieldIsConsultation:
		m.ResetIsConsultation()
		return nil
	case appointmenttype.FieldRequiresPreparation:
		m.ResetRequiresPreparation()
		return nil
	case appointmenttype.FieldPreparationInstructions:
		m.ResetPreparationInstructions()
		return nil
	case appointmenttype.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown AppointmentType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentTypeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentTypeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentTypeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentTypeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppointmentType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentTypeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppointmentType edge %s", name)
}

// BusinessHoursMutation represents an operation that mutates the BusinessHours nodes in the graph.
type BusinessHoursMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	day_of_week     *int8
	addday_of_week  *int8
	is_open         *bool
	opening_time    *string
	closing_time    *string
	lunch_break     *bool
	lunch_start     *string
	lunch_end       *string
	notes           *string
	clearedFields   map[string]struct{}
	settings        *uuid.UUID
	clearedsettings bool
	done            bool
	oldValue        func(context.Context) (*BusinessHours, error)
	predicates      []predicate.BusinessHours
}

var _ ent.Mutation = (*BusinessHoursMutation)(nil)

// businesshoursOption allows management of the mutation configuration using functional options.
type businesshoursOption func(*BusinessHoursMutation)

// newBusinessHoursMutation creates new mutation for the BusinessHours entity.
func newBusinessHoursMutation(c config, op Op, opts ...businesshoursOption) *BusinessHoursMutation {
	m := &BusinessHoursMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessHours,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessHoursID sets the ID field of the mutation.
func withBusinessHoursID(id uuid.UUID) businesshoursOption {
	return func(m *BusinessHoursMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessHours
		)
		m.oldValue = func(ctx context.Context) (*BusinessHours, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessHours.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessHours sets the old BusinessHours of the mutation.
func withBusinessHours(node *BusinessHours) businesshoursOption {
	return func(m *BusinessHoursMutation) {
		m.oldValue = func(context.Context) (*BusinessHours, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessHoursMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessHoursMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessHours entities.
func (m *BusinessHoursMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessHoursMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessHoursMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessHours.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSettingsID sets the "settings_id" field.
func (m *BusinessHoursMutation) SetSettingsID(u uuid.UUID) {
	m.settings = &u
}

// SettingsID returns the value of the "settings_id" field in the mutation.
func (m *BusinessHoursMutation) SettingsID() (r uuid.UUID, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettingsID returns the old "settings_id" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldSettingsID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettingsID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettingsID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettingsID: %w", err)
	}
	return oldValue.SettingsID, nil
}

// ResetSettingsID resets all changes to the "settings_id" field.
func (m *BusinessHoursMutation) ResetSettingsID() {
	m.settings = nil
}

// SetDayOfWeek sets the "day_of_week" field.
func (m *BusinessHoursMutation) SetDayOfWeek(i int8) {
	m.day_of_week = &i
	m.addday_of_week = nil
}

// DayOfWeek returns the value of the "day_of_week" field in the mutation.
func (m *BusinessHoursMutation) DayOfWeek() (r int8, exists bool) {
	v := m.day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfWeek returns the old "day_of_week" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldDayOfWeek(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfWeek: %w", err)
	}
	return oldValue.DayOfWeek, nil
}

// AddDayOfWeek adds i to the "day_of_week" field.
func (m *BusinessHoursMutation) AddDayOfWeek(i int8) {
	if m.addday_of_week != nil {
		*m.addday_of_week += i
	} else {
		m.addday_of_week = &i
	}
}

// AddedDayOfWeek returns the value that was added to the "day_of_week" field in this mutation.
func (m *BusinessHoursMutation) AddedDayOfWeek() (r int8, exists bool) {
	v := m.addday_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayOfWeek resets all changes to the "day_of_week" field.
func (m *BusinessHoursMutation) ResetDayOfWeek() {
	m.day_of_week = nil
	m.addday_of_week = nil
}

// SetIsOpen sets the "is_open" field.
func (m *BusinessHoursMutation) SetIsOpen(b bool) {
	m.is_open = &b
}

// IsOpen returns the value of the "is_open" field in the mutation.
func (m *BusinessHoursMutation) IsOpen() (r bool, exists bool) {
	v := m.is_open
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOpen returns the old "is_open" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldIsOpen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOpen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOpen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOpen: %w", err)
	}
	return oldValue.IsOpen, nil
}

// ResetIsOpen resets all changes to the "is_open" field.
func (m *BusinessHoursMutation) ResetIsOpen() {
	m.is_open = nil
}

// SetOpeningTime sets the "opening_time" field.
func (m *BusinessHoursMutation) SetOpeningTime(s string) {
	m.opening_time = &s
}

// OpeningTime returns the value of the "opening_time" field in the mutation.
func (m *BusinessHoursMutation) OpeningTime() (r string, exists bool) {
	v := m.opening_time
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningTime returns the old "opening_time" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldOpeningTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningTime: %w", err)
	}
	return oldValue.OpeningTime, nil
}

// ClearOpeningTime clears the value of the "opening_time" field.
func (m *BusinessHoursMutation) ClearOpeningTime() {
	m.opening_time = nil
	m.clearedFields[businesshours.FieldOpeningTime] = struct{}{}
}

// OpeningTimeCleared returns if the "opening_time" field was cleared in this mutation.
func (m *BusinessHoursMutation) OpeningTimeCleared() bool {
	_, ok := m.clearedFields[businesshours.FieldOpeningTime]
	return ok
}

// ResetOpeningTime resets all changes to the "opening_time" field.
func (m *BusinessHoursMutation) ResetOpeningTime() {
	m.opening_time = nil
	delete(m.clearedFields, businesshours.FieldOpeningTime)
}

// SetClosingTime sets the "closing_time" field.
func (m *BusinessHoursMutation) SetClosingTime(s string) {
	m.closing_time = &s
}

// ClosingTime returns the value of the "closing_time" field in the mutation.
func (m *BusinessHoursMutation) ClosingTime() (r string, exists bool) {
	v := m.closing_time
	if v == nil {
		return
	}
	return *v, true
}

// OldClosingTime returns the old "closing_time" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldClosingTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosingTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosingTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosingTime: %w", err)
	}
	return oldValue.ClosingTime, nil
}

// ClearClosingTime clears the value of the "closing_time" field.
func (m *BusinessHoursMutation) ClearClosingTime() {
	m.closing_time = nil
	m.clearedFields[businesshours.FieldClosingTime] = struct{}{}
}

// ClosingTimeCleared returns if the "closing_time" field was cleared in this mutation.
func (m *BusinessHoursMutation) ClosingTimeCleared() bool {
	_, ok := m.clearedFields[businesshours.FieldClosingTime]
	return ok
}

// ResetClosingTime resets all changes to the "closing_time" field.
func (m *BusinessHoursMutation) ResetClosingTime() {
	m.closing_time = nil
	delete(m.clearedFields, businesshours.FieldClosingTime)
}

// SetLunchBreak sets the "lunch_break" field.
func (m *BusinessHoursMutation) SetLunchBreak(b bool) {
	m.lunch_break = &b
}

// LunchBreak returns the value of the "lunch_break" field in the mutation.
func (m *BusinessHoursMutation) LunchBreak() (r bool, exists bool) {
	v := m.lunch_break
	if v == nil {
		return
	}
	return *v, true
}

// OldLunchBreak returns the old "lunch_break" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldLunchBreak(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLunchBreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLunchBreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLunchBreak: %w", err)
	}
	return oldValue.LunchBreak, nil
}

// ResetLunchBreak resets all changes to the "lunch_break" field.
func (m *BusinessHoursMutation) ResetLunchBreak() {
	m.lunch_break = nil
}

// SetLunchStart sets the "lunch_start" field.
func (m *BusinessHoursMutation) SetLunchStart(s string) {
	m.lunch_start = &s
}

// LunchStart returns the value of the "lunch_start" field in the mutation.
func (m *BusinessHoursMutation) LunchStart() (r string, exists bool) {
	v := m.lunch_start
	if v == nil {
		return
	}
	return *v, true
}

// OldLunchStart returns the old "lunch_start" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldLunchStart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLunchStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLunchStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLunchStart: %w", err)
	}
	return oldValue.LunchStart, nil
}

// ClearLunchStart clears the value of the "lunch_start" field.
func (m *BusinessHoursMutation) ClearLunchStart() {
	m.lunch_start = nil
	m.clearedFields[businesshours.FieldLunchStart] = struct{}{}
}

// LunchStartCleared returns if the "lunch_start" field was cleared in this mutation.
func (m *BusinessHoursMutation) LunchStartCleared() bool {
	_, ok := m.clearedFields[businesshours.FieldLunchStart]
	return ok
}

// ResetLunchStart resets all changes to the "lunch_start" field.
func (m *BusinessHoursMutation) ResetLunchStart() {
	m.lunch_start = nil
	delete(m.clearedFields, businesshours.FieldLunchStart)
}

// SetLunchEnd sets the "lunch_end" field.
func (m *BusinessHoursMutation) SetLunchEnd(s string) {
	m.lunch_end = &s
}

// LunchEnd returns the value of the "lunch_end" field in the mutation.
func (m *BusinessHoursMutation) LunchEnd() (r string, exists bool) {
	v := m.lunch_end
	if v == nil {
		return
	}
	return *v, true
}

// OldLunchEnd returns the old "lunch_end" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldLunchEnd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLunchEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLunchEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLunchEnd: %w", err)
	}
	return oldValue.LunchEnd, nil
}

// ClearLunchEnd clears the value of the "lunch_end" field.
func (m *BusinessHoursMutation) ClearLunchEnd() {
	m.lunch_end = nil
	m.clearedFields[businesshours.FieldLunchEnd] = struct{}{}
}

// LunchEndCleared returns if the "lunch_end" field was cleared in this mutation.
func (m *BusinessHoursMutation) LunchEndCleared() bool {
	_, ok := m.clearedFields[businesshours.FieldLunchEnd]
	return ok
}

// ResetLunchEnd resets all changes to the "lunch_end" field.
func (m *BusinessHoursMutation) ResetLunchEnd() {
	m.lunch_end = nil
	delete(m.clearedFields, businesshours.FieldLunchEnd)
}

// SetNotes sets the "notes" field.
func (m *BusinessHoursMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BusinessHoursMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the BusinessHours entity.
// If the BusinessHours object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessHoursMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BusinessHoursMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[businesshours.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BusinessHoursMutation) NotesCleared() bool {
	_, ok := m.clearedFields[businesshours.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BusinessHoursMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, businesshours.FieldNotes)
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (m *BusinessHoursMutation) ClearSettings() {
	m.clearedsettings = true
	m.clearedFields[businesshours.FieldSettingsID] = struct{}{}
}

// SettingsCleared reports if the "settings" edge to the ClinicSettings entity was cleared.
func (m *BusinessHoursMutation) SettingsCleared() bool {
	return m.clearedsettings
}

// SettingsIDs returns the "settings" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettingsID instead. It exists only for internal usage by the builders.
func (m *BusinessHoursMutation) SettingsIDs() (ids []uuid.UUID) {
	if id := m.settings; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettings resets all changes to the "settings" edge.
func (m *BusinessHoursMutation) ResetSettings() {
	m.settings = nil
	m.clearedsettings = false
}

// Where appends a list predicates to the BusinessHoursMutation builder.
func (m *BusinessHoursMutation) Where(ps ...predicate.BusinessHours) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessHoursMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessHoursMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessHours, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessHoursMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessHoursMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessHours).
func (m *BusinessHoursMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessHoursMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.settings != nil {
		fields = append(fields, businesshours.FieldSettingsID)
	}
	if m.day_of_week != nil {
		fields = append(fields, businesshours.FieldDayOfWeek)
	}
	if m.is_open != nil {
		fields = append(fields, businesshours.FieldIsOpen)
	}
	if m.opening_time != nil {
		fields = append(fields, businesshours.FieldOpeningTime)
	}
	if m.closing_time != nil {
		fields = append(fields, businesshours.FieldClosingTime)
	}
	if m.lunch_break != nil {
		fields = append(fields, businesshours.FieldLunchBreak)
	}
	if m.lunch_start != nil {
		fields = append(fields, businesshours.FieldLunchStart)
	}
	if m.lunch_end != nil {
		fields = append(fields, businesshours.FieldLunchEnd)
	}
	if m.notes != nil {
		fields = append(fields, businesshours.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessHoursMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businesshours.FieldSettingsID:
		return m.SettingsID()
	case businesshours.FieldDayOfWeek:
		return m.DayOfWeek()
	case businesshours.FieldIsOpen:
		return m.IsOpen()
	case businesshours.FieldOpeningTime:
		return m.OpeningTime()
	case businesshours.FieldClosingTime:
		return m.ClosingTime()
	case businesshours.FieldLunchBreak:
		return m.LunchBreak()
	case businesshours.FieldLunchStart:
		return m.LunchStart()
	case businesshours.FieldLunchEnd:
		return m.LunchEnd()
	case businesshours.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessHoursMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businesshours.FieldSettingsID:
		return m.OldSettingsID(ctx)
	case businesshours.FieldDayOfWeek:
		return m.OldDayOfWeek(ctx)
	case businesshours.FieldIsOpen:
		return m.OldIsOpen(ctx)
	case businesshours.FieldOpeningTime:
		return m.OldOpeningTime(ctx)
	case businesshours.FieldClosingTime:
		return m.OldClosingTime(ctx)
	case businesshours.FieldLunchBreak:
		return m.OldLunchBreak(ctx)
	case businesshours.FieldLunchStart:
		return m.OldLunchStart(ctx)
	case businesshours.FieldLunchEnd:
		return m.OldLunchEnd(ctx)
	case businesshours.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessHours field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessHoursMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businesshours.FieldSettingsID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettingsID(v)
		return nil
	case businesshours.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfWeek(v)
		return nil
	case businesshours.FieldIsOpen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOpen(v)
		return nil
	case businesshours.FieldOpeningTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningTime(v)
		return nil
	case businesshours.FieldClosingTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosingTime(v)
		return nil
	case businesshours.FieldLunchBreak:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLunchBreak(v)
		return nil
	case businesshours.FieldLunchStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLunchStart(v)
		return nil
	case businesshours.FieldLunchEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLunchEnd(v)
		return nil
	case businesshours.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessHours field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessHoursMutation) AddedFields() []string {
	var fields []string
	if m.addday_of_week != nil {
		fields = append(fields, businesshours.FieldDayOfWeek)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessHoursMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case businesshours.FieldDayOfWeek:
		return m.AddedDayOfWeek()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessHoursMutation) AddField(name string, value ent.Value) error {
	switch name {
	case businesshours.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfWeek(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessHours numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessHoursMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(businesshours.FieldOpeningTime) {
		fields = append(fields, businesshours.FieldOpeningTime)
	}
	if m.FieldCleared(businesshours.FieldClosingTime) {
		fields = append(fields, businesshours.FieldClosingTime)
	}
	if m.FieldCleared(businesshours.FieldLunchStart) {
		fields = append(fields, businesshours.FieldLunchStart)
	}
	if m.FieldCleared(businesshours.FieldLunchEnd) {
		fields = append(fields, businesshours.FieldLunchEnd)
	}
	if m.FieldCleared(businesshours.FieldNotes) {
		fields = append(fields, businesshours.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessHoursMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessHoursMutation) ClearField(name string) error {
	switch name {
	case businesshours.FieldOpeningTime:
		m.ClearOpeningTime()
		return nil
	case businesshours.FieldClosingTime:
		m.ClearClosingTime()
		return nil
	case businesshours.FieldLunchStart:
		m.ClearLunchStart()
		return nil
	case businesshours.FieldLunchEnd:
		m.ClearLunchEnd()
		return nil
	case businesshours.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown BusinessHours nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessHoursMutation) ResetField(name string) error {
	switch name {
	case businesshours.FieldSettingsID:
		m.ResetSettingsID()
		return nil
	case businesshours.FieldDayOfWeek:
		m.ResetDayOfWeek()
		return nil
	case businesshours.FieldIsOpen:
		m.ResetIsOpen()
		return nil
	case businesshours.FieldOpeningTime:
		m.ResetOpeningTime()
		return nil
	case businesshours.FieldClosingTime:
		m.ResetClosingTime()
		return nil
	case businesshours.FieldLunchBreak:
		m.ResetLunchBreak()
		return nil
	case businesshours.FieldLunchStart:
		m.ResetLunchStart()
		return nil
	case businesshours.FieldLunchEnd:
		m.ResetLunchEnd()
		return nil
	case businesshours.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown BusinessHours field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessHoursMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.settings != nil {
		edges = append(edges, businesshours.EdgeSettings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessHoursMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case businesshours.EdgeSettings:
		if id := m.settings; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessHoursMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessHoursMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessHoursMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsettings {
		edges = append(edges, businesshours.EdgeSettings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessHoursMutation) EdgeCleared(name string) bool {
	switch name {
	case businesshours.EdgeSettings:
		return m.clearedsettings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessHoursMutation) ClearEdge(name string) error {
	switch name {
	case businesshours.EdgeSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown BusinessHours unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessHoursMutation) ResetEdge(name string) error {
	switch name {
	case businesshours.EdgeSettings:
		m.ResetSettings()
		return nil
	}
	return fmt.Errorf("unknown BusinessHours edge %s", name)
}

// ClinicSettingsMutation represents an operation that mutates the ClinicSettings nodes in the graph.
type ClinicSettingsMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	created_at                     *time.Time
	updated_at                     *time.Time
	clinic_name                    *string
	tagline                        *string
	description                    *string
	logo_key                       *string
	favicon_key                    *string
	phone                          *string
	email                          *string
	website                        *string
	address_line_1                 *string
	address_line_2                 *string
	city                           *string
	state                          *string
	postal_code                    *string
	country                        *string
	facebook_url                   *string
	twitter_url                    *string
	instagram_url                  *string
	linkedin_url                   *string
	youtube_url                    *string
	timezone                       *string
	appointment_buffer_min         *int
	addappointment_buffer_min      *int
	max_advance_booking_days       *int
	addmax_advance_booking_days    *int
	min_advance_booking_hours      *int
	addmin_advance_booking_hours   *int
	cancellation_deadline_hours    *int
	addcancellation_deadline_hours *int
	send_appointment_confirmations *bool
	send_appointment_reminders     *bool
	reminder_hours_before          *int
	addreminder_hours_before       *int
	send_follow_up_reminders       *bool
	currency                       *string
	tax_rate_percent               *int
	addtax_rate_percent            *int
	emergency_phone                *string
	emergency_email                *string
	maintenance_mode               *bool
	maintenance_message            *string
	clearedFields                  map[string]struct{}
	business_hours                 map[uuid.UUID]struct{}
	removedbusiness_hours          map[uuid.UUID]struct{}
	clearedbusiness_hours          bool
	done                           bool
	oldValue                       func(context.Context) (*ClinicSettings, error)
	predicates                     []predicate.ClinicSettings
}

var _ ent.Mutation = (*ClinicSettingsMutation)(nil)

// clinicsettingsOption allows management of the mutation configuration using functional options.
type clinicsettingsOption func(*ClinicSettingsMutation)

// newClinicSettingsMutation creates new mutation for the ClinicSettings entity.
func newClinicSettingsMutation(c config, op Op, opts ...clinicsettingsOption) *ClinicSettingsMutation {
	m := &ClinicSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicSettingsID sets the ID field of the mutation.
func withClinicSettingsID(id uuid.UUID) clinicsettingsOption {
	return func(m *ClinicSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicSettings
		)
		m.oldValue = func(ctx context.Context) (*ClinicSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicSettings sets the old ClinicSettings of the mutation.
func withClinicSettings(node *ClinicSettings) clinicsettingsOption {
	return func(m *ClinicSettingsMutation) {
		m.oldValue = func(context.Context) (*ClinicSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicSettings entities.
func (m *ClinicSettingsMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicSettingsMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicSettingsMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicSettingsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicSettingsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicSettingsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicName sets the "clinic_name" field.
func (m *ClinicSettingsMutation) SetClinicName(s string) {
	m.clinic_name = &s
}

// ClinicName returns the value of the "clinic_name" field in the mutation.
func (m *ClinicSettingsMutation) ClinicName() (r string, exists bool) {
	v := m.clinic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicName returns the old "clinic_name" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldClinicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicName: %w", err)
	}
	return oldValue.ClinicName, nil
}

// ResetClinicName resets all changes to the "clinic_name" field.
func (m *ClinicSettingsMutation) ResetClinicName() {
	m.clinic_name = nil
}

// SetTagline sets the "tagline" field.
func (m *ClinicSettingsMutation) SetTagline(s string) {
	m.tagline = &s
}

// Tagline returns the value of the "tagline" field in the mutation.
func (m *ClinicSettingsMutation) Tagline() (r string, exists bool) {
	v := m.tagline
	if v == nil {
		return
	}
	return *v, true
}

// OldTagline returns the old "tagline" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldTagline(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagline: %w", err)
	}
	return oldValue.Tagline, nil
}

// ClearTagline clears the value of the "tagline" field.
func (m *ClinicSettingsMutation) ClearTagline() {
	m.tagline = nil
	m.clearedFields[clinicsettings.FieldTagline] = struct{}{}
}

// TaglineCleared returns if the "tagline" field was cleared in this mutation.
func (m *ClinicSettingsMutation) TaglineCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldTagline]
	return ok
}

// ResetTagline resets all changes to the "tagline" field.
func (m *ClinicSettingsMutation) ResetTagline() {
	m.tagline = nil
	delete(m.clearedFields, clinicsettings.FieldTagline)
}

// SetDescription sets the "description" field.
func (m *ClinicSettingsMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicSettingsMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicSettingsMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[clinicsettings.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicSettingsMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicSettingsMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, clinicsettings.FieldDescription)
}

// SetLogoKey sets the "logo_key" field.
func (m *ClinicSettingsMutation) SetLogoKey(s string) {
	m.logo_key = &s
}

// LogoKey returns the value of the "logo_key" field in the mutation.
func (m *ClinicSettingsMutation) LogoKey() (r string, exists bool) {
	v := m.logo_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoKey returns the old "logo_key" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldLogoKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoKey: %w", err)
	}
	return oldValue.LogoKey, nil
}

// ClearLogoKey clears the value of the "logo_key" field.
func (m *ClinicSettingsMutation) ClearLogoKey() {
	m.logo_key = nil
	m.clearedFields[clinicsettings.FieldLogoKey] = struct{}{}
}

// LogoKeyCleared returns if the "logo_key" field was cleared in this mutation.
func (m *ClinicSettingsMutation) LogoKeyCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldLogoKey]
	return ok
}

// ResetLogoKey resets all changes to the "logo_key" field.
func (m *ClinicSettingsMutation) ResetLogoKey() {
	m.logo_key = nil
	delete(m.clearedFields, clinicsettings.FieldLogoKey)
}

// SetFaviconKey sets the "favicon_key" field.
func (m *ClinicSettingsMutation) SetFaviconKey(s string) {
	m.favicon_key = &s
}

// FaviconKey returns the value of the "favicon_key" field in the mutation.
func (m *ClinicSettingsMutation) FaviconKey() (r string, exists bool) {
	v := m.favicon_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFaviconKey returns the old "favicon_key" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldFaviconKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaviconKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaviconKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaviconKey: %w", err)
	}
	return oldValue.FaviconKey, nil
}

// ClearFaviconKey clears the value of the "favicon_key" field.
func (m *ClinicSettingsMutation) ClearFaviconKey() {
	m.favicon_key = nil
	m.clearedFields[clinicsettings.FieldFaviconKey] = struct{}{}
}

// FaviconKeyCleared returns if the "favicon_key" field was cleared in this mutation.
func (m *ClinicSettingsMutation) FaviconKeyCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldFaviconKey]
	return ok
}

// ResetFaviconKey resets all changes to the "favicon_key" field.
func (m *ClinicSettingsMutation) ResetFaviconKey() {
	m.favicon_key = nil
	delete(m.clearedFields, clinicsettings.FieldFaviconKey)
}

// SetPhone sets the "phone" field.
func (m *ClinicSettingsMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClinicSettingsMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClinicSettingsMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *ClinicSettingsMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ClinicSettingsMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ClinicSettingsMutation) ResetEmail() {
	m.email = nil
}

// SetWebsite sets the "website" field.
func (m *ClinicSettingsMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ClinicSettingsMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldWebsite(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ClinicSettingsMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[clinicsettings.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ClinicSettingsMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ClinicSettingsMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, clinicsettings.FieldWebsite)
}

// SetAddressLine1 sets the "address_line_1" field.
func (m *ClinicSettingsMutation) SetAddressLine1(s string) {
	m.address_line_1 = &s
}

// AddressLine1 returns the value of the "address_line_1" field in the mutation.
func (m *ClinicSettingsMutation) AddressLine1() (r string, exists bool) {
	v := m.address_line_1
	if v == nil {
		return
	}
	return *v, true
}

// OldAddressLine1 returns the old "address_line_1" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldAddressLine1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddressLine1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddressLine1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddressLine1: %w", err)
	}
	return oldValue.AddressLine1, nil
}

// ResetAddressLine1 resets all changes to the "address_line_1" field.
func (m *ClinicSettingsMutation) ResetAddressLine1() {
	m.address_line_1 = nil
}

// SetAddressLine2 sets the "address_line_2" field.
func (m *ClinicSettingsMutation) SetAddressLine2(s string) {
	m.address_line_2 = &s
}

// AddressLine2 returns the value of the "address_line_2" field in the mutation.
func (m *ClinicSettingsMutation) AddressLine2() (r string, exists bool) {
	v := m.address_line_2
	if v == nil {
		return
	}
	return *v, true
}

// OldAddressLine2 returns the old "address_line_2" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldAddressLine2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddressLine2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddressLine2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddressLine2: %w", err)
	}
	return oldValue.AddressLine2, nil
}

// ClearAddressLine2 clears the value of the "address_line_2" field.
func (m *ClinicSettingsMutation) ClearAddressLine2() {
	m.address_line_2 = nil
	m.clearedFields[clinicsettings.FieldAddressLine2] = struct{}{}
}

// AddressLine2Cleared returns if the "address_line_2" field was cleared in this mutation.
func (m *ClinicSettingsMutation) AddressLine2Cleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldAddressLine2]
	return ok
}

// ResetAddressLine2 resets all changes to the "address_line_2" field.
func (m *ClinicSettingsMutation) ResetAddressLine2() {
	m.address_line_2 = nil
	delete(m.clearedFields, clinicsettings.FieldAddressLine2)
}

// SetCity sets the "city" field.
func (m *ClinicSettingsMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ClinicSettingsMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *ClinicSettingsMutation) ResetCity() {
	m.city = nil
}

// SetState sets the "state" field.
func (m *ClinicSettingsMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ClinicSettingsMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ClinicSettingsMutation) ClearState() {
	m.state = nil
	m.clearedFields[clinicsettings.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ClinicSettingsMutation) StateCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ClinicSettingsMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, clinicsettings.FieldState)
}

// SetPostalCode sets the "postal_code" field.
func (m *ClinicSettingsMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *ClinicSettingsMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldPostalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *ClinicSettingsMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[clinicsettings.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *ClinicSettingsMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *ClinicSettingsMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, clinicsettings.FieldPostalCode)
}

// SetCountry sets the "country" field.
func (m *ClinicSettingsMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ClinicSettingsMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *ClinicSettingsMutation) ResetCountry() {
	m.country = nil
}

// SetFacebookURL sets the "facebook_url" field.
func (m *ClinicSettingsMutation) SetFacebookURL(s string) {
	m.facebook_url = &s
}

// FacebookURL returns the value of the "facebook_url" field in the mutation.
func (m *ClinicSettingsMutation) FacebookURL() (r string, exists bool) {
	v := m.facebook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebookURL returns the old "facebook_url" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldFacebookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebookURL: %w", err)
	}
	return oldValue.FacebookURL, nil
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (m *ClinicSettingsMutation) ClearFacebookURL() {
	m.facebook_url = nil
	m.clearedFields[clinicsettings.FieldFacebookURL] = struct{}{}
}

// FacebookURLCleared returns if the "facebook_url" field was cleared in this mutation.
func (m *ClinicSettingsMutation) FacebookURLCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldFacebookURL]
	return ok
}

// ResetFacebookURL resets all changes to the "facebook_url" field.
func (m *ClinicSettingsMutation) ResetFacebookURL() {
	m.facebook_url = nil
	delete(m.clearedFields, clinicsettings.FieldFacebookURL)
}

// SetTwitterURL sets the "twitter_url" field.
func (m *ClinicSettingsMutation) SetTwitterURL(s string) {
	m.twitter_url = &s
}

// TwitterURL returns the value of the "twitter_url" field in the mutation.
func (m *ClinicSettingsMutation) TwitterURL() (r string, exists bool) {
	v := m.twitter_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitterURL returns the old "twitter_url" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldTwitterURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitterURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitterURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitterURL: %w", err)
	}
	return oldValue.TwitterURL, nil
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (m *ClinicSettingsMutation) ClearTwitterURL() {
	m.twitter_url = nil
	m.clearedFields[clinicsettings.FieldTwitterURL] = struct{}{}
}

// TwitterURLCleared returns if the "twitter_url" field was cleared in this mutation.
func (m *ClinicSettingsMutation) TwitterURLCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldTwitterURL]
	return ok
}

// ResetTwitterURL resets all changes to the "twitter_url" field.
func (m *ClinicSettingsMutation) ResetTwitterURL() {
	m.twitter_url = nil
	delete(m.clearedFields, clinicsettings.FieldTwitterURL)
}

// SetInstagramURL sets the "instagram_url" field.
func (m *ClinicSettingsMutation) SetInstagramURL(s string) {
	m.instagram_url = &s
}

// InstagramURL returns the value of the "instagram_url" field in the mutation.
func (m *ClinicSettingsMutation) InstagramURL() (r string, exists bool) {
	v := m.instagram_url
	if v == nil {
		return
	}
	return *v, true
}

// OldInstagramURL returns the old "instagram_url" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldInstagramURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstagramURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstagramURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstagramURL: %w", err)
	}
	return oldValue.InstagramURL, nil
}

// ClearInstagramURL clears the value of the "instagram_url" field.
func (m *ClinicSettingsMutation) ClearInstagramURL() {
	m.instagram_url = nil
	m.clearedFields[clinicsettings.FieldInstagramURL] = struct{}{}
}

// InstagramURLCleared returns if the "instagram_url" field was cleared in this mutation.
func (m *ClinicSettingsMutation) InstagramURLCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldInstagramURL]
	return ok
}

// ResetInstagramURL resets all changes to the "instagram_url" field.
func (m *ClinicSettingsMutation) ResetInstagramURL() {
	m.instagram_url = nil
	delete(m.clearedFields, clinicsettings.FieldInstagramURL)
}

// SetLinkedinURL sets the "linkedin_url" field.
func (m *ClinicSettingsMutation) SetLinkedinURL(s string) {
	m.linkedin_url = &s
}

// LinkedinURL returns the value of the "linkedin_url" field in the mutation.
func (m *ClinicSettingsMutation) LinkedinURL() (r string, exists bool) {
	v := m.linkedin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedinURL returns the old "linkedin_url" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldLinkedinURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedinURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedinURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedinURL: %w", err)
	}
	return oldValue.LinkedinURL, nil
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (m *ClinicSettingsMutation) ClearLinkedinURL() {
	m.linkedin_url = nil
	m.clearedFields[clinicsettings.FieldLinkedinURL] = struct{}{}
}

// LinkedinURLCleared returns if the "linkedin_url" field was cleared in this mutation.
func (m *ClinicSettingsMutation) LinkedinURLCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldLinkedinURL]
	return ok
}

// ResetLinkedinURL resets all changes to the "linkedin_url" field.
func (m *ClinicSettingsMutation) ResetLinkedinURL() {
	m.linkedin_url = nil
	delete(m.clearedFields, clinicsettings.FieldLinkedinURL)
}

// SetYoutubeURL sets the "youtube_url" field.
func (m *ClinicSettingsMutation) SetYoutubeURL(s string) {
	m.youtube_url = &s
}

// YoutubeURL returns the value of the "youtube_url" field in the mutation.
func (m *ClinicSettingsMutation) YoutubeURL() (r string, exists bool) {
	v := m.youtube_url
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutubeURL returns the old "youtube_url" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldYoutubeURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutubeURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutubeURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutubeURL: %w", err)
	}
	return oldValue.YoutubeURL, nil
}

// ClearYoutubeURL clears the value of the "youtube_url" field.
func (m *ClinicSettingsMutation) ClearYoutubeURL() {
	m.youtube_url = nil
	m.clearedFields[clinicsettings.FieldYoutubeURL] = struct{}{}
}

// YoutubeURLCleared returns if the "youtube_url" field was cleared in this mutation.
func (m *ClinicSettingsMutation) YoutubeURLCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldYoutubeURL]
	return ok
}

// ResetYoutubeURL resets all changes to the "youtube_url" field.
func (m *ClinicSettingsMutation) ResetYoutubeURL() {
	m.youtube_url = nil
	delete(m.clearedFields, clinicsettings.FieldYoutubeURL)
}

// SetTimezone sets the "timezone" field.
func (m *ClinicSettingsMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ClinicSettingsMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ClinicSettingsMutation) ResetTimezone() {
	m.timezone = nil
}

// SetAppointmentBufferMin sets the "appointment_buffer_min" field.
func (m *ClinicSettingsMutation) SetAppointmentBufferMin(i int) {
	m.appointment_buffer_min = &i
	m.addappointment_buffer_min = nil
}

// AppointmentBufferMin returns the value of the "appointment_buffer_min" field in the mutation.
func (m *ClinicSettingsMutation) AppointmentBufferMin() (r int, exists bool) {
	v := m.appointment_buffer_min
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentBufferMin returns the old "appointment_buffer_min" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldAppointmentBufferMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentBufferMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentBufferMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentBufferMin: %w", err)
	}
	return oldValue.AppointmentBufferMin, nil
}

// AddAppointmentBufferMin adds i to the "appointment_buffer_min" field.
func (m *ClinicSettingsMutation) AddAppointmentBufferMin(i int) {
	if m.addappointment_buffer_min != nil {
		*m.addappointment_buffer_min += i
	} else {
		m.addappointment_buffer_min = &i
	}
}

// AddedAppointmentBufferMin returns the value that was added to the "appointment_buffer_min" field in this mutation.
func (m *ClinicSettingsMutation) AddedAppointmentBufferMin() (r int, exists bool) {
	v := m.addappointment_buffer_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetAppointmentBufferMin resets all changes to the "appointment_buffer_min" field.
func (m *ClinicSettingsMutation) ResetAppointmentBufferMin() {
	m.appointment_buffer_min = nil
	m.addappointment_buffer_min = nil
}

// SetMaxAdvanceBookingDays sets the "max_advance_booking_days" field.
func (m *ClinicSettingsMutation) SetMaxAdvanceBookingDays(i int) {
	m.max_advance_booking_days = &i
	m.addmax_advance_booking_days = nil
}

// MaxAdvanceBookingDays returns the value of the "max_advance_booking_days" field in the mutation.
func (m *ClinicSettingsMutation) MaxAdvanceBookingDays() (r int, exists bool) {
	v := m.max_advance_booking_days
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAdvanceBookingDays returns the old "max_advance_booking_days" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldMaxAdvanceBookingDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAdvanceBookingDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAdvanceBookingDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAdvanceBookingDays: %w", err)
	}
	return oldValue.MaxAdvanceBookingDays, nil
}

// AddMaxAdvanceBookingDays adds i to the "max_advance_booking_days" field.
func (m *ClinicSettingsMutation) AddMaxAdvanceBookingDays(i int) {
	if m.addmax_advance_booking_days != nil {
		*m.addmax_advance_booking_days += i
	} else {
		m.addmax_advance_booking_days = &i
	}
}

// AddedMaxAdvanceBookingDays returns the value that was added to the "max_advance_booking_days" field in this mutation.
func (m *ClinicSettingsMutation) AddedMaxAdvanceBookingDays() (r int, exists bool) {
	v := m.addmax_advance_booking_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAdvanceBookingDays resets all changes to the "max_advance_booking_days" field.
func (m *ClinicSettingsMutation) ResetMaxAdvanceBookingDays() {
	m.max_advance_booking_days = nil
	m.addmax_advance_booking_days = nil
}

// SetMinAdvanceBookingHours sets the "min_advance_booking_hours" field.
func (m *ClinicSettingsMutation) SetMinAdvanceBookingHours(i int) {
	m.min_advance_booking_hours = &i
	m.addmin_advance_booking_hours = nil
}

// MinAdvanceBookingHours returns the value of the "min_advance_booking_hours" field in the mutation.
func (m *ClinicSettingsMutation) MinAdvanceBookingHours() (r int, exists bool) {
	v := m.min_advance_booking_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAdvanceBookingHours returns the old "min_advance_booking_hours" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldMinAdvanceBookingHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAdvanceBookingHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAdvanceBookingHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAdvanceBookingHours: %w", err)
	}
	return oldValue.MinAdvanceBookingHours, nil
}

// AddMinAdvanceBookingHours adds i to the "min_advance_booking_hours" field.
func (m *ClinicSettingsMutation) AddMinAdvanceBookingHours(i int) {
	if m.addmin_advance_booking_hours != nil {
		*m.addmin_advance_booking_hours += i
	} else {
		m.addmin_advance_booking_hours = &i
	}
}

// AddedMinAdvanceBookingHours returns the value that was added to the "min_advance_booking_hours" field in this mutation.
func (m *ClinicSettingsMutation) AddedMinAdvanceBookingHours() (r int, exists bool) {
	v := m.addmin_advance_booking_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinAdvanceBookingHours resets all changes to the "min_advance_booking_hours" field.
func (m *ClinicSettingsMutation) ResetMinAdvanceBookingHours() {
	m.min_advance_booking_hours = nil
	m.addmin_advance_booking_hours = nil
}

// SetCancellationDeadlineHours sets the "cancellation_deadline_hours" field.
func (m *ClinicSettingsMutation) SetCancellationDeadlineHours(i int) {
	m.cancellation_deadline_hours = &i
	m.addcancellation_deadline_hours = nil
}

// CancellationDeadlineHours returns the value of the "cancellation_deadline_hours" field in the mutation.
func (m *ClinicSettingsMutation) CancellationDeadlineHours() (r int, exists bool) {
	v := m.cancellation_deadline_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationDeadlineHours returns the old "cancellation_deadline_hours" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCancellationDeadlineHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationDeadlineHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationDeadlineHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationDeadlineHours: %w", err)
	}
	return oldValue.CancellationDeadlineHours, nil
}

// AddCancellationDeadlineHours adds i to the "cancellation_deadline_hours" field.
func (m *ClinicSettingsMutation) AddCancellationDeadlineHours(i int) {
	if m.addcancellation_deadline_hours != nil {
		*m.addcancellation_deadline_hours += i
	} else {
		m.addcancellation_deadline_hours = &i
	}
}

// AddedCancellationDeadlineHours returns the value that was added to the "cancellation_deadline_hours" field in this mutation.
func (m *ClinicSettingsMutation) AddedCancellationDeadlineHours() (r int, exists bool) {
	v := m.addcancellation_deadline_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCancellationDeadlineHours resets all changes to the "cancellation_deadline_hours" field.
func (m *ClinicSettingsMutation) ResetCancellationDeadlineHours() {
	m.cancellation_deadline_hours = nil
	m.addcancellation_deadline_hours = nil
}

// SetSendAppointmentConfirmations sets the "send_appointment_confirmations" field.
func (m *ClinicSettingsMutation) SetSendAppointmentConfirmations(b bool) {
	m.send_appointment_confirmations = &b
}

// SendAppointmentConfirmations returns the value of the "send_appointment_confirmations" field in the mutation.
func (m *ClinicSettingsMutation) SendAppointmentConfirmations() (r bool, exists bool) {
	v := m.send_appointment_confirmations
	if v == nil {
		return
	}
	return *v, true
}

// OldSendAppointmentConfirmations returns the old "send_appointment_confirmations" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldSendAppointmentConfirmations(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendAppointmentConfirmations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendAppointmentConfirmations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendAppointmentConfirmations: %w", err)
	}
	return oldValue.SendAppointmentConfirmations, nil
}

// ResetSendAppointmentConfirmations resets all changes to the "send_appointment_confirmations" field.
func (m *ClinicSettingsMutation) ResetSendAppointmentConfirmations() {
	m.send_appointment_confirmations = nil
}

// SetSendAppointmentReminders sets the "send_appointment_reminders" field.
func (m *ClinicSettingsMutation) SetSendAppointmentReminders(b bool) {
	m.send_appointment_reminders = &b
}

// SendAppointmentReminders returns the value of the "send_appointment_reminders" field in the mutation.
func (m *ClinicSettingsMutation) SendAppointmentReminders() (r bool, exists bool) {
	v := m.send_appointment_reminders
	if v == nil {
		return
	}
	return *v, true
}

// OldSendAppointmentReminders returns the old "send_appointment_reminders" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldSendAppointmentReminders(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendAppointmentReminders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendAppointmentReminders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendAppointmentReminders: %w", err)
	}
	return oldValue.SendAppointmentReminders, nil
}

// ResetSendAppointmentReminders resets all changes to the "send_appointment_reminders" field.
func (m *ClinicSettingsMutation) ResetSendAppointmentReminders() {
	m.send_appointment_reminders = nil
}

// SetReminderHoursBefore sets the "reminder_hours_before" field.
func (m *ClinicSettingsMutation) SetReminderHoursBefore(i int) {
	m.reminder_hours_before = &i
	m.addreminder_hours_before = nil
}

// ReminderHoursBefore returns the value of the "reminder_hours_before" field in the mutation.
func (m *ClinicSettingsMutation) ReminderHoursBefore() (r int, exists bool) {
	v := m.reminder_hours_before
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderHoursBefore returns the old "reminder_hours_before" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldReminderHoursBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderHoursBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderHoursBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderHoursBefore: %w", err)
	}
	return oldValue.ReminderHoursBefore, nil
}

// AddReminderHoursBefore adds i to the "reminder_hours_before" field.
func (m *ClinicSettingsMutation) AddReminderHoursBefore(i int) {
	if m.addreminder_hours_before != nil {
		*m.addreminder_hours_before += i
	} else {
		m.addreminder_hours_before = &i
	}
}

// AddedReminderHoursBefore returns the value that was added to the "reminder_hours_before" field in this mutation.
func (m *ClinicSettingsMutation) AddedReminderHoursBefore() (r int, exists bool) {
	v := m.addreminder_hours_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetReminderHoursBefore resets all changes to the "reminder_hours_before" field.
func (m *ClinicSettingsMutation) ResetReminderHoursBefore() {
	m.reminder_hours_before = nil
	m.addreminder_hours_before = nil
}

// SetSendFollowUpReminders sets the "send_follow_up_reminders" field.
func (m *ClinicSettingsMutation) SetSendFollowUpReminders(b bool) {
	m.send_follow_up_reminders = &b
}

// SendFollowUpReminders returns the value of the "send_follow_up_reminders" field in the mutation.
func (m *ClinicSettingsMutation) SendFollowUpReminders() (r bool, exists bool) {
	v := m.send_follow_up_reminders
	if v == nil {
		return
	}
	return *v, true
}

// OldSendFollowUpReminders returns the old "send_follow_up_reminders" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldSendFollowUpReminders(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendFollowUpReminders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendFollowUpReminders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendFollowUpReminders: %w", err)
	}
	return oldValue.SendFollowUpReminders, nil
}

// ResetSendFollowUpReminders resets all changes to the "send_follow_up_reminders" field.
func (m *ClinicSettingsMutation) ResetSendFollowUpReminders() {
	m.send_follow_up_reminders = nil
}

// SetCurrency sets the "currency" field.
func (m *ClinicSettingsMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ClinicSettingsMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ClinicSettingsMutation) ResetCurrency() {
	m.currency = nil
}

// SetTaxRatePercent sets the "tax_rate_percent" field.
func (m *ClinicSettingsMutation) SetTaxRatePercent(i int) {
	m.tax_rate_percent = &i
	m.addtax_rate_percent = nil
}

// TaxRatePercent returns the value of the "tax_rate_percent" field in the mutation.
func (m *ClinicSettingsMutation) TaxRatePercent() (r int, exists bool) {
	v := m.tax_rate_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxRatePercent returns the old "tax_rate_percent" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldTaxRatePercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxRatePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxRatePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxRatePercent: %w", err)
	}
	return oldValue.TaxRatePercent, nil
}

// AddTaxRatePercent adds i to the "tax_rate_percent" field.
func (m *ClinicSettingsMutation) AddTaxRatePercent(i int) {
	if m.addtax_rate_percent != nil {
		*m.addtax_rate_percent += i
	} else {
		m.addtax_rate_percent = &i
	}
}

// AddedTaxRatePercent returns the value that was added to the "tax_rate_percent" field in this mutation.
func (m *ClinicSettingsMutation) AddedTaxRatePercent() (r int, exists bool) {
	v := m.addtax_rate_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxRatePercent resets all changes to the "tax_rate_percent" field.
func (m *ClinicSettingsMutation) ResetTaxRatePercent() {
	m.tax_rate_percent = nil
	m.addtax_rate_percent = nil
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (m *ClinicSettingsMutation) SetEmergencyPhone(s string) {
	m.emergency_phone = &s
}

// EmergencyPhone returns the value of the "emergency_phone" field in the mutation.
func (m *ClinicSettingsMutation) EmergencyPhone() (r string, exists bool) {
	v := m.emergency_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyPhone returns the old "emergency_phone" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldEmergencyPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyPhone: %w", err)
	}
	return oldValue.EmergencyPhone, nil
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (m *ClinicSettingsMutation) ClearEmergencyPhone() {
	m.emergency_phone = nil
	m.clearedFields[clinicsettings.FieldEmergencyPhone] = struct{}{}
}

// EmergencyPhoneCleared returns if the "emergency_phone" field was cleared in this mutation.
func (m *ClinicSettingsMutation) EmergencyPhoneCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldEmergencyPhone]
	return ok
}

// ResetEmergencyPhone resets all changes to the "emergency_phone" field.
func (m *ClinicSettingsMutation) ResetEmergencyPhone() {
	m.emergency_phone = nil
	delete(m.clearedFields, clinicsettings.FieldEmergencyPhone)
}

// SetEmergencyEmail sets the "emergency_email" field.
func (m *ClinicSettingsMutation) SetEmergencyEmail(s string) {
	m.emergency_email = &s
}

// EmergencyEmail returns the value of the "emergency_email" field in the mutation.
func (m *ClinicSettingsMutation) EmergencyEmail() (r string, exists bool) {
	v := m.emergency_email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyEmail returns the old "emergency_email" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldEmergencyEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyEmail: %w", err)
	}
	return oldValue.EmergencyEmail, nil
}

// ClearEmergencyEmail clears the value of the "emergency_email" field.
func (m *ClinicSettingsMutation) ClearEmergencyEmail() {
	m.emergency_email = nil
	m.clearedFields[clinicsettings.FieldEmergencyEmail] = struct{}{}
}

// EmergencyEmailCleared returns if the "emergency_email" field was cleared in this mutation.
func (m *ClinicSettingsMutation) EmergencyEmailCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldEmergencyEmail]
	return ok
}

// ResetEmergencyEmail resets all changes to the "emergency_email" field.
func (m *ClinicSettingsMutation) ResetEmergencyEmail() {
	m.emergency_email = nil
	delete(m.clearedFields, clinicsettings.FieldEmergencyEmail)
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (m *ClinicSettingsMutation) SetMaintenanceMode(b bool) {
	m.maintenance_mode = &b
}

// MaintenanceMode returns the value of the "maintenance_mode" field in the mutation.
func (m *ClinicSettingsMutation) MaintenanceMode() (r bool, exists bool) {
	v := m.maintenance_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMaintenanceMode returns the old "maintenance_mode" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldMaintenanceMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaintenanceMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaintenanceMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaintenanceMode: %w", err)
	}
	return oldValue.MaintenanceMode, nil
}

// ResetMaintenanceMode resets all changes to the "maintenance_mode" field.
func (m *ClinicSettingsMutation) ResetMaintenanceMode() {
	m.maintenance_mode = nil
}

// SetMaintenanceMessage sets the "maintenance_message" field.
func (m *ClinicSettingsMutation) SetMaintenanceMessage(s string) {
	m.maintenance_message = &s
}

// MaintenanceMessage returns the value of the "maintenance_message" field in the mutation.
func (m *ClinicSettingsMutation) MaintenanceMessage() (r string, exists bool) {
	v := m.maintenance_message
	if v == nil {
		return
	}
	return *v, true
}

// OldMaintenanceMessage returns the old "maintenance_message" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldMaintenanceMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaintenanceMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaintenanceMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaintenanceMessage: %w", err)
	}
	return oldValue.MaintenanceMessage, nil
}

// ClearMaintenanceMessage clears the value of the "maintenance_message" field.
func (m *ClinicSettingsMutation) ClearMaintenanceMessage() {
	m.maintenance_message = nil
	m.clearedFields[clinicsettings.FieldMaintenanceMessage] = struct{}{}
}

// MaintenanceMessageCleared returns if the "maintenance_message" field was cleared in this mutation.
func (m *ClinicSettingsMutation) MaintenanceMessageCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldMaintenanceMessage]
	return ok
}

// ResetMaintenanceMessage resets all changes to the "maintenance_message" field.
func (m *ClinicSettingsMutation) ResetMaintenanceMessage() {
	m.maintenance_message = nil
	delete(m.clearedFields, clinicsettings.FieldMaintenanceMessage)
}

// AddBusinessHourIDs adds the "business_hours" edge to the BusinessHours entity by ids.
func (m *ClinicSettingsMutation) AddBusinessHourIDs(ids ...uuid.UUID) {
	if m.business_hours == nil {
		m.business_hours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.business_hours[ids[i]] = struct{}{}
	}
}

// ClearBusinessHours clears the "business_hours" edge to the BusinessHours entity.
func (m *ClinicSettingsMutation) ClearBusinessHours() {
	m.clearedbusiness_hours = true
}

// BusinessHoursCleared reports if the "business_hours" edge to the BusinessHours entity was cleared.
func (m *ClinicSettingsMutation) BusinessHoursCleared() bool {
	return m.clearedbusiness_hours
}

// RemoveBusinessHourIDs removes the "business_hours" edge to the BusinessHours entity by IDs.
func (m *ClinicSettingsMutation) RemoveBusinessHourIDs(ids ...uuid.UUID) {
	if m.removedbusiness_hours == nil {
		m.removedbusiness_hours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.business_hours, ids[i])
		m.removedbusiness_hours[ids[i]] = struct{}{}
	}
}

// RemovedBusinessHours returns the removed IDs of the "business_hours" edge to the BusinessHours entity.
func (m *ClinicSettingsMutation) RemovedBusinessHoursIDs() (ids []uuid.UUID) {
	for id := range m.removedbusiness_hours {
		ids = append(ids, id)
	}
	return
}

// BusinessHoursIDs returns the "business_hours" edge IDs in the mutation.
func (m *ClinicSettingsMutation) BusinessHoursIDs() (ids []uuid.UUID) {
	for id := range m.business_hours {
		ids = append(ids, id)
	}
	return
}

// ResetBusinessHours resets all changes to the "business_hours" edge.
func (m *ClinicSettingsMutation) ResetBusinessHours() {
	m.business_hours = nil
	m.clearedbusiness_hours = false
	m.removedbusiness_hours = nil
}

// Where appends a list predicates to the ClinicSettingsMutation builder.
func (m *ClinicSettingsMutation) Where(ps ...predicate.ClinicSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicSettings).
func (m *ClinicSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicSettingsMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.created_at != nil {
		fields = append(fields, clinicsettings.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinicsettings.FieldUpdatedAt)
	}
	if m.clinic_name != nil {
		fields = append(fields, clinicsettings.FieldClinicName)
	}
	if m.tagline != nil {
		fields = append(fields, clinicsettings.FieldTagline)
	}
	if m.description != nil {
		fields = append(fields, clinicsettings.FieldDescription)
	}
	if m.logo_key != nil {
		fields = append(fields, clinicsettings.FieldLogoKey)
	}
	if m.favicon_key != nil {
		fields = append(fields, clinicsettings.FieldFaviconKey)
	}
	if m.phone != nil {
		fields = append(fields, clinicsettings.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, clinicsettings.FieldEmail)
	}
	if m.website != nil {
		fields = append(fields, clinicsettings.FieldWebsite)
	}
	if m.address_line_1 != nil {
		fields = append(fields, clinicsettings.FieldAddressLine1)
	}
	if m.address_line_2 != nil {
		fields = append(fields, clinicsettings.FieldAddressLine2)
	}
	if m.city != nil {
		fields = append(fields, clinicsettings.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, clinicsettings.FieldState)
	}
	if m.postal_code != nil {
		fields = append(fields, clinicsettings.FieldPostalCode)
	}
	if m.country != nil {
		fields = append(fields, clinicsettings.FieldCountry)
	}
	if m.facebook_url != nil {
		fields = append(fields, clinicsettings.FieldFacebookURL)
	}
	if m.twitter_url != nil {
		fields = append(fields, clinicsettings.FieldTwitterURL)
	}
	if m.instagram_url != nil {
		fields = append(fields, clinicsettings.FieldInstagramURL)
	}
	if m.linkedin_url != nil {
		fields = append(fields, clinicsettings.FieldLinkedinURL)
	}
	if m.youtube_url != nil {
		fields = append(fields, clinicsettings.FieldYoutubeURL)
	}
	if m.timezone != nil {
		fields = append(fields, clinicsettings.FieldTimezone)
	}
	if m.appointment_buffer_min != nil {
		fields = append(fields, clinicsettings.FieldAppointmentBufferMin)
	}
	if m.max_advance_booking_days != nil {
		fields = append(fields, clinicsettings.FieldMaxAdvanceBookingDays)
	}
	if m.min_advance_booking_hours != nil {
		fields = append(fields, clinicsettings.FieldMinAdvanceBookingHours)
	}
	if m.cancellation_deadline_hours != nil {
		fields = append(fields, clinicsettings.FieldCancellationDeadlineHours)
	}
	if m.send_appointment_confirmations != nil {
		fields = append(fields, clinicsettings.FieldSendAppointmentConfirmations)
	}
	if m.send_appointment_reminders != nil {
		fields = append(fields, clinicsettings.FieldSendAppointmentReminders)
	}
	if m.reminder_hours_before != nil {
		fields = append(fields, clinicsettings.FieldReminderHoursBefore)
	}
	if m.send_follow_up_reminders != nil {
		fields = append(fields, clinicsettings.FieldSendFollowUpReminders)
	}
	if m.currency != nil {
		fields = append(fields, clinicsettings.FieldCurrency)
	}
	if m.tax_rate_percent != nil {
		fields = append(fields, clinicsettings.FieldTaxRatePercent)
	}
	if m.emergency_phone != nil {
		fields = append(fields, clinicsettings.FieldEmergencyPhone)
	}
	if m.emergency_email != nil {
		fields = append(fields, clinicsettings.FieldEmergencyEmail)
	}
	if m.maintenance_mode != nil {
		fields = append(fields, clinicsettings.FieldMaintenanceMode)
	}
	if m.maintenance_message != nil {
		fields = append(fields, clinicsettings.FieldMaintenanceMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicsettings.FieldCreatedAt:
		return m.CreatedAt()
	case clinicsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinicsettings.FieldClinicName:
		return m.ClinicName()
	case clinicsettings.FieldTagline:
		return m.Tagline()
	case clinicsettings.FieldDescription:
		return m.Description()
	case clinicsettings.FieldLogoKey:
		return m.LogoKey()
	case clinicsettings.FieldFaviconKey:
		return m.FaviconKey()
	case clinicsettings.FieldPhone:
		return m.Phone()
	case clinicsettings.FieldEmail:
		return m.Email()
	case clinicsettings.FieldWebsite:
		return m.Website()
	case clinicsettings.FieldAddressLine1:
		return m.AddressLine1()
	case clinicsettings.FieldAddressLine2:
		return m.AddressLine2()
	case clinicsettings.FieldCity:
		return m.City()
	case clinicsettings.FieldState:
		return m.State()
	case clinicsettings.FieldPostalCode:
		return m.PostalCode()
	case clinicsettings.FieldCountry:
		return m.Country()
	case clinicsettings.FieldFacebookURL:
		return m.FacebookURL()
	case clinicsettings.FieldTwitterURL:
		return m.TwitterURL()
	case clinicsettings.FieldInstagramURL:
		return m.InstagramURL()
	case clinicsettings.FieldLinkedinURL:
		return m.LinkedinURL()
	case clinicsettings.FieldYoutubeURL:
		return m.YoutubeURL()
	case clinicsettings.FieldTimezone:
		return m.Timezone()
	case clinicsettings.FieldAppointmentBufferMin:
		return m.AppointmentBufferMin()
	case clinicsettings.FieldMaxAdvanceBookingDays:
		return m.MaxAdvanceBookingDays()
	case clinicsettings.FieldMinAdvanceBookingHours:
		return m.MinAdvanceBookingHours()
	case clinicsettings.FieldCancellationDeadlineHours:
		return m.CancellationDeadlineHours()
	case clinicsettings.FieldSendAppointmentConfirmations:
		return m.SendAppointmentConfirmations()
	case clinicsettings.FieldSendAppointmentReminders:
		return m.SendAppointmentReminders()
	case clinicsettings.FieldReminderHoursBefore:
		return m.ReminderHoursBefore()
	case clinicsettings.FieldSendFollowUpReminders:
		return m.SendFollowUpReminders()
	case clinicsettings.FieldCurrency:
		return m.Currency()
	case clinicsettings.FieldTaxRatePercent:
		return m.TaxRatePercent()
	case clinicsettings.FieldEmergencyPhone:
		return m.EmergencyPhone()
	case clinicsettings.FieldEmergencyEmail:
		return m.EmergencyEmail()
	case clinicsettings.FieldMaintenanceMode:
		return m.MaintenanceMode()
	case clinicsettings.FieldMaintenanceMessage:
		return m.MaintenanceMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicsettings.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinicsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinicsettings.FieldClinicName:
		return m.OldClinicName(ctx)
	case clinicsettings.FieldTagline:
		return m.OldTagline(ctx)
	case clinicsettings.FieldDescription:
		return m.OldDescription(ctx)
	case clinicsettings.FieldLogoKey:
		return m.OldLogoKey(ctx)
	case clinicsettings.FieldFaviconKey:
		return m.OldFaviconKey(ctx)
	case clinicsettings.FieldPhone:
		return m.OldPhone(ctx)
	case clinicsettings.FieldEmail:
		return m.OldEmail(ctx)
	case clinicsettings.FieldWebsite:
		return m.OldWebsite(ctx)
	case clinicsettings.FieldAddressLine1:
		return m.OldAddressLine1(ctx)
	case clinicsettings.FieldAddressLine2:
		return m.OldAddressLine2(ctx)
	case clinicsettings.FieldCity:
		return m.OldCity(ctx)
	case clinicsettings.FieldState:
		return m.OldState(ctx)
	case clinicsettings.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case clinicsettings.FieldCountry:
		return m.OldCountry(ctx)
	case clinicsettings.FieldFacebookURL:
		return m.OldFacebookURL(ctx)
	case clinicsettings.FieldTwitterURL:
		return m.OldTwitterURL(ctx)
	case clinicsettings.FieldInstagramURL:
		return m.OldInstagramURL(ctx)
	case clinicsettings.FieldLinkedinURL:
		return m.OldLinkedinURL(ctx)
	case clinicsettings.FieldYoutubeURL:
		return m.OldYoutubeURL(ctx)
	case clinicsettings.FieldTimezone:
		return m.OldTimezone(ctx)
	case clinicsettings.FieldAppointmentBufferMin:
		return m.OldAppointmentBufferMin(ctx)
	case clinicsettings.FieldMaxAdvanceBookingDays:
		return m.OldMaxAdvanceBookingDays(ctx)
	case clinicsettings.FieldMinAdvanceBookingHours:
		return m.OldMinAdvanceBookingHours(ctx)
	case clinicsettings.FieldCancellationDeadlineHours:
		return m.OldCancellationDeadlineHours(ctx)
	case clinicsettings.FieldSendAppointmentConfirmations:
		return m.OldSendAppointmentConfirmations(ctx)
	case clinicsettings.FieldSendAppointmentReminders:
		return m.OldSendAppointmentReminders(ctx)
	case clinicsettings.FieldReminderHoursBefore:
		return m.OldReminderHoursBefore(ctx)
	case clinicsettings.FieldSendFollowUpReminders:
		return m.OldSendFollowUpReminders(ctx)
	case clinicsettings.FieldCurrency:
		return m.OldCurrency(ctx)
	case clinicsettings.FieldTaxRatePercent:
		return m.OldTaxRatePercent(ctx)
	case clinicsettings.FieldEmergencyPhone:
		return m.OldEmergencyPhone(ctx)
	case clinicsettings.FieldEmergencyEmail:
		return m.OldEmergencyEmail(ctx)
	case clinicsettings.FieldMaintenanceMode:
		return m.OldMaintenanceMode(ctx)
	case clinicsettings.FieldMaintenanceMessage:
		return m.OldMaintenanceMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicsettings.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinicsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinicsettings.FieldClinicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicName(v)
		return nil
	case clinicsettings.FieldTagline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagline(v)
		return nil
	case clinicsettings.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case clinicsettings.FieldLogoKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoKey(v)
		return nil
	case clinicsettings.FieldFaviconKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaviconKey(v)
		return nil
	case clinicsettings.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clinicsettings.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case clinicsettings.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case clinicsettings.FieldAddressLine1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddressLine1(v)
		return nil
	case clinicsettings.FieldAddressLine2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddressLine2(v)
		return nil
	case clinicsettings.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case clinicsettings.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case clinicsettings.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case clinicsettings.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case clinicsettings.FieldFacebookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebookURL(v)
		return nil
	case clinicsettings.FieldTwitterURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitterURL(v)
		return nil
	case clinicsettings.FieldInstagramURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstagramURL(v)
		return nil
	case clinicsettings.FieldLinkedinURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedinURL(v)
		return nil
	case clinicsettings.FieldYoutubeURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutubeURL(v)
		return nil
	case clinicsettings.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case clinicsettings.FieldAppointmentBufferMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentBufferMin(v)
		return nil
	case clinicsettings.FieldMaxAdvanceBookingDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAdvanceBookingDays(v)
		return nil
	case clinicsettings.FieldMinAdvanceBookingHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAdvanceBookingHours(v)
		return nil
	case clinicsettings.FieldCancellationDeadlineHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationDeadlineHours(v)
		return nil
	case clinicsettings.FieldSendAppointmentConfirmations:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendAppointmentConfirmations(v)
		return nil
	case clinicsettings.FieldSendAppointmentReminders:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendAppointmentReminders(v)
		return nil
	case clinicsettings.FieldReminderHoursBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderHoursBefore(v)
		return nil
	case clinicsettings.FieldSendFollowUpReminders:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendFollowUpReminders(v)
		return nil
	case clinicsettings.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case clinicsettings.FieldTaxRatePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxRatePercent(v)
		return nil
	case clinicsettings.FieldEmergencyPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyPhone(v)
		return nil
	case clinicsettings.FieldEmergencyEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyEmail(v)
		return nil
	case clinicsettings.FieldMaintenanceMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaintenanceMode(v)
		return nil
	case clinicsettings.FieldMaintenanceMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaintenanceMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicSettingsMutation) AddedFields() []string {
	var fields []string
	if m.addappointment_buffer_min != nil {
		fields = append(fields, clinicsettings.FieldAppointmentBufferMin)
	}
	if m.addmax_advance_booking_days != nil {
		fields = append(fields, clinicsettings.FieldMaxAdvanceBookingDays)
	}
	if m.addmin_advance_booking_hours != nil {
		fields = append(fields, clinicsettings.FieldMinAdvanceBookingHours)
	}
	if m.addcancellation_deadline_hours != nil {
		fields = append(fields, clinicsettings.FieldCancellationDeadlineHours)
	}
	if m.addreminder_hours_before != nil {
		fields = append(fields, clinicsettings.FieldReminderHoursBefore)
	}
	if m.addtax_rate_percent != nil {
		fields = append(fields, clinicsettings.FieldTaxRatePercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clinicsettings.FieldAppointmentBufferMin:
		return m.AddedAppointmentBufferMin()
	case clinicsettings.FieldMaxAdvanceBookingDays:
		return m.AddedMaxAdvanceBookingDays()
	case clinicsettings.FieldMinAdvanceBookingHours:
		return m.AddedMinAdvanceBookingHours()
	case clinicsettings.FieldCancellationDeadlineHours:
		return m.AddedCancellationDeadlineHours()
	case clinicsettings.FieldReminderHoursBefore:
		return m.AddedReminderHoursBefore()
	case clinicsettings.FieldTaxRatePercent:
		return m.AddedTaxRatePercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clinicsettings.FieldAppointmentBufferMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppointmentBufferMin(v)
		return nil
	case clinicsettings.FieldMaxAdvanceBookingDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAdvanceBookingDays(v)
		return nil
	case clinicsettings.FieldMinAdvanceBookingHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAdvanceBookingHours(v)
		return nil
	case clinicsettings.FieldCancellationDeadlineHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancellationDeadlineHours(v)
		return nil
	case clinicsettings.FieldReminderHoursBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReminderHoursBefore(v)
		return nil
	case clinicsettings.FieldTaxRatePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxRatePercent(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicsettings.FieldTagline) {
		fields = append(fields, clinicsettings.FieldTagline)
	}
	if m.FieldCleared(clinicsettings.FieldDescription) {
		fields = append(fields, clinicsettings.FieldDescription)
	}
	if m.FieldCleared(clinicsettings.FieldLogoKey) {
		fields = append(fields, clinicsettings.FieldLogoKey)
	}
	if m.FieldCleared(clinicsettings.FieldFaviconKey) {
		fields = append(fields, clinicsettings.FieldFaviconKey)
	}
	if m.FieldCleared(clinicsettings.FieldWebsite) {
		fields = append(fields, clinicsettings.FieldWebsite)
	}
	if m.FieldCleared(clinicsettings.FieldAddressLine2) {
		fields = append(fields, clinicsettings.FieldAddressLine2)
	}
	if m.FieldCleared(clinicsettings.FieldState) {
		fields = append(fields, clinicsettings.FieldState)
	}
	if m.FieldCleared(clinicsettings.FieldPostalCode) {
		fields = append(fields, clinicsettings.FieldPostalCode)
	}
	if m.FieldCleared(clinicsettings.FieldFacebookURL) {
		fields = append(fields, clinicsettings.FieldFacebookURL)
	}
	if m.FieldCleared(clinicsettings.FieldTwitterURL) {
		fields = append(fields, clinicsettings.FieldTwitterURL)
	}
	if m.FieldCleared(clinicsettings.FieldInstagramURL) {
		fields = append(fields, clinicsettings.FieldInstagramURL)
	}
	if m.FieldCleared(clinicsettings.FieldLinkedinURL) {
		fields = append(fields, clinicsettings.FieldLinkedinURL)
	}
	if m.FieldCleared(clinicsettings.FieldYoutubeURL) {
		fields = append(fields, clinicsettings.FieldYoutubeURL)
	}
	if m.FieldCleared(clinicsettings.FieldEmergencyPhone) {
		fields = append(fields, clinicsettings.FieldEmergencyPhone)
	}
	if m.FieldCleared(clinicsettings.FieldEmergencyEmail) {
		fields = append(fields, clinicsettings.FieldEmergencyEmail)
	}
	if m.FieldCleared(clinicsettings.FieldMaintenanceMessage) {
		fields = append(fields, clinicsettings.FieldMaintenanceMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicSettingsMutation) ClearField(name string) error {
	switch name {
	case clinicsettings.FieldTagline:
		m.ClearTagline()
		return nil
	case clinicsettings.FieldDescription:
		m.ClearDescription()
		return nil
	case clinicsettings.FieldLogoKey:
		m.ClearLogoKey()
		return nil
	case clinicsettings.FieldFaviconKey:
		m.ClearFaviconKey()
		return nil
	case clinicsettings.FieldWebsite:
		m.ClearWebsite()
		return nil
	case clinicsettings.FieldAddressLine2:
		m.ClearAddressLine2()
		return nil
	case clinicsettings.FieldState:
		m.ClearState()
		return nil
	case clinicsettings.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case clinicsettings.FieldFacebookURL:
		m.ClearFacebookURL()
		return nil
	case clinicsettings.FieldTwitterURL:
		m.ClearTwitterURL()
		return nil
	case clinicsettings.FieldInstagramURL:
		m.ClearInstagramURL()
		return nil
	case clinicsettings.FieldLinkedinURL:
		m.ClearLinkedinURL()
		return nil
	case clinicsettings.FieldYoutubeURL:
		m.ClearYoutubeURL()
		return nil
	case clinicsettings.FieldEmergencyPhone:
		m.ClearEmergencyPhone()
		return nil
	case clinicsettings.FieldEmergencyEmail:
		m.ClearEmergencyEmail()
		return nil
	case clinicsettings.FieldMaintenanceMessage:
		m.ClearMaintenanceMessage()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicSettingsMutation) ResetField(name string) error {
	switch name {
	case clinicsettings.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinicsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinicsettings.FieldClinicName:
		m.ResetClinicName()
		return nil
	case clinicsettings.FieldTagline:
		m.ResetTagline()
		return nil
	case clinicsettings.FieldDescription:
		m.ResetDescription()
		return nil
	case clinicsettings.FieldLogoKey:
		m.ResetLogoKey()
		return nil
	case clinicsettings.FieldFaviconKey:
		m.ResetFaviconKey()
		return nil
	case clinicsettings.FieldPhone:
		m.ResetPhone()
		return nil
	case clinicsettings.FieldEmail:
		m.ResetEmail()
		return nil
	case clinicsettings.FieldWebsite:
		m.ResetWebsite()
		return nil
	case clinicsettings.FieldAddressLine1:
		m.ResetAddressLine1()
		return nil
	case clinicsettings.FieldAddressLine2:
		m.ResetAddressLine2()
		return nil
	case clinicsettings.FieldCity:
		m.ResetCity()
		return nil
	case clinicsettings.FieldState:
		m.ResetState()
		return nil
	case clinicsettings.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case clinicsettings.FieldCountry:
		m.ResetCountry()
		return nil
	case clinicsettings.FieldFacebookURL:
		m.ResetFacebookURL()
		return nil
	case clinicsettings.FieldTwitterURL:
		m.ResetTwitterURL()
		return nil
	case clinicsettings.FieldInstagramURL:
		m.ResetInstagramURL()
		return nil
	case clinicsettings.FieldLinkedinURL:
		m.ResetLinkedinURL()
		return nil
	case clinicsettings.FieldYoutubeURL:
		m.ResetYoutubeURL()
		return nil
	case clinicsettings.FieldTimezone:
		m.ResetTimezone()
		return nil
	case clinicsettings.FieldAppointmentBufferMin:
		m.ResetAppointmentBufferMin()
		return nil
	case clinicsettings.FieldMaxAdvanceBookingDays:
		m.ResetMaxAdvanceBookingDays()
		return nil
	case clinicsettings.FieldMinAdvanceBookingHours:
		m.ResetMinAdvanceBookingHours()
		return nil
	case clinicsettings.FieldCancellationDeadlineHours:
		m.ResetCancellationDeadlineHours()
		return nil
	case clinicsettings.FieldSendAppointmentConfirmations:
		m.ResetSendAppointmentConfirmations()
		return nil
	case clinicsettings.FieldSendAppointmentReminders:
		m.ResetSendAppointmentReminders()
		return nil
	case clinicsettings.FieldReminderHoursBefore:
		m.ResetReminderHoursBefore()
		return nil
	case clinicsettings.FieldSendFollowUpReminders:
		m.ResetSendFollowUpReminders()
		return nil
	case clinicsettings.FieldCurrency:
		m.ResetCurrency()
		return nil
	case clinicsettings.FieldTaxRatePercent:
		m.ResetTaxRatePercent()
		return nil
	case clinicsettings.FieldEmergencyPhone:
		m.ResetEmergencyPhone()
		return nil
	case clinicsettings.FieldEmergencyEmail:
		m.ResetEmergencyEmail()
		return nil
	case clinicsettings.FieldMaintenanceMode:
		m.ResetMaintenanceMode()
		return nil
	case clinicsettings.FieldMaintenanceMessage:
		m.ResetMaintenanceMessage()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.business_hours != nil {
		edges = append(edges, clinicsettings.EdgeBusinessHours)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicSettingsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicsettings.EdgeBusinessHours:
		ids := make([]ent.Value, 0, len(m.business_hours))
		for id := range m.business_hours {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbusiness_hours != nil {
		edges = append(edges, clinicsettings.EdgeBusinessHours)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicSettingsMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clinicsettings.EdgeBusinessHours:
		ids := make([]ent.Value, 0, len(m.removedbusiness_hours))
		for id := range m.removedbusiness_hours {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbusiness_hours {
		edges = append(edges, clinicsettings.EdgeBusinessHours)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicSettingsMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicsettings.EdgeBusinessHours:
		return m.clearedbusiness_hours
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicSettingsMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicSettingsMutation) ResetEdge(name string) error {
	switch name {
	case clinicsettings.EdgeBusinessHours:
		m.ResetBusinessHours()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings edge %s", name)
}

// ContactMessageMutation represents an operation that mutates the ContactMessage nodes in the graph.
type ContactMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	email              *string
	phone              *string
	subject            *string
	message            *string
	status             *contactmessage.Status
	clearedFields      map[string]struct{}
	assigned_to        *uuid.UUID
	clearedassigned_to bool
	responses          map[uuid.UUID]struct{}
	removedresponses   map[uuid.UUID]struct{}
	clearedresponses   bool
	done               bool
	oldValue           func(context.Context) (*ContactMessage, error)
	predicates         []predicate.ContactMessage
}

var _ ent.Mutation = (*ContactMessageMutation)(nil)

// contactmessageOption allows management of the mutation configuration using functional options.
type contactmessageOption func(*ContactMessageMutation)

// newContactMessageMutation creates new mutation for the ContactMessage entity.
func newContactMessageMutation(c config, op Op, opts ...contactmessageOption) *ContactMessageMutation {
	m := &ContactMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeContactMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactMessageID sets the ID field of the mutation.
func withContactMessageID(id uuid.UUID) contactmessageOption {
	return func(m *ContactMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactMessage
		)
		m.oldValue = func(ctx context.Context) (*ContactMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactMessage sets the old ContactMessage of the mutation.
func withContactMessage(node *ContactMessage) contactmessageOption {
	return func(m *ContactMessageMutation) {
		m.oldValue = func(context.Context) (*ContactMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContactMessage entities.
func (m *ContactMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContactMessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ContactMessageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMessageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContactMessageMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ContactMessageMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMessageMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMessageMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *ContactMessageMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ContactMessageMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ContactMessageMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[contactmessage.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ContactMessageMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ContactMessageMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, contactmessage.FieldPhone)
}

// SetSubject sets the "subject" field.
func (m *ContactMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ContactMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *ContactMessageMutation) ResetSubject() {
	m.subject = nil
}

// SetMessage sets the "message" field.
func (m *ContactMessageMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ContactMessageMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ContactMessageMutation) ResetMessage() {
	m.message = nil
}

// SetStatus sets the "status" field.
func (m *ContactMessageMutation) SetStatus(c contactmessage.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContactMessageMutation) Status() (r contactmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldStatus(ctx context.Context) (v contactmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContactMessageMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedToID sets the "assigned_to_id" field.
func (m *ContactMessageMutation) SetAssignedToID(u uuid.UUID) {
	m.assigned_to = &u
}

// AssignedToID returns the value of the "assigned_to_id" field in the mutation.
func (m *ContactMessageMutation) AssignedToID() (r uuid.UUID, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedToID returns the old "assigned_to_id" field's value of the ContactMessage entity.
// If the ContactMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMessageMutation) OldAssignedToID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedToID: %w", err)
	}
	return oldValue.AssignedToID, nil
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (m *ContactMessageMutation) ClearAssignedToID() {
	m.assigned_to = nil
	m.clearedFields[contactmessage.FieldAssignedToID] = struct{}{}
}

// AssignedToIDCleared returns if the "assigned_to_id" field was cleared in this mutation.
func (m *ContactMessageMutation) AssignedToIDCleared() bool {
	_, ok := m.clearedFields[contactmessage.FieldAssignedToID]
	return ok
}

// ResetAssignedToID resets all changes to the "assigned_to_id" field.
func (m *ContactMessageMutation) ResetAssignedToID() {
	m.assigned_to = nil
	delete(m.clearedFields, contactmessage.FieldAssignedToID)
}

// ClearAssignedTo clears the "assigned_to" edge to the User entity.
func (m *ContactMessageMutation) ClearAssignedTo() {
	m.clearedassigned_to = true
	m.clearedFields[contactmessage.FieldAssignedToID] = struct{}{}
}

// AssignedToCleared reports if the "assigned_to" edge to the User entity was cleared.
func (m *ContactMessageMutation) AssignedToCleared() bool {
	return m.AssignedToIDCleared() || m.clearedassigned_to
}

// AssignedToIDs returns the "assigned_to" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedToID instead. It exists only for internal usage by the builders.
func (m *ContactMessageMutation) AssignedToIDs() (ids []uuid.UUID) {
	if id := m.assigned_to; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedTo resets all changes to the "assigned_to" edge.
func (m *ContactMessageMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.clearedassigned_to = false
}

// AddResponseIDs adds the "responses" edge to the ContactResponse entity by ids.
func (m *ContactMessageMutation) AddResponseIDs(ids ...uuid.UUID) {
	if m.responses == nil {
		m.responses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the ContactResponse entity.
func (m *ContactMessageMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the ContactResponse entity was cleared.
func (m *ContactMessageMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the ContactResponse entity by IDs.
func (m *ContactMessageMutation) RemoveResponseIDs(ids ...uuid.UUID) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the ContactResponse entity.
func (m *ContactMessageMutation) RemovedResponsesIDs() (ids []uuid.UUID) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *ContactMessageMutation) ResponsesIDs() (ids []uuid.UUID) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *ContactMessageMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the ContactMessageMutation builder.
func (m *ContactMessageMutation) Where(ps ...predicate.ContactMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactMessage).
func (m *ContactMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, contactmessage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contactmessage.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, contactmessage.FieldName)
	}
	if m.email != nil {
		fields = append(fields, contactmessage.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, contactmessage.FieldPhone)
	}
	if m.subject != nil {
		fields = append(fields, contactmessage.FieldSubject)
	}
	if m.message != nil {
		fields = append(fields, contactmessage.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, contactmessage.FieldStatus)
	}
	if m.assigned_to != nil {
		fields = append(fields, contactmessage.FieldAssignedToID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactmessage.FieldCreatedAt:
		return m.CreatedAt()
	case contactmessage.FieldUpdatedAt:
		return m.UpdatedAt()
	case contactmessage.FieldName:
		return m.Name()
	case contactmessage.FieldEmail:
		return m.Email()
	case contactmessage.FieldPhone:
		return m.Phone()
	case contactmessage.FieldSubject:
		return m.Subject()
	case contactmessage.FieldMessage:
		return m.Message()
	case contactmessage.FieldStatus:
		return m.Status()
	case contactmessage.FieldAssignedToID:
		return m.AssignedToID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contactmessage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case contactmessage.FieldName:
		return m.OldName(ctx)
	case contactmessage.FieldEmail:
		return m.OldEmail(ctx)
	case contactmessage.FieldPhone:
		return m.OldPhone(ctx)
	case contactmessage.FieldSubject:
		return m.OldSubject(ctx)
	case contactmessage.FieldMessage:
		return m.OldMessage(ctx)
	case contactmessage.FieldStatus:
		return m.OldStatus(ctx)
	case contactmessage.FieldAssignedToID:
		return m.OldAssignedToID(ctx)
	}
	return nil, fmt.Errorf("unknown ContactMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contactmessage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case contactmessage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contactmessage.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contactmessage.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case contactmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case contactmessage.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case contactmessage.FieldStatus:
		v, ok := value.(contactmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contactmessage.FieldAssignedToID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedToID(v)
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contactmessage.FieldPhone) {
		fields = append(fields, contactmessage.FieldPhone)
	}
	if m.FieldCleared(contactmessage.FieldAssignedToID) {
		fields = append(fields, contactmessage.FieldAssignedToID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMessageMutation) ClearField(name string) error {
	switch name {
	case contactmessage.FieldPhone:
		m.ClearPhone()
		return nil
	case contactmessage.FieldAssignedToID:
		m.ClearAssignedToID()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMessageMutation) ResetField(name string) error {
	switch name {
	case contactmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contactmessage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case contactmessage.FieldName:
		m.ResetName()
		return nil
	case contactmessage.FieldEmail:
		m.ResetEmail()
		return nil
	case contactmessage.FieldPhone:
		m.ResetPhone()
		return nil
	case contactmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case contactmessage.FieldMessage:
		m.ResetMessage()
		return nil
	case contactmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case contactmessage.FieldAssignedToID:
		m.ResetAssignedToID()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.assigned_to != nil {
		edges = append(edges, contactmessage.EdgeAssignedTo)
	}
	if m.responses != nil {
		edges = append(edges, contactmessage.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contactmessage.EdgeAssignedTo:
		if id := m.assigned_to; id != nil {
			return []ent.Value{*id}
		}
	case contactmessage.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresponses != nil {
		edges = append(edges, contactmessage.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contactmessage.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedassigned_to {
		edges = append(edges, contactmessage.EdgeAssignedTo)
	}
	if m.clearedresponses {
		edges = append(edges, contactmessage.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case contactmessage.EdgeAssignedTo:
		return m.clearedassigned_to
	case contactmessage.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMessageMutation) ClearEdge(name string) error {
	switch name {
	case contactmessage.EdgeAssignedTo:
		m.ClearAssignedTo()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMessageMutation) ResetEdge(name string) error {
	switch name {
	case contactmessage.EdgeAssignedTo:
		m.ResetAssignedTo()
		return nil
	case contactmessage.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown ContactMessage edge %s", name)
}

// ContactResponseMutation represents an operation that mutates the ContactResponse nodes in the graph.
type ContactResponseMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	response               *string
	responded_by_id        *uuid.UUID
	is_sent                *bool
	sent_at                *time.Time
	clearedFields          map[string]struct{}
	contact_message        *uuid.UUID
	clearedcontact_message bool
	done                   bool
	oldValue               func(context.Context) (*ContactResponse, error)
	predicates             []predicate.ContactResponse
}

var _ ent.Mutation = (*ContactResponseMutation)(nil)

// contactresponseOption allows management of the mutation configuration using functional options.
type contactresponseOption func(*ContactResponseMutation)

// newContactResponseMutation creates new mutation for the ContactResponse entity.
func newContactResponseMutation(c config, op Op, opts ...contactresponseOption) *ContactResponseMutation {
	m := &ContactResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeContactResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactResponseID sets the ID field of the mutation.
func withContactResponseID(id uuid.UUID) contactresponseOption {
	return func(m *ContactResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactResponse
		)
		m.oldValue = func(ctx context.Context) (*ContactResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactResponse sets the old ContactResponse of the mutation.
func withContactResponse(node *ContactResponse) contactresponseOption {
	return func(m *ContactResponseMutation) {
		m.oldValue = func(context.Context) (*ContactResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContactResponse entities.
func (m *ContactResponseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactResponseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactResponseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetContactMessageID sets the "contact_message_id" field.
func (m *ContactResponseMutation) SetContactMessageID(u uuid.UUID) {
	m.contact_message = &u
}

// ContactMessageID returns the value of the "contact_message_id" field in the mutation.
func (m *ContactResponseMutation) ContactMessageID() (r uuid.UUID, exists bool) {
	v := m.contact_message
	if v == nil {
		return
	}
	return *v, true
}

// OldContactMessageID returns the old "contact_message_id" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldContactMessageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactMessageID: %w", err)
	}
	return oldValue.ContactMessageID, nil
}

// ResetContactMessageID resets all changes to the "contact_message_id" field.
func (m *ContactResponseMutation) ResetContactMessageID() {
	m.contact_message = nil
}

// SetResponse sets the "response" field.
func (m *ContactResponseMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *ContactResponseMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *ContactResponseMutation) ResetResponse() {
	m.response = nil
}

// SetRespondedByID sets the "responded_by_id" field.
func (m *ContactResponseMutation) SetRespondedByID(u uuid.UUID) {
	m.responded_by_id = &u
}

// RespondedByID returns the value of the "responded_by_id" field in the mutation.
func (m *ContactResponseMutation) RespondedByID() (r uuid.UUID, exists bool) {
	v := m.responded_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedByID returns the old "responded_by_id" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldRespondedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedByID: %w", err)
	}
	return oldValue.RespondedByID, nil
}

// ClearRespondedByID clears the value of the "responded_by_id" field.
func (m *ContactResponseMutation) ClearRespondedByID() {
	m.responded_by_id = nil
	m.clearedFields[contactresponse.FieldRespondedByID] = struct{}{}
}

// RespondedByIDCleared returns if the "responded_by_id" field was cleared in this mutation.
func (m *ContactResponseMutation) RespondedByIDCleared() bool {
	_, ok := m.clearedFields[contactresponse.FieldRespondedByID]
	return ok
}

// ResetRespondedByID resets all changes to the "responded_by_id" field.
func (m *ContactResponseMutation) ResetRespondedByID() {
	m.responded_by_id = nil
	delete(m.clearedFields, contactresponse.FieldRespondedByID)
}

// SetIsSent sets the "is_sent" field.
func (m *ContactResponseMutation) SetIsSent(b bool) {
	m.is_sent = &b
}

// IsSent returns the value of the "is_sent" field in the mutation.
func (m *ContactResponseMutation) IsSent() (r bool, exists bool) {
	v := m.is_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSent returns the old "is_sent" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldIsSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSent: %w", err)
	}
	return oldValue.IsSent, nil
}

// ResetIsSent resets all changes to the "is_sent" field.
func (m *ContactResponseMutation) ResetIsSent() {
	m.is_sent = nil
}

// SetSentAt sets the "sent_at" field.
func (m *ContactResponseMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *ContactResponseMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the ContactResponse entity.
// If the ContactResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactResponseMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *ContactResponseMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[contactresponse.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *ContactResponseMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[contactresponse.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *ContactResponseMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, contactresponse.FieldSentAt)
}

// ClearContactMessage clears the "contact_message" edge to the ContactMessage entity.
func (m *ContactResponseMutation) ClearContactMessage() {
	m.clearedcontact_message = true
	m.clearedFields[contactresponse.FieldContactMessageID] = struct{}{}
}

// ContactMessageCleared reports if the "contact_message" edge to the ContactMessage entity was cleared.
func (m *ContactResponseMutation) ContactMessageCleared() bool {
	return m.clearedcontact_message
}

// ContactMessageIDs returns the "contact_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContactMessageID instead. It exists only for internal usage by the builders.
func (m *ContactResponseMutation) ContactMessageIDs() (ids []uuid.UUID) {
	if id := m.contact_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContactMessage resets all changes to the "contact_message" edge.
func (m *ContactResponseMutation) ResetContactMessage() {
	m.contact_message = nil
	m.clearedcontact_message = false
}

// Where appends a list predicates to the ContactResponseMutation builder.
func (m *ContactResponseMutation) Where(ps ...predicate.ContactResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactResponse).
func (m *ContactResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactResponseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, contactresponse.FieldCreatedAt)
	}
	if m.contact_message != nil {
		fields = append(fields, contactresponse.FieldContactMessageID)
	}
	if m.response != nil {
		fields = append(fields, contactresponse.FieldResponse)
	}
	if m.responded_by_id != nil {
		fields = append(fields, contactresponse.FieldRespondedByID)
	}
	if m.is_sent != nil {
		fields = append(fields, contactresponse.FieldIsSent)
	}
	if m.sent_at != nil {
		fields = append(fields, contactresponse.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactresponse.FieldCreatedAt:
		return m.CreatedAt()
	case contactresponse.FieldContactMessageID:
		return m.ContactMessageID()
	case contactresponse.FieldResponse:
		return m.Response()
	case contactresponse.FieldRespondedByID:
		return m.RespondedByID()
	case contactresponse.FieldIsSent:
		return m.IsSent()
	case contactresponse.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contactresponse.FieldContactMessageID:
		return m.OldContactMessageID(ctx)
	case contactresponse.FieldResponse:
		return m.OldResponse(ctx)
	case contactresponse.FieldRespondedByID:
		return m.OldRespondedByID(ctx)
	case contactresponse.FieldIsSent:
		return m.OldIsSent(ctx)
	case contactresponse.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContactResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contactresponse.FieldContactMessageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactMessageID(v)
		return nil
	case contactresponse.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case contactresponse.FieldRespondedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedByID(v)
		return nil
	case contactresponse.FieldIsSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSent(v)
		return nil
	case contactresponse.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContactResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactResponseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactResponseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contactresponse.FieldRespondedByID) {
		fields = append(fields, contactresponse.FieldRespondedByID)
	}
	if m.FieldCleared(contactresponse.FieldSentAt) {
		fields = append(fields, contactresponse.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactResponseMutation) ClearField(name string) error {
	switch name {
	case contactresponse.FieldRespondedByID:
		m.ClearRespondedByID()
		return nil
	case contactresponse.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown ContactResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactResponseMutation) ResetField(name string) error {
	switch name {
	case contactresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contactresponse.FieldContactMessageID:
		m.ResetContactMessageID()
		return nil
	case contactresponse.FieldResponse:
		m.ResetResponse()
		return nil
	case contactresponse.FieldRespondedByID:
		m.ResetRespondedByID()
		return nil
	case contactresponse.FieldIsSent:
		m.ResetIsSent()
		return nil
	case contactresponse.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown ContactResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contact_message != nil {
		edges = append(edges, contactresponse.EdgeContactMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contactresponse.EdgeContactMessage:
		if id := m.contact_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontact_message {
		edges = append(edges, contactresponse.EdgeContactMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case contactresponse.EdgeContactMessage:
		return m.clearedcontact_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactResponseMutation) ClearEdge(name string) error {
	switch name {
	case contactresponse.EdgeContactMessage:
		m.ClearContactMessage()
		return nil
	}
	return fmt.Errorf("unknown ContactResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactResponseMutation) ResetEdge(name string) error {
	switch name {
	case contactresponse.EdgeContactMessage:
		m.ResetContactMessage()
		return nil
	}
	return fmt.Errorf("unknown ContactResponse edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	title                  *string
	license_number         *string
	years_of_experience    *int
	addyears_of_experience *int
	biography              *string
	education              *string
	certifications         *string
	consultation_fee       *int64
	addconsultation_fee    *int64
	is_available           *bool
	profile_image_key      *string
	twitter_url            *string
	linkedin_url           *string
	facebook_url           *string
	hospital_affiliations  *string
	research_interests     *string
	publications           *string
	clearedFields          map[string]struct{}
	user                   *uuid.UUID
	cleareduser            bool
	specializations        map[uuid.UUID]struct{}
	removedspecializations map[uuid.UUID]struct{}
	clearedspecializations bool
	availability           map[uuid.UUID]struct{}
	removedavailability    map[uuid.UUID]struct{}
	clearedavailability    bool
	leaves                 map[uuid.UUID]struct{}
	removedleaves          map[uuid.UUID]struct{}
	clearedleaves          bool
	done                   bool
	oldValue               func(context.Context) (*Doctor, error)
	predicates             []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *DoctorMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DoctorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DoctorMutation) ResetUserID() {
	m.user = nil
}

// SetTitle sets the "title" field.
func (m *DoctorMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DoctorMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DoctorMutation) ResetTitle() {
	m.title = nil
}

// SetLicenseNumber sets the "license_number" field.
func (m *DoctorMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *DoctorMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldLicenseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *DoctorMutation) ResetLicenseNumber() {
	m.license_number = nil
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (m *DoctorMutation) SetYearsOfExperience(i int) {
	m.years_of_experience = &i
	m.addyears_of_experience = nil
}

// YearsOfExperience returns the value of the "years_of_experience" field in the mutation.
func (m *DoctorMutation) YearsOfExperience() (r int, exists bool) {
	v := m.years_of_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsOfExperience returns the old "years_of_experience" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldYearsOfExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsOfExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsOfExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsOfExperience: %w", err)
	}
	return oldValue.YearsOfExperience, nil
}

// AddYearsOfExperience adds i to the "years_of_experience" field.
func (m *DoctorMutation) AddYearsOfExperience(i int) {
	if m.addyears_of_experience != nil {
		*m.addyears_of_experience += i
	} else {
		m.addyears_of_experience = &i
	}
}

// AddedYearsOfExperience returns the value that was added to the "years_of_experience" field in this mutation.
func (m *DoctorMutation) AddedYearsOfExperience() (r int, exists bool) {
	v := m.addyears_of_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsOfExperience resets all changes to the "years_of_experience" field.
func (m *DoctorMutation) ResetYearsOfExperience() {
	m.years_of_experience = nil
	m.addyears_of_experience = nil
}

// SetBiography sets the "biography" field.
func (m *DoctorMutation) SetBiography(s string) {
	m.biography = &s
}

// Biography returns the value of the "biography" field in the mutation.
func (m *DoctorMutation) Biography() (r string, exists bool) {
	v := m.biography
	if v == nil {
		return
	}
	return *v, true
}

// OldBiography returns the old "biography" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldBiography(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiography is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiography requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiography: %w", err)
	}
	return oldValue.Biography, nil
}

// ResetBiography resets all changes to the "biography" field.
func (m *DoctorMutation) ResetBiography() {
	m.biography = nil
}

// SetEducation sets the "education" field.
func (m *DoctorMutation) SetEducation(s string) {
	m.education = &s
}

// Education returns the value of the "education" field in the mutation.
func (m *DoctorMutation) Education() (r string, exists bool) {
	v := m.education
	if v == nil {
		return
	}
	return *v, true
}

// OldEducation returns the old "education" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldEducation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducation: %w", err)
	}
	return oldValue.Education, nil
}

// ResetEducation resets all changes to the "education" field.
func (m *DoctorMutation) ResetEducation() {
	m.education = nil
}

// SetCertifications sets the "certifications" field.
func (m *DoctorMutation) SetCertifications(s string) {
	m.certifications = &s
}

// Certifications returns the value of the "certifications" field in the mutation.
func (m *DoctorMutation) Certifications() (r string, exists bool) {
	v := m.certifications
	if v == nil {
		return
	}
	return *v, true
}

// OldCertifications returns the old "certifications" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCertifications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertifications: %w", err)
	}
	return oldValue.Certifications, nil
}

// ClearCertifications clears the value of the "certifications" field.
func (m *DoctorMutation) ClearCertifications() {
	m.certifications = nil
	m.clearedFields[doctor.FieldCertifications] = struct{}{}
}

// CertificationsCleared returns if the "certifications" field was cleared in this mutation.
func (m *DoctorMutation) CertificationsCleared() bool {
	_, ok := m.clearedFields[doctor.FieldCertifications]
	return ok
}

// ResetCertifications resets all changes to the "certifications" field.
func (m *DoctorMutation) ResetCertifications() {
	m.certifications = nil
	delete(m.clearedFields, doctor.FieldCertifications)
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *DoctorMutation) SetConsultationFee(i int64) {
	m.consultation_fee = &i
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *DoctorMutation) ConsultationFee() (r int64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldConsultationFee(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds i to the "consultation_fee" field.
func (m *DoctorMutation) AddConsultationFee(i int64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += i
	} else {
		m.addconsultation_fee = &i
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *DoctorMutation) AddedConsultationFee() (r int64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *DoctorMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
}

// SetIsAvailable sets the "is_available" field.
func (m *DoctorMutation) SetIsAvailable(b bool) {
	m.is_available = &b
}

// IsAvailable returns the value of the "is_available" field in the mutation.
func (m *DoctorMutation) IsAvailable() (r bool, exists bool) {
	v := m.is_available
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAvailable returns the old "is_available" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldIsAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAvailable: %w", err)
	}
	return oldValue.IsAvailable, nil
}

// ResetIsAvailable resets all changes to the "is_available" field.
func (m *DoctorMutation) ResetIsAvailable() {
	m.is_available = nil
}

// SetProfileImageKey sets the "profile_image_key" field.
func (m *DoctorMutation) SetProfileImageKey(s string) {
	m.profile_image_key = &s
}

// ProfileImageKey returns the value of the "profile_image_key" field in the mutation.
func (m *DoctorMutation) ProfileImageKey() (r string, exists bool) {
	v := m.profile_image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileImageKey returns the old "profile_image_key" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldProfileImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileImageKey: %w", err)
	}
	return oldValue.ProfileImageKey, nil
}

// ClearProfileImageKey clears the value of the "profile_image_key" field.
func (m *DoctorMutation) ClearProfileImageKey() {
	m.profile_image_key = nil
	m.clearedFields[doctor.FieldProfileImageKey] = struct{}{}
}

// ProfileImageKeyCleared returns if the "profile_image_key" field was cleared in this mutation.
func (m *DoctorMutation) ProfileImageKeyCleared() bool {
	_, ok := m.clearedFields[doctor.FieldProfileImageKey]
	return ok
}

// ResetProfileImageKey resets all changes to the "profile_image_key" field.
func (m *DoctorMutation) ResetProfileImageKey() {
	m.profile_image_key = nil
	delete(m.clearedFields, doctor.FieldProfileImageKey)
}

// SetTwitterURL sets the "twitter_url" field.
func (m *DoctorMutation) SetTwitterURL(s string) {
	m.twitter_url = &s
}

// TwitterURL returns the value of the "twitter_url" field in the mutation.
func (m *DoctorMutation) TwitterURL() (r string, exists bool) {
	v := m.twitter_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitterURL returns the old "twitter_url" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTwitterURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitterURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitterURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitterURL: %w", err)
	}
	return oldValue.TwitterURL, nil
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (m *DoctorMutation) ClearTwitterURL() {
	m.twitter_url = nil
	m.clearedFields[doctor.FieldTwitterURL] = struct{}{}
}

// TwitterURLCleared returns if the "twitter_url" field was cleared in this mutation.
func (m *DoctorMutation) TwitterURLCleared() bool {
	_, ok := m.clearedFields[doctor.FieldTwitterURL]
	return ok
}

// ResetTwitterURL resets all changes to the "twitter_url" field.
func (m *DoctorMutation) ResetTwitterURL() {
	m.twitter_url = nil
	delete(m.clearedFields, doctor.FieldTwitterURL)
}

// SetLinkedinURL sets the "linkedin_url" field.
func (m *DoctorMutation) SetLinkedinURL(s string) {
	m.linkedin_url = &s
}

// LinkedinURL returns the value of the "linkedin_url" field in the mutation.
func (m *DoctorMutation) LinkedinURL() (r string, exists bool) {
	v := m.linkedin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedinURL returns the old "linkedin_url" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldLinkedinURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedinURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedinURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedinURL: %w", err)
	}
	return oldValue.LinkedinURL, nil
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (m *DoctorMutation) ClearLinkedinURL() {
	m.linkedin_url = nil
	m.clearedFields[doctor.FieldLinkedinURL] = struct{}{}
}

// LinkedinURLCleared returns if the "linkedin_url" field was cleared in this mutation.
func (m *DoctorMutation) LinkedinURLCleared() bool {
	_, ok := m.clearedFields[doctor.FieldLinkedinURL]
	return ok
}

// ResetLinkedinURL resets all changes to the "linkedin_url" field.
func (m *DoctorMutation) ResetLinkedinURL() {
	m.linkedin_url = nil
	delete(m.clearedFields, doctor.FieldLinkedinURL)
}

// SetFacebookURL sets the "facebook_url" field.
func (m *DoctorMutation) SetFacebookURL(s string) {
	m.facebook_url = &s
}

// FacebookURL returns the value of the "facebook_url" field in the mutation.
func (m *DoctorMutation) FacebookURL() (r string, exists bool) {
	v := m.facebook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebookURL returns the old "facebook_url" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldFacebookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebookURL: %w", err)
	}
	return oldValue.FacebookURL, nil
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (m *DoctorMutation) ClearFacebookURL() {
	m.facebook_url = nil
	m.clearedFields[doctor.FieldFacebookURL] = struct{}{}
}

// FacebookURLCleared returns if the "facebook_url" field was cleared in this mutation.
func (m *DoctorMutation) FacebookURLCleared() bool {
	_, ok := m.clearedFields[doctor.FieldFacebookURL]
	return ok
}

// ResetFacebookURL resets all changes to the "facebook_url" field.
func (m *DoctorMutation) ResetFacebookURL() {
	m.facebook_url = nil
	delete(m.clearedFields, doctor.FieldFacebookURL)
}

// SetHospitalAffiliations sets the "hospital_affiliations" field.
func (m *DoctorMutation) SetHospitalAffiliations(s string) {
	m.hospital_affiliations = &s
}

// HospitalAffiliations returns the value of the "hospital_affiliations" field in the mutation.
func (m *DoctorMutation) HospitalAffiliations() (r string, exists bool) {
	v := m.hospital_affiliations
	if v == nil {
		return
	}
	return *v, true
}

// OldHospitalAffiliations returns the old "hospital_affiliations" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldHospitalAffiliations(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospitalAffiliations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospitalAffiliations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospitalAffiliations: %w", err)
	}
	return oldValue.HospitalAffiliations, nil
}

// ClearHospitalAffiliations clears the value of the "hospital_affiliations" field.
func (m *DoctorMutation) ClearHospitalAffiliations() {
	m.hospital_affiliations = nil
	m.clearedFields[doctor.FieldHospitalAffiliations] = struct{}{}
}

// HospitalAffiliationsCleared returns if the "hospital_affiliations" field was cleared in this mutation.
func (m *DoctorMutation) HospitalAffiliationsCleared() bool {
	_, ok := m.clearedFields[doctor.FieldHospitalAffiliations]
	return ok
}

// ResetHospitalAffiliations resets all changes to the "hospital_affiliations" field.
func (m *DoctorMutation) ResetHospitalAffiliations() {
	m.hospital_affiliations = nil
	delete(m.clearedFields, doctor.FieldHospitalAffiliations)
}

// SetResearchInterests sets the "research_interests" field.
func (m *DoctorMutation) SetResearchInterests(s string) {
	m.research_interests = &s
}

// ResearchInterests returns the value of the "research_interests" field in the mutation.
func (m *DoctorMutation) ResearchInterests() (r string, exists bool) {
	v := m.research_interests
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchInterests returns the old "research_interests" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldResearchInterests(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchInterests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchInterests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchInterests: %w", err)
	}
	return oldValue.ResearchInterests, nil
}

// ClearResearchInterests clears the value of the "research_interests" field.
func (m *DoctorMutation) ClearResearchInterests() {
	m.research_interests = nil
	m.clearedFields[doctor.FieldResearchInterests] = struct{}{}
}

// ResearchInterestsCleared returns if the "research_interests" field was cleared in this mutation.
func (m *DoctorMutation) ResearchInterestsCleared() bool {
	_, ok := m.clearedFields[doctor.FieldResearchInterests]
	return ok
}

// ResetResearchInterests resets all changes to the "research_interests" field.
func (m *DoctorMutation) ResetResearchInterests() {
	m.research_interests = nil
	delete(m.clearedFields, doctor.FieldResearchInterests)
}

// SetPublications sets the "publications" field.
func (m *DoctorMutation) SetPublications(s string) {
	m.publications = &s
}

// Publications returns the value of the "publications" field in the mutation.
func (m *DoctorMutation) Publications() (r string, exists bool) {
	v := m.publications
	if v == nil {
		return
	}
	return *v, true
}

// OldPublications returns the old "publications" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldPublications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublications: %w", err)
	}
	return oldValue.Publications, nil
}

// ClearPublications clears the value of the "publications" field.
func (m *DoctorMutation) ClearPublications() {
	m.publications = nil
	m.clearedFields[doctor.FieldPublications] = struct{}{}
}

// PublicationsCleared returns if the "publications" field was cleared in this mutation.
func (m *DoctorMutation) PublicationsCleared() bool {
	_, ok := m.clearedFields[doctor.FieldPublications]
	return ok
}

// ResetPublications resets all changes to the "publications" field.
func (m *DoctorMutation) ResetPublications() {
	m.publications = nil
	delete(m.clearedFields, doctor.FieldPublications)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DoctorMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[doctor.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DoctorMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DoctorMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DoctorMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddSpecializationIDs adds the "specializations" edge to the Specialization entity by ids.
func (m *DoctorMutation) AddSpecializationIDs(ids ...uuid.UUID) {
	if m.specializations == nil {
		m.specializations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.specializations[ids[i]] = struct{}{}
	}
}

// ClearSpecializations clears the "specializations" edge to the Specialization entity.
func (m *DoctorMutation) ClearSpecializations() {
	m.clearedspecializations = true
}

// SpecializationsCleared reports if the "specializations" edge to the Specialization entity was cleared.
func (m *DoctorMutation) SpecializationsCleared() bool {
	return m.clearedspecializations
}

// RemoveSpecializationIDs removes the "specializations" edge to the Specialization entity by IDs.
func (m *DoctorMutation) RemoveSpecializationIDs(ids ...uuid.UUID) {
	if m.removedspecializations == nil {
		m.removedspecializations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.specializations, ids[i])
		m.removedspecializations[ids[i]] = struct{}{}
	}
}

// RemovedSpecializations returns the removed IDs of the "specializations" edge to the Specialization entity.
func (m *DoctorMutation) RemovedSpecializationsIDs() (ids []uuid.UUID) {
	for id := range m.removedspecializations {
		ids = append(ids, id)
	}
	return
}

// SpecializationsIDs returns the "specializations" edge IDs in the mutation.
func (m *DoctorMutation) SpecializationsIDs() (ids []uuid.UUID) {
	for id := range m.specializations {
		ids = append(ids, id)
	}
	return
}

// ResetSpecializations resets all changes to the "specializations" edge.
func (m *DoctorMutation) ResetSpecializations() {
	m.specializations = nil
	m.clearedspecializations = false
	m.removedspecializations = nil
}

// AddAvailabilityIDs adds the "availability" edge to the DoctorAvailability entity by ids.
func (m *DoctorMutation) AddAvailabilityIDs(ids ...uuid.UUID) {
	if m.availability == nil {
		m.availability = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.availability[ids[i]] = struct{}{}
	}
}

// ClearAvailability clears the "availability" edge to the DoctorAvailability entity.
func (m *DoctorMutation) ClearAvailability() {
	m.clearedavailability = true
}

// AvailabilityCleared reports if the "availability" edge to the DoctorAvailability entity was cleared.
func (m *DoctorMutation) AvailabilityCleared() bool {
	return m.clearedavailability
}

// RemoveAvailabilityIDs removes the "availability" edge to the DoctorAvailability entity by IDs.
func (m *DoctorMutation) RemoveAvailabilityIDs(ids ...uuid.UUID) {
	if m.removedavailability == nil {
		m.removedavailability = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.availability, ids[i])
		m.removedavailability[ids[i]] = struct{}{}
	}
}

// RemovedAvailability returns the removed IDs of the "availability" edge to the DoctorAvailability entity.
func (m *DoctorMutation) RemovedAvailabilityIDs() (ids []uuid.UUID) {
	for id := range m.removedavailability {
		ids = append(ids, id)
	}
	return
}

// AvailabilityIDs returns the "availability" edge IDs in the mutation.
func (m *DoctorMutation) AvailabilityIDs() (ids []uuid.UUID) {
	for id := range m.availability {
		ids = append(ids, id)
	}
	return
}

// ResetAvailability resets all changes to the "availability" edge.
func (m *DoctorMutation) ResetAvailability() {
	m.availability = nil
	m.clearedavailability = false
	m.removedavailability = nil
}

// AddLeafeIDs adds the "leaves" edge to the DoctorLeave entity by ids.
func (m *DoctorMutation) AddLeafeIDs(ids ...uuid.UUID) {
	if m.leaves == nil {
		m.leaves = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.leaves[ids[i]] = struct{}{}
	}
}

// ClearLeaves clears the "leaves" edge to the DoctorLeave entity.
func (m *DoctorMutation) ClearLeaves() {
	m.clearedleaves = true
}

// LeavesCleared reports if the "leaves" edge to the DoctorLeave entity was cleared.
func (m *DoctorMutation) LeavesCleared() bool {
	return m.clearedleaves
}

// RemoveLeafeIDs removes the "leaves" edge to the DoctorLeave entity by IDs.
func (m *DoctorMutation) RemoveLeafeIDs(ids ...uuid.UUID) {
	if m.removedleaves == nil {
		m.removedleaves = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.leaves, ids[i])
		m.removedleaves[ids[i]] = struct{}{}
	}
}

// RemovedLeaves returns the removed IDs of the "leaves" edge to the DoctorLeave entity.
func (m *DoctorMutation) RemovedLeavesIDs() (ids []uuid.UUID) {
	for id := range m.removedleaves {
		ids = append(ids, id)
	}
	return
}

// LeavesIDs returns the "leaves" edge IDs in the mutation.
func (m *DoctorMutation) LeavesIDs() (ids []uuid.UUID) {
	for id := range m.leaves {
		ids = append(ids, id)
	}
	return
}

// ResetLeaves resets all changes to the "leaves" edge.
func (m *DoctorMutation) ResetLeaves() {
	m.leaves = nil
	m.clearedleaves = false
	m.removedleaves = nil
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, doctor.FieldTitle)
	}
	if m.license_number != nil {
		fields = append(fields, doctor.FieldLicenseNumber)
	}
	if m.years_of_experience != nil {
		fields = append(fields, doctor.FieldYearsOfExperience)
	}
	if m.biography != nil {
		fields = append(fields, doctor.FieldBiography)
	}
	if m.education != nil {
		fields = append(fields, doctor.FieldEducation)
	}
	if m.certifications != nil {
		fields = append(fields, doctor.FieldCertifications)
	}
	if m.consultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	if m.is_available != nil {
		fields = append(fields, doctor.FieldIsAvailable)
	}
	if m.profile_image_key != nil {
		fields = append(fields, doctor.FieldProfileImageKey)
	}
	if m.twitter_url != nil {
		fields = append(fields, doctor.FieldTwitterURL)
	}
	if m.linkedin_url != nil {
		fields = append(fields, doctor.FieldLinkedinURL)
	}
	if m.facebook_url != nil {
		fields = append(fields, doctor.FieldFacebookURL)
	}
	if m.hospital_affiliations != nil {
		fields = append(fields, doctor.FieldHospitalAffiliations)
	}
	if m.research_interests != nil {
		fields = append(fields, doctor.FieldResearchInterests)
	}
	if m.publications != nil {
		fields = append(fields, doctor.FieldPublications)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldUserID:
		return m.UserID()
	case doctor.FieldTitle:
		return m.Title()
	case doctor.FieldLicenseNumber:
		return m.LicenseNumber()
	case doctor.FieldYearsOfExperience:
		return m.YearsOfExperience()
	case doctor.FieldBiography:
		return m.Biography()
	case doctor.FieldEducation:
		return m.Education()
	case doctor.FieldCertifications:
		return m.Certifications()
	case doctor.FieldConsultationFee:
		return m.ConsultationFee()
	case doctor.FieldIsAvailable:
		return m.IsAvailable()
	case doctor.FieldProfileImageKey:
		return m.ProfileImageKey()
	case doctor.FieldTwitterURL:
		return m.TwitterURL()
	case doctor.FieldLinkedinURL:
		return m.LinkedinURL()
	case doctor.FieldFacebookURL:
		return m.FacebookURL()
	case doctor.FieldHospitalAffiliations:
		return m.HospitalAffiliations()
	case doctor.FieldResearchInterests:
		return m.ResearchInterests()
	case doctor.FieldPublications:
		return m.Publications()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldUserID:
		return m.OldUserID(ctx)
	case doctor.FieldTitle:
		return m.OldTitle(ctx)
	case doctor.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case doctor.FieldYearsOfExperience:
		return m.OldYearsOfExperience(ctx)
	case doctor.FieldBiography:
		return m.OldBiography(ctx)
	case doctor.FieldEducation:
		return m.OldEducation(ctx)
	case doctor.FieldCertifications:
		return m.OldCertifications(ctx)
	case doctor.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case doctor.FieldIsAvailable:
		return m.OldIsAvailable(ctx)
	case doctor.FieldProfileImageKey:
		return m.OldProfileImageKey(ctx)
	case doctor.FieldTwitterURL:
		return m.OldTwitterURL(ctx)
	case doctor.FieldLinkedinURL:
		return m.OldLinkedinURL(ctx)
	case doctor.FieldFacebookURL:
		return m.OldFacebookURL(ctx)
	case doctor.FieldHospitalAffiliations:
		return m.OldHospitalAffiliations(ctx)
	case doctor.FieldResearchInterests:
		return m.OldResearchInterests(ctx)
	case doctor.FieldPublications:
		return m.OldPublications(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case doctor.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case doctor.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case doctor.FieldYearsOfExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsOfExperience(v)
		return nil
	case doctor.FieldBiography:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiography(v)
		return nil
	case doctor.FieldEducation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducation(v)
		return nil
	case doctor.FieldCertifications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertifications(v)
		return nil
	case doctor.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case doctor.FieldIsAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAvailable(v)
		return nil
	case doctor.FieldProfileImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileImageKey(v)
		return nil
	case doctor.FieldTwitterURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitterURL(v)
		return nil
	case doctor.FieldLinkedinURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedinURL(v)
		return nil
	case doctor.FieldFacebookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebookURL(v)
		return nil
	case doctor.FieldHospitalAffiliations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospitalAffiliations(v)
		return nil
	case doctor.FieldResearchInterests:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchInterests(v)
		return nil
	case doctor.FieldPublications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublications(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	var fields []string
	if m.addyears_of_experience != nil {
		fields = append(fields, doctor.FieldYearsOfExperience)
	}
	if m.addconsultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldYearsOfExperience:
		return m.AddedYearsOfExperience()
	case doctor.FieldConsultationFee:
		return m.AddedConsultationFee()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldYearsOfExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsOfExperience(v)
		return nil
	case doctor.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldCertifications) {
		fields = append(fields, doctor.FieldCertifications)
	}
	if m.FieldCleared(doctor.FieldProfileImageKey) {
		fields = append(fields, doctor.FieldProfileImageKey)
	}
	if m.FieldCleared(doctor.FieldTwitterURL) {
		fields = append(fields, doctor.FieldTwitterURL)
	}
	if m.FieldCleared(doctor.FieldLinkedinURL) {
		fields = append(fields, doctor.FieldLinkedinURL)
	}
	if m.FieldCleared(doctor.FieldFacebookURL) {
		fields = append(fields, doctor.FieldFacebookURL)
	}
	if m.FieldCleared(doctor.FieldHospitalAffiliations) {
		fields = append(fields, doctor.FieldHospitalAffiliations)
	}
	if m.FieldCleared(doctor.FieldResearchInterests) {
		fields = append(fields, doctor.FieldResearchInterests)
	}
	if m.FieldCleared(doctor.FieldPublications) {
		fields = append(fields, doctor.FieldPublications)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldCertifications:
		m.ClearCertifications()
		return nil
	case doctor.FieldProfileImageKey:
		m.ClearProfileImageKey()
		return nil
	case doctor.FieldTwitterURL:
		m.ClearTwitterURL()
		return nil
	case doctor.FieldLinkedinURL:
		m.ClearLinkedinURL()
		return nil
	case doctor.FieldFacebookURL:
		m.ClearFacebookURL()
		return nil
	case doctor.FieldHospitalAffiliations:
		m.ClearHospitalAffiliations()
		return nil
	case doctor.FieldResearchInterests:
		m.ClearResearchInterests()
		return nil
	case doctor.FieldPublications:
		m.ClearPublications()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldUserID:
		m.ResetUserID()
		return nil
	case doctor.FieldTitle:
		m.ResetTitle()
		return nil
	case doctor.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case doctor.FieldYearsOfExperience:
		m.ResetYearsOfExperience()
		return nil
	case doctor.FieldBiography:
		m.ResetBiography()
		return nil
	case doctor.FieldEducation:
		m.ResetEducation()
		return nil
	case doctor.FieldCertifications:
		m.ResetCertifications()
		return nil
	case doctor.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case doctor.FieldIsAvailable:
		m.ResetIsAvailable()
		return nil
	case doctor.FieldProfileImageKey:
		m.ResetProfileImageKey()
		return nil
	case doctor.FieldTwitterURL:
		m.ResetTwitterURL()
		return nil
	case doctor.FieldLinkedinURL:
		m.ResetLinkedinURL()
		return nil
	case doctor.FieldFacebookURL:
		m.ResetFacebookURL()
		return nil
	case doctor.FieldHospitalAffiliations:
		m.ResetHospitalAffiliations()
		return nil
	case doctor.FieldResearchInterests:
		m.ResetResearchInterests()
		return nil
	case doctor.FieldPublications:
		m.ResetPublications()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.specializations != nil {
		edges = append(edges, doctor.EdgeSpecializations)
	}
	if m.availability != nil {
		edges = append(edges, doctor.EdgeAvailability)
	}
	if m.leaves != nil {
		edges = append(edges, doctor.EdgeLeaves)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case doctor.EdgeSpecializations:
		ids := make([]ent.Value, 0, len(m.specializations))
		for id := range m.specializations {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeAvailability:
		ids := make([]ent.Value, 0, len(m.availability))
		for id := range m.availability {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeLeaves:
		ids := make([]ent.Value, 0, len(m.leaves))
		for id := range m.leaves {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedspecializations != nil {
		edges = append(edges, doctor.EdgeSpecializations)
	}
	if m.removedavailability != nil {
		edges = append(edges, doctor.EdgeAvailability)
	}
	if m.removedleaves != nil {
		edges = append(edges, doctor.EdgeLeaves)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeSpecializations:
		ids := make([]ent.Value, 0, len(m.removedspecializations))
		for id := range m.removedspecializations {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeAvailability:
		ids := make([]ent.Value, 0, len(m.removedavailability))
		for id := range m.removedavailability {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeLeaves:
		ids := make([]ent.Value, 0, len(m.removedleaves))
		for id := range m.removedleaves {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.clearedspecializations {
		edges = append(edges, doctor.EdgeSpecializations)
	}
	if m.clearedavailability {
		edges = append(edges, doctor.EdgeAvailability)
	}
	if m.clearedleaves {
		edges = append(edges, doctor.EdgeLeaves)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	switch name {
	case doctor.EdgeUser:
		return m.cleareduser
	case doctor.EdgeSpecializations:
		return m.clearedspecializations
	case doctor.EdgeAvailability:
		return m.clearedavailability
	case doctor.EdgeLeaves:
		return m.clearedleaves
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ResetUser()
		return nil
	case doctor.EdgeSpecializations:
		m.ResetSpecializations()
		return nil
	case doctor.EdgeAvailability:
		m.ResetAvailability()
		return nil
	case doctor.EdgeLeaves:
		m.ResetLeaves()
		return nil
	}
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// DoctorAvailabilityMutation represents an operation that mutates the DoctorAvailability nodes in the graph.
type DoctorAvailabilityMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	day_of_week     *int8
	addday_of_week  *int8
	start_time      *string
	end_time        *string
	is_available    *bool
	max_patients    *int
	addmax_patients *int
	clearedFields   map[string]struct{}
	doctor          *uuid.UUID
	cleareddoctor   bool
	done            bool
	oldValue        func(context.Context) (*DoctorAvailability, error)
	predicates      []predicate.DoctorAvailability
}

var _ ent.Mutation = (*DoctorAvailabilityMutation)(nil)

// doctoravailabilityOption allows management of the mutation configuration using functional options.
type doctoravailabilityOption func(*DoctorAvailabilityMutation)

// newDoctorAvailabilityMutation creates new mutation for the DoctorAvailability entity.
func newDoctorAvailabilityMutation(c config, op Op, opts ...doctoravailabilityOption) *DoctorAvailabilityMutation {
	m := &DoctorAvailabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctorAvailability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorAvailabilityID sets the ID field of the mutation.
func withDoctorAvailabilityID(id uuid.UUID) doctoravailabilityOption {
	return func(m *DoctorAvailabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *DoctorAvailability
		)
		m.oldValue = func(ctx context.Context) (*DoctorAvailability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DoctorAvailability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctorAvailability sets the old DoctorAvailability of the mutation.
func withDoctorAvailability(node *DoctorAvailability) doctoravailabilityOption {
	return func(m *DoctorAvailabilityMutation) {
		m.oldValue = func(context.Context) (*DoctorAvailability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorAvailabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorAvailabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DoctorAvailability entities.
func (m *DoctorAvailabilityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorAvailabilityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorAvailabilityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DoctorAvailability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorAvailabilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorAvailabilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorAvailabilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *DoctorAvailabilityMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *DoctorAvailabilityMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *DoctorAvailabilityMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetDayOfWeek sets the "day_of_week" field.
func (m *DoctorAvailabilityMutation) SetDayOfWeek(i int8) {
	m.day_of_week = &i
	m.addday_of_week = nil
}

// DayOfWeek returns the value of the "day_of_week" field in the mutation.
func (m *DoctorAvailabilityMutation) DayOfWeek() (r int8, exists bool) {
	v := m.day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfWeek returns the old "day_of_week" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldDayOfWeek(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfWeek: %w", err)
	}
	return oldValue.DayOfWeek, nil
}

// AddDayOfWeek adds i to the "day_of_week" field.
func (m *DoctorAvailabilityMutation) AddDayOfWeek(i int8) {
	if m.addday_of_week != nil {
		*m.addday_of_week += i
	} else {
		m.addday_of_week = &i
	}
}

// AddedDayOfWeek returns the value that was added to the "day_of_week" field in this mutation.
func (m *DoctorAvailabilityMutation) AddedDayOfWeek() (r int8, exists bool) {
	v := m.addday_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayOfWeek resets all changes to the "day_of_week" field.
func (m *DoctorAvailabilityMutation) ResetDayOfWeek() {
	m.day_of_week = nil
	m.addday_of_week = nil
}

// SetStartTime sets the "start_time" field.
func (m *DoctorAvailabilityMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *DoctorAvailabilityMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *DoctorAvailabilityMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *DoctorAvailabilityMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *DoctorAvailabilityMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *DoctorAvailabilityMutation) ResetEndTime() {
	m.end_time = nil
}

// SetIsAvailable sets the "is_available" field.
func (m *DoctorAvailabilityMutation) SetIsAvailable(b bool) {
	m.is_available = &b
}

// IsAvailable returns the value of the "is_available" field in the mutation.
func (m *DoctorAvailabilityMutation) IsAvailable() (r bool, exists bool) {
	v := m.is_available
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAvailable returns the old "is_available" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldIsAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAvailable: %w", err)
	}
	return oldValue.IsAvailable, nil
}

// ResetIsAvailable resets all changes to the "is_available" field.
func (m *DoctorAvailabilityMutation) ResetIsAvailable() {
	m.is_available = nil
}

// SetMaxPatients sets the "max_patients" field.
func (m *DoctorAvailabilityMutation) SetMaxPatients(i int) {
	m.max_patients = &i
	m.addmax_patients = nil
}

// MaxPatients returns the value of the "max_patients" field in the mutation.
func (m *DoctorAvailabilityMutation) MaxPatients() (r int, exists bool) {
	v := m.max_patients
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxPatients returns the old "max_patients" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldMaxPatients(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxPatients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxPatients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxPatients: %w", err)
	}
	return oldValue.MaxPatients, nil
}

// AddMaxPatients adds i to the "max_patients" field.
func (m *DoctorAvailabilityMutation) AddMaxPatients(i int) {
	if m.addmax_patients != nil {
		*m.addmax_patients += i
	} else {
		m.addmax_patients = &i
	}
}

// AddedMaxPatients returns the value that was added to the "max_patients" field in this mutation.
func (m *DoctorAvailabilityMutation) AddedMaxPatients() (r int, exists bool) {
	v := m.addmax_patients
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxPatients resets all changes to the "max_patients" field.
func (m *DoctorAvailabilityMutation) ResetMaxPatients() {
	m.max_patients = nil
	m.addmax_patients = nil
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *DoctorAvailabilityMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[doctoravailability.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *DoctorAvailabilityMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *DoctorAvailabilityMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *DoctorAvailabilityMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// Where appends a list predicates to the DoctorAvailabilityMutation builder.
func (m *DoctorAvailabilityMutation) Where(ps ...predicate.DoctorAvailability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorAvailabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorAvailabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DoctorAvailability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorAvailabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorAvailabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DoctorAvailability).
func (m *DoctorAvailabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorAvailabilityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, doctoravailability.FieldCreatedAt)
	}
	if m.doctor != nil {
		fields = append(fields, doctoravailability.FieldDoctorID)
	}
	if m.day_of_week != nil {
		fields = append(fields, doctoravailability.FieldDayOfWeek)
	}
	if m.start_time != nil {
		fields = append(fields, doctoravailability.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, doctoravailability.FieldEndTime)
	}
	if m.is_available != nil {
		fields = append(fields, doctoravailability.FieldIsAvailable)
	}
	if m.max_patients != nil {
		fields = append(fields, doctoravailability.FieldMaxPatients)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorAvailabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctoravailability.FieldCreatedAt:
		return m.CreatedAt()
	case doctoravailability.FieldDoctorID:
		return m.DoctorID()
	case doctoravailability.FieldDayOfWeek:
		return m.DayOfWeek()
	case doctoravailability.FieldStartTime:
		return m.StartTime()
	case doctoravailability.FieldEndTime:
		return m.EndTime()
	case doctoravailability.FieldIsAvailable:
		return m.IsAvailable()
	case doctoravailability.FieldMaxPatients:
		return m.MaxPatients()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorAvailabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctoravailability.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctoravailability.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case doctoravailability.FieldDayOfWeek:
		return m.OldDayOfWeek(ctx)
	case doctoravailability.FieldStartTime:
		return m.OldStartTime(ctx)
	case doctoravailability.FieldEndTime:
		return m.OldEndTime(ctx)
	case doctoravailability.FieldIsAvailable:
		return m.OldIsAvailable(ctx)
	case doctoravailability.FieldMaxPatients:
		return m.OldMaxPatients(ctx)
	}
	return nil, fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorAvailabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctoravailability.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctoravailability.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case doctoravailability.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfWeek(v)
		return nil
	case doctoravailability.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case doctoravailability.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case doctoravailability.FieldIsAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAvailable(v)
		return nil
	case doctoravailability.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxPatients(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorAvailabilityMutation) AddedFields() []string {
	var fields []string
	if m.addday_of_week != nil {
		fields = append(fields, doctoravailability.FieldDayOfWeek)
	}
	if m.addmax_patients != nil {
		fields = append(fields, doctoravailability.FieldMaxPatients)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorAvailabilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctoravailability.FieldDayOfWeek:
		return m.AddedDayOfWeek()
	case doctoravailability.FieldMaxPatients:
		return m.AddedMaxPatients()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorAvailabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctoravailability.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfWeek(v)
		return nil
	case doctoravailability.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxPatients(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorAvailabilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorAvailabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorAvailabilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DoctorAvailability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorAvailabilityMutation) ResetField(name string) error {
	switch name {
	case doctoravailability.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctoravailability.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case doctoravailability.FieldDayOfWeek:
		m.ResetDayOfWeek()
		return nil
	case doctoravailability.FieldStartTime:
		m.ResetStartTime()
		return nil
	case doctoravailability.FieldEndTime:
		m.ResetEndTime()
		return nil
	case doctoravailability.FieldIsAvailable:
		m.ResetIsAvailable()
		return nil
	case doctoravailability.FieldMaxPatients:
		m.ResetMaxPatients()
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorAvailabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.doctor != nil {
		edges = append(edges, doctoravailability.EdgeDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorAvailabilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctoravailability.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorAvailabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorAvailabilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorAvailabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddoctor {
		edges = append(edges, doctoravailability.EdgeDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorAvailabilityMutation) EdgeCleared(name string) bool {
	switch name {
	case doctoravailability.EdgeDoctor:
		return m.cleareddoctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorAvailabilityMutation) ClearEdge(name string) error {
	switch name {
	case doctoravailability.EdgeDoctor:
		m.ClearDoctor()
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorAvailabilityMutation) ResetEdge(name string) error {
	switch name {
	case doctoravailability.EdgeDoctor:
		m.ResetDoctor()
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability edge %s", name)
}

// DoctorLeaveMutation represents an operation that mutates the DoctorLeave nodes in the graph.
type DoctorLeaveMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	leave_type    *doctorleave.LeaveType
	start_date    *time.Time
	end_date      *time.Time
	reason        *string
	is_approved   *bool
	clearedFields map[string]struct{}
	doctor        *uuid.UUID
	cleareddoctor bool
	done          bool
	oldValue      func(context.Context) (*DoctorLeave, error)
	predicates    []predicate.DoctorLeave
}

var _ ent.Mutation = (*DoctorLeaveMutation)(nil)

// doctorleaveOption allows management of the mutation configuration using functional options.
type doctorleaveOption func(*DoctorLeaveMutation)

// newDoctorLeaveMutation creates new mutation for the DoctorLeave entity.
func newDoctorLeaveMutation(c config, op Op, opts ...doctorleaveOption) *DoctorLeaveMutation {
	m := &DoctorLeaveMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctorLeave,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorLeaveID sets the ID field of the mutation.
func withDoctorLeaveID(id uuid.UUID) doctorleaveOption {
	return func(m *DoctorLeaveMutation) {
		var (
			err   error
			once  sync.Once
			value *DoctorLeave
		)
		m.oldValue = func(ctx context.Context) (*DoctorLeave, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DoctorLeave.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctorLeave sets the old DoctorLeave of the mutation.
func withDoctorLeave(node *DoctorLeave) doctorleaveOption {
	return func(m *DoctorLeaveMutation) {
		m.oldValue = func(context.Context) (*DoctorLeave, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorLeaveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorLeaveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DoctorLeave entities.
func (m *DoctorLeaveMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorLeaveMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorLeaveMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DoctorLeave.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorLeaveMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorLeaveMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorLeaveMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *DoctorLeaveMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *DoctorLeaveMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *DoctorLeaveMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetLeaveType sets the "leave_type" field.
func (m *DoctorLeaveMutation) SetLeaveType(dt doctorleave.LeaveType) {
	m.leave_type = &dt
}

// LeaveType returns the value of the "leave_type" field in the mutation.
func (m *DoctorLeaveMutation) LeaveType() (r doctorleave.LeaveType, exists bool) {
	v := m.leave_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaveType returns the old "leave_type" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldLeaveType(ctx context.Context) (v doctorleave.LeaveType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaveType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaveType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaveType: %w", err)
	}
	return oldValue.LeaveType, nil
}

// ResetLeaveType resets all changes to the "leave_type" field.
func (m *DoctorLeaveMutation) ResetLeaveType() {
	m.leave_type = nil
}

// SetStartDate sets the "start_date" field.
func (m *DoctorLeaveMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *DoctorLeaveMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *DoctorLeaveMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *DoctorLeaveMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *DoctorLeaveMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *DoctorLeaveMutation) ResetEndDate() {
	m.end_date = nil
}

// SetReason sets the "reason" field.
func (m *DoctorLeaveMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DoctorLeaveMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *DoctorLeaveMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[doctorleave.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *DoctorLeaveMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[doctorleave.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *DoctorLeaveMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, doctorleave.FieldReason)
}

// SetIsApproved sets the "is_approved" field.
func (m *DoctorLeaveMutation) SetIsApproved(b bool) {
	m.is_approved = &b
}

// IsApproved returns the value of the "is_approved" field in the mutation.
func (m *DoctorLeaveMutation) IsApproved() (r bool, exists bool) {
	v := m.is_approved
	if v == nil {
		return
	}
	return *v, true
}

// OldIsApproved returns the old "is_approved" field's value of the DoctorLeave entity.
// If the DoctorLeave object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorLeaveMutation) OldIsApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsApproved: %w", err)
	}
	return oldValue.IsApproved, nil
}

// ResetIsApproved resets all changes to the "is_approved" field.
func (m *DoctorLeaveMutation) ResetIsApproved() {
	m.is_approved = nil
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *DoctorLeaveMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[doctorleave.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *DoctorLeaveMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *DoctorLeaveMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *DoctorLeaveMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// Where appends a list predicates to the DoctorLeaveMutation builder.
func (m *DoctorLeaveMutation) Where(ps ...predicate.DoctorLeave) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorLeaveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorLeaveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DoctorLeave, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorLeaveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorLeaveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DoctorLeave).
func (m *DoctorLeaveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorLeaveMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, doctorleave.FieldCreatedAt)
	}
	if m.doctor != nil {
		fields = append(fields, doctorleave.FieldDoctorID)
	}
	if m.leave_type != nil {
		fields = append(fields, doctorleave.FieldLeaveType)
	}
	if m.start_date != nil {
		fields = append(fields, doctorleave.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, doctorleave.FieldEndDate)
	}
	if m.reason != nil {
		fields = append(fields, doctorleave.FieldReason)
	}
	if m.is_approved != nil {
		fields = append(fields, doctorleave.FieldIsApproved)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorLeaveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctorleave.FieldCreatedAt:
		return m.CreatedAt()
	case doctorleave.FieldDoctorID:
		return m.DoctorID()
	case doctorleave.FieldLeaveType:
		return m.LeaveType()
	case doctorleave.FieldStartDate:
		return m.StartDate()
	case doctorleave.FieldEndDate:
		return m.EndDate()
	case doctorleave.FieldReason:
		return m.Reason()
	case doctorleave.FieldIsApproved:
		return m.IsApproved()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorLeaveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctorleave.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctorleave.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case doctorleave.FieldLeaveType:
		return m.OldLeaveType(ctx)
	case doctorleave.FieldStartDate:
		return m.OldStartDate(ctx)
	case doctorleave.FieldEndDate:
		return m.OldEndDate(ctx)
	case doctorleave.FieldReason:
		return m.OldReason(ctx)
	case doctorleave.FieldIsApproved:
		return m.OldIsApproved(ctx)
	}
	return nil, fmt.Errorf("unknown DoctorLeave field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorLeaveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctorleave.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctorleave.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case doctorleave.FieldLeaveType:
		v, ok := value.(doctorleave.LeaveType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaveType(v)
		return nil
	case doctorleave.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case doctorleave.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case doctorleave.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case doctorleave.FieldIsApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsApproved(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorLeave field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorLeaveMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorLeaveMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorLeaveMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DoctorLeave numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorLeaveMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctorleave.FieldReason) {
		fields = append(fields, doctorleave.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorLeaveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorLeaveMutation) ClearField(name string) error {
	switch name {
	case doctorleave.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown DoctorLeave nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorLeaveMutation) ResetField(name string) error {
	switch name {
	case doctorleave.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctorleave.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case doctorleave.FieldLeaveType:
		m.ResetLeaveType()
		return nil
	case doctorleave.FieldStartDate:
		m.ResetStartDate()
		return nil
	case doctorleave.FieldEndDate:
		m.ResetEndDate()
		return nil
	case doctorleave.FieldReason:
		m.ResetReason()
		return nil
	case doctorleave.FieldIsApproved:
		m.ResetIsApproved()
		return nil
	}
	return fmt.Errorf("unknown DoctorLeave field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorLeaveMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.doctor != nil {
		edges = append(edges, doctorleave.EdgeDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorLeaveMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctorleave.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorLeaveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorLeaveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorLeaveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddoctor {
		edges = append(edges, doctorleave.EdgeDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorLeaveMutation) EdgeCleared(name string) bool {
	switch name {
	case doctorleave.EdgeDoctor:
		return m.cleareddoctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorLeaveMutation) ClearEdge(name string) error {
	switch name {
	case doctorleave.EdgeDoctor:
		m.ClearDoctor()
		return nil
	}
	return fmt.Errorf("unknown DoctorLeave unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorLeaveMutation) ResetEdge(name string) error {
	switch name {
	case doctorleave.EdgeDoctor:
		m.ResetDoctor()
		return nil
	}
	return fmt.Errorf("unknown DoctorLeave edge %s", name)
}

// EmailTemplateMutation represents an operation that mutates the EmailTemplate nodes in the graph.
type EmailTemplateMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	name           *string
	template_type  *emailtemplate.TemplateType
	subject        *string
	body_html      *string
	body_text      *string
	is_active      *bool
	variables_help *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*EmailTemplate, error)
	predicates     []predicate.EmailTemplate
}

var _ ent.Mutation = (*EmailTemplateMutation)(nil)

// emailtemplateOption allows management of the mutation configuration using functional options.
type emailtemplateOption func(*EmailTemplateMutation)

// newEmailTemplateMutation creates new mutation for the EmailTemplate entity.
func newEmailTemplateMutation(c config, op Op, opts ...emailtemplateOption) *EmailTemplateMutation {
	m := &EmailTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailTemplateID sets the ID field of the mutation.
func withEmailTemplateID(id uuid.UUID) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailTemplate
		)
		m.oldValue = func(ctx context.Context) (*EmailTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailTemplate sets the old EmailTemplate of the mutation.
func withEmailTemplate(node *EmailTemplate) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		m.oldValue = func(context.Context) (*EmailTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailTemplate entities.
func (m *EmailTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *EmailTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EmailTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EmailTemplateMutation) ResetName() {
	m.name = nil
}

// SetTemplateType sets the "template_type" field.
func (m *EmailTemplateMutation) SetTemplateType(et emailtemplate.TemplateType) {
	m.template_type = &et
}

// TemplateType returns the value of the "template_type" field in the mutation.
func (m *EmailTemplateMutation) TemplateType() (r emailtemplate.TemplateType, exists bool) {
	v := m.template_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateType returns the old "template_type" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldTemplateType(ctx context.Context) (v emailtemplate.TemplateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateType: %w", err)
	}
	return oldValue.TemplateType, nil
}

// ResetTemplateType resets all changes to the "template_type" field.
func (m *EmailTemplateMutation) ResetTemplateType() {
	m.template_type = nil
}

// SetSubject sets the "subject" field.
func (m *EmailTemplateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailTemplateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailTemplateMutation) ResetSubject() {
	m.subject = nil
}

// SetBodyHTML sets the "body_html" field.
func (m *EmailTemplateMutation) SetBodyHTML(s string) {
	m.body_html = &s
}

// BodyHTML returns the value of the "body_html" field in the mutation.
func (m *EmailTemplateMutation) BodyHTML() (r string, exists bool) {
	v := m.body_html
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyHTML returns the old "body_html" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldBodyHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyHTML: %w", err)
	}
	return oldValue.BodyHTML, nil
}

// ResetBodyHTML resets all changes to the "body_html" field.
func (m *EmailTemplateMutation) ResetBodyHTML() {
	m.body_html = nil
}

// SetBodyText sets the "body_text" field.
func (m *EmailTemplateMutation) SetBodyText(s string) {
	m.body_text = &s
}

// BodyText returns the value of the "body_text" field in the mutation.
func (m *EmailTemplateMutation) BodyText() (r string, exists bool) {
	v := m.body_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyText returns the old "body_text" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldBodyText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyText: %w", err)
	}
	return oldValue.BodyText, nil
}

// ResetBodyText resets all changes to the "body_text" field.
func (m *EmailTemplateMutation) ResetBodyText() {
	m.body_text = nil
}

// SetIsActive sets the "is_active" field.
func (m *EmailTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *EmailTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *EmailTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetVariablesHelp sets the "variables_help" field.
func (m *EmailTemplateMutation) SetVariablesHelp(s string) {
	m.variables_help = &s
}

// VariablesHelp returns the value of the "variables_help" field in the mutation.
func (m *EmailTemplateMutation) VariablesHelp() (r string, exists bool) {
	v := m.variables_help
	if v == nil {
		return
	}
	return *v, true
}

// OldVariablesHelp returns the old "variables_help" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldVariablesHelp(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariablesHelp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariablesHelp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariablesHelp: %w", err)
	}
	return oldValue.VariablesHelp, nil
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (m *EmailTemplateMutation) ClearVariablesHelp() {
	m.variables_help = nil
	m.clearedFields[emailtemplate.FieldVariablesHelp] = struct{}{}
}

// VariablesHelpCleared returns if the "variables_help" field was cleared in this mutation.
func (m *EmailTemplateMutation) VariablesHelpCleared() bool {
	_, ok := m.clearedFields[emailtemplate.FieldVariablesHelp]
	return ok
}

// ResetVariablesHelp resets all changes to the "variables_help" field.
func (m *EmailTemplateMutation) ResetVariablesHelp() {
	m.variables_help = nil
	delete(m.clearedFields, emailtemplate.FieldVariablesHelp)
}

// Where appends a list predicates to the EmailTemplateMutation builder.
func (m *EmailTemplateMutation) Where(ps ...predicate.EmailTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailTemplate).
func (m *EmailTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailTemplateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, emailtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emailtemplate.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, emailtemplate.FieldName)
	}
	if m.template_type != nil {
		fields = append(fields, emailtemplate.FieldTemplateType)
	}
	if m.subject != nil {
		fields = append(fields, emailtemplate.FieldSubject)
	}
	if m.body_html != nil {
		fields = append(fields, emailtemplate.FieldBodyHTML)
	}
	if m.body_text != nil {
		fields = append(fields, emailtemplate.FieldBodyText)
	}
	if m.is_active != nil {
		fields = append(fields, emailtemplate.FieldIsActive)
	}
	if m.variables_help != nil {
		fields = append(fields, emailtemplate.FieldVariablesHelp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case emailtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	case emailtemplate.FieldName:
		return m.Name()
	case emailtemplate.FieldTemplateType:
		return m.TemplateType()
	case emailtemplate.FieldSubject:
		return m.Subject()
	case emailtemplate.FieldBodyHTML:
		return m.BodyHTML()
	case emailtemplate.FieldBodyText:
		return m.BodyText()
	case emailtemplate.FieldIsActive:
		return m.IsActive()
	case emailtemplate.FieldVariablesHelp:
		return m.VariablesHelp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emailtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case emailtemplate.FieldName:
		return m.OldName(ctx)
	case emailtemplate.FieldTemplateType:
		return m.OldTemplateType(ctx)
	case emailtemplate.FieldSubject:
		return m.OldSubject(ctx)
	case emailtemplate.FieldBodyHTML:
		return m.OldBodyHTML(ctx)
	case emailtemplate.FieldBodyText:
		return m.OldBodyText(ctx)
	case emailtemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case emailtemplate.FieldVariablesHelp:
		return m.OldVariablesHelp(ctx)
	}
	return nil, fmt.Errorf("unknown EmailTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emailtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case emailtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case emailtemplate.FieldTemplateType:
		v, ok := value.(emailtemplate.TemplateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateType(v)
		return nil
	case emailtemplate.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emailtemplate.FieldBodyHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyHTML(v)
		return nil
	case emailtemplate.FieldBodyText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyText(v)
		return nil
	case emailtemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case emailtemplate.FieldVariablesHelp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariablesHelp(v)
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailtemplate.FieldVariablesHelp) {
		fields = append(fields, emailtemplate.FieldVariablesHelp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ClearField(name string) error {
	switch name {
	case emailtemplate.FieldVariablesHelp:
		m.ClearVariablesHelp()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ResetField(name string) error {
	switch name {
	case emailtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emailtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case emailtemplate.FieldName:
		m.ResetName()
		return nil
	case emailtemplate.FieldTemplateType:
		m.ResetTemplateType()
		return nil
	case emailtemplate.FieldSubject:
		m.ResetSubject()
		return nil
	case emailtemplate.FieldBodyHTML:
		m.ResetBodyHTML()
		return nil
	case emailtemplate.FieldBodyText:
		m.ResetBodyText()
		return nil
	case emailtemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case emailtemplate.FieldVariablesHelp:
		m.ResetVariablesHelp()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmailTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmailTemplate edge %s", name)
}

// HolidayMutation represents an operation that mutates the Holiday nodes in the graph.
type HolidayMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	name                 *string
	date                 *time.Time
	is_recurring         *bool
	description          *string
	affects_appointments *bool
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Holiday, error)
	predicates           []predicate.Holiday
}

var _ ent.Mutation = (*HolidayMutation)(nil)

// holidayOption allows management of the mutation configuration using functional options.
type holidayOption func(*HolidayMutation)

// newHolidayMutation creates new mutation for the Holiday entity.
func newHolidayMutation(c config, op Op, opts ...holidayOption) *HolidayMutation {
	m := &HolidayMutation{
		config:        c,
		op:            op,
		typ:           TypeHoliday,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHolidayID sets the ID field of the mutation.
func withHolidayID(id uuid.UUID) holidayOption {
	return func(m *HolidayMutation) {
		var (
			err   error
			once  sync.Once
			value *Holiday
		)
		m.oldValue = func(ctx context.Context) (*Holiday, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Holiday.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHoliday sets the old Holiday of the mutation.
func withHoliday(node *Holiday) holidayOption {
	return func(m *HolidayMutation) {
		m.oldValue = func(context.Context) (*Holiday, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HolidayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HolidayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Holiday entities.
func (m *HolidayMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HolidayMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HolidayMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Holiday.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HolidayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HolidayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HolidayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *HolidayMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HolidayMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HolidayMutation) ResetName() {
	m.name = nil
}

// SetDate sets the "date" field.
func (m *HolidayMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *HolidayMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *HolidayMutation) ResetDate() {
	m.date = nil
}

// SetIsRecurring sets the "is_recurring" field.
func (m *HolidayMutation) SetIsRecurring(b bool) {
	m.is_recurring = &b
}

// IsRecurring returns the value of the "is_recurring" field in the mutation.
func (m *HolidayMutation) IsRecurring() (r bool, exists bool) {
	v := m.is_recurring
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRecurring returns the old "is_recurring" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldIsRecurring(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRecurring is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRecurring requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRecurring: %w", err)
	}
	return oldValue.IsRecurring, nil
}

// ResetIsRecurring resets all changes to the "is_recurring" field.
func (m *HolidayMutation) ResetIsRecurring() {
	m.is_recurring = nil
}

// SetDescription sets the "description" field.
func (m *HolidayMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *HolidayMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *HolidayMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[holiday.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *HolidayMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[holiday.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *HolidayMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, holiday.FieldDescription)
}

// SetAffectsAppointments sets the "affects_appointments" field.
func (m *HolidayMutation) SetAffectsAppointments(b bool) {
	m.affects_appointments = &b
}

// AffectsAppointments returns the value of the "affects_appointments" field in the mutation.
func (m *HolidayMutation) AffectsAppointments() (r bool, exists bool) {
	v := m.affects_appointments
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectsAppointments returns the old "affects_appointments" field's value of the Holiday entity.
// If the Holiday object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HolidayMutation) OldAffectsAppointments(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectsAppointments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectsAppointments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectsAppointments: %w", err)
	}
	return oldValue.AffectsAppointments, nil
}

// ResetAffectsAppointments resets all changes to the "affects_appointments" field.
func (m *HolidayMutation) ResetAffectsAppointments() {
	m.affects_appointments = nil
}

// Where appends a list predicates to the HolidayMutation builder.
func (m *HolidayMutation) Where(ps ...predicate.Holiday) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HolidayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HolidayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Holiday, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HolidayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HolidayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Holiday).
func (m *HolidayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HolidayMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, holiday.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, holiday.FieldName)
	}
	if m.date != nil {
		fields = append(fields, holiday.FieldDate)
	}
	if m.is_recurring != nil {
		fields = append(fields, holiday.FieldIsRecurring)
	}
	if m.description != nil {
		fields = append(fields, holiday.FieldDescription)
	}
	if m.affects_appointments != nil {
		fields = append(fields, holiday.FieldAffectsAppointments)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HolidayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case holiday.FieldCreatedAt:
		return m.CreatedAt()
	case holiday.FieldName:
		return m.Name()
	case holiday.FieldDate:
		return m.Date()
	case holiday.FieldIsRecurring:
		return m.IsRecurring()
	case holiday.FieldDescription:
		return m.Description()
	case holiday.FieldAffectsAppointments:
		return m.AffectsAppointments()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HolidayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case holiday.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case holiday.FieldName:
		return m.OldName(ctx)
	case holiday.FieldDate:
		return m.OldDate(ctx)
	case holiday.FieldIsRecurring:
		return m.OldIsRecurring(ctx)
	case holiday.FieldDescription:
		return m.OldDescription(ctx)
	case holiday.FieldAffectsAppointments:
		return m.OldAffectsAppointments(ctx)
	}
	return nil, fmt.Errorf("unknown Holiday field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HolidayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case holiday.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case holiday.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case holiday.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case holiday.FieldIsRecurring:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRecurring(v)
		return nil
	case holiday.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case holiday.FieldAffectsAppointments:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectsAppointments(v)
		return nil
	}
	return fmt.Errorf("unknown Holiday field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HolidayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HolidayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HolidayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Holiday numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HolidayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(holiday.FieldDescription) {
		fields = append(fields, holiday.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HolidayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HolidayMutation) ClearField(name string) error {
	switch name {
	case holiday.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Holiday nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HolidayMutation) ResetField(name string) error {
	switch name {
	case holiday.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case holiday.FieldName:
		m.ResetName()
		return nil
	case holiday.FieldDate:
		m.ResetDate()
		return nil
	case holiday.FieldIsRecurring:
		m.ResetIsRecurring()
		return nil
	case holiday.FieldDescription:
		m.ResetDescription()
		return nil
	case holiday.FieldAffectsAppointments:
		m.ResetAffectsAppointments()
		return nil
	}
	return fmt.Errorf("unknown Holiday field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HolidayMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HolidayMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HolidayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HolidayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HolidayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HolidayMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HolidayMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Holiday unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HolidayMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Holiday edge %s", name)
}

// MedicalHistoryMutation represents an operation that mutates the MedicalHistory nodes in the graph.
type MedicalHistoryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	condition_type *medicalhistory.ConditionType
	condition_name *string
	description    *string
	date_diagnosed *time.Time
	is_current     *bool
	severity       *medicalhistory.Severity
	notes          *string
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*MedicalHistory, error)
	predicates     []predicate.MedicalHistory
}

var _ ent.Mutation = (*MedicalHistoryMutation)(nil)

// medicalhistoryOption allows management of the mutation configuration using functional options.
type medicalhistoryOption func(*MedicalHistoryMutation)

// newMedicalHistoryMutation creates new mutation for the MedicalHistory entity.
func newMedicalHistoryMutation(c config, op Op, opts ...medicalhistoryOption) *MedicalHistoryMutation {
	m := &MedicalHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicalHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicalHistoryID sets the ID field of the mutation.
func withMedicalHistoryID(id uuid.UUID) medicalhistoryOption {
	return func(m *MedicalHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *MedicalHistory
		)
		m.oldValue = func(ctx context.Context) (*MedicalHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MedicalHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicalHistory sets the old MedicalHistory of the mutation.
func withMedicalHistory(node *MedicalHistory) medicalhistoryOption {
	return func(m *MedicalHistoryMutation) {
		m.oldValue = func(context.Context) (*MedicalHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicalHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicalHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MedicalHistory entities.
func (m *MedicalHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicalHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicalHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MedicalHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicalHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicalHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicalHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicalHistoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicalHistoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MedicalHistoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *MedicalHistoryMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *MedicalHistoryMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *MedicalHistoryMutation) ResetPatientID() {
	m.patient = nil
}

// SetConditionType sets the "condition_type" field.
func (m *MedicalHistoryMutation) SetConditionType(mt medicalhistory.ConditionType) {
	m.condition_type = &mt
}

// ConditionType returns the value of the "condition_type" field in the mutation.
func (m *MedicalHistoryMutation) ConditionType() (r medicalhistory.ConditionType, exists bool) {
	v := m.condition_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionType returns the old "condition_type" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldConditionType(ctx context.Context) (v medicalhistory.ConditionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionType: %w", err)
	}
	return oldValue.ConditionType, nil
}

// ResetConditionType resets all changes to the "condition_type" field.
func (m *MedicalHistoryMutation) ResetConditionType() {
	m.condition_type = nil
}

// SetConditionName sets the "condition_name" field.
func (m *MedicalHistoryMutation) SetConditionName(s string) {
	m.condition_name = &s
}

// ConditionName returns the value of the "condition_name" field in the mutation.
func (m *MedicalHistoryMutation) ConditionName() (r string, exists bool) {
	v := m.condition_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionName returns the old "condition_name" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldConditionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionName: %w", err)
	}
	return oldValue.ConditionName, nil
}

// ResetConditionName resets all changes to the "condition_name" field.
func (m *MedicalHistoryMutation) ResetConditionName() {
	m.condition_name = nil
}

// SetDescription sets the "description" field.
func (m *MedicalHistoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MedicalHistoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MedicalHistoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[medicalhistory.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MedicalHistoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MedicalHistoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, medicalhistory.FieldDescription)
}

// SetDateDiagnosed sets the "date_diagnosed" field.
func (m *MedicalHistoryMutation) SetDateDiagnosed(t time.Time) {
	m.date_diagnosed = &t
}

// DateDiagnosed returns the value of the "date_diagnosed" field in the mutation.
func (m *MedicalHistoryMutation) DateDiagnosed() (r time.Time, exists bool) {
	v := m.date_diagnosed
	if v == nil {
		return
	}
	return *v, true
}

// OldDateDiagnosed returns the old "date_diagnosed" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldDateDiagnosed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateDiagnosed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateDiagnosed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateDiagnosed: %w", err)
	}
	return oldValue.DateDiagnosed, nil
}

// ClearDateDiagnosed clears the value of the "date_diagnosed" field.
func (m *MedicalHistoryMutation) ClearDateDiagnosed() {
	m.date_diagnosed = nil
	m.clearedFields[medicalhistory.FieldDateDiagnosed] = struct{}{}
}

// DateDiagnosedCleared returns if the "date_diagnosed" field was cleared in this mutation.
func (m *MedicalHistoryMutation) DateDiagnosedCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldDateDiagnosed]
	return ok
}

// ResetDateDiagnosed resets all changes to the "date_diagnosed" field.
func (m *MedicalHistoryMutation) ResetDateDiagnosed() {
	m.date_diagnosed = nil
	delete(m.clearedFields, medicalhistory.FieldDateDiagnosed)
}

// SetIsCurrent sets the "is_current" field.
func (m *MedicalHistoryMutation) SetIsCurrent(b bool) {
	m.is_current = &b
}

// IsCurrent returns the value of the "is_current" field in the mutation.
func (m *MedicalHistoryMutation) IsCurrent() (r bool, exists bool) {
	v := m.is_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCurrent returns the old "is_current" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldIsCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCurrent: %w", err)
	}
	return oldValue.IsCurrent, nil
}

// ResetIsCurrent resets all changes to the "is_current" field.
func (m *MedicalHistoryMutation) ResetIsCurrent() {
	m.is_current = nil
}

// SetSeverity sets the "severity" field.
func (m *MedicalHistoryMutation) SetSeverity(value medicalhistory.Severity) {
	m.severity = &value
}

// Severity returns the value of the "severity" field in the mutation.
func (m *MedicalHistoryMutation) Severity() (r medicalhistory.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldSeverity(ctx context.Context) (v *medicalhistory.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *MedicalHistoryMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[medicalhistory.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *MedicalHistoryMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *MedicalHistoryMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, medicalhistory.FieldSeverity)
}

// SetNotes sets the "notes" field.
func (m *MedicalHistoryMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *MedicalHistoryMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *MedicalHistoryMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[medicalhistory.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *MedicalHistoryMutation) NotesCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *MedicalHistoryMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, medicalhistory.FieldNotes)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *MedicalHistoryMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[medicalhistory.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *MedicalHistoryMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *MedicalHistoryMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *MedicalHistoryMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the MedicalHistoryMutation builder.
func (m *MedicalHistoryMutation) Where(ps ...predicate.MedicalHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicalHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicalHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MedicalHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicalHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicalHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MedicalHistory).
func (m *MedicalHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicalHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, medicalhistory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medicalhistory.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, medicalhistory.FieldPatientID)
	}
	if m.condition_type != nil {
		fields = append(fields, medicalhistory.FieldConditionType)
	}
	if m.condition_name != nil {
		fields = append(fields, medicalhistory.FieldConditionName)
	}
	if m.description != nil {
		fields = append(fields, medicalhistory.FieldDescription)
	}
	if m.date_diagnosed != nil {
		fields = append(fields, medicalhistory.FieldDateDiagnosed)
	}
	if m.is_current != nil {
		fields = append(fields, medicalhistory.FieldIsCurrent)
	}
	if m.severity != nil {
		fields = append(fields, medicalhistory.FieldSeverity)
	}
	if m.notes != nil {
		fields = append(fields, medicalhistory.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicalHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicalhistory.FieldCreatedAt:
		return m.CreatedAt()
	case medicalhistory.FieldUpdatedAt:
		return m.UpdatedAt()
	case medicalhistory.FieldPatientID:
		return m.PatientID()
	case medicalhistory.FieldConditionType:
		return m.ConditionType()
	case medicalhistory.FieldConditionName:
		return m.ConditionName()
	case medicalhistory.FieldDescription:
		return m.Description()
	case medicalhistory.FieldDateDiagnosed:
		return m.DateDiagnosed()
	case medicalhistory.FieldIsCurrent:
		return m.IsCurrent()
	case medicalhistory.FieldSeverity:
		return m.Severity()
	case medicalhistory.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicalHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicalhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medicalhistory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case medicalhistory.FieldPatientID:
		return m.OldPatientID(ctx)
	case medicalhistory.FieldConditionType:
		return m.OldConditionType(ctx)
	case medicalhistory.FieldConditionName:
		return m.OldConditionName(ctx)
	case medicalhistory.FieldDescription:
		return m.OldDescription(ctx)
	case medicalhistory.FieldDateDiagnosed:
		return m.OldDateDiagnosed(ctx)
	case medicalhistory.FieldIsCurrent:
		return m.OldIsCurrent(ctx)
	case medicalhistory.FieldSeverity:
		return m.OldSeverity(ctx)
	case medicalhistory.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown MedicalHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicalhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medicalhistory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case medicalhistory.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case medicalhistory.FieldConditionType:
		v, ok := value.(medicalhistory.ConditionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionType(v)
		return nil
	case medicalhistory.FieldConditionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionName(v)
		return nil
	case medicalhistory.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case medicalhistory.FieldDateDiagnosed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateDiagnosed(v)
		return nil
	case medicalhistory.FieldIsCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCurrent(v)
		return nil
	case medicalhistory.FieldSeverity:
		v, ok := value.(medicalhistory.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case medicalhistory.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicalHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicalHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicalHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicalHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medicalhistory.FieldDescription) {
		fields = append(fields, medicalhistory.FieldDescription)
	}
	if m.FieldCleared(medicalhistory.FieldDateDiagnosed) {
		fields = append(fields, medicalhistory.FieldDateDiagnosed)
	}
	if m.FieldCleared(medicalhistory.FieldSeverity) {
		fields = append(fields, medicalhistory.FieldSeverity)
	}
	if m.FieldCleared(medicalhistory.FieldNotes) {
		fields = append(fields, medicalhistory.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicalHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicalHistoryMutation) ClearField(name string) error {
	switch name {
	case medicalhistory.FieldDescription:
		m.ClearDescription()
		return nil
	case medicalhistory.FieldDateDiagnosed:
		m.ClearDateDiagnosed()
		return nil
	case medicalhistory.FieldSeverity:
		m.ClearSeverity()
		return nil
	case medicalhistory.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicalHistoryMutation) ResetField(name string) error {
	switch name {
	case medicalhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medicalhistory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case medicalhistory.FieldPatientID:
		m.ResetPatientID()
		return nil
	case medicalhistory.FieldConditionType:
		m.ResetConditionType()
		return nil
	case medicalhistory.FieldConditionName:
		m.ResetConditionName()
		return nil
	case medicalhistory.FieldDescription:
		m.ResetDescription()
		return nil
	case medicalhistory.FieldDateDiagnosed:
		m.ResetDateDiagnosed()
		return nil
	case medicalhistory.FieldIsCurrent:
		m.ResetIsCurrent()
		return nil
	case medicalhistory.FieldSeverity:
		m.ResetSeverity()
		return nil
	case medicalhistory.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicalHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, medicalhistory.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicalHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case medicalhistory.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicalHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicalHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicalHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, medicalhistory.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicalHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case medicalhistory.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicalHistoryMutation) ClearEdge(name string) error {
	switch name {
	case medicalhistory.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicalHistoryMutation) ResetEdge(name string) error {
	switch name {
	case medicalhistory.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory edge %s", name)
}

// NewsletterMutation represents an operation that mutates the Newsletter nodes in the graph.
type NewsletterMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	title            *string
	subject          *string
	content_html     *string
	content_text     *string
	status           *newsletter.Status
	scheduled_at     *time.Time
	sent_at          *time.Time
	created_by_id    *uuid.UUID
	clearedFields    map[string]struct{}
	campaigns        map[uuid.UUID]struct{}
	removedcampaigns map[uuid.UUID]struct{}
	clearedcampaigns bool
	done             bool
	oldValue         func(context.Context) (*Newsletter, error)
	predicates       []predicate.Newsletter
}

var _ ent.Mutation = (*NewsletterMutation)(nil)

// newsletterOption allows management of the mutation configuration using functional options.
type newsletterOption func(*NewsletterMutation)

// newNewsletterMutation creates new mutation for the Newsletter entity.
func newNewsletterMutation(c config, op Op, opts ...newsletterOption) *NewsletterMutation {
	m := &NewsletterMutation{
		config:        c,
		op:            op,
		typ:           TypeNewsletter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNewsletterID sets the ID field of the mutation.
func withNewsletterID(id uuid.UUID) newsletterOption {
	return func(m *NewsletterMutation) {
		var (
			err   error
			once  sync.Once
			value *Newsletter
		)
		m.oldValue = func(ctx context.Context) (*Newsletter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Newsletter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNewsletter sets the old Newsletter of the mutation.
func withNewsletter(node *Newsletter) newsletterOption {
	return func(m *NewsletterMutation) {
		m.oldValue = func(context.Context) (*Newsletter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NewsletterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NewsletterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Newsletter entities.
func (m *NewsletterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NewsletterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NewsletterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Newsletter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NewsletterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NewsletterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NewsletterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NewsletterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NewsletterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NewsletterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *NewsletterMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NewsletterMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NewsletterMutation) ResetTitle() {
	m.title = nil
}

// SetSubject sets the "subject" field.
func (m *NewsletterMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *NewsletterMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *NewsletterMutation) ResetSubject() {
	m.subject = nil
}

// SetContentHTML sets the "content_html" field.
func (m *NewsletterMutation) SetContentHTML(s string) {
	m.content_html = &s
}

// ContentHTML returns the value of the "content_html" field in the mutation.
func (m *NewsletterMutation) ContentHTML() (r string, exists bool) {
	v := m.content_html
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHTML returns the old "content_html" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldContentHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHTML: %w", err)
	}
	return oldValue.ContentHTML, nil
}

// ResetContentHTML resets all changes to the "content_html" field.
func (m *NewsletterMutation) ResetContentHTML() {
	m.content_html = nil
}

// SetContentText sets the "content_text" field.
func (m *NewsletterMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *NewsletterMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ResetContentText resets all changes to the "content_text" field.
func (m *NewsletterMutation) ResetContentText() {
	m.content_text = nil
}

// SetStatus sets the "status" field.
func (m *NewsletterMutation) SetStatus(n newsletter.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NewsletterMutation) Status() (r newsletter.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldStatus(ctx context.Context) (v newsletter.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NewsletterMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *NewsletterMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *NewsletterMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *NewsletterMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[newsletter.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *NewsletterMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[newsletter.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *NewsletterMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, newsletter.FieldScheduledAt)
}

// SetSentAt sets the "sent_at" field.
func (m *NewsletterMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NewsletterMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NewsletterMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[newsletter.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NewsletterMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[newsletter.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NewsletterMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, newsletter.FieldSentAt)
}

// SetCreatedByID sets the "created_by_id" field.
func (m *NewsletterMutation) SetCreatedByID(u uuid.UUID) {
	m.created_by_id = &u
}

// CreatedByID returns the value of the "created_by_id" field in the mutation.
func (m *NewsletterMutation) CreatedByID() (r uuid.UUID, exists bool) {
	v := m.created_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByID returns the old "created_by_id" field's value of the Newsletter entity.
// If the Newsletter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterMutation) OldCreatedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByID: %w", err)
	}
	return oldValue.CreatedByID, nil
}

// ClearCreatedByID clears the value of the "created_by_id" field.
func (m *NewsletterMutation) ClearCreatedByID() {
	m.created_by_id = nil
	m.clearedFields[newsletter.FieldCreatedByID] = struct{}{}
}

// CreatedByIDCleared returns if the "created_by_id" field was cleared in this mutation.
func (m *NewsletterMutation) CreatedByIDCleared() bool {
	_, ok := m.clearedFields[newsletter.FieldCreatedByID]
	return ok
}

// ResetCreatedByID resets all changes to the "created_by_id" field.
func (m *NewsletterMutation) ResetCreatedByID() {
	m.created_by_id = nil
	delete(m.clearedFields, newsletter.FieldCreatedByID)
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by ids.
func (m *NewsletterMutation) AddCampaignIDs(ids ...uuid.UUID) {
	if m.campaigns == nil {
		m.campaigns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the NewsletterCampaign entity.
func (m *NewsletterMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the NewsletterCampaign entity was cleared.
func (m *NewsletterMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (m *NewsletterMutation) RemoveCampaignIDs(ids ...uuid.UUID) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the NewsletterCampaign entity.
func (m *NewsletterMutation) RemovedCampaignsIDs() (ids []uuid.UUID) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *NewsletterMutation) CampaignsIDs() (ids []uuid.UUID) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *NewsletterMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// Where appends a list predicates to the NewsletterMutation builder.
func (m *NewsletterMutation) Where(ps ...predicate.Newsletter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NewsletterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NewsletterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Newsletter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NewsletterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NewsletterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Newsletter).
func (m *NewsletterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NewsletterMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, newsletter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, newsletter.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, newsletter.FieldTitle)
	}
	if m.subject != nil {
		fields = append(fields, newsletter.FieldSubject)
	}
	if m.content_html != nil {
		fields = append(fields, newsletter.FieldContentHTML)
	}
	if m.content_text != nil {
		fields = append(fields, newsletter.FieldContentText)
	}
	if m.status != nil {
		fields = append(fields, newsletter.FieldStatus)
	}
	if m.scheduled_at != nil {
		fields = append(fields, newsletter.FieldScheduledAt)
	}
	if m.sent_at != nil {
		fields = append(fields, newsletter.FieldSentAt)
	}
	if m.created_by_id != nil {
		fields = append(fields, newsletter.FieldCreatedByID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NewsletterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case newsletter.FieldCreatedAt:
		return m.CreatedAt()
	case newsletter.FieldUpdatedAt:
		return m.UpdatedAt()
	case newsletter.FieldTitle:
		return m.Title()
	case newsletter.FieldSubject:
		return m.Subject()
	case newsletter.FieldContentHTML:
		return m.ContentHTML()
	case newsletter.FieldContentText:
		return m.ContentText()
	case newsletter.FieldStatus:
		return m.Status()
	case newsletter.FieldScheduledAt:
		return m.ScheduledAt()
	case newsletter.FieldSentAt:
		return m.SentAt()
	case newsletter.FieldCreatedByID:
		return m.CreatedByID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NewsletterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case newsletter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case newsletter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case newsletter.FieldTitle:
		return m.OldTitle(ctx)
	case newsletter.FieldSubject:
		return m.OldSubject(ctx)
	case newsletter.FieldContentHTML:
		return m.OldContentHTML(ctx)
	case newsletter.FieldContentText:
		return m.OldContentText(ctx)
	case newsletter.FieldStatus:
		return m.OldStatus(ctx)
	case newsletter.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case newsletter.FieldSentAt:
		return m.OldSentAt(ctx)
	case newsletter.FieldCreatedByID:
		return m.OldCreatedByID(ctx)
	}
	return nil, fmt.Errorf("unknown Newsletter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case newsletter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case newsletter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case newsletter.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case newsletter.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case newsletter.FieldContentHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHTML(v)
		return nil
	case newsletter.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case newsletter.FieldStatus:
		v, ok := value.(newsletter.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case newsletter.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case newsletter.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case newsletter.FieldCreatedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByID(v)
		return nil
	}
	return fmt.Errorf("unknown Newsletter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NewsletterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NewsletterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Newsletter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NewsletterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(newsletter.FieldScheduledAt) {
		fields = append(fields, newsletter.FieldScheduledAt)
	}
	if m.FieldCleared(newsletter.FieldSentAt) {
		fields = append(fields, newsletter.FieldSentAt)
	}
	if m.FieldCleared(newsletter.FieldCreatedByID) {
		fields = append(fields, newsletter.FieldCreatedByID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NewsletterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NewsletterMutation) ClearField(name string) error {
	switch name {
	case newsletter.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case newsletter.FieldSentAt:
		m.ClearSentAt()
		return nil
	case newsletter.FieldCreatedByID:
		m.ClearCreatedByID()
		return nil
	}
	return fmt.Errorf("unknown Newsletter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NewsletterMutation) ResetField(name string) error {
	switch name {
	case newsletter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case newsletter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case newsletter.FieldTitle:
		m.ResetTitle()
		return nil
	case newsletter.FieldSubject:
		m.ResetSubject()
		return nil
	case newsletter.FieldContentHTML:
		m.ResetContentHTML()
		return nil
	case newsletter.FieldContentText:
		m.ResetContentText()
		return nil
	case newsletter.FieldStatus:
		m.ResetStatus()
		return nil
	case newsletter.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case newsletter.FieldSentAt:
		m.ResetSentAt()
		return nil
	case newsletter.FieldCreatedByID:
		m.ResetCreatedByID()
		return nil
	}
	return fmt.Errorf("unknown Newsletter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NewsletterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaigns != nil {
		edges = append(edges, newsletter.EdgeCampaigns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NewsletterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case newsletter.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NewsletterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcampaigns != nil {
		edges = append(edges, newsletter.EdgeCampaigns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NewsletterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case newsletter.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NewsletterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaigns {
		edges = append(edges, newsletter.EdgeCampaigns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NewsletterMutation) EdgeCleared(name string) bool {
	switch name {
	case newsletter.EdgeCampaigns:
		return m.clearedcampaigns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NewsletterMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Newsletter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NewsletterMutation) ResetEdge(name string) error {
	switch name {
	case newsletter.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	}
	return fmt.Errorf("unknown Newsletter edge %s", name)
}

// NewsletterCampaignMutation represents an operation that mutates the NewsletterCampaign nodes in the graph.
type NewsletterCampaignMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	sent_count         *int
	addsent_count      *int
	open_count         *int
	addopen_count      *int
	click_count        *int
	addclick_count     *int
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	newsletter         *uuid.UUID
	clearednewsletter  bool
	subscribers        map[uuid.UUID]struct{}
	removedsubscribers map[uuid.UUID]struct{}
	clearedsubscribers bool
	done               bool
	oldValue           func(context.Context) (*NewsletterCampaign, error)
	predicates         []predicate.NewsletterCampaign
}

var _ ent.Mutation = (*NewsletterCampaignMutation)(nil)

// newslettercampaignOption allows management of the mutation configuration using functional options.
type newslettercampaignOption func(*NewsletterCampaignMutation)

// newNewsletterCampaignMutation creates new mutation for the NewsletterCampaign entity.
func newNewsletterCampaignMutation(c config, op Op, opts ...newslettercampaignOption) *NewsletterCampaignMutation {
	m := &NewsletterCampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeNewsletterCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNewsletterCampaignID sets the ID field of the mutation.
func withNewsletterCampaignID(id uuid.UUID) newslettercampaignOption {
	return func(m *NewsletterCampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *NewsletterCampaign
		)
		m.oldValue = func(ctx context.Context) (*NewsletterCampaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NewsletterCampaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNewsletterCampaign sets the old NewsletterCampaign of the mutation.
func withNewsletterCampaign(node *NewsletterCampaign) newslettercampaignOption {
	return func(m *NewsletterCampaignMutation) {
		m.oldValue = func(context.Context) (*NewsletterCampaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NewsletterCampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NewsletterCampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NewsletterCampaign entities.
func (m *NewsletterCampaignMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NewsletterCampaignMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NewsletterCampaignMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NewsletterCampaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NewsletterCampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NewsletterCampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NewsletterCampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetNewsletterID sets the "newsletter_id" field.
func (m *NewsletterCampaignMutation) SetNewsletterID(u uuid.UUID) {
	m.newsletter = &u
}

// NewsletterID returns the value of the "newsletter_id" field in the mutation.
func (m *NewsletterCampaignMutation) NewsletterID() (r uuid.UUID, exists bool) {
	v := m.newsletter
	if v == nil {
		return
	}
	return *v, true
}

// OldNewsletterID returns the old "newsletter_id" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldNewsletterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewsletterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewsletterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewsletterID: %w", err)
	}
	return oldValue.NewsletterID, nil
}

// ResetNewsletterID resets all changes to the "newsletter_id" field.
func (m *NewsletterCampaignMutation) ResetNewsletterID() {
	m.newsletter = nil
}

// SetSentCount sets the "sent_count" field.
func (m *NewsletterCampaignMutation) SetSentCount(i int) {
	m.sent_count = &i
	m.addsent_count = nil
}

// SentCount returns the value of the "sent_count" field in the mutation.
func (m *NewsletterCampaignMutation) SentCount() (r int, exists bool) {
	v := m.sent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSentCount returns the old "sent_count" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldSentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentCount: %w", err)
	}
	return oldValue.SentCount, nil
}

// AddSentCount adds i to the "sent_count" field.
func (m *NewsletterCampaignMutation) AddSentCount(i int) {
	if m.addsent_count != nil {
		*m.addsent_count += i
	} else {
		m.addsent_count = &i
	}
}

// AddedSentCount returns the value that was added to the "sent_count" field in this mutation.
func (m *NewsletterCampaignMutation) AddedSentCount() (r int, exists bool) {
	v := m.addsent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentCount resets all changes to the "sent_count" field.
func (m *NewsletterCampaignMutation) ResetSentCount() {
	m.sent_count = nil
	m.addsent_count = nil
}

// SetOpenCount sets the "open_count" field.
func (m *NewsletterCampaignMutation) SetOpenCount(i int) {
	m.open_count = &i
	m.addopen_count = nil
}

// OpenCount returns the value of the "open_count" field in the mutation.
func (m *NewsletterCampaignMutation) OpenCount() (r int, exists bool) {
	v := m.open_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenCount returns the old "open_count" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldOpenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenCount: %w", err)
	}
	return oldValue.OpenCount, nil
}

// AddOpenCount adds i to the "open_count" field.
func (m *NewsletterCampaignMutation) AddOpenCount(i int) {
	if m.addopen_count != nil {
		*m.addopen_count += i
	} else {
		m.addopen_count = &i
	}
}

// AddedOpenCount returns the value that was added to the "open_count" field in this mutation.
func (m *NewsletterCampaignMutation) AddedOpenCount() (r int, exists bool) {
	v := m.addopen_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpenCount resets all changes to the "open_count" field.
func (m *NewsletterCampaignMutation) ResetOpenCount() {
	m.open_count = nil
	m.addopen_count = nil
}

// SetClickCount sets the "click_count" field.
func (m *NewsletterCampaignMutation) SetClickCount(i int) {
	m.click_count = &i
	m.addclick_count = nil
}

// ClickCount returns the value of the "click_count" field in the mutation.
func (m *NewsletterCampaignMutation) ClickCount() (r int, exists bool) {
	v := m.click_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClickCount returns the old "click_count" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldClickCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickCount: %w", err)
	}
	return oldValue.ClickCount, nil
}

// AddClickCount adds i to the "click_count" field.
func (m *NewsletterCampaignMutation) AddClickCount(i int) {
	if m.addclick_count != nil {
		*m.addclick_count += i
	} else {
		m.addclick_count = &i
	}
}

// AddedClickCount returns the value that was added to the "click_count" field in this mutation.
func (m *NewsletterCampaignMutation) AddedClickCount() (r int, exists bool) {
	v := m.addclick_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClickCount resets all changes to the "click_count" field.
func (m *NewsletterCampaignMutation) ResetClickCount() {
	m.click_count = nil
	m.addclick_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *NewsletterCampaignMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *NewsletterCampaignMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *NewsletterCampaignMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[newslettercampaign.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *NewsletterCampaignMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[newslettercampaign.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *NewsletterCampaignMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, newslettercampaign.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *NewsletterCampaignMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *NewsletterCampaignMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the NewsletterCampaign entity.
// If the NewsletterCampaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterCampaignMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *NewsletterCampaignMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[newslettercampaign.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *NewsletterCampaignMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[newslettercampaign.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *NewsletterCampaignMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, newslettercampaign.FieldCompletedAt)
}

// ClearNewsletter clears the "newsletter" edge to the Newsletter entity.
func (m *NewsletterCampaignMutation) ClearNewsletter() {
	m.clearednewsletter = true
	m.clearedFields[newslettercampaign.FieldNewsletterID] = struct{}{}
}

// NewsletterCleared reports if the "newsletter" edge to the Newsletter entity was cleared.
func (m *NewsletterCampaignMutation) NewsletterCleared() bool {
	return m.clearednewsletter
}

// NewsletterIDs returns the "newsletter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NewsletterID instead. It exists only for internal usage by the builders.
func (m *NewsletterCampaignMutation) NewsletterIDs() (ids []uuid.UUID) {
	if id := m.newsletter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNewsletter resets all changes to the "newsletter" edge.
func (m *NewsletterCampaignMutation) ResetNewsletter() {
	m.newsletter = nil
	m.clearednewsletter = false
}

// AddSubscriberIDs adds the "subscribers" edge to the NewsletterSubscriber entity by ids.
func (m *NewsletterCampaignMutation) AddSubscriberIDs(ids ...uuid.UUID) {
	if m.subscribers == nil {
		m.subscribers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.subscribers[ids[i]] = struct{}{}
	}
}

// ClearSubscribers clears the "subscribers" edge to the NewsletterSubscriber entity.
func (m *NewsletterCampaignMutation) ClearSubscribers() {
	m.clearedsubscribers = true
}

// SubscribersCleared reports if the "subscribers" edge to the NewsletterSubscriber entity was cleared.
func (m *NewsletterCampaignMutation) SubscribersCleared() bool {
	return m.clearedsubscribers
}

// RemoveSubscriberIDs removes the "subscribers" edge to the NewsletterSubscriber entity by IDs.
func (m *NewsletterCampaignMutation) RemoveSubscriberIDs(ids ...uuid.UUID) {
	if m.removedsubscribers == nil {
		m.removedsubscribers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.subscribers, ids[i])
		m.removedsubscribers[ids[i]] = struct{}{}
	}
}

// RemovedSubscribers returns the removed IDs of the "subscribers" edge to the NewsletterSubscriber entity.
func (m *NewsletterCampaignMutation) RemovedSubscribersIDs() (ids []uuid.UUID) {
	for id := range m.removedsubscribers {
		ids = append(ids, id)
	}
	return
}

// SubscribersIDs returns the "subscribers" edge IDs in the mutation.
func (m *NewsletterCampaignMutation) SubscribersIDs() (ids []uuid.UUID) {
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	return
}

// ResetSubscribers resets all changes to the "subscribers" edge.
func (m *NewsletterCampaignMutation) ResetSubscribers() {
	m.subscribers = nil
	m.clearedsubscribers = false
	m.removedsubscribers = nil
}

// Where appends a list predicates to the NewsletterCampaignMutation builder.
func (m *NewsletterCampaignMutation) Where(ps ...predicate.NewsletterCampaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NewsletterCampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NewsletterCampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NewsletterCampaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NewsletterCampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NewsletterCampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NewsletterCampaign).
func (m *NewsletterCampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NewsletterCampaignMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, newslettercampaign.FieldCreatedAt)
	}
	if m.newsletter != nil {
		fields = append(fields, newslettercampaign.FieldNewsletterID)
	}
	if m.sent_count != nil {
		fields = append(fields, newslettercampaign.FieldSentCount)
	}
	if m.open_count != nil {
		fields = append(fields, newslettercampaign.FieldOpenCount)
	}
	if m.click_count != nil {
		fields = append(fields, newslettercampaign.FieldClickCount)
	}
	if m.started_at != nil {
		fields = append(fields, newslettercampaign.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, newslettercampaign.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NewsletterCampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case newslettercampaign.FieldCreatedAt:
		return m.CreatedAt()
	case newslettercampaign.FieldNewsletterID:
		return m.NewsletterID()
	case newslettercampaign.FieldSentCount:
		return m.SentCount()
	case newslettercampaign.FieldOpenCount:
		return m.OpenCount()
	case newslettercampaign.FieldClickCount:
		return m.ClickCount()
	case newslettercampaign.FieldStartedAt:
		return m.StartedAt()
	case newslettercampaign.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NewsletterCampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case newslettercampaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case newslettercampaign.FieldNewsletterID:
		return m.OldNewsletterID(ctx)
	case newslettercampaign.FieldSentCount:
		return m.OldSentCount(ctx)
	case newslettercampaign.FieldOpenCount:
		return m.OldOpenCount(ctx)
	case newslettercampaign.FieldClickCount:
		return m.OldClickCount(ctx)
	case newslettercampaign.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case newslettercampaign.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NewsletterCampaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterCampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case newslettercampaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case newslettercampaign.FieldNewsletterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewsletterID(v)
		return nil
	case newslettercampaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentCount(v)
		return nil
	case newslettercampaign.FieldOpenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenCount(v)
		return nil
	case newslettercampaign.FieldClickCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickCount(v)
		return nil
	case newslettercampaign.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case newslettercampaign.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NewsletterCampaignMutation) AddedFields() []string {
	var fields []string
	if m.addsent_count != nil {
		fields = append(fields, newslettercampaign.FieldSentCount)
	}
	if m.addopen_count != nil {
		fields = append(fields, newslettercampaign.FieldOpenCount)
	}
	if m.addclick_count != nil {
		fields = append(fields, newslettercampaign.FieldClickCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NewsletterCampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case newslettercampaign.FieldSentCount:
		return m.AddedSentCount()
	case newslettercampaign.FieldOpenCount:
		return m.AddedOpenCount()
	case newslettercampaign.FieldClickCount:
		return m.AddedClickCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterCampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case newslettercampaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentCount(v)
		return nil
	case newslettercampaign.FieldOpenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpenCount(v)
		return nil
	case newslettercampaign.FieldClickCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClickCount(v)
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NewsletterCampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(newslettercampaign.FieldStartedAt) {
		fields = append(fields, newslettercampaign.FieldStartedAt)
	}
	if m.FieldCleared(newslettercampaign.FieldCompletedAt) {
		fields = append(fields, newslettercampaign.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NewsletterCampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NewsletterCampaignMutation) ClearField(name string) error {
	switch name {
	case newslettercampaign.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case newslettercampaign.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NewsletterCampaignMutation) ResetField(name string) error {
	switch name {
	case newslettercampaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case newslettercampaign.FieldNewsletterID:
		m.ResetNewsletterID()
		return nil
	case newslettercampaign.FieldSentCount:
		m.ResetSentCount()
		return nil
	case newslettercampaign.FieldOpenCount:
		m.ResetOpenCount()
		return nil
	case newslettercampaign.FieldClickCount:
		m.ResetClickCount()
		return nil
	case newslettercampaign.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case newslettercampaign.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NewsletterCampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.newsletter != nil {
		edges = append(edges, newslettercampaign.EdgeNewsletter)
	}
	if m.subscribers != nil {
		edges = append(edges, newslettercampaign.EdgeSubscribers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NewsletterCampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case newslettercampaign.EdgeNewsletter:
		if id := m.newsletter; id != nil {
			return []ent.Value{*id}
		}
	case newslettercampaign.EdgeSubscribers:
		ids := make([]ent.Value, 0, len(m.subscribers))
		for id := range m.subscribers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NewsletterCampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubscribers != nil {
		edges = append(edges, newslettercampaign.EdgeSubscribers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NewsletterCampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case newslettercampaign.EdgeSubscribers:
		ids := make([]ent.Value, 0, len(m.removedsubscribers))
		for id := range m.removedsubscribers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NewsletterCampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednewsletter {
		edges = append(edges, newslettercampaign.EdgeNewsletter)
	}
	if m.clearedsubscribers {
		edges = append(edges, newslettercampaign.EdgeSubscribers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NewsletterCampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case newslettercampaign.EdgeNewsletter:
		return m.clearednewsletter
	case newslettercampaign.EdgeSubscribers:
		return m.clearedsubscribers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NewsletterCampaignMutation) ClearEdge(name string) error {
	switch name {
	case newslettercampaign.EdgeNewsletter:
		m.ClearNewsletter()
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NewsletterCampaignMutation) ResetEdge(name string) error {
	switch name {
	case newslettercampaign.EdgeNewsletter:
		m.ResetNewsletter()
		return nil
	case newslettercampaign.EdgeSubscribers:
		m.ResetSubscribers()
		return nil
	}
	return fmt.Errorf("unknown NewsletterCampaign edge %s", name)
}

// NewsletterSubscriberMutation represents an operation that mutates the NewsletterSubscriber nodes in the graph.
type NewsletterSubscriberMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	email             *string
	first_name        *string
	last_name         *string
	is_active         *bool
	unsubscribe_token *string
	subscribed_at     *time.Time
	unsubscribed_at   *time.Time
	clearedFields     map[string]struct{}
	campaigns         map[uuid.UUID]struct{}
	removedcampaigns  map[uuid.UUID]struct{}
	clearedcampaigns  bool
	done              bool
	oldValue          func(context.Context) (*NewsletterSubscriber, error)
	predicates        []predicate.NewsletterSubscriber
}

var _ ent.Mutation = (*NewsletterSubscriberMutation)(nil)

// newslettersubscriberOption allows management of the mutation configuration using functional options.
type newslettersubscriberOption func(*NewsletterSubscriberMutation)

// newNewsletterSubscriberMutation creates new mutation for the NewsletterSubscriber entity.
func newNewsletterSubscriberMutation(c config, op Op, opts ...newslettersubscriberOption) *NewsletterSubscriberMutation {
	m := &NewsletterSubscriberMutation{
		config:        c,
		op:            op,
		typ:           TypeNewsletterSubscriber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNewsletterSubscriberID sets the ID field of the mutation.
func withNewsletterSubscriberID(id uuid.UUID) newslettersubscriberOption {
	return func(m *NewsletterSubscriberMutation) {
		var (
			err   error
			once  sync.Once
			value *NewsletterSubscriber
		)
		m.oldValue = func(ctx context.Context) (*NewsletterSubscriber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NewsletterSubscriber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNewsletterSubscriber sets the old NewsletterSubscriber of the mutation.
func withNewsletterSubscriber(node *NewsletterSubscriber) newslettersubscriberOption {
	return func(m *NewsletterSubscriberMutation) {
		m.oldValue = func(context.Context) (*NewsletterSubscriber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NewsletterSubscriberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NewsletterSubscriberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NewsletterSubscriber entities.
func (m *NewsletterSubscriberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NewsletterSubscriberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NewsletterSubscriberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NewsletterSubscriber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *NewsletterSubscriberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *NewsletterSubscriberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *NewsletterSubscriberMutation) ResetEmail() {
	m.email = nil
}

// SetFirstName sets the "first_name" field.
func (m *NewsletterSubscriberMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *NewsletterSubscriberMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *NewsletterSubscriberMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[newslettersubscriber.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *NewsletterSubscriberMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[newslettersubscriber.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *NewsletterSubscriberMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, newslettersubscriber.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *NewsletterSubscriberMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *NewsletterSubscriberMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *NewsletterSubscriberMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[newslettersubscriber.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *NewsletterSubscriberMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[newslettersubscriber.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *NewsletterSubscriberMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, newslettersubscriber.FieldLastName)
}

// SetIsActive sets the "is_active" field.
func (m *NewsletterSubscriberMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *NewsletterSubscriberMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *NewsletterSubscriberMutation) ResetIsActive() {
	m.is_active = nil
}

// SetUnsubscribeToken sets the "unsubscribe_token" field.
func (m *NewsletterSubscriberMutation) SetUnsubscribeToken(s string) {
	m.unsubscribe_token = &s
}

// UnsubscribeToken returns the value of the "unsubscribe_token" field in the mutation.
func (m *NewsletterSubscriberMutation) UnsubscribeToken() (r string, exists bool) {
	v := m.unsubscribe_token
	if v == nil {
		return
	}
	return *v, true
}

// OldUnsubscribeToken returns the old "unsubscribe_token" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldUnsubscribeToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnsubscribeToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnsubscribeToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnsubscribeToken: %w", err)
	}
	return oldValue.UnsubscribeToken, nil
}

// ResetUnsubscribeToken resets all changes to the "unsubscribe_token" field.
func (m *NewsletterSubscriberMutation) ResetUnsubscribeToken() {
	m.unsubscribe_token = nil
}

// SetSubscribedAt sets the "subscribed_at" field.
func (m *NewsletterSubscriberMutation) SetSubscribedAt(t time.Time) {
	m.subscribed_at = &t
}

// SubscribedAt returns the value of the "subscribed_at" field in the mutation.
func (m *NewsletterSubscriberMutation) SubscribedAt() (r time.Time, exists bool) {
	v := m.subscribed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscribedAt returns the old "subscribed_at" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldSubscribedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscribedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscribedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscribedAt: %w", err)
	}
	return oldValue.SubscribedAt, nil
}

// ResetSubscribedAt resets all changes to the "subscribed_at" field.
func (m *NewsletterSubscriberMutation) ResetSubscribedAt() {
	m.subscribed_at = nil
}

// SetUnsubscribedAt sets the "unsubscribed_at" field.
func (m *NewsletterSubscriberMutation) SetUnsubscribedAt(t time.Time) {
	m.unsubscribed_at = &t
}

// UnsubscribedAt returns the value of the "unsubscribed_at" field in the mutation.
func (m *NewsletterSubscriberMutation) UnsubscribedAt() (r time.Time, exists bool) {
	v := m.unsubscribed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnsubscribedAt returns the old "unsubscribed_at" field's value of the NewsletterSubscriber entity.
// If the NewsletterSubscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NewsletterSubscriberMutation) OldUnsubscribedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnsubscribedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnsubscribedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnsubscribedAt: %w", err)
	}
	return oldValue.UnsubscribedAt, nil
}

// ClearUnsubscribedAt clears the value of the "unsubscribed_at" field.
func (m *NewsletterSubscriberMutation) ClearUnsubscribedAt() {
	m.unsubscribed_at = nil
	m.clearedFields[newslettersubscriber.FieldUnsubscribedAt] = struct{}{}
}

// UnsubscribedAtCleared returns if the "unsubscribed_at" field was cleared in this mutation.
func (m *NewsletterSubscriberMutation) UnsubscribedAtCleared() bool {
	_, ok := m.clearedFields[newslettersubscriber.FieldUnsubscribedAt]
	return ok
}

// ResetUnsubscribedAt resets all changes to the "unsubscribed_at" field.
func (m *NewsletterSubscriberMutation) ResetUnsubscribedAt() {
	m.unsubscribed_at = nil
	delete(m.clearedFields, newslettersubscriber.FieldUnsubscribedAt)
}

// AddCampaignIDs adds the "campaigns" edge to the NewsletterCampaign entity by ids.
func (m *NewsletterSubscriberMutation) AddCampaignIDs(ids ...uuid.UUID) {
	if m.campaigns == nil {
		m.campaigns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the NewsletterCampaign entity.
func (m *NewsletterSubscriberMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the NewsletterCampaign entity was cleared.
func (m *NewsletterSubscriberMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the NewsletterCampaign entity by IDs.
func (m *NewsletterSubscriberMutation) RemoveCampaignIDs(ids ...uuid.UUID) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the NewsletterCampaign entity.
func (m *NewsletterSubscriberMutation) RemovedCampaignsIDs() (ids []uuid.UUID) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *NewsletterSubscriberMutation) CampaignsIDs() (ids []uuid.UUID) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *NewsletterSubscriberMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// Where appends a list predicates to the NewsletterSubscriberMutation builder.
func (m *NewsletterSubscriberMutation) Where(ps ...predicate.NewsletterSubscriber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NewsletterSubscriberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NewsletterSubscriberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NewsletterSubscriber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NewsletterSubscriberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NewsletterSubscriberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NewsletterSubscriber).
func (m *NewsletterSubscriberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NewsletterSubscriberMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.email != nil {
		fields = append(fields, newslettersubscriber.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, newslettersubscriber.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, newslettersubscriber.FieldLastName)
	}
	if m.is_active != nil {
		fields = append(fields, newslettersubscriber.FieldIsActive)
	}
	if m.unsubscribe_token != nil {
		fields = append(fields, newslettersubscriber.FieldUnsubscribeToken)
	}
	if m.subscribed_at != nil {
		fields = append(fields, newslettersubscriber.FieldSubscribedAt)
	}
	if m.unsubscribed_at != nil {
		fields = append(fields, newslettersubscriber.FieldUnsubscribedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NewsletterSubscriberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case newslettersubscriber.FieldEmail:
		return m.Email()
	case newslettersubscriber.FieldFirstName:
		return m.FirstName()
	case newslettersubscriber.FieldLastName:
		return m.LastName()
	case newslettersubscriber.FieldIsActive:
		return m.IsActive()
	case newslettersubscriber.FieldUnsubscribeToken:
		return m.UnsubscribeToken()
	case newslettersubscriber.FieldSubscribedAt:
		return m.SubscribedAt()
	case newslettersubscriber.FieldUnsubscribedAt:
		return m.UnsubscribedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NewsletterSubscriberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case newslettersubscriber.FieldEmail:
		return m.OldEmail(ctx)
	case newslettersubscriber.FieldFirstName:
		return m.OldFirstName(ctx)
	case newslettersubscriber.FieldLastName:
		return m.OldLastName(ctx)
	case newslettersubscriber.FieldIsActive:
		return m.OldIsActive(ctx)
	case newslettersubscriber.FieldUnsubscribeToken:
		return m.OldUnsubscribeToken(ctx)
	case newslettersubscriber.FieldSubscribedAt:
		return m.OldSubscribedAt(ctx)
	case newslettersubscriber.FieldUnsubscribedAt:
		return m.OldUnsubscribedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NewsletterSubscriber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterSubscriberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case newslettersubscriber.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case newslettersubscriber.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case newslettersubscriber.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case newslettersubscriber.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case newslettersubscriber.FieldUnsubscribeToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnsubscribeToken(v)
		return nil
	case newslettersubscriber.FieldSubscribedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscribedAt(v)
		return nil
	case newslettersubscriber.FieldUnsubscribedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnsubscribedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NewsletterSubscriber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NewsletterSubscriberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NewsletterSubscriberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NewsletterSubscriberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NewsletterSubscriber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NewsletterSubscriberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(newslettersubscriber.FieldFirstName) {
		fields = append(fields, newslettersubscriber.FieldFirstName)
	}
	if m.FieldCleared(newslettersubscriber.FieldLastName) {
		fields = append(fields, newslettersubscriber.FieldLastName)
	}
	if m.FieldCleared(newslettersubscriber.FieldUnsubscribedAt) {
		fields = append(fields, newslettersubscriber.FieldUnsubscribedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NewsletterSubscriberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NewsletterSubscriberMutation) ClearField(name string) error {
	switch name {
	case newslettersubscriber.FieldFirstName:
		m.ClearFirstName()
		return nil
	case newslettersubscriber.FieldLastName:
		m.ClearLastName()
		return nil
	case newslettersubscriber.FieldUnsubscribedAt:
		m.ClearUnsubscribedAt()
		return nil
	}
	return fmt.Errorf("unknown NewsletterSubscriber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NewsletterSubscriberMutation) ResetField(name string) error {
	switch name {
	case newslettersubscriber.FieldEmail:
		m.ResetEmail()
		return nil
	case newslettersubscriber.FieldFirstName:
		m.ResetFirstName()
		return nil
	case newslettersubscriber.FieldLastName:
		m.ResetLastName()
		return nil
	case newslettersubscriber.FieldIsActive:
		m.ResetIsActive()
		return nil
	case newslettersubscriber.FieldUnsubscribeToken:
		m.ResetUnsubscribeToken()
		return nil
	case newslettersubscriber.FieldSubscribedAt:
		m.ResetSubscribedAt()
		return nil
	case newslettersubscriber.FieldUnsubscribedAt:
		m.ResetUnsubscribedAt()
		return nil
	}
	return fmt.Errorf("unknown NewsletterSubscriber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NewsletterSubscriberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaigns != nil {
		edges = append(edges, newslettersubscriber.EdgeCampaigns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NewsletterSubscriberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case newslettersubscriber.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NewsletterSubscriberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcampaigns != nil {
		edges = append(edges, newslettersubscriber.EdgeCampaigns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NewsletterSubscriberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case newslettersubscriber.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NewsletterSubscriberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaigns {
		edges = append(edges, newslettersubscriber.EdgeCampaigns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NewsletterSubscriberMutation) EdgeCleared(name string) bool {
	switch name {
	case newslettersubscriber.EdgeCampaigns:
		return m.clearedcampaigns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NewsletterSubscriberMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown NewsletterSubscriber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NewsletterSubscriberMutation) ResetEdge(name string) error {
	switch name {
	case newslettersubscriber.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	}
	return fmt.Errorf("unknown NewsletterSubscriber edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	patient_id               *string
	middle_name              *string
	preferred_name           *string
	occupation               *string
	blood_type               *patient.BloodType
	skin_type                *patient.SkinType
	height_cm                *float64
	addheight_cm             *float64
	weight_kg                *float64
	addweight_kg             *float64
	preferred_contact_method *patient.PreferredContactMethod
	preferred_language       *string
	insurance_provider       *string
	insurance_number         *string
	insurance_valid_until    *time.Time
	referral_source          *patient.ReferralSource
	is_active                *bool
	clearedFields            map[string]struct{}
	user                     *uuid.UUID
	cleareduser              bool
	referred_by              *uuid.UUID
	clearedreferred_by       bool
	referrals                map[uuid.UUID]struct{}
	removedreferrals         map[uuid.UUID]struct{}
	clearedreferrals         bool
	medical_history          map[uuid.UUID]struct{}
	removedmedical_history   map[uuid.UUID]struct{}
	clearedmedical_history   bool
	documents                map[uuid.UUID]struct{}
	removeddocuments         map[uuid.UUID]struct{}
	cleareddocuments         bool
	done                     bool
	oldValue                 func(context.Context) (*Patient, error)
	predicates               []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PatientMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetMiddleName sets the "middle_name" field.
func (m *PatientMutation) SetMiddleName(s string) {
	m.middle_name = &s
}

// MiddleName returns the value of the "middle_name" field in the mutation.
func (m *PatientMutation) MiddleName() (r string, exists bool) {
	v := m.middle_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMiddleName returns the old "middle_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMiddleName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMiddleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMiddleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMiddleName: %w", err)
	}
	return oldValue.MiddleName, nil
}

// ClearMiddleName clears the value of the "middle_name" field.
func (m *PatientMutation) ClearMiddleName() {
	m.middle_name = nil
	m.clearedFields[patient.FieldMiddleName] = struct{}{}
}

// MiddleNameCleared returns if the "middle_name" field was cleared in this mutation.
func (m *PatientMutation) MiddleNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldMiddleName]
	return ok
}

// ResetMiddleName resets all changes to the "middle_name" field.
func (m *PatientMutation) ResetMiddleName() {
	m.middle_name = nil
	delete(m.clearedFields, patient.FieldMiddleName)
}

// SetPreferredName sets the "preferred_name" field.
func (m *PatientMutation) SetPreferredName(s string) {
	m.preferred_name = &s
}

// PreferredName returns the value of the "preferred_name" field in the mutation.
func (m *PatientMutation) PreferredName() (r string, exists bool) {
	v := m.preferred_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredName returns the old "preferred_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPreferredName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredName: %w", err)
	}
	return oldValue.PreferredName, nil
}

// ClearPreferredName clears the value of the "preferred_name" field.
func (m *PatientMutation) ClearPreferredName() {
	m.preferred_name = nil
	m.clearedFields[patient.FieldPreferredName] = struct{}{}
}

// PreferredNameCleared returns if the "preferred_name" field was cleared in this mutation.
func (m *PatientMutation) PreferredNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldPreferredName]
	return ok
}

// ResetPreferredName resets all changes to the "preferred_name" field.
func (m *PatientMutation) ResetPreferredName() {
	m.preferred_name = nil
	delete(m.clearedFields, patient.FieldPreferredName)
}

// SetOccupation sets the "occupation" field.
func (m *PatientMutation) SetOccupation(s string) {
	m.occupation = &s
}

// Occupation returns the value of the "occupation" field in the mutation.
func (m *PatientMutation) Occupation() (r string, exists bool) {
	v := m.occupation
	if v == nil {
		return
	}
	return *v, true
}

// OldOccupation returns the old "occupation" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldOccupation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccupation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccupation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccupation: %w", err)
	}
	return oldValue.Occupation, nil
}

// ClearOccupation clears the value of the "occupation" field.
func (m *PatientMutation) ClearOccupation() {
	m.occupation = nil
	m.clearedFields[patient.FieldOccupation] = struct{}{}
}

// OccupationCleared returns if the "occupation" field was cleared in this mutation.
func (m *PatientMutation) OccupationCleared() bool {
	_, ok := m.clearedFields[patient.FieldOccupation]
	return ok
}

// ResetOccupation resets all changes to the "occupation" field.
func (m *PatientMutation) ResetOccupation() {
	m.occupation = nil
	delete(m.clearedFields, patient.FieldOccupation)
}

// SetBloodType sets the "blood_type" field.
func (m *PatientMutation) SetBloodType(pt patient.BloodType) {
	m.blood_type = &pt
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *PatientMutation) BloodType() (r patient.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBloodType(ctx context.Context) (v patient.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *PatientMutation) ResetBloodType() {
	m.blood_type = nil
}

// SetSkinType sets the "skin_type" field.
func (m *PatientMutation) SetSkinType(pt patient.SkinType) {
	m.skin_type = &pt
}

// SkinType returns the value of the "skin_type" field in the mutation.
func (m *PatientMutation) SkinType() (r patient.SkinType, exists bool) {
	v := m.skin_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkinType returns the old "skin_type" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldSkinType(ctx context.Context) (v *patient.SkinType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkinType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkinType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkinType: %w", err)
	}
	return oldValue.SkinType, nil
}

// ClearSkinType clears the value of the "skin_type" field.
func (m *PatientMutation) ClearSkinType() {
	m.skin_type = nil
	m.clearedFields[patient.FieldSkinType] = struct{}{}
}

// SkinTypeCleared returns if the "skin_type" field was cleared in this mutation.
func (m *PatientMutation) SkinTypeCleared() bool {
	_, ok := m.clearedFields[patient.FieldSkinType]
	return ok
}

// ResetSkinType resets all changes to the "skin_type" field.
func (m *PatientMutation) ResetSkinType() {
	m.skin_type = nil
	delete(m.clearedFields, patient.FieldSkinType)
}

// SetHeightCm sets the "height_cm" field.
func (m *PatientMutation) SetHeightCm(f float64) {
	m.height_cm = &f
	m.addheight_cm = nil
}

// HeightCm returns the value of the "height_cm" field in the mutation.
func (m *PatientMutation) HeightCm() (r float64, exists bool) {
	v := m.height_cm
	if v == nil {
		return
	}
	return *v, true
}

// OldHeightCm returns the old "height_cm" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldHeightCm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeightCm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeightCm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeightCm: %w", err)
	}
	return oldValue.HeightCm, nil
}

// AddHeightCm adds f to the "height_cm" field.
func (m *PatientMutation) AddHeightCm(f float64) {
	if m.addheight_cm != nil {
		*m.addheight_cm += f
	} else {
		m.addheight_cm = &f
	}
}

// AddedHeightCm returns the value that was added to the "height_cm" field in this mutation.
func (m *PatientMutation) AddedHeightCm() (r float64, exists bool) {
	v := m.addheight_cm
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeightCm clears the value of the "height_cm" field.
func (m *PatientMutation) ClearHeightCm() {
	m.height_cm = nil
	m.addheight_cm = nil
	m.clearedFields[patient.FieldHeightCm] = struct{}{}
}

// HeightCmCleared returns if the "height_cm" field was cleared in this mutation.
func (m *PatientMutation) HeightCmCleared() bool {
	_, ok := m.clearedFields[patient.FieldHeightCm]
	return ok
}

// ResetHeightCm resets all changes to the "height_cm" field.
func (m *PatientMutation) ResetHeightCm() {
	m.height_cm = nil
	m.addheight_cm = nil
	delete(m.clearedFields, patient.FieldHeightCm)
}

// SetWeightKg sets the "weight_kg" field.
func (m *PatientMutation) SetWeightKg(f float64) {
	m.weight_kg = &f
	m.addweight_kg = nil
}

// WeightKg returns the value of the "weight_kg" field in the mutation.
func (m *PatientMutation) WeightKg() (r float64, exists bool) {
	v := m.weight_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightKg returns the old "weight_kg" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldWeightKg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightKg: %w", err)
	}
	return oldValue.WeightKg, nil
}

// AddWeightKg adds f to the "weight_kg" field.
func (m *PatientMutation) AddWeightKg(f float64) {
	if m.addweight_kg != nil {
		*m.addweight_kg += f
	} else {
		m.addweight_kg = &f
	}
}

// AddedWeightKg returns the value that was added to the "weight_kg" field in this mutation.
func (m *PatientMutation) AddedWeightKg() (r float64, exists bool) {
	v := m.addweight_kg
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (m *PatientMutation) ClearWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	m.clearedFields[patient.FieldWeightKg] = struct{}{}
}

// WeightKgCleared returns if the "weight_kg" field was cleared in this mutation.
func (m *PatientMutation) WeightKgCleared() bool {
	_, ok := m.clearedFields[patient.FieldWeightKg]
	return ok
}

// ResetWeightKg resets all changes to the "weight_kg" field.
func (m *PatientMutation) ResetWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	delete(m.clearedFields, patient.FieldWeightKg)
}

// SetPreferredContactMethod sets the "preferred_contact_method" field.
func (m *PatientMutation) SetPreferredContactMethod(pcm patient.PreferredContactMethod) {
	m.preferred_contact_method = &pcm
}

// PreferredContactMethod returns the value of the "preferred_contact_method" field in the mutation.
func (m *PatientMutation) PreferredContactMethod() (r patient.PreferredContactMethod, exists bool) {
	v := m.preferred_contact_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredContactMethod returns the old "preferred_contact_method" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPreferredContactMethod(ctx context.Context) (v patient.PreferredContactMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredContactMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredContactMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredContactMethod: %w", err)
	}
	return oldValue.PreferredContactMethod, nil
}

// ResetPreferredContactMethod resets all changes to the "preferred_contact_method" field.
func (m *PatientMutation) ResetPreferredContactMethod() {
	m.preferred_contact_method = nil
}

// SetPreferredLanguage sets the "preferred_language" field.
func (m *PatientMutation) SetPreferredLanguage(s string) {
	m.preferred_language = &s
}

// PreferredLanguage returns the value of the "preferred_language" field in the mutation.
func (m *PatientMutation) PreferredLanguage() (r string, exists bool) {
	v := m.preferred_language
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLanguage returns the old "preferred_language" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPreferredLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLanguage: %w", err)
	}
	return oldValue.PreferredLanguage, nil
}

// ResetPreferredLanguage resets all changes to the "preferred_language" field.
func (m *PatientMutation) ResetPreferredLanguage() {
	m.preferred_language = nil
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (m *PatientMutation) SetInsuranceProvider(s string) {
	m.insurance_provider = &s
}

// InsuranceProvider returns the value of the "insurance_provider" field in the mutation.
func (m *PatientMutation) InsuranceProvider() (r string, exists bool) {
	v := m.insurance_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceProvider returns the old "insurance_provider" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldInsuranceProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceProvider: %w", err)
	}
	return oldValue.InsuranceProvider, nil
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (m *PatientMutation) ClearInsuranceProvider() {
	m.insurance_provider = nil
	m.clearedFields[patient.FieldInsuranceProvider] = struct{}{}
}

// InsuranceProviderCleared returns if the "insurance_provider" field was cleared in this mutation.
func (m *PatientMutation) InsuranceProviderCleared() bool {
	_, ok := m.clearedFields[patient.FieldInsuranceProvider]
	return ok
}

// ResetInsuranceProvider resets all changes to the "insurance_provider" field.
func (m *PatientMutation) ResetInsuranceProvider() {
	m.insurance_provider = nil
	delete(m.clearedFields, patient.FieldInsuranceProvider)
}

// SetInsuranceNumber sets the "insurance_number" field.
func (m *PatientMutation) SetInsuranceNumber(s string) {
	m.insurance_number = &s
}

// InsuranceNumber returns the value of the "insurance_number" field in the mutation.
func (m *PatientMutation) InsuranceNumber() (r string, exists bool) {
	v := m.insurance_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceNumber returns the old "insurance_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldInsuranceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceNumber: %w", err)
	}
	return oldValue.InsuranceNumber, nil
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (m *PatientMutation) ClearInsuranceNumber() {
	m.insurance_number = nil
	m.clearedFields[patient.FieldInsuranceNumber] = struct{}{}
}

// InsuranceNumberCleared returns if the "insurance_number" field was cleared in this mutation.
func (m *PatientMutation) InsuranceNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldInsuranceNumber]
	return ok
}

// ResetInsuranceNumber resets all changes to the "insurance_number" field.
func (m *PatientMutation) ResetInsuranceNumber() {
	m.insurance_number = nil
	delete(m.clearedFields, patient.FieldInsuranceNumber)
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (m *PatientMutation) SetInsuranceValidUntil(t time.Time) {
	m.insurance_valid_until = &t
}

// InsuranceValidUntil returns the value of the "insurance_valid_until" field in the mutation.
func (m *PatientMutation) InsuranceValidUntil() (r time.Time, exists bool) {
	v := m.insurance_valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceValidUntil returns the old "insurance_valid_until" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldInsuranceValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceValidUntil: %w", err)
	}
	return oldValue.InsuranceValidUntil, nil
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (m *PatientMutation) ClearInsuranceValidUntil() {
	m.insurance_valid_until = nil
	m.clearedFields[patient.FieldInsuranceValidUntil] = struct{}{}
}

// InsuranceValidUntilCleared returns if the "insurance_valid_until" field was cleared in this mutation.
func (m *PatientMutation) InsuranceValidUntilCleared() bool {
	_, ok := m.clearedFields[patient.FieldInsuranceValidUntil]
	return ok
}

// ResetInsuranceValidUntil resets all changes to the "insurance_valid_until" field.
func (m *PatientMutation) ResetInsuranceValidUntil() {
	m.insurance_valid_until = nil
	delete(m.clearedFields, patient.FieldInsuranceValidUntil)
}

// SetReferredByID sets the "referred_by_id" field.
func (m *PatientMutation) SetReferredByID(u uuid.UUID) {
	m.referred_by = &u
}

// ReferredByID returns the value of the "referred_by_id" field in the mutation.
func (m *PatientMutation) ReferredByID() (r uuid.UUID, exists bool) {
	v := m.referred_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReferredByID returns the old "referred_by_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldReferredByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferredByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferredByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferredByID: %w", err)
	}
	return oldValue.ReferredByID, nil
}

// ClearReferredByID clears the value of the "referred_by_id" field.
func (m *PatientMutation) ClearReferredByID() {
	m.referred_by = nil
	m.clearedFields[patient.FieldReferredByID] = struct{}{}
}

// ReferredByIDCleared returns if the "referred_by_id" field was cleared in this mutation.
func (m *PatientMutation) ReferredByIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldReferredByID]
	return ok
}

// ResetReferredByID resets all changes to the "referred_by_id" field.
func (m *PatientMutation) ResetReferredByID() {
	m.referred_by = nil
	delete(m.clearedFields, patient.FieldReferredByID)
}

// SetReferralSource sets the "referral_source" field.
func (m *PatientMutation) SetReferralSource(ps patient.ReferralSource) {
	m.referral_source = &ps
}

// ReferralSource returns the value of the "referral_source" field in the mutation.
func (m *PatientMutation) ReferralSource() (r patient.ReferralSource, exists bool) {
	v := m.referral_source
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralSource returns the old "referral_source" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldReferralSource(ctx context.Context) (v *patient.ReferralSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralSource: %w", err)
	}
	return oldValue.ReferralSource, nil
}

// ClearReferralSource clears the value of the "referral_source" field.
func (m *PatientMutation) ClearReferralSource() {
	m.referral_source = nil
	m.clearedFields[patient.FieldReferralSource] = struct{}{}
}

// ReferralSourceCleared returns if the "referral_source" field was cleared in this mutation.
func (m *PatientMutation) ReferralSourceCleared() bool {
	_, ok := m.clearedFields[patient.FieldReferralSource]
	return ok
}

// ResetReferralSource resets all changes to the "referral_source" field.
func (m *PatientMutation) ResetReferralSource() {
	m.referral_source = nil
	delete(m.clearedFields, patient.FieldReferralSource)
}

// SetIsActive sets the "is_active" field.
func (m *PatientMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PatientMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PatientMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearReferredBy clears the "referred_by" edge to the Patient entity.
func (m *PatientMutation) ClearReferredBy() {
	m.clearedreferred_by = true
	m.clearedFields[patient.FieldReferredByID] = struct{}{}
}

// ReferredByCleared reports if the "referred_by" edge to the Patient entity was cleared.
func (m *PatientMutation) ReferredByCleared() bool {
	return m.ReferredByIDCleared() || m.clearedreferred_by
}

// ReferredByIDs returns the "referred_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReferredByID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) ReferredByIDs() (ids []uuid.UUID) {
	if id := m.referred_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReferredBy resets all changes to the "referred_by" edge.
func (m *PatientMutation) ResetReferredBy() {
	m.referred_by = nil
	m.clearedreferred_by = false
}

// AddReferralIDs adds the "referrals" edge to the Patient entity by ids.
func (m *PatientMutation) AddReferralIDs(ids ...uuid.UUID) {
	if m.referrals == nil {
		m.referrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.referrals[ids[i]] = struct{}{}
	}
}

// ClearReferrals clears the "referrals" edge to the Patient entity.
func (m *PatientMutation) ClearReferrals() {
	m.clearedreferrals = true
}

// ReferralsCleared reports if the "referrals" edge to the Patient entity was cleared.
func (m *PatientMutation) ReferralsCleared() bool {
	return m.clearedreferrals
}

// RemoveReferralIDs removes the "referrals" edge to the Patient entity by IDs.
func (m *PatientMutation) RemoveReferralIDs(ids ...uuid.UUID) {
	if m.removedreferrals == nil {
		m.removedreferrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.referrals, ids[i])
		m.removedreferrals[ids[i]] = struct{}{}
	}
}

// RemovedReferrals returns the removed IDs of the "referrals" edge to the Patient entity.
func (m *PatientMutation) RemovedReferralsIDs() (ids []uuid.UUID) {
	for id := range m.removedreferrals {
		ids = append(ids, id)
	}
	return
}

// ReferralsIDs returns the "referrals" edge IDs in the mutation.
func (m *PatientMutation) ReferralsIDs() (ids []uuid.UUID) {
	for id := range m.referrals {
		ids = append(ids, id)
	}
	return
}

// ResetReferrals resets all changes to the "referrals" edge.
func (m *PatientMutation) ResetReferrals() {
	m.referrals = nil
	m.clearedreferrals = false
	m.removedreferrals = nil
}

// AddMedicalHistoryIDs adds the "medical_history" edge to the MedicalHistory entity by ids.
func (m *PatientMutation) AddMedicalHistoryIDs(ids ...uuid.UUID) {
	if m.medical_history == nil {
		m.medical_history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.medical_history[ids[i]] = struct{}{}
	}
}

// ClearMedicalHistory clears the "medical_history" edge to the MedicalHistory entity.
func (m *PatientMutation) ClearMedicalHistory() {
	m.clearedmedical_history = true
}

// MedicalHistoryCleared reports if the "medical_history" edge to the MedicalHistory entity was cleared.
func (m *PatientMutation) MedicalHistoryCleared() bool {
	return m.clearedmedical_history
}

// RemoveMedicalHistoryIDs removes the "medical_history" edge to the MedicalHistory entity by IDs.
func (m *PatientMutation) RemoveMedicalHistoryIDs(ids ...uuid.UUID) {
	if m.removedmedical_history == nil {
		m.removedmedical_history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.medical_history, ids[i])
		m.removedmedical_history[ids[i]] = struct{}{}
	}
}

// RemovedMedicalHistory returns the removed IDs of the "medical_history" edge to the MedicalHistory entity.
func (m *PatientMutation) RemovedMedicalHistoryIDs() (ids []uuid.UUID) {
	for id := range m.removedmedical_history {
		ids = append(ids, id)
	}
	return
}

// MedicalHistoryIDs returns the "medical_history" edge IDs in the mutation.
func (m *PatientMutation) MedicalHistoryIDs() (ids []uuid.UUID) {
	for id := range m.medical_history {
		ids = append(ids, id)
	}
	return
}

// ResetMedicalHistory resets all changes to the "medical_history" edge.
func (m *PatientMutation) ResetMedicalHistory() {
	m.medical_history = nil
	m.clearedmedical_history = false
	m.removedmedical_history = nil
}

// AddDocumentIDs adds the "documents" edge to the PatientDocument entity by ids.
func (m *PatientMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the PatientDocument entity.
func (m *PatientMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the PatientDocument entity was cleared.
func (m *PatientMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the PatientDocument entity by IDs.
func (m *PatientMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the PatientDocument entity.
func (m *PatientMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *PatientMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *PatientMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.patient_id != nil {
		fields = append(fields, patient.FieldPatientID)
	}
	if m.middle_name != nil {
		fields = append(fields, patient.FieldMiddleName)
	}
	if m.preferred_name != nil {
		fields = append(fields, patient.FieldPreferredName)
	}
	if m.occupation != nil {
		fields = append(fields, patient.FieldOccupation)
	}
	if m.blood_type != nil {
		fields = append(fields, patient.FieldBloodType)
	}
	if m.skin_type != nil {
		fields = append(fields, patient.FieldSkinType)
	}
	if m.height_cm != nil {
		fields = append(fields, patient.FieldHeightCm)
	}
	if m.weight_kg != nil {
		fields = append(fields, patient.FieldWeightKg)
	}
	if m.preferred_contact_method != nil {
		fields = append(fields, patient.FieldPreferredContactMethod)
	}
	if m.preferred_language != nil {
		fields = append(fields, patient.FieldPreferredLanguage)
	}
	if m.insurance_provider != nil {
		fields = append(fields, patient.FieldInsuranceProvider)
	}
	if m.insurance_number != nil {
		fields = append(fields, patient.FieldInsuranceNumber)
	}
	if m.insurance_valid_until != nil {
		fields = append(fields, patient.FieldInsuranceValidUntil)
	}
	if m.referred_by != nil {
		fields = append(fields, patient.FieldReferredByID)
	}
	if m.referral_source != nil {
		fields = append(fields, patient.FieldReferralSource)
	}
	if m.is_active != nil {
		fields = append(fields, patient.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldPatientID:
		return m.PatientID()
	case patient.FieldMiddleName:
		return m.MiddleName()
	case patient.FieldPreferredName:
		return m.PreferredName()
	case patient.FieldOccupation:
		return m.Occupation()
	case patient.FieldBloodType:
		return m.BloodType()
	case patient.FieldSkinType:
		return m.SkinType()
	case patient.FieldHeightCm:
		return m.HeightCm()
	case patient.FieldWeightKg:
		return m.WeightKg()
	case patient.FieldPreferredContactMethod:
		return m.PreferredContactMethod()
	case patient.FieldPreferredLanguage:
		return m.PreferredLanguage()
	case patient.FieldInsuranceProvider:
		return m.InsuranceProvider()
	case patient.FieldInsuranceNumber:
		return m.InsuranceNumber()
	case patient.FieldInsuranceValidUntil:
		return m.InsuranceValidUntil()
	case patient.FieldReferredByID:
		return m.ReferredByID()
	case patient.FieldReferralSource:
		return m.ReferralSource()
	case patient.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldPatientID:
		return m.OldPatientID(ctx)
	case patient.FieldMiddleName:
		return m.OldMiddleName(ctx)
	case patient.FieldPreferredName:
		return m.OldPreferredName(ctx)
	case patient.FieldOccupation:
		return m.OldOccupation(ctx)
	case patient.FieldBloodType:
		return m.OldBloodType(ctx)
	case patient.FieldSkinType:
		return m.OldSkinType(ctx)
	case patient.FieldHeightCm:
		return m.OldHeightCm(ctx)
	case patient.FieldWeightKg:
		return m.OldWeightKg(ctx)
	case patient.FieldPreferredContactMethod:
		return m.OldPreferredContactMethod(ctx)
	case patient.FieldPreferredLanguage:
		return m.OldPreferredLanguage(ctx)
	case patient.FieldInsuranceProvider:
		return m.OldInsuranceProvider(ctx)
	case patient.FieldInsuranceNumber:
		return m.OldInsuranceNumber(ctx)
	case patient.FieldInsuranceValidUntil:
		return m.OldInsuranceValidUntil(ctx)
	case patient.FieldReferredByID:
		return m.OldReferredByID(ctx)
	case patient.FieldReferralSource:
		return m.OldReferralSource(ctx)
	case patient.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patient.FieldMiddleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMiddleName(v)
		return nil
	case patient.FieldPreferredName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredName(v)
		return nil
	case patient.FieldOccupation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccupation(v)
		return nil
	case patient.FieldBloodType:
		v, ok := value.(patient.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case patient.FieldSkinType:
		v, ok := value.(patient.SkinType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkinType(v)
		return nil
	case patient.FieldHeightCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeightCm(v)
		return nil
	case patient.FieldWeightKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightKg(v)
		return nil
	case patient.FieldPreferredContactMethod:
		v, ok := value.(patient.PreferredContactMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredContactMethod(v)
		return nil
	case patient.FieldPreferredLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLanguage(v)
		return nil
	case patient.FieldInsuranceProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceProvider(v)
		return nil
	case patient.FieldInsuranceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceNumber(v)
		return nil
	case patient.FieldInsuranceValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceValidUntil(v)
		return nil
	case patient.FieldReferredByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferredByID(v)
		return nil
	case patient.FieldReferralSource:
		v, ok := value.(patient.ReferralSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralSource(v)
		return nil
	case patient.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addheight_cm != nil {
		fields = append(fields, patient.FieldHeightCm)
	}
	if m.addweight_kg != nil {
		fields = append(fields, patient.FieldWeightKg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldHeightCm:
		return m.AddedHeightCm()
	case patient.FieldWeightKg:
		return m.AddedWeightKg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldHeightCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeightCm(v)
		return nil
	case patient.FieldWeightKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightKg(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldMiddleName) {
		fields = append(fields, patient.FieldMiddleName)
	}
	if m.FieldCleared(patient.FieldPreferredName) {
		fields = append(fields, patient.FieldPreferredName)
	}
	if m.FieldCleared(patient.FieldOccupation) {
		fields = append(fields, patient.FieldOccupation)
	}
	if m.FieldCleared(patient.FieldSkinType) {
		fields = append(fields, patient.FieldSkinType)
	}
	if m.FieldCleared(patient.FieldHeightCm) {
		fields = append(fields, patient.FieldHeightCm)
	}
	if m.FieldCleared(patient.FieldWeightKg) {
		fields = append(fields, patient.FieldWeightKg)
	}
	if m.FieldCleared(patient.FieldInsuranceProvider) {
		fields = append(fields, patient.FieldInsuranceProvider)
	}
	if m.FieldCleared(patient.FieldInsuranceNumber) {
		fields = append(fields, patient.FieldInsuranceNumber)
	}
	if m.FieldCleared(patient.FieldInsuranceValidUntil) {
		fields = append(fields, patient.FieldInsuranceValidUntil)
	}
	if m.FieldCleared(patient.FieldReferredByID) {
		fields = append(fields, patient.FieldReferredByID)
	}
	if m.FieldCleared(patient.FieldReferralSource) {
		fields = append(fields, patient.FieldReferralSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldMiddleName:
		m.ClearMiddleName()
		return nil
	case patient.FieldPreferredName:
		m.ClearPreferredName()
		return nil
	case patient.FieldOccupation:
		m.ClearOccupation()
		return nil
	case patient.FieldSkinType:
		m.ClearSkinType()
		return nil
	case patient.FieldHeightCm:
		m.ClearHeightCm()
		return nil
	case patient.FieldWeightKg:
		m.ClearWeightKg()
		return nil
	case patient.FieldInsuranceProvider:
		m.ClearInsuranceProvider()
		return nil
	case patient.FieldInsuranceNumber:
		m.ClearInsuranceNumber()
		return nil
	case patient.FieldInsuranceValidUntil:
		m.ClearInsuranceValidUntil()
		return nil
	case patient.FieldReferredByID:
		m.ClearReferredByID()
		return nil
	case patient.FieldReferralSource:
		m.ClearReferralSource()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patient.FieldMiddleName:
		m.ResetMiddleName()
		return nil
	case patient.FieldPreferredName:
		m.ResetPreferredName()
		return nil
	case patient.FieldOccupation:
		m.ResetOccupation()
		return nil
	case patient.FieldBloodType:
		m.ResetBloodType()
		return nil
	case patient.FieldSkinType:
		m.ResetSkinType()
		return nil
	case patient.FieldHeightCm:
		m.ResetHeightCm()
		return nil
	case patient.FieldWeightKg:
		m.ResetWeightKg()
		return nil
	case patient.FieldPreferredContactMethod:
		m.ResetPreferredContactMethod()
		return nil
	case patient.FieldPreferredLanguage:
		m.ResetPreferredLanguage()
		return nil
	case patient.FieldInsuranceProvider:
		m.ResetInsuranceProvider()
		return nil
	case patient.FieldInsuranceNumber:
		m.ResetInsuranceNumber()
		return nil
	case patient.FieldInsuranceValidUntil:
		m.ResetInsuranceValidUntil()
		return nil
	case patient.FieldReferredByID:
		m.ResetReferredByID()
		return nil
	case patient.FieldReferralSource:
		m.ResetReferralSource()
		return nil
	case patient.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.referred_by != nil {
		edges = append(edges, patient.EdgeReferredBy)
	}
	if m.referrals != nil {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.medical_history != nil {
		edges = append(edges, patient.EdgeMedicalHistory)
	}
	if m.documents != nil {
		edges = append(edges, patient.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeReferredBy:
		if id := m.referred_by; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.referrals))
		for id := range m.referrals {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMedicalHistory:
		ids := make([]ent.Value, 0, len(m.medical_history))
		for id := range m.medical_history {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedreferrals != nil {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.removedmedical_history != nil {
		edges = append(edges, patient.EdgeMedicalHistory)
	}
	if m.removeddocuments != nil {
		edges = append(edges, patient.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.removedreferrals))
		for id := range m.removedreferrals {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMedicalHistory:
		ids := make([]ent.Value, 0, len(m.removedmedical_history))
		for id := range m.removedmedical_history {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedreferred_by {
		edges = append(edges, patient.EdgeReferredBy)
	}
	if m.clearedreferrals {
		edges = append(edges, patient.EdgeReferrals)
	}
	if m.clearedmedical_history {
		edges = append(edges, patient.EdgeMedicalHistory)
	}
	if m.cleareddocuments {
		edges = append(edges, patient.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeReferredBy:
		return m.clearedreferred_by
	case patient.EdgeReferrals:
		return m.clearedreferrals
	case patient.EdgeMedicalHistory:
		return m.clearedmedical_history
	case patient.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	case patient.EdgeReferredBy:
		m.ClearReferredBy()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeReferredBy:
		m.ResetReferredBy()
		return nil
	case patient.EdgeReferrals:
		m.ResetReferrals()
		return nil
	case patient.EdgeMedicalHistory:
		m.ResetMedicalHistory()
		return nil
	case patient.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PatientDocumentMutation represents an operation that mutates the PatientDocument nodes in the graph.
type PatientDocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	document_type      *patientdocument.DocumentType
	title              *string
	file_key           *string
	description        *string
	is_sensitive       *bool
	expiry_date        *time.Time
	clearedFields      map[string]struct{}
	patient            *uuid.UUID
	clearedpatient     bool
	uploaded_by        *uuid.UUID
	cleareduploaded_by bool
	done               bool
	oldValue           func(context.Context) (*PatientDocument, error)
	predicates         []predicate.PatientDocument
}

var _ ent.Mutation = (*PatientDocumentMutation)(nil)

// patientdocumentOption allows management of the mutation configuration using functional options.
type patientdocumentOption func(*PatientDocumentMutation)

// newPatientDocumentMutation creates new mutation for the PatientDocument entity.
func newPatientDocumentMutation(c config, op Op, opts ...patientdocumentOption) *PatientDocumentMutation {
	m := &PatientDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypePatientDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientDocumentID sets the ID field of the mutation.
func withPatientDocumentID(id uuid.UUID) patientdocumentOption {
	return func(m *PatientDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientDocument
		)
		m.oldValue = func(ctx context.Context) (*PatientDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientDocument sets the old PatientDocument of the mutation.
func withPatientDocument(node *PatientDocument) patientdocumentOption {
	return func(m *PatientDocumentMutation) {
		m.oldValue = func(context.Context) (*PatientDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientDocument entities.
func (m *PatientDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PatientDocumentMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientDocumentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientDocumentMutation) ResetPatientID() {
	m.patient = nil
}

// SetDocumentType sets the "document_type" field.
func (m *PatientDocumentMutation) SetDocumentType(pt patientdocument.DocumentType) {
	m.document_type = &pt
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *PatientDocumentMutation) DocumentType() (r patientdocument.DocumentType, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldDocumentType(ctx context.Context) (v patientdocument.DocumentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *PatientDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetTitle sets the "title" field.
func (m *PatientDocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PatientDocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PatientDocumentMutation) ResetTitle() {
	m.title = nil
}

// SetFileKey sets the "file_key" field.
func (m *PatientDocumentMutation) SetFileKey(s string) {
	m.file_key = &s
}

// FileKey returns the value of the "file_key" field in the mutation.
func (m *PatientDocumentMutation) FileKey() (r string, exists bool) {
	v := m.file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKey returns the old "file_key" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldFileKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKey: %w", err)
	}
	return oldValue.FileKey, nil
}

// ResetFileKey resets all changes to the "file_key" field.
func (m *PatientDocumentMutation) ResetFileKey() {
	m.file_key = nil
}

// SetDescription sets the "description" field.
func (m *PatientDocumentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PatientDocumentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PatientDocumentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[patientdocument.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PatientDocumentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[patientdocument.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PatientDocumentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, patientdocument.FieldDescription)
}

// SetUploadedByID sets the "uploaded_by_id" field.
func (m *PatientDocumentMutation) SetUploadedByID(u uuid.UUID) {
	m.uploaded_by = &u
}

// UploadedByID returns the value of the "uploaded_by_id" field in the mutation.
func (m *PatientDocumentMutation) UploadedByID() (r uuid.UUID, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedByID returns the old "uploaded_by_id" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldUploadedByID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedByID: %w", err)
	}
	return oldValue.UploadedByID, nil
}

// ResetUploadedByID resets all changes to the "uploaded_by_id" field.
func (m *PatientDocumentMutation) ResetUploadedByID() {
	m.uploaded_by = nil
}

// SetIsSensitive sets the "is_sensitive" field.
func (m *PatientDocumentMutation) SetIsSensitive(b bool) {
	m.is_sensitive = &b
}

// IsSensitive returns the value of the "is_sensitive" field in the mutation.
func (m *PatientDocumentMutation) IsSensitive() (r bool, exists bool) {
	v := m.is_sensitive
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSensitive returns the old "is_sensitive" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldIsSensitive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSensitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSensitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSensitive: %w", err)
	}
	return oldValue.IsSensitive, nil
}

// ResetIsSensitive resets all changes to the "is_sensitive" field.
func (m *PatientDocumentMutation) ResetIsSensitive() {
	m.is_sensitive = nil
}

// SetExpiryDate sets the "expiry_date" field.
func (m *PatientDocumentMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *PatientDocumentMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the PatientDocument entity.
// If the PatientDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientDocumentMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *PatientDocumentMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[patientdocument.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *PatientDocumentMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[patientdocument.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *PatientDocumentMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, patientdocument.FieldExpiryDate)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PatientDocumentMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[patientdocument.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PatientDocumentMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PatientDocumentMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PatientDocumentMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearUploadedBy clears the "uploaded_by" edge to the User entity.
func (m *PatientDocumentMutation) ClearUploadedBy() {
	m.cleareduploaded_by = true
	m.clearedFields[patientdocument.FieldUploadedByID] = struct{}{}
}

// UploadedByCleared reports if the "uploaded_by" edge to the User entity was cleared.
func (m *PatientDocumentMutation) UploadedByCleared() bool {
	return m.cleareduploaded_by
}

// UploadedByIDs returns the "uploaded_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploadedByID instead. It exists only for internal usage by the builders.
func (m *PatientDocumentMutation) UploadedByIDs() (ids []uuid.UUID) {
	if id := m.uploaded_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUploadedBy resets all changes to the "uploaded_by" edge.
func (m *PatientDocumentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
	m.cleareduploaded_by = false
}

// Where appends a list predicates to the PatientDocumentMutation builder.
func (m *PatientDocumentMutation) Where(ps ...predicate.PatientDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientDocument).
func (m *PatientDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientDocumentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, patientdocument.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, patientdocument.FieldPatientID)
	}
	if m.document_type != nil {
		fields = append(fields, patientdocument.FieldDocumentType)
	}
	if m.title != nil {
		fields = append(fields, patientdocument.FieldTitle)
	}
	if m.file_key != nil {
		fields = append(fields, patientdocument.FieldFileKey)
	}
	if m.description != nil {
		fields = append(fields, patientdocument.FieldDescription)
	}
	if m.uploaded_by != nil {
		fields = append(fields, patientdocument.FieldUploadedByID)
	}
	if m.is_sensitive != nil {
		fields = append(fields, patientdocument.FieldIsSensitive)
	}
	if m.expiry_date != nil {
		fields = append(fields, patientdocument.FieldExpiryDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientdocument.FieldCreatedAt:
		return m.CreatedAt()
	case patientdocument.FieldPatientID:
		return m.PatientID()
	case patientdocument.FieldDocumentType:
		return m.DocumentType()
	case patientdocument.FieldTitle:
		return m.Title()
	case patientdocument.FieldFileKey:
		return m.FileKey()
	case patientdocument.FieldDescription:
		return m.Description()
	case patientdocument.FieldUploadedByID:
		return m.UploadedByID()
	case patientdocument.FieldIsSensitive:
		return m.IsSensitive()
	case patientdocument.FieldExpiryDate:
		return m.ExpiryDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientdocument.FieldPatientID:
		return m.OldPatientID(ctx)
	case patientdocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case patientdocument.FieldTitle:
		return m.OldTitle(ctx)
	case patientdocument.FieldFileKey:
		return m.OldFileKey(ctx)
	case patientdocument.FieldDescription:
		return m.OldDescription(ctx)
	case patientdocument.FieldUploadedByID:
		return m.OldUploadedByID(ctx)
	case patientdocument.FieldIsSensitive:
		return m.OldIsSensitive(ctx)
	case patientdocument.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	}
	return nil, fmt.Errorf("unknown PatientDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientdocument.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patientdocument.FieldDocumentType:
		v, ok := value.(patientdocument.DocumentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case patientdocument.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case patientdocument.FieldFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKey(v)
		return nil
	case patientdocument.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case patientdocument.FieldUploadedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedByID(v)
		return nil
	case patientdocument.FieldIsSensitive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSensitive(v)
		return nil
	case patientdocument.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	}
	return fmt.Errorf("unknown PatientDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatientDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientdocument.FieldDescription) {
		fields = append(fields, patientdocument.FieldDescription)
	}
	if m.FieldCleared(patientdocument.FieldExpiryDate) {
		fields = append(fields, patientdocument.FieldExpiryDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientDocumentMutation) ClearField(name string) error {
	switch name {
	case patientdocument.FieldDescription:
		m.ClearDescription()
		return nil
	case patientdocument.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientDocumentMutation) ResetField(name string) error {
	switch name {
	case patientdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientdocument.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patientdocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case patientdocument.FieldTitle:
		m.ResetTitle()
		return nil
	case patientdocument.FieldFileKey:
		m.ResetFileKey()
		return nil
	case patientdocument.FieldDescription:
		m.ResetDescription()
		return nil
	case patientdocument.FieldUploadedByID:
		m.ResetUploadedByID()
		return nil
	case patientdocument.FieldIsSensitive:
		m.ResetIsSensitive()
		return nil
	case patientdocument.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, patientdocument.EdgePatient)
	}
	if m.uploaded_by != nil {
		edges = append(edges, patientdocument.EdgeUploadedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientdocument.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case patientdocument.EdgeUploadedBy:
		if id := m.uploaded_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, patientdocument.EdgePatient)
	}
	if m.cleareduploaded_by {
		edges = append(edges, patientdocument.EdgeUploadedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case patientdocument.EdgePatient:
		return m.clearedpatient
	case patientdocument.EdgeUploadedBy:
		return m.cleareduploaded_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientDocumentMutation) ClearEdge(name string) error {
	switch name {
	case patientdocument.EdgePatient:
		m.ClearPatient()
		return nil
	case patientdocument.EdgeUploadedBy:
		m.ClearUploadedBy()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientDocumentMutation) ResetEdge(name string) error {
	switch name {
	case patientdocument.EdgePatient:
		m.ResetPatient()
		return nil
	case patientdocument.EdgeUploadedBy:
		m.ResetUploadedBy()
		return nil
	}
	return fmt.Errorf("unknown PatientDocument edge %s", name)
}

// SMSTemplateMutation represents an operation that mutates the SMSTemplate nodes in the graph.
type SMSTemplateMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	name           *string
	template_type  *smstemplate.TemplateType
	body           *string
	is_active      *bool
	variables_help *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SMSTemplate, error)
	predicates     []predicate.SMSTemplate
}

var _ ent.Mutation = (*SMSTemplateMutation)(nil)

// smstemplateOption allows management of the mutation configuration using functional options.
type smstemplateOption func(*SMSTemplateMutation)

// newSMSTemplateMutation creates new mutation for the SMSTemplate entity.
func newSMSTemplateMutation(c config, op Op, opts ...smstemplateOption) *SMSTemplateMutation {
	m := &SMSTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeSMSTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSMSTemplateID sets the ID field of the mutation.
func withSMSTemplateID(id uuid.UUID) smstemplateOption {
	return func(m *SMSTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *SMSTemplate
		)
		m.oldValue = func(ctx context.Context) (*SMSTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SMSTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSMSTemplate sets the old SMSTemplate of the mutation.
func withSMSTemplate(node *SMSTemplate) smstemplateOption {
	return func(m *SMSTemplateMutation) {
		m.oldValue = func(context.Context) (*SMSTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SMSTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SMSTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SMSTemplate entities.
func (m *SMSTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SMSTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SMSTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SMSTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SMSTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SMSTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SMSTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SMSTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SMSTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SMSTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SMSTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SMSTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SMSTemplateMutation) ResetName() {
	m.name = nil
}

// SetTemplateType sets the "template_type" field.
func (m *SMSTemplateMutation) SetTemplateType(st smstemplate.TemplateType) {
	m.template_type = &st
}

// TemplateType returns the value of the "template_type" field in the mutation.
func (m *SMSTemplateMutation) TemplateType() (r smstemplate.TemplateType, exists bool) {
	v := m.template_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateType returns the old "template_type" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldTemplateType(ctx context.Context) (v smstemplate.TemplateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateType: %w", err)
	}
	return oldValue.TemplateType, nil
}

// ResetTemplateType resets all changes to the "template_type" field.
func (m *SMSTemplateMutation) ResetTemplateType() {
	m.template_type = nil
}

// SetBody sets the "body" field.
func (m *SMSTemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *SMSTemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *SMSTemplateMutation) ResetBody() {
	m.body = nil
}

// SetIsActive sets the "is_active" field.
func (m *SMSTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SMSTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SMSTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetVariablesHelp sets the "variables_help" field.
func (m *SMSTemplateMutation) SetVariablesHelp(s string) {
	m.variables_help = &s
}

// VariablesHelp returns the value of the "variables_help" field in the mutation.
func (m *SMSTemplateMutation) VariablesHelp() (r string, exists bool) {
	v := m.variables_help
	if v == nil {
		return
	}
	return *v, true
}

// OldVariablesHelp returns the old "variables_help" field's value of the SMSTemplate entity.
// If the SMSTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSTemplateMutation) OldVariablesHelp(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariablesHelp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariablesHelp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariablesHelp: %w", err)
	}
	return oldValue.VariablesHelp, nil
}

// ClearVariablesHelp clears the value of the "variables_help" field.
func (m *SMSTemplateMutation) ClearVariablesHelp() {
	m.variables_help = nil
	m.clearedFields[smstemplate.FieldVariablesHelp] = struct{}{}
}

// VariablesHelpCleared returns if the "variables_help" field was cleared in this mutation.
func (m *SMSTemplateMutation) VariablesHelpCleared() bool {
	_, ok := m.clearedFields[smstemplate.FieldVariablesHelp]
	return ok
}

// ResetVariablesHelp resets all changes to the "variables_help" field.
func (m *SMSTemplateMutation) ResetVariablesHelp() {
	m.variables_help = nil
	delete(m.clearedFields, smstemplate.FieldVariablesHelp)
}

// Where appends a list predicates to the SMSTemplateMutation builder.
func (m *SMSTemplateMutation) Where(ps ...predicate.SMSTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SMSTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SMSTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SMSTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SMSTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SMSTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SMSTemplate).
func (m *SMSTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SMSTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, smstemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, smstemplate.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, smstemplate.FieldName)
	}
	if m.template_type != nil {
		fields = append(fields, smstemplate.FieldTemplateType)
	}
	if m.body != nil {
		fields = append(fields, smstemplate.FieldBody)
	}
	if m.is_active != nil {
		fields = append(fields, smstemplate.FieldIsActive)
	}
	if m.variables_help != nil {
		fields = append(fields, smstemplate.FieldVariablesHelp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SMSTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case smstemplate.FieldCreatedAt:
		return m.CreatedAt()
	case smstemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	case smstemplate.FieldName:
		return m.Name()
	case smstemplate.FieldTemplateType:
		return m.TemplateType()
	case smstemplate.FieldBody:
		return m.Body()
	case smstemplate.FieldIsActive:
		return m.IsActive()
	case smstemplate.FieldVariablesHelp:
		return m.VariablesHelp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SMSTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case smstemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case smstemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case smstemplate.FieldName:
		return m.OldName(ctx)
	case smstemplate.FieldTemplateType:
		return m.OldTemplateType(ctx)
	case smstemplate.FieldBody:
		return m.OldBody(ctx)
	case smstemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case smstemplate.FieldVariablesHelp:
		return m.OldVariablesHelp(ctx)
	}
	return nil, fmt.Errorf("unknown SMSTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SMSTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case smstemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case smstemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case smstemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case smstemplate.FieldTemplateType:
		v, ok := value.(smstemplate.TemplateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateType(v)
		return nil
	case smstemplate.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case smstemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case smstemplate.FieldVariablesHelp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariablesHelp(v)
		return nil
	}
	return fmt.Errorf("unknown SMSTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SMSTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SMSTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SMSTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SMSTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SMSTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(smstemplate.FieldVariablesHelp) {
		fields = append(fields, smstemplate.FieldVariablesHelp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SMSTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SMSTemplateMutation) ClearField(name string) error {
	switch name {
	case smstemplate.FieldVariablesHelp:
		m.ClearVariablesHelp()
		return nil
	}
	return fmt.Errorf("unknown SMSTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SMSTemplateMutation) ResetField(name string) error {
	switch name {
	case smstemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case smstemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case smstemplate.FieldName:
		m.ResetName()
		return nil
	case smstemplate.FieldTemplateType:
		m.ResetTemplateType()
		return nil
	case smstemplate.FieldBody:
		m.ResetBody()
		return nil
	case smstemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case smstemplate.FieldVariablesHelp:
		m.ResetVariablesHelp()
		return nil
	}
	return fmt.Errorf("unknown SMSTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SMSTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SMSTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SMSTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SMSTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SMSTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SMSTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SMSTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SMSTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SMSTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SMSTemplate edge %s", name)
}

// ServiceMutation represents an operation that mutates the Service nodes in the graph.
type ServiceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	name                     *string
	slug                     *string
	short_description        *string
	detailed_description     *string
	price                    *int64
	addprice                 *int64
	duration_min             *int
	addduration_min          *int
	preparation_instructions *string
	post_treatment_care      *string
	contraindications        *string
	is_consultation_required *bool
	requires_referral        *bool
	min_age                  *int
	addmin_age               *int
	max_age                  *int
	addmax_age               *int
	is_active                *bool
	is_featured              *bool
	available_online         *bool
	meta_description         *string
	image_key                *string
	clearedFields            map[string]struct{}
	category                 *uuid.UUID
	clearedcategory          bool
	packages                 map[uuid.UUID]struct{}
	removedpackages          map[uuid.UUID]struct{}
	clearedpackages          bool
	done                     bool
	oldValue                 func(context.Context) (*Service, error)
	predicates               []predicate.Service
}

var _ ent.Mutation = (*ServiceMutation)(nil)

// serviceOption allows management of the mutation configuration using functional options.
type serviceOption func(*ServiceMutation)

// newServiceMutation creates new mutation for the Service entity.
func newServiceMutation(c config, op Op, opts ...serviceOption) *ServiceMutation {
	m := &ServiceMutation{
		config:        c,
		op:            op,
		typ:           TypeService,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceID sets the ID field of the mutation.
func withServiceID(id uuid.UUID) serviceOption {
	return func(m *ServiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Service
		)
		m.oldValue = func(ctx context.Context) (*Service, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Service.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withService sets the old Service of the mutation.
func withService(node *Service) serviceOption {
	return func(m *ServiceMutation) {
		m.oldValue = func(context.Context) (*Service, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Service entities.
func (m *ServiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Service.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ServiceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServiceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServiceMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ServiceMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ServiceMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ServiceMutation) ResetSlug() {
	m.slug = nil
}

// SetCategoryID sets the "category_id" field.
func (m *ServiceMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *ServiceMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *ServiceMutation) ResetCategoryID() {
	m.category = nil
}

// SetShortDescription sets the "short_description" field.
func (m *ServiceMutation) SetShortDescription(s string) {
	m.short_description = &s
}

// ShortDescription returns the value of the "short_description" field in the mutation.
func (m *ServiceMutation) ShortDescription() (r string, exists bool) {
	v := m.short_description
	if v == nil {
		return
	}
	return *v, true
}

// OldShortDescription returns the old "short_description" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldShortDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortDescription: %w", err)
	}
	return oldValue.ShortDescription, nil
}

// ResetShortDescription resets all changes to the "short_description" field.
func (m *ServiceMutation) ResetShortDescription() {
	m.short_description = nil
}

// SetDetailedDescription sets the "detailed_description" field.
func (m *ServiceMutation) SetDetailedDescription(s string) {
	m.detailed_description = &s
}

// DetailedDescription returns the value of the "detailed_description" field in the mutation.
func (m *ServiceMutation) DetailedDescription() (r string, exists bool) {
	v := m.detailed_description
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailedDescription returns the old "detailed_description" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldDetailedDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailedDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailedDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailedDescription: %w", err)
	}
	return oldValue.DetailedDescription, nil
}

// ResetDetailedDescription resets all changes to the "detailed_description" field.
func (m *ServiceMutation) ResetDetailedDescription() {
	m.detailed_description = nil
}

// SetPrice sets the "price" field.
func (m *ServiceMutation) SetPrice(i int64) {
	m.price = &i
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ServiceMutation) Price() (r int64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds i to the "price" field.
func (m *ServiceMutation) AddPrice(i int64) {
	if m.addprice != nil {
		*m.addprice += i
	} else {
		m.addprice = &i
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ServiceMutation) AddedPrice() (r int64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ServiceMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetDurationMin sets the "duration_min" field.
func (m *ServiceMutation) SetDurationMin(i int) {
	m.duration_min = &i
	m.addduration_min = nil
}

// DurationMin returns the value of the "duration_min" field in the mutation.
func (m *ServiceMutation) DurationMin() (r int, exists bool) {
	v := m.duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMin returns the old "duration_min" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMin: %w", err)
	}
	return oldValue.DurationMin, nil
}

// AddDurationMin adds i to the "duration_min" field.
func (m *ServiceMutation) AddDurationMin(i int) {
	if m.addduration_min != nil {
		*m.addduration_min += i
	} else {
		m.addduration_min = &i
	}
}

// AddedDurationMin returns the value that was added to the "duration_min" field in this mutation.
func (m *ServiceMutation) AddedDurationMin() (r int, exists bool) {
	v := m.addduration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMin resets all changes to the "duration_min" field.
func (m *ServiceMutation) ResetDurationMin() {
	m.duration_min = nil
	m.addduration_min = nil
}

// SetPreparationInstructions sets the "preparation_instructions" field.
func (m *ServiceMutation) SetPreparationInstructions(s string) {
	m.preparation_instructions = &s
}

// PreparationInstructions returns the value of the "preparation_instructions" field in the mutation.
func (m *ServiceMutation) PreparationInstructions() (r string, exists bool) {
	v := m.preparation_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldPreparationInstructions returns the old "preparation_instructions" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldPreparationInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreparationInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreparationInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreparationInstructions: %w", err)
	}
	return oldValue.PreparationInstructions, nil
}

// ClearPreparationInstructions clears the value of the "preparation_instructions" field.
func (m *ServiceMutation) ClearPreparationInstructions() {
	m.preparation_instructions = nil
	m.clearedFields[service.FieldPreparationInstructions] = struct{}{}
}

// PreparationInstructionsCleared returns if the "preparation_instructions" field was cleared in this mutation.
func (m *ServiceMutation) PreparationInstructionsCleared() bool {
	_, ok := m.clearedFields[service.FieldPreparationInstructions]
	return ok
}

// ResetPreparationInstructions resets all changes to the "preparation_instructions" field.
func (m *ServiceMutation) ResetPreparationInstructions() {
	m.preparation_instructions = nil
	delete(m.clearedFields, service.FieldPreparationInstructions)
}

// SetPostTreatmentCare sets the "post_treatment_care" field.
func (m *ServiceMutation) SetPostTreatmentCare(s string) {
	m.post_treatment_care = &s
}

// PostTreatmentCare returns the value of the "post_treatment_care" field in the mutation.
func (m *ServiceMutation) PostTreatmentCare() (r string, exists bool) {
	v := m.post_treatment_care
	if v == nil {
		return
	}
	return *v, true
}

// OldPostTreatmentCare returns the old "post_treatment_care" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldPostTreatmentCare(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostTreatmentCare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostTreatmentCare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostTreatmentCare: %w", err)
	}
	return oldValue.PostTreatmentCare, nil
}

// ClearPostTreatmentCare clears the value of the "post_treatment_care" field.
func (m *ServiceMutation) ClearPostTreatmentCare() {
	m.post_treatment_care = nil
	m.clearedFields[service.FieldPostTreatmentCare] = struct{}{}
}

// PostTreatmentCareCleared returns if the "post_treatment_care" field was cleared in this mutation.
func (m *ServiceMutation) PostTreatmentCareCleared() bool {
	_, ok := m.clearedFields[service.FieldPostTreatmentCare]
	return ok
}

// ResetPostTreatmentCare resets all changes to the "post_treatment_care" field.
func (m *ServiceMutation) ResetPostTreatmentCare() {
	m.post_treatment_care = nil
	delete(m.clearedFields, service.FieldPostTreatmentCare)
}

// SetContraindications sets the "contraindications" field.
func (m *ServiceMutation) SetContraindications(s string) {
	m.contraindications = &s
}

// Contraindications returns the value of the "contraindications" field in the mutation.
func (m *ServiceMutation) Contraindications() (r string, exists bool) {
	v := m.contraindications
	if v == nil {
		return
	}
	return *v, true
}

// OldContraindications returns the old "contraindications" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldContraindications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContraindications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContraindications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContraindications: %w", err)
	}
	return oldValue.Contraindications, nil
}

// ClearContraindications clears the value of the "contraindications" field.
func (m *ServiceMutation) ClearContraindications() {
	m.contraindications = nil
	m.clearedFields[service.FieldContraindications] = struct{}{}
}

// ContraindicationsCleared returns if the "contraindications" field was cleared in this mutation.
func (m *ServiceMutation) ContraindicationsCleared() bool {
	_, ok := m.clearedFields[service.FieldContraindications]
	return ok
}

// ResetContraindications resets all changes to the "contraindications" field.
func (m *ServiceMutation) ResetContraindications() {
	m.contraindications = nil
	delete(m.clearedFields, service.FieldContraindications)
}

// SetIsConsultationRequired sets the "is_consultation_required" field.
func (m *ServiceMutation) SetIsConsultationRequired(b bool) {
	m.is_consultation_required = &b
}

// IsConsultationRequired returns the value of the "is_consultation_required" field in the mutation.
func (m *ServiceMutation) IsConsultationRequired() (r bool, exists bool) {
	v := m.is_consultation_required
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConsultationRequired returns the old "is_consultation_required" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldIsConsultationRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConsultationRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConsultationRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConsultationRequired: %w", err)
	}
	return oldValue.IsConsultationRequired, nil
}

// ResetIsConsultationRequired resets all changes to the "is_consultation_required" field.
func (m *ServiceMutation) ResetIsConsultationRequired() {
	m.is_consultation_required = nil
}

// SetRequiresReferral sets the "requires_referral" field.
func (m *ServiceMutation) SetRequiresReferral(b bool) {
	m.requires_referral = &b
}

// RequiresReferral returns the value of the "requires_referral" field in the mutation.
func (m *ServiceMutation) RequiresReferral() (r bool, exists bool) {
	v := m.requires_referral
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresReferral returns the old "requires_referral" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldRequiresReferral(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresReferral is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresReferral requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresReferral: %w", err)
	}
	return oldValue.RequiresReferral, nil
}

// ResetRequiresReferral resets all changes to the "requires_referral" field.
func (m *ServiceMutation) ResetRequiresReferral() {
	m.requires_referral = nil
}

// SetMinAge sets the "min_age" field.
func (m *ServiceMutation) SetMinAge(i int) {
	m.min_age = &i
	m.addmin_age = nil
}

// MinAge returns the value of the "min_age" field in the mutation.
func (m *ServiceMutation) MinAge() (r int, exists bool) {
	v := m.min_age
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAge returns the old "min_age" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldMinAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAge: %w", err)
	}
	return oldValue.MinAge, nil
}

// AddMinAge adds i to the "min_age" field.
func (m *ServiceMutation) AddMinAge(i int) {
	if m.addmin_age != nil {
		*m.addmin_age += i
	} else {
		m.addmin_age = &i
	}
}

// AddedMinAge returns the value that was added to the "min_age" field in this mutation.
func (m *ServiceMutation) AddedMinAge() (r int, exists bool) {
	v := m.addmin_age
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinAge clears the value of the "min_age" field.
func (m *ServiceMutation) ClearMinAge() {
	m.min_age = nil
	m.addmin_age = nil
	m.clearedFields[service.FieldMinAge] = struct{}{}
}

// MinAgeCleared returns if the "min_age" field was cleared in this mutation.
func (m *ServiceMutation) MinAgeCleared() bool {
	_, ok := m.clearedFields[service.FieldMinAge]
	return ok
}

// ResetMinAge resets all changes to the "min_age" field.
func (m *ServiceMutation) ResetMinAge() {
	m.min_age = nil
	m.addmin_age = nil
	delete(m.clearedFields, service.FieldMinAge)
}

// SetMaxAge sets the "max_age" field.
func (m *ServiceMutation) SetMaxAge(i int) {
	m.max_age = &i
	m.addmax_age = nil
}

// MaxAge returns the value of the "max_age" field in the mutation.
func (m *ServiceMutation) MaxAge() (r int, exists bool) {
	v := m.max_age
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAge returns the old "max_age" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldMaxAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAge: %w", err)
	}
	return oldValue.MaxAge, nil
}

// AddMaxAge adds i to the "max_age" field.
func (m *ServiceMutation) AddMaxAge(i int) {
	if m.addmax_age != nil {
		*m.addmax_age += i
	} else {
		m.addmax_age = &i
	}
}

// AddedMaxAge returns the value that was added to the "max_age" field in this mutation.
func (m *ServiceMutation) AddedMaxAge() (r int, exists bool) {
	v := m.addmax_age
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxAge clears the value of the "max_age" field.
func (m *ServiceMutation) ClearMaxAge() {
	m.max_age = nil
	m.addmax_age = nil
	m.clearedFields[service.FieldMaxAge] = struct{}{}
}

// MaxAgeCleared returns if the "max_age" field was cleared in this mutation.
func (m *ServiceMutation) MaxAgeCleared() bool {
	_, ok := m.clearedFields[service.FieldMaxAge]
	return ok
}

// ResetMaxAge resets all changes to the "max_age" field.
func (m *ServiceMutation) ResetMaxAge() {
	m.max_age = nil
	m.addmax_age = nil
	delete(m.clearedFields, service.FieldMaxAge)
}

// SetIsActive sets the "is_active" field.
func (m *ServiceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ServiceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ServiceMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsFeatured sets the "is_featured" field.
func (m *ServiceMutation) SetIsFeatured(b bool) {
	m.is_featured = &b
}

// IsFeatured returns the value of the "is_featured" field in the mutation.
func (m *ServiceMutation) IsFeatured() (r bool, exists bool) {
	v := m.is_featured
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFeatured returns the old "is_featured" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldIsFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFeatured: %w", err)
	}
	return oldValue.IsFeatured, nil
}

// ResetIsFeatured resets all changes to the "is_featured" field.
func (m *ServiceMutation) ResetIsFeatured() {
	m.is_featured = nil
}

// SetAvailableOnline sets the "available_online" field.
func (m *ServiceMutation) SetAvailableOnline(b bool) {
	m.available_online = &b
}

// AvailableOnline returns the value of the "available_online" field in the mutation.
func (m *ServiceMutation) AvailableOnline() (r bool, exists bool) {
	v := m.available_online
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableOnline returns the old "available_online" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldAvailableOnline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableOnline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableOnline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableOnline: %w", err)
	}
	return oldValue.AvailableOnline, nil
}

// ResetAvailableOnline resets all changes to the "available_online" field.
func (m *ServiceMutation) ResetAvailableOnline() {
	m.available_online = nil
}

// SetMetaDescription sets the "meta_description" field.
func (m *ServiceMutation) SetMetaDescription(s string) {
	m.meta_description = &s
}

// MetaDescription returns the value of the "meta_description" field in the mutation.
func (m *ServiceMutation) MetaDescription() (r string, exists bool) {
	v := m.meta_description
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescription returns the old "meta_description" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldMetaDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescription: %w", err)
	}
	return oldValue.MetaDescription, nil
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (m *ServiceMutation) ClearMetaDescription() {
	m.meta_description = nil
	m.clearedFields[service.FieldMetaDescription] = struct{}{}
}

// MetaDescriptionCleared returns if the "meta_description" field was cleared in this mutation.
func (m *ServiceMutation) MetaDescriptionCleared() bool {
	_, ok := m.clearedFields[service.FieldMetaDescription]
	return ok
}

// ResetMetaDescription resets all changes to the "meta_description" field.
func (m *ServiceMutation) ResetMetaDescription() {
	m.meta_description = nil
	delete(m.clearedFields, service.FieldMetaDescription)
}

// SetImageKey sets the "image_key" field.
func (m *ServiceMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *ServiceMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the Service entity.
// If the Service object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceMutation) OldImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *ServiceMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[service.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *ServiceMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[service.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *ServiceMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, service.FieldImageKey)
}

// ClearCategory clears the "category" edge to the ServiceCategory entity.
func (m *ServiceMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[service.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the ServiceCategory entity was cleared.
func (m *ServiceMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *ServiceMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *ServiceMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddPackageIDs adds the "packages" edge to the ServicePackage entity by ids.
func (m *ServiceMutation) AddPackageIDs(ids ...uuid.UUID) {
	if m.packages == nil {
		m.packages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.packages[ids[i]] = struct{}{}
	}
}

// ClearPackages clears the "packages" edge to the ServicePackage entity.
func (m *ServiceMutation) ClearPackages() {
	m.clearedpackages = true
}

// PackagesCleared reports if the "packages" edge to the ServicePackage entity was cleared.
func (m *ServiceMutation) PackagesCleared() bool {
	return m.clearedpackages
}

// RemovePackageIDs removes the "packages" edge to the ServicePackage entity by IDs.
func (m *ServiceMutation) RemovePackageIDs(ids ...uuid.UUID) {
	if m.removedpackages == nil {
		m.removedpackages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.packages, ids[i])
		m.removedpackages[ids[i]] = struct{}{}
	}
}

// RemovedPackages returns the removed IDs of the "packages" edge to the ServicePackage entity.
func (m *ServiceMutation) RemovedPackagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpackages {
		ids = append(ids, id)
	}
	return
}

// PackagesIDs returns the "packages" edge IDs in the mutation.
func (m *ServiceMutation) PackagesIDs() (ids []uuid.UUID) {
	for id := range m.packages {
		ids = append(ids, id)
	}
	return
}

// ResetPackages resets all changes to the "packages" edge.
func (m *ServiceMutation) ResetPackages() {
	m.packages = nil
	m.clearedpackages = false
	m.removedpackages = nil
}

// Where appends a list predicates to the ServiceMutation builder.
func (m *ServiceMutation) Where(ps ...predicate.Service) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Service, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Service).
func (m *ServiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, service.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, service.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, service.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, service.FieldSlug)
	}
	if m.category != nil {
		fields = append(fields, service.FieldCategoryID)
	}
	if m.short_description != nil {
		fields = append(fields, service.FieldShortDescription)
	}
	if m.detailed_description != nil {
		fields = append(fields, service.FieldDetailedDescription)
	}
	if m.price != nil {
		fields = append(fields, service.FieldPrice)
	}
	if m.duration_min != nil {
		fields = append(fields, service.FieldDurationMin)
	}
	if m.preparation_instructions != nil {
		fields = append(fields, service.FieldPreparationInstructions)
	}
	if m.post_treatment_care != nil {
		fields = append(fields, service.FieldPostTreatmentCare)
	}
	if m.contraindications != nil {
		fields = append(fields, service.FieldContraindications)
	}
	if m.is_consultation_required != nil {
		fields = append(fields, service.FieldIsConsultationRequired)
	}
	if m.requires_referral != nil {
		fields = append(fields, service.FieldRequiresReferral)
	}
	if m.min_age != nil {
		fields = append(fields, service.FieldMinAge)
	}
	if m.max_age != nil {
		fields = append(fields, service.FieldMaxAge)
	}
	if m.is_active != nil {
		fields = append(fields, service.FieldIsActive)
	}
	if m.is_featured != nil {
		fields = append(fields, service.FieldIsFeatured)
	}
	if m.available_online != nil {
		fields = append(fields, service.FieldAvailableOnline)
	}
	if m.meta_description != nil {
		fields = append(fields, service.FieldMetaDescription)
	}
	if m.image_key != nil {
		fields = append(fields, service.FieldImageKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case service.FieldCreatedAt:
		return m.CreatedAt()
	case service.FieldUpdatedAt:
		return m.UpdatedAt()
	case service.FieldName:
		return m.Name()
	case service.FieldSlug:
		return m.Slug()
	case service.FieldCategoryID:
		return m.CategoryID()
	case service.FieldShortDescription:
		return m.ShortDescription()
	case service.FieldDetailedDescription:
		return m.DetailedDescription()
	case service.FieldPrice:
		return m.Price()
	case service.FieldDurationMin:
		return m.DurationMin()
	case service.FieldPreparationInstructions:
		return m.PreparationInstructions()
	case service.FieldPostTreatmentCare:
		return m.PostTreatmentCare()
	case service.FieldContraindications:
		return m.Contraindications()
	case service.FieldIsConsultationRequired:
		return m.IsConsultationRequired()
	case service.FieldRequiresReferral:
		return m.RequiresReferral()
	case service.FieldMinAge:
		return m.MinAge()
	case service.FieldMaxAge:
		return m.MaxAge()
	case service.FieldIsActive:
		return m.IsActive()
	case service.FieldIsFeatured:
		return m.IsFeatured()
	case service.FieldAvailableOnline:
		return m.AvailableOnline()
	case service.FieldMetaDescription:
		return m.MetaDescription()
	case service.FieldImageKey:
		return m.ImageKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case service.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case service.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case service.FieldName:
		return m.OldName(ctx)
	case service.FieldSlug:
		return m.OldSlug(ctx)
	case service.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case service.FieldShortDescription:
		return m.OldShortDescription(ctx)
	case service.FieldDetailedDescription:
		return m.OldDetailedDescription(ctx)
	case service.FieldPrice:
		return m.OldPrice(ctx)
	case service.FieldDurationMin:
		return m.OldDurationMin(ctx)
	case service.FieldPreparationInstructions:
		return m.OldPreparationInstructions(ctx)
	case service.FieldPostTreatmentCare:
		return m.OldPostTreatmentCare(ctx)
	case service.FieldContraindications:
		return m.OldContraindications(ctx)
	case service.FieldIsConsultationRequired:
		return m.OldIsConsultationRequired(ctx)
	case service.FieldRequiresReferral:
		return m.OldRequiresReferral(ctx)
	case service.FieldMinAge:
		return m.OldMinAge(ctx)
	case service.FieldMaxAge:
		return m.OldMaxAge(ctx)
	case service.FieldIsActive:
		return m.OldIsActive(ctx)
	case service.FieldIsFeatured:
		return m.OldIsFeatured(ctx)
	case service.FieldAvailableOnline:
		return m.OldAvailableOnline(ctx)
	case service.FieldMetaDescription:
		return m.OldMetaDescription(ctx)
	case service.FieldImageKey:
		return m.OldImageKey(ctx)
	}
	return nil, fmt.Errorf("unknown Service field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case service.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case service.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case service.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case service.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case service.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case service.FieldShortDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortDescription(v)
		return nil
	case service.FieldDetailedDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailedDescription(v)
		return nil
	case service.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case service.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMin(v)
		return nil
	case service.FieldPreparationInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreparationInstructions(v)
		return nil
	case service.FieldPostTreatmentCare:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostTreatmentCare(v)
		return nil
	case service.FieldContraindications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContraindications(v)
		return nil
	case service.FieldIsConsultationRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConsultationRequired(v)
		return nil
	case service.FieldRequiresReferral:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresReferral(v)
		return nil
	case service.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAge(v)
		return nil
	case service.FieldMaxAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAge(v)
		return nil
	case service.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case service.FieldIsFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFeatured(v)
		return nil
	case service.FieldAvailableOnline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableOnline(v)
		return nil
	case service.FieldMetaDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescription(v)
		return nil
	case service.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	}
	return fmt.Errorf("unknown Service field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, service.FieldPrice)
	}
	if m.addduration_min != nil {
		fields = append(fields, service.FieldDurationMin)
	}
	if m.addmin_age != nil {
		fields = append(fields, service.FieldMinAge)
	}
	if m.addmax_age != nil {
		fields = append(fields, service.FieldMaxAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case service.FieldPrice:
		return m.AddedPrice()
	case service.FieldDurationMin:
		return m.AddedDurationMin()
	case service.FieldMinAge:
		return m.AddedMinAge()
	case service.FieldMaxAge:
		return m.AddedMaxAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case service.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case service.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMin(v)
		return nil
	case service.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAge(v)
		return nil
	case service.FieldMaxAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAge(v)
		return nil
	}
	return fmt.Errorf("unknown Service numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(service.FieldPreparationInstructions) {
		fields = append(fields, service.FieldPreparationInstructions)
	}
	if m.FieldCleared(service.FieldPostTreatmentCare) {
		fields = append(fields, service.FieldPostTreatmentCare)
	}
	if m.FieldCleared(service.FieldContraindications) {
		fields = append(fields, service.FieldContraindications)
	}
	if m.FieldCleared(service.FieldMinAge) {
		fields = append(fields, service.FieldMinAge)
	}
	if m.FieldCleared(service.FieldMaxAge) {
		fields = append(fields, service.FieldMaxAge)
	}
	if m.FieldCleared(service.FieldMetaDescription) {
		fields = append(fields, service.FieldMetaDescription)
	}
	if m.FieldCleared(service.FieldImageKey) {
		fields = append(fields, service.FieldImageKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceMutation) ClearField(name string) error {
	switch name {
	case service.FieldPreparationInstructions:
		m.ClearPreparationInstructions()
		return nil
	case service.FieldPostTreatmentCare:
		m.ClearPostTreatmentCare()
		return nil
	case service.FieldContraindications:
		m.ClearContraindications()
		return nil
	case service.FieldMinAge:
		m.ClearMinAge()
		return nil
	case service.FieldMaxAge:
		m.ClearMaxAge()
		return nil
	case service.FieldMetaDescription:
		m.ClearMetaDescription()
		return nil
	case service.FieldImageKey:
		m.ClearImageKey()
		return nil
	}
	return fmt.Errorf("unknown Service nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceMutation) ResetField(name string) error {
	switch name {
	case service.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case service.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case service.FieldName:
		m.ResetName()
		return nil
	case service.FieldSlug:
		m.ResetSlug()
		return nil
	case service.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case service.FieldShortDescription:
		m.ResetShortDescription()
		return nil
	case service.FieldDetailedDescription:
		m.ResetDetailedDescription()
		return nil
	case service.FieldPrice:
		m.ResetPrice()
		return nil
	case service.FieldDurationMin:
		m.ResetDurationMin()
		return nil
	case service.FieldPreparationInstructions:
		m.ResetPreparationInstructions()
		return nil
	case service.FieldPostTreatmentCare:
		m.ResetPostTreatmentCare()
		return nil
	case service.FieldContraindications:
		m.ResetContraindications()
		return nil
	case service.FieldIsConsultationRequired:
		m.ResetIsConsultationRequired()
		return nil
	case service.FieldRequiresReferral:
		m.ResetRequiresReferral()
		return nil
	case service.FieldMinAge:
		m.ResetMinAge()
		return nil
	case service.FieldMaxAge:
		m.ResetMaxAge()
		return nil
	case service.FieldIsActive:
		m.ResetIsActive()
		return nil
	case service.FieldIsFeatured:
		m.ResetIsFeatured()
		return nil
	case service.FieldAvailableOnline:
		m.ResetAvailableOnline()
		return nil
	case service.FieldMetaDescription:
		m.ResetMetaDescription()
		return nil
	case service.FieldImageKey:
		m.ResetImageKey()
		return nil
	}
	return fmt.Errorf("unknown Service field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.category != nil {
		edges = append(edges, service.EdgeCategory)
	}
	if m.packages != nil {
		edges = append(edges, service.EdgePackages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case service.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case service.EdgePackages:
		ids := make([]ent.Value, 0, len(m.packages))
		for id := range m.packages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpackages != nil {
		edges = append(edges, service.EdgePackages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case service.EdgePackages:
		ids := make([]ent.Value, 0, len(m.removedpackages))
		for id := range m.removedpackages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcategory {
		edges = append(edges, service.EdgeCategory)
	}
	if m.clearedpackages {
		edges = append(edges, service.EdgePackages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceMutation) EdgeCleared(name string) bool {
	switch name {
	case service.EdgeCategory:
		return m.clearedcategory
	case service.EdgePackages:
		return m.clearedpackages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceMutation) ClearEdge(name string) error {
	switch name {
	case service.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Service unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceMutation) ResetEdge(name string) error {
	switch name {
	case service.EdgeCategory:
		m.ResetCategory()
		return nil
	case service.EdgePackages:
		m.ResetPackages()
		return nil
	}
	return fmt.Errorf("unknown Service edge %s", name)
}

// ServiceCategoryMutation represents an operation that mutates the ServiceCategory nodes in the graph.
type ServiceCategoryMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	name             *string
	slug             *string
	description      *string
	icon             *string
	is_active        *bool
	display_order    *int
	adddisplay_order *int
	clearedFields    map[string]struct{}
	services         map[uuid.UUID]struct{}
	removedservices  map[uuid.UUID]struct{}
	clearedservices  bool
	done             bool
	oldValue         func(context.Context) (*ServiceCategory, error)
	predicates       []predicate.ServiceCategory
}

var _ ent.Mutation = (*ServiceCategoryMutation)(nil)

// servicecategoryOption allows management of the mutation configuration using functional options.
type servicecategoryOption func(*ServiceCategoryMutation)

// newServiceCategoryMutation creates new mutation for the ServiceCategory entity.
func newServiceCategoryMutation(c config, op Op, opts ...servicecategoryOption) *ServiceCategoryMutation {
	m := &ServiceCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceCategoryID sets the ID field of the mutation.
func withServiceCategoryID(id uuid.UUID) servicecategoryOption {
	return func(m *ServiceCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceCategory
		)
		m.oldValue = func(ctx context.Context) (*ServiceCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceCategory sets the old ServiceCategory of the mutation.
func withServiceCategory(node *ServiceCategory) servicecategoryOption {
	return func(m *ServiceCategoryMutation) {
		m.oldValue = func(context.Context) (*ServiceCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceCategory entities.
func (m *ServiceCategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceCategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceCategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceCategoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceCategoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceCategoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *ServiceCategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServiceCategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServiceCategoryMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ServiceCategoryMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ServiceCategoryMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ServiceCategoryMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ServiceCategoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ServiceCategoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ServiceCategoryMutation) ResetDescription() {
	m.description = nil
}

// SetIcon sets the "icon" field.
func (m *ServiceCategoryMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *ServiceCategoryMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ResetIcon resets all changes to the "icon" field.
func (m *ServiceCategoryMutation) ResetIcon() {
	m.icon = nil
}

// SetIsActive sets the "is_active" field.
func (m *ServiceCategoryMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ServiceCategoryMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ServiceCategoryMutation) ResetIsActive() {
	m.is_active = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *ServiceCategoryMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *ServiceCategoryMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the ServiceCategory entity.
// If the ServiceCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceCategoryMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *ServiceCategoryMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *ServiceCategoryMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *ServiceCategoryMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// AddServiceIDs adds the "services" edge to the Service entity by ids.
func (m *ServiceCategoryMutation) AddServiceIDs(ids ...uuid.UUID) {
	if m.services == nil {
		m.services = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.services[ids[i]] = struct{}{}
	}
}

// ClearServices clears the "services" edge to the Service entity.
func (m *ServiceCategoryMutation) ClearServices() {
	m.clearedservices = true
}

// ServicesCleared reports if the "services" edge to the Service entity was cleared.
func (m *ServiceCategoryMutation) ServicesCleared() bool {
	return m.clearedservices
}

// RemoveServiceIDs removes the "services" edge to the Service entity by IDs.
func (m *ServiceCategoryMutation) RemoveServiceIDs(ids ...uuid.UUID) {
	if m.removedservices == nil {
		m.removedservices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.services, ids[i])
		m.removedservices[ids[i]] = struct{}{}
	}
}

// RemovedServices returns the removed IDs of the "services" edge to the Service entity.
func (m *ServiceCategoryMutation) RemovedServicesIDs() (ids []uuid.UUID) {
	for id := range m.removedservices {
		ids = append(ids, id)
	}
	return
}

// ServicesIDs returns the "services" edge IDs in the mutation.
func (m *ServiceCategoryMutation) ServicesIDs() (ids []uuid.UUID) {
	for id := range m.services {
		ids = append(ids, id)
	}
	return
}

// ResetServices resets all changes to the "services" edge.
func (m *ServiceCategoryMutation) ResetServices() {
	m.services = nil
	m.clearedservices = false
	m.removedservices = nil
}

// Where appends a list predicates to the ServiceCategoryMutation builder.
func (m *ServiceCategoryMutation) Where(ps ...predicate.ServiceCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceCategory).
func (m *ServiceCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceCategoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, servicecategory.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, servicecategory.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, servicecategory.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, servicecategory.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, servicecategory.FieldIcon)
	}
	if m.is_active != nil {
		fields = append(fields, servicecategory.FieldIsActive)
	}
	if m.display_order != nil {
		fields = append(fields, servicecategory.FieldDisplayOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicecategory.FieldCreatedAt:
		return m.CreatedAt()
	case servicecategory.FieldName:
		return m.Name()
	case servicecategory.FieldSlug:
		return m.Slug()
	case servicecategory.FieldDescription:
		return m.Description()
	case servicecategory.FieldIcon:
		return m.Icon()
	case servicecategory.FieldIsActive:
		return m.IsActive()
	case servicecategory.FieldDisplayOrder:
		return m.DisplayOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicecategory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case servicecategory.FieldName:
		return m.OldName(ctx)
	case servicecategory.FieldSlug:
		return m.OldSlug(ctx)
	case servicecategory.FieldDescription:
		return m.OldDescription(ctx)
	case servicecategory.FieldIcon:
		return m.OldIcon(ctx)
	case servicecategory.FieldIsActive:
		return m.OldIsActive(ctx)
	case servicecategory.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicecategory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case servicecategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case servicecategory.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case servicecategory.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case servicecategory.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case servicecategory.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case servicecategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceCategoryMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, servicecategory.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceCategoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case servicecategory.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case servicecategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceCategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceCategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServiceCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceCategoryMutation) ResetField(name string) error {
	switch name {
	case servicecategory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case servicecategory.FieldName:
		m.ResetName()
		return nil
	case servicecategory.FieldSlug:
		m.ResetSlug()
		return nil
	case servicecategory.FieldDescription:
		m.ResetDescription()
		return nil
	case servicecategory.FieldIcon:
		m.ResetIcon()
		return nil
	case servicecategory.FieldIsActive:
		m.ResetIsActive()
		return nil
	case servicecategory.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.services != nil {
		edges = append(edges, servicecategory.EdgeServices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceCategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servicecategory.EdgeServices:
		ids := make([]ent.Value, 0, len(m.services))
		for id := range m.services {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedservices != nil {
		edges = append(edges, servicecategory.EdgeServices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceCategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case servicecategory.EdgeServices:
		ids := make([]ent.Value, 0, len(m.removedservices))
		for id := range m.removedservices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedservices {
		edges = append(edges, servicecategory.EdgeServices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceCategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case servicecategory.EdgeServices:
		return m.clearedservices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceCategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceCategoryMutation) ResetEdge(name string) error {
	switch name {
	case servicecategory.EdgeServices:
		m.ResetServices()
		return nil
	}
	return fmt.Errorf("unknown ServiceCategory edge %s", name)
}

// ServiceDoctorSpecialtyMutation represents an operation that mutates the ServiceDoctorSpecialty nodes in the graph.
type ServiceDoctorSpecialtyMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	proficiency_level     *servicedoctorspecialty.ProficiencyLevel
	is_preferred_provider *bool
	clearedFields         map[string]struct{}
	service               *uuid.UUID
	clearedservice        bool
	doctor                *uuid.UUID
	cleareddoctor         bool
	done                  bool
	oldValue              func(context.Context) (*ServiceDoctorSpecialty, error)
	predicates            []predicate.ServiceDoctorSpecialty
}

var _ ent.Mutation = (*ServiceDoctorSpecialtyMutation)(nil)

// servicedoctorspecialtyOption allows management of the mutation configuration using functional options.
type servicedoctorspecialtyOption func(*ServiceDoctorSpecialtyMutation)

// newServiceDoctorSpecialtyMutation creates new mutation for the ServiceDoctorSpecialty entity.
func newServiceDoctorSpecialtyMutation(c config, op Op, opts ...servicedoctorspecialtyOption) *ServiceDoctorSpecialtyMutation {
	m := &ServiceDoctorSpecialtyMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceDoctorSpecialty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceDoctorSpecialtyID sets the ID field of the mutation.
func withServiceDoctorSpecialtyID(id uuid.UUID) servicedoctorspecialtyOption {
	return func(m *ServiceDoctorSpecialtyMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceDoctorSpecialty
		)
		m.oldValue = func(ctx context.Context) (*ServiceDoctorSpecialty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceDoctorSpecialty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceDoctorSpecialty sets the old ServiceDoctorSpecialty of the mutation.
func withServiceDoctorSpecialty(node *ServiceDoctorSpecialty) servicedoctorspecialtyOption {
	return func(m *ServiceDoctorSpecialtyMutation) {
		m.oldValue = func(context.Context) (*ServiceDoctorSpecialty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceDoctorSpecialtyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceDoctorSpecialtyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceDoctorSpecialty entities.
func (m *ServiceDoctorSpecialtyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceDoctorSpecialtyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceDoctorSpecialtyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceDoctorSpecialty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceDoctorSpecialtyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceDoctorSpecialtyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceDoctorSpecialty entity.
// If the ServiceDoctorSpecialty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceDoctorSpecialtyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceDoctorSpecialtyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetServiceID sets the "service_id" field.
func (m *ServiceDoctorSpecialtyMutation) SetServiceID(u uuid.UUID) {
	m.service = &u
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *ServiceDoctorSpecialtyMutation) ServiceID() (r uuid.UUID, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the ServiceDoctorSpecialty entity.
// If the ServiceDoctorSpecialty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceDoctorSpecialtyMutation) OldServiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *ServiceDoctorSpecialtyMutation) ResetServiceID() {
	m.service = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *ServiceDoctorSpecialtyMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *ServiceDoctorSpecialtyMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the ServiceDoctorSpecialty entity.
// If the ServiceDoctorSpecialty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceDoctorSpecialtyMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *ServiceDoctorSpecialtyMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (m *ServiceDoctorSpecialtyMutation) SetProficiencyLevel(sl servicedoctorspecialty.ProficiencyLevel) {
	m.proficiency_level = &sl
}

// ProficiencyLevel returns the value of the "proficiency_level" field in the mutation.
func (m *ServiceDoctorSpecialtyMutation) ProficiencyLevel() (r servicedoctorspecialty.ProficiencyLevel, exists bool) {
	v := m.proficiency_level
	if v == nil {
		return
	}
	return *v, true
}

// OldProficiencyLevel returns the old "proficiency_level" field's value of the ServiceDoctorSpecialty entity.
// If the ServiceDoctorSpecialty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceDoctorSpecialtyMutation) OldProficiencyLevel(ctx context.Context) (v servicedoctorspecialty.ProficiencyLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProficiencyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProficiencyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProficiencyLevel: %w", err)
	}
	return oldValue.ProficiencyLevel, nil
}

// ResetProficiencyLevel resets all changes to the "proficiency_level" field.
func (m *ServiceDoctorSpecialtyMutation) ResetProficiencyLevel() {
	m.proficiency_level = nil
}

// SetIsPreferredProvider sets the "is_preferred_provider" field.
func (m *ServiceDoctorSpecialtyMutation) SetIsPreferredProvider(b bool) {
	m.is_preferred_provider = &b
}

// IsPreferredProvider returns the value of the "is_preferred_provider" field in the mutation.
func (m *ServiceDoctorSpecialtyMutation) IsPreferredProvider() (r bool, exists bool) {
	v := m.is_preferred_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPreferredProvider returns the old "is_preferred_provider" field's value of the ServiceDoctorSpecialty entity.
// If the ServiceDoctorSpecialty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceDoctorSpecialtyMutation) OldIsPreferredProvider(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPreferredProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPreferredProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPreferredProvider: %w", err)
	}
	return oldValue.IsPreferredProvider, nil
}

// ResetIsPreferredProvider resets all changes to the "is_preferred_provider" field.
func (m *ServiceDoctorSpecialtyMutation) ResetIsPreferredProvider() {
	m.is_preferred_provider = nil
}

// ClearService clears the "service" edge to the Service entity.
func (m *ServiceDoctorSpecialtyMutation) ClearService() {
	m.clearedservice = true
	m.clearedFields[servicedoctorspecialty.FieldServiceID] = struct{}{}
}

// ServiceCleared reports if the "service" edge to the Service entity was cleared.
func (m *ServiceDoctorSpecialtyMutation) ServiceCleared() bool {
	return m.clearedservice
}

// ServiceIDs returns the "service" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceID instead. It exists only for internal usage by the builders.
func (m *ServiceDoctorSpecialtyMutation) ServiceIDs() (ids []uuid.UUID) {
	if id := m.service; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetService resets all changes to the "service" edge.
func (m *ServiceDoctorSpecialtyMutation) ResetService() {
	m.service = nil
	m.clearedservice = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *ServiceDoctorSpecialtyMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[servicedoctorspecialty.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *ServiceDoctorSpecialtyMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *ServiceDoctorSpecialtyMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *ServiceDoctorSpecialtyMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// Where appends a list predicates to the ServiceDoctorSpecialtyMutation builder.
func (m *ServiceDoctorSpecialtyMutation) Where(ps ...predicate.ServiceDoctorSpecialty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceDoctorSpecialtyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceDoctorSpecialtyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceDoctorSpecialty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceDoctorSpecialtyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceDoctorSpecialtyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceDoctorSpecialty).
func (m *ServiceDoctorSpecialtyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceDoctorSpecialtyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, servicedoctorspecialty.FieldCreatedAt)
	}
	if m.service != nil {
		fields = append(fields, servicedoctorspecialty.FieldServiceID)
	}
	if m.doctor != nil {
		fields = append(fields, servicedoctorspecialty.FieldDoctorID)
	}
	if m.proficiency_level != nil {
		fields = append(fields, servicedoctorspecialty.FieldProficiencyLevel)
	}
	if m.is_preferred_provider != nil {
		fields = append(fields, servicedoctorspecialty.FieldIsPreferredProvider)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceDoctorSpecialtyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicedoctorspecialty.FieldCreatedAt:
		return m.CreatedAt()
	case servicedoctorspecialty.FieldServiceID:
		return m.ServiceID()
	case servicedoctorspecialty.FieldDoctorID:
		return m.DoctorID()
	case servicedoctorspecialty.FieldProficiencyLevel:
		return m.ProficiencyLevel()
	case servicedoctorspecialty.FieldIsPreferredProvider:
		return m.IsPreferredProvider()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceDoctorSpecialtyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicedoctorspecialty.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case servicedoctorspecialty.FieldServiceID:
		return m.OldServiceID(ctx)
	case servicedoctorspecialty.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case servicedoctorspecialty.FieldProficiencyLevel:
		return m.OldProficiencyLevel(ctx)
	case servicedoctorspecialty.FieldIsPreferredProvider:
		return m.OldIsPreferredProvider(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceDoctorSpecialty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceDoctorSpecialtyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicedoctorspecialty.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case servicedoctorspecialty.FieldServiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case servicedoctorspecialty.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case servicedoctorspecialty.FieldProficiencyLevel:
		v, ok := value.(servicedoctorspecialty.ProficiencyLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProficiencyLevel(v)
		return nil
	case servicedoctorspecialty.FieldIsPreferredProvider:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPreferredProvider(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceDoctorSpecialty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceDoctorSpecialtyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceDoctorSpecialtyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceDoctorSpecialtyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceDoctorSpecialty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceDoctorSpecialtyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceDoctorSpecialtyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceDoctorSpecialtyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServiceDoctorSpecialty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceDoctorSpecialtyMutation) ResetField(name string) error {
	switch name {
	case servicedoctorspecialty.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case servicedoctorspecialty.FieldServiceID:
		m.ResetServiceID()
		return nil
	case servicedoctorspecialty.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case servicedoctorspecialty.FieldProficiencyLevel:
		m.ResetProficiencyLevel()
		return nil
	case servicedoctorspecialty.FieldIsPreferredProvider:
		m.ResetIsPreferredProvider()
		return nil
	}
	return fmt.Errorf("unknown ServiceDoctorSpecialty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceDoctorSpecialtyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.service != nil {
		edges = append(edges, servicedoctorspecialty.EdgeService)
	}
	if m.doctor != nil {
		edges = append(edges, servicedoctorspecialty.EdgeDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceDoctorSpecialtyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servicedoctorspecialty.EdgeService:
		if id := m.service; id != nil {
			return []ent.Value{*id}
		}
	case servicedoctorspecialty.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceDoctorSpecialtyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceDoctorSpecialtyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceDoctorSpecialtyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedservice {
		edges = append(edges, servicedoctorspecialty.EdgeService)
	}
	if m.cleareddoctor {
		edges = append(edges, servicedoctorspecialty.EdgeDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceDoctorSpecialtyMutation) EdgeCleared(name string) bool {
	switch name {
	case servicedoctorspecialty.EdgeService:
		return m.clearedservice
	case servicedoctorspecialty.EdgeDoctor:
		return m.cleareddoctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceDoctorSpecialtyMutation) ClearEdge(name string) error {
	switch name {
	case servicedoctorspecialty.EdgeService:
		m.ClearService()
		return nil
	case servicedoctorspecialty.EdgeDoctor:
		m.ClearDoctor()
		return nil
	}
	return fmt.Errorf("unknown ServiceDoctorSpecialty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceDoctorSpecialtyMutation) ResetEdge(name string) error {
	switch name {
	case servicedoctorspecialty.EdgeService:
		m.ResetService()
		return nil
	case servicedoctorspecialty.EdgeDoctor:
		m.ResetDoctor()
		return nil
	}
	return fmt.Errorf("unknown ServiceDoctorSpecialty edge %s", name)
}

// ServicePackageMutation represents an operation that mutates the ServicePackage nodes in the graph.
type ServicePackageMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	slug              *string
	description       *string
	original_price    *int64
	addoriginal_price *int64
	package_price     *int64
	addpackage_price  *int64
	validity_days     *int
	addvalidity_days  *int
	is_active         *bool
	image_key         *string
	clearedFields     map[string]struct{}
	services          map[uuid.UUID]struct{}
	removedservices   map[uuid.UUID]struct{}
	clearedservices   bool
	done              bool
	oldValue          func(context.Context) (*ServicePackage, error)
	predicates        []predicate.ServicePackage
}

var _ ent.Mutation = (*ServicePackageMutation)(nil)

// servicepackageOption allows management of the mutation configuration using functional options.
type servicepackageOption func(*ServicePackageMutation)

// newServicePackageMutation creates new mutation for the ServicePackage entity.
func newServicePackageMutation(c config, op Op, opts ...servicepackageOption) *ServicePackageMutation {
	m := &ServicePackageMutation{
		config:        c,
		op:            op,
		typ:           TypeServicePackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServicePackageID sets the ID field of the mutation.
func withServicePackageID(id uuid.UUID) servicepackageOption {
	return func(m *ServicePackageMutation) {
		var (
			err   error
			once  sync.Once
			value *ServicePackage
		)
		m.oldValue = func(ctx context.Context) (*ServicePackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServicePackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServicePackage sets the old ServicePackage of the mutation.
func withServicePackage(node *ServicePackage) servicepackageOption {
	return func(m *ServicePackageMutation) {
		m.oldValue = func(context.Context) (*ServicePackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServicePackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServicePackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServicePackage entities.
func (m *ServicePackageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServicePackageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServicePackageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServicePackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ServicePackageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServicePackageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServicePackageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServicePackageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServicePackageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServicePackageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ServicePackageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServicePackageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServicePackageMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ServicePackageMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ServicePackageMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ServicePackageMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ServicePackageMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ServicePackageMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ServicePackageMutation) ResetDescription() {
	m.description = nil
}

// SetOriginalPrice sets the "original_price" field.
func (m *ServicePackageMutation) SetOriginalPrice(i int64) {
	m.original_price = &i
	m.addoriginal_price = nil
}

// OriginalPrice returns the value of the "original_price" field in the mutation.
func (m *ServicePackageMutation) OriginalPrice() (r int64, exists bool) {
	v := m.original_price
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalPrice returns the old "original_price" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldOriginalPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalPrice: %w", err)
	}
	return oldValue.OriginalPrice, nil
}

// AddOriginalPrice adds i to the "original_price" field.
func (m *ServicePackageMutation) AddOriginalPrice(i int64) {
	if m.addoriginal_price != nil {
		*m.addoriginal_price += i
	} else {
		m.addoriginal_price = &i
	}
}

// AddedOriginalPrice returns the value that was added to the "original_price" field in this mutation.
func (m *ServicePackageMutation) AddedOriginalPrice() (r int64, exists bool) {
	v := m.addoriginal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalPrice resets all changes to the "original_price" field.
func (m *ServicePackageMutation) ResetOriginalPrice() {
	m.original_price = nil
	m.addoriginal_price = nil
}

// SetPackagePrice sets the "package_price" field.
func (m *ServicePackageMutation) SetPackagePrice(i int64) {
	m.package_price = &i
	m.addpackage_price = nil
}

// PackagePrice returns the value of the "package_price" field in the mutation.
func (m *ServicePackageMutation) PackagePrice() (r int64, exists bool) {
	v := m.package_price
	if v == nil {
		return
	}
	return *v, true
}

// OldPackagePrice returns the old "package_price" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldPackagePrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackagePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackagePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackagePrice: %w", err)
	}
	return oldValue.PackagePrice, nil
}

// AddPackagePrice adds i to the "package_price" field.
func (m *ServicePackageMutation) AddPackagePrice(i int64) {
	if m.addpackage_price != nil {
		*m.addpackage_price += i
	} else {
		m.addpackage_price = &i
	}
}

// AddedPackagePrice returns the value that was added to the "package_price" field in this mutation.
func (m *ServicePackageMutation) AddedPackagePrice() (r int64, exists bool) {
	v := m.addpackage_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackagePrice resets all changes to the "package_price" field.
func (m *ServicePackageMutation) ResetPackagePrice() {
	m.package_price = nil
	m.addpackage_price = nil
}

// SetValidityDays sets the "validity_days" field.
func (m *ServicePackageMutation) SetValidityDays(i int) {
	m.validity_days = &i
	m.addvalidity_days = nil
}

// ValidityDays returns the value of the "validity_days" field in the mutation.
func (m *ServicePackageMutation) ValidityDays() (r int, exists bool) {
	v := m.validity_days
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityDays returns the old "validity_days" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldValidityDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityDays: %w", err)
	}
	return oldValue.ValidityDays, nil
}

// AddValidityDays adds i to the "validity_days" field.
func (m *ServicePackageMutation) AddValidityDays(i int) {
	if m.addvalidity_days != nil {
		*m.addvalidity_days += i
	} else {
		m.addvalidity_days = &i
	}
}

// AddedValidityDays returns the value that was added to the "validity_days" field in this mutation.
func (m *ServicePackageMutation) AddedValidityDays() (r int, exists bool) {
	v := m.addvalidity_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidityDays resets all changes to the "validity_days" field.
func (m *ServicePackageMutation) ResetValidityDays() {
	m.validity_days = nil
	m.addvalidity_days = nil
}

// SetIsActive sets the "is_active" field.
func (m *ServicePackageMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ServicePackageMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ServicePackageMutation) ResetIsActive() {
	m.is_active = nil
}

// SetImageKey sets the "image_key" field.
func (m *ServicePackageMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *ServicePackageMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the ServicePackage entity.
// If the ServicePackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServicePackageMutation) OldImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *ServicePackageMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[servicepackage.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *ServicePackageMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[servicepackage.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *ServicePackageMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, servicepackage.FieldImageKey)
}

// AddServiceIDs adds the "services" edge to the Service entity by ids.
func (m *ServicePackageMutation) AddServiceIDs(ids ...uuid.UUID) {
	if m.services == nil {
		m.services = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.services[ids[i]] = struct{}{}
	}
}

// ClearServices clears the "services" edge to the Service entity.
func (m *ServicePackageMutation) ClearServices() {
	m.clearedservices = true
}

// ServicesCleared reports if the "services" edge to the Service entity was cleared.
func (m *ServicePackageMutation) ServicesCleared() bool {
	return m.clearedservices
}

// RemoveServiceIDs removes the "services" edge to the Service entity by IDs.
func (m *ServicePackageMutation) RemoveServiceIDs(ids ...uuid.UUID) {
	if m.removedservices == nil {
		m.removedservices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.services, ids[i])
		m.removedservices[ids[i]] = struct{}{}
	}
}

// RemovedServices returns the removed IDs of the "services" edge to the Service entity.
func (m *ServicePackageMutation) RemovedServicesIDs() (ids []uuid.UUID) {
	for id := range m.removedservices {
		ids = append(ids, id)
	}
	return
}

// ServicesIDs returns the "services" edge IDs in the mutation.
func (m *ServicePackageMutation) ServicesIDs() (ids []uuid.UUID) {
	for id := range m.services {
		ids = append(ids, id)
	}
	return
}

// ResetServices resets all changes to the "services" edge.
func (m *ServicePackageMutation) ResetServices() {
	m.services = nil
	m.clearedservices = false
	m.removedservices = nil
}

// Where appends a list predicates to the ServicePackageMutation builder.
func (m *ServicePackageMutation) Where(ps ...predicate.ServicePackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServicePackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServicePackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServicePackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServicePackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServicePackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServicePackage).
func (m *ServicePackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServicePackageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, servicepackage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, servicepackage.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, servicepackage.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, servicepackage.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, servicepackage.FieldDescription)
	}
	if m.original_price != nil {
		fields = append(fields, servicepackage.FieldOriginalPrice)
	}
	if m.package_price != nil {
		fields = append(fields, servicepackage.FieldPackagePrice)
	}
	if m.validity_days != nil {
		fields = append(fields, servicepackage.FieldValidityDays)
	}
	if m.is_active != nil {
		fields = append(fields, servicepackage.FieldIsActive)
	}
	if m.image_key != nil {
		fields = append(fields, servicepackage.FieldImageKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServicePackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicepackage.FieldCreatedAt:
		return m.CreatedAt()
	case servicepackage.FieldUpdatedAt:
		return m.UpdatedAt()
	case servicepackage.FieldName:
		return m.Name()
	case servicepackage.FieldSlug:
		return m.Slug()
	case servicepackage.FieldDescription:
		return m.Description()
	case servicepackage.FieldOriginalPrice:
		return m.OriginalPrice()
	case servicepackage.FieldPackagePrice:
		return m.PackagePrice()
	case servicepackage.FieldValidityDays:
		return m.ValidityDays()
	case servicepackage.FieldIsActive:
		return m.IsActive()
	case servicepackage.FieldImageKey:
		return m.ImageKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServicePackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicepackage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case servicepackage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case servicepackage.FieldName:
		return m.OldName(ctx)
	case servicepackage.FieldSlug:
		return m.OldSlug(ctx)
	case servicepackage.FieldDescription:
		return m.OldDescription(ctx)
	case servicepackage.FieldOriginalPrice:
		return m.OldOriginalPrice(ctx)
	case servicepackage.FieldPackagePrice:
		return m.OldPackagePrice(ctx)
	case servicepackage.FieldValidityDays:
		return m.OldValidityDays(ctx)
	case servicepackage.FieldIsActive:
		return m.OldIsActive(ctx)
	case servicepackage.FieldImageKey:
		return m.OldImageKey(ctx)
	}
	return nil, fmt.Errorf("unknown ServicePackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServicePackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicepackage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case servicepackage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case servicepackage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case servicepackage.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case servicepackage.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case servicepackage.FieldOriginalPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalPrice(v)
		return nil
	case servicepackage.FieldPackagePrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackagePrice(v)
		return nil
	case servicepackage.FieldValidityDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityDays(v)
		return nil
	case servicepackage.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case servicepackage.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	}
	return fmt.Errorf("unknown ServicePackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServicePackageMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_price != nil {
		fields = append(fields, servicepackage.FieldOriginalPrice)
	}
	if m.addpackage_price != nil {
		fields = append(fields, servicepackage.FieldPackagePrice)
	}
	if m.addvalidity_days != nil {
		fields = append(fields, servicepackage.FieldValidityDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServicePackageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case servicepackage.FieldOriginalPrice:
		return m.AddedOriginalPrice()
	case servicepackage.FieldPackagePrice:
		return m.AddedPackagePrice()
	case servicepackage.FieldValidityDays:
		return m.AddedValidityDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServicePackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case servicepackage.FieldOriginalPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalPrice(v)
		return nil
	case servicepackage.FieldPackagePrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackagePrice(v)
		return nil
	case servicepackage.FieldValidityDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidityDays(v)
		return nil
	}
	return fmt.Errorf("unknown ServicePackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServicePackageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(servicepackage.FieldImageKey) {
		fields = append(fields, servicepackage.FieldImageKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServicePackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServicePackageMutation) ClearField(name string) error {
	switch name {
	case servicepackage.FieldImageKey:
		m.ClearImageKey()
		return nil
	}
	return fmt.Errorf("unknown ServicePackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServicePackageMutation) ResetField(name string) error {
	switch name {
	case servicepackage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case servicepackage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case servicepackage.FieldName:
		m.ResetName()
		return nil
	case servicepackage.FieldSlug:
		m.ResetSlug()
		return nil
	case servicepackage.FieldDescription:
		m.ResetDescription()
		return nil
	case servicepackage.FieldOriginalPrice:
		m.ResetOriginalPrice()
		return nil
	case servicepackage.FieldPackagePrice:
		m.ResetPackagePrice()
		return nil
	case servicepackage.FieldValidityDays:
		m.ResetValidityDays()
		return nil
	case servicepackage.FieldIsActive:
		m.ResetIsActive()
		return nil
	case servicepackage.FieldImageKey:
		m.ResetImageKey()
		return nil
	}
	return fmt.Errorf("unknown ServicePackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServicePackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.services != nil {
		edges = append(edges, servicepackage.EdgeServices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServicePackageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servicepackage.EdgeServices:
		ids := make([]ent.Value, 0, len(m.services))
		for id := range m.services {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServicePackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedservices != nil {
		edges = append(edges, servicepackage.EdgeServices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServicePackageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case servicepackage.EdgeServices:
		ids := make([]ent.Value, 0, len(m.removedservices))
		for id := range m.removedservices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServicePackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedservices {
		edges = append(edges, servicepackage.EdgeServices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServicePackageMutation) EdgeCleared(name string) bool {
	switch name {
	case servicepackage.EdgeServices:
		return m.clearedservices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServicePackageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ServicePackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServicePackageMutation) ResetEdge(name string) error {
	switch name {
	case servicepackage.EdgeServices:
		m.ResetServices()
		return nil
	}
	return fmt.Errorf("unknown ServicePackage edge %s", name)
}

// SpecializationMutation represents an operation that mutates the Specialization nodes in the graph.
type SpecializationMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	name           *string
	description    *string
	clearedFields  map[string]struct{}
	doctors        map[uuid.UUID]struct{}
	removeddoctors map[uuid.UUID]struct{}
	cleareddoctors bool
	done           bool
	oldValue       func(context.Context) (*Specialization, error)
	predicates     []predicate.Specialization
}

var _ ent.Mutation = (*SpecializationMutation)(nil)

// specializationOption allows management of the mutation configuration using functional options.
type specializationOption func(*SpecializationMutation)

// newSpecializationMutation creates new mutation for the Specialization entity.
func newSpecializationMutation(c config, op Op, opts ...specializationOption) *SpecializationMutation {
	m := &SpecializationMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecialization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecializationID sets the ID field of the mutation.
func withSpecializationID(id uuid.UUID) specializationOption {
	return func(m *SpecializationMutation) {
		var (
			err   error
			once  sync.Once
			value *Specialization
		)
		m.oldValue = func(ctx context.Context) (*Specialization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Specialization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecialization sets the old Specialization of the mutation.
func withSpecialization(node *Specialization) specializationOption {
	return func(m *SpecializationMutation) {
		m.oldValue = func(context.Context) (*Specialization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecializationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecializationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Specialization entities.
func (m *SpecializationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecializationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecializationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Specialization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecializationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecializationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Specialization entity.
// If the Specialization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecializationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpecializationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *SpecializationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SpecializationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Specialization entity.
// If the Specialization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecializationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SpecializationMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SpecializationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SpecializationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Specialization entity.
// If the Specialization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecializationMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SpecializationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[specialization.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SpecializationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[specialization.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SpecializationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, specialization.FieldDescription)
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by ids.
func (m *SpecializationMutation) AddDoctorIDs(ids ...uuid.UUID) {
	if m.doctors == nil {
		m.doctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.doctors[ids[i]] = struct{}{}
	}
}

// ClearDoctors clears the "doctors" edge to the Doctor entity.
func (m *SpecializationMutation) ClearDoctors() {
	m.cleareddoctors = true
}

// DoctorsCleared reports if the "doctors" edge to the Doctor entity was cleared.
func (m *SpecializationMutation) DoctorsCleared() bool {
	return m.cleareddoctors
}

// RemoveDoctorIDs removes the "doctors" edge to the Doctor entity by IDs.
func (m *SpecializationMutation) RemoveDoctorIDs(ids ...uuid.UUID) {
	if m.removeddoctors == nil {
		m.removeddoctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.doctors, ids[i])
		m.removeddoctors[ids[i]] = struct{}{}
	}
}

// RemovedDoctors returns the removed IDs of the "doctors" edge to the Doctor entity.
func (m *SpecializationMutation) RemovedDoctorsIDs() (ids []uuid.UUID) {
	for id := range m.removeddoctors {
		ids = append(ids, id)
	}
	return
}

// DoctorsIDs returns the "doctors" edge IDs in the mutation.
func (m *SpecializationMutation) DoctorsIDs() (ids []uuid.UUID) {
	for id := range m.doctors {
		ids = append(ids, id)
	}
	return
}

// ResetDoctors resets all changes to the "doctors" edge.
func (m *SpecializationMutation) ResetDoctors() {
	m.doctors = nil
	m.cleareddoctors = false
	m.removeddoctors = nil
}

// Where appends a list predicates to the SpecializationMutation builder.
func (m *SpecializationMutation) Where(ps ...predicate.Specialization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecializationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecializationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Specialization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecializationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecializationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Specialization).
func (m *SpecializationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecializationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, specialization.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, specialization.FieldName)
	}
	if m.description != nil {
		fields = append(fields, specialization.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecializationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specialization.FieldCreatedAt:
		return m.CreatedAt()
	case specialization.FieldName:
		return m.Name()
	case specialization.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecializationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specialization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case specialization.FieldName:
		return m.OldName(ctx)
	case specialization.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Specialization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecializationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specialization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case specialization.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case specialization.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Specialization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecializationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecializationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecializationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Specialization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecializationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specialization.FieldDescription) {
		fields = append(fields, specialization.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecializationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecializationMutation) ClearField(name string) error {
	switch name {
	case specialization.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Specialization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecializationMutation) ResetField(name string) error {
	switch name {
	case specialization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case specialization.FieldName:
		m.ResetName()
		return nil
	case specialization.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Specialization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecializationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.doctors != nil {
		edges = append(edges, specialization.EdgeDoctors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecializationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case specialization.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.doctors))
		for id := range m.doctors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecializationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddoctors != nil {
		edges = append(edges, specialization.EdgeDoctors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecializationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case specialization.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.removeddoctors))
		for id := range m.removeddoctors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecializationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddoctors {
		edges = append(edges, specialization.EdgeDoctors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecializationMutation) EdgeCleared(name string) bool {
	switch name {
	case specialization.EdgeDoctors:
		return m.cleareddoctors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecializationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Specialization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecializationMutation) ResetEdge(name string) error {
	switch name {
	case specialization.EdgeDoctors:
		m.ResetDoctors()
		return nil
	}
	return fmt.Errorf("unknown Specialization edge %s", name)
}

// TestimonialMutation represents an operation that mutates the Testimonial nodes in the graph.
type TestimonialMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	content        *string
	rating         *int
	addrating      *int
	status         *testimonial.Status
	image_key      *string
	submitted_at   *time.Time
	approved_at    *time.Time
	approved_by_id *uuid.UUID
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	service        *uuid.UUID
	clearedservice bool
	doctor         *uuid.UUID
	cleareddoctor  bool
	done           bool
	oldValue       func(context.Context) (*Testimonial, error)
	predicates     []predicate.Testimonial
}

var _ ent.Mutation = (*TestimonialMutation)(nil)

// testimonialOption allows management of the mutation configuration using functional options.
type testimonialOption func(*TestimonialMutation)

// newTestimonialMutation creates new mutation for the Testimonial entity.
func newTestimonialMutation(c config, op Op, opts ...testimonialOption) *TestimonialMutation {
	m := &TestimonialMutation{
		config:        c,
		op:            op,
		typ:           TypeTestimonial,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestimonialID sets the ID field of the mutation.
func withTestimonialID(id uuid.UUID) testimonialOption {
	return func(m *TestimonialMutation) {
		var (
			err   error
			once  sync.Once
			value *Testimonial
		)
		m.oldValue = func(ctx context.Context) (*Testimonial, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Testimonial.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestimonial sets the old Testimonial of the mutation.
func withTestimonial(node *Testimonial) testimonialOption {
	return func(m *TestimonialMutation) {
		m.oldValue = func(context.Context) (*Testimonial, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestimonialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestimonialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Testimonial entities.
func (m *TestimonialMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestimonialMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestimonialMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Testimonial.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TestimonialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestimonialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestimonialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestimonialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestimonialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestimonialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *TestimonialMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *TestimonialMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *TestimonialMutation) ResetPatientID() {
	m.patient = nil
}

// SetContent sets the "content" field.
func (m *TestimonialMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TestimonialMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TestimonialMutation) ResetContent() {
	m.content = nil
}

// SetRating sets the "rating" field.
func (m *TestimonialMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *TestimonialMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *TestimonialMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *TestimonialMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *TestimonialMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetStatus sets the "status" field.
func (m *TestimonialMutation) SetStatus(t testimonial.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TestimonialMutation) Status() (r testimonial.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldStatus(ctx context.Context) (v testimonial.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TestimonialMutation) ResetStatus() {
	m.status = nil
}

// SetServiceID sets the "service_id" field.
func (m *TestimonialMutation) SetServiceID(u uuid.UUID) {
	m.service = &u
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *TestimonialMutation) ServiceID() (r uuid.UUID, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldServiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ClearServiceID clears the value of the "service_id" field.
func (m *TestimonialMutation) ClearServiceID() {
	m.service = nil
	m.clearedFields[testimonial.FieldServiceID] = struct{}{}
}

// ServiceIDCleared returns if the "service_id" field was cleared in this mutation.
func (m *TestimonialMutation) ServiceIDCleared() bool {
	_, ok := m.clearedFields[testimonial.FieldServiceID]
	return ok
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *TestimonialMutation) ResetServiceID() {
	m.service = nil
	delete(m.clearedFields, testimonial.FieldServiceID)
}

// SetDoctorID sets the "doctor_id" field.
func (m *TestimonialMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *TestimonialMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (m *TestimonialMutation) ClearDoctorID() {
	m.doctor = nil
	m.clearedFields[testimonial.FieldDoctorID] = struct{}{}
}

// DoctorIDCleared returns if the "doctor_id" field was cleared in this mutation.
func (m *TestimonialMutation) DoctorIDCleared() bool {
	_, ok := m.clearedFields[testimonial.FieldDoctorID]
	return ok
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *TestimonialMutation) ResetDoctorID() {
	m.doctor = nil
	delete(m.clearedFields, testimonial.FieldDoctorID)
}

// SetImageKey sets the "image_key" field.
func (m *TestimonialMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *TestimonialMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *TestimonialMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[testimonial.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *TestimonialMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[testimonial.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *TestimonialMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, testimonial.FieldImageKey)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *TestimonialMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *TestimonialMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *TestimonialMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetApprovedAt sets the "approved_at" field.
func (m *TestimonialMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *TestimonialMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *TestimonialMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[testimonial.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *TestimonialMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[testimonial.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *TestimonialMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, testimonial.FieldApprovedAt)
}

// SetApprovedByID sets the "approved_by_id" field.
func (m *TestimonialMutation) SetApprovedByID(u uuid.UUID) {
	m.approved_by_id = &u
}

// ApprovedByID returns the value of the "approved_by_id" field in the mutation.
func (m *TestimonialMutation) ApprovedByID() (r uuid.UUID, exists bool) {
	v := m.approved_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedByID returns the old "approved_by_id" field's value of the Testimonial entity.
// If the Testimonial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestimonialMutation) OldApprovedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedByID: %w", err)
	}
	return oldValue.ApprovedByID, nil
}

// ClearApprovedByID clears the value of the "approved_by_id" field.
func (m *TestimonialMutation) ClearApprovedByID() {
	m.approved_by_id = nil
	m.clearedFields[testimonial.FieldApprovedByID] = struct{}{}
}

// ApprovedByIDCleared returns if the "approved_by_id" field was cleared in this mutation.
func (m *TestimonialMutation) ApprovedByIDCleared() bool {
	_, ok := m.clearedFields[testimonial.FieldApprovedByID]
	return ok
}

// ResetApprovedByID resets all changes to the "approved_by_id" field.
func (m *TestimonialMutation) ResetApprovedByID() {
	m.approved_by_id = nil
	delete(m.clearedFields, testimonial.FieldApprovedByID)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *TestimonialMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[testimonial.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *TestimonialMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *TestimonialMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *TestimonialMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearService clears the "service" edge to the Service entity.
func (m *TestimonialMutation) ClearService() {
	m.clearedservice = true
	m.clearedFields[testimonial.FieldServiceID] = struct{}{}
}

// ServiceCleared reports if the "service" edge to the Service entity was cleared.
func (m *TestimonialMutation) ServiceCleared() bool {
	return m.ServiceIDCleared() || m.clearedservice
}

// ServiceIDs returns the "service" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceID instead. It exists only for internal usage by the builders.
func (m *TestimonialMutation) ServiceIDs() (ids []uuid.UUID) {
	if id := m.service; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetService resets all changes to the "service" edge.
func (m *TestimonialMutation) ResetService() {
	m.service = nil
	m.clearedservice = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *TestimonialMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[testimonial.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *TestimonialMutation) DoctorCleared() bool {
	return m.DoctorIDCleared() || m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *TestimonialMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *TestimonialMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// Where appends a list predicates to the TestimonialMutation builder.
func (m *TestimonialMutation) Where(ps ...predicate.Testimonial) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestimonialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestimonialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Testimonial, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestimonialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestimonialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Testimonial).
func (m *TestimonialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestimonialMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, testimonial.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, testimonial.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, testimonial.FieldPatientID)
	}
	if m.content != nil {
		fields = append(fields, testimonial.FieldContent)
	}
	if m.rating != nil {
		fields = append(fields, testimonial.FieldRating)
	}
	if m.status != nil {
		fields = append(fields, testimonial.FieldStatus)
	}
	if m.service != nil {
		fields = append(fields, testimonial.FieldServiceID)
	}
	if m.doctor != nil {
		fields = append(fields, testimonial.FieldDoctorID)
	}
	if m.image_key != nil {
		fields = append(fields, testimonial.FieldImageKey)
	}
	if m.submitted_at != nil {
		fields = append(fields, testimonial.FieldSubmittedAt)
	}
	if m.approved_at != nil {
		fields = append(fields, testimonial.FieldApprovedAt)
	}
	if m.approved_by_id != nil {
		fields = append(fields, testimonial.FieldApprovedByID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestimonialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testimonial.FieldCreatedAt:
		return m.CreatedAt()
	case testimonial.FieldUpdatedAt:
		return m.UpdatedAt()
	case testimonial.FieldPatientID:
		return m.PatientID()
	case testimonial.FieldContent:
		return m.Content()
	case testimonial.FieldRating:
		return m.Rating()
	case testimonial.FieldStatus:
		return m.Status()
	case testimonial.FieldServiceID:
		return m.ServiceID()
	case testimonial.FieldDoctorID:
		return m.DoctorID()
	case testimonial.FieldImageKey:
		return m.ImageKey()
	case testimonial.FieldSubmittedAt:
		return m.SubmittedAt()
	case testimonial.FieldApprovedAt:
		return m.ApprovedAt()
	case testimonial.FieldApprovedByID:
		return m.ApprovedByID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestimonialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testimonial.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case testimonial.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case testimonial.FieldPatientID:
		return m.OldPatientID(ctx)
	case testimonial.FieldContent:
		return m.OldContent(ctx)
	case testimonial.FieldRating:
		return m.OldRating(ctx)
	case testimonial.FieldStatus:
		return m.OldStatus(ctx)
	case testimonial.FieldServiceID:
		return m.OldServiceID(ctx)
	case testimonial.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case testimonial.FieldImageKey:
		return m.OldImageKey(ctx)
	case testimonial.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case testimonial.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case testimonial.FieldApprovedByID:
		return m.OldApprovedByID(ctx)
	}
	return nil, fmt.Errorf("unknown Testimonial field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestimonialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testimonial.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case testimonial.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case testimonial.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case testimonial.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case testimonial.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case testimonial.FieldStatus:
		v, ok := value.(testimonial.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case testimonial.FieldServiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case testimonial.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case testimonial.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	case testimonial.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case testimonial.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case testimonial.FieldApprovedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedByID(v)
		return nil
	}
	return fmt.Errorf("unknown Testimonial field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestimonialMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, testimonial.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestimonialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testimonial.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestimonialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testimonial.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown Testimonial numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestimonialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testimonial.FieldServiceID) {
		fields = append(fields, testimonial.FieldServiceID)
	}
	if m.FieldCleared(testimonial.FieldDoctorID) {
		fields = append(fields, testimonial.FieldDoctorID)
	}
	if m.FieldCleared(testimonial.FieldImageKey) {
		fields = append(fields, testimonial.FieldImageKey)
	}
	if m.FieldCleared(testimonial.FieldApprovedAt) {
		fields = append(fields, testimonial.FieldApprovedAt)
	}
	if m.FieldCleared(testimonial.FieldApprovedByID) {
		fields = append(fields, testimonial.FieldApprovedByID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestimonialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestimonialMutation) ClearField(name string) error {
	switch name {
	case testimonial.FieldServiceID:
		m.ClearServiceID()
		return nil
	case testimonial.FieldDoctorID:
		m.ClearDoctorID()
		return nil
	case testimonial.FieldImageKey:
		m.ClearImageKey()
		return nil
	case testimonial.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case testimonial.FieldApprovedByID:
		m.ClearApprovedByID()
		return nil
	}
	return fmt.Errorf("unknown Testimonial nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestimonialMutation) ResetField(name string) error {
	switch name {
	case testimonial.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case testimonial.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case testimonial.FieldPatientID:
		m.ResetPatientID()
		return nil
	case testimonial.FieldContent:
		m.ResetContent()
		return nil
	case testimonial.FieldRating:
		m.ResetRating()
		return nil
	case testimonial.FieldStatus:
		m.ResetStatus()
		return nil
	case testimonial.FieldServiceID:
		m.ResetServiceID()
		return nil
	case testimonial.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case testimonial.FieldImageKey:
		m.ResetImageKey()
		return nil
	case testimonial.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case testimonial.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case testimonial.FieldApprovedByID:
		m.ResetApprovedByID()
		return nil
	}
	return fmt.Errorf("unknown Testimonial field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestimonialMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, testimonial.EdgePatient)
	}
	if m.service != nil {
		edges = append(edges, testimonial.EdgeService)
	}
	if m.doctor != nil {
		edges = append(edges, testimonial.EdgeDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestimonialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testimonial.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case testimonial.EdgeService:
		if id := m.service; id != nil {
			return []ent.Value{*id}
		}
	case testimonial.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestimonialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestimonialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestimonialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, testimonial.EdgePatient)
	}
	if m.clearedservice {
		edges = append(edges, testimonial.EdgeService)
	}
	if m.cleareddoctor {
		edges = append(edges, testimonial.EdgeDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestimonialMutation) EdgeCleared(name string) bool {
	switch name {
	case testimonial.EdgePatient:
		return m.clearedpatient
	case testimonial.EdgeService:
		return m.clearedservice
	case testimonial.EdgeDoctor:
		return m.cleareddoctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestimonialMutation) ClearEdge(name string) error {
	switch name {
	case testimonial.EdgePatient:
		m.ClearPatient()
		return nil
	case testimonial.EdgeService:
		m.ClearService()
		return nil
	case testimonial.EdgeDoctor:
		m.ClearDoctor()
		return nil
	}
	return fmt.Errorf("unknown Testimonial unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestimonialMutation) ResetEdge(name string) error {
	switch name {
	case testimonial.EdgePatient:
		m.ResetPatient()
		return nil
	case testimonial.EdgeService:
		m.ResetService()
		return nil
	case testimonial.EdgeDoctor:
		m.ResetDoctor()
		return nil
	}
	return fmt.Errorf("unknown Testimonial edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	deleted_at          *time.Time
	user_type           *user.UserType
	first_name          *string
	last_name           *string
	email               *string
	phone               *string
	date_of_birth       *time.Time
	profile_picture_key *string
	password_hash       *string
	is_active           *bool
	last_login_at       *time.Time
	clearedFields       map[string]struct{}
	profile             *uuid.UUID
	clearedprofile      bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetUserType sets the "user_type" field.
func (m *UserMutation) SetUserType(ut user.UserType) {
	m.user_type = &ut
}

// UserType returns the value of the "user_type" field in the mutation.
func (m *UserMutation) UserType() (r user.UserType, exists bool) {
	v := m.user_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUserType returns the old "user_type" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUserType(ctx context.Context) (v user.UserType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserType: %w", err)
	}
	return oldValue.UserType, nil
}

// ResetUserType resets all changes to the "user_type" field.
func (m *UserMutation) ResetUserType() {
	m.user_type = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *UserMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *UserMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *UserMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[user.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *UserMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[user.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *UserMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, user.FieldDateOfBirth)
}

// SetProfilePictureKey sets the "profile_picture_key" field.
func (m *UserMutation) SetProfilePictureKey(s string) {
	m.profile_picture_key = &s
}

// ProfilePictureKey returns the value of the "profile_picture_key" field in the mutation.
func (m *UserMutation) ProfilePictureKey() (r string, exists bool) {
	v := m.profile_picture_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilePictureKey returns the old "profile_picture_key" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfilePictureKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilePictureKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilePictureKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilePictureKey: %w", err)
	}
	return oldValue.ProfilePictureKey, nil
}

// ClearProfilePictureKey clears the value of the "profile_picture_key" field.
func (m *UserMutation) ClearProfilePictureKey() {
	m.profile_picture_key = nil
	m.clearedFields[user.FieldProfilePictureKey] = struct{}{}
}

// ProfilePictureKeyCleared returns if the "profile_picture_key" field was cleared in this mutation.
func (m *UserMutation) ProfilePictureKeyCleared() bool {
	_, ok := m.clearedFields[user.FieldProfilePictureKey]
	return ok
}

// ResetProfilePictureKey resets all changes to the "profile_picture_key" field.
func (m *UserMutation) ResetProfilePictureKey() {
	m.profile_picture_key = nil
	delete(m.clearedFields, user.FieldProfilePictureKey)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetProfileID sets the "profile" edge to the UserProfile entity by id.
func (m *UserMutation) SetProfileID(id uuid.UUID) {
	m.profile = &id
}

// ClearProfile clears the "profile" edge to the UserProfile entity.
func (m *UserMutation) ClearProfile() {
	m.clearedprofile = true
}

// ProfileCleared reports if the "profile" edge to the UserProfile entity was cleared.
func (m *UserMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileID returns the "profile" edge ID in the mutation.
func (m *UserMutation) ProfileID() (id uuid.UUID, exists bool) {
	if m.profile != nil {
		return *m.profile, true
	}
	return
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *UserMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.user_type != nil {
		fields = append(fields, user.FieldUserType)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.date_of_birth != nil {
		fields = append(fields, user.FieldDateOfBirth)
	}
	if m.profile_picture_key != nil {
		fields = append(fields, user.FieldProfilePictureKey)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldUserType:
		return m.UserType()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldDateOfBirth:
		return m.DateOfBirth()
	case user.FieldProfilePictureKey:
		return m.ProfilePictureKey()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldUserType:
		return m.OldUserType(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case user.FieldProfilePictureKey:
		return m.OldProfilePictureKey(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldUserType:
		v, ok := value.(user.UserType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserType(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case user.FieldProfilePictureKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilePictureKey(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldDateOfBirth) {
		fields = append(fields, user.FieldDateOfBirth)
	}
	if m.FieldCleared(user.FieldProfilePictureKey) {
		fields = append(fields, user.FieldProfilePictureKey)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case user.FieldProfilePictureKey:
		m.ClearProfilePictureKey()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldUserType:
		m.ResetUserType()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case user.FieldProfilePictureKey:
		m.ResetProfilePictureKey()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, user.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, user.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	created_at                     *time.Time
	updated_at                     *time.Time
	gender                         *userprofile.Gender
	address                        *string
	city                           *string
	emergency_contact_name         *string
	emergency_contact_phone        *string
	emergency_contact_relationship *string
	medical_conditions             *string
	allergies                      *string
	medications                    *string
	clearedFields                  map[string]struct{}
	user                           *uuid.UUID
	cleareduser                    bool
	done                           bool
	oldValue                       func(context.Context) (*UserProfile, error)
	predicates                     []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id uuid.UUID) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserProfileMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProfileMutation) ResetUserID() {
	m.user = nil
}

// SetGender sets the "gender" field.
func (m *UserProfileMutation) SetGender(u userprofile.Gender) {
	m.gender = &u
}

// Gender returns the value of the "gender" field in the mutation.
func (m *UserProfileMutation) Gender() (r userprofile.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldGender(ctx context.Context) (v *userprofile.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *UserProfileMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[userprofile.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *UserProfileMutation) GenderCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *UserProfileMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, userprofile.FieldGender)
}

// SetAddress sets the "address" field.
func (m *UserProfileMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *UserProfileMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *UserProfileMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[userprofile.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *UserProfileMutation) AddressCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *UserProfileMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, userprofile.FieldAddress)
}

// SetCity sets the "city" field.
func (m *UserProfileMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *UserProfileMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *UserProfileMutation) ClearCity() {
	m.city = nil
	m.clearedFields[userprofile.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *UserProfileMutation) CityCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *UserProfileMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, userprofile.FieldCity)
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (m *UserProfileMutation) SetEmergencyContactName(s string) {
	m.emergency_contact_name = &s
}

// EmergencyContactName returns the value of the "emergency_contact_name" field in the mutation.
func (m *UserProfileMutation) EmergencyContactName() (r string, exists bool) {
	v := m.emergency_contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactName returns the old "emergency_contact_name" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldEmergencyContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactName: %w", err)
	}
	return oldValue.EmergencyContactName, nil
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (m *UserProfileMutation) ClearEmergencyContactName() {
	m.emergency_contact_name = nil
	m.clearedFields[userprofile.FieldEmergencyContactName] = struct{}{}
}

// EmergencyContactNameCleared returns if the "emergency_contact_name" field was cleared in this mutation.
func (m *UserProfileMutation) EmergencyContactNameCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldEmergencyContactName]
	return ok
}

// ResetEmergencyContactName resets all changes to the "emergency_contact_name" field.
func (m *UserProfileMutation) ResetEmergencyContactName() {
	m.emergency_contact_name = nil
	delete(m.clearedFields, userprofile.FieldEmergencyContactName)
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (m *UserProfileMutation) SetEmergencyContactPhone(s string) {
	m.emergency_contact_phone = &s
}

// EmergencyContactPhone returns the value of the "emergency_contact_phone" field in the mutation.
func (m *UserProfileMutation) EmergencyContactPhone() (r string, exists bool) {
	v := m.emergency_contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactPhone returns the old "emergency_contact_phone" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldEmergencyContactPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactPhone: %w", err)
	}
	return oldValue.EmergencyContactPhone, nil
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (m *UserProfileMutation) ClearEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	m.clearedFields[userprofile.FieldEmergencyContactPhone] = struct{}{}
}

// EmergencyContactPhoneCleared returns if the "emergency_contact_phone" field was cleared in this mutation.
func (m *UserProfileMutation) EmergencyContactPhoneCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldEmergencyContactPhone]
	return ok
}

// ResetEmergencyContactPhone resets all changes to the "emergency_contact_phone" field.
func (m *UserProfileMutation) ResetEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	delete(m.clearedFields, userprofile.FieldEmergencyContactPhone)
}

// SetEmergencyContactRelationship sets the "emergency_contact_relationship" field.
func (m *UserProfileMutation) SetEmergencyContactRelationship(s string) {
	m.emergency_contact_relationship = &s
}

// EmergencyContactRelationship returns the value of the "emergency_contact_relationship" field in the mutation.
func (m *UserProfileMutation) EmergencyContactRelationship() (r string, exists bool) {
	v := m.emergency_contact_relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactRelationship returns the old "emergency_contact_relationship" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldEmergencyContactRelationship(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactRelationship: %w", err)
	}
	return oldValue.EmergencyContactRelationship, nil
}

// ClearEmergencyContactRelationship clears the value of the "emergency_contact_relationship" field.
func (m *UserProfileMutation) ClearEmergencyContactRelationship() {
	m.emergency_contact_relationship = nil
	m.clearedFields[userprofile.FieldEmergencyContactRelationship] = struct{}{}
}

// EmergencyContactRelationshipCleared returns if the "emergency_contact_relationship" field was cleared in this mutation.
func (m *UserProfileMutation) EmergencyContactRelationshipCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldEmergencyContactRelationship]
	return ok
}

// ResetEmergencyContactRelationship resets all changes to the "emergency_contact_relationship" field.
func (m *UserProfileMutation) ResetEmergencyContactRelationship() {
	m.emergency_contact_relationship = nil
	delete(m.clearedFields, userprofile.FieldEmergencyContactRelationship)
}

// SetMedicalConditions sets the "medical_conditions" field.
func (m *UserProfileMutation) SetMedicalConditions(s string) {
	m.medical_conditions = &s
}

// MedicalConditions returns the value of the "medical_conditions" field in the mutation.
func (m *UserProfileMutation) MedicalConditions() (r string, exists bool) {
	v := m.medical_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalConditions returns the old "medical_conditions" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldMedicalConditions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalConditions: %w", err)
	}
	return oldValue.MedicalConditions, nil
}

// ClearMedicalConditions clears the value of the "medical_conditions" field.
func (m *UserProfileMutation) ClearMedicalConditions() {
	m.medical_conditions = nil
	m.clearedFields[userprofile.FieldMedicalConditions] = struct{}{}
}

// MedicalConditionsCleared returns if the "medical_conditions" field was cleared in this mutation.
func (m *UserProfileMutation) MedicalConditionsCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldMedicalConditions]
	return ok
}

// ResetMedicalConditions resets all changes to the "medical_conditions" field.
func (m *UserProfileMutation) ResetMedicalConditions() {
	m.medical_conditions = nil
	delete(m.clearedFields, userprofile.FieldMedicalConditions)
}

// SetAllergies sets the "allergies" field.
func (m *UserProfileMutation) SetAllergies(s string) {
	m.allergies = &s
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *UserProfileMutation) Allergies() (r string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAllergies(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// ClearAllergies clears the value of the "allergies" field.
func (m *UserProfileMutation) ClearAllergies() {
	m.allergies = nil
	m.clearedFields[userprofile.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *UserProfileMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *UserProfileMutation) ResetAllergies() {
	m.allergies = nil
	delete(m.clearedFields, userprofile.FieldAllergies)
}

// SetMedications sets the "medications" field.
func (m *UserProfileMutation) SetMedications(s string) {
	m.medications = &s
}

// Medications returns the value of the "medications" field in the mutation.
func (m *UserProfileMutation) Medications() (r string, exists bool) {
	v := m.medications
	if v == nil {
		return
	}
	return *v, true
}

// OldMedications returns the old "medications" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldMedications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedications: %w", err)
	}
	return oldValue.Medications, nil
}

// ClearMedications clears the value of the "medications" field.
func (m *UserProfileMutation) ClearMedications() {
	m.medications = nil
	m.clearedFields[userprofile.FieldMedications] = struct{}{}
}

// MedicationsCleared returns if the "medications" field was cleared in this mutation.
func (m *UserProfileMutation) MedicationsCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldMedications]
	return ok
}

// ResetMedications resets all changes to the "medications" field.
func (m *UserProfileMutation) ResetMedications() {
	m.medications = nil
	delete(m.clearedFields, userprofile.FieldMedications)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[userprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserProfileMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, userprofile.FieldUserID)
	}
	if m.gender != nil {
		fields = append(fields, userprofile.FieldGender)
	}
	if m.address != nil {
		fields = append(fields, userprofile.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, userprofile.FieldCity)
	}
	if m.emergency_contact_name != nil {
		fields = append(fields, userprofile.FieldEmergencyContactName)
	}
	if m.emergency_contact_phone != nil {
		fields = append(fields, userprofile.FieldEmergencyContactPhone)
	}
	if m.emergency_contact_relationship != nil {
		fields = append(fields, userprofile.FieldEmergencyContactRelationship)
	}
	if m.medical_conditions != nil {
		fields = append(fields, userprofile.FieldMedicalConditions)
	}
	if m.allergies != nil {
		fields = append(fields, userprofile.FieldAllergies)
	}
	if m.medications != nil {
		fields = append(fields, userprofile.FieldMedications)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case userprofile.FieldUserID:
		return m.UserID()
	case userprofile.FieldGender:
		return m.Gender()
	case userprofile.FieldAddress:
		return m.Address()
	case userprofile.FieldCity:
		return m.City()
	case userprofile.FieldEmergencyContactName:
		return m.EmergencyContactName()
	case userprofile.FieldEmergencyContactPhone:
		return m.EmergencyContactPhone()
	case userprofile.FieldEmergencyContactRelationship:
		return m.EmergencyContactRelationship()
	case userprofile.FieldMedicalConditions:
		return m.MedicalConditions()
	case userprofile.FieldAllergies:
		return m.Allergies()
	case userprofile.FieldMedications:
		return m.Medications()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case userprofile.FieldUserID:
		return m.OldUserID(ctx)
	case userprofile.FieldGender:
		return m.OldGender(ctx)
	case userprofile.FieldAddress:
		return m.OldAddress(ctx)
	case userprofile.FieldCity:
		return m.OldCity(ctx)
	case userprofile.FieldEmergencyContactName:
		return m.OldEmergencyContactName(ctx)
	case userprofile.FieldEmergencyContactPhone:
		return m.OldEmergencyContactPhone(ctx)
	case userprofile.FieldEmergencyContactRelationship:
		return m.OldEmergencyContactRelationship(ctx)
	case userprofile.FieldMedicalConditions:
		return m.OldMedicalConditions(ctx)
	case userprofile.FieldAllergies:
		return m.OldAllergies(ctx)
	case userprofile.FieldMedications:
		return m.OldMedications(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case userprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprofile.FieldGender:
		v, ok := value.(userprofile.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case userprofile.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case userprofile.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case userprofile.FieldEmergencyContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactName(v)
		return nil
	case userprofile.FieldEmergencyContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactPhone(v)
		return nil
	case userprofile.FieldEmergencyContactRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactRelationship(v)
		return nil
	case userprofile.FieldMedicalConditions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalConditions(v)
		return nil
	case userprofile.FieldAllergies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case userprofile.FieldMedications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedications(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldGender) {
		fields = append(fields, userprofile.FieldGender)
	}
	if m.FieldCleared(userprofile.FieldAddress) {
		fields = append(fields, userprofile.FieldAddress)
	}
	if m.FieldCleared(userprofile.FieldCity) {
		fields = append(fields, userprofile.FieldCity)
	}
	if m.FieldCleared(userprofile.FieldEmergencyContactName) {
		fields = append(fields, userprofile.FieldEmergencyContactName)
	}
	if m.FieldCleared(userprofile.FieldEmergencyContactPhone) {
		fields = append(fields, userprofile.FieldEmergencyContactPhone)
	}
	if m.FieldCleared(userprofile.FieldEmergencyContactRelationship) {
		fields = append(fields, userprofile.FieldEmergencyContactRelationship)
	}
	if m.FieldCleared(userprofile.FieldMedicalConditions) {
		fields = append(fields, userprofile.FieldMedicalConditions)
	}
	if m.FieldCleared(userprofile.FieldAllergies) {
		fields = append(fields, userprofile.FieldAllergies)
	}
	if m.FieldCleared(userprofile.FieldMedications) {
		fields = append(fields, userprofile.FieldMedications)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldGender:
		m.ClearGender()
		return nil
	case userprofile.FieldAddress:
		m.ClearAddress()
		return nil
	case userprofile.FieldCity:
		m.ClearCity()
		return nil
	case userprofile.FieldEmergencyContactName:
		m.ClearEmergencyContactName()
		return nil
	case userprofile.FieldEmergencyContactPhone:
		m.ClearEmergencyContactPhone()
		return nil
	case userprofile.FieldEmergencyContactRelationship:
		m.ClearEmergencyContactRelationship()
		return nil
	case userprofile.FieldMedicalConditions:
		m.ClearMedicalConditions()
		return nil
	case userprofile.FieldAllergies:
		m.ClearAllergies()
		return nil
	case userprofile.FieldMedications:
		m.ClearMedications()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case userprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case userprofile.FieldGender:
		m.ResetGender()
		return nil
	case userprofile.FieldAddress:
		m.ResetAddress()
		return nil
	case userprofile.FieldCity:
		m.ResetCity()
		return nil
	case userprofile.FieldEmergencyContactName:
		m.ResetEmergencyContactName()
		return nil
	case userprofile.FieldEmergencyContactPhone:
		m.ResetEmergencyContactPhone()
		return nil
	case userprofile.FieldEmergencyContactRelationship:
		m.ResetEmergencyContactRelationship()
		return nil
	case userprofile.FieldMedicalConditions:
		m.ResetMedicalConditions()
		return nil
	case userprofile.FieldAllergies:
		m.ResetAllergies()
		return nil
	case userprofile.FieldMedications:
		m.ResetMedications()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, userprofile.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, userprofile.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case userprofile.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	switch name {
	case userprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	switch name {
	case userprofile.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserProfile edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}

// WaitingListMutation represents an operation that mutates the WaitingList nodes in the graph.
type WaitingListMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	preferred_date *time.Time
	preferred_time *string
	earliest_date  *time.Time
	latest_date    *time.Time
	notes          *string
	is_active      *bool
	notified       *bool
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	doctor         *uuid.UUID
	cleareddoctor  bool
	service        *uuid.UUID
	clearedservice bool
	done           bool
	oldValue       func(context.Context) (*WaitingList, error)
	predicates     []predicate.WaitingList
}

var _ ent.Mutation = (*WaitingListMutation)(nil)

// waitinglistOption allows management of the mutation configuration using functional options.
type waitinglistOption func(*WaitingListMutation)

// newWaitingListMutation creates new mutation for the WaitingList entity.
func newWaitingListMutation(c config, op Op, opts ...waitinglistOption) *WaitingListMutation {
	m := &WaitingListMutation{
		config:        c,
		op:            op,
		typ:           TypeWaitingList,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWaitingListID sets the ID field of the mutation.
func withWaitingListID(id uuid.UUID) waitinglistOption {
	return func(m *WaitingListMutation) {
		var (
			err   error
			once  sync.Once
			value *WaitingList
		)
		m.oldValue = func(ctx context.Context) (*WaitingList, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WaitingList.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWaitingList sets the old WaitingList of the mutation.
func withWaitingList(node *WaitingList) waitinglistOption {
	return func(m *WaitingListMutation) {
		m.oldValue = func(context.Context) (*WaitingList, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WaitingListMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WaitingListMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WaitingList entities.
func (m *WaitingListMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WaitingListMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WaitingListMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WaitingList.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WaitingListMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WaitingListMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WaitingListMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *WaitingListMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *WaitingListMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *WaitingListMutation) ResetPatientID() {
	m.patient = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *WaitingListMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *WaitingListMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *WaitingListMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetServiceID sets the "service_id" field.
func (m *WaitingListMutation) SetServiceID(u uuid.UUID) {
	m.service = &u
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *WaitingListMutation) ServiceID() (r uuid.UUID, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldServiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ClearServiceID clears the value of the "service_id" field.
func (m *WaitingListMutation) ClearServiceID() {
	m.service = nil
	m.clearedFields[waitinglist.FieldServiceID] = struct{}{}
}

// ServiceIDCleared returns if the "service_id" field was cleared in this mutation.
func (m *WaitingListMutation) ServiceIDCleared() bool {
	_, ok := m.clearedFields[waitinglist.FieldServiceID]
	return ok
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *WaitingListMutation) ResetServiceID() {
	m.service = nil
	delete(m.clearedFields, waitinglist.FieldServiceID)
}

// SetPreferredDate sets the "preferred_date" field.
func (m *WaitingListMutation) SetPreferredDate(t time.Time) {
	m.preferred_date = &t
}

// PreferredDate returns the value of the "preferred_date" field in the mutation.
func (m *WaitingListMutation) PreferredDate() (r time.Time, exists bool) {
	v := m.preferred_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredDate returns the old "preferred_date" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldPreferredDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredDate: %w", err)
	}
	return oldValue.PreferredDate, nil
}

// ClearPreferredDate clears the value of the "preferred_date" field.
func (m *WaitingListMutation) ClearPreferredDate() {
	m.preferred_date = nil
	m.clearedFields[waitinglist.FieldPreferredDate] = struct{}{}
}

// PreferredDateCleared returns if the "preferred_date" field was cleared in this mutation.
func (m *WaitingListMutation) PreferredDateCleared() bool {
	_, ok := m.clearedFields[waitinglist.FieldPreferredDate]
	return ok
}

// ResetPreferredDate resets all changes to the "preferred_date" field.
func (m *WaitingListMutation) ResetPreferredDate() {
	m.preferred_date = nil
	delete(m.clearedFields, waitinglist.FieldPreferredDate)
}

// SetPreferredTime sets the "preferred_time" field.
func (m *WaitingListMutation) SetPreferredTime(s string) {
	m.preferred_time = &s
}

// PreferredTime returns the value of the "preferred_time" field in the mutation.
func (m *WaitingListMutation) PreferredTime() (r string, exists bool) {
	v := m.preferred_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredTime returns the old "preferred_time" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldPreferredTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredTime: %w", err)
	}
	return oldValue.PreferredTime, nil
}

// ClearPreferredTime clears the value of the "preferred_time" field.
func (m *WaitingListMutation) ClearPreferredTime() {
	m.preferred_time = nil
	m.clearedFields[waitinglist.FieldPreferredTime] = struct{}{}
}

// PreferredTimeCleared returns if the "preferred_time" field was cleared in this mutation.
func (m *WaitingListMutation) PreferredTimeCleared() bool {
	_, ok := m.clearedFields[waitinglist.FieldPreferredTime]
	return ok
}

// ResetPreferredTime resets all changes to the "preferred_time" field.
func (m *WaitingListMutation) ResetPreferredTime() {
	m.preferred_time = nil
	delete(m.clearedFields, waitinglist.FieldPreferredTime)
}

// SetEarliestDate sets the "earliest_date" field.
func (m *WaitingListMutation) SetEarliestDate(t time.Time) {
	m.earliest_date = &t
}

// EarliestDate returns the value of the "earliest_date" field in the mutation.
func (m *WaitingListMutation) EarliestDate() (r time.Time, exists bool) {
	v := m.earliest_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEarliestDate returns the old "earliest_date" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldEarliestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarliestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarliestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarliestDate: %w", err)
	}
	return oldValue.EarliestDate, nil
}

// ResetEarliestDate resets all changes to the "earliest_date" field.
func (m *WaitingListMutation) ResetEarliestDate() {
	m.earliest_date = nil
}

// SetLatestDate sets the "latest_date" field.
func (m *WaitingListMutation) SetLatestDate(t time.Time) {
	m.latest_date = &t
}

// LatestDate returns the value of the "latest_date" field in the mutation.
func (m *WaitingListMutation) LatestDate() (r time.Time, exists bool) {
	v := m.latest_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestDate returns the old "latest_date" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldLatestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestDate: %w", err)
	}
	return oldValue.LatestDate, nil
}

// ResetLatestDate resets all changes to the "latest_date" field.
func (m *WaitingListMutation) ResetLatestDate() {
	m.latest_date = nil
}

// SetNotes sets the "notes" field.
func (m *WaitingListMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *WaitingListMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *WaitingListMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[waitinglist.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *WaitingListMutation) NotesCleared() bool {
	_, ok := m.clearedFields[waitinglist.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *WaitingListMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, waitinglist.FieldNotes)
}

// SetIsActive sets the "is_active" field.
func (m *WaitingListMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WaitingListMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WaitingListMutation) ResetIsActive() {
	m.is_active = nil
}

// SetNotified sets the "notified" field.
func (m *WaitingListMutation) SetNotified(b bool) {
	m.notified = &b
}

// Notified returns the value of the "notified" field in the mutation.
func (m *WaitingListMutation) Notified() (r bool, exists bool) {
	v := m.notified
	if v == nil {
		return
	}
	return *v, true
}

// OldNotified returns the old "notified" field's value of the WaitingList entity.
// If the WaitingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaitingListMutation) OldNotified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotified: %w", err)
	}
	return oldValue.Notified, nil
}

// ResetNotified resets all changes to the "notified" field.
func (m *WaitingListMutation) ResetNotified() {
	m.notified = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *WaitingListMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[waitinglist.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *WaitingListMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *WaitingListMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *WaitingListMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *WaitingListMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[waitinglist.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *WaitingListMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *WaitingListMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *WaitingListMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// ClearService clears the "service" edge to the Service entity.
func (m *WaitingListMutation) ClearService() {
	m.clearedservice = true
	m.clearedFields[waitinglist.FieldServiceID] = struct{}{}
}

// ServiceCleared reports if the "service" edge to the Service entity was cleared.
func (m *WaitingListMutation) ServiceCleared() bool {
	return m.ServiceIDCleared() || m.clearedservice
}

// ServiceIDs returns the "service" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServiceID instead. It exists only for internal usage by the builders.
func (m *WaitingListMutation) ServiceIDs() (ids []uuid.UUID) {
	if id := m.service; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetService resets all changes to the "service" edge.
func (m *WaitingListMutation) ResetService() {
	m.service = nil
	m.clearedservice = false
}

// Where appends a list predicates to the WaitingListMutation builder.
func (m *WaitingListMutation) Where(ps ...predicate.WaitingList) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WaitingListMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WaitingListMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WaitingList, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WaitingListMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WaitingListMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WaitingList).
func (m *WaitingListMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WaitingListMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, waitinglist.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, waitinglist.FieldPatientID)
	}
	if m.doctor != nil {
		fields = append(fields, waitinglist.FieldDoctorID)
	}
	if m.service != nil {
		fields = append(fields, waitinglist.FieldServiceID)
	}
	if m.preferred_date != nil {
		fields = append(fields, waitinglist.FieldPreferredDate)
	}
	if m.preferred_time != nil {
		fields = append(fields, waitinglist.FieldPreferredTime)
	}
	if m.earliest_date != nil {
		fields = append(fields, waitinglist.FieldEarliestDate)
	}
	if m.latest_date != nil {
		fields = append(fields, waitinglist.FieldLatestDate)
	}
	if m.notes != nil {
		fields = append(fields, waitinglist.FieldNotes)
	}
	if m.is_active != nil {
		fields = append(fields, waitinglist.FieldIsActive)
	}
	if m.notified != nil {
		fields = append(fields, waitinglist.FieldNotified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WaitingListMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case waitinglist.FieldCreatedAt:
		return m.CreatedAt()
	case waitinglist.FieldPatientID:
		return m.PatientID()
	case waitinglist.FieldDoctorID:
		return m.DoctorID()
	case waitinglist.FieldServiceID:
		return m.ServiceID()
	case waitinglist.FieldPreferredDate:
		return m.PreferredDate()
	case waitinglist.FieldPreferredTime:
		return m.PreferredTime()
	case waitinglist.FieldEarliestDate:
		return m.EarliestDate()
	case waitinglist.FieldLatestDate:
		return m.LatestDate()
	case waitinglist.FieldNotes:
		return m.Notes()
	case waitinglist.FieldIsActive:
		return m.IsActive()
	case waitinglist.FieldNotified:
		return m.Notified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WaitingListMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case waitinglist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case waitinglist.FieldPatientID:
		return m.OldPatientID(ctx)
	case waitinglist.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case waitinglist.FieldServiceID:
		return m.OldServiceID(ctx)
	case waitinglist.FieldPreferredDate:
		return m.OldPreferredDate(ctx)
	case waitinglist.FieldPreferredTime:
		return m.OldPreferredTime(ctx)
	case waitinglist.FieldEarliestDate:
		return m.OldEarliestDate(ctx)
	case waitinglist.FieldLatestDate:
		return m.OldLatestDate(ctx)
	case waitinglist.FieldNotes:
		return m.OldNotes(ctx)
	case waitinglist.FieldIsActive:
		return m.OldIsActive(ctx)
	case waitinglist.FieldNotified:
		return m.OldNotified(ctx)
	}
	return nil, fmt.Errorf("unknown WaitingList field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaitingListMutation) SetField(name string, value ent.Value) error {
	switch name {
	case waitinglist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case waitinglist.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case waitinglist.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case waitinglist.FieldServiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case waitinglist.FieldPreferredDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredDate(v)
		return nil
	case waitinglist.FieldPreferredTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredTime(v)
		return nil
	case waitinglist.FieldEarliestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarliestDate(v)
		return nil
	case waitinglist.FieldLatestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestDate(v)
		return nil
	case waitinglist.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case waitinglist.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case waitinglist.FieldNotified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotified(v)
		return nil
	}
	return fmt.Errorf("unknown WaitingList field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WaitingListMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WaitingListMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaitingListMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WaitingList numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WaitingListMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(waitinglist.FieldServiceID) {
		fields = append(fields, waitinglist.FieldServiceID)
	}
	if m.FieldCleared(waitinglist.FieldPreferredDate) {
		fields = append(fields, waitinglist.FieldPreferredDate)
	}
	if m.FieldCleared(waitinglist.FieldPreferredTime) {
		fields = append(fields, waitinglist.FieldPreferredTime)
	}
	if m.FieldCleared(waitinglist.FieldNotes) {
		fields = append(fields, waitinglist.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WaitingListMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WaitingListMutation) ClearField(name string) error {
	switch name {
	case waitinglist.FieldServiceID:
		m.ClearServiceID()
		return nil
	case waitinglist.FieldPreferredDate:
		m.ClearPreferredDate()
		return nil
	case waitinglist.FieldPreferredTime:
		m.ClearPreferredTime()
		return nil
	case waitinglist.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown WaitingList nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WaitingListMutation) ResetField(name string) error {
	switch name {
	case waitinglist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case waitinglist.FieldPatientID:
		m.ResetPatientID()
		return nil
	case waitinglist.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case waitinglist.FieldServiceID:
		m.ResetServiceID()
		return nil
	case waitinglist.FieldPreferredDate:
		m.ResetPreferredDate()
		return nil
	case waitinglist.FieldPreferredTime:
		m.ResetPreferredTime()
		return nil
	case waitinglist.FieldEarliestDate:
		m.ResetEarliestDate()
		return nil
	case waitinglist.FieldLatestDate:
		m.ResetLatestDate()
		return nil
	case waitinglist.FieldNotes:
		m.ResetNotes()
		return nil
	case waitinglist.FieldIsActive:
		m.ResetIsActive()
		return nil
	case waitinglist.FieldNotified:
		m.ResetNotified()
		return nil
	}
	return fmt.Errorf("unknown WaitingList field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WaitingListMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, waitinglist.EdgePatient)
	}
	if m.doctor != nil {
		edges = append(edges, waitinglist.EdgeDoctor)
	}
	if m.service != nil {
		edges = append(edges, waitinglist.EdgeService)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WaitingListMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case waitinglist.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case waitinglist.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case waitinglist.EdgeService:
		if id := m.service; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WaitingListMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WaitingListMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WaitingListMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, waitinglist.EdgePatient)
	}
	if m.cleareddoctor {
		edges = append(edges, waitinglist.EdgeDoctor)
	}
	if m.clearedservice {
		edges = append(edges, waitinglist.EdgeService)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WaitingListMutation) EdgeCleared(name string) bool {
	switch name {
	case waitinglist.EdgePatient:
		return m.clearedpatient
	case waitinglist.EdgeDoctor:
		return m.cleareddoctor
	case waitinglist.EdgeService:
		return m.clearedservice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WaitingListMutation) ClearEdge(name string) error {
	switch name {
	case waitinglist.EdgePatient:
		m.ClearPatient()
		return nil
	case waitinglist.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case waitinglist.EdgeService:
		m.ClearService()
		return nil
	}
	return fmt.Errorf("unknown WaitingList unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WaitingListMutation) ResetEdge(name string) error {
	switch name {
	case waitinglist.EdgePatient:
		m.ResetPatient()
		return nil
	case waitinglist.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case waitinglist.EdgeService:
		m.ResetService()
		return nil
	}
	return fmt.Errorf("unknown WaitingList edge %s", name)
}
