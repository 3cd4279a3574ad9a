// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentCreate) SetAppointmentID(v string) *AppointmentCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentCreate) SetPatientID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AppointmentCreate) SetDoctorID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *AppointmentCreate) SetServiceID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableServiceID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetAppointmentTypeID sets the "appointment_type_id" field.
func (_c *AppointmentCreate) SetAppointmentTypeID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetAppointmentTypeID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *AppointmentCreate) SetDurationMin(v int) *AppointmentCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AppointmentCreate) SetEndTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AppointmentCreate) SetPriority(v appointment.Priority) *AppointmentCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePriority(v *appointment.Priority) *AppointmentCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetConsultationType sets the "consultation_type" field.
func (_c *AppointmentCreate) SetConsultationType(v appointment.ConsultationType) *AppointmentCreate {
	_c.mutation.SetConsultationType(v)
	return _c
}

// SetNillableConsultationType sets the "consultation_type" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableConsultationType(v *appointment.ConsultationType) *AppointmentCreate {
	if v != nil {
		_c.SetConsultationType(*v)
	}
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *AppointmentCreate) SetChiefComplaint(v string) *AppointmentCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableChiefComplaint(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetChiefComplaint(*v)
	}
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *AppointmentCreate) SetSymptoms(v string) *AppointmentCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableSymptoms(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetSymptoms(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AppointmentCreate) SetNotes(v string) *AppointmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNotes(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetIsFollowUp sets the "is_follow_up" field.
func (_c *AppointmentCreate) SetIsFollowUp(v bool) *AppointmentCreate {
	_c.mutation.SetIsFollowUp(v)
	return _c
}

// SetNillableIsFollowUp sets the "is_follow_up" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableIsFollowUp(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetIsFollowUp(*v)
	}
	return _c
}

// SetPreviousAppointmentID sets the "previous_appointment_id" field.
func (_c *AppointmentCreate) SetPreviousAppointmentID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPreviousAppointmentID(v)
	return _c
}

// SetNillablePreviousAppointmentID sets the "previous_appointment_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePreviousAppointmentID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetPreviousAppointmentID(*v)
	}
	return _c
}

// SetBookedByID sets the "booked_by_id" field.
func (_c *AppointmentCreate) SetBookedByID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetBookedByID(v)
	return _c
}

// SetNillableBookedByID sets the "booked_by_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableBookedByID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetBookedByID(*v)
	}
	return _c
}

// SetBookingSource sets the "booking_source" field.
func (_c *AppointmentCreate) SetBookingSource(v appointment.BookingSource) *AppointmentCreate {
	_c.mutation.SetBookingSource(v)
	return _c
}

// SetNillableBookingSource sets the "booking_source" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableBookingSource(v *appointment.BookingSource) *AppointmentCreate {
	if v != nil {
		_c.SetBookingSource(*v)
	}
	return _c
}

// SetIsConfirmed sets the "is_confirmed" field.
func (_c *AppointmentCreate) SetIsConfirmed(v bool) *AppointmentCreate {
	_c.mutation.SetIsConfirmed(v)
	return _c
}

// SetNillableIsConfirmed sets the "is_confirmed" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableIsConfirmed(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetIsConfirmed(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *AppointmentCreate) SetConfirmedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableConfirmedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetReminderSent sets the "reminder_sent" field.
func (_c *AppointmentCreate) SetReminderSent(v bool) *AppointmentCreate {
	_c.mutation.SetReminderSent(v)
	return _c
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableReminderSent(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetReminderSent(*v)
	}
	return _c
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_c *AppointmentCreate) SetReminderSentAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetReminderSentAt(v)
	return _c
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableReminderSentAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetReminderSentAt(*v)
	}
	return _c
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_c *AppointmentCreate) SetCheckedInAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCheckedInAt(v)
	return _c
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCheckedInAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCheckedInAt(*v)
	}
	return _c
}

// SetCheckedInByID sets the "checked_in_by_id" field.
func (_c *AppointmentCreate) SetCheckedInByID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetCheckedInByID(v)
	return _c
}

// SetNillableCheckedInByID sets the "checked_in_by_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCheckedInByID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetCheckedInByID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AppointmentCreate) SetStartedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStartedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AppointmentCreate) SetCompletedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCompletedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetActualDurationMin sets the "actual_duration_min" field.
func (_c *AppointmentCreate) SetActualDurationMin(v int) *AppointmentCreate {
	_c.mutation.SetActualDurationMin(v)
	return _c
}

// SetNillableActualDurationMin sets the "actual_duration_min" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableActualDurationMin(v *int) *AppointmentCreate {
	if v != nil {
		_c.SetActualDurationMin(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancelledByID sets the "cancelled_by_id" field.
func (_c *AppointmentCreate) SetCancelledByID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetCancelledByID(v)
	return _c
}

// SetNillableCancelledByID sets the "cancelled_by_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledByID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledByID(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *AppointmentCreate) SetCancellationReason(v string) *AppointmentCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancellationReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetMeetingLink sets the "meeting_link" field.
func (_c *AppointmentCreate) SetMeetingLink(v string) *AppointmentCreate {
	_c.mutation.SetMeetingLink(v)
	return _c
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableMeetingLink(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetMeetingLink(*v)
	}
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *AppointmentCreate) SetMeetingID(v string) *AppointmentCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableMeetingID(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetMeetingPassword sets the "meeting_password" field.
func (_c *AppointmentCreate) SetMeetingPassword(v string) *AppointmentCreate {
	_c.mutation.SetMeetingPassword(v)
	return _c
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableMeetingPassword(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetMeetingPassword(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *AppointmentCreate) SetEstimatedCost(v int64) *AppointmentCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableEstimatedCost(v *int64) *AppointmentCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *AppointmentCreate) SetPatient(v *Patient) *AppointmentCreate {
	return _c.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *AppointmentCreate) SetDoctor(v *Doctor) *AppointmentCreate {
	return _c.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_c *AppointmentCreate) SetService(v *Service) *AppointmentCreate {
	return _c.SetServiceID(v.ID)
}

// SetAppointmentType sets the "appointment_type" edge to the AppointmentType entity.
func (_c *AppointmentCreate) SetAppointmentType(v *AppointmentType) *AppointmentCreate {
	return _c.SetAppointmentTypeID(v.ID)
}

// SetPreviousAppointment sets the "previous_appointment" edge to the Appointment entity.
func (_c *AppointmentCreate) SetPreviousAppointment(v *Appointment) *AppointmentCreate {
	return _c.SetPreviousAppointmentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Appointment entity by IDs.
func (_c *AppointmentCreate) AddFollowUpIDs(ids ...uuid.UUID) *AppointmentCreate {
	_c.mutation.AddFollowUpIDs(ids...)
	return _c
}

// AddFollowUps adds the "follow_ups" edges to the Appointment entity.
func (_c *AppointmentCreate) AddFollowUps(v ...*Appointment) *AppointmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFollowUpIDs(ids...)
}

// AddRescheduleIDs adds the "reschedules" edge to the AppointmentReschedule entity by IDs.
func (_c *AppointmentCreate) AddRescheduleIDs(ids ...uuid.UUID) *AppointmentCreate {
	_c.mutation.AddRescheduleIDs(ids...)
	return _c
}

// AddReschedules adds the "reschedules" edges to the AppointmentReschedule entity.
func (_c *AppointmentCreate) AddReschedules(v ...*AppointmentReschedule) *AppointmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRescheduleIDs(ids...)
}

// AddAppointmentNoteIDs adds the "appointment_notes" edge to the AppointmentNote entity by IDs.
func (_c *AppointmentCreate) AddAppointmentNoteIDs(ids ...uuid.UUID) *AppointmentCreate {
	_c.mutation.AddAppointmentNoteIDs(ids...)
	return _c
}

// AddAppointmentNotes adds the "appointment_notes" edges to the AppointmentNote entity.
func (_c *AppointmentCreate) AddAppointmentNotes(v ...*AppointmentNote) *AppointmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentNoteIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := appointment.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ConsultationType(); !ok {
		v := appointment.DefaultConsultationType
		_c.mutation.SetConsultationType(v)
	}
	if _, ok := _c.mutation.IsFollowUp(); !ok {
		v := appointment.DefaultIsFollowUp
		_c.mutation.SetIsFollowUp(v)
	}
	if _, ok := _c.mutation.BookingSource(); !ok {
		v := appointment.DefaultBookingSource
		_c.mutation.SetBookingSource(v)
	}
	if _, ok := _c.mutation.IsConfirmed(); !ok {
		v := appointment.DefaultIsConfirmed
		_c.mutation.SetIsConfirmed(v)
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		v := appointment.DefaultReminderSent
		_c.mutation.SetReminderSent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Appointment.appointment_id"`)}
	}
	if v, ok := _c.mutation.AppointmentID(); ok {
		if err := appointment.AppointmentIDValidator(v); err != nil {
			return &ValidationError{Name: "appointment_id", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Appointment.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Appointment.doctor_id"`)}
	}
	if _, ok := _c.mutation.AppointmentTypeID(); !ok {
		return &ValidationError{Name: "appointment_type_id", err: errors.New(`repo: missing required field "Appointment.appointment_type_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "Appointment.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := appointment.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Appointment.end_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "Appointment.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := appointment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Appointment.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultationType(); !ok {
		return &ValidationError{Name: "consultation_type", err: errors.New(`repo: missing required field "Appointment.consultation_type"`)}
	}
	if v, ok := _c.mutation.ConsultationType(); ok {
		if err := appointment.ConsultationTypeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.consultation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsFollowUp(); !ok {
		return &ValidationError{Name: "is_follow_up", err: errors.New(`repo: missing required field "Appointment.is_follow_up"`)}
	}
	if _, ok := _c.mutation.BookingSource(); !ok {
		return &ValidationError{Name: "booking_source", err: errors.New(`repo: missing required field "Appointment.booking_source"`)}
	}
	if v, ok := _c.mutation.BookingSource(); ok {
		if err := appointment.BookingSourceValidator(v); err != nil {
			return &ValidationError{Name: "booking_source", err: fmt.Errorf(`repo: validator failed for field "Appointment.booking_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsConfirmed(); !ok {
		return &ValidationError{Name: "is_confirmed", err: errors.New(`repo: missing required field "Appointment.is_confirmed"`)}
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		return &ValidationError{Name: "reminder_sent", err: errors.New(`repo: missing required field "Appointment.reminder_sent"`)}
	}
	if v, ok := _c.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MeetingID(); ok {
		if err := appointment.MeetingIDValidator(v); err != nil {
			return &ValidationError{Name: "meeting_id", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MeetingPassword(); ok {
		if err := appointment.MeetingPasswordValidator(v); err != nil {
			return &ValidationError{Name: "meeting_password", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_password": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Appointment.patient"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "Appointment.doctor"`)}
	}
	if len(_c.mutation.AppointmentTypeIDs()) == 0 {
		return &ValidationError{Name: "appointment_type", err: errors.New(`repo: missing required edge "Appointment.appointment_type"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(appointment.FieldAppointmentID, field.TypeString, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(appointment.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(appointment.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ConsultationType(); ok {
		_spec.SetField(appointment.FieldConsultationType, field.TypeEnum, value)
		_node.ConsultationType = value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(appointment.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = &value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
		_node.Symptoms = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.IsFollowUp(); ok {
		_spec.SetField(appointment.FieldIsFollowUp, field.TypeBool, value)
		_node.IsFollowUp = value
	}
	if value, ok := _c.mutation.BookedByID(); ok {
		_spec.SetField(appointment.FieldBookedByID, field.TypeUUID, value)
		_node.BookedByID = &value
	}
	if value, ok := _c.mutation.BookingSource(); ok {
		_spec.SetField(appointment.FieldBookingSource, field.TypeEnum, value)
		_node.BookingSource = value
	}
	if value, ok := _c.mutation.IsConfirmed(); ok {
		_spec.SetField(appointment.FieldIsConfirmed, field.TypeBool, value)
		_node.IsConfirmed = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.ReminderSent(); ok {
		_spec.SetField(appointment.FieldReminderSent, field.TypeBool, value)
		_node.ReminderSent = value
	}
	if value, ok := _c.mutation.ReminderSentAt(); ok {
		_spec.SetField(appointment.FieldReminderSentAt, field.TypeTime, value)
		_node.ReminderSentAt = &value
	}
	if value, ok := _c.mutation.CheckedInAt(); ok {
		_spec.SetField(appointment.FieldCheckedInAt, field.TypeTime, value)
		_node.CheckedInAt = &value
	}
	if value, ok := _c.mutation.CheckedInByID(); ok {
		_spec.SetField(appointment.FieldCheckedInByID, field.TypeUUID, value)
		_node.CheckedInByID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(appointment.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ActualDurationMin(); ok {
		_spec.SetField(appointment.FieldActualDurationMin, field.TypeInt, value)
		_node.ActualDurationMin = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancelledByID(); ok {
		_spec.SetField(appointment.FieldCancelledByID, field.TypeUUID, value)
		_node.CancelledByID = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
		_node.MeetingLink = &value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(appointment.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = &value
	}
	if value, ok := _c.mutation.MeetingPassword(); ok {
		_spec.SetField(appointment.FieldMeetingPassword, field.TypeString, value)
		_node.MeetingPassword = &value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(appointment.FieldEstimatedCost, field.TypeInt64, value)
		_node.EstimatedCost = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.PatientTable,
			Columns: []string{appointment.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.DoctorTable,
			Columns: []string{appointment.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.ServiceTable,
			Columns: []string{appointment.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.AppointmentTypeTable,
			Columns: []string{appointment.AppointmentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointmenttype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AppointmentTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PreviousAppointmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.PreviousAppointmentTable,
			Columns: []string{appointment.PreviousAppointmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PreviousAppointmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FollowUpsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.FollowUpsTable,
			Columns: []string{appointment.FollowUpsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReschedulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.ReschedulesTable,
			Columns: []string{appointment.ReschedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.AppointmentNotesTable,
			Columns: []string{appointment.AppointmentNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointmentnote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
