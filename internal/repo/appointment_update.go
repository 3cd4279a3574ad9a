// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdate) SetServiceID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *AppointmentUpdate) ClearServiceID() *AppointmentUpdate {
	_u.mutation.ClearServiceID()
	return _u
}

// SetAppointmentTypeID sets the "appointment_type_id" field.
func (_u *AppointmentUpdate) SetAppointmentTypeID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetAppointmentTypeID(v)
	return _u
}

// SetNillableAppointmentTypeID sets the "appointment_type_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentTypeID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentTypeID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdate) SetStartTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *AppointmentUpdate) SetDurationMin(v int) *AppointmentUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDurationMin(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *AppointmentUpdate) AddDurationMin(v int) *AppointmentUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdate) SetEndTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEndTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AppointmentUpdate) SetPriority(v appointment.Priority) *AppointmentUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePriority(v *appointment.Priority) *AppointmentUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetConsultationType sets the "consultation_type" field.
func (_u *AppointmentUpdate) SetConsultationType(v appointment.ConsultationType) *AppointmentUpdate {
	_u.mutation.SetConsultationType(v)
	return _u
}

// SetNillableConsultationType sets the "consultation_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConsultationType(v *appointment.ConsultationType) *AppointmentUpdate {
	if v != nil {
		_u.SetConsultationType(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *AppointmentUpdate) SetChiefComplaint(v string) *AppointmentUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableChiefComplaint(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *AppointmentUpdate) ClearChiefComplaint() *AppointmentUpdate {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AppointmentUpdate) SetSymptoms(v string) *AppointmentUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSymptoms(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *AppointmentUpdate) ClearSymptoms() *AppointmentUpdate {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsFollowUp sets the "is_follow_up" field.
func (_u *AppointmentUpdate) SetIsFollowUp(v bool) *AppointmentUpdate {
	_u.mutation.SetIsFollowUp(v)
	return _u
}

// SetNillableIsFollowUp sets the "is_follow_up" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableIsFollowUp(v *bool) *AppointmentUpdate {
	if v != nil {
		_u.SetIsFollowUp(*v)
	}
	return _u
}

// SetPreviousAppointmentID sets the "previous_appointment_id" field.
func (_u *AppointmentUpdate) SetPreviousAppointmentID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPreviousAppointmentID(v)
	return _u
}

// SetNillablePreviousAppointmentID sets the "previous_appointment_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePreviousAppointmentID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPreviousAppointmentID(*v)
	}
	return _u
}

// ClearPreviousAppointmentID clears the value of the "previous_appointment_id" field.
func (_u *AppointmentUpdate) ClearPreviousAppointmentID() *AppointmentUpdate {
	_u.mutation.ClearPreviousAppointmentID()
	return _u
}

// SetBookedByID sets the "booked_by_id" field.
func (_u *AppointmentUpdate) SetBookedByID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetBookedByID(v)
	return _u
}

// SetNillableBookedByID sets the "booked_by_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableBookedByID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetBookedByID(*v)
	}
	return _u
}

// ClearBookedByID clears the value of the "booked_by_id" field.
func (_u *AppointmentUpdate) ClearBookedByID() *AppointmentUpdate {
	_u.mutation.ClearBookedByID()
	return _u
}

// SetBookingSource sets the "booking_source" field.
func (_u *AppointmentUpdate) SetBookingSource(v appointment.BookingSource) *AppointmentUpdate {
	_u.mutation.SetBookingSource(v)
	return _u
}

// SetNillableBookingSource sets the "booking_source" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableBookingSource(v *appointment.BookingSource) *AppointmentUpdate {
	if v != nil {
		_u.SetBookingSource(*v)
	}
	return _u
}

// SetIsConfirmed sets the "is_confirmed" field.
func (_u *AppointmentUpdate) SetIsConfirmed(v bool) *AppointmentUpdate {
	_u.mutation.SetIsConfirmed(v)
	return _u
}

// SetNillableIsConfirmed sets the "is_confirmed" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableIsConfirmed(v *bool) *AppointmentUpdate {
	if v != nil {
		_u.SetIsConfirmed(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdate) SetConfirmedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdate) ClearConfirmedAt() *AppointmentUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *AppointmentUpdate) SetReminderSent(v bool) *AppointmentUpdate {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReminderSent(v *bool) *AppointmentUpdate {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *AppointmentUpdate) SetReminderSentAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReminderSentAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *AppointmentUpdate) ClearReminderSentAt() *AppointmentUpdate {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_u *AppointmentUpdate) SetCheckedInAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCheckedInAt(v)
	return _u
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCheckedInAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCheckedInAt(*v)
	}
	return _u
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (_u *AppointmentUpdate) ClearCheckedInAt() *AppointmentUpdate {
	_u.mutation.ClearCheckedInAt()
	return _u
}

// SetCheckedInByID sets the "checked_in_by_id" field.
func (_u *AppointmentUpdate) SetCheckedInByID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetCheckedInByID(v)
	return _u
}

// SetNillableCheckedInByID sets the "checked_in_by_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCheckedInByID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetCheckedInByID(*v)
	}
	return _u
}

// ClearCheckedInByID clears the value of the "checked_in_by_id" field.
func (_u *AppointmentUpdate) ClearCheckedInByID() *AppointmentUpdate {
	_u.mutation.ClearCheckedInByID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppointmentUpdate) SetStartedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AppointmentUpdate) ClearStartedAt() *AppointmentUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdate) SetCompletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCompletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdate) ClearCompletedAt() *AppointmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetActualDurationMin sets the "actual_duration_min" field.
func (_u *AppointmentUpdate) SetActualDurationMin(v int) *AppointmentUpdate {
	_u.mutation.ResetActualDurationMin()
	_u.mutation.SetActualDurationMin(v)
	return _u
}

// SetNillableActualDurationMin sets the "actual_duration_min" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableActualDurationMin(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetActualDurationMin(*v)
	}
	return _u
}

// AddActualDurationMin adds value to the "actual_duration_min" field.
func (_u *AppointmentUpdate) AddActualDurationMin(v int) *AppointmentUpdate {
	_u.mutation.AddActualDurationMin(v)
	return _u
}

// ClearActualDurationMin clears the value of the "actual_duration_min" field.
func (_u *AppointmentUpdate) ClearActualDurationMin() *AppointmentUpdate {
	_u.mutation.ClearActualDurationMin()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelledByID sets the "cancelled_by_id" field.
func (_u *AppointmentUpdate) SetCancelledByID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetCancelledByID(v)
	return _u
}

// SetNillableCancelledByID sets the "cancelled_by_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledByID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledByID(*v)
	}
	return _u
}

// ClearCancelledByID clears the value of the "cancelled_by_id" field.
func (_u *AppointmentUpdate) ClearCancelledByID() *AppointmentUpdate {
	_u.mutation.ClearCancelledByID()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetMeetingLink sets the "meeting_link" field.
func (_u *AppointmentUpdate) SetMeetingLink(v string) *AppointmentUpdate {
	_u.mutation.SetMeetingLink(v)
	return _u
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMeetingLink(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetMeetingLink(*v)
	}
	return _u
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (_u *AppointmentUpdate) ClearMeetingLink() *AppointmentUpdate {
	_u.mutation.ClearMeetingLink()
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *AppointmentUpdate) SetMeetingID(v string) *AppointmentUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMeetingID(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *AppointmentUpdate) ClearMeetingID() *AppointmentUpdate {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetMeetingPassword sets the "meeting_password" field.
func (_u *AppointmentUpdate) SetMeetingPassword(v string) *AppointmentUpdate {
	_u.mutation.SetMeetingPassword(v)
	return _u
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMeetingPassword(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetMeetingPassword(*v)
	}
	return _u
}

// ClearMeetingPassword clears the value of the "meeting_password" field.
func (_u *AppointmentUpdate) ClearMeetingPassword() *AppointmentUpdate {
	_u.mutation.ClearMeetingPassword()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *AppointmentUpdate) SetEstimatedCost(v int64) *AppointmentUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEstimatedCost(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *AppointmentUpdate) AddEstimatedCost(v int64) *AppointmentUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *AppointmentUpdate) ClearEstimatedCost() *AppointmentUpdate {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) SetPatient(v *Patient) *AppointmentUpdate {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *AppointmentUpdate) SetDoctor(v *Doctor) *AppointmentUpdate {
	return _u.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *AppointmentUpdate) SetService(v *Service) *AppointmentUpdate {
	return _u.SetServiceID(v.ID)
}

// SetAppointmentType sets the "appointment_type" edge to the AppointmentType entity.
func (_u *AppointmentUpdate) SetAppointmentType(v *AppointmentType) *AppointmentUpdate {
	return _u.SetAppointmentTypeID(v.ID)
}

// SetPreviousAppointment sets the "previous_appointment" edge to the Appointment entity.
func (_u *AppointmentUpdate) SetPreviousAppointment(v *Appointment) *AppointmentUpdate {
	return _u.SetPreviousAppointmentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Appointment entity by IDs.
func (_u *AppointmentUpdate) AddFollowUpIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.AddFollowUpIDs(ids...)
	return _u
}

// AddFollowUps adds the "follow_ups" edges to the Appointment entity.
func (_u *AppointmentUpdate) AddFollowUps(v ...*Appointment) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowUpIDs(ids...)
}

// AddRescheduleIDs adds the "reschedules" edge to the AppointmentReschedule entity by IDs.
func (_u *AppointmentUpdate) AddRescheduleIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.AddRescheduleIDs(ids...)
	return _u
}

// AddReschedules adds the "reschedules" edges to the AppointmentReschedule entity.
func (_u *AppointmentUpdate) AddReschedules(v ...*AppointmentReschedule) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRescheduleIDs(ids...)
}

// AddAppointmentNoteIDs adds the "appointment_notes" edge to the AppointmentNote entity by IDs.
func (_u *AppointmentUpdate) AddAppointmentNoteIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.AddAppointmentNoteIDs(ids...)
	return _u
}

// AddAppointmentNotes adds the "appointment_notes" edges to the AppointmentNote entity.
func (_u *AppointmentUpdate) AddAppointmentNotes(v ...*AppointmentNote) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentNoteIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdate) ClearPatient() *AppointmentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *AppointmentUpdate) ClearDoctor() *AppointmentUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *AppointmentUpdate) ClearService() *AppointmentUpdate {
	_u.mutation.ClearService()
	return _u
}

// ClearAppointmentType clears the "appointment_type" edge to the AppointmentType entity.
func (_u *AppointmentUpdate) ClearAppointmentType() *AppointmentUpdate {
	_u.mutation.ClearAppointmentType()
	return _u
}

// ClearPreviousAppointment clears the "previous_appointment" edge to the Appointment entity.
func (_u *AppointmentUpdate) ClearPreviousAppointment() *AppointmentUpdate {
	_u.mutation.ClearPreviousAppointment()
	return _u
}

// ClearFollowUps clears all "follow_ups" edges to the Appointment entity.
func (_u *AppointmentUpdate) ClearFollowUps() *AppointmentUpdate {
	_u.mutation.ClearFollowUps()
	return _u
}

// RemoveFollowUpIDs removes the "follow_ups" edge to Appointment entities by IDs.
func (_u *AppointmentUpdate) RemoveFollowUpIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.RemoveFollowUpIDs(ids...)
	return _u
}

// RemoveFollowUps removes "follow_ups" edges to Appointment entities.
func (_u *AppointmentUpdate) RemoveFollowUps(v ...*Appointment) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowUpIDs(ids...)
}

// ClearReschedules clears all "reschedules" edges to the AppointmentReschedule entity.
func (_u *AppointmentUpdate) ClearReschedules() *AppointmentUpdate {
	_u.mutation.ClearReschedules()
	return _u
}

// RemoveRescheduleIDs removes the "reschedules" edge to AppointmentReschedule entities by IDs.
func (_u *AppointmentUpdate) RemoveRescheduleIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.RemoveRescheduleIDs(ids...)
	return _u
}

// RemoveReschedules removes "reschedules" edges to AppointmentReschedule entities.
func (_u *AppointmentUpdate) RemoveReschedules(v ...*AppointmentReschedule) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRescheduleIDs(ids...)
}

// ClearAppointmentNotes clears all "appointment_notes" edges to the AppointmentNote entity.
func (_u *AppointmentUpdate) ClearAppointmentNotes() *AppointmentUpdate {
	_u.mutation.ClearAppointmentNotes()
	return _u
}

// RemoveAppointmentNoteIDs removes the "appointment_notes" edge to AppointmentNote entities by IDs.
func (_u *AppointmentUpdate) RemoveAppointmentNoteIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.RemoveAppointmentNoteIDs(ids...)
	return _u
}

// RemoveAppointmentNotes removes "appointment_notes" edges to AppointmentNote entities.
func (_u *AppointmentUpdate) RemoveAppointmentNotes(v ...*AppointmentNote) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := appointment.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := appointment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Appointment.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationType(); ok {
		if err := appointment.ConsultationTypeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.consultation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BookingSource(); ok {
		if err := appointment.BookingSourceValidator(v); err != nil {
			return &ValidationError{Name: "booking_source", err: fmt.Errorf(`repo: validator failed for field "Appointment.booking_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingID(); ok {
		if err := appointment.MeetingIDValidator(v); err != nil {
			return &ValidationError{Name: "meeting_id", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingPassword(); ok {
		if err := appointment.MeetingPasswordValidator(v); err != nil {
			return &ValidationError{Name: "meeting_password", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_password": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.doctor"`)
	}
	if _u.mutation.AppointmentTypeCleared() && len(_u.mutation.AppointmentTypeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.appointment_type"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(appointment.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(appointment.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(appointment.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationType(); ok {
		_spec.SetField(appointment.FieldConsultationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(appointment.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(appointment.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(appointment.FieldSymptoms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsFollowUp(); ok {
		_spec.SetField(appointment.FieldIsFollowUp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BookedByID(); ok {
		_spec.SetField(appointment.FieldBookedByID, field.TypeUUID, value)
	}
	if _u.mutation.BookedByIDCleared() {
		_spec.ClearField(appointment.FieldBookedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BookingSource(); ok {
		_spec.SetField(appointment.FieldBookingSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsConfirmed(); ok {
		_spec.SetField(appointment.FieldIsConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(appointment.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(appointment.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(appointment.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckedInAt(); ok {
		_spec.SetField(appointment.FieldCheckedInAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedInAtCleared() {
		_spec.ClearField(appointment.FieldCheckedInAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckedInByID(); ok {
		_spec.SetField(appointment.FieldCheckedInByID, field.TypeUUID, value)
	}
	if _u.mutation.CheckedInByIDCleared() {
		_spec.ClearField(appointment.FieldCheckedInByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appointment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(appointment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ActualDurationMin(); ok {
		_spec.SetField(appointment.FieldActualDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualDurationMin(); ok {
		_spec.AddField(appointment.FieldActualDurationMin, field.TypeInt, value)
	}
	if _u.mutation.ActualDurationMinCleared() {
		_spec.ClearField(appointment.FieldActualDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledByID(); ok {
		_spec.SetField(appointment.FieldCancelledByID, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByIDCleared() {
		_spec.ClearField(appointment.FieldCancelledByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
	}
	if _u.mutation.MeetingLinkCleared() {
		_spec.ClearField(appointment.FieldMeetingLink, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(appointment.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(appointment.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingPassword(); ok {
		_spec.SetField(appointment.FieldMeetingPassword, field.TypeString, value)
	}
	if _u.mutation.MeetingPasswordCleared() {
		_spec.ClearField(appointment.FieldMeetingPassword, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(appointment.FieldEstimatedCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(appointment.FieldEstimatedCost, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(appointment.FieldEstimatedCost, field.TypeInt64)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PreviousAppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PreviousAppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowUpsIDs(); len(nodes) > 0 && !_u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReschedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReschedulesIDs(); len(nodes) > 0 && !_u.mutation.ReschedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReschedulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentNotesIDs(); len(nodes) > 0 && !_u.mutation.AppointmentNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AppointmentUpdateOne) SetServiceID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableServiceID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// ClearServiceID clears the value of the "service_id" field.
func (_u *AppointmentUpdateOne) ClearServiceID() *AppointmentUpdateOne {
	_u.mutation.ClearServiceID()
	return _u
}

// SetAppointmentTypeID sets the "appointment_type_id" field.
func (_u *AppointmentUpdateOne) SetAppointmentTypeID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentTypeID(v)
	return _u
}

// SetNillableAppointmentTypeID sets the "appointment_type_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentTypeID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentTypeID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdateOne) SetStartTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *AppointmentUpdateOne) SetDurationMin(v int) *AppointmentUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDurationMin(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *AppointmentUpdateOne) AddDurationMin(v int) *AppointmentUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdateOne) SetEndTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEndTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AppointmentUpdateOne) SetPriority(v appointment.Priority) *AppointmentUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePriority(v *appointment.Priority) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetConsultationType sets the "consultation_type" field.
func (_u *AppointmentUpdateOne) SetConsultationType(v appointment.ConsultationType) *AppointmentUpdateOne {
	_u.mutation.SetConsultationType(v)
	return _u
}

// SetNillableConsultationType sets the "consultation_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConsultationType(v *appointment.ConsultationType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConsultationType(*v)
	}
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *AppointmentUpdateOne) SetChiefComplaint(v string) *AppointmentUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableChiefComplaint(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *AppointmentUpdateOne) ClearChiefComplaint() *AppointmentUpdateOne {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AppointmentUpdateOne) SetSymptoms(v string) *AppointmentUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSymptoms(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *AppointmentUpdateOne) ClearSymptoms() *AppointmentUpdateOne {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsFollowUp sets the "is_follow_up" field.
func (_u *AppointmentUpdateOne) SetIsFollowUp(v bool) *AppointmentUpdateOne {
	_u.mutation.SetIsFollowUp(v)
	return _u
}

// SetNillableIsFollowUp sets the "is_follow_up" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableIsFollowUp(v *bool) *AppointmentUpdateOne {
	if v != nil {
		_u.SetIsFollowUp(*v)
	}
	return _u
}

// SetPreviousAppointmentID sets the "previous_appointment_id" field.
func (_u *AppointmentUpdateOne) SetPreviousAppointmentID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPreviousAppointmentID(v)
	return _u
}

// SetNillablePreviousAppointmentID sets the "previous_appointment_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePreviousAppointmentID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPreviousAppointmentID(*v)
	}
	return _u
}

// ClearPreviousAppointmentID clears the value of the "previous_appointment_id" field.
func (_u *AppointmentUpdateOne) ClearPreviousAppointmentID() *AppointmentUpdateOne {
	_u.mutation.ClearPreviousAppointmentID()
	return _u
}

// SetBookedByID sets the "booked_by_id" field.
func (_u *AppointmentUpdateOne) SetBookedByID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetBookedByID(v)
	return _u
}

// SetNillableBookedByID sets the "booked_by_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableBookedByID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetBookedByID(*v)
	}
	return _u
}

// ClearBookedByID clears the value of the "booked_by_id" field.
func (_u *AppointmentUpdateOne) ClearBookedByID() *AppointmentUpdateOne {
	_u.mutation.ClearBookedByID()
	return _u
}

// SetBookingSource sets the "booking_source" field.
func (_u *AppointmentUpdateOne) SetBookingSource(v appointment.BookingSource) *AppointmentUpdateOne {
	_u.mutation.SetBookingSource(v)
	return _u
}

// SetNillableBookingSource sets the "booking_source" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableBookingSource(v *appointment.BookingSource) *AppointmentUpdateOne {
	if v != nil {
		_u.SetBookingSource(*v)
	}
	return _u
}

// SetIsConfirmed sets the "is_confirmed" field.
func (_u *AppointmentUpdateOne) SetIsConfirmed(v bool) *AppointmentUpdateOne {
	_u.mutation.SetIsConfirmed(v)
	return _u
}

// SetNillableIsConfirmed sets the "is_confirmed" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableIsConfirmed(v *bool) *AppointmentUpdateOne {
	if v != nil {
		_u.SetIsConfirmed(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdateOne) SetConfirmedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdateOne) ClearConfirmedAt() *AppointmentUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *AppointmentUpdateOne) SetReminderSent(v bool) *AppointmentUpdateOne {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReminderSent(v *bool) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *AppointmentUpdateOne) SetReminderSentAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReminderSentAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *AppointmentUpdateOne) ClearReminderSentAt() *AppointmentUpdateOne {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_u *AppointmentUpdateOne) SetCheckedInAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCheckedInAt(v)
	return _u
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCheckedInAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCheckedInAt(*v)
	}
	return _u
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (_u *AppointmentUpdateOne) ClearCheckedInAt() *AppointmentUpdateOne {
	_u.mutation.ClearCheckedInAt()
	return _u
}

// SetCheckedInByID sets the "checked_in_by_id" field.
func (_u *AppointmentUpdateOne) SetCheckedInByID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetCheckedInByID(v)
	return _u
}

// SetNillableCheckedInByID sets the "checked_in_by_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCheckedInByID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCheckedInByID(*v)
	}
	return _u
}

// ClearCheckedInByID clears the value of the "checked_in_by_id" field.
func (_u *AppointmentUpdateOne) ClearCheckedInByID() *AppointmentUpdateOne {
	_u.mutation.ClearCheckedInByID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppointmentUpdateOne) SetStartedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AppointmentUpdateOne) ClearStartedAt() *AppointmentUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdateOne) SetCompletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdateOne) ClearCompletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetActualDurationMin sets the "actual_duration_min" field.
func (_u *AppointmentUpdateOne) SetActualDurationMin(v int) *AppointmentUpdateOne {
	_u.mutation.ResetActualDurationMin()
	_u.mutation.SetActualDurationMin(v)
	return _u
}

// SetNillableActualDurationMin sets the "actual_duration_min" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableActualDurationMin(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetActualDurationMin(*v)
	}
	return _u
}

// AddActualDurationMin adds value to the "actual_duration_min" field.
func (_u *AppointmentUpdateOne) AddActualDurationMin(v int) *AppointmentUpdateOne {
	_u.mutation.AddActualDurationMin(v)
	return _u
}

// ClearActualDurationMin clears the value of the "actual_duration_min" field.
func (_u *AppointmentUpdateOne) ClearActualDurationMin() *AppointmentUpdateOne {
	_u.mutation.ClearActualDurationMin()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelledByID sets the "cancelled_by_id" field.
func (_u *AppointmentUpdateOne) SetCancelledByID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetCancelledByID(v)
	return _u
}

// SetNillableCancelledByID sets the "cancelled_by_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledByID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledByID(*v)
	}
	return _u
}

// ClearCancelledByID clears the value of the "cancelled_by_id" field.
func (_u *AppointmentUpdateOne) ClearCancelledByID() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledByID()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetMeetingLink sets the "meeting_link" field.
func (_u *AppointmentUpdateOne) SetMeetingLink(v string) *AppointmentUpdateOne {
	_u.mutation.SetMeetingLink(v)
	return _u
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMeetingLink(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMeetingLink(*v)
	}
	return _u
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (_u *AppointmentUpdateOne) ClearMeetingLink() *AppointmentUpdateOne {
	_u.mutation.ClearMeetingLink()
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *AppointmentUpdateOne) SetMeetingID(v string) *AppointmentUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMeetingID(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *AppointmentUpdateOne) ClearMeetingID() *AppointmentUpdateOne {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetMeetingPassword sets the "meeting_password" field.
func (_u *AppointmentUpdateOne) SetMeetingPassword(v string) *AppointmentUpdateOne {
	_u.mutation.SetMeetingPassword(v)
	return _u
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMeetingPassword(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMeetingPassword(*v)
	}
	return _u
}

// ClearMeetingPassword clears the value of the "meeting_password" field.
func (_u *AppointmentUpdateOne) ClearMeetingPassword() *AppointmentUpdateOne {
	_u.mutation.ClearMeetingPassword()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *AppointmentUpdateOne) SetEstimatedCost(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEstimatedCost(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *AppointmentUpdateOne) AddEstimatedCost(v int64) *AppointmentUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// ClearEstimatedCost clears the value of the "estimated_cost" field.
func (_u *AppointmentUpdateOne) ClearEstimatedCost() *AppointmentUpdateOne {
	_u.mutation.ClearEstimatedCost()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) SetPatient(v *Patient) *AppointmentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *AppointmentUpdateOne) SetDoctor(v *Doctor) *AppointmentUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_u *AppointmentUpdateOne) SetService(v *Service) *AppointmentUpdateOne {
	return _u.SetServiceID(v.ID)
}

// SetAppointmentType sets the "appointment_type" edge to the AppointmentType entity.
func (_u *AppointmentUpdateOne) SetAppointmentType(v *AppointmentType) *AppointmentUpdateOne {
	return _u.SetAppointmentTypeID(v.ID)
}

// SetPreviousAppointment sets the "previous_appointment" edge to the Appointment entity.
func (_u *AppointmentUpdateOne) SetPreviousAppointment(v *Appointment) *AppointmentUpdateOne {
	return _u.SetPreviousAppointmentID(v.ID)
}

// AddFollowUpIDs adds the "follow_ups" edge to the Appointment entity by IDs.
func (_u *AppointmentUpdateOne) AddFollowUpIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.AddFollowUpIDs(ids...)
	return _u
}

// AddFollowUps adds the "follow_ups" edges to the Appointment entity.
func (_u *AppointmentUpdateOne) AddFollowUps(v ...*Appointment) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFollowUpIDs(ids...)
}

// AddRescheduleIDs adds the "reschedules" edge to the AppointmentReschedule entity by IDs.
func (_u *AppointmentUpdateOne) AddRescheduleIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.AddRescheduleIDs(ids...)
	return _u
}

// AddReschedules adds the "reschedules" edges to the AppointmentReschedule entity.
func (_u *AppointmentUpdateOne) AddReschedules(v ...*AppointmentReschedule) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRescheduleIDs(ids...)
}

// AddAppointmentNoteIDs adds the "appointment_notes" edge to the AppointmentNote entity by IDs.
func (_u *AppointmentUpdateOne) AddAppointmentNoteIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.AddAppointmentNoteIDs(ids...)
	return _u
}

// AddAppointmentNotes adds the "appointment_notes" edges to the AppointmentNote entity.
func (_u *AppointmentUpdateOne) AddAppointmentNotes(v ...*AppointmentNote) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentNoteIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AppointmentUpdateOne) ClearPatient() *AppointmentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *AppointmentUpdateOne) ClearDoctor() *AppointmentUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearService clears the "service" edge to the Service entity.
func (_u *AppointmentUpdateOne) ClearService() *AppointmentUpdateOne {
	_u.mutation.ClearService()
	return _u
}

// ClearAppointmentType clears the "appointment_type" edge to the AppointmentType entity.
func (_u *AppointmentUpdateOne) ClearAppointmentType() *AppointmentUpdateOne {
	_u.mutation.ClearAppointmentType()
	return _u
}

// ClearPreviousAppointment clears the "previous_appointment" edge to the Appointment entity.
func (_u *AppointmentUpdateOne) ClearPreviousAppointment() *AppointmentUpdateOne {
	_u.mutation.ClearPreviousAppointment()
	return _u
}

// ClearFollowUps clears all "follow_ups" edges to the Appointment entity.
func (_u *AppointmentUpdateOne) ClearFollowUps() *AppointmentUpdateOne {
	_u.mutation.ClearFollowUps()
	return _u
}

// RemoveFollowUpIDs removes the "follow_ups" edge to Appointment entities by IDs.
func (_u *AppointmentUpdateOne) RemoveFollowUpIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.RemoveFollowUpIDs(ids...)
	return _u
}

// RemoveFollowUps removes "follow_ups" edges to Appointment entities.
func (_u *AppointmentUpdateOne) RemoveFollowUps(v ...*Appointment) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFollowUpIDs(ids...)
}

// ClearReschedules clears all "reschedules" edges to the AppointmentReschedule entity.
func (_u *AppointmentUpdateOne) ClearReschedules() *AppointmentUpdateOne {
	_u.mutation.ClearReschedules()
	return _u
}

// RemoveRescheduleIDs removes the "reschedules" edge to AppointmentReschedule entities by IDs.
func (_u *AppointmentUpdateOne) RemoveRescheduleIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.RemoveRescheduleIDs(ids...)
	return _u
}

// RemoveReschedules removes "reschedules" edges to AppointmentReschedule entities.
func (_u *AppointmentUpdateOne) RemoveReschedules(v ...*AppointmentReschedule) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRescheduleIDs(ids...)
}

// ClearAppointmentNotes clears all "appointment_notes" edges to the AppointmentNote entity.
func (_u *AppointmentUpdateOne) ClearAppointmentNotes() *AppointmentUpdateOne {
	_u.mutation.ClearAppointmentNotes()
	return _u
}

// RemoveAppointmentNoteIDs removes the "appointment_notes" edge to AppointmentNote entities by IDs.
func (_u *AppointmentUpdateOne) RemoveAppointmentNoteIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.RemoveAppointmentNoteIDs(ids...)
	return _u
}

// RemoveAppointmentNotes removes "appointment_notes" edges to AppointmentNote entities.
func (_u *AppointmentUpdateOne) RemoveAppointmentNotes(v ...*AppointmentNote) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentNoteIDs(ids...)
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := appointment.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := appointment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Appointment.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationType(); ok {
		if err := appointment.ConsultationTypeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.consultation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BookingSource(); ok {
		if err := appointment.BookingSourceValidator(v); err != nil {
			return &ValidationError{Name: "booking_source", err: fmt.Errorf(`repo: validator failed for field "Appointment.booking_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingID(); ok {
		if err := appointment.MeetingIDValidator(v); err != nil {
			return &ValidationError{Name: "meeting_id", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingPassword(); ok {
		if err := appointment.MeetingPasswordValidator(v); err != nil {
			return &ValidationError{Name: "meeting_password", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_password": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.doctor"`)
	}
	if _u.mutation.AppointmentTypeCleared() && len(_u.mutation.AppointmentTypeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.appointment_type"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(appointment.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(appointment.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(appointment.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationType(); ok {
		_spec.SetField(appointment.FieldConsultationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(appointment.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(appointment.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(appointment.FieldSymptoms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsFollowUp(); ok {
		_spec.SetField(appointment.FieldIsFollowUp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BookedByID(); ok {
		_spec.SetField(appointment.FieldBookedByID, field.TypeUUID, value)
	}
	if _u.mutation.BookedByIDCleared() {
		_spec.ClearField(appointment.FieldBookedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BookingSource(); ok {
		_spec.SetField(appointment.FieldBookingSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsConfirmed(); ok {
		_spec.SetField(appointment.FieldIsConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(appointment.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(appointment.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(appointment.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckedInAt(); ok {
		_spec.SetField(appointment.FieldCheckedInAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedInAtCleared() {
		_spec.ClearField(appointment.FieldCheckedInAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CheckedInByID(); ok {
		_spec.SetField(appointment.FieldCheckedInByID, field.TypeUUID, value)
	}
	if _u.mutation.CheckedInByIDCleared() {
		_spec.ClearField(appointment.FieldCheckedInByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appointment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(appointment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ActualDurationMin(); ok {
		_spec.SetField(appointment.FieldActualDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualDurationMin(); ok {
		_spec.AddField(appointment.FieldActualDurationMin, field.TypeInt, value)
	}
	if _u.mutation.ActualDurationMinCleared() {
		_spec.ClearField(appointment.FieldActualDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledByID(); ok {
		_spec.SetField(appointment.FieldCancelledByID, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByIDCleared() {
		_spec.ClearField(appointment.FieldCancelledByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
	}
	if _u.mutation.MeetingLinkCleared() {
		_spec.ClearField(appointment.FieldMeetingLink, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(appointment.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(appointment.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingPassword(); ok {
		_spec.SetField(appointment.FieldMeetingPassword, field.TypeString, value)
	}
	if _u.mutation.MeetingPasswordCleared() {
		_spec.ClearField(appointment.FieldMeetingPassword, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(appointment.FieldEstimatedCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(appointment.FieldEstimatedCost, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedCostCleared() {
		_spec.ClearField(appointment.FieldEstimatedCost, field.TypeInt64)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PreviousAppointmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PreviousAppointmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFollowUpsIDs(); len(nodes) > 0 && !_u.mutation.FollowUpsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReschedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReschedulesIDs(); len(nodes) > 0 && !_u.mutation.ReschedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReschedulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentNotesIDs(); len(nodes) > 0 && !_u.mutation.AppointmentNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
