// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// AppointmentTypeID applies equality check predicate on the "appointment_type_id" field. It's identical to AppointmentTypeIDEQ.
func AppointmentTypeID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentTypeID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDurationMin, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldChiefComplaint, v))
}

// Symptoms applies equality check predicate on the "symptoms" field. It's identical to SymptomsEQ.
func Symptoms(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSymptoms, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// IsFollowUp applies equality check predicate on the "is_follow_up" field. It's identical to IsFollowUpEQ.
func IsFollowUp(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIsFollowUp, v))
}

// PreviousAppointmentID applies equality check predicate on the "previous_appointment_id" field. It's identical to PreviousAppointmentIDEQ.
func PreviousAppointmentID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPreviousAppointmentID, v))
}

// BookedByID applies equality check predicate on the "booked_by_id" field. It's identical to BookedByIDEQ.
func BookedByID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookedByID, v))
}

// IsConfirmed applies equality check predicate on the "is_confirmed" field. It's identical to IsConfirmedEQ.
func IsConfirmed(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIsConfirmed, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConfirmedAt, v))
}

// ReminderSent applies equality check predicate on the "reminder_sent" field. It's identical to ReminderSentEQ.
func ReminderSent(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentAt applies equality check predicate on the "reminder_sent_at" field. It's identical to ReminderSentAtEQ.
func ReminderSentAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSentAt, v))
}

// CheckedInAt applies equality check predicate on the "checked_in_at" field. It's identical to CheckedInAtEQ.
func CheckedInAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCheckedInAt, v))
}

// CheckedInByID applies equality check predicate on the "checked_in_by_id" field. It's identical to CheckedInByIDEQ.
func CheckedInByID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCheckedInByID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// ActualDurationMin applies equality check predicate on the "actual_duration_min" field. It's identical to ActualDurationMinEQ.
func ActualDurationMin(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldActualDurationMin, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledByID applies equality check predicate on the "cancelled_by_id" field. It's identical to CancelledByIDEQ.
func CancelledByID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledByID, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// MeetingLink applies equality check predicate on the "meeting_link" field. It's identical to MeetingLinkEQ.
func MeetingLink(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingLink, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingPassword applies equality check predicate on the "meeting_password" field. It's identical to MeetingPasswordEQ.
func MeetingPassword(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingPassword, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEstimatedCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDContains applies the Contains predicate on the "appointment_id" field.
func AppointmentIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldAppointmentID, v))
}

// AppointmentIDHasPrefix applies the HasPrefix predicate on the "appointment_id" field.
func AppointmentIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldAppointmentID, v))
}

// AppointmentIDHasSuffix applies the HasSuffix predicate on the "appointment_id" field.
func AppointmentIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldAppointmentID, v))
}

// AppointmentIDEqualFold applies the EqualFold predicate on the "appointment_id" field.
func AppointmentIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldAppointmentID, v))
}

// AppointmentIDContainsFold applies the ContainsFold predicate on the "appointment_id" field.
func AppointmentIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldAppointmentID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDIsNil applies the IsNil predicate on the "service_id" field.
func ServiceIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldServiceID))
}

// ServiceIDNotNil applies the NotNil predicate on the "service_id" field.
func ServiceIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldServiceID))
}

// AppointmentTypeIDEQ applies the EQ predicate on the "appointment_type_id" field.
func AppointmentTypeIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAppointmentTypeID, v))
}

// AppointmentTypeIDNEQ applies the NEQ predicate on the "appointment_type_id" field.
func AppointmentTypeIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldAppointmentTypeID, v))
}

// AppointmentTypeIDIn applies the In predicate on the "appointment_type_id" field.
func AppointmentTypeIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldAppointmentTypeID, vs...))
}

// AppointmentTypeIDNotIn applies the NotIn predicate on the "appointment_type_id" field.
func AppointmentTypeIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldAppointmentTypeID, vs...))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartTime, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDurationMin, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEndTime, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPriority, vs...))
}

// ConsultationTypeEQ applies the EQ predicate on the "consultation_type" field.
func ConsultationTypeEQ(v ConsultationType) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConsultationType, v))
}

// ConsultationTypeNEQ applies the NEQ predicate on the "consultation_type" field.
func ConsultationTypeNEQ(v ConsultationType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldConsultationType, v))
}

// ConsultationTypeIn applies the In predicate on the "consultation_type" field.
func ConsultationTypeIn(vs ...ConsultationType) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldConsultationType, vs...))
}

// ConsultationTypeNotIn applies the NotIn predicate on the "consultation_type" field.
func ConsultationTypeNotIn(vs ...ConsultationType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldConsultationType, vs...))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintIsNil applies the IsNil predicate on the "chief_complaint" field.
func ChiefComplaintIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldChiefComplaint))
}

// ChiefComplaintNotNil applies the NotNil predicate on the "chief_complaint" field.
func ChiefComplaintNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldChiefComplaint))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// SymptomsEQ applies the EQ predicate on the "symptoms" field.
func SymptomsEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSymptoms, v))
}

// SymptomsNEQ applies the NEQ predicate on the "symptoms" field.
func SymptomsNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldSymptoms, v))
}

// SymptomsIn applies the In predicate on the "symptoms" field.
func SymptomsIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldSymptoms, vs...))
}

// SymptomsNotIn applies the NotIn predicate on the "symptoms" field.
func SymptomsNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldSymptoms, vs...))
}

// SymptomsGT applies the GT predicate on the "symptoms" field.
func SymptomsGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldSymptoms, v))
}

// SymptomsGTE applies the GTE predicate on the "symptoms" field.
func SymptomsGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldSymptoms, v))
}

// SymptomsLT applies the LT predicate on the "symptoms" field.
func SymptomsLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldSymptoms, v))
}

// SymptomsLTE applies the LTE predicate on the "symptoms" field.
func SymptomsLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldSymptoms, v))
}

// SymptomsContains applies the Contains predicate on the "symptoms" field.
func SymptomsContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldSymptoms, v))
}

// SymptomsHasPrefix applies the HasPrefix predicate on the "symptoms" field.
func SymptomsHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldSymptoms, v))
}

// SymptomsHasSuffix applies the HasSuffix predicate on the "symptoms" field.
func SymptomsHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldSymptoms, v))
}

// SymptomsIsNil applies the IsNil predicate on the "symptoms" field.
func SymptomsIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldSymptoms))
}

// SymptomsNotNil applies the NotNil predicate on the "symptoms" field.
func SymptomsNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldSymptoms))
}

// SymptomsEqualFold applies the EqualFold predicate on the "symptoms" field.
func SymptomsEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldSymptoms, v))
}

// SymptomsContainsFold applies the ContainsFold predicate on the "symptoms" field.
func SymptomsContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldSymptoms, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldNotes, v))
}

// IsFollowUpEQ applies the EQ predicate on the "is_follow_up" field.
func IsFollowUpEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIsFollowUp, v))
}

// IsFollowUpNEQ applies the NEQ predicate on the "is_follow_up" field.
func IsFollowUpNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldIsFollowUp, v))
}

// PreviousAppointmentIDEQ applies the EQ predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPreviousAppointmentID, v))
}

// PreviousAppointmentIDNEQ applies the NEQ predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPreviousAppointmentID, v))
}

// PreviousAppointmentIDIn applies the In predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPreviousAppointmentID, vs...))
}

// PreviousAppointmentIDNotIn applies the NotIn predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPreviousAppointmentID, vs...))
}

// PreviousAppointmentIDIsNil applies the IsNil predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPreviousAppointmentID))
}

// PreviousAppointmentIDNotNil applies the NotNil predicate on the "previous_appointment_id" field.
func PreviousAppointmentIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPreviousAppointmentID))
}

// BookedByIDEQ applies the EQ predicate on the "booked_by_id" field.
func BookedByIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookedByID, v))
}

// BookedByIDNEQ applies the NEQ predicate on the "booked_by_id" field.
func BookedByIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldBookedByID, v))
}

// BookedByIDIn applies the In predicate on the "booked_by_id" field.
func BookedByIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldBookedByID, vs...))
}

// BookedByIDNotIn applies the NotIn predicate on the "booked_by_id" field.
func BookedByIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldBookedByID, vs...))
}

// BookedByIDGT applies the GT predicate on the "booked_by_id" field.
func BookedByIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldBookedByID, v))
}

// BookedByIDGTE applies the GTE predicate on the "booked_by_id" field.
func BookedByIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldBookedByID, v))
}

// BookedByIDLT applies the LT predicate on the "booked_by_id" field.
func BookedByIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldBookedByID, v))
}

// BookedByIDLTE applies the LTE predicate on the "booked_by_id" field.
func BookedByIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldBookedByID, v))
}

// BookedByIDIsNil applies the IsNil predicate on the "booked_by_id" field.
func BookedByIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldBookedByID))
}

// BookedByIDNotNil applies the NotNil predicate on the "booked_by_id" field.
func BookedByIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldBookedByID))
}

// BookingSourceEQ applies the EQ predicate on the "booking_source" field.
func BookingSourceEQ(v BookingSource) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookingSource, v))
}

// BookingSourceNEQ applies the NEQ predicate on the "booking_source" field.
func BookingSourceNEQ(v BookingSource) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldBookingSource, v))
}

// BookingSourceIn applies the In predicate on the "booking_source" field.
func BookingSourceIn(vs ...BookingSource) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldBookingSource, vs...))
}

// BookingSourceNotIn applies the NotIn predicate on the "booking_source" field.
func BookingSourceNotIn(vs ...BookingSource) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldBookingSource, vs...))
}

// IsConfirmedEQ applies the EQ predicate on the "is_confirmed" field.
func IsConfirmedEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIsConfirmed, v))
}

// IsConfirmedNEQ applies the NEQ predicate on the "is_confirmed" field.
func IsConfirmedNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldIsConfirmed, v))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldConfirmedAt))
}

// ReminderSentEQ applies the EQ predicate on the "reminder_sent" field.
func ReminderSentEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentNEQ applies the NEQ predicate on the "reminder_sent" field.
func ReminderSentNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldReminderSent, v))
}

// ReminderSentAtEQ applies the EQ predicate on the "reminder_sent_at" field.
func ReminderSentAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReminderSentAt, v))
}

// ReminderSentAtNEQ applies the NEQ predicate on the "reminder_sent_at" field.
func ReminderSentAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldReminderSentAt, v))
}

// ReminderSentAtIn applies the In predicate on the "reminder_sent_at" field.
func ReminderSentAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtNotIn applies the NotIn predicate on the "reminder_sent_at" field.
func ReminderSentAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtGT applies the GT predicate on the "reminder_sent_at" field.
func ReminderSentAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldReminderSentAt, v))
}

// ReminderSentAtGTE applies the GTE predicate on the "reminder_sent_at" field.
func ReminderSentAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldReminderSentAt, v))
}

// ReminderSentAtLT applies the LT predicate on the "reminder_sent_at" field.
func ReminderSentAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldReminderSentAt, v))
}

// ReminderSentAtLTE applies the LTE predicate on the "reminder_sent_at" field.
func ReminderSentAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldReminderSentAt, v))
}

// ReminderSentAtIsNil applies the IsNil predicate on the "reminder_sent_at" field.
func ReminderSentAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldReminderSentAt))
}

// ReminderSentAtNotNil applies the NotNil predicate on the "reminder_sent_at" field.
func ReminderSentAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldReminderSentAt))
}

// CheckedInAtEQ applies the EQ predicate on the "checked_in_at" field.
func CheckedInAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCheckedInAt, v))
}

// CheckedInAtNEQ applies the NEQ predicate on the "checked_in_at" field.
func CheckedInAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCheckedInAt, v))
}

// CheckedInAtIn applies the In predicate on the "checked_in_at" field.
func CheckedInAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCheckedInAt, vs...))
}

// CheckedInAtNotIn applies the NotIn predicate on the "checked_in_at" field.
func CheckedInAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCheckedInAt, vs...))
}

// CheckedInAtGT applies the GT predicate on the "checked_in_at" field.
func CheckedInAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCheckedInAt, v))
}

// CheckedInAtGTE applies the GTE predicate on the "checked_in_at" field.
func CheckedInAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCheckedInAt, v))
}

// CheckedInAtLT applies the LT predicate on the "checked_in_at" field.
func CheckedInAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCheckedInAt, v))
}

// CheckedInAtLTE applies the LTE predicate on the "checked_in_at" field.
func CheckedInAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCheckedInAt, v))
}

// CheckedInAtIsNil applies the IsNil predicate on the "checked_in_at" field.
func CheckedInAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCheckedInAt))
}

// CheckedInAtNotNil applies the NotNil predicate on the "checked_in_at" field.
func CheckedInAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCheckedInAt))
}

// CheckedInByIDEQ applies the EQ predicate on the "checked_in_by_id" field.
func CheckedInByIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCheckedInByID, v))
}

// CheckedInByIDNEQ applies the NEQ predicate on the "checked_in_by_id" field.
func CheckedInByIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCheckedInByID, v))
}

// CheckedInByIDIn applies the In predicate on the "checked_in_by_id" field.
func CheckedInByIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCheckedInByID, vs...))
}

// CheckedInByIDNotIn applies the NotIn predicate on the "checked_in_by_id" field.
func CheckedInByIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCheckedInByID, vs...))
}

// CheckedInByIDGT applies the GT predicate on the "checked_in_by_id" field.
func CheckedInByIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCheckedInByID, v))
}

// CheckedInByIDGTE applies the GTE predicate on the "checked_in_by_id" field.
func CheckedInByIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCheckedInByID, v))
}

// CheckedInByIDLT applies the LT predicate on the "checked_in_by_id" field.
func CheckedInByIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCheckedInByID, v))
}

// CheckedInByIDLTE applies the LTE predicate on the "checked_in_by_id" field.
func CheckedInByIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCheckedInByID, v))
}

// CheckedInByIDIsNil applies the IsNil predicate on the "checked_in_by_id" field.
func CheckedInByIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCheckedInByID))
}

// CheckedInByIDNotNil applies the NotNil predicate on the "checked_in_by_id" field.
func CheckedInByIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCheckedInByID))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCompletedAt))
}

// ActualDurationMinEQ applies the EQ predicate on the "actual_duration_min" field.
func ActualDurationMinEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldActualDurationMin, v))
}

// ActualDurationMinNEQ applies the NEQ predicate on the "actual_duration_min" field.
func ActualDurationMinNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldActualDurationMin, v))
}

// ActualDurationMinIn applies the In predicate on the "actual_duration_min" field.
func ActualDurationMinIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldActualDurationMin, vs...))
}

// ActualDurationMinNotIn applies the NotIn predicate on the "actual_duration_min" field.
func ActualDurationMinNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldActualDurationMin, vs...))
}

// ActualDurationMinGT applies the GT predicate on the "actual_duration_min" field.
func ActualDurationMinGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldActualDurationMin, v))
}

// ActualDurationMinGTE applies the GTE predicate on the "actual_duration_min" field.
func ActualDurationMinGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldActualDurationMin, v))
}

// ActualDurationMinLT applies the LT predicate on the "actual_duration_min" field.
func ActualDurationMinLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldActualDurationMin, v))
}

// ActualDurationMinLTE applies the LTE predicate on the "actual_duration_min" field.
func ActualDurationMinLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldActualDurationMin, v))
}

// ActualDurationMinIsNil applies the IsNil predicate on the "actual_duration_min" field.
func ActualDurationMinIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldActualDurationMin))
}

// ActualDurationMinNotNil applies the NotNil predicate on the "actual_duration_min" field.
func ActualDurationMinNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldActualDurationMin))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// CancelledByIDEQ applies the EQ predicate on the "cancelled_by_id" field.
func CancelledByIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledByID, v))
}

// CancelledByIDNEQ applies the NEQ predicate on the "cancelled_by_id" field.
func CancelledByIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledByID, v))
}

// CancelledByIDIn applies the In predicate on the "cancelled_by_id" field.
func CancelledByIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledByID, vs...))
}

// CancelledByIDNotIn applies the NotIn predicate on the "cancelled_by_id" field.
func CancelledByIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledByID, vs...))
}

// CancelledByIDGT applies the GT predicate on the "cancelled_by_id" field.
func CancelledByIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledByID, v))
}

// CancelledByIDGTE applies the GTE predicate on the "cancelled_by_id" field.
func CancelledByIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledByID, v))
}

// CancelledByIDLT applies the LT predicate on the "cancelled_by_id" field.
func CancelledByIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledByID, v))
}

// CancelledByIDLTE applies the LTE predicate on the "cancelled_by_id" field.
func CancelledByIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledByID, v))
}

// CancelledByIDIsNil applies the IsNil predicate on the "cancelled_by_id" field.
func CancelledByIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledByID))
}

// CancelledByIDNotNil applies the NotNil predicate on the "cancelled_by_id" field.
func CancelledByIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledByID))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// MeetingLinkEQ applies the EQ predicate on the "meeting_link" field.
func MeetingLinkEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingLink, v))
}

// MeetingLinkNEQ applies the NEQ predicate on the "meeting_link" field.
func MeetingLinkNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMeetingLink, v))
}

// MeetingLinkIn applies the In predicate on the "meeting_link" field.
func MeetingLinkIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMeetingLink, vs...))
}

// MeetingLinkNotIn applies the NotIn predicate on the "meeting_link" field.
func MeetingLinkNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMeetingLink, vs...))
}

// MeetingLinkGT applies the GT predicate on the "meeting_link" field.
func MeetingLinkGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMeetingLink, v))
}

// MeetingLinkGTE applies the GTE predicate on the "meeting_link" field.
func MeetingLinkGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMeetingLink, v))
}

// MeetingLinkLT applies the LT predicate on the "meeting_link" field.
func MeetingLinkLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMeetingLink, v))
}

// MeetingLinkLTE applies the LTE predicate on the "meeting_link" field.
func MeetingLinkLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMeetingLink, v))
}

// MeetingLinkContains applies the Contains predicate on the "meeting_link" field.
func MeetingLinkContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldMeetingLink, v))
}

// MeetingLinkHasPrefix applies the HasPrefix predicate on the "meeting_link" field.
func MeetingLinkHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldMeetingLink, v))
}

// MeetingLinkHasSuffix applies the HasSuffix predicate on the "meeting_link" field.
func MeetingLinkHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldMeetingLink, v))
}

// MeetingLinkIsNil applies the IsNil predicate on the "meeting_link" field.
func MeetingLinkIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldMeetingLink))
}

// MeetingLinkNotNil applies the NotNil predicate on the "meeting_link" field.
func MeetingLinkNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldMeetingLink))
}

// MeetingLinkEqualFold applies the EqualFold predicate on the "meeting_link" field.
func MeetingLinkEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldMeetingLink, v))
}

// MeetingLinkContainsFold applies the ContainsFold predicate on the "meeting_link" field.
func MeetingLinkContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldMeetingLink, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDIsNil applies the IsNil predicate on the "meeting_id" field.
func MeetingIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldMeetingID))
}

// MeetingIDNotNil applies the NotNil predicate on the "meeting_id" field.
func MeetingIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldMeetingID))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldMeetingID, v))
}

// MeetingPasswordEQ applies the EQ predicate on the "meeting_password" field.
func MeetingPasswordEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingPassword, v))
}

// MeetingPasswordNEQ applies the NEQ predicate on the "meeting_password" field.
func MeetingPasswordNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMeetingPassword, v))
}

// MeetingPasswordIn applies the In predicate on the "meeting_password" field.
func MeetingPasswordIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMeetingPassword, vs...))
}

// MeetingPasswordNotIn applies the NotIn predicate on the "meeting_password" field.
func MeetingPasswordNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMeetingPassword, vs...))
}

// MeetingPasswordGT applies the GT predicate on the "meeting_password" field.
func MeetingPasswordGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMeetingPassword, v))
}

// MeetingPasswordGTE applies the GTE predicate on the "meeting_password" field.
func MeetingPasswordGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMeetingPassword, v))
}

// MeetingPasswordLT applies the LT predicate on the "meeting_password" field.
func MeetingPasswordLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMeetingPassword, v))
}

// MeetingPasswordLTE applies the LTE predicate on the "meeting_password" field.
func MeetingPasswordLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMeetingPassword, v))
}

// MeetingPasswordContains applies the Contains predicate on the "meeting_password" field.
func MeetingPasswordContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldMeetingPassword, v))
}

// MeetingPasswordHasPrefix applies the HasPrefix predicate on the "meeting_password" field.
func MeetingPasswordHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldMeetingPassword, v))
}

// MeetingPasswordHasSuffix applies the HasSuffix predicate on the "meeting_password" field.
func MeetingPasswordHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldMeetingPassword, v))
}

// MeetingPasswordIsNil applies the IsNil predicate on the "meeting_password" field.
func MeetingPasswordIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldMeetingPassword))
}

// MeetingPasswordNotNil applies the NotNil predicate on the "meeting_password" field.
func MeetingPasswordNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldMeetingPassword))
}

// MeetingPasswordEqualFold applies the EqualFold predicate on the "meeting_password" field.
func MeetingPasswordEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldMeetingPassword, v))
}

// MeetingPasswordContainsFold applies the ContainsFold predicate on the "meeting_password" field.
func MeetingPasswordContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldMeetingPassword, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEstimatedCost, v))
}

// EstimatedCostIsNil applies the IsNil predicate on the "estimated_cost" field.
func EstimatedCostIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldEstimatedCost))
}

// EstimatedCostNotNil applies the NotNil predicate on the "estimated_cost" field.
func EstimatedCostNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldEstimatedCost))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasService applies the HasEdge predicate on the "service" edge.
func HasService() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ServiceTable, ServiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServiceWith applies the HasEdge predicate on the "service" edge with a given conditions (other predicates).
func HasServiceWith(preds ...predicate.Service) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newServiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppointmentType applies the HasEdge predicate on the "appointment_type" edge.
func HasAppointmentType() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AppointmentTypeTable, AppointmentTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentTypeWith applies the HasEdge predicate on the "appointment_type" edge with a given conditions (other predicates).
func HasAppointmentTypeWith(preds ...predicate.AppointmentType) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newAppointmentTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPreviousAppointment applies the HasEdge predicate on the "previous_appointment" edge.
func HasPreviousAppointment() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PreviousAppointmentTable, PreviousAppointmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPreviousAppointmentWith applies the HasEdge predicate on the "previous_appointment" edge with a given conditions (other predicates).
func HasPreviousAppointmentWith(preds ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newPreviousAppointmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFollowUps applies the HasEdge predicate on the "follow_ups" edge.
func HasFollowUps() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FollowUpsTable, FollowUpsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFollowUpsWith applies the HasEdge predicate on the "follow_ups" edge with a given conditions (other predicates).
func HasFollowUpsWith(preds ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newFollowUpsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReschedules applies the HasEdge predicate on the "reschedules" edge.
func HasReschedules() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReschedulesTable, ReschedulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReschedulesWith applies the HasEdge predicate on the "reschedules" edge with a given conditions (other predicates).
func HasReschedulesWith(preds ...predicate.AppointmentReschedule) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newReschedulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppointmentNotes applies the HasEdge predicate on the "appointment_notes" edge.
func HasAppointmentNotes() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppointmentNotesTable, AppointmentNotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentNotesWith applies the HasEdge predicate on the "appointment_notes" edge with a given conditions (other predicates).
func HasAppointmentNotesWith(preds ...predicate.AppointmentNote) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newAppointmentNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
