// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldServiceID holds the string denoting the service_id field in the database.
	FieldServiceID = "service_id"
	// FieldAppointmentTypeID holds the string denoting the appointment_type_id field in the database.
	FieldAppointmentTypeID = "appointment_type_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldDurationMin holds the string denoting the duration_min field in the database.
	FieldDurationMin = "duration_min"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldConsultationType holds the string denoting the consultation_type field in the database.
	FieldConsultationType = "consultation_type"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldIsFollowUp holds the string denoting the is_follow_up field in the database.
	FieldIsFollowUp = "is_follow_up"
	// FieldPreviousAppointmentID holds the string denoting the previous_appointment_id field in the database.
	FieldPreviousAppointmentID = "previous_appointment_id"
	// FieldBookedByID holds the string denoting the booked_by_id field in the database.
	FieldBookedByID = "booked_by_id"
	// FieldBookingSource holds the string denoting the booking_source field in the database.
	FieldBookingSource = "booking_source"
	// FieldIsConfirmed holds the string denoting the is_confirmed field in the database.
	FieldIsConfirmed = "is_confirmed"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldReminderSent holds the string denoting the reminder_sent field in the database.
	FieldReminderSent = "reminder_sent"
	// FieldReminderSentAt holds the string denoting the reminder_sent_at field in the database.
	FieldReminderSentAt = "reminder_sent_at"
	// FieldCheckedInAt holds the string denoting the checked_in_at field in the database.
	FieldCheckedInAt = "checked_in_at"
	// FieldCheckedInByID holds the string denoting the checked_in_by_id field in the database.
	FieldCheckedInByID = "checked_in_by_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldActualDurationMin holds the string denoting the actual_duration_min field in the database.
	FieldActualDurationMin = "actual_duration_min"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCancelledByID holds the string denoting the cancelled_by_id field in the database.
	FieldCancelledByID = "cancelled_by_id"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// FieldMeetingLink holds the string denoting the meeting_link field in the database.
	FieldMeetingLink = "meeting_link"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldMeetingPassword holds the string denoting the meeting_password field in the database.
	FieldMeetingPassword = "meeting_password"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// EdgeService holds the string denoting the service edge name in mutations.
	EdgeService = "service"
	// EdgeAppointmentType holds the string denoting the appointment_type edge name in mutations.
	EdgeAppointmentType = "appointment_type"
	// EdgePreviousAppointment holds the string denoting the previous_appointment edge name in mutations.
	EdgePreviousAppointment = "previous_appointment"
	// EdgeFollowUps holds the string denoting the follow_ups edge name in mutations.
	EdgeFollowUps = "follow_ups"
	// EdgeReschedules holds the string denoting the reschedules edge name in mutations.
	EdgeReschedules = "reschedules"
	// EdgeAppointmentNotes holds the string denoting the appointment_notes edge name in mutations.
	EdgeAppointmentNotes = "appointment_notes"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "appointments"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "appointments"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
	// ServiceTable is the table that holds the service relation/edge.
	ServiceTable = "appointments"
	// ServiceInverseTable is the table name for the Service entity.
	// It exists in this package in order to avoid circular dependency with the "service" package.
	ServiceInverseTable = "services"
	// ServiceColumn is the table column denoting the service relation/edge.
	ServiceColumn = "service_id"
	// AppointmentTypeTable is the table that holds the appointment_type relation/edge.
	AppointmentTypeTable = "appointments"
	// AppointmentTypeInverseTable is the table name for the AppointmentType entity.
	// It exists in this package in order to avoid circular dependency with the "appointmenttype" package.
	AppointmentTypeInverseTable = "appointment_types"
	// AppointmentTypeColumn is the table column denoting the appointment_type relation/edge.
	AppointmentTypeColumn = "appointment_type_id"
	// PreviousAppointmentTable is the table that holds the previous_appointment relation/edge.
	PreviousAppointmentTable = "appointments"
	// PreviousAppointmentColumn is the table column denoting the previous_appointment relation/edge.
	PreviousAppointmentColumn = "previous_appointment_id"
	// FollowUpsTable is the table that holds the follow_ups relation/edge.
	FollowUpsTable = "appointments"
	// FollowUpsColumn is the table column denoting the follow_ups relation/edge.
	FollowUpsColumn = "previous_appointment_id"
	// ReschedulesTable is the table that holds the reschedules relation/edge.
	ReschedulesTable = "appointment_reschedules"
	// ReschedulesInverseTable is the table name for the AppointmentReschedule entity.
	// It exists in this package in order to avoid circular dependency with the "appointmentreschedule" package.
	ReschedulesInverseTable = "appointment_reschedules"
	// ReschedulesColumn is the table column denoting the reschedules relation/edge.
	ReschedulesColumn = "appointment_id"
	// AppointmentNotesTable is the table that holds the appointment_notes relation/edge.
	AppointmentNotesTable = "appointment_notes"
	// AppointmentNotesInverseTable is the table name for the AppointmentNote entity.
	// It exists in this package in order to avoid circular dependency with the "appointmentnote" package.
	AppointmentNotesInverseTable = "appointment_notes"
	// AppointmentNotesColumn is the table column denoting the appointment_notes relation/edge.
	AppointmentNotesColumn = "appointment_id"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAppointmentID,
	FieldPatientID,
	FieldDoctorID,
	FieldServiceID,
	FieldAppointmentTypeID,
	FieldStartTime,
	FieldDurationMin,
	FieldEndTime,
	FieldStatus,
	FieldPriority,
	FieldConsultationType,
	FieldChiefComplaint,
	FieldSymptoms,
	FieldNotes,
	FieldIsFollowUp,
	FieldPreviousAppointmentID,
	FieldBookedByID,
	FieldBookingSource,
	FieldIsConfirmed,
	FieldConfirmedAt,
	FieldReminderSent,
	FieldReminderSentAt,
	FieldCheckedInAt,
	FieldCheckedInByID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldActualDurationMin,
	FieldCancelledAt,
	FieldCancelledByID,
	FieldCancellationReason,
	FieldMeetingLink,
	FieldMeetingID,
	FieldMeetingPassword,
	FieldEstimatedCost,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// AppointmentIDValidator is a validator for the "appointment_id" field. It is called by the builders before save.
	AppointmentIDValidator func(string) error
	// DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	DurationMinValidator func(int) error
	// DefaultIsFollowUp holds the default value on creation for the "is_follow_up" field.
	DefaultIsFollowUp bool
	// DefaultIsConfirmed holds the default value on creation for the "is_confirmed" field.
	DefaultIsConfirmed bool
	// DefaultReminderSent holds the default value on creation for the "reminder_sent" field.
	DefaultReminderSent bool
	// MeetingLinkValidator is a validator for the "meeting_link" field. It is called by the builders before save.
	MeetingLinkValidator func(string) error
	// MeetingIDValidator is a validator for the "meeting_id" field. It is called by the builders before save.
	MeetingIDValidator func(string) error
	// MeetingPasswordValidator is a validator for the "meeting_password" field. It is called by the builders before save.
	MeetingPasswordValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCheckedIn   Status = "checked_in"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCheckedIn, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for priority field: %q", pr)
	}
}

// ConsultationType defines the type for the "consultation_type" enum field.
type ConsultationType string

// ConsultationTypeInPerson is the default value of the ConsultationType enum.
const DefaultConsultationType = ConsultationTypeInPerson

// ConsultationType values.
const (
	ConsultationTypeInPerson ConsultationType = "in_person"
	ConsultationTypeVirtual  ConsultationType = "virtual"
	ConsultationTypePhone    ConsultationType = "phone"
)

func (ct ConsultationType) String() string {
	return string(ct)
}

// ConsultationTypeValidator is a validator for the "consultation_type" field enum values. It is called by the builders before save.
func ConsultationTypeValidator(ct ConsultationType) error {
	switch ct {
	case ConsultationTypeInPerson, ConsultationTypeVirtual, ConsultationTypePhone:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for consultation_type field: %q", ct)
	}
}

// BookingSource defines the type for the "booking_source" enum field.
type BookingSource string

// BookingSourceOnline is the default value of the BookingSource enum.
const DefaultBookingSource = BookingSourceOnline

// BookingSource values.
const (
	BookingSourceOnline   BookingSource = "online"
	BookingSourcePhone    BookingSource = "phone"
	BookingSourceWalkIn   BookingSource = "walk_in"
	BookingSourceStaff    BookingSource = "staff"
	BookingSourceReferral BookingSource = "referral"
)

func (bs BookingSource) String() string {
	return string(bs)
}

// BookingSourceValidator is a validator for the "booking_source" field enum values. It is called by the builders before save.
func BookingSourceValidator(bs BookingSource) error {
	switch bs {
	case BookingSourceOnline, BookingSourcePhone, BookingSourceWalkIn, BookingSourceStaff, BookingSourceReferral:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for booking_source field: %q", bs)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByServiceID orders the results by the service_id field.
func ByServiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceID, opts...).ToFunc()
}

// ByAppointmentTypeID orders the results by the appointment_type_id field.
func ByAppointmentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentTypeID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByDurationMin orders the results by the duration_min field.
func ByDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMin, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByConsultationType orders the results by the consultation_type field.
func ByConsultationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationType, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// BySymptoms orders the results by the symptoms field.
func BySymptoms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymptoms, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByIsFollowUp orders the results by the is_follow_up field.
func ByIsFollowUp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFollowUp, opts...).ToFunc()
}

// ByPreviousAppointmentID orders the results by the previous_appointment_id field.
func ByPreviousAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousAppointmentID, opts...).ToFunc()
}

// ByBookedByID orders the results by the booked_by_id field.
func ByBookedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookedByID, opts...).ToFunc()
}

// ByBookingSource orders the results by the booking_source field.
func ByBookingSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingSource, opts...).ToFunc()
}

// ByIsConfirmed orders the results by the is_confirmed field.
func ByIsConfirmed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsConfirmed, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByReminderSent orders the results by the reminder_sent field.
func ByReminderSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderSent, opts...).ToFunc()
}

// ByReminderSentAt orders the results by the reminder_sent_at field.
func ByReminderSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderSentAt, opts...).ToFunc()
}

// ByCheckedInAt orders the results by the checked_in_at field.
func ByCheckedInAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedInAt, opts...).ToFunc()
}

// ByCheckedInByID orders the results by the checked_in_by_id field.
func ByCheckedInByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedInByID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByActualDurationMin orders the results by the actual_duration_min field.
func ByActualDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualDurationMin, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCancelledByID orders the results by the cancelled_by_id field.
func ByCancelledByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledByID, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}

// ByMeetingLink orders the results by the meeting_link field.
func ByMeetingLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingLink, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByMeetingPassword orders the results by the meeting_password field.
func ByMeetingPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingPassword, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByServiceField orders the results by service field.
func ByServiceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServiceStep(), sql.OrderByField(field, opts...))
	}
}

// ByAppointmentTypeField orders the results by appointment_type field.
func ByAppointmentTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentTypeStep(), sql.OrderByField(field, opts...))
	}
}

// ByPreviousAppointmentField orders the results by previous_appointment field.
func ByPreviousAppointmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPreviousAppointmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByFollowUpsCount orders the results by follow_ups count.
func ByFollowUpsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFollowUpsStep(), opts...)
	}
}

// ByFollowUps orders the results by follow_ups terms.
func ByFollowUps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFollowUpsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReschedulesCount orders the results by reschedules count.
func ByReschedulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReschedulesStep(), opts...)
	}
}

// ByReschedules orders the results by reschedules terms.
func ByReschedules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReschedulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentNotesCount orders the results by appointment_notes count.
func ByAppointmentNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentNotesStep(), opts...)
	}
}

// ByAppointmentNotes orders the results by appointment_notes terms.
func ByAppointmentNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, PatientTable, PatientColumn),
	)
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
	)
}
func newServiceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServiceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ServiceTable, ServiceColumn),
	)
}
func newAppointmentTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AppointmentTypeTable, AppointmentTypeColumn),
	)
}
func newPreviousAppointmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PreviousAppointmentTable, PreviousAppointmentColumn),
	)
}
func newFollowUpsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FollowUpsTable, FollowUpsColumn),
	)
}
func newReschedulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReschedulesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReschedulesTable, ReschedulesColumn),
	)
}
func newAppointmentNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentNotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentNotesTable, AppointmentNotesColumn),
	)
}
