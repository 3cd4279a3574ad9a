package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entappt "github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	entnote "github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	enttype "github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	entsettings "github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	entdoctor "github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	entavail "github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	entleave "github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	entholiday "github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
	entservice "github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	entwait "github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

// Defaults used when no ClinicSettings row exists yet.
const (
	defaultMinAdvanceHours   = 24
	defaultMaxAdvanceDays    = 60
	defaultCancelWindowHours = 24

	// Appointment id generation races with concurrent bookings on the
	// unique appointment_id column; retry a couple of times.
	maxIDAttempts = 3
)

// statuses that keep a doctor's slot occupied
var blockingStatuses = []entappt.Status{
	entappt.StatusScheduled,
	entappt.StatusConfirmed,
	entappt.StatusCheckedIn,
	entappt.StatusInProgress,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type BookRequest struct {
	PatientID         uuid.UUID
	DoctorID          uuid.UUID
	ServiceID         *uuid.UUID
	AppointmentTypeID uuid.UUID
	StartTime         time.Time
	DurationMin       int        // 0 = resolve from service, then appointment type
	EndTime           *time.Time // derived from start + duration when nil
	Priority          *string
	ConsultationType  *string
	ChiefComplaint    *string
	Symptoms          *string
	Notes             *string
	IsFollowUp        bool
	PreviousID        *uuid.UUID
	BookedByID        *uuid.UUID
	BookingSource     *string
	EstimatedCost     *int64
}

type CancelRequest struct {
	Reason        *string
	CancelledByID uuid.UUID
	// Override skips the cancellation window check; reserved for staff.
	Override bool
}

type RescheduleRequest struct {
	NewStartTime    time.Time
	Reason          *string
	RescheduledByID uuid.UUID
}

type AddNoteRequest struct {
	NoteType    string
	Content     string
	IsPrivate   bool
	CreatedByID uuid.UUID
}

type WaitingListRequest struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	ServiceID     *uuid.UUID
	PreferredDate *time.Time
	PreferredTime *string
	EarliestDate  time.Time
	LatestDate    time.Time
	Notes         *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	GetByAppointmentID(ctx context.Context, humanID string) (*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)

	Confirm(ctx context.Context, apptID uuid.UUID) error
	CheckIn(ctx context.Context, apptID, checkedInByID uuid.UUID) error
	Start(ctx context.Context, apptID uuid.UUID) error
	Complete(ctx context.Context, apptID uuid.UUID) error
	Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error
	MarkNoShow(ctx context.Context, apptID uuid.UUID) error
	Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)

	AddNote(ctx context.Context, apptID uuid.UUID, req AddNoteRequest) (*repo.AppointmentNote, error)
	ListNotes(ctx context.Context, apptID uuid.UUID, includePrivate bool) ([]*repo.AppointmentNote, error)

	JoinWaitingList(ctx context.Context, req WaitingListRequest) (*repo.WaitingList, error)
	ListWaitingList(ctx context.Context, doctorID *uuid.UUID, activeOnly bool) ([]*repo.WaitingList, error)
	LeaveWaitingList(ctx context.Context, entryID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &appointmentService{db: db, nc: nc}
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	appt, err := s.book(ctx, s.db, req)
	if err != nil {
		return nil, err
	}
	s.publish("booked", appt.ID)
	return appt, nil
}

// book runs the validated create against db, which is either the root
// client or one bound to a transaction (reschedule).
func (s *appointmentService) book(ctx context.Context, db *repo.Client, req BookRequest) (*repo.Appointment, error) {
	policy, err := s.bookingPolicy(ctx, db)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.StartTime.Before(now.Add(time.Duration(policy.minAdvanceHours) * time.Hour)) {
		return nil, ErrTooSoon
	}
	if req.StartTime.After(now.AddDate(0, 0, policy.maxAdvanceDays)) {
		return nil, ErrTooFarAhead
	}

	duration, err := s.resolveDuration(ctx, db, req)
	if err != nil {
		return nil, err
	}

	end := DeriveEndTime(req.StartTime, duration)
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if err := s.checkSlot(ctx, db, req.DoctorID, req.StartTime, end, nil); err != nil {
		return nil, err
	}

	prefix := IDPrefix(req.StartTime)

	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		humanID, err := s.nextAppointmentID(ctx, db, prefix)
		if err != nil {
			return nil, err
		}

		c := db.Appointment.Create().
			SetAppointmentID(humanID).
			SetPatientID(req.PatientID).
			SetDoctorID(req.DoctorID).
			SetAppointmentTypeID(req.AppointmentTypeID).
			SetStartTime(req.StartTime).
			SetDurationMin(duration).
			SetEndTime(end).
			SetIsFollowUp(req.IsFollowUp)

		if req.ServiceID != nil {
			c = c.SetNillableServiceID(req.ServiceID)
		}
		if req.Priority != nil {
			c = c.SetPriority(entappt.Priority(*req.Priority))
		}
		if req.ConsultationType != nil {
			c = c.SetConsultationType(entappt.ConsultationType(*req.ConsultationType))
		}
		if req.ChiefComplaint != nil {
			c = c.SetNillableChiefComplaint(req.ChiefComplaint)
		}
		if req.Symptoms != nil {
			c = c.SetNillableSymptoms(req.Symptoms)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}
		if req.PreviousID != nil {
			c = c.SetNillablePreviousAppointmentID(req.PreviousID)
		}
		if req.BookedByID != nil {
			c = c.SetNillableBookedByID(req.BookedByID)
		}
		if req.BookingSource != nil {
			c = c.SetBookingSource(entappt.BookingSource(*req.BookingSource))
		}
		if req.EstimatedCost != nil {
			c = c.SetNillableEstimatedCost(req.EstimatedCost)
		}

		appt, err := c.Save(ctx)
		if err == nil {
			return appt, nil
		}
		if repo.IsConstraintError(err) {
			// Either the id sequence race or the unique (doctor, start_time)
			// index. Re-check the slot to tell them apart.
			if slotErr := s.checkSlot(ctx, db, req.DoctorID, req.StartTime, end, nil); slotErr != nil {
				return nil, slotErr
			}
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return nil, fmt.Errorf("create appointment: id sequence contention: %w", lastErr)
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		WithPatient().
		WithDoctor().
		WithAppointmentType().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) GetByAppointmentID(ctx context.Context, humanID string) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.AppointmentID(humanID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment by appointment_id: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	appts, err := q.
		Order(entappt.ByStartTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// ---------------------------------------------------------------------------
// Lifecycle transitions
// ---------------------------------------------------------------------------

func (s *appointmentService) Confirm(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusScheduled {
		return s.transitionErr(appt.Status)
	}

	now := time.Now()
	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		SetIsConfirmed(true).
		SetConfirmedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("confirm appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) CheckIn(ctx context.Context, apptID, checkedInByID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusScheduled && appt.Status != entappt.StatusConfirmed {
		return s.transitionErr(appt.Status)
	}

	now := time.Now()
	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCheckedIn).
		SetCheckedInAt(now).
		SetCheckedInByID(checkedInByID).
		Exec(ctx); err != nil {
		return fmt.Errorf("check in appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) Start(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusCheckedIn && appt.Status != entappt.StatusConfirmed {
		return s.transitionErr(appt.Status)
	}

	now := time.Now()
	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusInProgress).
		SetStartedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("start appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusInProgress && appt.Status != entappt.StatusCheckedIn {
		return s.transitionErr(appt.Status)
	}

	now := time.Now()
	u := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(now)

	if appt.StartedAt != nil {
		actual := int(now.Sub(*appt.StartedAt).Minutes())
		if actual < 1 {
			actual = 1
		}
		u = u.SetActualDurationMin(actual)
	}

	if err := u.Exec(ctx); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status == entappt.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusCompleted {
		return ErrAlreadyCompleted
	}

	if !req.Override {
		policy, err := s.bookingPolicy(ctx, s.db)
		if err != nil {
			return err
		}
		window := time.Duration(policy.cancelWindowHours) * time.Hour
		if !CanBeCancelled(appt.StartTime, time.Now(), window) {
			return ErrCancellationWindowClosed
		}
	}

	now := time.Now()
	u := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(now).
		SetCancelledByID(req.CancelledByID)

	if req.Reason != nil {
		u = u.SetNillableCancellationReason(req.Reason)
	}

	if err := u.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish("cancelled", appt.ID)
	return nil
}

func (s *appointmentService) MarkNoShow(ctx context.Context, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusScheduled && appt.Status != entappt.StatusConfirmed {
		return s.transitionErr(appt.Status)
	}
	if !IsPastDue(appt.StartTime, time.Now()) {
		return ErrInvalidTransition
	}

	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusNoShow).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark no-show: %w", err)
	}
	return nil
}

// Reschedule cancels the slot of the original appointment (status becomes
// rescheduled), writes the audit row and books a replacement at the new
// time, linked back through previous_appointment. All three writes share
// one transaction so a failed replacement cannot strand the original.
func (s *appointmentService) Reschedule(ctx context.Context, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status != entappt.StatusScheduled && appt.Status != entappt.StatusConfirmed {
		return nil, s.transitionErr(appt.Status)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reschedule: %w", err)
	}
	client := tx.Client()

	replacement, err := s.book(ctx, client, rescheduleBooking(appt, req))
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := client.Appointment.UpdateOneID(appt.ID).
		SetStatus(entappt.StatusRescheduled).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("mark rescheduled: %w", err)
	}

	c := client.AppointmentReschedule.Create().
		SetAppointmentID(appt.ID).
		SetOldStartTime(appt.StartTime).
		SetNewStartTime(req.NewStartTime).
		SetRescheduledByID(req.RescheduledByID)
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}
	if _, err := c.Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("record reschedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", err)
	}

	s.publish("booked", replacement.ID)
	return replacement, nil
}

// rescheduleBooking builds the replacement booking for appt at the new
// start time, carrying over the clinical context of the original visit.
func rescheduleBooking(appt *repo.Appointment, req RescheduleRequest) BookRequest {
	return BookRequest{
		PatientID:         appt.PatientID,
		DoctorID:          appt.DoctorID,
		ServiceID:         appt.ServiceID,
		AppointmentTypeID: appt.AppointmentTypeID,
		StartTime:         req.NewStartTime,
		DurationMin:       appt.DurationMin,
		ConsultationType:  (*string)(&appt.ConsultationType),
		ChiefComplaint:    appt.ChiefComplaint,
		Symptoms:          appt.Symptoms,
		Notes:             appt.Notes,
		IsFollowUp:        appt.IsFollowUp,
		PreviousID:        &appt.ID,
		BookedByID:        &req.RescheduledByID,
		EstimatedCost:     appt.EstimatedCost,
	}
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

func (s *appointmentService) AddNote(ctx context.Context, apptID uuid.UUID, req AddNoteRequest) (*repo.AppointmentNote, error) {
	if _, err := s.GetByID(ctx, apptID); err != nil {
		return nil, err
	}

	n, err := s.db.AppointmentNote.Create().
		SetAppointmentID(apptID).
		SetNoteType(entnote.NoteType(req.NoteType)).
		SetContent(req.Content).
		SetIsPrivate(req.IsPrivate).
		SetCreatedByID(req.CreatedByID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment note: %w", err)
	}
	return n, nil
}

func (s *appointmentService) ListNotes(ctx context.Context, apptID uuid.UUID, includePrivate bool) ([]*repo.AppointmentNote, error) {
	q := s.db.AppointmentNote.Query().
		Where(entnote.AppointmentID(apptID))
	if !includePrivate {
		q = q.Where(entnote.IsPrivate(false))
	}

	notes, err := q.Order(entnote.ByCreatedAt(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointment notes: %w", err)
	}
	return notes, nil
}

// ---------------------------------------------------------------------------
// Waiting list
// ---------------------------------------------------------------------------

func (s *appointmentService) JoinWaitingList(ctx context.Context, req WaitingListRequest) (*repo.WaitingList, error) {
	c := s.db.WaitingList.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(req.DoctorID).
		SetEarliestDate(req.EarliestDate).
		SetLatestDate(req.LatestDate)

	if req.ServiceID != nil {
		c = c.SetNillableServiceID(req.ServiceID)
	}
	if req.PreferredDate != nil {
		c = c.SetNillablePreferredDate(req.PreferredDate)
	}
	if req.PreferredTime != nil {
		c = c.SetNillablePreferredTime(req.PreferredTime)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	w, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("join waiting list: %w", err)
	}
	return w, nil
}

func (s *appointmentService) ListWaitingList(ctx context.Context, doctorID *uuid.UUID, activeOnly bool) ([]*repo.WaitingList, error) {
	q := s.db.WaitingList.Query()
	if doctorID != nil {
		q = q.Where(entwait.DoctorID(*doctorID))
	}
	if activeOnly {
		q = q.Where(entwait.IsActive(true))
	}

	entries, err := q.Order(entwait.ByCreatedAt(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waiting list: %w", err)
	}
	return entries, nil
}

func (s *appointmentService) LeaveWaitingList(ctx context.Context, entryID uuid.UUID) error {
	n, err := s.db.WaitingList.Update().
		Where(entwait.ID(entryID), entwait.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("leave waiting list: %w", err)
	}
	if n == 0 {
		return ErrWaitingListNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type bookingPolicy struct {
	minAdvanceHours   int
	maxAdvanceDays    int
	cancelWindowHours int
}

func (s *appointmentService) bookingPolicy(ctx context.Context, db *repo.Client) (bookingPolicy, error) {
	policy := bookingPolicy{
		minAdvanceHours:   defaultMinAdvanceHours,
		maxAdvanceDays:    defaultMaxAdvanceDays,
		cancelWindowHours: defaultCancelWindowHours,
	}

	settings, err := db.ClinicSettings.Query().
		Order(entsettings.ByCreatedAt(sql.OrderAsc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return policy, nil
		}
		return policy, fmt.Errorf("load clinic settings: %w", err)
	}

	policy.minAdvanceHours = settings.MinAdvanceBookingHours
	policy.maxAdvanceDays = settings.MaxAdvanceBookingDays
	policy.cancelWindowHours = settings.CancellationDeadlineHours
	return policy, nil
}

func (s *appointmentService) resolveDuration(ctx context.Context, db *repo.Client, req BookRequest) (int, error) {
	if req.DurationMin > 0 {
		return req.DurationMin, nil
	}

	if req.ServiceID != nil {
		svc, err := db.Service.Query().
			Where(entservice.ID(*req.ServiceID)).
			Only(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return 0, fmt.Errorf("load service: %w", err)
		}
		if svc != nil {
			return svc.DurationMin, nil
		}
	}

	at, err := db.AppointmentType.Query().
		Where(enttype.ID(req.AppointmentTypeID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, ErrAppointmentTypeNotFound
		}
		return 0, fmt.Errorf("load appointment type: %w", err)
	}
	return at.DurationMin, nil
}

// checkSlot verifies the doctor can take a visit in [start, end):
// the doctor accepts bookings, has a weekly window covering the time,
// is not on approved leave, the clinic is not closed for a holiday, and
// no other active appointment overlaps. excludeID skips one appointment
// when re-validating during a reschedule.
func (s *appointmentService) checkSlot(ctx context.Context, db *repo.Client, doctorID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	doc, err := db.Doctor.Query().
		Where(entdoctor.ID(doctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("load doctor: %w", err)
	}
	if !doc.IsAvailable {
		return ErrDoctorUnavailable
	}

	// Weekly availability window
	windows, err := db.DoctorAvailability.Query().
		Where(
			entavail.DoctorID(doctorID),
			entavail.DayOfWeek(WeekdayIndex(start)),
			entavail.IsAvailable(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load availability: %w", err)
	}
	covered := false
	for _, w := range windows {
		if WithinWindow(start, end, w.StartTime, w.EndTime) {
			covered = true
			break
		}
	}
	if !covered {
		return ErrDoctorUnavailable
	}

	// Approved leave
	onLeave, err := db.DoctorLeave.Query().
		Where(
			entleave.DoctorID(doctorID),
			entleave.IsApproved(true),
			entleave.StartDateLTE(start),
			entleave.EndDateGTE(start),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check leave: %w", err)
	}
	if onLeave {
		return ErrDoctorOnLeave
	}

	// Holidays; recurring ones match by month and day, so filter in Go.
	holidays, err := db.Holiday.Query().
		Where(entholiday.AffectsAppointments(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("check holidays: %w", err)
	}
	for _, h := range holidays {
		if HolidayBlocks(h.Date, start, h.IsRecurring) {
			return ErrClinicClosed
		}
	}

	// Overlapping appointment
	q := db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StatusIn(blockingStatuses...),
			entappt.StartTimeLT(end),
			entappt.EndTimeGT(start),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}
	conflict, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check conflicts: %w", err)
	}
	if conflict {
		return ErrTimeSlotTaken
	}

	return nil
}

// nextAppointmentID reads the highest existing id under prefix and
// increments it. Ordered by length before value: past sequence 9999 the ids
// grow a digit, and a plain string sort would put "…10000" below "…9999".
func (s *appointmentService) nextAppointmentID(ctx context.Context, db *repo.Client, prefix string) (string, error) {
	last, err := db.Appointment.Query().
		Where(entappt.AppointmentIDHasPrefix(prefix)).
		Order(func(sel *sql.Selector) {
			col := sel.C(entappt.FieldAppointmentID)
			sel.OrderExpr(sql.Expr(fmt.Sprintf("length(%s) DESC, %s DESC", col, col)))
		}).
		First(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return "", fmt.Errorf("query max appointment id: %w", err)
	}

	lastID := ""
	if last != nil {
		lastID = last.AppointmentID
	}
	return NextID(prefix, lastID)
}

func (s *appointmentService) transitionErr(status entappt.Status) error {
	switch status {
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrInvalidTransition
	}
}

func (s *appointmentService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("dermacare.appointment.%s.%s", event, apptID.String())
	_ = s.nc.Publish(subject, []byte(apptID.String()))
}
