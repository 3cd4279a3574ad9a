package appointment

import "errors"

var (
	ErrNotFound                 = errors.New("appointment not found")
	ErrDoctorNotFound           = errors.New("doctor not found")
	ErrAppointmentTypeNotFound  = errors.New("appointment type not found")
	ErrDoctorUnavailable        = errors.New("doctor is not available at the requested time")
	ErrDoctorOnLeave            = errors.New("doctor is on approved leave for the requested date")
	ErrClinicClosed             = errors.New("clinic is closed on the requested date")
	ErrTimeSlotTaken            = errors.New("doctor already has an appointment at the requested time")
	ErrTooSoon                  = errors.New("appointment is below the minimum advance booking window")
	ErrTooFarAhead              = errors.New("appointment is beyond the maximum advance booking window")
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")
	ErrAlreadyCancelled         = errors.New("appointment is already cancelled")
	ErrAlreadyCompleted         = errors.New("appointment is already completed")
	ErrInvalidTransition        = errors.New("invalid appointment status transition")
	ErrNoteNotFound             = errors.New("appointment note not found")
	ErrWaitingListNotFound      = errors.New("waiting list entry not found")
	ErrInvalidAppointmentID     = errors.New("malformed appointment id")
)
