package doctor

import "errors"

var (
	ErrNotFound              = errors.New("doctor not found")
	ErrAlreadyExists         = errors.New("doctor profile already exists for this user")
	ErrLicenseNumberTaken    = errors.New("license number already registered")
	ErrSpecializationTaken   = errors.New("specialization name already exists")
	ErrSpecializationMissing = errors.New("specialization not found")
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveDatesInverted    = errors.New("leave end date is before its start date")
	ErrInvalidTimeWindow     = errors.New("availability end time is not after its start time")
)
