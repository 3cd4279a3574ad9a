package newsletter

import "errors"

var (
	ErrNotFound           = errors.New("newsletter not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrAlreadySubscribed  = errors.New("email is already subscribed")
	ErrNotDraft           = errors.New("newsletter is not a draft")
	ErrAlreadySent        = errors.New("newsletter has already been sent")
	ErrScheduleInPast     = errors.New("scheduled time is in the past")
)
