package testimonial

import "errors"

var (
	ErrNotFound        = errors.New("testimonial not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotPending      = errors.New("testimonial has already been moderated")
)
