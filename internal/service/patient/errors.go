package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("patient record already exists for this user")
	ErrHistoryNotFound      = errors.New("medical history entry not found")
	ErrDocumentNotFound     = errors.New("patient document not found")
	ErrInvalidPatientID     = errors.New("malformed patient id")
)
