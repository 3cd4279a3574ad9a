package contact

import "errors"

var (
	ErrNotFound      = errors.New("contact message not found")
	ErrAlreadyClosed = errors.New("contact message is already closed")
	ErrAssigneeGone  = errors.New("assigned user not found")
)
