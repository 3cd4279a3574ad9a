package clinicconfig

import "errors"

var (
	ErrSettingsExist     = errors.New("clinic settings already initialized")
	ErrSettingsNotFound  = errors.New("clinic settings not initialized")
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrTemplateNotFound  = errors.New("message template not found")
	ErrTemplateTypeTaken = errors.New("a template of this type already exists")
	ErrInvalidTimeWindow = errors.New("closing time is not after opening time")
)
