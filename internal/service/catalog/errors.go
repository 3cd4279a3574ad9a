package catalog

import "errors"

var (
	ErrCategoryNotFound  = errors.New("service category not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrPackageNotFound   = errors.New("service package not found")
	ErrSlugTaken         = errors.New("slug already in use")
	ErrSpecialtyNotFound = errors.New("doctor specialty assignment not found")
	ErrSpecialtyExists   = errors.New("doctor is already assigned to this service")
)
