package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrCompanyRequired    = errors.New("employer has no company profile")
	ErrJobNotOpen         = errors.New("job is not open for applications")
	ErrAlreadyApplied     = errors.New("already applied to this job")
)
