package domain

import "errors"

// Shared error taxonomy. Services return these sentinels (possibly wrapped)
// and handlers map them onto the HTTP envelope.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("booking conflict")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrForbidden         = errors.New("forbidden")
	ErrNoPricing         = errors.New("no pricing configured")
)
