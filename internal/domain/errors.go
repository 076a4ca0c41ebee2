package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a due date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrCycleDetected is returned when the dependency graph of a batch contains a cycle.
	ErrCycleDetected = errors.New("circular dependencies detected")
)
