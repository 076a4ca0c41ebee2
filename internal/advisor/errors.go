package advisor

import "errors"

// ReasonNotConfigured is the Unavailable reason reported by Disabled.
const ReasonNotConfigured = "advisor not configured"

// Common errors produced while interpreting an advisor response
var (
	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidResponse is returned when the response cannot be parsed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the request due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the advisor configuration is invalid
	ErrInvalidConfig = errors.New("invalid advisor configuration")
)
