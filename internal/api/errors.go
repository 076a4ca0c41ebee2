package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/api/shared"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
	"github.com/Manoj-Murari/task-analyzer/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, store.ErrInvalidEntity),
		store.IsDuplicateError(err),
		errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Suggestions need persistence
	case errors.Is(err, service.ErrNoStore):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrCycleDetected):
		return "Circular dependencies detected"
	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid due_date: expected YYYY-MM-DD"
	case store.IsDuplicateError(err):
		return "Duplicate task data"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"
	case errors.Is(err, service.ErrInvalidLimit):
		return "Invalid limit: must be a positive integer"
	case errors.Is(err, service.ErrNoStore):
		return "Suggestions are unavailable: task persistence is not configured"
	case store.IsNotFoundError(err):
		return "Not found"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A cycle error carries
// the detector's messages as details; any other error gets only its safe
// message, or fallback when that is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if fallback != "" && status == http.StatusInternalServerError {
		message = fallback
	}

	var opts []shared.ResponseOption
	var cycleErr *service.CycleError
	if errors.As(err, &cycleErr) {
		opts = append(opts, shared.WithDetails(cycleErr.Messages))
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe.Field()), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// jsonFieldName maps a Go struct field name to its snake_case JSON name.
func jsonFieldName(field string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range field {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long or too large"
	case "min":
		return "too small"
	case "gte":
		return "must not be negative"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
