package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// Sentinel errors returned by TaskService.
// API layer maps these to HTTP status codes with errors.Is.
var (
	// ErrInvalidLimit indicates a non-positive suggestion limit.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrNoStore is returned by Suggest when no task store is configured.
	ErrNoStore = errors.New("task persistence is not configured")
)

// CycleError reports that a batch was rejected because its dependency graph
// contains a cycle. It matches domain.ErrCycleDetected with errors.Is.
type CycleError struct {
	// Messages holds the cycle detector's report, one entry per cycle found.
	Messages []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrCycleDetected, strings.Join(e.Messages, "; "))
}

// Unwrap returns domain.ErrCycleDetected.
func (e *CycleError) Unwrap() error {
	return domain.ErrCycleDetected
}

// TaskServiceError wraps unexpected failures from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "analyze", "suggest")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns nil when err is nil.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
