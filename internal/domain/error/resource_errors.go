// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Resource tracker domain errors.
var (
	// ErrResourceNotFound is returned when a resource is not found in the system.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNotAuthorizedToModifyResource is returned when user is not authorized to modify a resource.
	ErrNotAuthorizedToModifyResource = errors.New("not authorized to modify resource")

	// ErrInvalidResourceCategory is returned when the resource category is invalid.
	ErrInvalidResourceCategory = errors.New("invalid resource category")

	// ErrInvalidResourceProgress is returned when current/total progress values are inconsistent.
	ErrInvalidResourceProgress = errors.New("invalid resource progress")
)

// ResourceErrorCode defines error codes for resource errors.
// Format: RES-XXYYYY where XX is category and YYYY is specific error.
type ResourceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeResourceNotFound        ResourceErrorCode = "RES-010001"
	ErrCodeNotAuthorizedResource   ResourceErrorCode = "RES-010002"
	ErrCodeInvalidResourceCategory ResourceErrorCode = "RES-010003"
	ErrCodeInvalidResourceProgress ResourceErrorCode = "RES-010004"
	ErrCodeMissingResourceFields   ResourceErrorCode = "RES-010005"
)

// ResourceError represents a resource error with code and message.
type ResourceError struct {
	Code    ResourceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError with the given code and message.
func NewResourceError(code ResourceErrorCode, message string, err error) *ResourceError {
	return &ResourceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
