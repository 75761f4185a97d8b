// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrNotAuthorizedToModifyHabit is returned when user is not authorized to modify a habit.
	ErrNotAuthorizedToModifyHabit = errors.New("not authorized to modify habit")

	// ErrInvalidHabitDirection is returned when the habit direction is invalid.
	ErrInvalidHabitDirection = errors.New("invalid habit direction")

	// ErrInvalidHabitMagnitude is returned when the reward value or cost is not positive.
	ErrInvalidHabitMagnitude = errors.New("habit value or cost must be positive")

	// ErrHabitNameTooLong is returned when the habit name exceeds the maximum length.
	ErrHabitNameTooLong = errors.New("habit name too long")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound          HabitErrorCode = "HAB-010001"
	ErrCodeNotAuthorizedHabit     HabitErrorCode = "HAB-010002"
	ErrCodeInvalidHabitDirection  HabitErrorCode = "HAB-010003"
	ErrCodeInvalidHabitMagnitude  HabitErrorCode = "HAB-010004"
	ErrCodeHabitNameTooLong       HabitErrorCode = "HAB-010005"
	ErrCodeMissingHabitFields     HabitErrorCode = "HAB-010006"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
