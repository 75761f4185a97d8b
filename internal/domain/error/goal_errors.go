// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalPeriod is returned when the goal period is invalid.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrInvalidGoalTargetType is returned when the goal target type is invalid.
	ErrInvalidGoalTargetType = errors.New("invalid goal target type")

	// ErrInvalidTargetValue is returned when the target value is zero or negative.
	ErrInvalidTargetValue = errors.New("invalid target value")

	// ErrGoalHabitNotFound is returned when the habit a goal is scoped to is not found.
	ErrGoalHabitNotFound = errors.New("habit not found")

	// ErrHabitDoesNotBelongToUser is returned when the scoped habit does not belong to the user.
	ErrHabitDoesNotBelongToUser = errors.New("habit does not belong to user")

	// ErrInvalidGoalMonth is returned when a monthly goal's month is out of range.
	ErrInvalidGoalMonth = errors.New("invalid goal month")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalPeriod      GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalTargetType  GoalErrorCode = "GOL-010004"
	ErrCodeInvalidTargetValue     GoalErrorCode = "GOL-010005"
	ErrCodeGoalHabitNotFound      GoalErrorCode = "GOL-010006"
	ErrCodeHabitDoesNotBelongUser GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
	ErrCodeInvalidGoalMonth       GoalErrorCode = "GOL-010009"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
