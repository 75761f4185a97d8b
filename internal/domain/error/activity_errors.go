// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Activity ledger domain errors.
var (
	// ErrActivityNotFound is returned when an activity entry is not found in the system.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrNotAuthorizedToModifyActivity is returned when user is not authorized to modify an activity.
	ErrNotAuthorizedToModifyActivity = errors.New("not authorized to modify activity")

	// ErrNoSession is returned when a mutating ledger operation is attempted without a resolved user.
	ErrNoSession = errors.New("no authenticated session")

	// ErrBalanceNotFound is returned when no stored balance row exists for a user.
	// Callers treat this as zero and initialize opportunistically.
	ErrBalanceNotFound = errors.New("balance not found")
)

// ActivityErrorCode defines error codes for activity ledger errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type ActivityErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeActivityNotFound      ActivityErrorCode = "ACT-010001"
	ErrCodeNotAuthorizedActivity ActivityErrorCode = "ACT-010002"
	ErrCodeActivityHabitNotFound ActivityErrorCode = "ACT-010003"
	ErrCodeNoSession             ActivityErrorCode = "ACT-010004"

	// Sync errors (02XXXX)
	ErrCodeDurableWriteFailed ActivityErrorCode = "ACT-020001"
)

// ActivityError represents an activity ledger error with code and message.
type ActivityError struct {
	Code    ActivityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActivityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActivityError) Unwrap() error {
	return e.Err
}

// NewActivityError creates a new ActivityError with the given code and message.
func NewActivityError(code ActivityErrorCode, message string, err error) *ActivityError {
	return &ActivityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
