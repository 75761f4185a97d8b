// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// GoalAlertInput represents a goal-completed notification.
type GoalAlertInput struct {
	UserEmail   string
	UserName    string
	GoalTitle   string
	Period      string
	Current     int
	TargetValue int
}

// GoalNotifier defines the interface for goal completion notifications.
// Implementations are fire-and-forget: failures are logged, never returned
// to the ledger path.
type GoalNotifier interface {
	// NotifyGoalCompleted sends a notification that a goal crossed 100%.
	NotifyGoalCompleted(ctx context.Context, input GoalAlertInput)
}
