package email

import (
	"context"
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// blockingSender releases Send only when told to, and honors context
// cancellation, so tests can observe both the dispatch timing and which
// context the send actually runs under.
type blockingSender struct {
	release chan struct{}
	sent    chan adapter.SendEmailInput
}

func newBlockingSender() *blockingSender {
	return &blockingSender{
		release: make(chan struct{}),
		sent:    make(chan adapter.SendEmailInput, 1),
	}
}

func (s *blockingSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	select {
	case <-s.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.sent <- input
	return &adapter.SendEmailResult{ProviderID: "email-1"}, nil
}

func TestNotifyGoalCompletedDoesNotBlockCaller(t *testing.T) {
	sender := newBlockingSender()
	notifier := NewGoalNotifier(sender)

	returned := make(chan struct{})
	go func() {
		notifier.NotifyGoalCompleted(context.Background(), adapter.GoalAlertInput{
			UserEmail: "runner@example.com",
			GoalTitle: "Run 4 times",
			Period:    "weekly",
		})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("NotifyGoalCompleted waited on the email provider")
	}

	close(sender.release)
	select {
	case input := <-sender.sent:
		if input.To != "runner@example.com" {
			t.Errorf("sent to %q, want runner@example.com", input.To)
		}
	case <-time.After(time.Second):
		t.Fatal("email was never handed to the provider")
	}
}

func TestNotifyGoalCompletedSurvivesCanceledRequest(t *testing.T) {
	sender := newBlockingSender()
	close(sender.release)
	notifier := NewGoalNotifier(sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notifier.NotifyGoalCompleted(ctx, adapter.GoalAlertInput{
		UserEmail: "runner@example.com",
		GoalTitle: "Run 4 times",
	})

	select {
	case <-sender.sent:
	case <-time.After(time.Second):
		t.Fatal("canceled request context leaked into the email send")
	}
}
