package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

const notifySendTimeout = 10 * time.Second

// GoalNotifier sends goal-completed emails through an EmailSender.
// Failures are logged and swallowed so notification problems never
// surface on the activity logging path.
type GoalNotifier struct {
	sender adapter.EmailSender
}

// NewGoalNotifier creates a new goal completion notifier.
func NewGoalNotifier(sender adapter.EmailSender) *GoalNotifier {
	return &GoalNotifier{sender: sender}
}

// NotifyGoalCompleted sends a congratulations email for a completed goal.
// The send runs on its own goroutine with a context detached from the
// request, so the activity logging path never waits on the provider.
func (n *GoalNotifier) NotifyGoalCompleted(ctx context.Context, input adapter.GoalAlertInput) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifySendTimeout)

	go func() {
		defer cancel()

		result, err := n.sender.Send(sendCtx, adapter.SendEmailInput{
			To:      input.UserEmail,
			Name:    input.UserName,
			Subject: fmt.Sprintf("You completed your goal: %s", input.GoalTitle),
			HTML:    goalCompletedHTML(input),
			Text:    goalCompletedText(input),
		})
		if err != nil {
			slog.Warn("failed to send goal completion email",
				"goal_title", input.GoalTitle,
				"error", err)
			return
		}

		slog.Info("goal completion email sent",
			"goal_title", input.GoalTitle,
			"provider_id", result.ProviderID)
	}()
}

func goalCompletedHTML(input adapter.GoalAlertInput) string {
	name := input.UserName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Congratulations, %s!</h2>
	<p>You just completed your %s goal <strong>%s</strong>.</p>
	<p>Progress: %d / %d</p>
	<p>Keep up the great work!</p>
</body>
</html>`, name, input.Period, input.GoalTitle, input.Current, input.TargetValue)
}

func goalCompletedText(input adapter.GoalAlertInput) string {
	name := input.UserName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Congratulations, %s! You just completed your %s goal %q (%d/%d). Keep up the great work!",
		name, input.Period, input.GoalTitle, input.Current, input.TargetValue)
}
