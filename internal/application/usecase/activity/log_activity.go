// Package activity contains activity ledger use cases.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/ledger"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// LogActivityInput represents the input for logging an activity.
type LogActivityInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// LogActivityOutput represents the output of logging an activity.
type LogActivityOutput struct {
	Entry   *entity.ActivityEntry
	Balance int
	// CompletedGoals lists goals that crossed 100% because of this entry.
	CompletedGoals []*entity.Goal
}

// LogActivityUseCase appends a ledger entry for a habit and notifies the
// user about goals the entry completed.
type LogActivityUseCase struct {
	ledger   *ledger.Service
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
	notifier adapter.GoalNotifier // optional
}

// NewLogActivityUseCase creates a new LogActivityUseCase instance.
func NewLogActivityUseCase(
	ledgerService *ledger.Service,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
	notifier adapter.GoalNotifier,
) *LogActivityUseCase {
	return &LogActivityUseCase{
		ledger:   ledgerService,
		goalRepo: goalRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Execute performs the activity logging.
func (uc *LogActivityUseCase) Execute(ctx context.Context, input LogActivityInput) (*LogActivityOutput, error) {
	// Snapshot goal progress before the mutation so completion can be
	// detected as a 100% crossing, not a standing state.
	before := uc.completedGoalIDs(ctx, input.UserID)

	entry, err := uc.ledger.LogActivity(ctx, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.ledger.Balance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &LogActivityOutput{
		Entry:   entry,
		Balance: balance,
	}

	for _, completed := range uc.newlyCompletedGoals(ctx, input.UserID, before) {
		output.CompletedGoals = append(output.CompletedGoals, completed.Goal)
		uc.notifyCompletion(ctx, input.UserID, completed.Goal, completed.Progress.Current)
	}

	return output, nil
}

// completedGoalIDs returns the set of goals currently at 100%. Errors are
// swallowed: completion detection must never fail the logging path.
func (uc *LogActivityUseCase) completedGoalIDs(ctx context.Context, userID uuid.UUID) map[uuid.UUID]bool {
	completed := make(map[uuid.UUID]bool)
	for _, goal := range uc.goalProgress(ctx, userID) {
		if goal.Progress.IsComplete {
			completed[goal.Goal.ID] = true
		}
	}
	return completed
}

// newlyCompletedGoals returns the progress of goals complete now that were
// not in before.
func (uc *LogActivityUseCase) newlyCompletedGoals(ctx context.Context, userID uuid.UUID, before map[uuid.UUID]bool) []*dashboard.GetGoalProgressOutput {
	var newly []*dashboard.GetGoalProgressOutput
	for _, goal := range uc.goalProgress(ctx, userID) {
		if goal.Progress.IsComplete && !before[goal.Goal.ID] {
			newly = append(newly, goal)
		}
	}
	return newly
}

func (uc *LogActivityUseCase) goalProgress(ctx context.Context, userID uuid.UUID) []*dashboard.GetGoalProgressOutput {
	listUC := dashboard.NewListGoalsProgressUseCase(uc.goalRepo, uc.ledger)
	output, err := listUC.Execute(ctx, dashboard.ListGoalsProgressInput{UserID: userID, Now: time.Now().UTC()})
	if err != nil {
		slog.Warn("Failed to compute goal progress for completion detection",
			"userID", userID,
			"error", err,
		)
		return nil
	}
	return output.Goals
}

func (uc *LogActivityUseCase) notifyCompletion(ctx context.Context, userID uuid.UUID, goal *entity.Goal, current int) {
	if uc.notifier == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load user for goal notification",
			"userID", userID,
			"error", err,
		)
		return
	}
	if !user.GoalAlerts {
		return
	}

	uc.notifier.NotifyGoalCompleted(ctx, adapter.GoalAlertInput{
		UserEmail:   user.Email,
		UserName:    user.Name,
		GoalTitle:   goal.Title,
		Period:      string(goal.Period),
		Current:     current,
		TargetValue: goal.TargetValue,
	})
}
