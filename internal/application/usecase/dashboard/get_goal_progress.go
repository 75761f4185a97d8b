package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetGoalProgressInput represents the input for computing one goal's progress.
type GetGoalProgressInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	// Now overrides the reference instant; zero means time.Now.
	Now time.Time
}

// GetGoalProgressOutput represents the output of computing one goal's progress.
type GetGoalProgressOutput struct {
	Goal     *entity.Goal
	Window   Window
	Progress Progress
	// DayBuckets is populated for monthly goals, WeekBuckets for quarterly
	// goals; weekly goals carry neither.
	DayBuckets  []DayBucket
	WeekBuckets []WeekBucket
}

// GetGoalProgressUseCase computes a goal's live progress from the ledger.
type GetGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
	ledger   LedgerReader
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(goalRepo adapter.GoalRepository, ledger LedgerReader) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		goalRepo: goalRepo,
		ledger:   ledger,
	}
}

// Execute performs the progress computation.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context, input GetGoalProgressInput) (*GetGoalProgressOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	entries, err := uc.ledger.History(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return buildGoalProgress(goal, entries, input.Now)
}

// buildGoalProgress runs the pure aggregation pipeline for one goal.
func buildGoalProgress(goal *entity.Goal, entries []*entity.ActivityEntry, now time.Time) (*GetGoalProgressOutput, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	window, err := ResolveWindow(goal.Period, now)
	if err != nil {
		return nil, err
	}

	output := &GetGoalProgressOutput{
		Goal:     goal,
		Window:   window,
		Progress: ComputeProgress(goal, entries, window),
	}

	filtered := FilterWindowEntries(goal, entries, window)
	switch goal.Period {
	case entity.GoalPeriodMonthly:
		output.DayBuckets = MonthlyBuckets(filtered, now)
	case entity.GoalPeriodQuarterly:
		output.WeekBuckets = QuarterlyBuckets(filtered, window.Start)
	}

	return output, nil
}
