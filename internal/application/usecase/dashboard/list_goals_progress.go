package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// ListGoalsProgressInput represents the input for listing all goals with progress.
type ListGoalsProgressInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// ListGoalsProgressOutput represents the output of listing all goals with progress.
type ListGoalsProgressOutput struct {
	Goals []*GetGoalProgressOutput
}

// ListGoalsProgressUseCase computes live progress for every goal of a user
// over a single ledger snapshot.
type ListGoalsProgressUseCase struct {
	goalRepo adapter.GoalRepository
	ledger   LedgerReader
}

// NewListGoalsProgressUseCase creates a new ListGoalsProgressUseCase instance.
func NewListGoalsProgressUseCase(goalRepo adapter.GoalRepository, ledger LedgerReader) *ListGoalsProgressUseCase {
	return &ListGoalsProgressUseCase{
		goalRepo: goalRepo,
		ledger:   ledger,
	}
}

// Execute performs the listing.
func (uc *ListGoalsProgressUseCase) Execute(ctx context.Context, input ListGoalsProgressInput) (*ListGoalsProgressOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	entries, err := uc.ledger.History(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	output := &ListGoalsProgressOutput{Goals: make([]*GetGoalProgressOutput, 0, len(goals))}
	for _, goal := range goals {
		progress, err := buildGoalProgress(goal, entries, input.Now)
		if err != nil {
			return nil, err
		}
		output.Goals = append(output.Goals, progress)
	}

	return output, nil
}
