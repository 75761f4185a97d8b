// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.Habit
}

// ListHabitsUseCase handles listing a user's habits ordered by creation time.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return &ListHabitsOutput{Habits: habits}, nil
}
