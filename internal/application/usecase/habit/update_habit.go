// Package habit contains habit-related use cases.
package habit

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

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	HabitID   uuid.UUID
	UserID    uuid.UUID
	Name      *string                // Optional
	Direction *entity.HabitDirection // Optional
	Value     *int                   // Optional
	Cost      *int                   // Optional
	Icon      *string                // Optional
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic. Updating a habit never
// touches existing ledger entries; they keep the name and delta captured at
// log time.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeNotAuthorizedHabit,
			"not authorized to modify this habit",
			domainerror.ErrNotAuthorizedToModifyHabit,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitFields,
				"habit name is required",
				nil,
			)
		}
		if len(*input.Name) > MaxHabitNameLength {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNameTooLong,
				fmt.Sprintf("habit name must not exceed %d characters", MaxHabitNameLength),
				domainerror.ErrHabitNameTooLong,
			)
		}
		habit.Name = *input.Name
	}

	if input.Direction != nil {
		if !isValidDirection(*input.Direction) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitDirection,
				"direction must be 'good' or 'bad'",
				domainerror.ErrInvalidHabitDirection,
			)
		}
		habit.Direction = *input.Direction
	}

	if input.Value != nil {
		habit.Value = *input.Value
	}
	if input.Cost != nil {
		habit.Cost = *input.Cost
	}
	if err := validateMagnitude(habit.Direction, habit.Value, habit.Cost); err != nil {
		return nil, err
	}

	if input.Icon != nil && *input.Icon != "" {
		habit.Icon = *input.Icon
	}

	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{Habit: habit}, nil
}
