// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

const (
	// MaxHabitNameLength is the maximum allowed length for habit names.
	MaxHabitNameLength = 100
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID    uuid.UUID
	Name      string
	Direction entity.HabitDirection
	Value     int // Reward for good habits
	Cost      int // Cost for bad habits
	Icon      string // Optional, defaults to DefaultHabitIcon
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"habit name is required",
			nil,
		)
	}
	if len(input.Name) > MaxHabitNameLength {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameTooLong,
			fmt.Sprintf("habit name must not exceed %d characters", MaxHabitNameLength),
			domainerror.ErrHabitNameTooLong,
		)
	}

	if !isValidDirection(input.Direction) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitDirection,
			"direction must be 'good' or 'bad'",
			domainerror.ErrInvalidHabitDirection,
		)
	}

	// Exactly one magnitude is meaningful per direction; the ledger applies
	// whatever the habit carries, so validation happens here.
	if err := validateMagnitude(input.Direction, input.Value, input.Cost); err != nil {
		return nil, err
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultHabitIcon
	}

	habit := entity.NewHabit(input.UserID, input.Name, input.Direction, input.Value, input.Cost, icon)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: habit}, nil
}

// isValidDirection checks if the direction is one of the allowed values.
func isValidDirection(direction entity.HabitDirection) bool {
	return direction == entity.HabitDirectionGood || direction == entity.HabitDirectionBad
}

// validateMagnitude ensures the magnitude matching the direction is positive.
func validateMagnitude(direction entity.HabitDirection, value, cost int) error {
	magnitude := value
	if direction == entity.HabitDirectionBad {
		magnitude = cost
	}
	if magnitude <= 0 {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitMagnitude,
			"habit value or cost must be a positive integer",
			domainerror.ErrInvalidHabitMagnitude,
		)
	}
	return nil
}
