// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	Period        entity.GoalPeriod
	TargetType    entity.GoalTargetType
	TargetHabitID *uuid.UUID // Optional scope to a single habit
	TargetValue   int
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	habitRepo adapter.HabitRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, habitRepo adapter.HabitRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:  goalRepo,
		habitRepo: habitRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal title is required",
			nil,
		)
	}

	if err := validateGoalFields(input.Period, input.TargetType, input.TargetValue); err != nil {
		return nil, err
	}

	if err := uc.validateTargetHabit(ctx, input.UserID, input.TargetHabitID); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, input.Title, input.Period, input.TargetType, input.TargetHabitID, input.TargetValue)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateTargetHabit checks the optional habit scope exists and belongs to
// the user.
func (uc *CreateGoalUseCase) validateTargetHabit(ctx context.Context, userID uuid.UUID, habitID *uuid.UUID) error {
	if habitID == nil {
		return nil
	}

	habit, err := uc.habitRepo.FindByID(ctx, *habitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalHabitNotFound,
				"habit not found",
				domainerror.ErrGoalHabitNotFound,
			)
		}
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if habit.UserID != userID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeHabitDoesNotBelongUser,
			"habit does not belong to user",
			domainerror.ErrHabitDoesNotBelongToUser,
		)
	}

	return nil
}

// validateGoalFields checks period, target type and target value.
func validateGoalFields(period entity.GoalPeriod, targetType entity.GoalTargetType, targetValue int) error {
	switch period {
	case entity.GoalPeriodWeekly, entity.GoalPeriodMonthly, entity.GoalPeriodQuarterly:
	default:
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"period must be 'weekly', 'monthly' or 'quarterly'",
			domainerror.ErrInvalidGoalPeriod,
		)
	}

	switch targetType {
	case entity.GoalTargetHabitCount, entity.GoalTargetPointsEarned:
	default:
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTargetType,
			"target type must be 'habit_count' or 'points_earned'",
			domainerror.ErrInvalidGoalTargetType,
		)
	}

	if targetValue <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be a positive integer",
			domainerror.ErrInvalidTargetValue,
		)
	}

	return nil
}
