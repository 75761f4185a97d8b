// Package goal contains goal-related use cases.
package goal

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

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Title         *string                // Optional
	Period        *entity.GoalPeriod     // Optional
	TargetType    *entity.GoalTargetType // Optional
	TargetHabitID *uuid.UUID             // Optional; uuid.Nil clears the scope
	TargetValue   *int                   // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Progress needs no
// recalculation hook here: it is always recomputed live from the ledger.
type UpdateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	habitRepo adapter.HabitRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, habitRepo adapter.HabitRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:  goalRepo,
		habitRepo: habitRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal title is required",
				nil,
			)
		}
		goal.Title = *input.Title
	}

	if input.Period != nil {
		goal.Period = *input.Period
	}
	if input.TargetType != nil {
		goal.TargetType = *input.TargetType
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if err := validateGoalFields(goal.Period, goal.TargetType, goal.TargetValue); err != nil {
		return nil, err
	}

	if input.TargetHabitID != nil {
		if *input.TargetHabitID == uuid.Nil {
			goal.TargetHabitID = nil
		} else {
			habit, err := uc.habitRepo.FindByID(ctx, *input.TargetHabitID)
			if err != nil {
				if errors.Is(err, domainerror.ErrHabitNotFound) {
					return nil, domainerror.NewGoalError(
						domainerror.ErrCodeGoalHabitNotFound,
						"habit not found",
						domainerror.ErrGoalHabitNotFound,
					)
				}
				return nil, fmt.Errorf("failed to find habit: %w", err)
			}
			if habit.UserID != input.UserID {
				return nil, domainerror.NewGoalError(
					domainerror.ErrCodeHabitDoesNotBelongUser,
					"habit does not belong to user",
					domainerror.ErrHabitDoesNotBelongToUser,
				)
			}
			goal.TargetHabitID = input.TargetHabitID
		}
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
