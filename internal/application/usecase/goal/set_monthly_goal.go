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

// SetMonthlyGoalInput represents the input for setting the month's points target.
type SetMonthlyGoalInput struct {
	UserID       uuid.UUID
	Month        time.Month
	Year         int
	TargetPoints int
}

// SetMonthlyGoalOutput represents the output of setting the month's points target.
type SetMonthlyGoalOutput struct {
	Goal *entity.MonthlyGoal
}

// SetMonthlyGoalUseCase sets the simple month-wide points target. At most
// one target exists per (month, year); replacement is delete-then-insert,
// never an update in place.
type SetMonthlyGoalUseCase struct {
	monthlyGoalRepo adapter.MonthlyGoalRepository
}

// NewSetMonthlyGoalUseCase creates a new SetMonthlyGoalUseCase instance.
func NewSetMonthlyGoalUseCase(monthlyGoalRepo adapter.MonthlyGoalRepository) *SetMonthlyGoalUseCase {
	return &SetMonthlyGoalUseCase{
		monthlyGoalRepo: monthlyGoalRepo,
	}
}

// Execute performs the replacement.
func (uc *SetMonthlyGoalUseCase) Execute(ctx context.Context, input SetMonthlyGoalInput) (*SetMonthlyGoalOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidGoalMonth,
		)
	}
	if input.TargetPoints <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target points must be a positive integer",
			domainerror.ErrInvalidTargetValue,
		)
	}

	existing, err := uc.monthlyGoalRepo.FindByUserAndMonth(ctx, input.UserID, input.Month, input.Year)
	if err != nil && !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to find monthly goal: %w", err)
	}
	if existing != nil {
		if err := uc.monthlyGoalRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to replace monthly goal: %w", err)
		}
	}

	goal := entity.NewMonthlyGoal(input.UserID, input.Month, input.Year, input.TargetPoints)
	if err := uc.monthlyGoalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create monthly goal: %w", err)
	}

	return &SetMonthlyGoalOutput{Goal: goal}, nil
}
