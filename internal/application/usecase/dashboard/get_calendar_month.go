package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetCalendarMonthInput represents the input for the calendar month summary.
type GetCalendarMonthInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// CalendarDay is one day cell: net points and entry count for that date.
type CalendarDay struct {
	Day    int
	Points int
	Count  int
}

// GetCalendarMonthOutput represents the output of the calendar month summary.
type GetCalendarMonthOutput struct {
	Days        []CalendarDay
	TotalPoints int
	// Goal is the simple month-wide points target, when one is set.
	Goal        *entity.MonthlyGoal
	GoalPercent int
}

// GetCalendarMonthUseCase aggregates a month of ledger entries per day and
// measures them against the month's points target.
type GetCalendarMonthUseCase struct {
	activityRepo    adapter.ActivityRepository
	monthlyGoalRepo adapter.MonthlyGoalRepository
}

// NewGetCalendarMonthUseCase creates a new GetCalendarMonthUseCase instance.
func NewGetCalendarMonthUseCase(activityRepo adapter.ActivityRepository, monthlyGoalRepo adapter.MonthlyGoalRepository) *GetCalendarMonthUseCase {
	return &GetCalendarMonthUseCase{
		activityRepo:    activityRepo,
		monthlyGoalRepo: monthlyGoalRepo,
	}
}

// Execute performs the aggregation.
func (uc *GetCalendarMonthUseCase) Execute(ctx context.Context, input GetCalendarMonthInput) (*GetCalendarMonthOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidGoalMonth,
		)
	}

	monthStart := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	entries, err := uc.activityRepo.FindByUserSince(ctx, input.UserID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	daysInMonth := nextMonth.AddDate(0, 0, -1).Day()
	days := make([]CalendarDay, daysInMonth)
	for i := range days {
		days[i].Day = i + 1
	}

	total := 0
	for _, e := range entries {
		if e.DeletedAt != nil || !e.OccurredAt.Before(nextMonth) {
			continue
		}
		day := &days[e.OccurredAt.Day()-1]
		day.Points += e.PointDelta
		day.Count++
		total += e.PointDelta
	}

	output := &GetCalendarMonthOutput{
		Days:        days,
		TotalPoints: total,
	}

	goal, err := uc.monthlyGoalRepo.FindByUserAndMonth(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, fmt.Errorf("failed to load monthly goal: %w", err)
		}
		return output, nil
	}

	output.Goal = goal
	if goal.TargetPoints > 0 {
		percent := int(math.Round(100 * float64(total) / float64(goal.TargetPoints)))
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		output.GoalPercent = percent
	}

	return output, nil
}
