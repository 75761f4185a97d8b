// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalPeriod represents the recurring window a goal is measured over.
type GoalPeriod string

const (
	GoalPeriodWeekly    GoalPeriod = "weekly"
	GoalPeriodMonthly   GoalPeriod = "monthly"
	GoalPeriodQuarterly GoalPeriod = "quarterly"
)

// GoalTargetType represents the metric a goal tracks.
type GoalTargetType string

const (
	// GoalTargetHabitCount counts logged activities regardless of sign.
	GoalTargetHabitCount GoalTargetType = "habit_count"
	// GoalTargetPointsEarned sums positive point deltas only; spending
	// entries never count toward earned progress.
	GoalTargetPointsEarned GoalTargetType = "points_earned"
)

// Goal represents a progress goal in the Habit Tracker system. Progress is
// always recomputed live from the ledger; there is no stored current value,
// so the displayed number stays consistent with the ledger even after
// retroactive deletions.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Period        GoalPeriod
	TargetType    GoalTargetType
	TargetHabitID *uuid.UUID // Optional scope to a single habit
	TargetValue   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, title string, period GoalPeriod, targetType GoalTargetType, targetHabitID *uuid.UUID, targetValue int) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Period:        period,
		TargetType:    targetType,
		TargetHabitID: targetHabitID,
		TargetValue:   targetValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MonthlyGoal is the simpler predecessor goal entity shown on the calendar
// view: a flat points target for one calendar month. At most one exists per
// (month, year) pair; replacing it is a delete-then-insert, never an update.
type MonthlyGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Month        time.Month
	Year         int
	TargetPoints int
	CreatedAt    time.Time
}

// NewMonthlyGoal creates a new MonthlyGoal entity.
func NewMonthlyGoal(userID uuid.UUID, month time.Month, year, targetPoints int) *MonthlyGoal {
	return &MonthlyGoal{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		Year:         year,
		TargetPoints: targetPoints,
		CreatedAt:    time.Now().UTC(),
	}
}
