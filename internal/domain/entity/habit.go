// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitDirection represents whether a habit rewards or costs points.
type HabitDirection string

const (
	HabitDirectionGood HabitDirection = "good"
	HabitDirectionBad  HabitDirection = "bad"
)

// DefaultHabitIcon is the default icon key for habits.
const DefaultHabitIcon = "activity"

// Habit represents a user-defined behavior in the Habit Tracker system.
// A good habit carries a reward Value; a bad habit carries a Cost.
// Exactly one of the two is meaningful per instance.
type Habit struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Direction HabitDirection
	Value     int // Points rewarded when Direction is good
	Cost      int // Points charged when Direction is bad
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewHabit creates a new Habit entity.
// Note: Defaulting logic for the icon should be applied in the Application
// layer (UseCase) before calling this constructor.
func NewHabit(userID uuid.UUID, name string, direction HabitDirection, value, cost int, icon string) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Direction: direction,
		Value:     value,
		Cost:      cost,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PointDelta returns the signed balance change a single log of this habit
// produces: +Value for a good habit, -Cost for a bad one.
func (h *Habit) PointDelta() int {
	if h.Direction == HabitDirectionGood {
		return h.Value
	}
	return -h.Cost
}
