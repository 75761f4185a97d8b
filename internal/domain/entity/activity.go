// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry represents a single point-changing event in the ledger.
// Entries are immutable once created except for soft deletion. HabitID is a
// weak reference: the habit may be deleted later, so HabitName is snapshotted
// at creation time to keep history self-describing.
type ActivityEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	HabitID    uuid.UUID
	HabitName  string
	PointDelta int // +value for good habits, -cost for bad ones
	OccurredAt time.Time
	CreatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewActivityEntry creates a new ActivityEntry from a habit, snapshotting the
// habit's name and current point delta.
func NewActivityEntry(userID uuid.UUID, habit *Habit) *ActivityEntry {
	now := time.Now().UTC()

	return &ActivityEntry{
		ID:         uuid.New(),
		UserID:     userID,
		HabitID:    habit.ID,
		HabitName:  habit.Name,
		PointDelta: habit.PointDelta(),
		OccurredAt: now,
		CreatedAt:  now,
	}
}
