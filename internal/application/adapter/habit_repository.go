// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUser retrieves all habits for a given user, ordered by creation time ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Update updates an existing habit in the database.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete soft-deletes a habit. Existing activity entries are never
	// cascaded; their snapshots keep history self-describing.
	Delete(ctx context.Context, id uuid.UUID) error
}
