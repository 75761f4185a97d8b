// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByUserAndPeriod retrieves a user's goals filtered by period.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period entity.GoalPeriod) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}

// MonthlyGoalRepository defines the interface for the legacy calendar goal.
// Replacement is delete-then-insert; there is no update operation.
type MonthlyGoalRepository interface {
	// Create inserts a new monthly goal.
	Create(ctx context.Context, goal *entity.MonthlyGoal) error

	// FindByUserAndMonth retrieves the goal for a (month, year) pair, if any.
	// Returns domainerror.ErrGoalNotFound when none exists.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Month, year int) (*entity.MonthlyGoal, error)

	// Delete removes a monthly goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
