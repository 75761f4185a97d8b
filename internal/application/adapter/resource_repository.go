// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ResourceRepository defines the interface for resource persistence operations.
type ResourceRepository interface {
	// Create creates a new resource in the database.
	Create(ctx context.Context, resource *entity.Resource) error

	// FindByID retrieves a resource by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)

	// FindByUser retrieves all resources for a given user, ordered by creation time ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resource, error)

	// Update updates an existing resource in the database.
	Update(ctx context.Context, resource *entity.Resource) error

	// Delete soft-deletes a resource from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
