// Package resource contains resource tracker use cases.
package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteResourceInput represents the input for resource deletion.
type DeleteResourceInput struct {
	ResourceID uuid.UUID
	UserID     uuid.UUID
}

// DeleteResourceUseCase handles resource deletion logic.
type DeleteResourceUseCase struct {
	resourceRepo adapter.ResourceRepository
}

// NewDeleteResourceUseCase creates a new DeleteResourceUseCase instance.
func NewDeleteResourceUseCase(resourceRepo adapter.ResourceRepository) *DeleteResourceUseCase {
	return &DeleteResourceUseCase{
		resourceRepo: resourceRepo,
	}
}

// Execute performs the resource deletion.
func (uc *DeleteResourceUseCase) Execute(ctx context.Context, input DeleteResourceInput) error {
	resource, err := uc.resourceRepo.FindByID(ctx, input.ResourceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrResourceNotFound) {
			return domainerror.NewResourceError(
				domainerror.ErrCodeResourceNotFound,
				"resource not found",
				domainerror.ErrResourceNotFound,
			)
		}
		return fmt.Errorf("failed to find resource: %w", err)
	}

	if resource.UserID != input.UserID {
		return domainerror.NewResourceError(
			domainerror.ErrCodeNotAuthorizedResource,
			"not authorized to delete this resource",
			domainerror.ErrNotAuthorizedToModifyResource,
		)
	}

	if err := uc.resourceRepo.Delete(ctx, input.ResourceID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	return nil
}
