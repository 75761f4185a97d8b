// Package resource contains resource tracker use cases.
package resource

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

// UpdateResourceInput represents the input for resource update.
type UpdateResourceInput struct {
	ResourceID uuid.UUID
	UserID     uuid.UUID
	Title      *string                // Optional
	Total      *int                   // Optional
	Current    *int                   // Optional
	Status     *entity.ResourceStatus // Optional
}

// UpdateResourceOutput represents the output of resource update.
type UpdateResourceOutput struct {
	Resource *entity.Resource
}

// UpdateResourceUseCase handles resource update logic. Reaching
// current == total flips the status to completed unless the caller set a
// status explicitly.
type UpdateResourceUseCase struct {
	resourceRepo adapter.ResourceRepository
}

// NewUpdateResourceUseCase creates a new UpdateResourceUseCase instance.
func NewUpdateResourceUseCase(resourceRepo adapter.ResourceRepository) *UpdateResourceUseCase {
	return &UpdateResourceUseCase{
		resourceRepo: resourceRepo,
	}
}

// Execute performs the resource update.
func (uc *UpdateResourceUseCase) Execute(ctx context.Context, input UpdateResourceInput) (*UpdateResourceOutput, error) {
	resource, err := uc.resourceRepo.FindByID(ctx, input.ResourceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrResourceNotFound) {
			return nil, domainerror.NewResourceError(
				domainerror.ErrCodeResourceNotFound,
				"resource not found",
				domainerror.ErrResourceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}

	if resource.UserID != input.UserID {
		return nil, domainerror.NewResourceError(
			domainerror.ErrCodeNotAuthorizedResource,
			"not authorized to modify this resource",
			domainerror.ErrNotAuthorizedToModifyResource,
		)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewResourceError(
				domainerror.ErrCodeMissingResourceFields,
				"resource title is required",
				nil,
			)
		}
		resource.Title = *input.Title
	}

	if input.Total != nil {
		resource.Total = *input.Total
	}
	if input.Current != nil {
		resource.Current = *input.Current
	}
	if err := validateProgress(resource.Current, resource.Total); err != nil {
		return nil, err
	}

	switch {
	case input.Status != nil:
		if !isValidStatus(*input.Status) {
			return nil, domainerror.NewResourceError(
				domainerror.ErrCodeInvalidResourceProgress,
				"status must be 'active', 'paused' or 'completed'",
				domainerror.ErrInvalidResourceProgress,
			)
		}
		resource.Status = *input.Status
	case resource.Current == resource.Total:
		resource.Status = entity.ResourceStatusCompleted
	}

	resource.UpdatedAt = time.Now().UTC()

	if err := uc.resourceRepo.Update(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}

	return &UpdateResourceOutput{Resource: resource}, nil
}

// isValidStatus checks if the status is one of the allowed values.
func isValidStatus(status entity.ResourceStatus) bool {
	switch status {
	case entity.ResourceStatusActive, entity.ResourceStatusPaused, entity.ResourceStatusCompleted:
		return true
	}
	return false
}
