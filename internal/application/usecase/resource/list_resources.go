// Package resource contains resource tracker use cases.
package resource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListResourcesInput represents the input for listing resources.
type ListResourcesInput struct {
	UserID uuid.UUID
}

// ListResourcesOutput represents the output of listing resources.
type ListResourcesOutput struct {
	Resources []*entity.Resource
}

// ListResourcesUseCase handles listing a user's resources.
type ListResourcesUseCase struct {
	resourceRepo adapter.ResourceRepository
}

// NewListResourcesUseCase creates a new ListResourcesUseCase instance.
func NewListResourcesUseCase(resourceRepo adapter.ResourceRepository) *ListResourcesUseCase {
	return &ListResourcesUseCase{
		resourceRepo: resourceRepo,
	}
}

// Execute performs the listing.
func (uc *ListResourcesUseCase) Execute(ctx context.Context, input ListResourcesInput) (*ListResourcesOutput, error) {
	resources, err := uc.resourceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return &ListResourcesOutput{Resources: resources}, nil
}
