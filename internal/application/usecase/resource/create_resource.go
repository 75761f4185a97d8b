// Package resource contains resource tracker use cases.
package resource

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateResourceInput represents the input for resource creation.
type CreateResourceInput struct {
	UserID   uuid.UUID
	Title    string
	Category entity.ResourceCategory
	Total    int
	Current  int // Optional, defaults to 0
}

// CreateResourceOutput represents the output of resource creation.
type CreateResourceOutput struct {
	Resource *entity.Resource
}

// CreateResourceUseCase handles resource creation logic.
type CreateResourceUseCase struct {
	resourceRepo adapter.ResourceRepository
}

// NewCreateResourceUseCase creates a new CreateResourceUseCase instance.
func NewCreateResourceUseCase(resourceRepo adapter.ResourceRepository) *CreateResourceUseCase {
	return &CreateResourceUseCase{
		resourceRepo: resourceRepo,
	}
}

// Execute performs the resource creation.
func (uc *CreateResourceUseCase) Execute(ctx context.Context, input CreateResourceInput) (*CreateResourceOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewResourceError(
			domainerror.ErrCodeMissingResourceFields,
			"resource title is required",
			nil,
		)
	}

	if !isValidCategory(input.Category) {
		return nil, domainerror.NewResourceError(
			domainerror.ErrCodeInvalidResourceCategory,
			"category must be 'book', 'paper' or 'project'",
			domainerror.ErrInvalidResourceCategory,
		)
	}

	if err := validateProgress(input.Current, input.Total); err != nil {
		return nil, err
	}

	resource := entity.NewResource(input.UserID, input.Title, input.Category, input.Total, input.Current)

	if err := uc.resourceRepo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return &CreateResourceOutput{Resource: resource}, nil
}

// isValidCategory checks if the category is one of the allowed values.
func isValidCategory(category entity.ResourceCategory) bool {
	switch category {
	case entity.ResourceCategoryBook, entity.ResourceCategoryPaper, entity.ResourceCategoryProject:
		return true
	}
	return false
}

// validateProgress checks current/total consistency.
func validateProgress(current, total int) error {
	if total <= 0 || current < 0 || current > total {
		return domainerror.NewResourceError(
			domainerror.ErrCodeInvalidResourceProgress,
			"progress must satisfy 0 <= current <= total with total > 0",
			domainerror.ErrInvalidResourceProgress,
		)
	}
	return nil
}
