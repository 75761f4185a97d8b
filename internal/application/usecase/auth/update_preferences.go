// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for updating user preferences.
type UpdatePreferencesInput struct {
	UserID     uuid.UUID
	Name       *string // Optional
	GoalAlerts *bool   // Optional; toggles goal-completed emails
}

// UpdatePreferencesOutput represents the output of updating user preferences.
type UpdatePreferencesOutput struct {
	User *entity.User
}

// UpdatePreferencesUseCase handles user preference updates.
type UpdatePreferencesUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(userRepo adapter.UserRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the preference update.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.GoalAlerts != nil {
		user.GoalAlerts = *input.GoalAlerts
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdatePreferencesOutput{User: user}, nil
}
