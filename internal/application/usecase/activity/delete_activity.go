// Package activity contains activity ledger use cases.
package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/ledger"
)

// DeleteActivityInput represents the input for deleting an activity.
type DeleteActivityInput struct {
	UserID     uuid.UUID
	ActivityID uuid.UUID
}

// DeleteActivityOutput represents the output of deleting an activity.
type DeleteActivityOutput struct {
	Balance int
}

// DeleteActivityUseCase removes a ledger entry and reverse-applies its
// point delta. Deletion is idempotent; this is the sole undo mechanism.
type DeleteActivityUseCase struct {
	ledger *ledger.Service
}

// NewDeleteActivityUseCase creates a new DeleteActivityUseCase instance.
func NewDeleteActivityUseCase(ledgerService *ledger.Service) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{
		ledger: ledgerService,
	}
}

// Execute performs the activity deletion.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, input DeleteActivityInput) (*DeleteActivityOutput, error) {
	if err := uc.ledger.DeleteActivity(ctx, input.UserID, input.ActivityID); err != nil {
		return nil, err
	}

	balance, err := uc.ledger.Balance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &DeleteActivityOutput{Balance: balance}, nil
}
