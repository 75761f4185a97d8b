// Package activity contains activity ledger use cases.
package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/ledger"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListActivitiesInput represents the input for listing activities.
type ListActivitiesInput struct {
	UserID uuid.UUID
}

// ListActivitiesOutput represents the output of listing activities.
// Entries are in reverse-chronological order for display; aggregations never
// depend on this order.
type ListActivitiesOutput struct {
	Entries []*entity.ActivityEntry
	Balance int
}

// ListActivitiesUseCase returns the recent ledger view with the balance.
type ListActivitiesUseCase struct {
	ledger *ledger.Service
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(ledgerService *ledger.Service) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		ledger: ledgerService,
	}
}

// Execute performs the listing.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	entries, err := uc.ledger.History(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.ledger.Balance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListActivitiesOutput{
		Entries: entries,
		Balance: balance,
	}, nil
}
