// Package activity contains activity ledger use cases.
package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/ledger"
)

// GetBalanceInput represents the input for reading the balance.
type GetBalanceInput struct {
	UserID uuid.UUID
}

// GetBalanceOutput represents the output of reading the balance.
type GetBalanceOutput struct {
	Balance int
}

// GetBalanceUseCase reads the cached points balance for a user.
type GetBalanceUseCase struct {
	ledger *ledger.Service
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(ledgerService *ledger.Service) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		ledger: ledgerService,
	}
}

// Execute performs the balance read.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	balance, err := uc.ledger.Balance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: balance}, nil
}
