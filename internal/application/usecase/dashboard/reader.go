package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// LedgerReader provides the ledger snapshot the aggregations run over.
// Satisfied by the ledger service.
type LedgerReader interface {
	History(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityEntry, error)
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
}
