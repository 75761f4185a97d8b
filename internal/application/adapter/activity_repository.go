// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DefaultActivityFetchLimit bounds how many recent ledger entries a resync loads.
const DefaultActivityFetchLimit = 100

// ActivityRepository defines the interface for activity ledger persistence.
// The ledger is append-only with soft deletion; entries are never updated.
type ActivityRepository interface {
	// Create appends a new activity entry to the durable log.
	Create(ctx context.Context, entry *entity.ActivityEntry) error

	// FindByID retrieves an activity entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityEntry, error)

	// FindRecentByUser retrieves the most recent entries for a user, ordered
	// by occurred_at descending. A limit <= 0 falls back to
	// DefaultActivityFetchLimit.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ActivityEntry, error)

	// FindByUserSince retrieves all surviving entries for a user with
	// occurred_at at or after the given instant, ordered descending.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.ActivityEntry, error)

	// Delete soft-deletes an activity entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumPointDeltas returns the sum of point deltas over all surviving
	// entries for a user. Used to reconcile the cached balance projection.
	SumPointDeltas(ctx context.Context, userID uuid.UUID) (int, error)
}

// BalanceRepository defines the interface for the cached balance projection.
type BalanceRepository interface {
	// Get retrieves the stored balance for a user. Returns
	// domainerror.ErrBalanceNotFound when no row exists.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Balance, error)

	// Upsert replaces the stored balance integer for a user, inserting the
	// row when absent.
	Upsert(ctx context.Context, balance *entity.Balance) error
}

// BalanceCache defines a fast read-through cache in front of BalanceRepository.
// Cache failures are reported but never fatal; the repository remains the
// durable source.
type BalanceCache interface {
	// Get returns the cached points for a user. ok is false on miss.
	Get(ctx context.Context, userID uuid.UUID) (points int, ok bool, err error)

	// Set stores the points for a user.
	Set(ctx context.Context, userID uuid.UUID, points int) error

	// Invalidate drops the cached value for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
