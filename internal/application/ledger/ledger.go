// Package ledger implements the points ledger: an append-only log of
// point-changing events with soft deletion, and the cached balance derived
// from it. The Service owns the in-memory per-user view and follows an
// optimistic-update discipline: mutations are applied to the in-memory view
// synchronously, then the durable writes are issued as two independent
// operations (entry, balance). A failed durable write does not roll the
// in-memory view back; it is surfaced as a typed SyncFailure to a
// caller-supplied policy.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// SyncOp identifies the durable write that failed.
type SyncOp string

const (
	SyncOpActivityInsert SyncOp = "activity_insert"
	SyncOpActivityDelete SyncOp = "activity_delete"
	SyncOpBalanceUpsert  SyncOp = "balance_upsert"
)

// SyncFailure describes a durable write that failed after the in-memory view
// was already updated.
type SyncFailure struct {
	Op         SyncOp
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Err        error
}

// SyncFailureHandler is the policy applied to durable-write failures:
// retry, rollback, user notification. The default policy logs the failure.
type SyncFailureHandler func(failure SyncFailure)

// userState is the in-memory view of one user's ledger: recent entries
// (newest first) and the running balance.
type userState struct {
	entries []*entity.ActivityEntry
	balance int
}

// Service owns ledger and balance state for all active users. All
// aggregation consumers read snapshots through History/Balance; mutations go
// through LogActivity/DeleteActivity.
type Service struct {
	activityRepo adapter.ActivityRepository
	balanceRepo  adapter.BalanceRepository
	habitRepo    adapter.HabitRepository
	cache        adapter.BalanceCache // optional
	onFailure    SyncFailureHandler
	fetchLimit   int

	mu     sync.RWMutex
	states map[uuid.UUID]*userState
}

// NewService creates a new ledger service. cache may be nil; onFailure may be
// nil, in which case failures are logged.
func NewService(
	activityRepo adapter.ActivityRepository,
	balanceRepo adapter.BalanceRepository,
	habitRepo adapter.HabitRepository,
	cache adapter.BalanceCache,
	onFailure SyncFailureHandler,
) *Service {
	s := &Service{
		activityRepo: activityRepo,
		balanceRepo:  balanceRepo,
		habitRepo:    habitRepo,
		cache:        cache,
		onFailure:    onFailure,
		fetchLimit:   adapter.DefaultActivityFetchLimit,
		states:       make(map[uuid.UUID]*userState),
	}
	if s.onFailure == nil {
		s.onFailure = func(f SyncFailure) {
			slog.Error("Ledger durable write failed",
				"op", string(f.Op),
				"userID", f.UserID,
				"activityID", f.ActivityID,
				"error", f.Err,
			)
		}
	}
	return s
}

// RecomputeBalance returns the sum of point deltas over all entries that are
// not soft-deleted. It is the reconciliation/self-healing primitive: the
// cached balance must always equal this sum over the full ledger.
func RecomputeBalance(entries []*entity.ActivityEntry) int {
	total := 0
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		total += e.PointDelta
	}
	return total
}

// LogActivity appends a new entry derived from the habit and applies its
// point delta to the balance. The in-memory view is updated before the
// durable writes are confirmed; write failures go through the SyncFailure
// policy and do not fail the call.
func (s *Service) LogActivity(ctx context.Context, userID, habitID uuid.UUID) (*entity.ActivityEntry, error) {
	if userID == uuid.Nil {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeNoSession,
			"no authenticated session",
			domainerror.ErrNoSession,
		)
	}

	habit, err := s.habitRepo.FindByID(ctx, habitID)
	if err != nil {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeActivityHabitNotFound,
			"habit not found",
			err,
		)
	}
	if habit.UserID != userID {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeNotAuthorizedActivity,
			"habit does not belong to user",
			domainerror.ErrNotAuthorizedToModifyActivity,
		)
	}

	state, err := s.ensureState(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := entity.NewActivityEntry(userID, habit)

	// Optimistic apply: visible immediately, before the durable writes.
	s.mu.Lock()
	state.entries = append([]*entity.ActivityEntry{entry}, state.entries...)
	state.balance += entry.PointDelta
	newBalance := state.balance
	s.mu.Unlock()

	// The two durable writes are independent operations, not a transaction.
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		s.onFailure(SyncFailure{Op: SyncOpActivityInsert, UserID: userID, ActivityID: entry.ID, Err: err})
	}
	s.upsertBalance(ctx, userID, newBalance, entry.ID)

	return entry, nil
}

// DeleteActivity removes an entry from the visible log and reverse-applies
// its stored point delta. Deleting an unknown or already-deleted entry is a
// no-op. This is the sole undo mechanism.
func (s *Service) DeleteActivity(ctx context.Context, userID, activityID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerror.NewActivityError(
			domainerror.ErrCodeNoSession,
			"no authenticated session",
			domainerror.ErrNoSession,
		)
	}

	state, err := s.ensureState(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	var target *entity.ActivityEntry
	idx := -1
	for i, e := range state.entries {
		if e.ID == activityID {
			target, idx = e, i
			break
		}
	}
	if target != nil {
		state.entries = append(state.entries[:idx], state.entries[idx+1:]...)
		state.balance -= target.PointDelta
	}
	newBalance := state.balance
	s.mu.Unlock()

	if target == nil {
		// The entry may be outside the loaded window.
		stored, err := s.activityRepo.FindByID(ctx, activityID)
		if err != nil {
			if errors.Is(err, domainerror.ErrActivityNotFound) {
				return nil // idempotent delete
			}
			return fmt.Errorf("failed to find activity: %w", err)
		}
		if stored.UserID != userID {
			return domainerror.NewActivityError(
				domainerror.ErrCodeNotAuthorizedActivity,
				"not authorized to modify activity",
				domainerror.ErrNotAuthorizedToModifyActivity,
			)
		}
		if stored.DeletedAt != nil {
			return nil // idempotent delete
		}
		target = stored
		s.mu.Lock()
		state.balance -= target.PointDelta
		newBalance = state.balance
		s.mu.Unlock()
	}

	if err := s.activityRepo.Delete(ctx, target.ID); err != nil {
		s.onFailure(SyncFailure{Op: SyncOpActivityDelete, UserID: userID, ActivityID: target.ID, Err: err})
	}
	s.upsertBalance(ctx, userID, newBalance, target.ID)

	return nil
}

// History returns the user's loaded entries in reverse-chronological order.
// The returned slice is a copy; callers may not mutate ledger state.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityEntry, error) {
	state, err := s.ensureState(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.ActivityEntry, len(state.entries))
	copy(out, state.entries)
	return out, nil
}

// Balance returns the user's current points. When the user's state is not
// loaded yet it consults the read-through cache before falling back to a
// full resync.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.RLock()
	state, loaded := s.states[userID]
	s.mu.RUnlock()
	if loaded {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return state.balance, nil
	}

	if s.cache != nil {
		points, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			slog.Debug("Balance cache read failed", "userID", userID, "error", err)
		} else if ok {
			return points, nil
		}
	}

	st, err := s.ensureState(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return st.balance, nil
}

// Resync discards the in-memory view and reloads it from durable storage,
// self-healing a diverged balance from the full stored ledger. Divergence can
// happen when a process dies between the two durable writes.
func (s *Service) Resync(ctx context.Context, userID uuid.UUID) error {
	entries, err := s.activityRepo.FindRecentByUser(ctx, userID, s.fetchLimit)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}

	stored, err := s.balanceRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBalanceNotFound) {
			return fmt.Errorf("failed to load balance: %w", err)
		}
		// Missing balance row is zero, initialized opportunistically.
		stored = entity.NewBalance(userID)
		if err := s.balanceRepo.Upsert(ctx, stored); err != nil {
			slog.Warn("Failed to initialize balance row", "userID", userID, "error", err)
		}
	}

	balance := stored.Points
	if sum, err := s.activityRepo.SumPointDeltas(ctx, userID); err != nil {
		slog.Warn("Failed to recompute balance from ledger", "userID", userID, "error", err)
	} else if sum != balance {
		slog.Warn("Cached balance diverged from ledger, self-healing",
			"userID", userID,
			"stored", balance,
			"recomputed", sum,
		)
		balance = sum
		s.upsertBalance(ctx, userID, balance, uuid.Nil)
	}

	s.mu.Lock()
	s.states[userID] = &userState{entries: entries, balance: balance}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, balance); err != nil {
			slog.Debug("Balance cache write failed", "userID", userID, "error", err)
		}
	}

	return nil
}

// ensureState returns the loaded state for a user, resyncing on first use.
func (s *Service) ensureState(ctx context.Context, userID uuid.UUID) (*userState, error) {
	s.mu.RLock()
	state, ok := s.states[userID]
	s.mu.RUnlock()
	if ok {
		return state, nil
	}

	if err := s.Resync(ctx, userID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID], nil
}

// upsertBalance issues the durable balance write and refreshes the cache.
func (s *Service) upsertBalance(ctx context.Context, userID uuid.UUID, points int, activityID uuid.UUID) {
	balance := &entity.Balance{
		UserID:    userID,
		Points:    points,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.balanceRepo.Upsert(ctx, balance); err != nil {
		s.onFailure(SyncFailure{Op: SyncOpBalanceUpsert, UserID: userID, ActivityID: activityID, Err: err})
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, points); err != nil {
			slog.Debug("Balance cache write failed", "userID", userID, "error", err)
		}
	}
}
