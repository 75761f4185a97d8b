// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create creates a new activity entry in the database.
func (r *activityRepository) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	activityModel := model.ActivityFromEntity(entry)
	result := r.db.WithContext(ctx).Create(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an activity entry by its ID.
func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityEntry, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindRecentByUser retrieves the most recent entries for a user in
// reverse-chronological order, bounded by limit.
func (r *activityRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ActivityEntry, error) {
	if limit <= 0 {
		limit = adapter.DefaultActivityFetchLimit
	}

	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ActivityEntry, len(activityModels))
	for i, am := range activityModels {
		entries[i] = am.ToEntity()
	}
	return entries, nil
}

// FindByUserSince retrieves entries at or after the given instant.
func (r *activityRepository) FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.ActivityEntry, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Order("occurred_at DESC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ActivityEntry, len(activityModels))
	for i, am := range activityModels {
		entries[i] = am.ToEntity()
	}
	return entries, nil
}

// Delete soft-deletes an activity entry. Deleting an absent entry is a no-op
// so the operation stays idempotent end to end.
func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	return result.Error
}

// SumPointDeltas computes the balance from the stored ledger. Soft-deleted
// rows are excluded by gorm's default scope.
func (r *activityRepository) SumPointDeltas(ctx context.Context, userID uuid.UUID) (int, error) {
	var total *int
	result := r.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Select("SUM(point_delta)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// balanceRepository implements the adapter.BalanceRepository interface.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance repository instance.
func NewBalanceRepository(db *gorm.DB) adapter.BalanceRepository {
	return &balanceRepository{
		db: db,
	}
}

// Get retrieves the cached balance row for a user.
func (r *balanceRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Balance, error) {
	var balanceModel model.BalanceModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBalanceNotFound
		}
		return nil, result.Error
	}
	return balanceModel.ToEntity(), nil
}

// Upsert inserts or replaces the balance row for a user.
func (r *balanceRepository) Upsert(ctx context.Context, balance *entity.Balance) error {
	balanceModel := model.BalanceFromEntity(balance)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "updated_at"}),
		}).
		Create(balanceModel)
	return result.Error
}
