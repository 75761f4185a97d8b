// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// resourceRepository implements the adapter.ResourceRepository interface.
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository instance.
func NewResourceRepository(db *gorm.DB) adapter.ResourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// Create creates a new resource in the database.
func (r *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	resourceModel := model.ResourceFromEntity(resource)
	result := r.db.WithContext(ctx).Create(resourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a resource by its ID.
func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	var resourceModel model.ResourceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&resourceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrResourceNotFound
		}
		return nil, result.Error
	}
	return resourceModel.ToEntity(), nil
}

// FindByUser retrieves all resources for a given user, ordered by creation time ascending.
func (r *resourceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resource, error) {
	var resourceModels []model.ResourceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&resourceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	resources := make([]*entity.Resource, len(resourceModels))
	for i, rm := range resourceModels {
		resources[i] = rm.ToEntity()
	}
	return resources, nil
}

// Update updates an existing resource in the database.
func (r *resourceRepository) Update(ctx context.Context, resource *entity.Resource) error {
	resourceModel := model.ResourceFromEntity(resource)
	result := r.db.WithContext(ctx).Save(resourceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a resource from the database.
func (r *resourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ResourceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrResourceNotFound
	}
	return nil
}
