// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ResourceModel represents the resources table in the database.
type ResourceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Category  string         `gorm:"type:varchar(10);not null"`
	Total     int            `gorm:"not null"`
	Current   int            `gorm:"not null;default:0"`
	Status    string         `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ResourceModel.
func (ResourceModel) TableName() string {
	return "resources"
}

// ToEntity converts a ResourceModel to a domain Resource entity.
func (m *ResourceModel) ToEntity() *entity.Resource {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Resource{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Category:  entity.ResourceCategory(m.Category),
		Total:     m.Total,
		Current:   m.Current,
		Status:    entity.ResourceStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ResourceFromEntity creates a ResourceModel from a domain Resource entity.
func ResourceFromEntity(resource *entity.Resource) *ResourceModel {
	var deletedAt gorm.DeletedAt
	if resource.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *resource.DeletedAt, Valid: true}
	}

	return &ResourceModel{
		ID:        resource.ID,
		UserID:    resource.UserID,
		Title:     resource.Title,
		Category:  string(resource.Category),
		Total:     resource.Total,
		Current:   resource.Current,
		Status:    string(resource.Status),
		CreatedAt: resource.CreatedAt,
		UpdatedAt: resource.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
