// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ActivityModel represents the activities table in the database. The habit
// reference is deliberately weak: the habit row may be deleted later, so the
// name and point delta are denormalized at insert time.
type ActivityModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	HabitID    uuid.UUID      `gorm:"type:uuid;index"`
	HabitName  string         `gorm:"type:varchar(100);not null"`
	PointDelta int            `gorm:"not null"`
	OccurredAt time.Time      `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain ActivityEntry entity.
func (m *ActivityModel) ToEntity() *entity.ActivityEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.ActivityEntry{
		ID:         m.ID,
		UserID:     m.UserID,
		HabitID:    m.HabitID,
		HabitName:  m.HabitName,
		PointDelta: m.PointDelta,
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
		DeletedAt:  deletedAt,
	}
}

// ActivityFromEntity creates an ActivityModel from a domain ActivityEntry entity.
func ActivityFromEntity(entry *entity.ActivityEntry) *ActivityModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &ActivityModel{
		ID:         entry.ID,
		UserID:     entry.UserID,
		HabitID:    entry.HabitID,
		HabitName:  entry.HabitName,
		PointDelta: entry.PointDelta,
		OccurredAt: entry.OccurredAt,
		CreatedAt:  entry.CreatedAt,
		DeletedAt:  deletedAt,
	}
}
