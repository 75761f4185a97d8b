// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Direction string         `gorm:"type:varchar(4);not null"`
	Value     int            `gorm:"not null;default:0"`
	Cost      int            `gorm:"not null;default:0"`
	Icon      string         `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Habit{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Direction: entity.HabitDirection(m.Direction),
		Value:     m.Value,
		Cost:      m.Cost,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	var deletedAt gorm.DeletedAt
	if habit.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *habit.DeletedAt, Valid: true}
	}

	return &HabitModel{
		ID:        habit.ID,
		UserID:    habit.UserID,
		Name:      habit.Name,
		Direction: string(habit.Direction),
		Value:     habit.Value,
		Cost:      habit.Cost,
		Icon:      habit.Icon,
		CreatedAt: habit.CreatedAt,
		UpdatedAt: habit.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
