// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// BalanceModel represents the balances table: one cached points row per
// user, derived from the activities table.
type BalanceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Points    int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// ToEntity converts a BalanceModel to a domain Balance entity.
func (m *BalanceModel) ToEntity() *entity.Balance {
	return &entity.Balance{
		UserID:    m.UserID,
		Points:    m.Points,
		UpdatedAt: m.UpdatedAt,
	}
}

// BalanceFromEntity creates a BalanceModel from a domain Balance entity.
func BalanceFromEntity(balance *entity.Balance) *BalanceModel {
	return &BalanceModel{
		UserID:    balance.UserID,
		Points:    balance.Points,
		UpdatedAt: balance.UpdatedAt,
	}
}
