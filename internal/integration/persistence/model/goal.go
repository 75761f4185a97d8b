// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Period        string         `gorm:"type:varchar(10);not null"`
	TargetType    string         `gorm:"type:varchar(15);not null"`
	TargetHabitID *uuid.UUID     `gorm:"type:uuid;index"`
	TargetValue   int            `gorm:"not null"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User        *UserModel  `gorm:"foreignKey:UserID;references:ID"`
	TargetHabit *HabitModel `gorm:"foreignKey:TargetHabitID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Period:        entity.GoalPeriod(m.Period),
		TargetType:    entity.GoalTargetType(m.TargetType),
		TargetHabitID: m.TargetHabitID,
		TargetValue:   m.TargetValue,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Title:         goal.Title,
		Period:        string(goal.Period),
		TargetType:    string(goal.TargetType),
		TargetHabitID: goal.TargetHabitID,
		TargetValue:   goal.TargetValue,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// MonthlyGoalModel represents the monthly_goals table: the simple
// month-wide points target that predates the goal engine.
type MonthlyGoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_goal_user_month"`
	Month        int       `gorm:"not null;uniqueIndex:idx_monthly_goal_user_month"`
	Year         int       `gorm:"not null;uniqueIndex:idx_monthly_goal_user_month"`
	TargetPoints int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the MonthlyGoalModel.
func (MonthlyGoalModel) TableName() string {
	return "monthly_goals"
}

// ToEntity converts a MonthlyGoalModel to a domain MonthlyGoal entity.
func (m *MonthlyGoalModel) ToEntity() *entity.MonthlyGoal {
	return &entity.MonthlyGoal{
		ID:           m.ID,
		UserID:       m.UserID,
		Month:        time.Month(m.Month),
		Year:         m.Year,
		TargetPoints: m.TargetPoints,
		CreatedAt:    m.CreatedAt,
	}
}

// MonthlyGoalFromEntity creates a MonthlyGoalModel from a domain MonthlyGoal entity.
func MonthlyGoalFromEntity(goal *entity.MonthlyGoal) *MonthlyGoalModel {
	return &MonthlyGoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Month:        int(goal.Month),
		Year:         goal.Year,
		TargetPoints: goal.TargetPoints,
		CreatedAt:    goal.CreatedAt,
	}
}
