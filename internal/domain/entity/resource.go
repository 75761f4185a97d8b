// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResourceCategory represents the kind of tracked resource.
type ResourceCategory string

const (
	ResourceCategoryBook    ResourceCategory = "book"
	ResourceCategoryPaper   ResourceCategory = "paper"
	ResourceCategoryProject ResourceCategory = "project"
)

// ResourceStatus represents the lifecycle state of a resource.
type ResourceStatus string

const (
	ResourceStatusActive    ResourceStatus = "active"
	ResourceStatusPaused    ResourceStatus = "paused"
	ResourceStatusCompleted ResourceStatus = "completed"
)

// Resource represents a long-running item the user works through alongside
// habits: a book (pages), a paper, or a project (milestones). Progress is
// Current out of Total units.
type Resource struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Category  ResourceCategory
	Total     int
	Current   int
	Status    ResourceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewResource creates a new Resource entity.
func NewResource(userID uuid.UUID, title string, category ResourceCategory, total, current int) *Resource {
	now := time.Now().UTC()

	return &Resource{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Category:  category,
		Total:     total,
		Current:   current,
		Status:    ResourceStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
