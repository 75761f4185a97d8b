// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Balance is the cached points projection for a single user. It is derived
// state, not a source of truth: it must always equal the sum of PointDelta
// over the user's non-deleted activity entries.
type Balance struct {
	UserID    uuid.UUID
	Points    int
	UpdatedAt time.Time
}

// NewBalance creates a zero balance for a user.
func NewBalance(userID uuid.UUID) *Balance {
	return &Balance{
		UserID:    userID,
		Points:    0,
		UpdatedAt: time.Now().UTC(),
	}
}
