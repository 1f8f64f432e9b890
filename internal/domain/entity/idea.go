package entity

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a record owned by exactly one user.
// The owner reference is not checked against the user store on write.
type Idea struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Points      *float64  `json:"points,omitempty"`
	Realised    bool      `json:"realised"`
	CreatedAt   time.Time `json:"date"`
}

// IsOwner is the single ownership predicate used for every idea mutation.
func IsOwner(idea *Idea, userID uuid.UUID) bool {
	return idea != nil && userID != uuid.Nil && idea.UserID == userID
}
