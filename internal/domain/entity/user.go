// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It is never mutated after creation.
type User struct {
	ID           uuid.UUID `json:"id"`    // Generated on registration.
	Name         string    `json:"name"`  // Display name.
	Email        string    `json:"email"` // Trimmed, lower-cased and unique across accounts.
	PasswordHash string    `json:"-"`     // bcrypt hash, never serialized.
	CreatedAt    time.Time `json:"date"`  // Registration time.
}
