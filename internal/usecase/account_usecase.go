package usecase

import (
	"context"

	"ideabank/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

// LoginInput is the payload for credential login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Please include a password"`
}

// TokenOutput carries a freshly issued bearer token.
type TokenOutput struct {
	Token string `json:"token"`
}

// AccountUsecase defines account lifecycle and authentication use cases.
type AccountUsecase interface {
	// Register creates an account and returns a token for it.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login verifies credentials and returns a token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// GetCurrentUser returns the authenticated user without the password hash.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the user together with every idea they own.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
