package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenUser is the identity carried in a token payload.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims is the token payload: {"user":{"id":...}} plus iat/exp.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// UserID parses the identity carried by the claims.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.User.ID)
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// GenerateToken signs a token for the user that expires after the configured TTL.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
