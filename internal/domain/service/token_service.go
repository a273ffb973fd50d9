package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, short-lived bearer tokens.
// Tokens cannot be revoked before they expire.
type TokenService interface {
	// GenerateToken signs a token for userID that expires after the configured TTL.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken returns the claims of a valid token. It fails with
	// ErrTokenInvalid on a bad signature or payload and ErrTokenExpired once
	// the expiry has passed.
	ValidateToken(tokenString string) (*Claims, error)
}
