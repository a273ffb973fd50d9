package service

import (
	"context"
	"time"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // May be empty when the provider withholds it
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthService drives the authorization-code flow against an external provider.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider consent URL carrying state.
	BuildAuthorizationURL(state string) string

	// FetchUser exchanges an authorization code and returns the verified profile.
	FetchUser(ctx context.Context, code string) (*OAuthUser, error)
}

// OAuthStateStore keeps the short-lived correlation values that tie the
// redirect to the provider to its callback.
type OAuthStateStore interface {
	// Save records state for ttl.
	Save(ctx context.Context, state string, ttl time.Duration) error

	// Consume deletes state and reports whether it was present and unexpired.
	// A state can be consumed at most once.
	Consume(ctx context.Context, state string) (bool, error)
}

// OAuthStateSigner creates unforgeable state values and recognizes its own.
type OAuthStateSigner interface {
	Generate() (string, error)
	Verify(state string) bool
}
