// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// DelegatedLoginInput carries the query parameters of the provider callback.
type DelegatedLoginInput struct {
	Code  string
	State string
	// Error is set when the provider reports a failure (e.g. access_denied).
	Error string
}

// --- Output DTOs ---

// AuthOutput is the result of every successful sign-in path.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a local identity and signs a token for it.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)

	// Login checks local credentials and signs a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// BeginDelegatedLogin stores a fresh state and returns the provider URL
	// the browser should be redirected to.
	BeginDelegatedLogin(ctx context.Context) (string, error)

	// CompleteDelegatedLogin finishes the provider round trip, resolves the
	// identity and signs a token.
	CompleteDelegatedLogin(ctx context.Context, input *DelegatedLoginInput) (*AuthOutput, error)
}

// IdentityResolver maps a verified external profile onto a local identity.
type IdentityResolver interface {
	// Resolve returns the identity linked to externalID, links externalID onto
	// an unlinked identity with the same email, or creates a new identity.
	// Only an email the provider verified is used to link.
	// Repeated calls with the same arguments return the same identity.
	Resolve(ctx context.Context, externalID, email string, emailVerified bool) (*entity.User, error)
}
