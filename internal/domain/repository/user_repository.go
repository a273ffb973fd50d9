// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrGoogleIDAlreadyLinked is returned when linking finds the identity already
// bound to a Google account.
var ErrGoogleIDAlreadyLinked = errors.New("google id already linked")

// UserRepository defines the credential store operations.
// Emails passed in must already be normalized.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves the user linked to the given Google subject.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user and fills in ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// LinkGoogleID sets google_id on a user whose google_id is still empty.
	// It is a single conditional update; ErrGoogleIDAlreadyLinked is returned
	// when the row exists but is already linked.
	LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error
}
