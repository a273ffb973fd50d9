package repository

import (
	"context"
	"errors"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when no event has the requested ID.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the record store operations. It performs no
// ownership checks; those belong to the use case layer.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// ListByOwner returns the owner's events ordered by date, then time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error)

	// Update overwrites the mutable columns of an existing event.
	Update(ctx context.Context, event *entity.Event) error

	Delete(ctx context.Context, id uuid.UUID) error
}
