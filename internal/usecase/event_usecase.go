package usecase

import (
	"context"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput is the body of a create request. Date is YYYY-MM-DD or RFC 3339.
type CreateEventInput struct {
	Name        string
	Date        string
	Time        string
	Location    string
	Description string
	Category    string
}

// UpdateEventInput carries only the fields present in the request. A nil or
// blank value leaves the stored value unchanged.
//
// Description is the exception: it is the one optional field, so a present
// empty string clears it instead of keeping the old text. Only a nil
// Description keeps the stored value.
type UpdateEventInput struct {
	Name        *string
	Date        *string
	Time        *string
	Location    *string
	Description *string
	Category    *string
}

// EventUsecase scopes every operation to the calling owner. Existence is
// checked before ownership: a missing event is NotFound for everyone and an
// event owned by someone else is Forbidden.
type EventUsecase interface {
	CreateEvent(ctx context.Context, ownerID uuid.UUID, input *CreateEventInput) (*entity.Event, error)
	ListEvents(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error)
	GetEvent(ctx context.Context, ownerID, eventID uuid.UUID) (*entity.Event, error)
	UpdateEvent(ctx context.Context, ownerID, eventID uuid.UUID, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, ownerID, eventID uuid.UUID) error
}
