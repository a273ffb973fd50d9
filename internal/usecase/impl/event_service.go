package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Access verbs used in Forbidden messages.
const (
	accessView   = "view"
	accessUpdate = "update"
	accessDelete = "delete"
)

// eventService implements usecase.EventUsecase.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService creates the owner-scoped event use case.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent validates the required fields and stores the event under ownerID.
// An unknown category is stored as "other".
func (srv *eventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateEventInput) (*entity.Event, error) {
	name := strings.TrimSpace(input.Name)
	rawDate := strings.TrimSpace(input.Date)
	clock := strings.TrimSpace(input.Time)
	location := strings.TrimSpace(input.Location)

	if name == "" || rawDate == "" || clock == "" || location == "" {
		return nil, domainerrors.ErrEventValidation
	}

	date, err := entity.ParseEventDate(rawDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidEventDate.WithCause(err)
	}

	event := &entity.Event{
		Name:        name,
		Date:        date,
		Time:        clock,
		Location:    location,
		Description: strings.TrimSpace(input.Description),
		Category:    entity.ParseCategory(strings.TrimSpace(input.Category)),
		OwnerID:     ownerID,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.Any("ownerID", ownerID))

	return event, nil
}

// ListEvents returns the caller's events ordered by date, then time.
func (srv *eventService) ListEvents(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	events, err := srv.eventRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

func (srv *eventService) GetEvent(ctx context.Context, ownerID, eventID uuid.UUID) (*entity.Event, error) {
	return srv.findOwned(ctx, ownerID, eventID, accessView)
}

// UpdateEvent applies the present fields and saves the event in one write.
func (srv *eventService) UpdateEvent(ctx context.Context, ownerID, eventID uuid.UUID, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := srv.findOwned(ctx, ownerID, eventID, accessUpdate)
	if err != nil {
		return nil, err
	}

	if err := applyEventUpdate(event, input); err != nil {
		return nil, err
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			// Deleted between the read and the write.
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to update event")
	}

	srv.log(ctx).Info("Event updated", slog.Any("eventID", event.ID))

	return event, nil
}

func (srv *eventService) DeleteEvent(ctx context.Context, ownerID, eventID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, ownerID, eventID, accessDelete); err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", eventID))

	return nil
}

// findOwned loads the event, then checks ownership: NotFound always wins over Forbidden.
func (srv *eventService) findOwned(ctx context.Context, ownerID, eventID uuid.UUID, access string) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, domainerrors.ErrEventNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event")
	}

	if !event.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Event access denied",
			slog.Any("eventID", eventID),
			slog.Any("callerID", ownerID),
			slog.String("access", access))

		return nil, domainerrors.ErrEventForbidden.WithMessage("Not authorized to " + access + " this event")
	}

	return event, nil
}

// applyEventUpdate overwrites the fields present in input. Blank values count
// as absent, except Description, which may be cleared.
func applyEventUpdate(event *entity.Event, input *usecase.UpdateEventInput) error {
	if v, ok := presentValue(input.Name); ok {
		event.Name = v
	}
	if v, ok := presentValue(input.Date); ok {
		date, err := entity.ParseEventDate(v)
		if err != nil {
			return domainerrors.ErrInvalidEventDate.WithCause(err)
		}
		event.Date = date
	}
	if v, ok := presentValue(input.Time); ok {
		event.Time = v
	}
	if v, ok := presentValue(input.Location); ok {
		event.Location = v
	}
	if input.Description != nil {
		event.Description = strings.TrimSpace(*input.Description)
	}
	if v, ok := presentValue(input.Category); ok {
		category := entity.Category(v)
		if !category.IsValid() {
			return domainerrors.ErrInvalidCategory
		}
		event.Category = category
	}

	return nil
}

func presentValue(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)

	return v, v != ""
}
