package handler

import (
	"log/slog"
	"net/http"
	"time"

	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/response"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler serves /api/events. Every route runs behind the auth middleware.
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEventRequest is the body of POST /api/events. Any owner field sent by
// the client is ignored.
type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateEventRequest is the body of PUT /api/events/:id. Absent fields are nil.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// EventResponse is the wire form of an event.
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventMessageResponse is returned by create and update.
type EventMessageResponse struct {
	Message string        `json:"message"`
	Event   EventResponse `json:"event"`
}

func toEventResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Date:        event.Date.Format(entity.DateLayout),
		Time:        event.Time,
		Location:    event.Location,
		Description: event.Description,
		Category:    event.Category.String(),
		OwnerID:     event.OwnerID,
		CreatedAt:   event.CreatedAt,
	}
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	user, ok := middleware.GetUser(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return user.ID, nil
}

func eventIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidEventID.WithCause(err)
	}

	return id, nil
}

// CreateEvent handles POST /api/events.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrEventValidation.WithCause(err)
	}
	if err := c.Validate(&req); err != nil {
		logInvalidRequest(c, h.logger, err)

		return domainerrors.ErrEventValidation.WithCause(err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), ownerID, &usecase.CreateEventInput{
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, EventMessageResponse{
		Message: "Event created successfully!",
		Event:   toEventResponse(event),
	})
}

// ListEvents handles GET /api/events.
func (h *EventHandler) ListEvents(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}

	return response.JSON(c, http.StatusOK, out)
}

// GetEvent handles GET /api/events/:id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return err
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), ownerID, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toEventResponse(event))
}

// UpdateEvent handles PUT /api/events/:id.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid event input").WithCause(err)
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), ownerID, eventID, &usecase.UpdateEventInput{
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, EventMessageResponse{
		Message: "Event updated successfully!",
		Event:   toEventResponse(event),
	})
}

// DeleteEvent handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return err
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), ownerID, eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Event deleted successfully!")
}
