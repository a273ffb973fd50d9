package impl

import (
	"context"
	"testing"
	"time"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	mockRepo "evently/internal/mocks/repository"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service   usecase.EventUsecase
	eventRepo *mockRepo.MockEventRepository
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)

	return eventServiceFixtures{
		service: NewEventService(EventServiceParams{
			EventRepo: eventRepo,
			Logger:    newDiscardLogger(),
		}),
		eventRepo: eventRepo,
	}
}

func strPtr(s string) *string { return &s }

func newStoredEvent(ownerID uuid.UUID) *entity.Event {
	return &entity.Event{
		ID:          uuid.New(),
		Name:        "Launch",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		Location:    "Hall A",
		Description: "Kickoff",
		Category:    entity.CategoryConference,
		OwnerID:     ownerID,
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.eventRepo.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.Event) bool {
		return e.OwnerID == ownerID &&
			e.Name == "Launch" &&
			e.Date.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			e.Category == entity.CategoryWorkshop
	})).RunAndReturn(func(_ context.Context, e *entity.Event) error {
		e.ID = uuid.New()
		return nil
	})

	event, err := fx.service.CreateEvent(ctx, ownerID, &usecase.CreateEventInput{
		Name:     " Launch ",
		Date:     "2025-03-01",
		Time:     "10:00",
		Location: "Hall A",
		Category: "workshop",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Empty(t, event.Description)
}

func TestEventService_CreateEvent_DefaultsCategory(t *testing.T) {
	for _, raw := range []string{"", "meetup"} {
		fx := createTestEventService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.Category == entity.CategoryOther
		})).Return(nil)

		_, err := fx.service.CreateEvent(ctx, uuid.New(), &usecase.CreateEventInput{
			Name: "n", Date: "2025-03-01T18:30:00Z", Time: "t", Location: "l", Category: raw,
		})
		require.NoError(t, err)
	}
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateEventInput
		want  error
	}{
		{name: "missing name", input: usecase.CreateEventInput{Date: "2025-03-01", Time: "t", Location: "l"}, want: domainerrors.ErrEventValidation},
		{name: "blank location", input: usecase.CreateEventInput{Name: "n", Date: "2025-03-01", Time: "t", Location: "  "}, want: domainerrors.ErrEventValidation},
		{name: "missing time", input: usecase.CreateEventInput{Name: "n", Date: "2025-03-01", Location: "l"}, want: domainerrors.ErrEventValidation},
		{name: "bad date", input: usecase.CreateEventInput{Name: "n", Date: "03/01/2025", Time: "t", Location: "l"}, want: domainerrors.ErrInvalidEventDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEventService(t)

			_, err := fx.service.CreateEvent(context.Background(), uuid.New(), &tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestEventService_ListEvents(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	events := []*entity.Event{newStoredEvent(ownerID), newStoredEvent(ownerID)}

	fx.eventRepo.EXPECT().ListByOwner(ctx, ownerID).Return(events, nil)

	got, err := fx.service.ListEvents(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestEventService_GetEvent_Scoping(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredEvent(ownerID)

	t.Run("owner", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		got, err := fx.service.GetEvent(ctx, ownerID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, got.ID)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestEventService(t)
		fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.GetEvent(ctx, uuid.New(), stored.ID)
		require.True(t, errors.Is(err, domainerrors.ErrEventForbidden))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Not authorized to view this event", appErr.Message())
	})

	t.Run("missing beats forbidden", func(t *testing.T) {
		fx := createTestEventService(t)
		missing := uuid.New()
		fx.eventRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.GetEvent(ctx, uuid.New(), missing)
		assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
	})
}

func TestEventService_UpdateEvent_Partial(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredEvent(ownerID)

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.eventRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

	got, err := fx.service.UpdateEvent(ctx, ownerID, stored.ID, &usecase.UpdateEventInput{
		Name:     strPtr("Relaunch"),
		Location: strPtr(""),
		Category: strPtr("party"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Relaunch", got.Name)
	assert.Equal(t, "Hall A", got.Location, "blank value leaves the field unchanged")
	assert.Equal(t, "Kickoff", got.Description, "absent description is kept")
	assert.Equal(t, entity.CategoryParty, got.Category)
	assert.Equal(t, ownerID, got.OwnerID)
}

func TestEventService_UpdateEvent_ClearsDescription(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredEvent(ownerID)

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.eventRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

	got, err := fx.service.UpdateEvent(ctx, ownerID, stored.ID, &usecase.UpdateEventInput{Description: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, got.Description)
}

func TestEventService_UpdateEvent_InvalidValues(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tests := []struct {
		name  string
		input usecase.UpdateEventInput
		want  error
	}{
		{name: "category", input: usecase.UpdateEventInput{Category: strPtr("meetup")}, want: domainerrors.ErrInvalidCategory},
		{name: "date", input: usecase.UpdateEventInput{Date: strPtr("tomorrow")}, want: domainerrors.ErrInvalidEventDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEventService(t)
			stored := newStoredEvent(ownerID)
			fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

			_, err := fx.service.UpdateEvent(ctx, ownerID, stored.ID, &tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestEventService_UpdateEvent_Forbidden(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	stored := newStoredEvent(uuid.New())

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateEvent(ctx, uuid.New(), stored.ID, &usecase.UpdateEventInput{Name: strPtr("mine now")})
	assert.True(t, errors.Is(err, domainerrors.ErrEventForbidden))
	assert.Equal(t, "Launch", stored.Name)
}

func TestEventService_UpdateEvent_DeletedConcurrently(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredEvent(ownerID)

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.eventRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrEventNotFound)

	_, err := fx.service.UpdateEvent(ctx, ownerID, stored.ID, &usecase.UpdateEventInput{Name: strPtr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
}

func TestEventService_DeleteEvent(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := newStoredEvent(ownerID)

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()
	fx.eventRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)

	require.NoError(t, fx.service.DeleteEvent(ctx, ownerID, stored.ID))

	// Afterwards the event is gone for its owner too.
	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(nil, repository.ErrEventNotFound).Once()

	_, err := fx.service.GetEvent(ctx, ownerID, stored.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
}

func TestEventService_DeleteEvent_Forbidden(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	stored := newStoredEvent(uuid.New())

	fx.eventRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	err := fx.service.DeleteEvent(ctx, uuid.New(), stored.ID)
	require.True(t, errors.Is(err, domainerrors.ErrEventForbidden))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Not authorized to delete this event", appErr.Message())
}
