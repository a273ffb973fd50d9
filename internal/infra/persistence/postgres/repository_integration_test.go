package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"evently/config"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// the tables. Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, RunMigrations(dbURL))

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("TRUNCATE events, users CASCADE").Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)
	assert.Empty(t, byID.GoogleID)

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByGoogleID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &entity.User{Email: "dup@example.com", PasswordHash: "h"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_ManyUsersWithoutEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{GoogleID: "g-1"}))
	require.NoError(t, repo.Create(ctx, &entity.User{GoogleID: "g-2"}))
}

func TestUserRepository_RejectsIdentityWithoutCredential(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{Email: "x@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityWithoutCredential))
}

func TestUserRepository_LinkGoogleID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "link@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.LinkGoogleID(ctx, user.ID, "g-link"))

	linked, err := repo.FindByGoogleID(ctx, "g-link")
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.ID)
	assert.True(t, linked.HasPassword())

	// Second link is refused
	err = repo.LinkGoogleID(ctx, user.ID, "g-other")
	assert.ErrorIs(t, err, repository.ErrGoogleIDAlreadyLinked)

	err = repo.LinkGoogleID(ctx, uuid.New(), "g-ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ConcurrentCreateSameGoogleID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	const workers = 5
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &entity.User{GoogleID: "g-race"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	}
	assert.Equal(t, 1, succeeded)
}

func TestEventRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	ctx := context.Background()

	owner := &entity.User{Email: "owner@example.com", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, owner))

	mk := func(name, date, clock string) *entity.Event {
		d, err := entity.ParseEventDate(date)
		require.NoError(t, err)
		e := &entity.Event{Name: name, Date: d, Time: clock, Location: "Hall", Category: entity.CategoryOther, OwnerID: owner.ID}
		require.NoError(t, events.Create(ctx, e))
		return e
	}

	late := mk("late", "2026-06-02", "09:00")
	early := mk("early", "2026-06-01", "18:00")
	earlier := mk("earlier", "2026-06-01", "08:00")

	list, err := events.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uuid.UUID{earlier.ID, early.ID, late.ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})

	got, err := events.FindByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), got.Date)

	got.Name = "renamed"
	got.Category = entity.CategoryParty
	require.NoError(t, events.Update(ctx, got))

	again, err := events.FindByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", again.Name)
	assert.Equal(t, entity.CategoryParty, again.Category)
	assert.Equal(t, owner.ID, again.OwnerID)

	require.NoError(t, events.Delete(ctx, early.ID))
	_, err = events.FindByID(ctx, early.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.ErrorIs(t, events.Delete(ctx, early.ID), repository.ErrEventNotFound)

	ghost := &entity.Event{ID: uuid.New(), Name: "x", Date: got.Date, Time: "1", Location: "y", Category: entity.CategoryOther, OwnerID: owner.ID}
	assert.ErrorIs(t, events.Update(ctx, ghost), repository.ErrEventNotFound)

	empty, err := events.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
