package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"evently/config"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:        &config.AuthConfig{BcryptCost: 4},
		Token:       &config.TokenConfig{TTL: time.Hour, Issuer: "evently"},
		GoogleOAuth: &config.GoogleOAuthConfig{StateTTL: 5 * time.Minute},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

// memoryUserRepo is an in-process UserRepository with the same uniqueness
// rules as the users table. It backs the property-style tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return email != "" && u.Email == email })
}

func (r *memoryUserRepo) FindByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return googleID != "" && u.GoogleID == googleID })
}

func (r *memoryUserRepo) findBy(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	if !user.CanAuthenticate() {
		return domainerrors.ErrIdentityWithoutCredential
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (user.Email != "" && u.Email == user.Email) || (user.GoogleID != "" && u.GoogleID == user.GoogleID) {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp

	return nil
}

func (r *memoryUserRepo) LinkGoogleID(_ context.Context, id uuid.UUID, googleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if u.GoogleID != "" {
		return repository.ErrGoogleIDAlreadyLinked
	}
	for _, other := range r.users {
		if other.GoogleID == googleID {
			return repository.ErrGoogleIDAlreadyLinked
		}
	}
	u.GoogleID = googleID

	return nil
}
