package impl

import (
	"context"
	"log/slog"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/errors"
	"evently/internal/usecase"

	"go.uber.org/fx"
)

// localAuthenticator checks an email and password against the credential store.
type localAuthenticator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// LocalAuthenticatorParams holds dependencies for the local strategy.
type LocalAuthenticatorParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Metrics  service.AuthMetrics `optional:"true"`
	Logger   *slog.Logger
}

// NewLocalAuthenticator creates the email/password strategy.
func NewLocalAuthenticator(params LocalAuthenticatorParams) usecase.Authenticator {
	return withMetrics(&localAuthenticator{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}, params.Metrics)
}

func (a *localAuthenticator) Strategy() usecase.Strategy {
	return usecase.StrategyLocal
}

// Authenticate distinguishes an identity that only signs in through Google
// from plain invalid credentials so the client can point the user there.
func (a *localAuthenticator) Authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	local, ok := creds.(usecase.LocalCredentials)
	if !ok {
		return nil, wrongCredentials(a.Strategy(), creds)
	}

	email := entity.NormalizeEmail(local.Email)
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Debug("Login for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() {
		logger.Debug("Local login for Google-only identity", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrExternalOnly
	}

	if !a.hasher.Check(local.Password, user.PasswordHash) {
		logger.Debug("Password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
