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

// bearerAuthenticator proves an identity from a previously issued token.
type bearerAuthenticator struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// BearerAuthenticatorParams holds dependencies for the bearer strategy.
type BearerAuthenticatorParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewBearerAuthenticator creates the token strategy used by the auth middleware.
func NewBearerAuthenticator(params BearerAuthenticatorParams) usecase.Authenticator {
	return withMetrics(&bearerAuthenticator{
		tokenService: params.TokenService,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}, params.Metrics)
}

func (a *bearerAuthenticator) Strategy() usecase.Strategy {
	return usecase.StrategyBearer
}

// Authenticate fails with ErrUnauthorized for a bad or expired token and for
// a token whose identity no longer exists.
func (a *bearerAuthenticator) Authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	bearer, ok := creds.(usecase.BearerCredentials)
	if !ok {
		return nil, wrongCredentials(a.Strategy(), creds)
	}

	if bearer.Token == "" {
		return nil, domainerrors.ErrNoToken
	}

	claims, err := a.tokenService.ValidateToken(bearer.Token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithCause(err)
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithCause(err)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token identity")
	}

	return user, nil
}
