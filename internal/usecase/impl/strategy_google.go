package impl

import (
	"context"
	"log/slog"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/errors"
	"evently/internal/usecase"

	"go.uber.org/fx"
)

// googleAuthenticator completes the authorization-code flow and resolves the
// verified profile onto a local identity.
type googleAuthenticator struct {
	oauth    service.OAuthService
	signer   service.OAuthStateSigner
	states   service.OAuthStateStore
	resolver usecase.IdentityResolver
	logger   *slog.Logger
}

// GoogleAuthenticatorParams holds dependencies for the delegated strategy.
type GoogleAuthenticatorParams struct {
	fx.In

	OAuthService service.OAuthService
	StateSigner  service.OAuthStateSigner
	StateStore   service.OAuthStateStore
	Resolver     usecase.IdentityResolver
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewGoogleAuthenticator creates the delegated strategy.
func NewGoogleAuthenticator(params GoogleAuthenticatorParams) usecase.Authenticator {
	return withMetrics(&googleAuthenticator{
		oauth:    params.OAuthService,
		signer:   params.StateSigner,
		states:   params.StateStore,
		resolver: params.Resolver,
		logger:   params.Logger,
	}, params.Metrics)
}

func (a *googleAuthenticator) Strategy() usecase.Strategy {
	return usecase.StrategyGoogle
}

func (a *googleAuthenticator) Authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	delegated, ok := creds.(usecase.DelegatedCredentials)
	if !ok {
		return nil, wrongCredentials(a.Strategy(), creds)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	if !a.signer.Verify(delegated.State) {
		logger.Warn("OAuth callback with unsigned state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	// Consume before the exchange so a replayed callback cannot reuse the state.
	valid, err := a.states.Consume(ctx, delegated.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume oauth state")
	}
	if !valid {
		logger.Warn("OAuth callback with unknown or expired state")

		return nil, domainerrors.ErrOAuthStateInvalid
	}

	profile, err := a.oauth.FetchUser(ctx, delegated.Code)
	if err != nil {
		logger.Warn("Google profile exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WithCause(err)
	}

	return a.resolver.Resolve(ctx, profile.ID, profile.Email, profile.EmailVerified)
}
