// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/errors"
	"evently/internal/usecase"
)

// instrumentedAuthenticator records the outcome of every attempt.
type instrumentedAuthenticator struct {
	next    usecase.Authenticator
	metrics service.AuthMetrics
}

func withMetrics(next usecase.Authenticator, metrics service.AuthMetrics) usecase.Authenticator {
	if metrics == nil {
		return next
	}

	return &instrumentedAuthenticator{next: next, metrics: metrics}
}

func (a *instrumentedAuthenticator) Strategy() usecase.Strategy {
	return a.next.Strategy()
}

func (a *instrumentedAuthenticator) Authenticate(ctx context.Context, creds usecase.Credentials) (*entity.User, error) {
	user, err := a.next.Authenticate(ctx, creds)

	result := service.AuthResultSuccess
	if err != nil {
		result = service.AuthResultFailure
	}
	a.metrics.RecordAuthentication(a.next.Strategy().String(), result)

	return user, err
}

func wrongCredentials(want usecase.Strategy, got usecase.Credentials) error {
	gotName := "<nil>"
	if got != nil {
		gotName = got.Strategy().String()
	}

	return domainerrors.ErrInternalError.WithCause(
		errors.Errorf("%s authenticator received %s credentials", want, gotName),
	)
}
