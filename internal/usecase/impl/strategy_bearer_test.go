package impl

import (
	"context"
	"testing"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	mockRepo "evently/internal/mocks/repository"
	mockSvc "evently/internal/mocks/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bearerFixtures struct {
	auth         usecase.Authenticator
	tokenService *mockSvc.MockTokenService
	userRepo     *mockRepo.MockUserRepository
}

func createTestBearerAuthenticator(t *testing.T) bearerFixtures {
	tokenService := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return bearerFixtures{
		auth: NewBearerAuthenticator(BearerAuthenticatorParams{
			TokenService: tokenService,
			UserRepo:     userRepo,
			Logger:       newDiscardLogger(),
		}),
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

func TestBearerAuthenticator_Success(t *testing.T) {
	fx := createTestBearerAuthenticator(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@b.com"}

	fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.auth.Authenticate(ctx, usecase.BearerCredentials{Token: "tok"})
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestBearerAuthenticator_EmptyToken(t *testing.T) {
	fx := createTestBearerAuthenticator(t)

	_, err := fx.auth.Authenticate(context.Background(), usecase.BearerCredentials{})
	assert.True(t, errors.Is(err, domainerrors.ErrNoToken))
}

func TestBearerAuthenticator_InvalidOrExpiredToken(t *testing.T) {
	for _, tokenErr := range []error{domainerrors.ErrTokenInvalid, domainerrors.ErrTokenExpired} {
		fx := createTestBearerAuthenticator(t)

		fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, tokenErr)

		_, err := fx.auth.Authenticate(context.Background(), usecase.BearerCredentials{Token: "tok"})
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	}
}

func TestBearerAuthenticator_IdentityGone(t *testing.T) {
	fx := createTestBearerAuthenticator(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: id}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.auth.Authenticate(ctx, usecase.BearerCredentials{Token: "tok"})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestBearerAuthenticator_RecordsMetrics(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	auth := NewBearerAuthenticator(BearerAuthenticatorParams{
		TokenService: tokenService,
		UserRepo:     userRepo,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	tokenService.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrTokenInvalid)
	metrics.EXPECT().RecordAuthentication("bearer", service.AuthResultFailure).Return()

	_, err := auth.Authenticate(context.Background(), usecase.BearerCredentials{Token: "bad"})
	assert.Error(t, err)
	assert.Equal(t, usecase.StrategyBearer, auth.Strategy())
}
