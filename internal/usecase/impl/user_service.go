package impl

import (
	"context"
	"log/slog"
	"time"

	"evently/config"
	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/errors"
	"evently/internal/usecase"

	"go.uber.org/fx"
)

// defaultStateTTL bounds how long a delegated login may take.
const defaultStateTTL = 10 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	stateSigner  service.OAuthStateSigner
	stateStore   service.OAuthStateStore
	local        usecase.Authenticator
	google       usecase.Authenticator
	stateTTL     time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	StateSigner  service.OAuthStateSigner
	StateStore   service.OAuthStateStore
	Local        usecase.Authenticator `name:"local"`
	Google       usecase.Authenticator `name:"google"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	stateTTL := defaultStateTTL
	if params.Config != nil && params.Config.GoogleOAuth != nil && params.Config.GoogleOAuth.StateTTL > 0 {
		stateTTL = params.Config.GoogleOAuth.StateTTL
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		stateSigner:  params.StateSigner,
		stateStore:   params.StateStore,
		local:        params.Local,
		google:       params.Google,
		stateTTL:     stateTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !entity.ValidEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if len(input.Password) > entity.MaxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong
	}

	srv.log(ctx).Debug("Starting registration")

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	// A concurrent registration of the same email surfaces here as ErrUserAlreadyExists.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return srv.issue(newUser)
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if entity.NormalizeEmail(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	user, err := srv.local.Authenticate(ctx, usecase.LocalCredentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return srv.issue(user)
}

// BeginDelegatedLogin stores a signed state and builds the consent URL.
func (srv *userService) BeginDelegatedLogin(ctx context.Context) (string, error) {
	state, err := srv.stateSigner.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	if err := srv.stateStore.Save(ctx, state, srv.stateTTL); err != nil {
		return "", errors.Wrap(err, "failed to save oauth state")
	}

	return srv.oauthService.BuildAuthorizationURL(state), nil
}

// CompleteDelegatedLogin handles the provider callback.
func (srv *userService) CompleteDelegatedLogin(ctx context.Context, input *usecase.DelegatedLoginInput) (*usecase.AuthOutput, error) {
	if input.Error != "" {
		return nil, domainerrors.ErrOAuthFailed.WithCause(errors.Errorf("provider returned error: %s", input.Error))
	}
	if input.Code == "" || input.State == "" {
		return nil, domainerrors.ErrOAuthFailed.WithCause(errors.New("callback without code or state"))
	}

	user, err := srv.google.Authenticate(ctx, usecase.DelegatedCredentials{
		Code:  input.Code,
		State: input.State,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Google login completed", slog.Any("userID", user.ID))

	return srv.issue(user)
}

func (srv *userService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
