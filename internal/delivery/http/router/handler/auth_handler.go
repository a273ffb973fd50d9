// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"evently/config"
	deliverycontext "evently/internal/delivery/context"
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/response"
	"evently/internal/delivery/http/validator"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Page of the browser client that receives the delegated-login outcome.
const clientLandingPage = "/index.html"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the identity endpoints under /api/auth.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	clientURL string
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:    params.UserUC,
		clientURL: strings.TrimRight(params.Config.Client.URL, "/"),
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an identity.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

func (h *AuthHandler) bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithCause(err)
	}
	if err := c.Validate(&req); err != nil {
		logInvalidRequest(c, h.logger, err)

		return nil, domainerrors.ErrValidationFailed.WithCause(err)
	}

	return &req, nil
}

// logInvalidRequest records which JSON fields failed validation.
func logInvalidRequest(c echo.Context, logger *slog.Logger, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Debug("Request validation failed",
		slog.Any("fields", validator.FailedFields(err)))
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := h.bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   output.Token,
		User:    toUserResponse(output.User),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := h.bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, AuthResponse{
		Message: "Logged in successfully",
		Token:   output.Token,
		User:    toUserResponse(output.User),
	})
}

// GoogleLogin handles GET /api/auth/google by redirecting to the consent page.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	authURL, err := h.userUC.BeginDelegatedLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles GET /api/auth/google/callback. Every outcome is a
// redirect to the client: the token travels in the URL fragment on success,
// failures only set authStatus=failed.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	output, err := h.userUC.CompleteDelegatedLogin(ctx, &usecase.DelegatedLoginInput{
		Code:  c.QueryParam("code"),
		State: c.QueryParam("state"),
		Error: c.QueryParam("error"),
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Google login failed", slog.Any("error", err))

		return c.Redirect(http.StatusFound, h.failureURL())
	}

	return c.Redirect(http.StatusFound, h.successURL(output))
}

func (h *AuthHandler) successURL(output *usecase.AuthOutput) string {
	fragment := "token=" + url.QueryEscape(output.Token) + "&email=" + url.QueryEscape(output.User.Email)

	return h.clientURL + clientLandingPage + "#" + fragment
}

func (h *AuthHandler) failureURL() string {
	return h.clientURL + clientLandingPage + "?authStatus=failed"
}

// CurrentUser handles GET /api/auth/user.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.JSON(c, http.StatusOK, toUserResponse(user))
}

// Logout handles GET /api/auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Logged out successfully")
}
