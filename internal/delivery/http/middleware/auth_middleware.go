package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddleware resolves the bearer token of a request to an identity.
type AuthMiddleware struct {
	bearer usecase.Authenticator
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Bearer usecase.Authenticator `name:"bearer"`
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{bearer: params.Bearer}
}

// Authenticate rejects the request with ErrNoToken when no bearer token is
// sent and ErrUnauthorized when it does not resolve to an identity.
// On success the identity is available through GetUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrNoToken
		}

		ctx := c.Request().Context()
		user, err := m.bearer.Authenticate(ctx, usecase.BearerCredentials{Token: token})
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// GetUser returns the identity attached by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetUser(c)
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
