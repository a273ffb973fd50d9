package context

import (
	"evently/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key of the authenticated identity.
const KeyUser ContextKey = "user"

// SetUser attaches the authenticated identity to the request.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the identity attached by the auth middleware, if any.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}
