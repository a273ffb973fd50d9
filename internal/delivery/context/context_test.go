package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "abc")

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestUser(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Email: "a@b.com"}
	SetUser(c, user)

	got, ok := GetUser(c)
	assert.True(t, ok)
	assert.Same(t, user, got)
}
