package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evently/config"
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/router"
	"evently/internal/delivery/http/router/handler"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/infra/metrics"
	mockUC "evently/internal/mocks/usecase"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo    *echo.Echo
	userUC  *mockUC.MockUserUsecase
	eventUC *mockUC.MockEventUsecase
	bearer  *mockUC.MockAuthenticator
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Client.URL = "http://localhost:8000"
	cfg.HTTP.MaxRequestBodySize = "1KB"

	userUC := mockUC.NewMockUserUsecase(t)
	eventUC := mockUC.NewMockEventUsecase(t)
	bearer := mockUC.NewMockAuthenticator(t)
	reg := metrics.NewRegistry()
	collector := metrics.NewCollector(reg)

	e := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: collector,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Config: cfg, Logger: logger}),
			EventHandler:   handler.NewEventHandler(handler.EventHandlerParams{EventUC: eventUC, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Bearer: bearer}),
			Gatherer:       reg,
		},
	})

	return serverFixtures{echo: e, userUC: userUC, eventUC: eventUC, bearer: bearer}
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	fx := createTestServer(t)
	id := uuid.NewString()

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/user"},
		{http.MethodPost, "/api/events"},
		{http.MethodGet, "/api/events"},
		{http.MethodGet, "/api/events/" + id},
		{http.MethodPut, "/api/events/" + id},
		{http.MethodDelete, "/api/events/" + id},
	}

	for _, route := range routes {
		rec := serve(fx.echo, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
		assert.Contains(t, rec.Body.String(), "Not authorized, no token")
	}
}

func TestServer_PublicRoutesSkipAuth(t *testing.T) {
	fx := createTestServer(t)

	fx.userUC.EXPECT().BeginDelegatedLogin(mock.Anything).Return("https://accounts.google.com/auth", nil)

	assert.Equal(t, http.StatusOK, serve(fx.echo, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(fx.echo, http.MethodGet, "/api/auth/logout", "", "").Code)
	assert.Equal(t, http.StatusFound, serve(fx.echo, http.MethodGet, "/api/auth/google", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(fx.echo, http.MethodPost, "/api/auth/login", "", `{}`).Code)
}

func TestServer_OwnerScopedFlow(t *testing.T) {
	fx := createTestServer(t)
	owner := &entity.User{ID: uuid.New(), Email: "a@b.com"}
	other := &entity.User{ID: uuid.New(), Email: "b@b.com"}
	eventID := uuid.New()

	fx.bearer.EXPECT().Authenticate(mock.Anything, usecase.BearerCredentials{Token: "owner"}).Return(owner, nil)
	fx.bearer.EXPECT().Authenticate(mock.Anything, usecase.BearerCredentials{Token: "other"}).Return(other, nil)
	fx.eventUC.EXPECT().GetEvent(mock.Anything, owner.ID, eventID).Return(&entity.Event{ID: eventID, OwnerID: owner.ID, Category: entity.CategoryOther}, nil)
	fx.eventUC.EXPECT().GetEvent(mock.Anything, other.ID, eventID).
		Return(nil, domainerrors.ErrEventForbidden.WithMessage("Not authorized to view this event"))

	assert.Equal(t, http.StatusOK, serve(fx.echo, http.MethodGet, "/api/events/"+eventID.String(), "owner", "").Code)

	rec := serve(fx.echo, http.MethodGet, "/api/events/"+eventID.String(), "other", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized to view this event")
}

func TestServer_RequestIDAndCORS(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8000")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "http://localhost:8000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)

	rec := serve(fx.echo, http.MethodPost, "/api/auth/login", "", `{"email":"`+strings.Repeat("a", 2048)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	fx := createTestServer(t)

	serve(fx.echo, http.MethodGet, "/health", "", "")
	rec := serve(fx.echo, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `evently_http_requests_total{method="GET",route="/health",status_code="200"} 1`)
}
