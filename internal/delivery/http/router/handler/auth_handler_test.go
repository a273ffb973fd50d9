package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"evently/config"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	mockUC "evently/internal/mocks/usecase"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	echo   *echo.Echo
	userUC *mockUC.MockUserUsecase
	user   *entity.User
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	userUC := mockUC.NewMockUserUsecase(t)
	cfg := &config.Config{}
	cfg.Client.URL = "http://localhost:8000/"

	h := NewAuthHandler(AuthHandlerParams{
		UserUC: userUC,
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	user := &entity.User{ID: uuid.New(), Email: "a@b.com"}

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/google", h.GoogleLogin)
	e.GET("/api/auth/google/callback", h.GoogleCallback)
	e.GET("/api/auth/user", h.CurrentUser, asUser(user))
	e.GET("/api/auth/logout", h.Logout)

	return authHandlerFixtures{echo: e, userUC: userUC, user: user}
}

func TestAuthHandler_Register(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.userUC.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{Email: "a@b.com", Password: "pw1"}).
		Return(&usecase.AuthOutput{Token: "tok", User: fx.user}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/api/auth/register", `{"email":"a@b.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body AuthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "tok", body.Token)
	assert.Equal(t, fx.user.ID, body.User.ID)
	assert.Equal(t, "a@b.com", body.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	for _, body := range []string{`{"email":"a@b.com"}`, `{"password":"pw"}`, `{}`, `not json`} {
		fx := createTestAuthHandler(t)

		rec := doRequest(fx.echo, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"message":"Please enter all fields","code":"VALIDATION_FAILED"}`, rec.Body.String(), body)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.userUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doRequest(fx.echo, http.MethodPost, "/api/auth/register", `{"email":"a@b.com","password":"pw1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.com", Password: "pw1"}).
		Return(&usecase.AuthOutput{Token: "tok", User: fx.user}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body AuthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Logged in successfully", body.Message)
	assert.Equal(t, fx.user.ID, body.User.ID)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{err: domainerrors.ErrInvalidCredentials, message: "Invalid credentials"},
		{err: domainerrors.ErrExternalOnly, message: "This email is registered via Google. Please use Google login."},
	}

	for _, tt := range tests {
		fx := createTestAuthHandler(t)
		fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tt.err)

		rec := doRequest(fx.echo, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct{ Message string }
		decodeBody(t, rec, &body)
		assert.Equal(t, tt.message, body.Message)
	}
}

func TestAuthHandler_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("pq: too many connections"))

	rec := doRequest(fx.echo, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.userUC.EXPECT().BeginDelegatedLogin(mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=s", nil)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/google", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=s", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_Success(t *testing.T) {
	fx := createTestAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "g+1@b.com", GoogleID: "sub"}

	fx.userUC.EXPECT().CompleteDelegatedLogin(mock.Anything, &usecase.DelegatedLoginInput{Code: "c", State: "s"}).
		Return(&usecase.AuthOutput{Token: "a.b.c", User: user}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/google/callback?code=c&state=s", "")
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.True(t, strings.HasPrefix(location, "http://localhost:8000/index.html#"), location)

	parsed, err := url.Parse(location)
	require.NoError(t, err)
	assert.Empty(t, parsed.RawQuery, "token must not travel in the query")

	fragment, err := url.ParseQuery(parsed.EscapedFragment())
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", fragment.Get("token"))
	assert.Equal(t, "g+1@b.com", fragment.Get("email"))
}

func TestAuthHandler_GoogleCallback_Failure(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.userUC.EXPECT().CompleteDelegatedLogin(mock.Anything, &usecase.DelegatedLoginInput{State: "s", Error: "access_denied"}).
		Return(nil, domainerrors.ErrOAuthFailed)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/google/callback?error=access_denied&state=s", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:8000/index.html?authStatus=failed", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/user", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+fx.user.ID.String()+`","email":"a@b.com"}`, rec.Body.String())
}

func TestAuthHandler_CurrentUser_WithoutIdentity(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{
		UserUC: mockUC.NewMockUserUsecase(t),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	e := newTestEcho()
	e.GET("/api/auth/user", h.CurrentUser)

	rec := doRequest(e, http.MethodGet, "/api/auth/user", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
}
