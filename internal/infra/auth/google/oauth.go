// Package google implements the Google side of delegated sign-in: the
// authorization-code flow, ID token verification and OAuth state handling.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"evently/config"
	"evently/internal/domain/service"
	"evently/internal/errors"

	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	oauthConfig *oauth2.Config
	verifier    *idTokenVerifier
	userInfoURL string
	logger      *slog.Logger
}

// Option customizes an OAuthService.
type Option func(*OAuthService)

// WithEndpoint overrides the provider's authorization and token endpoints.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(s *OAuthService) {
		s.oauthConfig.Endpoint = endpoint
	}
}

// WithValidator replaces the ID token validator.
func WithValidator(validate Validator) Option {
	return func(s *OAuthService) {
		s.verifier.validate = validate
	}
}

// WithUserInfoURL overrides the userinfo endpoint used when the token
// response carries no ID token.
func WithUserInfoURL(u string) Option {
	return func(s *OAuthService) {
		s.userInfoURL = u
	}
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return newOAuthService(cfg, logger)
}

func newOAuthService(cfg *config.Config, logger *slog.Logger, opts ...Option) *OAuthService {
	var oc config.GoogleOAuthConfig
	if cfg.GoogleOAuth != nil {
		oc = *cfg.GoogleOAuth
	}

	s := &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     oc.ClientID,
			ClientSecret: oc.ClientSecret,
			RedirectURL:  oc.RedirectURI,
			Scopes:       strings.Fields(oc.Scopes),
			Endpoint:     googleendpoint.Endpoint,
		},
		verifier: &idTokenVerifier{
			clientID: oc.ClientID,
			validate: idtoken.Validate,
			logger:   logger,
		},
		userInfoURL: googleUserInfoURL,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BuildAuthorizationURL constructs the Google consent URL carrying state.
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchUser exchanges an authorization code and returns the verified profile.
// The ID token is preferred; the userinfo endpoint is the fallback.
func (s *OAuthService) FetchUser(ctx context.Context, code string) (*service.OAuthUser, error) {
	if code == "" {
		return nil, errors.New("authorization code is empty")
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		return s.verifier.Verify(ctx, rawIDToken)
	}

	s.logger.Debug("Token response has no ID token, falling back to userinfo")

	return s.getUserInfo(ctx, token)
}

// getUserInfo retrieves the profile with the access token.
func (s *OAuthService) getUserInfo(ctx context.Context, token *oauth2.Token) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := s.oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if googleUser.Sub == "" {
		return nil, errors.New("user info response has no subject")
	}

	return &service.OAuthUser{
		ID:            googleUser.Sub,
		Email:         googleUser.Email,
		EmailVerified: googleUser.EmailVerified,
	}, nil
}
