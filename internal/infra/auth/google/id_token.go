package google

import (
	"context"
	"log/slog"

	"evently/internal/domain/service"
	"evently/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// Validator verifies a Google-signed ID token for the given audience.
// idtoken.Validate is the production implementation.
type Validator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// idTokenVerifier checks ID tokens returned by the token endpoint.
type idTokenVerifier struct {
	clientID string
	validate Validator
	logger   *slog.Logger
}

// Verify validates signature, audience, issuer and expiry, and maps the
// payload onto an OAuthUser.
func (v *idTokenVerifier) Verify(ctx context.Context, rawIDToken string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, rawIDToken, v.clientID)
	if err != nil {
		v.logger.Error("Failed to validate ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, errors.New("ID token has no subject")
	}

	user := &service.OAuthUser{ID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	v.logger.Debug("Google ID token verified",
		slog.String("subject", user.ID),
		slog.Bool("hasEmail", user.Email != ""))

	return user, nil
}
