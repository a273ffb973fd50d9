// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/errors"
)

// tokenClaims is the signed payload: the identity ID plus the registered
// iat/exp/iss claims.
type tokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC key for signing tokens.
	ttl    time.Duration    // Time-to-live for issued tokens.
	issuer string           // Value of the iss claim.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Hour
	issuer := ""
	if cfg.Token != nil {
		if cfg.Token.TTL > 0 {
			ttl = cfg.Token.TTL
		}
		issuer = cfg.Token.Issuer
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// GenerateToken signs an HS256 token for userID.
func (s *jwtService) GenerateToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := tokenClaims{
		ID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and payload shape.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WithCause(err)
		}
		return nil, domainerrors.ErrTokenInvalid.WithCause(err)
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithCause(errors.Wrap(err, "malformed id claim"))
	}

	out := &service.Claims{UserID: userID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
