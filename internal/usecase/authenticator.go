package usecase

import (
	"context"

	"evently/internal/domain/entity"
)

// Strategy names one way of proving an identity.
type Strategy string

const (
	StrategyLocal  Strategy = "local"
	StrategyGoogle Strategy = "google"
	StrategyBearer Strategy = "bearer"
)

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// Credentials is the input of exactly one Strategy.
type Credentials interface {
	Strategy() Strategy
}

// LocalCredentials is an email and password pair.
type LocalCredentials struct {
	Email    string
	Password string
}

// Strategy implements Credentials.
func (LocalCredentials) Strategy() Strategy { return StrategyLocal }

// DelegatedCredentials is the authorization code and state returned by the provider.
type DelegatedCredentials struct {
	Code  string
	State string
}

// Strategy implements Credentials.
func (DelegatedCredentials) Strategy() Strategy { return StrategyGoogle }

// BearerCredentials is a previously issued token.
type BearerCredentials struct {
	Token string
}

// Strategy implements Credentials.
func (BearerCredentials) Strategy() Strategy { return StrategyBearer }

// Authenticator proves an identity with one kind of Credentials.
// Passing credentials of another strategy is an internal error.
type Authenticator interface {
	Strategy() Strategy
	Authenticate(ctx context.Context, creds Credentials) (*entity.User, error)
}
