package google

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"evently/config"
	"evently/internal/errors"
)

const nonceBytes = 24

// StateSigner produces and checks OAuth state values of the form
// nonce.signature, where signature is an HMAC-SHA256 of the nonce.
type StateSigner struct {
	key []byte
}

// NewStateSigner keys the signer with the session secret, falling back to
// the token secret when no session secret is configured.
func NewStateSigner(cfg *config.Config) *StateSigner {
	key := cfg.SecretKey.Session
	if key == "" {
		key = cfg.SecretKey.Access
	}

	return &StateSigner{key: []byte(key)}
}

// Generate returns a fresh signed state.
func (s *StateSigner) Generate() (string, error) {
	nonce := make([]byte, nonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to read random nonce")
	}

	encoded := base64.RawURLEncoding.EncodeToString(nonce)

	return encoded + "." + s.sign(encoded), nil
}

// Verify reports whether state carries a valid signature.
func (s *StateSigner) Verify(state string) bool {
	nonce, sig, ok := strings.Cut(state, ".")
	if !ok || nonce == "" || sig == "" {
		return false
	}

	return hmac.Equal([]byte(sig), []byte(s.sign(nonce)))
}

func (s *StateSigner) sign(nonce string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(nonce))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
