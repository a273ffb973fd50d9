// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// User is an identity in the credential store. It can sign in with a local
// password, a linked Google account, or both.
type User struct {
	ID           uuid.UUID // Assigned by the store at creation, never changes.
	Email        string    // Normalized address; empty when the provider supplied none.
	PasswordHash string    // bcrypt hash; empty for identities created through Google.
	GoogleID     string    // Google 'sub' claim; empty until the account is linked.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the identity can use the local strategy.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// HasExternalIdentity reports whether the identity is linked to Google.
func (u *User) HasExternalIdentity() bool {
	return u.GoogleID != ""
}

// CanAuthenticate reports whether at least one sign-in path exists for the identity.
func (u *User) CanAuthenticate() bool {
	return u.HasPassword() || u.HasExternalIdentity()
}

// NormalizeEmail trims and lower-cases an address so that lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail checks an already-normalized address against the basic pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
