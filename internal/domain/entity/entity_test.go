package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	assert.Empty(t, NormalizeEmail("   "))
}

func TestValidEmail(t *testing.T) {
	for _, email := range []string{"a@b.com", "first.last@sub.example.org"} {
		assert.True(t, ValidEmail(email), email)
	}
	for _, email := range []string{"", "a@b", "ab.com", "@b.com"} {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestUser_CanAuthenticate(t *testing.T) {
	assert.False(t, (&User{Email: "a@b.com"}).CanAuthenticate())
	assert.True(t, (&User{PasswordHash: "h"}).CanAuthenticate())
	assert.True(t, (&User{GoogleID: "sub"}).CanAuthenticate())

	both := &User{PasswordHash: "h", GoogleID: "sub"}
	assert.True(t, both.HasPassword())
	assert.True(t, both.HasExternalIdentity())
}

func TestEvent_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	event := &Event{OwnerID: owner}

	assert.True(t, event.IsOwnedBy(owner))
	assert.False(t, event.IsOwnedBy(uuid.New()))
}

func TestParseEventDate(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []string{
		"2024-01-01",
		" 2024-01-01 ",
		"2024-01-01T00:00:00Z",
		"2024-01-01T18:30:00Z",
		"2024-01-02T01:00:00+02:00",
	}
	for _, raw := range tests {
		got, err := ParseEventDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s parsed as %s", raw, got)
	}

	for _, raw := range []string{"", "01/01/2024", "2024-13-01", "tomorrow"} {
		_, err := ParseEventDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestCategory(t *testing.T) {
	for _, c := range []Category{CategoryConference, CategoryWorkshop, CategoryParty, CategoryWebinar, CategoryOther} {
		assert.True(t, c.IsValid(), c)
		assert.Equal(t, c, ParseCategory(c.String()))
	}

	assert.False(t, Category("Party").IsValid())
	assert.Equal(t, CategoryOther, ParseCategory(""))
	assert.Equal(t, CategoryOther, ParseCategory("meetup"))
}
