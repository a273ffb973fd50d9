// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of Event.Date.
const DateLayout = time.DateOnly

// Event is a record owned by exactly one User.
type Event struct {
	ID          uuid.UUID
	Name        string
	Date        time.Time // Calendar date, UTC midnight.
	Time        string    // Free-form time of day, e.g. "10:00" or "10:00 AM".
	Location    string
	Description string
	Category    Category
	OwnerID     uuid.UUID // Set from the authenticated caller, immutable.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID owns the event.
func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.OwnerID == userID
}

// ParseEventDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date at UTC midnight.
func ParseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	ts = ts.UTC()

	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
