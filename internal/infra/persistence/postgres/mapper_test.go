package postgres

import (
	"testing"
	"time"

	"evently/internal/domain/entity"
	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_EmptyStringsBecomeNULL(t *testing.T) {
	user := &entity.User{ID: uuid.New(), GoogleID: "g-1"}

	m := fromUserDomain(user)
	require.NotNil(t, m)
	assert.Nil(t, m.Email)
	assert.Nil(t, m.PasswordHash)
	require.NotNil(t, m.GoogleID)
	assert.Equal(t, "g-1", *m.GoogleID)

	back := toUserDomain(m)
	assert.Equal(t, user, back)
}

func TestUserMapper_Nil(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestEventMapper_RoundTrip(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	event := &entity.Event{
		ID:          uuid.New(),
		Name:        "Go meetup",
		Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Time:        "19:00",
		Location:    "Taipei",
		Description: "talks",
		Category:    entity.CategoryWorkshop,
		OwnerID:     uuid.New(),
	}

	m := fromEventDomain(event)
	assert.Equal(t, "workshop", m.Category)

	// The driver may hand DATE back in the session zone
	m.Date = time.Date(2026, 5, 1, 0, 0, 0, 0, taipei)

	back := toEventDomain(m)
	assert.Equal(t, event.Date, back.Date)
	assert.Equal(t, event.Category, back.Category)
	assert.Equal(t, event.OwnerID, back.OwnerID)
}

func TestEventMapper_UnknownCategoryReadsAsOther(t *testing.T) {
	back := toEventDomain(&model.EventModel{Category: "gala"})
	assert.Equal(t, entity.CategoryOther, back.Category)
}
