package google

import (
	"context"
	"sync"
	"time"

	"evently/internal/domain/service"
)

// memoryStateStore keeps OAuth state in process memory. It is used when no
// Redis is configured and only works for a single instance.
type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
	now    func() time.Time
}

// NewMemoryStateStore creates an in-process OAuthStateStore.
func NewMemoryStateStore() service.OAuthStateStore {
	return newMemoryStateStore(time.Now)
}

func newMemoryStateStore(now func() time.Time) *memoryStateStore {
	return &memoryStateStore{
		states: make(map[string]time.Time),
		now:    now,
	}
}

// Save stores a state parameter with expiration time
func (s *memoryStateStore) Save(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state] = s.now().Add(ttl)

	// Clean up expired states
	s.cleanupExpiredStates()

	return nil
}

// Consume removes the state and reports whether it was still valid.
func (s *memoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, exists := s.states[state]
	if !exists {
		return false, nil
	}

	// Remove used state to prevent replay attacks
	delete(s.states, state)

	return s.now().Before(expiry), nil
}

// cleanupExpiredStates removes expired state parameters. Callers hold mu.
func (s *memoryStateStore) cleanupExpiredStates() {
	now := s.now()
	for state, expiry := range s.states {
		if !now.Before(expiry) {
			delete(s.states, state)
		}
	}
}
