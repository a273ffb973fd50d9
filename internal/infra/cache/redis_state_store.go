package cache

import (
	"context"
	"time"

	"evently/internal/domain/service"
	"evently/internal/errors"

	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "evently:oauth:state:"

// redisStateStore keeps OAuth state in Redis so any instance can finish a
// flow another instance started.
type redisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore creates the Redis OAuth state adapter.
func NewRedisStateStore(client *redis.Client) service.OAuthStateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, stateKeyPrefix+state, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "save oauth state")
	}

	return nil
}

// Consume uses GETDEL so two concurrent callbacks cannot both succeed.
func (s *redisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, stateKeyPrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "consume oauth state")
	}

	return true, nil
}
