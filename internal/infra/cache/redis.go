// Package cache holds the Redis-backed adapters.
package cache

import (
	"context"
	"log/slog"
	"strings"

	"evently/config"
	"evently/internal/domain/lifecycle"
	"evently/internal/domain/service"
	"evently/internal/errors"
	"evently/internal/infra/auth/google"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}

		return redis.NewClient(opt), nil
	}

	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// StateStoreParams defines the dependencies for NewStateStore.
type StateStoreParams struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
	Logger    *slog.Logger
}

// NewStateStore returns a Redis-backed OAuth state store when redis.url is
// configured, and an in-process store otherwise.
func NewStateStore(params StateStoreParams) (service.OAuthStateStore, error) {
	if params.Config.Redis == nil || strings.TrimSpace(params.Config.Redis.URL) == "" {
		params.Logger.Info("Redis not configured, keeping OAuth state in memory")

		return google.NewMemoryStateStore(), nil
	}

	client, err := Connect(params.Config.Redis.URL)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to redis", slog.String("addr", client.Options().Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStateStore(client), nil
}
