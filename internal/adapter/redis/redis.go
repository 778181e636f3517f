package redis

import (
	"context"
	"errors"
	"time"

	"github.com/sm8ta/registration_microservice/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) ports.CachePort {
	return &RedisAdapter{
		client: client,
	}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

var _ ports.CachePort = (*RedisAdapter)(nil)

// NoopAdapter is used when no Redis address is configured.
type NoopAdapter struct{}

func NewNoopAdapter() ports.CachePort {
	return NoopAdapter{}
}

func (NoopAdapter) Get(context.Context, string) ([]byte, error) { return nil, ErrCacheMiss }

func (NoopAdapter) Set(context.Context, string, []byte, time.Duration) error { return nil }

var _ ports.CachePort = NoopAdapter{}
