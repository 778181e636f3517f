package ports

import (
	"context"
	"time"
)

// CachePort holds immutable user records, so entries are only written
// and expire by TTL.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
