package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns an empty string without error when the key does not exist
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEqual atomically deletes key when it still holds value and
	// reports whether it did.
	DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, error)
	// IncrementWithTTL increments the counter at key and (re)sets its expiry
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
