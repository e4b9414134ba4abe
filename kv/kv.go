package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist or expired.
var ErrNotFound = errors.New("key not found")

// KeyValueStore is a minimal expiring key-value interface. The login rate
// limiter is its only consumer; anything needing richer semantics should
// talk to the database instead.
type KeyValueStore interface {
	// Set stores a key-value pair with an expiration duration.
	Set(ctx context.Context, key, value string, exp time.Duration) error
	// Get retrieves the value associated with the given key.
	Get(ctx context.Context, key string) (string, error)
	// Del removes the key-value pair.
	Del(ctx context.Context, key string) error
	// Incr increments the counter at key and returns the new value. The
	// expiration is applied when the counter is created.
	Incr(ctx context.Context, key string, exp time.Duration) (int64, error)
}
