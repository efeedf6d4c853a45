package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache contract used by the repositories.
type Cache interface {
	// Get unmarshals the cached JSON into dest.
	// found == false means a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value as JSON under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
