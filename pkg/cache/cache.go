// Package cache stores rendered artifacts keyed by the content that
// produced them.
//
// Three backends implement [Cache]: [NullCache] when caching is off,
// [FileCache] for the CLI, and [RedisCache] when several processes (for
// example a fleet of API servers) should share results. Keys come from a
// [Keyer] so every backend sees the same key for the same grid and options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}
