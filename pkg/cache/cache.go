// Package cache stores generated layouts and rendered artifacts.
//
// Layout generation is deterministic for a given kind, grid size and seed,
// so results can be cached by those inputs and reused across CLI runs or
// API requests. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: never stores anything (--no-cache)
//
// Keys are derived by a [Keyer] so that callers never build key strings by
// hand. A [ScopedKeyer] prefixes every key for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default expiries for cached entries.
const (
	// TTLLayout applies to generated layouts.
	TTLLayout = 30 * 24 * time.Hour

	// TTLArtifact applies to rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)
