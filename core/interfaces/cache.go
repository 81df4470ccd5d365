// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for the durable snapshot store.
// Implementations can be Redis, SQLite, in-memory, or any other backend.
//
// The refresh orchestrator is the only writer; it stores the merged podcast
// snapshot as a JSON blob under a fixed key with no expiry. Readers may
// observe either the previous or the newly-written snapshot; overwrites are
// full-object replacements, so no locking is needed.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value is stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
