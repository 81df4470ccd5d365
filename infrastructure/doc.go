// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-backed cache for multi-instance deployments
// - cache/sqlite: File-backed cache for durable single-host deployments
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger
//
// All cache backends implement the same Get/Set/Delete contract; the merged
// episode snapshot is stored as one JSON blob under a fixed key, so any
// backend that can hold a byte value works. A zero TTL means "keep until the
// next refresh overwrites it".
package infrastructure
