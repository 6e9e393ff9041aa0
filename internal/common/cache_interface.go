package common

import "time"

// CacheInterface defines the contract for cache implementations.
// Values are serialized strings; callers own (de)serialization so a corrupt
// entry can be treated as a miss instead of an error.
//
// Set and Delete are best-effort: failures are logged by the implementation
// and never surfaced, since the cache is a pure accelerator over the store.
type CacheInterface interface {
	// Set stores a value in cache with the given key and TTL
	Set(key string, value string, ttl time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, "" and false otherwise
	Get(key string) (string, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// Ping reports whether the cache backend is reachable
	Ping() error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
