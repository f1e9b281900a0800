// Package cache stores rendered graph artifacts keyed by their DOT source,
// so unchanged graphs are never laid out twice. Backends: file (default),
// Redis, and a null cache for disabling caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives the cache key for a rendered artifact from its DOT
// source and output format. Equal DOT text always maps to the same key, so
// re-rendering an unchanged graph is a cache hit.
func ArtifactKey(dot, format string) string {
	return "artifact:" + format + ":" + Hash([]byte(dot))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
