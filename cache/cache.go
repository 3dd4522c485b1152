// Package cache provides key/value caches for generated artifacts: rendered
// sitemap documents and machine-filled localized text.
package cache

import (
	"context"
	"fmt"
)

// DefaultKeyPrefix namespaces every key written to a shared backend.
const DefaultKeyPrefix = "alltools:"

// Cache stores string values by key. Implementations are safe for concurrent use.
type Cache interface {
	// Get retrieves a cached value. Returns empty string and false if not found or expired.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value in the cache.
	Set(ctx context.Context, key string, value string) error
}

// Enumerable is a cache that can list its live entries.
type Enumerable interface {
	Cache

	// Entries returns all non-expired entries.
	Entries(ctx context.Context) (map[string]string, error)
}

// Error indicates a cache backend failure.
type Error struct {
	Op    string
	Key   string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Cause != nil:
		return fmt.Sprintf("cache error: %s %q: %v", e.Op, e.Key, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("cache error: %s: %v", e.Op, e.Cause)
	default:
		return fmt.Sprintf("cache error: %s", e.Op)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}
