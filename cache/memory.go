package cache

import (
	"context"
	"sync"
	"time"
)

// cacheEntry holds a cached value with its timestamp.
type cacheEntry struct {
	value     string
	timestamp time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL support.
type MemoryCache struct {
	entries map[string]cacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL.
// If ttl is 0 or negative, entries never expire.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) expired(entry cacheEntry, now time.Time) bool {
	return c.ttl > 0 && now.Sub(entry.timestamp) > c.ttl
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.expired(entry, c.now()) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, ok := c.entries[key]; ok && c.expired(current, c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.value, true
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		timestamp: c.now(),
	}
	return nil
}

// Delete removes a key.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries in the cache (including expired ones).
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Entries returns all non-expired entries as key-value pairs.
func (c *MemoryCache) Entries(_ context.Context) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(c.entries))
	now := c.now()

	for key, entry := range c.entries {
		if c.expired(entry, now) {
			continue
		}
		result[key] = entry.value
	}

	return result, nil
}

var _ Enumerable = (*MemoryCache)(nil)
