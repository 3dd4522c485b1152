package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(ttl time.Duration) (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(ttl)
	c.now = clock.Now
	return c, clock
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)

	// Test set and get
	err := c.Set(ctx, "key1", "value1")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get(ctx, "key1")
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "value1" {
		t.Errorf("Get returned %q, want %q", val, "value1")
	}

	// Test missing key
	val, ok = c.Get(ctx, "nonexistent")
	if ok {
		t.Error("Get should return false for missing key")
	}
	if val != "" {
		t.Errorf("Get should return empty string for missing key, got %q", val)
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(time.Minute)

	c.Set(ctx, "key1", "value1")

	// Should be available immediately
	val, ok := c.Get(ctx, "key1")
	if !ok || val != "value1" {
		t.Error("Value should be available immediately after set")
	}

	clock.Advance(time.Minute + time.Second)

	// Should be expired now
	val, ok = c.Get(ctx, "key1")
	if ok {
		t.Error("Value should be expired after TTL")
	}
	if val != "" {
		t.Errorf("Expired value should return empty string, got %q", val)
	}
	if c.Len() != 0 {
		t.Error("Expired entry should be removed on read")
	}
}

func TestMemoryCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(0)

	c.Set(ctx, "key1", "value1")
	clock.Advance(365 * 24 * time.Hour)

	val, ok := c.Get(ctx, "key1")
	if !ok || val != "value1" {
		t.Error("Value should be available with no TTL")
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)

	c.Set(ctx, "key1", "value1")
	c.Set(ctx, "key1", "value2")

	val, ok := c.Get(ctx, "key1")
	if !ok {
		t.Error("Key should exist")
	}
	if val != "value2" {
		t.Errorf("Value should be overwritten, got %q, want %q", val, "value2")
	}
}

func TestMemoryCache_Len(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)

	if c.Len() != 0 {
		t.Errorf("Empty cache should have length 0, got %d", c.Len())
	}

	c.Set(ctx, "key1", "value1")
	c.Set(ctx, "key2", "value2")

	if c.Len() != 2 {
		t.Errorf("Cache should have length 2, got %d", c.Len())
	}

	c.Delete("key1")
	if c.Len() != 1 {
		t.Errorf("Cache should have length 1 after delete, got %d", c.Len())
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)

	c.Set(ctx, "key1", "value1")
	c.Set(ctx, "key2", "value2")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Cleared cache should have length 0, got %d", c.Len())
	}

	_, ok := c.Get(ctx, "key1")
	if ok {
		t.Error("Cleared cache should not contain any keys")
	}
}

func TestMemoryCache_EntriesSkipsExpired(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(time.Minute)

	c.Set(ctx, "old", "1")
	clock.Advance(2 * time.Minute)
	c.Set(ctx, "new", "2")

	entries, err := c.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 || entries["new"] != "2" {
		t.Errorf("Unexpected entries: %v", entries)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)
	var wg sync.WaitGroup

	// Concurrent writes
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Set(ctx, key, "value")
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Get(ctx, key)
		}(i)
	}

	wg.Wait()
}

func TestError(t *testing.T) {
	tests := []struct {
		err      *Error
		expected string
	}{
		{&Error{Op: "ping"}, "cache error: ping"},
		{&Error{Op: "scan", Cause: context.Canceled}, "cache error: scan: context canceled"},
		{&Error{Op: "set", Key: "k", Cause: context.Canceled}, `cache error: set "k": context canceled`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.expected)
			}
		})
	}
}

var _ Cache = (*MemoryCache)(nil)
