package messages

import (
	"context"
	"sync"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
)

// pending is one missing text waiting to be filled.
type pending struct {
	Key    string // Message key
	Source string // Text in the source language
	Hash   string // HashText(Source)
}

// lookupCached resolves pending texts from the cache, querying unique hashes
// concurrently. It returns hash → cached text and the misses in input order,
// deduplicated by hash.
func lookupCached(ctx context.Context, c cache.Cache, items []pending, target alltools.Language) (map[string]string, []pending) {
	found := make(map[string]string)
	if c == nil || len(items) == 0 {
		return found, dedupe(items, found)
	}

	unique := make(map[string]struct{}, len(items))
	for _, item := range items {
		unique[item.Hash] = struct{}{}
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for hash := range unique {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			val, ok := c.Get(ctx, CacheKey(h, target))
			results <- lookupResult{hash: h, value: val, found: ok}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		if result.found {
			found[result.hash] = result.value
		}
	}

	return found, dedupe(items, found)
}

// lookupSequential is lookupCached without goroutines, for small batches.
func lookupSequential(ctx context.Context, c cache.Cache, items []pending, target alltools.Language) (map[string]string, []pending) {
	found := make(map[string]string)
	if c != nil {
		for _, item := range items {
			if _, done := found[item.Hash]; done {
				continue
			}
			if val, ok := c.Get(ctx, CacheKey(item.Hash, target)); ok {
				found[item.Hash] = val
			}
		}
	}
	return found, dedupe(items, found)
}

// dedupe returns the items whose hash is not in found, one per hash, in input order.
func dedupe(items []pending, found map[string]string) []pending {
	var misses []pending
	seen := make(map[string]bool)
	for _, item := range items {
		if _, ok := found[item.Hash]; ok || seen[item.Hash] {
			continue
		}
		seen[item.Hash] = true
		misses = append(misses, item)
	}
	return misses
}
