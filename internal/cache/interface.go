// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package cache

import "time"

// Cacher defines the interface for cache implementations.
// Both Cache (TTL-based) and LFUCache implement this interface, so the
// response cache strategy can be switched through configuration
// (CACHE_TYPE=ttl|lfu) without touching the handlers.
//
// Usage:
//
//	var c Cacher = NewTTL(5 * time.Minute)
//
//	// Or, for dashboards where a few filter combinations dominate:
//	var c Cacher = NewLFU(10000, 5*time.Minute)
//
//	c.Set(key, value)
//	if val, ok := c.Get(key); ok {
//	    // Use cached value
//	}
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

// CacheType represents the type of cache to create.
type CacheType string

const (
	// CacheTypeTTL is a simple TTL-based cache (default). Entries
	// expire after a fixed duration; memory is bounded only by the
	// variety of keys seen within one TTL window.
	CacheTypeTTL CacheType = "ttl"

	// CacheTypeLFU is a capacity-bounded Least Frequently Used cache.
	// Suited to dashboards where a handful of filter combinations
	// account for most requests.
	CacheTypeLFU CacheType = "lfu"
)

// Options holds configuration for creating a cache via NewCacher.
type Options struct {
	// Type selects the cache implementation (ttl or lfu).
	Type CacheType

	// TTL is the default time-to-live for cache entries.
	TTL time.Duration

	// Capacity is the maximum number of entries (LFU only).
	// Default: 10000.
	Capacity int
}

// NewCacher creates a cache based on the options. Unknown or empty
// types fall back to the TTL cache.
//
// Example:
//
//	c := cache.NewCacher(cache.Options{
//	    Type: cache.CacheType(cfg.Cache.Type),
//	    TTL:  cfg.Cache.TTL,
//	})
func NewCacher(opts Options) Cacher {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}

	switch opts.Type {
	case CacheTypeLFU:
		capacity := opts.Capacity
		if capacity <= 0 {
			capacity = 10000
		}
		return &lfuCacheAdapter{LFUCache: NewLFUCache(capacity, opts.TTL)}
	default:
		return New(opts.TTL)
	}
}

// NewTTL creates a new TTL-based cache (same as New).
// Convenience function for explicit cache type selection.
func NewTTL(ttl time.Duration) Cacher {
	return New(ttl)
}

// NewLFU creates a new LFU cache.
// Convenience function for explicit cache type selection.
func NewLFU(capacity int, ttl time.Duration) Cacher {
	return &lfuCacheAdapter{LFUCache: NewLFUCache(capacity, ttl)}
}

// lfuCacheAdapter adapts LFUCache to implement the Cacher interface.
// LFUCache has slightly different method signatures.
type lfuCacheAdapter struct {
	*LFUCache
}

// Delete implements Cacher.Delete for LFUCache.
func (a *lfuCacheAdapter) Delete(key string) {
	a.LFUCache.Delete(key)
}

// GetStats implements Cacher.GetStats for LFUCache.
func (a *lfuCacheAdapter) GetStats() Stats {
	hits, misses, size := a.Stats()
	return Stats{
		Hits:      hits,
		Misses:    misses,
		TotalKeys: int64(size),
	}
}

// Verify interface implementations at compile time
var (
	_ Cacher = (*Cache)(nil)
	_ Cacher = (*lfuCacheAdapter)(nil)
)
