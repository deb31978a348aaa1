// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package cache provides thread-safe in-memory caching with TTL support.

This package implements the response cache for computed dashboard views.
Filter-and-aggregate passes over the monthly table are cheap but not
free, and dashboard traffic is repetitive, so view payloads are cached
under a key derived from the endpoint and its filter parameters.

# Overview

The package provides two interchangeable implementations behind the
Cacher interface:

  - Cache: TTL expiration with a background sweep (default)
  - LFUCache: capacity-bounded, evicts the least frequently used entry

The strategy is selected at startup via CACHE_TYPE (ttl or lfu); the
handlers only see the Cacher interface.

# Usage Example

Basic caching:

	import "github.com/mercatus-io/mercatus/internal/cache"

	// Create cache with 5-minute default TTL
	c := cache.New(5 * time.Minute)

	// Store value
	c.Set(key, bundle)

	// Retrieve value
	if value, ok := c.Get(key); ok {
	    bundle := value.(models.Bundle)
	    // Use cached bundle
	}

	// Clear entire cache
	c.Clear()

Parameterized cache keys:

	// Two requests with identical filters share one entry.
	key := cache.GenerateKey("views:overview", spec)
	if cached, ok := c.Get(key); ok {
	    return cached.(models.OverviewView), nil
	}

GenerateKey serializes the parameters to JSON and hashes them, so any
change in months, brands, shops, countries or campaign selections
produces a distinct key.

# Cache Invalidation

Two invalidation paths:

 1. TTL expiration: entries expire after the configured TTL, checked
    lazily on Get plus a periodic background sweep.

 2. Snapshot swap: when the dataset loader publishes a new snapshot
    (background refresh or manual reload), the owning component calls
    Clear() so no response computed from the previous snapshot is ever
    served again.

# Choosing a Strategy

The TTL cache is unbounded; memory is limited only by the variety of
filter combinations requested within one TTL window, which is small for
this workload. The LFU cache adds a hard capacity and keeps the hot
entries (the default landing view, saved drill-downs) resident even
under a scan of one-off exploratory queries.

# Thread Safety

All methods on both implementations are safe for concurrent use from
multiple goroutines.

# See Also

  - internal/api: handlers that consult the cache and record hit/miss
    metrics
  - internal/views: the computations whose results are cached
*/
package cache
