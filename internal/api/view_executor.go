// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/mercatus-io/mercatus/internal/cache"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
)

// ViewQueryExecutor encapsulates the common pattern for view query handlers.
// It implements a cache-first execution flow:
//
//  1. Fetch the published snapshot (503 when none is available)
//  2. Build the filter predicate set from query parameters
//  3. Check cache for existing results
//  4. Compute the view if cache miss
//  5. Cache the result for subsequent requests
//  6. Respond with JSON including metadata (query time, cached status,
//     snapshot load time)
//
// Cache keys combine the endpoint prefix with the canonical parameter
// struct and nothing else. The snapshot identity is deliberately absent:
// a snapshot swap clears the whole cache, so every cached entry is known
// to come from the currently published snapshot.
//
// Example usage:
//
//	executor := NewViewQueryExecutor(h)
//	executor.Execute(w, r, "AnalyticsKPIs", func(snap *store.Snapshot, spec query.Spec) interface{} {
//	    return views.HeadlineKPIs(filteredMonthly(snap, spec))
//	})
type ViewQueryExecutor struct {
	handler *Handler
}

// NewViewQueryExecutor creates a new view query executor instance.
//
// Parameters:
//   - h: Handler instance providing access to the snapshot store and cache
//
// Returns a configured executor ready to process view queries with
// automatic caching and response formatting.
func NewViewQueryExecutor(h *Handler) *ViewQueryExecutor {
	return &ViewQueryExecutor{handler: h}
}

// ViewQueryFunc is a function type for computing report views.
// It receives the published snapshot and the parsed filter predicates,
// returning the view payload.
//
// View computation never fails: a missing dataset or column degrades the
// payload in-band (available=false plus a reason) rather than producing
// an error, so the signature has no error return.
//
// The result must be JSON-serializable as it will be cached and returned
// in an APIResponse wrapper with metadata.
type ViewQueryFunc func(snap *store.Snapshot, spec query.Spec) interface{}

// Execute runs a filtered view query with automatic caching.
// Use this method for endpoints whose only inputs are the shared filter
// parameters (no additional parameters like limit or thresholds).
//
// Parameters:
//   - w: HTTP response writer
//   - r: HTTP request containing query parameters for filter building
//   - cacheKeyPrefix: Unique identifier for this query type (e.g., "AnalyticsKPIs")
//   - queryFunc: Function that computes the view from the snapshot
//
// The method automatically:
//   - Rejects the request with 503 when no snapshot is published
//   - Builds the predicate set from query parameters (400 on invalid filters)
//   - Generates a cache key from prefix + canonical filter parameters
//   - Returns cached data if available (with Cached: true in metadata)
//   - Computes the view on cache miss and caches the result
//   - Responds with JSON including query time and snapshot load time
//
// Cache hits return immediately with 0ms query time. Cache misses include
// actual computation time in milliseconds.
func (e *ViewQueryExecutor) Execute(
	w http.ResponseWriter,
	r *http.Request,
	cacheKeyPrefix string,
	queryFunc ViewQueryFunc,
) {
	snap, ok := e.handler.requireSnapshot(w)
	if !ok {
		return
	}

	start := time.Now()

	params, apiErr := buildFilterParams(r, snap)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	loadedAt := snap.LoadedAt()
	cacheKey := cache.GenerateKey(cacheKeyPrefix, params)

	// Check cache first (only if cache is available)
	if cached, found := e.cacheLookup(w, cacheKey); found {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp:   time.Now(),
				QueryTimeMS: 0, // Cached
				Cached:      true,
				SnapshotAt:  &loadedAt,
			},
		})
		return
	}

	// Compute the view
	data := queryFunc(snap, params.spec())

	e.cacheStore(cacheKey, data)

	// Respond with data
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			SnapshotAt:  &loadedAt,
		},
	})
}

// cacheLookup consults the response cache when one is configured. A hit
// sets the X-Cache header the performance monitor reads, and both
// outcomes feed the cache hit/miss counters.
func (e *ViewQueryExecutor) cacheLookup(w http.ResponseWriter, key string) (interface{}, bool) {
	if e.handler.cache == nil {
		return nil, false
	}
	cached, found := e.handler.cache.Get(key)
	if found {
		w.Header().Set("X-Cache", "HIT")
		metrics.RecordCacheHit(e.handler.cacheType())
		return cached, true
	}
	metrics.RecordCacheMiss(e.handler.cacheType())
	return nil, false
}

// cacheStore saves a computed view and refreshes the cache size gauge.
// No-op when the cache is disabled.
func (e *ViewQueryExecutor) cacheStore(key string, data interface{}) {
	if e.handler.cache == nil {
		return
	}
	e.handler.cache.Set(key, data)
	metrics.UpdateCacheSize(e.handler.cacheType(), int(e.handler.cache.GetStats().TotalKeys))
}

// ExecuteWithParam runs a filtered view query that takes an additional
// parameter beyond the shared filters (limit, thresholds). The parameter
// becomes part of the cache key so each variant caches separately.
//
// Parameters:
//   - w: HTTP response writer
//   - r: HTTP request containing query parameters
//   - cacheKeyPrefix: Unique identifier for this query type
//   - queryFunc: Function that computes the view from snapshot, filter and parameter
//   - param: Additional parameter value (must be JSON-serializable for key generation)
//
// Example:
//
//	executor.ExecuteWithParam(w, r, "AnalyticsTopBrands",
//	    func(snap *store.Snapshot, spec query.Spec, param interface{}) interface{} {
//	        return views.TopBrands(filteredMonthly(snap, spec), param.(int))
//	    }, limit)
func (e *ViewQueryExecutor) ExecuteWithParam(
	w http.ResponseWriter,
	r *http.Request,
	cacheKeyPrefix string,
	queryFunc func(snap *store.Snapshot, spec query.Spec, param interface{}) interface{},
	param interface{},
) {
	snap, ok := e.handler.requireSnapshot(w)
	if !ok {
		return
	}

	start := time.Now()

	params, apiErr := buildFilterParams(r, snap)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	loadedAt := snap.LoadedAt()

	// Generate cache key (includes the parameter for per-variant caching)
	cacheKey := cache.GenerateKey(cacheKeyPrefix, struct {
		Filter filterParams
		Param  interface{}
	}{params, param})

	// Check cache first
	if cached, found := e.cacheLookup(w, cacheKey); found {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp:   time.Now(),
				QueryTimeMS: 0,
				Cached:      true,
				SnapshotAt:  &loadedAt,
			},
		})
		return
	}

	// Compute the view
	data := queryFunc(snap, params.spec(), param)

	e.cacheStore(cacheKey, data)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			SnapshotAt:  &loadedAt,
		},
	})
}

// ExecuteSnapshot runs a view query that does not use the shared filter
// parameters (RFM drill-downs, basket thresholds, quality profiles). The
// caller supplies the canonical parameter value keying the cache; pass
// nil for parameterless endpoints.
//
// Parameters:
//   - w: HTTP response writer
//   - r: HTTP request
//   - cacheKeyPrefix: Unique identifier for this query type
//   - params: Canonical parameter value for cache keying (nil when none)
//   - queryFunc: Function that computes the view from the snapshot
//
// Example:
//
//	drill := buildRFMDrill(r)
//	executor.ExecuteSnapshot(w, r, "RFMSummary", drill, func(snap *store.Snapshot) interface{} {
//	    return views.RFM(snap, drill)
//	})
func (e *ViewQueryExecutor) ExecuteSnapshot(
	w http.ResponseWriter,
	r *http.Request,
	cacheKeyPrefix string,
	params interface{},
	queryFunc func(snap *store.Snapshot) interface{},
) {
	snap, ok := e.handler.requireSnapshot(w)
	if !ok {
		return
	}

	start := time.Now()
	loadedAt := snap.LoadedAt()
	cacheKey := cache.GenerateKey(cacheKeyPrefix, params)

	// Check cache first
	if cached, found := e.cacheLookup(w, cacheKey); found {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp:   time.Now(),
				QueryTimeMS: 0,
				Cached:      true,
				SnapshotAt:  &loadedAt,
			},
		})
		return
	}

	// Compute the view
	data := queryFunc(snap)

	e.cacheStore(cacheKey, data)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			SnapshotAt:  &loadedAt,
		},
	})
}
