// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the analytics service:
// - API endpoint latency and throughput
// - Dataset load results and table sizes
// - Snapshot lifecycle (swaps, reload failures)
// - View computation latency
// - Response cache efficiency
// - Authentication outcomes

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dataset Metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"dataset", "result"}, // "parsed", "memoized", "unavailable", "error"
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Row count of each dataset in the current snapshot",
		},
		[]string{"dataset"},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of full snapshot loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Snapshot Lifecycle Metrics
	SnapshotSwapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_swaps_total",
			Help: "Total number of published snapshots",
		},
	)

	SnapshotReloadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_reload_errors_total",
			Help: "Total number of failed reload attempts",
		},
	)

	SnapshotLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_loaded_timestamp",
			Help: "Unix timestamp of the current snapshot load",
		},
	)

	// View Computation Metrics
	ViewComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "view_compute_duration_seconds",
			Help:    "Duration of report view computation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"view"}, // "overview", "drivers", "promotions", "rfm", "basket", "quality"
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Total number of CSV exports served",
		},
		[]string{"dataset"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "analytics"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Authentication Metrics
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // "success", "failure"
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordDatasetLoad records one dataset load attempt and, for loaded
// datasets, the resulting row count.
func RecordDatasetLoad(dataset, result string, rows int) {
	DatasetLoadsTotal.WithLabelValues(dataset, result).Inc()
	if result == "parsed" || result == "memoized" {
		DatasetRows.WithLabelValues(dataset).Set(float64(rows))
	}
}

// RecordSnapshotSwap records a successfully published snapshot.
func RecordSnapshotSwap(loadDuration time.Duration, loadedAt time.Time) {
	SnapshotSwapsTotal.Inc()
	DatasetLoadDuration.Observe(loadDuration.Seconds())
	SnapshotLoadedTimestamp.Set(float64(loadedAt.Unix()))
}

// RecordSnapshotError records a failed reload attempt.
func RecordSnapshotError() {
	SnapshotReloadErrors.Inc()
}

// ObserveViewCompute records the computation time of one report view.
func ObserveViewCompute(view string, duration time.Duration) {
	ViewComputeDuration.WithLabelValues(view).Observe(duration.Seconds())
}

// RecordExport records a served CSV export.
func RecordExport(dataset string) {
	ExportsTotal.WithLabelValues(dataset).Inc()
}

// RecordCacheHit records a cache hit for the given cache type.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// UpdateCacheSize sets the current entry count for the given cache type.
func UpdateCacheSize(cacheType string, entries int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
}

// RecordCacheEviction records evicted entries for the given cache type,
// whether from TTL expiry or a snapshot-swap invalidation.
func RecordCacheEviction(cacheType string, count int) {
	CacheEvictions.WithLabelValues(cacheType).Add(float64(count))
}

// RecordAuthAttempt records a login attempt outcome.
func RecordAuthAttempt(success bool) {
	if success {
		AuthAttemptsTotal.WithLabelValues("success").Inc()
	} else {
		AuthAttemptsTotal.WithLabelValues("failure").Inc()
	}
}
