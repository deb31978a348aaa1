// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the analytics service using the Prometheus client
library. All collectors are registered at package load through promauto; no
explicit Init call is needed.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Dataset loads, memoization results, and row counts
  - Snapshot publishes and reload failures
  - Report view computation latency
  - Response cache hit/miss rates and evictions
  - Login attempt outcomes

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Dataset Metrics:
  - dataset_loads_total: Load attempts (counter)
    Labels: dataset, result (parsed, memoized, unavailable, error)
  - dataset_rows: Rows per dataset in the current snapshot (gauge)
    Labels: dataset
  - dataset_load_duration_seconds: Full snapshot load duration (histogram)

Snapshot Metrics:
  - snapshot_swaps_total: Published snapshots (counter)
  - snapshot_reload_errors_total: Failed reload attempts (counter)
  - snapshot_loaded_timestamp: Unix timestamp of the current snapshot (gauge)

View Metrics:
  - view_compute_duration_seconds: Per-view computation latency (histogram)
    Labels: view (overview, drivers, promotions, rfm, basket, quality)
  - exports_total: CSV exports served (counter)
    Labels: dataset

Cache Metrics:
  - cache_hits_total / cache_misses_total: Cache efficiency (counters)
    Labels: cache_type
  - cache_entries: Current cached entries (gauge)
    Labels: cache_type
  - cache_evictions_total: TTL evictions (counter)
    Labels: cache_type

Auth Metrics:
  - auth_attempts_total: Login attempts (counter)
    Labels: result (success, failure)

# Usage Example

	import (
	    "github.com/mercatus-io/mercatus/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	http.Handle("/metrics", promhttp.Handler())

	metrics.RecordAPIRequest("GET", "/api/v1/analytics/kpis", "200", elapsed)
	metrics.RecordDatasetLoad("monthly_aggregates", "parsed", 1842)
	metrics.ObserveViewCompute("overview", elapsed)

# Cardinality Management

Endpoint labels use the routing pattern, never the raw URL, so query
parameters and path variables cannot explode series counts. Dataset and
view labels come from fixed catalogs.

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
library handles synchronization internally.

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/store: dataset and snapshot metrics recording
  - internal/views: view computation metrics
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
