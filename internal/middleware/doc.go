// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, performance
monitoring, request ID tracking, and Prometheus metrics integration. These
components work alongside the authentication middleware to create a complete
middleware stack for HTTP request processing.

Key Components:

  - Compression: Gzip compression for JSON and CSV responses
  - Performance Monitor: Request latency tracking with percentile calculations
  - Request ID: UUID-based request tracking for log correlation
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The router applies middleware per route group. A typical analytics
endpoint passes through:

	cors.Handler          // Layer 1: CORS headers
	httprate.LimitByIP    // Layer 2: Rate limiting
	PrometheusMetrics     // Layer 3: Metrics
	Compression           // Layer 4: Gzip
	RequestID             // Layer 5: Request tracking
	handler               // Layer 6: Business logic

Usage Example - Compression:

	import "github.com/mercatus-io/mercatus/internal/middleware"

	// Wrap handler with gzip compression
	http.HandleFunc("/api/v1/analytics/dashboard",
	    middleware.Compression(handler),
	)

	// Accept-Encoding: gzip header is required

Usage Example - Performance Monitoring:

	// Create performance monitor with a 1000-request window
	perfMon := middleware.NewPerformanceMonitor(1000)

	// Wrap handler
	mux.Handle("/api/v1/analytics/kpis",
	    perfMon.Middleware(handler),
	)

	// Get per-endpoint statistics
	for _, s := range perfMon.GetStats() {
	    fmt.Printf("%s p50=%dms p95=%dms hits=%d\n",
	        s.Path, s.P50Duration, s.P95Duration, s.CacheHits)
	}

Usage Example - Request ID:

	http.HandleFunc("/api/v1/filters",
	    middleware.RequestID(handler),
	)

	// Access request ID in handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Info().Str("request_id", requestID).Msg("Processing request")
	}

Performance Characteristics:

  - Compression: 70-90% size reduction for tabular JSON and CSV
  - Compression overhead: ~1-2ms for typical responses
  - Metrics overhead: <0.1ms per request
  - Request ID overhead: <0.01ms (UUID generation)

Performance Monitor:

The performance monitor tracks:
  - Request count per endpoint
  - Response cache hits (from the X-Cache response header)
  - Latency percentiles (p50, p95, p99)
  - Rolling window of the most recent requests
  - Thread-safe concurrent access with RWMutex

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Performance monitor uses sync.RWMutex
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/auth: Authentication middleware
  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
