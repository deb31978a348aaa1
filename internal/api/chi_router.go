// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package api provides HTTP routing using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mercatus-io/mercatus/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows our existing middleware to work with Chi's r.Use().
// Used for Authenticate (auth logic), Compression, and PrometheusMetrics.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// JSON fallbacks so unmatched routes answer in the standard envelope
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting for frequent monitoring checks
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	// Strict rate limiting for auth endpoints (brute force prevention)
	r.Route("/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(APISecurityHeaders())

		// Login has strictest rate limiting (5 attempts per 5 minutes)
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	// ========================
	// Core API Endpoints
	// ========================
	// All data endpoints require authentication when auth is enabled
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/filters", router.handler.Filters)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	// Permissive rate limiting for cached analytics; the dashboard loads
	// every panel at once
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/kpis", router.handler.AnalyticsKPIs)
		r.Get("/revenue-trend", router.handler.AnalyticsRevenueTrend)
		r.Get("/top-brands", router.handler.AnalyticsTopBrands)
		r.Get("/top-countries", router.handler.AnalyticsTopCountries)
		r.Get("/shop-performance", router.handler.AnalyticsShopPerformance)
		r.Get("/campaign-revenue", router.handler.AnalyticsCampaignRevenue)
		r.Get("/refund-rate-trend", router.handler.AnalyticsRefundRateTrend)
		r.Get("/promotions", router.handler.AnalyticsPromotions)
		r.Get("/coupon-usage-trend", router.handler.AnalyticsCouponUsageTrend)
		r.Get("/dashboard", router.handler.AnalyticsDashboard)
	})

	// ========================
	// RFM Endpoints
	// ========================
	// Customer segmentation drill-downs over the RFM extract
	r.Route("/api/v1/rfm", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/summary", router.handler.RFMSummary)
		r.Get("/segments", router.handler.RFMSegments)
		r.Get("/segment-clusters", router.handler.RFMSegmentClusters)
		r.Get("/scatter", router.handler.RFMScatter)
		r.Get("/targets", router.handler.RFMTargets)
		r.Get("/filters", router.handler.RFMFilters)
	})

	// ========================
	// Basket Endpoints
	// ========================
	// SKU rankings and association rule filtering
	r.Route("/api/v1/basket", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/top-skus", router.handler.BasketTopSKUs)
		r.Get("/rules", router.handler.BasketRules)
		r.Get("/rules/related", router.handler.BasketRelatedRules)
		r.Get("/skus", router.handler.BasketSKUs)
		r.Get("/defaults", router.handler.BasketDefaults)
	})

	// ========================
	// Quality Endpoints
	// ========================
	// Data quality profiles written by the upstream pipeline
	r.Route("/api/v1/quality", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/missingness", router.handler.QualityMissingness)
		r.Get("/outliers", router.handler.QualityOutliers)
		r.Get("/audit", router.handler.QualityAudit)
	})

	// ========================
	// Export Endpoints
	// ========================
	// Moderate rate limiting; exports stream whole extracts
	r.Route("/api/v1/export", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitExport())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Get("/targets/csv", router.handler.ExportTargetsCSV)
	})

	// ========================
	// Admin Endpoints
	// ========================
	// Snapshot reload and dataset status
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitReload())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.middleware.Authenticate))

		r.Post("/reload", router.handler.AdminReload)
		r.Get("/datasets", router.handler.AdminDatasets)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
