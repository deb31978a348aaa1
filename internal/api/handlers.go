// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/auth"
	"github.com/mercatus-io/mercatus/internal/cache"
	"github.com/mercatus-io/mercatus/internal/config"
	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/middleware"
	"github.com/mercatus-io/mercatus/internal/store"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, cache invalidation (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_core.go: Filter parsing, login, filters endpoint
//   - handlers_analytics.go: Monthly-aggregate analytics endpoints
//   - handlers_rfm.go: Customer segmentation endpoints
//   - handlers_basket.go: Basket analysis endpoints
//   - handlers_quality.go: Data quality endpoints
//   - handlers_admin.go: Snapshot reload and dataset status
//   - handlers_export.go: CSV export
//   - handlers_health.go: Health/monitoring endpoints
type Handler struct {
	store      *store.Manager
	config     *config.Config
	jwtManager *auth.JWTManager
	basicAuth  *auth.BasicAuthManager
	lockout    *auth.LockoutManager
	startTime  time.Time
	cache      cache.Cacher
	perfMon    *middleware.PerformanceMonitor
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - storeMgr: snapshot manager holding the published dataset tables
//   - cfg: application configuration
//   - jwtManager: JWT token manager for authentication (nil when auth
//     is disabled)
//   - basicAuth: bcrypt credential verifier (nil when auth is disabled)
//
// The handler initializes with a response cache per the cache
// configuration (nil when disabled), a login lockout tracker, and a
// performance monitor keeping the last 1000 requests.
//
// Example:
//
//	handler := api.NewHandler(mgr, cfg, jwtManager, basicAuth)
//	router := api.NewRouter(handler, authMiddleware)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(storeMgr *store.Manager, cfg *config.Config, jwtManager *auth.JWTManager, basicAuth *auth.BasicAuthManager) *Handler {
	var cacher cache.Cacher
	if cfg != nil && cfg.Cache.Enabled {
		cacher = cache.NewCacher(cache.Options{
			Type: cache.CacheType(cfg.Cache.Type),
			TTL:  cfg.Cache.TTL,
		})
	}

	return &Handler{
		store:      storeMgr,
		config:     cfg,
		jwtManager: jwtManager,
		basicAuth:  basicAuth,
		lockout:    auth.NewLockoutManager(auth.DefaultLockoutConfig()),
		startTime:  time.Now(),
		cache:      cacher,
		perfMon:    middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
	}
}

// cacheType returns the configured cache implementation name, used as
// the label on the cache metric series.
func (h *Handler) cacheType() string {
	if h.config != nil && h.config.Cache.Type != "" {
		return h.config.Cache.Type
	}
	return string(cache.CacheTypeTTL)
}

// ClearCache invalidates all cached responses.
//
// Called automatically after each snapshot swap so clients never see
// payloads computed from retired tables. It can also be called manually
// to force invalidation without waiting for a reload.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		cleared := h.cache.GetStats().TotalKeys
		h.cache.Clear()
		metrics.RecordCacheEviction(h.cacheType(), int(cleared))
		metrics.UpdateCacheSize(h.cacheType(), 0)
		logging.Info().Int64("entries", cleared).Msg("Response cache cleared")
	}
}

// OnSnapshotSwapped is the callback invoked after a new snapshot is
// published. It drops every cached response so the next request of each
// endpoint recomputes from the fresh tables.
//
// The callback is registered with the refresh service during startup
// and also runs on admin-triggered reloads.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) OnSnapshotSwapped(snap *store.Snapshot) {
	h.ClearCache()

	if snap != nil {
		logging.Info().
			Time("loaded_at", snap.LoadedAt()).
			Int("datasets_available", availableDatasets(snap)).
			Msg("Serving new dataset snapshot")
	}
}
