// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/mercatus-io/mercatus/internal/cache"
	"github.com/mercatus-io/mercatus/internal/middleware"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/store"
)

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// availableDatasets counts the datasets that loaded successfully in the
// snapshot.
func availableDatasets(snap *store.Snapshot) int {
	n := 0
	for _, st := range snap.Statuses() {
		if st.Available {
			n++
		}
	}
	return n
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns overall health status including snapshot availability, dataset counts and uptime. Always answers 200; a missing snapshot reports status degraded.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "Health status retrieved successfully"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	// Check snapshot availability (none published means still starting
	// up or the initial load failed)
	var snap *store.Snapshot
	published := false
	if h.store != nil {
		snap, published = h.store.Current()
	}

	status := "healthy"
	if !published {
		status = "degraded"
	}

	health := models.HealthResponse{
		Status:        status,
		Version:       serviceVersion,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	if published {
		loadedAt := snap.LoadedAt()
		health.SnapshotAt = &loadedAt
		health.DatasetsAvailable = availableDatasets(snap)
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of snapshot state. Used for Kubernetes liveness probes.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK only if a dataset snapshot is published and queries can be served. Returns 503 before the first successful load.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	// Check snapshot availability (nil store means not wired)
	var snap *store.Snapshot
	published := false
	if h.store != nil {
		snap, published = h.store.Current()
	}

	available := 0
	if published {
		available = availableDatasets(snap)
	}

	statusCode := http.StatusOK
	status := "ready"
	if !published {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"snapshot_published": published,
			"datasets_available": available,
			"ready_to_serve":     published,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// GetCacheStats returns cache performance statistics
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}
