// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"
	"time"

	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/store"
)

// Administrative endpoints for snapshot management. Both require
// authentication when auth is enabled and sit behind the reload rate
// limit tier.

// DatasetsResponse reports the load state of every cataloged dataset.
type DatasetsResponse struct {
	DataDir        string                `json:"data_dir"`
	LoadedAt       time.Time             `json:"loaded_at"`
	LoadDurationMS int64                 `json:"load_duration_ms"`
	Datasets       []store.DatasetStatus `json:"datasets"`
}

// AdminReload rescans the data directory and swaps in a new snapshot
//
// @Summary Reload datasets
// @Description Rescans the data directory and atomically publishes a new snapshot when any file changed. In-flight requests keep reading the previous snapshot; the response cache is cleared only when a swap happened. A failed reload keeps the previous snapshot published.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadResponse} "Reload completed"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Failure 503 {object} models.APIResponse "Reload failed and no snapshot is published"
// @Router /api/v1/admin/reload [post]
func (h *Handler) AdminReload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SNAPSHOT_UNAVAILABLE", "No dataset snapshot available", nil)
		return
	}

	start := time.Now()

	snap, swapped, err := h.store.ReloadIfChanged()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "SNAPSHOT_UNAVAILABLE", "Reload failed; previous snapshot remains live", err)
		return
	}

	if swapped {
		h.OnSnapshotSwapped(snap)
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ReloadResponse{
			Swapped:    swapped,
			LoadedAt:   snap.LoadedAt(),
			DurationMS: time.Since(start).Milliseconds(),
			Datasets:   snap.Statuses(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// AdminDatasets returns the load state of every cataloged dataset
//
// @Summary Get dataset status
// @Description Returns per-dataset availability, row counts and load errors for the published snapshot, plus the data directory being scanned.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=DatasetsResponse} "Dataset status retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/admin/datasets [get]
func (h *Handler) AdminDatasets(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	snap, ok := h.requireSnapshot(w)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: DatasetsResponse{
			DataDir:        h.store.DataDir(),
			LoadedAt:       snap.LoadedAt(),
			LoadDurationMS: snap.LoadDuration().Milliseconds(),
			Datasets:       snap.Statuses(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
