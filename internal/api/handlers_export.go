// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"

	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/store"
)

// ExportTargetsCSV exports the campaign target list as CSV
//
// @Summary Export campaign target list as CSV
// @Description Streams the full RFM target list extract as a CSV download for use in campaign tooling. Unlike the JSON endpoints, a missing extract is a 404 here: there is no degraded form of a file download.
// @Tags Export
// @Accept json
// @Produce text/csv
// @Success 200 {file} file "CSV file download"
// @Failure 404 {object} models.APIResponse "Target list extract is not loaded"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/export/targets/csv [get]
func (h *Handler) ExportTargetsCSV(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	snap, ok := h.requireSnapshot(w)
	if !ok {
		return
	}

	targets, ok := snap.Table(store.DatasetRFMTargets)
	if !ok {
		respondError(w, http.StatusNotFound, "DATASET_UNAVAILABLE", "Target list extract is not loaded", nil)
		return
	}

	// Set headers for CSV download
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"rfm_target_list.csv\"")
	w.Header().Set("Cache-Control", "no-cache")

	if err := targets.WriteCSV(w); err != nil {
		// Headers are already sent; all we can do is log
		logging.Error().Err(err).Msg("Failed to write CSV export")
		return
	}

	metrics.RecordExport(store.DatasetRFMTargets)
}
