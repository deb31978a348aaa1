// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"

	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/views"
)

// Data quality endpoints. Each one surfaces a profile extract written
// by the upstream pipeline; the profiles describe the source data as a
// whole, so these endpoints take no filter parameters.

// QualityMissingness returns the per-column missing value profile.
//
// Method: GET
// Path: /api/v1/quality/missingness
//
// Response: TableData with one row per source column and its missing
// percentage, worst first, capped at 20 rows.
func (h *Handler) QualityMissingness(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "QualityMissingness", nil, func(snap *store.Snapshot) interface{} {
		return views.Missingness(snap)
	})
}

// QualityOutliers returns the IQR outlier profile for the key metrics.
//
// Method: GET
// Path: /api/v1/quality/outliers
//
// Response: TableData with one row per profiled metric and its outlier
// percentage.
func (h *Handler) QualityOutliers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "QualityOutliers", nil, func(snap *store.Snapshot) interface{} {
		return views.Outliers(snap)
	})
}

// QualityAudit returns the audit preview of the largest orders.
//
// Method: GET
// Path: /api/v1/quality/audit
//
// Response: TableData with the first 200 rows of the audit extract,
// already ordered by order total in the source file.
func (h *Handler) QualityAudit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "QualityAudit", nil, func(snap *store.Snapshot) interface{} {
		return views.AuditPreview(snap)
	})
}
