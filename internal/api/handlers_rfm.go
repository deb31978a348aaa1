// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"

	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/views"
)

// This file contains the customer segmentation endpoints for the
// Mercatus dashboard. These handlers work against the per-customer RFM
// extract rather than the monthly aggregate, so they take drill-down
// parameters (segment, cluster, recency range) instead of the shared
// filter dimensions.
//
// RFM Endpoints (6 total):
//   - RFMSummary: Full segmentation view (KPIs, summaries, scatter, targets)
//   - RFMSegments: Per-segment customer counts and monetary totals
//   - RFMSegmentClusters: Segment x k-means cluster cross table
//   - RFMScatter: Deterministic scatter sample of customers
//   - RFMTargets: Preview of the campaign target list extract
//   - RFMFilters: Drill-down options (segments, clusters, recency bounds)
//
// The RFM extract is optional. When it is not loaded these endpoints
// return 200 with available=false and a reason naming the missing file,
// matching the degradation contract of the analytics endpoints.

// buildRFMDrill parses the drill-down parameters from the query string.
// Parsing is lenient: unparseable recency bounds are treated as absent
// rather than rejected, and unknown segment or cluster values simply
// match nothing.
func buildRFMDrill(r *http.Request) views.RFMDrill {
	q := r.URL.Query()
	return views.RFMDrill{
		Segments:   parseCommaSeparated(q.Get("segment")),
		Clusters:   parseCommaSeparated(q.Get("cluster")),
		RecencyMin: optionalFloatParam(r, "recency_min"),
		RecencyMax: optionalFloatParam(r, "recency_max"),
	}
}

// RFMSummary returns the full customer segmentation view
//
// @Summary Get RFM segmentation summary
// @Description Returns the customer segmentation view: headline KPIs, per-segment summary, segment x cluster cross table, scatter sample and target list preview, all narrowed by the drill-down parameters. Returns available=false with a reason when the RFM extract is not loaded.
// @Tags RFM
// @Accept json
// @Produce json
// @Param segment query string false "Comma-separated RFM segment filter"
// @Param cluster query string false "Comma-separated k-means cluster filter"
// @Param recency_min query number false "Minimum recency in days, inclusive"
// @Param recency_max query number false "Maximum recency in days, inclusive"
// @Success 200 {object} models.APIResponse{data=models.RFMView} "Segmentation view computed successfully"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/rfm/summary [get]
func (h *Handler) RFMSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	drill := buildRFMDrill(r)
	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMSummary", drill, func(snap *store.Snapshot) interface{} {
		return views.RFM(snap, drill)
	})
}

// RFMSegments returns per-segment customer counts and monetary totals.
//
// Method: GET
// Path: /api/v1/rfm/segments
//
// Query Parameters: Drill-down dimensions (segment, cluster,
// recency_min, recency_max)
//
// Response: TableData with one row per segment, ordered by monetary
// total descending.
func (h *Handler) RFMSegments(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	drill := buildRFMDrill(r)
	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMSegments", drill, func(snap *store.Snapshot) interface{} {
		t, reason, ok := views.DrillTable(snap, drill)
		if !ok {
			return models.UnavailableTable(reason)
		}
		return views.SegmentSummary(t)
	})
}

// RFMSegmentClusters returns the segment x k-means cluster cross table.
//
// Method: GET
// Path: /api/v1/rfm/segment-clusters
//
// Query Parameters: Drill-down dimensions
//
// Response: TableData with one row per (segment, cluster) pair and the
// customer count in that cell.
func (h *Handler) RFMSegmentClusters(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	drill := buildRFMDrill(r)
	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMSegmentClusters", drill, func(snap *store.Snapshot) interface{} {
		t, reason, ok := views.DrillTable(snap, drill)
		if !ok {
			return models.UnavailableTable(reason)
		}
		return views.SegmentClusters(t)
	})
}

// RFMScatter returns a scatter sample of the drilled customer set.
//
// Method: GET
// Path: /api/v1/rfm/scatter
//
// Query Parameters: Drill-down dimensions
//
// Response: TableData with up to 5000 customers sampled with a fixed
// seed, so the same drill always plots the same points.
func (h *Handler) RFMScatter(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	drill := buildRFMDrill(r)
	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMScatter", drill, func(snap *store.Snapshot) interface{} {
		t, reason, ok := views.DrillTable(snap, drill)
		if !ok {
			return models.UnavailableTable(reason)
		}
		return views.ScatterSample(t)
	})
}

// RFMTargets returns a preview of the campaign target list extract.
//
// Method: GET
// Path: /api/v1/rfm/targets
//
// Response: TableData with the first 200 rows of the target list. The
// full extract is available from the CSV export endpoint.
func (h *Handler) RFMTargets(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMTargets", nil, func(snap *store.Snapshot) interface{} {
		return views.TargetPreview(snap)
	})
}

// RFMFilters returns the drill-down options of the RFM view
//
// @Summary Get RFM drill-down options
// @Description Returns the segments, k-means clusters and recency bounds present in the RFM extract, so clients can build their drill-down controls from one request.
// @Tags RFM
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.RFMFiltersResponse} "Drill-down options retrieved successfully"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/rfm/filters [get]
func (h *Handler) RFMFilters(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteSnapshot(w, r, "RFMFilters", nil, func(snap *store.Snapshot) interface{} {
		return views.RFMFilters(snap)
	})
}
