// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package api

import (
	"net/http"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
	"github.com/mercatus-io/mercatus/internal/views"
)

// This file contains the monthly-aggregate analytics endpoints for the
// Mercatus dashboard. These handlers slice the primary dataset by the
// shared filter parameters and return one report component each, plus a
// dashboard endpoint returning every view in a single payload.
//
// Analytics Endpoints (10 total):
//   - AnalyticsKPIs: Headline KPI set (net revenue, orders, AOV, refunds)
//   - AnalyticsRevenueTrend: Net revenue by calendar month
//   - AnalyticsTopBrands: Brand ranking by net revenue
//   - AnalyticsTopCountries: Shipping country ranking by net revenue
//   - AnalyticsShopPerformance: Per-shop revenue, orders and refund rate
//   - AnalyticsCampaignRevenue: Campaign type ranking by net revenue
//   - AnalyticsRefundRateTrend: Weighted refund rate by month
//   - AnalyticsPromotions: Coupon effectiveness KPI set
//   - AnalyticsCouponUsageTrend: Coupon usage rate by month
//   - AnalyticsDashboard: Every report view in one response
//
// All analytics endpoints support the shared filter dimensions (month
// range, company, brand, shop, country, campaign, coupon) and cache
// their responses per parameter set. Cache is invalidated on snapshot
// swap, so entries never outlive the tables they were computed from.

// filteredMonthly applies the filter predicates to the primary monthly
// table. The table may be nil when the primary dataset failed to load;
// the view functions report that in-band as unavailable components.
func filteredMonthly(snap *store.Snapshot, spec query.Spec) *frame.Table {
	t, _ := snap.Table(store.DatasetMonthly)
	return query.Apply(t, spec)
}

// AnalyticsKPIs returns the headline KPI set for the filtered selection.
//
// Method: GET
// Path: /api/v1/analytics/kpis
//
// Query Parameters: Standard filter dimensions (ym_from, ym_to, company,
// brand, shop, country, campaign, coupon)
//
// Response: OverviewKPIs with net revenue, orders, AOV, refunds, refund
// rate and coupon usage scalars. Scalars derived from absent columns
// carry state "unavailable" instead of failing the request.
func (h *Handler) AnalyticsKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsKPIs", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.HeadlineKPIs(filteredMonthly(snap, spec))
	})
}

// AnalyticsRevenueTrend returns net revenue summed by calendar month.
//
// Method: GET
// Path: /api/v1/analytics/revenue-trend
//
// Query Parameters: Standard filter dimensions
//
// Response: TableData with one row per month in the filtered range,
// ordered chronologically.
func (h *Handler) AnalyticsRevenueTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsRevenueTrend", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.RevenueTrend(filteredMonthly(snap, spec))
	})
}

// AnalyticsTopBrands returns the brand ranking by net revenue.
//
// Method: GET
// Path: /api/v1/analytics/top-brands
//
// Query Parameters: Standard filter dimensions plus limit (1-100,
// default 10).
//
// Response: TableData ranking brands by summed net revenue, descending.
func (h *Handler) AnalyticsTopBrands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit := getIntParam(r, "limit", views.BrandLimit)
	validationReq := LimitRequestValidation{Limit: limit}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "AnalyticsTopBrands",
		func(snap *store.Snapshot, spec query.Spec, param interface{}) interface{} {
			return views.TopBrands(filteredMonthly(snap, spec), param.(int))
		}, limit)
}

// AnalyticsTopCountries returns the shipping country ranking by net revenue.
//
// Method: GET
// Path: /api/v1/analytics/top-countries
//
// Query Parameters: Standard filter dimensions plus limit (1-100,
// default 15).
//
// Response: TableData ranking shipping countries by summed net revenue,
// descending.
func (h *Handler) AnalyticsTopCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit := getIntParam(r, "limit", views.CountryLimit)
	validationReq := LimitRequestValidation{Limit: limit}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "AnalyticsTopCountries",
		func(snap *store.Snapshot, spec query.Spec, param interface{}) interface{} {
			return views.TopCountries(filteredMonthly(snap, spec), param.(int))
		}, limit)
}

// AnalyticsShopPerformance returns per-shop revenue, orders and refund rate.
//
// Method: GET
// Path: /api/v1/analytics/shop-performance
//
// Query Parameters: Standard filter dimensions
//
// Response: TableData with one row per shop, ordered by net revenue
// descending.
func (h *Handler) AnalyticsShopPerformance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsShopPerformance", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.ShopPerformance(filteredMonthly(snap, spec))
	})
}

// AnalyticsCampaignRevenue returns the campaign type ranking by net revenue.
//
// Method: GET
// Path: /api/v1/analytics/campaign-revenue
//
// Query Parameters: Standard filter dimensions plus limit (1-100,
// default 15).
//
// Response: TableData ranking campaign types by summed net revenue,
// descending.
func (h *Handler) AnalyticsCampaignRevenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	limit := getIntParam(r, "limit", views.CampaignLimit)
	validationReq := LimitRequestValidation{Limit: limit}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.ExecuteWithParam(w, r, "AnalyticsCampaignRevenue",
		func(snap *store.Snapshot, spec query.Spec, param interface{}) interface{} {
			return views.CampaignRevenue(filteredMonthly(snap, spec), param.(int))
		}, limit)
}

// AnalyticsRefundRateTrend returns the order-weighted refund rate by month.
//
// Method: GET
// Path: /api/v1/analytics/refund-rate-trend
//
// Query Parameters: Standard filter dimensions
//
// Response: TableData with one row per month. The rate is recomputed
// from summed refunds over summed order totals rather than averaging
// the per-row rates, so months with more orders weigh more.
func (h *Handler) AnalyticsRefundRateTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsRefundRateTrend", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.RefundRateTrend(filteredMonthly(snap, spec))
	})
}

// AnalyticsPromotions returns the coupon effectiveness KPI set.
//
// Method: GET
// Path: /api/v1/analytics/promotions
//
// Query Parameters: Standard filter dimensions
//
// Response: PromotionsKPIs splitting net revenue by coupon usage plus
// the average discount rate. The campaign ranking and usage trend have
// their own endpoints.
func (h *Handler) AnalyticsPromotions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsPromotions", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.PromotionKPIs(filteredMonthly(snap, spec))
	})
}

// AnalyticsCouponUsageTrend returns the coupon usage rate by month.
//
// Method: GET
// Path: /api/v1/analytics/coupon-usage-trend
//
// Query Parameters: Standard filter dimensions
//
// Response: TableData with one row per month carrying the share of
// orders placed with a coupon.
func (h *Handler) AnalyticsCouponUsageTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsCouponUsageTrend", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.CouponUsageTrend(filteredMonthly(snap, spec))
	})
}

// AnalyticsDashboard returns every report view in one response
//
// @Summary Get full dashboard bundle
// @Description Computes all six report views (overview, drivers, promotions, RFM, basket, quality) from the published snapshot under one filter set. Components backed by missing datasets or columns are returned with available=false instead of failing the request.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param ym_from query string false "Start month, inclusive (YYYY-MM)"
// @Param ym_to query string false "End month, inclusive (YYYY-MM)"
// @Param company query string false "Comma-separated company filter"
// @Param brand query string false "Comma-separated brand filter"
// @Param shop query string false "Comma-separated shop filter"
// @Param country query string false "Comma-separated shipping country filter"
// @Param campaign query string false "Comma-separated campaign type filter"
// @Param coupon query string false "Coupon usage filter (true/false)"
// @Success 200 {object} models.APIResponse{data=models.Bundle} "Dashboard computed successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Failure 503 {object} models.APIResponse "No dataset snapshot available"
// @Router /api/v1/analytics/dashboard [get]
func (h *Handler) AnalyticsDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	executor := NewViewQueryExecutor(h)
	executor.Execute(w, r, "AnalyticsDashboard", func(snap *store.Snapshot, spec query.Spec) interface{} {
		return views.ComputeViews(snap, spec)
	})
}
