// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
views.go - Shared View Plumbing

Holds the view names used as metrics labels, the output column names
shared across aggregations, the degradation reason helpers, and the
ComputeViews bundle assembler.
*/

package views

import (
	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
)

// View names as they appear in metrics labels and cache keys.
const (
	ViewOverview   = "overview"
	ViewDrivers    = "drivers"
	ViewPromotions = "promotions"
	ViewRFM        = "rfm"
	ViewBasket     = "basket"
	ViewQuality    = "quality"
)

// Output column names for aggregated tables.
const (
	outNetRevenue   = "net_revenue"
	outOrders       = "orders"
	outAOV          = "aov"
	outRefundRate   = "refund_rate"
	outCustomers    = "customers"
	outMonetary     = "monetary"
	outCouponOrders = "coupon_orders"
	outCouponUsage  = "coupon_usage"
)

// Row limits for ranked and preview tables.
const (
	BrandLimit        = 10
	CountryLimit      = 15
	CampaignLimit     = 15
	MissingnessLimit  = 20
	AuditPreviewRows  = 200
	TargetPreviewRows = 200
)

// missingColumn formats the degradation reason for one absent source
// column.
func missingColumn(name string) string {
	return "column " + name + " not present"
}

// DatasetReason explains why a dataset is unusable, preferring the
// loader's recorded status over a generic message.
func DatasetReason(snap *store.Snapshot, name string) string {
	if st, ok := snap.Status(name); ok && st.Reason != "" {
		return st.File + ": " + st.Reason
	}
	return name + " not loaded"
}

// requireColumns returns the first absent column from want, if any.
func requireColumns(t *frame.Table, want ...string) (string, bool) {
	for _, name := range want {
		if _, ok := t.Col(name); !ok {
			return name, false
		}
	}
	return "", true
}

// ComputeViews builds the complete dashboard bundle for one snapshot
// under one filter set. The monthly table is filtered once and shared
// by the Overview, Drivers and Promotions sections; the remaining
// sections read their own datasets with default parameters.
func ComputeViews(snap *store.Snapshot, spec query.Spec) models.Bundle {
	primary, _ := snap.Table(store.DatasetMonthly)
	filtered := query.Apply(primary, spec)
	return models.Bundle{
		Overview:   Overview(filtered),
		Drivers:    Drivers(filtered),
		Promotions: Promotions(filtered),
		RFM:        RFM(snap, RFMDrill{}),
		Basket:     Basket(snap, DefaultBasketParams(snap)),
		Quality:    Quality(snap),
	}
}

// Filters reports the distinct filter options of the current snapshot
// together with per-dataset availability.
func Filters(snap *store.Snapshot) models.FiltersResponse {
	f := snap.Filters()
	from, to := f.MonthBounds()
	return models.FiltersResponse{
		Months:    f.Months,
		YMFrom:    from,
		YMTo:      to,
		Companies: f.Companies,
		Brands:    f.Brands,
		Shops:     f.Shops,
		Countries: f.Countries,
		Campaigns: f.Campaigns,
		Datasets:  snap.Statuses(),
	}
}

// RFMFilters reports the drill-down options for the customer
// segmentation view.
func RFMFilters(snap *store.Snapshot) models.RFMFiltersResponse {
	meta, ok := snap.RFM()
	if !ok {
		return models.RFMFiltersResponse{Reason: DatasetReason(snap, store.DatasetRFM)}
	}
	return models.RFMFiltersResponse{
		Available:  true,
		Segments:   meta.Segments,
		Clusters:   meta.Clusters,
		RecencyMin: meta.RecencyMin,
		RecencyMax: meta.RecencyMax,
	}
}
