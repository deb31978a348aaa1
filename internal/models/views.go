// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
views.go - Report View Payloads

Wire types for the six report views. Every table-shaped component is a
TableData with its own availability flag, so one missing column or
optional dataset degrades a single chart instead of the whole response.
KPI fields are query.Scalar values and encode as {value, state}.
*/

package models

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/rules"
	"github.com/mercatus-io/mercatus/internal/store"
)

// TableData is the wire form of a computed table: column names plus
// rows in column order. Available is false when the component could
// not be computed (missing source column or dataset); Reason then says
// why. An available table with zero rows means the filters matched
// nothing.
type TableData struct {
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Columns   []string        `json:"columns,omitempty"`
	Rows      [][]interface{} `json:"rows,omitempty"`
}

// NewTableData converts a frame table into its wire form.
func NewTableData(t *frame.Table) TableData {
	rows := make([][]interface{}, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		vals := t.Row(i)
		row := make([]interface{}, len(vals))
		for j, v := range vals {
			row[j] = v.Interface()
		}
		rows[i] = row
	}
	return TableData{
		Available: true,
		Columns:   t.Columns(),
		Rows:      rows,
	}
}

// UnavailableTable marks a component that could not be computed.
func UnavailableTable(reason string) TableData {
	return TableData{Reason: reason}
}

// OverviewKPIs is the headline KPI set of the Overview view.
type OverviewKPIs struct {
	NetRevenue  query.Scalar `json:"net_revenue"`
	Orders      query.Scalar `json:"orders"`
	AOV         query.Scalar `json:"aov"`
	Refunds     query.Scalar `json:"refunds"`
	RefundRate  query.Scalar `json:"refund_rate"`
	CouponUsage query.Scalar `json:"coupon_usage"`
}

// OverviewView is the landing report: headline KPIs, the monthly
// revenue trend and the top revenue dimensions.
type OverviewView struct {
	KPIs         OverviewKPIs `json:"kpis"`
	RevenueTrend TableData    `json:"revenue_trend"`
	TopBrands    TableData    `json:"top_brands"`
	TopCountries TableData    `json:"top_countries"`
}

// DriversView breaks revenue down by shop, campaign type and the
// refund-rate trend.
type DriversView struct {
	ShopPerformance TableData `json:"shop_performance"`
	CampaignRevenue TableData `json:"campaign_revenue"`
	RefundRateTrend TableData `json:"refund_rate_trend"`
}

// PromotionsKPIs is the coupon effectiveness KPI set.
type PromotionsKPIs struct {
	NetRevenueWithCoupon    query.Scalar `json:"net_revenue_with_coupon"`
	NetRevenueWithoutCoupon query.Scalar `json:"net_revenue_without_coupon"`
	AvgDiscountRate         query.Scalar `json:"avg_discount_rate"`
}

// PromotionsView reports coupon effectiveness: split revenue KPIs, the
// campaign ranking and the monthly coupon usage rate.
type PromotionsView struct {
	KPIs             PromotionsKPIs `json:"kpis"`
	CampaignRevenue  TableData      `json:"campaign_revenue"`
	CouponUsageTrend TableData      `json:"coupon_usage_trend"`
}

// RFMKPIs is the customer segmentation KPI set.
type RFMKPIs struct {
	Customers    query.Scalar `json:"customers"`
	Monetary     query.Scalar `json:"monetary"`
	AvgMonetary  query.Scalar `json:"avg_monetary"`
	AvgFrequency query.Scalar `json:"avg_frequency"`
}

// RFMView is the customer segmentation report. Available is false when
// the RFM customer table is not loaded; the component fields are then
// zero. Targets carries its own availability since the target list is
// a separate dataset.
type RFMView struct {
	Available       bool      `json:"available"`
	Reason          string    `json:"reason,omitempty"`
	KPIs            RFMKPIs   `json:"kpis"`
	SegmentSummary  TableData `json:"segment_summary"`
	SegmentClusters TableData `json:"segment_clusters"`
	Scatter         TableData `json:"scatter"`
	Targets         TableData `json:"targets"`
}

// BasketView is the market basket report. Available is false when the
// SKU summary and rule table are both missing; TopSKUs and the rule
// fields degrade independently since either dataset can be absent
// alone.
type BasketView struct {
	Available      bool             `json:"available"`
	Reason         string           `json:"reason,omitempty"`
	TopSKUs        TableData        `json:"top_skus"`
	Rules          []rules.Rule     `json:"rules"`
	RulesAvailable bool             `json:"rules_available"`
	Defaults       rules.Defaults   `json:"defaults"`
	Thresholds     rules.Thresholds `json:"thresholds"`
	Entities       []string         `json:"entities"`
}

// QualityView is the data quality report. Each component maps to one
// optional profile dataset and degrades independently.
type QualityView struct {
	Missingness TableData `json:"missingness"`
	Outliers    TableData `json:"outliers"`
	Audit       TableData `json:"audit"`
}

// Bundle is the full dashboard: every report view computed from one
// snapshot under one filter set.
type Bundle struct {
	Overview   OverviewView   `json:"overview"`
	Drivers    DriversView    `json:"drivers"`
	Promotions PromotionsView `json:"promotions"`
	RFM        RFMView        `json:"rfm"`
	Basket     BasketView     `json:"basket"`
	Quality    QualityView    `json:"quality"`
}

// FiltersResponse lists the filter options the primary dataset
// supports plus per-dataset availability, so clients can build their
// filter controls from one request.
type FiltersResponse struct {
	Months    []string              `json:"months"`
	YMFrom    string                `json:"ym_from"`
	YMTo      string                `json:"ym_to"`
	Companies []string              `json:"companies"`
	Brands    []string              `json:"brands"`
	Shops     []string              `json:"shops"`
	Countries []string              `json:"countries"`
	Campaigns []string              `json:"campaigns"`
	Datasets  []store.DatasetStatus `json:"datasets"`
}

// RFMFiltersResponse lists the drill-down options of the RFM view.
type RFMFiltersResponse struct {
	Available  bool     `json:"available"`
	Reason     string   `json:"reason,omitempty"`
	Segments   []string `json:"segments,omitempty"`
	Clusters   []int64  `json:"clusters,omitempty"`
	RecencyMin float64  `json:"recency_min"`
	RecencyMax float64  `json:"recency_max"`
}

// ReloadResponse reports the outcome of an administrative reload.
type ReloadResponse struct {
	Swapped    bool                  `json:"swapped"`
	LoadedAt   time.Time             `json:"loaded_at"`
	DurationMS int64                 `json:"duration_ms"`
	Datasets   []store.DatasetStatus `json:"datasets"`
}

// HealthResponse reports service health. SnapshotAt is nil until the
// first successful load, which is what readiness keys on.
type HealthResponse struct {
	Status            string     `json:"status"`
	Version           string     `json:"version"`
	UptimeSeconds     int64      `json:"uptime_seconds"`
	SnapshotAt        *time.Time `json:"snapshot_at,omitempty"`
	DatasetsAvailable int        `json:"datasets_available"`
}
