// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
datasets.go - Dataset Catalog

Names the CSV extracts the upstream pipeline drops into the data
directory and the columns the analytics layer reads from them. File
names are fixed by the pipeline; only the data directory is
configurable.
*/

package store

// Dataset names used in statuses, metrics labels and snapshot lookups.
const (
	DatasetMonthly    = "monthly_aggregates"
	DatasetRFM        = "rfm_customers"
	DatasetRFMTargets = "rfm_targets"
	DatasetSKUSummary = "sku_summary"
	DatasetRules      = "sku_pair_rules"
	DatasetMissing    = "missing_profile"
	DatasetOutliers   = "outlier_profile"
	DatasetAudit      = "audit_orders"
)

// Column names in monthly_aggregates.csv.
const (
	ColYearMonth       = "YearMonth"
	ColCompany         = "Company"
	ColBrands          = "Brands"
	ColShop            = "shop"
	ColShippingCountry = "shipping_country"
	ColCampaignType    = "campaign_type_clean"
	ColHasCoupon       = "has_coupon"
	ColOrders          = "orders"
	ColNetRevenue      = "net_revenue_gbp"
	ColRefund          = "refund_gbp"
	ColOrderTotal      = "order_total_gbp"
	ColAOV             = "aov_gbp"
	ColRefundRate      = "refund_rate"
	ColAvgDiscountRate = "avg_discount_rate"
)

// Column names in rfm_customer_table.csv.
const (
	ColCustomerID    = "Customer_ID"
	ColRFMSegment    = "RFM_Segment"
	ColKMeansCluster = "kmeans_cluster"
	ColRecencyDays   = "recency_days"
	ColFrequency     = "frequency"
	ColMonetary      = "monetary"
)

// Column names in sku_summary.csv.
const (
	ColSKU          = "sku"
	ColRevenueAlloc = "revenue_alloc_gbp"
)

// Column names in the data quality profiles.
const (
	ColColumnName     = "column_name"
	ColMissingPct     = "missing_pct"
	ColColumn         = "column"
	ColPctOutliersIQR = "pct_outliers_iqr"
)

// NoCampaignLabel is the canonical spelling for rows whose campaign
// type is any casing of "no coupon". Normalized at load so grouping
// and filtering see one bucket.
const NoCampaignLabel = "No campaign"

// Descriptor describes one dataset of the catalog.
type Descriptor struct {
	// Name is the logical dataset name used in statuses and metrics.
	Name string `json:"name"`

	// File is the fixed file name inside the data directory.
	File string `json:"file"`

	// Mandatory marks the primary dataset; its absence aborts a load.
	Mandatory bool `json:"mandatory"`
}

var catalog = []Descriptor{
	{Name: DatasetMonthly, File: "monthly_aggregates.csv", Mandatory: true},
	{Name: DatasetRFM, File: "rfm_customer_table.csv"},
	{Name: DatasetRFMTargets, File: "rfm_target_list.csv"},
	{Name: DatasetSKUSummary, File: "sku_summary.csv"},
	{Name: DatasetRules, File: "sku_pair_rules_top200.csv"},
	{Name: DatasetMissing, File: "missing_profile_current.csv"},
	{Name: DatasetOutliers, File: "outlier_profile_iqr_key_metrics.csv"},
	{Name: DatasetAudit, File: "audit_top_orders_by_order_total_gbp.csv"},
}

// Catalog returns the full dataset catalog, primary dataset first.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}
