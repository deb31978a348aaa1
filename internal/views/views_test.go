// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package views

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
)

const monthlyCSV = `YearMonth,Company,Brands,shop,shipping_country,campaign_type_clean,has_coupon,orders,net_revenue_gbp,refund_gbp,order_total_gbp,aov_gbp,refund_rate,avg_discount_rate
2024-01,Acme Ltd,Brand A,webshop,GB,No campaign,False,10,1000.0,50.0,1100.0,110.0,0.045,0.0
2024-01,Acme Ltd,Brand B,marketplace,DE,Summer Sale,True,4,480.0,0.0,500.0,125.0,0.0,0.10
2024-02,Acme Ltd,Brand A,webshop,GB,Summer Sale,True,20,2400.0,120.0,2600.0,130.0,0.046,0.08
2024-02,Acme Ltd,Brand B,webshop,FR,No campaign,False,6,540.0,30.0,600.0,100.0,0.05,0.0
`

const rfmCSV = `Customer_ID,RFM_Segment,kmeans_cluster,recency_days,frequency,monetary
C001,Champions,0,10,12,500.0
C002,Champions,0,25,8,420.0
C003,Champions,1,40,6,300.0
C004,At Risk,1,180,2,80.0
C005,At Risk,2,220,1,40.0
C006,Loyal,0,60,5,260.0
`

const targetsCSV = `Customer_ID,RFM_Segment,monetary
C004,At Risk,80.0
C005,At Risk,40.0
`

const skuCSV = `sku,revenue_alloc_gbp,orders
SKU-A,1200.0,30
SKU-B,800.0,22
SKU-C,400.0,10
`

const rulesCSV = `antecedent,consequent,support,confidence,lift,pair_order_count
SKU-A,SKU-B,0.10,0.50,8.0,120
SKU-C,SKU-D,0.30,0.60,3.0,340
SKU-A,SKU-C,0.05,0.25,12.0,60
`

const missingCSV = `column_name,missing_pct
campaign_type_clean,12.5
shipping_country,0.8
aov_gbp,0.0
`

const outliersCSV = `column,pct_outliers_iqr,n_outliers
net_revenue_gbp,3.1,155
order_total_gbp,4.2,210
`

const auditCSV = `order_id,order_total_gbp
O-1,9999.0
O-2,8888.0
`

// fullFixture maps every catalog file to its test content.
func fullFixture() map[string]string {
	return map[string]string{
		"monthly_aggregates.csv":                  monthlyCSV,
		"rfm_customer_table.csv":                  rfmCSV,
		"rfm_target_list.csv":                     targetsCSV,
		"sku_summary.csv":                         skuCSV,
		"sku_pair_rules_top200.csv":               rulesCSV,
		"missing_profile_current.csv":             missingCSV,
		"outlier_profile_iqr_key_metrics.csv":     outliersCSV,
		"audit_top_orders_by_order_total_gbp.csv": auditCSV,
	}
}

// newSnapshot loads a snapshot from the given fixture files.
func newSnapshot(t *testing.T, files map[string]string) *store.Snapshot {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	snap, err := store.NewLoader(dir).LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	return snap
}

// mustTable parses an inline CSV fixture.
func mustTable(t *testing.T, raw string) *frame.Table {
	t.Helper()
	tbl, err := frame.ReadCSV(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadCSV error = %v", err)
	}
	return tbl
}

// scalarValue asserts the scalar is valid and returns its value.
func scalarValue(t *testing.T, s query.Scalar, what string) float64 {
	t.Helper()
	if !s.IsValid() {
		t.Fatalf("%s state = %s, want ok", what, s.State.String())
	}
	return s.Value
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

// cellText reads a table cell from flattened row data as a string.
func cellText(rows [][]interface{}, row, col int) string {
	s, _ := rows[row][col].(string)
	return s
}

func TestComputeViewsFullBundle(t *testing.T) {
	snap := newSnapshot(t, fullFixture())

	bundle := ComputeViews(snap, query.Spec{})

	if got := scalarValue(t, bundle.Overview.KPIs.Orders, "orders"); got != 40 {
		t.Errorf("orders = %v, want 40", got)
	}
	if !bundle.Overview.RevenueTrend.Available {
		t.Error("revenue trend should be available")
	}
	if !bundle.Drivers.ShopPerformance.Available {
		t.Error("shop performance should be available")
	}
	if !bundle.Promotions.CouponUsageTrend.Available {
		t.Error("coupon usage trend should be available")
	}
	if !bundle.RFM.Available {
		t.Error("rfm section should be available")
	}
	if !bundle.Basket.Available || !bundle.Basket.RulesAvailable {
		t.Error("basket section should be fully available")
	}
	if !bundle.Quality.Missingness.Available {
		t.Error("missingness panel should be available")
	}
}

func TestComputeViewsAppliesFilter(t *testing.T) {
	snap := newSnapshot(t, fullFixture())

	spec := query.Spec{Sets: []query.SetPredicate{
		{Column: store.ColBrands, Selected: []string{"Brand A"}},
	}}
	bundle := ComputeViews(snap, spec)

	if got := scalarValue(t, bundle.Overview.KPIs.Orders, "orders"); got != 30 {
		t.Errorf("Brand A orders = %v, want 30", got)
	}
	if got := scalarValue(t, bundle.Overview.KPIs.NetRevenue, "net revenue"); got != 3400 {
		t.Errorf("Brand A net revenue = %v, want 3400", got)
	}

	brands := bundle.Overview.TopBrands
	if len(brands.Rows) != 1 {
		t.Fatalf("top brands rows = %d, want 1", len(brands.Rows))
	}
	if got := cellText(brands.Rows, 0, 0); got != "Brand A" {
		t.Errorf("top brand = %q, want Brand A", got)
	}
}

func TestComputeViewsPrimaryOnly(t *testing.T) {
	snap := newSnapshot(t, map[string]string{"monthly_aggregates.csv": monthlyCSV})

	bundle := ComputeViews(snap, query.Spec{})

	if bundle.RFM.Available {
		t.Error("rfm section should be unavailable without its extract")
	}
	if !strings.Contains(bundle.RFM.Reason, "file not found") {
		t.Errorf("rfm reason = %q, want it to mention the missing file", bundle.RFM.Reason)
	}
	if bundle.Basket.Available {
		t.Error("basket section should be unavailable without its extracts")
	}
	if bundle.Quality.Audit.Available {
		t.Error("audit panel should be unavailable without its extract")
	}
	if got := scalarValue(t, bundle.Overview.KPIs.NetRevenue, "net revenue"); got != 4420 {
		t.Errorf("net revenue = %v, want 4420", got)
	}
}

func TestFilters(t *testing.T) {
	snap := newSnapshot(t, fullFixture())

	f := Filters(snap)

	if want := []string{"2024-01", "2024-02"}; len(f.Months) != 2 || f.Months[0] != want[0] || f.Months[1] != want[1] {
		t.Errorf("months = %v, want %v", f.Months, want)
	}
	if f.YMFrom != "2024-01" || f.YMTo != "2024-02" {
		t.Errorf("month bounds = %s..%s, want 2024-01..2024-02", f.YMFrom, f.YMTo)
	}
	if len(f.Brands) != 2 || f.Brands[0] != "Brand A" {
		t.Errorf("brands = %v, want [Brand A Brand B]", f.Brands)
	}
	if len(f.Datasets) != len(store.Catalog()) {
		t.Errorf("datasets = %d, want %d", len(f.Datasets), len(store.Catalog()))
	}
}

func TestRFMFilters(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		snap := newSnapshot(t, fullFixture())

		f := RFMFilters(snap)
		if !f.Available {
			t.Fatalf("rfm filters unavailable: %s", f.Reason)
		}
		if len(f.Segments) != 3 || f.Segments[0] != "At Risk" {
			t.Errorf("segments = %v, want [At Risk Champions Loyal]", f.Segments)
		}
		if len(f.Clusters) != 3 {
			t.Errorf("clusters = %v, want three clusters", f.Clusters)
		}
		if f.RecencyMin != 10 || f.RecencyMax != 220 {
			t.Errorf("recency bounds = %v..%v, want 10..220", f.RecencyMin, f.RecencyMax)
		}
	})

	t.Run("missing extract", func(t *testing.T) {
		snap := newSnapshot(t, map[string]string{"monthly_aggregates.csv": monthlyCSV})

		f := RFMFilters(snap)
		if f.Available {
			t.Error("rfm filters should be unavailable")
		}
		if !strings.Contains(f.Reason, "rfm_customer_table.csv") {
			t.Errorf("reason = %q, want it to name the missing file", f.Reason)
		}
	})
}
