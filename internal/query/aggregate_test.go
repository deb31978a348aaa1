// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package query

import (
	"testing"

	"github.com/mercatus-io/mercatus/internal/frame"
)

func aggFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.NewTable(
		frame.NewColumn("YearMonth", []frame.Value{
			frame.Str("2024-02"), frame.Str("2024-01"), frame.Str("2024-01"),
			frame.Missing(), frame.Str("2024-02"),
		}),
		frame.NewColumn("net_revenue_gbp", []frame.Value{
			frame.Float(50), frame.Float(100), frame.Missing(),
			frame.Float(999), frame.Float(25),
		}),
		frame.NewColumn("orders", []frame.Value{
			frame.Int(5), frame.Int(10), frame.Int(2),
			frame.Int(99), frame.Int(3),
		}),
		frame.NewColumn("customer", []frame.Value{
			frame.Str("c1"), frame.Str("c2"), frame.Str("c2"),
			frame.Str("c3"), frame.Missing(),
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestAggregateGrouping(t *testing.T) {
	tbl := aggFixture(t)
	out := Aggregate(tbl, []string{"YearMonth"}, []Measure{
		{Column: "net_revenue_gbp", Op: OpSum, As: "net_revenue"},
		{Column: "orders", Op: OpSum, As: "orders"},
	})

	t.Run("missing group keys are dropped", func(t *testing.T) {
		if out.NumRows() != 2 {
			t.Fatalf("expected 2 groups, got %d", out.NumRows())
		}
	})

	t.Run("groups are ordered by key ascending", func(t *testing.T) {
		ym, _ := out.Col("YearMonth")
		first, _ := ym.Value(0).Text()
		second, _ := ym.Value(1).Text()
		if first != "2024-01" || second != "2024-02" {
			t.Errorf("expected 2024-01 then 2024-02, got %s then %s", first, second)
		}
	})

	t.Run("sum excludes missing values", func(t *testing.T) {
		rev, _ := out.Col("net_revenue")
		// 2024-01: 100 + missing = 100
		if f, _ := rev.Value(0).Float64(); f != 100 {
			t.Errorf("expected 100, got %v", f)
		}
		// 2024-02: 50 + 25 = 75
		if f, _ := rev.Value(1).Float64(); f != 75 {
			t.Errorf("expected 75, got %v", f)
		}
	})

	t.Run("integer sums stay integers", func(t *testing.T) {
		orders, _ := out.Col("orders")
		if orders.Kind() != frame.KindInt {
			t.Errorf("expected int kind, got %v", orders.Kind())
		}
		if n, _ := orders.Value(0).Int64(); n != 12 {
			t.Errorf("expected 12, got %d", n)
		}
	})
}

func TestAggregateMean(t *testing.T) {
	tbl, err := frame.NewTable(
		frame.NewColumn("g", []frame.Value{
			frame.Str("a"), frame.Str("a"), frame.Str("b"), frame.Str("b"),
		}),
		frame.NewColumn("v", []frame.Value{
			frame.Float(10), frame.Missing(), frame.Missing(), frame.Missing(),
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Aggregate(tbl, []string{"g"}, []Measure{{Column: "v", Op: OpMean, As: "mean_v"}})
	mean, _ := out.Col("mean_v")

	t.Run("mean ignores missing values", func(t *testing.T) {
		// group a holds 10 and missing; the mean is exactly 10
		if f, _ := mean.Value(0).Float64(); f != 10 {
			t.Errorf("expected 10, got %v", f)
		}
	})

	t.Run("all-missing group yields no value, not zero", func(t *testing.T) {
		if !mean.Value(1).IsMissing() {
			t.Errorf("expected missing, got %v", mean.Value(1))
		}
	})
}

func TestAggregateCountAndNUnique(t *testing.T) {
	tbl := aggFixture(t)
	out := Aggregate(tbl, []string{"YearMonth"}, []Measure{
		{Column: "customer", Op: OpCount, As: "rows"},
		{Column: "customer", Op: OpNUnique, As: "customers"},
	})

	rows, _ := out.Col("rows")
	customers, _ := out.Col("customers")

	// 2024-01 has two rows, both customer c2
	if n, _ := rows.Value(0).Int64(); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
	if n, _ := customers.Value(0).Int64(); n != 1 {
		t.Errorf("expected 1 distinct customer, got %d", n)
	}

	// 2024-02 has two rows, customers c1 and missing
	if n, _ := rows.Value(1).Int64(); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
	if n, _ := customers.Value(1).Int64(); n != 1 {
		t.Errorf("expected missing to be excluded from nunique, got %d", n)
	}
}

func TestAggregateCompositeKey(t *testing.T) {
	tbl, err := frame.NewTable(
		frame.NewColumn("seg", []frame.Value{
			frame.Str("VIP"), frame.Str("VIP"), frame.Str("At Risk"),
		}),
		frame.NewColumn("cluster", []frame.Value{
			frame.Int(1), frame.Int(0), frame.Int(1),
		}),
		frame.NewColumn("customer", []frame.Value{
			frame.Str("c1"), frame.Str("c2"), frame.Str("c3"),
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Aggregate(tbl, []string{"seg", "cluster"}, []Measure{
		{Column: "customer", Op: OpNUnique, As: "customers"},
	})

	if out.NumRows() != 3 {
		t.Fatalf("expected 3 groups, got %d", out.NumRows())
	}
	seg, _ := out.Col("seg")
	cluster, _ := out.Col("cluster")
	// ascending: ("At Risk",1), ("VIP",0), ("VIP",1)
	if s, _ := seg.Value(0).Text(); s != "At Risk" {
		t.Errorf("expected At Risk first, got %s", s)
	}
	if s, _ := seg.Value(1).Text(); s != "VIP" {
		t.Errorf("expected VIP second, got %s", s)
	}
	if n, _ := cluster.Value(1).Int64(); n != 0 {
		t.Errorf("expected cluster 0 before 1 within VIP, got %d", n)
	}
}

func TestAggregateAbsentColumns(t *testing.T) {
	tbl := aggFixture(t)

	t.Run("absent group column yields empty result with schema", func(t *testing.T) {
		out := Aggregate(tbl, []string{"Brands"}, []Measure{
			{Column: "net_revenue_gbp", Op: OpSum, As: "net_revenue"},
		})
		if out.NumRows() != 0 {
			t.Errorf("expected 0 rows, got %d", out.NumRows())
		}
		if _, ok := out.Col("net_revenue"); !ok {
			t.Error("expected output schema to carry measure column")
		}
	})

	t.Run("absent measure column yields missing cells", func(t *testing.T) {
		out := Aggregate(tbl, []string{"YearMonth"}, []Measure{
			{Column: "refund_gbp", Op: OpSum, As: "refund"},
		})
		refund, _ := out.Col("refund")
		for i := 0; i < out.NumRows(); i++ {
			if !refund.Value(i).IsMissing() {
				t.Errorf("row %d: expected missing, got %v", i, refund.Value(i))
			}
		}
	})
}

func TestTopN(t *testing.T) {
	tbl, err := frame.NewTable(
		frame.NewColumn("brand", []frame.Value{
			frame.Str("Delta"), frame.Str("Alpha"), frame.Str("Bravo"), frame.Str("Charlie"),
		}),
		frame.NewColumn("net_revenue", []frame.Value{
			frame.Float(40), frame.Float(10), frame.Float(40), frame.Missing(),
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("descending with ascending tie-break", func(t *testing.T) {
		out := TopN(tbl, "net_revenue", 3)
		brand, _ := out.Col("brand")
		want := []string{"Bravo", "Delta", "Alpha"}
		for i, w := range want {
			if s, _ := brand.Value(i).Text(); s != w {
				t.Errorf("row %d: expected %s, got %s", i, w, s)
			}
		}
	})

	t.Run("non-positive n returns full ranking", func(t *testing.T) {
		out := TopN(tbl, "net_revenue", 0)
		if out.NumRows() != 4 {
			t.Errorf("expected 4 rows, got %d", out.NumRows())
		}
		brand, _ := out.Col("brand")
		if s, _ := brand.Value(3).Text(); s != "Charlie" {
			t.Errorf("expected missing-measure row last, got %s", s)
		}
	})
}
