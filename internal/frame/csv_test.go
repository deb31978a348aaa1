// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package frame

import (
	"strings"
	"testing"
)

func TestReadCSVTypeInference(t *testing.T) {
	doc := strings.Join([]string{
		"YearMonth,orders,net_revenue_gbp,has_coupon,shop",
		"2024-01,10,100.5,True,Amazon",
		"2024-02,5,0,False,Shopify",
		"2024-03,,NaN,True,",
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", tbl.NumRows())
	}

	t.Run("string column", func(t *testing.T) {
		c, ok := tbl.Col("YearMonth")
		if !ok {
			t.Fatal("expected YearMonth column")
		}
		if c.Kind() != KindString {
			t.Errorf("expected string kind, got %v", c.Kind())
		}
	})

	t.Run("integer column", func(t *testing.T) {
		c, ok := tbl.Col("orders")
		if !ok {
			t.Fatal("expected orders column")
		}
		if c.Kind() != KindInt {
			t.Errorf("expected int kind, got %v", c.Kind())
		}
		if n, _ := c.Value(0).Int64(); n != 10 {
			t.Errorf("expected 10, got %d", n)
		}
		if !c.Value(2).IsMissing() {
			t.Error("expected empty cell to decode as missing")
		}
	})

	t.Run("float column with NaN", func(t *testing.T) {
		c, ok := tbl.Col("net_revenue_gbp")
		if !ok {
			t.Fatal("expected net_revenue_gbp column")
		}
		if c.Kind() != KindFloat {
			t.Errorf("expected float kind, got %v", c.Kind())
		}
		if !c.Value(2).IsMissing() {
			t.Error("expected NaN to decode as missing")
		}
	})

	t.Run("bool column", func(t *testing.T) {
		c, ok := tbl.Col("has_coupon")
		if !ok {
			t.Fatal("expected has_coupon column")
		}
		if c.Kind() != KindBool {
			t.Errorf("expected bool kind, got %v", c.Kind())
		}
		b, _ := c.Value(0).Truth()
		if !b {
			t.Error("expected True to decode as true")
		}
	})

	t.Run("empty string cell is missing", func(t *testing.T) {
		c, _ := tbl.Col("shop")
		if !c.Value(2).IsMissing() {
			t.Error("expected empty shop cell to be missing")
		}
	})
}

func TestReadCSVMissingTokens(t *testing.T) {
	doc := "v\nNA\nnull\nNone\nnan\n"
	tbl, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := tbl.Col("v")
	for i := 0; i < c.Len(); i++ {
		if !c.Value(i).IsMissing() {
			t.Errorf("expected row %d to be missing, got %v", i, c.Value(i))
		}
	}
}

func TestReadCSVMixedColumnFallsBackToString(t *testing.T) {
	doc := "v\n1\ntwo\n3\n"
	tbl, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := tbl.Col("v")
	if c.Kind() != KindString {
		t.Errorf("expected string kind for mixed column, got %v", c.Kind())
	}
	if s, _ := c.Value(0).Text(); s != "1" {
		t.Errorf("expected %q, got %q", "1", s)
	}
}

func TestReadCSVShortRecordPads(t *testing.T) {
	doc := "a,b\n1,2\n3\n"
	tbl, err := ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := tbl.Col("b")
	if !b.Value(1).IsMissing() {
		t.Error("expected short record to pad with missing")
	}
}

func TestReadCSVErrors(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		if _, err := ReadCSV(strings.NewReader("")); err == nil {
			t.Error("expected error for empty document")
		}
	})

	t.Run("long record", func(t *testing.T) {
		if _, err := ReadCSV(strings.NewReader("a\n1,2\n")); err == nil {
			t.Error("expected error for record longer than header")
		}
	})
}
