// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package query

import (
	"math"
	"testing"

	"github.com/goccy/go-json"

	"github.com/mercatus-io/mercatus/internal/frame"
)

func kpiFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.NewTable(
		frame.NewColumn("YearMonth", []frame.Value{frame.Str("2024-01"), frame.Str("2024-02")}),
		frame.NewColumn("orders", []frame.Value{frame.Int(10), frame.Int(5)}),
		frame.NewColumn("net_revenue_gbp", []frame.Value{frame.Float(100), frame.Float(0)}),
		frame.NewColumn("has_coupon", []frame.Value{frame.Bool(true), frame.Bool(false)}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestTotal(t *testing.T) {
	tbl := kpiFixture(t)

	t.Run("sums non-missing values", func(t *testing.T) {
		s := Total(tbl, "net_revenue_gbp")
		if !s.IsValid() {
			t.Fatalf("expected valid scalar, got %v", s.State)
		}
		if s.Value != 100 {
			t.Errorf("expected 100, got %v", s.Value)
		}
	})

	t.Run("absent column is no value", func(t *testing.T) {
		if s := Total(tbl, "refund_gbp"); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})

	t.Run("single all-missing row is no value", func(t *testing.T) {
		one, err := frame.NewTable(
			frame.NewColumn("monetary", []frame.Value{frame.Missing()}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s := Total(one, "monetary"); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})

	t.Run("empty table is no value", func(t *testing.T) {
		empty := tbl.Select([]bool{false, false})
		if s := Total(empty, "net_revenue_gbp"); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})
}

func TestMeanOf(t *testing.T) {
	t.Run("missing values are excluded, not zeroed", func(t *testing.T) {
		tbl, err := frame.NewTable(
			frame.NewColumn("monetary", []frame.Value{frame.Float(84.5), frame.Missing()}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := MeanOf(tbl, "monetary")
		if !s.IsValid() {
			t.Fatalf("expected valid scalar, got %v", s.State)
		}
		if s.Value != 84.5 {
			t.Errorf("expected 84.5, got %v", s.Value)
		}
	})

	t.Run("all missing is no value", func(t *testing.T) {
		tbl, err := frame.NewTable(
			frame.NewColumn("monetary", []frame.Value{frame.Missing(), frame.Missing()}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s := MeanOf(tbl, "monetary"); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})
}

func TestRatio(t *testing.T) {
	tbl := kpiFixture(t)

	t.Run("divides totals", func(t *testing.T) {
		s := Ratio(tbl, "net_revenue_gbp", "orders")
		if !s.IsValid() {
			t.Fatalf("expected valid scalar, got %v", s.State)
		}
		want := 100.0 / 15.0
		if math.Abs(s.Value-want) > 1e-9 {
			t.Errorf("expected %v, got %v", want, s.Value)
		}
	})

	t.Run("zero denominator is undefined", func(t *testing.T) {
		zero, err := frame.NewTable(
			frame.NewColumn("n", []frame.Value{frame.Float(5)}),
			frame.NewColumn("d", []frame.Value{frame.Float(0)}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s := Ratio(zero, "n", "d"); s.State != ScalarUndefined {
			t.Errorf("expected undefined, got %v", s.State)
		}
	})

	t.Run("absent denominator is undefined", func(t *testing.T) {
		if s := Ratio(tbl, "net_revenue_gbp", "nope"); s.State != ScalarUndefined {
			t.Errorf("expected undefined, got %v", s.State)
		}
	})

	t.Run("absent numerator over sound denominator is no value", func(t *testing.T) {
		if s := Ratio(tbl, "nope", "orders"); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})

	t.Run("never zero when undefined", func(t *testing.T) {
		zero, err := frame.NewTable(
			frame.NewColumn("n", []frame.Value{frame.Float(5)}),
			frame.NewColumn("d", []frame.Value{frame.Float(0)}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := Ratio(zero, "n", "d")
		if s.IsValid() {
			t.Error("expected undefined ratio to not be valid")
		}
	})
}

func TestConditionalTotal(t *testing.T) {
	tbl := kpiFixture(t)

	t.Run("sums matching rows only", func(t *testing.T) {
		s := ConditionalTotal(tbl, "orders", "has_coupon", frame.Bool(true))
		if !s.IsValid() {
			t.Fatalf("expected valid scalar, got %v", s.State)
		}
		if s.Value != 10 {
			t.Errorf("expected 10, got %v", s.Value)
		}
	})

	t.Run("absent predicate column is no value", func(t *testing.T) {
		if s := ConditionalTotal(tbl, "orders", "nope", frame.Bool(true)); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})

	t.Run("no matching rows is no value", func(t *testing.T) {
		only, err := frame.NewTable(
			frame.NewColumn("orders", []frame.Value{frame.Int(5)}),
			frame.NewColumn("has_coupon", []frame.Value{frame.Bool(false)}),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s := ConditionalTotal(only, "orders", "has_coupon", frame.Bool(true)); s.State != ScalarNoValue {
			t.Errorf("expected no_value, got %v", s.State)
		}
	})
}

func TestEmptyFilteredTableKPIs(t *testing.T) {
	// categorical filter that matches nothing: all KPIs degrade, nothing panics
	tbl := kpiFixture(t)
	empty := Apply(tbl, Spec{Sets: []SetPredicate{{Column: "YearMonth", Selected: []string{"1999-01"}}}})
	if empty.NumRows() != 0 {
		t.Fatalf("expected 0 rows, got %d", empty.NumRows())
	}

	if s := Total(empty, "net_revenue_gbp"); s.State != ScalarNoValue {
		t.Errorf("expected no_value total, got %v", s.State)
	}
	if s := Ratio(empty, "net_revenue_gbp", "orders"); s.State != ScalarUndefined {
		t.Errorf("expected undefined ratio, got %v", s.State)
	}
	if s := ConditionalTotal(empty, "orders", "has_coupon", frame.Bool(true)); s.State != ScalarNoValue {
		t.Errorf("expected no_value conditional total, got %v", s.State)
	}
}

func TestNUnique(t *testing.T) {
	tbl, err := frame.NewTable(
		frame.NewColumn("customer", []frame.Value{
			frame.Str("c1"), frame.Str("c2"), frame.Str("c1"), frame.Missing(),
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := NUnique(tbl, "customer")
	if !ok {
		t.Fatal("expected column to be found")
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}

	if _, ok := NUnique(tbl, "nope"); ok {
		t.Error("expected absent column to report not found")
	}
}

func TestScalarStateString(t *testing.T) {
	if ScalarValid.String() != "ok" {
		t.Errorf("expected ok, got %s", ScalarValid.String())
	}
	if ScalarNoValue.String() != "no_value" {
		t.Errorf("expected no_value, got %s", ScalarNoValue.String())
	}
	if ScalarUndefined.String() != "undefined" {
		t.Errorf("expected undefined, got %s", ScalarUndefined.String())
	}
}

func TestScalarMarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   Scalar
		want string
	}{
		{"valid", Valid(42.5), `{"value":42.5,"state":"ok"}`},
		{"valid zero", Valid(0), `{"value":0,"state":"ok"}`},
		{"no value", NoValue(), `{"value":null,"state":"no_value"}`},
		{"undefined", Undefined(), `{"value":null,"state":"undefined"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := json.Marshal(c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != c.want {
				t.Errorf("expected %s, got %s", c.want, got)
			}
		})
	}
}
