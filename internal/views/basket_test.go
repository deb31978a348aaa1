// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package views

import (
	"strings"
	"testing"

	"github.com/mercatus-io/mercatus/internal/rules"
)

func TestClampSKULimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultSKULimit},
		{5, MinSKULimit},
		{10, 10},
		{35, 35},
		{50, 50},
		{99, MaxSKULimit},
		{-1, MinSKULimit},
	}
	for _, c := range cases {
		if got := ClampSKULimit(c.in); got != c.want {
			t.Errorf("ClampSKULimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTopSKUs(t *testing.T) {
	tbl := mustTable(t, skuCSV)

	top := TopSKUs(tbl, 0)
	if !top.Available {
		t.Fatalf("top skus unavailable: %s", top.Reason)
	}
	if len(top.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(top.Rows))
	}
	if got := cellText(top.Rows, 0, 0); got != "SKU-A" {
		t.Errorf("top sku = %q, want SKU-A", got)
	}
	if got := cellText(top.Rows, 2, 0); got != "SKU-C" {
		t.Errorf("last sku = %q, want SKU-C", got)
	}

	t.Run("absent revenue column degrades", func(t *testing.T) {
		noRev := mustTable(t, "sku\nSKU-A\n")
		top := TopSKUs(noRev, 0)
		if top.Available {
			t.Error("top skus without revenue should be unavailable")
		}
	})
}

func TestBasketSection(t *testing.T) {
	t.Run("full snapshot", func(t *testing.T) {
		snap := newSnapshot(t, fullFixture())

		view := Basket(snap, DefaultBasketParams(snap))
		if !view.Available || !view.RulesAvailable {
			t.Fatalf("basket = %+v, want fully available", view)
		}
		if !view.TopSKUs.Available || len(view.TopSKUs.Rows) != 3 {
			t.Errorf("top skus = %+v, want 3 rows", view.TopSKUs)
		}

		// Defaults: median support 0.10, confidence floor 0.2, lift
		// floor 5. Only SKU-A -> SKU-B clears all three.
		if len(view.Rules) != 1 {
			t.Fatalf("rules = %d, want 1 at default thresholds", len(view.Rules))
		}
		if view.Rules[0].Antecedent != "SKU-A" || view.Rules[0].Consequent != "SKU-B" {
			t.Errorf("surviving rule = %s->%s, want SKU-A->SKU-B",
				view.Rules[0].Antecedent, view.Rules[0].Consequent)
		}
		if view.Defaults.RuleCount != 3 {
			t.Errorf("defaults rule count = %d, want 3", view.Defaults.RuleCount)
		}
	})

	t.Run("loosened thresholds admit more rules", func(t *testing.T) {
		snap := newSnapshot(t, fullFixture())

		params := DefaultBasketParams(snap)
		params.Thresholds.MinLift = 3
		view := Basket(snap, params)
		if len(view.Rules) != 2 {
			t.Fatalf("rules = %d, want 2 with lift floor 3", len(view.Rules))
		}
		for _, r := range view.Rules {
			if r.Support < params.Thresholds.MinSupport {
				t.Errorf("rule %s->%s support %v below threshold %v",
					r.Antecedent, r.Consequent, r.Support, params.Thresholds.MinSupport)
			}
		}
	})

	t.Run("entities come from the thresholded set", func(t *testing.T) {
		snap := newSnapshot(t, fullFixture())

		view := Basket(snap, DefaultBasketParams(snap))
		want := []string{"SKU-A", "SKU-B"}
		if len(view.Entities) != len(want) {
			t.Fatalf("entities = %v, want %v", view.Entities, want)
		}
		for i, e := range want {
			if view.Entities[i] != e {
				t.Errorf("entity %d = %q, want %q", i, view.Entities[i], e)
			}
		}
	})

	t.Run("rules without sku summary", func(t *testing.T) {
		snap := newSnapshot(t, map[string]string{
			"monthly_aggregates.csv":    monthlyCSV,
			"sku_pair_rules_top200.csv": rulesCSV,
		})

		view := Basket(snap, DefaultBasketParams(snap))
		if !view.Available || !view.RulesAvailable {
			t.Error("rules alone should keep the section available")
		}
		if view.TopSKUs.Available {
			t.Error("top skus should be unavailable without their extract")
		}
		if !strings.Contains(view.TopSKUs.Reason, "sku_summary.csv") {
			t.Errorf("top skus reason = %q, want the extract named", view.TopSKUs.Reason)
		}
	})

	t.Run("neither extract", func(t *testing.T) {
		snap := newSnapshot(t, map[string]string{"monthly_aggregates.csv": monthlyCSV})

		view := Basket(snap, DefaultBasketParams(snap))
		if view.Available {
			t.Error("basket should be unavailable")
		}
		if !strings.Contains(view.Reason, "sku_summary.csv") ||
			!strings.Contains(view.Reason, "sku_pair_rules_top200.csv") {
			t.Errorf("reason = %q, want both extracts named", view.Reason)
		}
	})
}

func TestRelatedRules(t *testing.T) {
	snap := newSnapshot(t, fullFixture())

	t.Run("drill-down for one sku", func(t *testing.T) {
		related, ok := RelatedRules(snap, rules.Thresholds{}, "SKU-A")
		if !ok {
			t.Fatal("rules should be available")
		}
		if len(related) != 2 {
			t.Fatalf("related rules = %d, want 2", len(related))
		}
		if related[0].Lift < related[1].Lift {
			t.Error("related rules should rank by lift descending")
		}
	})

	t.Run("unknown sku yields empty, not nil", func(t *testing.T) {
		related, ok := RelatedRules(snap, rules.Thresholds{}, "SKU-ZZ")
		if !ok {
			t.Fatal("rules should be available")
		}
		if related == nil || len(related) != 0 {
			t.Errorf("related = %v, want empty slice", related)
		}
	})

	t.Run("missing rules extract", func(t *testing.T) {
		bare := newSnapshot(t, map[string]string{"monthly_aggregates.csv": monthlyCSV})
		if _, ok := RelatedRules(bare, rules.Thresholds{}, "SKU-A"); ok {
			t.Error("related rules should report unavailable")
		}
	})
}
