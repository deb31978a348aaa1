// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
basket.go - Basket Analysis Report

Ranks SKUs by allocated revenue and filters the precomputed pair rules
by the caller's thresholds. Either half of the section can be absent on
its own; the section is unavailable only when both extracts failed.
*/

package views

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/rules"
	"github.com/mercatus-io/mercatus/internal/store"
)

// Bounds for the top-SKU selector.
const (
	MinSKULimit     = 10
	MaxSKULimit     = 50
	DefaultSKULimit = 20
)

// BasketParams carries the caller-tunable knobs of the basket view.
type BasketParams struct {
	TopN       int
	Thresholds rules.Thresholds
}

// DefaultBasketParams derives the initial knob positions from the
// snapshot's rule defaults.
func DefaultBasketParams(snap *store.Snapshot) BasketParams {
	d := snap.RuleDefaults()
	return BasketParams{
		TopN: DefaultSKULimit,
		Thresholds: rules.Thresholds{
			MinSupport:    d.MinSupport,
			MinConfidence: d.MinConfidence,
			MinLift:       d.MinLift,
		},
	}
}

// ClampSKULimit pins the top-N selector into its slider range. Zero
// selects the default.
func ClampSKULimit(n int) int {
	switch {
	case n == 0:
		return DefaultSKULimit
	case n < MinSKULimit:
		return MinSKULimit
	case n > MaxSKULimit:
		return MaxSKULimit
	}
	return n
}

// Basket assembles the basket analysis section.
func Basket(snap *store.Snapshot, params BasketParams) models.BasketView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewBasket, time.Since(start)) }()

	skuTable, skuOK := snap.Table(store.DatasetSKUSummary)
	ruleSet, rulesOK := snap.Rules()
	if !skuOK && !rulesOK {
		return models.BasketView{
			Reason: DatasetReason(snap, store.DatasetSKUSummary) + "; " + DatasetReason(snap, store.DatasetRules),
		}
	}

	view := models.BasketView{
		Available:  true,
		Thresholds: params.Thresholds,
	}
	if skuOK {
		view.TopSKUs = TopSKUs(skuTable, params.TopN)
	} else {
		view.TopSKUs = models.UnavailableTable(DatasetReason(snap, store.DatasetSKUSummary))
	}
	if rulesOK {
		thresholded := ruleSet.Threshold(params.Thresholds)
		view.RulesAvailable = true
		view.Rules = thresholded.Rules()
		if view.Rules == nil {
			view.Rules = []rules.Rule{}
		}
		view.Defaults = snap.RuleDefaults()
		view.Entities = thresholded.Entities()
	}
	return view
}

// TopSKUs ranks SKUs by allocated revenue, keeping the top limit rows
// after clamping.
func TopSKUs(t *frame.Table, limit int) models.TableData {
	if name, ok := requireColumns(t, store.ColSKU, store.ColRevenueAlloc); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	return models.NewTableData(query.TopN(t, store.ColRevenueAlloc, ClampSKULimit(limit)))
}

// RelatedRules returns the drill-down rows for one SKU over the
// thresholded rule set. The second return is false when the rules
// extract did not load.
func RelatedRules(snap *store.Snapshot, th rules.Thresholds, entity string) ([]rules.Rule, bool) {
	set, ok := snap.Rules()
	if !ok {
		return nil, false
	}
	related := set.Threshold(th).Related(entity, rules.RelatedLimit)
	if related == nil {
		related = []rules.Rule{}
	}
	return related, true
}
