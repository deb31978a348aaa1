// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package query implements the filter-and-aggregate layer every report
// view is built from: predicate filtering, grouped aggregation, top-N
// ranking and sentinel-aware KPI scalars.
//
// All operations are pure functions over immutable frame.Tables. Filters
// compose by logical AND and are order-independent; aggregations exclude
// missing values instead of coercing them to zero; ratios that divide by
// zero come back as an explicit Undefined scalar instead of panicking or
// rendering as 0.
package query

import (
	"github.com/mercatus-io/mercatus/internal/frame"
)

// RangePredicate keeps rows where lower <= row[column] <= upper, both
// ends inclusive. Rows whose cell is missing are excluded. Bounds are
// compared with the column's own ordering, so "2024-01".."2024-06" works
// on the month key and 0..90 works on a numeric recency column. A
// missing bound leaves that end open.
type RangePredicate struct {
	Column string
	Lower  frame.Value
	Upper  frame.Value
}

// SetPredicate keeps rows where row[column] is one of the selected
// values. An empty selection means "no filtering on this column" and
// passes every row; a non-empty selection excludes rows whose cell is
// missing. Selections are raw strings coerced to the column's kind at
// apply time, matching how they arrive in query parameters.
type SetPredicate struct {
	Column   string
	Selected []string
}

// Spec is a full filter specification: one optional range predicate plus
// any number of categorical predicates. Predicates AND together.
type Spec struct {
	Range *RangePredicate
	Sets  []SetPredicate
}

// Apply evaluates the specification against a table and returns the
// filtered view. Predicates whose target column is absent are skipped
// entirely, per the degradation contract: a missing dimension column
// disables that filter rather than emptying the result. Apply never
// mutates its input and the outcome is independent of predicate order.
func Apply(t *frame.Table, spec Spec) *frame.Table {
	if t == nil {
		return frame.Empty()
	}
	if t.NumRows() == 0 {
		return t
	}

	mask := make([]bool, t.NumRows())
	for i := range mask {
		mask[i] = true
	}

	if spec.Range != nil {
		applyRange(t, *spec.Range, mask)
	}
	for _, p := range spec.Sets {
		applySet(t, p, mask)
	}

	return t.Select(mask)
}

func applyRange(t *frame.Table, p RangePredicate, mask []bool) {
	col, ok := t.Col(p.Column)
	if !ok {
		return
	}
	for i := range mask {
		if !mask[i] {
			continue
		}
		v := col.Value(i)
		if v.IsMissing() {
			mask[i] = false
			continue
		}
		if !p.Lower.IsMissing() && v.Compare(p.Lower) < 0 {
			mask[i] = false
			continue
		}
		if !p.Upper.IsMissing() && v.Compare(p.Upper) > 0 {
			mask[i] = false
		}
	}
}

func applySet(t *frame.Table, p SetPredicate, mask []bool) {
	if len(p.Selected) == 0 {
		return
	}
	col, ok := t.Col(p.Column)
	if !ok {
		return
	}

	selected := make(map[frame.Value]struct{}, len(p.Selected))
	for _, raw := range p.Selected {
		if v, ok := col.ParseAs(raw); ok {
			selected[v] = struct{}{}
		}
	}

	for i := range mask {
		if !mask[i] {
			continue
		}
		v := col.Value(i)
		if v.IsMissing() {
			mask[i] = false
			continue
		}
		if _, keep := selected[v]; !keep {
			mask[i] = false
		}
	}
}
