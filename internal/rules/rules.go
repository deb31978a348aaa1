// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package rules implements the association-rule threshold engine: the
// SKU pair-rule table is precomputed upstream and only ever re-sliced
// here, by inclusive support/confidence/lift lower bounds and by entity
// drill-down. The engine is independent of the date-range filter chain;
// rules are thresholded, never date-filtered.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mercatus-io/mercatus/internal/frame"
)

// Columns the rule table must carry. FromTable rejects tables missing
// any of them so the views can report one precise degradation reason.
var requiredColumns = []string{
	"antecedent", "consequent", "support", "confidence", "lift", "pair_order_count",
}

// Rule is one precomputed association rule: antecedent implies
// consequent with the usual market-basket statistics. Support and
// confidence live in [0,1]; lift is unbounded above zero.
type Rule struct {
	Antecedent     string  `json:"antecedent"`
	Consequent     string  `json:"consequent"`
	Support        float64 `json:"support"`
	Confidence     float64 `json:"confidence"`
	Lift           float64 `json:"lift"`
	PairOrderCount int64   `json:"pair_order_count"`
}

// Thresholds are inclusive lower bounds applied to a rule set. The zero
// Thresholds keeps every rule (the identity law).
type Thresholds struct {
	MinSupport    float64 `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
	MinLift       float64 `json:"min_lift"`
}

// Defaults are the slider defaults and bounds derived from an observed
// rule set. MinSupport is the median of the observed support column, a
// data-dependent default recomputed on every load; hardcoding it would
// silently drift from the data.
type Defaults struct {
	MinSupport    float64 `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
	MinLift       float64 `json:"min_lift"`
	MaxSupport    float64 `json:"max_support"`
	MaxLift       float64 `json:"max_lift"`
	RuleCount     int     `json:"rule_count"`
}

const (
	defaultMinConfidence = 0.2
	defaultMinLift       = 5.0

	// RelatedLimit bounds drill-down results for display.
	RelatedLimit = 50
)

// Set is an immutable collection of rules.
type Set struct {
	rules []Rule
}

// NewSet wraps rules in a Set. The slice is owned by the set afterwards.
func NewSet(rules []Rule) *Set {
	return &Set{rules: rules}
}

// FromTable builds a Set from a decoded rule table. Tables missing any
// required column return an error naming the gaps. Rows with a missing
// antecedent or consequent are dropped (they cannot participate in
// drill-down); rows with missing statistics are dropped too, keeping the
// set clean so thresholding stays a pure comparison.
func FromTable(t *frame.Table) (*Set, error) {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := t.Col(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("rule table missing columns: %s", strings.Join(missing, ", "))
	}

	ant, _ := t.Col("antecedent")
	con, _ := t.Col("consequent")
	sup, _ := t.Col("support")
	conf, _ := t.Col("confidence")
	lift, _ := t.Col("lift")
	pairs, _ := t.Col("pair_order_count")

	out := make([]Rule, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		av, cv := ant.Value(i), con.Value(i)
		s, sok := sup.Value(i).Float64()
		cf, cfok := conf.Value(i).Float64()
		lf, lfok := lift.Value(i).Float64()
		if av.IsMissing() || cv.IsMissing() || !sok || !cfok || !lfok {
			continue
		}
		p, _ := pairs.Value(i).Float64()
		out = append(out, Rule{
			// Format handles identifier columns that decoded as
			// numeric (all-digit SKUs).
			Antecedent:     av.Format(),
			Consequent:     cv.Format(),
			Support:        s,
			Confidence:     cf,
			Lift:           lf,
			PairOrderCount: int64(p),
		})
	}
	return NewSet(out), nil
}

// Len returns the number of rules in the set.
func (s *Set) Len() int { return len(s.rules) }

// Rules returns the rules in load order. Callers must not modify the
// returned slice.
func (s *Set) Rules() []Rule { return s.rules }

// Threshold keeps rules meeting every bound: support >= MinSupport AND
// confidence >= MinConfidence AND lift >= MinLift, all inclusive.
// Thresholding with all-zero bounds returns the set unchanged.
func (s *Set) Threshold(th Thresholds) *Set {
	if th.MinSupport <= 0 && th.MinConfidence <= 0 && th.MinLift <= 0 {
		return s
	}
	out := make([]Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if r.Support >= th.MinSupport && r.Confidence >= th.MinConfidence && r.Lift >= th.MinLift {
			out = append(out, r)
		}
	}
	return NewSet(out)
}

// Related returns the rules where the entity appears as antecedent or
// consequent, ordered descending by the composite key (lift, confidence,
// support) and truncated to limit rows. A non-positive limit applies
// RelatedLimit.
func (s *Set) Related(entity string, limit int) []Rule {
	if limit <= 0 {
		limit = RelatedLimit
	}
	out := make([]Rule, 0, 16)
	for _, r := range s.rules {
		if r.Antecedent == entity || r.Consequent == entity {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Lift != out[j].Lift {
			return out[i].Lift > out[j].Lift
		}
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Support > out[j].Support
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Entities returns the sorted distinct identifiers appearing on either
// side of any rule, the drill-down option list.
func (s *Set) Entities() []string {
	seen := make(map[string]struct{}, len(s.rules)*2)
	for _, r := range s.rules {
		seen[r.Antecedent] = struct{}{}
		seen[r.Consequent] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// DefaultMinSupport returns the median of the observed support values,
// interpolating between the two central order statistics for even-sized
// sets. An empty set yields zero.
func (s *Set) DefaultMinSupport() float64 {
	if len(s.rules) == 0 {
		return 0
	}
	supports := make([]float64, len(s.rules))
	for i, r := range s.rules {
		supports[i] = r.Support
	}
	sort.Float64s(supports)
	n := len(supports)
	if n%2 == 1 {
		return supports[n/2]
	}
	return (supports[n/2-1] + supports[n/2]) / 2
}

// Defaults derives the threshold defaults and slider bounds for the set.
func (s *Set) Defaults() Defaults {
	d := Defaults{
		MinSupport:    s.DefaultMinSupport(),
		MinConfidence: defaultMinConfidence,
		MinLift:       defaultMinLift,
		RuleCount:     len(s.rules),
	}
	for _, r := range s.rules {
		if r.Support > d.MaxSupport {
			d.MaxSupport = r.Support
		}
		if r.Lift > d.MaxLift {
			d.MaxLift = r.Lift
		}
	}
	return d
}
