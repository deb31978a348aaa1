// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
snapshot.go - Immutable Dataset Snapshot

One consistent load of every catalog dataset plus the metadata derived
from it: per-dataset availability, filter option lists, RFM drill
bounds and rule-set defaults. Snapshots are never mutated after
LoadSnapshot returns; readers holding an old snapshot keep a fully
consistent view while a new one is published.
*/

package store

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/rules"
)

// DatasetStatus reports availability of one catalog dataset in a
// snapshot.
type DatasetStatus struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	Available bool   `json:"available"`
	Rows      int    `json:"rows"`
	Reason    string `json:"reason,omitempty"`
}

// FilterMeta holds the sorted distinct dimension values of the primary
// dataset, used to populate client filter controls and to default the
// YearMonth range.
type FilterMeta struct {
	Months    []string `json:"months"`
	Companies []string `json:"companies"`
	Brands    []string `json:"brands"`
	Shops     []string `json:"shops"`
	Countries []string `json:"countries"`
	Campaigns []string `json:"campaigns"`
}

// MonthBounds returns the first and last observed YearMonth. Empty
// strings when the snapshot has no months, which a published snapshot
// never has.
func (f FilterMeta) MonthBounds() (from, to string) {
	if len(f.Months) == 0 {
		return "", ""
	}
	return f.Months[0], f.Months[len(f.Months)-1]
}

// RFMMeta holds the drill-down option lists and recency bounds derived
// from the RFM customer table.
type RFMMeta struct {
	Segments   []string `json:"segments"`
	Clusters   []int64  `json:"clusters"`
	RecencyMin float64  `json:"recency_min"`
	RecencyMax float64  `json:"recency_max"`
}

// Snapshot is one immutable load of all datasets with derived
// metadata. Obtain the current one from a Manager; never hold a
// snapshot across requests.
type Snapshot struct {
	tables     map[string]*frame.Table
	identities map[string]fileIdentity
	statuses   []DatasetStatus

	filters      FilterMeta
	rfmMeta      *RFMMeta
	ruleSet      *rules.Set
	ruleDefaults rules.Defaults

	loadedAt     time.Time
	loadDuration time.Duration
}

// Table returns the named dataset table, or false when the dataset is
// unavailable in this snapshot.
func (s *Snapshot) Table(name string) (*frame.Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Available reports whether the named dataset loaded in this snapshot.
func (s *Snapshot) Available(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// Status returns the load status of the named dataset.
func (s *Snapshot) Status(name string) (DatasetStatus, bool) {
	for _, st := range s.statuses {
		if st.Name == name {
			return st, true
		}
	}
	return DatasetStatus{}, false
}

// Statuses returns the load status of every catalog dataset, in
// catalog order.
func (s *Snapshot) Statuses() []DatasetStatus {
	out := make([]DatasetStatus, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// Filters returns the primary dataset's filter metadata.
func (s *Snapshot) Filters() FilterMeta { return s.filters }

// RFM returns the RFM drill metadata, or false when the RFM customer
// table is unavailable.
func (s *Snapshot) RFM() (RFMMeta, bool) {
	if s.rfmMeta == nil {
		return RFMMeta{}, false
	}
	return *s.rfmMeta, true
}

// Rules returns the parsed rule set, or false when the rule table is
// unavailable.
func (s *Snapshot) Rules() (*rules.Set, bool) {
	if s.ruleSet == nil {
		return nil, false
	}
	return s.ruleSet, true
}

// RuleDefaults returns the threshold defaults and slider bounds
// derived from the rule set. Zero when the rule table is unavailable.
func (s *Snapshot) RuleDefaults() rules.Defaults { return s.ruleDefaults }

// LoadedAt returns when this snapshot finished loading.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// LoadDuration returns how long the full load took.
func (s *Snapshot) LoadDuration() time.Duration { return s.loadDuration }

// markUnavailable downgrades a dataset's status after a post-parse
// rejection (for example a rule table missing its required columns).
func (s *Snapshot) markUnavailable(name, reason string) {
	for i := range s.statuses {
		if s.statuses[i].Name == name {
			s.statuses[i].Available = false
			s.statuses[i].Rows = 0
			s.statuses[i].Reason = reason
			return
		}
	}
}

// buildFilterMeta derives the filter option lists from the primary
// dataset. Missing dimension columns yield empty lists rather than
// errors; the filter engine treats selections on absent columns as
// matching nothing.
func buildFilterMeta(primary *frame.Table) FilterMeta {
	return FilterMeta{
		Months:    distinctStrings(primary, ColYearMonth),
		Companies: distinctStrings(primary, ColCompany),
		Brands:    distinctStrings(primary, ColBrands),
		Shops:     distinctStrings(primary, ColShop),
		Countries: distinctStrings(primary, ColShippingCountry),
		Campaigns: distinctStrings(primary, ColCampaignType),
	}
}

// buildRFMMeta derives segment and cluster option lists plus recency
// bounds from the RFM customer table.
func buildRFMMeta(t *frame.Table) *RFMMeta {
	meta := &RFMMeta{
		Segments: distinctStrings(t, ColRFMSegment),
	}
	if col, ok := t.Col(ColKMeansCluster); ok {
		for _, v := range col.DistinctSorted() {
			if n, isInt := v.Int64(); isInt {
				meta.Clusters = append(meta.Clusters, n)
			}
		}
	}
	if col, ok := t.Col(ColRecencyDays); ok {
		if mn, valid := col.Min().Float64(); valid {
			meta.RecencyMin = mn
		}
		if mx, valid := col.Max().Float64(); valid {
			meta.RecencyMax = mx
		}
	}
	return meta
}

// distinctStrings formats the sorted distinct values of a column.
func distinctStrings(t *frame.Table, name string) []string {
	col, ok := t.Col(name)
	if !ok {
		return nil
	}
	vals := col.DistinctSorted()
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.Format())
	}
	return out
}
