// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
rfm.go - Customer Segmentation Report

Builds the RFM section from the customer extract: headline KPIs over
the drilled-down rows, the per-segment summary, segment-by-cluster
counts, a bounded scatter sample and the target list preview.
*/

package views

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/query"
	"github.com/mercatus-io/mercatus/internal/store"
)

// ScatterSampleSize bounds the recency-vs-monetary scatter payload.
const ScatterSampleSize = 5000

// scatterSeed keeps the scatter sample stable across identical
// requests, so repeated loads of the same snapshot render the same
// points.
const scatterSeed = 42

// RFMDrill narrows the customer table before any RFM computation.
// Empty slices and nil bounds leave their dimension unconstrained.
type RFMDrill struct {
	Segments   []string
	Clusters   []string
	RecencyMin *float64
	RecencyMax *float64
}

func (d RFMDrill) spec() query.Spec {
	var s query.Spec
	if len(d.Segments) > 0 {
		s.Sets = append(s.Sets, query.SetPredicate{Column: store.ColRFMSegment, Selected: d.Segments})
	}
	if len(d.Clusters) > 0 {
		s.Sets = append(s.Sets, query.SetPredicate{Column: store.ColKMeansCluster, Selected: d.Clusters})
	}
	if d.RecencyMin != nil || d.RecencyMax != nil {
		r := query.RangePredicate{Column: store.ColRecencyDays}
		if d.RecencyMin != nil {
			r.Lower = frame.Float(*d.RecencyMin)
		}
		if d.RecencyMax != nil {
			r.Upper = frame.Float(*d.RecencyMax)
		}
		s.Range = &r
	}
	return s
}

// RFM assembles the customer segmentation section. The whole section
// is unavailable when the customer extract did not load; the target
// list preview carries its own availability.
func RFM(snap *store.Snapshot, drill RFMDrill) models.RFMView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewRFM, time.Since(start)) }()

	base, ok := snap.Table(store.DatasetRFM)
	if !ok {
		return models.RFMView{Reason: DatasetReason(snap, store.DatasetRFM)}
	}
	t := query.Apply(base, drill.spec())
	return models.RFMView{
		Available:       true,
		KPIs:            RFMHeadline(t),
		SegmentSummary:  SegmentSummary(t),
		SegmentClusters: SegmentClusters(t),
		Scatter:         ScatterSample(t),
		Targets:         TargetPreview(snap),
	}
}

// DrillTable narrows the customer extract by the drill parameters.
// The boolean reports whether the extract loaded at all; the string is
// the degradation reason when it did not.
func DrillTable(snap *store.Snapshot, drill RFMDrill) (*frame.Table, string, bool) {
	base, ok := snap.Table(store.DatasetRFM)
	if !ok {
		return nil, DatasetReason(snap, store.DatasetRFM), false
	}
	return query.Apply(base, drill.spec()), "", true
}

// RFMHeadline computes the customer KPIs over the drilled-down rows.
// The customer count falls back to the row count when the customer ID
// column is absent.
func RFMHeadline(t *frame.Table) models.RFMKPIs {
	var customers query.Scalar
	if n, ok := query.NUnique(t, store.ColCustomerID); ok {
		customers = query.Valid(float64(n))
	} else {
		customers = query.Valid(float64(t.NumRows()))
	}
	return models.RFMKPIs{
		Customers:    customers,
		Monetary:     query.Total(t, store.ColMonetary),
		AvgMonetary:  query.MeanOf(t, store.ColMonetary),
		AvgFrequency: query.MeanOf(t, store.ColFrequency),
	}
}

// customersMeasure counts distinct customers per group, or plain rows
// when the customer ID column is absent.
func customersMeasure(t *frame.Table) query.Measure {
	if _, ok := t.Col(store.ColCustomerID); ok {
		return query.Measure{Column: store.ColCustomerID, Op: query.OpNUnique, As: outCustomers}
	}
	return query.Measure{Op: query.OpCount, As: outCustomers}
}

// SegmentSummary reports customer counts and summed monetary value per
// segment, largest monetary first.
func SegmentSummary(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColRFMSegment); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	agg := query.Aggregate(t, []string{store.ColRFMSegment}, []query.Measure{
		customersMeasure(t),
		{Column: store.ColMonetary, Op: query.OpSum, As: outMonetary},
	})
	return models.NewTableData(agg.SortDesc(outMonetary))
}

// SegmentClusters reports customer counts per segment and cluster.
// Segments are ordered by their total customer count descending, and
// clusters ascending within each segment.
func SegmentClusters(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColRFMSegment, store.ColKMeansCluster); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	counts := query.Aggregate(t, []string{store.ColRFMSegment, store.ColKMeansCluster}, []query.Measure{
		customersMeasure(t),
	})
	totals := query.Aggregate(t, []string{store.ColRFMSegment}, []query.Measure{
		customersMeasure(t),
	})

	segTotal := make(map[frame.Value]float64, totals.NumRows())
	if segCol, ok := totals.Col(store.ColRFMSegment); ok {
		cntCol, _ := totals.Col(outCustomers)
		for i := 0; i < totals.NumRows(); i++ {
			if f, ok := cntCol.Value(i).Float64(); ok {
				segTotal[segCol.Value(i)] = f
			}
		}
	}

	segCol, _ := counts.Col(store.ColRFMSegment)
	cluCol, _ := counts.Col(store.ColKMeansCluster)
	idx := make([]int, counts.NumRows())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		sa, sb := segCol.Value(idx[a]), segCol.Value(idx[b])
		if ta, tb := segTotal[sa], segTotal[sb]; ta != tb {
			return ta > tb
		}
		if c := sa.Compare(sb); c != 0 {
			return c < 0
		}
		return cluCol.Value(idx[a]).Compare(cluCol.Value(idx[b])) < 0
	})
	return models.NewTableData(counts.Reorder(idx))
}

// ScatterSample projects the drilled-down rows onto recency, monetary
// and segment, sampled down to at most ScatterSampleSize rows.
func ScatterSample(t *frame.Table) models.TableData {
	if name, ok := requireColumns(t, store.ColRecencyDays, store.ColMonetary); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	sampled := sampleRows(t, ScatterSampleSize)

	names := []string{store.ColRecencyDays, store.ColMonetary}
	if _, ok := sampled.Col(store.ColRFMSegment); ok {
		names = append(names, store.ColRFMSegment)
	}
	columns := make([]*frame.Column, 0, len(names))
	for _, name := range names {
		c, _ := sampled.Col(name)
		columns = append(columns, c)
	}
	out, err := frame.NewTable(columns...)
	if err != nil {
		return models.UnavailableTable(err.Error())
	}
	return models.NewTableData(out)
}

// sampleRows keeps at most n rows, chosen by a fixed-seed permutation
// and reassembled in source order.
func sampleRows(t *frame.Table, n int) *frame.Table {
	if t.NumRows() <= n {
		return t
	}
	rng := rand.New(rand.NewSource(scatterSeed))
	idx := rng.Perm(t.NumRows())[:n]
	sort.Ints(idx)
	return t.Reorder(idx)
}

// TargetPreview returns the head of the campaign target list.
func TargetPreview(snap *store.Snapshot) models.TableData {
	t, ok := snap.Table(store.DatasetRFMTargets)
	if !ok {
		return models.UnavailableTable(DatasetReason(snap, store.DatasetRFMTargets))
	}
	return models.NewTableData(t.Head(TargetPreviewRows))
}
