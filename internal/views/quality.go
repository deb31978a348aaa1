// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
quality.go - Data Quality Report

Surfaces the warehouse quality extracts: the missingness profile, the
IQR outlier profile and the largest-order audit preview.
*/

package views

import (
	"time"

	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/models"
	"github.com/mercatus-io/mercatus/internal/store"
)

// Quality assembles the data quality section. Each panel degrades on
// its own.
func Quality(snap *store.Snapshot) models.QualityView {
	start := time.Now()
	defer func() { metrics.ObserveViewCompute(ViewQuality, time.Since(start)) }()

	return models.QualityView{
		Missingness: Missingness(snap),
		Outliers:    Outliers(snap),
		Audit:       AuditPreview(snap),
	}
}

// Missingness lists the columns with the highest missing-value share,
// worst first.
func Missingness(snap *store.Snapshot) models.TableData {
	t, ok := snap.Table(store.DatasetMissing)
	if !ok {
		return models.UnavailableTable(DatasetReason(snap, store.DatasetMissing))
	}
	if name, ok := requireColumns(t, store.ColColumnName, store.ColMissingPct); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	return models.NewTableData(t.SortDesc(store.ColMissingPct).Head(MissingnessLimit))
}

// Outliers lists every profiled metric by its IQR outlier share, worst
// first.
func Outliers(snap *store.Snapshot) models.TableData {
	t, ok := snap.Table(store.DatasetOutliers)
	if !ok {
		return models.UnavailableTable(DatasetReason(snap, store.DatasetOutliers))
	}
	if name, ok := requireColumns(t, store.ColColumn, store.ColPctOutliersIQR); !ok {
		return models.UnavailableTable(missingColumn(name))
	}
	return models.NewTableData(t.SortDesc(store.ColPctOutliersIQR))
}

// AuditPreview returns the head of the largest-order audit extract,
// whatever its columns.
func AuditPreview(snap *store.Snapshot) models.TableData {
	t, ok := snap.Table(store.DatasetAudit)
	if !ok {
		return models.UnavailableTable(DatasetReason(snap, store.DatasetAudit))
	}
	return models.NewTableData(t.Head(AuditPreviewRows))
}
