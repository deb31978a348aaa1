// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package store loads the analytics CSV extracts and publishes them as
// immutable snapshots.
//
// The upstream pipeline writes a fixed set of CSV files into the data
// directory: the mandatory monthly aggregate table plus seven optional
// extracts (RFM customer table, RFM target list, SKU revenue summary,
// SKU pair rules, data quality profiles and the order audit sample).
// This package turns that directory into a consistent in-memory view.
//
// # Overview
//
// The store consists of three pieces:
//
//   - Catalog: the dataset descriptors (logical name, file name,
//     mandatory flag) and the column names the analytics layer reads
//   - Loader: reads and type-infers each CSV, memoizes parsed tables
//     by file identity (path, size, mtime) and assembles a Snapshot
//   - Manager: publishes snapshots through an atomic pointer and
//     serializes reloads
//
// # Snapshot Semantics
//
// A Snapshot is immutable. It carries every loaded table, a per-dataset
// availability status, filter option lists derived from the primary
// table, RFM drill bounds, and rule thresholds derived from the SKU
// pair rules. Request handlers grab the current snapshot once and
// compute everything from it, so a concurrent reload never tears a
// response.
//
// Missing optional files degrade to an unavailable status with a
// warning log. A missing primary file, or a primary file without a
// usable YearMonth column, is fatal configuration: the initial load
// fails, and a later reload that hits it keeps the previous snapshot
// live.
//
// # Usage
//
//	mgr := store.NewManager("/data")
//	if err := mgr.Load(); err != nil {
//	    // primary dataset missing or malformed
//	    log.Fatal(err)
//	}
//
//	snap, _ := mgr.Current()
//	monthly, _ := snap.Table(store.DatasetMonthly)
//
//	// Background refresh: swap only when a file changed.
//	if _, swapped, _ := mgr.ReloadIfChanged(); swapped {
//	    ...
//	}
package store
