// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package views computes the report views served by the API.
//
// Every builder is a pure function of a dataset snapshot (or an
// already-filtered monthly table) and its parameters: no hidden state,
// no mutation, the same inputs always produce the same payload. The
// HTTP layer picks the builder matching the endpoint; ComputeViews
// assembles the full dashboard bundle from one snapshot under one
// filter set.
//
// # Views
//
//   - Overview: headline KPIs, monthly revenue trend, top brands and
//     shipping countries
//   - Drivers: per-shop performance, campaign revenue ranking,
//     refund-rate trend
//   - Promotions: coupon revenue split, average discount rate, monthly
//     coupon usage rate
//   - RFM: customer segmentation KPIs, segment summary, segment by
//     cluster counts, recency-vs-monetary scatter sample, target list
//     preview (requires the RFM extracts)
//   - Basket: top SKUs by allocated revenue, thresholded pair rules
//     with drill-down (requires the SKU extracts)
//   - Quality: missingness and outlier profiles, order audit preview
//
// # Degradation
//
// A missing optional dataset or source column never fails a view. Each
// table-shaped component carries its own availability flag with a
// reason, and KPI scalars degrade to no_value or undefined states, so
// one absent extract blanks exactly the charts built from it.
package views
