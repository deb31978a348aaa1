// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package query

import "github.com/mercatus-io/mercatus/internal/frame"

// TopN ranks an aggregated table by the named measure descending and
// returns the first n rows. Ties break by the remaining columns
// ascending in table order (the group key), so rankings are
// deterministic across runs. Rows whose measure is missing rank last.
// A non-positive n returns the full ranking.
func TopN(t *frame.Table, measure string, n int) *frame.Table {
	ranked := t.SortDesc(measure)
	if n <= 0 {
		return ranked
	}
	return ranked.Head(n)
}
