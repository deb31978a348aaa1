// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// Table is an immutable, ordered collection of equal-length columns.
//
// Column presence is never guaranteed: source extracts drop columns
// between refreshes, so every consumer goes through Col, the single
// capability accessor, and handles the absent case instead of assuming
// the column exists. No operation mutates a table in place; filters and
// projections return new tables sharing the underlying column storage
// where rows are unchanged.
type Table struct {
	names []string
	cols  map[string]*Column
	rows  int
}

// NewTable builds a table from columns, preserving their order. All
// columns must have the same length and unique names.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{
		names: make([]string, 0, len(columns)),
		cols:  make(map[string]*Column, len(columns)),
	}
	for i, c := range columns {
		if _, dup := t.cols[c.name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.name, c.Len(), t.rows)
		}
		t.names = append(t.names, c.name)
		t.cols[c.name] = c
	}
	return t, nil
}

// Empty returns a zero-row table with no columns.
func Empty() *Table {
	return &Table{names: nil, cols: map[string]*Column{}}
}

// Col returns the named column and whether it exists. This is the one
// place column presence is checked; callers treat a false return as the
// typed absence the error model requires, not as a reason to panic.
func (t *Table) Col(name string) (*Column, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// Columns returns the column names in table order. The caller must not
// modify the returned slice.
func (t *Table) Columns() []string { return t.names }

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.names) }

// Row materializes row i as values in column order.
func (t *Table) Row(i int) []Value {
	out := make([]Value, len(t.names))
	for j, name := range t.names {
		out[j] = t.cols[name].values[i]
	}
	return out
}

// WithColumn returns a new table with the column replaced when a column
// of the same name exists, or appended otherwise. The column length must
// match the table's row count.
func (t *Table) WithColumn(col *Column) (*Table, error) {
	if col.Len() != t.rows && len(t.names) > 0 {
		return nil, fmt.Errorf("column %q has %d rows, want %d", col.name, col.Len(), t.rows)
	}
	cols := make([]*Column, 0, len(t.names)+1)
	replaced := false
	for _, name := range t.names {
		if name == col.name {
			cols = append(cols, col)
			replaced = true
			continue
		}
		cols = append(cols, t.cols[name])
	}
	if !replaced {
		cols = append(cols, col)
	}
	return NewTable(cols...)
}

// Select returns a new table keeping exactly the rows where mask is
// true. The mask length must equal the row count.
func (t *Table) Select(mask []bool) *Table {
	n := 0
	for _, keep := range mask {
		if keep {
			n++
		}
	}
	if n == t.rows {
		return t
	}
	cols := make([]*Column, 0, len(t.names))
	for _, name := range t.names {
		src := t.cols[name]
		vals := make([]Value, 0, n)
		for i, keep := range mask {
			if keep {
				vals = append(vals, src.values[i])
			}
		}
		cols = append(cols, &Column{name: src.name, kind: src.kind, values: vals})
	}
	nt, _ := NewTable(cols...)
	return nt
}

// Reorder returns a new table with rows arranged per idx. Indices may
// select a subset; out-of-range indices are a programming error.
func (t *Table) Reorder(idx []int) *Table {
	cols := make([]*Column, 0, len(t.names))
	for _, name := range t.names {
		src := t.cols[name]
		vals := make([]Value, len(idx))
		for i, j := range idx {
			vals[i] = src.values[j]
		}
		cols = append(cols, &Column{name: src.name, kind: src.kind, values: vals})
	}
	nt, _ := NewTable(cols...)
	return nt
}

// Head returns the first n rows. A negative n or one past the row count
// returns the table unchanged.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= t.rows {
		return t
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return t.Reorder(idx)
}

// SortDesc returns a new table ordered by the named column descending,
// ties broken by the remaining columns ascending in table order so equal
// measures rank deterministically. Rows whose sort cell is missing land
// last. An absent sort column returns the table unchanged.
func (t *Table) SortDesc(column string) *Table {
	key, ok := t.Col(column)
	if !ok {
		return t
	}
	idx := make([]int, t.rows)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := key.values[idx[a]], key.values[idx[b]]
		if c := va.Compare(vb); c != 0 {
			// Compare sorts missing after present values in ascending
			// order; inverting for descending would float missing to the
			// top, so handle it before flipping the sign.
			if va.IsMissing() {
				return false
			}
			if vb.IsMissing() {
				return true
			}
			return c > 0
		}
		for _, name := range t.names {
			if name == column {
				continue
			}
			c := t.cols[name].values[idx[a]].Compare(t.cols[name].values[idx[b]])
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return t.Reorder(idx)
}

// SortAsc returns a new table ordered by the named columns ascending,
// comparing field by field. Missing cells sort last. Absent columns are
// skipped.
func (t *Table) SortAsc(columns ...string) *Table {
	keys := make([]*Column, 0, len(columns))
	for _, name := range columns {
		if c, ok := t.Col(name); ok {
			keys = append(keys, c)
		}
	}
	if len(keys) == 0 {
		return t
	}
	idx := make([]int, t.rows)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		for _, key := range keys {
			if c := key.values[idx[a]].Compare(key.values[idx[b]]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return t.Reorder(idx)
}

// WriteCSV streams the table as RFC 4180 CSV with a header row. Missing
// cells render as empty fields, matching the source extract convention.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(t.names))
	for i := 0; i < t.rows; i++ {
		for j, name := range t.names {
			record[j] = t.cols[name].values[i].Format()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
