// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package frame

import "sort"

// Column is a named, immutable sequence of values. All cells share one
// inferred kind (plus missing); mixed source columns decode as strings.
type Column struct {
	name   string
	kind   Kind
	values []Value
}

// NewColumn builds a column from its values. The column kind is the kind
// of the first non-missing value; callers constructing columns by hand
// are expected to keep cells uniform the way the CSV reader does.
func NewColumn(name string, values []Value) *Column {
	kind := KindMissing
	for _, v := range values {
		if !v.IsMissing() {
			kind = v.Kind()
			break
		}
	}
	return &Column{name: name, kind: kind, values: values}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the inferred cell kind. A column of only missing cells
// reports KindMissing.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.values) }

// Value returns the cell at row i.
func (c *Column) Value(i int) Value { return c.values[i] }

// ParseAs converts a raw selection string into a value of this column's
// kind, so query parameters match cells regardless of the column's
// inferred type ("3" matches Int(3) in an integer cluster column, "true"
// matches Bool(true) in a coupon flag column). The second return is
// false when the text does not parse as the column kind; such a
// selection can never match a cell.
func (c *Column) ParseAs(text string) (Value, bool) {
	return parseToken(text, c.kind)
}

// DistinctSorted returns the sorted distinct non-missing values of the
// column. This feeds the filter option lists exposed to clients.
func (c *Column) DistinctSorted() []Value {
	seen := make(map[Value]struct{}, len(c.values))
	out := make([]Value, 0, 16)
	for _, v := range c.values {
		if v.IsMissing() {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sortValues(out)
	return out
}

// Min returns the smallest non-missing value, or Missing when the column
// holds none.
func (c *Column) Min() Value {
	best := Missing()
	for _, v := range c.values {
		if v.IsMissing() {
			continue
		}
		if best.IsMissing() || v.Compare(best) < 0 {
			best = v
		}
	}
	return best
}

// Max returns the largest non-missing value, or Missing when the column
// holds none.
func (c *Column) Max() Value {
	best := Missing()
	for _, v := range c.values {
		if v.IsMissing() {
			continue
		}
		if best.IsMissing() || v.Compare(best) > 0 {
			best = v
		}
	}
	return best
}

func sortValues(vs []Value) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Compare(vs[j]) < 0 })
}
