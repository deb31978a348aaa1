// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package query

import (
	"sort"
	"strconv"

	"github.com/mercatus-io/mercatus/internal/frame"
)

// Op is a grouped reduction.
type Op uint8

const (
	// OpSum adds the non-missing values of the measure column.
	OpSum Op = iota

	// OpMean averages the non-missing values of the measure column.
	OpMean

	// OpCount counts the rows in the group.
	OpCount

	// OpNUnique counts distinct non-missing values of the measure column.
	OpNUnique
)

// Measure is one aggregated output column: the reduction Op applied to
// Column, emitted under the name As.
type Measure struct {
	Column string
	Op     Op
	As     string
}

// Aggregate groups a table by the groupBy columns and reduces each
// measure per group.
//
// Grouping semantics:
//   - rows with a missing value in any group-by column are dropped; a
//     "missing" group never forms
//   - result rows are ordered by group key ascending, composite keys
//     comparing field by field, so month keys come out chronologically
//   - sum and mean exclude missing cells; a group whose cells are all
//     missing yields a Missing cell, never zero
//   - a measure column absent from the table yields an all-missing
//     output column (count still counts rows)
//
// The result carries the group-by columns first, then one column per
// measure, in argument order.
func Aggregate(t *frame.Table, groupBy []string, measures []Measure) *frame.Table {
	if t == nil {
		return frame.Empty()
	}

	keyCols := make([]*frame.Column, 0, len(groupBy))
	for _, name := range groupBy {
		c, ok := t.Col(name)
		if !ok {
			// a missing grouping column means every row lacks a key
			return emptyResult(t, groupBy, measures)
		}
		keyCols = append(keyCols, c)
	}

	type group struct {
		key  []frame.Value
		rows []int
	}
	index := make(map[string]*group)
	order := make([]*group, 0, 64)

	var keyBuf []byte
	for i := 0; i < t.NumRows(); i++ {
		keyBuf = keyBuf[:0]
		miss := false
		for _, kc := range keyCols {
			v := kc.Value(i)
			if v.IsMissing() {
				miss = true
				break
			}
			keyBuf = appendKeyPart(keyBuf, v)
		}
		if miss {
			continue
		}
		k := string(keyBuf)
		g, ok := index[k]
		if !ok {
			key := make([]frame.Value, len(keyCols))
			for j, kc := range keyCols {
				key[j] = kc.Value(i)
			}
			g = &group{key: key}
			index[k] = g
			order = append(order, g)
		}
		g.rows = append(g.rows, i)
	}

	sort.Slice(order, func(a, b int) bool {
		for j := range order[a].key {
			if c := order[a].key[j].Compare(order[b].key[j]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	cols := make([]*frame.Column, 0, len(groupBy)+len(measures))
	for j, name := range groupBy {
		vals := make([]frame.Value, len(order))
		for i, g := range order {
			vals[i] = g.key[j]
		}
		cols = append(cols, frame.NewColumn(name, vals))
	}
	for _, m := range measures {
		vals := make([]frame.Value, len(order))
		src, hasSrc := t.Col(m.Column)
		for i, g := range order {
			vals[i] = reduce(src, hasSrc, g.rows, m.Op)
		}
		cols = append(cols, frame.NewColumn(m.As, vals))
	}

	out, _ := frame.NewTable(cols...)
	return out
}

// reduce applies one op over the group's rows.
func reduce(src *frame.Column, hasSrc bool, rows []int, op Op) frame.Value {
	switch op {
	case OpCount:
		return frame.Int(int64(len(rows)))
	case OpNUnique:
		if !hasSrc {
			return frame.Missing()
		}
		seen := make(map[frame.Value]struct{}, len(rows))
		for _, i := range rows {
			v := src.Value(i)
			if v.IsMissing() {
				continue
			}
			seen[v] = struct{}{}
		}
		return frame.Int(int64(len(seen)))
	case OpSum, OpMean:
		if !hasSrc {
			return frame.Missing()
		}
		sum := 0.0
		var isum int64
		n := 0
		allInt := src.Kind() == frame.KindInt
		for _, i := range rows {
			v := src.Value(i)
			f, ok := v.Float64()
			if !ok {
				continue
			}
			sum += f
			if iv, iok := v.Int64(); iok {
				isum += iv
			}
			n++
		}
		if n == 0 {
			return frame.Missing()
		}
		if op == OpMean {
			return frame.Float(sum / float64(n))
		}
		if allInt {
			return frame.Int(isum)
		}
		return frame.Float(sum)
	default:
		return frame.Missing()
	}
}

// emptyResult builds a zero-row table with the expected output schema.
func emptyResult(t *frame.Table, groupBy []string, measures []Measure) *frame.Table {
	cols := make([]*frame.Column, 0, len(groupBy)+len(measures))
	for _, name := range groupBy {
		cols = append(cols, frame.NewColumn(name, nil))
	}
	for _, m := range measures {
		cols = append(cols, frame.NewColumn(m.As, nil))
	}
	out, _ := frame.NewTable(cols...)
	return out
}

// appendKeyPart encodes one key value with a length prefix so composite
// keys never collide across adjacent fields.
func appendKeyPart(b []byte, v frame.Value) []byte {
	s := v.Format()
	b = strconv.AppendInt(b, int64(v.Kind()), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(len(s)), 10)
	b = append(b, ':')
	b = append(b, s...)
	return b
}
