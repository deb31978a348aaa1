// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package query

import (
	"github.com/goccy/go-json"

	"github.com/mercatus-io/mercatus/internal/frame"
)

// ScalarState classifies a KPI result.
type ScalarState uint8

const (
	// ScalarValid carries a computed numeric value.
	ScalarValid ScalarState = iota

	// ScalarNoValue marks data absence: the source column was missing or
	// held no non-missing values.
	ScalarNoValue

	// ScalarUndefined marks a computed-but-undefined result, such as a
	// ratio with a zero denominator.
	ScalarUndefined
)

// String returns the wire name of the state: ok, no_value or undefined.
func (s ScalarState) String() string {
	switch s {
	case ScalarValid:
		return "ok"
	case ScalarNoValue:
		return "no_value"
	default:
		return "undefined"
	}
}

// Scalar is a KPI result: a value plus the state telling whether the
// value is meaningful. KPI functions return Scalars instead of raising
// so one absent column or zero denominator degrades a single metric to a
// placeholder rather than failing the whole view. NoValue (data absence)
// and Undefined (division by zero) are distinct states on purpose; they
// answer different questions about the data.
type Scalar struct {
	Value float64
	State ScalarState
}

// Valid wraps a computed value.
func Valid(v float64) Scalar { return Scalar{Value: v, State: ScalarValid} }

// NoValue is the data-absent scalar.
func NoValue() Scalar { return Scalar{State: ScalarNoValue} }

// Undefined is the undefined-arithmetic scalar.
func Undefined() Scalar { return Scalar{State: ScalarUndefined} }

// IsValid reports whether the scalar carries a meaningful value.
func (s Scalar) IsValid() bool { return s.State == ScalarValid }

// MarshalJSON encodes the scalar as {"value": v, "state": "ok"}. The
// value is null unless the state is ok, so a client can never mistake
// a sentinel for a real zero.
func (s Scalar) MarshalJSON() ([]byte, error) {
	var value interface{}
	if s.State == ScalarValid {
		value = s.Value
	}
	return json.Marshal(struct {
		Value interface{} `json:"value"`
		State string      `json:"state"`
	}{value, s.State.String()})
}

// Total sums the non-missing values of a column. NoValue when the column
// is absent or holds no non-missing values; a filtered-to-empty table
// therefore yields NoValue, never zero.
func Total(t *frame.Table, column string) Scalar {
	col, ok := t.Col(column)
	if !ok {
		return NoValue()
	}
	sum := 0.0
	n := 0
	for i := 0; i < col.Len(); i++ {
		if f, ok := col.Value(i).Float64(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return NoValue()
	}
	return Valid(sum)
}

// MeanOf averages the non-missing values of a column. NoValue when the
// column is absent or all-missing; the mean is never diluted by treating
// missing cells as zero.
func MeanOf(t *frame.Table, column string) Scalar {
	col, ok := t.Col(column)
	if !ok {
		return NoValue()
	}
	sum := 0.0
	n := 0
	for i := 0; i < col.Len(); i++ {
		if f, ok := col.Value(i).Float64(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return NoValue()
	}
	return Valid(sum / float64(n))
}

// Ratio divides Total(numerator) by Total(denominator). The result is
// Undefined exactly when the denominator total is zero or NoValue; when
// the denominator is sound but the numerator is NoValue the result is
// NoValue, keeping "no data" and "undefined arithmetic" apart.
func Ratio(t *frame.Table, numerator, denominator string) Scalar {
	den := Total(t, denominator)
	if !den.IsValid() || den.Value == 0 {
		return Undefined()
	}
	num := Total(t, numerator)
	if !num.IsValid() {
		return NoValue()
	}
	return Valid(num.Value / den.Value)
}

// Div divides two already-computed scalars with the same contract as
// Ratio: zero or unusable denominator is Undefined, unusable numerator
// over a sound denominator is NoValue.
func Div(num, den Scalar) Scalar {
	if !den.IsValid() || den.Value == 0 {
		return Undefined()
	}
	if !num.IsValid() {
		return NoValue()
	}
	return Valid(num.Value / den.Value)
}

// ConditionalTotal sums column over the rows where predicateColumn
// equals the predicate value. NoValue when either column is absent or no
// matching row holds a non-missing value.
func ConditionalTotal(t *frame.Table, column, predicateColumn string, predicate frame.Value) Scalar {
	col, ok := t.Col(column)
	if !ok {
		return NoValue()
	}
	pred, ok := t.Col(predicateColumn)
	if !ok {
		return NoValue()
	}
	sum := 0.0
	n := 0
	for i := 0; i < col.Len(); i++ {
		if !pred.Value(i).Equal(predicate) {
			continue
		}
		if f, ok := col.Value(i).Float64(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return NoValue()
	}
	return Valid(sum)
}

// NUnique counts distinct non-missing values of a column. The second
// return is false when the column is absent.
func NUnique(t *frame.Table, column string) (int, bool) {
	col, ok := t.Col(column)
	if !ok {
		return 0, false
	}
	seen := make(map[frame.Value]struct{}, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if v.IsMissing() {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen), true
}
