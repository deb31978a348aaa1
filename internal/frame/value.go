// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

// Package frame implements the typed in-memory tables every analytics
// component operates on.
//
// A Table is an ordered collection of named columns; a cell is a Value,
// a tagged union over {integer, float, string, boolean, missing}. Missing
// represents data absence in the source extract and is distinct from the
// "undefined" state of a computed scalar (see internal/query): tests and
// clients can always tell "the column had no data" apart from "the
// division was undefined".
//
// Tables are immutable after construction. Every filter or aggregation
// produces a new table; the inputs are never modified. This is what makes
// snapshot sharing across concurrent requests safe without locking.
package frame

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	// KindMissing marks an absent cell (empty CSV field, NaN, null).
	KindMissing Kind = iota

	// KindInt holds an int64.
	KindInt

	// KindFloat holds a float64.
	KindFloat

	// KindString holds a string.
	KindString

	// KindBool holds a bool.
	KindBool
)

// String returns the kind name used in logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single table cell. The zero Value is Missing.
//
// Value is a small comparable struct and may be used directly as a map
// key (grouping, set membership). Float NaN is never stored: NaN tokens
// decode as Missing, so Value equality is well defined.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str returns a string value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind reports the type held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float64 returns the numeric value of v, widening integers to float64.
// The second return is false for missing and non-numeric values.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Int64 returns the integer value of v. The second return is false
// unless v holds an integer.
func (v Value) Int64() (int64, bool) {
	if v.kind == KindInt {
		return v.i, true
	}
	return 0, false
}

// Text returns the string value of v. The second return is false unless
// v holds a string.
func (v Value) Text() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// Truth returns the boolean value of v. The second return is false
// unless v holds a bool.
func (v Value) Truth() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

// Equal reports whether two values are equal. Integers and floats
// compare numerically across kinds (Int(5) equals Float(5)); missing
// never equals anything, including another missing.
func (v Value) Equal(o Value) bool {
	if v.kind == KindMissing || o.kind == KindMissing {
		return false
	}
	vf, vok := v.Float64()
	of, ook := o.Float64()
	if vok && ook {
		return vf == of
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	default:
		return false
	}
}

// Compare orders two values: negative when v sorts before o, zero when
// equal, positive otherwise. Numbers compare numerically across kinds,
// strings lexicographically, bools false-before-true. Missing sorts
// after every present value so "no value" rows land at the bottom of
// descending and ascending rankings alike. Mixed incomparable kinds fall
// back to kind order for determinism.
func (v Value) Compare(o Value) int {
	if v.kind == KindMissing && o.kind == KindMissing {
		return 0
	}
	if v.kind == KindMissing {
		return 1
	}
	if o.kind == KindMissing {
		return -1
	}
	vf, vok := v.Float64()
	of, ook := o.Float64()
	if vok && ook {
		switch {
		case vf < of:
			return -1
		case vf > of:
			return 1
		default:
			return 0
		}
	}
	if v.kind == o.kind {
		switch v.kind {
		case KindString:
			switch {
			case v.s < o.s:
				return -1
			case v.s > o.s:
				return 1
			default:
				return 0
			}
		case KindBool:
			switch {
			case !v.b && o.b:
				return -1
			case v.b && !o.b:
				return 1
			default:
				return 0
			}
		}
	}
	return int(v.kind) - int(o.kind)
}

// Format renders v for CSV output and display: integers and floats in
// their shortest round-trip form, bools as true/false, missing as the
// empty string.
func (v Value) Format() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the native Go representation: int64, float64, string,
// bool, or nil for missing. Used when rows are handed to the JSON layer.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON encodes v as the corresponding JSON scalar, or null for
// missing.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
