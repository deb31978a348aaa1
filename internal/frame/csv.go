// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Tokens that decode as Missing, matching the upstream extract pipeline.
var missingTokens = map[string]struct{}{
	"":     {},
	"NaN":  {},
	"nan":  {},
	"NA":   {},
	"null": {},
	"None": {},
}

// ReadCSV parses a CSV document into a typed table. The first record
// names the columns; each column's kind is inferred over all of its
// cells: integer when every non-missing cell parses as int64, otherwise
// float when every cell parses as float64, otherwise bool when every
// cell is a true/false token, otherwise string. Empty fields and the
// tokens NaN, nan, NA, null and None decode as Missing. Short records
// pad with Missing; long records are an error.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty document")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	raw := make([][]string, len(header))
	for i := range raw {
		raw[i] = []string{}
	}
	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", rows+1, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("csv: row %d has %d fields, header has %d", rows+1, len(record), len(header))
		}
		for i := range header {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			raw[i] = append(raw[i], cell)
		}
		rows++
	}

	cols := make([]*Column, len(header))
	for i, name := range header {
		cols[i] = decodeColumn(name, raw[i])
	}
	return NewTable(cols...)
}

// ReadCSVFile parses the CSV file at path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// decodeColumn infers the cell kind for one raw column and decodes it.
func decodeColumn(name string, cells []string) *Column {
	kind := inferKind(cells)
	values := make([]Value, len(cells))
	for i, cell := range cells {
		if _, miss := missingTokens[cell]; miss {
			values[i] = Missing()
			continue
		}
		v, ok := parseToken(cell, kind)
		if !ok {
			// inference guarantees parseability; a stray failure decodes
			// as missing rather than corrupting the column
			v = Missing()
		}
		values[i] = v
	}
	return &Column{name: name, kind: kind, values: values}
}

// inferKind picks the narrowest kind every non-missing cell fits.
func inferKind(cells []string) Kind {
	sawValue := false
	canInt, canFloat, canBool := true, true, true
	for _, cell := range cells {
		if _, miss := missingTokens[cell]; miss {
			continue
		}
		sawValue = true
		if canInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat && !canInt {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				canFloat = false
			}
		}
		if canBool && !isBoolToken(cell) {
			canBool = false
		}
		if !canInt && !canFloat && !canBool {
			return KindString
		}
	}
	switch {
	case !sawValue:
		return KindString
	case canInt:
		return KindInt
	case canFloat:
		return KindFloat
	case canBool:
		return KindBool
	default:
		return KindString
	}
}

func isBoolToken(s string) bool {
	switch s {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return true
	default:
		return false
	}
}

// parseToken decodes one cell as the given kind.
func parseToken(s string, kind Kind) (Value, bool) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Missing(), false
		}
		return Int(n), true
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Missing(), false
		}
		return Float(f), true
	case KindBool:
		if !isBoolToken(s) {
			return Missing(), false
		}
		return Bool(s == "true" || s == "True" || s == "TRUE"), true
	case KindString:
		return Str(s), true
	default:
		return Missing(), false
	}
}
