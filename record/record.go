// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record holds tabular input data as named fields.
//
// A Table is read from CSV with every field as text. Before fields
// can be used as numbers or dates they must be coerced once with
// Numeric or ParseTime; both return a new Table and leave the
// original unchanged. A Record is a read-only view of one row.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-svgchart/timefmt"
)

// A Table is an ordered collection of records sharing a set of
// fields.
type Table struct {
	t *table.Table
}

// ReadCSV reads a table from CSV data. The first row names the
// fields.
func ReadCSV(r io.Reader) (*Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("record: missing header row")
	}
	return FromRows(rows[0], rows[1:])
}

// FromRows returns a table with the given field names and rows of
// text values.
func FromRows(header []string, rows [][]string) (*Table, error) {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if h == "" {
			return nil, errors.New("record: empty field name")
		}
		if seen[h] {
			return nil, fmt.Errorf("record: duplicate field %q", h)
		}
		seen[h] = true
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("record: row %d has %d fields, want %d", i, len(row), len(header))
		}
	}
	if len(header) == 0 {
		return &Table{new(table.Table)}, nil
	}
	return &Table{table.TableFromStrings(header, rows, false)}, nil
}

// Len returns the number of records in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Fields returns the names of t's fields, including derived time
// fields.
func (t *Table) Fields() []string {
	return t.t.Columns()
}

// Has reports whether t has field name.
func (t *Table) Has(name string) bool {
	return t.t.Column(name) != nil
}

// Data returns the underlying go-gg table.
func (t *Table) Data() *table.Table {
	return t.t
}

// Records returns every record of t in order.
func (t *Table) Records() []Record {
	recs := make([]Record, t.Len())
	for i := range recs {
		recs[i] = Record{t.t, i}
	}
	return recs
}

// IsNumeric reports whether field has been coerced to numbers.
func (t *Table) IsNumeric(field string) bool {
	_, ok := t.t.Column(field).([]float64)
	return ok
}

// Numeric returns a table in which each of fields holds float64
// values. Text values are parsed with strconv.ParseFloat after
// trimming spaces; the first malformed value is reported as a
// *ParseError. Fields that are already numeric are converted
// without parsing.
func (t *Table) Numeric(fields ...string) (*Table, error) {
	b := table.NewBuilder(t.t)
	for _, field := range fields {
		col := t.t.Column(field)
		if col == nil {
			return nil, &FieldError{field}
		}
		var fs []float64
		switch col := col.(type) {
		case []float64:
			continue
		case []string:
			fs = make([]float64, len(col))
			for i, text := range col {
				v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
				if err != nil {
					return nil, &ParseError{Field: field, Row: i, Text: text, Err: err}
				}
				fs[i] = v
			}
		default:
			switch reflect.TypeOf(col).Elem().Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.Float32:
				slice.Convert(&fs, col)
			default:
				return nil, fmt.Errorf("record: field %q of type %T cannot be made numeric", field, col)
			}
		}
		b.Add(field, fs)
	}
	return &Table{b.Done()}, nil
}

// TimeColumn returns the name of the derived field that holds the
// parsed dates of field.
func TimeColumn(field string) string {
	return field + " time"
}

// HasTime reports whether field has been parsed as dates.
func (t *Table) HasTime(field string) bool {
	_, ok := t.t.Column(TimeColumn(field)).([]time.Time)
	return ok
}

// ParseTime returns a table with a derived field TimeColumn(field)
// holding the dates parsed from field's text using l. The text field
// itself is kept so records can still be matched on it.
func (t *Table) ParseTime(field string, l *timefmt.Layout) (*Table, error) {
	col, ok := t.t.Column(field).([]string)
	if !ok {
		if t.t.Column(field) == nil {
			return nil, &FieldError{field}
		}
		return nil, fmt.Errorf("record: field %q is not text", field)
	}
	ts := make([]time.Time, len(col))
	for i, text := range col {
		tm, err := l.Parse(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("record: field %q row %d: %w", field, i, err)
		}
		ts[i] = tm
	}
	return &Table{table.NewBuilder(t.t).Add(TimeColumn(field), ts).Done()}, nil
}

// A FieldError reports a reference to a field the table does not
// have.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record: unknown field %q", e.Field)
}

// A ParseError reports a field value that is not a number.
type ParseError struct {
	Field string
	Row   int
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record: field %q row %d: cannot parse %q as a number", e.Field, e.Row, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
