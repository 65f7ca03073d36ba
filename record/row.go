// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-svgchart/timefmt"
)

// A Record is one row of a Table.
//
// Accessors panic if the field does not exist or has the wrong type
// (for example, Float on a field that was never passed to Numeric).
// These are programming errors; callers validate fields up front
// with Table.Has, IsNumeric and HasTime.
type Record struct {
	t   *table.Table
	row int
}

// Row returns r's index in its table.
func (r Record) Row() int {
	return r.row
}

// Has reports whether r has field name.
func (r Record) Has(name string) bool {
	return r.t != nil && r.t.Column(name) != nil
}

// Text returns field as text. Numeric fields are formatted with the
// shortest representation that round-trips.
func (r Record) Text(field string) string {
	switch col := r.t.MustColumn(field).(type) {
	case []string:
		return col[r.row]
	case []float64:
		return strconv.FormatFloat(col[r.row], 'g', -1, 64)
	case []time.Time:
		return col[r.row].Format(time.RFC3339)
	default:
		return fmt.Sprint(index(col, r.row))
	}
}

// Float returns the numeric value of field.
func (r Record) Float(field string) float64 {
	col, ok := r.t.MustColumn(field).([]float64)
	if !ok {
		panic(fmt.Sprintf("record: field %q is not numeric", field))
	}
	return col[r.row]
}

// Time returns the parsed date of field. Table.ParseTime must have
// been called for field.
func (r Record) Time(field string) time.Time {
	col, ok := r.t.MustColumn(TimeColumn(field)).([]time.Time)
	if !ok {
		panic(fmt.Sprintf("record: field %q has no parsed dates", field))
	}
	return col[r.row]
}

func (r Record) String() string {
	s := "{"
	for i, c := range r.t.Columns() {
		if i > 0 {
			s += " "
		}
		s += c + ":" + r.Text(c)
	}
	return s + "}"
}

func index(col table.Slice, i int) interface{} {
	return reflect.ValueOf(col).Index(i).Interface()
}

// A Projection extracts a number from a record.
type Projection func(Record) float64

// Field returns a Projection of numeric field name.
func Field(name string) Projection {
	return func(r Record) float64 {
		return r.Float(name)
	}
}

// TimeField returns a Projection of the parsed dates of field name as
// milliseconds since the Unix epoch (see timefmt.Millis).
func TimeField(name string) Projection {
	return func(r Record) float64 {
		return timefmt.Millis(r.Time(name))
	}
}

// Const returns a Projection that always returns v.
func Const(v float64) Projection {
	return func(Record) float64 {
		return v
	}
}
