// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-svgchart/timefmt"
)

const housing = `month,price,region
June-17,100,A
July-17,110,A
June-17,90,B
July-17, 95 ,B
`

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func mustRead(t *testing.T, data string) *Table {
	t.Helper()
	tab, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestReadCSV(t *testing.T) {
	tab := mustRead(t, housing)
	if got := tab.Len(); got != 4 {
		t.Fatalf("Len: want 4; got %d", got)
	}
	if want, got := "month price region", strings.Join(tab.Fields(), " "); want != got {
		t.Errorf("Fields: want %q; got %q", want, got)
	}
	recs := tab.Records()
	if got := recs[2].Text("region"); got != "B" {
		t.Errorf("recs[2].region: want B; got %q", got)
	}
	if got := recs[3].Row(); got != 3 {
		t.Errorf("Row: want 3; got %d", got)
	}
	if tab.IsNumeric("price") {
		t.Errorf("price is numeric before coercion")
	}
	shouldPanic(t, "not numeric", func() {
		recs[0].Float("price")
	})
	shouldPanic(t, "unknown column", func() {
		recs[0].Text("nope")
	})
}

func TestReadCSVErrors(t *testing.T) {
	for _, data := range []string{
		"",
		"a,a\n1,2\n",
		"a,b\n1,2,3\n",
		"a,\n1,2\n",
	} {
		if _, err := ReadCSV(strings.NewReader(data)); err == nil {
			t.Errorf("ReadCSV(%q) succeeded; want error", data)
		}
	}
	tab, err := ReadCSV(strings.NewReader("a,b\n"))
	if err != nil || tab.Len() != 0 {
		t.Errorf("header-only CSV: want empty table; got %v, %v", tab, err)
	}
}

func TestNumeric(t *testing.T) {
	tab := mustRead(t, housing)
	ntab, err := tab.Numeric("price")
	if err != nil {
		t.Fatal(err)
	}
	if !ntab.IsNumeric("price") || tab.IsNumeric("price") {
		t.Errorf("Numeric should coerce a copy only")
	}
	var got []float64
	for _, r := range ntab.Records() {
		got = append(got, r.Float("price"))
	}
	if want := []float64{100, 110, 90, 95}; fmt.Sprint(want) != fmt.Sprint(got) {
		t.Errorf("prices: want %v; got %v", want, got)
	}
	if got := ntab.Records()[1].Text("price"); got != "110" {
		t.Errorf("Text of numeric field: want 110; got %q", got)
	}
	// Already numeric fields are left alone.
	if _, err := ntab.Numeric("price"); err != nil {
		t.Errorf("Numeric twice: %v", err)
	}
}

func TestNumericErrors(t *testing.T) {
	tab := mustRead(t, housing)
	_, err := tab.Numeric("region")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Numeric(region): want *ParseError; got %v", err)
	}
	if perr.Field != "region" || perr.Row != 0 || perr.Text != "A" {
		t.Errorf("bad ParseError %+v", perr)
	}
	var ferr *FieldError
	if _, err := tab.Numeric("cost"); !errors.As(err, &ferr) {
		t.Errorf("Numeric(cost): want *FieldError; got %v", err)
	}
	blank := mustRead(t, "v\n1\n\n2\n")
	if blank.Len() != 2 {
		// encoding/csv skips empty lines.
		t.Fatalf("want 2 rows; got %d", blank.Len())
	}
	if _, err := mustRead(t, "v\n1\n\"\"\n").Numeric("v"); !errors.As(err, &perr) {
		t.Errorf("Numeric of empty value: want *ParseError; got %v", err)
	}
}

func TestParseTime(t *testing.T) {
	tab := mustRead(t, housing)
	ttab, err := tab.ParseTime("month", timefmt.MustCompile("%B-%y"))
	if err != nil {
		t.Fatal(err)
	}
	if !ttab.HasTime("month") || tab.HasTime("month") {
		t.Errorf("ParseTime should add a derived field to a copy only")
	}
	r := ttab.Records()[1]
	if want, got := time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC), r.Time("month"); !want.Equal(got) {
		t.Errorf("Time(month): want %v; got %v", want, got)
	}
	if got := r.Text("month"); got != "July-17" {
		t.Errorf("raw month kept: want July-17; got %q", got)
	}
	if got, want := TimeField("month")(r), timefmt.Millis(r.Time("month")); got != want {
		t.Errorf("TimeField: want %v; got %v", want, got)
	}

	_, err = tab.ParseTime("month", timefmt.MustCompile("%Y"))
	var perr *timefmt.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("ParseTime with wrong layout: want *timefmt.ParseError; got %v", err)
	}
	var ferr *FieldError
	if _, err := tab.ParseTime("day", timefmt.MustCompile("%Y")); !errors.As(err, &ferr) {
		t.Errorf("ParseTime(day): want *FieldError; got %v", err)
	}
}

func TestProjections(t *testing.T) {
	tab, err := mustRead(t, housing).Numeric("price")
	if err != nil {
		t.Fatal(err)
	}
	r := tab.Records()[0]
	if got := Field("price")(r); got != 100 {
		t.Errorf("Field(price): want 100; got %v", got)
	}
	if got := Const(0)(r); got != 0 {
		t.Errorf("Const(0): want 0; got %v", got)
	}
}
