// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-svgchart/scale"
	"github.com/aclements/go-svgchart/timefmt"
)

func linear(t *testing.T, d0, d1, r0, r1 float64) *scale.Linear {
	t.Helper()
	s, err := scale.NewLinear(d0, d1, r0, r1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCount(t *testing.T) {
	s := linear(t, 0, 100, 0, 500)
	p := Count(s, 5, nil)
	if want, got := []float64{0, 20, 40, 60, 80, 100}, p.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("values: want %v; got %v", want, got)
	}
	if want, got := []string{"0", "20", "40", "60", "80", "100"}, p.Labels(); !reflect.DeepEqual(want, got) {
		t.Errorf("labels: want %v; got %v", want, got)
	}
	for _, tick := range p {
		if want := tick.Value * 5; math.Abs(tick.Pos-want) > 1e-9 {
			t.Errorf("tick %v: want pos %v; got %v", tick.Value, want, tick.Pos)
		}
		if tick.Pos != s.Map(tick.Value) {
			t.Errorf("tick %v: pos %v differs from scale %v", tick.Value, tick.Pos, s.Map(tick.Value))
		}
	}
}

func TestCountDefaultPrecision(t *testing.T) {
	p := Count(linear(t, 0, 1, 0, 100), 5, nil)
	if want, got := "0.0 0.2 0.4 0.6 0.8 1.0", strings.Join(p.Labels(), " "); want != got {
		t.Errorf("labels: want %q; got %q", want, got)
	}
	p = Count(linear(t, 0, 50000, 0, 100), 2, nil)
	if want, got := "0 20,000 40,000", strings.Join(p.Labels(), " "); want != got {
		t.Errorf("labels: want %q; got %q", want, got)
	}
}

func TestValues(t *testing.T) {
	s := linear(t, 0, 100, 200, 0)
	p := Values(s, []float64{150, 50, -1, 0, 100}, Int())
	if want, got := []float64{50, 0, 100}, p.Values(); !reflect.DeepEqual(want, got) {
		t.Fatalf("values: want %v; got %v", want, got)
	}
	if want, got := []float64{100, 200, 0}, []float64{p[0].Pos, p[1].Pos, p[2].Pos}; !reflect.DeepEqual(want, got) {
		t.Errorf("positions: want %v; got %v", want, got)
	}
	if got := Values(s, nil, nil); len(got) != 0 {
		t.Errorf("Values(nil): want empty; got %v", got)
	}
}

func TestFit(t *testing.T) {
	s := linear(t, 12, 55, 0, 300)
	for _, max := range []int{2, 4, 8} {
		p := Fit(s, max, Int(), nil)
		if len(p) == 0 || len(p) > max {
			t.Errorf("Fit(max=%d): got %d ticks %v", max, len(p), p.Values())
		}
		for i, tick := range p {
			if !s.Contains(tick.Value) {
				t.Errorf("Fit(max=%d): tick %v outside domain", max, tick.Value)
			}
			if i > 0 && p[i-1].Value >= tick.Value {
				t.Errorf("Fit(max=%d): ticks not increasing: %v", max, p.Values())
			}
		}
	}

	// A label predicate can only thin out the ticks.
	few := func(labels []string) bool { return len(labels) <= 2 }
	if p := Fit(s, 8, Int(), few); len(p) == 0 || len(p) > 2 {
		t.Errorf("Fit with predicate: got %v", p.Values())
	}

	// The densest level under max is 0, 10, ..., 100. The predicate
	// rejects it and the next level, 0, 50, 100, fits.
	s = linear(t, 0, 100, 0, 100)
	if want, got := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, Fit(s, 20, nil, nil).Values(); !reflect.DeepEqual(want, got) {
		t.Errorf("Fit(max=20): want %v; got %v", want, got)
	}
	three := func(labels []string) bool { return len(labels) <= 3 }
	if want, got := "0 50 100", strings.Join(Fit(s, 20, Int(), three).Labels(), " "); want != got {
		t.Errorf("Fit with predicate: want %q; got %q", want, got)
	}
	never := func([]string) bool { return false }
	if p := Fit(s, 20, Int(), never); p != nil {
		t.Errorf("Fit with unsatisfiable predicate: want nil; got %v", p.Values())
	}
	if p := Fit(s, 0, Int(), nil); p != nil {
		t.Errorf("Fit(max=0): want nil; got %v", p.Values())
	}
}

func TestTimeTicks(t *testing.T) {
	june := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC)
	ts, err := scale.NewTime(june, dec, 0, 600)
	if err != nil {
		t.Fatal(err)
	}
	f := Time(timefmt.MustCompile("%b %y"))
	p := TimeCount(ts, 6, f)
	if want, got := "Jun 17,Jul 17,Aug 17,Sep 17,Oct 17,Nov 17,Dec 17", strings.Join(p.Labels(), ","); want != got {
		t.Errorf("labels: want %q; got %q", want, got)
	}
	if p[0].Pos != 0 || p[len(p)-1].Pos != 600 {
		t.Errorf("end positions: want 0 and 600; got %v and %v", p[0].Pos, p[len(p)-1].Pos)
	}

	p = TimeValues(ts, []time.Time{dec, june.AddDate(-1, 0, 0), june}, f)
	if want, got := "Dec 17,Jun 17", strings.Join(p.Labels(), ","); want != got {
		t.Errorf("TimeValues labels: want %q; got %q", want, got)
	}
}

func TestFormatters(t *testing.T) {
	for _, test := range []struct {
		name string
		f    Formatter
		v    float64
		want string
	}{
		{"Int", Int(), 1234.6, "1235"},
		{"Int", Int(), -0.2, "0"},
		{"Int", Int(), math.Copysign(0, -1), "0"},
		{"Currency", Currency("$"), -0.4, "$0"},
		{"Fixed", Fixed(1), -0.01, "0.0"},
		{"Grouped", Grouped(0), math.Copysign(0, -1), "0"},
		{"Currency", Currency("$"), 5000, "$5,000"},
		{"Currency", Currency("$"), -1200, "-$1,200"},
		{"Fixed", Fixed(2), 3.14159, "3.14"},
		{"Fixed", Fixed(0), 12345, "12345"},
		{"Grouped", Grouped(1), 20000, "20,000.0"},
		{"Grouped", Grouped(0), 999, "999"},
	} {
		if got := test.f(test.v); got != test.want {
			t.Errorf("%s(%v): want %q; got %q", test.name, test.v, test.want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, test := range []struct {
		spec string
		v    float64
		want string
	}{
		{"d", 20000.4, "20000"},
		{",d", 20000.4, "20,000"},
		{"$,d", 5000, "$5,000"},
		{"$", 12.7, "$13"},
		{".2f", 2.5, "2.50"},
		{",.1f", 1234.56, "1,234.6"},
		{"f", 1, "1.000000"},
		{".20f", 0.5, "0.50000000000000000000"},
		{"d", -0.3, "0"},
	} {
		f, err := ParseFormat(test.spec)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", test.spec, err)
			continue
		}
		if got := f(test.v); got != test.want {
			t.Errorf("ParseFormat(%q)(%v): want %q; got %q", test.spec, test.v, test.want, got)
		}
	}
	if f, err := ParseFormat(""); f != nil || err != nil {
		t.Errorf("ParseFormat(\"\"): want nil, nil; got %v, %v", f, err)
	}
	for _, spec := range []string{"x", ".2d", "$$", "%d", ".f2", ".21f", ".99999999999999999999f"} {
		if _, err := ParseFormat(spec); err == nil {
			t.Errorf("ParseFormat(%q) succeeded", spec)
		}
	}
}
