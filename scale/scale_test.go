// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"image/color"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/aclements/go-gg/palette"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestLinearEndpoints(t *testing.T) {
	for _, test := range []struct {
		d0, d1, r0, r1 float64
	}{
		{0, 1, 0, 100},
		{12, 55, 0, 35},
		{0, 0.3, 60, 0},
		{1980, 2010, 0, 115},
		{0.1, 0.3, 0.1, 0.3},
		{-7.25, 3.5, 720, 30},
		{5, -5, 0, 1},
		{1.4833728e12, 1.4991488e12, 0, 450},
	} {
		s, err := NewLinear(test.d0, test.d1, test.r0, test.r1)
		if err != nil {
			t.Fatalf("NewLinear(%v): %v", test, err)
		}
		if got := s.Map(test.d0); got != test.r0 {
			t.Errorf("%v.Map(%v): want %v; got %v", s, test.d0, test.r0, got)
		}
		if got := s.Map(test.d1); got != test.r1 {
			t.Errorf("%v.Map(%v): want %v; got %v", s, test.d1, test.r1, got)
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	for _, test := range []struct {
		d0, d1, r0, r1 float64
	}{
		{0, 10, 0, 100},
		{0, 10, 100, 0},
		{10, 0, 0, 100},
		{10, 0, 100, 0},
	} {
		s, _ := NewLinear(test.d0, test.d1, test.r0, test.r1)
		sign := math.Copysign(1, (test.d1-test.d0)*(test.r1-test.r0))
		prev := s.Map(-5)
		for v := -4.5; v <= 15; v += 0.5 {
			cur := s.Map(v)
			if (cur-prev)*sign <= 0 {
				t.Errorf("%v not monotonic at %v: %v then %v", s, v, prev, cur)
			}
			prev = cur
		}
	}
}

func TestLinearMidpoint(t *testing.T) {
	s, _ := NewLinear(0, 10, 100, 0)
	if got := s.Map(5); got != 50 {
		t.Errorf("Map(5): want 50; got %v", got)
	}
	if got := s.Invert(25); got != 7.5 {
		t.Errorf("Invert(25): want 7.5; got %v", got)
	}
	if got := s.Map(20); got != -100 {
		t.Errorf("unclamped Map(20): want -100; got %v", got)
	}
	if got := s.Clamped().Map(20); got != 0 {
		t.Errorf("clamped Map(20): want 0; got %v", got)
	}
	if !s.Contains(10) || !s.Contains(0) || s.Contains(10.5) {
		t.Errorf("Contains wrong for %v", s)
	}
}

func TestLinearDegenerate(t *testing.T) {
	for _, test := range []struct {
		d0, d1 float64
		want   error
	}{
		{3, 3, ErrDegenerate},
		{0, 0, ErrDegenerate},
		{math.NaN(), 1, ErrNonFinite},
		{0, math.Inf(1), ErrNonFinite},
		{-math.MaxFloat64, math.MaxFloat64, ErrNonFinite},
	} {
		s, err := NewLinear(test.d0, test.d1, 0, 100)
		if s != nil {
			t.Errorf("NewLinear(%v, %v) returned a scale", test.d0, test.d1)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("NewLinear(%v, %v): want %v; got %v", test.d0, test.d1, test.want, err)
		}
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Errorf("NewLinear(%v, %v): want *DomainError; got %T", test.d0, test.d1, err)
		}
	}
	if _, err := NewLinear(0, 1, 0, math.NaN()); err == nil {
		t.Errorf("NewLinear with NaN range succeeded")
	}
}

func TestTicks(t *testing.T) {
	for _, test := range []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{0, 1, 10, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{0, 0.3, 3, []float64{0, 0.1, 0.2, 0.3}},
		{1980, 2010, 4, []float64{1980, 1990, 2000, 2010}},
		{0, 20000, 10, []float64{0, 2000, 4000, 6000, 8000, 10000, 12000, 14000, 16000, 18000, 20000}},
		{12, 55, 3, []float64{20, 40}},
		{-3, 3, 5, []float64{-3, -2, -1, 0, 1, 2, 3}},
		{1, 0, 2, []float64{0, 0.5, 1}},
		{2, 2, 5, []float64{2}},
		{0, 1, 0, nil},
	} {
		got := Ticks(test.lo, test.hi, test.n)
		if !de(got, test.want) {
			t.Errorf("Ticks(%v, %v, %v): want %v; got %v", test.lo, test.hi, test.n, test.want, got)
		}
	}
}

func TestTickStep(t *testing.T) {
	for _, test := range []struct {
		lo, hi float64
		n      int
		want   float64
	}{
		{0, 1, 10, 0.1},
		{0, 100, 10, 10},
		{0, 100, 3, 50},
		{0, 20000, 4, 5000},
		{5, 5, 10, 0},
	} {
		if got := TickStep(test.lo, test.hi, test.n); got != test.want {
			t.Errorf("TickStep(%v, %v, %v): want %v; got %v", test.lo, test.hi, test.n, test.want, got)
		}
	}
}

func TestNiceDomain(t *testing.T) {
	for _, test := range []struct {
		d0, d1 float64
		n      int
		w0, w1 float64
	}{
		{0.03, 0.27, 10, 0.02, 0.28},
		{183, 947, 10, 100, 1000},
		{947, 183, 10, 1000, 100},
		{12, 55, 10, 10, 55},
		{0, 1, 10, 0, 1},
	} {
		g0, g1 := NiceDomain(test.d0, test.d1, test.n)
		if g0 != test.w0 || g1 != test.w1 {
			t.Errorf("NiceDomain(%v, %v, %v): want [%v, %v]; got [%v, %v]", test.d0, test.d1, test.n, test.w0, test.w1, g0, g1)
		}
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeScale(t *testing.T) {
	s, err := NewTime(date(2016, 6, 1), date(2017, 7, 1), 0, 450)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.MapTime(date(2016, 6, 1)); got != 0 {
		t.Errorf("MapTime(start): want 0; got %v", got)
	}
	if got := s.MapTime(date(2017, 7, 1)); got != 450 {
		t.Errorf("MapTime(end): want 450; got %v", got)
	}
	if got := s.InvertTime(450); !got.Equal(date(2017, 7, 1)) {
		t.Errorf("InvertTime(450): want July 2017; got %v", got)
	}
	if _, err := NewTime(date(2016, 6, 1), date(2016, 6, 1), 0, 1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("NewTime with empty domain: want ErrDegenerate; got %v", err)
	}
}

func TestTimeTicks(t *testing.T) {
	for _, test := range []struct {
		t0, t1 time.Time
		n      int
		want   []time.Time
	}{
		// Thirteen months: monthly.
		{date(2016, 6, 1), date(2017, 7, 1), 13, []time.Time{
			date(2016, 6, 1), date(2016, 7, 1), date(2016, 8, 1), date(2016, 9, 1),
			date(2016, 10, 1), date(2016, 11, 1), date(2016, 12, 1), date(2017, 1, 1),
			date(2017, 2, 1), date(2017, 3, 1), date(2017, 4, 1), date(2017, 5, 1),
			date(2017, 6, 1), date(2017, 7, 1),
		}},
		// Thirteen months, few ticks: quarters.
		{date(2016, 6, 15), date(2017, 7, 1), 4, []time.Time{
			date(2016, 7, 1), date(2016, 10, 1), date(2017, 1, 1), date(2017, 4, 1), date(2017, 7, 1),
		}},
		// Three decades: decades.
		{date(1980, 1, 1), date(2010, 1, 1), 4, []time.Time{
			date(1980, 1, 1), date(1990, 1, 1), date(2000, 1, 1), date(2010, 1, 1),
		}},
		// A few days: daily.
		{date(2020, 2, 27), date(2020, 3, 2), 5, []time.Time{
			date(2020, 2, 27), date(2020, 2, 28), date(2020, 2, 29), date(2020, 3, 1), date(2020, 3, 2),
		}},
	} {
		s, err := NewTime(test.t0, test.t1, 0, 100)
		if err != nil {
			t.Fatal(err)
		}
		got := s.Ticks(test.n)
		if len(got) != len(test.want) {
			t.Errorf("Ticks(%v..%v, %d): want %v; got %v", test.t0, test.t1, test.n, test.want, got)
			continue
		}
		for i := range got {
			if !got[i].Equal(test.want[i]) {
				t.Errorf("Ticks(%v..%v, %d)[%d]: want %v; got %v", test.t0, test.t1, test.n, i, test.want[i], got[i])
			}
		}
	}
}

func TestOrdinalExplicit(t *testing.T) {
	s := NewOrdinal("red", "green").SetDomain([]string{"A", "B", "C", "A"}).SetUnknown("grey")
	if want, got := []string{"A", "B", "C"}, s.Domain(); !de(want, got) {
		t.Errorf("Domain: want %v; got %v", want, got)
	}
	for _, test := range []struct{ key, want string }{
		{"A", "red"}, {"B", "green"}, {"C", "red"}, {"Z", "grey"}, {"a", "grey"},
	} {
		if got := s.Map(test.key); got != test.want {
			t.Errorf("Map(%q): want %q; got %q", test.key, test.want, got)
		}
	}
	// Unknown keys do not extend a fixed domain.
	if got := len(s.Domain()); got != 3 {
		t.Errorf("fixed domain grew to %d keys", got)
	}
}

func TestOrdinalImplicit(t *testing.T) {
	s := NewOrdinal(10.0, 20.0, 30.0)
	if got := s.Map("x"); got != 10 {
		t.Errorf("Map(x): want 10; got %v", got)
	}
	if got := s.Map("y"); got != 20 {
		t.Errorf("Map(y): want 20; got %v", got)
	}
	if got := s.Map("x"); got != 10 {
		t.Errorf("second Map(x): want 10; got %v", got)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Errorf("Lookup(z) found unmapped key")
	}
	if want, got := []string{"x", "y"}, s.Domain(); !de(want, got) {
		t.Errorf("Domain: want %v; got %v", want, got)
	}
}

func TestOrdinalPalette(t *testing.T) {
	black, grey, white := color.RGBA{0, 0, 0, 255}, color.RGBA{128, 128, 128, 255}, color.RGBA{255, 255, 255, 255}
	p := palette.RGBGradient{Colors: []color.RGBA{black, grey, white}}
	s := NewOrdinalPalette(p, []string{"a", "b"})
	if got := s.Map("a"); got == nil || got == s.Map("b") {
		t.Errorf("palette keys not distinct: %v, %v", got, s.Map("b"))
	}
	if len(s.Range()) != 2 {
		t.Errorf("want 2 colors; got %d", len(s.Range()))
	}
}

func TestPoints(t *testing.T) {
	s := NewPoints([]string{"a", "b", "c"}, 0, 100, 0)
	for _, test := range []struct {
		key  string
		want float64
	}{{"a", 0}, {"b", 50}, {"c", 100}} {
		if got := s.Map(test.key); got != test.want {
			t.Errorf("Map(%q): want %v; got %v", test.key, test.want, got)
		}
	}
	s = NewPoints([]string{"a", "b"}, 0, 90, 1)
	if a, b := s.Map("a"), s.Map("b"); a != 30 || b != 60 {
		t.Errorf("padded points: want 30, 60; got %v, %v", a, b)
	}
	s = NewPoints([]string{"only"}, 0, 10, 0)
	if got := s.Map("only"); got != 5 {
		t.Errorf("single point: want 5; got %v", got)
	}
}
