// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to pixel positions and visual
// values.
//
// Continuous scales (Linear, Time) have their domain fixed at
// construction time and are read-only afterwards, so a single scale
// value can be shared by everything that computes coordinates for
// one chart axis: paths, label anchors and axis ticks all agree
// because they use the same *Linear.
package scale

import (
	"errors"
	"fmt"
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

var (
	// ErrDegenerate indicates a continuous domain whose bounds are
	// equal. Such a domain would map every value to the same
	// pixel (or divide by zero), so it is rejected.
	ErrDegenerate = errors.New("degenerate domain")

	// ErrNonFinite indicates a NaN or infinite domain bound.
	ErrNonFinite = errors.New("non-finite domain")
)

// A DomainError reports a domain that cannot be used by a continuous
// scale.
type DomainError struct {
	Min, Max float64
	Err      error // ErrDegenerate or ErrNonFinite
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("scale: domain [%g, %g]: %v", e.Min, e.Max, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// Linear is a continuous linear scale from a numeric domain [d0, d1]
// to an output range [r0, r1].
//
// Either interval may be reversed; a typical y axis uses the range
// [height, 0].
type Linear struct {
	ls     moremath.Linear
	r0, r1 float64
	clamp  bool
}

// NewLinear returns a linear scale from domain [d0, d1] to range
// [r0, r1]. It returns a *DomainError if d0 == d1 or either bound is
// not finite, and an error if the range is not finite.
func NewLinear(d0, d1, r0, r1 float64) (*Linear, error) {
	if !isFinite(d0) || !isFinite(d1) || !isFinite(d1-d0) {
		return nil, &DomainError{d0, d1, ErrNonFinite}
	}
	if d0 == d1 {
		return nil, &DomainError{d0, d1, ErrDegenerate}
	}
	if !isFinite(r0) || !isFinite(r1) {
		return nil, fmt.Errorf("scale: range [%g, %g] is not finite", r0, r1)
	}
	return &Linear{ls: moremath.Linear{Min: d0, Max: d1}, r0: r0, r1: r1}, nil
}

func (s *Linear) String() string {
	return fmt.Sprintf("linear [%g,%g] => [%g,%g]", s.ls.Min, s.ls.Max, s.r0, s.r1)
}

// Domain returns the domain bounds in the order they were given.
func (s *Linear) Domain() (d0, d1 float64) {
	return s.ls.Min, s.ls.Max
}

// Range returns the range bounds in the order they were given.
func (s *Linear) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

// Contains reports whether v lies within the domain, inclusive of
// its bounds.
func (s *Linear) Contains(v float64) bool {
	lo, hi := s.ls.Min, s.ls.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}

// Clamped returns a copy of s that clamps values outside the domain
// to the nearest range bound.
func (s *Linear) Clamped() *Linear {
	s2 := *s
	s2.clamp = true
	return &s2
}

// Map maps domain value v to the range. Map(d0) == r0 and
// Map(d1) == r1 exactly.
func (s *Linear) Map(v float64) float64 {
	t := s.ls.Map(v)
	if s.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return lerp(s.r0, s.r1, t)
}

// Invert maps range value px back to the domain. If the range is
// empty (r0 == r1), Invert returns d0.
func (s *Linear) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.ls.Min
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	if s.clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return lerp(s.ls.Min, s.ls.Max, t)
}

// lerp interpolates between a and b. It is exact at t == 0 and
// t == 1.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Ticks returns approximately n "nice" values spanning the domain,
// in increasing order. Tick spacing is 1, 2 or 5 times a power of
// ten.
func (s *Linear) Ticks(n int) []float64 {
	return Ticks(s.ls.Min, s.ls.Max, n)
}

// TickStep returns the spacing Ticks(n) would use, or 0 if there is
// no suitable spacing.
func (s *Linear) TickStep(n int) float64 {
	return TickStep(s.ls.Min, s.ls.Max, n)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the tick spacing for about n ticks over
// [lo, hi]. A negative result -k means a spacing of 1/k; this keeps
// fractional ticks exact (0.1 is computed as 1/10, not 0.1*1).
func tickIncrement(lo, hi float64, n int) float64 {
	step := (hi - lo) / math.Max(0, float64(n))
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	f := 1.0
	switch {
	case e >= e10:
		f = 10
	case e >= e5:
		f = 5
	case e >= e2:
		f = 2
	}
	if power >= 0 {
		return f * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / f
}

// Ticks returns approximately n nice values between lo and hi,
// inclusive, in increasing order.
func Ticks(lo, hi float64, n int) []float64 {
	if n <= 0 || !isFinite(lo) || !isFinite(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	inc := tickIncrement(lo, hi, n)
	if inc == 0 || !isFinite(inc) {
		return nil
	}
	var ticks []float64
	if inc > 0 {
		i0, i1 := math.Ceil(lo/inc), math.Floor(hi/inc)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		inc = -inc
		i0, i1 := math.Ceil(lo*inc), math.Floor(hi*inc)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i/inc)
		}
	}
	return ticks
}

// TickStep returns the positive spacing Ticks(lo, hi, n) uses, or 0.
func TickStep(lo, hi float64, n int) float64 {
	if n <= 0 || !isFinite(lo) || !isFinite(hi) || lo == hi {
		return 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	inc := tickIncrement(lo, hi, n)
	if !isFinite(inc) {
		return 0
	}
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

// NiceDomain extends [d0, d1] outward so both bounds are multiples of
// the tick spacing for about n ticks. The orientation of the domain
// is preserved.
func NiceDomain(d0, d1 float64, n int) (float64, float64) {
	if n <= 0 || !isFinite(d0) || !isFinite(d1) || d0 == d1 {
		return d0, d1
	}
	rev := d0 > d1
	lo, hi := d0, d1
	if rev {
		lo, hi = hi, lo
	}
	var prev float64
	for iter := 0; iter < 10; iter++ {
		step := tickIncrement(lo, hi, n)
		if step == prev {
			break
		}
		if step > 0 {
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		} else if step < 0 {
			lo = math.Ceil(lo*step) / step
			hi = math.Floor(hi*step) / step
		} else {
			break
		}
		prev = step
	}
	if rev {
		return hi, lo
	}
	return lo, hi
}
