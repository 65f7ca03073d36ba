// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis computes tick plans: the values, pixel positions and
// labels of axis ticks.
//
// A Plan is pure data. Positions come from the same scale that maps
// the chart's geometry, so ticks line up with paths exactly.
package axis

import (
	"math"
	"time"

	moremath "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-svgchart/scale"
	"github.com/aclements/go-svgchart/timefmt"
)

// A Scale is a continuous scale that can propose ticks.
// *scale.Linear implements Scale.
type Scale interface {
	Map(v float64) float64
	Domain() (d0, d1 float64)
	Contains(v float64) bool
	Ticks(n int) []float64
	TickStep(n int) float64
}

// A Tick is one tick mark.
type Tick struct {
	Value float64 // domain value; epoch milliseconds on time axes
	Pos   float64 // pixel position
	Label string
}

// A Plan is a list of ticks. Computed plans are in increasing value
// order; plans from explicit values keep the order they were given.
type Plan []Tick

// Values returns the tick values of p.
func (p Plan) Values() []float64 {
	vs := make([]float64, len(p))
	for i, t := range p {
		vs[i] = t.Value
	}
	return vs
}

// Labels returns the tick labels of p.
func (p Plan) Labels() []string {
	ls := make([]string, len(p))
	for i, t := range p {
		ls[i] = t.Label
	}
	return ls
}

func plan(s Scale, vals []float64, f Formatter) Plan {
	p := make(Plan, len(vals))
	for i, v := range vals {
		p[i] = Tick{Value: v, Pos: s.Map(v), Label: f(v)}
	}
	return p
}

// Count returns about n nice ticks over s's domain. If f is nil,
// labels use Default(s, n).
func Count(s Scale, n int, f Formatter) Plan {
	if f == nil {
		f = Default(s, n)
	}
	return plan(s, s.Ticks(n), f)
}

// Values returns ticks at the given values, in the given order.
// Values outside s's domain are dropped.
func Values(s Scale, vals []float64, f Formatter) Plan {
	if f == nil {
		f = Default(s, len(vals))
	}
	var in []float64
	for _, v := range vals {
		if s.Contains(v) {
			in = append(in, v)
		}
	}
	return plan(s, in, f)
}

// Fit returns the densest nice ticks over s's domain that have at
// most max ticks and, if pred is non-nil, whose labels satisfy pred.
// pred must accept any subset of labels it accepts. If no tick level
// satisfies the constraints, Fit returns nil.
func Fit(s Scale, max int, f Formatter, pred func(labels []string) bool) Plan {
	if f == nil {
		f = Default(s, max)
	}
	lo, hi := s.Domain()
	if lo > hi {
		lo, hi = hi, lo
	}
	if max < 1 {
		return nil
	}
	if lo == hi {
		return plan(s, []float64{lo}, f)
	}
	ms := moremath.Linear{Min: lo, Max: hi}
	o := moremath.TickOptions{Max: max}
	level, ok := o.FindLevel(ms, 2*int(math.Log10(hi-lo)))
	if !ok {
		return nil
	}
	// Raise the level until the labels fit. Higher levels have
	// fewer ticks, so this ends once a single tick remains.
	for {
		p := plan(s, ms.TicksAtLevel(level).([]float64), f)
		if pred == nil || pred(p.Labels()) {
			return p
		}
		if len(p) <= 1 {
			return nil
		}
		level++
	}
}

// TimeCount returns about n calendar-aligned ticks over ts's domain.
// If f is nil, labels use the RFC 3339 date.
func TimeCount(ts *scale.Time, n int, f TimeFormatter) Plan {
	return timePlan(ts, ts.Ticks(n), f)
}

// TimeValues returns ticks at the given instants, in the given order,
// dropping those outside ts's domain.
func TimeValues(ts *scale.Time, vals []time.Time, f TimeFormatter) Plan {
	var in []time.Time
	for _, t := range vals {
		if ts.Contains(timefmt.Millis(t)) {
			in = append(in, t)
		}
	}
	return timePlan(ts, in, f)
}

func timePlan(ts *scale.Time, vals []time.Time, f TimeFormatter) Plan {
	if f == nil {
		f = func(t time.Time) string { return t.Format("2006-01-02") }
	}
	p := make(Plan, len(vals))
	for i, t := range vals {
		p[i] = Tick{Value: timefmt.Millis(t), Pos: ts.MapTime(t), Label: f(t)}
	}
	return p
}
