// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"
	"time"

	"github.com/aclements/go-svgchart/timefmt"
)

// Time is a linear scale over instants. Its underlying Linear maps
// milliseconds since the Unix epoch (see timefmt.Millis), so record
// accessors that project dates to float64 can use it directly.
type Time struct {
	*Linear
}

// NewTime returns a time scale from [t0, t1] to [r0, r1].
func NewTime(t0, t1 time.Time, r0, r1 float64) (*Time, error) {
	l, err := NewLinear(timefmt.Millis(t0), timefmt.Millis(t1), r0, r1)
	if err != nil {
		return nil, err
	}
	return &Time{l}, nil
}

// TimeDomain returns the domain as instants.
func (s *Time) TimeDomain() (t0, t1 time.Time) {
	d0, d1 := s.Domain()
	return timefmt.FromMillis(d0), timefmt.FromMillis(d1)
}

// MapTime maps t to the range.
func (s *Time) MapTime(t time.Time) float64 {
	return s.Map(timefmt.Millis(t))
}

// InvertTime maps range value px back to an instant.
func (s *Time) InvertTime(px float64) time.Time {
	return timefmt.FromMillis(s.Invert(px))
}

// Clamped returns a copy of s that clamps out-of-domain values.
func (s *Time) Clamped() *Time {
	return &Time{s.Linear.Clamped()}
}

type calUnit int

const (
	unitSecond calUnit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

// calInterval is a calendar tick interval of step units.
type calInterval struct {
	unit calUnit
	step int
	dur  time.Duration // approximate length, for choosing intervals
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var calIntervals = []calInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, day},
	{unitDay, 2, 2 * day},
	{unitWeek, 1, week},
	{unitMonth, 1, month},
	{unitMonth, 3, 3 * month},
	{unitMonth, 6, 6 * month},
	{unitYear, 1, year},
}

// floor returns the latest interval boundary at or before t.
func (iv calInterval) floor(t time.Time) time.Time {
	t = t.UTC()
	switch iv.unit {
	case unitSecond, unitMinute, unitHour:
		return t.Truncate(iv.dur)
	case unitDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case unitWeek:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return d.AddDate(0, 0, -int(d.Weekday()))
	case unitMonth:
		m := int(t.Month()) - 1
		m -= m % iv.step
		return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	default:
		y := t.Year()
		y -= mod(y, iv.step)
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// next returns the interval boundary after boundary t.
func (iv calInterval) next(t time.Time) time.Time {
	switch iv.unit {
	case unitSecond, unitMinute, unitHour:
		return t.Add(iv.dur)
	case unitDay:
		return t.AddDate(0, 0, iv.step)
	case unitWeek:
		return t.AddDate(0, 0, 7*iv.step)
	case unitMonth:
		return t.AddDate(0, iv.step, 0)
	default:
		return t.AddDate(iv.step, 0, 0)
	}
}

func (iv calInterval) ticks(t0, t1 time.Time) []time.Time {
	var ts []time.Time
	t := iv.floor(t0)
	if t.Before(t0) {
		t = iv.next(t)
	}
	for ; !t.After(t1); t = iv.next(t) {
		ts = append(ts, t)
	}
	return ts
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// chooseInterval picks the calendar interval whose length is closest
// (by ratio) to span/n. Spans too long for the table use years with
// a nice step.
func chooseInterval(span time.Duration, n int) calInterval {
	target := span / time.Duration(n)
	i := sort.Search(len(calIntervals), func(i int) bool {
		return calIntervals[i].dur > target
	})
	switch {
	case i == len(calIntervals):
		years := float64(span) / float64(year)
		step := int(math.Max(1, math.Round(TickStep(0, years, n))))
		return calInterval{unitYear, step, time.Duration(step) * year}
	case i == 0:
		return calIntervals[0]
	}
	lo, hi := calIntervals[i-1], calIntervals[i]
	if float64(target)/float64(lo.dur) < float64(hi.dur)/float64(target) {
		return lo
	}
	return hi
}

// Ticks returns about n calendar-aligned instants within the domain,
// in increasing order. Intervals range from one second to multiples
// of years; month ticks fall on the first of the month.
func (s *Time) Ticks(n int) []time.Time {
	if n <= 0 {
		return nil
	}
	t0, t1 := s.TimeDomain()
	if t0.After(t1) {
		t0, t1 = t1, t0
	}
	return chooseInterval(t1.Sub(t0), n).ticks(t0, t1)
}
