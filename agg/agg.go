// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agg computes extents and aggregates over records.
package agg

import (
	"errors"
	"math"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-svgchart/record"
)

// ErrEmpty is returned when there are no finite values to aggregate.
var ErrEmpty = errors.New("agg: no finite values")

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// values projects recs through f and drops NaN and infinite results.
func values(recs []record.Record, f record.Projection) []float64 {
	xs := make([]float64, 0, len(recs))
	for _, r := range recs {
		if x := f(r); isFinite(x) {
			xs = append(xs, x)
		}
	}
	return xs
}

// Extent returns the minimum and maximum of f over recs. Non-finite
// values are skipped. If no finite value remains, Extent returns
// ErrEmpty.
func Extent(recs []record.Record, f record.Projection) (lo, hi float64, err error) {
	xs := values(recs, f)
	if len(xs) == 0 {
		return 0, 0, ErrEmpty
	}
	lo, hi = stats.Bounds(xs)
	return lo, hi, nil
}

// TimeExtent returns the earliest and latest of f over recs.
func TimeExtent(recs []record.Record, f func(record.Record) time.Time) (lo, hi time.Time, err error) {
	if len(recs) == 0 {
		return time.Time{}, time.Time{}, ErrEmpty
	}
	lo, hi = f(recs[0]), f(recs[0])
	for _, r := range recs[1:] {
		t := f(r)
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	return lo, hi, nil
}

// Sum returns the sum of f over recs, skipping NaN values. The sum
// of no values is 0.
func Sum(recs []record.Record, f record.Projection) float64 {
	xs := make([]float64, 0, len(recs))
	for _, r := range recs {
		if x := f(r); !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	return vec.Sum(xs)
}

// Mean returns the mean of the finite values of f over recs.
func Mean(recs []record.Record, f record.Projection) (float64, error) {
	xs := values(recs, f)
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	return stats.Mean(xs), nil
}

// Include extends [lo, hi] to contain each of vs. Non-finite values
// are ignored.
func Include(lo, hi float64, vs ...float64) (float64, float64) {
	for _, v := range vs {
		if !isFinite(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// Union returns the smallest interval containing a and b.
func Union(a, b [2]float64) [2]float64 {
	lo, hi := Include(a[0], a[1], b[0], b[1])
	return [2]float64{lo, hi}
}
