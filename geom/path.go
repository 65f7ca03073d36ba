// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom turns records into pixel-space geometry: line and
// area paths and label anchors.
//
// Every function takes the scales to map through as arguments. A
// chart passes the same scale values to path generation, anchor
// resolution and axis construction so all three agree on pixel
// positions.
package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-svgchart/record"
)

// A Scale maps a domain value to a pixel coordinate. *scale.Linear
// and *scale.Time implement Scale.
type Scale interface {
	Map(v float64) float64
}

// A Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// A Line is a piecewise-linear path through its points, in order.
type Line []Point

// An AreaPoint is one vertex of an area: the area spans from Y0 to Y1
// at X.
type AreaPoint struct {
	X, Y0, Y1 float64
}

// An Area is the region between two piecewise-linear curves, the
// Y1 curve and the Y0 baseline.
type Area []AreaPoint

// ErrInsufficientPoints indicates a path with fewer than two
// vertices.
var ErrInsufficientPoints = errors.New("fewer than 2 points")

// A PointsError reports a path that could not be built because it
// has too few points.
type PointsError struct {
	N int
}

func (e *PointsError) Error() string {
	return fmt.Sprintf("geom: path has %d point(s): %v", e.N, ErrInsufficientPoints)
}

func (e *PointsError) Unwrap() error {
	return ErrInsufficientPoints
}

// A CoordError reports a record that mapped to a NaN or infinite
// pixel coordinate.
type CoordError struct {
	Row  int
	X, Y float64
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("geom: record %d maps to non-finite point (%g,%g)", e.Row, e.X, e.Y)
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// project maps r through the x and y projections and scales.
func project(r record.Record, xs, ys Scale, x, y record.Projection) (Point, error) {
	p := Point{xs.Map(x(r)), ys.Map(y(r))}
	if !isFinite(p.X) || !isFinite(p.Y) {
		return p, &CoordError{r.Row(), p.X, p.Y}
	}
	return p, nil
}

// LinePath returns the line through recs, one vertex per record in
// input order. Records are not sorted; callers that want a
// monotonic line must order their input.
func LinePath(recs []record.Record, xs, ys Scale, x, y record.Projection) (Line, error) {
	if len(recs) < 2 {
		return nil, &PointsError{len(recs)}
	}
	line := make(Line, len(recs))
	for i, r := range recs {
		p, err := project(r, xs, ys, x, y)
		if err != nil {
			return nil, err
		}
		line[i] = p
	}
	return line, nil
}

// AreaPath returns the area between y1 and the baseline y0 over
// recs, in input order. record.Const(0) is the usual baseline.
func AreaPath(recs []record.Record, xs, ys Scale, x, y1, y0 record.Projection) (Area, error) {
	if len(recs) < 2 {
		return nil, &PointsError{len(recs)}
	}
	area := make(Area, len(recs))
	for i, r := range recs {
		p1, err := project(r, xs, ys, x, y1)
		if err != nil {
			return nil, err
		}
		p0, err := project(r, xs, ys, x, y0)
		if err != nil {
			return nil, err
		}
		area[i] = AreaPoint{p1.X, p0.Y, p1.Y}
	}
	return area, nil
}

func appendXY(d []byte, x, y float64) []byte {
	d = strconv.AppendFloat(d, x, 'g', 6, 64)
	d = append(d, ' ')
	return strconv.AppendFloat(d, y, 'g', 6, 64)
}

// D returns l as SVG path data.
func (l Line) D() string {
	var d []byte
	for i, p := range l {
		if i == 0 {
			d = append(d, 'M')
		} else {
			d = append(d, 'L')
		}
		d = appendXY(d, p.X, p.Y)
	}
	return string(d)
}

// Top returns the Y1 curve of a.
func (a Area) Top() Line {
	l := make(Line, len(a))
	for i, p := range a {
		l[i] = Point{p.X, p.Y1}
	}
	return l
}

// D returns a as closed SVG path data. The path follows the Y1 curve
// forward and the baseline backward.
func (a Area) D() string {
	if len(a) == 0 {
		return ""
	}
	var d []byte
	for i, p := range a {
		if i == 0 {
			d = append(d, 'M')
		} else {
			d = append(d, 'L')
		}
		d = appendXY(d, p.X, p.Y1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		d = append(d, 'L')
		d = appendXY(d, a[i].X, a[i].Y0)
	}
	return string(append(d, 'Z'))
}
