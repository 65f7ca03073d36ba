// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart builds annotated line and area charts from records.
//
// Build runs the whole pipeline for one Spec: it coerces fields,
// computes extents, constructs one x and one y scale, groups the
// records and produces a Chart, a pure description of every shape
// in pixel coordinates. Render then draws a Chart to any
// render.Renderer. The scales built for a chart are used for its
// paths, label anchors and axes alike, and are never shared with
// another chart.
package chart

import (
	"log"
	"os"

	"github.com/aclements/go-svgchart/axis"
	"github.com/aclements/go-svgchart/render"
)

// Warning is the logger for recoverable problems, such as a group
// whose label has nothing to anchor to.
var Warning = log.New(os.Stderr, "[chart] ", 0)

// A Chart is the computed geometry of one chart.
type Chart struct {
	Name          string
	Width, Height int

	Title  *TextMark // in chart coordinates; nil for none
	Panels []*Panel
}

// A Panel is one plot area. All marks are in panel coordinates: the
// origin is the panel's top-left corner and y grows downward.
type Panel struct {
	Key           string // group key of a small multiple
	X, Y          float64
	Width, Height float64

	Bands   []RectMark
	Marks   []PathMark
	Markers []CircleMark
	Texts   []TextMark

	XAxis, YAxis AxisMark
}

type PathMark struct {
	Key   string // group key, or "" for reference series
	D     string
	Style render.Style
}

type TextMark struct {
	X, Y  float64
	Text  string
	Style render.Style
}

type CircleMark struct {
	X, Y, R float64
	Style   render.Style
}

type RectMark struct {
	X, Y, W, H float64
	Style      render.Style
}

// An AxisMark is the tick plan of one axis.
type AxisMark struct {
	Plan axis.Plan
	Grid bool
}
