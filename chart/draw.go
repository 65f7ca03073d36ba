// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/aclements/go-svgchart/render"
)

const tickSize = 6

var (
	axisStyle = render.Style{Stroke: color.Black, StrokeWidth: 1}
	gridStyle = render.Style{Stroke: color.Gray{0xcc}, StrokeWidth: 1, Dash: "2 2"}
)

// Render draws c to r.
func (c *Chart) Render(r render.Renderer) {
	r.Group("chart", 0, 0)
	if c.Title != nil {
		r.Text(c.Title.X, c.Title.Y, c.Title.Text, c.Title.Style)
	}
	for _, p := range c.Panels {
		p.render(r)
	}
	r.EndGroup()
}

func (p *Panel) render(r render.Renderer) {
	r.Group("panel", p.X, p.Y)
	for _, b := range p.Bands {
		r.Rect(b.X, b.Y, b.W, b.H, b.Style)
	}
	if p.XAxis.Grid {
		for _, t := range p.XAxis.Plan {
			r.Line(t.Pos, 0, t.Pos, p.Height, gridStyle)
		}
	}
	if p.YAxis.Grid {
		for _, t := range p.YAxis.Plan {
			r.Line(0, t.Pos, p.Width, t.Pos, gridStyle)
		}
	}
	for _, m := range p.Marks {
		r.Path(m.D, m.Style)
	}
	for _, m := range p.Markers {
		r.Circle(m.X, m.Y, m.R, m.Style)
	}
	for _, t := range p.Texts {
		r.Text(t.X, t.Y, t.Text, t.Style)
	}
	p.renderXAxis(r)
	p.renderYAxis(r)
	r.EndGroup()
}

func (p *Panel) renderXAxis(r render.Renderer) {
	r.Group("axis x-axis", 0, p.Height)
	if !p.XAxis.Grid {
		r.Line(0, 0, p.Width, 0, axisStyle)
	}
	label := render.Style{FontSize: tickFontSize, Anchor: "middle", Baseline: "hanging"}
	for _, t := range p.XAxis.Plan {
		r.Line(t.Pos, 0, t.Pos, tickSize, axisStyle)
		r.Text(t.Pos, tickSize+3, t.Label, label)
	}
	r.EndGroup()
}

func (p *Panel) renderYAxis(r render.Renderer) {
	r.Group("axis y-axis", 0, 0)
	if !p.YAxis.Grid {
		r.Line(0, 0, 0, p.Height, axisStyle)
	}
	label := render.Style{FontSize: tickFontSize, Anchor: "end", Baseline: "middle"}
	for _, t := range p.YAxis.Plan {
		r.Line(-tickSize, t.Pos, 0, t.Pos, axisStyle)
		r.Text(-tickSize-3, t.Pos, t.Label, label)
	}
	r.EndGroup()
}
