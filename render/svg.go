// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Renderer that writes an SVG document.
//
// svgo positions shapes on integer coordinates, so SVG places each
// shape with a translate transform and keeps full precision.
type SVG struct {
	c     *svg.SVG
	depth int
}

// NewSVG starts an SVG document of the given size on w. The caller
// must call End to finish the document.
func NewSVG(w io.Writer, width, height int, fontSize float64) *SVG {
	c := svg.New(w)
	c.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	return &SVG{c: c}
}

// End closes any open groups and finishes the document.
func (s *SVG) End() {
	for ; s.depth > 0; s.depth-- {
		s.c.Gend()
	}
	s.c.End()
}

func translate(dx, dy float64) string {
	return `transform="translate(` + num(dx) + " " + num(dy) + `)"`
}

func (s *SVG) Group(class string, dx, dy float64) {
	var attrs []string
	if class != "" {
		attrs = append(attrs, `class="`+class+`"`)
	}
	if dx != 0 || dy != 0 {
		attrs = append(attrs, translate(dx, dy))
	}
	s.c.Group(attrs...)
	s.depth++
}

func (s *SVG) EndGroup() {
	if s.depth == 0 {
		panic("render: EndGroup without Group")
	}
	s.c.Gend()
	s.depth--
}

func attrs(st Style) []string {
	a := []string{st.CSS()}
	if st.Class != "" {
		a = append(a, `class="`+st.Class+`"`)
	}
	return a
}

func (s *SVG) Path(d string, st Style) {
	if d == "" {
		return
	}
	s.c.Path(d, attrs(st)...)
}

func (s *SVG) Text(x, y float64, text string, st Style) {
	s.c.Text(0, 0, text, append(attrs(st.TextStyle()), translate(x, y))...)
}

// Circle draws a circle. The radius is rounded to whole pixels.
func (s *SVG) Circle(x, y, r float64, st Style) {
	s.c.Circle(0, 0, int(math.Round(r)), append(attrs(st), translate(x, y))...)
}

func (s *SVG) Rect(x, y, w, h float64, st Style) {
	s.Path(rectPath(x, y, w, h), st)
}

func (s *SVG) Line(x1, y1, x2, y2 float64, st Style) {
	s.Path("M"+num(x1)+" "+num(y1)+"L"+num(x2)+" "+num(y2), st)
}

// rectPath returns closed path data for a rectangle, normalizing
// negative sizes.
func rectPath(x, y, w, h float64) string {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return "M" + num(x) + " " + num(y) + "h" + num(w) + "v" + num(h) + "h" + num(-w) + "Z"
}
