// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// An Op is one recorded drawing operation.
type Op struct {
	Kind  string    // "group", "end", "path", "text", "circle", "rect" or "line"
	Args  []float64 // coordinates, in call order
	Text  string    // path data, text, or group class
	Style Style
	Depth int // number of enclosing groups
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", o.Depth))
	b.WriteString(o.Kind)
	for _, a := range o.Args {
		fmt.Fprintf(&b, " %s", num(a))
	}
	if o.Text != "" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	return b.String()
}

// A Recorder is a Renderer that records operations in order.
type Recorder struct {
	Ops   []Op
	depth int
}

func (r *Recorder) add(kind, text string, st Style, args ...float64) {
	r.Ops = append(r.Ops, Op{kind, args, text, st, r.depth})
}

func (r *Recorder) Group(class string, dx, dy float64) {
	r.add("group", class, Style{}, dx, dy)
	r.depth++
}

func (r *Recorder) EndGroup() {
	r.depth--
	r.add("end", "", Style{})
}

func (r *Recorder) Path(d string, st Style) {
	r.add("path", d, st)
}

func (r *Recorder) Text(x, y float64, text string, st Style) {
	r.add("text", text, st, x, y)
}

func (r *Recorder) Circle(x, y, rad float64, st Style) {
	r.add("circle", "", st, x, y, rad)
}

func (r *Recorder) Rect(x, y, w, h float64, st Style) {
	r.add("rect", "", st, x, y, w, h)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, st Style) {
	r.add("line", "", st, x1, y1, x2, y2)
}

// Find returns the recorded operations of kind.
func (r *Recorder) Find(kind string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Depth returns the number of open groups.
func (r *Recorder) Depth() int {
	return r.depth
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
