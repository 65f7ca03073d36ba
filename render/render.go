// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws pixel-space shapes.
//
// A Renderer is an explicit drawing context. Charts compute all of
// their geometry first and then issue drawing calls to a Renderer,
// so the same chart can be written as SVG or recorded for tests.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Renderer receives drawing operations. Coordinates are pixels
// relative to the innermost open group.
type Renderer interface {
	// Group opens a group translated by (dx, dy). Groups nest and
	// must be closed with EndGroup.
	Group(class string, dx, dy float64)
	EndGroup()

	Path(d string, st Style)
	Text(x, y float64, text string, st Style)
	Circle(x, y, r float64, st Style)
	Rect(x, y, w, h float64, st Style)
	Line(x1, y1, x2, y2 float64, st Style)
}

// Style is the paint of a shape. The zero Style draws nothing for
// shapes and black text.
type Style struct {
	Stroke      color.Color // nil for no stroke
	Fill        color.Color // nil for no fill
	StrokeWidth float64
	Opacity     float64 // 0 means opaque
	Dash        string  // stroke-dasharray, like "2,3"
	Class       string

	FontSize float64 // pixels; 0 inherits
	Anchor   string  // text-anchor: "start", "middle" or "end"
	Weight   string  // font-weight
	Baseline string  // dominant-baseline, like "middle"
}

// CSS returns st as an inline CSS declaration list. Properties are
// always emitted in the same order.
func (st Style) CSS() string {
	var b []string
	b = append(b, cssPaint("stroke", st.Stroke), cssPaint("fill", st.Fill))
	if st.StrokeWidth != 0 {
		b = append(b, "stroke-width:"+num(st.StrokeWidth))
	}
	if st.Dash != "" {
		b = append(b, "stroke-dasharray:"+st.Dash)
	}
	if st.Opacity != 0 && st.Opacity != 1 {
		b = append(b, "opacity:"+num(st.Opacity))
	}
	if st.FontSize != 0 {
		b = append(b, "font-size:"+num(st.FontSize)+"px")
	}
	if st.Anchor != "" {
		b = append(b, "text-anchor:"+st.Anchor)
	}
	if st.Weight != "" {
		b = append(b, "font-weight:"+st.Weight)
	}
	if st.Baseline != "" {
		b = append(b, "dominant-baseline:"+st.Baseline)
	}
	return strings.Join(b, ";")
}

// TextStyle returns st with black fill if it has no paint.
func (st Style) TextStyle() Style {
	if st.Fill == nil && st.Stroke == nil {
		st.Fill = color.Black
	}
	return st
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

// cssPaint returns a CSS declaration painting prop with c.
func cssPaint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8

	css := prop
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		css += fmt.Sprintf(":#%x%x%x", r>>4, g>>4, b>>4)
	} else {
		css += fmt.Sprintf(":#%02x%02x%02x", r, g, b)
	}
	if a != 0xffff {
		// SVG 1.1 has no rgba; opacity is a separate property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	}
	return css
}

var namedColors = map[string]color.RGBA{
	"black":     {0, 0, 0, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"grey":      {0x80, 0x80, 0x80, 0xff},
	"gray":      {0x80, 0x80, 0x80, 0xff},
	"lightgrey": {0xd3, 0xd3, 0xd3, 0xff},
	"lightgray": {0xd3, 0xd3, 0xd3, 0xff},
	"red":       {0xff, 0, 0, 0xff},
	"green":     {0, 0x80, 0, 0xff},
	"blue":      {0, 0, 0xff, 0xff},
	"steelblue": {0x46, 0x82, 0xb4, 0xff},
	"orange":    {0xff, 0xa5, 0, 0xff},
	"purple":    {0x80, 0, 0x80, 0xff},
}

// ParseColor parses "#rgb", "#rrggbb", "none" or one of a few CSS
// color names. "none" and "" return nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none":
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("render: unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("render: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("render: bad color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
