// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-svgchart/geom"
	"github.com/aclements/go-svgchart/render"
	"github.com/aclements/go-svgchart/timefmt"
)

// A Spec describes one chart. Specs are usually decoded from a
// configuration file, so every field has a mapstructure tag.
type Spec struct {
	Name  string `mapstructure:"name"`
	Kind  string `mapstructure:"kind"` // "overlay" (default) or "multiples"
	Title string `mapstructure:"title"`

	// TitleColor colors the per-panel titles of small multiples.
	TitleColor string `mapstructure:"title_color"`

	// Data is the CSV file holding the records. Reference is an
	// optional second CSV file for series with source "reference".
	Data      string `mapstructure:"data"`
	Reference string `mapstructure:"reference"`

	// Width and Height are the size of the whole chart for overlay
	// charts and of each panel for small multiples. Margin is
	// inside that size.
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Margin  Margin `mapstructure:"margin"`
	Columns int    `mapstructure:"columns"`

	// Key is the field records are grouped by. Empty means a
	// single group of all records.
	Key string `mapstructure:"key"`

	X Axis `mapstructure:"x"`
	Y Axis `mapstructure:"y"`

	Series []Series `mapstructure:"series"`
	Label  *Label   `mapstructure:"label"`
	Sums   []Sum    `mapstructure:"sums"`
	Bands  []Band   `mapstructure:"bands"`
	Texts  []Text   `mapstructure:"texts"`

	// Palette lists the group colors. If PaletteGradient is set,
	// they are gradient stops sampled once per group instead. With
	// no palette, groups are colored along viridis.
	Palette         []string `mapstructure:"palette"`
	PaletteGradient bool     `mapstructure:"palette_gradient"`
}

type Margin struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// An Axis describes how a field maps to one chart dimension.
type Axis struct {
	Field string `mapstructure:"field"`

	// Time is a strftime-style layout. If set, Field holds dates.
	Time string `mapstructure:"time"`

	// Domain fixes the domain bounds; otherwise the domain is the
	// extent of the data. Include extends the domain to cover
	// more values, and Nice rounds it to tick multiples.
	Domain  []string  `mapstructure:"domain"`
	Include []float64 `mapstructure:"include"`
	Nice    bool      `mapstructure:"nice"`

	// Ticks is the approximate tick count. TickValues lists
	// explicit ticks instead.
	Ticks      int      `mapstructure:"ticks"`
	TickValues []string `mapstructure:"tick_values"`

	// MaxTicks, if set, picks the densest nice ticks, up to
	// MaxTicks, whose labels fit along the axis without overlap.
	MaxTicks int `mapstructure:"max_ticks"`

	// Format is a number format (see axis.ParseFormat), or a time
	// layout on time axes.
	Format string `mapstructure:"format"`

	// Grid draws dashed grid lines across the panel at each tick.
	Grid bool `mapstructure:"grid"`
}

// A Series is one mark drawn per group.
type Series struct {
	Field       string  `mapstructure:"field"`
	Mark        string  `mapstructure:"mark"` // "line" (default) or "area"
	Baseline    float64 `mapstructure:"baseline"`
	Color       string  `mapstructure:"color"` // default: the group color
	Opacity     float64 `mapstructure:"opacity"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
	Source      string  `mapstructure:"source"` // "group" (default) or "reference"
	Class       string  `mapstructure:"class"`
}

// A Label places each group's key at the record whose Field equals
// Value, on the first series, with a marker circle.
type Label struct {
	Field    string   `mapstructure:"field"`
	Value    string   `mapstructure:"value"`
	Fallback string   `mapstructure:"fallback"` // "none", "first" or "last"
	Radius   float64  `mapstructure:"radius"`
	Size     float64  `mapstructure:"size"`
	Dx       float64  `mapstructure:"dx"`
	Dy       float64  `mapstructure:"dy"`
	Offsets  []Offset `mapstructure:"offsets"`
}

// An Offset nudges the label of one group.
type Offset struct {
	Key string  `mapstructure:"key"`
	Dx  float64 `mapstructure:"dx"`
	Dy  float64 `mapstructure:"dy"`
}

// A Sum shows the sum of Field over each group as text at (X, Y),
// given as fractions of the panel size.
type Sum struct {
	Field     string  `mapstructure:"field"`
	Precision int     `mapstructure:"precision"`
	Color     string  `mapstructure:"color"`
	Size      float64 `mapstructure:"size"`
	X         float64 `mapstructure:"x"`
	Y         float64 `mapstructure:"y"`
	Dx        float64 `mapstructure:"dx"`
}

// A Band shades the x interval [From, To] across the panel.
type Band struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
	Fill string `mapstructure:"fill"`
}

// A Text is static text drawn in every panel at pixel (X, Y).
type Text struct {
	Text  string  `mapstructure:"text"`
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Color string  `mapstructure:"color"`
	Size  float64 `mapstructure:"size"`
}

const (
	KindOverlay   = "overlay"
	KindMultiples = "multiples"
)

// setDefaults fills in unset fields of s.
func (s *Spec) setDefaults() {
	if s.Kind == "" {
		s.Kind = KindOverlay
	}
	if s.Width == 0 {
		s.Width = 600
	}
	if s.Height == 0 {
		s.Height = 400
	}
	for _, a := range []*Axis{&s.X, &s.Y} {
		if a.Ticks == 0 {
			a.Ticks = 10
		}
	}
	for i := range s.Series {
		sr := &s.Series[i]
		if sr.Mark == "" {
			sr.Mark = "line"
		}
		if sr.Source == "" {
			sr.Source = "group"
		}
		if sr.StrokeWidth == 0 {
			sr.StrokeWidth = 2
		}
	}
	if s.Label != nil && s.Label.Size == 0 {
		s.Label.Size = 12
	}
}

// Validate checks s for errors that do not depend on the data.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("chart has no name")
	}
	bad := func(format string, args ...interface{}) error {
		return fmt.Errorf("chart %q: %s", s.Name, fmt.Sprintf(format, args...))
	}
	switch s.Kind {
	case "", KindOverlay, KindMultiples:
	default:
		return bad("unknown kind %q", s.Kind)
	}
	if s.Data == "" {
		return bad("no data file")
	}
	if s.Width < 0 || s.Height < 0 || s.Columns < 0 {
		return bad("negative size")
	}
	if s.X.Field == "" || s.Y.Field == "" && len(s.Series) == 0 {
		return bad("x and y fields are required")
	}
	for _, a := range []*Axis{&s.X, &s.Y} {
		if len(a.Domain) != 0 && len(a.Domain) != 2 {
			return bad("axis %s: domain must have 2 values", a.Field)
		}
		if a.Time != "" {
			if _, err := timefmt.Compile(a.Time); err != nil {
				return bad("%v", err)
			}
		}
	}
	if s.Y.Time != "" {
		return bad("time y axes are not supported")
	}
	for _, sr := range s.Series {
		switch sr.Mark {
		case "", "line", "area":
		default:
			return bad("series %s: unknown mark %q", sr.Field, sr.Mark)
		}
		switch sr.Source {
		case "", "group":
		case "reference":
			if s.Reference == "" {
				return bad("series %s: reference source without a reference file", sr.Field)
			}
		default:
			return bad("series %s: unknown source %q", sr.Field, sr.Source)
		}
		if _, err := render.ParseColor(sr.Color); err != nil {
			return bad("%v", err)
		}
	}
	if s.Label != nil {
		if _, err := geom.ParseFallback(s.Label.Fallback); err != nil {
			return bad("%v", err)
		}
	}
	colors := append([]string{s.TitleColor}, s.Palette...)
	for _, sm := range s.Sums {
		colors = append(colors, sm.Color)
		if sm.Precision < 0 {
			return bad("sum %s: negative precision", sm.Field)
		}
	}
	for _, b := range s.Bands {
		colors = append(colors, b.Fill)
	}
	for _, t := range s.Texts {
		colors = append(colors, t.Color)
	}
	for _, c := range colors {
		if _, err := render.ParseColor(c); err != nil {
			return bad("%v", err)
		}
	}
	return nil
}

// series returns the configured series, or a single line of the y
// field.
func (s *Spec) series() []Series {
	if len(s.Series) != 0 {
		return s.Series
	}
	return []Series{{Field: s.Y.Field, Mark: "line", Source: "group", StrokeWidth: 2}}
}

// parseValue parses a domain value from configuration: a date on
// time axes, a number otherwise.
func (a *Axis) parseValue(text string) (float64, error) {
	if a.Time != "" {
		t, err := timefmt.Parse(text, a.Time)
		if err != nil {
			return 0, err
		}
		return timefmt.Millis(t), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("axis %s: bad value %q", a.Field, text)
	}
	return v, nil
}
