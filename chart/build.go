// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-svgchart/agg"
	"github.com/aclements/go-svgchart/axis"
	"github.com/aclements/go-svgchart/geom"
	"github.com/aclements/go-svgchart/group"
	"github.com/aclements/go-svgchart/record"
	"github.com/aclements/go-svgchart/render"
	"github.com/aclements/go-svgchart/scale"
	"github.com/aclements/go-svgchart/timefmt"
)

// Build computes the geometry of the chart described by spec over
// the records of data. ref holds the records of series with source
// "reference" and may be nil if there are none.
//
// Errors in the data, such as unparseable values, an empty extent or
// a series with fewer than two points, abort the chart. A label with
// no matching record is skipped with a message to Warning.
func Build(spec Spec, data, ref *record.Table) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	// Defaults must not leak into the caller's slices.
	spec.Series = append([]Series(nil), spec.Series...)
	if spec.Label != nil {
		l := *spec.Label
		spec.Label = &l
	}
	spec.setDefaults()

	b := &builder{spec: &spec}
	c, err := b.build(data, ref)
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", spec.Name, err)
	}
	return c, nil
}

type builder struct {
	spec *Spec

	data, ref []record.Record
	x         record.Projection

	xl *scale.Linear // x scale; ts.Linear on time axes
	ts *scale.Time
	ys *scale.Linear

	pw, ph float64
	colors *scale.Ordinal[color.Color]
}

func (b *builder) build(data, ref *record.Table) (*Chart, error) {
	s := b.spec
	if data == nil {
		return nil, errors.New("no data")
	}
	var dataFields, refFields []string
	for _, sr := range s.series() {
		if sr.Source == "reference" {
			refFields = append(refFields, sr.Field)
		} else {
			dataFields = append(dataFields, sr.Field)
		}
	}
	for _, sm := range s.Sums {
		dataFields = append(dataFields, sm.Field)
	}
	var err error
	if data, err = b.prepare(data, dataFields); err != nil {
		return nil, err
	}
	b.data = data.Records()
	if s.Key != "" && !data.Has(s.Key) {
		return nil, &record.FieldError{Field: s.Key}
	}
	if s.Label != nil && !data.Has(s.Label.Field) {
		return nil, fmt.Errorf("label: %w", &record.FieldError{Field: s.Label.Field})
	}

	if len(refFields) > 0 {
		if ref == nil {
			return nil, errors.New("reference series without reference data")
		}
		if ref, err = b.prepare(ref, refFields); err != nil {
			return nil, fmt.Errorf("reference: %w", err)
		}
		b.ref = ref.Records()
	}
	if s.X.Time != "" {
		b.x = record.TimeField(s.X.Field)
	} else {
		b.x = record.Field(s.X.Field)
	}

	// Panel size.
	m := s.Margin
	b.pw = float64(s.Width) - m.Left - m.Right
	b.ph = float64(s.Height) - m.Top - m.Bottom
	if b.pw <= 0 || b.ph <= 0 {
		return nil, fmt.Errorf("margins leave no room for the plot (%gx%g)", b.pw, b.ph)
	}

	if err := b.scales(); err != nil {
		return nil, err
	}

	var groups []group.Group
	if s.Key != "" {
		groups = group.ByField(b.data, s.Key)
	} else {
		groups = []group.Group{{Records: b.data}}
	}
	if err := b.palette(group.Keys(groups)); err != nil {
		return nil, err
	}

	c := &Chart{Name: s.Name}
	if s.Kind == KindMultiples {
		err = b.multiples(c, groups)
	} else {
		err = b.overlay(c, groups)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// prepare coerces the x field and fields of t.
func (b *builder) prepare(t *record.Table, fields []string) (*record.Table, error) {
	a := &b.spec.X
	if a.Time != "" {
		l, err := timefmt.Compile(a.Time)
		if err != nil {
			return nil, err
		}
		if t, err = t.ParseTime(a.Field, l); err != nil {
			return nil, err
		}
	} else {
		fields = append([]string{a.Field}, fields...)
	}
	seen := make(map[string]bool)
	var uniq []string
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			uniq = append(uniq, f)
		}
	}
	return t.Numeric(uniq...)
}

// scales computes the x and y domains and constructs the chart's
// scales.
func (b *builder) scales() error {
	s := b.spec

	x0, x1, err := b.domain(&s.X, b.xExtent)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if s.X.Time != "" {
		b.ts, err = scale.NewTime(timefmt.FromMillis(x0), timefmt.FromMillis(x1), 0, b.pw)
		if err != nil {
			return fmt.Errorf("x axis: %w", err)
		}
		b.xl = b.ts.Linear
	} else {
		b.xl, err = scale.NewLinear(x0, x1, 0, b.pw)
		if err != nil {
			return fmt.Errorf("x axis: %w", err)
		}
	}

	y0, y1, err := b.domain(&s.Y, b.yExtent)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	b.ys, err = scale.NewLinear(y0, y1, b.ph, 0)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// domain returns the configured domain of a, or extent() extended
// by a's Include and Nice options.
func (b *builder) domain(a *Axis, extent func() (float64, float64, error)) (lo, hi float64, err error) {
	if len(a.Domain) == 2 {
		if lo, err = a.parseValue(a.Domain[0]); err != nil {
			return 0, 0, err
		}
		if hi, err = a.parseValue(a.Domain[1]); err != nil {
			return 0, 0, err
		}
		return lo, hi, nil
	}
	if lo, hi, err = extent(); err != nil {
		return 0, 0, err
	}
	lo, hi = agg.Include(lo, hi, a.Include...)
	if a.Nice && a.Time == "" {
		lo, hi = scale.NiceDomain(lo, hi, a.Ticks)
	}
	return lo, hi, nil
}

func (b *builder) xExtent() (float64, float64, error) {
	sets := [][]record.Record{b.data}
	if b.ref != nil {
		sets = append(sets, b.ref)
	}
	ext := [2]float64{math.Inf(1), math.Inf(-1)}
	for _, recs := range sets {
		var lo, hi float64
		if b.spec.X.Time != "" {
			field := b.spec.X.Field
			t0, t1, err := agg.TimeExtent(recs, func(r record.Record) time.Time { return r.Time(field) })
			if err != nil {
				return 0, 0, err
			}
			lo, hi = timefmt.Millis(t0), timefmt.Millis(t1)
		} else {
			var err error
			if lo, hi, err = agg.Extent(recs, b.x); err != nil {
				return 0, 0, err
			}
		}
		ext = agg.Union(ext, [2]float64{lo, hi})
	}
	return ext[0], ext[1], nil
}

func (b *builder) yExtent() (float64, float64, error) {
	ext := [2]float64{math.Inf(1), math.Inf(-1)}
	for _, sr := range b.spec.series() {
		lo, hi, err := agg.Extent(b.source(sr), record.Field(sr.Field))
		if err != nil {
			return 0, 0, fmt.Errorf("series %s: %w", sr.Field, err)
		}
		if sr.Mark == "area" {
			lo, hi = agg.Include(lo, hi, sr.Baseline)
		}
		ext = agg.Union(ext, [2]float64{lo, hi})
	}
	return ext[0], ext[1], nil
}

// source returns every record sr draws from.
func (b *builder) source(sr Series) []record.Record {
	if sr.Source == "reference" {
		return b.ref
	}
	return b.data
}

// palette assigns a color to each group key.
func (b *builder) palette(keys []string) error {
	s := b.spec
	if len(s.Palette) == 0 {
		b.colors = scale.NewOrdinalPalette(palette.Viridis, keys)
		return nil
	}
	var cs []color.Color
	var rgba []color.RGBA
	for _, name := range s.Palette {
		c, err := render.ParseColor(name)
		if err != nil {
			return err
		}
		if c == nil {
			c = color.Transparent
		}
		cs = append(cs, c)
		rgba = append(rgba, color.RGBAModel.Convert(c).(color.RGBA))
	}
	if s.PaletteGradient {
		b.colors = scale.NewOrdinalPalette(palette.RGBGradient{Colors: rgba}, keys)
	} else {
		b.colors = scale.NewOrdinal(cs...).SetDomain(keys).SetUnknown(color.Black)
	}
	return nil
}

func mustColor(name string, def color.Color) color.Color {
	// Colors were checked by Validate.
	c, _ := render.ParseColor(name)
	if c == nil {
		return def
	}
	return c
}

func (b *builder) overlay(c *Chart, groups []group.Group) error {
	s := b.spec
	c.Width, c.Height = s.Width, s.Height
	p := &Panel{X: s.Margin.Left, Y: s.Margin.Top, Width: b.pw, Height: b.ph}
	if s.Title != "" {
		c.Title = &TextMark{
			X: s.Margin.Left + b.pw/2, Y: s.Margin.Top / 2, Text: s.Title,
			Style: render.Style{FontSize: 24, Anchor: "middle", Baseline: "middle"},
		}
	}
	if err := b.decorate(p); err != nil {
		return err
	}
	for _, sr := range s.series() {
		if sr.Source != "reference" {
			continue
		}
		if err := b.addMark(p, sr, group.Group{Records: b.ref}, b.seriesColor(sr, "")); err != nil {
			return err
		}
	}
	for _, g := range groups {
		if err := b.addGroup(p, g); err != nil {
			return err
		}
	}
	for _, g := range groups {
		if err := b.addLabel(p, g); err != nil {
			return err
		}
	}
	b.addTexts(p)
	c.Panels = []*Panel{p}
	return nil
}

const multiplesTitleHeight = 30

func (b *builder) multiples(c *Chart, groups []group.Group) error {
	s := b.spec
	if len(groups) == 0 {
		return fmt.Errorf("no groups for small multiples: %w", agg.ErrEmpty)
	}
	cols := s.Columns
	if cols == 0 || cols > len(groups) {
		cols = len(groups)
	}
	rows := (len(groups) + cols - 1) / cols

	top := 0.0
	if s.Title != "" {
		top = multiplesTitleHeight
		c.Title = &TextMark{
			X: float64(cols*s.Width) / 2, Y: top / 2, Text: s.Title,
			Style: render.Style{FontSize: 16, Anchor: "middle", Baseline: "middle", Weight: "bold"},
		}
	}
	c.Width = cols * s.Width
	c.Height = rows*s.Height + int(top)

	colKeys := make([]string, cols)
	for i := range colKeys {
		colKeys[i] = fmt.Sprint(i)
	}
	rowKeys := make([]string, rows)
	for i := range rowKeys {
		rowKeys[i] = fmt.Sprint(i)
	}
	colPos := scale.NewPoints(colKeys, 0, float64((cols-1)*s.Width), 0)
	rowPos := scale.NewPoints(rowKeys, top, top+float64((rows-1)*s.Height), 0)

	titleColor := mustColor(s.TitleColor, color.Black)
	for i, g := range groups {
		p := &Panel{
			Key:   g.Key,
			X:     colPos.Map(colKeys[i%cols]) + s.Margin.Left,
			Y:     rowPos.Map(rowKeys[i/cols]) + s.Margin.Top,
			Width: b.pw, Height: b.ph,
		}
		if err := b.decorate(p); err != nil {
			return err
		}
		for _, sr := range s.series() {
			src := g
			if sr.Source == "reference" {
				src = group.Group{Key: g.Key, Records: b.ref}
			}
			if err := b.addMark(p, sr, src, b.seriesColor(sr, g.Key)); err != nil {
				return err
			}
		}
		if err := b.addLabel(p, g); err != nil {
			return err
		}
		b.addSums(p, g)
		p.Texts = append(p.Texts, TextMark{
			X: b.pw / 2, Y: -10, Text: g.Key,
			Style: render.Style{Fill: titleColor, FontSize: 12, Anchor: "middle", Weight: "bold", Class: "panel-title"},
		})
		b.addTexts(p)
		c.Panels = append(c.Panels, p)
	}
	return nil
}

// seriesColor returns the color of sr for group key.
func (b *builder) seriesColor(sr Series, key string) color.Color {
	if sr.Color != "" {
		return mustColor(sr.Color, color.Black)
	}
	if sr.Source == "reference" {
		return color.Gray{0x80}
	}
	return b.colors.Map(key)
}

// decorate adds the axes and bands shared by every panel.
func (b *builder) decorate(p *Panel) error {
	var err error
	if p.XAxis, err = b.xAxis(); err != nil {
		return err
	}
	if p.YAxis, err = b.axis(&b.spec.Y, b.ys, b.ph); err != nil {
		return err
	}
	clamped := b.xl.Clamped()
	for _, band := range b.spec.Bands {
		v0, err := b.spec.X.parseValue(band.From)
		if err != nil {
			return fmt.Errorf("band: %w", err)
		}
		v1, err := b.spec.X.parseValue(band.To)
		if err != nil {
			return fmt.Errorf("band: %w", err)
		}
		x0, x1 := clamped.Map(v0), clamped.Map(v1)
		p.Bands = append(p.Bands, RectMark{
			X: math.Min(x0, x1), Y: 0, W: math.Abs(x1 - x0), H: b.ph,
			Style: render.Style{Fill: mustColor(band.Fill, color.Gray{0xf0}), Class: "band"},
		})
	}
	return nil
}

func (b *builder) xAxis() (AxisMark, error) {
	a := &b.spec.X
	if a.Time == "" {
		return b.axis(a, b.xl, b.pw)
	}
	layout := a.Format
	if layout == "" {
		layout = a.Time
	}
	l, err := timefmt.Compile(layout)
	if err != nil {
		return AxisMark{}, fmt.Errorf("x axis: %w", err)
	}
	f := axis.Time(l)
	if len(a.TickValues) > 0 {
		var ts []time.Time
		for _, v := range a.TickValues {
			ms, err := a.parseValue(v)
			if err != nil {
				return AxisMark{}, fmt.Errorf("x axis: %w", err)
			}
			ts = append(ts, timefmt.FromMillis(ms))
		}
		return AxisMark{axis.TimeValues(b.ts, ts, f), a.Grid}, nil
	}
	return AxisMark{axis.TimeCount(b.ts, a.Ticks, f), a.Grid}, nil
}

// tickFontSize is the label size axes are drawn with.
const tickFontSize = 10

func (b *builder) axis(a *Axis, s *scale.Linear, length float64) (AxisMark, error) {
	f, err := axis.ParseFormat(a.Format)
	if err != nil {
		return AxisMark{}, err
	}
	switch {
	case len(a.TickValues) > 0:
		var vs []float64
		for _, text := range a.TickValues {
			v, err := a.parseValue(text)
			if err != nil {
				return AxisMark{}, err
			}
			vs = append(vs, v)
		}
		return AxisMark{axis.Values(s, vs, f), a.Grid}, nil
	case a.MaxTicks > 0:
		fits := func(labels []string) bool {
			// Approximate glyphs as 0.6em wide with 1em between labels.
			w := 0.0
			for _, l := range labels {
				w += (0.6*float64(len(l)) + 1) * tickFontSize
			}
			return w <= length
		}
		return AxisMark{axis.Fit(s, a.MaxTicks, f, fits), a.Grid}, nil
	}
	return AxisMark{axis.Count(s, a.Ticks, f), a.Grid}, nil
}

// addGroup adds the marks of every group series of g.
func (b *builder) addGroup(p *Panel, g group.Group) error {
	for _, sr := range b.spec.series() {
		if sr.Source == "reference" {
			continue
		}
		if err := b.addMark(p, sr, g, b.seriesColor(sr, g.Key)); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addMark(p *Panel, sr Series, g group.Group, c color.Color) error {
	y := record.Field(sr.Field)
	st := render.Style{StrokeWidth: sr.StrokeWidth, Opacity: sr.Opacity, Class: sr.Class}
	var d string
	var err error
	switch sr.Mark {
	case "area":
		st.Stroke, st.Fill = c, c
		var area geom.Area
		area, err = geom.AreaPath(g.Records, b.xl, b.ys, b.x, y, record.Const(sr.Baseline))
		d = area.D()
	default:
		st.Stroke = c
		var line geom.Line
		line, err = geom.LinePath(g.Records, b.xl, b.ys, b.x, y)
		d = line.D()
	}
	if err != nil {
		return fmt.Errorf("group %q series %s: %w", g.Key, sr.Field, err)
	}
	p.Marks = append(p.Marks, PathMark{Key: g.Key, D: d, Style: st})
	return nil
}

// addLabel anchors g's key and marker to its label record.
func (b *builder) addLabel(p *Panel, g group.Group) error {
	l := b.spec.Label
	if l == nil {
		return nil
	}
	var sr Series
	for _, s := range b.spec.series() {
		if s.Source != "reference" {
			sr = s
			break
		}
	}
	if sr.Field == "" {
		return nil
	}
	fb, _ := geom.ParseFallback(l.Fallback)
	pt, err := geom.AnchorOr(g, geom.Equal(l.Field, l.Value), fb, b.xl, b.ys, b.x, record.Field(sr.Field))
	if errors.Is(err, geom.ErrAnchorNotFound) {
		Warning.Printf("chart %q: %v; skipping label", b.spec.Name, err)
		return nil
	} else if err != nil {
		return err
	}
	c := b.seriesColor(sr, g.Key)
	if l.Radius > 0 {
		p.Markers = append(p.Markers, CircleMark{pt.X, pt.Y, l.Radius, render.Style{Fill: c, Class: "label-circle"}})
	}
	dx, dy := l.Dx, l.Dy
	for _, o := range l.Offsets {
		if o.Key == g.Key {
			dx, dy = dx+o.Dx, dy+o.Dy
		}
	}
	p.Texts = append(p.Texts, TextMark{
		X: pt.X + dx, Y: pt.Y + dy, Text: g.Key,
		Style: render.Style{FontSize: l.Size, Baseline: "middle", Class: "label"},
	})
	return nil
}

// addSums adds the per-group sum texts.
func (b *builder) addSums(p *Panel, g group.Group) {
	for _, sm := range b.spec.Sums {
		v := agg.Sum(g.Records, record.Field(sm.Field))
		size := sm.Size
		if size == 0 {
			size = 7
		}
		p.Texts = append(p.Texts, TextMark{
			X: sm.X*b.pw + sm.Dx, Y: sm.Y * b.ph, Text: axis.Fixed(sm.Precision)(v),
			Style: render.Style{Fill: mustColor(sm.Color, color.Black), FontSize: size, Baseline: "middle", Class: "sum"},
		})
	}
}

// addTexts adds the static texts.
func (b *builder) addTexts(p *Panel) {
	for _, t := range b.spec.Texts {
		p.Texts = append(p.Texts, TextMark{
			X: t.X, Y: t.Y, Text: t.Text,
			Style: render.Style{Fill: mustColor(t.Color, color.Black), FontSize: t.Size},
		})
	}
}
