// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timefmt parses and formats dates using strftime-style
// layouts such as "%B-%y".
//
// A layout is compiled once into a Go reference-time layout. Parsing
// is strict: text that does not match the layout is an error, never
// a zero time. All times are in UTC so that the same input always
// produces the same instant regardless of the local time zone.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// A Layout is a compiled strftime-style date layout.
type Layout struct {
	format string // original %-layout
	goLay  string // equivalent Go reference layout
}

// directives maps strftime directives to Go layout elements.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'd': "02",
	'e': "_2",
	'j': "002",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'L': ".000",
	'p': "PM",
	'Z': "Z07:00",
}

// reserved are substrings of literal text that Go would interpret as
// layout elements.
var reserved = []string{"Jan", "Mon", "MST", "PM", "pm", "_"}

// Compile translates a strftime-style format into a Layout.
//
// Supported directives are %Y %y %m %B %b %A %a %d %e %j %H %I %M %S
// %L %p %Z and %%. %L is milliseconds and absorbs a literal "." right
// before it, so "%S.%L" and "%S%L" both match "05.123". %Z is a UTC
// offset such as "Z" or "+01:00". Literal text may not contain digits
// or anything else that Go's time package treats as a layout element.
func Compile(format string) (*Layout, error) {
	var b strings.Builder
	var lit strings.Builder
	flush := func() error {
		s := lit.String()
		lit.Reset()
		if strings.ContainsAny(s, "0123456789") {
			return fmt.Errorf("timefmt: literal %q in layout %q contains digits", s, format)
		}
		for _, r := range reserved {
			if strings.Contains(s, r) {
				return fmt.Errorf("timefmt: literal %q in layout %q is ambiguous", s, format)
			}
		}
		b.WriteString(s)
		return nil
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return nil, fmt.Errorf("timefmt: layout %q ends with %%", format)
		}
		if format[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		elt, ok := directives[format[i]]
		if !ok {
			return nil, fmt.Errorf("timefmt: unknown directive %%%c in layout %q", format[i], format)
		}
		if format[i] == 'L' {
			if s := lit.String(); strings.HasSuffix(s, ".") {
				lit.Reset()
				lit.WriteString(s[:len(s)-1])
			}
		}
		if err := flush(); err != nil {
			return nil, err
		}
		b.WriteString(elt)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("timefmt: empty layout")
	}
	return &Layout{format, b.String()}, nil
}

// MustCompile is like Compile but panics if the format is invalid.
func MustCompile(format string) *Layout {
	l, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the strftime-style format l was compiled from.
func (l *Layout) String() string {
	return l.format
}

// Parse parses text according to l. The result is in UTC.
func (l *Layout) Parse(text string) (time.Time, error) {
	t, err := time.ParseInLocation(l.goLay, text, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Format: l.format, Err: err}
	}
	return t.UTC(), nil
}

// Format formats t according to l.
func (l *Layout) Format(t time.Time) string {
	return t.UTC().Format(l.goLay)
}

// Parse compiles format and parses text with it.
func Parse(text, format string) (time.Time, error) {
	l, err := Compile(format)
	if err != nil {
		return time.Time{}, err
	}
	return l.Parse(text)
}

// Format compiles format and formats t with it.
func Format(t time.Time, format string) (string, error) {
	l, err := Compile(format)
	if err != nil {
		return "", err
	}
	return l.Format(t), nil
}

// ParseError records text that did not match a layout.
type ParseError struct {
	Text   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timefmt: cannot parse %q as %q", e.Text, e.Format)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Millis returns t as milliseconds since the Unix epoch. This is the
// comparable ordinal used by continuous scales.
func Millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// FromMillis is the inverse of Millis. Fractional milliseconds are
// truncated.
func FromMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}
