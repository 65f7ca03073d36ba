// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/aclements/go-svgchart/timefmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// A Formatter formats a tick value as a label.
type Formatter func(v float64) string

// A TimeFormatter formats a time tick as a label.
type TimeFormatter func(t time.Time) string

var printer = message.NewPrinter(language.English)

// number formats v with prec fractional digits, an optional currency
// symbol after the sign, and optional thousands separators.
func number(v float64, prec int, sym string, group bool) string {
	sign := ""
	if math.Signbit(v) {
		v = -v
		sign = "-"
	}
	var s string
	if group {
		s = printer.Sprintf(fmt.Sprintf("%%.%df", prec), v)
	} else {
		s = strconv.FormatFloat(v, 'f', prec, 64)
	}
	if sign != "" && isZero(s) {
		sign = ""
	}
	return sign + sym + s
}

func isZero(s string) bool {
	for _, c := range s {
		if c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}

// Int formats values rounded to integers, like "1234".
func Int() Formatter {
	return func(v float64) string {
		return number(math.Round(v), 0, "", false)
	}
}

// Currency formats values as whole amounts of sym with thousands
// separators, like "$5,000".
func Currency(sym string) Formatter {
	return func(v float64) string {
		return number(math.Round(v), 0, sym, true)
	}
}

// Fixed formats values with prec fractional digits, like "3.14".
func Fixed(prec int) Formatter {
	return func(v float64) string {
		return number(v, prec, "", false)
	}
}

// Grouped formats values with prec fractional digits and thousands
// separators, like "20,000.0".
func Grouped(prec int) Formatter {
	return func(v float64) string {
		return number(v, prec, "", true)
	}
}

// Default returns the formatter Count(s, n, nil) uses: grouped, with
// just enough precision to distinguish ticks n apart.
func Default(s Scale, n int) Formatter {
	return Grouped(precision(s.TickStep(n)))
}

// precision returns the number of fractional digits needed to show
// multiples of step.
func precision(step float64) int {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	p := -int(math.Floor(math.Log10(step)))
	if p < 0 {
		return 0
	}
	return p
}

// Time returns a TimeFormatter for a strftime-style layout.
func Time(l *timefmt.Layout) TimeFormatter {
	return l.Format
}

// maxPrecision is the largest precision ParseFormat accepts.
const maxPrecision = 20

var formatRE = regexp.MustCompile(`^(\$)?(,)?(?:\.(\d+))?([df])?$`)

// ParseFormat parses a compact number format: an optional "$"
// currency prefix, an optional "," for thousands separators, an
// optional ".N" precision and a type, "d" for integers or "f" for
// fixed point. For example "d", "$,d", ".2f" and ",.1f". The empty
// format returns nil, which selects the default formatter.
func ParseFormat(spec string) (Formatter, error) {
	if spec == "" {
		return nil, nil
	}
	m := formatRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, fmt.Errorf("axis: bad number format %q", spec)
	}
	sym, group, typ := m[1], m[2] == ",", m[4]
	prec := 0
	if m[3] != "" {
		if typ == "d" {
			return nil, fmt.Errorf("axis: bad number format %q: precision with integer type", spec)
		}
		var err error
		if prec, err = strconv.Atoi(m[3]); err != nil || prec > maxPrecision {
			return nil, fmt.Errorf("axis: bad number format %q: precision must be at most %d", spec, maxPrecision)
		}
	} else if typ == "f" {
		prec = 6
	}
	if typ == "" && m[3] == "" && sym == "" && !group {
		return nil, fmt.Errorf("axis: bad number format %q", spec)
	}
	round := typ == "d" || (typ == "" && m[3] == "")
	return func(v float64) string {
		if round {
			v = math.Round(v)
		}
		return number(v, prec, sym, group)
	}, nil
}
