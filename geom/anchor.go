// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"

	"github.com/aclements/go-svgchart/group"
	"github.com/aclements/go-svgchart/record"
)

// ErrAnchorNotFound indicates that no record of a group matched an
// anchor predicate.
var ErrAnchorNotFound = errors.New("anchor not found")

// An AnchorError reports a group with no record to anchor a label to.
type AnchorError struct {
	Key string // group key
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("geom: group %q: %v", e.Key, ErrAnchorNotFound)
}

func (e *AnchorError) Unwrap() error {
	return ErrAnchorNotFound
}

// A Matcher selects records.
type Matcher func(record.Record) bool

// Equal returns a Matcher for records whose field has exactly the
// text value.
func Equal(field, value string) Matcher {
	return func(r record.Record) bool {
		return r.Text(field) == value
	}
}

// Fallback selects a substitute anchor record when no record matches.
type Fallback int

const (
	FallbackNone  Fallback = iota // report ErrAnchorNotFound
	FallbackFirst                 // use the group's first record
	FallbackLast                  // use the group's last record
)

// ParseFallback parses "", "none", "first" or "last".
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "", "none":
		return FallbackNone, nil
	case "first":
		return FallbackFirst, nil
	case "last":
		return FallbackLast, nil
	}
	return FallbackNone, fmt.Errorf("geom: unknown anchor fallback %q", s)
}

// Anchor returns the pixel position of the first record in g that
// satisfies match, using the same scales and projections as the
// group's path. If no record matches it returns an *AnchorError.
func Anchor(g group.Group, match Matcher, xs, ys Scale, x, y record.Projection) (Point, error) {
	return AnchorOr(g, match, FallbackNone, xs, ys, x, y)
}

// AnchorOr is like Anchor, but when no record matches it anchors to
// the record chosen by fallback instead.
func AnchorOr(g group.Group, match Matcher, fallback Fallback, xs, ys Scale, x, y record.Projection) (Point, error) {
	for _, r := range g.Records {
		if match(r) {
			return project(r, xs, ys, x, y)
		}
	}
	if len(g.Records) > 0 {
		switch fallback {
		case FallbackFirst:
			return project(g.Records[0], xs, ys, x, y)
		case FallbackLast:
			return project(g.Records[len(g.Records)-1], xs, ys, x, y)
		}
	}
	return Point{}, &AnchorError{g.Key}
}
