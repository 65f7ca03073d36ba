// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// Ordinal maps string keys to values from a fixed, ordered range,
// such as a color palette or a set of positions.
//
// The i'th domain key maps to range value i % len(range). The domain
// is either set explicitly with SetDomain or grows implicitly as
// Map sees new keys. An implicit domain depends on the order keys
// are first mapped in, so charts should set the full key set up
// front to get stable assignments.
//
// An Ordinal with an implicit domain is modified by Map and must not
// be shared between goroutines.
type Ordinal[T any] struct {
	rng     []T
	keys    []string
	index   map[string]int
	fixed   bool
	unknown T
}

// NewOrdinal returns an ordinal scale with an implicit domain that
// maps to rng.
func NewOrdinal[T any](rng ...T) *Ordinal[T] {
	return &Ordinal[T]{rng: rng, index: make(map[string]int)}
}

// SetDomain fixes the domain to keys, in order. Duplicate keys keep
// their first position. Keys outside a fixed domain map to the
// unknown value.
func (s *Ordinal[T]) SetDomain(keys []string) *Ordinal[T] {
	s.keys = s.keys[:0]
	s.index = make(map[string]int, len(keys))
	for _, k := range keys {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = len(s.keys)
		s.keys = append(s.keys, k)
	}
	s.fixed = true
	return s
}

// SetUnknown sets the value returned for keys outside a fixed
// domain. It defaults to the zero value of T.
func (s *Ordinal[T]) SetUnknown(v T) *Ordinal[T] {
	s.unknown = v
	return s
}

// Domain returns the domain keys in order.
func (s *Ordinal[T]) Domain() []string {
	return append([]string(nil), s.keys...)
}

// Range returns the range values.
func (s *Ordinal[T]) Range() []T {
	return append([]T(nil), s.rng...)
}

// Lookup returns the value for key and whether key is in the domain.
// Unlike Map, it never extends an implicit domain.
func (s *Ordinal[T]) Lookup(key string) (T, bool) {
	i, ok := s.index[key]
	if !ok || len(s.rng) == 0 {
		return s.unknown, false
	}
	return s.rng[i%len(s.rng)], true
}

// Map returns the value for key. If the domain is implicit and key
// is new, key is appended to the domain.
func (s *Ordinal[T]) Map(key string) T {
	if _, ok := s.index[key]; !ok && !s.fixed {
		s.index[key] = len(s.keys)
		s.keys = append(s.keys, key)
	}
	v, _ := s.Lookup(key)
	return v
}

func (s *Ordinal[T]) String() string {
	return fmt.Sprintf("ordinal %q => %d values", s.keys, len(s.rng))
}

// NewOrdinalPalette returns an ordinal color scale with domain keys
// whose range samples the continuous palette p: key i of n maps to
// the middle of the i'th of n equal subdivisions of [0, 1].
func NewOrdinalPalette(p palette.Continuous, keys []string) *Ordinal[color.Color] {
	s := NewOrdinal[color.Color]().SetDomain(keys)
	n := len(s.keys)
	s.rng = make([]color.Color, n)
	for i := range s.rng {
		s.rng[i] = p.Map((float64(i) + 0.5) / float64(n))
	}
	return s
}

// NewPoints returns an ordinal scale that spreads keys evenly over
// [r0, r1]. padding is the space before the first and after the last
// point, as a fraction of the distance between points.
func NewPoints(keys []string, r0, r1, padding float64) *Ordinal[float64] {
	s := NewOrdinal[float64]().SetDomain(keys)
	n := len(s.keys)
	switch n {
	case 0:
	case 1:
		s.rng = []float64{(r0 + r1) / 2}
	default:
		step := (r1 - r0) / (float64(n-1) + 2*padding)
		first := r0 + step*padding
		s.rng = vec.Linspace(first, first+step*float64(n-1), n)
	}
	return s
}
