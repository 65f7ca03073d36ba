// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group partitions records into groups by a categorical key.
package group

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-svgchart/record"
)

// A Group is a key and the records that have that key, in input
// order.
type Group struct {
	Key     string
	Records []record.Record
}

func (g Group) String() string {
	return fmt.Sprintf("%s (%d records)", g.Key, len(g.Records))
}

// By partitions recs by key. Groups are ordered by the first
// appearance of their key in recs and each group keeps the input
// order of its records. Keys are compared exactly, with no case
// folding or trimming. By returns nil for empty input.
func By(recs []record.Record, key func(record.Record) string) []Group {
	if len(recs) == 0 {
		return nil
	}
	keys := make([]string, len(recs))
	rows := make([]int, len(recs))
	for i, r := range recs {
		keys[i] = key(r)
		rows[i] = i
	}
	t := new(table.Builder).Add("key", keys).Add("row", rows).Done()
	g := table.GroupBy(t, "key")

	gids := g.Tables()
	groups := make([]Group, len(gids))
	for i, gid := range gids {
		sub := g.Table(gid).MustColumn("row").([]int)
		grecs := make([]record.Record, len(sub))
		for j, row := range sub {
			grecs[j] = recs[row]
		}
		groups[i] = Group{Key: gid.Label().(string), Records: grecs}
	}
	return groups
}

// ByField partitions recs by the text of field.
func ByField(recs []record.Record, field string) []Group {
	return By(recs, func(r record.Record) string {
		return r.Text(field)
	})
}

// Keys returns the keys of groups, in order.
func Keys(groups []Group) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

// Find returns the group with the given key.
func Find(groups []Group, key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}
