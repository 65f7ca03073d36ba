// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aclements/go-svgchart/record"
)

// Load reads the data files of spec and builds the chart. Relative
// paths are resolved against dir.
func Load(spec Spec, dir string) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	data, err := ReadTable(resolve(dir, spec.Data))
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", spec.Name, err)
	}
	var ref *record.Table
	if spec.Reference != "" {
		ref, err = ReadTable(resolve(dir, spec.Reference))
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", spec.Name, err)
		}
	}
	return Build(spec, data, ref)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// ReadTable reads a CSV file.
func ReadTable(path string) (*record.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := record.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
