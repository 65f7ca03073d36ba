// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aclements/go-svgchart/chart"
	"github.com/aclements/go-svgchart/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// fontSize is the base font size of rendered charts, in pixels.
const fontSize = 12

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var flagConfig string
	cmd := &cobra.Command{
		Use:   "render [flags] [chart...]",
		Short: "Write each configured chart as <output>/<name>.svg",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, flagConfig)
			if err != nil {
				return err
			}
			specs, err := cfg.selectCharts(args)
			if err != nil {
				return err
			}
			return renderAll(cfg, specs)
		},
	}
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "read charts from `file` (default: charts.yaml)")
	cmd.Flags().StringP("output", "o", ".", "write SVG files to `dir`")
	v.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

// renderAll renders specs concurrently. Each chart is independent:
// it reads its own data and owns its scales.
func renderAll(cfg *config, specs []chart.Spec) error {
	if err := os.MkdirAll(cfg.Output, 0777); err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, spec := range specs {
		spec := spec
		g.Go(func() error {
			c, err := chart.Load(spec, cfg.dir)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.Output, spec.Name+".svg")
			if err := writeSVG(path, c); err != nil {
				return err
			}
			if cfg.Verbose {
				log.Printf("wrote %s (%dx%d, %d panels)", path, c.Width, c.Height, len(c.Panels))
			}
			return nil
		})
	}
	return g.Wait()
}

func writeSVG(path string, c *chart.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	svg := render.NewSVG(f, c.Width, c.Height, fontSize)
	c.Render(svg)
	svg.End()
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
