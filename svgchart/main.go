// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgchart renders annotated line and area charts of CSV
// data as SVG.
//
// Charts are described in a YAML configuration file (by default
// charts.yaml in the current directory or $HOME/.svgchart). Each
// chart names its CSV data, the fields to plot, how to group records
// into series or small multiples, and its annotations. For example:
//
//	charts:
//	- name: housing
//	  data: housing-prices.csv
//	  key: region
//	  x: {field: month, time: "%B-%y", format: "%b %y"}
//	  y: {field: price}
//	  label: {field: month, value: July-17, radius: 4, dx: 10}
//
// "svgchart render" writes <name>.svg for every chart, or only for
// the named charts. "svgchart table" prints a CSV file as a table,
// optionally grouped by a field, which helps when writing a chart
// configuration.
//
// Configuration values can be overridden with SVGCHART_ environment
// variables, such as SVGCHART_OUTPUT.
package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	log.SetPrefix("svgchart: ")
	log.SetFlags(0)

	if err := newRootCmd(viper.New()).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var (
		flagCPUProfile string
		flagMemProfile string
		stopProfile    func()
	)
	root := &cobra.Command{
		Use:           "svgchart",
		Short:         "Render annotated SVG charts of CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagCPUProfile == "" {
				return nil
			}
			f, err := os.Create(flagCPUProfile)
			if err != nil {
				return err
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return err
			}
			stopProfile = func() {
				pprof.StopCPUProfile()
				f.Close()
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if stopProfile != nil {
				stopProfile()
			}
			if flagMemProfile == "" {
				return nil
			}
			runtime.GC()
			f, err := os.Create(flagMemProfile)
			if err != nil {
				return err
			}
			defer f.Close()
			return pprof.WriteHeapProfile(f)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flagCPUProfile, "cpuprofile", "", "write CPU profile to `file`")
	pf.StringVar(&flagMemProfile, "memprofile", "", "write heap profile to `file`")
	pf.BoolP("verbose", "v", false, "log each chart as it is written")
	v.BindPFlag("verbose", pf.Lookup("verbose"))

	root.AddCommand(newRenderCmd(v), newTableCmd())
	return root
}
