// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-svgchart/chart"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var (
		flagGroup   string
		flagNumeric []string
	)
	cmd := &cobra.Command{
		Use:   "table [flags] file.csv",
		Short: "Print a CSV file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := chart.ReadTable(args[0])
			if err != nil {
				return err
			}
			if len(flagNumeric) > 0 {
				if t, err = t.Numeric(flagNumeric...); err != nil {
					return err
				}
			}
			var g table.Grouping = t.Data()
			if flagGroup != "" {
				if !t.Has(flagGroup) {
					return fmt.Errorf("%s has no field %q", args[0], flagGroup)
				}
				g = table.GroupBy(g, flagGroup)
			}
			table.Fprint(cmd.OutOrStdout(), g)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagGroup, "group", "g", "", "group rows by `field`")
	cmd.Flags().StringSliceVarP(&flagNumeric, "numeric", "n", nil, "parse `fields` as numbers")
	return cmd
}
