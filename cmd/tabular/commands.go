// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/tabular/base/errors"
	"cogentcore.org/tabular/encode"
	"cogentcore.org/tabular/impute"
	"cogentcore.org/tabular/join"
	"cogentcore.org/tabular/pipeline"
	"cogentcore.org/tabular/stats"
	"cogentcore.org/tabular/table"
	"github.com/spf13/cobra"
)

func newJoinCmd(o *options) *cobra.Command {
	var axis, match string
	var renumber bool
	cmd := &cobra.Command{
		Use:   "join FILE FILE...",
		Short: "Stack the rows or align the columns of two or more tables",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := join.Spec{Renumber: renumber}
			if err := spec.Axis.UnmarshalText([]byte(axis)); err != nil {
				return err
			}
			if err := spec.Match.UnmarshalText([]byte(match)); err != nil {
				return err
			}
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			dt, err := join.Join(tables, spec)
			if err != nil {
				return err
			}
			return o.output(cmd, dt)
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "rows", "rows to stack rows, columns to align columns by row key")
	cmd.Flags().StringVar(&match, "match", "outer", "row key matching for columns: outer, inner or left")
	cmd.Flags().BoolVar(&renumber, "renumber", false, "replace the row keys with 0..n-1")
	return cmd
}

func newMergeCmd(o *options) *cobra.Command {
	var on, how string
	cmd := &cobra.Command{
		Use:   "merge LEFT RIGHT",
		Short: "Join the rows of two tables with equal values in a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m join.Match
			if err := m.UnmarshalText([]byte(how)); err != nil {
				return err
			}
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			dt, err := join.Merge(tables[0], tables[1], on, m)
			if err != nil {
				return err
			}
			return o.output(cmd, dt)
		},
	}
	cmd.Flags().StringVar(&on, "on", "", "column to match rows on")
	cmd.Flags().StringVar(&how, "how", "inner", "row matching: inner, left or outer")
	cmd.MarkFlagRequired("on")
	return cmd
}

func newImputeCmd(o *options) *cobra.Command {
	var strategy string
	var columns map[string]string
	var requireFilled bool
	cmd := &cobra.Command{
		Use:   "impute FILE",
		Short: "Fill missing cells with the mean, median or mode of each column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p impute.Policy
			if err := p.Default.UnmarshalText([]byte(strategy)); err != nil {
				return err
			}
			p.Columns = make(map[string]impute.Strategy, len(columns))
			for name, s := range columns {
				var st impute.Strategy
				if err := st.UnmarshalText([]byte(s)); err != nil {
					return fmt.Errorf("column %q: %w", name, err)
				}
				p.Columns[name] = st
			}
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			res, err := impute.Impute(tables[0], p)
			if err != nil {
				return err
			}
			for _, fl := range res.Fills {
				slog.Info("filled", "column", fl.Column, "strategy", fl.Strategy.String(), "value", fl.Value.String(), "count", fl.Count)
			}
			if len(res.AllMissing) > 0 {
				if requireFilled {
					return res.Err()
				}
				slog.Warn("columns all missing", "columns", strings.Join(res.AllMissing, ", "))
			}
			return o.output(cmd, res.Table)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "auto", "default strategy: auto, mean, median, mode or skip")
	cmd.Flags().StringToStringVar(&columns, "column", nil, "strategy for a column, as name=strategy")
	cmd.Flags().BoolVar(&requireFilled, "require-filled", false, "fail if any column is all missing")
	return cmd
}

func newOneHotCmd(o *options) *cobra.Command {
	var columns []string
	cmd := &cobra.Command{
		Use:   "onehot FILE",
		Short: "Replace categorical columns with one 0/1 column per value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			dt, err := encode.OneHot(tables[0], columns...)
			if err != nil {
				return err
			}
			return o.output(cmd, dt)
		},
	}
	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to encode")
	cmd.MarkFlagRequired("columns")
	return cmd
}

func newMissingCmd(o *options) *cobra.Command {
	var drop string
	cmd := &cobra.Command{
		Use:   "missing FILE",
		Short: "Count the missing cells of each column, or drop them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			dt := tables[0]
			if drop != "" {
				var ax table.Axis
				if err := ax.UnmarshalText([]byte(drop)); err != nil {
					return err
				}
				dt, err = table.DropMissing(dt, ax)
				if err != nil {
					return err
				}
				return o.output(cmd, dt)
			}
			mc := table.MissingCounts(dt)
			cls := []table.Column{{Name: "column"}, {Name: "missing"}}
			for _, m := range mc {
				cls[0].Cells = append(cls[0].Cells, table.Str(m.Column))
				cls[1].Cells = append(cls[1].Cells, table.Int(m.Count))
			}
			counts, err := table.New(nil, cls...)
			if err != nil {
				return err
			}
			return o.output(cmd, counts)
		},
	}
	cmd.Flags().StringVar(&drop, "drop", "", "drop the rows or columns that have missing cells")
	return cmd
}

func newStatsCmd(o *options) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Compute summary statistics of the numeric columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sts := make([]stats.Stats, len(names))
			for i, nm := range names {
				if err := sts[i].UnmarshalText([]byte(nm)); err != nil {
					return err
				}
			}
			tables, err := o.open(args...)
			if err != nil {
				return err
			}
			dt := tables[0]
			var keys []table.Cell
			for _, st := range sts {
				keys = append(keys, table.Str(st.String()))
			}
			var cls []table.Column
			for _, cl := range dt.Columns() {
				if cl.Type() != table.Numeric {
					continue
				}
				sc := table.Column{Name: cl.Name}
				for _, st := range sts {
					v, err := stats.Column(st, cl)
					if err != nil {
						sc.Cells = append(sc.Cells, table.NA())
						continue
					}
					sc.Cells = append(sc.Cells, table.Float(v))
				}
				cls = append(cls, sc)
			}
			if keys == nil {
				keys = []table.Cell{}
			}
			summary, err := table.New(keys, cls...)
			if err != nil {
				return err
			}
			return o.output(cmd, summary)
		},
	}
	cmd.Flags().StringSliceVarP(&names, "stats", "s", []string{"Count", "Mean", "Std", "Min", "Median", "Max"}, "statistics to compute")
	return cmd
}

func newRunCmd(o *options) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run CONFIG",
		Short: "Run the pipeline of a TOML or YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if watch {
				return pipeline.Watch(ctx, args[0], func(cfg *pipeline.Config) {
					res, err := pipeline.Run(ctx, cfg)
					if err != nil {
						slog.Error("run failed", "err", err)
						return
					}
					if cfg.Output.Path == "" && cfg.Output.Table == "" {
						errors.Log(o.output(cmd, res.Table))
					}
				})
			}
			cfg, err := pipeline.Open(args[0])
			if err != nil {
				return err
			}
			res, err := pipeline.Run(ctx, cfg)
			if err != nil {
				return err
			}
			if cfg.Output.Path != "" || cfg.Output.Table != "" {
				return nil
			}
			return o.output(cmd, res.Table)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "run again whenever the config file changes")
	return cmd
}
