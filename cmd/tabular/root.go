// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/tabular/base/logx"
	"cogentcore.org/tabular/table"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	verbose     bool
	veryVerbose bool
	quiet       bool

	// key is the key column name of input and output files.
	key string

	// delim is the delimiter of input files.
	delim string

	// out is the output file; the table is printed if empty.
	out string

	// csv prints delimited text instead of a formatted table.
	csv bool
}

// csvOptions returns the options for reading input files.
func (o *options) csvOptions() (table.CSVOptions, error) {
	opts := table.CSVOptions{KeyColumn: o.key}
	if err := opts.Delim.UnmarshalText([]byte(o.delim)); err != nil {
		return opts, err
	}
	return opts, nil
}

// open reads the given input files.
func (o *options) open(files ...string) ([]*table.Table, error) {
	opts, err := o.csvOptions()
	if err != nil {
		return nil, err
	}
	tables := make([]*table.Table, len(files))
	for i, fn := range files {
		if tables[i], err = table.OpenCSV(fn, opts); err != nil {
			return nil, err
		}
	}
	return tables, nil
}

// output saves the table to the output file if set,
// and otherwise prints it.
func (o *options) output(cmd *cobra.Command, dt *table.Table) error {
	keyColumn := o.key
	if keyColumn == "" {
		keyColumn = "key"
	}
	if o.out != "" {
		return dt.SaveCSV(o.out, table.CSVOptions{KeyColumn: keyColumn})
	}
	if o.csv {
		return dt.WriteCSV(cmd.OutOrStdout(), table.CSVOptions{KeyColumn: keyColumn})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), render(dt))
	return err
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "tabular",
		Short: "Join, impute and encode labeled tables",
		Long: `tabular operates on immutable tables of named columns aligned by row keys,
read from delimited text files (CSV, TSV) or SQL queries.

Each command reads its input files, applies one operation and prints the
resulting table, or saves it with --out. The run command executes a whole
pipeline from a TOML or YAML config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetDefault(os.Stderr, logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet))
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log progress messages")
	pf.BoolVar(&o.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "log only errors")
	pf.StringVarP(&o.key, "key", "k", "", "name of the row key column in input and output files")
	pf.StringVarP(&o.delim, "delim", "d", "detect", "input delimiter: detect, comma, tab or space")
	pf.StringVarP(&o.out, "out", "o", "", "save the result to this file instead of printing it")
	pf.BoolVar(&o.csv, "csv", false, "print the result as comma separated values")

	cmd.AddCommand(
		newJoinCmd(o),
		newMergeCmd(o),
		newImputeCmd(o),
		newOneHotCmd(o),
		newMissingCmd(o),
		newStatsCmd(o),
		newRunCmd(o),
	)
	return cmd
}
