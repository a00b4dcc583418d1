// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"strings"
	"text/tabwriter"
)

// String returns the table as aligned text, with the row keys
// in the first column and NaN for missing cells.
func (dt *Table) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	prec := dt.meta.Precision()
	tw.Write([]byte("\t" + strings.Join(dt.ColumnNames(), "\t") + "\t\n"))
	for ri := range dt.NumRows() {
		tw.Write([]byte(dt.keys[ri].Format(prec)))
		for ci := range dt.NumColumns() {
			tw.Write([]byte("\t" + dt.cells(ci)[ri].Format(prec)))
		}
		tw.Write([]byte("\t\n"))
	}
	tw.Flush()
	return b.String()
}

// Records returns the table as string records: a header row followed
// by one record per row, each starting with the row key. Missing cells
// are NaN. It is used for rendering tables in other formats.
func (dt *Table) Records() [][]string {
	prec := dt.meta.Precision()
	rec := make([][]string, 0, dt.NumRows()+1)
	rec = append(rec, append([]string{""}, dt.ColumnNames()...))
	for ri := range dt.NumRows() {
		rw := make([]string, 0, dt.NumColumns()+1)
		rw = append(rw, dt.keys[ri].Format(prec))
		for ci := range dt.NumColumns() {
			rw = append(rw, dt.cells(ci)[ri].Format(prec))
		}
		rec = append(rec, rw)
	}
	return rec
}
