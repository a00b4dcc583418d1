// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/tabular/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	keyStyle     = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	missingStyle = cellStyle.Faint(true)
)

// render returns the table formatted for the terminal, with the row
// keys in the first column and missing cells shown faint.
func render(dt *table.Table) string {
	recs := dt.Records()
	rows := recs[1:]
	lt := ltable.New().
		Border(lipgloss.RoundedBorder()).
		Headers(recs[0]...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			case row >= 0 && row < len(rows) && rows[row][col] == "NaN":
				return missingStyle
			}
			return cellStyle
		})
	return lt.String()
}
