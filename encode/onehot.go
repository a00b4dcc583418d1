// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode converts categorical columns into numeric ones.
package encode

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"cogentcore.org/tabular/table"
)

// MissingLabel is the value label used in derived column
// names for missing cells.
const MissingLabel = "NaN"

// OneHot returns a new table where each of the named columns is replaced
// by one derived column per distinct value, in first-seen order, with
// missing cells counted as their own value. A derived column is named
// <column>_<value> and has 1 in the rows where the cell equals that value,
// and 0 elsewhere. In a mixed column, a text value with the same label as
// another value (such as text "1" and number 1) is quoted: <column>_"1".
// The derived columns come first, in the order of the named columns,
// followed by the other columns in their original order.
// It returns an [table.ErrInvalidSpec] error for an unknown or repeated
// column, or a derived name that collides with another column.
func OneHot(dt *table.Table, columns ...string) (*table.Table, error) {
	if err := dt.Validate(); err != nil {
		return nil, fmt.Errorf("encode.OneHot: %w", err)
	}
	used := make(map[string]bool)
	for _, name := range columns {
		if _, err := dt.ColumnTry(name); err != nil {
			return nil, fmt.Errorf("encode.OneHot: %w", err)
		}
		if used[name] {
			return nil, fmt.Errorf("encode.OneHot: column %q named twice: %w", name, table.ErrInvalidSpec)
		}
		used[name] = true
	}
	var rest []table.Column
	names := make(map[string]bool)
	for _, cl := range dt.Columns() {
		if !used[cl.Name] {
			rest = append(rest, cl)
			names[cl.Name] = true
		}
	}
	var cls []table.Column
	for _, name := range columns {
		src, _ := dt.Column(name)
		values := Distinct(src.Cells)
		labels := valueLabels(values)
		for vi, v := range values {
			dn := name + "_" + labels[vi]
			if names[dn] {
				return nil, fmt.Errorf("encode.OneHot: derived column %q already exists: %w", dn, table.ErrInvalidSpec)
			}
			names[dn] = true
			cells := make([]table.Cell, len(src.Cells))
			for ri, c := range src.Cells {
				cells[ri] = table.Int(0)
				if c == v {
					cells[ri] = table.Int(1)
				}
			}
			cls = append(cls, table.Column{Name: dn, Cells: cells})
		}
		slog.Debug("one hot", "column", name, "values", len(values))
	}
	nt, err := table.WithColumns(dt, slices.Concat(cls, rest)...)
	if err != nil {
		return nil, fmt.Errorf("encode.OneHot: %w", err)
	}
	return nt, nil
}

// Distinct returns the distinct cells in first-seen order,
// including the missing cell if any.
func Distinct(cells []table.Cell) []table.Cell {
	var vals []table.Cell
	seen := make(map[table.Cell]bool)
	for _, c := range cells {
		if !seen[c] {
			seen[c] = true
			vals = append(vals, c)
		}
	}
	return vals
}

// ValueLabel returns the label of a cell value for use in a
// derived column name: [MissingLabel] for a missing cell.
func ValueLabel(c table.Cell) string {
	if c.IsMissing() {
		return MissingLabel
	}
	return c.String()
}

// valueLabels returns the [ValueLabel] of each distinct value,
// quoting text values whose label is shared with another value.
func valueLabels(values []table.Cell) []string {
	labels := make([]string, len(values))
	n := make(map[string]int)
	for i, v := range values {
		labels[i] = ValueLabel(v)
		n[labels[i]]++
	}
	for i, v := range values {
		if v.IsText() && n[labels[i]] > 1 {
			labels[i] = strconv.Quote(labels[i])
		}
	}
	return labels
}
