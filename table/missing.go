// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// MissingCount is the number of missing cells in a column.
type MissingCount struct {
	Column string
	Count  int
}

// MissingCounts returns the number of missing cells in each column,
// in column order.
func MissingCounts(dt *Table) []MissingCount {
	mc := make([]MissingCount, dt.NumColumns())
	for i := range mc {
		mc[i].Column = dt.ColumnName(i)
		for _, c := range dt.cells(i) {
			if c.IsMissing() {
				mc[i].Count++
			}
		}
	}
	return mc
}

// ColumnsWithMissing returns the names of the columns
// that have at least one missing cell.
func ColumnsWithMissing(dt *Table) []string {
	var names []string
	for i := range dt.NumColumns() {
		if slices.ContainsFunc(dt.cells(i), Cell.IsMissing) {
			names = append(names, dt.ColumnName(i))
		}
	}
	return names
}

// DropMissing returns a new table without the rows ([Rows])
// or columns ([Columns]) that have any missing cell.
func DropMissing(dt *Table, axis Axis) (*Table, error) {
	if err := axis.Validate(); err != nil {
		return nil, fmt.Errorf("table.DropMissing: %w", err)
	}
	if axis == Columns {
		var cls []Column
		for i := range dt.NumColumns() {
			if !slices.ContainsFunc(dt.cells(i), Cell.IsMissing) {
				cls = append(cls, dt.ColumnAt(i))
			}
		}
		return dt.derive(dt.keys, cls...)
	}
	var keep []int
	for ri := range dt.NumRows() {
		if !slices.ContainsFunc(dt.Row(ri), Cell.IsMissing) {
			keep = append(keep, ri)
		}
	}
	return Select(dt, keep)
}

// Select returns a new table with the given rows of dt, in the
// given order. Rows may repeat. It returns an [ErrInvalidSpec]
// error for a row out of range.
func Select(dt *Table, rows []int) (*Table, error) {
	n := dt.NumRows()
	keys := make([]Cell, len(rows))
	for i, ri := range rows {
		if ri < 0 || ri >= n {
			return nil, fmt.Errorf("table.Select: row %d out of range [0..%d): %w", ri, n, ErrInvalidSpec)
		}
		keys[i] = dt.keys[ri]
	}
	cls := make([]Column, dt.NumColumns())
	for ci := range cls {
		src := dt.cells(ci)
		cells := make([]Cell, len(rows))
		for i, ri := range rows {
			cells[i] = src[ri]
		}
		cls[ci] = Column{Name: dt.ColumnName(ci), Cells: cells}
	}
	return dt.derive(keys, cls...)
}

// derive returns a new table with the given keys and columns,
// carrying over the metadata of dt.
func (dt *Table) derive(keys []Cell, cls ...Column) (*Table, error) {
	if keys == nil {
		keys = []Cell{}
	}
	nt, err := New(keys, cls...)
	if err != nil {
		return nil, err
	}
	nt.meta = dt.meta.Clone()
	return nt, nil
}
