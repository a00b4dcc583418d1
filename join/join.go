// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package join combines tables by stacking rows or aligning
// columns on row keys, and merges tables on a shared column.
package join

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tabular/table"
)

// Join returns a new table combining two or more tables according to
// the given spec. Stacking along [table.Rows] concatenates the rows in
// input order under the union of the column names, in first-seen order.
// Aligning along [table.Columns] concatenates the columns in input order,
// with one row per output key as selected by [Spec.Match]; a column name
// already used by an earlier table gets a suffix of _ and the table index.
// Cells are missing wherever a table lacks the column or key.
// The inputs are never modified.
func Join(tables []*table.Table, spec Spec) (*table.Table, error) {
	if len(tables) < 2 {
		return nil, fmt.Errorf("join.Join: need at least 2 tables, have %d: %w", len(tables), table.ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("join.Join: %w", err)
	}
	for i, dt := range tables {
		if err := dt.Validate(); err != nil {
			return nil, fmt.Errorf("join.Join: table %d: %w", i, err)
		}
	}
	var dt *table.Table
	var err error
	if spec.Axis == table.Rows {
		dt, err = stack(tables, spec.Renumber)
	} else {
		dt, err = align(tables, spec.Match, spec.Renumber)
	}
	if err != nil {
		return nil, fmt.Errorf("join.Join: %w", err)
	}
	slog.Debug("join", "spec", spec.String(), "tables", len(tables), "rows", dt.NumRows(), "columns", dt.NumColumns())
	return dt, nil
}

// stack concatenates the rows of the tables.
func stack(tables []*table.Table, renumber bool) (*table.Table, error) {
	var names []string
	seen := make(map[string]bool)
	n := 0
	for _, dt := range tables {
		for _, nm := range dt.ColumnNames() {
			if !seen[nm] {
				seen[nm] = true
				names = append(names, nm)
			}
		}
		n += dt.NumRows()
	}
	keys := make([]table.Cell, 0, n)
	for _, dt := range tables {
		keys = append(keys, dt.Keys()...)
	}
	if renumber {
		keys = table.Range(n)
	}
	cls := make([]table.Column, len(names))
	for ci, nm := range names {
		cells := make([]table.Cell, 0, n)
		for _, dt := range tables {
			if cl, ok := dt.Column(nm); ok {
				cells = append(cells, cl.Cells...)
				continue
			}
			for range dt.NumRows() {
				cells = append(cells, table.NA())
			}
		}
		cls[ci] = table.Column{Name: nm, Cells: cells}
	}
	return table.New(keys, cls...)
}

// align aligns the columns of the tables on their row keys,
// which must be unique within each table.
func align(tables []*table.Table, match Match, renumber bool) (*table.Table, error) {
	for i, dt := range tables {
		for _, k := range dt.Keys() {
			if len(dt.RowsFor(k)) > 1 {
				return nil, fmt.Errorf("table %d has duplicate row key %v, which cannot be aligned: %w", i, k, table.ErrShapeMismatch)
			}
		}
	}
	keys := alignedKeys(tables, match)
	var cls []table.Column
	used := make(map[string]bool)
	for ti, dt := range tables {
		for ci := range dt.NumColumns() {
			src := dt.ColumnAt(ci)
			name := src.Name
			if used[name] {
				name = fmt.Sprintf("%s_%d", src.Name, ti)
				if used[name] || dt.HasColumn(name) {
					return nil, fmt.Errorf("table %d column %q collides with an earlier column: %w", ti, src.Name, table.ErrInvalidSpec)
				}
			}
			used[name] = true
			cells := make([]table.Cell, len(keys))
			for i, k := range keys {
				if rows := dt.RowsFor(k); len(rows) > 0 {
					cells[i] = src.Cells[rows[0]]
				}
			}
			cls = append(cls, table.Column{Name: name, Cells: cells})
		}
	}
	if renumber {
		keys = table.Range(len(keys))
	}
	return table.New(keys, cls...)
}

// alignedKeys returns the output row keys for the match mode.
func alignedKeys(tables []*table.Table, match Match) []table.Cell {
	first := tables[0].Keys()
	switch match {
	case Left:
		return first
	case Inner:
		keys := make([]table.Cell, 0, len(first))
		for _, k := range first {
			all := true
			for _, dt := range tables[1:] {
				if !dt.HasKey(k) {
					all = false
					break
				}
			}
			if all {
				keys = append(keys, k)
			}
		}
		return keys
	}
	var keys []table.Cell
	seen := make(map[table.Cell]bool)
	for _, dt := range tables {
		for _, k := range dt.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}
