// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
)

// SetKey returns a new table whose row keys are the cells of the
// given column, which is removed from the columns.
func SetKey(dt *Table, column string) (*Table, error) {
	kc, err := dt.ColumnTry(column)
	if err != nil {
		return nil, fmt.Errorf("table.SetKey: %w", err)
	}
	cls := make([]Column, 0, dt.NumColumns()-1)
	for i := range dt.NumColumns() {
		if dt.ColumnName(i) != column {
			cls = append(cls, dt.ColumnAt(i))
		}
	}
	return dt.derive(kc.Cells, cls...)
}

// ResetKeys returns a new table with dense row keys 0..n-1.
// If name is not empty, the previous keys are kept as a first
// column with that name, which must not already exist.
func ResetKeys(dt *Table, name string) (*Table, error) {
	cls := dt.Columns()
	if name != "" {
		if dt.HasColumn(name) {
			return nil, fmt.Errorf("table.ResetKeys: column %q already exists: %w", name, ErrInvalidSpec)
		}
		cls = append([]Column{{Name: name, Cells: dt.Keys()}}, cls...)
	}
	return dt.derive(Range(dt.NumRows()), cls...)
}

// WithKeys returns a new table with the same columns and the given
// row keys, which must have one key per row.
func WithKeys(dt *Table, keys []Cell) (*Table, error) {
	if len(keys) != dt.NumRows() {
		return nil, fmt.Errorf("table.WithKeys: %d keys for %d rows: %w", len(keys), dt.NumRows(), ErrShapeMismatch)
	}
	return dt.derive(keys, dt.Columns()...)
}

// WithColumns returns a new table with the same row keys and
// metadata as dt and the given columns, which must have one cell
// per row.
func WithColumns(dt *Table, columns ...Column) (*Table, error) {
	nt, err := dt.derive(dt.keys, columns...)
	if err != nil {
		return nil, fmt.Errorf("table.WithColumns: %w", err)
	}
	return nt, nil
}
