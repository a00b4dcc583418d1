// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/tabular/base/keylist"
	"cogentcore.org/tabular/base/metadata"
)

// Column is a named sequence of cells, used to construct a [Table]
// and returned by its column accessors.
type Column struct {
	// Name is the column name, unique within a table.
	Name string

	// Cells are the values, one per row.
	Cells []Cell
}

// NewColumn returns a column with the given name and cells.
func NewColumn(name string, cells ...Cell) Column {
	return Column{Name: name, Cells: cells}
}

// Floats returns a numeric column from the given values,
// where NaN values are missing.
func Floats(name string, vals ...float64) Column {
	cl := Column{Name: name, Cells: make([]Cell, len(vals))}
	for i, v := range vals {
		cl.Cells[i] = Float(v)
	}
	return cl
}

// Strings returns a text column from the given values.
// Use [Parsed] to detect numbers and missing tokens instead.
func Strings(name string, vals ...string) Column {
	cl := Column{Name: name, Cells: make([]Cell, len(vals))}
	for i, v := range vals {
		cl.Cells[i] = Str(v)
	}
	return cl
}

// Parsed returns a column from the given values using [Parse]
// on each one.
func Parsed(name string, vals ...string) Column {
	cl := Column{Name: name, Cells: make([]Cell, len(vals))}
	for i, v := range vals {
		cl.Cells[i] = Parse(v)
	}
	return cl
}

// Len returns the number of cells.
func (cl Column) Len() int { return len(cl.Cells) }

// Type returns the [ColumnType] of the cells.
func (cl Column) Type() ColumnType { return TypeOf(cl.Cells) }

// Table is an immutable table of uniquely named columns of [Cell]
// values, aligned by a common sequence of row keys.
// Row keys need not be unique.
// Tables are created with [New] and never change afterwards:
// every operation returns a new Table, and all accessors return
// copies, so a Table can be shared freely across goroutines.
type Table struct {
	// columns has the cells for each column, in order.
	columns *keylist.List[string, []Cell]

	// keys are the row keys.
	keys []Cell

	// rows maps each key to the rows that carry it, in order.
	rows map[Cell][]int

	// meta is misc metadata for the table: see [metadata.Data].
	meta metadata.Data
}

// New returns a new Table with the given row keys and columns,
// copying all of the given data. If keys is nil, the rows get
// dense keys 0..n-1 where n is the length of the first column.
// It returns an [ErrShapeMismatch] error if any column length differs
// from the number of rows, and an [ErrInvalidSpec] error for an empty
// or duplicate column name.
func New(keys []Cell, columns ...Column) (*Table, error) {
	n := len(keys)
	if keys == nil {
		if len(columns) > 0 {
			n = columns[0].Len()
		}
		keys = Range(n)
	} else {
		keys = slices.Clone(keys)
	}
	dt := &Table{columns: keylist.New[string, []Cell](len(columns)), keys: keys}
	for i, cl := range columns {
		if cl.Name == "" {
			return nil, fmt.Errorf("table.New: column %d has no name: %w", i, ErrInvalidSpec)
		}
		if cl.Len() != n {
			return nil, fmt.Errorf("table.New: column %q has %d cells but table has %d rows: %w", cl.Name, cl.Len(), n, ErrShapeMismatch)
		}
		if err := dt.columns.Add(cl.Name, slices.Clone(cl.Cells)); err != nil {
			return nil, fmt.Errorf("table.New: duplicate column %q: %w", cl.Name, ErrInvalidSpec)
		}
	}
	dt.indexKeys()
	return dt, nil
}

// indexKeys builds the key to rows map.
func (dt *Table) indexKeys() {
	dt.rows = make(map[Cell][]int, len(dt.keys))
	for i, k := range dt.keys {
		dt.rows[k] = append(dt.rows[k], i)
	}
}

// Validate returns an [ErrShapeMismatch] error if the table is nil
// or any column length differs from the number of row keys.
func (dt *Table) Validate() error {
	if dt == nil {
		return fmt.Errorf("table.Validate: nil table: %w", ErrShapeMismatch)
	}
	for i := range dt.NumColumns() {
		if n := len(dt.cells(i)); n != len(dt.keys) {
			return fmt.Errorf("table.Validate: column %q has %d cells but table has %d rows: %w", dt.ColumnName(i), n, len(dt.keys), ErrShapeMismatch)
		}
	}
	return nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return len(dt.keys) }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.columns.Len() }

// ColumnNames returns the ordered column names.
func (dt *Table) ColumnNames() []string { return dt.columns.KeysClone() }

// ColumnName returns the name of the column at given index.
func (dt *Table) ColumnName(i int) string { return dt.columns.Keys[i] }

// HasColumn returns true if there is a column with given name.
func (dt *Table) HasColumn(name string) bool { return dt.columns.Has(name) }

// ColumnIndex returns the index of the column with given name, or -1.
func (dt *Table) ColumnIndex(name string) int { return dt.columns.IndexByKey(name) }

// Keys returns the ordered row keys.
func (dt *Table) Keys() []Cell { return slices.Clone(dt.keys) }

// Key returns the key of the given row.
func (dt *Table) Key(row int) Cell { return dt.keys[row] }

// HasKey returns true if any row carries the given key.
func (dt *Table) HasKey(key Cell) bool {
	_, ok := dt.rows[key]
	return ok
}

// RowsFor returns the rows carrying the given key, in order.
func (dt *Table) RowsFor(key Cell) []int { return slices.Clone(dt.rows[key]) }

// Column returns a copy of the column with given name,
// and false if there is no such column.
func (dt *Table) Column(name string) (Column, bool) {
	cells, ok := dt.columns.AtTry(name)
	if !ok {
		return Column{}, false
	}
	return Column{Name: name, Cells: slices.Clone(cells)}, true
}

// ColumnTry is a version of [Table.Column] that returns an
// [ErrInvalidSpec] error if the column name is not found,
// suggesting a similar name when there is one.
func (dt *Table) ColumnTry(name string) (Column, error) {
	cl, ok := dt.Column(name)
	if !ok {
		return cl, columnNotFound(name, dt.ColumnNames())
	}
	return cl, nil
}

// ColumnAt returns a copy of the column at given index.
func (dt *Table) ColumnAt(i int) Column {
	return Column{Name: dt.columns.Keys[i], Cells: slices.Clone(dt.columns.Values[i])}
}

// Columns returns copies of all the columns, in order.
func (dt *Table) Columns() []Column {
	cls := make([]Column, dt.NumColumns())
	for i := range cls {
		cls[i] = dt.ColumnAt(i)
	}
	return cls
}

// Cell returns the cell at given row in given column,
// and false if the row or column does not exist.
func (dt *Table) Cell(row int, column string) (Cell, bool) {
	cells, ok := dt.columns.AtTry(column)
	if !ok || row < 0 || row >= len(cells) {
		return NA(), false
	}
	return cells[row], true
}

// At returns the cell in given column of the first row carrying
// the given key, and false if there is no such row or column.
func (dt *Table) At(key Cell, column string) (Cell, bool) {
	rows := dt.rows[key]
	if len(rows) == 0 {
		return NA(), false
	}
	return dt.Cell(rows[0], column)
}

// Row returns the cells of given row, in column order.
func (dt *Table) Row(row int) []Cell {
	cells := make([]Cell, dt.NumColumns())
	for i := range cells {
		cells[i] = dt.cells(i)[row]
	}
	return cells
}

// ColumnType returns the [ColumnType] of the column with given name,
// or [Empty] if there is no such column.
func (dt *Table) ColumnType(name string) ColumnType {
	return TypeOf(dt.columns.At(name))
}

// Name returns the "Name" metadata of the table.
func (dt *Table) Name() string { return dt.meta.Name() }

// Meta returns a copy of the metadata of the table.
func (dt *Table) Meta() metadata.Data { return dt.meta.Clone() }

// WithName returns a table sharing the same data with the given name.
func (dt *Table) WithName(name string) *Table {
	return dt.WithMeta("Name", name)
}

// WithMeta returns a table sharing the same data, with given
// metadata key set to value.
func (dt *Table) WithMeta(key string, value any) *Table {
	nt := *dt
	nt.meta = dt.meta.Clone()
	nt.meta.Set(key, value)
	return &nt
}

// Equal returns true if both tables have the same column names,
// row keys and cells. Metadata is not compared.
func (dt *Table) Equal(o *Table) bool {
	if dt == nil || o == nil {
		return dt == o
	}
	if !slices.Equal(dt.ColumnNames(), o.ColumnNames()) || !slices.Equal(dt.keys, o.keys) {
		return false
	}
	for i := range dt.NumColumns() {
		if !slices.Equal(dt.cells(i), o.cells(i)) {
			return false
		}
	}
	return true
}

// cells returns the shared cell storage of the column at given index,
// which must not be modified.
func (dt *Table) cells(i int) []Cell { return dt.columns.Values[i] }
