// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"fmt"
	"slices"

	"cogentcore.org/tabular/table"
)

// Classes are the sorted distinct values of a label encoded column,
// where the label of each value is its index.
type Classes struct {
	Column string
	Values []table.Cell
}

// Index returns the label of the given value, or -1 if it is not a class.
func (cs Classes) Index(c table.Cell) int {
	i, ok := slices.BinarySearchFunc(cs.Values, c, table.Cell.Compare)
	if !ok {
		return -1
	}
	return i
}

// Label returns a new table where the values in each of the named
// columns are replaced by their index in the sorted distinct non-missing
// values of the column, with numbers sorted before text.
// Missing cells stay missing. It also returns the [Classes] of each
// column, in the given order. It returns an [table.ErrInvalidSpec]
// error for an unknown column.
func Label(dt *table.Table, columns ...string) (*table.Table, []Classes, error) {
	if err := dt.Validate(); err != nil {
		return nil, nil, fmt.Errorf("encode.Label: %w", err)
	}
	cls := dt.Columns()
	classes := make([]Classes, len(columns))
	for i, name := range columns {
		ci := dt.ColumnIndex(name)
		if ci < 0 {
			_, err := dt.ColumnTry(name)
			return nil, nil, fmt.Errorf("encode.Label: %w", err)
		}
		cl := cls[ci]
		vals := slices.DeleteFunc(Distinct(cl.Cells), table.Cell.IsMissing)
		slices.SortFunc(vals, table.Cell.Compare)
		cs := Classes{Column: name, Values: vals}
		for ri, c := range cl.Cells {
			if !c.IsMissing() {
				cl.Cells[ri] = table.Int(cs.Index(c))
			}
		}
		classes[i] = cs
	}
	nt, err := table.WithColumns(dt, cls...)
	if err != nil {
		return nil, nil, fmt.Errorf("encode.Label: %w", err)
	}
	return nt, classes, nil
}
