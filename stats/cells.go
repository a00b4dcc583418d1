// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"cogentcore.org/tabular/table"
)

// Floats returns the values of the cells, with missing cells as NaN.
// It returns an [table.ErrUnsupportedType] error if any cell is text.
func Floats(cells []table.Cell) ([]float64, error) {
	vals := make([]float64, len(cells))
	for i, c := range cells {
		switch c.Kind() {
		case table.Missing:
			vals[i] = math.NaN()
		case table.Number:
			vals[i], _ = c.Float()
		default:
			return nil, fmt.Errorf("stats.Floats: cell %d is text %q: %w", i, c.String(), table.ErrUnsupportedType)
		}
	}
	return vals, nil
}

// Column computes the given stat over the numeric cells of a column,
// skipping missing cells. It returns an [table.ErrUnsupportedType] error
// if any cell is text, and an [table.ErrAllMissing] error if all cells
// are missing, except for [StatCount] and [StatSum].
func Column(stat Stats, cl table.Column) (float64, error) {
	f := stat.Func()
	if f == nil {
		return 0, fmt.Errorf("stats.Column: stat %v: %w", stat, table.ErrInvalidSpec)
	}
	vals, err := Floats(cl.Cells)
	if err != nil {
		return 0, fmt.Errorf("stats.Column: column %q: %w", cl.Name, err)
	}
	if stat != StatCount && stat != StatSum && Count(vals) == 0 {
		return 0, fmt.Errorf("stats.Column: column %q: %w", cl.Name, table.ErrAllMissing)
	}
	return f(vals), nil
}

// Mode returns the most frequent non-missing cell and its count.
// Ties go to the value that appears first. It returns false if
// all cells are missing.
func Mode(cells []table.Cell) (table.Cell, int, bool) {
	counts := make(map[table.Cell]int)
	var order []table.Cell
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	if len(order) == 0 {
		return table.NA(), 0, false
	}
	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best, counts[best], true
}
