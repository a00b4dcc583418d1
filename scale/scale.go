// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale rescales the numeric columns of a table.
// If no columns are named, every [table.Numeric] column is scaled.
// Missing cells stay missing, and a named column with text cells
// returns an [table.ErrUnsupportedType] error.
package scale

import (
	"fmt"
	"math"

	"cogentcore.org/tabular/stats"
	"cogentcore.org/tabular/table"
)

// MinMax returns a new table with the values of each column linearly
// mapped from its [min, max] range onto [lo, hi]. A constant column
// maps to lo.
func MinMax(dt *table.Table, lo, hi float64, columns ...string) (*table.Table, error) {
	if lo >= hi {
		return nil, fmt.Errorf("scale.MinMax: range [%g, %g] is empty: %w", lo, hi, table.ErrInvalidSpec)
	}
	return apply(dt, "scale.MinMax", columns, func(vals []float64) {
		mn, mx := stats.Min(vals), stats.Max(vals)
		for i, v := range vals {
			if mx == mn {
				vals[i] = lo
				continue
			}
			vals[i] = lo + (v-mn)*(hi-lo)/(mx-mn)
		}
	})
}

// Standard returns a new table with each column standardized to
// zero mean and unit population standard deviation. A constant
// column maps to 0.
func Standard(dt *table.Table, columns ...string) (*table.Table, error) {
	return apply(dt, "scale.Standard", columns, func(vals []float64) {
		mean, std := stats.Mean(vals), stats.StdPop(vals)
		for i, v := range vals {
			if std == 0 {
				vals[i] = 0
				continue
			}
			vals[i] = (v - mean) / std
		}
	})
}

// Binarize returns a new table with each value of the columns
// replaced by 1 if it is greater than threshold, and 0 otherwise.
func Binarize(dt *table.Table, threshold float64, columns ...string) (*table.Table, error) {
	return apply(dt, "scale.Binarize", columns, func(vals []float64) {
		for i, v := range vals {
			vals[i] = 0
			if v > threshold {
				vals[i] = 1
			}
		}
	})
}

// Normalize returns a new table with each row of the columns scaled
// to unit L2 norm across the columns. Missing cells do not count
// toward the norm, and a row with zero norm is unchanged.
func Normalize(dt *table.Table, columns ...string) (*table.Table, error) {
	cis, vals, err := numeric(dt, "scale.Normalize", columns)
	if err != nil {
		return nil, err
	}
	for ri := range dt.NumRows() {
		ss := 0.0
		for _, vs := range vals {
			if v := vs[ri]; !math.IsNaN(v) {
				ss += v * v
			}
		}
		if ss == 0 {
			continue
		}
		norm := math.Sqrt(ss)
		for _, vs := range vals {
			vs[ri] /= norm
		}
	}
	return replace(dt, "scale.Normalize", cis, vals)
}

// apply returns a new table with fun applied to the values of each
// of the columns, where missing cells are NaN.
func apply(dt *table.Table, op string, columns []string, fun func(vals []float64)) (*table.Table, error) {
	cis, vals, err := numeric(dt, op, columns)
	if err != nil {
		return nil, err
	}
	for _, vs := range vals {
		fun(vs)
	}
	return replace(dt, op, cis, vals)
}

// numeric returns the indexes and values of the columns,
// or all numeric columns if none are named.
func numeric(dt *table.Table, op string, columns []string) ([]int, [][]float64, error) {
	if err := dt.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	var cis []int
	if len(columns) == 0 {
		for ci := range dt.NumColumns() {
			if dt.ColumnAt(ci).Type() == table.Numeric {
				cis = append(cis, ci)
			}
		}
	}
	for _, name := range columns {
		if _, err := dt.ColumnTry(name); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		cis = append(cis, dt.ColumnIndex(name))
	}
	vals := make([][]float64, len(cis))
	for i, ci := range cis {
		cl := dt.ColumnAt(ci)
		vs, err := stats.Floats(cl.Cells)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: column %q: %w", op, cl.Name, err)
		}
		vals[i] = vs
	}
	return cis, vals, nil
}

// replace returns a new table with the columns at the given indexes
// replaced by the values, where missing cells stay missing.
func replace(dt *table.Table, op string, cis []int, vals [][]float64) (*table.Table, error) {
	cls := dt.Columns()
	for i, ci := range cis {
		for ri, c := range cls[ci].Cells {
			if !c.IsMissing() {
				cls[ci].Cells[ri] = table.Float(vals[i][ri])
			}
		}
	}
	nt, err := table.WithColumns(dt, cls...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return nt, nil
}
