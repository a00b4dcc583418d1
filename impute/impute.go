// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package impute fills the missing cells of a table with
// a summary statistic of each column.
package impute

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"cogentcore.org/tabular/base/errors"
	"cogentcore.org/tabular/stats"
	"cogentcore.org/tabular/table"
)

// Fill records the filling of the missing cells of a column.
type Fill struct {
	// Column is the column name.
	Column string

	// Strategy is the resolved strategy, never [Auto].
	Strategy Strategy

	// Value is the value that was filled in.
	Value table.Cell

	// Count is the number of cells filled.
	Count int
}

func (f Fill) String() string {
	return fmt.Sprintf("%s: %d filled with %s %v", f.Column, f.Count, f.Strategy, f.Value)
}

// Result is the result of [Impute].
type Result struct {
	// Table is the imputed table.
	Table *table.Table

	// Fills are the columns that had missing cells filled, in column order.
	Fills []Fill

	// AllMissing are the columns that were left unchanged because
	// all of their cells are missing.
	AllMissing []string
}

// Err returns an [table.ErrAllMissing] error if any column was all missing,
// for callers that require every missing cell to be filled.
func (r *Result) Err() error {
	if len(r.AllMissing) == 0 {
		return nil
	}
	return fmt.Errorf("impute: columns %s: %w", strings.Join(r.AllMissing, ", "), table.ErrAllMissing)
}

// Impute returns a new table with the missing cells of each column
// filled according to the policy. Statistics are computed over the
// non-missing cells only, and non-missing cells, column order, and
// row keys are never changed. A column with all cells missing is
// left missing and listed in [Result.AllMissing].
// It returns an [table.ErrUnsupportedType] error for [Mean] or [Median]
// on a column with text or one where the statistic is undefined (NaN,
// as for the mean of +Inf and -Inf), and an [table.ErrInvalidSpec] error for a
// policy naming a column that dt does not have.
func Impute(dt *table.Table, policy Policy) (*Result, error) {
	if err := dt.Validate(); err != nil {
		return nil, fmt.Errorf("impute.Impute: %w", err)
	}
	if err := policy.Validate(dt); err != nil {
		return nil, fmt.Errorf("impute.Impute: %w", err)
	}
	res := &Result{}
	cls := dt.Columns()
	for i, cl := range cls {
		st := policy.For(cl.Name)
		if st == Skip {
			continue
		}
		if st == Auto {
			st = Mode
			if cl.Type() == table.Numeric {
				st = Mean
			}
		}
		val, err := fillValue(cl, st)
		if errors.Is(err, table.ErrAllMissing) {
			slog.Debug("impute: all missing", "column", cl.Name)
			res.AllMissing = append(res.AllMissing, cl.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("impute.Impute: %s: %w", st, err)
		}
		n := 0
		for ri, c := range cl.Cells {
			if c.IsMissing() {
				cl.Cells[ri] = val
				n++
			}
		}
		if n == 0 {
			continue
		}
		cls[i] = cl
		fl := Fill{Column: cl.Name, Strategy: st, Value: val, Count: n}
		slog.Debug("impute", "fill", fl.String())
		res.Fills = append(res.Fills, fl)
	}
	nt, err := table.WithColumns(dt, cls...)
	if err != nil {
		return nil, fmt.Errorf("impute.Impute: %w", err)
	}
	res.Table = nt
	return res, nil
}

// fillValue returns the value to fill the column with.
func fillValue(cl table.Column, st Strategy) (table.Cell, error) {
	if st == Mode {
		v, _, ok := stats.Mode(cl.Cells)
		if !ok {
			return v, fmt.Errorf("column %q: %w", cl.Name, table.ErrAllMissing)
		}
		return v, nil
	}
	stat := stats.StatMean
	if st == Median {
		stat = stats.StatMedian
	}
	v, err := stats.Column(stat, cl)
	if err != nil {
		return table.NA(), err
	}
	if math.IsNaN(v) {
		// only from infinities of opposite sign
		return table.NA(), fmt.Errorf("column %q: %s is undefined: %w", cl.Name, stat, table.ErrUnsupportedType)
	}
	return table.Float(v), nil
}
