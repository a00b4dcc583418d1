// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package join

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tabular/table"
)

// Merge returns a new table joining the rows of left and right that
// have equal values in the column named on, which both must have.
// The output columns are on, then the other left columns, then the
// other right columns, where a name in both gets a suffix of _x for
// left and _y for right. A left row matching several right rows
// gives one output row per match, in right order. [Left] and [Outer]
// keep unmatched left rows, and [Outer] adds the unmatched right rows
// after all left rows. The output has dense row keys.
func Merge(left, right *table.Table, on string, how Match) (*table.Table, error) {
	if err := how.Validate(); err != nil {
		return nil, fmt.Errorf("join.Merge: %w", err)
	}
	for i, dt := range []*table.Table{left, right} {
		if err := dt.Validate(); err != nil {
			return nil, fmt.Errorf("join.Merge: table %d: %w", i, err)
		}
	}
	lon, err := left.ColumnTry(on)
	if err != nil {
		return nil, fmt.Errorf("join.Merge: left %w", err)
	}
	ron, err := right.ColumnTry(on)
	if err != nil {
		return nil, fmt.Errorf("join.Merge: right %w", err)
	}
	rindex := make(map[table.Cell][]int)
	for ri, c := range ron.Cells {
		rindex[c] = append(rindex[c], ri)
	}

	// pairs of left, right rows, with -1 for no row
	var lrows, rrows []int
	matched := make([]bool, right.NumRows())
	for li, c := range lon.Cells {
		rs := rindex[c]
		for _, ri := range rs {
			lrows = append(lrows, li)
			rrows = append(rrows, ri)
			matched[ri] = true
		}
		if len(rs) == 0 && how != Inner {
			lrows = append(lrows, li)
			rrows = append(rrows, -1)
		}
	}
	if how == Outer {
		for ri, m := range matched {
			if !m {
				lrows = append(lrows, -1)
				rrows = append(rrows, ri)
			}
		}
	}

	n := len(lrows)
	oncl := table.Column{Name: on, Cells: make([]table.Cell, n)}
	for i := range n {
		if lrows[i] >= 0 {
			oncl.Cells[i] = lon.Cells[lrows[i]]
		} else {
			oncl.Cells[i] = ron.Cells[rrows[i]]
		}
	}
	cls := []table.Column{oncl}
	cls = append(cls, pick(left, right, on, lrows, "_x")...)
	cls = append(cls, pick(right, left, on, rrows, "_y")...)
	dt, err := table.New(table.Range(n), cls...)
	if err != nil {
		return nil, fmt.Errorf("join.Merge: %w", err)
	}
	slog.Debug("merge", "on", on, "how", how.String(), "left", left.NumRows(), "right", right.NumRows(), "rows", n)
	return dt, nil
}

// pick returns the columns of dt other than on, at the given rows
// (-1 for missing), adding suffix to names also in other.
func pick(dt, other *table.Table, on string, rows []int, suffix string) []table.Column {
	var cls []table.Column
	for ci := range dt.NumColumns() {
		src := dt.ColumnAt(ci)
		if src.Name == on {
			continue
		}
		name := src.Name
		if other.HasColumn(name) {
			name += suffix
		}
		cells := make([]table.Cell, len(rows))
		for i, ri := range rows {
			if ri >= 0 {
				cells[i] = src.Cells[ri]
			}
		}
		cls = append(cls, table.Column{Name: name, Cells: cells})
	}
	return cls
}
