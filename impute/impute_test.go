// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package impute

import (
	"math"
	"testing"

	"cogentcore.org/tabular/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people(t *testing.T) *table.Table {
	dt, err := table.New(table.Keys(3, 1, 2, 0),
		table.Floats("Age", 10, math.NaN(), 30, math.NaN()),
		table.Parsed("Type", "Permanent", "NA", "Temporary", "Permanent"),
		table.Floats("Salary", 1, 2, 3, 10),
		table.Parsed("Empty", "", "", "", ""))
	require.NoError(t, err)
	return dt
}

func TestImputeAuto(t *testing.T) {
	dt := people(t)
	res, err := Impute(dt, Policy{})
	require.NoError(t, err)

	age, _ := res.Table.Column("Age")
	assert.Equal(t, []table.Cell{table.Float(10), table.Float(20), table.Float(30), table.Float(20)}, age.Cells)
	typ, _ := res.Table.Column("Type")
	assert.Equal(t, table.Parsed("Type", "Permanent", "Permanent", "Temporary", "Permanent").Cells, typ.Cells)

	assert.Equal(t, []Fill{
		{Column: "Age", Strategy: Mean, Value: table.Float(20), Count: 2},
		{Column: "Type", Strategy: Mode, Value: table.Str("Permanent"), Count: 1},
	}, res.Fills)
	assert.Equal(t, []string{"Empty"}, res.AllMissing)
	assert.ErrorIs(t, res.Err(), table.ErrAllMissing)
	assert.ErrorContains(t, res.Err(), "Empty")

	// everything else unchanged
	assert.Equal(t, dt.Keys(), res.Table.Keys())
	assert.Equal(t, dt.ColumnNames(), res.Table.ColumnNames())
	empty, _ := res.Table.Column("Empty")
	assert.Equal(t, table.Empty, empty.Type())
	c, _ := dt.Cell(1, "Age")
	assert.True(t, c.IsMissing())
}

func TestImputeMean(t *testing.T) {
	dt, err := table.New(nil, table.Floats("x", 10, math.NaN(), 30))
	require.NoError(t, err)
	res, err := Impute(dt, Policy{Default: Mean})
	require.NoError(t, err)
	assert.NoError(t, res.Err())
	x, _ := res.Table.Column("x")
	assert.Equal(t, table.Floats("x", 10, 20, 30).Cells, x.Cells)
}

func TestImputeColumns(t *testing.T) {
	dt := people(t)
	res, err := Impute(dt, Policy{Default: Skip, Columns: map[string]Strategy{"Age": Median, "Salary": Mode}})
	require.NoError(t, err)
	require.Len(t, res.Fills, 1)
	assert.Equal(t, Fill{Column: "Age", Strategy: Median, Value: table.Float(20), Count: 2}, res.Fills[0])
	assert.Empty(t, res.AllMissing)
	typ, _ := res.Table.Column("Type")
	assert.True(t, typ.Cells[1].IsMissing())
}

func TestImputeIdempotent(t *testing.T) {
	dt, err := table.New(nil,
		table.Floats("a", 1, math.NaN(), 4, math.NaN()),
		table.Parsed("b", "x", "y", "", "y"),
		table.Parsed("c", "1", "u", "", "u"))
	require.NoError(t, err)
	p := Policy{Columns: map[string]Strategy{"a": Median}}
	once, err := Impute(dt, p)
	require.NoError(t, err)
	twice, err := Impute(once.Table, p)
	require.NoError(t, err)
	assert.True(t, once.Table.Equal(twice.Table))
	assert.Empty(t, twice.Fills)
	assert.Empty(t, table.ColumnsWithMissing(once.Table))
}

func TestImputeErrors(t *testing.T) {
	dt := people(t)
	_, err := Impute(dt, Policy{Default: Mean})
	assert.ErrorIs(t, err, table.ErrUnsupportedType)

	_, err = Impute(dt, Policy{Columns: map[string]Strategy{"Type": Median}})
	assert.ErrorIs(t, err, table.ErrUnsupportedType)

	_, err = Impute(dt, Policy{Columns: map[string]Strategy{"Salry": Mean}})
	assert.ErrorIs(t, err, table.ErrInvalidSpec)
	assert.ErrorContains(t, err, `did you mean "Salary"`)

	_, err = Impute(dt, Policy{Default: Strategy(9)})
	assert.ErrorIs(t, err, table.ErrInvalidSpec)

	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte("MODE")))
	assert.Equal(t, Mode, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("zero")), table.ErrInvalidSpec)
}

func TestImputeUndefinedMean(t *testing.T) {
	dt, err := table.New(nil, table.Floats("x", math.Inf(1), math.Inf(-1), math.NaN()))
	require.NoError(t, err)
	_, err = Impute(dt, Policy{})
	assert.ErrorIs(t, err, table.ErrUnsupportedType)
	assert.NotErrorIs(t, err, table.ErrAllMissing)

	res, err := Impute(dt, Policy{Default: Mode})
	require.NoError(t, err)
	assert.Empty(t, res.AllMissing)
	c, _ := res.Table.Cell(2, "x")
	assert.Equal(t, table.Float(math.Inf(1)), c)
}
