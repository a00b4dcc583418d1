// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingTable(t *testing.T) *Table {
	dt, err := New(Keys(0, 1, 2),
		Strings("Country", "Poland", "Spain", "Germany"),
		Floats("Age", 34, math.NaN(), 29),
		Parsed("Occupation", "Salaried", "", "NA"))
	require.NoError(t, err)
	return dt.WithName("people")
}

func TestMissingCounts(t *testing.T) {
	dt := missingTable(t)
	assert.Equal(t, []MissingCount{{"Country", 0}, {"Age", 1}, {"Occupation", 2}}, MissingCounts(dt))
	assert.Equal(t, []string{"Age", "Occupation"}, ColumnsWithMissing(dt))
}

func TestDropMissing(t *testing.T) {
	dt := missingTable(t)
	rows, err := DropMissing(dt, Rows)
	require.NoError(t, err)
	assert.Equal(t, Keys(0), rows.Keys())
	assert.Equal(t, 3, rows.NumColumns())
	assert.Equal(t, "people", rows.Name())

	cols, err := DropMissing(dt, Columns)
	require.NoError(t, err)
	assert.Equal(t, []string{"Country"}, cols.ColumnNames())
	assert.Equal(t, dt.Keys(), cols.Keys())

	_, err = DropMissing(dt, Axis(5))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestSelect(t *testing.T) {
	dt := missingTable(t)
	sel, err := Select(dt, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, Keys(2, 0, 2), sel.Keys())
	c, _ := sel.Cell(1, "Country")
	assert.Equal(t, Str("Poland"), c)

	empty, err := Select(dt, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 3, empty.NumColumns())

	_, err = Select(dt, []int{3})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestSetResetKeys(t *testing.T) {
	dt, err := New(nil, Floats("roll", 7, 3), Strings("name", "Amit", "Kiran"))
	require.NoError(t, err)

	kt, err := SetKey(dt, "roll")
	require.NoError(t, err)
	assert.Equal(t, Keys(7, 3), kt.Keys())
	assert.Equal(t, []string{"name"}, kt.ColumnNames())

	rt, err := ResetKeys(kt, "roll")
	require.NoError(t, err)
	assert.True(t, dt.Equal(rt))

	dropped, err := ResetKeys(kt, "")
	require.NoError(t, err)
	assert.Equal(t, Range(2), dropped.Keys())
	assert.Equal(t, []string{"name"}, dropped.ColumnNames())

	_, err = ResetKeys(kt, "name")
	assert.ErrorIs(t, err, ErrInvalidSpec)
	_, err = SetKey(dt, "nope")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = WithKeys(dt, Keys(1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	wk, err := WithKeys(dt, Keys(8, 9))
	require.NoError(t, err)
	assert.Equal(t, Keys(8, 9), wk.Keys())
}

func TestAxis(t *testing.T) {
	var ax Axis
	require.NoError(t, ax.UnmarshalText([]byte("columns")))
	assert.Equal(t, Columns, ax)
	b, _ := ax.MarshalText()
	assert.Equal(t, "columns", string(b))
	assert.ErrorIs(t, ax.UnmarshalText([]byte("diagonal")), ErrInvalidSpec)
}

func TestWithColumns(t *testing.T) {
	dt := missingTable(t)
	nt, err := WithColumns(dt, Floats("v", 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, dt.Keys(), nt.Keys())
	assert.Equal(t, "people", nt.Name())
	assert.Equal(t, []string{"v"}, nt.ColumnNames())

	_, err = WithColumns(dt, Floats("v", 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
