// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingCSV = `Country,Age,Gender,Salary,Purchased
Poland,34,Male,72000,No
Spain,,Female,48000,Yes
Germany,29,Male,NaN,No
Spain,38,,61000,No
`

func TestReadCSV(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader(missingCSV), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Country", "Age", "Gender", "Salary", "Purchased"}, dt.ColumnNames())
	assert.Equal(t, Range(4), dt.Keys())
	assert.Equal(t, Categorical, dt.ColumnType("Country"))
	assert.Equal(t, Numeric, dt.ColumnType("Age"))
	assert.Equal(t, Numeric, dt.ColumnType("Salary"))

	c, _ := dt.Cell(1, "Age")
	assert.True(t, c.IsMissing())
	c, _ = dt.Cell(2, "Salary")
	assert.True(t, c.IsMissing())
	c, _ = dt.Cell(3, "Gender")
	assert.True(t, c.IsMissing())
	c, _ = dt.Cell(0, "Salary")
	assert.Equal(t, Float(72000), c)
}

func TestReadCSVKeyColumn(t *testing.T) {
	data := "roll\tname\tclass\n1\tDevendra\t7A\n2\tPrem\t7B\n"
	dt, err := ReadCSV(strings.NewReader(data), CSVOptions{KeyColumn: "roll"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "class"}, dt.ColumnNames())
	assert.Equal(t, Keys(1, 2), dt.Keys())
	c, ok := dt.At(Int(2), "name")
	assert.True(t, ok)
	assert.Equal(t, Str("Prem"), c)

	_, err = ReadCSV(strings.NewReader(data), CSVOptions{KeyColumn: "rol"})
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.ErrorContains(t, err, `did you mean "roll"`)
}

func TestReadCSVText(t *testing.T) {
	data := "zip,name\n007,été\nabc,x\n,y\n"
	dt, err := ReadCSV(strings.NewReader(data), CSVOptions{Delim: Comma})
	require.NoError(t, err)
	c, _ := dt.Cell(0, "zip")
	assert.Equal(t, Str("007"), c)
	c, _ = dt.Cell(2, "zip")
	assert.True(t, c.IsMissing())
	c, _ = dt.Cell(0, "name")
	assert.Equal(t, Str("été"), c)
}

func TestReadCSVNoHeaders(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader("1,a\n2,b\n"), CSVOptions{NoHeaders: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"col_0", "col_1"}, dt.ColumnNames())
	assert.Equal(t, 2, dt.NumRows())
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n"), CSVOptions{})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	dt, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, dt.NumRows())
}

func TestWriteCSV(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader(missingCSV), CSVOptions{})
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, CSVOptions{KeyColumn: "id"}))
	want := `id,Country,Age,Gender,Salary,Purchased
0,Poland,34,Male,72000,No
1,Spain,,Female,48000,Yes
2,Germany,29,Male,,No
3,Spain,38,,61000,No
`
	assert.Equal(t, want, b.String())

	rt, err := ReadCSV(&b, CSVOptions{KeyColumn: "id"})
	require.NoError(t, err)
	assert.True(t, dt.Equal(rt))
}

func TestWriteCSVSingleColumn(t *testing.T) {
	dt, err := New(nil, Floats("x", 1, math.NaN(), 3))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, CSVOptions{}))
	assert.Equal(t, "x\n1\n\"\"\n3\n", b.String())

	rt, err := ReadCSV(&b, CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, rt.NumRows())
	assert.True(t, dt.Equal(rt), "got:\n%s", rt)
}

func TestWriteCSVMissingTokenText(t *testing.T) {
	dt, err := New(nil, Strings("s", "NA", "b"))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, CSVOptions{}))
	assert.Equal(t, "s\nNA\nb\n", b.String())

	rt, err := ReadCSV(&b, CSVOptions{})
	require.NoError(t, err)
	c, _ := rt.Cell(0, "s")
	assert.True(t, c.IsMissing())
	c, _ = rt.Cell(1, "s")
	assert.Equal(t, Str("b"), c)
}

func TestSaveOpenCSV(t *testing.T) {
	dt, err := New(Keys(10, 20), Strings("name", "a", "b"), Floats("v", 0.5, 1.5))
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "scores.tsv")
	require.NoError(t, dt.SaveCSV(fn, CSVOptions{Delim: Tab, KeyColumn: "k"}))

	rt, err := OpenCSV(fn, CSVOptions{KeyColumn: "k"})
	require.NoError(t, err)
	assert.True(t, dt.Equal(rt))
	assert.Equal(t, "scores", rt.Name())

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	fsys := fstest.MapFS{"scores.tsv": &fstest.MapFile{Data: data}}
	rt, err = OpenFS(fsys, "scores.tsv", CSVOptions{Delim: Tab, KeyColumn: "k"})
	require.NoError(t, err)
	assert.True(t, dt.Equal(rt))

	_, err = OpenCSV(filepath.Join(t.TempDir(), "none.csv"), CSVOptions{})
	assert.Error(t, err)
}

func TestDelims(t *testing.T) {
	var dl Delims
	require.NoError(t, dl.UnmarshalText([]byte("Tab")))
	assert.Equal(t, Tab, dl)
	assert.ErrorIs(t, dl.UnmarshalText([]byte("pipe")), ErrInvalidSpec)
	assert.Equal(t, ',', Detect.Rune())
	assert.Equal(t, Tab, DetectDelim([]byte("a\tb\n1,2\t3")))
	assert.Equal(t, Comma, DetectDelim([]byte("a,b\tc\n")))
}
