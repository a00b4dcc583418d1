// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/tabular/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command with the given args, returning its output.
func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testFiles(t *testing.T) (string, string) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("id,Type,Age\n0,Permanent,10\n1,,\n2,Temporary,30\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("id,Salary\n2,100\n3,200\n"), 0666))
	return a, b
}

func TestJoinCmd(t *testing.T) {
	a, b := testFiles(t)
	out, err := execute(t, "join", "--axis", "columns", "-k", "id", "--csv", a, b)
	require.NoError(t, err)
	want := "id,Type,Age,Salary\n0,Permanent,10,\n1,,,\n2,Temporary,30,100\n3,,,200\n"
	assert.Equal(t, want, out)

	out, err = execute(t, "join", "--axis", "sideways", a, b)
	assert.ErrorIs(t, err, table.ErrInvalidSpec)
	assert.NotContains(t, out, "Error:")
}

func TestImputeCmd(t *testing.T) {
	a, _ := testFiles(t)
	fn := filepath.Join(t.TempDir(), "filled.csv")
	_, err := execute(t, "impute", "-k", "id", "--column", "Age=median", "-o", fn, a)
	require.NoError(t, err)
	dt, err := table.OpenCSV(fn, table.CSVOptions{KeyColumn: "id"})
	require.NoError(t, err)
	c, _ := dt.At(table.Int(1), "Age")
	assert.Equal(t, table.Float(20), c)
	c, _ = dt.At(table.Int(1), "Type")
	assert.Equal(t, table.Str("Permanent"), c)

	_, err = execute(t, "impute", "--strategy", "mean", a)
	assert.ErrorIs(t, err, table.ErrUnsupportedType)
}

func TestOneHotCmd(t *testing.T) {
	a, _ := testFiles(t)
	out, err := execute(t, "onehot", "-k", "id", "-c", "Type", "--csv", a)
	require.NoError(t, err)
	want := "id,Type_Permanent,Type_NaN,Type_Temporary,Age\n0,1,0,0,10\n1,0,1,0,\n2,0,0,1,30\n"
	assert.Equal(t, want, out)
}

func TestMissingCmd(t *testing.T) {
	a, _ := testFiles(t)
	out, err := execute(t, "missing", "-k", "id", "--csv", a)
	require.NoError(t, err)
	assert.Equal(t, "id,column,missing\n0,Type,1\n1,Age,1\n", out)

	out, err = execute(t, "missing", "-k", "id", "--drop", "rows", "--csv", a)
	require.NoError(t, err)
	assert.Equal(t, "id,Type,Age\n0,Permanent,10\n2,Temporary,30\n", out)
}

func TestMergeCmd(t *testing.T) {
	a, b := testFiles(t)
	out, err := execute(t, "merge", "--on", "id", "--how", "left", "--csv", a, b)
	require.NoError(t, err)
	assert.Equal(t, "key,id,Type,Age,Salary\n0,0,Permanent,10,\n1,1,,,\n2,2,Temporary,30,100\n", out)
}

func TestStatsCmd(t *testing.T) {
	a, _ := testFiles(t)
	out, err := execute(t, "stats", "-k", "id", "-s", "count,mean", "--csv", a)
	require.NoError(t, err)
	assert.Equal(t, "id,Age\nCount,2\nMean,20\n", out)
}

func TestRunCmd(t *testing.T) {
	a, b := testFiles(t)
	cfg := filepath.Join(t.TempDir(), "pipeline.yaml")
	data := "sources:\n  - path: " + a + "\n    csv: {key: id}\n  - path: " + b + "\n    csv: {key: id}\n" +
		"join: {axis: columns, match: inner}\nimpute: {default: auto}\n"
	require.NoError(t, os.WriteFile(cfg, []byte(data), 0666))
	out, err := execute(t, "run", "-k", "id", "--csv", cfg)
	require.NoError(t, err)
	assert.Equal(t, "id,Type,Age,Salary\n2,Temporary,30,100\n", out)
}

func TestRender(t *testing.T) {
	dt, err := table.New(table.Keys(4), table.Parsed("x", ""), table.Strings("name", "Amit"))
	require.NoError(t, err)
	s := render(dt)
	assert.Contains(t, s, "name")
	assert.Contains(t, s, "Amit")
	assert.Contains(t, s, "NaN")
}
