// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/tabular/impute"
	"cogentcore.org/tabular/join"
	"cogentcore.org/tabular/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `one-hot = ["Country"]
require-filled = true

[join]
axis = "columns"
match = "inner"
renumber = true

[impute]
default = "mode"

[impute.columns]
Salary = "median"

[[sources]]
path = "a.tsv"

[sources.csv]
delim = "tab"
key = "id"

[[sources]]
driver = "mysql"
dsn = "user:pass@tcp(localhost:3306)/shop"
query = "SELECT * FROM orders"
key = "id"

[output]
path = "out.csv"
`

const yamlConfig = `sources:
  - path: left.csv
  - path: right.csv
merge:
  on: key
  how: left
impute:
  default: skip
  columns:
    Age: mean
one-hot: [Country, Gender]
`

func TestReadTOML(t *testing.T) {
	cfg, err := Read([]byte(tomlConfig), ".toml")
	require.NoError(t, err)
	assert.Equal(t, join.Spec{Axis: table.Columns, Match: join.Inner, Renumber: true}, cfg.Join)
	assert.Equal(t, &impute.Policy{Default: impute.Mode, Columns: map[string]impute.Strategy{"Salary": impute.Median}}, cfg.Impute)
	assert.True(t, cfg.RequireFilled)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, table.CSVOptions{Delim: table.Tab, KeyColumn: "id"}, cfg.Sources[0].CSV)
	assert.Equal(t, "a", cfg.Sources[0].Label())
	assert.Equal(t, "mysql", cfg.Sources[1].Label())
	assert.Nil(t, cfg.Merge)
	assert.NoError(t, cfg.Validate())

	data, err := cfg.Write(".toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "match = 'inner'")
}

func TestReadYAML(t *testing.T) {
	cfg, err := Read([]byte(yamlConfig), ".yml")
	require.NoError(t, err)
	assert.Equal(t, &Merge{On: "key", How: join.Left}, cfg.Merge)
	assert.Equal(t, impute.Skip, cfg.Impute.Default)
	assert.Equal(t, impute.Mean, cfg.Impute.Columns["Age"])
	assert.Equal(t, []string{"Country", "Gender"}, cfg.OneHot)
	assert.NoError(t, cfg.Validate())

	data, err := cfg.Write(".yaml")
	require.NoError(t, err)
	rt, err := Read(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, rt)
}

func TestReadErrors(t *testing.T) {
	_, err := Read([]byte("[join]\naxis = \"diagonal\"\n"), ".toml")
	assert.ErrorContains(t, err, "diagonal")

	_, err = Read([]byte("joins: {}\n"), ".yaml")
	assert.Error(t, err)

	_, err = Read([]byte("{}"), ".json")
	assert.ErrorIs(t, err, table.ErrInvalidSpec)

	_, err = Open(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	cfg, err := Read([]byte(tomlConfig), ".toml")
	require.NoError(t, err)
	cp, err := cfg.Clone()
	require.NoError(t, err)
	assert.Equal(t, cfg, cp)

	cp.Impute.Columns["Age"] = impute.Skip
	cp.Sources[0].Path = "b.csv"
	cp.OneHot[0] = "Gender"
	assert.Len(t, cfg.Impute.Columns, 1)
	assert.Equal(t, "a.tsv", cfg.Sources[0].Path)
	assert.Equal(t, "Country", cfg.OneHot[0])
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(yamlConfig), 0666))

	cfgs := make(chan *Config, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- Watch(ctx, fn, func(cfg *Config) { cfgs <- cfg })
	}()

	next := func() *Config {
		select {
		case cfg := <-cfgs:
			return cfg
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for config")
		}
		return nil
	}
	cfg := next()
	assert.Equal(t, []string{"Country", "Gender"}, cfg.OneHot)

	require.NoError(t, os.WriteFile(fn, []byte("sources:\n  - path: c.csv\none-hot: [Zip]\n"), 0666))
	cfg = next()
	assert.Equal(t, []string{"Zip"}, cfg.OneHot)

	cancel()
	assert.NoError(t, <-done)
}
