// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tabular/impute"
	"cogentcore.org/tabular/join"
	"cogentcore.org/tabular/sqlio"
	"cogentcore.org/tabular/table"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source is an input table of a pipeline.
type Source struct {

	// Name is the name of the table, which defaults to the
	// base name of Path.
	Name string `toml:"name" yaml:"name"`

	// Path is a delimited text file, or a SQLite database file,
	// which is detected from its content and requires Query.
	Path string `toml:"path" yaml:"path"`

	// CSV has the options for reading a delimited text file.
	CSV table.CSVOptions `toml:"csv" yaml:"csv"`

	// Driver is the database/sql driver name ("sqlite" or "mysql")
	// for reading from DSN instead of Path.
	Driver string `toml:"driver" yaml:"driver"`

	// DSN is the data source name for Driver.
	DSN string `toml:"dsn" yaml:"dsn"`

	// Query is the SQL query that returns the table rows.
	Query string `toml:"query" yaml:"query"`

	// Key is the query result column that has the row keys.
	Key string `toml:"key" yaml:"key"`
}

// Label returns the name of the source for logging and errors.
func (src *Source) Label() string {
	switch {
	case src.Name != "":
		return src.Name
	case src.Path != "":
		return strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))
	}
	return src.Driver
}

// Merge specifies a [join.Merge] of two sources on a column.
type Merge struct {

	// On is the column name that both sources have.
	On string `toml:"on" yaml:"on"`

	// How is the row matching mode.
	How join.Match `toml:"how" yaml:"how"`
}

// Output specifies where the pipeline result is written.
// Either or both of Path and Table can be set.
type Output struct {

	// Path is a delimited text file to save to.
	Path string `toml:"path" yaml:"path"`

	// CSV has the options for writing Path.
	CSV table.CSVOptions `toml:"csv" yaml:"csv"`

	// Driver is the database/sql driver name for writing Table.
	Driver string `toml:"driver" yaml:"driver"`

	// DSN is the data source name for Driver.
	DSN string `toml:"dsn" yaml:"dsn"`

	// Table is the SQL table to write to.
	Table string `toml:"table" yaml:"table"`

	// SQL has the options for writing Table.
	SQL sqlio.WriteOptions `toml:"sql" yaml:"sql"`
}

// Config is the configuration of a pipeline run: the sources are
// joined (or merged), then imputed, then one-hot encoded, in that order.
type Config struct {

	// Sources are the input tables, in join order.
	Sources []Source `toml:"sources" yaml:"sources"`

	// Join specifies how more than one source is joined.
	Join join.Spec `toml:"join" yaml:"join"`

	// Merge, if set, merges exactly two sources on a column
	// instead of using Join.
	Merge *Merge `toml:"merge" yaml:"merge"`

	// Impute, if set, is the policy for filling missing cells.
	Impute *impute.Policy `toml:"impute" yaml:"impute"`

	// RequireFilled makes a column that is all missing after
	// imputation an error.
	RequireFilled bool `toml:"require-filled" yaml:"require-filled"`

	// OneHot are the columns to one-hot encode.
	OneHot []string `toml:"one-hot" yaml:"one-hot"`

	// Output is where the result is written, if anywhere.
	Output Output `toml:"output" yaml:"output"`
}

// Clone returns a deep copy of the config.
func (cfg *Config) Clone() (*Config, error) {
	cp := &Config{}
	if err := copier.CopyWithOption(cp, cfg, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("pipeline.Config.Clone: %w", err)
	}
	return cp, nil
}

// Validate returns an [table.ErrInvalidSpec] error for a config that
// cannot be run.
func (cfg *Config) Validate() error {
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources: %w", table.ErrInvalidSpec)
	}
	for i, src := range cfg.Sources {
		if src.Path == "" && src.Driver == "" {
			return fmt.Errorf("source %d has neither path nor driver: %w", i, table.ErrInvalidSpec)
		}
		if src.Driver != "" && src.Query == "" {
			return fmt.Errorf("source %d has driver %q but no query: %w", i, src.Driver, table.ErrInvalidSpec)
		}
	}
	if cfg.Merge != nil {
		if len(cfg.Sources) != 2 {
			return fmt.Errorf("merge needs 2 sources, have %d: %w", len(cfg.Sources), table.ErrInvalidSpec)
		}
		if err := cfg.Merge.How.Validate(); err != nil {
			return err
		}
	} else if err := cfg.Join.Validate(); err != nil {
		return err
	}
	if cfg.Output.Table != "" && cfg.Output.Driver == "" {
		return fmt.Errorf("output table %q has no driver: %w", cfg.Output.Table, table.ErrInvalidSpec)
	}
	return nil
}

// Open reads the config from a TOML or YAML file,
// according to its extension.
func Open(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := Read(data, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("pipeline.Open %q: %w", filename, err)
	}
	return cfg, nil
}

// Read reads the config from data in the format of the given
// file extension: .toml, .yaml or .yml.
func Read(data []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config format %q: %w", ext, table.ErrInvalidSpec)
	}
	return cfg, nil
}

// Write writes the config as TOML, or YAML for a .yaml or .yml extension.
func (cfg *Config) Write(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}
