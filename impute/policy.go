// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package impute

import (
	"fmt"

	"cogentcore.org/tabular/base/enums"
	"cogentcore.org/tabular/table"
)

// Strategy is the way missing cells in a column are filled.
type Strategy int32

const (
	// Auto uses [Mean] for numeric columns and [Mode] otherwise.
	Auto Strategy = iota

	// Mean fills with the mean of the non-missing numbers.
	Mean

	// Median fills with the median of the non-missing numbers.
	Median

	// Mode fills with the most frequent non-missing value,
	// the first one in column order for a tie.
	Mode

	// Skip leaves the column unchanged.
	Skip
)

var strategyNames = []string{"auto", "mean", "median", "mode", "skip"}

func (s Strategy) String() string { return enums.String(s, strategyNames) }

// Validate returns an [table.ErrInvalidSpec] error if the strategy is not enumerated.
func (s Strategy) Validate() error {
	if !enums.Valid(s, strategyNames) {
		return fmt.Errorf("strategy %d: %w", s, table.ErrInvalidSpec)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := enums.Parse[Strategy](string(text), strategyNames)
	if err != nil {
		return fmt.Errorf("impute.Strategy: %w: %w", err, table.ErrInvalidSpec)
	}
	*s = v
	return nil
}

// Policy specifies the [Strategy] for each column.
type Policy struct {

	// Default is the strategy for columns not in Columns.
	Default Strategy `toml:"default" yaml:"default"`

	// Columns has the strategy for specific columns by name.
	Columns map[string]Strategy `toml:"columns" yaml:"columns"`
}

// For returns the strategy for the given column.
func (p Policy) For(column string) Strategy {
	if s, ok := p.Columns[column]; ok {
		return s
	}
	return p.Default
}

// Validate returns an [table.ErrInvalidSpec] error if any strategy is not
// enumerated, or if Columns names a column that dt does not have.
func (p Policy) Validate(dt *table.Table) error {
	if err := p.Default.Validate(); err != nil {
		return err
	}
	for name, s := range p.Columns {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
		if _, err := dt.ColumnTry(name); err != nil {
			return err
		}
	}
	return nil
}
