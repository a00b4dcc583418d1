// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package join

import (
	"fmt"

	"cogentcore.org/tabular/base/enums"
	"cogentcore.org/tabular/table"
)

// Match is the row key matching mode for aligning tables.
type Match int32

const (
	// Outer keeps the union of the row keys, in first-seen order.
	Outer Match = iota

	// Inner keeps the keys present in every table, in first-table order.
	Inner

	// Left keeps the keys of the first table.
	Left
)

var matchNames = []string{"outer", "inner", "left"}

func (m Match) String() string { return enums.String(m, matchNames) }

// Validate returns an [table.ErrInvalidSpec] error if the mode is not enumerated.
func (m Match) Validate() error {
	if !enums.Valid(m, matchNames) {
		return fmt.Errorf("match %d: %w", m, table.ErrInvalidSpec)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Match) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Match) UnmarshalText(text []byte) error {
	v, err := enums.Parse[Match](string(text), matchNames)
	if err != nil {
		return fmt.Errorf("join.Match: %w: %w", err, table.ErrInvalidSpec)
	}
	*m = v
	return nil
}

// Spec specifies how tables are joined.
type Spec struct {

	// Axis is [table.Rows] to stack rows, or [table.Columns]
	// to align columns by row key.
	Axis table.Axis `toml:"axis" yaml:"axis"`

	// Match is the row key matching mode for [table.Columns] alignment.
	// It is validated but otherwise ignored for [table.Rows] stacking.
	Match Match `toml:"match" yaml:"match"`

	// Renumber replaces the output row keys with dense keys 0..n-1,
	// ignoring the original keys.
	Renumber bool `toml:"renumber" yaml:"renumber"`
}

// Validate returns an [table.ErrInvalidSpec] error if the axis or
// match mode is not enumerated.
func (sp Spec) Validate() error {
	if err := sp.Axis.Validate(); err != nil {
		return err
	}
	return sp.Match.Validate()
}

func (sp Spec) String() string {
	return fmt.Sprintf("axis=%v match=%v renumber=%v", sp.Axis, sp.Match, sp.Renumber)
}
