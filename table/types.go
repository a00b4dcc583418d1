// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/tabular/base/enums"
)

// ColumnType classifies a column by the kinds of its non-missing cells.
type ColumnType int32

const (
	// Empty has no non-missing cells.
	Empty ColumnType = iota

	// Numeric has only number cells.
	Numeric

	// Categorical has only text cells.
	Categorical

	// Mixed has both number and text cells.
	Mixed
)

var columnTypeNames = []string{"empty", "numeric", "categorical", "mixed"}

func (ct ColumnType) String() string { return enums.String(ct, columnTypeNames) }

// TypeOf returns the [ColumnType] of the given cells.
func TypeOf(cells []Cell) ColumnType {
	num, txt := false, false
	for _, c := range cells {
		switch c.kind {
		case Number:
			num = true
		case Text:
			txt = true
		}
		if num && txt {
			return Mixed
		}
	}
	switch {
	case num:
		return Numeric
	case txt:
		return Categorical
	}
	return Empty
}

// Axis selects rows or columns for operations that work along either.
type Axis int32

const (
	// Rows operates on rows: stacking for joins, dropping rows for [DropMissing].
	Rows Axis = iota

	// Columns operates on columns: key alignment for joins,
	// dropping columns for [DropMissing].
	Columns
)

var axisNames = []string{"rows", "columns"}

func (ax Axis) String() string { return enums.String(ax, axisNames) }

// Validate returns an [ErrInvalidSpec] error if the axis is not enumerated.
func (ax Axis) Validate() error {
	if !enums.Valid(ax, axisNames) {
		return fmt.Errorf("axis %d: %w", ax, ErrInvalidSpec)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (ax Axis) MarshalText() ([]byte, error) { return []byte(ax.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ax *Axis) UnmarshalText(text []byte) error {
	v, err := enums.Parse[Axis](string(text), axisNames)
	if err != nil {
		return fmt.Errorf("table.Axis: %w: %w", err, ErrInvalidSpec)
	}
	*ax = v
	return nil
}
