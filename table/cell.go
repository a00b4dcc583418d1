// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/tabular/base/enums"
)

// Kind is the kind of value held in a [Cell].
type Kind int32

const (
	// Missing is the missing-marker: the cell has no data.
	Missing Kind = iota

	// Number is a float64 numeric value.
	Number

	// Text is a string value, typically a category label.
	Text
)

var kindNames = []string{"missing", "number", "text"}

func (k Kind) String() string { return enums.String(k, kindNames) }

// Cell is a single typed value in a table: a number, a text
// or the missing-marker. The zero value is missing.
// Cells are comparable and can be used as map keys,
// and are used as the row keys of a [Table].
type Cell struct {
	kind Kind
	num  float64
	str  string
}

// NA returns the missing-marker cell.
func NA() Cell { return Cell{} }

// Float returns a [Number] cell. NaN is treated as missing.
func Float(v float64) Cell {
	if math.IsNaN(v) {
		return Cell{}
	}
	if v == 0 {
		v = 0 // no negative zero, so that keys compare equal
	}
	return Cell{kind: Number, num: v}
}

// Int returns a [Number] cell holding the given integer.
func Int(v int) Cell { return Float(float64(v)) }

// Str returns a [Text] cell. The empty string is a valid text value.
func Str(s string) Cell { return Cell{kind: Text, str: s} }

// MissingTokens are the strings that [Parse] treats as missing.
var MissingTokens = []string{"", "NA", "N/A", "NaN", "nan", "-NaN", "null", "NULL", "None"}

// IsMissingToken returns true if s (trimmed) is one of [MissingTokens].
func IsMissingToken(s string) bool {
	s = strings.TrimSpace(s)
	for _, t := range MissingTokens {
		if s == t {
			return true
		}
	}
	return false
}

// Parse returns the cell for the given string: missing if it is
// one of [MissingTokens], a number if it parses as a float,
// and text otherwise.
func Parse(s string) Cell {
	s = strings.TrimSpace(s)
	if IsMissingToken(s) {
		return NA()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(v)
	}
	return Str(s)
}

// Keys returns integer row keys for the given values.
func Keys(vals ...int) []Cell {
	ks := make([]Cell, len(vals))
	for i, v := range vals {
		ks[i] = Int(v)
	}
	return ks
}

// Range returns the dense row keys 0..n-1.
func Range(n int) []Cell {
	ks := make([]Cell, n)
	for i := range ks {
		ks[i] = Int(i)
	}
	return ks
}

// Kind returns the kind of value in the cell.
func (c Cell) Kind() Kind { return c.kind }

// IsMissing returns true for the missing-marker.
func (c Cell) IsMissing() bool { return c.kind == Missing }

// IsNumber returns true for a [Number] cell.
func (c Cell) IsNumber() bool { return c.kind == Number }

// IsText returns true for a [Text] cell.
func (c Cell) IsText() bool { return c.kind == Text }

// Float returns the numeric value, and false if the cell is not a number.
func (c Cell) Float() (float64, bool) {
	if c.kind != Number {
		return math.NaN(), false
	}
	return c.num, true
}

// Text returns the text value, and false if the cell is not text.
func (c Cell) Text() (string, bool) {
	return c.str, c.kind == Text
}

// String returns the display form of the cell: numbers in the
// shortest exact format, text as is, and NaN for missing.
func (c Cell) String() string {
	return c.Format(-1)
}

// Format returns the display form of the cell, using the given
// number of significant digits for numbers (-1 = shortest exact).
func (c Cell) Format(prec int) string {
	switch c.kind {
	case Number:
		return strconv.FormatFloat(c.num, 'g', prec, 64)
	case Text:
		return c.str
	}
	return "NaN"
}

// Compare returns -1, 0 or 1 ordering c relative to o.
// Missing sorts before numbers, which sort before text.
func (c Cell) Compare(o Cell) int {
	if c.kind != o.kind {
		return cmp.Compare(c.kind, o.kind)
	}
	switch c.kind {
	case Number:
		return cmp.Compare(c.num, o.num)
	case Text:
		return strings.Compare(c.str, o.str)
	}
	return 0
}
