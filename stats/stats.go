// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides summary statistics over numeric values and
// table columns. All stats functions skip over NaN's, as a missing value.
package stats

import (
	"fmt"

	"cogentcore.org/tabular/base/enums"
	"cogentcore.org/tabular/table"
)

// StatsFunc is the function signature for a stats function,
// which returns a single value summarizing the given values.
type StatsFunc func(vals []float64) float64

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[StatCount.String()] = Count[float64]
	Funcs[StatSum.String()] = Sum[float64]
	Funcs[StatMin.String()] = Min[float64]
	Funcs[StatMax.String()] = Max[float64]
	Funcs[StatMean.String()] = Mean[float64]
	Funcs[StatVar.String()] = Var[float64]
	Funcs[StatStd.String()] = Std[float64]
	Funcs[StatVarPop.String()] = VarPop[float64]
	Funcs[StatStdPop.String()] = StdPop[float64]
	Funcs[StatMedian.String()] = Median[float64]
	Funcs[StatMedianLow.String()] = MedianLow[float64]
	Funcs[StatMedianHigh.String()] = MedianHigh[float64]
	Funcs[StatQ1.String()] = func(vals []float64) float64 { return Quantile(vals, 0.25) }
	Funcs[StatQ3.String()] = func(vals []float64) float64 { return Quantile(vals, 0.75) }
}

// Call calls a registered stats function on given values.
// Returns an error if name not found.
func Call(name string, vals []float64) (float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return 0, fmt.Errorf("stats.Call: function %q not registered: %w", name, table.ErrInvalidSpec)
	}
	return f(vals), nil
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32

const (
	// count of number of elements.
	StatCount Stats = iota

	// sum of elements.
	StatSum

	// minimum value.
	StatMin

	// maximum value.
	StatMax

	// mean value = sum / count.
	StatMean

	// sample variance (squared deviations from mean, divided by n-1).
	StatVar

	// sample standard deviation (sqrt of Var).
	StatStd

	// population variance (squared diffs from mean, divided by n).
	StatVarPop

	// population standard deviation (sqrt of VarPop).
	StatStdPop

	// middle value in sorted ordering, interpolated for an even count.
	StatMedian

	// lower of the two middle values for an even count.
	StatMedianLow

	// higher of the two middle values for an even count.
	StatMedianHigh

	// Q1 first quartile = 25%ile value = .25 quantile value.
	StatQ1

	// Q3 third quartile = 75%ile value = .75 quantile value.
	StatQ3
)

var statsNames = []string{"Count", "Sum", "Min", "Max", "Mean", "Var", "Std", "VarPop", "StdPop", "Median", "MedianLow", "MedianHigh", "Q1", "Q3"}

func (s Stats) String() string { return enums.String(s, statsNames) }

// MarshalText implements [encoding.TextMarshaler].
func (s Stats) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Stats) UnmarshalText(text []byte) error {
	v, err := enums.Parse[Stats](string(text), statsNames)
	if err != nil {
		return fmt.Errorf("stats.Stats: %w: %w", err, table.ErrInvalidSpec)
	}
	*s = v
	return nil
}

// Func returns the registered function for this stat.
func (s Stats) Func() StatsFunc { return Funcs[s.String()] }
