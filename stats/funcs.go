// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for values that stats can be computed over.
type Number interface {
	constraints.Integer | constraints.Float
}

// isNaN works for all [Number] types: only a float NaN differs from itself.
func isNaN[T Number](v T) bool { return v != v }

// valid returns the non-NaN values as float64.
func valid[T Number](vals []T) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !isNaN(v) {
			out = append(out, float64(v))
		}
	}
	return out
}

// Count returns the number of non-NaN values.
func Count[T Number](vals []T) float64 {
	n := 0
	for _, v := range vals {
		if !isNaN(v) {
			n++
		}
	}
	return float64(n)
}

// Sum returns the sum of the values, 0 if there are none.
func Sum[T Number](vals []T) float64 {
	s := 0.0
	for _, v := range vals {
		if !isNaN(v) {
			s += float64(v)
		}
	}
	return s
}

// Min returns the minimum value, NaN if there are none.
func Min[T Number](vals []T) float64 {
	m := math.NaN()
	for _, v := range valid(vals) {
		if math.IsNaN(m) || v < m {
			m = v
		}
	}
	return m
}

// Max returns the maximum value, NaN if there are none.
func Max[T Number](vals []T) float64 {
	m := math.NaN()
	for _, v := range valid(vals) {
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}

// Mean returns the mean value, NaN if there are none.
func Mean[T Number](vals []T) float64 {
	n := Count(vals)
	if n == 0 {
		return math.NaN()
	}
	return Sum(vals) / n
}

// sumSqDev returns the sum of squared deviations from the mean,
// and the count.
func sumSqDev[T Number](vals []T) (float64, float64) {
	mean := Mean(vals)
	ss := 0.0
	fv := valid(vals)
	for _, v := range fv {
		d := v - mean
		ss += d * d
	}
	return ss, float64(len(fv))
}

// Var returns the sample variance (divided by n-1), NaN for fewer
// than two values.
func Var[T Number](vals []T) float64 {
	ss, n := sumSqDev(vals)
	if n < 2 {
		return math.NaN()
	}
	return ss / (n - 1)
}

// Std returns the sample standard deviation.
func Std[T Number](vals []T) float64 { return math.Sqrt(Var(vals)) }

// VarPop returns the population variance (divided by n),
// NaN if there are no values.
func VarPop[T Number](vals []T) float64 {
	ss, n := sumSqDev(vals)
	if n == 0 {
		return math.NaN()
	}
	return ss / n
}

// StdPop returns the population standard deviation.
func StdPop[T Number](vals []T) float64 { return math.Sqrt(VarPop(vals)) }

// sorted returns the sorted non-NaN values.
func sorted[T Number](vals []T) []float64 {
	s := valid(vals)
	slices.Sort(s)
	return s
}

// Quantile returns the value at quantile q in [0, 1] of the sorted
// values, linearly interpolating between the closest ranks.
// Returns NaN if there are no values or q is out of range.
func Quantile[T Number](vals []T, q float64) float64 {
	s := sorted(vals)
	if len(s) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return s[lo] + (pos-float64(lo))*(s[hi]-s[lo])
}

// Median returns the middle value, the mean of the two middle
// values for an even count.
func Median[T Number](vals []T) float64 { return Quantile(vals, 0.5) }

// MedianLow returns the lower of the two middle values for an even count.
func MedianLow[T Number](vals []T) float64 {
	s := sorted(vals)
	if len(s) == 0 {
		return math.NaN()
	}
	return s[(len(s)-1)/2]
}

// MedianHigh returns the higher of the two middle values for an even count.
func MedianHigh[T Number](vals []T) float64 {
	s := sorted(vals)
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)/2]
}
