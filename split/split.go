// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split divides the rows of a table into subsets.
package split

import (
	"fmt"
	"math"
	"math/rand/v2"

	"cogentcore.org/tabular/table"
)

// Permuted returns the row indexes 0..n-1 in a random order
// that is determined by the seed.
func Permuted(n int, seed uint64) []int {
	rnd := rand.New(rand.NewPCG(seed, seed))
	return rnd.Perm(n)
}

// TrainTest splits the rows of dt into a train and a test table,
// after shuffling them in the order given by [Permuted] with the seed.
// The test table has ceil(testFrac * n) rows, and the train table the
// rest. Row keys are kept. It returns an [table.ErrInvalidSpec] error
// if testFrac is not strictly between 0 and 1.
func TrainTest(dt *table.Table, testFrac float64, seed uint64) (train, test *table.Table, err error) {
	if !(testFrac > 0 && testFrac < 1) {
		return nil, nil, fmt.Errorf("split.TrainTest: test fraction %g not in (0, 1): %w", testFrac, table.ErrInvalidSpec)
	}
	n := dt.NumRows()
	ntest := int(math.Ceil(testFrac * float64(n)))
	idx := Permuted(n, seed)
	test, err = table.Select(dt, idx[:ntest])
	if err != nil {
		return nil, nil, fmt.Errorf("split.TrainTest: %w", err)
	}
	train, err = table.Select(dt, idx[ntest:])
	if err != nil {
		return nil, nil, fmt.Errorf("split.TrainTest: %w", err)
	}
	return train, test, nil
}
