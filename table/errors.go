// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/tabular/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrShapeMismatch is a structural inconsistency between the
	// declared and actual shape of a table.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidSpec is an unrecognized option or a reference to
	// something that does not exist, such as an unknown column.
	ErrInvalidSpec = errors.New("invalid spec")

	// ErrUnsupportedType is a column whose cell types are incompatible
	// with the requested operation.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrAllMissing is a column that has no non-missing values to summarize.
	ErrAllMissing = errors.New("all values missing")
)

// suggestThreshold is the minimum similarity for a column name
// to be offered as a suggestion for an unknown name.
const suggestThreshold = 0.5

// Suggest returns the name among names that is most similar to name,
// or "" if none is similar enough to be a plausible typo.
func Suggest(name string, names []string) string {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, nm := range names {
		s := strutil.Similarity(name, nm, lev)
		if s > score {
			best, score = nm, s
		}
	}
	if score < suggestThreshold {
		return ""
	}
	return best
}

// columnNotFound returns the [ErrInvalidSpec] error for an unknown column.
func columnNotFound(name string, names []string) error {
	if sg := Suggest(name, names); sg != "" {
		return fmt.Errorf("column named %q not found (did you mean %q?): %w", name, sg, ErrInvalidSpec)
	}
	return fmt.Errorf("column named %q not found: %w", name, ErrInvalidSpec)
}
