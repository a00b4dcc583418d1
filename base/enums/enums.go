// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides helpers for simple named integer enums,
// which map each value to a lower-case name, so that they can
// be written and read as text in config files and command flags.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Int is the constraint for enum types.
type Int interface {
	~int32 | ~int
}

// String returns the name of the given enum value from the names
// list, or its number if it is out of range.
func String[T Int](v T, names []string) string {
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

// Parse returns the enum value with the given name,
// which is matched case-insensitively.
func Parse[T Int](s string, names []string) (T, error) {
	s = strings.TrimSpace(s)
	for i, nm := range names {
		if strings.EqualFold(nm, s) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid value; must be one of %s", s, strings.Join(names, ", "))
}

// Valid returns true if the given value is within the names list.
func Valid[T Int](v T, names []string) bool {
	return int(v) >= 0 && int(v) < len(names)
}
