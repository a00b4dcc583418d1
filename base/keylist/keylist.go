// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist has an ordered list of values with unique keys,
// indexed for lookup by key. Tables use it for their named columns.
package keylist

import (
	"fmt"
	"slices"
)

// List is an ordered list of Values with unique Keys.
// Keys and Values must only be modified through [List.Add].
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List] with capacity for n items.
// The zero value is also usable without initialization.
func New[K comparable, V any](n int) *List[K, V] {
	return &List[K, V]{
		Values:  make([]V, 0, n),
		Keys:    make([]K, 0, n),
		indexes: make(map[K]int, n),
	}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

// Add adds an item to the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// Has returns true if the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	if kl == nil {
		return false
	}
	_, ok := kl.indexes[key]
	return ok
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if idx, ok := kl.indexes[key]; ok {
			return kl.Values[idx], true
		}
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Clone returns a new list with copies of the Keys and Values slices.
// The values themselves are copied shallowly.
func (kl *List[K, V]) Clone() *List[K, V] {
	cp := New[K, V](kl.Len())
	if kl == nil {
		return cp
	}
	cp.Keys = append(cp.Keys, kl.Keys...)
	cp.Values = append(cp.Values, kl.Values...)
	for i, k := range cp.Keys {
		cp.indexes[k] = i
	}
	return cp
}

// KeysClone returns a copy of the ordered keys.
func (kl *List[K, V]) KeysClone() []K {
	if kl == nil {
		return nil
	}
	return slices.Clone(kl.Keys)
}
