// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	kl := New[string, int](2)
	assert.NoError(t, kl.Add("key0", 0))
	assert.NoError(t, kl.Add("key1", 1))
	assert.Error(t, kl.Add("key0", 2))

	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, 1, kl.At("key1"))
	assert.Equal(t, 1, kl.IndexByKey("key1"))
	assert.Equal(t, -1, kl.IndexByKey("nope"))
	_, ok := kl.AtTry("nope")
	assert.False(t, ok)
	assert.True(t, kl.Has("key0"))

	cp := kl.Clone()
	assert.NoError(t, cp.Add("key2", 2))
	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, 3, cp.Len())
	assert.Equal(t, []string{"key0", "key1", "key2"}, cp.KeysClone())

	var zero *List[string, int]
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.Has("x"))
}
