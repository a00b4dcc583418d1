// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	var md Data
	assert.Equal(t, "", md.Name())
	assert.Equal(t, -1, md.Precision())
	assert.Nil(t, md.Clone())

	md.SetName("students")
	md.SetDoc("roll call")
	md.SetPrecision(4)
	assert.Equal(t, "students", md.Name())
	assert.Equal(t, "roll call", md.Doc())
	assert.Equal(t, 4, md.Precision())

	_, err := Get[int](md, "Name")
	assert.Error(t, err)
	_, err = Get[int](md, "Missing")
	assert.Error(t, err)

	cp := md.Clone()
	cp.SetName("other")
	assert.Equal(t, "students", md.Name())
	assert.Equal(t, "other", cp.Name())
}
