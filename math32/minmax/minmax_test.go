// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	r := F32{-10, 10}
	assert.True(t, r.IsValid())
	assert.Equal(t, float32(20), r.Range())
	assert.Equal(t, float32(-10), r.ClipValue(-12))
	assert.Equal(t, float32(10), r.ClipValue(15))
	assert.Equal(t, float32(3), r.ClipValue(3))
	assert.Equal(t, float32(0.5), r.NormValue(0))
	assert.Equal(t, float32(5), r.ProjValue(0.75))
	assert.True(t, r.InRange(10))
	assert.False(t, r.InRange(10.5))

	z := F32{2, 2}
	assert.Equal(t, float32(0), z.Scale())
	assert.Equal(t, float32(0), z.NormValue(5))
}
