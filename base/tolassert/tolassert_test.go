// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, float32(1), 1.00001)
	Equal(t, 1000.0, 1000.05)
	EqualTol(t, float32(3.1), 3.14, 0.1)

	r := &recorder{}
	assert.False(t, Equal(r, float32(1), 1.1))
	assert.True(t, r.failed)
	r.failed = false
	assert.False(t, EqualTol(r, 10.0, 11, 0.5))
	assert.True(t, r.failed)
}
