// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("c", 3)
	kl.Set("b", 20)
	assert.Equal(t, []string{"a", "b", "c"}, kl.Keys)
	assert.Equal(t, []int{1, 20, 3}, kl.Values)
	assert.Equal(t, 20, kl.At("b"))
	assert.Equal(t, 0, kl.At("z"))
	_, ok := kl.AtTry("z")
	assert.False(t, ok)
	assert.Error(t, kl.Add("a", 5))
	assert.NoError(t, kl.Add("d", 4))
	assert.Equal(t, 3, kl.IndexByKey("d"))
	assert.Equal(t, -1, kl.IndexByKey("e"))
	assert.Equal(t, 4, kl.At("d"))

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
	kl.Set("x", 9)
	assert.Equal(t, 9, kl.At("x"))
}
