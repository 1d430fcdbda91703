// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(strconv.Atoi("3")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 7, Must1(strconv.Atoi("7")))
	assert.Panics(t, func() { Must1(strconv.Atoi("seven")) })
}

func TestWrapping(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	var ne *strconv.NumError
	_, err := strconv.Atoi("z")
	assert.True(t, As(fmt.Errorf("parse: %w", err), &ne))
	assert.Equal(t, "z", ne.Num)
	assert.Nil(t, Join(nil, nil))
}
