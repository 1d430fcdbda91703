// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// Float is a type constraint for all float types.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are equal within the given
// tolerance using [assert.InDelta]. It returns whether the assertion
// passed.
func EqualTol[T Float](t assert.TestingT, expected, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// Equal asserts that the given two numbers are equal within the
// default single-precision tolerance of 1e-4 relative to their magnitude.
func Equal[T Float](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	tol := 1e-4 * math32.Max(1, math32.Abs(float32(expected)))
	return EqualTol(t, expected, actual, T(tol), msgAndArgs...)
}
