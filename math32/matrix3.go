// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix3 is 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// SetNormalMatrix sets this matrix to the inverse transpose of the upper 3x3
// block of the given model matrix, used to transform normals.
// If the block is not invertible the identity is used.
func (m *Matrix3) SetNormalMatrix(src *Matrix4) {
	a := Matrix3{
		src[0], src[1], src[2],
		src[4], src[5], src[6],
		src[8], src[9], src[10],
	}
	inv, ok := a.Inverse()
	if !ok {
		*m = Identity3()
		return
	}
	*m = inv.Transpose()
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// Inverse returns the inverse of this matrix.
// If the matrix is not invertible, returns false.
func (m *Matrix3) Inverse() (Matrix3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity3(), false
	}
	id := 1 / det
	var r Matrix3
	r[0] = (m[4]*m[8] - m[5]*m[7]) * id
	r[1] = (m[2]*m[7] - m[1]*m[8]) * id
	r[2] = (m[1]*m[5] - m[2]*m[4]) * id
	r[3] = (m[5]*m[6] - m[3]*m[8]) * id
	r[4] = (m[0]*m[8] - m[2]*m[6]) * id
	r[5] = (m[2]*m[3] - m[0]*m[5]) * id
	r[6] = (m[3]*m[7] - m[4]*m[6]) * id
	r[7] = (m[1]*m[6] - m[0]*m[7]) * id
	r[8] = (m[0]*m[4] - m[1]*m[3]) * id
	return r, true
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}
