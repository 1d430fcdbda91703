// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/lessons/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVector3(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)

	assert.Equal(t, vz, vx.Cross(vy))
	assert.Equal(t, vx, vy.Cross(vz))
	assert.Equal(t, float32(0), vx.Dot(vy))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vec3(1, 2, 3), Vec3(2, 4, 6).DivScalar(2))
	assert.Equal(t, Vector3{}, Vec3(2, 4, 6).DivScalar(0))
	assert.Equal(t, Vec3(1.5, 3, 4.5), Vec3(1, 2, 3).Lerp(Vec3(2, 4, 6), 0.5))
	assert.Equal(t, float32(5), Vec3(1, 1, 1).DistanceTo(Vec3(4, 5, 1)))
}

func TestQuatAxisAngle(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	q = NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(90))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, 1), Vec3(0, 1, 0).MulQuat(q))

	inv := q.Inverse()
	TolAssertEqualVector(t, StandardTol, Vec3(0, 1, 0), Vec3(0, 0, 1).MulQuat(inv))
	assert.True(t, q.Mul(inv).IsEqualTol(NewQuatIdentity(), StandardTol))
}

func TestQuatEuler(t *testing.T) {
	// single axis rotations match axis-angle
	ex := NewQuatEuler(Vec3(DegToRad(30), 0, 0))
	assert.True(t, ex.IsEqualTol(NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(30)), StandardTol))
	ez := NewQuatEuler(Vec3(0, 0, DegToRad(70)))
	assert.True(t, ez.IsEqualTol(NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(70)), StandardTol))

	// XYZ order: R = Rx * Ry * Rz
	e := Vec3(DegToRad(20), DegToRad(40), DegToRad(60))
	qx := NewQuatAxisAngle(Vec3(1, 0, 0), e.X)
	qy := NewQuatAxisAngle(Vec3(0, 1, 0), e.Y)
	qz := NewQuatAxisAngle(Vec3(0, 0, 1), e.Z)
	assert.True(t, NewQuatEuler(e).IsEqualTol(qx.Mul(qy).Mul(qz), StandardTol))
}

func TestMatrix4Transform(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(10, 0, 0), NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90)), Vec3(2, 2, 2))
	// scale, then rotate, then translate
	TolAssertEqualVector(t, StandardTol, Vec3(10, 0, -2), Vec3(1, 0, 0).MulMatrix4(m))

	inv, ok := m.Inverse()
	assert.True(t, ok)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 0, 0), Vec3(10, 0, -2).MulMatrix4(inv))
	assert.True(t, m.Mul(inv).IsEqualTol(Identity4(), StandardTol))

	_, ok = (&Matrix4{}).Inverse()
	assert.False(t, ok)
}

func TestMatrix4Projection(t *testing.T) {
	view, _ := NewLookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 1, 0)).Inverse()
	var proj Matrix4
	proj.SetPerspective(90, 1, 1, 100)
	vp := proj.Mul(view)

	// origin is straight ahead of the camera
	c := Vec3(0, 0, 0).MulMatrix4(vp)
	tolassert.EqualTol(t, 0, c.X, StandardTol)
	tolassert.EqualTol(t, 0, c.Y, StandardTol)
	assert.True(t, c.Z > -1 && c.Z < 1)

	// near and far planes map to -1 and 1
	tolassert.EqualTol(t, -1, Vec3(0, 0, 9).MulMatrix4(vp).Z, StandardTol)
	tolassert.EqualTol(t, 1, Vec3(0, 0, -90).MulMatrix4(vp).Z, 1e-4)

	// 90 degree fov: the point at 45 degrees up is at the top edge
	tolassert.EqualTol(t, 1, Vec3(0, 5, 5).MulMatrix4(vp).Y, StandardTol)

	var ortho Matrix4
	ortho.SetOrthographic(-30, 30, 30, -30, 0, 60)
	o := Vec3(15, -30, -30).MulMatrix4(&ortho)
	TolAssertEqualVector(t, StandardTol, Vec3(0.5, -1, 0), o)
}

func TestNormalMatrix(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vector3{}, NewQuatIdentity(), Vec3(2, 1, 1))
	var nm Matrix3
	nm.SetNormalMatrix(m)
	n := Vec3(1, 1, 0).MulMatrix3(&nm)
	TolAssertEqualVector(t, StandardTol, Vec3(0.5, 1, 0), n)
}

func TestBox3(t *testing.T) {
	var b Box3
	b.SetEmpty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(-1, 0, 2))
	b.ExpandByPoint(Vec3(1, 4, -2))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(0, 2, 0), b.Center())
	assert.Equal(t, Vec3(2, 4, 4), b.Size())
}

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(0), Smoothstep(10, 20, 5))
	assert.Equal(t, float32(1), Smoothstep(10, 20, 25))
	assert.Equal(t, float32(0.5), Smoothstep(10, 20, 15))
	assert.Equal(t, float32(2), Clamp(5, -2, 2))
	tolassert.EqualTol(t, Pi, Acos(-1.5), StandardTol)
	tolassert.EqualTol(t, Pi/2, DegToRad(90), StandardTol)
	assert.Equal(t, Vec3(0, 0, 1), Normal(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0)))
	assert.True(t, EdgeFunction(0, 0, 1, 0, 0, 1) > 0)
}
