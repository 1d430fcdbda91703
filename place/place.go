// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package place positions primitives that are modeled along their
// local +Y axis so that they span two given endpoints: cylinders and
// cones from end to end, and capsules with hemispherical caps.
package place

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// ParallelTol is the cross product magnitude below which the
// direction is treated as parallel to the Y axis.
const ParallelTol = 1e-6

// Alignment is the transform that carries a primitive of the given
// Length, centered at the origin along its local Y axis, onto the
// segment between two endpoints.
type Alignment struct {

	// Length is the distance between the endpoints.
	Length float32

	// Center is the midpoint of the endpoints.
	Center math32.Vector3

	// Dir is the unit direction from bottom to top,
	// +Y for coincident endpoints.
	Dir math32.Vector3

	// Axis is the unit rotation axis: Dir cross +Y,
	// or +X when Dir is parallel to Y.
	Axis math32.Vector3

	// Angle is the angle in radians between Dir and +Y.
	// The rotation applied is by -Angle about Axis.
	Angle float32
}

// Align returns the [Alignment] for a primitive spanning from
// bottom to top.
func Align(top, bottom math32.Vector3) Alignment {
	al := Alignment{Center: top.Add(bottom).MulScalar(0.5)}
	delta := top.Sub(bottom)
	al.Length = delta.Length()
	if al.Length == 0 {
		al.Dir = math32.Vec3(0, 1, 0)
		al.Axis = math32.Vec3(1, 0, 0)
		return al
	}
	al.Dir = delta.DivScalar(al.Length)
	yAxis := math32.Vec3(0, 1, 0)
	al.Axis = al.Dir.Cross(yAxis)
	if al.Axis.Length() < ParallelTol {
		al.Axis = math32.Vec3(1, 0, 0)
	} else {
		al.Axis = al.Axis.Normal()
	}
	al.Angle = math32.Acos(al.Dir.Dot(yAxis))
	return al
}

// Quat returns the rotation that carries +Y onto Dir.
func (al Alignment) Quat() math32.Quat {
	return math32.NewQuatAxisAngle(al.Axis, -al.Angle)
}

// Matrix returns the full transform: rotation then translation to Center.
func (al Alignment) Matrix() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTransform(al.Center, al.Quat(), math32.Vector3Scalar(1))
	return m
}

// Apply sets the pose of the given node to the rotation and position.
func (al Alignment) Apply(n xyz.Node) {
	ps := &n.AsNodeBase().Pose
	ps.Fixed = false
	ps.Quat = al.Quat()
	ps.Pos = al.Center
}

// Top returns the top endpoint: the image of local (0, Length/2, 0).
func (al Alignment) Top() math32.Vector3 {
	return al.Center.Add(al.Dir.MulScalar(al.Length / 2))
}

// Bottom returns the bottom endpoint: the image of local (0, -Length/2, 0).
func (al Alignment) Bottom() math32.Vector3 {
	return al.Center.Sub(al.Dir.MulScalar(al.Length / 2))
}
