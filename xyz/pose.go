// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/lessons/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent)
	Pos math32.Vector3

	// Scale is the scale factor applied in local coordinates
	Scale math32.Vector3

	// Quat is the rotation as a quaternion
	Quat math32.Quat

	// Matrix is the local transform, computed from Pos, Quat and Scale
	// unless Fixed is set.
	Matrix math32.Matrix4

	// Fixed means Matrix was set directly and is not recomputed from
	// Pos, Quat and Scale.
	Fixed bool

	// WorldMatrix is the world transform: parent world matrix times Matrix.
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
	ps.Matrix.SetIdentity()
	ps.WorldMatrix.SetIdentity()
}

func (ps Pose) String() string {
	return fmt.Sprintf("pos: %v  quat: %v  scale: %v", ps.Pos, ps.Quat, ps.Scale)
}

// CopyFrom copies just the pose information from another pose,
// including the fixed matrix if it has one.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.Fixed = op.Fixed
	ps.Matrix = op.Matrix
}

// SetMatrix sets a fixed local transform, which is used as-is
// instead of being computed from Pos, Quat and Scale.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	ps.Matrix = *m
	ps.Fixed = true
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
func (ps *Pose) UpdateMatrix() {
	if ps.Fixed {
		return
	}
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix from the local
// Matrix and the parent world matrix; a nil parent means the world origin.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Position()
}

// SetAxisRotation sets the rotation of the pose from the
// local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat = math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
}

// RotateOnAxis rotates the pose on the specified local axis
// by the specified angle in degrees, after any existing rotation.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle)))
}

// SetEulerRotation sets the rotation from euler angles in degrees,
// applied in X, Y, Z order.
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(math32.DegToRad(x), math32.DegToRad(y), math32.DegToRad(z)))
}

// SetEulerRotationRad sets the rotation from euler angles in radians,
// applied in X, Y, Z order.
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}
