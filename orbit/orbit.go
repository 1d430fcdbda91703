// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides camera controls that rotate, zoom and pan
// a camera around a target point.
package orbit

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// PoleMargin is how close in radians the polar angle may get to the poles.
const PoleMargin = 0.01

// Controls moves a camera on a sphere around a target point.
type Controls struct {

	// Camera is the controlled camera.
	Camera *xyz.Camera

	// Target is the point the camera orbits and looks at.
	Target math32.Vector3

	// MinDistance and MaxDistance limit the distance to the target
	// for perspective cameras. MaxDistance of 0 means no limit.
	MinDistance, MaxDistance float32

	// RotateSpeed scales the rotation from pointer drags.
	RotateSpeed float32

	// ZoomSpeed scales the zoom from wheel steps.
	ZoomSpeed float32
}

// New returns controls for the camera orbiting the given target,
// aiming the camera at it.
func New(cam *xyz.Camera, target math32.Vector3) *Controls {
	oc := &Controls{Camera: cam, Target: target}
	oc.Defaults()
	oc.Update()
	return oc
}

func (oc *Controls) Defaults() {
	oc.MinDistance = 0
	oc.MaxDistance = 0
	oc.RotateSpeed = 1
	oc.ZoomSpeed = 1
}

// SetTarget sets the target and re-aims the camera.
func (oc *Controls) SetTarget(target math32.Vector3) *Controls {
	oc.Target = target
	oc.Update()
	return oc
}

// Update aims the camera at the target.
func (oc *Controls) Update() {
	oc.Camera.LookAt(oc.Target, math32.Vector3{})
}

// spherical returns the distance, azimuth and polar angle of the
// camera relative to the target, with Y up.
func (oc *Controls) spherical() (radius, theta, phi float32) {
	off := oc.Camera.Position().Sub(oc.Target)
	radius = off.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(off.X, off.Z)
	phi = math32.Acos(math32.Clamp(off.Y/radius, -1, 1))
	return
}

func (oc *Controls) setSpherical(radius, theta, phi float32) {
	sp := math32.Sin(phi)
	off := math32.Vec3(radius*sp*math32.Sin(theta), radius*math32.Cos(phi), radius*sp*math32.Cos(theta))
	oc.Camera.MoveTo(oc.Target.Add(off), oc.Target)
}

// Rotate moves the camera around the target by the given azimuth
// (around the vertical axis) and polar (toward the poles) angles
// in radians. The polar angle stays within [PoleMargin] of the poles.
func (oc *Controls) Rotate(azimuth, polar float32) {
	r, theta, phi := oc.spherical()
	if r == 0 {
		return
	}
	theta += azimuth
	phi = math32.Clamp(phi+polar, PoleMargin, math32.Pi-PoleMargin)
	oc.setSpherical(r, theta, phi)
}

// Drag rotates for a pointer drag of dx, dy pixels in a view of the
// given pixel height: a drag across the full height is a full turn.
func (oc *Controls) Drag(dx, dy float32, height int) {
	if height <= 0 {
		return
	}
	s := 2 * math32.Pi * oc.RotateSpeed / float32(height)
	oc.Rotate(-dx*s, -dy*s)
}

// Zoom zooms in by the given factor (> 1 moves closer, < 1 away).
// Perspective cameras move toward the target; orthographic cameras
// scale their zoom.
func (oc *Controls) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	cam := oc.Camera
	if cam.Ortho {
		cam.ScaleZoom(factor)
		return
	}
	r, theta, phi := oc.spherical()
	if r == 0 {
		return
	}
	r /= factor
	r = math32.Max(r, oc.MinDistance)
	if oc.MaxDistance > 0 {
		r = math32.Min(r, oc.MaxDistance)
	}
	oc.setSpherical(r, theta, phi)
}

// Wheel zooms for a scroll wheel delta, where positive is toward the user.
func (oc *Controls) Wheel(delta float32) {
	oc.Zoom(math32.Pow(0.95, -delta*oc.ZoomSpeed))
}

// Pan moves the camera and the target together along the camera's
// right and up directions, by the given world distances.
func (oc *Controls) Pan(dx, dy float32) {
	cam := oc.Camera
	del := cam.RightVector().MulScalar(dx).Add(cam.UpVector().MulScalar(dy))
	pos := cam.Position().Add(del)
	oc.Target.SetAdd(del)
	cam.MoveTo(pos, oc.Target)
}

// Distance returns the distance from the camera to the target.
func (oc *Controls) Distance() float32 {
	return oc.Camera.Position().DistanceTo(oc.Target)
}
