// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sync"

	"cogentcore.org/lessons/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// Pos is the location of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the location the camera is pointing at. It is reset
	// by a call to the LookAt method.
	Target math32.Vector3

	// UpDir is the up direction for the camera, which defaults to the
	// positive Y axis.
	UpDir math32.Vector3

	// Ortho makes the camera orthographic, bounded by Left, Right,
	// Top and Bottom instead of the field of view.
	Ortho bool

	// FOV is the vertical field of view in degrees, for perspective.
	FOV float32

	// Aspect is the aspect ratio (width/height), for perspective.
	Aspect float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	// Left, Right, Top and Bottom are the orthographic view bounds.
	Left, Right, Top, Bottom float32

	// Zoom scales the orthographic view bounds (2 = twice as close).
	Zoom float32

	// WorldMatrix is the camera-to-world transform.
	WorldMatrix math32.Matrix4 `view:"-"`

	// ViewMatrix is the world-to-camera transform (inverse of WorldMatrix).
	ViewMatrix math32.Matrix4 `view:"-"`

	// ProjectionMatrix is the perspective or orthographic projection.
	ProjectionMatrix math32.Matrix4 `view:"-"`

	// mu protects the camera data
	mu sync.RWMutex
}

func (cm *Camera) Defaults() {
	cm.FOV = 50
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 2000
	cm.Zoom = 1
	cm.UpDir.Set(0, 1, 0)
	cm.Pos.Set(0, 0, 10)
}

// NewPerspectiveCamera returns a perspective camera with the given
// vertical field of view in degrees, aspect ratio and clipping planes,
// looking at the origin.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.FOV = fov
	cm.Aspect = aspect
	cm.Near = near
	cm.Far = far
	cm.LookAt(math32.Vector3{}, math32.Vector3{})
	return cm
}

// NewOrthographicCamera returns an orthographic camera with the given
// view bounds and clipping planes, looking at the origin.
func NewOrthographicCamera(left, right, top, bottom, near, far float32) *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.Ortho = true
	cm.Left = left
	cm.Right = right
	cm.Top = top
	cm.Bottom = bottom
	cm.Near = near
	cm.Far = far
	cm.LookAt(math32.Vector3{}, math32.Vector3{})
	return cm
}

// SetPos sets the camera position, keeping the current target.
func (cm *Camera) SetPos(x, y, z float32) *Camera {
	cm.mu.Lock()
	cm.Pos.Set(x, y, z)
	cm.mu.Unlock()
	cm.LookAtTarget()
	return cm
}

// Position returns the camera position.
func (cm *Camera) Position() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.Pos
}

// MoveTo moves the camera to pos and points it at target,
// keeping the current up direction.
func (cm *Camera) MoveTo(pos, target math32.Vector3) {
	cm.mu.Lock()
	cm.Pos = pos
	cm.mu.Unlock()
	cm.LookAt(target, math32.Vector3{})
}

// ScaleZoom multiplies the orthographic zoom by factor
// and updates the projection.
func (cm *Camera) ScaleZoom(factor float32) {
	cm.mu.Lock()
	cm.Zoom *= factor
	cm.mu.Unlock()
	cm.UpdateProjection()
}

// View returns the world-to-camera transform.
func (cm *Camera) View() math32.Matrix4 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.ViewMatrix
}

// OrthoZoom returns the orthographic zoom, treating unset as 1.
func (cm *Camera) OrthoZoom() float32 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.Zoom <= 0 {
		return 1
	}
	return cm.Zoom
}

// SetAspect sets the aspect ratio and updates the projection.
func (cm *Camera) SetAspect(aspect float32) {
	cm.mu.Lock()
	cm.Aspect = aspect
	cm.mu.Unlock()
	cm.UpdateProjection()
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
// A zero up direction keeps the current one.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.mu.Lock()
	cm.Target = target
	if !upDir.IsNil() {
		cm.UpDir = upDir
	}
	cm.mu.Unlock()
	cm.UpdateMatrix()
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.mu.RLock()
	target := cm.Target
	cm.mu.RUnlock()
	cm.LookAt(target, math32.Vector3{})
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.Pos.Sub(cm.Target)
}

// UpdateMatrix updates the view and projection matricies
func (cm *Camera) UpdateMatrix() {
	cm.mu.Lock()
	cm.WorldMatrix.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
	view, _ := cm.WorldMatrix.Inverse()
	cm.ViewMatrix = *view
	cm.mu.Unlock()
	cm.UpdateProjection()
}

// UpdateProjection updates the projection matrix from the current
// field of view, aspect, bounds, zoom and clipping planes.
func (cm *Camera) UpdateProjection() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if !cm.Ortho {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
		return
	}
	zoom := cm.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	dx := (cm.Right - cm.Left) / (2 * zoom)
	dy := (cm.Top - cm.Bottom) / (2 * zoom)
	cx := (cm.Right + cm.Left) / 2
	cy := (cm.Top + cm.Bottom) / 2
	cm.ProjectionMatrix.SetOrthographic(cx-dx, cx+dx, cy+dy, cy-dy, cm.Near, cm.Far)
}

// ViewProjection returns the combined projection times view matrix.
func (cm *Camera) ViewProjection() *math32.Matrix4 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.ProjectionMatrix.Mul(&cm.ViewMatrix)
}

// RightVector returns the unit vector pointing to the right of the view, in world coordinates.
func (cm *Camera) RightVector() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return math32.Vec3(cm.WorldMatrix[0], cm.WorldMatrix[1], cm.WorldMatrix[2])
}

// UpVector returns the unit vector pointing up in the view, in world coordinates.
func (cm *Camera) UpVector() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return math32.Vec3(cm.WorldMatrix[4], cm.WorldMatrix[5], cm.WorldMatrix[6])
}
