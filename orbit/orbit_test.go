// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"sync"
	"testing"

	"cogentcore.org/lessons/base/tolassert"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
	"github.com/stretchr/testify/assert"
)

func newControls() *Controls {
	cam := xyz.NewPerspectiveCamera(45, 1, 1, 1000)
	cam.SetPos(0, 0, 10)
	return New(cam, math32.Vector3{})
}

func TestRotate(t *testing.T) {
	oc := newControls()
	oc.Rotate(math32.Pi/2, 0)
	assert.True(t, oc.Camera.Pos.IsEqualTol(math32.Vec3(10, 0, 0), 1e-4), "%v", oc.Camera.Pos)
	tolassert.EqualTol(t, 10, oc.Distance(), 1e-4)
	// still aimed at the target, which is behind the view vector
	assert.True(t, oc.Camera.ViewVector().Normal().IsEqualTol(math32.Vec3(1, 0, 0), 1e-4))

	// polar angle is clamped short of the pole
	oc.Rotate(0, -10)
	assert.Greater(t, oc.Camera.Pos.Y, float32(9.99))
	assert.Greater(t, math32.Abs(oc.Camera.Pos.X)+math32.Abs(oc.Camera.Pos.Z), float32(0.05))
	tolassert.EqualTol(t, 10, oc.Distance(), 1e-3)
}

func TestDrag(t *testing.T) {
	oc := newControls()
	oc.Drag(50, 0, 100)
	assert.True(t, oc.Camera.Pos.IsEqualTol(math32.Vec3(0, 0, -10), 1e-3), "%v", oc.Camera.Pos)
	oc.Drag(10, 10, 0)
	assert.True(t, oc.Camera.Pos.IsEqualTol(math32.Vec3(0, 0, -10), 1e-3))
}

func TestZoom(t *testing.T) {
	oc := newControls()
	oc.Zoom(2)
	tolassert.EqualTol(t, 5, oc.Distance(), 1e-4)
	oc.MinDistance = 4
	oc.Zoom(2)
	tolassert.EqualTol(t, 4, oc.Distance(), 1e-4)
	oc.MaxDistance = 8
	oc.Zoom(0.1)
	tolassert.EqualTol(t, 8, oc.Distance(), 1e-4)
	oc.Wheel(0)
	tolassert.EqualTol(t, 8, oc.Distance(), 1e-4)

	cam := xyz.NewOrthographicCamera(-30, 30, 30, -30, 0, 60)
	cam.SetPos(5, 5, 20)
	ot := New(cam, math32.Vector3{})
	ot.Zoom(2)
	tolassert.EqualTol(t, 2, cam.Zoom, 1e-6)
	assert.True(t, cam.Pos.IsEqualTol(math32.Vec3(5, 5, 20), 1e-6))
}

func TestPan(t *testing.T) {
	oc := newControls()
	oc.Pan(2, 3)
	assert.True(t, oc.Target.IsEqualTol(math32.Vec3(2, 3, 0), 1e-4), "%v", oc.Target)
	assert.True(t, oc.Camera.Pos.IsEqualTol(math32.Vec3(2, 3, 10), 1e-4), "%v", oc.Camera.Pos)
	assert.True(t, oc.Camera.Target.IsEqualTol(oc.Target, 1e-6))
}

func TestConcurrentReads(t *testing.T) {
	oc := newControls()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 200 {
			oc.Camera.ViewProjection()
			oc.Camera.Position()
			oc.Camera.View()
		}
	}()
	for range 200 {
		oc.Drag(1, 0, 100)
		oc.Pan(0.01, 0)
		oc.Wheel(0.1)
	}
	wg.Wait()
	assert.True(t, oc.Camera.Target.IsEqualTol(oc.Target, 1e-4))
}
