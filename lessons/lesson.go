// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lessons provides the 3D graphics lessons. Each lesson builds
// its own camera, scene, renderer and orbit controls, mounts itself into
// a host and re-renders on every frame until disposed.
package lessons

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/orbit"
	"cogentcore.org/lessons/params"
	"cogentcore.org/lessons/raster"
	"cogentcore.org/lessons/xyz"
)

// View is what a lesson shows in its host.
type View interface {

	// Title is the display name of the lesson.
	Title() string

	// Image returns the canvas the lesson renders into.
	Image() *image.RGBA

	// Panel returns the parameter panel, or nil if the lesson has none.
	Panel() *params.Panel

	// Controls returns the orbit controls of the camera.
	Controls() *orbit.Controls

	// Resize sets the canvas size in pixels.
	Resize(width, height int)
}

// Mount is the host element a lesson attaches its view to,
// and the source of its frame callbacks.
type Mount interface {
	frame.Scheduler

	// Mount attaches the view to the host.
	Mount(v View)

	// Unmount detaches the view from the host.
	Unmount(v View)
}

// Demo is a running lesson.
type Demo struct {

	// Name is the registry name of the lesson.
	Name string

	// Scene is the scene graph.
	Scene *xyz.Scene

	// Camera is the camera the scene is viewed through.
	Camera *xyz.Camera

	// Renderer draws the scene into the canvas.
	Renderer *raster.Renderer

	// Orbit moves the camera around its target.
	Orbit *orbit.Controls

	// Params is the optional parameter panel.
	Params *params.Panel

	// OnFrame is called before rendering each frame, to apply parameters.
	OnFrame func(d *Demo)

	title    string
	mount    Mount
	frameID  frame.ID
	disposed bool
	mu       sync.Mutex
}

// newDemo returns a demo with an empty scene and a renderer of the given
// size, viewing through the camera. The camera aspect is set from the size.
func newDemo(name, title string, width, height int, cam *xyz.Camera, target math32.Vector3) *Demo {
	d := &Demo{Name: name, title: title, Camera: cam}
	d.Scene = xyz.NewScene(name)
	d.Renderer = raster.New(width, height, raster.Options{Antialias: true})
	d.Camera.SetAspect(aspect(width, height))
	d.Orbit = orbit.New(cam, target)
	return d
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// start mounts the demo, renders the first frame and schedules the next.
func (d *Demo) start(m Mount) *Demo {
	d.mount = m
	d.step(frame.Tick{})
	m.Mount(d)
	return d
}

// step renders one frame and requests the next one.
func (d *Demo) step(frame.Tick) {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	d.Orbit.Update()
	errors.Log(d.Render())
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.disposed && d.mount != nil {
		d.frameID = d.mount.Request(d.step)
	}
}

// Render applies the parameters and draws the scene.
func (d *Demo) Render() error {
	if d.OnFrame != nil {
		d.OnFrame(d)
	}
	if err := d.Renderer.Render(d.Scene, d.Camera); err != nil {
		return fmt.Errorf("lessons: %s: %w", d.Name, err)
	}
	return nil
}

// Resize sets the canvas size and the camera aspect ratio.
func (d *Demo) Resize(width, height int) {
	d.Camera.SetAspect(aspect(width, height))
	d.Renderer.SetSize(width, height)
}

// Dispose stops the frame loop, releases the meshes and materials
// and unmounts the view. It is safe to call more than once.
func (d *Demo) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	m := d.mount
	if m != nil {
		m.Cancel(d.frameID)
	}
	d.mu.Unlock()
	d.Scene.Dispose()
	d.Renderer.Dispose()
	if m != nil {
		m.Unmount(d)
	}
	slog.Debug("lessons: disposed", "lesson", d.Name)
}

// IsDisposed returns whether Dispose has been called.
func (d *Demo) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

func (d *Demo) Title() string             { return d.title }
func (d *Demo) Image() *image.RGBA        { return d.Renderer.Image() }
func (d *Demo) Panel() *params.Panel      { return d.Params }
func (d *Demo) Controls() *orbit.Controls { return d.Orbit }
