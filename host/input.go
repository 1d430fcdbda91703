// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"cogentcore.org/lessons/lessons"
	"cogentcore.org/lessons/math32"
)

// Pointer is the pointer state of a window, polled once per frame.
type Pointer struct {
	X, Y int

	// Left and Right are whether those buttons are held.
	Left, Right bool

	// Wheel is the vertical scroll since the last frame,
	// positive toward the user.
	Wheel float32
}

// Keys are the panel keys pressed since the last frame.
type Keys struct {
	Up, Down, Left, Right bool
}

// Input routes pointer and key state to the orbit controls
// and parameter panel of a view. Left drag rotates, right drag pans
// and the wheel zooms. Up and down select a parameter, left and
// right nudge it.
type Input struct {
	last    Pointer
	started bool
}

// Apply applies the change from the previous pointer state and the
// pressed keys to the view, whose canvas has the given pixel height.
func (in *Input) Apply(v lessons.View, p Pointer, k Keys, height int) {
	prev := in.last
	in.last = p
	if v == nil {
		return
	}
	if oc := v.Controls(); oc != nil {
		dx := float32(p.X - prev.X)
		dy := float32(p.Y - prev.Y)
		switch {
		case !in.started:
		case p.Left && prev.Left:
			oc.Drag(dx, dy, height)
		case p.Right && prev.Right:
			s := worldPerPixel(v, height)
			oc.Pan(-dx*s, dy*s)
		}
		if p.Wheel != 0 {
			oc.Wheel(p.Wheel)
		}
	}
	in.started = true
	pn := v.Panel()
	if pn == nil {
		return
	}
	switch {
	case k.Up:
		pn.Select(-1)
	case k.Down:
		pn.Select(1)
	}
	switch {
	case k.Left:
		pn.Nudge(-1)
	case k.Right:
		pn.Nudge(1)
	}
}

// worldPerPixel returns the world distance one pixel covers at the
// orbit target.
func worldPerPixel(v lessons.View, height int) float32 {
	if height <= 0 {
		return 0
	}
	cam := v.Controls().Camera
	if cam.Ortho {
		return (cam.Top - cam.Bottom) / cam.OrthoZoom() / float32(height)
	}
	d := v.Controls().Distance()
	return 2 * d * math32.Tan(math32.DegToRad(cam.FOV)/2) / float32(height)
}
