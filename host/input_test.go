// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"testing"

	"cogentcore.org/lessons/lessons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, name string) *lessons.Demo {
	t.Helper()
	ls, err := lessons.Lookup(name)
	require.NoError(t, err)
	d := ls.New(NewHeadless(), 100, 100)
	t.Cleanup(d.Dispose)
	return d
}

func TestInputOrbit(t *testing.T) {
	d := newView(t, "robot-arm")
	oc := d.Controls()
	var in Input

	pos := oc.Camera.Pos
	dist := oc.Distance()
	in.Apply(d, Pointer{X: 10, Y: 10, Left: true}, Keys{}, 100)
	assert.Equal(t, pos, oc.Camera.Pos)

	in.Apply(d, Pointer{X: 30, Y: 10, Left: true}, Keys{}, 100)
	assert.NotEqual(t, pos, oc.Camera.Pos)
	assert.InDelta(t, dist, oc.Distance(), 1e-2)

	in.Apply(d, Pointer{X: 30, Y: 10, Wheel: 1}, Keys{}, 100)
	assert.Less(t, oc.Distance(), dist)

	target := oc.Target
	in.Apply(d, Pointer{X: 30, Y: 10, Right: true}, Keys{}, 100)
	in.Apply(d, Pointer{X: 50, Y: 20, Right: true}, Keys{}, 100)
	assert.NotEqual(t, target, oc.Target)

	// released buttons do nothing
	pos = oc.Camera.Pos
	in.Apply(d, Pointer{X: 80, Y: 80}, Keys{}, 100)
	assert.Equal(t, pos, oc.Camera.Pos)
}

func TestInputPanel(t *testing.T) {
	d := newView(t, "robot-arm")
	pn := d.Panel()
	require.NotNil(t, pn)
	var in Input

	in.Apply(d, Pointer{}, Keys{Down: true}, 100)
	assert.Equal(t, 1, pn.Selected())
	in.Apply(d, Pointer{}, Keys{Right: true}, 100)
	assert.InDelta(t, 70.025, pn.Value("upperArmY"), 1e-3)
	in.Apply(d, Pointer{}, Keys{Up: true, Left: true}, 100)
	assert.Equal(t, 0, pn.Selected())
	assert.InDelta(t, -0.025, pn.Value("bodyY"), 1e-3)

	in.Apply(nil, Pointer{}, Keys{Down: true}, 100)
	assert.Equal(t, 0, pn.Selected())
}

func TestWorldPerPixel(t *testing.T) {
	d := newView(t, "draw-square")
	assert.InDelta(t, 0.6, worldPerPixel(d, 100), 1e-4)
	assert.Zero(t, worldPerPixel(d, 0))

	p := newView(t, "robot-arm")
	assert.Greater(t, worldPerPixel(p, 100), float32(0))
}
