// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
)

// Lines is a mesh of independent line segments, with a color per vertex.
type Lines struct {
	MeshBase
}

// NewLines returns a Lines mesh where each consecutive pair of points
// is one segment. Colors is one per point, or nil for none
// (the material color is used).
func NewLines(name string, points []math32.Vector3, clrs []math32.Vector3) *Lines {
	ln := &Lines{}
	ln.Name = name
	ln.Lines = true
	ln.Positions = points
	ln.Colors = clrs
	ln.Indices = make([]uint32, len(points)/2*2)
	for i := range ln.Indices {
		ln.Indices[i] = uint32(i)
	}
	ln.UpdateBBox()
	return ln
}

// NewAxes returns a Lines mesh showing the X (red), Y (green)
// and Z (blue) axes from the origin with the given length.
func NewAxes(name string, size float32) *Lines {
	pts := []math32.Vector3{
		{}, math32.Vec3(size, 0, 0),
		{}, math32.Vec3(0, size, 0),
		{}, math32.Vec3(0, 0, size),
	}
	clrs := []math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(1, 0.6, 0),
		math32.Vec3(0, 1, 0), math32.Vec3(0.6, 1, 0),
		math32.Vec3(0, 0, 1), math32.Vec3(0, 0.6, 1),
	}
	return NewLines(name, pts, clrs)
}

// Grid colors used by [NewGrid].
var (
	GridCenterColor = colors.FromUint32(0x444444)
	GridColor       = colors.FromUint32(0x888888)
)

// NewGrid returns a Lines mesh of a square grid on the XZ plane
// centered at the origin, with the given total size and number of
// divisions. The center lines use [GridCenterColor].
func NewGrid(name string, size float32, divisions int) *Lines {
	return NewGridColors(name, size, divisions, GridCenterColor, GridColor)
}

// NewGridColors is [NewGrid] with the given center line and grid colors.
func NewGridColors(name string, size float32, divisions int, center, grid color.Color) *Lines {
	divisions = max(divisions, 1)
	mid := divisions / 2
	step := size / float32(divisions)
	half := size / 2
	cc := colors.ToVector3(center)
	gc := colors.ToVector3(grid)
	pts := make([]math32.Vector3, 0, 4*(divisions+1))
	clrs := make([]math32.Vector3, 0, 4*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		pts = append(pts,
			math32.Vec3(-half, 0, k), math32.Vec3(half, 0, k),
			math32.Vec3(k, 0, -half), math32.Vec3(k, 0, half))
		c := gc
		if i == mid {
			c = cc
		}
		clrs = append(clrs, c, c, c, c)
	}
	return NewLines(name, pts, clrs)
}
