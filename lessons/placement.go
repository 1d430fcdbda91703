// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"fmt"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/place"
	"cogentcore.org/lessons/xyz"
)

// newPlacementDemo returns a demo with the camera, fog and lights
// shared by the primitive placement lessons.
func newPlacementDemo(name, title string, width, height int) *Demo {
	cam := perspective(40, 1, 10000, math32.Vec3(-528, 513, 92))
	d := newDemo(name, title, width, height, cam, math32.Vec3(0, 200, 0))
	d.Scene.SetFog(xyz.NewFog(0x808080, 2000, 4000))
	addStudioLights(d.Scene, 1, math32.Vec3(200, 400, 500), math32.Vec3(-500, 250, -200))
	return d
}

// endpoints is a named, colored pair of endpoints to place a primitive between.
type endpoints struct {
	name        string
	hex         uint32
	top, bottom math32.Vector3
}

// testEndpoints are the endpoint pairs of the capsule and cylinder
// lessons: the three axes, a diagonal, and a chain of three segments.
var testEndpoints = []endpoints{
	{"Green", 0x00FF00, math32.Vec3(0, 300, 0), math32.Vec3(0, 0, 0)},
	{"Red", 0xFF0000, math32.Vec3(300, 0, 0), math32.Vec3(0, 0, 0)},
	{"Blue", 0x0000FF, math32.Vec3(0, 0, 300), math32.Vec3(0, 0, 0)},
	{"Gray", 0x808080, math32.Vec3(200, 200, 200), math32.Vec3(0, 0, 0)},
	{"Yellow", 0xFFFF00, math32.Vec3(50, 100, -200), math32.Vec3(50, 300, -200)},
	{"Cyan", 0x00FFFF, math32.Vec3(50, 300, -200), math32.Vec3(250, 300, -200)},
	{"Magenta", 0xFF00FF, math32.Vec3(250, 300, -200), math32.Vec3(-150, 100, 0)},
}

// NewCapsule places capsules between the test endpoints.
// Only the green and magenta capsules have both caps.
func NewCapsule(m Mount, width, height int) *Demo {
	d := newPlacementDemo("capsule", "Capsule", width, height)
	addAxes(d.Scene, 500)
	for _, ep := range testEndpoints {
		both := ep.name == "Green" || ep.name == "Magenta"
		place.NewCapsule(d.Scene, ep.name, xyz.NewLambert(ep.hex), place.Capsule{
			Top: ep.top, Bottom: ep.bottom, Radius: 20, Segments: 32, OpenBottom: !both,
		})
	}
	return d.start(m)
}

// NewCylinderPositioning places cones between the test endpoints,
// with the wide end at the top.
func NewCylinderPositioning(m Mount, width, height int) *Demo {
	d := newPlacementDemo("cylinder-positioning", "Cylinder Positioning", width, height)
	addAxes(d.Scene, 500)
	for _, ep := range testEndpoints {
		place.NewCylinder(d.Scene, ep.name, xyz.NewLambert(ep.hex), place.Cylinder{
			Top: ep.top, Bottom: ep.bottom, RadiusTop: 50, RadiusBottom: 0, Segments: 32,
		})
	}
	return d.start(m)
}

// Helix specifies a helix of capsules winding up around the Y axis.
type Helix struct {

	// Radius is the radius of the helix.
	Radius float32

	// Tube is the radius of the capsules.
	Tube float32

	// RadialSegments is the number of capsules per turn.
	RadialSegments int

	// TubularSegments is the number of segments around each capsule.
	TubularSegments int

	// Height is the total height of the helix, centered on the origin.
	Height float32

	// Arc is the number of turns.
	Arc int

	// Clockwise winds the helix from +X toward +Z.
	Clockwise bool
}

// Points returns the Arc * RadialSegments + 1 points along the helix,
// starting on +X at the bottom.
func (hx *Helix) Points() []math32.Vector3 {
	segs := max(hx.RadialSegments, 1)
	n := max(hx.Arc*segs, 1)
	sign := float32(-1)
	if hx.Clockwise {
		sign = 1
	}
	pts := make([]math32.Vector3, n+1)
	for i := range pts {
		rad := float32(2*i) * math32.Pi / float32(segs)
		pts[i] = math32.Vec3(
			hx.Radius*math32.Cos(rad),
			hx.Height*float32(i)/float32(n)-hx.Height/2,
			sign*hx.Radius*math32.Sin(rad))
	}
	return pts
}

// NewHelix adds a group to the parent with one capsule between each
// pair of consecutive helix points. Each capsule has a bottom cap, and
// only the last one has a top cap.
func NewHelix(parent xyz.Node, name string, mat *xyz.Material, hx Helix) *xyz.Group {
	gp := xyz.NewGroup(parent, name)
	pts := hx.Points()
	last := len(pts) - 2
	for i := 0; i+1 < len(pts); i++ {
		place.NewCapsule(gp, fmt.Sprintf("Capsule%d", i), mat, place.Capsule{
			Top: pts[i+1], Bottom: pts[i], Radius: hx.Tube, Segments: hx.TubularSegments,
			OpenTop: i != last,
		})
	}
	return gp
}

// NewHelices shows helices of capsules with varying radius, tube,
// height, turns and winding.
func NewHelices(m Mount, width, height int) *Demo {
	d := newPlacementDemo("helices", "Helices", width, height)
	sc := d.Scene
	const (
		radius = 60
		tube   = 10
		rsegs  = 24
		tsegs  = 12
		hgt    = 300
		arc    = 2
		off    = 2.5 * radius
	)
	helix := func(name string, hex uint32, hx Helix) *xyz.Group {
		hx.RadialSegments = rsegs
		hx.TubularSegments = tsegs
		gp := NewHelix(sc, name, xyz.NewLambert(hex), hx)
		gp.Pose.Pos.Y = hgt / 2
		return gp
	}
	helix("Red", 0xFF0000, Helix{Radius: radius, Tube: tube, Height: hgt, Arc: arc, Clockwise: true})
	helix("Green", 0x00FF00, Helix{Radius: radius / 2, Tube: tube, Height: hgt, Arc: arc})

	// double helix
	blue1 := helix("Blue1", 0x0000FF, Helix{Radius: radius, Tube: tube / 2, Height: hgt, Arc: arc})
	blue1.Pose.Pos.Z = off
	blue2 := helix("Blue2", 0x0000FF, Helix{Radius: radius, Tube: tube / 2, Height: hgt, Arc: arc})
	blue2.SetEulerRotation(0, 120, 0)
	blue2.Pose.Pos.Z = off

	gray := helix("Gray", 0x808080, Helix{Radius: radius, Tube: tube / 2, Height: hgt / 2, Arc: arc, Clockwise: true})
	gray.Pose.Pos.X = off
	yellow := helix("Yellow", 0xFFFF00, Helix{Radius: 0.75 * radius, Tube: tube / 2, Height: hgt, Arc: 4 * arc})
	yellow.Pose.Pos.X, yellow.Pose.Pos.Z = off, -off
	cyan := helix("Cyan", 0x00FFFF, Helix{Radius: 0.75 * radius, Tube: 4 * tube, Height: hgt, Arc: 2 * arc})
	cyan.Pose.Pos.X, cyan.Pose.Pos.Z = off, off
	magenta := helix("Magenta", 0xFF00FF, Helix{Radius: radius, Tube: tube, Height: hgt, Arc: arc, Clockwise: true})
	magenta.SetEulerRotation(45, 0, 0)
	magenta.Pose.Pos.Z = -off
	return d.start(m)
}

// NewOrnament shows a thin cylinder spanning the diagonal of a
// translucent cube, placed with a fixed matrix.
func NewOrnament(m Mount, width, height int) *Demo {
	cam := perspective(30, 1, 10000, math32.Vec3(-7, 7, 2))
	d := newDemo("ornament", "Ornament", width, height, cam, math32.Vector3{})
	sc := d.Scene
	d.Renderer.SetClearColor(colors.FromUint32(0xAAAAAA))
	sc.SetFog(xyz.NewFog(0x808080, 2000, 4000))
	addStudioLights(sc, 1, math32.Vec3(200, 400, 500), math32.Vec3(-500, 250, -200))

	al := place.Align(math32.Vec3(1, 1, 1), math32.Vec3(-1, -1, -1))
	cyl := xyz.NewSolid(sc, "cylinder").SetMesh(xyz.NewCylinder("cylinder", 0.2, 0.2, al.Length, 32)).
		SetMaterial(phong(0xD1F5FD, 100, 0xD1F5FD))
	cyl.Pose.SetMatrix(al.Matrix())

	cube := xyz.NewLambert(0xFFFFFF).SetOpacity(0.7)
	xyz.NewSolid(sc, "cube").SetMesh(xyz.NewBox("cube", 2, 2, 2)).SetMaterial(cube)
	return d.start(m)
}
