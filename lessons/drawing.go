// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/params"
	"cogentcore.org/lessons/xyz"
)

// drawingCamera returns the orthographic camera of the drawing lessons,
// looking down -Z at the XY plane.
func drawingCamera() *xyz.Camera {
	const size = 30
	cam := xyz.NewOrthographicCamera(-size, size, size, -size, 0, size*2)
	cam.MoveTo(math32.Vec3(5, 5, 20), math32.Vec3(5, 5, 0))
	return cam
}

// newDrawingDemo returns a demo with the white background, XY grid
// and axes of the drawing lessons.
func newDrawingDemo(name, title string, width, height int) *Demo {
	d := newDemo(name, title, width, height, drawingCamera(), math32.Vector3{})
	d.Renderer.SetClearColor(colors.White)
	xyz.NewAmbientLight(d.Scene, "ambient", 0x222222, 1)
	return d
}

func addDrawingHelpers(sc *xyz.Scene) {
	addGrid(sc, "grid", 20, 20, math32.Pi/2, 0)
	addAxes(sc, 20)
}

// Square returns the mesh of an axis-aligned square in the XY plane
// with the given bottom-left and top-right corners.
func Square(x1, y1, x2, y2 float32) *xyz.GenMesh {
	pos := []math32.Vector3{
		math32.Vec3(x1, y1, 0), // bottom left
		math32.Vec3(x2, y1, 0), // bottom right
		math32.Vec3(x1, y2, 0), // top left
		math32.Vec3(x2, y2, 0), // top right
	}
	return xyz.NewGenMesh("square", pos, []uint32{0, 1, 3, 2, 3, 0}, nil)
}

// NewDrawSquare draws a square from two corner points.
func NewDrawSquare(m Mount, width, height int) *Demo {
	d := newDrawingDemo("draw-square", "Draw a Square", width, height)
	mat := xyz.NewBasic(0xF6831E).SetSide(xyz.DoubleSide)
	xyz.NewSolid(d.Scene, "square").SetMesh(Square(1, 1, 6, 6)).SetMaterial(mat)
	addDrawingHelpers(d.Scene)
	return d.start(m)
}

// Polygon returns the mesh of a regular polygon in the XY plane with the
// given number of sides, center and radius. The first vertex is on +Y
// from the center and the rest follow counter-clockwise, filled as a
// triangle fan from the first vertex.
func Polygon(sides int, cx, cy, radius float32) *xyz.GenMesh {
	sides = max(sides, 3)
	pos := make([]math32.Vector3, sides)
	for i := range sides {
		angle := math32.Pi/2 + float32(i)/float32(sides)*2*math32.Pi
		pos[i] = math32.Vec3(math32.Cos(angle)*radius+cx, math32.Sin(angle)*radius+cy, 0)
	}
	idx := make([]uint32, 0, 3*(sides-2))
	for n := range sides - 2 {
		idx = append(idx, 0, uint32(n+1), uint32(n+2))
	}
	return xyz.NewGenMesh("polygon", pos, idx, nil)
}

// NewDrawPolygon draws a regular polygon whose sides, center and
// radius are set in the panel.
func NewDrawPolygon(m Mount, width, height int) *Demo {
	d := newDrawingDemo("draw-polygon", "Draw a Polygon", width, height)
	d.Params = params.NewPanel("Polygon").
		AddNumber("sides", "Sides", 5, 3, 10, 1).
		AddNumber("cx", "Center X", 0, -10, 10, 1).
		AddNumber("cy", "Center Y", 0, -10, 10, 1).
		AddNumber("radius", "Radius", 1, 1, 5, 1)

	mat := xyz.NewBasic(0xF6831E).SetSide(xyz.DoubleSide)
	poly := xyz.NewSolid(d.Scene, "polygon").SetMaterial(mat)
	addDrawingHelpers(d.Scene)
	d.OnFrame = func(d *Demo) {
		pn := d.Params
		if !pn.Changed() {
			return
		}
		if poly.Mesh != nil {
			poly.Mesh.AsMeshBase().Dispose()
		}
		poly.SetMesh(Polygon(pn.Int("sides"), pn.Value("cx"), pn.Value("cy"), pn.Value("radius")))
	}
	return d.start(m)
}
