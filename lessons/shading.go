// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// NewDiffuseSphere shows a diffusely lit sphere above a grid.
func NewDiffuseSphere(m Mount, width, height int) *Demo {
	cam := perspective(45, 1, 80000, math32.Vec3(-300, 300, -1000))
	d := newDemo("diffuse-sphere", "Diffuse Sphere", width, height, cam, math32.Vector3{})
	sc := d.Scene
	xyz.NewAmbientLight(sc, "ambient", 0xFFFFFF, 1)
	xyz.NewDirLight(sc, "light", 0xFFFFFF, 0.7).SetPos(-800, 900, 300)

	xyz.NewSolid(sc, "sphere").SetMesh(xyz.NewSphere("sphere", 400, 64, 32)).
		SetMaterial(xyz.NewLambert(0x80FC66))
	addGrid(sc, "grid", 1000, 10, 0, 0).SetPos(0, -400, 0)
	return d.start(m)
}

// RGBTriangle returns the mesh of a triangle with red, green and blue corners.
func RGBTriangle() *xyz.GenMesh {
	pos := []math32.Vector3{
		math32.Vec3(0, 0, 0), // bottom left
		math32.Vec3(4, 0, 0), // bottom right
		math32.Vec3(2, 3, 0), // top
	}
	clrs := []math32.Vector3{
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	return xyz.NewGenMesh("triangle", pos, []uint32{0, 1, 2}, clrs)
}

// NewRGBTriangle shows the interpolation of vertex colors across a triangle.
func NewRGBTriangle(m Mount, width, height int) *Demo {
	d := newDrawingDemo("rgb-triangle", "RGB Triangle", width, height)
	mat := xyz.NewBasic(0xFFFFFF).SetVertexColors(true).SetSide(xyz.DoubleSide)
	xyz.NewSolid(d.Scene, "triangle").SetMesh(RGBTriangle()).SetMaterial(mat)
	addDrawingHelpers(d.Scene)
	return d.start(m)
}
