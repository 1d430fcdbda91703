// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// helperMaterial returns the unlit material for axes and grids,
// which carry their own vertex colors.
func helperMaterial() *xyz.Material {
	return xyz.NewBasic(0xFFFFFF).SetVertexColors(true)
}

// addAxes adds an axes helper of the given length.
func addAxes(parent xyz.Node, size float32) *xyz.Solid {
	return xyz.NewSolid(parent, "axes").SetMesh(xyz.NewAxes("axes", size)).SetMaterial(helperMaterial())
}

// addGrid adds a grid helper on the XZ plane, with its geometry
// rotated in place by the given angles in radians about X then Z.
func addGrid(parent xyz.Node, name string, size float32, divisions int, rotX, rotZ float32) *xyz.Solid {
	grid := xyz.NewGrid(name, size, divisions)
	if rotX != 0 {
		rotateMesh(&grid.MeshBase, math32.Vec3(1, 0, 0), rotX)
	}
	if rotZ != 0 {
		rotateMesh(&grid.MeshBase, math32.Vec3(0, 0, 1), rotZ)
	}
	return xyz.NewSolid(parent, name).SetMesh(grid).SetMaterial(helperMaterial())
}

// rotateMesh rotates the mesh vertices about the axis by the angle in radians.
func rotateMesh(ms *xyz.MeshBase, axis math32.Vector3, angle float32) {
	m := math32.Identity4()
	m.SetRotationFromQuat(math32.NewQuatAxisAngle(axis, angle))
	ms.ApplyMatrix(m)
}

// addStudioLights adds the ambient light and the two white directional
// lights shared by several lessons.
func addStudioLights(sc *xyz.Scene, intensity float32, pos1, pos2 math32.Vector3) {
	xyz.NewAmbientLight(sc, "ambient", 0x222222, 1)
	xyz.NewDirLight(sc, "light", 0xFFFFFF, intensity).SetPos(pos1.X, pos1.Y, pos1.Z)
	xyz.NewDirLight(sc, "light2", 0xFFFFFF, intensity).SetPos(pos2.X, pos2.Y, pos2.Z)
}

// perspective returns a perspective camera at the given position.
func perspective(fov, near, far float32, pos math32.Vector3) *xyz.Camera {
	cam := xyz.NewPerspectiveCamera(fov, 1, near, far)
	cam.MoveTo(pos, math32.Vector3{})
	return cam
}

// gray returns a gray color of the given 0-1 value as 0xRRGGBB.
func gray(v float32) uint32 {
	c := uint32(math32.Round(math32.Clamp(v, 0, 1) * 255))
	return c<<16 | c<<8 | c
}

// phong returns a Phong material with the given color, shininess
// and specular color, all as 0xRRGGBB.
func phong(hex uint32, shininess float32, specular uint32) *xyz.Material {
	return xyz.NewPhong(hex).SetShininess(shininess).SetSpecular(colors.FromUint32(specular))
}
