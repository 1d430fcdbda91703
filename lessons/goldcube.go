// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// NewGoldCube shows a gold wireframe cube with two grid planes and axes.
func NewGoldCube(m Mount, width, height int) *Demo {
	cam := perspective(45, 1, 4000, math32.Vec3(-200, 200, -150))
	d := newDemo("gold-cube", "Gold Cube", width, height, cam, math32.Vector3{})
	sc := d.Scene
	xyz.NewAmbientLight(sc, "ambient", 0x222222, 1)

	gold := xyz.NewMaterial(xyz.Basic, errors.Log1(colors.FromHex("#FFDF00"))).SetWireframe(true)
	xyz.NewSolid(sc, "gold-cube").SetMesh(xyz.NewBox("cube", 100, 100, 100)).SetMaterial(gold)

	addGrid(sc, "xz-grid", 1000, 10, 0, 0)
	addGrid(sc, "yz-grid", 1000, 10, 0, math32.Pi/2)
	addAxes(sc, 200)
	return d.start(m)
}
