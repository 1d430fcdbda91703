// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"fmt"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// NumPetals is the number of petals of the flower.
const NumPetals = 24

// NewFlower builds a flower from a ring of tilted cone petals on a stem.
func NewFlower(m Mount, width, height int) *Demo {
	cam := perspective(38, 1, 10000, math32.Vec3(-200, 400, 20))
	d := newDemo("flower", "Flower", width, height, cam, math32.Vec3(0, 150, 0))
	sc := d.Scene
	d.Renderer.SetClearColor(colors.FromUint32(0xAAAAAA))
	sc.SetFog(xyz.NewFog(0x808080, 2000, 4000))
	addStudioLights(sc, 1, math32.Vec3(200, 400, 500), math32.Vec3(-500, 250, -200))

	const flowerHeight = 200
	const petalLength = 120
	const tilt = 20

	flower := xyz.NewGroup(sc, "Flower")
	petals := xyz.NewGroup(flower, "Petals")
	petalMat := xyz.NewLambert(0xCC5920)
	cone := xyz.NewCylinder("petal", 15, 0, petalLength, 32)
	for n := range NumPetals {
		angle := float32(360) / NumPetals * float32(n)
		petal := xyz.NewGroup(petals, fmt.Sprintf("Petal%d", n)).
			SetEulerRotation(0, angle, 90-tilt).SetPos(0, flowerHeight, 0)
		xyz.NewSolid(petal, "Cone").SetMesh(cone).SetMaterial(petalMat).
			SetScale(0.25, 1, 1).SetPos(0, petalLength/2, 0)
	}

	xyz.NewSolid(flower, "Stamen").SetMesh(xyz.NewSphere("stamen", 20, 32, 16)).
		SetMaterial(xyz.NewLambert(0x333310)).SetPos(0, flowerHeight, 0)
	xyz.NewSolid(flower, "Stem").SetMesh(xyz.NewCylinder("stem", 10, 10, flowerHeight, 32)).
		SetMaterial(xyz.NewLambert(0x339424)).SetPos(0, flowerHeight/2, 0)

	addAxes(sc, 300)
	return d.start(m)
}
