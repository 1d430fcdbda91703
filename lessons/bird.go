// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"strings"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// NewDrinkingBird models the drinking bird toy from primitives.
func NewDrinkingBird(m Mount, width, height int) *Demo {
	cam := perspective(45, 1, 40000, math32.Vec3(-480, 659, -619))
	d := newDemo("drinking-bird", "Drinking Bird", width, height, cam, math32.Vec3(4, 301, 92))
	sc := d.Scene
	d.Renderer.SetClearColor(colors.FromUint32(0xAAAAAA))
	sc.SetFog(xyz.NewFog(0x808080, 2000, 4000))
	addStudioLights(sc, 0.7, math32.Vec3(200, 500, 500), math32.Vec3(-200, -100, -400))

	bird := xyz.NewGroup(sc, "DrinkingBird")
	addBirdSupport(bird)
	addBirdBody(bird)
	addBirdHead(bird)

	bar := xyz.NewSolid(bird, "Crossbar").SetMesh(xyz.NewCylinder("crossbar", 5, 5, 200, 32)).
		SetMaterial(phong(0x808080, 400, 0xFFFFFF))
	bar.SetPos(0, 360, 0).SetEulerRotation(90, 0, 0)

	addAxes(sc, 600)
	return d.start(m)
}

// addBirdSupport adds the base, legs and feet. The right side
// is a mirror of the left across the XY plane.
func addBirdSupport(parent xyz.Node) {
	legMat := phong(0xADA79B, 4, gray(0.5))
	footMat := phong(0x960F0B, 30, gray(0.5))

	const footHeight = 52
	const legZ = 77 + 6/2
	xyz.NewSolid(parent, "Base").SetMesh(xyz.NewBox("base", 20+64+110, 4, 2*77)).
		SetMaterial(footMat).SetPos(-45, 4/2, 0)

	left := []*xyz.Solid{
		xyz.NewSolid(parent, "LeftFoot").SetMesh(xyz.NewBox("foot", 20+64+110, footHeight, 6)).
			SetMaterial(footMat).SetPos(-45, footHeight/2, legZ),
		xyz.NewSolid(parent, "LeftAnkle").SetMesh(xyz.NewBox("ankle", 64, 104-footHeight, 6)).
			SetMaterial(footMat).SetPos(0, 104/2+footHeight/2, legZ),
		xyz.NewSolid(parent, "LeftLeg").SetMesh(xyz.NewBox("leg", 60, 334-footHeight, 6)).
			SetMaterial(legMat).SetPos(0, 104+(334-footHeight)/2, legZ),
	}
	for _, ls := range left {
		rs := ls.Clone()
		rs.SetName(strings.Replace(ls.Name, "Left", "Right", 1))
		rs.Pose.Pos.Z *= -1
		parent.AsNodeBase().AddChild(rs)
	}
}

// addBirdBody adds the body, its cap and spine, and the glass around them.
func addBirdBody(parent xyz.Node) {
	bodyMat := phong(0x1F56A9, 100, gray(0.5))
	glassMat := phong(0x000000, 100, 0xFFFFFF).SetOpacity(0.3)

	xyz.NewSolid(parent, "Body").
		SetMesh(xyz.NewSphereSection("body", 104/2, 32, 16, 0, 2*math32.Pi, math32.Pi/2, math32.Pi)).
		SetMaterial(bodyMat).SetPos(0, 160, 0)
	xyz.NewSolid(parent, "BodyCap").SetMesh(xyz.NewCylinder("body-cap", 104/2, 104/2, 0, 32)).
		SetMaterial(bodyMat).SetPos(0, 160, 0)
	xyz.NewSolid(parent, "Spine").SetMesh(xyz.NewCylinder("spine", 12/2, 12/2, 390-100, 32)).
		SetMaterial(bodyMat).SetPos(0, 160+390/2-100, 0)
	xyz.NewSolid(parent, "GlassBody").SetMesh(xyz.NewSphere("glass-body", 116/2, 32, 16)).
		SetMaterial(glassMat).SetPos(0, 160, 0)
	xyz.NewSolid(parent, "GlassSpine").SetMesh(xyz.NewCylinder("glass-spine", 24/2, 24/2, 390, 32)).
		SetMaterial(glassMat).SetPos(0, 160+390/2, 0)
}

// addBirdHead adds the head, hat, eyes and nose.
func addBirdHead(parent xyz.Node) {
	headMat := xyz.NewLambert(0x680105)
	hatMat := phong(0x18264D, 100, gray(0.5))

	const headRadius = 104 / 2
	const headY = 160 + 390
	xyz.NewSolid(parent, "Head").SetMesh(xyz.NewSphere("head", headRadius, 32, 16)).
		SetMaterial(headMat).SetPos(0, headY, 0)
	xyz.NewSolid(parent, "HatBrim").SetMesh(xyz.NewCylinder("hat-brim", 142/2, 142/2, 10, 32)).
		SetMaterial(hatMat).SetPos(0, headY+40, 0)
	xyz.NewSolid(parent, "HatBody").SetMesh(xyz.NewCylinder("hat-body", 80/2, 80/2, 70, 32)).
		SetMaterial(hatMat).SetPos(0, headY+headRadius, 0)

	eyeMesh := xyz.NewSphere("eye", 10, 32, 16)
	eyeMat := phong(0x000000, 4, 0x303030)
	for _, rot := range []float32{20, -20} {
		eye := xyz.NewGroup(parent, "Eye").SetEulerRotation(0, rot, 0)
		xyz.NewSolid(eye, "Sphere").SetMesh(eyeMesh).SetMaterial(eyeMat).SetPos(-48, 560, 0)
	}

	xyz.NewSolid(parent, "Nose").SetMesh(xyz.NewCylinder("nose", 6, 14, 70, 32)).
		SetMaterial(headMat).SetPos(-70, 530, 0).SetEulerRotation(0, 0, 90)
}
