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

// Stairway dimensions.
const (
	NumStairs      = 6
	stepWidth      = 500
	stepSize       = 200
	stepThickness  = 50
	stepRiseHeight = stepSize + stepThickness
	stepRunDepth   = 2*stepSize - stepThickness
)

// NewStairway builds a stairway of boxes leading up to a cup.
func NewStairway(m Mount, width, height int) *Demo {
	cam := perspective(45, 1, 40000, math32.Vec3(-700, 500, -1600))
	d := newDemo("stairway", "Stairway", width, height, cam, math32.Vec3(0, 600, 0))
	sc := d.Scene
	d.Renderer.SetClearColor(colors.FromUint32(0xAAAAAA))
	sc.SetFog(xyz.NewFog(0x808080, 3000, 6000))
	addStudioLights(sc, 1, math32.Vec3(200, 400, 500), math32.Vec3(-400, 200, -300))

	cupMat := xyz.NewLambert(0xFDD017)
	xyz.NewSolid(sc, "Cup").SetMesh(xyz.NewCylinder("cup", 200, 50, 400, 32)).
		SetMaterial(cupMat).SetPos(0, 1725, 1925)
	xyz.NewSolid(sc, "CupBase").SetMesh(xyz.NewCylinder("cup-base", 100, 100, 50, 32)).
		SetMaterial(cupMat).SetPos(0, 1525, 1925)

	vertMat := xyz.NewLambert(0xA85F35)
	horizMat := xyz.NewLambert(0xBC7349)
	vert := xyz.NewBox("step-vertical", stepWidth, stepSize, stepThickness)
	horiz := xyz.NewBox("step-horizontal", stepWidth, stepThickness, 2*stepSize)
	for n := range NumStairs {
		fn := float32(n)
		xyz.NewSolid(sc, fmt.Sprintf("StepVertical%d", n)).SetMesh(vert).SetMaterial(vertMat).
			SetPos(0, stepSize/2+fn*stepRiseHeight, fn*stepRunDepth)
		xyz.NewSolid(sc, fmt.Sprintf("StepHorizontal%d", n)).SetMesh(horiz).SetMaterial(horizMat).
			SetPos(0, stepThickness/2+stepSize+fn*stepRiseHeight, stepSize-stepThickness/2+fn*stepRunDepth)
	}
	addAxes(sc, 1000)
	return d.start(m)
}
