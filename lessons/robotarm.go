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

// Robot holds the jointed parts of the robot arm.
type Robot struct {
	Base      *xyz.Solid
	Body      *xyz.Group
	UpperArm  *xyz.Group
	Forearm   *xyz.Group
	LeftHand  *xyz.Group
	RightHand *xyz.Group
}

// Robot arm part lengths.
const (
	robotBodyLength     = 60
	robotUpperArmLength = 120
	robotForearmLength  = 80
	robotHandLength     = 38
)

// NewRobot builds the robot arm in a "Robot" group under parent:
// base and body, with the upper arm on the body, the forearm on the
// upper arm and both hands on the forearm.
func NewRobot(parent xyz.Node) *Robot {
	rb := &Robot{}
	grp := xyz.NewGroup(parent, "Robot")

	rb.Base = xyz.NewSolid(grp, "Base").SetMesh(xyz.NewTorus("base", 22, 15, 32, 32)).
		SetMaterial(phong(0x6E23BB, 20, 0x6E23BB)).SetEulerRotation(90, 0, 0)

	const bl = robotBodyLength
	rb.Body = xyz.NewGroup(grp, "Body")
	bodyMat := phong(0x279933, 100, 0x279933)
	xyz.NewSolid(rb.Body, "lower").SetMesh(xyz.NewCylinder("body-lower", 50, 12, bl/2, 18)).
		SetMaterial(bodyMat).SetPos(0, bl/4, 0)
	xyz.NewSolid(rb.Body, "upper").SetMesh(xyz.NewCylinder("body-upper", 12, 50, bl/2, 18)).
		SetMaterial(bodyMat).SetPos(0, 3*bl/4, 0)
	xyz.NewSolid(rb.Body, "box").SetMesh(xyz.NewBox("body-box", 12, bl/4, 110)).
		SetMaterial(bodyMat).SetPos(0, bl/2, 0)
	xyz.NewSolid(rb.Body, "sphere").SetMesh(xyz.NewSphere("body-sphere", 20, 32, 16)).
		SetMaterial(bodyMat).SetPos(0, bl, 0)

	const ul = robotUpperArmLength
	rb.UpperArm = xyz.NewGroup(rb.Body, "UpperArm").SetPos(0, bl, 0)
	upperMat := phong(0x95E4FB, 100, 0x95E4FB)
	xyz.NewSolid(rb.UpperArm, "box").SetMesh(xyz.NewBox("upper-arm", 18, ul, 18)).
		SetMaterial(upperMat).SetPos(0, ul/2, 0)
	xyz.NewSolid(rb.UpperArm, "sphere").SetMesh(xyz.NewSphere("upper-arm-sphere", 20, 32, 16)).
		SetMaterial(upperMat).SetPos(0, ul, 0)

	const fl = robotForearmLength
	rb.Forearm = xyz.NewGroup(rb.UpperArm, "Forearm").SetPos(0, ul, 0)
	foreMat := phong(0xF4C154, 100, 0xF4C154)
	xyz.NewSolid(rb.Forearm, "wrist").SetMesh(xyz.NewCylinder("forearm-wrist", 22, 22, 6, 32)).
		SetMaterial(foreMat)
	strut := xyz.NewBox("forearm-strut", 4, fl, 4)
	for i := range 4 {
		x, z := float32(8), float32(8)
		if i < 2 {
			x = -8
		}
		if i%2 == 1 {
			z = -8
		}
		xyz.NewSolid(rb.Forearm, "strut").SetMesh(strut).SetMaterial(foreMat).SetPos(x, fl/2, z)
	}
	xyz.NewSolid(rb.Forearm, "axle").SetMesh(xyz.NewCylinder("forearm-axle", 15, 15, 40, 32)).
		SetMaterial(foreMat).SetPos(0, fl, 0).SetEulerRotation(90, 0, 0)

	hand := xyz.NewBox("hand", 30, robotHandLength, 4)
	newHand := func(name string, hex uint32) *xyz.Group {
		gp := xyz.NewGroup(rb.Forearm, name).SetPos(0, fl, 0)
		xyz.NewSolid(gp, "box").SetMesh(hand).SetMaterial(phong(hex, 20, hex)).SetPos(0, robotHandLength/2, 0)
		return gp
	}
	rb.RightHand = newHand("RightHand", 0xDD3388)
	rb.LeftHand = newHand("LeftHand", 0xCC3399)
	return rb
}

// NewRobotPanel returns the joint angle panel of the robot arm, in degrees.
func NewRobotPanel() *params.Panel {
	const step = 0.025
	return params.NewPanel("Robot Arm").
		AddNumber("bodyY", "Body Y", 0, -180, 180, step).
		AddNumber("upperArmY", "Upper Arm Y", 70, -180, 180, step).
		AddNumber("upperArmZ", "Upper Arm Z", -15, -45, 45, step).
		AddNumber("forearmY", "Forearm Y", 10, -180, 180, step).
		AddNumber("forearmZ", "Forearm Z", 60, -120, 120, step).
		AddNumber("handZ", "Hand Z", 30, -45, 45, step).
		AddNumber("handSpread", "Hand Spread", 12, 2, 17, step)
}

// Apply sets the joint rotations and hand spread from the panel.
func (rb *Robot) Apply(pn *params.Panel) {
	rb.Body.SetEulerRotation(0, pn.Value("bodyY"), 0)
	rb.UpperArm.SetEulerRotation(0, pn.Value("upperArmY"), pn.Value("upperArmZ"))
	rb.Forearm.SetEulerRotation(0, pn.Value("forearmY"), pn.Value("forearmZ"))
	handZ := pn.Value("handZ")
	spread := pn.Value("handSpread")
	rb.LeftHand.SetEulerRotation(0, 0, handZ)
	rb.LeftHand.Pose.Pos.Z = spread
	rb.RightHand.SetEulerRotation(0, 0, handZ)
	rb.RightHand.Pose.Pos.Z = -spread
}

// NewRobotArm shows the robot arm with its joints driven by the panel.
func NewRobotArm(m Mount, width, height int) *Demo {
	cam := perspective(38, 1, 10000, math32.Vec3(-102, 177, 20))
	d := newDemo("robot-arm", "Robot Arm", width, height, cam, math32.Vec3(-13, 60, 2))
	sc := d.Scene
	d.Renderer.SetClearColor(colors.FromUint32(0xAAAAAA))
	sc.SetFog(xyz.NewFog(0x808080, 2000, 4000))
	addStudioLights(sc, 1, math32.Vec3(200, 400, 500), math32.Vec3(-500, 250, -200))

	rb := NewRobot(sc)
	d.Params = NewRobotPanel()
	d.OnFrame = func(d *Demo) {
		rb.Apply(d.Params)
	}
	return d.start(m)
}
