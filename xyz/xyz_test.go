// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/lessons/base/tolassert"
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.True(t, want.IsEqualTol(got, 1e-3), "want %v, got %v", want, got)
}

func TestTree(t *testing.T) {
	sc := NewScene("scene")
	robot := NewGroup(sc, "robot")
	body := NewGroup(robot, "body")
	arm := NewSolid(body, "arm")
	NewSolid(robot, "base")

	assert.Equal(t, "/scene/robot/body/arm", arm.Path())
	assert.Equal(t, Node(body), robot.ChildByName("body"))
	assert.Nil(t, robot.ChildByName("arm"))
	assert.Equal(t, Node(arm), sc.FindByName("arm"))
	assert.Nil(t, sc.FindByName("leg"))

	var names []string
	sc.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return n.AsNodeBase().Name != "body"
	})
	assert.Equal(t, []string{"scene", "robot", "body", "base"}, names)

	base := sc.FindByName("base")
	body.AddChild(base)
	assert.Equal(t, 1, robot.NumChildren())
	assert.Equal(t, Node(body), base.AsNodeBase().Parent())
}

func TestWorldMatrix(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group").SetPos(0, 100, 0).SetEulerRotation(0, 0, 90)
	sld := NewSolid(gp, "solid").SetPos(10, 0, 0)
	sc.UpdateWorldMatrices()
	// child +X offset is rotated onto +Y by the parent
	assertVector(t, math32.Vec3(0, 110, 0), sld.Pose.WorldPos())

	gp.Pose.Pos.Set(0, 0, 0)
	sc.UpdateWorldMatrices()
	assertVector(t, math32.Vec3(0, 10, 0), sld.Pose.WorldPos())

	var fixed math32.Matrix4
	fixed.SetTranslation(5, 5, 5)
	sld.Pose.SetMatrix(&fixed)
	sld.Pose.Pos.Set(100, 100, 100)
	sc.UpdateWorldMatrices()
	assertVector(t, math32.Vec3(-5, 5, 5), sld.Pose.WorldPos())
}

func TestEulerOrder(t *testing.T) {
	// rotate X first then Z, in the object's own frame
	var ps Pose
	ps.Defaults()
	ps.SetEulerRotation(90, 0, 90)
	ps.UpdateMatrix()
	assertVector(t, math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0).MulMatrix4(&ps.Matrix))
	assertVector(t, math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0).MulQuat(ps.Quat))
}

func TestClone(t *testing.T) {
	sc := NewScene("scene")
	mat := NewLambert(0xADA79B)
	box := NewBox("box", 1, 2, 3)
	leg := NewSolid(sc, "leg").SetMesh(box).SetMaterial(mat).SetPos(0, 245, 80)
	right := leg.Clone()
	right.Pose.Pos.Z = -right.Pose.Pos.Z
	sc.AddChild(right)

	assert.Equal(t, float32(80), leg.Pose.Pos.Z)
	assert.Equal(t, float32(-80), right.Pose.Pos.Z)
	assert.Same(t, mat, right.Material)
	assert.Equal(t, Mesh(box), right.Mesh)
	assert.Equal(t, 2, sc.NumChildren())
	assert.Equal(t, "/scene/leg", right.Path())

	gp := NewGroup(nil, "petal")
	NewSolid(gp, "cone").SetMesh(box).SetMaterial(mat)
	cg := gp.Clone()
	require.Equal(t, 1, cg.NumChildren())
	assert.NotSame(t, gp.Children()[0], cg.Children()[0])
	assert.Equal(t, Node(cg), cg.Children()[0].AsNodeBase().Parent())
}

func checkNormalsOutward(t *testing.T, ms *MeshBase) {
	t.Helper()
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		a, b, c := ms.Positions[ms.Indices[i]], ms.Positions[ms.Indices[i+1]], ms.Positions[ms.Indices[i+2]]
		fn := b.Sub(a).Cross(c.Sub(a))
		if fn.LengthSquared() < 1e-8 {
			continue
		}
		cen := a.Add(b).Add(c).DivScalar(3)
		assert.True(t, fn.Dot(cen) > -1e-3, "triangle %d wound inward", i/3)
	}
}

func TestBox(t *testing.T) {
	bx := NewBox("box", 2, 4, 6)
	assert.Equal(t, 24, bx.NumVertex())
	assert.Equal(t, 36, bx.NumIndex())
	assert.Equal(t, math32.Vec3(-1, -2, -3), bx.BBox.Min)
	assert.Equal(t, math32.Vec3(1, 2, 3), bx.BBox.Max)
	checkNormalsOutward(t, &bx.MeshBase)
}

func TestSphere(t *testing.T) {
	sp := NewSphere("sphere", 400, 64, 32)
	assert.Equal(t, 65*33, sp.NumVertex())
	// poles get one triangle per segment
	assert.Equal(t, (64*32*2-2*64)*3, sp.NumIndex())
	tolassert.EqualTol(t, 400, sp.BBox.Max.Y, 1e-2)
	checkNormalsOutward(t, &sp.MeshBase)

	top := NewSphereSection("cap", 1, 32, 16, 0, 2*math32.Pi, 0, math32.Pi/2)
	tolassert.EqualTol(t, 0, top.BBox.Min.Y, 1e-5)
	tolassert.EqualTol(t, 1, top.BBox.Max.Y, 1e-5)
	checkNormalsOutward(t, &top.MeshBase)

	bottom := NewSphereSection("cap", 1, 32, 16, 0, 2*math32.Pi, math32.Pi/2, math32.Pi/2)
	tolassert.EqualTol(t, -1, bottom.BBox.Min.Y, 1e-5)
	tolassert.EqualTol(t, 0, bottom.BBox.Max.Y, 1e-5)
	checkNormalsOutward(t, &bottom.MeshBase)
}

func TestCylinder(t *testing.T) {
	cy := NewCylinder("cyl", 50, 12, 30, 18)
	// torso + 2 caps
	assert.Equal(t, 2*19+2*(18+19), cy.NumVertex())
	assert.Equal(t, (18*2+2*18)*3, cy.NumIndex())
	tolassert.EqualTol(t, 15, cy.BBox.Max.Y, 1e-5)
	tolassert.EqualTol(t, -15, cy.BBox.Min.Y, 1e-5)
	tolassert.EqualTol(t, 50, cy.BBox.Max.X, 1e-3)
	checkNormalsOutward(t, &cy.MeshBase)

	cone := NewCylinder("cone", 15, 0, 120, 32)
	assert.Equal(t, 2*33+32+33, cone.NumVertex())
	for _, n := range cone.Normals {
		assert.False(t, math32.IsNaN(n.X))
	}

	disc := NewCylinder("disc", 52, 52, 0, 32)
	for _, n := range disc.Normals {
		assert.False(t, math32.IsNaN(n.Y))
	}

	open := NewCylinderSector("open", 1, 1, 2, 8, 1, true)
	assert.Equal(t, 18, open.NumVertex())
}

func TestTorus(t *testing.T) {
	tr := NewTorus("torus", 22, 15, 32, 32)
	assert.Equal(t, 33*33, tr.NumVertex())
	assert.Equal(t, 32*32*6, tr.NumIndex())
	tolassert.EqualTol(t, 37, tr.BBox.Max.X, 1e-3)
	tolassert.EqualTol(t, 15, tr.BBox.Max.Z, 1e-3)
	for i, p := range tr.Positions {
		ring := math32.Vec3(p.X, p.Y, 0).Normal().MulScalar(22)
		tolassert.EqualTol(t, 15, p.DistanceTo(ring), 1e-3)
		assertVector(t, p.Sub(ring).Normal(), tr.Normals[i])
	}
}

func TestGenMesh(t *testing.T) {
	pts := []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 2, Y: 3, Z: 0}}
	clrs := []math32.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	ms := NewGenMesh("tri", pts, []uint32{0, 1, 2}, clrs)
	assert.True(t, ms.HasColor())
	for _, n := range ms.Normals {
		assertVector(t, math32.Vec3(0, 0, 1), n)
	}
	ms.Dispose()
	assert.True(t, ms.IsDisposed())
	assert.Equal(t, 0, ms.NumVertex())
}

func TestHelpers(t *testing.T) {
	ax := NewAxes("axes", 200)
	assert.True(t, ax.Lines)
	assert.Equal(t, 6, ax.NumIndex())
	assert.Equal(t, math32.Vec3(200, 200, 200), ax.BBox.Max)

	gr := NewGrid("grid", 1000, 10)
	assert.Equal(t, 44, gr.NumVertex())
	assert.Equal(t, colors.ToVector3(GridCenterColor), gr.Colors[20])
	assert.Equal(t, colors.ToVector3(GridColor), gr.Colors[0])
	tolassert.EqualTol(t, 0, gr.BBox.Size().Y, 1e-6)

	// rotate the grid geometry onto the XY plane
	var rot math32.Matrix4
	rot.SetRotationFromQuat(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/2))
	gr.ApplyMatrix(&rot)
	tolassert.EqualTol(t, 0, gr.BBox.Size().Z, 1e-3)
	tolassert.EqualTol(t, 1000, gr.BBox.Size().Y, 1e-3)
}

func TestMaterial(t *testing.T) {
	mt := NewPhong(0x1F56A9).SetShininess(100).SetSpecular(colors.FromUint32(0x808080))
	assert.Equal(t, Phong, mt.Kind)
	assert.False(t, mt.IsTransparent())
	glass := NewPhong(0).SetOpacity(0.3)
	assert.True(t, glass.IsTransparent())
	assert.Equal(t, "Lambert", Lambert.String())
}

func TestCamera(t *testing.T) {
	cm := NewPerspectiveCamera(45, 2, 1, 4000)
	cm.SetPos(-200, 200, -150)
	assertVector(t, math32.Vec3(-200, 200, -150), cm.WorldMatrix.Position())
	o := math32.Vector3{}.MulMatrix4(cm.ViewProjection())
	tolassert.EqualTol(t, 0, o.X, 1e-5)
	tolassert.EqualTol(t, 0, o.Y, 1e-5)

	cm.SetAspect(0.5)
	assert.Equal(t, float32(0.5), cm.Aspect)
	tolassert.EqualTol(t, 1/math32.Tan(math32.DegToRad(22.5))/0.5, cm.ProjectionMatrix[0], 1e-4)

	oc := NewOrthographicCamera(-30, 30, 30, -30, 0, 60)
	oc.SetPos(5, 5, 20)
	oc.LookAt(math32.Vec3(5, 5, 0), math32.Vector3{})
	p := math32.Vec3(20, 5, 0).MulMatrix4(oc.ViewProjection())
	assert.True(t, p.X > 0.45 && p.X < 0.55, "x: %v", p.X)
	oc.Zoom = 2
	oc.UpdateProjection()
	p = math32.Vec3(20, 5, 0).MulMatrix4(oc.ViewProjection())
	assert.True(t, p.X > 0.9 && p.X < 1.1, "x: %v", p.X)
}

func TestFogAndLights(t *testing.T) {
	fg := NewFog(0x808080, 3000, 6000)
	assert.Equal(t, float32(0), fg.Factor(1000))
	assert.Equal(t, float32(1), fg.Factor(7000))
	assert.Equal(t, float32(0.5), fg.Factor(4500))

	sc := NewScene("scene")
	NewAmbientLight(sc, "ambient", 0x222222, 1)
	dl := NewDirLight(sc, "dir", 0xffffff, 0.7).SetPos(-800, 900, 300)
	assert.Len(t, sc.Lights, 2)
	assert.Equal(t, Light(dl), sc.LightByName("dir"))
	tolassert.EqualTol(t, 1, dl.Dir().Length(), 1e-5)
	assertVector(t, math32.Vec3(0.7, 0.7, 0.7), dl.Radiance())
	dl.On = false
	assert.Equal(t, math32.Vector3{}, dl.Radiance())
}

func TestSceneDispose(t *testing.T) {
	sc := NewScene("scene")
	mat := NewBasic(0xFFDF00).SetWireframe(true)
	box := NewBox("cube", 100, 100, 100)
	NewSolid(sc, "cube").SetMesh(box).SetMaterial(mat)
	hidden := NewGroup(sc, "hidden")
	hidden.Invisible = true
	NewSolid(hidden, "inner").SetMesh(box).SetMaterial(mat)
	assert.Len(t, sc.Solids(), 1)

	sc.Dispose()
	assert.True(t, box.IsDisposed())
	assert.True(t, mat.IsDisposed())
	assert.Equal(t, 0, sc.NumChildren())
	assert.Empty(t, sc.Solids())
}

func TestCameraMoveTo(t *testing.T) {
	cm := NewPerspectiveCamera(45, 1, 1, 100)
	cm.MoveTo(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, -1))
	assert.Equal(t, math32.Vec3(0, 0, 5), cm.Position())
	assert.Equal(t, math32.Vec3(0, 0, -1), cm.Target)
	assert.True(t, cm.ViewVector().IsEqualTol(math32.Vec3(0, 0, 6), 1e-6))
	v := cm.View()
	assertVector(t, math32.Vec3(0, 0, -5), math32.Vector3{}.MulMatrix4(&v))

	oc := NewOrthographicCamera(-1, 1, 1, -1, 0, 10)
	assert.Equal(t, float32(1), oc.OrthoZoom())
	oc.ScaleZoom(3)
	assert.Equal(t, float32(3), oc.OrthoZoom())
}
