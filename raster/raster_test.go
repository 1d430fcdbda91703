// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"testing"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns a square in the XY plane facing +Z with the given half size.
func quad(name string, half float32) *xyz.GenMesh {
	pos := []math32.Vector3{
		math32.Vec3(-half, -half, 0), math32.Vec3(half, -half, 0),
		math32.Vec3(half, half, 0), math32.Vec3(-half, half, 0),
	}
	return xyz.NewGenMesh(name, pos, []uint32{0, 1, 2, 0, 2, 3}, nil)
}

func orthoCamera() *xyz.Camera {
	cam := xyz.NewOrthographicCamera(-2, 2, 2, -2, 0.1, 100)
	cam.SetPos(0, 0, 10)
	return cam
}

func center(rd *Renderer) color.RGBA {
	sz := rd.Size()
	return rd.Image().RGBAAt(sz.X/2, sz.Y/2)
}

func TestClearColor(t *testing.T) {
	rd := New(8, 8, Options{})
	sc := xyz.NewScene("scene")
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(rd))

	rd.SetClearColor(colors.White)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, colors.White, center(rd))

	sc.SetBackground(colors.FromUint32(0xAAAAAA))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, colors.FromUint32(0xAAAAAA), center(rd))
}

func TestBasicFill(t *testing.T) {
	rd := New(16, 16, Options{})
	sc := xyz.NewScene("scene")
	xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewBasic(0xFF0000))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, colors.Red, center(rd))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rd.Image().RGBAAt(0, 0))
	assert.Equal(t, 1, rd.Stats.Solids)
	assert.Equal(t, 2, rd.Stats.Triangles)
}

func TestDepthOrder(t *testing.T) {
	for _, nearFirst := range []bool{true, false} {
		rd := New(16, 16, Options{})
		sc := xyz.NewScene("scene")
		add := func(name string, hex uint32, z float32) {
			xyz.NewSolid(sc, name).SetMesh(quad(name, 1)).SetMaterial(xyz.NewBasic(hex)).SetPos(0, 0, z)
		}
		if nearFirst {
			add("near", 0x00FF00, 1)
			add("far", 0xFF0000, -1)
		} else {
			add("far", 0xFF0000, -1)
			add("near", 0x00FF00, 1)
		}
		require.NoError(t, rd.Render(sc, orthoCamera()))
		assert.Equal(t, colors.Green, center(rd), "near first: %v", nearFirst)
	}
}

func TestCulling(t *testing.T) {
	rd := New(16, 16, Options{})
	sc := xyz.NewScene("scene")
	sld := xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewBasic(0xFF0000))
	sld.SetAxisRotation(0, 1, 0, 180)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(rd))

	sld.Material.SetSide(xyz.DoubleSide)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, colors.Red, center(rd))

	sld.Material.SetSide(xyz.BackSide)
	sld.SetAxisRotation(0, 1, 0, 0)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(rd))
}

func TestVertexColors(t *testing.T) {
	rd := New(32, 32, Options{})
	sc := xyz.NewScene("scene")
	pos := []math32.Vector3{math32.Vec3(-1.5, -1.5, 0), math32.Vec3(1.5, -1.5, 0), math32.Vec3(0, 1.5, 0)}
	clr := []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)}
	mt := xyz.NewBasic(0xFFFFFF).SetVertexColors(true)
	xyz.NewSolid(sc, "tri").SetMesh(xyz.NewGenMesh("tri", pos, []uint32{0, 1, 2}, clr)).SetMaterial(mt)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	c := rd.Image().RGBAAt(16, 18)
	assert.Greater(t, c.R, uint8(40))
	assert.Greater(t, c.G, uint8(40))
	assert.Greater(t, c.B, uint8(40))
	// near the red corner
	c = rd.Image().RGBAAt(7, 26)
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.R, c.B)
}

func TestLighting(t *testing.T) {
	rd := New(16, 16, Options{})
	sc := xyz.NewScene("scene")
	xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewLambert(0xFFFFFF))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, center(rd), "unlit lambert is black")

	xyz.NewAmbientLight(sc, "ambient", 0x404040, 1)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.InDelta(t, 0x40, int(center(rd).R), 2)

	xyz.NewDirLight(sc, "dir", 0xFFFFFF, 0.5).SetPos(0, 0, 1)
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.InDelta(t, 0x40+128, int(center(rd).R), 3)
}

func TestTransparency(t *testing.T) {
	rd := New(16, 16, Options{ClearColor: colors.White})
	sc := xyz.NewScene("scene")
	xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewBasic(0x000000).SetOpacity(0.5))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.InDelta(t, 128, int(center(rd).R), 2)
}

func TestFog(t *testing.T) {
	rd := New(16, 16, Options{})
	sc := xyz.NewScene("scene")
	sc.SetFog(xyz.NewFog(0x0000FF, 1, 5))
	xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewBasic(0xFF0000))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, colors.Blue, center(rd), "quad beyond fog far is all fog")
}

func TestLines(t *testing.T) {
	rd := New(16, 16, Options{})
	sc := xyz.NewScene("scene")
	xyz.NewSolid(sc, "axes").SetMesh(xyz.NewAxes("axes", 10)).SetMaterial(xyz.NewBasic(0xFFFFFF))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, 3, rd.Stats.Lines)
	c := rd.Image().RGBAAt(12, 8)
	assert.Greater(t, c.R, uint8(200), "x axis is red")
}

func TestAntialias(t *testing.T) {
	rd := New(16, 16, Options{Antialias: true})
	sc := xyz.NewScene("scene")
	xyz.NewSolid(sc, "quad").SetMesh(quad("quad", 1)).SetMaterial(xyz.NewBasic(0xFF0000))
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, 16, rd.Image().Bounds().Dx())
	assert.Equal(t, colors.Red, center(rd))

	rd.SetSize(20, 10)
	assert.Equal(t, 20, rd.Size().X)
	assert.Equal(t, 10, rd.Image().Bounds().Dy())
}

func TestDisposed(t *testing.T) {
	rd := New(4, 4, Options{})
	sc := xyz.NewScene("scene")
	ms := quad("quad", 1)
	xyz.NewSolid(sc, "quad").SetMesh(ms).SetMaterial(xyz.NewBasic(0xFF0000))
	ms.Dispose()
	require.NoError(t, rd.Render(sc, orthoCamera()))
	assert.Equal(t, 0, rd.Stats.Solids)

	rd.Dispose()
	assert.ErrorIs(t, rd.Render(sc, orthoCamera()), ErrDisposed)
}
