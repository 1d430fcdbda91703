// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// dirLight is a directional light resolved for shading.
type dirLight struct {
	dir      math32.Vector3
	radiance math32.Vector3
}

// pass holds the per-render state shared by all solids.
type pass struct {
	rd *Renderer

	view     math32.Matrix4
	viewProj *math32.Matrix4
	camPos   math32.Vector3

	ambient math32.Vector3
	lights  []dirLight

	fog      *xyz.Fog
	fogColor math32.Vector3
}

func newPass(rd *Renderer, sc *xyz.Scene, cam *xyz.Camera) *pass {
	ps := &pass{rd: rd}
	cam.UpdateMatrix()
	ps.view = cam.View()
	ps.viewProj = cam.ViewProjection()
	ps.camPos = cam.Position()
	for _, lt := range sc.Lights {
		switch l := lt.(type) {
		case *xyz.AmbientLight:
			ps.ambient.SetAdd(l.Radiance())
		case *xyz.DirLight:
			if !l.On || l.Pos.IsNil() {
				continue
			}
			ps.lights = append(ps.lights, dirLight{dir: l.Dir(), radiance: l.Radiance()})
		}
	}
	if sc.Fog != nil {
		ps.fog = sc.Fog
		ps.fogColor = colors.ToVector3(sc.Fog.Color)
	}
	return ps
}

// viewDepth returns the distance of the world point in front of the camera.
func (ps *pass) viewDepth(p math32.Vector3) float32 {
	m := &ps.view
	return -(m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14])
}

// material is a solid's material resolved for shading.
type material struct {
	*xyz.Material
	color    math32.Vector3
	emissive math32.Vector3
	specular math32.Vector3
	opacity  float32
	vertex   bool
}

func newMaterial(mt *xyz.Material, ms *xyz.MeshBase) *material {
	m := &material{Material: mt}
	m.color = colors.ToVector3(mt.Color)
	m.emissive = colors.ToVector3(mt.Emissive)
	m.specular = colors.ToVector3(mt.Specular)
	m.opacity = 1
	if mt.IsTransparent() {
		m.opacity = math32.Clamp(mt.Opacity, 0, 1)
	}
	// line helpers always carry their own colors
	m.vertex = (mt.VertexColors || ms.Lines) && ms.HasColor()
	return m
}

// shade returns the lit color of a surface point with the given world
// position, unit normal, base color and view depth, including fog.
func (ps *pass) shade(mt *material, pos, norm, base math32.Vector3, depth float32) math32.Vector3 {
	c := base
	switch mt.Kind {
	case xyz.Lambert, xyz.Phong:
		diffuse := ps.ambient
		var spec math32.Vector3
		var toEye math32.Vector3
		if mt.Kind == xyz.Phong {
			toEye = ps.camPos.Sub(pos).Normal()
		}
		for _, lt := range ps.lights {
			ndl := norm.Dot(lt.dir)
			if ndl <= 0 {
				continue
			}
			diffuse.SetAdd(lt.radiance.MulScalar(ndl))
			if mt.Kind == xyz.Phong {
				half := lt.dir.Add(toEye).Normal()
				ndh := math32.Max(norm.Dot(half), 0)
				s := math32.Pow(ndh, math32.Max(mt.Shininess, 1))
				spec.SetAdd(lt.radiance.Mul(mt.specular).MulScalar(s))
			}
		}
		c = base.Mul(diffuse).Add(spec)
	}
	c.SetAdd(mt.emissive)
	return ps.applyFog(c, depth)
}

func (ps *pass) applyFog(c math32.Vector3, depth float32) math32.Vector3 {
	if ps.fog == nil {
		return c
	}
	return c.Lerp(ps.fogColor, ps.fog.Factor(depth))
}

// plot writes the color at the buffer pixel if it passes the depth test,
// blending with the given opacity.
func (ps *pass) plot(x, y int, z float32, c math32.Vector3, opacity float32) {
	rd := ps.rd
	if x < 0 || y < 0 || x >= rd.sw || y >= rd.sh || z < -1 || z > 1 {
		return
	}
	i := y*rd.sw + x
	if z > rd.depth[i] {
		return
	}
	rd.depth[i] = z
	if opacity < 1 {
		c = rd.color[i].Lerp(c, opacity)
	}
	rd.color[i] = c
}

// drawSolid draws all of the triangles or lines of the solid.
func (ps *pass) drawSolid(sld *xyz.Solid) {
	ms := sld.Mesh.AsMeshBase()
	mt := newMaterial(sld.Material, ms)
	world := &sld.Pose.WorldMatrix
	var nm math32.Matrix3
	nm.SetNormalMatrix(world)
	ps.rd.Stats.Solids++

	verts := make([]vertex, len(ms.Positions))
	for i, p := range ms.Positions {
		v := &verts[i]
		v.world = p.MulMatrix4(world)
		v.clip = v.world.MulMatrix4AsVector4(ps.viewProj, 1)
		v.depth = ps.viewDepth(v.world)
		if i < len(ms.Normals) {
			v.normal = ms.Normals[i].MulMatrix3(&nm).Normal()
		}
		v.color = mt.color
		if mt.vertex {
			v.color = mt.color.Mul(ms.Colors[i])
		}
	}

	if ms.Lines {
		for i := 0; i+1 < len(ms.Indices); i += 2 {
			a, b := verts[ms.Indices[i]], verts[ms.Indices[i+1]]
			ps.drawLine(mt, a, b)
		}
		return
	}
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		tri := [3]vertex{verts[ms.Indices[i]], verts[ms.Indices[i+1]], verts[ms.Indices[i+2]]}
		if mt.Wireframe {
			ps.drawWireframe(mt, tri)
			continue
		}
		ps.drawTriangle(mt, tri)
	}
}
