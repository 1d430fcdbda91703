// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// vertex is a transformed mesh vertex.
type vertex struct {
	world  math32.Vector3
	normal math32.Vector3
	color  math32.Vector3
	clip   math32.Vector4
	depth  float32
}

// lerp interpolates all attributes linearly, which is correct in clip space.
func (v vertex) lerp(o vertex, t float32) vertex {
	return vertex{
		world:  v.world.Lerp(o.world, t),
		normal: v.normal.Lerp(o.normal, t),
		color:  v.color.Lerp(o.color, t),
		clip:   v.clip.Lerp(o.clip, t),
		depth:  v.depth + (o.depth-v.depth)*t,
	}
}

// nearDist is the signed distance to the near plane in clip space,
// which is non-negative for visible points.
func (v vertex) nearDist() float32 {
	return v.clip.Z + v.clip.W
}

// clipNear clips the polygon against the near plane.
func clipNear(poly []vertex) []vertex {
	var out []vertex
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		da, db := a.nearDist(), b.nearDist()
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, a.lerp(b, da/(da-db)))
		}
	}
	return out
}

// screenVertex is a vertex projected to buffer pixel coordinates.
type screenVertex struct {
	vertex
	x, y, z float32
	invW    float32
}

func (ps *pass) toScreen(v vertex) screenVertex {
	sv := screenVertex{vertex: v}
	w := v.clip.W
	if w == 0 {
		w = 1e-6
	}
	sv.invW = 1 / w
	ndc := v.clip.PerspDiv()
	sv.x = (ndc.X + 1) * 0.5 * float32(ps.rd.sw)
	sv.y = (1 - ndc.Y) * 0.5 * float32(ps.rd.sh)
	sv.z = ndc.Z
	return sv
}

// drawTriangle clips, culls and fills one triangle.
func (ps *pass) drawTriangle(mt *material, tri [3]vertex) {
	poly := tri[:]
	if tri[0].nearDist() < 0 || tri[1].nearDist() < 0 || tri[2].nearDist() < 0 {
		poly = clipNear(poly)
		if len(poly) < 3 {
			return
		}
	}
	sv := make([]screenVertex, len(poly))
	for i, v := range poly {
		sv[i] = ps.toScreen(v)
	}
	for i := 1; i+1 < len(sv); i++ {
		ps.fillTriangle(mt, sv[0], sv[i], sv[i+1])
	}
}

// fillTriangle fills a screen-space triangle with perspective-correct
// interpolation of the vertex attributes.
func (ps *pass) fillTriangle(mt *material, a, b, c screenVertex) {
	area := math32.EdgeFunction(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	// y points down on screen, so counter-clockwise front faces have negative area
	front := area < 0
	switch mt.Side {
	case xyz.FrontSide:
		if !front {
			return
		}
	case xyz.BackSide:
		if front {
			return
		}
	}
	flip := !front
	ps.rd.Stats.Triangles++

	rd := ps.rd
	minX := max(int(math32.Floor(math32.Min(a.x, math32.Min(b.x, c.x)))), 0)
	maxX := min(int(math32.Ceil(math32.Max(a.x, math32.Max(b.x, c.x)))), rd.sw-1)
	minY := max(int(math32.Floor(math32.Min(a.y, math32.Min(b.y, c.y)))), 0)
	maxY := min(int(math32.Ceil(math32.Max(a.y, math32.Max(b.y, c.y)))), rd.sh-1)
	if minX > maxX || minY > maxY {
		return
	}
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := math32.EdgeFunction(b.x, b.y, c.x, c.y, px, py) / area
			w1 := math32.EdgeFunction(c.x, c.y, a.x, a.y, px, py) / area
			w2 := math32.EdgeFunction(a.x, a.y, b.x, b.y, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*b.z + w2*c.z
			i := y*rd.sw + x
			if z < -1 || z > 1 || z > rd.depth[i] {
				continue
			}
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			sum := p0 + p1 + p2
			if sum == 0 {
				continue
			}
			p0, p1, p2 = p0/sum, p1/sum, p2/sum
			pos := a.world.MulScalar(p0).Add(b.world.MulScalar(p1)).Add(c.world.MulScalar(p2))
			norm := a.normal.MulScalar(p0).Add(b.normal.MulScalar(p1)).Add(c.normal.MulScalar(p2)).Normal()
			if flip {
				norm = norm.Negate()
			}
			base := a.color.MulScalar(p0).Add(b.color.MulScalar(p1)).Add(c.color.MulScalar(p2))
			depth := p0*a.depth + p1*b.depth + p2*c.depth
			ps.plot(x, y, z, ps.shade(mt, pos, norm, base, depth), mt.opacity)
		}
	}
}
