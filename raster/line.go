// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// drawWireframe draws the edges of the triangle as lines.
// Wireframe triangles are never culled.
func (ps *pass) drawWireframe(mt *material, tri [3]vertex) {
	ps.rd.Stats.Triangles++
	for i := range 3 {
		a, b := tri[i], tri[(i+1)%3]
		if mt.Kind != xyz.Basic {
			a.color = ps.shade(mt, a.world, a.normal, a.color, a.depth)
			b.color = ps.shade(mt, b.world, b.normal, b.color, b.depth)
		}
		ps.strokeLine(mt, a, b, mt.Kind == xyz.Basic)
	}
}

// drawLine draws one segment of a line mesh. Lines are unlit.
func (ps *pass) drawLine(mt *material, a, b vertex) {
	ps.rd.Stats.Lines++
	ps.strokeLine(mt, a, b, true)
}

// strokeLine rasterizes the segment with a thickness of one output pixel.
// If basic is set, the vertex colors are taken as unlit base colors
// and only emissive and fog are added.
func (ps *pass) strokeLine(mt *material, a, b vertex, basic bool) {
	a, b, ok := clipSegment(a, b)
	if !ok {
		return
	}
	sa, sb := ps.toScreen(a), ps.toScreen(b)
	dx, dy := sb.x-sa.x, sb.y-sa.y
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	half := ps.rd.ss / 2
	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		// perspective-correct parameter along the segment
		pt := t * sb.invW / ((1-t)*sa.invW + t*sb.invW)
		x := int(math32.Floor(sa.x + dx*t))
		y := int(math32.Floor(sa.y + dy*t))
		z := sa.z + (sb.z-sa.z)*t
		depth := sa.depth + (sb.depth-sa.depth)*pt
		c := sa.color.Lerp(sb.color, pt)
		if basic {
			c = ps.applyFog(c.Add(mt.emissive), depth)
		}
		for oy := -half; oy < ps.rd.ss-half; oy++ {
			for ox := -half; ox < ps.rd.ss-half; ox++ {
				ps.plot(x+ox, y+oy, z, c, mt.opacity)
			}
		}
	}
}

// clipPlanes are the signed distances of a clip space point to the
// near and side planes of the view volume, with a margin on the sides
// for line thickness.
var clipPlanes = []func(v math32.Vector4) float32{
	func(v math32.Vector4) float32 { return v.Z + v.W },
	func(v math32.Vector4) float32 { return 1.01*v.W + v.X },
	func(v math32.Vector4) float32 { return 1.01*v.W - v.X },
	func(v math32.Vector4) float32 { return 1.01*v.W + v.Y },
	func(v math32.Vector4) float32 { return 1.01*v.W - v.Y },
}

// clipSegment clips the segment to the view volume using the
// Liang-Barsky method, returning false if nothing is left.
func clipSegment(a, b vertex) (vertex, vertex, bool) {
	t0, t1 := float32(0), float32(1)
	for _, plane := range clipPlanes {
		da, db := plane(a.clip), plane(b.clip)
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			t0 = math32.Max(t0, da/(da-db))
		case db < 0:
			t1 = math32.Min(t1, da/(da-db))
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return a.lerp(b, t0), a.lerp(b, t1), true
}
