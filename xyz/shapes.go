// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/lessons/math32"
)

// Box is a rectangular-shaped solid (cuboid), centered at the origin.
type Box struct {
	MeshBase

	// size along each dimension
	Size math32.Vector3
}

// NewBox returns a Box mesh with given size
func NewBox(name string, width, height, depth float32) *Box {
	bx := &Box{}
	bx.Name = name
	bx.Size.Set(width, height, depth)
	bx.Build()
	return bx
}

// Build regenerates the vertex data from the current parameters.
func (bx *Box) Build() {
	bx.Reset()
	h := bx.Size.MulScalar(0.5)
	x := math32.Vec3(1, 0, 0)
	y := math32.Vec3(0, 1, 0)
	z := math32.Vec3(0, 0, 1)
	// each face: normal, u and v tangents with u x v = normal
	bx.face(x.MulScalar(h.X), z.MulScalar(-h.Z), y.MulScalar(h.Y), x)
	bx.face(x.MulScalar(-h.X), z.MulScalar(h.Z), y.MulScalar(h.Y), x.Negate())
	bx.face(y.MulScalar(h.Y), x.MulScalar(h.X), z.MulScalar(-h.Z), y)
	bx.face(y.MulScalar(-h.Y), x.MulScalar(h.X), z.MulScalar(h.Z), y.Negate())
	bx.face(z.MulScalar(h.Z), x.MulScalar(h.X), y.MulScalar(h.Y), z)
	bx.face(z.MulScalar(-h.Z), x.MulScalar(-h.X), y.MulScalar(h.Y), z.Negate())
	bx.UpdateBBox()
}

func (bx *Box) face(center, u, v, norm math32.Vector3) {
	i0 := bx.AddVertex(center.Sub(u).Sub(v), norm)
	i1 := bx.AddVertex(center.Add(u).Sub(v), norm)
	i2 := bx.AddVertex(center.Add(u).Add(v), norm)
	i3 := bx.AddVertex(center.Sub(u).Add(v), norm)
	bx.AddTriangle(i0, i1, i2)
	bx.AddTriangle(i0, i2, i3)
}

// Sphere is a sphere mesh, or a section of one, centered at the origin.
// Phi is the horizontal sweep angle around the Y axis and Theta
// the vertical angle down from the +Y pole, both in radians.
type Sphere struct {
	MeshBase

	// radius of the sphere
	Radius float32

	// number of horizontal segments
	WidthSegs int `min:"3"`

	// number of vertical segments
	HeightSegs int `min:"2"`

	// starting horizontal angle
	PhiStart float32

	// horizontal sweep angle
	PhiLength float32

	// starting vertical angle
	ThetaStart float32

	// vertical sweep angle
	ThetaLength float32
}

// NewSphere returns a full Sphere mesh with the given radius and
// number of segments (resolution).
func NewSphere(name string, radius float32, widthSegs, heightSegs int) *Sphere {
	return NewSphereSection(name, radius, widthSegs, heightSegs, 0, 2*math32.Pi, 0, math32.Pi)
}

// NewSphereSection returns a partial Sphere mesh, swept from phiStart
// for phiLength horizontally and thetaStart for thetaLength vertically.
func NewSphereSection(name string, radius float32, widthSegs, heightSegs int, phiStart, phiLength, thetaStart, thetaLength float32) *Sphere {
	sp := &Sphere{}
	sp.Name = name
	sp.Radius = radius
	sp.WidthSegs = max(widthSegs, 3)
	sp.HeightSegs = max(heightSegs, 2)
	sp.PhiStart = phiStart
	sp.PhiLength = phiLength
	sp.ThetaStart = thetaStart
	sp.ThetaLength = thetaLength
	sp.Build()
	return sp
}

// Build regenerates the vertex data from the current parameters.
func (sp *Sphere) Build() {
	sp.Reset()
	thetaEnd := math32.Min(sp.ThetaStart+sp.ThetaLength, math32.Pi)
	grid := make([][]uint32, sp.HeightSegs+1)
	for iy := 0; iy <= sp.HeightSegs; iy++ {
		v := float32(iy) / float32(sp.HeightSegs)
		theta := sp.ThetaStart + v*sp.ThetaLength
		row := make([]uint32, sp.WidthSegs+1)
		for ix := 0; ix <= sp.WidthSegs; ix++ {
			u := float32(ix) / float32(sp.WidthSegs)
			phi := sp.PhiStart + u*sp.PhiLength
			dir := math32.Vec3(-math32.Cos(phi)*math32.Sin(theta), math32.Cos(theta), math32.Sin(phi)*math32.Sin(theta))
			row[ix] = sp.AddVertex(dir.MulScalar(sp.Radius), dir.Normal())
		}
		grid[iy] = row
	}
	for iy := 0; iy < sp.HeightSegs; iy++ {
		for ix := 0; ix < sp.WidthSegs; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 || sp.ThetaStart > 0 {
				sp.AddTriangle(a, b, d)
			}
			if iy != sp.HeightSegs-1 || thetaEnd < math32.Pi {
				sp.AddTriangle(b, c, d)
			}
		}
	}
	sp.UpdateBBox()
}

// Cylinder is a generalized cylinder shape along the Y axis, centered
// at the origin, with separate top and bottom radii: a cone when one
// radius is 0, and a disc when the height is 0.
type Cylinder struct {
	MeshBase

	// radius of the top (+Y) end
	RadiusTop float32

	// radius of the bottom (-Y) end
	RadiusBottom float32

	// height of the cylinder
	Height float32

	// number of segments around the circumference
	RadialSegs int `min:"3"`

	// number of segments along the height
	HeightSegs int `min:"1"`

	// whether the ends are left open (no cap discs)
	OpenEnded bool
}

// NewCylinder returns a Cylinder mesh with the given radii, height,
// number of radial segments and one height segment, with closed ends.
func NewCylinder(name string, radiusTop, radiusBottom, height float32, radialSegs int) *Cylinder {
	return NewCylinderSector(name, radiusTop, radiusBottom, height, radialSegs, 1, false)
}

// NewCylinderSector returns a Cylinder mesh with all parameters specified.
func NewCylinderSector(name string, radiusTop, radiusBottom, height float32, radialSegs, heightSegs int, openEnded bool) *Cylinder {
	cy := &Cylinder{}
	cy.Name = name
	cy.RadiusTop = radiusTop
	cy.RadiusBottom = radiusBottom
	cy.Height = height
	cy.RadialSegs = max(radialSegs, 3)
	cy.HeightSegs = max(heightSegs, 1)
	cy.OpenEnded = openEnded
	cy.Build()
	return cy
}

// Build regenerates the vertex data from the current parameters.
func (cy *Cylinder) Build() {
	cy.Reset()
	halfHeight := cy.Height / 2
	var slope float32
	if cy.Height != 0 {
		slope = (cy.RadiusBottom - cy.RadiusTop) / cy.Height
	}
	grid := make([][]uint32, cy.HeightSegs+1)
	for y := 0; y <= cy.HeightSegs; y++ {
		v := float32(y) / float32(cy.HeightSegs)
		radius := v*(cy.RadiusBottom-cy.RadiusTop) + cy.RadiusTop
		row := make([]uint32, cy.RadialSegs+1)
		for x := 0; x <= cy.RadialSegs; x++ {
			theta := float32(x) / float32(cy.RadialSegs) * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			pos := math32.Vec3(radius*sin, -v*cy.Height+halfHeight, radius*cos)
			row[x] = cy.AddVertex(pos, math32.Vec3(sin, slope, cos).Normal())
		}
		grid[y] = row
	}
	for x := 0; x < cy.RadialSegs; x++ {
		for y := 0; y < cy.HeightSegs; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			c := grid[y+1][x+1]
			d := grid[y][x+1]
			cy.AddTriangle(a, b, d)
			cy.AddTriangle(b, c, d)
		}
	}
	if !cy.OpenEnded {
		if cy.RadiusTop > 0 {
			cy.cap(true, cy.RadiusTop, halfHeight)
		}
		if cy.RadiusBottom > 0 {
			cy.cap(false, cy.RadiusBottom, -halfHeight)
		}
	}
	cy.UpdateBBox()
}

func (cy *Cylinder) cap(top bool, radius, y float32) {
	norm := math32.Vec3(0, -1, 0)
	if top {
		norm.Y = 1
	}
	center := uint32(cy.NumVertex())
	for x := 0; x < cy.RadialSegs; x++ {
		cy.AddVertex(math32.Vec3(0, y, 0), norm)
	}
	rim := uint32(cy.NumVertex())
	for x := 0; x <= cy.RadialSegs; x++ {
		theta := float32(x) / float32(cy.RadialSegs) * 2 * math32.Pi
		cy.AddVertex(math32.Vec3(radius*math32.Sin(theta), y, radius*math32.Cos(theta)), norm)
	}
	for x := uint32(0); x < uint32(cy.RadialSegs); x++ {
		c := center + x
		i := rim + x
		if top {
			cy.AddTriangle(i, i+1, c)
		} else {
			cy.AddTriangle(i+1, i, c)
		}
	}
}

// Torus is a torus mesh in the XY plane, defined by the radius of the
// solid tube and the larger radius of the ring.
type Torus struct {
	MeshBase

	// larger radius of the torus ring
	Radius float32

	// radius of the solid tube
	Tube float32

	// number of segments around the tube cross section
	RadialSegs int `min:"2"`

	// number of segments around the ring
	TubularSegs int `min:"3"`

	// total angle of the ring to generate, in radians
	Arc float32
}

// NewTorus returns a full Torus mesh with the specified ring radius,
// solid tube radius, and number of segments (resolution).
func NewTorus(name string, radius, tube float32, radialSegs, tubularSegs int) *Torus {
	tr := &Torus{}
	tr.Name = name
	tr.Radius = radius
	tr.Tube = tube
	tr.RadialSegs = max(radialSegs, 2)
	tr.TubularSegs = max(tubularSegs, 3)
	tr.Arc = 2 * math32.Pi
	tr.Build()
	return tr
}

// Build regenerates the vertex data from the current parameters.
func (tr *Torus) Build() {
	tr.Reset()
	for j := 0; j <= tr.RadialSegs; j++ {
		v := float32(j) / float32(tr.RadialSegs) * 2 * math32.Pi
		for i := 0; i <= tr.TubularSegs; i++ {
			u := float32(i) / float32(tr.TubularSegs) * tr.Arc
			ring := tr.Radius + tr.Tube*math32.Cos(v)
			pos := math32.Vec3(ring*math32.Cos(u), ring*math32.Sin(u), tr.Tube*math32.Sin(v))
			center := math32.Vec3(tr.Radius*math32.Cos(u), tr.Radius*math32.Sin(u), 0)
			tr.AddVertex(pos, pos.Sub(center).Normal())
		}
	}
	stride := uint32(tr.TubularSegs + 1)
	for j := uint32(1); j <= uint32(tr.RadialSegs); j++ {
		for i := uint32(1); i <= uint32(tr.TubularSegs); i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			tr.AddTriangle(a, b, d)
			tr.AddTriangle(b, c, d)
		}
	}
	tr.UpdateBBox()
}
