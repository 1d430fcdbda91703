// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package place

import (
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
)

// Cylinder specifies a cylinder or cone spanning two endpoints.
type Cylinder struct {

	// Top is the endpoint at the RadiusTop end.
	Top math32.Vector3

	// Bottom is the endpoint at the RadiusBottom end.
	Bottom math32.Vector3

	// RadiusTop is the radius at Top.
	RadiusTop float32

	// RadiusBottom is the radius at Bottom.
	RadiusBottom float32

	// Segments is the number of segments around the circumference.
	Segments int

	// OpenEnded leaves the end discs off.
	OpenEnded bool
}

// NewCylinder adds a [xyz.Solid] with the given name and material to the
// parent, with a cylinder mesh spanning the ends given in cy.
func NewCylinder(parent xyz.Node, name string, mat *xyz.Material, cy Cylinder) *xyz.Solid {
	al := Align(cy.Top, cy.Bottom)
	ms := xyz.NewCylinderSector(name, cy.RadiusTop, cy.RadiusBottom, al.Length, cy.Segments, 1, cy.OpenEnded)
	sld := xyz.NewSolid(parent, name).SetMesh(ms).SetMaterial(mat)
	al.Apply(sld)
	return sld
}

// Capsule specifies a cylinder of constant radius spanning two endpoints,
// with optional hemispherical caps at each end.
type Capsule struct {

	// Top is the top endpoint.
	Top math32.Vector3

	// Bottom is the bottom endpoint.
	Bottom math32.Vector3

	// Radius is the radius of the cylinder and caps.
	Radius float32

	// Segments is the number of segments around the circumference.
	Segments int

	// OpenTop leaves the cap off the top end.
	OpenTop bool

	// OpenBottom leaves the cap off the bottom end.
	OpenBottom bool
}

// NewCapsule adds a [xyz.Group] with the given name to the parent,
// positioned and rotated to span the ends given in cp, holding an
// open cylinder and the caps that are not left open. Each cap is a
// hemisphere that bulges outward along the axis.
func NewCapsule(parent xyz.Node, name string, mat *xyz.Material, cp Capsule) *xyz.Group {
	al := Align(cp.Top, cp.Bottom)
	gp := xyz.NewGroup(parent, name)
	al.Apply(gp)

	body := xyz.NewCylinderSector(name+"-body", cp.Radius, cp.Radius, al.Length, cp.Segments, 1, true)
	xyz.NewSolid(gp, "body").SetMesh(body).SetMaterial(mat)

	hseg := max(cp.Segments/2, 2)
	half := al.Length / 2
	if !cp.OpenTop {
		hemi := xyz.NewSphereSection(name+"-top", cp.Radius, cp.Segments, hseg, 0, 2*math32.Pi, 0, math32.Pi/2)
		xyz.NewSolid(gp, "top").SetMesh(hemi).SetMaterial(mat).SetPos(0, half, 0)
	}
	if !cp.OpenBottom {
		hemi := xyz.NewSphereSection(name+"-bottom", cp.Radius, cp.Segments, hseg, 0, 2*math32.Pi, math32.Pi/2, math32.Pi/2)
		xyz.NewSolid(gp, "bottom").SetMesh(hemi).SetMaterial(mat).SetPos(0, -half, 0)
	}
	return gp
}
