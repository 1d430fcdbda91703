// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/math32"
	"github.com/jinzhu/copier"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
// Meshes and materials can be shared by several solids.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh Mesh

	// Material contains the material properties of the surface.
	Material *Material
}

// NewSolid adds a new [Solid] with the given name to the given parent.
// A nil parent makes a free-standing solid that can be added later.
func NewSolid(parent Node, name string) *Solid {
	sld := &Solid{}
	sld.init(sld, name)
	if parent != nil {
		parent.AsNodeBase().AddChild(sld)
	}
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetMesh sets mesh
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	return sld
}

// SetMaterial sets the material
func (sld *Solid) SetMaterial(mt *Material) *Solid {
	sld.Material = mt
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetAxisRotation sets the [Pose.Quat] rotation of the solid,
// from local axis and angle in degrees.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}

// SetEulerRotation sets the [Pose.Quat] rotation of the solid,
// from euler angles in degrees
func (sld *Solid) SetEulerRotation(x, y, z float32) *Solid {
	sld.Pose.SetEulerRotation(x, y, z)
	return sld
}

// SetQuat sets the [Pose.Quat] rotation of the solid directly.
func (sld *Solid) SetQuat(q math32.Quat) *Solid {
	sld.Pose.Quat = q
	return sld
}

// IsVisible returns whether the solid has a mesh and material and
// it and all its parents are visible.
func (sld *Solid) IsVisible() bool {
	if sld.Mesh == nil || sld.Material == nil {
		return false
	}
	return sld.NodeBase.IsVisible()
}

// IsTransparent returns whether the solid must be rendered
// in the transparent pass.
func (sld *Solid) IsTransparent() bool {
	return sld.Material != nil && sld.Material.IsTransparent()
}

// Clone returns a copy of this solid, not attached to any parent,
// sharing the mesh and material.
func (sld *Solid) Clone() *Solid {
	ns := &Solid{}
	errors.Log(copier.Copy(ns, sld))
	ns.this = ns
	ns.parent = nil
	ns.children = nil
	ns.Mesh = sld.Mesh
	ns.Material = sld.Material
	return ns
}

// test for impl
var _ Node = &Solid{}
