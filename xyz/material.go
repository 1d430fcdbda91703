// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/lessons/colors"
)

// MaterialKinds are the lighting models a [Material] can use.
type MaterialKinds int32

const (
	// Basic is unlit: the surface is drawn in its color.
	Basic MaterialKinds = iota

	// Lambert is diffuse-only lighting.
	Lambert

	// Phong is diffuse plus Blinn-Phong specular lighting.
	Phong
)

func (mk MaterialKinds) String() string {
	switch mk {
	case Basic:
		return "Basic"
	case Lambert:
		return "Lambert"
	case Phong:
		return "Phong"
	}
	return fmt.Sprintf("MaterialKinds(%d)", int32(mk))
}

// Sides determines which faces of triangles are drawn.
type Sides int32

const (
	// FrontSide draws only counter-clockwise (front) faces.
	FrontSide Sides = iota

	// BackSide draws only back faces.
	BackSide

	// DoubleSide draws both faces.
	DoubleSide
)

// Material describes the material properties of a surface (colors, shininess)
// i.e., phong lighting parameters. Materials can be shared among solids.
type Material struct {

	// Kind is the lighting model.
	Kind MaterialKinds

	// Color is the main color of surface, used for both ambient and diffuse color
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow
	Emissive color.RGBA

	// Specular is the color of specular highlights, for [Phong].
	Specular color.RGBA

	// Shininess is the specular exponent, for [Phong]: higher values
	// give smaller, more focal highlights.
	Shininess float32

	// Opacity is the surface opacity in 0-1, only used if Transparent is set.
	Opacity float32

	// Transparent means the solid is blended using Opacity,
	// rendered after all opaque solids.
	Transparent bool

	// VertexColors uses the mesh per-vertex colors instead of Color.
	VertexColors bool

	// Wireframe draws only the triangle edges.
	Wireframe bool

	// Side determines which triangle faces are drawn.
	Side Sides

	disposed bool
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colors.White
	mt.Emissive = colors.Black
	mt.Specular = colors.FromUint32(0x111111)
	mt.Shininess = 30
	mt.Opacity = 1
}

// NewMaterial returns a new material of the given kind and color,
// with other values at their defaults.
func NewMaterial(kind MaterialKinds, clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Kind = kind
	mt.Color = clr
	return mt
}

// NewBasic returns a new unlit [Basic] material with the given 0xRRGGBB color.
func NewBasic(hex uint32) *Material {
	return NewMaterial(Basic, colors.FromUint32(hex))
}

// NewLambert returns a new diffuse [Lambert] material with the given 0xRRGGBB color.
func NewLambert(hex uint32) *Material {
	return NewMaterial(Lambert, colors.FromUint32(hex))
}

// NewPhong returns a new specular [Phong] material with the given 0xRRGGBB color.
func NewPhong(hex uint32) *Material {
	return NewMaterial(Phong, colors.FromUint32(hex))
}

// SetColor sets the [Material.Color]
func (mt *Material) SetColor(v color.RGBA) *Material {
	mt.Color = v
	return mt
}

// SetEmissive sets the [Material.Emissive]
func (mt *Material) SetEmissive(v color.RGBA) *Material {
	mt.Emissive = v
	return mt
}

// SetSpecular sets the [Material.Specular] color
func (mt *Material) SetSpecular(v color.RGBA) *Material {
	mt.Specular = v
	return mt
}

// SetShininess sets the [Material.Shininess]
func (mt *Material) SetShininess(v float32) *Material {
	mt.Shininess = v
	return mt
}

// SetOpacity sets the [Material.Opacity] and turns on [Material.Transparent].
func (mt *Material) SetOpacity(v float32) *Material {
	mt.Opacity = v
	mt.Transparent = true
	return mt
}

// SetVertexColors sets the [Material.VertexColors]
func (mt *Material) SetVertexColors(v bool) *Material {
	mt.VertexColors = v
	return mt
}

// SetWireframe sets the [Material.Wireframe]
func (mt *Material) SetWireframe(v bool) *Material {
	mt.Wireframe = v
	return mt
}

// SetSide sets the [Material.Side]
func (mt *Material) SetSide(v Sides) *Material {
	mt.Side = v
	return mt
}

// IsTransparent returns true if the material is transparent
// with an opacity below 1.
func (mt *Material) IsTransparent() bool {
	return mt.Transparent && mt.Opacity < 1
}

// Dispose marks the material as released; solids using a
// disposed material are not rendered.
func (mt *Material) Dispose() {
	mt.disposed = true
}

// IsDisposed returns whether [Material.Dispose] has been called.
func (mt *Material) IsDisposed() bool {
	return mt.disposed
}
