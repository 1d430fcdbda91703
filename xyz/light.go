// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity is the brightness of the light, multiplied by the color.
	Intensity float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the light color times its intensity, in 0-1 RGB,
// or zero if the light is off.
func (lb *LightBase) Radiance() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	return colors.ToVector3(lb.Color).MulScalar(lb.Intensity)
}

// AmbientLight provides diffuse uniform lighting.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to given scene, with given name,
// 0xRRGGBB color and intensity.
func NewAmbientLight(sc *Scene, name string, hex uint32, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = colors.FromUint32(hex)
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
// The position is normalized to get the direction toward the light
// (i.e., absolute distance doesn't matter)
type DirLight struct {
	LightBase

	// position of direct light -- assumed to point at the origin so this determines direction
	Pos math32.Vector3
}

// NewDirLight adds a directional light to given scene, with given name,
// 0xRRGGBB color and intensity. By default it is located overhead (0, 1, 0)
// -- change Pos otherwise
func NewDirLight(sc *Scene, name string, hex uint32, intensity float32) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = colors.FromUint32(hex)
	lt.Intensity = intensity
	lt.Pos.Set(0, 1, 0)
	sc.AddLight(lt)
	return lt
}

// SetPos sets the position of the light, which determines its direction.
func (dl *DirLight) SetPos(x, y, z float32) *DirLight {
	dl.Pos.Set(x, y, z)
	return dl
}

// Dir returns the unit direction from the surface toward the light.
func (dl *DirLight) Dir() math32.Vector3 {
	return dl.Pos.Normal()
}

// AddLight adds given light to lights
// see NewX for convenience methods to add specific lights
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the first light with the given name, or nil.
func (sc *Scene) LightByName(name string) Light {
	for _, lt := range sc.Lights {
		if lt.AsLightBase().Name == name {
			return lt
		}
	}
	return nil
}
