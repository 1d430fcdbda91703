// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
)

// Fog is linear distance fog: surfaces fade into Color between
// the Near and Far view depths.
type Fog struct {

	// Color is the fog color.
	Color color.RGBA

	// Near is the view depth where fog starts.
	Near float32

	// Far is the view depth where fog is complete.
	Far float32
}

// NewFog returns a new [Fog] with the given 0xRRGGBB color and range.
func NewFog(hex uint32, near, far float32) *Fog {
	return &Fog{Color: colors.FromUint32(hex), Near: near, Far: far}
}

// Factor returns the amount of fog in 0-1 at the given view depth,
// with a smoothstep falloff.
func (fg *Fog) Factor(depth float32) float32 {
	return math32.Smoothstep(fg.Near, fg.Far, depth)
}
