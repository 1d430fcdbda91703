// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scenegraph: a tree of Groups and Solids with
// meshes, materials, lights, fog and a camera, rendered by the raster package.
package xyz

import (
	"image/color"
)

// Scene is the overall scenegraph containing nodes as children,
// along with the lights and fog that apply to all of them.
type Scene struct {
	NodeBase

	// Background is the color the renderer clears to, if set
	// (alpha > 0); otherwise the renderer clear color is used.
	Background color.RGBA

	// Lights are all the lights used in the scene.
	Lights []Light

	// Fog is the optional linear fog.
	Fog *Fog
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.init(sc, name)
	return sc
}

// SetBackground sets the [Scene.Background] color.
func (sc *Scene) SetBackground(c color.RGBA) *Scene {
	sc.Background = c
	return sc
}

// SetFog sets the [Scene.Fog].
func (sc *Scene) SetFog(fg *Fog) *Scene {
	sc.Fog = fg
	return sc
}

// UpdateWorldMatrices updates the world matrices of all nodes
// from their current poses.
func (sc *Scene) UpdateWorldMatrices() {
	sc.NodeBase.UpdateWorldMatrix(nil)
}

// Solids returns all the visible solids in the scene, in tree order.
func (sc *Scene) Solids() []*Solid {
	var sls []*Solid
	sc.WalkDown(func(n Node) bool {
		if n.AsNodeBase().Invisible {
			return false
		}
		if sld := n.AsSolid(); sld != nil && sld.IsVisible() {
			sls = append(sls, sld)
		}
		return true
	})
	return sls
}

// Dispose releases all the meshes and materials used by solids in the scene,
// and removes all nodes and lights.
func (sc *Scene) Dispose() {
	sc.WalkDown(func(n Node) bool {
		if sld := n.AsSolid(); sld != nil {
			if sld.Mesh != nil {
				sld.Mesh.AsMeshBase().Dispose()
			}
			if sld.Material != nil {
				sld.Material.Dispose()
			}
		}
		return true
	})
	sc.DeleteChildren()
	sc.Lights = nil
}
