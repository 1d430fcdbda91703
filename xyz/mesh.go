// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/lessons/math32"
)

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
// Indexed triangle meshes and indexed line segments are supported.
// Per-vertex Color is optional.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface:
// the vertex and index data.
type MeshBase struct {

	// Name is the name of the mesh.
	Name string

	// Positions are the vertex positions.
	Positions []math32.Vector3

	// Normals are the vertex normals, one per position.
	// Line meshes have none.
	Normals []math32.Vector3

	// Colors are the optional per-vertex colors in 0-1 RGB,
	// one per position when present.
	Colors []math32.Vector3

	// Indices are triangle vertex indices, three per triangle,
	// or line segment indices, two per segment, if Lines is set.
	Indices []uint32

	// Lines is whether the indices are line segments instead of triangles.
	Lines bool

	// BBox is the bounding box of the positions.
	BBox math32.Box3

	disposed bool
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// NumVertex returns the number of vertices.
func (ms *MeshBase) NumVertex() int {
	return len(ms.Positions)
}

// NumIndex returns the number of indices.
func (ms *MeshBase) NumIndex() int {
	return len(ms.Indices)
}

// HasColor returns whether the mesh has per-vertex colors.
func (ms *MeshBase) HasColor() bool {
	return len(ms.Colors) > 0 && len(ms.Colors) == len(ms.Positions)
}

// Reset clears all the vertex and index data.
func (ms *MeshBase) Reset() {
	ms.Positions = ms.Positions[:0]
	ms.Normals = ms.Normals[:0]
	ms.Colors = ms.Colors[:0]
	ms.Indices = ms.Indices[:0]
	ms.BBox.SetEmpty()
}

// AddVertex adds a vertex with the given position and normal,
// returning its index.
func (ms *MeshBase) AddVertex(pos, norm math32.Vector3) uint32 {
	ms.Positions = append(ms.Positions, pos)
	ms.Normals = append(ms.Normals, norm)
	return uint32(len(ms.Positions) - 1)
}

// AddTriangle adds a triangle with the given vertex indices,
// counter-clockwise when viewed from the front.
func (ms *MeshBase) AddTriangle(a, b, c uint32) {
	ms.Indices = append(ms.Indices, a, b, c)
}

// ComputeNormals sets smooth vertex normals from the area-weighted
// normals of the triangles that share each vertex.
func (ms *MeshBase) ComputeNormals() {
	ms.Normals = make([]math32.Vector3, len(ms.Positions))
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		a, b, c := ms.Indices[i], ms.Indices[i+1], ms.Indices[i+2]
		pa, pb, pc := ms.Positions[a], ms.Positions[b], ms.Positions[c]
		fn := pb.Sub(pa).Cross(pc.Sub(pa))
		ms.Normals[a].SetAdd(fn)
		ms.Normals[b].SetAdd(fn)
		ms.Normals[c].SetAdd(fn)
	}
	for i := range ms.Normals {
		ms.Normals[i] = ms.Normals[i].Normal()
	}
}

// UpdateBBox recomputes the bounding box from the positions.
func (ms *MeshBase) UpdateBBox() {
	ms.BBox.SetEmpty()
	for _, p := range ms.Positions {
		ms.BBox.ExpandByPoint(p)
	}
}

// ApplyMatrix transforms the positions and normals of the mesh
// in place by the given matrix.
func (ms *MeshBase) ApplyMatrix(m *math32.Matrix4) {
	var nm math32.Matrix3
	nm.SetNormalMatrix(m)
	for i, p := range ms.Positions {
		ms.Positions[i] = p.MulMatrix4(m)
	}
	for i, n := range ms.Normals {
		ms.Normals[i] = n.MulMatrix3(&nm).Normal()
	}
	ms.UpdateBBox()
}

// Dispose releases the vertex data; a disposed mesh renders nothing.
func (ms *MeshBase) Dispose() {
	ms.Positions = nil
	ms.Normals = nil
	ms.Colors = nil
	ms.Indices = nil
	ms.disposed = true
}

// IsDisposed returns whether [MeshBase.Dispose] has been called.
func (ms *MeshBase) IsDisposed() bool {
	return ms.disposed
}

// GenMesh is a generic, arbitrary Mesh, storing its values
type GenMesh struct {
	MeshBase
}

// NewGenMesh returns a mesh with the given positions and triangle
// indices, and optional per-vertex colors (nil for none).
// Normals are computed from the triangles.
func NewGenMesh(name string, positions []math32.Vector3, indices []uint32, colors []math32.Vector3) *GenMesh {
	ms := &GenMesh{}
	ms.Name = name
	ms.Positions = positions
	ms.Indices = indices
	ms.Colors = colors
	ms.ComputeNormals()
	ms.UpdateBBox()
	return ms
}
