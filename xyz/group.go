// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/math32"
	"github.com/jinzhu/copier"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] with the given name to the given parent.
// A nil parent makes a free-standing group that can be added later.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.init(gp, name)
	if parent != nil {
		parent.AsNodeBase().AddChild(gp)
	}
	return gp
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.Scale.Set(x, y, z)
	return gp
}

// SetAxisRotation sets the [Pose.Quat] rotation of the group,
// from local axis and angle in degrees.
func (gp *Group) SetAxisRotation(x, y, z, angle float32) *Group {
	gp.Pose.SetAxisRotation(x, y, z, angle)
	return gp
}

// SetEulerRotation sets the [Pose.Quat] rotation of the group,
// from euler angles in degrees
func (gp *Group) SetEulerRotation(x, y, z float32) *Group {
	gp.Pose.SetEulerRotation(x, y, z)
	return gp
}

// SetQuat sets the [Pose.Quat] rotation of the group directly.
func (gp *Group) SetQuat(q math32.Quat) *Group {
	gp.Pose.Quat = q
	return gp
}

// Clone returns a copy of this group and all of its descendants,
// not attached to any parent. Meshes and materials are shared.
func (gp *Group) Clone() *Group {
	ng := &Group{}
	errors.Log(copier.Copy(ng, gp))
	ng.this = ng
	ng.parent = nil
	ng.children = nil
	for _, k := range gp.children {
		ng.AddChild(Clone(k))
	}
	return ng
}

// Clone returns a copy of the given [Group] or [Solid] node
// and its descendants, sharing meshes and materials.
func Clone(n Node) Node {
	switch nt := n.(type) {
	case *Solid:
		return nt.Clone()
	case *Group:
		return nt.Clone()
	}
	return nil
}

// test for impl
var _ Node = &Group{}
