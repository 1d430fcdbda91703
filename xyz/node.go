// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"strings"

	"cogentcore.org/lessons/math32"
)

// Node is the common interface for all xyz scenegraph nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node,
	// which provides the core tree and pose functionality.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node.
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid
}

// NodeBase is the basic 3D tree node, which has the full transform information
// relative to parent, and computed world transforms.
// It is embedded in [Group], [Solid] and [Scene].
type NodeBase struct {

	// Name is the name of the node, unique among its siblings by convention.
	Name string

	// Invisible hides this node and everything under it from rendering.
	Invisible bool

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// parent is the node above this one, nil for a root.
	parent Node

	// children are the nodes under this one, in render order.
	children []Node

	// this is the outer node that embeds this NodeBase.
	this Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// init initializes the node with its embedding outer node and name.
func (nb *NodeBase) init(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Pose.Defaults()
}

// Parent returns the parent node, nil if this is a root.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the child nodes in order.
// The returned slice must not be modified.
func (nb *NodeBase) Children() []Node {
	return nb.children
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.children)
}

// AddChild adds the given node as the last child of this node,
// removing it from any existing parent first.
func (nb *NodeBase) AddChild(kid Node) {
	kb := kid.AsNodeBase()
	if kb.parent != nil {
		kb.parent.AsNodeBase().RemoveChild(kid)
	}
	kb.parent = nb.this
	nb.children = append(nb.children, kid)
}

// RemoveChild removes the given node from the children,
// returning false if it is not a child of this node.
func (nb *NodeBase) RemoveChild(kid Node) bool {
	for i, k := range nb.children {
		if k == kid {
			nb.children = append(nb.children[:i], nb.children[i+1:]...)
			kid.AsNodeBase().parent = nil
			return true
		}
	}
	return false
}

// DeleteChildren removes all children.
func (nb *NodeBase) DeleteChildren() {
	for _, k := range nb.children {
		k.AsNodeBase().parent = nil
	}
	nb.children = nil
}

// Path returns the path to this node from the tree root,
// using node names separated by /.
func (nb *NodeBase) Path() string {
	if nb.parent == nil {
		return "/" + nb.Name
	}
	return strings.TrimSuffix(nb.parent.AsNodeBase().Path(), "/") + "/" + nb.Name
}

// ChildByName returns the first child with the given name, or nil.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, k := range nb.children {
		if k.AsNodeBase().Name == name {
			return k
		}
	}
	return nil
}

// FindByName returns the first node at or below this one
// with the given name, in pre-order, or nil.
func (nb *NodeBase) FindByName(name string) Node {
	var found Node
	nb.WalkDown(func(n Node) bool {
		if found != nil {
			return false
		}
		if n.AsNodeBase().Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// WalkDown calls the function on this node and all of its descendants
// in pre-order. Returning false from the function skips the node's children.
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if !fun(nb.this) {
		return
	}
	for _, k := range nb.children {
		k.AsNodeBase().WalkDown(fun)
	}
}

// IsVisible returns whether this node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	if nb.Invisible {
		return false
	}
	if nb.parent == nil {
		return true
	}
	return nb.parent.AsNodeBase().IsVisible()
}

// UpdateWorldMatrix updates the local and world matrices of this node
// and all of its descendants, given the parent world matrix.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	for _, k := range nb.children {
		k.AsNodeBase().UpdateWorldMatrix(&nb.Pose.WorldMatrix)
	}
}

// SetName sets the name of the node.
func (nb *NodeBase) SetName(name string) {
	nb.Name = name
}
