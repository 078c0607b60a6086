package scenegraph

import (
	"cogentcore.org/core/math32"
)

// Node is a named container in the scene graph. It owns an ordered list of
// child nodes and drawable primitives, and a local transform (position plus
// Euler rotation in degrees) applied to everything under it. Structure is
// fixed after assembly; only Visible and primitive materials change at
// runtime.
type Node struct {
	Name    string
	Pos     math32.Vector3
	Rot     math32.Vector3 // Euler XYZ, degrees
	Visible bool

	parent   *Node
	Children []*Node
	Prims    []*Primitive
}

// NewNode returns an empty visible node with the given name.
func NewNode(name string) *Node {
	return &Node{Name: name, Visible: true}
}

// AddChild attaches child under n. A child belongs to exactly one parent.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// Parent returns the node's parent, nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldPos returns the node's origin in world space, composing ancestor
// rotations and translations from the root down.
func (n *Node) WorldPos() math32.Vector3 {
	if n.parent == nil {
		return n.Pos
	}
	return n.parent.WorldPos().Add(RotateEuler(n.Pos, n.parent.Rot))
}

// Walk calls f on n and every descendant node, depth first in child order.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for _, c := range n.Children {
		c.Walk(f)
	}
}

// EachPrimitive calls f on every primitive in n and its descendants.
func (n *Node) EachPrimitive(f func(*Primitive)) {
	n.Walk(func(nd *Node) {
		for _, p := range nd.Prims {
			f(p)
		}
	})
}

// Collect returns all primitives under n for which keep returns true.
// Used once at registration to build the label and drawable lists the
// controller iterates per frame, instead of rescanning the graph.
func (n *Node) Collect(keep func(*Primitive) bool) []*Primitive {
	var out []*Primitive
	n.EachPrimitive(func(p *Primitive) {
		if keep(p) {
			out = append(out, p)
		}
	})
	return out
}

// VisibleInTree reports whether n and all of its ancestors are visible.
func (n *Node) VisibleInTree() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// PrimRef pairs a primitive with its owning node, for lists that need the
// owner to resolve world positions (e.g. the label list).
type PrimRef struct {
	Node *Node
	Prim *Primitive
}

// CollectRefs is Collect returning owner-paired references.
func (n *Node) CollectRefs(keep func(*Primitive) bool) []PrimRef {
	var out []PrimRef
	n.Walk(func(nd *Node) {
		for _, p := range nd.Prims {
			if keep(p) {
				out = append(out, PrimRef{Node: nd, Prim: p})
			}
		}
	})
	return out
}

// RotateEuler rotates v by the given Euler angles in degrees, applied in
// X, Y, Z order (matching the renderer's rotation matrices).
func RotateEuler(v, deg math32.Vector3) math32.Vector3 {
	if deg.X == 0 && deg.Y == 0 && deg.Z == 0 {
		return v
	}
	rx, ry, rz := math32.DegToRad(deg.X), math32.DegToRad(deg.Y), math32.DegToRad(deg.Z)
	// X axis
	c, s := math32.Cos(rx), math32.Sin(rx)
	v = math32.Vec3(v.X, c*v.Y-s*v.Z, s*v.Y+c*v.Z)
	// Y axis
	c, s = math32.Cos(ry), math32.Sin(ry)
	v = math32.Vec3(c*v.X+s*v.Z, v.Y, -s*v.X+c*v.Z)
	// Z axis
	c, s = math32.Cos(rz), math32.Sin(rz)
	return math32.Vec3(c*v.X-s*v.Y, s*v.X+c*v.Y, v.Z)
}
