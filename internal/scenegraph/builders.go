package scenegraph

import (
	"cogentcore.org/core/math32"
)

// ShapeKind selects which shape a primitive draws.
type ShapeKind int

const (
	// ShapeBox is an axis-aligned box before rotation; Size is width, height, depth.
	ShapeBox ShapeKind = iota
	// ShapeCylinder is a Y-axis cylinder before rotation; Radius and Height apply.
	ShapeCylinder
	// ShapeMesh draws an indexed triangle Mesh (tubes, tapered solids).
	ShapeMesh
	// ShapeLabel is a camera-facing text sprite; Text and TextSize apply.
	ShapeLabel
)

// Primitive is a drawable leaf: one shape with a material and a transform in
// its owning node's local frame. Immutable after construction except the
// material's wireframe flag.
type Primitive struct {
	Name string
	Kind ShapeKind

	Size     math32.Vector3 // box dimensions
	Radius   float32        // cylinder
	Height   float32        // cylinder
	Mesh     *Mesh          // ShapeMesh only
	Text     string         // ShapeLabel only
	TextSize float32        // label world height

	Mat Material
	Pos math32.Vector3
	Rot math32.Vector3 // Euler XYZ, degrees
}

// WorldPos returns the primitive's position in world space given its owning
// node. The owning node is passed rather than stored; primitives do not hold
// back references.
func (p *Primitive) WorldPos(owner *Node) math32.Vector3 {
	return owner.WorldPos().Add(RotateEuler(p.Pos, owner.Rot))
}

// AddBox attaches a box primitive to parent and returns it.
// size is width, height, depth; pos is the box center in parent-local space.
func AddBox(parent *Node, name string, size, pos math32.Vector3, mat Material) *Primitive {
	p := &Primitive{Name: name, Kind: ShapeBox, Size: size, Pos: pos, Mat: mat}
	parent.Prims = append(parent.Prims, p)
	return p
}

// AddBoxRot is AddBox with an Euler rotation in degrees (e.g. the sorbant
// chamber's inclined lid).
func AddBoxRot(parent *Node, name string, size, pos, rot math32.Vector3, mat Material) *Primitive {
	p := AddBox(parent, name, size, pos, mat)
	p.Rot = rot
	return p
}

// AddCylinder attaches a Y-axis cylinder centered at pos, rotated by rot
// (Euler degrees), and returns it.
func AddCylinder(parent *Node, name string, radius, height float32, pos, rot math32.Vector3, mat Material) *Primitive {
	p := &Primitive{Name: name, Kind: ShapeCylinder, Radius: radius, Height: height, Pos: pos, Rot: rot, Mat: mat}
	parent.Prims = append(parent.Prims, p)
	return p
}

// AddMesh attaches an indexed triangle mesh primitive at pos and returns it.
// The mesh is referenced, not copied; callers build a fresh mesh per call.
func AddMesh(parent *Node, name string, mesh *Mesh, pos math32.Vector3, mat Material) *Primitive {
	p := &Primitive{Name: name, Kind: ShapeMesh, Mesh: mesh, Pos: pos, Mat: mat}
	parent.Prims = append(parent.Prims, p)
	return p
}

// AddTaperedBox attaches the sloped-top solid (see TaperedBoxMesh) with its
// base center at pos and returns it.
func AddTaperedBox(parent *Node, name string, width, depth, frontHeight, backHeight float32, pos math32.Vector3, mat Material) *Primitive {
	return AddMesh(parent, name, TaperedBoxMesh(width, depth, frontHeight, backHeight), pos, mat)
}

// AddLabel attaches a camera-facing text sprite at pos and returns it.
// The material is forced to Label so wireframe toggles skip it.
func AddLabel(parent *Node, name, text string, textSize float32, pos math32.Vector3, mat Material) *Primitive {
	mat.Label = true
	p := &Primitive{Name: name, Kind: ShapeLabel, Text: text, TextSize: textSize, Pos: pos, Mat: mat}
	parent.Prims = append(parent.Prims, p)
	return p
}
