package scenegraph

import (
	"cogentcore.org/core/math32"
)

// Mesh is an indexed triangle mesh. Vertices and Normals are parallel slices;
// Indices holds counter-clockwise triangles (outward winding). Custom solids
// (swept tubes, the tapered sorbant walls) are meshes; boxes and cylinders use
// the renderer's cached unit shapes instead.
type Mesh struct {
	Vertices []math32.Vector3
	Normals  []math32.Vector3
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the vertices.
// Zero vectors for an empty mesh.
func (m *Mesh) Bounds() (min, max math32.Vector3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min.SetMin(v)
		max.SetMax(v)
	}
	return
}

// ComputeNormals fills Normals with area-weighted face normals accumulated per
// vertex and normalized. Existing normals are replaced.
func (m *Mesh) ComputeNormals() {
	m.Normals = make([]math32.Vector3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		m.Normals[m.Indices[i]] = m.Normals[m.Indices[i]].Add(n)
		m.Normals[m.Indices[i+1]] = m.Normals[m.Indices[i+1]].Add(n)
		m.Normals[m.Indices[i+2]] = m.Normals[m.Indices[i+2]].Add(n)
	}
	for i, n := range m.Normals {
		if n.Length() > 0 {
			m.Normals[i] = n.Normal()
		}
	}
}

// TaperedBoxMesh builds the 8-vertex solid used for the sorbant chamber side
// walls: a box of the given width (X) and depth (Z) whose top face slopes from
// backHeight at -Z to frontHeight at +Z, producing the chamber's inclined-lid
// silhouette. All six faces are indexed with outward winding; scaled boxes
// cannot express this shape. Centered on the origin in X and Z, base at Y=0.
func TaperedBoxMesh(width, depth, frontHeight, backHeight float32) *Mesh {
	hw, hd := width/2, depth/2
	m := &Mesh{
		Vertices: []math32.Vector3{
			{X: -hw, Y: 0, Z: -hd},          // 0 bottom back left
			{X: hw, Y: 0, Z: -hd},           // 1 bottom back right
			{X: hw, Y: 0, Z: hd},            // 2 bottom front right
			{X: -hw, Y: 0, Z: hd},           // 3 bottom front left
			{X: -hw, Y: backHeight, Z: -hd}, // 4 top back left
			{X: hw, Y: backHeight, Z: -hd},  // 5 top back right
			{X: hw, Y: frontHeight, Z: hd},  // 6 top front right
			{X: -hw, Y: frontHeight, Z: hd}, // 7 top front left
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // bottom (faces -Y)
			4, 6, 5, 4, 7, 6, // sloped top (faces +Y)
			3, 2, 6, 3, 6, 7, // front +Z
			0, 5, 1, 0, 4, 5, // back -Z
			0, 3, 7, 0, 7, 4, // left -X
			1, 6, 2, 1, 5, 6, // right +X
		},
	}
	m.ComputeNormals()
	return m
}
