package scenegraph

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaperedBoxMeshShape(t *testing.T) {
	m := TaperedBoxMesh(2, 16, 10, 14)

	// Exactly the 8-vertex solid with all six faces (12 triangles).
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())

	min, max := m.Bounds()
	assert.Equal(t, math32.Vec3(-1, 0, -8), min)
	assert.Equal(t, math32.Vec3(1, 14, 8), max)
}

func TestTaperedBoxMeshSlope(t *testing.T) {
	const front, back = float32(10), float32(14)
	m := TaperedBoxMesh(1, 16, front, back)
	// Top vertices at -Z carry the back height, at +Z the front height.
	for _, v := range m.Vertices {
		if v.Y == 0 {
			continue
		}
		if v.Z < 0 {
			assert.Equal(t, back, v.Y)
		} else {
			assert.Equal(t, front, v.Y)
		}
	}
}

// Face winding must be outward: the vector from the solid's center to a
// triangle's centroid points the same way as the triangle normal.
func TestTaperedBoxMeshWindingOutward(t *testing.T) {
	m := TaperedBoxMesh(4, 6, 5, 8)
	min, max := m.Bounds()
	center := min.Add(max).MulScalar(0.5)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).DivScalar(3)
		assert.Greater(t, n.Dot(centroid.Sub(center)), float32(0), "triangle %d winds inward", i/3)
	}
}

func TestComputeNormalsUnitLength(t *testing.T) {
	m := TaperedBoxMesh(2, 2, 2, 3)
	require.Equal(t, len(m.Vertices), len(m.Normals))
	for i, n := range m.Normals {
		assert.InDelta(t, 1, n.Length(), 1e-4, "normal %d", i)
	}
}

func TestMeshCounts(t *testing.T) {
	m := &Mesh{}
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.TriangleCount())

	m.Vertices = []math32.Vector3{{X: 1}}
	assert.False(t, m.IsEmpty())
	assert.Equal(t, 1, m.VertexCount())
}
