package spline

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester-viewer/internal/scenegraph"
)

func TestTubeRadiusAtEveryRing(t *testing.T) {
	wps := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 10, 0)}
	const radius = float32(0.75)
	const segments, radial = 16, 8

	m := TubeMesh(wps, radius, segments, radial)
	require.Equal(t, (segments+1)*radial, m.VertexCount())

	centers := NewCurve(wps).Sample(segments)
	for ring := 0; ring <= segments; ring++ {
		c := centers[ring]
		for j := 0; j < radial; j++ {
			v := m.Vertices[ring*radial+j]
			assert.InDelta(t, radius, v.Sub(c).Length(), 1e-4, "ring %d vertex %d", ring, j)
		}
	}
}

func TestTubeCenterlineHitsEndpoints(t *testing.T) {
	wps := []math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(1, 2, 13)}
	const radial = 6
	m := TubeMesh(wps, 0.4, 10, radial)

	// The mean of a ring's vertices is the ring center.
	ringCenter := func(ring int) math32.Vector3 {
		var sum math32.Vector3
		for j := 0; j < radial; j++ {
			sum = sum.Add(m.Vertices[ring*radial+j])
		}
		return sum.DivScalar(radial)
	}
	first := ringCenter(0)
	last := ringCenter(10)
	assert.InDelta(t, 0, first.Sub(wps[0]).Length(), 1e-3)
	assert.InDelta(t, 0, last.Sub(wps[1]).Length(), 1e-3)
}

func TestTubeIsOpen(t *testing.T) {
	// Open tube: no cap triangles, so index count is exactly the side quads.
	const segments, radial = 12, 7
	m := TubeMesh([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(5, 0, 0)}, 0.3, segments, radial)
	assert.Equal(t, segments*radial*2, m.TriangleCount())
}

func TestTubeNormalsAreRadialUnit(t *testing.T) {
	m := TubeMesh([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 8, 0)}, 0.5, 8, 8)
	require.Equal(t, len(m.Vertices), len(m.Normals))
	for i, n := range m.Normals {
		assert.InDelta(t, 1, n.Length(), 1e-4, "normal %d", i)
	}
}

func TestAddTubeAttachesToParent(t *testing.T) {
	parent := scenegraph.NewNode("pipes")
	p := AddTube(parent, "run", []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 4, 0)}, 0.4, 8, 6, scenegraph.Material{Opacity: 1})
	require.Len(t, parent.Prims, 1)
	assert.Same(t, p, parent.Prims[0])
	assert.Equal(t, scenegraph.ShapeMesh, p.Kind)
	assert.False(t, p.Mesh.IsEmpty())
}
