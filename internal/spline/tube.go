package spline

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Default tessellation for connector tubes.
const (
	DefaultSegments = 32 // rings along the path
	DefaultRadial   = 10 // vertices around each ring
)

// TubeMesh sweeps a circle of the given radius along the centripetal
// Catmull-Rom curve through waypoints, producing an open tube (no end caps).
// segments is the ring count along the path, radial the vertex count around
// each ring; values below 1 fall back to the defaults. Ring frames use
// parallel transport so the cross-section does not twist between rings.
// Every ring vertex lies exactly radius from its ring center, and the first
// and last ring centers are the first and last waypoints.
func TubeMesh(waypoints []math32.Vector3, radius float32, segments, radial int) *scenegraph.Mesh {
	if segments < 1 {
		segments = DefaultSegments
	}
	if radial < 3 {
		radial = DefaultRadial
	}
	curve := NewCurve(waypoints)
	centers := curve.Sample(segments)
	rings := len(centers)

	m := &scenegraph.Mesh{
		Vertices: make([]math32.Vector3, 0, rings*radial),
		Normals:  make([]math32.Vector3, 0, rings*radial),
		Indices:  make([]uint32, 0, (rings-1)*radial*6),
	}

	var normal math32.Vector3
	for i, center := range centers {
		tangent := tangentAt(centers, i)
		if i == 0 {
			normal = perpendicular(tangent)
		} else {
			// Parallel transport: keep the previous normal, re-projected
			// perpendicular to the new tangent.
			proj := normal.Sub(tangent.MulScalar(normal.Dot(tangent)))
			if proj.Length() < knotEps {
				proj = perpendicular(tangent)
			}
			normal = proj.Normal()
		}
		binormal := tangent.Cross(normal).Normal()
		for j := 0; j < radial; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(radial)
			dir := normal.MulScalar(math32.Cos(theta)).Add(binormal.MulScalar(math32.Sin(theta)))
			m.Vertices = append(m.Vertices, center.Add(dir.MulScalar(radius)))
			m.Normals = append(m.Normals, dir)
		}
	}

	for i := 0; i < rings-1; i++ {
		for j := 0; j < radial; j++ {
			jn := (j + 1) % radial
			a := uint32(i*radial + j)
			b := uint32((i+1)*radial + j)
			c := uint32((i+1)*radial + jn)
			d := uint32(i*radial + jn)
			m.Indices = append(m.Indices, a, c, b, a, d, c)
		}
	}
	return m
}

// AddTube builds a tube mesh through waypoints and attaches it to parent at
// the parent-local origin (waypoints are already in the caller's frame).
func AddTube(parent *scenegraph.Node, name string, waypoints []math32.Vector3, radius float32, segments, radial int, mat scenegraph.Material) *scenegraph.Primitive {
	return scenegraph.AddMesh(parent, name, TubeMesh(waypoints, radius, segments, radial), math32.Vector3{}, mat)
}

// tangentAt returns the unit tangent at sample i by central difference
// (forward/backward at the ends).
func tangentAt(centers []math32.Vector3, i int) math32.Vector3 {
	var d math32.Vector3
	switch {
	case len(centers) < 2:
		return math32.Vec3(0, 1, 0)
	case i == 0:
		d = centers[1].Sub(centers[0])
	case i == len(centers)-1:
		d = centers[i].Sub(centers[i-1])
	default:
		d = centers[i+1].Sub(centers[i-1])
	}
	if d.Length() < knotEps {
		return math32.Vec3(0, 1, 0)
	}
	return d.Normal()
}

// perpendicular returns a unit vector perpendicular to t, preferring the
// world up axis so horizontal pipe cross-sections stay level.
func perpendicular(t math32.Vector3) math32.Vector3 {
	ref := math32.Vec3(0, 1, 0)
	if math32.Abs(t.Dot(ref)) > 0.95 {
		ref = math32.Vec3(1, 0, 0)
	}
	p := ref.Sub(t.MulScalar(ref.Dot(t)))
	return p.Normal()
}
