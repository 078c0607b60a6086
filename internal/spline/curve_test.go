package spline

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func vecNear(t *testing.T, want, got math32.Vector3, tol float32, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(tol), msg+" X")
	assert.InDelta(t, want.Y, got.Y, float64(tol), msg+" Y")
	assert.InDelta(t, want.Z, got.Z, float64(tol), msg+" Z")
}

func TestCurvePassesThroughWaypoints(t *testing.T) {
	wps := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(2, 5, 0),
		math32.Vec3(2, 5, 8),
		math32.Vec3(-3, 9, 8),
	}
	c := NewCurve(wps)
	spans := float32(len(wps) - 1)
	for i, wp := range wps {
		got := c.Point(float32(i) / spans)
		vecNear(t, wp, got, 1e-4, "waypoint")
	}
}

func TestCurveEndpointsExact(t *testing.T) {
	c := NewCurve([]math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6)})
	assert.Equal(t, math32.Vec3(1, 2, 3), c.Point(0))
	assert.Equal(t, math32.Vec3(4, 5, 6), c.Point(1))
	// Out-of-range parameters clamp to the endpoints.
	assert.Equal(t, math32.Vec3(1, 2, 3), c.Point(-0.5))
	assert.Equal(t, math32.Vec3(4, 5, 6), c.Point(1.5))
}

func TestCurveStraightSegmentStaysOnLine(t *testing.T) {
	// Two waypoints: the spline degenerates to the straight segment.
	c := NewCurve([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 10, 0)})
	for _, tt := range []float32{0, 0.2, 0.5, 0.8, 1} {
		p := c.Point(tt)
		assert.InDelta(t, 0, p.X, 1e-4)
		assert.InDelta(t, 0, p.Z, 1e-4)
		assert.GreaterOrEqual(t, p.Y+1e-4, float32(0))
		assert.LessOrEqual(t, p.Y-1e-4, float32(10))
	}
}

func TestSampleCountAndEnds(t *testing.T) {
	wps := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(3, 1, 0), math32.Vec3(6, 0, 2)}
	pts := NewCurve(wps).Sample(20)
	assert.Len(t, pts, 21)
	vecNear(t, wps[0], pts[0], 1e-5, "first")
	vecNear(t, wps[2], pts[20], 1e-5, "last")
}

func TestCoincidentWaypointsDoNotBlowUp(t *testing.T) {
	c := NewCurve([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 1, 1),
	})
	p := c.Point(0.5)
	assert.False(t, math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsNaN(p.Z))
}
