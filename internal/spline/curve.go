// Package spline provides the centripetal Catmull-Rom curve and the swept
// circular tube used for inter-module plumbing connectors.
package spline

import (
	"cogentcore.org/core/math32"
)

// knotEps guards the knot-interval divisions when adjacent waypoints coincide.
const knotEps = 1e-6

// Curve is an open centripetal Catmull-Rom spline through an ordered list of
// waypoints. The curve passes through every waypoint, including both
// endpoints (phantom control points are mirrored at the ends). Fewer than two
// waypoints is a programming error; inputs are trusted and not validated.
type Curve struct {
	points []math32.Vector3
}

// NewCurve returns a curve through the given waypoints. The slice is copied.
func NewCurve(waypoints []math32.Vector3) *Curve {
	c := &Curve{points: make([]math32.Vector3, len(waypoints))}
	copy(c.points, waypoints)
	return c
}

// Points returns the curve's waypoints (the copy held by the curve).
func (c *Curve) Points() []math32.Vector3 {
	return c.points
}

// Point evaluates the curve at t in [0,1]. t=0 is the first waypoint, t=1 the
// last; in between, t is uniform across spans with centripetal
// parameterization inside each span.
func (c *Curve) Point(t float32) math32.Vector3 {
	n := len(c.points)
	if n == 1 {
		return c.points[0]
	}
	spans := n - 1
	if t <= 0 {
		return c.points[0]
	}
	if t >= 1 {
		return c.points[n-1]
	}
	u := t * float32(spans)
	i := int(u)
	if i >= spans {
		i = spans - 1
	}
	local := u - float32(i)

	p1 := c.points[i]
	p2 := c.points[i+1]
	var p0, p3 math32.Vector3
	if i > 0 {
		p0 = c.points[i-1]
	} else {
		p0 = p1.MulScalar(2).Sub(p2) // mirror phantom
	}
	if i+2 < n {
		p3 = c.points[i+2]
	} else {
		p3 = p2.MulScalar(2).Sub(p1)
	}
	return catmullRom(p0, p1, p2, p3, local)
}

// Sample returns segments+1 points along the curve, from the first waypoint
// to the last inclusive.
func (c *Curve) Sample(segments int) []math32.Vector3 {
	if segments < 1 {
		segments = 1
	}
	out := make([]math32.Vector3, segments+1)
	for i := 0; i <= segments; i++ {
		out[i] = c.Point(float32(i) / float32(segments))
	}
	return out
}

// catmullRom evaluates one centripetal span (Barry-Goldman pyramid) between
// p1 and p2 at local parameter u in [0,1]. Knot spacing uses the square root
// of chord length (alpha = 0.5), which avoids the loops and overshoot of the
// uniform variant on uneven waypoint spacing.
func catmullRom(p0, p1, p2, p3 math32.Vector3, u float32) math32.Vector3 {
	t0 := float32(0)
	t1 := t0 + knot(p0, p1)
	t2 := t1 + knot(p1, p2)
	t3 := t2 + knot(p2, p3)
	t := t1 + (t2-t1)*u

	a1 := lerpAt(p0, p1, t0, t1, t)
	a2 := lerpAt(p1, p2, t1, t2, t)
	a3 := lerpAt(p2, p3, t2, t3, t)
	b1 := lerpAt(a1, a2, t0, t2, t)
	b2 := lerpAt(a2, a3, t1, t3, t)
	return lerpAt(b1, b2, t1, t2, t)
}

// knot returns the centripetal knot interval between two control points.
func knot(a, b math32.Vector3) float32 {
	d := math32.Sqrt(b.Sub(a).Length())
	if d < knotEps {
		return knotEps
	}
	return d
}

// lerpAt interpolates between a (at knot ta) and b (at knot tb) for knot t.
func lerpAt(a, b math32.Vector3, ta, tb, t float32) math32.Vector3 {
	if tb-ta < knotEps {
		return a
	}
	w := (t - ta) / (tb - ta)
	return a.MulScalar(1 - w).Add(b.MulScalar(w))
}
