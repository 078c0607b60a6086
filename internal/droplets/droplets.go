// Package droplets animates condensate drops falling from the Peltier cold
// plate into the tray. Purely decorative: constant gravity, deterministic
// step, drops wrap back to the plate when they pass the floor line.
package droplets

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// gravity is the downward acceleration in scene units per second squared.
// Tuned for a readable drip, not physical accuracy.
const gravity = float32(-22)

// Drop is one falling condensate drop.
type Drop struct {
	Pos math32.Vector3
	Vel math32.Vector3
}

// Field owns a fixed set of drops falling from Origin down to FloorY.
type Field struct {
	Origin math32.Vector3
	FloorY float32
	Drops  []*Drop

	rng *rand.Rand
}

// New returns a field of count drops below origin, staggered in height so
// the drip looks continuous from the first frame. The random jitter source
// is seeded with a fixed value: two fields built with the same arguments
// behave identically.
func New(origin math32.Vector3, floorY float32, count int) *Field {
	f := &Field{
		Origin: origin,
		FloorY: floorY,
		rng:    rand.New(rand.NewSource(7)),
	}
	span := origin.Y - floorY
	for i := 0; i < count; i++ {
		d := &Drop{Pos: origin}
		d.Pos.Y = floorY + span*float32(i+1)/float32(count+1)
		f.jitter(d)
		f.Drops = append(f.Drops, d)
	}
	return f
}

// Step advances every drop by dt seconds: integrate velocity under gravity,
// then wrap drops that passed the floor back to the origin with fresh
// jitter.
func (f *Field) Step(dt float32) {
	for _, d := range f.Drops {
		d.Vel.Y += gravity * dt
		d.Pos = d.Pos.Add(d.Vel.MulScalar(dt))
		if d.Pos.Y < f.FloorY {
			d.Pos = f.Origin
			d.Vel = math32.Vector3{}
			f.jitter(d)
		}
	}
}

// jitter offsets a drop slightly in X and Z so the stream does not look like
// a bead chain.
func (f *Field) jitter(d *Drop) {
	d.Pos.X = f.Origin.X + (f.rng.Float32()-0.5)*1.6
	d.Pos.Z = f.Origin.Z + (f.rng.Float32()-0.5)*1.6
}
