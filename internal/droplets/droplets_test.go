package droplets

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaggersDropsBetweenFloorAndOrigin(t *testing.T) {
	origin := math32.Vec3(2, 41, 0)
	f := New(origin, 35.3, 6)
	require.Len(t, f.Drops, 6)
	for i, d := range f.Drops {
		assert.Greater(t, d.Pos.Y, f.FloorY, "drop %d", i)
		assert.Less(t, d.Pos.Y, origin.Y, "drop %d", i)
	}
}

func TestFieldIsDeterministic(t *testing.T) {
	origin := math32.Vec3(0, 10, 0)
	a := New(origin, 0, 4)
	b := New(origin, 0, 4)
	for step := 0; step < 200; step++ {
		a.Step(1.0 / 60)
		b.Step(1.0 / 60)
	}
	for i := range a.Drops {
		assert.Equal(t, a.Drops[i].Pos, b.Drops[i].Pos, "drop %d", i)
		assert.Equal(t, a.Drops[i].Vel, b.Drops[i].Vel, "drop %d", i)
	}
}

func TestStepPullsDropsDown(t *testing.T) {
	f := New(math32.Vec3(0, 20, 0), 0, 1)
	before := f.Drops[0].Pos.Y
	f.Step(0.1)
	assert.Less(t, f.Drops[0].Pos.Y, before)
	assert.Less(t, f.Drops[0].Vel.Y, float32(0))
}

func TestDropsWrapAtFloor(t *testing.T) {
	f := New(math32.Vec3(0, 5, 0), 2, 3)
	// Run long enough that every drop has crossed the floor at least once.
	for step := 0; step < 600; step++ {
		f.Step(1.0 / 60)
		for i, d := range f.Drops {
			assert.GreaterOrEqual(t, d.Pos.Y, f.FloorY, "drop %d fell through the floor", i)
			assert.LessOrEqual(t, d.Pos.Y, f.Origin.Y, "drop %d above the origin", i)
		}
	}
}
