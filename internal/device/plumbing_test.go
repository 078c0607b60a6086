package device

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester-viewer/internal/scenegraph"
)

func TestSorbantToPeltierRunEndpoints(t *testing.T) {
	run := SorbantToPeltierRun()
	require.GreaterOrEqual(t, len(run), 2)

	wantStart := SorbantDrainPoint.Add(math32.Vec3(0, OffsetSorbant, 0))
	wantEnd := PeltierInletPoint.Add(math32.Vec3(0, OffsetPeltier, 0))
	assert.Equal(t, wantStart, run[0])
	assert.Equal(t, wantEnd, run[len(run)-1])
}

func TestSorbantToPeltierRunDescends(t *testing.T) {
	// The run drops from the sorbant level to the Peltier inlet without ever
	// climbing back above its start.
	run := SorbantToPeltierRun()
	for i, wp := range run {
		assert.LessOrEqual(t, wp.Y, run[0].Y, "waypoint %d", i)
	}
	assert.Less(t, run[len(run)-1].Y, run[0].Y)
}

func TestCondensateRunsMeetAtTee(t *testing.T) {
	drainToTee, teeToTank := CondensateRuns()
	require.NotEmpty(t, drainToTee)
	require.NotEmpty(t, teeToTank)

	tee := drainToTee[len(drainToTee)-1]
	assert.Equal(t, tee, teeToTank[0], "both runs share the tee waypoint")

	assert.Equal(t, PeltierDrainPoint.Add(math32.Vec3(0, OffsetPeltier, 0)), drainToTee[0])
	assert.Equal(t, ReservoirInletPoint.Add(math32.Vec3(0, OffsetFiltration, 0)), teeToTank[len(teeToTank)-1])
}

func TestOverflowStubHangsBelowTee(t *testing.T) {
	drainToTee, _ := CondensateRuns()
	tee := drainToTee[len(drainToTee)-1]

	stub := OverflowStub()
	require.Len(t, stub, 2)
	assert.Equal(t, tee, stub[0])
	assert.Equal(t, tee.X, stub[1].X)
	assert.Equal(t, tee.Z, stub[1].Z)
	assert.Less(t, stub[1].Y, tee.Y)
}

func TestConnectorsBuildAllRuns(t *testing.T) {
	n := Connectors()

	tubes := map[string]*scenegraph.Primitive{}
	tees := 0
	n.EachPrimitive(func(p *scenegraph.Primitive) {
		switch p.Kind {
		case scenegraph.ShapeMesh:
			tubes[p.Name] = p
		case scenegraph.ShapeCylinder:
			tees++
		}
	})

	for _, name := range []string{"air-line", "condensate-drop", "condensate-feed", "overflow"} {
		p, ok := tubes[name]
		require.True(t, ok, name)
		assert.False(t, p.Mesh.IsEmpty(), name)
	}
	assert.Equal(t, 5, tees, "tee body, branch, and three collars")
}
