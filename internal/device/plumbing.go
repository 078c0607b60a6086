package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
	"harvester-viewer/internal/spline"
)

// PipeRadius is the cross-section radius of every connector tube.
const PipeRadius = float32(0.45)

// pipeSegments is the tessellation along each connector run.
const pipeSegments = 48

// world lifts a module-local attachment point to world space using the
// module's stack offset.
func world(local math32.Vector3, offsetY float32) math32.Vector3 {
	return local.Add(math32.Vec3(0, offsetY, 0))
}

// SorbantToPeltierRun returns the waypoints of the moist-air line from the
// sorbant drain down to the Peltier inlet, in world space. The run exits
// horizontally, drops vertically outside both chambers, crosses back over
// the Peltier lid, and turns down into the inlet. Waypoint order matters:
// reordering makes the tube cut through the chamber walls.
func SorbantToPeltierRun() []math32.Vector3 {
	start := world(SorbantDrainPoint, OffsetSorbant)
	inlet := world(PeltierInletPoint, OffsetPeltier)
	return []math32.Vector3{
		start,
		math32.Vec3(start.X, start.Y, start.Z+3),   // clear the front wall
		math32.Vec3(start.X, inlet.Y+1, start.Z+3), // vertical drop outside
		math32.Vec3(inlet.X, inlet.Y+1, inlet.Z),   // horizontal, over the lid
		inlet,
	}
}

// CondensateRuns returns the two waypoint runs of the condensate line: from
// the Peltier drain down to the tee, and from the tee across to the
// reservoir inlet. The tee point is the last waypoint of the first run.
func CondensateRuns() (drainToTee, teeToTank []math32.Vector3) {
	drain := world(PeltierDrainPoint, OffsetPeltier)
	inlet := world(ReservoirInletPoint, OffsetFiltration)
	tee := math32.Vec3(drain.X, inlet.Y+2, drain.Z+2)
	drainToTee = []math32.Vector3{
		drain,
		math32.Vec3(drain.X, drain.Y, drain.Z+2), // clear the shell
		tee,                                      // vertical drop
	}
	teeToTank = []math32.Vector3{
		tee,
		math32.Vec3(inlet.X, tee.Y, tee.Z), // horizontal toward the tank
		math32.Vec3(inlet.X, tee.Y, inlet.Z),
		inlet,
	}
	return
}

// OverflowStub returns the short open-ended run hanging below the tee.
func OverflowStub() []math32.Vector3 {
	drainToTee, _ := CondensateRuns()
	tee := drainToTee[len(drainToTee)-1]
	return []math32.Vector3{
		tee,
		tee.Sub(math32.Vec3(0, 3.5, 0)),
	}
}

// Connectors builds the plumbing node: the three tube runs plus the tee
// fitting at their meeting point. All geometry is in world space; the node
// sits at the assembly origin rather than re-parenting into any module.
func Connectors() *scenegraph.Node {
	n := scenegraph.NewNode("plumbing")

	spline.AddTube(n, "air-line", SorbantToPeltierRun(), PipeRadius, pipeSegments, 0, PVCWhite)

	drainToTee, teeToTank := CondensateRuns()
	spline.AddTube(n, "condensate-drop", drainToTee, PipeRadius, pipeSegments, 0, PVCWhite)
	spline.AddTube(n, "condensate-feed", teeToTank, PipeRadius, pipeSegments, 0, PVCWhite)
	spline.AddTube(n, "overflow", OverflowStub(), PipeRadius, 8, 0, PVCWhite)

	addTee(n, drainToTee[len(drainToTee)-1])
	return n
}

// addTee places a three-way junction fitting centered at p: a vertical body
// spanning the through-run plus collar rings on all three ports.
func addTee(n *scenegraph.Node, p math32.Vector3) {
	scenegraph.AddCylinder(n, "tee-body", PipeRadius+0.35, 2.6, p, math32.Vector3{}, PVCWhite)
	scenegraph.AddCylinder(n, "tee-branch", PipeRadius+0.35, 1.6, p.Add(math32.Vec3(0.8, 0, 0)), math32.Vec3(0, 0, 90), PVCWhite)
	scenegraph.AddCylinder(n, "tee-collar", PipeRadius+0.5, 0.35, p.Add(math32.Vec3(0, 1.3, 0)), math32.Vector3{}, PVCWhite)
	scenegraph.AddCylinder(n, "tee-collar", PipeRadius+0.5, 0.35, p.Sub(math32.Vec3(0, 1.3, 0)), math32.Vector3{}, PVCWhite)
	scenegraph.AddCylinder(n, "tee-collar", PipeRadius+0.5, 0.35, p.Add(math32.Vec3(1.6, 0, 0)), math32.Vec3(0, 0, 90), PVCWhite)
}
