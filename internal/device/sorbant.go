package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Sorbant chamber layout. The chamber tapers: the lid slopes down from the
// back wall (wallBackHeight) to the front wall (wallFrontHeight), so the side
// walls are explicit tapered solids, not scaled boxes.
const (
	sorbWidth       = 22
	sorbDepth       = 16
	wallFrontHeight = float32(10)
	wallBackHeight  = float32(14)
	wallThickness   = float32(1)

	cartridgeRows = 2
	cartridgeCols = 4
)

// SorbantDrainPoint is the drain outlet in sorbant-local coordinates; the
// plumbing router connects it to the Peltier inlet.
var SorbantDrainPoint = math32.Vec3(7, 1, sorbDepth/2)

// Sorbant builds the desiccant chamber: base plate, two tapered side walls,
// front and back walls, the inclined lid, the silica cartridge array, the
// intake fan on the back wall, and the drain outlet stub.
func Sorbant() *scenegraph.Node {
	n := scenegraph.NewNode("sorbant")

	scenegraph.AddBox(n, "base", math32.Vec3(sorbWidth, 1, sorbDepth), math32.Vec3(0, 0.5, 0), Aluminum)

	// Tapered side walls carry the sloped silhouette.
	scenegraph.AddTaperedBox(n, "wall-left", wallThickness, sorbDepth, wallFrontHeight, wallBackHeight,
		math32.Vec3(-(sorbWidth-wallThickness)/2, 1, 0), Aluminum)
	scenegraph.AddTaperedBox(n, "wall-right", wallThickness, sorbDepth, wallFrontHeight, wallBackHeight,
		math32.Vec3((sorbWidth-wallThickness)/2, 1, 0), Aluminum)

	scenegraph.AddBox(n, "wall-front", math32.Vec3(sorbWidth-2*wallThickness, wallFrontHeight, wallThickness),
		math32.Vec3(0, 1+wallFrontHeight/2, (sorbDepth-wallThickness)/2), Aluminum)
	scenegraph.AddBox(n, "wall-back", math32.Vec3(sorbWidth-2*wallThickness, wallBackHeight, wallThickness),
		math32.Vec3(0, 1+wallBackHeight/2, -(sorbDepth-wallThickness)/2), Aluminum)

	// Inclined lid: thin box rotated to match the wall taper.
	lidPitch := math32.RadToDeg(math32.Atan2(wallBackHeight-wallFrontHeight, sorbDepth))
	lidLen := math32.Sqrt(sorbDepth*sorbDepth + (wallBackHeight-wallFrontHeight)*(wallBackHeight-wallFrontHeight))
	scenegraph.AddBoxRot(n, "lid", math32.Vec3(sorbWidth, 0.6, lidLen),
		math32.Vec3(0, 1+(wallFrontHeight+wallBackHeight)/2, 0), math32.Vec3(lidPitch, 0, 0), Aluminum)

	// Silica cartridge array on the base plate.
	for r := 0; r < cartridgeRows; r++ {
		for c := 0; c < cartridgeCols; c++ {
			x := -6 + float32(c)*4
			z := -3 + float32(r)*6
			scenegraph.AddCylinder(n, "cartridge", 1.5, 7, math32.Vec3(x, 4.5, z), math32.Vector3{}, Desiccant)
			scenegraph.AddCylinder(n, "cartridge-cap", 1.6, 0.5, math32.Vec3(x, 8.2, z), math32.Vector3{}, ScreenGray)
		}
	}

	// Intake fan on the back wall: shroud, hub, and guard ring.
	scenegraph.AddCylinder(n, "fan-shroud", 3.2, 1.2, math32.Vec3(0, 7, -(sorbDepth/2+0.6)), math32.Vec3(90, 0, 0), PlasticBlack)
	scenegraph.AddCylinder(n, "fan-hub", 1, 1.4, math32.Vec3(0, 7, -(sorbDepth/2+0.6)), math32.Vec3(90, 0, 0), SteelDark)
	scenegraph.AddCylinder(n, "fan-guard", 3.4, 0.3, math32.Vec3(0, 7, -(sorbDepth/2+1.3)), math32.Vec3(90, 0, 0), ScreenGray)

	// Exhaust screen on the front wall.
	scenegraph.AddBox(n, "exhaust-screen", math32.Vec3(8, 4, 0.3), math32.Vec3(-4, 5, sorbDepth/2+0.2), ScreenGray)

	// Drain outlet stub toward the Peltier chamber below.
	scenegraph.AddCylinder(n, "drain-outlet", 0.7, 1.6,
		SorbantDrainPoint.Add(math32.Vec3(0, 0, 0.8)), math32.Vec3(90, 0, 0), PVCWhite)

	return n
}
