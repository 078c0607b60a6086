package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Peltier condensation chamber layout. The TEC stack sits across the chamber
// center: hot-side fins face the fan, the cold-side fins hang over the
// condensate tray.
const (
	peltWidth  = 20
	peltHeight = 16
	peltDepth  = 14

	hotFinCount  = 12
	coldFinCount = 10
	finSpacing   = float32(0.9)
)

// Peltier chamber attachment points in module-local coordinates.
var (
	// PeltierInletPoint is where moist air from the sorbant drain line enters.
	PeltierInletPoint = math32.Vec3(7, peltHeight, 5)
	// PeltierDrainPoint is the condensate outlet at the tray low corner.
	PeltierDrainPoint = math32.Vec3(-5, 1, peltDepth/2)
	// ColdPlateDripPoint is where condensate forms; the droplet animation
	// falls from here.
	ColdPlateDripPoint = math32.Vec3(2, 8, 0)
)

// Peltier builds the condensation chamber: acrylic shell, the hot and cold
// fin arrays around the TEC plate, the exhaust fan, the condensate tray, and
// the inlet/drain stubs. Fin arrays are fixed-count loops with linear
// spacing.
func Peltier() *scenegraph.Node {
	n := scenegraph.NewNode("peltier")

	scenegraph.AddBox(n, "base", math32.Vec3(peltWidth, 1, peltDepth), math32.Vec3(0, 0.5, 0), Aluminum)
	scenegraph.AddBox(n, "shell", math32.Vec3(peltWidth-1, peltHeight-2, peltDepth-1), math32.Vec3(0, 1+(peltHeight-2)/2, 0), AcrylicClear)

	// Hot-side heat sink: fin array plus base plate.
	hotX := float32(-4.5)
	scenegraph.AddBox(n, "hot-plate", math32.Vec3(1, 7, 8), math32.Vec3(hotX+1.2, 8.5, 0), Copper)
	for i := 0; i < hotFinCount; i++ {
		z := -finSpacing*float32(hotFinCount-1)/2 + float32(i)*finSpacing
		scenegraph.AddBox(n, "hot-fin", math32.Vec3(3.2, 6.4, 0.25), math32.Vec3(hotX-0.6, 8.5, z), Copper)
	}

	// TEC module between the sinks.
	scenegraph.AddBox(n, "tec", math32.Vec3(0.8, 4, 4), math32.Vec3(-0.4, 8.5, 0), CeramicWhite)

	// Cold-side heat sink over the tray.
	coldX := float32(2.2)
	scenegraph.AddBox(n, "cold-plate", math32.Vec3(1, 6, 7), math32.Vec3(coldX-1.2, 8.5, 0), Aluminum)
	for i := 0; i < coldFinCount; i++ {
		z := -finSpacing*float32(coldFinCount-1)/2 + float32(i)*finSpacing
		scenegraph.AddBox(n, "cold-fin", math32.Vec3(2.8, 5.5, 0.25), math32.Vec3(coldX+0.6, 8.2, z), Aluminum)
	}

	// Exhaust fan behind the hot sink.
	scenegraph.AddCylinder(n, "fan-shroud", 3, 1.2, math32.Vec3(-(peltWidth/2 - 0.8), 8.5, 0), math32.Vec3(0, 0, 90), PlasticBlack)
	scenegraph.AddCylinder(n, "fan-hub", 0.9, 1.4, math32.Vec3(-(peltWidth/2 - 0.8), 8.5, 0), math32.Vec3(0, 0, 90), SteelDark)

	// Condensate tray: shallow pan with a lip, sloping toward the drain.
	scenegraph.AddBox(n, "tray", math32.Vec3(12, 0.5, 10), math32.Vec3(0, 2, 0), SteelDark)
	scenegraph.AddBox(n, "tray-lip", math32.Vec3(12, 1.2, 0.4), math32.Vec3(0, 2.4, 5), SteelDark)
	scenegraph.AddBox(n, "tray-lip", math32.Vec3(12, 1.2, 0.4), math32.Vec3(0, 2.4, -5), SteelDark)

	// Inlet from the sorbant line and the condensate drain stub.
	scenegraph.AddCylinder(n, "inlet", 0.7, 1.8, PeltierInletPoint.Sub(math32.Vec3(0, 0.9, 0)), math32.Vector3{}, PVCWhite)
	scenegraph.AddCylinder(n, "condensate-drain", 0.7, 1.6,
		PeltierDrainPoint.Add(math32.Vec3(0, 0, 0.8)), math32.Vec3(90, 0, 0), PVCWhite)

	return n
}
