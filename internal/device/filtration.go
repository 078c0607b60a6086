package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Filtration and reservoir layout: the tank sits on the right, the three
// filter stages and pump on the left.
const (
	tankWidth  = float32(11)
	tankHeight = float32(14)
	tankDepth  = float32(12)
	tankWallX  = float32(5) // tank center X

	// waterFill is the reservoir fill fraction the water volume is sized to.
	waterFill = float32(0.6)

	filterCount   = 3
	filterSpacing = float32(4.5)
)

// ReservoirInletPoint is where the condensate line from the Peltier drain
// enters the tank, in filtration-local coordinates.
var ReservoirInletPoint = math32.Vec3(tankWallX, tankHeight+1, 0)

// SpigotPoint is the dispensing outlet on the front face.
var SpigotPoint = math32.Vec3(-8, 3, tankDepth/2)

// Filtration builds the filtration and reservoir module: the clear tank with
// its water fill volume, three filter canisters in a row (sediment, carbon,
// mineralization), the pump, and the spigot.
func Filtration() *scenegraph.Node {
	n := scenegraph.NewNode("filtration")

	scenegraph.AddBox(n, "base", math32.Vec3(22, 1, 16), math32.Vec3(0, 0.5, 0), Aluminum)

	// Reservoir tank and water fill, sized to the fill fraction.
	scenegraph.AddBox(n, "tank", math32.Vec3(tankWidth, tankHeight, tankDepth), math32.Vec3(tankWallX, 1+tankHeight/2, 0), AcrylicClear)
	waterH := (tankHeight - 1) * waterFill
	scenegraph.AddBox(n, "water", math32.Vec3(tankWidth-1, waterH, tankDepth-1), math32.Vec3(tankWallX, 1.5+waterH/2, 0), WaterBlue)
	scenegraph.AddBox(n, "tank-lid", math32.Vec3(tankWidth+0.8, 0.6, tankDepth+0.8), math32.Vec3(tankWallX, 1.3+tankHeight, 0), Aluminum)
	scenegraph.AddCylinder(n, "inlet-port", 0.8, 1.4, ReservoirInletPoint.Sub(math32.Vec3(0, 0.4, 0)), math32.Vector3{}, PVCWhite)

	// Filter canisters: stage loop with linear spacing.
	stageMats := [filterCount]scenegraph.Material{PVCWhite, PlasticBlack, AcrylicClear}
	for i := 0; i < filterCount; i++ {
		x := -9 + float32(i)*filterSpacing
		scenegraph.AddCylinder(n, "filter-body", 1.7, 9, math32.Vec3(x, 5.5, -3), math32.Vector3{}, stageMats[i])
		scenegraph.AddCylinder(n, "filter-head", 1.9, 1, math32.Vec3(x, 10.5, -3), math32.Vector3{}, PlasticBlack)
	}
	// Head manifold linking the three stages.
	scenegraph.AddBox(n, "manifold", math32.Vec3(filterSpacing*float32(filterCount-1)+2, 0.8, 1.2), math32.Vec3(-9+filterSpacing, 11.3, -3), PVCWhite)

	// Pump: body block plus motor can.
	scenegraph.AddBox(n, "pump-body", math32.Vec3(3.4, 2.6, 2.6), math32.Vec3(-8, 2.3, 3), SteelDark)
	scenegraph.AddCylinder(n, "pump-motor", 1.1, 3, math32.Vec3(-5.8, 2.3, 3), math32.Vec3(0, 0, 90), PlasticBlack)

	// Spigot on the front face.
	scenegraph.AddCylinder(n, "spigot", 0.5, 1.6, SpigotPoint.Add(math32.Vec3(0, 0, 0.8)), math32.Vec3(90, 0, 0), SteelDark)
	scenegraph.AddCylinder(n, "spigot-drop", 0.5, 1.2, SpigotPoint.Add(math32.Vec3(0, -0.8, 1.6)), math32.Vector3{}, SteelDark)

	return n
}
