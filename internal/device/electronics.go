package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// StatusLEDName marks the pulsing front-panel LED; the renderer drives its
// brightness from elapsed time each frame.
const StatusLEDName = "status-led"

// Electronics enclosure dimensions and layout.
const (
	elecWidth  = 20
	elecHeight = 10
	elecDepth  = 14

	elecTerminalCount = 6
	elecCapCount      = 4
	elecVentCount     = 5
)

// Electronics builds the electronics box: enclosure, controller PCB on a DIN
// rail, terminal blocks, capacitors, vents, cable glands, and the status LED
// on the front door. Fresh node per call, no shared state.
func Electronics() *scenegraph.Node {
	n := scenegraph.NewNode("electronics")

	// Enclosure shell and front door (door slightly proud of the shell).
	scenegraph.AddBox(n, "enclosure", math32.Vec3(elecWidth, elecHeight, elecDepth), math32.Vec3(0, elecHeight/2, 0), Aluminum)
	scenegraph.AddBox(n, "door", math32.Vec3(elecWidth-1.6, elecHeight-1.2, 0.4), math32.Vec3(0, elecHeight/2, elecDepth/2+0.2), Aluminum)

	// DIN rail and controller board.
	scenegraph.AddBox(n, "din-rail", math32.Vec3(16, 0.7, 1.4), math32.Vec3(0, 2, -2), SteelDark)
	scenegraph.AddBox(n, "pcb", math32.Vec3(13, 0.35, 8.5), math32.Vec3(0, 2.6, 0), PCBGreen)
	scenegraph.AddBox(n, "mcu", math32.Vec3(2.4, 0.5, 2.4), math32.Vec3(-2.5, 3, 0.5), PlasticBlack)

	// Terminal blocks along the front edge of the board.
	for i := 0; i < elecTerminalCount; i++ {
		x := -5 + float32(i)*2
		scenegraph.AddBox(n, "terminal", math32.Vec3(1.6, 1.4, 1.2), math32.Vec3(x, 3.4, 3.4), PVCWhite)
	}

	// Electrolytic capacitors behind the MCU.
	for i := 0; i < elecCapCount; i++ {
		x := 2 + float32(i)*1.8
		scenegraph.AddCylinder(n, "capacitor", 0.55, 1.6, math32.Vec3(x, 3.6, -2.5), math32.Vector3{}, PlasticBlack)
	}

	// Side vent slots.
	for i := 0; i < elecVentCount; i++ {
		y := 3 + float32(i)*1.2
		scenegraph.AddBox(n, "vent", math32.Vec3(0.3, 0.5, 9), math32.Vec3(elecWidth/2+0.05, y, 0), ScreenGray)
	}

	// Cable glands on top, feeding the modules above.
	scenegraph.AddCylinder(n, "gland", 0.8, 1.4, math32.Vec3(-6, elecHeight+0.4, -3), math32.Vector3{}, PlasticBlack)
	scenegraph.AddCylinder(n, "gland", 0.8, 1.4, math32.Vec3(-4, elecHeight+0.4, -3), math32.Vector3{}, PlasticBlack)

	// Rocker switch and the pulsing status LED on the door.
	scenegraph.AddBox(n, "switch", math32.Vec3(1.8, 1.1, 0.6), math32.Vec3(7, 6.5, elecDepth/2+0.6), PlasticBlack)
	scenegraph.AddCylinder(n, StatusLEDName, 0.45, 0.7,
		math32.Vec3(7, 4.5, elecDepth/2+0.55), math32.Vec3(90, 0, 0), LEDAmber)

	return n
}
