// Package view holds the viewer's state machine: which module is active,
// the display toggles, and the camera pose. It owns no rendering; the render
// loop reads the state every frame and UI events drive the transitions.
package view

import (
	"cogentcore.org/core/math32"
)

// ModuleName identifies one viewable module. The set is closed; SelectModule
// ignores anything else.
type ModuleName string

const (
	ModuleElectronics ModuleName = "electronics"
	ModuleSorbant     ModuleName = "sorbant"
	ModulePeltier     ModuleName = "peltier"
	ModuleFiltration  ModuleName = "filtration"
	ModuleAssembly    ModuleName = "assembly"
)

// ModuleOrder is the presentation order of the modules (button bar, key
// bindings 1 through 5).
var ModuleOrder = []ModuleName{
	ModuleElectronics,
	ModuleSorbant,
	ModulePeltier,
	ModuleFiltration,
	ModuleAssembly,
}

// DefaultModule is the module shown at startup.
const DefaultModule = ModulePeltier

// Camera is a viewer camera pose. Fovy is vertical field of view in degrees.
type Camera struct {
	Position math32.Vector3
	Target   math32.Vector3
	Fovy     float32
}

// DefaultCamera is the single pose ResetView restores regardless of the
// active module.
var DefaultCamera = Camera{
	Position: math32.Vec3(55, 60, 62),
	Target:   math32.Vec3(0, 32, 0),
	Fovy:     45,
}

// State is the complete view state. It is a plain comparable value so tests
// can snapshot it before and after a transition.
type State struct {
	Active     ModuleName
	Wireframe  bool
	AutoRotate bool
	Camera     Camera
}

// LightPulse returns the status-light intensity for the given elapsed time
// in seconds: a deterministic slow pulse in (0.1, 1].
func LightPulse(elapsed float32) float32 {
	return 0.55 + 0.45*math32.Sin(elapsed*2.2)
}
