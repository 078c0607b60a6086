// Package device builds the water-harvester mockup: one assembler per
// physical module, the plumbing router between them, and the full-assembly
// coordinator. All geometry is hand-authored in module-local coordinates;
// one unit is one centimeter on the real appliance.
package device

import (
	"image/color"

	"harvester-viewer/internal/scenegraph"
)

// Shared material palette. Builders copy these by value, so toggling
// wireframe on one primitive never leaks to another.
var (
	// Aluminum is the brushed enclosure and frame metal.
	Aluminum = scenegraph.Material{Color: color.RGBA{168, 172, 178, 255}, Roughness: 0.35, Metalness: 0.85, Opacity: 1}
	// SteelDark is fasteners, rails, and the pump body.
	SteelDark = scenegraph.Material{Color: color.RGBA{92, 96, 102, 255}, Roughness: 0.45, Metalness: 0.8, Opacity: 1}
	// Copper is heat-pipe and fin metal on the Peltier stack.
	Copper = scenegraph.Material{Color: color.RGBA{184, 115, 51, 255}, Roughness: 0.3, Metalness: 0.9, Opacity: 1}
	// AcrylicClear is the see-through chamber and tank walls.
	AcrylicClear = scenegraph.Material{Color: color.RGBA{190, 224, 235, 255}, Roughness: 0.08, Metalness: 0, Opacity: 0.32}
	// PVCWhite is pipe and fitting plastic.
	PVCWhite = scenegraph.Material{Color: color.RGBA{235, 234, 228, 255}, Roughness: 0.55, Metalness: 0, Opacity: 1}
	// PCBGreen is the controller board substrate.
	PCBGreen = scenegraph.Material{Color: color.RGBA{22, 105, 62, 255}, Roughness: 0.6, Metalness: 0, Opacity: 1}
	// PlasticBlack is fans, connectors, and small housings.
	PlasticBlack = scenegraph.Material{Color: color.RGBA{32, 32, 36, 255}, Roughness: 0.7, Metalness: 0, Opacity: 1}
	// SolarCell is the dark monocrystalline cell face.
	SolarCell = scenegraph.Material{Color: color.RGBA{24, 32, 56, 255}, Roughness: 0.2, Metalness: 0.1, Opacity: 1}
	// WaterBlue is the reservoir fill volume.
	WaterBlue = scenegraph.Material{Color: color.RGBA{64, 144, 220, 255}, Roughness: 0.05, Metalness: 0, Opacity: 0.55}
	// Desiccant is the amber silica-bead cartridge color.
	Desiccant = scenegraph.Material{Color: color.RGBA{224, 168, 84, 255}, Roughness: 0.8, Metalness: 0, Opacity: 1}
	// CeramicWhite is the TEC plate ceramic.
	CeramicWhite = scenegraph.Material{Color: color.RGBA{240, 240, 236, 255}, Roughness: 0.4, Metalness: 0, Opacity: 1}
	// LEDAmber is the pulsing status light.
	LEDAmber = scenegraph.Material{Color: color.RGBA{255, 184, 48, 255}, Roughness: 0.2, Metalness: 0, Opacity: 1, Emissive: true}
	// ScreenGray is perforated mesh and vent screens.
	ScreenGray = scenegraph.Material{Color: color.RGBA{120, 124, 128, 255}, Roughness: 0.7, Metalness: 0.3, Opacity: 0.85}
	// LabelWhite is the caption sprite material (wireframe-exempt).
	LabelWhite = scenegraph.Material{Color: color.RGBA{245, 245, 245, 255}, Roughness: 1, Metalness: 0, Opacity: 1, Label: true}
)
