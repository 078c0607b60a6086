package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Stack offsets of each module base plate in the full assembly, bottom to
// top. Fixed constants, not derived from module bounding boxes: if a module
// grows taller, these must be retuned by hand.
const (
	OffsetElectronics = float32(0)
	OffsetFiltration  = float32(11)
	OffsetPeltier     = float32(33)
	OffsetSorbant     = float32(50)
)

// Solar panel placement beside the stack.
var (
	solarMastPos  = math32.Vec3(-18, 22, 0)
	solarPanelPos = math32.Vec3(-18, 46, 0)
	solarTilt     = math32.Vec3(0, 0, -32)
)

// Assembly builds the full composite: every module exactly once at its stack
// offset, the solar panel on its mast, the plumbing connectors, and a
// caption label per module. The returned node is itself one module in the
// viewer, with all sub-modules visible at once.
func Assembly() *scenegraph.Node {
	root := scenegraph.NewNode("assembly")

	stack := []struct {
		build  func() *scenegraph.Node
		offset float32
	}{
		{Electronics, OffsetElectronics},
		{Filtration, OffsetFiltration},
		{Peltier, OffsetPeltier},
		{Sorbant, OffsetSorbant},
	}
	for _, s := range stack {
		m := s.build()
		m.Pos = math32.Vec3(0, s.offset, 0)
		root.AddChild(m)
	}

	// Solar panel on its mast beside the stack.
	scenegraph.AddCylinder(root, "mast", 0.9, 44, solarMastPos, math32.Vector3{}, SteelDark)
	scenegraph.AddBox(root, "mast-foot", math32.Vec3(6, 1, 6), math32.Vec3(solarMastPos.X, 0.5, solarMastPos.Z), SteelDark)
	panel := SolarPanel()
	panel.Pos = solarPanelPos
	panel.Rot = solarTilt
	root.AddChild(panel)

	root.AddChild(Connectors())

	// Module captions at fixed positions beside the stack.
	scenegraph.AddLabel(root, "label-title", "ATMOSPHERIC WATER HARVESTER", 2.6, math32.Vec3(0, 70, 0), LabelWhite)
	scenegraph.AddLabel(root, "label-sorbant", "SORBANT CHAMBER", 2, math32.Vec3(16, OffsetSorbant+7, 0), LabelWhite)
	scenegraph.AddLabel(root, "label-peltier", "PELTIER CONDENSER", 2, math32.Vec3(16, OffsetPeltier+8, 0), LabelWhite)
	scenegraph.AddLabel(root, "label-filtration", "FILTRATION + RESERVOIR", 2, math32.Vec3(16, OffsetFiltration+8, 0), LabelWhite)
	scenegraph.AddLabel(root, "label-electronics", "ELECTRONICS", 2, math32.Vec3(16, OffsetElectronics+5, 0), LabelWhite)
	scenegraph.AddLabel(root, "label-solar", "SOLAR PANEL", 2, math32.Vec3(-18, 60, 0), LabelWhite)

	return root
}
