package device

import (
	"cogentcore.org/core/math32"

	"harvester-viewer/internal/scenegraph"
)

// Solar panel layout: a cellCols x cellRows grid of cells under glass.
const (
	panelWidth  = 18
	panelLength = 26
	cellCols    = 4
	cellRows    = 6
	cellGap     = 0.5
)

// SolarPanel builds the external panel: frame, glass, the cell grid, a
// junction box underneath, and the two mounting rails that bolt onto the
// mast. The panel lies in the XZ plane; the assembly tilts the whole node.
func SolarPanel() *scenegraph.Node {
	n := scenegraph.NewNode("solar-panel")

	scenegraph.AddBox(n, "frame", math32.Vec3(panelWidth, 0.9, panelLength), math32.Vec3(0, 0, 0), Aluminum)
	scenegraph.AddBox(n, "glass", math32.Vec3(panelWidth-1.2, 0.2, panelLength-1.2), math32.Vec3(0, 0.55, 0), AcrylicClear)

	// Cell grid, linear spacing with a uniform gap.
	cellW := (panelWidth - 1.2 - cellGap*float32(cellCols+1)) / cellCols
	cellL := (panelLength - 1.2 - cellGap*float32(cellRows+1)) / cellRows
	for r := 0; r < cellRows; r++ {
		for c := 0; c < cellCols; c++ {
			x := -panelWidth/2 + 0.6 + cellGap + cellW/2 + float32(c)*(cellW+cellGap)
			z := -panelLength/2 + 0.6 + cellGap + cellL/2 + float32(r)*(cellL+cellGap)
			scenegraph.AddBox(n, "cell", math32.Vec3(cellW, 0.15, cellL), math32.Vec3(x, 0.48, z), SolarCell)
		}
	}

	scenegraph.AddBox(n, "junction-box", math32.Vec3(3.5, 1.2, 2.5), math32.Vec3(0, -1, -panelLength/2+4), PlasticBlack)
	scenegraph.AddBox(n, "rail", math32.Vec3(1.2, 1, panelLength-6), math32.Vec3(-5, -1, 0), Aluminum)
	scenegraph.AddBox(n, "rail", math32.Vec3(1.2, 1, panelLength-6), math32.Vec3(5, -1, 0), Aluminum)

	return n
}
