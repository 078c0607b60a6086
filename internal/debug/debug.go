package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh the FPS/Mem text every N frames to limit
	// per-frame allocations.
	updateInterval = 30
)

// Debug draws the optional FPS and heap-allocation overlays, top-right.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// ToggleFPS flips the FPS counter.
func (d *Debug) ToggleFPS() {
	d.ShowFPS = !d.ShowFPS
}

// Draw renders any enabled overlays. Call last in the draw loop so the text
// sits on top.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		w := rl.MeasureText(d.lastMemText, fontSize)
		rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
