// Package ui draws the 2D overlay: the module button bar, the active
// module's caption panel with its legend, and the key-binding hint line.
// The controller drives it through SetActive (observer callback); the
// overlay never reaches back into view state.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"harvester-viewer/internal/device"
	"harvester-viewer/internal/view"
)

const (
	buttonHeight  = 34
	buttonPad     = 14
	buttonGap     = 8
	buttonFont    = 18
	panelWidth    = 330
	panelPad      = 12
	titleFont     = 22
	bodyFont      = 16
	bodyLine      = bodyFont + 6
	hintFont      = 16
	bottomMargin  = 16
)

// Overlay panel colors, reused every frame.
var (
	panelBg      = rl.NewColor(22, 24, 30, 225)
	panelBorder  = rl.NewColor(90, 96, 108, 255)
	buttonBg     = rl.NewColor(38, 42, 52, 230)
	buttonActive = rl.NewColor(46, 110, 160, 240)
	textColor    = rl.NewColor(235, 236, 240, 255)
	dimColor     = rl.NewColor(160, 164, 172, 255)
)

// button is one module selector in the bottom bar; bounds are recomputed
// each frame from the screen size.
type button struct {
	name   view.ModuleName
	label  string
	bounds rl.Rectangle
}

// Overlay holds the catalog-driven panels and the active-module highlight.
type Overlay struct {
	catalog device.Catalog
	active  view.ModuleName
	buttons []button
	hint    string
}

// New builds an overlay with one button per module, in ModuleOrder, labeled
// from the catalog titles.
func New(cat device.Catalog) *Overlay {
	o := &Overlay{catalog: cat, active: view.DefaultModule}
	for _, name := range view.ModuleOrder {
		label := string(name)
		if e, ok := cat.Modules[string(name)]; ok && e.Title != "" {
			label = e.Title
		}
		o.buttons = append(o.buttons, button{name: name, label: label})
	}
	return o
}

// SetActive updates which button is highlighted and which caption panel is
// shown. Wired to the controller's OnModuleChange callback.
func (o *Overlay) SetActive(name view.ModuleName) {
	o.active = name
}

// SetHint sets the key-binding hint line drawn under the caption panel.
func (o *Overlay) SetHint(hint string) {
	o.hint = hint
}

// HitButton returns the module button containing the point, if any. Bounds
// are the ones laid out by the most recent Draw.
func (o *Overlay) HitButton(x, y float32) (view.ModuleName, bool) {
	for _, b := range o.buttons {
		if rl.CheckCollisionPointRec(rl.NewVector2(x, y), b.bounds) {
			return b.name, true
		}
	}
	return "", false
}

// Draw renders the button bar and the active module's caption panel.
func (o *Overlay) Draw() {
	o.drawButtons()
	o.drawPanel()
}

func (o *Overlay) drawButtons() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	total := float32(0)
	for i := range o.buttons {
		w := float32(rl.MeasureText(o.buttons[i].label, buttonFont)) + 2*buttonPad
		o.buttons[i].bounds.Width = w
		o.buttons[i].bounds.Height = buttonHeight
		total += w
		if i > 0 {
			total += buttonGap
		}
	}
	x := (screenW - total) / 2
	y := screenH - buttonHeight - bottomMargin
	for i := range o.buttons {
		b := &o.buttons[i]
		b.bounds.X = x
		b.bounds.Y = y
		bg := buttonBg
		if b.name == o.active {
			bg = buttonActive
		}
		rl.DrawRectangleRec(b.bounds, bg)
		rl.DrawRectangleLinesEx(b.bounds, 1, panelBorder)
		rl.DrawText(b.label, int32(b.bounds.X)+buttonPad, int32(b.bounds.Y)+(buttonHeight-buttonFont)/2, buttonFont, textColor)
		x += b.bounds.Width + buttonGap
	}
}

func (o *Overlay) drawPanel() {
	entry, ok := o.catalog.Modules[string(o.active)]
	if !ok {
		return
	}
	lines := 2 + len(entry.Legend) // title, caption, legend
	h := int32(2*panelPad + titleFont + 8 + lines*bodyLine)
	x, y := int32(16), int32(16)
	rl.DrawRectangle(x, y, panelWidth, h, panelBg)
	rl.DrawRectangleLines(x, y, panelWidth, h, panelBorder)

	tx, ty := x+panelPad, y+panelPad
	rl.DrawText(entry.Title, tx, ty, titleFont, textColor)
	ty += titleFont + 8
	rl.DrawText(entry.Caption, tx, ty, bodyFont, dimColor)
	ty += bodyLine
	for _, line := range entry.Legend {
		rl.DrawText("- "+line, tx, ty, bodyFont, dimColor)
		ty += bodyLine
	}
	if o.hint != "" {
		rl.DrawText(o.hint, tx, y+h+10, hintFont, dimColor)
	}
}
