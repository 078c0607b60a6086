package main

import (
	"os"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"harvester-viewer/internal/debug"
	"harvester-viewer/internal/device"
	"harvester-viewer/internal/droplets"
	"harvester-viewer/internal/env"
	"harvester-viewer/internal/graphics"
	"harvester-viewer/internal/input"
	"harvester-viewer/internal/logger"
	"harvester-viewer/internal/render"
	"harvester-viewer/internal/scenegraph"
	"harvester-viewer/internal/ui"
	"harvester-viewer/internal/view"
	"harvester-viewer/internal/viewerconfig"
)

const windowTitle = "Water Harvester Mockup"

// dropCount and dripFloorY tune the condensate animation: drops fall from
// the cold plate to the tray surface.
const (
	dropCount  = 6
	dripFloorY = float32(2.3)
)

func main() {
	log := logger.New()
	_ = env.Load(".env")

	prefs, _ := viewerconfig.Load()
	if m := os.Getenv("VIEWER_MODULE"); m != "" {
		prefs.ActiveModule = m
	}

	catalog, err := device.LoadCatalog()
	if err != nil {
		log.Logf("catalog: %v", err)
	}

	ctrl := view.NewController(log)
	builders := map[view.ModuleName]func() *scenegraph.Node{
		view.ModuleElectronics: device.Electronics,
		view.ModuleSorbant:     device.Sorbant,
		view.ModulePeltier:     device.Peltier,
		view.ModuleFiltration:  device.Filtration,
		view.ModuleAssembly:    device.Assembly,
	}
	for _, name := range view.ModuleOrder {
		ctrl.Register(name, builders[name](), cameraPreset(catalog, name))
	}

	overlay := ui.New(catalog)
	ctrl.OnModuleChange = overlay.SetActive

	// Restore persisted view state. Unknown module names fall through as a
	// no-op and the default stays.
	ctrl.SelectModule(prefs.ActiveModule)
	if prefs.Wireframe {
		ctrl.ToggleWireframe()
	}
	if prefs.AutoRotate {
		ctrl.ToggleAutoRotate()
	}
	overlay.SetActive(ctrl.Active())

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS

	keys := input.New()
	keys.Bind(rl.KeyOne, "select-electronics", "1-5 modules", func() { ctrl.SelectModule(string(view.ModuleElectronics)) })
	keys.Bind(rl.KeyTwo, "select-sorbant", "", func() { ctrl.SelectModule(string(view.ModuleSorbant)) })
	keys.Bind(rl.KeyThree, "select-peltier", "", func() { ctrl.SelectModule(string(view.ModulePeltier)) })
	keys.Bind(rl.KeyFour, "select-filtration", "", func() { ctrl.SelectModule(string(view.ModuleFiltration)) })
	keys.Bind(rl.KeyFive, "select-assembly", "", func() { ctrl.SelectModule(string(view.ModuleAssembly)) })
	keys.Bind(rl.KeyW, "wireframe", "W wireframe", ctrl.ToggleWireframe)
	keys.Bind(rl.KeyR, "auto-rotate", "R rotate", ctrl.ToggleAutoRotate)
	keys.Bind(rl.KeySpace, "reset-view", "SPACE reset", ctrl.ResetView)
	keys.Bind(rl.KeyF, "fps-overlay", "F fps", dbg.ToggleFPS)
	overlay.SetHint(keys.HelpLine())

	drops := droplets.New(device.ColdPlateDripPoint, dripFloorY, dropCount)
	rend := render.New()

	log.Log("viewer started, module " + string(ctrl.Active()))

	update := func() {
		keys.Poll()
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			m := rl.GetMousePosition()
			if name, ok := overlay.HitButton(m.X, m.Y); ok {
				ctrl.SelectModule(string(name))
			}
		}
		drops.Step(rl.GetFrameTime())
	}
	draw := func() {
		rend.Frame(rl.GetFrameTime(), ctrl, drops)
		overlay.Draw()
		dbg.Draw()
	}
	graphics.Run(windowTitle, update, draw)

	st := ctrl.State()
	_ = viewerconfig.Save(viewerconfig.Prefs{
		ActiveModule: string(st.Active),
		Wireframe:    st.Wireframe,
		AutoRotate:   st.AutoRotate,
		ShowFPS:      dbg.ShowFPS,
	})
	log.Log("viewer exited")
}

// cameraPreset converts a catalog camera pose to a view camera; modules
// missing from the catalog get the default pose.
func cameraPreset(cat device.Catalog, name view.ModuleName) view.Camera {
	entry, ok := cat.Modules[string(name)]
	if !ok {
		return view.DefaultCamera
	}
	return view.Camera{
		Position: math32.Vec3(entry.Camera.Position[0], entry.Camera.Position[1], entry.Camera.Position[2]),
		Target:   math32.Vec3(entry.Camera.Target[0], entry.Camera.Target[1], entry.Camera.Target[2]),
		Fovy:     45,
	}
}
