package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 800
	targetFPS    = 60
)

// backgroundColor is the clear color behind the scene.
var backgroundColor = rl.NewColor(16, 18, 24, 255)

// Run starts the window and main loop. Each frame it calls update (input,
// animation state), then clears the screen and calls draw (3D scene, then 2D
// overlay). Resizable window; ESC does not quit (close via window button),
// and resize is handled by raylib so only the aspect ratio follows the
// window.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}
