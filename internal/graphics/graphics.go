package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run starts the window and main loop. Each frame it calls update with the
// elapsed frame time, then clears the screen and calls draw. This keeps the
// graphics layer separate from simulation and overlay content.
func Run(width, height int32, title string, targetFPS int32, update func(dt float32), draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	if targetFPS > 0 {
		rl.SetTargetFPS(targetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
