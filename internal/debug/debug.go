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
	helpSize   = 16
	// updateInterval: only refresh FPS/Mem/HUD text every N frames to reduce allocations.
	updateInterval = 30
)

var helpLines = []string{
	"W/S or Up/Down: throttle / brake",
	"A/D or Left/Right: steer",
	"P: toggle plane selection (click 3 points)",
	"R: reset ground plane",
	"drop a .ply file to load a splat",
}

// HUD is what the overlay shows about the running game this frame.
type HUD struct {
	Speed         float32
	SteeringAngle float32
	Picking       bool
	PickedPoints  int
	SplatPoints   int
}

// Debug draws runtime overlays: FPS and heap counters top-right, drive state
// and controls help top-left. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHelp     bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastHudText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders enabled overlays. Call after the 3D scene in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(hud HUD) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.lastFpsText == "" || d.lastHudText == "" {
		update = true
	}

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
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		w := rl.MeasureText(d.lastMemText, fontSize)
		rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
	}

	if update {
		d.lastHudText = fmt.Sprintf("speed %5.1f  steer %+.2f", hud.Speed, hud.SteeringAngle)
	}
	y = int32(padding)
	rl.DrawText(d.lastHudText, padding, y, fontSize, rl.RayWhite)
	y += lineHeight

	if hud.Picking {
		text := fmt.Sprintf("plane selection: %d/3 points", hud.PickedPoints)
		rl.DrawText(text, padding, y, fontSize, rl.Yellow)
		y += lineHeight
	}
	if hud.SplatPoints > 0 {
		rl.DrawText(fmt.Sprintf("splat: %d points", hud.SplatPoints), padding, y, fontSize, rl.Gray)
		y += lineHeight
	}

	if d.ShowHelp {
		hy := int32(rl.GetScreenHeight()) - int32(len(helpLines))*(helpSize+2) - padding
		for _, line := range helpLines {
			rl.DrawText(line, padding, hy, helpSize, rl.LightGray)
			hy += helpSize + 2
		}
	}
}
