// Package input samples raw key and mouse state once per frame into a plain
// struct. Simulation code consumes the struct and never touches the input
// device directly.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is one frame of driver and editor input. Throttle, Brake, and Steer
// are held state; TogglePick, ResetPlane, and Click are just-pressed edges.
type State struct {
	Throttle bool
	Brake    bool
	// Steer is +1 for left, -1 for right; left wins when both are held.
	Steer float32

	TogglePick bool
	ResetPlane bool
	// Click is a left mouse press with the cursor on screen; Cursor is where.
	Click  bool
	Cursor rl.Vector2
}

// Sample reads the current frame's input. WASD and the arrow keys both drive;
// P toggles plane selection, R resets the plane, left click picks a point.
func Sample() State {
	var s State

	s.Throttle = rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
	s.Brake = rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown)

	s.Steer = steerAxis(
		rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
	)

	s.TogglePick = rl.IsKeyPressed(rl.KeyP)
	s.ResetPlane = rl.IsKeyPressed(rl.KeyR)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.IsCursorOnScreen() {
		s.Click = true
		s.Cursor = rl.GetMousePosition()
	}
	return s
}

// steerAxis folds the two steer keys into one axis. Left wins when both are
// held, so opposite keys never cancel into a dead wheel mid-corner.
func steerAxis(left, right bool) float32 {
	switch {
	case left:
		return 1
	case right:
		return -1
	}
	return 0
}
