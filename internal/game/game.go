// Package game wires the simulation together and runs the per-frame pipeline.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"splat-racer/internal/chasecam"
	"splat-racer/internal/config"
	"splat-racer/internal/debug"
	"splat-racer/internal/groundplane"
	"splat-racer/internal/input"
	"splat-racer/internal/primitives"
	"splat-racer/internal/scene"
	"splat-racer/internal/splat"
	"splat-racer/internal/vehicle"
)

// Game owns every system and runs them in a fixed order each frame: input
// sampling, plane picking events, vehicle input integration, vehicle pose
// step, then the chase camera. The camera always sees the vehicle's pose for
// the current frame, never the previous one.
type Game struct {
	log    *zap.Logger
	cfg    config.Config
	scene  *scene.Scene
	planes *groundplane.Store
	picker *groundplane.Picker
	car    *vehicle.Vehicle
	follow chasecam.Follow
	loader *splat.Loader
	prims  *primitives.Registry
	debug  *debug.Debug
}

// New builds a game from config: default horizontal plane, one vehicle at the
// origin, inactive picker, idle splat loader.
func New(cfg config.Config, log *zap.Logger) *Game {
	planes := groundplane.NewStore()
	scn := scene.New()
	scn.GridVisible = cfg.GridVisible

	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	dbg.ShowHelp = cfg.Debug.ShowHelp

	return &Game{
		log:    log,
		cfg:    cfg,
		scene:  scn,
		planes: planes,
		picker: groundplane.NewPicker(planes, log),
		car:    vehicle.New(cfg.Vehicle),
		follow: cfg.Camera,
		loader: splat.NewLoader(log),
		prims:  primitives.NewRegistry(),
		debug:  dbg,
	}
}

// LoadSplat starts loading the point cloud at path in the background.
func (g *Game) LoadSplat(path string) {
	g.loader.Begin(path)
}

// Update advances one frame.
func (g *Game) Update(dt float32) {
	in := input.Sample()

	// Asset events: dropped files start a new load, finished loads install.
	if rl.IsFileDropped() {
		if files := rl.LoadDroppedFiles(); len(files) > 0 {
			g.loader.Begin(files[0])
		}
		rl.UnloadDroppedFiles()
	}
	g.loader.Poll()

	// Plane picking events.
	if in.TogglePick {
		g.picker.Toggle()
	}
	if in.ResetPlane {
		g.picker.Reset()
	}
	if in.Click {
		g.picker.Click(g.scene.MouseRay(in.Cursor))
	}

	// Simulation, in order: integrate input, advance pose, follow.
	g.car.ApplyInput(vehicle.Controls{
		Throttle: in.Throttle,
		Brake:    in.Brake,
		Steer:    in.Steer,
	}, dt)
	g.car.Step(g.planes.Get(), dt)
	g.follow.Update(&g.scene.Camera, g.car.Position, g.car.Rotation, dt)
}

// Draw renders the frame: splat cloud, ground grid, pick markers, vehicle,
// then the 2D overlay.
func (g *Game) Draw() {
	cam := g.scene.Camera
	g.prims.SetView(
		[3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z},
		[3]float32{0.5, 1, 0.5},
	)

	g.scene.Draw(g.planes.Get(), g.picker.Points(), func() {
		if c := g.loader.Cloud(); c != nil {
			c.Draw()
		}
		g.drawCar()
	})

	hud := debug.HUD{
		Speed:         g.car.Speed,
		SteeringAngle: g.car.SteeringAngle,
		Picking:       g.picker.Active(),
		PickedPoints:  len(g.picker.Points()),
	}
	if c := g.loader.Cloud(); c != nil {
		hud.SplatPoints = len(c.Points)
	}
	g.debug.Draw(hud)
}
