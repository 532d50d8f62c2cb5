package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"splat-racer/internal/groundplane"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Plane-grid visualization: line spacing and radius of the debug grid drawn on
// a user-defined plane, and the length of its normal arrow.
const (
	planeGridSpacing = 2
	planeGridRadius  = 20
	normalArrowLen   = 3
	markerRadius     = 0.2
)

// Scene owns the 3D camera and draws the world. The chase camera writes
// Camera each tick; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
}

// New returns a scene with a perspective camera behind and above the origin,
// matching where the chase camera wants to be for a vehicle at rest.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(0, 10, 20)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// MouseRay returns the world-space ray from the camera through cursor.
func (s *Scene) MouseRay(cursor rl.Vector2) rl.Ray {
	return rl.GetMouseRay(cursor, s.Camera)
}

// Draw renders the 3D world: the editor grid while the plane is still the
// default, the plane grid once one is defined, pick markers, and whatever
// draw3D adds (splat cloud, vehicle). Call after ClearBackground.
func (s *Scene) Draw(plane groundplane.Plane, markers []rl.Vector3, draw3D func()) {
	rl.BeginMode3D(s.Camera)
	if plane.Defined {
		drawPlaneGrid(plane)
	} else if s.GridVisible {
		drawEditorGrid()
	}
	for _, m := range markers {
		rl.DrawSphere(m, markerRadius, rl.Red)
	}
	if draw3D != nil {
		draw3D()
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a Unity-style grid on the XZ plane with major/minor
// lines and axis lines. Reuses start/end vectors to avoid per-frame
// allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}

// drawPlaneGrid draws the debug grid spanning a user-defined plane: lines at
// fixed spacing along a tangent basis derived from the normal, plus an arrow
// showing the normal direction. Rendering aid only.
func drawPlaneGrid(p groundplane.Plane) {
	tangent1, tangent2 := planeTangents(p.Normal)
	color := rl.NewColor(0, 255, 0, 80)

	steps := int(planeGridRadius / planeGridSpacing)
	for i := -steps; i <= steps; i++ {
		offset := float32(i) * planeGridSpacing

		along1 := rl.Vector3Add(p.Origin, rl.Vector3Scale(tangent1, offset))
		start := rl.Vector3Subtract(along1, rl.Vector3Scale(tangent2, planeGridRadius))
		end := rl.Vector3Add(along1, rl.Vector3Scale(tangent2, planeGridRadius))
		rl.DrawLine3D(start, end, color)

		along2 := rl.Vector3Add(p.Origin, rl.Vector3Scale(tangent2, offset))
		start = rl.Vector3Subtract(along2, rl.Vector3Scale(tangent1, planeGridRadius))
		end = rl.Vector3Add(along2, rl.Vector3Scale(tangent1, planeGridRadius))
		rl.DrawLine3D(start, end, color)
	}

	tip := rl.Vector3Add(p.Origin, rl.Vector3Scale(p.Normal, normalArrowLen))
	rl.DrawLine3D(p.Origin, tip, rl.Blue)
	rl.DrawSphere(tip, 0.1, rl.Blue)
}

// planeTangents returns two unit vectors spanning the plane with the given
// normal. The cross reference flips from world-up to world-X when the normal
// is close to vertical, so the basis never degenerates.
func planeTangents(normal rl.Vector3) (rl.Vector3, rl.Vector3) {
	var ref rl.Vector3
	if normal.Y > -0.9 && normal.Y < 0.9 {
		ref = rl.NewVector3(0, 1, 0)
	} else {
		ref = rl.NewVector3(1, 0, 0)
	}
	t1 := rl.Vector3Normalize(rl.Vector3CrossProduct(normal, ref))
	t2 := rl.Vector3Normalize(rl.Vector3CrossProduct(normal, t1))
	return t1, t2
}
