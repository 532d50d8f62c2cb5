package game

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Car visuals are composed from primitives in vehicle-local space: a body box,
// a cabin box, and four wheel cylinders lying on their sides. Offsets are in
// the vehicle frame (+Z forward, +Y up).
var (
	carBodyColor  = rl.NewColor(204, 51, 51, 255)
	carCabinColor = rl.NewColor(153, 38, 38, 255)
	carWheelColor = rl.NewColor(26, 26, 26, 255)

	carBodyOffset  = rl.NewVector3(0, 0.4, 0)
	carBodyScale   = rl.NewVector3(2, 0.8, 4)
	carCabinOffset = rl.NewVector3(0, 1.0, -0.2)
	carCabinScale  = rl.NewVector3(1.6, 0.6, 2)

	wheelOffsets = []rl.Vector3{
		{X: -1.0, Y: 0, Z: 1.2},
		{X: 1.0, Y: 0, Z: 1.2},
		{X: -1.0, Y: 0, Z: -1.2},
		{X: 1.0, Y: 0, Z: -1.2},
	}
	// Wheel: cylinder axis along X (rolled 90 degrees about Z), diameter 0.8,
	// width 0.3.
	wheelScale = rl.NewVector3(0.8, 0.3, 0.8)
)

// drawCar draws the vehicle's body parts at its current pose. Call between
// BeginMode3D and EndMode3D.
func (g *Game) drawCar() {
	pos := g.car.Position
	rot := g.car.Rotation

	g.prims.DrawOriented("cube", partPosition(pos, rot, carBodyOffset), rot, carBodyScale, carBodyColor)
	g.prims.DrawOriented("cube", partPosition(pos, rot, carCabinOffset), rot, carCabinScale, carCabinColor)

	roll := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 0, 1), math32.Pi/2)
	wheelRot := rl.QuaternionMultiply(rot, roll)
	for _, off := range wheelOffsets {
		g.prims.DrawOriented("cylinder", partPosition(pos, rot, off), wheelRot, wheelScale, carWheelColor)
	}
}

// partPosition returns the world position of a vehicle-local offset.
func partPosition(pos rl.Vector3, rot rl.Quaternion, local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(local, rot))
}
