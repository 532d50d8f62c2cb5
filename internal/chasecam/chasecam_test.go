package chasecam

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func newCamera(pos rl.Vector3) rl.Camera3D {
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Zero(),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func TestFollowTargetPositionIdentityRotation(t *testing.T) {
	f := DefaultFollow()
	cam := newCamera(rl.NewVector3(0, 0, 0))

	// Repeated updates converge on the offset point behind and above the
	// target: forward is +Z, so behind is -Z.
	pos := rl.NewVector3(0, 0, 0)
	rot := rl.QuaternionIdentity()
	for i := 0; i < 500; i++ {
		f.Update(&cam, pos, rot, 1.0/60)
	}
	assert.InDelta(t, 0, cam.Position.X, 1e-3)
	assert.InDelta(t, 5, cam.Position.Y, 1e-3)
	assert.InDelta(t, -12, cam.Position.Z, 1e-3)
}

func TestFollowIsExponentialNotInstant(t *testing.T) {
	f := DefaultFollow()
	start := rl.NewVector3(100, 0, 0)
	cam := newCamera(start)

	f.Update(&cam, rl.Vector3Zero(), rl.QuaternionIdentity(), 1.0/60)

	desired := rl.NewVector3(0, 5, -12)
	assert.NotEqual(t, start, cam.Position, "camera moved")
	assert.Greater(t, rl.Vector3Distance(cam.Position, desired), float32(1),
		"one tick does not teleport the camera")
}

func TestFollowLooksAheadOfTarget(t *testing.T) {
	f := DefaultFollow()
	cam := newCamera(rl.NewVector3(0, 5, -12))

	pos := rl.NewVector3(2, 0, 3)
	f.Update(&cam, pos, rl.QuaternionIdentity(), 1.0/60)

	assert.InDelta(t, 2, cam.Target.X, 1e-4)
	assert.InDelta(t, 0, cam.Target.Y, 1e-4)
	assert.InDelta(t, 3+f.LookAhead, cam.Target.Z, 1e-4)
	assert.Equal(t, rl.NewVector3(0, 1, 0), cam.Up, "world up is the reference")
}

func TestFollowRespectsOrientation(t *testing.T) {
	f := DefaultFollow()
	cam := newCamera(rl.Vector3Zero())

	// Target facing +X (yawed 90 degrees): the camera converges behind it
	// along -X.
	rot := rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), 3.14159265/2)
	for i := 0; i < 500; i++ {
		f.Update(&cam, rl.Vector3Zero(), rot, 1.0/60)
	}
	assert.InDelta(t, -12, cam.Position.X, 1e-2)
	assert.InDelta(t, 5, cam.Position.Y, 1e-2)
	assert.InDelta(t, 0, cam.Position.Z, 1e-2)
}
