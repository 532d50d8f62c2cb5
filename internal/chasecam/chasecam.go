// Package chasecam smooths a camera toward an offset behind and above a
// tracked pose. It is purely reactive: no state beyond the camera it writes.
package chasecam

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Follow is the camera-follow law. Offset is in the target's local frame
// (Y above, Z behind); Smoothness is the exponential approach rate per second;
// LookAhead is how far in front of the target the camera aims.
type Follow struct {
	Offset     rl.Vector3 `yaml:"offset"`
	Smoothness float32    `yaml:"smoothness"`
	LookAhead  float32    `yaml:"look_ahead"`
}

// DefaultFollow returns the stock chase feel: 12 behind, 5 above, rate 5,
// aiming 5 ahead of the car.
func DefaultFollow() Follow {
	return Follow{
		Offset:     rl.NewVector3(0, 5, 12),
		Smoothness: 5,
		LookAhead:  5,
	}
}

// Update moves cam one tick toward its follow position for a target at pos
// with orientation rot. The position eases in exponentially rather than
// snapping, so plane changes and sharp turns read smoothly; the look target
// leads the vehicle with world-up as the reference.
func (f Follow) Update(cam *rl.Camera3D, pos rl.Vector3, rot rl.Quaternion, dt float32) {
	forward := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), rot)
	up := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), rot)

	target := pos
	target = rl.Vector3Add(target, rl.Vector3Scale(forward, -f.Offset.Z))
	target = rl.Vector3Add(target, rl.Vector3Scale(up, f.Offset.Y))

	t := f.Smoothness * dt
	if t > 1 {
		t = 1
	}
	cam.Position = rl.Vector3Lerp(cam.Position, target, t)
	cam.Target = rl.Vector3Add(pos, rl.Vector3Scale(forward, f.LookAhead))
	cam.Up = rl.NewVector3(0, 1, 0)
}
