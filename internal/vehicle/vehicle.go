package vehicle

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"splat-racer/internal/groundplane"
)

// stationaryEpsilon: below this speed the pose step is skipped entirely.
const stationaryEpsilon = 0.001

// steeringEpsilon: below this angle the wheels are treated as straight and no
// turn is applied, which also keeps the turning radius division safe.
const steeringEpsilon = 0.001

// reverseSpeedFactor caps reverse speed relative to MaxSpeed.
const reverseSpeedFactor = 0.3

// alignRate is the exponential rate at which the vehicle's up axis chases the
// plane normal after the plane changes.
const alignRate = 10.0

// alignedDot: when current up and the plane normal agree this closely,
// realignment is skipped.
const alignedDot = 0.999

// Tuning holds the drive-feel constants. All rates are per second.
type Tuning struct {
	MaxSpeed        float32 `yaml:"max_speed"`
	Acceleration    float32 `yaml:"acceleration"`
	BrakePower      float32 `yaml:"brake_power"`
	Friction        float32 `yaml:"friction"`
	MaxSteering     float32 `yaml:"max_steering"`
	SteeringSpeed   float32 `yaml:"steering_speed"`
	Wheelbase       float32 `yaml:"wheelbase"`
	GroundClearance float32 `yaml:"ground_clearance"`
}

// DefaultTuning returns the stock drive feel.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:        30,
		Acceleration:    15,
		BrakePower:      25,
		Friction:        5,
		MaxSteering:     0.6,
		SteeringSpeed:   3,
		Wheelbase:       2,
		GroundClearance: 0.5,
	}
}

// Controls is the held driver input for one tick. Steer is -1, 0, or +1.
type Controls struct {
	Throttle bool
	Brake    bool
	Steer    float32
}

// Vehicle is the driven car: a speed and steering angle integrated from input,
// and a world pose kept glued to the ground plane. One vehicle exists for the
// whole session.
type Vehicle struct {
	Speed         float32
	SteeringAngle float32
	Position      rl.Vector3
	Rotation      rl.Quaternion
	Tuning        Tuning
}

// New returns a vehicle at the origin facing +Z with the given tuning.
func New(tuning Tuning) *Vehicle {
	return &Vehicle{
		Position: rl.NewVector3(0, tuning.GroundClearance, 0),
		Rotation: rl.QuaternionIdentity(),
		Tuning:   tuning,
	}
}

// Forward returns the vehicle's forward axis (+Z in local space).
func (v *Vehicle) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), v.Rotation)
}

// Up returns the vehicle's up axis (+Y in local space).
func (v *Vehicle) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), v.Rotation)
}

// ApplyInput integrates one tick of driver input into speed and steering angle.
// Braking below zero speed reverses at half throttle. Without steer input the
// wheels recenter at double the steering rate and snap to zero once close, so
// the angle never creeps asymptotically. Friction only acts while the driver is
// coasting (neither throttle nor brake held), matching how the car should feel
// rather than a velocity-based drag model.
func (v *Vehicle) ApplyInput(in Controls, dt float32) {
	t := v.Tuning

	if in.Throttle {
		v.Speed += t.Acceleration * dt
	}
	if in.Brake {
		if v.Speed > 0 {
			v.Speed -= t.BrakePower * dt
		} else {
			v.Speed -= t.Acceleration * 0.5 * dt
		}
	}

	if in.Steer != 0 {
		v.SteeringAngle += in.Steer * t.SteeringSpeed * dt
	} else {
		recenter := t.SteeringSpeed * 2 * dt
		if math32.Abs(v.SteeringAngle) < recenter {
			v.SteeringAngle = 0
		} else {
			v.SteeringAngle -= sign(v.SteeringAngle) * recenter
		}
	}

	if !in.Throttle && !in.Brake {
		decel := t.Friction * dt
		if math32.Abs(v.Speed) < decel {
			v.Speed = 0
		} else {
			v.Speed -= sign(v.Speed) * decel
		}
	}

	v.Speed = clamp(v.Speed, -t.MaxSpeed*reverseSpeedFactor, t.MaxSpeed)
	v.SteeringAngle = clamp(v.SteeringAngle, -t.MaxSteering, t.MaxSteering)
}

// Step advances the pose by one tick on the given plane: bicycle-model yaw
// about the plane normal, forward translation, re-projection onto the plane,
// smoothed up-axis realignment, and the ground clearance offset that keeps the
// body on top of the plane instead of bisected by it.
func (v *Vehicle) Step(plane groundplane.Plane, dt float32) {
	if math32.Abs(v.Speed) < stationaryEpsilon {
		return
	}

	forward := v.Forward()

	if math32.Abs(v.SteeringAngle) > steeringEpsilon {
		turningRadius := v.Tuning.Wheelbase / math32.Tan(v.SteeringAngle)
		angularVelocity := v.Speed / turningRadius
		// World-space yaw about the plane's up axis, applied before the
		// existing orientation.
		yaw := rl.QuaternionFromAxisAngle(plane.Up, angularVelocity*dt)
		v.Rotation = rl.QuaternionMultiply(yaw, v.Rotation)
	}

	v.Position = rl.Vector3Add(v.Position, rl.Vector3Scale(forward, v.Speed*dt))
	v.Position = plane.ProjectPoint(v.Position)

	up := v.Up()
	if rl.Vector3DotProduct(up, plane.Normal) < alignedDot {
		align := rl.QuaternionFromVector3ToVector3(up, plane.Normal)
		t := alignRate * dt
		if t > 1 {
			t = 1
		}
		smoothed := rl.QuaternionSlerp(rl.QuaternionIdentity(), align, t)
		v.Rotation = rl.QuaternionMultiply(smoothed, v.Rotation)
	}

	v.Position = rl.Vector3Add(v.Position, rl.Vector3Scale(plane.Normal, v.Tuning.GroundClearance))
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

func clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
