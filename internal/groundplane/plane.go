package groundplane

import (
	"errors"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// degenerateEpsilon rejects three-point fits whose cross product is this short.
// Collinear or coincident picks land below it well before normalization blows up.
const degenerateEpsilon = 1e-6

// rayEpsilon is the minimum |normal . rayDir| for a ray to count as hitting the plane.
const rayEpsilon = 1e-4

// ErrDegeneratePoints is returned by FromThreePoints when the picked points are
// collinear or coincident and no plane can be fit.
var ErrDegeneratePoints = errors.New("groundplane: points are collinear or coincident")

// Plane is the ground plane the vehicle drives on: a point and a unit normal.
// The zero value is not valid; use Default or FromThreePoints. Planes are value
// types and are replaced whole, never mutated field by field.
type Plane struct {
	// Origin is a point on the plane.
	Origin rl.Vector3
	// Normal is the unit normal. By convention its Y component is non-negative.
	Normal rl.Vector3
	// Up equals Normal; kept as its own field since it is the axis the vehicle
	// yaws around.
	Up rl.Vector3
	// Defined reports whether the plane came from a user fit rather than the default.
	Defined bool
}

// Default returns the horizontal plane through the world origin.
func Default() Plane {
	up := rl.NewVector3(0, 1, 0)
	return Plane{
		Origin: rl.Vector3Zero(),
		Normal: up,
		Up:     up,
	}
}

// FromThreePoints fits a plane through p1, p2, p3 with p1 as origin.
// The normal is flipped if needed so it faces up (Normal.Y >= 0), making the
// result independent of click order. Returns ErrDegeneratePoints when the
// points do not span a plane.
func FromThreePoints(p1, p2, p3 rl.Vector3) (Plane, error) {
	v1 := rl.Vector3Subtract(p2, p1)
	v2 := rl.Vector3Subtract(p3, p1)
	cross := rl.Vector3CrossProduct(v1, v2)
	if rl.Vector3Length(cross) < degenerateEpsilon {
		return Plane{}, ErrDegeneratePoints
	}
	normal := rl.Vector3Normalize(cross)
	if normal.Y < 0 {
		normal = rl.Vector3Scale(normal, -1)
	}
	return Plane{
		Origin:  p1,
		Normal:  normal,
		Up:      normal,
		Defined: true,
	}, nil
}

// ProjectPoint returns the closest point on the plane to p.
func (p Plane) ProjectPoint(point rl.Vector3) rl.Vector3 {
	d := rl.Vector3DotProduct(rl.Vector3Subtract(point, p.Origin), p.Normal)
	return rl.Vector3Subtract(point, rl.Vector3Scale(p.Normal, d))
}

// HeightAt returns the signed perpendicular distance from the plane to point,
// positive on the normal side.
func (p Plane) HeightAt(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(rl.Vector3Subtract(point, p.Origin), p.Normal)
}

// IntersectRay returns where ray hits the plane. ok is false when the ray is
// near parallel to the plane or the intersection lies behind the ray origin.
func (p Plane) IntersectRay(ray rl.Ray) (hit rl.Vector3, ok bool) {
	denom := rl.Vector3DotProduct(p.Normal, ray.Direction)
	if math32.Abs(denom) < rayEpsilon {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p.Origin, ray.Position), p.Normal) / denom
	if t <= 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}
