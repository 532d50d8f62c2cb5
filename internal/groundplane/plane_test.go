package groundplane

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func vecNear(t *testing.T, want, got rl.Vector3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, "%s: X", msg)
	assert.InDelta(t, want.Y, got.Y, tolerance, "%s: Y", msg)
	assert.InDelta(t, want.Z, got.Z, tolerance, "%s: Z", msg)
}

func TestDefaultPlane(t *testing.T) {
	p := Default()
	assert.False(t, p.Defined)
	vecNear(t, rl.NewVector3(0, 1, 0), p.Normal, "normal")
	vecNear(t, rl.Vector3Zero(), p.Origin, "origin")
}

func TestProjectPointIdempotent(t *testing.T) {
	planes := []Plane{
		Default(),
		mustFit(t, rl.NewVector3(0, 1, 0), rl.NewVector3(1, 2, 0), rl.NewVector3(0, 3, 1)),
		mustFit(t, rl.NewVector3(-2, 0.5, 3), rl.NewVector3(4, 1, -1), rl.NewVector3(0, -2, 7)),
	}
	points := []rl.Vector3{
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(1, 5, -3),
		rl.NewVector3(-10, 0.1, 42),
	}
	for _, p := range planes {
		for _, pt := range points {
			once := p.ProjectPoint(pt)
			twice := p.ProjectPoint(once)
			vecNear(t, once, twice, "projection should be idempotent")
		}
	}
}

func TestHeightAtProjectedPointIsZero(t *testing.T) {
	p := mustFit(t, rl.NewVector3(0, 1, 0), rl.NewVector3(1, 2, 0), rl.NewVector3(0, 3, 1))
	for _, pt := range []rl.Vector3{
		rl.NewVector3(3, -4, 5),
		rl.NewVector3(0, 100, 0),
		rl.NewVector3(-7, 0, 2),
	} {
		assert.InDelta(t, 0, p.HeightAt(p.ProjectPoint(pt)), tolerance)
	}
}

func TestHeightAtSign(t *testing.T) {
	p := Default()
	assert.InDelta(t, 2, p.HeightAt(rl.NewVector3(0, 2, 0)), tolerance)
	assert.InDelta(t, -3, p.HeightAt(rl.NewVector3(5, -3, 5)), tolerance)
}

func TestFromThreePointsNormalFacesUp(t *testing.T) {
	p1 := rl.NewVector3(0, 0, 0)
	p2 := rl.NewVector3(1, 0, 0)
	p3 := rl.NewVector3(0, 0, 1)

	// Both winding orders must yield the same up-facing normal.
	a, err := FromThreePoints(p1, p2, p3)
	require.NoError(t, err)
	b, err := FromThreePoints(p1, p3, p2)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, a.Normal.Y, float32(0))
	assert.GreaterOrEqual(t, b.Normal.Y, float32(0))
	vecNear(t, rl.NewVector3(0, 1, 0), a.Normal, "normal")
	vecNear(t, a.Normal, b.Normal, "winding order should not matter")
	vecNear(t, p1, a.Origin, "origin is the first point")
	assert.True(t, a.Defined)
}

func TestFromThreePointsUnitNormal(t *testing.T) {
	p, err := FromThreePoints(
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(10, 3, 0),
		rl.NewVector3(0, 1, 10),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1, rl.Vector3Length(p.Normal), tolerance)
	vecNear(t, p.Normal, p.Up, "up tracks normal")
}

func TestFromThreePointsDegenerate(t *testing.T) {
	cases := []struct {
		name       string
		p1, p2, p3 rl.Vector3
	}{
		{"collinear", rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0), rl.NewVector3(2, 0, 0)},
		{"coincident", rl.NewVector3(1, 2, 3), rl.NewVector3(1, 2, 3), rl.NewVector3(1, 2, 3)},
		{"two coincident", rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, 0), rl.NewVector3(5, 5, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromThreePoints(tc.p1, tc.p2, tc.p3)
			require.ErrorIs(t, err, ErrDegeneratePoints)
		})
	}
}

func TestIntersectRay(t *testing.T) {
	p := Default()

	// Straight down onto the plane.
	hit, ok := p.IntersectRay(rl.NewRay(rl.NewVector3(2, 10, 3), rl.NewVector3(0, -1, 0)))
	require.True(t, ok)
	vecNear(t, rl.NewVector3(2, 0, 3), hit, "hit point")

	// Parallel to the plane: rejected.
	_, ok = p.IntersectRay(rl.NewRay(rl.NewVector3(0, 5, 0), rl.NewVector3(1, 0, 0)))
	assert.False(t, ok)

	// Pointing away from the plane: intersection would be behind the origin.
	_, ok = p.IntersectRay(rl.NewRay(rl.NewVector3(0, 5, 0), rl.NewVector3(0, 1, 0)))
	assert.False(t, ok)
}

func mustFit(t *testing.T, p1, p2, p3 rl.Vector3) Plane {
	t.Helper()
	p, err := FromThreePoints(p1, p2, p3)
	require.NoError(t, err)
	return p
}
