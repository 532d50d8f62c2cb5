package groundplane

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// pickPointCount is how many clicks define a plane.
const pickPointCount = 3

// Picker accumulates ray/plane intersection points from clicks and installs a
// freshly fit plane into the store once three points are in. It is a small
// state machine: inactive, or active with 0-2 points collected.
type Picker struct {
	store  *Store
	log    *zap.Logger
	active bool
	points []rl.Vector3
}

// NewPicker returns an inactive picker writing to store.
func NewPicker(store *Store, log *zap.Logger) *Picker {
	return &Picker{
		store:  store,
		log:    log,
		points: make([]rl.Vector3, 0, pickPointCount),
	}
}

// Active reports whether the picker is collecting points.
func (pk *Picker) Active() bool {
	return pk.active
}

// Points returns the points collected so far; the scene draws a marker at each.
func (pk *Picker) Points() []rl.Vector3 {
	return pk.points
}

// Toggle flips selection mode. Entering selection mode clears any stale points
// and their markers; leaving it discards the in-progress session.
func (pk *Picker) Toggle() {
	pk.active = !pk.active
	pk.points = pk.points[:0]
	if pk.active {
		pk.log.Info("plane selection active, click 3 points to define the ground plane")
	} else {
		pk.log.Info("plane selection inactive")
	}
}

// Reset clears the session and restores the default horizontal plane. The
// active flag is left alone so reset works the same in or out of selection mode.
func (pk *Picker) Reset() {
	pk.points = pk.points[:0]
	pk.store.Set(Default())
	pk.log.Info("ground plane reset to default")
}

// Click handles a pointer click while selection mode is active. The ray is
// intersected against the current plane; misses (parallel ray, hit behind the
// camera) are ignored. The third accepted point fits a new plane, installs it,
// and leaves selection mode. A degenerate fit keeps the previous plane and
// clears the session so the user can pick again.
func (pk *Picker) Click(ray rl.Ray) {
	if !pk.active {
		return
	}
	hit, ok := pk.store.Get().IntersectRay(ray)
	if !ok {
		return
	}
	pk.points = append(pk.points, hit)
	pk.log.Info("selected point",
		zap.Int("index", len(pk.points)),
		zap.Float32("x", hit.X), zap.Float32("y", hit.Y), zap.Float32("z", hit.Z))
	if len(pk.points) < pickPointCount {
		return
	}

	plane, err := FromThreePoints(pk.points[0], pk.points[1], pk.points[2])
	pk.points = pk.points[:0]
	if err != nil {
		pk.log.Warn("could not fit a plane through the picked points, pick again", zap.Error(err))
		return
	}
	pk.store.Set(plane)
	pk.active = false
	pk.log.Info("ground plane defined",
		zap.Float32("nx", plane.Normal.X),
		zap.Float32("ny", plane.Normal.Y),
		zap.Float32("nz", plane.Normal.Z))
}
