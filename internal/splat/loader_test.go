package splat

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// onePointPLY writes a valid one-vertex ascii cloud and returns its path.
func onePointPLY(t *testing.T, name string, x float32) string {
	t.Helper()
	ply := fmt.Sprintf(`ply
format ascii 1.0
element vertex 1
property float x
property float y
property float z
end_header
%g 0 0
`, x)
	return writeTemp(t, name, []byte(ply))
}

// pollUntil drives the loader the way a frame loop would until it reaches
// want, or fails the test.
func pollUntil(t *testing.T, l *Loader, want LoadState) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		l.Poll()
		if l.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("loader stuck in state %d, wanted %d", l.State(), want)
}

func TestLoaderLifecycle(t *testing.T) {
	l := NewLoader(zap.NewNop())
	assert.Equal(t, StateWaiting, l.State())
	assert.Nil(t, l.Cloud())

	path := onePointPLY(t, "first.ply", 1)
	l.Begin(path)
	assert.Equal(t, StateLoading, l.State())
	assert.Nil(t, l.Cloud(), "cloud installs on Poll, not on Begin")

	pollUntil(t, l, StateLoaded)
	require.NotNil(t, l.Cloud())
	assert.Equal(t, filepath.Base(path), l.Cloud().Name)
	require.Len(t, l.Cloud().Points, 1)
	assert.InDelta(t, 1, l.Cloud().Points[0].X, 1e-6)
}

func TestLoaderReplacesCloud(t *testing.T) {
	l := NewLoader(zap.NewNop())
	l.Begin(onePointPLY(t, "first.ply", 1))
	pollUntil(t, l, StateLoaded)

	second := onePointPLY(t, "second.ply", 2)
	l.Begin(second)
	assert.Equal(t, StateLoading, l.State())

	pollUntil(t, l, StateLoaded)
	require.NotNil(t, l.Cloud())
	assert.Equal(t, filepath.Base(second), l.Cloud().Name)
	assert.InDelta(t, 2, l.Cloud().Points[0].X, 1e-6)
}

func TestLoaderFailedThenRetry(t *testing.T) {
	l := NewLoader(zap.NewNop())
	l.Begin(filepath.Join(t.TempDir(), "missing.ply"))
	pollUntil(t, l, StateFailed)
	assert.Nil(t, l.Cloud())

	path := onePointPLY(t, "retry.ply", 3)
	l.Begin(path)
	pollUntil(t, l, StateLoaded)
	require.NotNil(t, l.Cloud())
	assert.Equal(t, filepath.Base(path), l.Cloud().Name)
}

func TestLoaderNewestRequestSupersedes(t *testing.T) {
	l := NewLoader(zap.NewNop())
	first := onePointPLY(t, "first.ply", 1)
	newest := onePointPLY(t, "newest.ply", 9)

	l.Begin(first)
	l.Begin(newest)
	assert.Equal(t, StateLoading, l.State())

	pollUntil(t, l, StateLoaded)
	require.NotNil(t, l.Cloud())
	assert.Equal(t, filepath.Base(newest), l.Cloud().Name)
	assert.InDelta(t, 9, l.Cloud().Points[0].X, 1e-6)
}

func TestLoaderNewestSupersedesFailingLoad(t *testing.T) {
	l := NewLoader(zap.NewNop())
	good := onePointPLY(t, "good.ply", 4)

	l.Begin(filepath.Join(t.TempDir(), "missing.ply"))
	l.Begin(good)

	pollUntil(t, l, StateLoaded)
	require.NotNil(t, l.Cloud())
	assert.Equal(t, filepath.Base(good), l.Cloud().Name)
}
