package splat

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// LoadState is the splat load lifecycle.
type LoadState int32

const (
	// StateWaiting: no load requested yet, or the last request was consumed.
	StateWaiting LoadState = iota
	// StateLoading: a parse is running in the background.
	StateLoading
	// StateLoaded: the most recent parse succeeded.
	StateLoaded
	// StateFailed: the most recent parse failed; a new Begin retries.
	StateFailed
)

type loadResult struct {
	cloud *Cloud
	err   error
}

// Loader runs PLY parsing off the frame loop and hands the finished cloud
// back to it. Begin starts a load; Poll is called once per frame and installs
// the result when it arrives. A new load replaces the previous cloud; a Begin
// while one is in flight supersedes it, the newest path wins.
type Loader struct {
	log     *zap.Logger
	state   atomic.Int32
	results chan loadResult
	cloud   *Cloud
	// pending is the newest path requested while a parse was in flight.
	// Only the frame loop touches it.
	pending string
}

// NewLoader returns an idle loader.
func NewLoader(log *zap.Logger) *Loader {
	return &Loader{
		log:     log,
		results: make(chan loadResult, 1),
	}
}

// State returns the current load state.
func (l *Loader) State() LoadState {
	return LoadState(l.state.Load())
}

// Cloud returns the currently loaded cloud, or nil.
func (l *Loader) Cloud() *Cloud {
	return l.cloud
}

// Begin starts loading path in the background. If a parse is already in
// flight, path is queued instead and starts as soon as the in-flight result
// lands, its stale result discarded. Repeated Begins keep only the newest.
func (l *Loader) Begin(path string) {
	if !l.state.CompareAndSwap(int32(StateWaiting), int32(StateLoading)) &&
		!l.state.CompareAndSwap(int32(StateLoaded), int32(StateLoading)) &&
		!l.state.CompareAndSwap(int32(StateFailed), int32(StateLoading)) {
		l.pending = path
		l.log.Info("splat load in progress, newest request supersedes it",
			zap.String("path", path))
		return
	}
	l.start(path)
}

func (l *Loader) start(path string) {
	l.log.Info("loading splat", zap.String("path", path))
	go func() {
		cloud, err := Parse(path)
		l.results <- loadResult{cloud: cloud, err: err}
	}()
}

// Poll installs a finished load, if any. Call once per frame.
func (l *Loader) Poll() {
	select {
	case res := <-l.results:
		if l.pending != "" {
			// Superseded; throw this result away and load the newest path.
			path := l.pending
			l.pending = ""
			l.start(path)
			return
		}
		if res.err != nil {
			l.state.Store(int32(StateFailed))
			l.log.Error("splat load failed", zap.Error(res.err))
			return
		}
		l.cloud = res.cloud
		l.state.Store(int32(StateLoaded))
		l.log.Info("splat loaded",
			zap.String("name", res.cloud.Name),
			zap.Int("points", len(res.cloud.Points)))
	default:
	}
}
