package game

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flying-bird/internal/config"
)

// Engine owns the bird, the background and the run state, and drives them
// from a single loop goroutine at a fixed tick interval.
//
// Tap and Resize may be called from any goroutine. Step and Present are the
// loop's building blocks and are exported for hosts that drive their own loop.
type Engine struct {
	tuning config.Tuning
	clock  Clock
	logger *log.Logger

	mu         sync.Mutex // Guards everything below up to the lifecycle fields
	screenW    int
	screenH    int
	bird       Bird
	background Background
	spawner    *Spawner
	session    Session
	ticks      uint64

	tap atomic.Bool // Pending tap, consumed by the next Step

	lifeMu  sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the wall clock used for spawn timing.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithRand sets the random source for obstacle placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.spawner = NewSpawner(rng, e.tuning.Obstacles)
	}
}

// WithLogger sets the logger for lifecycle and frame errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine in the Playing state. It has no size until Resize
// is called and does not advance until then.
func New(t config.Tuning, opts ...Option) *Engine {
	e := &Engine{
		tuning:     t,
		clock:      SystemClock{},
		logger:     log.New(io.Discard),
		bird:       NewBird(t.Bird),
		background: NewBackground(t.Background.Speed),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.spawner == nil {
		e.spawner = NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())), t.Obstacles)
	}
	e.session.Reset(e.clock.Now())
	return e
}

// Tap records a player tap. It restarts the run after game over and
// flaps otherwise. Several taps before the next tick count as one.
func (e *Engine) Tap() {
	e.tap.Store(true)
}

// Resize updates the screen bounds in world units. Calling it again with
// the same dimensions changes nothing.
func (e *Engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width == e.screenW && height == e.screenH {
		return
	}
	firstSize := e.screenW == 0 && e.screenH == 0

	e.screenW = width
	e.screenH = height
	e.background.Resize(width, height)
	e.bird.X = float64(width) / e.tuning.Bird.XDivisor
	if firstSize {
		e.bird.Y = float64(height) / 2
	} else {
		e.bird.Clamp(height)
	}

	e.logger.Debug("resized", "width", width, "height", height)
}

// Step runs one simulation tick: it consumes a pending tap and then
// advances the world unless the run is over. An engine without a size
// does nothing and keeps any pending tap for its first real tick.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screenW <= 0 || e.screenH <= 0 {
		return
	}
	now := e.clock.Now()
	if e.tap.Swap(false) && e.handleTap(now) {
		// A restart uses up the tick so the new run starts centered.
		return
	}
	e.update(now)
	e.ticks++
}

// handleTap applies a tap and reports whether it restarted the run.
// Callers hold e.mu.
func (e *Engine) handleTap(now time.Time) bool {
	if e.session.GameOver() {
		e.restart(now)
		return true
	}
	e.bird.Flap()
	return false
}

// restart begins a new run. The background keeps scrolling from where it was.
func (e *Engine) restart(now time.Time) {
	prev := e.session.Score
	e.session.Reset(now)
	e.bird.Y = float64(e.screenH) / 2
	e.bird.Velocity = 0
	e.logger.Info("run restarted", "previous_score", prev)
}

// update advances all gameplay objects by one tick. Callers hold e.mu.
func (e *Engine) update(now time.Time) {
	if e.session.GameOver() {
		return
	}

	e.background.Update()
	if !e.background.Covers() {
		e.logger.Warn("background tiles left a gap", "x1", e.background.X1, "x2", e.background.X2)
	}
	e.bird.Update()
	e.bird.Clamp(e.screenH)

	if e.spawner.Due(now, e.session.LastSpawn) {
		if o, ok := e.spawner.Spawn(e.screenW, e.screenH); ok {
			e.session.Obstacles = append(e.session.Obstacles, o)
		} else {
			e.logger.Debug("spawn skipped, screen too short", "height", e.screenH)
		}
		e.session.LastSpawn = now
	}

	removed := false
	for i := range e.session.Obstacles {
		o := &e.session.Obstacles[i]
		o.Update()

		if o.Offscreen() {
			o.passed = true
			removed = true
			e.session.Score++
		}

		if Collides(e.bird, *o) && !e.session.GameOver() {
			e.session.State = StateGameOver
			e.logger.Info("game over", "score", e.session.Score)
		}
	}
	if removed {
		e.session.compact()
	}
}

// Present draws the current frame onto s. The frame is skipped when the
// surface is invalid or cannot be locked. The canvas is always unlocked,
// and a panic while drawing drops the frame instead of killing the loop.
func (e *Engine) Present(s Surface) {
	if s == nil || !s.Valid() {
		return
	}
	c, err := s.Lock()
	if err != nil {
		e.logger.Debug("frame skipped", "error", err)
		return
	}
	defer s.Unlock(c)
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("frame dropped", "panic", r)
		}
	}()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.draw(c)
}

// Start launches the loop goroutine drawing onto s. It is a no-op while
// the loop is already running. The loop ends on Stop or when ctx is done;
// either way the engine can be started again afterwards.
func (e *Engine) Start(ctx context.Context, s Surface) {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()

	if e.running {
		return
	}
	e.running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})

	go e.run(ctx, s, e.stop, e.done)
	e.logger.Info("loop started", "tick", e.tuning.Loop.TickInterval)
}

// Stop signals the loop goroutine and waits for it to exit. Waiting gives
// up after the configured stop timeout; teardown proceeds regardless.
// Safe to call more than once and before Start.
func (e *Engine) Stop() {
	e.lifeMu.Lock()
	if !e.running {
		e.lifeMu.Unlock()
		return
	}
	e.running = false
	close(e.stop)
	done := e.done
	e.lifeMu.Unlock()

	select {
	case <-done:
		e.logger.Info("loop stopped")
	case <-time.After(e.tuning.Loop.StopTimeout):
		e.logger.Warn("loop did not stop in time", "timeout", e.tuning.Loop.StopTimeout)
	}
}

// exited clears the running flag when the loop that owns done ends on its
// own. A newer Start has replaced done and keeps its state.
func (e *Engine) exited(done chan struct{}) {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()
	if e.done == done && e.running {
		e.running = false
		e.logger.Info("loop ended", "reason", "context done")
	}
}

// Running reports whether the loop goroutine has been started and not stopped.
func (e *Engine) Running() bool {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()
	return e.running
}

// run is the loop body: update, draw, then wait for the next tick.
// Ticks missed while a frame ran long are dropped by the ticker.
func (e *Engine) run(ctx context.Context, s Surface, stop <-chan struct{}, done chan struct{}) {
	defer close(done)
	defer e.exited(done)

	ticker := time.NewTicker(e.tuning.Loop.TickInterval)
	defer ticker.Stop()

	for {
		e.Step()
		e.Present(s)

		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Snapshot is a read-only view of the engine for hosts and tests.
type Snapshot struct {
	State     State
	Score     int
	BirdX     float64
	BirdY     float64
	Velocity  float64
	Obstacles int
	Spawned   int // Obstacles created since the engine was built
	ScreenW   int
	ScreenH   int
	Ticks     uint64
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		State:     e.session.State,
		Score:     e.session.Score,
		BirdX:     e.bird.X,
		BirdY:     e.bird.Y,
		Velocity:  e.bird.Velocity,
		Obstacles: len(e.session.Obstacles),
		Spawned:   e.spawner.Count(),
		ScreenW:   e.screenW,
		ScreenH:   e.screenH,
		Ticks:     e.ticks,
	}
}
