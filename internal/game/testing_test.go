package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/flying-bird/internal/config"
	"github.com/vovakirdan/flying-bird/internal/core"
)

// fakeClock provides a controllable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// blit records one Canvas.Blit call.
type blit struct {
	sprite Sprite
	dst    core.Rect
}

// text records one Canvas.Text call.
type text struct {
	x, y  int
	style TextStyle
	s     string
}

// recordingCanvas captures draw calls. Every character is 10 units wide.
type recordingCanvas struct {
	blits   []blit
	texts   []text
	panicOn Sprite
	panics  bool
}

func (c *recordingCanvas) Blit(s Sprite, dst core.Rect) {
	if c.panics && s == c.panicOn {
		panic(fmt.Sprintf("cannot draw %s", s))
	}
	c.blits = append(c.blits, blit{sprite: s, dst: dst})
}

func (c *recordingCanvas) Text(x, y int, style TextStyle, s string) {
	c.texts = append(c.texts, text{x: x, y: y, style: style, s: s})
}

func (c *recordingCanvas) MeasureText(_ TextStyle, s string) int {
	return len(s) * 10
}

// fakeSurface counts lock/unlock pairs and keeps the last frame.
type fakeSurface struct {
	mu       sync.Mutex
	invalid  bool
	lockErr  error
	canvas   *recordingCanvas
	panicOn  *Sprite
	locks    int
	unlocks  int
	lastDraw *recordingCanvas
}

func (s *fakeSurface) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.invalid
}

func (s *fakeSurface) Lock() (Canvas, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lockErr != nil {
		return nil, s.lockErr
	}
	s.locks++
	s.canvas = &recordingCanvas{}
	if s.panicOn != nil {
		s.canvas.panics = true
		s.canvas.panicOn = *s.panicOn
	}
	return s.canvas, nil
}

func (s *fakeSurface) Unlock(c Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocks++
	s.lastDraw = c.(*recordingCanvas)
}

func (s *fakeSurface) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks, s.unlocks
}

var errSurfaceLost = errors.New("surface lost")

// newTestEngine returns a sized 1920x1080 engine with a fake clock and fixed seed.
func newTestEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	e := New(config.DefaultTuning(), WithClock(clock), WithRand(rand.New(rand.NewSource(1))))
	e.Resize(1920, 1080)
	return e, clock
}
