package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flying-bird/internal/config"
	"github.com/vovakirdan/flying-bird/internal/core"
	"github.com/vovakirdan/flying-bird/internal/game"
)

// ErrSurfaceClosed is returned by Lock once the surface has been closed.
var ErrSurfaceClosed = errors.New("tui: surface closed")

// Surface is a double-buffered terminal drawing target for the engine.
// The engine draws into the back buffer between Lock and Unlock; Unlock
// publishes it to the front buffer that View renders.
type Surface struct {
	display config.DisplayTuning

	drawMu sync.Mutex // Held from Lock to Unlock
	back   *core.Screen

	mu     sync.Mutex // Guards front
	front  *core.Screen
	closed bool

	frames    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSurface creates a surface of cols x rows terminal cells.
func NewSurface(cols, rows int, display config.DisplayTuning) *Surface {
	return &Surface{
		display: display,
		back:    core.NewScreen(cols, rows),
		front:   core.NewScreen(cols, rows),
		frames:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Valid reports whether the surface is open and has a non-empty area.
func (s *Surface) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.front.Width() > 0 && s.front.Height() > 0
}

// Lock clears the back buffer and returns a canvas over it.
func (s *Surface) Lock() (game.Canvas, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrSurfaceClosed
	}

	s.drawMu.Lock()
	s.back.Clear()
	return &canvas{
		screen: s.back,
		ux:     s.display.UnitsPerColumn,
		uy:     s.display.UnitsPerRow,
	}, nil
}

// Unlock publishes the back buffer and notifies a waiting listener.
func (s *Surface) Unlock(_ game.Canvas) {
	s.mu.Lock()
	s.front.CopyFrom(s.back)
	s.mu.Unlock()
	s.drawMu.Unlock()

	select {
	case s.frames <- struct{}{}:
	default: // A notification is already pending
	}
}

// Resize changes the cell dimensions. It waits for a frame in progress.
func (s *Surface) Resize(cols, rows int) {
	s.drawMu.Lock()
	s.back.Resize(cols, rows)
	s.drawMu.Unlock()

	s.mu.Lock()
	s.front.Resize(cols, rows)
	s.mu.Unlock()
}

// Size returns the dimensions in cells.
func (s *Surface) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.front.Width(), s.front.Height()
}

// WorldSize returns the dimensions in world units.
func (s *Surface) WorldSize() (width, height int) {
	cols, rows := s.Size()
	return cols * s.display.UnitsPerColumn, rows * s.display.UnitsPerRow
}

// View renders the last published frame.
func (s *Surface) View(p palette) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderScreen(s.front, p)
}

// SaveScreenshot writes the last published frame as plain text into dir
// and returns the file path.
func (s *Surface) SaveScreenshot(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	s.mu.Lock()
	text := s.front.String()
	s.mu.Unlock()

	path := filepath.Join(dir, fmt.Sprintf("flyingbird_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Close marks the surface invalid and releases frame listeners.
func (s *Surface) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
	})
}

// canvas draws world-unit geometry onto a cell screen.
type canvas struct {
	screen *core.Screen
	ux, uy int // World units per column and per row
}

// Blit covers every cell the destination rectangle touches.
func (c *canvas) Blit(sp game.Sprite, dst core.Rect) {
	art, ok := sprites[sp]
	if !ok || dst.Empty() {
		return
	}

	x0, y0 := core.FloorDiv(dst.X, c.ux), core.FloorDiv(dst.Y, c.uy)
	x1, y1 := core.CeilDiv(dst.Right(), c.ux), core.CeilDiv(dst.Bottom(), c.uy)
	w, h := x1-x0, y1-y0

	for y := max(y0, 0); y < min(y1, c.screen.Height()); y++ {
		for x := max(x0, 0); x < min(x1, c.screen.Width()); x++ {
			if cell, ok := art.sample(x-x0, y-y0, w, h); ok {
				c.screen.SetCell(x, y, cell)
			}
		}
	}
}

func (c *canvas) Text(x, y int, style game.TextStyle, s string) {
	c.screen.DrawText(core.FloorDiv(x, c.ux), core.FloorDiv(y, c.uy), s, textColor(style))
}

func (c *canvas) MeasureText(_ game.TextStyle, s string) int {
	return lipgloss.Width(s) * c.ux
}

func textColor(style game.TextStyle) core.Color {
	if style == game.TextTitle {
		return core.ColorAlert
	}
	return core.ColorText
}
