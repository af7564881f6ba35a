package game

import (
	"github.com/vovakirdan/flying-bird/internal/core"
)

// Obstacle is a single column the bird must avoid.
type Obstacle struct {
	X, Y   float64 // Top-left position
	Width  int
	Height int
	Speed  float64 // Leftward movement per tick

	passed bool // Marked for removal once fully off-screen
}

// NewObstacle creates an obstacle at (x, y).
func NewObstacle(x, y float64, width, height int, speed float64) Obstacle {
	return Obstacle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Update moves the obstacle left by one tick.
func (o *Obstacle) Update() {
	o.X -= o.Speed
}

// Offscreen reports whether the right edge has passed the left screen edge.
func (o Obstacle) Offscreen() bool {
	return o.X+float64(o.Width) < 0
}

// Bounds returns the obstacle's collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.RectFromFloat(o.X, o.Y, o.Width, o.Height)
}
