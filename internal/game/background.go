package game

import (
	"github.com/vovakirdan/flying-bird/internal/core"
)

// Background scrolls two copies of the same tile to fake forward motion.
type Background struct {
	X1, X2 float64
	Width  int
	Height int
	Speed  float64
}

// NewBackground creates an unsized background; call Resize before use.
func NewBackground(speed float64) Background {
	return Background{Speed: speed}
}

// Resize stretches both tiles to the screen and lays them side by side.
func (b *Background) Resize(width, height int) {
	b.Width = width
	b.Height = height
	b.X1 = 0
	b.X2 = float64(width)
}

// Update scrolls both tiles and wraps whichever one left the screen
// to sit directly behind the other.
func (b *Background) Update() {
	b.X1 -= b.Speed
	b.X2 -= b.Speed

	w := float64(b.Width)
	if b.X1+w < 0 {
		b.X1 = b.X2 + w
	}
	if b.X2+w < 0 {
		b.X2 = b.X1 + w
	}
}

// Covers reports whether the two tiles together span x=0.
func (b Background) Covers() bool {
	w := float64(b.Width)
	return min(b.X1, b.X2) <= 0 && 0 <= max(b.X1+w, b.X2+w)
}

// Tiles returns the destination rectangles of both tiles.
func (b Background) Tiles() [2]core.Rect {
	return [2]core.Rect{
		core.RectFromFloat(b.X1, 0, b.Width, b.Height),
		core.RectFromFloat(b.X2, 0, b.Width, b.Height),
	}
}
