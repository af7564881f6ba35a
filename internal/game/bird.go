// Package game implements the flying bird gameplay core: a bird that flaps
// between procedurally spawned obstacles over a scrolling background.
// Nothing here knows about terminals; the Engine draws into a Surface and
// learns about taps through Tap.
package game

import (
	"github.com/vovakirdan/flying-bird/internal/config"
	"github.com/vovakirdan/flying-bird/internal/core"
)

// Bird is the player-controlled actor.
type Bird struct {
	X, Y     float64 // Top-left of the hitbox
	Velocity float64 // Vertical velocity, positive = down
	Width    int
	Height   int

	gravity   float64
	jumpForce float64
}

// NewBird creates a bird at rest at the origin.
func NewBird(t config.BirdTuning) Bird {
	return Bird{
		Width:     t.Width,
		Height:    t.Height,
		gravity:   t.Gravity,
		jumpForce: t.JumpForce,
	}
}

// Update integrates gravity for one tick.
func (b *Bird) Update() {
	b.Velocity += b.gravity
	b.Y += b.Velocity
}

// Flap replaces the current vertical velocity with the jump force.
func (b *Bird) Flap() {
	b.Velocity = b.jumpForce
}

// Clamp keeps the bird inside [0, screenH-Height]. Touching an edge is not a collision.
func (b *Bird) Clamp(screenH int) {
	b.Y = core.ClampF(b.Y, 0, float64(screenH-b.Height))
}

// Bounds returns the bird's collision rectangle.
func (b Bird) Bounds() core.Rect {
	return core.RectFromFloat(b.X, b.Y, b.Width, b.Height)
}
