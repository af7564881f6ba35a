package game

import (
	"github.com/vovakirdan/flying-bird/internal/core"
)

// Intersects is the collision test between the bird and an obstacle box.
func Intersects(a, b core.Rect) bool {
	return a.Intersects(b)
}

// Collides reports whether the bird's current hitbox overlaps the obstacle.
func Collides(b Bird, o Obstacle) bool {
	return Intersects(b.Bounds(), o.Bounds())
}
