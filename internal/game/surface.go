package game

import (
	"github.com/vovakirdan/flying-bird/internal/core"
)

// Sprite identifies a bitmap the canvas knows how to blit.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteObstacle
	SpriteBird
)

// String returns a human-readable name for the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteObstacle:
		return "obstacle"
	case SpriteBird:
		return "bird"
	default:
		return "unknown"
	}
}

// TextStyle selects the font used for a line of text.
type TextStyle int

const (
	TextHUD   TextStyle = iota // Score line and secondary overlay text
	TextTitle                  // "Game Over"
)

// Canvas is a locked drawing target. All coordinates are world units.
type Canvas interface {
	// Blit draws a sprite stretched to dst. Parts outside the canvas are clipped.
	Blit(s Sprite, dst core.Rect)

	// Text draws s with its top-left corner at (x, y).
	Text(x, y int, style TextStyle, s string)

	// MeasureText returns the width of s in world units.
	MeasureText(style TextStyle, s string) int
}

// Surface hands out a Canvas for one frame at a time.
type Surface interface {
	// Valid reports whether the surface can currently be drawn on.
	Valid() bool

	// Lock acquires the canvas for the next frame.
	Lock() (Canvas, error)

	// Unlock releases the canvas and publishes the frame.
	Unlock(c Canvas)
}
