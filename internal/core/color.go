package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the game sprites and HUD.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorGrass
	ColorObstacle
	ColorBird
	ColorBeak
	ColorText
	ColorAlert
	ColorGray
)
