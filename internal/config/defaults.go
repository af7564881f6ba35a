package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flyingbird.yaml
var defaultYAML []byte

// DefaultTuning returns the built-in tuning, matching defaults/flyingbird.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Bird: BirdTuning{
			Gravity:   0.6,
			JumpForce: -12,
			Width:     80,
			Height:    80,
			XDivisor:  6,
		},
		Obstacles: ObstacleTuning{
			Width:         70,
			Speed:         8,
			MinHeight:     100,
			MaxHeight:     200,
			Margin:        100,
			SpawnInterval: 2500 * time.Millisecond,
		},
		Background: BackgroundTuning{
			Speed: 5,
		},
		HUD: HUDTuning{
			ScoreX:      50,
			ScoreY:      50,
			LineSpacing: 100,
		},
		Loop: LoopTuning{
			TickInterval: 17 * time.Millisecond,
			StopTimeout:  2 * time.Second,
		},
		Display: DisplayTuning{
			UnitsPerColumn: 24,
			UnitsPerRow:    45,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultYAML
}
