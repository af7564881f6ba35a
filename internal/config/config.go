// Package config provides YAML-based tuning for the game: physics, obstacle
// spawning, background scroll, loop pacing and terminal scaling.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Tuning contains every tunable constant of the game.
type Tuning struct {
	Bird       BirdTuning       `yaml:"bird"`
	Obstacles  ObstacleTuning   `yaml:"obstacles"`
	Background BackgroundTuning `yaml:"background"`
	HUD        HUDTuning        `yaml:"hud"`
	Loop       LoopTuning       `yaml:"loop"`
	Display    DisplayTuning    `yaml:"display"`
}

// BirdTuning defines the actor's physics and size.
type BirdTuning struct {
	Gravity   float64 `yaml:"gravity"`    // Added to velocity every tick
	JumpForce float64 `yaml:"jump_force"` // Velocity set on tap (negative = up)
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	XDivisor  float64 `yaml:"x_divisor"` // Bird x = screen width / XDivisor
}

// ObstacleTuning defines obstacle movement and spawn parameters.
type ObstacleTuning struct {
	Width         int           `yaml:"width"`
	Speed         float64       `yaml:"speed"`
	MinHeight     int           `yaml:"min_height"` // Inclusive
	MaxHeight     int           `yaml:"max_height"` // Exclusive
	Margin        int           `yaml:"margin"`     // Free corridor above and below
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// BackgroundTuning defines the scrolling background.
type BackgroundTuning struct {
	Speed float64 `yaml:"speed"`
}

// HUDTuning places the score and the game-over overlay.
type HUDTuning struct {
	ScoreX      int `yaml:"score_x"`
	ScoreY      int `yaml:"score_y"`
	LineSpacing int `yaml:"line_spacing"` // Gap between overlay lines
}

// LoopTuning defines the engine loop cadence.
type LoopTuning struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	StopTimeout  time.Duration `yaml:"stop_timeout"`
}

// DisplayTuning maps world units onto terminal cells.
type DisplayTuning struct {
	UnitsPerColumn int `yaml:"units_per_column"`
	UnitsPerRow    int `yaml:"units_per_row"`
}

// Validate reports every tuning value that would break the game.
func (t Tuning) Validate() error {
	var errs []error

	if t.Bird.Width <= 0 || t.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %dx%d", t.Bird.Width, t.Bird.Height))
	}
	if t.Bird.XDivisor <= 0 {
		errs = append(errs, fmt.Errorf("bird x_divisor must be positive, got %v", t.Bird.XDivisor))
	}
	if t.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive, got %d", t.Obstacles.Width))
	}
	if t.Obstacles.MinHeight <= 0 || t.Obstacles.MaxHeight <= t.Obstacles.MinHeight {
		errs = append(errs, fmt.Errorf("obstacle heights must satisfy 0 < min < max, got [%d, %d)",
			t.Obstacles.MinHeight, t.Obstacles.MaxHeight))
	}
	if t.Obstacles.Margin < 0 {
		errs = append(errs, fmt.Errorf("obstacle margin must not be negative, got %d", t.Obstacles.Margin))
	}
	if t.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, errors.New("obstacle spawn_interval must be positive"))
	}
	if t.Loop.TickInterval <= 0 {
		errs = append(errs, errors.New("loop tick_interval must be positive"))
	}
	if t.Loop.StopTimeout <= 0 {
		errs = append(errs, errors.New("loop stop_timeout must be positive"))
	}
	if t.Display.UnitsPerColumn <= 0 || t.Display.UnitsPerRow <= 0 {
		errs = append(errs, fmt.Errorf("display units must be positive, got %dx%d",
			t.Display.UnitsPerColumn, t.Display.UnitsPerRow))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
