package game

import (
	"time"
)

// State is the engine's gameplay state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session holds the mutable per-run state owned by the Engine.
type Session struct {
	Score     int
	State     State
	Obstacles []Obstacle // Spawn order
	LastSpawn time.Time
}

// Reset starts a fresh run at now.
func (s *Session) Reset(now time.Time) {
	s.Score = 0
	s.State = StatePlaying
	s.Obstacles = s.Obstacles[:0]
	s.LastSpawn = now
}

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool {
	return s.State == StateGameOver
}

// compact drops obstacles marked as passed, keeping spawn order.
func (s *Session) compact() {
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if !o.passed {
			kept = append(kept, o)
		}
	}
	// Clear the tail so removed obstacles are not retained by the backing array.
	for i := len(kept); i < len(s.Obstacles); i++ {
		s.Obstacles[i] = Obstacle{}
	}
	s.Obstacles = kept
}
