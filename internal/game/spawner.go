package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flying-bird/internal/config"
)

// Spawner creates obstacles on a wall-clock schedule with randomized
// vertical placement. Every obstacle leaves at least Margin units free
// above and below it.
type Spawner struct {
	rng   *rand.Rand
	cfg   config.ObstacleTuning
	count int // Obstacles created since construction
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.ObstacleTuning) *Spawner {
	return &Spawner{
		rng: rng,
		cfg: cfg,
	}
}

// Due reports whether more than SpawnInterval has elapsed since last.
func (s *Spawner) Due(now, last time.Time) bool {
	return now.Sub(last) > s.cfg.SpawnInterval
}

// Spawn creates an obstacle entering at the right screen edge.
// Returns false when the screen is too short to fit any obstacle with
// its margins; the caller still counts the spawn slot as used.
func (s *Spawner) Spawn(screenW, screenH int) (Obstacle, bool) {
	height, ok := s.pickHeight(screenH)
	if !ok {
		return Obstacle{}, false
	}

	margin := s.cfg.Margin
	maxY := screenH - height - margin
	y := margin + s.rng.Intn(maxY-margin)

	s.count++
	return NewObstacle(float64(screenW), float64(y), s.cfg.Width, height, s.cfg.Speed), true
}

// pickHeight draws a height in [MinHeight, MaxHeight) and shrinks it when
// the screen leaves no room for a y range of at least one unit.
func (s *Spawner) pickHeight(screenH int) (int, bool) {
	height := s.cfg.MinHeight + s.rng.Intn(s.cfg.MaxHeight-s.cfg.MinHeight)

	// y is drawn from [margin, screenH-height-margin), which needs height <= screenH-2*margin-1.
	limit := screenH - 2*s.cfg.Margin - 1
	if height > limit {
		height = limit
	}
	if height < 1 {
		return 0, false
	}
	return height, true
}

// Count returns how many obstacles have been spawned.
func (s *Spawner) Count() int {
	return s.count
}
