package dodge

import (
	"github.com/vovakirdan/virus-dodge/internal/config"
)

// RandSource yields uniform samples in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Spawner introduces one hazard every interval ticks with randomized size,
// column, fall speed and animation phase.
type Spawner struct {
	rng       RandSource
	interval  int
	minRadius float64
	maxRadius float64
	minSpeed  float64
	maxSpeed  float64
	phaseSeed float64
}

// NewSpawner creates a spawner drawing from rng with the hazard ranges in cfg.
func NewSpawner(rng RandSource, cfg config.DodgeHazards) *Spawner {
	interval := cfg.SpawnInterval
	if interval < 1 {
		interval = 1
	}
	return &Spawner{
		rng:       rng,
		interval:  interval,
		minRadius: cfg.MinRadius,
		maxRadius: cfg.MaxRadius,
		minSpeed:  cfg.MinSpeed,
		maxSpeed:  cfg.MaxSpeed,
		phaseSeed: cfg.PhaseSeed,
	}
}

// Interval returns the spawn cadence in ticks.
func (s *Spawner) Interval() int {
	return s.interval
}

// MaybeSpawn returns a new hazard when tick is a positive multiple of the
// interval. The hazard starts fully above the canvas and fully inside it
// horizontally. Adding it to the world is the caller's job.
func (s *Spawner) MaybeSpawn(tick int, canvasW float64) (Hazard, bool) {
	if tick <= 0 || tick%s.interval != 0 {
		return Hazard{}, false
	}

	radius := s.uniform(s.minRadius, s.maxRadius)

	// A canvas narrower than the hazard collapses the column range to the center.
	var x float64
	if span := canvasW - 2*radius; span > 0 {
		x = radius + s.rng.Float64()*span
	} else {
		s.rng.Float64() // keep the draw sequence stable
		x = canvasW / 2
	}

	return Hazard{
		X:      x,
		Y:      -radius,
		Radius: radius,
		Speed:  s.uniform(s.minSpeed, s.maxSpeed),
		Phase:  s.rng.Float64() * s.phaseSeed,
	}, true
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
