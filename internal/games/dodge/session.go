package dodge

import (
	"github.com/vovakirdan/virus-dodge/internal/config"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseReady    Phase = iota // Built, never started
	PhaseRunning               // Ticking
	PhaseGameOver              // Stopped after a hit; waits for restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is all mutable world state of one play-through. A restart
// replaces the whole aggregate rather than resetting fields in place.
type Session struct {
	Player     Player
	Hazards    []Hazard // Active hazards in spawn order
	Score      int      // Surviving ticks
	SpawnTimer int      // Ticks since start, drives the spawn cadence
	GameOver   bool
}

// NewSession returns a fresh world: centered player, no hazards, zeroed counters.
func NewSession(cfg config.DodgeConfig) *Session {
	return &Session{
		Player:  NewPlayer(cfg),
		Hazards: make([]Hazard, 0, 16),
	}
}

// clone returns a deep copy safe to hand to collaborators.
func (s *Session) clone() Session {
	out := *s
	out.Hazards = append([]Hazard(nil), s.Hazards...)
	return out
}

func (s *Session) validate() error {
	if err := s.Player.validate(); err != nil {
		return err
	}
	for i := range s.Hazards {
		if err := s.Hazards[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// pruneOffscreen drops hazards that fell past the bottom edge, in place.
func pruneOffscreen(hazards []Hazard, canvasH float64) []Hazard {
	kept := hazards[:0]
	for _, h := range hazards {
		if !Offscreen(h, canvasH) {
			kept = append(kept, h)
		}
	}
	return kept
}
