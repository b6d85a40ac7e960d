package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
)

// HazardHitScale shrinks a hazard's drawn radius to its collision radius,
// so the spikes can graze the player before a hit registers.
const HazardHitScale = 0.78

// Player is the horizontally moving sprite. Only X changes during a session.
type Player struct {
	X, Y          float64 // Top-left corner of the sprite
	Width, Height float64
	HitRadius     float64 // Radius of the head hit-circle
	HeadOffset    float64 // Hit-circle center distance below Y
}

// NewPlayer places a player centered horizontally, resting BottomMargin above the canvas bottom.
func NewPlayer(cfg config.DodgeConfig) Player {
	return Player{
		X:          cfg.Canvas.Width/2 - cfg.Player.Width/2,
		Y:          cfg.Canvas.Height - cfg.Player.Height - cfg.Player.BottomMargin,
		Width:      cfg.Player.Width,
		Height:     cfg.Player.Height,
		HitRadius:  cfg.Player.HitRadius,
		HeadOffset: cfg.Player.HeadOffset,
	}
}

// HitCircle returns the collision region: the head, not the sprite bounds.
func (p Player) HitCircle() core.Circle {
	return core.Circle{
		Center: core.Vec2{X: p.X + p.Width/2, Y: p.Y + p.HeadOffset},
		R:      p.HitRadius,
	}
}

func (p Player) validate() error {
	if !finite(p.X) || !finite(p.Y) {
		return fmt.Errorf("dodge: player position (%v, %v) is not finite", p.X, p.Y)
	}
	if !finite(p.HitRadius) || p.HitRadius < 0 {
		return fmt.Errorf("dodge: player hit radius %v is invalid", p.HitRadius)
	}
	return nil
}

// Hazard is a falling virus. Radius and Speed are fixed once spawned.
type Hazard struct {
	X, Y   float64 // Center
	Radius float64 // Drawn radius
	Speed  float64 // Units fallen per tick
	Phase  float64 // Animation counter; never affects collision
}

// HitCircle returns the hazard's collision region.
func (h Hazard) HitCircle() core.Circle {
	return core.Circle{
		Center: core.Vec2{X: h.X, Y: h.Y},
		R:      h.Radius * HazardHitScale,
	}
}

func (h Hazard) validate() error {
	if !finite(h.X) || !finite(h.Y) {
		return fmt.Errorf("dodge: hazard position (%v, %v) is not finite", h.X, h.Y)
	}
	if !finite(h.Radius) || h.Radius < 0 {
		return fmt.Errorf("dodge: hazard radius %v is invalid", h.Radius)
	}
	if !finite(h.Speed) {
		return fmt.Errorf("dodge: hazard speed %v is not finite", h.Speed)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
