package dodge

import "github.com/vovakirdan/virus-dodge/internal/core"

// Input is the held-direction state sampled once per tick.
type Input struct {
	Left  bool
	Right bool
}

// AdvancePlayer moves the player by speed for each held direction, left
// first then right, so holding both cancels out, and clamps the sprite to
// [0, canvasW - width].
func AdvancePlayer(p *Player, in Input, speed, canvasW float64) {
	if in.Left {
		p.X -= speed
	}
	if in.Right {
		p.X += speed
	}
	p.X = core.ClampF(p.X, 0, canvasW-p.Width)
}

// AdvanceHazard lets a hazard fall one tick and advances its animation.
func AdvanceHazard(h *Hazard) {
	h.Y += h.Speed
	h.Phase++
}

// Offscreen reports whether the hazard has fully left the bottom of the canvas.
func Offscreen(h Hazard, canvasH float64) bool {
	return h.Y >= canvasH+h.Radius
}
