package dodge

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/virus-dodge/internal/config"
)

func TestAdvancePlayer(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		in    Input
		wantX float64
	}{
		{"no input", 100, Input{}, 100},
		{"left", 100, Input{Left: true}, 95},
		{"right", 100, Input{Right: true}, 105},
		{"both cancel", 100, Input{Left: true, Right: true}, 100},
		{"clamp left edge", 3, Input{Left: true}, 0},
		{"clamp right edge", 352, Input{Right: true}, 354},
		{"already at right edge", 354, Input{Right: true}, 354},
		// Left-then-right: at the left wall the left step clamps only at the end
		{"both at left wall", 0, Input{Left: true, Right: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.x, Width: 46}
			AdvancePlayer(&p, tc.in, 5, 400)
			if p.X != tc.wantX {
				t.Errorf("x = %v, want %v", p.X, tc.wantX)
			}
		})
	}
}

func TestAdvancePlayerNarrowCanvas(t *testing.T) {
	p := Player{X: 10, Width: 46}
	AdvancePlayer(&p, Input{Right: true}, 5, 30)
	if p.X != 0 {
		t.Errorf("canvas narrower than the sprite should pin x to 0, got %v", p.X)
	}
}

func TestPlayerClampInvariant(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	p := NewPlayer(cfg)
	rng := rand.New(rand.NewSource(99))
	maxX := cfg.Canvas.Width - cfg.Player.Width

	for i := 0; i < 10000; i++ {
		in := Input{Left: rng.Intn(2) == 0, Right: rng.Intn(3) == 0}
		AdvancePlayer(&p, in, cfg.Player.Speed, cfg.Canvas.Width)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("tick %d: x=%v escaped [0, %v]", i, p.X, maxX)
		}
	}
}

func TestAdvanceHazard(t *testing.T) {
	h := Hazard{X: 50, Y: -21, Radius: 21, Speed: 3, Phase: 10}
	AdvanceHazard(&h)

	if h.Y != -18 {
		t.Errorf("y = %v, expected -18", h.Y)
	}
	if h.Phase != 11 {
		t.Errorf("phase = %v, expected 11", h.Phase)
	}
	if h.X != 50 || h.Radius != 21 || h.Speed != 3 {
		t.Errorf("advance should only touch y and phase, got %+v", h)
	}
}

func TestOffscreen(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{600, false},
		{624.99, false},
		{625, true},
		{700, true},
	}

	for _, tc := range tests {
		h := Hazard{Y: tc.y, Radius: 25}
		if got := Offscreen(h, 600); got != tc.want {
			t.Errorf("Offscreen(y=%v) = %v, want %v", tc.y, got, tc.want)
		}
	}
}
