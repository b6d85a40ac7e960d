package dodge

import (
	"math"

	"github.com/vovakirdan/virus-dodge/internal/core"
)

// Sprite layout in canvas units, relative to the player's top-left corner.
const (
	ShirtInset  = 7
	ShirtTop    = 59
	ShirtHeight = 16
	HairLift    = 12 // Hair covers the head above center - HairLift
)

// Hazard look: 12 spikes around a core at 68% of the drawn radius,
// rotating a quarter radian per phase tick.
const (
	HazardSpikes    = 12
	HazardCoreRatio = 0.68
	HazardSpin      = 0.25
)

// Cell runes
const (
	HazardCore  = '●'
	HazardSpike = '✶'
	HeadChar    = '█'
	HairChar    = '▀'
	ShirtChar   = '▓'
	FloorChar   = '▔'
)

// HUD carries the presentation state that lives outside the frame.
type HUD struct {
	ScoreText      string
	RestartVisible bool
	Paused         bool
}

// ScreenRenderer draws frames into a terminal screen. Row 0 is the HUD and
// the last row is the floor; the canvas is stretched over the rows between.
type ScreenRenderer struct{}

// viewport maps canvas units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, f Frame) viewport {
	v := viewport{top: 1, w: dst.Width(), h: dst.Height() - 2}
	if f.CanvasW > 0 {
		v.sx = float64(v.w) / f.CanvasW
	}
	if f.CanvasH > 0 {
		v.sy = float64(v.h) / f.CanvasH
	}
	return v
}

// world returns the canvas point at the center of cell (x, y).
func (v viewport) world(x, y int) core.Vec2 {
	return core.Vec2{
		X: (float64(x) + 0.5) / v.sx,
		Y: (float64(y-v.top) + 0.5) / v.sy,
	}
}

// bottom returns the last canvas row.
func (v viewport) bottom() int {
	return v.top + v.h - 1
}

// cellSpan returns the cell span covering canvas range [lo, hi] on one axis.
func cellSpan(lo, hi, scale float64, offset int) (int, int) {
	return int(math.Floor(lo*scale)) + offset, int(math.Ceil(hi*scale)) + offset
}

// Draw renders the frame plus HUD and overlays.
func (r ScreenRenderer) Draw(dst *core.Screen, f Frame, hud HUD) {
	dst.Clear()
	if dst.Width() < 1 || dst.Height() < 3 {
		return
	}

	v := newViewport(dst, f)
	if v.sx > 0 && v.sy > 0 {
		for _, h := range f.Hazards {
			r.drawHazard(dst, v, h)
		}
		r.drawPlayer(dst, v, f.Player)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorGray)
	dst.DrawTextColor(1, 0, "Score: "+hud.ScoreText, core.ColorBrightWhite)

	switch {
	case f.GameOver:
		sub := "Score: " + hud.ScoreText
		hint := ""
		if hud.RestartVisible {
			hint = "R restart  |  Q quit"
		}
		drawCenteredMessage(dst, "Game Over!", sub, hint)
	case hud.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
	}
}

func (r ScreenRenderer) drawHazard(dst *core.Screen, v viewport, h Hazard) {
	x0, x1 := cellSpan(h.X-h.Radius, h.X+h.Radius, v.sx, 0)
	y0, y1 := cellSpan(h.Y-h.Radius, h.Y+h.Radius, v.sy, v.top)
	spin := h.Phase * HazardSpin

	for y := core.Max(y0, v.top); y <= core.Min(y1, v.bottom()); y++ {
		for x := x0; x <= x1; x++ {
			p := v.world(x, y)
			dx, dy := p.X-h.X, p.Y-h.Y
			d := math.Hypot(dx, dy)
			switch {
			case d <= h.Radius*HazardCoreRatio:
				dst.SetColor(x, y, HazardCore, core.ColorBrightGreen)
			case d <= h.Radius:
				if math.Sin(HazardSpikes*(math.Atan2(dy, dx)-spin)) > 0 {
					dst.SetColor(x, y, HazardSpike, core.ColorGreen)
				}
			}
		}
	}
}

func (r ScreenRenderer) drawPlayer(dst *core.Screen, v viewport, p Player) {
	sx0, sx1 := cellSpan(p.X+ShirtInset, p.X+p.Width-ShirtInset, v.sx, 0)
	_, sy1 := cellSpan(p.Y+ShirtTop, p.Y+ShirtTop+ShirtHeight, v.sy, v.top)
	// The shirt owns a row only when its top edge lies above the row's center.
	sy0 := core.Clamp(int(math.Round((p.Y+ShirtTop)*v.sy))+v.top, v.top, v.bottom())
	sy1 = core.Clamp(sy1, sy0+1, v.bottom()+1)

	// Head first, stopping above the shirt so the body survives coarse scales.
	head := p.HitCircle()
	hx0, hx1 := cellSpan(head.Center.X-head.R, head.Center.X+head.R, v.sx, 0)
	hy0, hy1 := cellSpan(head.Center.Y-head.R, head.Center.Y+head.R, v.sy, v.top)
	for y := core.Max(hy0, v.top); y <= core.Min(hy1, sy0-1); y++ {
		for x := hx0; x <= hx1; x++ {
			pt := v.world(x, y)
			if pt.Dist(head.Center) > head.R {
				continue
			}
			if pt.Y < head.Center.Y-HairLift {
				dst.SetColor(x, y, HairChar, core.ColorHair)
			} else {
				dst.SetColor(x, y, HeadChar, core.ColorSkin)
			}
		}
	}

	dst.DrawRect(core.NewRect(sx0, sy0, core.Max(sx1-sx0, 1), sy1-sy0), ShirtChar, core.ColorBlue)
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, hint string) {
	lines := []string{title, subtitle}
	if hint != "" {
		lines = append(lines, hint)
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect(
		core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-boxH)/2, 0, dst.Height()),
		boxW, boxH,
	)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColor(box.X+(boxW-len([]rune(l)))/2, box.Y+1+i, l, c)
	}
}
