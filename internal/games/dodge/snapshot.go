package dodge

// Frame is the state handed to a Renderer: everything needed to draw one
// tick, detached from the live session.
type Frame struct {
	Player   Player
	Hazards  []Hazard
	Score    int
	Tick     int
	GameOver bool
	CanvasW  float64
	CanvasH  float64
}

// Snapshot returns the current frame. Hazards are copied.
func (c *Controller) Snapshot() Frame {
	s := c.session
	return Frame{
		Player:   s.Player,
		Hazards:  append([]Hazard(nil), s.Hazards...),
		Score:    s.Score,
		Tick:     s.SpawnTimer,
		GameOver: s.GameOver,
		CanvasW:  c.cfg.Canvas.Width,
		CanvasH:  c.cfg.Canvas.Height,
	}
}
