package dodge

// Collides reports whether the hazard's shrunken circle overlaps the player's head circle.
func Collides(p Player, h Hazard) bool {
	return p.HitCircle().Overlaps(h.HitCircle())
}

// FirstHit returns the index of the first hazard touching the player.
// An empty slice never collides.
func FirstHit(p Player, hazards []Hazard) (int, bool) {
	for i := range hazards {
		if Collides(p, hazards[i]) {
			return i, true
		}
	}
	return -1, false
}
