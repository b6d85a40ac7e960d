package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the hardcoded Virus Dodge tuning.
// It mirrors defaults/dodge.yaml and backs it up if the embed fails to parse.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Canvas: DodgeCanvas{
			Width:  400,
			Height: 600,
		},
		Player: DodgePlayer{
			Width:        46,
			Height:       78,
			Speed:        5,
			BottomMargin: 12,
			HitRadius:    28,
			HeadOffset:   38,
		},
		Hazards: DodgeHazards{
			SpawnInterval: 40, // ~0.66s at 60fps
			MinRadius:     21,
			MaxRadius:     34,
			MinSpeed:      2.5,
			MaxSpeed:      4.0,
			PhaseSeed:     2000,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
