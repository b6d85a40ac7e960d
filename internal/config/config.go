// Package config provides YAML-based tuning for Virus Dodge: the on-disk
// format, embedded defaults, the lookup order, validation and a file watcher
// for reloading tuning while the game runs.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// DodgeConfig contains all tuning for the Virus Dodge game.
type DodgeConfig struct {
	Canvas  DodgeCanvas  `yaml:"canvas"`
	Player  DodgePlayer  `yaml:"player"`
	Hazards DodgeHazards `yaml:"hazards"`
}

// DodgeCanvas is the size of the simulated world.
type DodgeCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines the player sprite and its hit region.
type DodgePlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal units per tick while a direction is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between sprite bottom and canvas bottom
	HitRadius    float64 `yaml:"hit_radius"`
	HeadOffset   float64 `yaml:"head_offset"` // Hit-circle center below the sprite top
}

// DodgeHazards defines spawn cadence and the random ranges for new hazards.
// Ranges are half-open: [Min, Max).
type DodgeHazards struct {
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	PhaseSeed     float64 `yaml:"phase_seed"`
}

// Validate checks the config for values the simulation cannot run with.
func (c DodgeConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{positive(c.Canvas.Width), "canvas.width"},
		{positive(c.Canvas.Height), "canvas.height"},
		{positive(c.Player.Width), "player.width"},
		{positive(c.Player.Height), "player.height"},
		{nonNegative(c.Player.Speed), "player.speed"},
		{nonNegative(c.Player.BottomMargin), "player.bottom_margin"},
		{positive(c.Player.HitRadius), "player.hit_radius"},
		{finite(c.Player.HeadOffset), "player.head_offset"},
		{c.Hazards.SpawnInterval > 0, "hazards.spawn_interval"},
		{positive(c.Hazards.MinRadius), "hazards.min_radius"},
		{finite(c.Hazards.MaxRadius) && c.Hazards.MaxRadius >= c.Hazards.MinRadius, "hazards.max_radius"},
		{positive(c.Hazards.MinSpeed), "hazards.min_speed"},
		{finite(c.Hazards.MaxSpeed) && c.Hazards.MaxSpeed >= c.Hazards.MinSpeed, "hazards.max_speed"},
		{nonNegative(c.Hazards.PhaseSeed), "hazards.phase_seed"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalid, chk.field)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}
