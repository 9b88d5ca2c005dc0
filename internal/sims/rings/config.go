package rings

import (
	"math"
	"strconv"
)

// Tuning in cell units. Drops and rings move fractions of a cell per tick,
// so positions are tracked in float64 and rastered only for display.
const (
	ExpansionMin  = 0.04
	ExpansionMax  = 1.0
	ExpansionStep = 0.04

	FadeMin = 0.001
	FadeMax = 0.2

	WindMin  = -0.6
	WindMax  = 0.6
	WindStep = 0.1

	baseRadius   = 1.0
	dropSizeMin  = 1.6
	dropSizeMax  = 4.0
	fallSpeedMin = 0.4
	fallSpeedMax = 1.0
	dropDriftMax = 0.2
)

// Params holds the tunable animation values.
type Params struct {
	// ExpansionSpeed is the ring radius growth in cells per tick.
	ExpansionSpeed float64
	// FadeSpeed is the opacity lost per tick; a ring lives 1/FadeSpeed ticks.
	FadeSpeed float64
	// Wind adds horizontal velocity to falling drops, in cells per tick.
	Wind float64
}

// sanitized replaces out-of-range values with the defaults.
func (p Params) sanitized() Params {
	def := DefaultConfig().Params
	if math.IsNaN(p.ExpansionSpeed) || p.ExpansionSpeed < ExpansionMin || p.ExpansionSpeed > ExpansionMax {
		p.ExpansionSpeed = def.ExpansionSpeed
	}
	if math.IsNaN(p.FadeSpeed) || p.FadeSpeed < FadeMin || p.FadeSpeed > FadeMax {
		p.FadeSpeed = def.FadeSpeed
	}
	if math.IsNaN(p.Wind) || p.Wind < WindMin || p.Wind > WindMax {
		p.Wind = def.Wind
	}
	return p
}

// Config controls the rings simulation dimensions and animation defaults.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 120,
		Seed:   1337,
		Params: Params{
			ExpansionSpeed: 0.16,
			FadeSpeed:      0.02,
			Wind:           0,
		},
	}
}

// FromMap populates the config from a string map. Out-of-range values are
// ignored and the defaults retained.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["expansion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= ExpansionMin && parsed <= ExpansionMax {
			c.Params.ExpansionSpeed = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= FadeMin && parsed <= FadeMax {
			c.Params.FadeSpeed = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= WindMin && parsed <= WindMax {
			c.Params.Wind = parsed
		}
	}
	return c
}
