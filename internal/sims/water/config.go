package water

import (
	"math"
	"strconv"
)

// Bounds and nudge steps for the adjustable parameters. WaveSpeedMax sits
// below the 1/sqrt(2) stability limit of the propagation stencil; speeds
// beyond it diverge.
const (
	WaveSpeedMin  = 0.05
	WaveSpeedMax  = 0.7
	WaveSpeedStep = 0.05

	RainIntensityMin  = 0.0
	RainIntensityMax  = 10.0
	RainIntensityStep = 1.0

	WindMin  = -3.0
	WindMax  = 3.0
	WindStep = 0.5
)

// Params holds the tunable wave-physics values.
type Params struct {
	// WaveSpeed is the propagation speed in cells per tick.
	WaveSpeed float64
	// Damping removes a fraction of the surface velocity each tick, [0, 1).
	Damping float64
	// RainIntensity is the mean number of raindrop impacts per tick.
	RainIntensity float64
	// Wind drifts raindrop impact positions horizontally, in cells per drop.
	Wind float64
	// SplashMagnitude is the height added by one click or raindrop.
	SplashMagnitude float64
}

// sanitized replaces out-of-range values with the defaults. Invalid values
// are never clamped into range; they are rejected wholesale and the default
// retained.
func (p Params) sanitized() Params {
	def := DefaultConfig().Params
	if math.IsNaN(p.WaveSpeed) || p.WaveSpeed < WaveSpeedMin || p.WaveSpeed > WaveSpeedMax {
		p.WaveSpeed = def.WaveSpeed
	}
	if math.IsNaN(p.Damping) || p.Damping < 0 || p.Damping >= 1 {
		p.Damping = def.Damping
	}
	if math.IsNaN(p.RainIntensity) || p.RainIntensity < RainIntensityMin || p.RainIntensity > RainIntensityMax {
		p.RainIntensity = def.RainIntensity
	}
	if math.IsNaN(p.Wind) || p.Wind < WindMin || p.Wind > WindMax {
		p.Wind = def.Wind
	}
	if math.IsNaN(p.SplashMagnitude) || p.SplashMagnitude <= 0 {
		p.SplashMagnitude = def.SplashMagnitude
	}
	return p
}

// Config controls the water simulation dimensions and physics defaults.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Seed:   1337,
		Params: Params{
			WaveSpeed:       0.3,
			Damping:         0.015,
			RainIntensity:   3,
			Wind:            0,
			SplashMagnitude: 3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Out-of-range values are ignored and the defaults retained.
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
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= WaveSpeedMin && parsed <= WaveSpeedMax {
			c.Params.WaveSpeed = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.Damping = parsed
		}
	}
	if v, ok := cfg["rain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= RainIntensityMin && parsed <= RainIntensityMax {
			c.Params.RainIntensity = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= WindMin && parsed <= WindMax {
			c.Params.Wind = parsed
		}
	}
	if v, ok := cfg["splash"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SplashMagnitude = parsed
		}
	}
	return c
}
