package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config holds the GUI launch options.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Palette string
	HUD     int
	Params  string
}

// NewConfig returns the default GUI configuration. Zero Width, Height and
// Seed defer to the simulation's own defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "water",
		Scale:   4,
		TPS:     60,
		Palette: "ocean",
		HUD:     220,
	}
}

// Bind registers the config flags on the provided flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (water, rings)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 = simulation default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 = simulation default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "rain seed (0 = simulation default)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette (ocean, thermal)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 = off)")
	fs.StringVar(&c.Params, "params", c.Params, "comma-separated parameter overrides, e.g. speed=0.5,rain=7")
}

// SimOptions converts the dimension, seed and override flags into the factory
// map. The dedicated flags win over -params entries with the same key.
func (c *Config) SimOptions() map[string]string {
	opts := ParseOverrides(c.Params)
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts
}

// ParseOverrides splits a comma-separated key=value list into a factory
// options map. Malformed entries are skipped; the per-sim FromMap layer
// rejects out-of-range values anyway.
func ParseOverrides(list string) map[string]string {
	opts := map[string]string{}
	for _, pair := range strings.Split(list, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}
