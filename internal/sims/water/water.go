package water

import (
	"github.com/aquilax/go-perlin"

	"ripple-tank/internal/core"
	rng "ripple-tank/pkg/core"
)

// World simulates a rectangular water surface as a discretized wave-height
// field. Clicks and raindrops deposit impulses; the propagation step spreads
// them as circular waves that reflect off the walls and decay under damping.
type World struct {
	cfg Config

	field   *core.Field
	display []uint8

	params  Params
	paused  bool
	raining bool

	rand  *rng.RNG
	gusts *perlin.Perlin
	tick  int64

	impacts []Impact
}

// New returns a water world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a water world configured from the provided options.
// Dimension errors are fatal; out-of-range parameters fall back to defaults.
func NewWithConfig(cfg Config) (*World, error) {
	field, err := core.NewField(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	cfg.Params = cfg.Params.sanitized()
	return &World{
		cfg:     cfg,
		field:   field,
		display: make([]uint8, cfg.Width*cfg.Height),
		params:  cfg.Params,
		rand:    rng.NewRNG(cfg.Seed),
		gusts:   perlin.NewPerlin(2, 2, 3, cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "water" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.field.W, H: w.field.H} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Heights exposes the live height buffer. Consumers on other goroutines must
// use CopyHeights instead.
func (w *World) Heights() []float32 { return w.field.Curr() }

// HeightAt reads the surface height at (x, y).
func (w *World) HeightAt(x, y int) (float32, error) { return w.field.At(x, y) }

// Params returns a copy of the current parameter values.
func (w *World) Params() Params { return w.params }

// Paused reports whether the simulation is in the Paused state.
func (w *World) Paused() bool { return w.paused }

// Raining reports whether the rain source is enabled.
func (w *World) Raining() bool { return w.raining }

// TogglePause switches between Running and Paused.
func (w *World) TogglePause() { w.paused = !w.paused }

// ToggleRain flips the rain source. Legal in both states; drops only fall
// while running.
func (w *World) ToggleRain() { w.raining = !w.raining }

// Reset restarts the simulation: surface flattened, parameters restored,
// rain off, randomness reseeded. Seed 0 means the configured seed. The
// pause state survives, matching Clear.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rand = rng.NewRNG(effective)
	w.gusts = perlin.NewPerlin(2, 2, 3, effective)
	w.tick = 0
	w.field.Reset()
	w.params = w.cfg.Params
	w.raining = false
	for i := range w.display {
		w.display[i] = 0
	}
}

// Clear flattens the surface and restores the configured parameter defaults
// without reallocating or reseeding. Whichever of Running/Paused is active
// stays active; the rain source switches off with the other parameters.
func (w *World) Clear() {
	w.field.Reset()
	w.params = w.cfg.Params
	w.raining = false
	for i := range w.display {
		w.display[i] = 0
	}
}

// Splash adds an impulse to the surface at (x, y). Out-of-range coordinates
// are silently ignored so clicks at the window edge never fault. Legal while
// paused; the deformation propagates on resume.
func (w *World) Splash(x, y int, magnitude float64) {
	if !w.field.Contains(x, y) {
		return
	}
	idx := w.field.Index(x, y)
	w.field.Curr()[idx] += float32(magnitude)
	w.display[idx] = quantizeHeight(w.field.Curr()[idx])
}

// Step advances the surface by one tick: rain impacts land, then the wave
// field propagates. While paused the call returns with every buffer
// untouched.
func (w *World) Step() {
	if w.paused {
		return
	}
	w.tick++
	if w.raining {
		w.impacts = w.fallImpacts(w.impacts[:0])
		for _, imp := range w.impacts {
			w.Splash(imp.X, imp.Y, imp.Magnitude)
		}
	}
	w.propagate()
	w.rebuildDisplay()
}

// Energy reports the sum of squared heights over the surface.
func (w *World) Energy() float64 {
	total := 0.0
	for _, h := range w.field.Curr() {
		total += float64(h) * float64(h)
	}
	return total
}

func init() {
	core.Register("water", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
