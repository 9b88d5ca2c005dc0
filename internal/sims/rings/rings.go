package rings

import (
	"github.com/aquilax/go-perlin"

	"ripple-tank/internal/core"
	rng "ripple-tank/pkg/core"
)

// cloudDriftScale controls how fast the cloud wanders over ticks.
const cloudDriftScale = 0.005

// Display shades, dimmest to brightest. Rings raster at opacity*255 on top.
const (
	cloudShade     = 48
	waterlineShade = 64
	dropShade      = 160
)

// Drop is a falling raindrop in continuous cell coordinates.
type Drop struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Ring is an expanding circular wave, alive while its opacity is positive.
type Ring struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// World animates rain falling from a drifting cloud into rings that expand
// and fade on the waterline. Unlike the water simulation there is no height
// field; the scene is particles and circles rastered into the display
// buffer each tick.
type World struct {
	cfg Config

	drops []Drop
	rings []Ring

	display []uint8

	params  Params
	paused  bool
	raining bool

	rand   *rng.RNG
	clouds *perlin.Perlin
	tick   int64
}

// New returns a rings world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a rings world configured from the provided options.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, core.ErrInvalidDimensions
	}
	cfg.Params = cfg.Params.sanitized()
	w := &World{
		cfg:     cfg,
		display: make([]uint8, cfg.Width*cfg.Height),
		params:  cfg.Params,
		raining: true,
		rand:    rng.NewRNG(cfg.Seed),
		clouds:  perlin.NewPerlin(2, 2, 3, cfg.Seed),
	}
	w.rebuildDisplay()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "rings" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Params returns a copy of the current parameter values.
func (w *World) Params() Params { return w.params }

// Paused reports whether the simulation is in the Paused state.
func (w *World) Paused() bool { return w.paused }

// Raining reports whether the cloud is producing drops.
func (w *World) Raining() bool { return w.raining }

// TogglePause switches between Running and Paused.
func (w *World) TogglePause() { w.paused = !w.paused }

// ToggleRain flips the cloud on or off. Airborne drops keep falling.
func (w *World) ToggleRain() { w.raining = !w.raining }

// DropCount reports the number of airborne drops.
func (w *World) DropCount() int { return len(w.drops) }

// RingCount reports the number of live rings.
func (w *World) RingCount() int { return len(w.rings) }

// Reset restarts the animation with a flat scene, default parameters and
// reseeded randomness. Seed 0 means the configured seed. The pause state
// survives.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rand = rng.NewRNG(effective)
	w.clouds = perlin.NewPerlin(2, 2, 3, effective)
	w.tick = 0
	w.drops = w.drops[:0]
	w.rings = w.rings[:0]
	w.params = w.cfg.Params
	w.raining = true
	w.rebuildDisplay()
}

// Clear removes every drop and ring and restores the configured defaults,
// without reseeding. The pause state survives.
func (w *World) Clear() {
	w.drops = w.drops[:0]
	w.rings = w.rings[:0]
	w.params = w.cfg.Params
	w.raining = true
	w.rebuildDisplay()
}

// SpawnRing starts a ring at (x, y) with the base radius and full opacity.
// Out-of-range coordinates are silently ignored.
func (w *World) SpawnRing(x, y int) {
	if x < 0 || x >= w.cfg.Width || y < 0 || y >= w.cfg.Height {
		return
	}
	w.rings = append(w.rings, Ring{X: float64(x), Y: float64(y), Radius: baseRadius, Opacity: 1})
	w.rebuildDisplay()
}

// Step advances the animation by one tick: rings expand and fade, drops
// fall and splash, the cloud sheds new drops. While paused the call returns
// with the scene untouched.
func (w *World) Step() {
	if w.paused {
		return
	}
	w.tick++
	w.advanceRings()
	w.advanceDrops()
	if w.raining {
		w.spawnDrops()
	}
	w.rebuildDisplay()
}

func (w *World) advanceRings() {
	keep := w.rings[:0]
	for _, r := range w.rings {
		r.Radius += w.params.ExpansionSpeed
		r.Opacity -= w.params.FadeSpeed
		if r.Opacity > 0 {
			keep = append(keep, r)
		}
	}
	w.rings = keep
}

// advanceDrops moves airborne drops and converts waterline arrivals into
// rings. A bigger drop splashes into a bigger ring. Drops blown past the
// side edges keep falling; their rings raster off-grid and quietly fade.
func (w *World) advanceDrops() {
	waterline := float64(w.cfg.Height - 1)
	keep := w.drops[:0]
	for _, d := range w.drops {
		d.X += d.VX + w.params.Wind
		d.Y += d.VY
		if d.Y >= waterline {
			w.rings = append(w.rings, Ring{X: d.X, Y: waterline, Radius: baseRadius + d.Size, Opacity: 1})
			continue
		}
		keep = append(keep, d)
	}
	w.drops = keep
}

func (w *World) spawnDrops() {
	count := 3 + w.rand.IntN(3)
	cx := w.cloudX()
	half := float64(w.cloudWidth()) / 2
	top := float64(w.cloudBottom())
	for i := 0; i < count; i++ {
		w.drops = append(w.drops, Drop{
			X:    w.rand.Range(cx-half, cx+half),
			Y:    top,
			VX:   w.rand.Range(-dropDriftMax, dropDriftMax),
			VY:   w.rand.Range(fallSpeedMin, fallSpeedMax),
			Size: w.rand.Range(dropSizeMin, dropSizeMax),
		})
	}
}

// cloudX is the cloud center, wandering around mid-grid on Perlin noise.
func (w *World) cloudX() float64 {
	n := w.clouds.Noise1D(float64(w.tick) * cloudDriftScale)
	if n > 1 {
		n = 1
	} else if n < -1 {
		n = -1
	}
	return float64(w.cfg.Width)/2 + n*float64(w.cfg.Width)/8
}

func (w *World) cloudWidth() int { return w.cfg.Width / 4 }

func (w *World) cloudHeight() int {
	h := w.cfg.Height / 10
	if h < 2 {
		h = 2
	}
	return h
}

func (w *World) cloudTop() int { return w.cfg.Height / 12 }

func (w *World) cloudBottom() int { return w.cloudTop() + w.cloudHeight() }

func init() {
	core.Register("rings", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
