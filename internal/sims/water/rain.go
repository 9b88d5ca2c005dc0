package water

import (
	"math"

	rng "ripple-tank/pkg/core"
)

// Impact is a single excitation event, produced and consumed within one tick.
type Impact struct {
	X, Y      int
	Magnitude float64
}

// gustScale controls how fast the Perlin gust factor wanders over ticks.
const gustScale = 0.02

// fallImpacts appends this tick's raindrop impacts to dst and returns it.
func (w *World) fallImpacts(dst []Impact) []Impact {
	return raindrops(w.rand, w.params.RainIntensity, w.windDrift(), w.field.W, w.field.H, w.params.SplashMagnitude, dst)
}

// raindrops draws a Poisson-distributed number of impacts with mean events
// per tick, uniformly positioned, each drifted horizontally by drift cells.
// Drifted positions may leave the grid; the injector's bounds policy drops
// them. Deterministic for a given generator state.
func raindrops(r *rng.RNG, mean, drift float64, width, height int, magnitude float64, dst []Impact) []Impact {
	if mean <= 0 || width <= 0 || height <= 0 {
		return dst
	}
	offset := int(math.Round(drift))
	count := r.Poisson(mean)
	for i := 0; i < count; i++ {
		dst = append(dst, Impact{
			X:         r.IntN(width) + offset,
			Y:         r.IntN(height),
			Magnitude: magnitude,
		})
	}
	return dst
}

// windDrift converts the wind parameter into this tick's horizontal drift.
// The gust factor wanders through [0.5, 1.5] on Perlin noise sampled along
// the tick counter, so a steady wind setting still produces uneven rain.
func (w *World) windDrift() float64 {
	if w.params.Wind == 0 {
		return 0
	}
	return w.params.Wind * w.gust()
}

func (w *World) gust() float64 {
	n := w.gusts.Noise1D(float64(w.tick) * gustScale)
	if n > 1 {
		n = 1
	} else if n < -1 {
		n = -1
	}
	return 1 + 0.5*n
}
