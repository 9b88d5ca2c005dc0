package water

import (
	"slices"
	"testing"

	rng "ripple-tank/pkg/core"
)

func TestRaindropsDeterministic(t *testing.T) {
	collect := func() []Impact {
		r := rng.NewRNG(42)
		var drops []Impact
		for i := 0; i < 50; i++ {
			drops = raindrops(r, 3.0, 0, 40, 30, 3, drops)
		}
		return drops
	}

	first := collect()
	second := collect()
	if len(first) == 0 {
		t.Fatal("expected at least one drop over 50 ticks at intensity 3")
	}
	if !slices.Equal(first, second) {
		t.Fatal("identical seeds produced different rain")
	}

	other := rng.NewRNG(43)
	var drops []Impact
	for i := 0; i < 50; i++ {
		drops = raindrops(other, 3.0, 0, 40, 30, 3, drops)
	}
	if slices.Equal(first, drops) {
		t.Fatal("different seeds produced identical rain")
	}
}

func TestRaindropsZeroIntensity(t *testing.T) {
	r := rng.NewRNG(7)
	for i := 0; i < 1000; i++ {
		if drops := raindrops(r, 0, 0, 40, 30, 3, nil); len(drops) != 0 {
			t.Fatalf("tick %d: intensity 0 produced %d drops", i, len(drops))
		}
	}
}

func TestRaindropsMeanMatchesIntensity(t *testing.T) {
	r := rng.NewRNG(99)
	const ticks = 20000
	total := 0
	for i := 0; i < ticks; i++ {
		total += len(raindrops(r, 3.0, 0, 40, 30, 3, nil))
	}
	mean := float64(total) / ticks
	if mean < 2.85 || mean > 3.15 {
		t.Fatalf("drop mean over %d ticks = %.3f, want ~3.0", ticks, mean)
	}
}

func TestRaindropsLandWithinGridWhenCalm(t *testing.T) {
	r := rng.NewRNG(17)
	var drops []Impact
	for i := 0; i < 500; i++ {
		drops = raindrops(r, 4.0, 0, 40, 30, 3, drops)
	}
	for _, d := range drops {
		if d.X < 0 || d.X >= 40 || d.Y < 0 || d.Y >= 30 {
			t.Fatalf("calm-air drop landed out of bounds at (%d,%d)", d.X, d.Y)
		}
		if d.Magnitude != 3 {
			t.Fatalf("drop magnitude %g, want 3", d.Magnitude)
		}
	}
}

func TestRaindropsWindShiftsImpactColumns(t *testing.T) {
	calm := rng.NewRNG(5)
	windy := rng.NewRNG(5)

	var calmDrops, windyDrops []Impact
	for i := 0; i < 200; i++ {
		calmDrops = raindrops(calm, 3.0, 0, 40, 30, 3, calmDrops)
		windyDrops = raindrops(windy, 3.0, 2.6, 40, 30, 3, windyDrops)
	}

	if len(calmDrops) != len(windyDrops) {
		t.Fatalf("wind changed the drop count: %d vs %d", len(calmDrops), len(windyDrops))
	}
	for i := range calmDrops {
		if windyDrops[i].X != calmDrops[i].X+3 {
			t.Fatalf("drop %d: drift 2.6 shifted X from %d to %d, want +3",
				i, calmDrops[i].X, windyDrops[i].X)
		}
		if windyDrops[i].Y != calmDrops[i].Y {
			t.Fatalf("drop %d: wind moved Y from %d to %d", i, calmDrops[i].Y, windyDrops[i].Y)
		}
	}
}

func TestRainFallsOnlyWhileRunningAndEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 30
	cfg.Height = 30
	world := newTestWorld(t, cfg)

	for i := 0; i < 20; i++ {
		world.Step()
	}
	if e := world.Energy(); e != 0 {
		t.Fatalf("rain fell while disabled: energy %g", e)
	}

	world.ToggleRain()
	world.TogglePause()
	for i := 0; i < 20; i++ {
		world.Step()
	}
	if e := world.Energy(); e != 0 {
		t.Fatalf("rain fell while paused: energy %g", e)
	}

	world.TogglePause()
	for i := 0; i < 20; i++ {
		world.Step()
	}
	if e := world.Energy(); e == 0 {
		t.Fatal("no rain energy after 20 running ticks at intensity 3")
	}
}

func TestGustFactorStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	world := newTestWorld(t, cfg)

	world.params.Wind = 2
	for i := 0; i < 2000; i++ {
		world.tick = int64(i)
		g := world.gust()
		if g < 0.5 || g > 1.5 {
			t.Fatalf("tick %d: gust factor %g outside [0.5, 1.5]", i, g)
		}
		drift := world.windDrift()
		if drift < 1 || drift > 3 {
			t.Fatalf("tick %d: drift %g outside wind*[0.5, 1.5]", i, drift)
		}
	}

	world.params.Wind = 0
	for i := 0; i < 100; i++ {
		world.tick = int64(i)
		if drift := world.windDrift(); drift != 0 {
			t.Fatalf("calm air produced drift %g", drift)
		}
	}
}
