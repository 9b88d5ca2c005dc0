package water

import (
	"math"
	"testing"
)

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func height(t *testing.T, w *World, x, y int) float32 {
	t.Helper()
	h, err := w.HeightAt(x, y)
	if err != nil {
		t.Fatalf("HeightAt(%d,%d): %v", x, y, err)
	}
	return h
}

// A unit impulse on still water propagates as curr = 2c - p + s^2*lap - d*(c - p).
// With speed 0.3 and damping 0.05 the first tick leaves 2 - 4*0.09 - 0.05 = 1.59
// under the impulse and 0.09 on each 4-neighbor.
func TestFirstTickTransient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Params.WaveSpeed = 0.3
	cfg.Params.Damping = 0.05
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	world.Splash(10, 10, 1.0)
	world.Step()

	want := map[[2]int]float32{
		{10, 10}: 1.59,
		{9, 10}:  0.09,
		{11, 10}: 0.09,
		{10, 9}:  0.09,
		{10, 11}: 0.09,
	}
	for pos, w := range want {
		got := height(t, world, pos[0], pos[1])
		if abs32(got-w) > 1e-5 {
			t.Errorf("h(%d,%d) = %.8f, want %.8f", pos[0], pos[1], got, w)
		}
	}

	// Nothing reaches diagonals or distance-2 cells on the first tick.
	for _, pos := range [][2]int{{9, 9}, {11, 9}, {9, 11}, {11, 11}, {8, 10}, {12, 10}, {10, 8}, {10, 12}} {
		if got := height(t, world, pos[0], pos[1]); got != 0 {
			t.Errorf("h(%d,%d) = %g, want untouched 0", pos[0], pos[1], got)
		}
	}
}

func TestEnergyDecaysUnderDamping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Params.WaveSpeed = 0.3
	cfg.Params.Damping = 0.05
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	world.Splash(16, 16, 1.0)

	// Per-tick energy wobbles as the scheme trades kinetic against potential
	// energy, so compare checkpoints a hundred ticks apart instead.
	checkpoints := []float64{world.Energy()}
	for i := 0; i < 20; i++ {
		for j := 0; j < 100; j++ {
			world.Step()
		}
		checkpoints = append(checkpoints, world.Energy())
	}

	for i := 1; i < len(checkpoints); i++ {
		prev, next := checkpoints[i-1], checkpoints[i]
		if prev == 0 {
			if next != 0 {
				t.Fatalf("checkpoint %d: energy rose from 0 to %g", i, next)
			}
			continue
		}
		if next >= prev {
			t.Fatalf("checkpoint %d: energy %g did not decay below %g", i, next, prev)
		}
	}
	if final := checkpoints[len(checkpoints)-1]; final >= 1e-6 {
		t.Fatalf("energy after 2000 damped ticks = %g, want < 1e-6", final)
	}
}

func TestUndampedWaveStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Params.WaveSpeed = 0.5
	cfg.Params.Damping = 0
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	world.Splash(24, 24, 1.0)
	for i := 0; i < 10000; i++ {
		world.Step()
		if i%500 != 0 {
			continue
		}
		e := world.Energy()
		if math.IsNaN(e) || math.IsInf(e, 0) {
			t.Fatalf("tick %d: energy diverged to %g", i, e)
		}
		if e > 1000 {
			t.Fatalf("tick %d: energy %g blew past any plausible bound", i, e)
		}
	}
}

func TestWavefrontExpandsOutward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Params.WaveSpeed = 0.5
	cfg.Params.Damping = 0
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	world.Splash(32, 32, 1.0)
	for i := 0; i < 36; i++ {
		world.Step()
	}

	// 36 ticks at 0.5 cells/tick puts the front near radius 18. The band
	// around it must dominate the still water further out.
	var front, far float32
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			dx, dy := float64(x-32), float64(y-32)
			r := math.Sqrt(dx*dx + dy*dy)
			h := abs32(height(t, world, x, y))
			switch {
			case r >= 15 && r <= 21 && h > front:
				front = h
			case r >= 26 && h > far:
				far = h
			}
		}
	}

	if front == 0 {
		t.Fatal("no wave amplitude found near the expected front radius")
	}
	if front < 5*far {
		t.Fatalf("front amplitude %g does not dominate far-field %g", front, far)
	}
}

func TestSplashIgnoresOutOfBoundsImpacts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	for _, pos := range [][2]int{
		{-1, 5}, {12, 5}, {5, -1}, {5, 9},
		{-1, -1}, {12, -1}, {-1, 9}, {12, 9},
	} {
		world.Splash(pos[0], pos[1], 3)
	}

	if e := world.Energy(); e != 0 {
		t.Fatalf("out-of-bounds splashes deposited energy %g", e)
	}
	for i, c := range world.Cells() {
		if c != 0 {
			t.Fatalf("out-of-bounds splash lit display cell %d", i)
		}
	}
}

func TestSplashIsAdditiveAndImmediatelyVisible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	world := newTestWorld(t, cfg)

	world.Splash(6, 4, 1.5)
	world.Splash(6, 4, 2.0)
	if got := height(t, world, 6, 4); abs32(got-3.5) > 1e-6 {
		t.Fatalf("stacked splashes = %g, want 3.5", got)
	}
	if got := world.Cells()[4*12+6]; got != 255 {
		t.Fatalf("display under splash = %d, want saturated 255", got)
	}
}

func TestBorderStaysPinnedToZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	cfg.Params.WaveSpeed = 0.3
	cfg.Params.RainIntensity = 0
	world := newTestWorld(t, cfg)

	// A border splash lives for one tick, feeds its interior neighbor
	// through the Laplacian, then the wall reasserts zero.
	world.Splash(0, 4, 3)
	world.Step()

	if got := height(t, world, 0, 4); got != 0 {
		t.Fatalf("border cell (0,4) = %g after step, want 0", got)
	}
	want := float32(0.09 * 3) // s^2 * lap with a single nonzero neighbor
	if got := height(t, world, 1, 4); abs32(got-want) > 1e-5 {
		t.Fatalf("interior neighbor (1,4) = %g, want %g", got, want)
	}

	for i := 0; i < 200; i++ {
		world.Step()
	}
	for x := 0; x < 12; x++ {
		if h := height(t, world, x, 0); h != 0 {
			t.Fatalf("top border (%d,0) = %g after 200 ticks", x, h)
		}
		if h := height(t, world, x, 8); h != 0 {
			t.Fatalf("bottom border (%d,8) = %g after 200 ticks", x, h)
		}
	}
	for y := 0; y < 9; y++ {
		if h := height(t, world, 0, y); h != 0 {
			t.Fatalf("left border (0,%d) = %g after 200 ticks", y, h)
		}
		if h := height(t, world, 11, y); h != 0 {
			t.Fatalf("right border (11,%d) = %g after 200 ticks", y, h)
		}
	}
}
