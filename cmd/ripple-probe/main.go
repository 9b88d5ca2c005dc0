package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/guptarohit/asciigraph"

	"ripple-tank/internal/core"
	"ripple-tank/internal/sims/water"
)

type paramSet struct {
	speed   float64
	damping float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("speed=%.2f damping=%.3f", p.speed, p.damping)
}

type scenarioResult struct {
	params      paramSet
	peakEnergy  float64
	finalEnergy float64
	halfLife    int
	settled     int
	diverged    bool
}

const (
	settleThreshold = 1e-4
	divergeLimit    = 1e12
)

func main() {
	steps := flag.Int("steps", 1500, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "tank width in cells")
	height := flag.Int("h", 96, "tank height in cells")
	rain := flag.Float64("rain", 0, "mean raindrops per tick (0 = single splash only)")
	seed := flag.Int64("seed", 1337, "rain seed")
	curve := flag.Float64("curve", 0, "wave speed to chart after the sweep (0 = skip)")
	flag.Parse()

	if *curve != 0 && (*curve < water.WaveSpeedMin || *curve > water.WaveSpeedMax) {
		log.Fatal(fmt.Errorf("%w: -curve speed %.2f outside [%.2f, %.2f]",
			core.ErrInvalidParameter, *curve, water.WaveSpeedMin, water.WaveSpeedMax))
	}
	if *rain < water.RainIntensityMin || *rain > water.RainIntensityMax {
		log.Fatal(fmt.Errorf("%w: -rain %.2f outside [0, %.0f]",
			core.ErrInvalidParameter, *rain, water.RainIntensityMax))
	}

	baseCfg := water.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Seed = *seed

	speedOptions := []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5, 0.55, 0.6, 0.65, 0.7}
	dampingOptions := []float64{0, 0.005, 0.015, 0.05, 0.1}

	var sets []paramSet
	for _, speed := range speedOptions {
		for _, damping := range dampingOptions {
			sets = append(sets, paramSet{speed: speed, damping: damping})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d tank)\n",
		len(sets), *workers, *steps, *width, *height)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps, *rain)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.diverged {
			fmt.Printf("DIVERGED at %s (peak %.3g)\n", res.params, res.peakEnergy)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].diverged != all[j].diverged {
			return all[i].diverged
		}
		if all[i].halfLife != all[j].halfLife {
			if all[i].halfLife == 0 || all[j].halfLife == 0 {
				return all[i].halfLife == 0
			}
			return all[i].halfLife > all[j].halfLife
		}
		return all[i].finalEnergy > all[j].finalEnergy
	})
	elapsed := time.Since(start)

	fmt.Printf("\nLongest-lived ripples (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		verdict := "stable"
		if res.diverged {
			verdict = "DIVERGED"
		}
		fmt.Printf("%2d) %s  peak=%.3f final=%.3g halfLife=%s settled=%s  %s\n",
			i+1, res.params, res.peakEnergy, res.finalEnergy,
			tickCount(res.halfLife), tickCount(res.settled), verdict)
	}

	if *curve != 0 {
		printCurve(baseCfg, *curve, *steps, *rain)
	}
}

// runScenario drops one splash in the tank center (plus steady rain when
// requested) and tracks how the surface energy evolves over the run.
func runScenario(base water.Config, params paramSet, steps int, rain float64) scenarioResult {
	cfg := base
	cfg.Params.WaveSpeed = params.speed
	cfg.Params.Damping = params.damping
	cfg.Params.RainIntensity = rain

	world, err := water.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("scenario %s: %v", params, err)
	}
	if rain > 0 {
		world.ToggleRain()
	}
	world.Splash(cfg.Width/2, cfg.Height/2, cfg.Params.SplashMagnitude)

	res := scenarioResult{params: params}
	var first float64
	for step := 0; step < steps; step++ {
		world.Step()
		e := world.Energy()
		if math.IsNaN(e) || math.IsInf(e, 0) || e > divergeLimit {
			res.diverged = true
			break
		}
		if step == 0 {
			first = e
		}
		if e > res.peakEnergy {
			res.peakEnergy = e
		}
		if res.halfLife == 0 && e <= first/2 {
			res.halfLife = step + 1
		}
		if res.settled == 0 && e < settleThreshold {
			res.settled = step + 1
		}
		res.finalEnergy = e
	}
	return res
}

func printCurve(base water.Config, speed float64, steps int, rain float64) {
	cfg := base
	cfg.Params.WaveSpeed = speed
	cfg.Params.RainIntensity = rain

	world, err := water.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("curve: %v", err)
	}
	if rain > 0 {
		world.ToggleRain()
	}
	world.Splash(cfg.Width/2, cfg.Height/2, cfg.Params.SplashMagnitude)

	series := make([]float64, 0, steps)
	for step := 0; step < steps; step++ {
		world.Step()
		series = append(series, world.Energy())
	}

	fmt.Printf("\nEnergy at speed %.2f (damping %.3f):\n", speed, cfg.Params.Damping)
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("surface energy over %d ticks", steps))))
}

func tickCount(n int) string {
	if n == 0 {
		return "never"
	}
	return fmt.Sprintf("%d", n)
}
