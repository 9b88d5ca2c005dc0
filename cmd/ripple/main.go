//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ripple-tank/internal/app"
	"ripple-tank/internal/core"
	"ripple-tank/internal/render"
	_ "ripple-tank/internal/sims/rings"
	_ "ripple-tank/internal/sims/water"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.HUD < 0 {
		cfg.HUD = 0
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	if _, ok := render.PaletteByName(cfg.Palette); !ok {
		log.Fatalf("unknown palette %q", cfg.Palette)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("init %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("ripple-tank: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
