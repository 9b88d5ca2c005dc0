//go:build ebiten

package app

import (
	"image/color"
	"time"

	"ripple-tank/internal/core"
	"ripple-tank/internal/render"
	"ripple-tank/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps platform keys onto the simulation input vocabulary.
// Bindings a simulation does not understand are ignored on its side, so both
// sims share one table.
var keyBindings = []struct {
	key ebiten.Key
	sem core.Key
}{
	{ebiten.KeySpace, core.KeyPause},
	{ebiten.KeyR, core.KeyRain},
	{ebiten.KeyC, core.KeyClear},
	{ebiten.KeyArrowUp, core.KeySpeedUp},
	{ebiten.KeyArrowDown, core.KeySpeedDown},
	{ebiten.KeyArrowRight, core.KeyRainUp},
	{ebiten.KeyArrowLeft, core.KeyRainDown},
	{ebiten.KeyW, core.KeyWindRight},
	{ebiten.KeyA, core.KeyWindLeft},
	{ebiten.KeyS, core.KeyWindCalm},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	handler core.EventHandler
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	palette      []color.RGBA
	paletteNames []string
	paletteIdx   int

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if handler, ok := sim.(core.EventHandler); ok {
		g.handler = handler
	}
	if cfg.HUD > 0 {
		g.hudWidth = cfg.HUD
		g.hud = ui.NewHUD(sim, cfg.HUD)
	}

	g.paletteNames = render.PaletteNames()
	for i, name := range g.paletteNames {
		if name == cfg.Palette {
			g.paletteIdx = i
		}
	}
	g.applyPalette()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
}

// Update translates input into simulation events and advances the sim. The
// pause state lives in the simulation, so Step runs every frame and the sim
// decides whether the tick does anything.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cyclePalette()
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.send(core.Press(b.sem))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.sim.Size()
		if mx >= 0 && my >= 0 && mx < size.W*g.scale && my < size.H*g.scale {
			g.send(core.Click(mx/g.scale, my/g.scale))
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}

	g.sim.Step()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size: the scaled grid plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) send(ev core.Event) {
	if g.handler != nil {
		g.handler.Handle(ev)
	}
}

func (g *Game) cyclePalette() {
	if len(g.paletteNames) == 0 {
		return
	}
	g.paletteIdx = (g.paletteIdx + 1) % len(g.paletteNames)
	g.applyPalette()
}

func (g *Game) applyPalette() {
	if len(g.paletteNames) == 0 {
		return
	}
	name := g.paletteNames[g.paletteIdx]
	if palette, ok := render.PaletteByName(name); ok {
		g.palette = palette
	}
	if g.overlay != nil {
		g.overlay.SetPalette(name)
	}
}
