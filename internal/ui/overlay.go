//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"ripple-tank/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type stateProvider interface {
	Paused() bool
	Raining() bool
}

type energyProvider interface {
	Energy() float64
}

type populationProvider interface {
	DropCount() int
	RingCount() int
}

// Overlay draws a status readout and the key help on top of the simulation
// view. Visible by default, toggled with 'h'. The readout adapts to what the
// simulation exposes: pause and rain state, surface energy, scene counts.
type Overlay struct {
	sim     core.Sim
	visible bool
	palette string

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPalette records the active palette name for the readout.
func (o *Overlay) SetPalette(name string) { o.palette = name }

// Update handles the overlay's own key binding.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

var helpLines = []string{
	"",
	"space pause   r rain   c clear",
	"arrows speed / rain rate",
	"w/a/s wind   p palette",
	"backspace restart   n new seed",
	"h help   q quit",
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	lines := o.statusLines()
	lines = append(lines, helpLines...)

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	o.drawBackdrop(screen, width+2*overlayPadding, len(lines)*overlayLineAdvance+2*overlayPadding)
	for i, line := range lines {
		y := overlayPadding + (i+1)*overlayLineAdvance - 3
		text.Draw(screen, line, face, overlayPadding, y, color.RGBA{R: 225, G: 232, B: 240, A: 255})
	}
}

func (o *Overlay) statusLines() []string {
	size := o.sim.Size()
	lines := []string{
		fmt.Sprintf("%s %dx%d  %.0f tps", o.sim.Name(), size.W, size.H, ebiten.ActualTPS()),
	}
	if provider, ok := o.sim.(stateProvider); ok {
		state := "running"
		if provider.Paused() {
			state = "paused"
		}
		rain := "rain off"
		if provider.Raining() {
			rain = "rain on"
		}
		lines = append(lines, state+"  "+rain)
	}
	if provider, ok := o.sim.(energyProvider); ok {
		lines = append(lines, fmt.Sprintf("energy %.3f", provider.Energy()))
	}
	if provider, ok := o.sim.(populationProvider); ok {
		lines = append(lines, fmt.Sprintf("%d drops  %d rings", provider.DropCount(), provider.RingCount()))
	}
	if o.palette != "" {
		lines = append(lines, "palette "+o.palette)
	}
	return lines
}

func (o *Overlay) drawBackdrop(screen *ebiten.Image, w, h int) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorM.Scale(0.04, 0.05, 0.08, 0.72)
	screen.DrawImage(o.pixel, op)
}

const (
	overlayPadding     = 8
	overlayLineAdvance = 14
)
