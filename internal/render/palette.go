package render

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// Palettes map display bytes (0..255) to colors. Index 0 is flat water;
// higher indices are larger wave amplitudes.

var (
	oceanPalette   = buildOceanPalette()
	thermalPalette = buildThermalPalette()

	paletteNames = []string{"ocean", "thermal"}
)

// PaletteNames lists the available palettes in cycling order.
func PaletteNames() []string {
	return paletteNames
}

// PaletteByName resolves a palette; ok is false for unknown names.
func PaletteByName(name string) ([]color.RGBA, bool) {
	switch name {
	case "ocean":
		return oceanPalette, true
	case "thermal":
		return thermalPalette, true
	}
	return nil, false
}

// buildOceanPalette produces the blue-to-white ramp: quiet water renders as a
// deep blue, wave crests and troughs brighten toward white.
func buildOceanPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		t := float64(i) / 255
		palette[i] = color.RGBA{
			R: rampByte(0.2 + 0.8*t),
			G: rampByte(0.5 + 0.5*t),
			B: rampByte(0.7 + 0.3*t),
			A: 255,
		}
	}
	return palette
}

// buildThermalPalette sweeps hue from blue through red with rising brightness,
// so amplitude reads like a heat map.
func buildThermalPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		t := float64(i) / 255
		hue := 240 * (1 - t)
		value := 0.15 + 0.85*t
		r, g, b, err := colorconv.HSVToRGB(hue, 1, value)
		if err != nil {
			palette[i] = color.RGBA{A: 255}
			continue
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

func rampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
