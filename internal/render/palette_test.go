package render

import "testing"

func TestPaletteByName(t *testing.T) {
	for _, name := range PaletteNames() {
		palette, ok := PaletteByName(name)
		if !ok {
			t.Fatalf("palette %q not resolvable", name)
		}
		if len(palette) != 256 {
			t.Fatalf("palette %q has %d entries, want 256", name, len(palette))
		}
	}
	if _, ok := PaletteByName("nope"); ok {
		t.Fatal("unknown palette name resolved")
	}
}

func TestOceanRampEndpoints(t *testing.T) {
	palette, _ := PaletteByName("ocean")

	flat := palette[0]
	if flat.R != 51 || flat.G != 128 || flat.B != 179 {
		t.Fatalf("flat-water color = %v, want deep blue (51,128,179)", flat)
	}
	crest := palette[255]
	if crest.R != 255 || crest.G != 255 || crest.B != 255 {
		t.Fatalf("crest color = %v, want white", crest)
	}

	// Brightness must grow monotonically with amplitude.
	for i := 1; i < 256; i++ {
		if palette[i].R < palette[i-1].R || palette[i].G < palette[i-1].G || palette[i].B < palette[i-1].B {
			t.Fatalf("ocean ramp not monotone at %d: %v -> %v", i, palette[i-1], palette[i])
		}
	}
}

func TestThermalPaletteDistinct(t *testing.T) {
	palette, _ := PaletteByName("thermal")
	low, high := palette[10], palette[245]
	if low == high {
		t.Fatalf("thermal endpoints identical: %v", low)
	}
	// Low amplitudes lean blue, high amplitudes lean red.
	if low.B <= low.R {
		t.Fatalf("low thermal entry %v should be blue-dominant", low)
	}
	if high.R <= high.B {
		t.Fatalf("high thermal entry %v should be red-dominant", high)
	}
}

func TestFillRGBA(t *testing.T) {
	ocean, _ := PaletteByName("ocean")
	cells := []uint8{0, 128, 255}
	buf := make([]byte, 4*len(cells))

	FillRGBA(buf, cells, ocean)

	for i, c := range cells {
		base := i * 4
		want := ocean[c]
		if buf[base] != want.R || buf[base+1] != want.G || buf[base+2] != want.B || buf[base+3] != want.A {
			t.Fatalf("pixel %d = (%d,%d,%d,%d), want %v", i, buf[base], buf[base+1], buf[base+2], buf[base+3], want)
		}
	}

	FillRGBA(buf, cells, nil)
	for i := range buf {
		if buf[i] != 0 {
			t.Fatalf("empty palette should clear buffer, byte %d = %d", i, buf[i])
		}
	}
}
