package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-sim", "rings", "-w", "80", "-h", "60", "-scale", "2", "-tps", "30", "-seed", "42", "-palette", "thermal", "-hud", "0"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Sim != "rings" {
		t.Fatalf("Sim = %q, want %q", cfg.Sim, "rings")
	}
	if cfg.Width != 80 || cfg.Height != 60 {
		t.Fatalf("dimensions = %dx%d, want 80x60", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 2 || cfg.TPS != 30 {
		t.Fatalf("scale/tps = %d/%d, want 2/30", cfg.Scale, cfg.TPS)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Palette != "thermal" {
		t.Fatalf("Palette = %q, want %q", cfg.Palette, "thermal")
	}
	if cfg.HUD != 0 {
		t.Fatalf("HUD = %d, want 0", cfg.HUD)
	}
}

func TestDefaultsSurviveEmptyArgs(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := NewConfig()
	if *cfg != *want {
		t.Fatalf("config = %+v, want defaults %+v", cfg, want)
	}
}

func TestSimOptionsSkipsDeferredValues(t *testing.T) {
	cfg := NewConfig()
	if opts := cfg.SimOptions(); len(opts) != 0 {
		t.Fatalf("default SimOptions = %v, want empty", opts)
	}

	cfg.Width = 120
	cfg.Height = 90
	cfg.Seed = 7
	opts := cfg.SimOptions()
	if opts["w"] != "120" || opts["h"] != "90" || opts["seed"] != "7" {
		t.Fatalf("SimOptions = %v", opts)
	}
	if len(opts) != 3 {
		t.Fatalf("SimOptions has %d entries, want 3", len(opts))
	}
}

func TestSimOptionsMergesOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 120
	cfg.Params = "speed=0.5, rain=7,w=999"

	opts := cfg.SimOptions()
	if opts["speed"] != "0.5" || opts["rain"] != "7" {
		t.Fatalf("overrides missing from SimOptions: %v", opts)
	}
	if opts["w"] != "120" {
		t.Fatalf("dedicated -w flag lost to the override list: %v", opts)
	}
}

func TestParseOverrides(t *testing.T) {
	opts := ParseOverrides("speed=0.5,  damping = 0.1 ,junk,=3,empty=,")
	want := map[string]string{"speed": "0.5", "damping": "0.1"}
	if len(opts) != len(want) {
		t.Fatalf("ParseOverrides = %v, want %v", opts, want)
	}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("ParseOverrides[%q] = %q, want %q", k, opts[k], v)
		}
	}

	if opts := ParseOverrides(""); len(opts) != 0 {
		t.Fatalf("ParseOverrides(\"\") = %v, want empty", opts)
	}
}
