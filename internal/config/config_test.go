package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.TotalFrames != 360 {
		t.Errorf("expected 360 frames, got %d", cfg.TotalFrames)
	}
	if cfg.Duration() != 12.0 {
		t.Errorf("expected 12s duration, got %f", cfg.Duration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mass", func(c *Config) { c.Mass1 = 0 }},
		{"negative mass", func(c *Config) { c.Mass2 = -1 }},
		{"zero separation", func(c *Config) { c.Separation = 0 }},
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero frames", func(c *Config) { c.TotalFrames = 0 }},
		{"tiny grid", func(c *Config) { c.GridPoints = 1 }},
		{"zero extent", func(c *Config) { c.Extent = 0 }},
		{"zero width", func(c *Config) { c.WidthPx = 0 }},
		{"empty output", func(c *Config) { c.OutputPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")

	cfg := DefaultConfig()
	cfg.Mass1 = 3.5
	cfg.TotalFrames = 42
	cfg.OutputPath = "out/test.mp4"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Mass1 != 3.5 {
		t.Errorf("expected mass_1 3.5, got %f", loaded.Mass1)
	}
	if loaded.TotalFrames != 42 {
		t.Errorf("expected 42 frames, got %d", loaded.TotalFrames)
	}
	if loaded.OutputPath != "out/test.mp4" {
		t.Errorf("unexpected output path %q", loaded.OutputPath)
	}
	// Unspecified fields keep defaults.
	if loaded.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", loaded.FPS)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("separation: 1.9\nfps: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Separation != 1.9 {
		t.Errorf("expected separation 1.9, got %f", cfg.Separation)
	}
	if cfg.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.FPS)
	}
	if cfg.GridPoints != DefaultGridPoints {
		t.Errorf("expected default grid, got %d", cfg.GridPoints)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("tight")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Separation != 1.6 {
		t.Errorf("expected separation 1.6, got %f", cfg.Separation)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	// Mutating a returned preset must not leak into the catalog.
	cfg.Separation = 99
	if again := GetPreset("tight"); again.Separation != 1.6 {
		t.Error("preset catalog was mutated through a returned copy")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("presets not sorted")
		}
	}
}

func TestSourceMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mass1 = 2
	cfg.AmplitudeScale = 0.5

	src := cfg.Source()
	if src.Mass1 != 2 {
		t.Errorf("expected mass 2, got %f", src.Mass1)
	}
	if src.AmplitudeScale != 0.5 {
		t.Errorf("expected amplitude scale 0.5, got %f", src.AmplitudeScale)
	}

	grid := cfg.Grid()
	if grid.N != cfg.GridPoints {
		t.Errorf("expected grid %d, got %d", cfg.GridPoints, grid.N)
	}
}
