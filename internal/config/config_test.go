package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 900 {
		t.Errorf("unexpected default window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if len(cfg.Candles) == 0 {
		t.Error("default config has no candles")
	}
	if cfg.Animation.Duration != Duration(2*time.Second) {
		t.Errorf("default animation duration = %v, want 2s", cfg.Animation.Duration)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
window:
  width: 800
  height: 600
chart:
  pan_speed: 3.5
animation:
  duration: 1s
candles:
  - position: [0.2, -0.1]
    scale: [0.1, 0.4]
    bullish: true
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window size = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Chart.PanSpeed != 3.5 {
		t.Errorf("pan speed = %v, want 3.5", cfg.Chart.PanSpeed)
	}
	if cfg.Animation.Duration != Duration(time.Second) {
		t.Errorf("animation duration = %v, want 1s", cfg.Animation.Duration)
	}
	if len(cfg.Candles) != 1 || !cfg.Candles[0].Bullish {
		t.Errorf("unexpected candles: %+v", cfg.Candles)
	}
	// Untouched sections keep their defaults.
	if cfg.Chart.BullColor != "#26A69A" {
		t.Errorf("bull color = %q, want default", cfg.Chart.BullColor)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero window", "window:\n  width: 0\n  height: 900\n"},
		{"negative line width", "chart:\n  line_width: -1\n"},
		{"zero duration", "animation:\n  duration: 0s\n"},
		{"degenerate candle", "candles:\n  - position: [0, 0]\n    scale: [0, 0.1]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(c.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}
