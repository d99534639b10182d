package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML strings like "2s" or "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Candle describes one chart element: center position, full width/height
// and direction. Coordinates live in the vertically-unit, horizontally
// aspect-normalized space the vertex transform consumes.
type Candle struct {
	Position [2]float32 `yaml:"position"`
	Scale    [2]float32 `yaml:"scale"`
	Bullish  bool       `yaml:"bullish"`
}

// Config holds all application configuration.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Chart struct {
		PanSpeed  float32 `yaml:"pan_speed"`
		LineWidth float32 `yaml:"line_width"`
		BullColor string  `yaml:"bull_color"`
		BearColor string  `yaml:"bear_color"`
	} `yaml:"chart"`
	Background struct {
		Tint              string  `yaml:"tint"`
		VignetteBase      float32 `yaml:"vignette_base"`
		VignetteAmplitude float32 `yaml:"vignette_amplitude"`
		VignetteFrequency float32 `yaml:"vignette_frequency"`
	} `yaml:"background"`
	Animation struct {
		Step     float32  `yaml:"step"`
		Duration Duration `yaml:"duration"`
	} `yaml:"animation"`
	AssetPack string   `yaml:"asset_pack"`
	Candles   []Candle `yaml:"candles"`
}

// Default returns the built-in configuration rendering the demo chart.
func Default() *Config {
	cfg := &Config{}
	cfg.Window.Width = 1600
	cfg.Window.Height = 900
	cfg.Window.Title = "candlechart"
	cfg.Chart.PanSpeed = 2.0
	cfg.Chart.LineWidth = 0.01
	cfg.Chart.BullColor = "#26A69A"
	cfg.Chart.BearColor = "#EF5350"
	cfg.Background.Tint = "#10141C"
	cfg.Background.VignetteBase = 0.6
	cfg.Background.VignetteAmplitude = 0.15
	cfg.Background.VignetteFrequency = 1.5
	cfg.Animation.Step = 0.01
	cfg.Animation.Duration = Duration(2 * time.Second)
	cfg.Candles = demoCandles()
	return cfg
}

func demoCandles() []Candle {
	return []Candle{
		{Position: [2]float32{-0.60, -0.10}, Scale: [2]float32{0.10, 0.35}, Bullish: true},
		{Position: [2]float32{-0.45, 0.05}, Scale: [2]float32{0.10, 0.25}, Bullish: true},
		{Position: [2]float32{-0.30, 0.00}, Scale: [2]float32{0.10, 0.30}, Bullish: false},
		{Position: [2]float32{-0.15, -0.15}, Scale: [2]float32{0.10, 0.40}, Bullish: false},
		{Position: [2]float32{0.00, 0.00}, Scale: [2]float32{0.10, 0.50}, Bullish: true},
		{Position: [2]float32{0.15, 0.20}, Scale: [2]float32{0.10, 0.20}, Bullish: true},
		{Position: [2]float32{0.30, 0.10}, Scale: [2]float32{0.10, 0.35}, Bullish: false},
		{Position: [2]float32{0.45, 0.25}, Scale: [2]float32{0.10, 0.30}, Bullish: true},
		{Position: [2]float32{0.60, 0.15}, Scale: [2]float32{0.10, 0.25}, Bullish: false},
	}
}

// Load reads config from a YAML file on top of the built-in defaults.
// A missing file is not an error; the defaults render the demo chart.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Chart.LineWidth <= 0 {
		return fmt.Errorf("invalid line width %v", c.Chart.LineWidth)
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("invalid animation duration %v", time.Duration(c.Animation.Duration))
	}
	for i, candle := range c.Candles {
		if candle.Scale[0] <= 0 || candle.Scale[1] <= 0 {
			return fmt.Errorf("candle %d: invalid scale %v", i, candle.Scale)
		}
	}
	return nil
}
