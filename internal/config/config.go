package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravwave/internal/wave"
)

const (
	DefaultFPS         = 30
	DefaultTotalFrames = 360 // 12 seconds at 30 fps
	DefaultSeparation  = 2.8
	DefaultPeriod      = 4.0
	DefaultAmplitude   = 0.6
	DefaultWaveNumber  = 2.0
	DefaultFalloff     = 18.0
	DefaultExtent      = 6.0
	DefaultGridPoints  = 60
	DefaultWidth       = 1280
	DefaultHeight      = 960
	DefaultBitrate     = 1800
	DefaultOutput      = "outputs/gravitational_wave.mp4"
)

// Config is the full render configuration. It is resolved once at startup
// (preset, then config file, then flags) and read-only afterwards.
type Config struct {
	Mass1          float64 `yaml:"mass_1"`
	Mass2          float64 `yaml:"mass_2"`
	Separation     float64 `yaml:"separation"`
	AmplitudeScale float64 `yaml:"amplitude_scale"`
	TotalFrames    int     `yaml:"total_frames"`
	FPS            int     `yaml:"fps"`
	OutputPath     string  `yaml:"output_path"`

	Period     float64 `yaml:"period"`
	WaveNumber float64 `yaml:"wave_number"`
	WaveSpeed  float64 `yaml:"wave_speed"`
	Amplitude  float64 `yaml:"amplitude"`
	Falloff    float64 `yaml:"falloff"`
	Extent     float64 `yaml:"extent"`
	GridPoints int     `yaml:"grid_points"`

	WidthPx   int     `yaml:"width"`
	HeightPx  int     `yaml:"height"`
	Bitrate   int     `yaml:"bitrate"`
	Elevation float64 `yaml:"elevation"`
	Azimuth   float64 `yaml:"azimuth"`
}

func DefaultConfig() *Config {
	return &Config{
		Mass1:          1.0,
		Mass2:          1.0,
		Separation:     DefaultSeparation,
		AmplitudeScale: 1.0,
		TotalFrames:    DefaultTotalFrames,
		FPS:            DefaultFPS,
		OutputPath:     DefaultOutput,
		Period:         DefaultPeriod,
		WaveNumber:     DefaultWaveNumber,
		WaveSpeed:      1.0,
		Amplitude:      DefaultAmplitude,
		Falloff:        DefaultFalloff,
		Extent:         DefaultExtent,
		GridPoints:     DefaultGridPoints,
		WidthPx:        DefaultWidth,
		HeightPx:       DefaultHeight,
		Bitrate:        DefaultBitrate,
		Elevation:      30,
		Azimuth:        45,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Mass1 <= 0 || c.Mass2 <= 0 {
		return fmt.Errorf("masses must be positive, got %f and %f", c.Mass1, c.Mass2)
	}
	if c.Separation <= 0 {
		return fmt.Errorf("separation must be positive, got %f", c.Separation)
	}
	if c.Period <= 0 {
		return fmt.Errorf("period must be positive, got %f", c.Period)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.TotalFrames <= 0 {
		return fmt.Errorf("total_frames must be positive, got %d", c.TotalFrames)
	}
	if c.GridPoints < 2 {
		return fmt.Errorf("grid_points must be at least 2, got %d", c.GridPoints)
	}
	if c.Extent <= 0 {
		return fmt.Errorf("extent must be positive, got %f", c.Extent)
	}
	if c.WidthPx <= 0 || c.HeightPx <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.WidthPx, c.HeightPx)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	return nil
}

// Source maps the configuration onto the wave generator's parameters.
func (c *Config) Source() wave.Source {
	return wave.Source{
		Mass1:          c.Mass1,
		Mass2:          c.Mass2,
		Separation:     c.Separation,
		Period:         c.Period,
		WaveNumber:     c.WaveNumber,
		WaveSpeed:      c.WaveSpeed,
		Amplitude:      c.Amplitude,
		AmplitudeScale: c.AmplitudeScale,
		Falloff:        c.Falloff,
		Extent:         c.Extent,
	}
}

// Grid builds the render grid described by the configuration.
func (c *Config) Grid() wave.Grid {
	return wave.NewGrid(c.GridPoints, c.Extent)
}

// Duration returns the playable length of the configured render in seconds.
func (c *Config) Duration() float64 {
	return float64(c.TotalFrames) / float64(c.FPS)
}
