package config

import "sort"

func preset(mutate func(*Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var presets = map[string]*Config{
	"stock": preset(func(c *Config) {}),
	"tight": preset(func(c *Config) {
		c.Separation = 1.6
		c.Period = 2.0
		c.WaveNumber = 3.0
	}),
	"lopsided": preset(func(c *Config) {
		c.Mass1 = 5.0
		c.Mass2 = 0.5
	}),
	"slow": preset(func(c *Config) {
		c.Period = 8.0
		c.WaveNumber = 1.2
	}),
	"quick": preset(func(c *Config) {
		c.TotalFrames = 90
		c.GridPoints = 40
		c.WidthPx = 640
		c.HeightPx = 480
	}),
}

// GetPreset returns a copy of the named preset, or nil if it doesn't exist.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
