// Package config holds the default UI and rendering settings for motionlab.
//
// Defaults mirror what ships with the studio: Persian-capable fonts,
// common resolutions, and the supported export surface. A TOML file can
// overlay any of them.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Resolution is a labeled output resolution.
type Resolution struct {
	Label  string `toml:"label"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Config is the container for default UI and rendering settings.
type Config struct {
	Fonts            []string          `toml:"fonts"`
	Resolutions      []Resolution      `toml:"resolutions"`
	FPSOptions       []int             `toml:"fps_options"`
	OutputFormats    []string          `toml:"output_formats"`
	TransitionStyles []string          `toml:"transition_styles"`
	AnimationStyles  map[string]string `toml:"animation_styles"`
	SampleText       string            `toml:"sample_text"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Fonts: []string{"Vazir", "Nazli", "Sahel", "Shabnam"},
		Resolutions: []Resolution{
			{Label: "720p", Width: 1280, Height: 720},
			{Label: "1080p", Width: 1920, Height: 1080},
			{Label: "4K", Width: 3840, Height: 2160},
		},
		FPSOptions:    []int{24, 30, 60},
		OutputFormats: []string{"mp4", "webm", "mov", "gif"},
		TransitionStyles: []string{
			"fade", "slide", "typewriter", "scroll", "crossfade",
		},
		AnimationStyles: map[string]string{
			"typewriter": "نوشتار ماشینی",
			"fade":       "محو شدنی",
			"scroll":     "حرکت عمودی",
			"reveal":     "نمایش تدریجی",
		},
		SampleText: "سلام! این یک متن آزمایشی برای ساخت موشن گرافیک فارسی است.",
	}
}

// Load returns the defaults overlaid with values from the TOML file at path.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects overlays that leave an option list empty; every list
// must offer at least one choice for the editor to start from.
func (c *Config) validate() error {
	if len(c.Fonts) == 0 {
		return fmt.Errorf("fonts must not be empty")
	}
	if len(c.Resolutions) == 0 {
		return fmt.Errorf("resolutions must not be empty")
	}
	if len(c.FPSOptions) == 0 {
		return fmt.Errorf("fps_options must not be empty")
	}
	if len(c.OutputFormats) == 0 {
		return fmt.Errorf("output_formats must not be empty")
	}
	if len(c.TransitionStyles) == 0 {
		return fmt.Errorf("transition_styles must not be empty")
	}
	return nil
}

// DefaultResolution returns the preferred startup resolution: the second
// entry (1080p in the shipped defaults) when available, else the first.
func (c *Config) DefaultResolution() Resolution {
	if len(c.Resolutions) > 1 {
		return c.Resolutions[1]
	}
	return c.Resolutions[0]
}

// ResolutionByLabel returns the resolution with the given label.
// Falls back to the first configured resolution when the label is unknown.
func (c *Config) ResolutionByLabel(label string) Resolution {
	for _, r := range c.Resolutions {
		if r.Label == label {
			return r
		}
	}
	return c.Resolutions[0]
}
