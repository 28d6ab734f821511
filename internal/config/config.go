// Package config loads folio's settings from an optional YAML file with
// FOLIO_* environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SocialLink is one entry in the nav's social row. URL classification
// (external, pdf, anchor) decides routing behavior, not config.
type SocialLink struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
}

// Effects carries the animation timings, all in milliseconds so the YAML
// stays readable. Zero durations are legal and collapse the corresponding
// phase.
type Effects struct {
	FakeCount        int `koanf:"fake_count"`
	RevealDelayMS    int `koanf:"reveal_delay_ms"`
	CharStaggerMS    int `koanf:"char_stagger_ms"`
	FakeDurationMS   int `koanf:"fake_duration_ms"`
	FakeStaggerMS    int `koanf:"fake_stagger_ms"`
	RevealDurationMS int `koanf:"reveal_duration_ms"`
	ShineIntervalMS  int `koanf:"shine_interval_ms"`
}

// Config is the full application configuration.
type Config struct {
	Theme      string       `koanf:"theme"` // "light", "dark", or "" for auto
	FPS        int          `koanf:"fps"`
	Timezone   string       `koanf:"timezone"`
	Location   string       `koanf:"location"`
	Quote      string       `koanf:"quote"`
	Tagline    string       `koanf:"tagline"`
	ContentDir string       `koanf:"content_dir"`
	LogFile    string       `koanf:"log_file"`
	Social     []SocialLink `koanf:"social"`
	Effects    Effects      `koanf:"effects"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:    "",
		FPS:      30,
		Timezone: "Local",
		Location: "utrecht, nl",
		Quote:    "make it strange, then make it work",
		Tagline:  "r43",
		Social: []SocialLink{
			{Label: "github", URL: "https://github.com"},
			{Label: "mail", URL: "mailto:hello@example.dev"},
			{Label: "cv", URL: "/resume.pdf"},
		},
		Effects: Effects{
			FakeCount:        2,
			RevealDelayMS:    600,
			CharStaggerMS:    35,
			FakeDurationMS:   90,
			FakeStaggerMS:    120,
			RevealDurationMS: 400,
			ShineIntervalMS:  4000,
		},
	}
}

// Load reads configuration from the given YAML file (a missing file is
// fine), then overlays FOLIO_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the UI cannot work with.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q: must be light, dark, or empty for auto", c.Theme)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.FPS)
	}
	if c.Effects.FakeCount < 0 {
		return fmt.Errorf("effects.fake_count must be non-negative")
	}
	// a non-positive repeat interval would busy-loop the timeline
	if c.Effects.ShineIntervalMS < 1 {
		return fmt.Errorf("effects.shine_interval_ms must be positive")
	}
	if _, err := c.TimezoneLocation(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// TimezoneLocation resolves the configured timezone.
func (c *Config) TimezoneLocation() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// FrameInterval is the frame tick period derived from FPS.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
