// Package config provides file-based configuration for the picofb command:
// backend selection, logging, per-backend tuning and per-demo overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/picofb/internal/core"
)

// Backend names accepted in the backend field.
const (
	BackendHeadless = "headless"
	BackendTUI      = "tui"
	BackendWindow   = "window"
	BackendSDL      = "sdl"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendHeadless, BackendTUI, BackendWindow, BackendSDL}

// Config is the top-level configuration file.
type Config struct {
	Backend    string                  `yaml:"backend" toml:"backend"`
	LogLevel   string                  `yaml:"log_level" toml:"log_level"`
	Window     WindowConfig            `yaml:"window" toml:"window"`
	Terminal   TerminalConfig          `yaml:"terminal" toml:"terminal"`
	Headless   HeadlessConfig          `yaml:"headless" toml:"headless"`
	Screenshot ScreenshotConfig        `yaml:"screenshot" toml:"screenshot"`
	Demos      map[string]DemoOverride `yaml:"demos" toml:"demos"`
}

// WindowConfig tunes the desktop window backend.
type WindowConfig struct {
	Scale int `yaml:"scale" toml:"scale"` // Integer pixel scale of the window
}

// TerminalConfig tunes the terminal backend.
type TerminalConfig struct {
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"` // Delay before a synthesized key release
}

// HeadlessConfig tunes the in-memory backend.
type HeadlessConfig struct {
	Frames      int  `yaml:"frames" toml:"frames"`
	ManualClock bool `yaml:"manual_clock" toml:"manual_clock"`
}

// ScreenshotConfig controls the screenshot key.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"` // "png" or "bmp"
	Key    string `yaml:"key" toml:"key"`       // Key name, empty disables screenshots
}

// DemoOverride replaces parts of a demo's default runtime config. Zero
// fields keep the demo's value.
type DemoOverride struct {
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	UpdateRate int `yaml:"update_rate" toml:"update_rate"`
}

// Apply returns cfg with the non-zero override fields applied.
func (o DemoOverride) Apply(cfg core.RuntimeConfig) core.RuntimeConfig {
	if o.Width > 0 {
		cfg.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Height = o.Height
	}
	if o.UpdateRate > 0 {
		cfg.UpdateRate = o.UpdateRate
	}
	return cfg
}

// Runtime returns the runtime config of demo id after applying its override.
func (c Config) Runtime(id string, defaults core.RuntimeConfig) core.RuntimeConfig {
	if o, ok := c.Demos[id]; ok {
		return o.Apply(defaults)
	}
	return defaults
}

// ScreenshotKey parses Screenshot.Key. An empty name yields KeyUnknown.
func (c Config) ScreenshotKey() (core.Key, error) {
	if c.Screenshot.Key == "" {
		return core.KeyUnknown, nil
	}
	k, ok := core.ParseKey(c.Screenshot.Key)
	if !ok {
		return core.KeyUnknown, fmt.Errorf("unknown screenshot key %q", c.Screenshot.Key)
	}
	return k, nil
}

// Validate checks field values that cannot be defaulted.
func (c Config) Validate() error {
	if !isBackend(c.Backend) {
		return fmt.Errorf("unknown backend %q (expected one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale)
	}
	if c.Terminal.HoldMS <= 0 {
		return fmt.Errorf("terminal.hold_ms must be positive, got %d", c.Terminal.HoldMS)
	}
	if c.Headless.Frames < 0 {
		return fmt.Errorf("headless.frames must not be negative, got %d", c.Headless.Frames)
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("unknown screenshot format %q", c.Screenshot.Format)
	}
	if _, err := c.ScreenshotKey(); err != nil {
		return err
	}
	for id, o := range c.Demos {
		if o.Width < 0 || o.Height < 0 || o.UpdateRate < 0 {
			return fmt.Errorf("demos.%s: negative override", id)
		}
	}
	return nil
}

func isBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
