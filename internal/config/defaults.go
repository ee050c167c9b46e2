package config

import (
	_ "embed"
)

//go:embed defaults/picofb.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It matches the
// embedded defaults/picofb.yaml.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendWindow,
		LogLevel: "info",
		Window: WindowConfig{
			Scale: 2,
		},
		Terminal: TerminalConfig{
			HoldMS: 150,
		},
		Headless: HeadlessConfig{
			Frames:      600,
			ManualClock: false,
		},
		Screenshot: ScreenshotConfig{
			Dir:    ".",
			Format: "png",
			Key:    "F12",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
