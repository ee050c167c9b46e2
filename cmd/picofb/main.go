// picofb runs pixel framebuffer demos on a window, a terminal or in memory.
//
// Usage:
//
//	picofb list               - List available demos
//	picofb run <demo>         - Run a demo
//	picofb bench <demo>       - Render a fixed number of frames and report timing
//	picofb menu               - Pick a demo interactively in the terminal
//	picofb font [text]        - Show font metrics and preview text
//	picofb config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--backend <name>    - headless, tui, window or sdl
//	--log-level <lvl>   - debug, info, warn or error
//	--rate <hz>         - Override the update rate
//	--width, --height   - Override the surface size
//	--frames <n>        - Frame budget for bench and headless runs
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/config"
	"github.com/vovakirdan/picofb/internal/core"

	// Import demos to register them
	_ "github.com/vovakirdan/picofb/internal/demos/bounce"
	_ "github.com/vovakirdan/picofb/internal/demos/drawkp"
	_ "github.com/vovakirdan/picofb/internal/demos/multiwindow"
	_ "github.com/vovakirdan/picofb/internal/demos/pause"
	_ "github.com/vovakirdan/picofb/internal/demos/text"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagLogLevel string
	flagRate     int
	flagWidth    int
	flagHeight   int
	flagFrames   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picofb",
	Short: "picofb - a tiny pixel framebuffer runtime",
	Long: `picofb runs small programs that draw into a pixel surface at a fixed
simulation rate. The same demo can open a desktop window, render into the
terminal with half-block characters, or run headless.

Available commands:
  list     - Show all available demos
  run      - Run a specific demo
  bench    - Render a fixed number of frames
  menu     - Interactive demo picker
  font     - Inspect the built-in font
  config   - Print the effective configuration

Examples:
  picofb list
  picofb run bounce
  picofb run text --backend tui
  picofb bench bounce --frames 1000 --backend headless
  picofb font "Hello"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Backend: "+strings.Join(config.Backends, ", "))
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagRate, "rate", 0, "Update rate in Hz (0 = demo default)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Surface width (0 = demo default)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Surface height (0 = demo default)")
	rootCmd.PersistentFlags().IntVar(&flagFrames, "frames", 0, "Frame budget for bench and headless runs (0 = config value)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(fontCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the config file and applies the global flags on top.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagFrames > 0 {
		cfg.Headless.Frames = flagFrames
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeFor returns the runtime config of a demo after file and flag overrides.
func runtimeFor(cfg config.Config, id string, defaults core.RuntimeConfig) core.RuntimeConfig {
	rc := cfg.Runtime(id, defaults)
	return config.DemoOverride{Width: flagWidth, Height: flagHeight, UpdateRate: flagRate}.Apply(rc)
}

// newLogger builds the command logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "picofb",
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// mustSettings loads settings or exits with an error message.
func mustSettings() config.Config {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
