package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/picofb/internal/config"
	"github.com/vovakirdan/picofb/internal/platform/tui"
	"github.com/vovakirdan/picofb/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a demo from an interactive list",
	Long: `Show the demo picker in the terminal and run the selected demo.

With the terminal or headless backend you return to the picker when the
demo ends. The desktop toolkits can only be started once per process, so
window and sdl runs exit after the first demo.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Run the selected demo
  Q/Esc        - Quit

Examples:
  picofb menu
  picofb menu --backend tui`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustSettings()
	logger := newLogger(cfg)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	for {
		id, err := tui.RunPicker(registry.List(), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id == "" {
			return
		}

		s, err := openBackend(cfg, logger, 0)
		if err != nil {
			fail(logger, err)
		}
		if _, err := s.launch(id); err != nil {
			fail(logger, err)
		}

		if cfg.Backend != config.BackendTUI && cfg.Backend != config.BackendHeadless {
			return
		}
	}
}
