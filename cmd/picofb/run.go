package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/registry"
)

var runCmd = &cobra.Command{
	Use:   "run <demo>",
	Short: "Run a demo",
	Long: `Run the specified demo until its window is closed.

Controls:
  Esc        - Close most demos
  F12        - Save a screenshot (see screenshot.key in the config)
  Ctrl+C     - Quit (terminal backend)

Headless runs stop after --frames frames (headless.frames in the config).

Examples:
  picofb run bounce
  picofb run pause --backend tui
  picofb run drawkp --rate 120
  picofb run text --config ./picofb.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	id := args[0]

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'picofb list' to see available demos.")
		os.Exit(1)
	}

	cfg := mustSettings()
	logger := newLogger(cfg)

	s, err := openBackend(cfg, logger, 0)
	if err != nil {
		fail(logger, err)
	}
	res, err := s.launch(id)
	if err != nil {
		fail(logger, err)
	}
	logger.Debug("run finished", "demo", id, "frames", res.Frames, "updates", res.Updates)
}
