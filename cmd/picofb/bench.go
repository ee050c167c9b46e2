package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/registry"
)

var benchCmd = &cobra.Command{
	Use:   "bench <demo>",
	Short: "Render a fixed number of frames and report timing",
	Long: `Run the demo for --frames rendered frames (headless.frames when unset)
and print the achieved frame rate. The window title shows "frame i/N" meanwhile.

Examples:
  picofb bench bounce --frames 1000
  picofb bench text --backend headless --frames 5000`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func runBench(cmd *cobra.Command, args []string) {
	id := args[0]

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", id)
		os.Exit(1)
	}

	cfg := mustSettings()
	logger := newLogger(cfg)

	frames := cfg.Headless.Frames
	if frames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames must be positive")
		os.Exit(1)
	}

	s, err := openBackend(cfg, logger, frames)
	if err != nil {
		fail(logger, err)
	}
	res, err := s.launch(id)
	if err != nil {
		fail(logger, err)
	}

	fps := 0.0
	if secs := res.Elapsed.Seconds(); secs > 0 {
		fps = float64(res.Frames) / secs
	}
	fmt.Printf("%s: %d/%d frames, %d updates in %s (%.1f fps)\n",
		id, res.Frames, frames, res.Updates, res.Elapsed.Round(time.Millisecond), fps)
}
