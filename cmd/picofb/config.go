package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the file search and flag overrides.
The output can be saved as ~/.picofb/config.yaml to start customizing.

Examples:
  picofb config
  picofb config --format toml > picofb.toml
  picofb config --backend tui --frames 100`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatYAML, "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := mustSettings()

	data, err := config.Encode(cfg, flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
