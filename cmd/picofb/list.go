package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in picofb with their default size and rate.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range demos {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxIDLen, "ID", "Size", "Rate", "Title")
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, d := range demos {
		size := fmt.Sprintf("%dx%d", d.Defaults.Width, d.Defaults.Height)
		fmt.Printf("  %-*s  %-9s  %-5d  %s\n", maxIDLen, d.ID, size, d.Defaults.UpdateRate, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'picofb run <id>' to run a demo.")
}
