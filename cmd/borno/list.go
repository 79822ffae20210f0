package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borno/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in stages",
	Long:  `Shows every stage registered in borno. Stage files can be played by path.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	stages := registry.List()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Available stages:")
	fmt.Println()

	maxIDLen := 2
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range stages {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'borno play <id>' to play a stage.")
}
