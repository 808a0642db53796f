// Package main provides the dttm CLI, a converter between human-readable
// datetime strings and Unix epoch timestamps.
//
// Usage:
//
//	dttm now                     # Current time as epoch ms, UTC and local ISO
//	dttm now 1686825000123       # Inspect a specific epoch millisecond value
//	dttm parse 1686825000        # Detect unit of a bare integer timestamp
//	dttm parse "2023-06-15 10:30:00"  # Parse a datetime string to epoch ms
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// customHelp displays a styled help message for the root command.
func customHelp(cmd *cobra.Command) {
	categories := []CommandCategory{
		{
			Title: "Inspect",
			Commands: []CommandInfo{
				{"now", "Print the current (or a given) epoch millisecond timestamp"},
			},
		},
		{
			Title: "Convert",
			Commands: []CommandInfo{
				{"parse", "Parse an integer or datetime string timestamp"},
			},
		},
	}

	renderCategoryHelp(os.Stderr, MainTitle, MainSummary, categories, cmd.Flags())
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "dttm",
		Short:   "Convert between datetime strings and Unix epoch timestamps",
		Long:    `dttm converts between human-readable datetime strings and Unix epoch timestamps, auto-detecting timestamp precision (s/ms/us/ns) and trying multiple common string formats.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			// No subcommand given: help text, non-zero exit.
			customHelp(cmd)
			os.Exit(1)
		},
	}

	// Set custom help function
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		customHelp(cmd)
	})

	// Add subcommands
	rootCmd.AddCommand(
		nowCmd(),
		parseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
