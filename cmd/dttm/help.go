package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hlop3z/dttm/internal/cli"
	"github.com/hlop3z/dttm/internal/timefmt"
)

// CommandCategory groups related subcommands for the help display.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

// CommandInfo is one subcommand line in the help display.
type CommandInfo struct {
	Name string
	Desc string
}

// renderCategoryHelp renders the categorized root help text.
// The flags section is built from the live flag set so it stays in sync
// with what cobra actually registers.
func renderCategoryHelp(w io.Writer, title, summary string, categories []CommandCategory, flags *pflag.FlagSet) {
	fmt.Fprintln(w, cli.Title(title))
	fmt.Fprintln(w, cli.Dim(summary))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Title("Usage"))
	fmt.Fprintln(w, "  dttm <command> [arguments]")
	fmt.Fprintln(w)

	// Align command names across all categories
	width := 0
	for _, cat := range categories {
		for _, c := range cat.Commands {
			if len(c.Name) > width {
				width = len(c.Name)
			}
		}
	}

	for _, cat := range categories {
		fmt.Fprintln(w, cli.Title(cat.Title))
		for _, c := range cat.Commands {
			fmt.Fprintf(w, "  %-*s  %s\n", width, c.Name, c.Desc)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, cli.Title("Global Flags"))
	flags.VisitAll(func(f *pflag.Flag) {
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", --" + f.Name
		}
		fmt.Fprintf(w, "  %-15s %s\n", name, f.Usage)
	})
}

// HelpMessage represents a structured help message for error conditions.
type HelpMessage struct {
	Title string   // Error title (e.g., "Unable to parse timestamp")
	Lines []string // Help content lines
}

// helpMessages contains data-driven help messages for common error conditions.
// Using a data-driven approach reduces boilerplate and ensures consistency.
var helpMessages = map[string]HelpMessage{
	"parse_failed": {
		Title: "Unable to parse timestamp",
		Lines: []string{
			"  Got: %s",
			"",
			"The input is not a bare integer and matched no known datetime format.",
			"",
			"Usage:",
			"  dttm parse 1686825000                  # Bare integer, unit auto-detected",
			"  dttm parse \"2023-06-15 10:30:00\"       # Datetime string to epoch ms",
		},
	},
	"now_bad_timestamp": {
		Title: "Invalid timestamp argument",
		Lines: []string{
			"  Got: %s",
			"  Expected: An integer count of milliseconds since epoch",
			"",
			"Usage:",
			"  dttm now                 # Current wall-clock time",
			"  dttm now 1686825000123   # A specific epoch millisecond value",
		},
	},
}

// printHelp prints a help message by key.
// Supports optional format args for messages with placeholders.
func printHelp(key string, args ...any) {
	msg, ok := helpMessages[key]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: Unknown help message key: %s\n", key)
		return
	}

	fmt.Fprintln(os.Stderr, cli.Error("Error")+": "+msg.Title)
	fmt.Fprintln(os.Stderr)

	for _, line := range msg.Lines {
		// Apply format args if the line contains placeholders
		if strings.Contains(line, "%") && len(args) > 0 {
			fmt.Fprintf(os.Stderr, line+"\n", args...)
			// Consume the used arg
			if len(args) > 1 {
				args = args[1:]
			} else {
				args = nil
			}
		} else {
			fmt.Fprintln(os.Stderr, line)
		}
	}
}

// printFormatTable lists the accepted datetime string formats in try order.
func printFormatTable(w io.Writer) {
	fmt.Fprintln(w, "Accepted datetime formats, tried in order:")
	for _, f := range timefmt.Formats() {
		fmt.Fprintf(w, "  %-22s %s\n", f.Name, cli.Dim(f.Layout))
	}
}
