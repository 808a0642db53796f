package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestRenderCategoryHelp(t *testing.T) {
	var buf bytes.Buffer

	flags := pflag.NewFlagSet("dttm", pflag.ContinueOnError)
	flags.BoolP("help", "h", false, "Show help information")
	flags.BoolP("version", "v", false, "Show version information")

	categories := []CommandCategory{
		{Title: "Inspect", Commands: []CommandInfo{{"now", "Print the current timestamp"}}},
		{Title: "Convert", Commands: []CommandInfo{{"parse", "Parse a timestamp"}}},
	}

	renderCategoryHelp(&buf, MainTitle, MainSummary, categories, flags)
	got := buf.String()

	for _, want := range []string{
		MainTitle,
		"Usage",
		"Inspect",
		"Convert",
		"now",
		"parse",
		"Global Flags",
		"-h, --help",
		"-v, --version",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("help output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintFormatTable(t *testing.T) {
	var buf bytes.Buffer
	printFormatTable(&buf)
	got := buf.String()

	for _, want := range []string{
		"iso_8601_no_tz_micro",
		"rfc_2822",
		"2006-01-02 15:04:05",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("format table missing %q:\n%s", want, got)
		}
	}

	// One line per table entry plus the heading
	lines := strings.Count(strings.TrimRight(got, "\n"), "\n") + 1
	if lines != 11 {
		t.Errorf("format table has %d lines, want 11:\n%s", lines, got)
	}
}

func TestHelpMessagesKnownKeys(t *testing.T) {
	for _, key := range []string{"parse_failed", "now_bad_timestamp"} {
		if _, ok := helpMessages[key]; !ok {
			t.Errorf("helpMessages missing key %q", key)
		}
	}
}
