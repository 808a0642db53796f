// Package cli provides Cargo/rustc-style terminal output formatting for dttm:
// colored labels for interactive terminals, plain text for pipes and CI.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables rich colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (for pipes/CI).
	ModePlain
)

// DetectMode auto-detects the output mode for stderr-bound diagnostics.
// Rules:
//   - stderr is a TTY and NO_COLOR unset -> ModeTTY
//   - NO_COLOR set or TERM=dumb -> ModePlain
func DetectMode() OutputMode {
	mode := ModePlain

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		mode = ModeTTY
	}

	// Respect NO_COLOR (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		mode = ModePlain
	}

	if os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}

	return mode
}

// Global mode, initialized lazily.
var (
	mode    OutputMode
	modeSet bool
)

// Mode returns the active output mode, detecting it on first use.
func Mode() OutputMode {
	if !modeSet {
		mode = DetectMode()
		modeSet = true
	}
	return mode
}

// SetMode overrides the detected output mode. Used for testing and for
// forcing plain output.
func SetMode(m OutputMode) {
	mode = m
	modeSet = true
}

// EnableColors returns true if styled output should be used.
func EnableColors() bool {
	return Mode() == ModeTTY
}
