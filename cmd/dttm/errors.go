package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hlop3z/dttm/internal/cli"
	"github.com/hlop3z/dttm/internal/dterr"
)

// handleRunError checks for known error codes and prints helpful messages.
// Returns true if the error was handled (and a message was printed), false otherwise.
func handleRunError(err error) bool {
	if err == nil {
		return false
	}

	var de *dterr.Error
	if !errors.As(err, &de) {
		return false
	}

	switch de.GetCode() {
	case dterr.ErrUnknownFormat:
		input, _ := de.Input()
		printHelp("parse_failed", input)
		fmt.Fprintln(os.Stderr)
		printFormatTable(os.Stderr)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, cli.Note("note")+": bare integers are unit-detected, any integer parses")
		fmt.Fprintln(os.Stderr, cli.Help("help")+": quote datetime strings so the shell passes one argument")
		return true

	case dterr.ErrBadTimestamp:
		input, _ := de.Input()
		printHelp("now_bad_timestamp", input)
		return true
	}

	return false
}
