package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlop3z/dttm/internal/cli"
	"github.com/hlop3z/dttm/internal/detect"
	"github.com/hlop3z/dttm/internal/timefmt"
)

// parseCmd interprets a timestamp argument. Bare integers go through unit
// detection and print an ISO datetime; datetime strings go through the
// format table and print an epoch millisecond offset.
func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <timestamp>",
		Short: "Parse an integer or datetime string timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runParse(os.Stdout, os.Stderr, args[0], time.Now())
			if err != nil {
				if handleRunError(err) {
					os.Exit(1)
				}
				return err
			}
			return nil
		},
	}

	return cmd
}

// runParse is the testable body of the parse command. Results go to out;
// the detected-unit diagnostic goes to diag so stdout stays machine-readable.
func runParse(out, diag io.Writer, input string, now time.Time) error {
	if res, ok := detect.Detect(input, now); ok {
		fmt.Fprintln(diag, cli.Dim(fmt.Sprintf(MsgDetectedUnit, res.Unit)))
		fmt.Fprintln(out, res.Time.ISO())
		return nil
	}

	parsed, err := timefmt.Parse(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, parsed.DateTime.Millis())
	return nil
}
