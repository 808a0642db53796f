package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlop3z/dttm/internal/dterr"
	"github.com/hlop3z/dttm/internal/epoch"
)

// nowCmd prints an epoch millisecond timestamp three ways: raw integer,
// UTC ISO, local ISO. Without an argument it uses the current wall clock.
func nowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now [unix_ms]",
		Short: "Print the current (or a given) epoch millisecond timestamp",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}

			err := runNow(os.Stdout, arg, epoch.NowMillis(), time.Local)
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

// runNow is the testable body of the now command. nowMillis supplies the
// wall clock and loc the local zone so tests stay deterministic.
func runNow(w io.Writer, arg string, nowMillis int64, loc *time.Location) error {
	ms := nowMillis
	if arg != "" {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return dterr.New(dterr.ErrBadTimestamp, "timestamp argument must be an integer").WithInput(arg)
		}
		ms = n
	}

	dt := epoch.FromMillis(ms, true)

	fmt.Fprintln(w, ms)
	fmt.Fprintln(w, dt.ISO())
	fmt.Fprintln(w, dt.In(loc).ISO())
	return nil
}
