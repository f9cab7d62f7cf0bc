package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mockdata/internal/provisioning/source"
)

var probeFlag bool

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the acquisition attempts for the selected environment, in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		prov, err := build(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		writeLine(out, fmt.Sprintf("environment: %s", prov.Strategy.Environment()))

		for i, attempt := range prov.Strategy.Attempts() {
			if !probeFlag {
				writeLine(out, fmt.Sprintf("%d. %s", i+1, attempt.Name()))
				continue
			}
			start := time.Now()
			_, err := attempt.Acquire(cmd.Context())
			elapsed := time.Since(start).Round(time.Millisecond)
			if err != nil {
				writeLine(out, fmt.Sprintf("%d. %s  FAIL (%s, %s): %v", i+1, attempt.Name(), source.Categorize(err), elapsed, err))
				continue
			}
			writeLine(out, fmt.Sprintf("%d. %s  OK (%s)", i+1, attempt.Name(), elapsed))
		}
		return nil
	},
}

func init() {
	sourcesCmd.Flags().BoolVar(&probeFlag, "probe", false, "Run every attempt and report its outcome")
}
