package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"mockdata/internal/dataset"
	"mockdata/internal/provisioning/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check dataset files (combined or manifest layout) against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filesystem := osfs.New("/")
		out := cmd.OutOrStdout()

		failed := 0
		for _, arg := range args {
			path, err := filepath.Abs(arg)
			if err != nil {
				return err
			}
			_, err = source.NewLocalAttempt(filesystem, path).Acquire(cmd.Context())
			if err == nil {
				writeLine(out, fmt.Sprintf("ok       %s", arg))
				continue
			}
			failed++
			var violation *dataset.SchemaViolation
			if errors.As(err, &violation) {
				writeLine(out, fmt.Sprintf("invalid  %s: %s: %s", arg, violation.Path, violation.Reason))
				continue
			}
			writeLine(out, fmt.Sprintf("%-8s %s: %v", source.Categorize(err), arg, err))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}
