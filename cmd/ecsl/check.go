// SPDX-License-Identifier: Apache-2.0
package main

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ecsl/internal/errors"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse every file and print one summary line each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			green := color.New(color.FgGreen)
			red := color.New(color.FgRed)

			failed := 0
			for _, path := range args {
				startTime := time.Now()
				program, ok := a.parse(cmd.ErrOrStderr(), path)
				duration := formatDuration(time.Since(startTime))

				if !ok {
					failed++
					red.Fprintf(cmd.OutOrStdout(), "FAIL %s (%s)\n", path, duration)
					continue
				}
				green.Fprintf(cmd.OutOrStdout(), "ok   %s: %d statements (%s)\n", path, len(program.Stmts), duration)
			}

			if failed > 0 {
				red.Fprintf(cmd.OutOrStdout(), "%d of %d files failed\n", failed, len(args))
				return &exitError{code: errors.ExitFailure}
			}
			return nil
		},
	}
}
