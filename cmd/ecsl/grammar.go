// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ecsl/grammar"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the reference grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verify {
				_, err := fmt.Fprint(cmd.OutOrStdout(), grammar.Reference())
				return err
			}

			if err := grammar.Verify(); err != nil {
				return err
			}
			keywords, err := grammar.Keywords()
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "grammar verified from %s, %d keywords\n", grammar.Start, len(keywords))
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check that the grammar is complete and consistent")
	return cmd
}
