// SPDX-License-Identifier: Apache-2.0
package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/glsp/server"

	"ecsl/internal/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := lsp.NewEcslHandler(a.parserOptions()...)

			s := server.NewServer(handler.Handler(), lsp.Name, a.cfg.Log.Verbosity > 1)

			a.log.Info("starting language server")
			return s.RunStdio()
		},
	}
}
