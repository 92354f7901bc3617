// SPDX-License-Identifier: Apache-2.0
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"ecsl/internal/config"
	"ecsl/internal/parser"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile   string
	colorMode string
	verbosity int

	cfg *config.Config
	log commonlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ecsl",
		Short: "Front end for the ECSL entity-component language",
		Long: `ecsl parses ECSL source files and reports the first syntax error
of each file with a source excerpt.

Commands:
  parse    print the statement tree of a file
  check    parse several files and summarize
  grammar  print or verify the reference grammar
  lsp      run the language server on stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./"+config.FileName+")")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "", "color output: auto, always or never")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")

	root.AddCommand(
		newParseCmd(a),
		newCheckCmd(a),
		newGrammarCmd(),
		newLSPCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and configures
// logging and colors.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("color") {
		cfg.Diagnostics.Color = a.colorMode
	}
	cfg.Log.Verbosity += a.verbosity
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch cfg.Diagnostics.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	var path *string
	if cfg.Log.Path != "" {
		path = &cfg.Log.Path
	}
	commonlog.Configure(cfg.Log.Verbosity, path)

	a.cfg = cfg
	a.log = commonlog.GetLogger("ecsl.cli")
	return nil
}

// parserOptions translates the parser section of the configuration.
func (a *app) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithCommentStripping(a.cfg.Parser.StripComments),
		parser.WithMaxSize(a.cfg.Parser.MaxSourceBytes),
	}
}
