// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ecsl/internal/ast"
	"ecsl/internal/errors"
	"ecsl/internal/parser"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the statement tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML {
				return fmt.Errorf("unknown format %q, want %s or %s", format, formatText, formatYAML)
			}

			startTime := time.Now()
			path := args[0]

			program, ok := a.parse(cmd.ErrOrStderr(), path)
			duration := formatDuration(time.Since(startTime))
			if !ok {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Parsing failed after %s\n", duration)
				return &exitError{code: errors.ExitFailure}
			}

			if err := writeProgram(cmd.OutOrStdout(), program, format); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Successfully parsed %s in %s\n", path, duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or yaml")
	return cmd
}

// parse reads and parses path, reporting any failure to w.
func (a *app) parse(w io.Writer, path string) (*ast.Program, bool) {
	program, source, err := parser.ParseFile(path, a.parserOptions()...)
	if err == nil {
		a.log.Debugf("%s: %d statements", path, len(program.Stmts))
		return program, true
	}

	f := parser.AsFailure(err)
	if f == nil {
		fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		return nil, false
	}

	d := errors.FromFailure(f, source, path)
	if !a.cfg.Diagnostics.Help {
		d.Help = nil
	}
	d.Report(w)
	return nil, false
}

func writeProgram(w io.Writer, program *ast.Program, format string) error {
	if format == formatYAML {
		out, err := yaml.Marshal(program)
		if err != nil {
			return fmt.Errorf("failed to encode program: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	text := program.String()
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
