package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"talpa/internal/diag"
	"talpa/internal/diagfmt"
	"talpa/internal/parser"
	"talpa/internal/source"
	"talpa/internal/trace"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.tp>",
	Short: "Parse a file and dump its raw program",
	Long:  `Parse a single file without following imports or running the analyzer, and print the raw program`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format %q (expected tree|json)", format)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "parse", trace.CurrentSpan(cmd.Context()))
	prog, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		span.End("error")
		d, ok := diag.AsDiagnostic(err)
		if !ok {
			return err
		}
		colored, cerr := useColor(cmd, os.Stderr)
		if cerr != nil {
			return cerr
		}
		if perr := diagfmt.Pretty(cmd.ErrOrStderr(), []diag.Diagnostic{d}, fs, diagfmt.PrettyOpts{Color: colored}); perr != nil {
			return perr
		}
		return errCompileFailed
	}
	span.End("")

	if format == "json" {
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), prog)
	}
	return diagfmt.FormatASTTree(cmd.OutOrStdout(), prog)
}
