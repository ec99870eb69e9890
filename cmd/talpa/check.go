package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"talpa/internal/diagfmt"
	"talpa/internal/driver"
	"talpa/internal/observ"
	"talpa/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [file.tp]",
	Short: "Parse and analyze a file and everything it imports",
	Long: `Check runs the front end on the entry file and on every file reachable
through its imports. Without an argument the entry is [build].main of the
nearest talpa.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|msgpack)")
	checkCmd.Flags().String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	checkCmd.Flags().Int("jobs", 0, "files analyzed in parallel (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-imports", false, "check only the entry file")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes")
	checkCmd.Flags().Bool("show-codes", false, "append diagnostic IDs in pretty output")
	checkCmd.Flags().Bool("warnings-as-errors", false, "fail when warnings are reported")
	checkCmd.Flags().Bool("disk-cache", false, "reuse per-file results from the on-disk cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before checking")
}

// checkSettings collects the flag values and manifest defaults of one run.
type checkSettings struct {
	entry            string
	format           string
	pathMode         diagfmt.PathMode
	withNotes        bool
	showCodes        bool
	warningsAsErrors bool
	quiet            bool
	timings          bool
	opts             driver.Options
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := readCheckSettings(cmd, args)
	if err != nil {
		return err
	}
	if err := openCheckCache(cmd, &settings.opts); err != nil {
		return err
	}

	res, err := driver.Compile(cmd.Context(), driver.OSHost{}, settings.entry, settings.opts)
	if err != nil {
		return err
	}

	colored, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	if err := writeDiagnostics(cmd, res, settings, colored); err != nil {
		return err
	}
	if settings.timings && settings.opts.Timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), settings.opts.Timer.Summary())
	}

	msg, failed := compileSummary(res, settings.warningsAsErrors)
	if failed {
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
		return errCompileFailed
	}
	if !settings.quiet && settings.format == "pretty" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}

func readCheckSettings(cmd *cobra.Command, args []string) (*checkSettings, error) {
	s := &checkSettings{}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.format, err = cmd.Flags().GetString("format"); err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch s.format {
	case "pretty", "short", "json", "msgpack":
	default:
		return nil, fmt.Errorf("unknown format %q (expected pretty|short|json|msgpack)", s.format)
	}
	pathMode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if s.pathMode, err = parsePathMode(pathMode); err != nil {
		return nil, err
	}
	if s.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return nil, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if s.showCodes, err = cmd.Flags().GetBool("show-codes"); err != nil {
		return nil, fmt.Errorf("failed to get show-codes flag: %w", err)
	}
	if s.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return nil, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if s.opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.opts.NoImports, err = cmd.Flags().GetBool("no-imports"); err != nil {
		return nil, fmt.Errorf("failed to get no-imports flag: %w", err)
	}

	var manifest *project.Manifest
	if len(args) == 1 {
		s.entry = args[0]
	} else {
		manifest, err = loadProjectManifest(".")
		if err != nil {
			return nil, err
		}
		s.entry = manifest.MainPath()
	}

	// флаги командной строки важнее манифеста
	if manifest != nil {
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Diagnostics.Max > 0 {
			maxDiagnostics = manifest.Diagnostics.Max
		}
		if !cmd.Flags().Changed("warnings-as-errors") {
			s.warningsAsErrors = manifest.Diagnostics.WarningsAsErrors
		}
	}
	s.opts.MaxDiagnostics = maxDiagnostics
	if s.timings {
		s.opts.Timer = observ.NewTimer()
	}
	return s, nil
}

// loadProjectManifest finds talpa.toml from dir upwards and decodes it.
func loadProjectManifest(dir string) (*project.Manifest, error) {
	path, ok, err := project.FindManifest(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no input file and no %s found; pass a file or run 'talpa init'", project.ManifestName)
	}
	m, err := project.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return m, nil
}

func openCheckCache(cmd *cobra.Command, opts *driver.Options) error {
	enabled, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	drop, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if !enabled && !drop {
		return nil
	}
	cache, err := driver.OpenDiskCache("talpa")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if drop {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear disk cache: %w", err)
		}
	}
	if enabled {
		opts.Cache = cache
	}
	return nil
}

func writeDiagnostics(cmd *cobra.Command, res *driver.Result, s *checkSettings, colored bool) error {
	diags := res.Diagnostics()
	switch s.format {
	case "pretty":
		return diagfmt.Pretty(cmd.ErrOrStderr(), diags, res.FileSet, diagfmt.PrettyOpts{
			Color:     colored,
			PathMode:  s.pathMode,
			ShowNotes: s.withNotes,
			ShowCode:  s.showCodes,
		})
	case "short":
		return diagfmt.Short(cmd.OutOrStdout(), diags, res.FileSet, s.withNotes)
	case "json":
		return diagfmt.JSON(cmd.OutOrStdout(), diags, res.FileSet, jsonOpts(s))
	case "msgpack":
		return diagfmt.Msgpack(cmd.OutOrStdout(), diags, res.FileSet, jsonOpts(s))
	}
	return nil
}

func jsonOpts(s *checkSettings) diagfmt.JSONOpts {
	return diagfmt.JSONOpts{PathMode: s.pathMode, IncludeNotes: s.withNotes}
}

// compileSummary returns the closing line of `check` and whether the run failed.
func compileSummary(res *driver.Result, warningsAsErrors bool) (string, bool) {
	if res.Failed(warningsAsErrors) {
		n := res.Errors
		if warningsAsErrors {
			n += res.Warnings
		}
		return fmt.Sprintf("Unable to compile file, %d errors occurred", n), true
	}
	if res.Warnings > 0 {
		return fmt.Sprintf("Successfully compiled code with %d warnings", res.Warnings), false
	}
	return "Successfully compiled code", false
}

func parsePathMode(s string) (diagfmt.PathMode, error) {
	switch s {
	case "auto", "":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return diagfmt.PathModeAuto, fmt.Errorf("unknown path mode %q (expected auto|absolute|relative|basename)", s)
	}
}
