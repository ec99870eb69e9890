package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"talpa/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new talpa project",
	Long: `Initialize a new talpa project by creating a project manifest (talpa.toml)
and an entry point (main.tp). If [path|name] is omitted, initializes the
current directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	created, err := initProject(target)
	if err != nil {
		return err
	}

	rel := target
	if r, err := filepath.Rel(wd, target); err == nil {
		rel = r
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized talpa project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if created {
		fmt.Fprintf(out, "  - %s\n", project.DefaultMain)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", project.DefaultMain)
	}
	return nil
}

// initProject writes talpa.toml and, unless it exists, main.tp into target.
// It reports whether main.tp was created.
func initProject(target string) (bool, error) {
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return false, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return false, fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "talpa-project"
	}

	m := &project.Manifest{
		Package:     project.PackageSection{Name: name},
		Build:       project.BuildSection{Main: project.DefaultMain},
		Diagnostics: project.DiagnosticsSection{Max: 100},
	}
	if _, err := project.WriteManifest(target, m); err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, fmt.Errorf("project already initialized: %s exists", filepath.Join(target, project.ManifestName))
		}
		return false, fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, project.DefaultMain)
	if _, err := os.Stat(mainPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(mainPath, []byte(defaultMain), 0o600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", project.DefaultMain, err)
	}
	return true, nil
}

const defaultMain = `// talpa entry point

fn greeting() string {
	return "Hello, Talpa!"
}

fn main() {
	let message = greeting()
}
`
