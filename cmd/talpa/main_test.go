package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"talpa/internal/driver"
)

// execute runs the CLI with captured output. Flags keep their values between
// runs of the shared root command, so callers pass every flag they rely on.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	code := run(append(args, "--color", "off"))
	return code, out.String()
}

func TestInitProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")
	created, err := initProject(dir)
	if err != nil || !created {
		t.Fatalf("initProject: created=%v err=%v", created, err)
	}
	if _, err := initProject(dir); err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Fatalf("second init: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "talpa.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `name = "hello"`) {
		t.Fatalf("manifest:\n%s", data)
	}
}

func TestCheckProjectWithoutArguments(t *testing.T) {
	dir := t.TempDir()
	if _, err := initProject(dir); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	code, out := execute(t, "check", "--format", "pretty", "--warnings-as-errors=false")
	if code != 0 {
		t.Fatalf("exit %d:\n%s", code, out)
	}
	if !strings.Contains(out, "Successfully compiled code\n") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestCheckReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tp")
	if err := os.WriteFile(path, []byte("fn main() {\n\tbreak\n}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, out := execute(t, "check", "--format", "short", "--warnings-as-errors=false", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1:\n%s", code, out)
	}
	for _, want := range []string{"error SEM3102", "bad.tp:2:3", "Unable to compile file, 1 errors occurred"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestCheckWithoutManifest(t *testing.T) {
	t.Chdir(t.TempDir())
	code, out := execute(t, "check", "--format", "pretty")
	if code != 1 || !strings.Contains(out, "talpa.toml") {
		t.Fatalf("exit %d:\n%s", code, out)
	}
}

func TestParseTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.tp")
	if err := os.WriteFile(path, []byte("fn main() {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out := execute(t, "parse", "--format", "tree", path)
	if code != 0 || !strings.Contains(out, "Function main (line 1)") {
		t.Fatalf("exit %d:\n%s", code, out)
	}
}

func TestCompileSummary(t *testing.T) {
	tests := []struct {
		name     string
		res      driver.Result
		strict   bool
		want     string
		wantFail bool
	}{
		{name: "clean", want: "Successfully compiled code"},
		{name: "warnings", res: driver.Result{Warnings: 2}, want: "Successfully compiled code with 2 warnings"},
		{name: "errors", res: driver.Result{Errors: 3, Warnings: 1}, want: "Unable to compile file, 3 errors occurred", wantFail: true},
		{name: "strict", res: driver.Result{Warnings: 2}, strict: true, want: "Unable to compile file, 2 errors occurred", wantFail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, failed := compileSummary(&tt.res, tt.strict)
			if got != tt.want || failed != tt.wantFail {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, failed, tt.want, tt.wantFail)
			}
		})
	}
}
