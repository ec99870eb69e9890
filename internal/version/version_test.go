package version

import (
	"strings"
	"testing"
)

func TestColoredPlain(t *testing.T) {
	if got := Colored(false); got != Version {
		t.Fatalf("Colored(false) = %q, want %q", got, Version)
	}
}

func TestColoredKeepsSuffix(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.2.3-rc1"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc1") {
		t.Fatalf("Colored(true) = %q", got)
	}

	Version = "nightly"
	if got := Colored(true); got != "nightly" {
		t.Fatalf("non-semver version altered: %q", got)
	}
}

func TestLongIncludesMetadata(t *testing.T) {
	origCommit := GitCommit
	t.Cleanup(func() { GitCommit = origCommit })

	GitCommit = "abc123"
	out := Long(false)
	if !strings.HasPrefix(out, "talpa "+Version+"\n") || !strings.Contains(out, "commit: abc123") {
		t.Fatalf("Long = %q", out)
	}
}
