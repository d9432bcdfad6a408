package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	if v != "1.2.3" {
		t.Errorf("expected ldflags version '1.2.3', got %q", v)
	}
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	if v == "" {
		t.Error("version should not be empty")
	}
	// In a test binary, ReadBuildInfo returns test module info.
	// We just verify it doesn't panic and returns something.
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}

func TestVersionCommand(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()
	version, commit, date = "1.0.0", "abc123", "2026-01-01"

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	want := "gjhint 1.0.0 (abc123, 2026-01-01) " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
	if got := out.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Error("version output should be a single line")
	}
}
