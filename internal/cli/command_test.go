package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// noConfig keeps the user's real safety config out of tests.
var noConfig = []string{"--config", filepath.Join(os.TempDir(), "rmdir-test-absent.yaml")}

// execute runs the command with args and returns captured stdout,
// stderr and the resulting error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := New("test").Command()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	// Never nil: cobra falls back to os.Args for nil, which would pick
	// up the test binary's own flags.
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestHelpShortCircuits(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "", "--help", dir)
	if err != nil {
		t.Fatalf("--help must succeed, got %v", err)
	}

	if !strings.Contains(out, "rmdir") {
		t.Errorf("help output missing usage, got %q", out)
	}

	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("--help must never touch the filesystem: %v", statErr)
	}
}

func TestVersionShortCircuits(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "", "--version", dir)
	if err != nil {
		t.Fatalf("--version must succeed, got %v", err)
	}

	if !strings.Contains(out, "test") {
		t.Errorf("version output missing version string, got %q", out)
	}

	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("--version must never touch the filesystem: %v", statErr)
	}
}

func TestUnknownOption(t *testing.T) {
	out, errOut, err := execute(t, "", "--frobnicate")
	if err == nil {
		t.Fatal("unknown option must fail")
	}

	if !strings.Contains(errOut, "Unknown option: --frobnicate") {
		t.Errorf("expected unknown-option message, got %q", errOut)
	}

	// Usage must follow the error on the same stream, not stdout.
	if !strings.Contains(errOut, "Usage:") {
		t.Errorf("expected usage on the error stream, got %q", errOut)
	}

	if strings.Contains(out, "Usage:") {
		t.Errorf("usage leaked to stdout: %q", out)
	}
}

func TestUnknownShorthandOption(t *testing.T) {
	_, errOut, err := execute(t, "", "-Z")
	if err == nil {
		t.Fatal("unknown shorthand must fail")
	}

	if !strings.Contains(errOut, "Unknown option: -Z") {
		t.Errorf("expected unknown-option message, got %q", errOut)
	}
}

func TestNoTarget(t *testing.T) {
	_, errOut, err := execute(t, "")
	if err == nil {
		t.Fatal("missing target must fail")
	}

	if !strings.Contains(errOut, "No directory specified") {
		t.Errorf("expected no-target message, got %q", errOut)
	}

	if !strings.Contains(errOut, "Usage:") {
		t.Errorf("expected usage on the error stream, got %q", errOut)
	}
}

func TestDeleteEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "", append(noConfig, dir)...)
	if err != nil {
		t.Fatalf("deleting an empty directory must succeed, got %v", err)
	}

	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Errorf("directory still exists")
	}

	if !strings.Contains(out, "Deleted 1 of 1") {
		t.Errorf("expected summary line, got %q", out)
	}
}

func TestNonEmptyWithoutFlagsFails(t *testing.T) {
	dir := t.TempDir()
	if writeErr := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644); writeErr != nil {
		t.Fatalf("creating file: %v", writeErr)
	}

	_, errOut, err := execute(t, "", append(noConfig, dir)...)
	if err == nil {
		t.Fatal("non-empty directory without --force must fail")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "f")); statErr != nil {
		t.Errorf("directory contents must be untouched: %v", statErr)
	}

	if !strings.Contains(errOut, "--force") {
		t.Errorf("expected guidance message, got %q", errOut)
	}
}

func TestForceYesDeletesWithoutPrompt(t *testing.T) {
	dir := t.TempDir()
	if writeErr := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644); writeErr != nil {
		t.Fatalf("creating file: %v", writeErr)
	}

	out, _, err := execute(t, "", append(noConfig, "--force", "--yes", dir)...)
	if err != nil {
		t.Fatalf("--force --yes must delete, got %v", err)
	}

	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Errorf("directory still exists")
	}

	if strings.Contains(out, "[y/N]") {
		t.Errorf("no prompt may appear with --yes, got %q", out)
	}
}

func TestDeclineLeavesTreeIntact(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "f")
	if writeErr := os.WriteFile(file, []byte("x"), 0o644); writeErr != nil {
		t.Fatalf("creating file: %v", writeErr)
	}

	_, errOut, err := execute(t, "n\n", append(noConfig, "--force", dir)...)
	if err == nil {
		t.Fatal("a declined run must exit non-zero")
	}

	if _, statErr := os.Stat(file); statErr != nil {
		t.Errorf("tree must be fully intact after decline: %v", statErr)
	}

	if !strings.Contains(errOut, "Cancelled") {
		t.Errorf("decline must be reported as cancellation, got %q", errOut)
	}
}

func TestMixedTargets(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	missing := filepath.Join(t.TempDir(), "gone")

	out, _, err := execute(t, "", append(noConfig, first, missing, second)...)
	if err == nil {
		t.Fatal("a run with a missing target must exit non-zero")
	}

	for _, dir := range []string{first, second} {
		if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
			t.Errorf("existing empty target %s not deleted", dir)
		}
	}

	if !strings.Contains(out, "Deleted 2 of 3") {
		t.Errorf("expected summary over all targets, got %q", out)
	}
}

func TestUnknownTokenRecovery(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		unknown bool
	}{
		{"long flag", errors.New("unknown flag: --nope"), "--nope", true},
		{"shorthand", errors.New("unknown shorthand flag: 'z' in -z"), "-z", true},
		{"other", errors.New("flag needs an argument: --config"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unknownToken(tt.err)
			if got != tt.want || ok != tt.unknown {
				t.Errorf("unknownToken(%q) = %q, %v, expected %q, %v", tt.err, got, ok, tt.want, tt.unknown)
			}
		})
	}
}
