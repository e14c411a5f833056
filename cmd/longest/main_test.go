package main

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildLongest builds the CLI into a temp dir and returns the binary path.
func buildLongest(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "longest")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = "."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build longest: %v\n%s", err, out)
	}
	return bin
}

func runLongest(t *testing.T, bin string, args ...string) (string, int) {
	t.Helper()
	out, err := exec.Command(bin, args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("failed to run longest: %v", err)
	}
	return string(out), 0
}

func TestLongestCLI(t *testing.T) {
	bin := buildLongest(t)

	tests := []struct {
		args []string
		want string
	}{
		{nil, "world\n"}, // default pair ties, second wins
		{[]string{"abcdef", "xyz"}, "abcdef\n"},
		{[]string{"ab", "xyz"}, "xyz\n"},
		{[]string{"same", "size"}, "size\n"},
	}
	for _, tt := range tests {
		out, code := runLongest(t, bin, tt.args...)
		if code != 0 {
			t.Errorf("longest %v: expected exit 0, got %d", tt.args, code)
		}
		if out != tt.want {
			t.Errorf("longest %v: expected %q, got %q", tt.args, tt.want, out)
		}
	}
}

func TestLongestCLIUsage(t *testing.T) {
	bin := buildLongest(t)

	for _, args := range [][]string{{"only"}, {"a", "b", "c"}} {
		out, code := runLongest(t, bin, args...)
		if code != 2 {
			t.Errorf("longest %v: expected exit 2, got %d", args, code)
		}
		if out != "" {
			t.Errorf("longest %v: expected no stdout, got %q", args, out)
		}
	}
}
